package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamdhiraj69/mongo-copy/pkg/models"
)

var errCursorRead = errors.New("cursor read failed")

// memStore is an in-memory Store used by the package tests.
type memStore struct {
	order       []string
	collections map[string][]Document

	inserted    map[string][]Document
	insertCalls int
	scans       []string
	closedCount int

	listErr       error
	countErr      map[string]error
	readFailAfter map[string]int // cursor fails after N documents
	insertErr     map[string]error
	insertPartial map[string]int // documents accepted before insertErr fires
}

func newMemStore() *memStore {
	return &memStore{
		collections:   map[string][]Document{},
		inserted:      map[string][]Document{},
		countErr:      map[string]error{},
		readFailAfter: map[string]int{},
		insertErr:     map[string]error{},
		insertPartial: map[string]int{},
	}
}

// add registers a collection, creating it empty if no documents are given.
func (s *memStore) add(name string, docs ...Document) {
	if _, ok := s.collections[name]; !ok {
		s.order = append(s.order, name)
		s.collections[name] = nil
	}
	s.collections[name] = append(s.collections[name], docs...)
}

func (s *memStore) ListCollections(context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]string(nil), s.order...), nil
}

func (s *memStore) Count(_ context.Context, collection string) (int64, error) {
	if err := s.countErr[collection]; err != nil {
		return 0, err
	}
	return int64(len(s.collections[collection])), nil
}

func (s *memStore) Scan(_ context.Context, collection string, _ int) (Cursor, error) {
	s.scans = append(s.scans, collection)
	failAfter := -1
	if n, ok := s.readFailAfter[collection]; ok {
		failAfter = n
	}
	return &memCursor{docs: s.collections[collection], failAfter: failAfter}, nil
}

func (s *memStore) InsertMany(_ context.Context, collection string, docs []Document) (int, error) {
	s.insertCalls++
	if err := s.insertErr[collection]; err != nil {
		n := min(s.insertPartial[collection], len(docs))
		s.inserted[collection] = append(s.inserted[collection], docs[:n]...)
		return n, err
	}
	s.inserted[collection] = append(s.inserted[collection], docs...)
	return len(docs), nil
}

func (s *memStore) Close(context.Context) error {
	s.closedCount++
	return nil
}

type memCursor struct {
	docs      []Document
	pos       int
	failAfter int // -1 disables injected failure
	err       error
	closed    bool
}

func (c *memCursor) Next(context.Context) bool {
	if c.err != nil || c.pos >= len(c.docs) {
		return false
	}
	if c.failAfter >= 0 && c.pos >= c.failAfter {
		c.err = errCursorRead
		return false
	}
	c.pos++
	return true
}

func (c *memCursor) Decode(val any) error {
	*(val.(*Document)) = c.docs[c.pos-1]
	return nil
}

func (c *memCursor) Err() error { return c.err }

func (c *memCursor) Close(context.Context) error {
	c.closed = true
	return nil
}

// recordReporter captures events as readable strings.
type recordReporter struct {
	events []string
}

func (r *recordReporter) record(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recordReporter) JobStarted(plan []string, dryRun bool) {
	r.record("start %v dryRun=%v", plan, dryRun)
}

func (r *recordReporter) CollectionStarted(collection string, total int64) {
	r.record("collectionStart %s total=%d", collection, total)
}

func (r *recordReporter) Progress(collection string, processed, total int64) {
	r.record("progress %s %d/%d", collection, processed, total)
}

func (r *recordReporter) CollectionDone(collection string, processed int64) {
	r.record("collectionDone %s %d", collection, processed)
}

func (r *recordReporter) CollectionSkipped(collection, reason string) {
	r.record("skipped %s (%s)", collection, reason)
}

func (r *recordReporter) JobDone(report models.TransferReport) {
	r.record("allDone total=%d", report.TotalDocuments)
}

func (r *recordReporter) JobFailed(phase, collection string, err error) {
	r.record("error phase=%s collection=%s: %v", phase, collection, err)
}
