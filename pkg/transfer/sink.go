package transfer

import (
	"context"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson"
)

// Sink is a streaming write target. Begin and End bracket the batches of one
// collection; a sink processes one collection at a time.
type Sink interface {
	Begin(ctx context.Context, collection string) error
	Write(ctx context.Context, batch []Document) error
	End(ctx context.Context) error
}

// NewLiveSink returns a sink that inserts each batch into the same-named
// collection of the destination store.
func NewLiveSink(dest Store) Sink {
	return &liveSink{dest: dest}
}

type liveSink struct {
	dest       Store
	collection string
}

func (s *liveSink) Begin(_ context.Context, collection string) error {
	s.collection = collection
	return nil
}

func (s *liveSink) Write(ctx context.Context, batch []Document) error {
	inserted, err := s.dest.InsertMany(ctx, s.collection, batch)
	if err != nil {
		return &InsertError{
			Collection: s.collection,
			Inserted:   inserted,
			Failed:     len(batch) - inserted,
			Err:        err,
		}
	}
	return nil
}

func (s *liveSink) End(context.Context) error { return nil }

// NewExportSink returns a sink that writes each collection to
// {outputDir}/{collection}.json as one JSON array. The array is streamed:
// Begin truncates the file and writes the opening bracket, each Write appends
// comma-separated documents in relaxed extended JSON, End closes the array.
// A collection spanning many batches therefore still produces a single
// well-formed JSON document.
func NewExportSink(outputDir string) Sink {
	return &exportSink{outputDir: outputDir}
}

type exportSink struct {
	outputDir string
	path      string
	file      *os.File
	written   int64
}

func (s *exportSink) Begin(_ context.Context, collection string) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return &FileIOError{Path: s.outputDir, Err: err}
	}
	s.path = filepath.Join(s.outputDir, collection+".json")
	file, err := os.Create(s.path)
	if err != nil {
		return &FileIOError{Path: s.path, Err: err}
	}
	s.file = file
	s.written = 0
	if _, err := s.file.WriteString("["); err != nil {
		return &FileIOError{Path: s.path, Err: err}
	}
	return nil
}

func (s *exportSink) Write(_ context.Context, batch []Document) error {
	for _, doc := range batch {
		data, err := bson.MarshalExtJSON(doc, false, false)
		if err != nil {
			return &FileIOError{Path: s.path, Err: err}
		}
		if s.written > 0 {
			if _, err := s.file.WriteString(","); err != nil {
				return &FileIOError{Path: s.path, Err: err}
			}
		}
		if _, err := s.file.Write(data); err != nil {
			return &FileIOError{Path: s.path, Err: err}
		}
		s.written++
	}
	return nil
}

func (s *exportSink) End(context.Context) error {
	if s.file == nil {
		return nil
	}
	_, writeErr := s.file.WriteString("]")
	closeErr := s.file.Close()
	s.file = nil
	if writeErr != nil {
		return &FileIOError{Path: s.path, Err: writeErr}
	}
	if closeErr != nil {
		return &FileIOError{Path: s.path, Err: closeErr}
	}
	return nil
}
