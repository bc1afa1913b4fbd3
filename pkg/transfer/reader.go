package transfer

import "context"

// batchReader drains a cursor in fixed-size batches. It is single-pass: once
// Next returns false the reader is exhausted, and reading the collection
// again requires a fresh cursor.
type batchReader struct {
	cursor    Cursor
	batchSize int
	batch     []Document
	err       error
}

func newBatchReader(cursor Cursor, batchSize int) *batchReader {
	return &batchReader{cursor: cursor, batchSize: batchSize}
}

// Next pulls up to batchSize documents from the cursor. It returns false when
// the cursor is exhausted or a read failed; check Err afterwards. The batch
// slice is reused between calls and only valid until the next call.
func (r *batchReader) Next(ctx context.Context) bool {
	if r.err != nil {
		return false
	}

	r.batch = r.batch[:0]
	for len(r.batch) < r.batchSize && r.cursor.Next(ctx) {
		var doc Document
		if err := r.cursor.Decode(&doc); err != nil {
			r.err = err
			return false
		}
		r.batch = append(r.batch, doc)
	}
	if err := r.cursor.Err(); err != nil {
		r.err = err
		return false
	}
	return len(r.batch) > 0
}

// Batch returns the documents pulled by the last successful Next.
func (r *batchReader) Batch() []Document { return r.batch }

func (r *batchReader) Err() error { return r.err }
