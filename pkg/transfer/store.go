package transfer

import "context"

// Store is the minimal capability the engine needs from a document store.
// The MongoDB implementation lives in pkg/mongodb; tests use in-memory
// implementations.
type Store interface {
	// ListCollections returns the store's collection names in the store's
	// natural order.
	ListCollections(ctx context.Context) ([]string, error)

	// Count returns a point-in-time document count for the collection.
	Count(ctx context.Context, collection string) (int64, error)

	// Scan opens a full-scan cursor over the collection with no filter.
	// The caller owns the cursor and must close it.
	Scan(ctx context.Context, collection string, batchSize int) (Cursor, error)

	// InsertMany inserts the documents unordered, so one document's failure
	// does not block the rest of the batch. It returns how many documents
	// were inserted, which on error may be fewer than len(docs).
	InsertMany(ctx context.Context, collection string, docs []Document) (int, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// Cursor is a single-pass iterator over one collection. It is not
// restartable; re-reading a collection requires a fresh Scan.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val any) error
	Err() error
	Close(ctx context.Context) error
}
