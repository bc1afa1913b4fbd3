package transfer

import "fmt"

// ConnectionError reports a store endpoint that could not be reached.
type ConnectionError struct {
	Endpoint string // "source" or "destination"
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// EnumerationError reports a failure to list the source's collections.
type EnumerationError struct {
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("failed to list collections: %v", e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// BatchReadError reports a source read failure while streaming a collection:
// the initial count, opening the cursor, or a cursor advance mid-stream.
type BatchReadError struct {
	Collection string
	Err        error
}

func (e *BatchReadError) Error() string {
	return fmt.Sprintf("failed to read collection %s: %v", e.Collection, e.Err)
}

func (e *BatchReadError) Unwrap() error { return e.Err }

// InsertError reports a full or partial destination write failure. Inserts
// are unordered, so Inserted documents may have landed before Failed ones.
type InsertError struct {
	Collection string
	Inserted   int
	Failed     int
	Err        error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("failed to insert into collection %s (%d inserted, %d failed): %v",
		e.Collection, e.Inserted, e.Failed, e.Err)
}

func (e *InsertError) Unwrap() error { return e.Err }

// FileIOError reports an export/import file access or parse failure.
type FileIOError struct {
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("file %s: %v", e.Path, e.Err)
}

func (e *FileIOError) Unwrap() error { return e.Err }
