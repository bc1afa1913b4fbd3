package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.mongodb.org/mongo-driver/bson"
)

// Importer loads exported collection files back into the destination store.
// Each collection is imported in a single shot: the file is read and parsed
// once, then inserted in batchSize slices. This deliberately replaces the
// per-batch file re-read of earlier versions, which multiplied the imported
// documents by the number of source batches.
type Importer struct {
	dest      Store
	outputDir string
	batchSize int
}

func NewImporter(dest Store, outputDir string, batchSize int) *Importer {
	return &Importer{dest: dest, outputDir: outputDir, batchSize: batchSize}
}

// Import reads {outputDir}/{collection}.json and inserts its documents,
// unordered, into the destination collection. A missing file is not an
// error: it returns found=false and inserts nothing.
func (im *Importer) Import(ctx context.Context, collection string) (inserted int64, found bool, err error) {
	path := filepath.Join(im.outputDir, collection+".json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, &FileIOError{Path: path, Err: err}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, true, &FileIOError{Path: path, Err: err}
	}
	docs := make([]Document, len(raw))
	for i, entry := range raw {
		if err := bson.UnmarshalExtJSON(entry, false, &docs[i]); err != nil {
			return 0, true, &FileIOError{Path: path, Err: err}
		}
	}

	for start := 0; start < len(docs); start += im.batchSize {
		end := min(start+im.batchSize, len(docs))
		n, err := im.dest.InsertMany(ctx, collection, docs[start:end])
		inserted += int64(n)
		if err != nil {
			return inserted, true, &InsertError{
				Collection: collection,
				Inserted:   n,
				Failed:     end - start - n,
				Err:        err,
			}
		}
	}
	return inserted, true, nil
}
