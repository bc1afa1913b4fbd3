package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iamdhiraj69/mongo-copy/pkg/transfer"
)

// Store adapts one database of a connected client to transfer.Store.
type Store struct {
	client   *mongo.Client
	database string
}

func NewStore(client *mongo.Client, database string) *Store {
	return &Store{client: client, database: database}
}

func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	return s.client.Database(s.database).ListCollectionNames(ctx, bson.D{})
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	return s.client.Database(s.database).Collection(collection).CountDocuments(ctx, bson.D{})
}

func (s *Store) Scan(ctx context.Context, collection string, batchSize int) (transfer.Cursor, error) {
	findOptions := options.Find().
		SetNoCursorTimeout(true).
		SetAllowDiskUse(true).
		SetBatchSize(int32(batchSize))

	cursor, err := s.client.Database(s.database).Collection(collection).Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	return cursor, nil
}

func (s *Store) InsertMany(ctx context.Context, collection string, docs []transfer.Document) (int, error) {
	payload := make([]interface{}, len(docs))
	for i, doc := range docs {
		payload[i] = doc
	}
	insertOptions := options.InsertMany().SetOrdered(false)

	res, err := s.client.Database(s.database).Collection(collection).InsertMany(ctx, payload, insertOptions)
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	return inserted, err
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
