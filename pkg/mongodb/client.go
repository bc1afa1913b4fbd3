package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iamdhiraj69/mongo-copy/pkg/transfer"
)

const connectTimeout = 10 * time.Second

// Connect establishes a connection to MongoDB with the given URI and pings
// it to verify the deployment is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)
	clientOptions.SetConnectTimeout(connectTimeout)
	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)
	clientOptions.SetCompressors([]string{"snappy"})

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// Open connects a job's endpoints. destURI may be empty for modes that never
// write to a store, in which case the destination handle is nil. On failure
// the already-opened source is closed and the returned
// transfer.ConnectionError names the endpoint that failed.
func Open(ctx context.Context, sourceURI, sourceDB, destURI, destDB string) (*Store, *Store, error) {
	sourceClient, err := Connect(ctx, sourceURI)
	if err != nil {
		return nil, nil, &transfer.ConnectionError{Endpoint: "source", Err: err}
	}
	source := NewStore(sourceClient, sourceDB)

	if destURI == "" {
		return source, nil, nil
	}
	destClient, err := Connect(ctx, destURI)
	if err != nil {
		_ = source.Close(ctx)
		return nil, nil, &transfer.ConnectionError{Endpoint: "destination", Err: err}
	}
	return source, NewStore(destClient, destDB), nil
}
