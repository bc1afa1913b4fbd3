package transfer

import "go.mongodb.org/mongo-driver/bson"

// Document is a single schema-less record moved by the engine.
type Document = bson.M
