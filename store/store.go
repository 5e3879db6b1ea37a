package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when the referenced id has no backing document.
var ErrNotFound = errors.New("document not found")

var errDuplicateID = errors.New("document with this id already exists")

// Doc is a single document together with its store-assigned id.
type Doc struct {
	ID     string
	Fields bson.M
}

// OpKind enumerates the mutations a Batch can carry.
type OpKind string

const (
	OpCreate OpKind = "create"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// Op is one mutation inside a Batch.
type Op struct {
	Kind       OpKind
	Collection string
	ID         string
	Fields     bson.M
}

// Store is the document-database boundary the dashboard talks to. Ids are
// opaque strings; Create takes an explicit id so a destination can reuse the
// id of the submission it was promoted from.
type Store interface {
	// List returns every document in the collection in arrival order.
	List(ctx context.Context, collection string) ([]Doc, error)
	// Get returns the fields of one document, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (bson.M, error)
	Create(ctx context.Context, collection, id string, fields bson.M) error
	// Update merges the given fields into an existing document.
	Update(ctx context.Context, collection, id string, fields bson.M) error
	Delete(ctx context.Context, collection, id string) error
	// Query returns the documents whose field equals value.
	Query(ctx context.Context, collection, field string, value interface{}) ([]Doc, error)
	// Batch applies all ops or none of them.
	Batch(ctx context.Context, ops []Op) error
	Count(ctx context.Context, collection string) (int64, error)
}
