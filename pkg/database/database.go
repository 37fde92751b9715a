package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a single-document lookup matches nothing.
var ErrNotFound = errors.New("document not found")

// ErrMalformedID is returned when an opaque identifier string cannot be
// parsed. It is distinct from ErrNotFound so callers can tell "bad input"
// from "absent document".
var ErrMalformedID = errors.New("malformed document id")

// UpsertResult reports the outcome of an upsert.
type UpsertResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// UpdateResult reports the outcome of an update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// DocumentStore defines generic create/read/update/delete/aggregate
// operations over named collections. dest arguments follow the driver
// convention: a pointer to a struct for single documents, a pointer to a
// slice for result sets.
type DocumentStore interface {
	// UpsertByKey replaces/merges the fields of the document whose keyField
	// equals keyValue, creating it when absent.
	UpsertByKey(ctx context.Context, collection, keyField string, keyValue interface{}, document interface{}) (*UpsertResult, error)

	// FindMany decodes the full match set into dest. No pagination, no limit.
	FindMany(ctx context.Context, collection string, filter interface{}, dest interface{}) error

	// FindOne decodes a single matching document into dest, or ErrNotFound.
	FindOne(ctx context.Context, collection string, filter interface{}, dest interface{}) error

	// InsertOne inserts a document and returns its generated id.
	InsertOne(ctx context.Context, collection string, document interface{}) (string, error)

	UpdateOne(ctx context.Context, collection string, filter, update interface{}) (*UpdateResult, error)
	UpdateMany(ctx context.Context, collection string, filter, update interface{}) (*UpdateResult, error)
	DeleteOne(ctx context.Context, collection string, filter interface{}) (*DeleteResult, error)
	DeleteMany(ctx context.Context, collection string, filter interface{}) (*DeleteResult, error)

	// AggregateMatch decodes into dest every document whose _id is in ids.
	AggregateMatch(ctx context.Context, collection string, ids []primitive.ObjectID, dest interface{}) error

	// WithTransaction runs fn inside a single transactional scope; writes made
	// through the ctx passed to fn commit or abort together.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ParseID parses an opaque identifier string, returning ErrMalformedID when
// it is not a valid object id.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrMalformedID
	}
	return oid, nil
}

// ParseIDs parses a set of opaque identifier strings. A single malformed
// entry fails the whole set.
func ParseIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
