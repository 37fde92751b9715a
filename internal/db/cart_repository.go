package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brainbox-backend-go/pkg/database"
)

const cartsCollection = "carts"

// mongoCartRepository implements CartRepository over the document store.
type mongoCartRepository struct {
	store database.DocumentStore
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(store database.DocumentStore) CartRepository {
	return &mongoCartRepository{store: store}
}

// DeleteByIDs bulk-removes the cart entries with the given ids and returns
// the number deleted.
func (r *mongoCartRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := r.store.DeleteMany(ctx, cartsCollection, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
