package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brainbox-backend-go/pkg/database"
)

const bookingsCollection = "bookings"

// mongoBookingRepository implements BookingRepository over the document
// store.
type mongoBookingRepository struct {
	store database.DocumentStore
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(store database.DocumentStore) BookingRepository {
	return &mongoBookingRepository{store: store}
}

// MarkPaidByIDs bulk-sets paid=true on the bookings with the given ids and
// returns the number modified. Bookings stay in the collection; settlement
// never deletes them.
func (r *mongoBookingRepository) MarkPaidByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := r.store.UpdateMany(
		ctx,
		bookingsCollection,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"paid": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
