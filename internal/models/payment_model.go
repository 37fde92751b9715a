package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settlement categories recognised by the payment flow. Any other category
// records the payment without touching carts or bookings.
const (
	CategoryFoodOrder    = "Food Order"
	CategoryTableBooking = "Table Booking"
)

// Payment records a completed purchase. It is immutable once inserted: no
// route updates or deletes payments. DataIDs holds the opaque identifiers of
// the items the payment covers (cart entries, bookings, or courses); the
// settlement step reconciles those items according to Category.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	UserID        string             `bson:"userId" json:"userId"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Category      string             `bson:"category" json:"category"`
	DataIDs       []string           `bson:"dataIDs" json:"dataIDs"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
