package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking represents a table reservation. A payment whose category is
// "Table Booking" marks the referenced bookings paid; bookings are never
// deleted by settlement.
type Booking struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Date   string             `bson:"date" json:"date"`
	Time   string             `bson:"time,omitempty" json:"time,omitempty"`
	Guests int                `bson:"guests,omitempty" json:"guests,omitempty"`
	Paid   bool               `bson:"paid" json:"paid"`
}
