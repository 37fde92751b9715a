package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is an entry in a user's cart. A payment whose category is
// "Food Order" deletes the referenced cart entries as its settlement step.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	ItemID string             `bson:"itemId,omitempty" json:"itemId,omitempty"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Price  float64            `bson:"price" json:"price"`
}
