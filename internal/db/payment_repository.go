package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

const paymentsCollection = "payments"

// mongoPaymentRepository implements PaymentRepository over the document
// store.
type mongoPaymentRepository struct {
	store database.DocumentStore
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(store database.DocumentStore) PaymentRepository {
	return &mongoPaymentRepository{store: store}
}

// Insert records a payment. Payments are immutable once written.
func (r *mongoPaymentRepository) Insert(ctx context.Context, payment *models.Payment) (string, error) {
	payment.CreatedAt = time.Now().UTC()
	return r.store.InsertOne(ctx, paymentsCollection, payment)
}

// ListByEmail returns the payment history for an email address.
func (r *mongoPaymentRepository) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	var payments []*models.Payment
	if err := r.store.FindMany(ctx, paymentsCollection, bson.M{"email": email}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByUserID returns the payment history for a user id.
func (r *mongoPaymentRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Payment, error) {
	var payments []*models.Payment
	if err := r.store.FindMany(ctx, paymentsCollection, bson.M{"userId": userID}, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
