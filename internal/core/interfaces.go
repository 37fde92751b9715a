package core

import (
	"context"

	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// Upsert writes the user profile keyed by email.
	Upsert(ctx context.Context, req models.UpsertUserRequest) (*database.UpsertResult, error)
}

// CourseService defines the interface for course-related operations.
type CourseService interface {
	Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	// GetWithPaymentStatus returns the course and whether the given user has
	// already paid for it. Malformed ids surface as database.ErrMalformedID,
	// absent courses as database.ErrNotFound.
	GetWithPaymentStatus(ctx context.Context, courseID, userID string) (*models.Course, bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Course, error)
	// ListEnrolled returns the courses referenced by any of the user's
	// payments, duplicate-free.
	ListEnrolled(ctx context.Context, userID string) ([]*models.Course, error)
	Update(ctx context.Context, courseID string, req models.UpdateCourseRequest) (*database.UpdateResult, error)
	Delete(ctx context.Context, courseID string) (*database.DeleteResult, error)
}

// PaymentService defines the interface for payment recording and history.
type PaymentService interface {
	// Record inserts the payment and settles the referenced cart/booking
	// items in one transactional scope.
	Record(ctx context.Context, req models.RecordPaymentRequest) (*models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// BillingService defines the interface to the card-payment gateway.
type BillingService interface {
	// CreatePaymentIntent converts a major-unit price into a minor-unit
	// amount and creates a payment intent, returning its client secret.
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

// TxRunner runs a function inside a single store transaction. The document
// store implements it.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
