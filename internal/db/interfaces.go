package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	// Upsert writes the user keyed by email: an existing document with the
	// same email is overwritten, never duplicated.
	Upsert(ctx context.Context, user *models.User) (*database.UpsertResult, error)
}

// CourseRepository defines the interface for course data storage operations.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) (string, error)
	// GetByID returns database.ErrMalformedID for unparseable ids and
	// database.ErrNotFound for absent documents.
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Course, error)
	// ListByIDs resolves course ids into full course records. Ids matching no
	// course are silently skipped by the match.
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*database.UpdateResult, error)
	Delete(ctx context.Context, id string) (*database.DeleteResult, error)
}

// PaymentRepository defines the interface for payment data storage
// operations. Payments are insert-only; there is no update or delete.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) (string, error)
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Payment, error)
}

// CartRepository defines the settlement-side cart operations.
type CartRepository interface {
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// BookingRepository defines the settlement-side booking operations.
type BookingRepository interface {
	MarkPaidByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
