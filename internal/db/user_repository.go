package db

import (
	"context"
	"errors"
	"time"

	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

const usersCollection = "users"

// mongoUserRepository implements UserRepository over the document store.
type mongoUserRepository struct {
	store database.DocumentStore
}

// NewUserRepository creates a new user repository.
func NewUserRepository(store database.DocumentStore) UserRepository {
	return &mongoUserRepository{store: store}
}

// Upsert writes the user document keyed by its email.
func (r *mongoUserRepository) Upsert(ctx context.Context, user *models.User) (*database.UpsertResult, error) {
	if user.Email == "" {
		return nil, errors.New("user email cannot be empty for Upsert operation")
	}
	user.UpdatedAt = time.Now().UTC()
	return r.store.UpsertByKey(ctx, usersCollection, "email", user.Email, user)
}
