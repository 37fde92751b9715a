package core

import (
	"context"
	"fmt"

	"brainbox-backend-go/internal/db"
	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Upsert writes the user keyed by email. Submitting the same email twice
// with different fields leaves exactly one stored document reflecting the
// latest fields.
func (s *userService) Upsert(ctx context.Context, req models.UpsertUserRequest) (*database.UpsertResult, error) {
	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     req.Role,
	}
	result, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %q: %w", req.Email, err)
	}
	return result, nil
}
