package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brainbox-backend-go/internal/models"
)

func TestUserUpsertMapsRequestFields(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	_, err := svc.Upsert(context.Background(), models.UpsertUserRequest{
		Email: "u1@example.com",
		Name:  "User One",
		Role:  "student",
	})
	require.NoError(t, err)

	require.Len(t, repo.upserted, 1)
	assert.Equal(t, "u1@example.com", repo.upserted[0].Email)
	assert.Equal(t, "User One", repo.upserted[0].Name)
	assert.Equal(t, "student", repo.upserted[0].Role)
}

func TestUserUpsertPropagatesRepoError(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("store down")}
	svc := NewUserService(repo)

	_, err := svc.Upsert(context.Background(), models.UpsertUserRequest{Email: "u1@example.com"})
	assert.Error(t, err)
}
