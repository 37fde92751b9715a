package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

func TestGetWithPaymentStatus(t *testing.T) {
	courseID := primitive.NewObjectID()
	course := &models.Course{ID: courseID, OwnerID: "owner1", Title: "Go Basics", Price: 29.99}

	tests := []struct {
		name        string
		lookupID    string
		payments    []*models.Payment
		wantPaid    bool
		wantErr     error
		wantCourse  bool
	}{
		{
			name:     "paid_course",
			lookupID: courseID.Hex(),
			payments: []*models.Payment{
				{UserID: "u1", DataIDs: []string{courseID.Hex()}},
			},
			wantPaid:   true,
			wantCourse: true,
		},
		{
			name:       "unpaid_course",
			lookupID:   courseID.Hex(),
			payments:   []*models.Payment{{UserID: "u1", DataIDs: []string{primitive.NewObjectID().Hex()}}},
			wantPaid:   false,
			wantCourse: true,
		},
		{
			name:     "malformed_id",
			lookupID: "zzz",
			wantErr:  database.ErrMalformedID,
		},
		{
			name:     "absent_course",
			lookupID: primitive.NewObjectID().Hex(),
			wantErr:  database.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			courses := newFakeCourseRepo()
			courses.byID[courseID.Hex()] = course
			payments := &fakePaymentRepo{payments: tc.payments}
			svc := NewCourseService(courses, payments, nil)

			got, paid, err := svc.GetWithPaymentStatus(context.Background(), tc.lookupID, "u1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				assert.False(t, paid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPaid, paid)
			if tc.wantCourse {
				assert.Equal(t, course, got)
			}
		})
	}
}

func TestListEnrolledDeduplicates(t *testing.T) {
	courseA := primitive.NewObjectID()
	courseB := primitive.NewObjectID()

	courses := newFakeCourseRepo()
	courses.listByIDsOut = []*models.Course{
		{ID: courseA, Title: "A"},
		{ID: courseB, Title: "B"},
	}
	// Two payments referencing courseA; one also referencing courseB and a
	// non-id entry.
	payments := &fakePaymentRepo{payments: []*models.Payment{
		{UserID: "u1", DataIDs: []string{courseA.Hex()}},
		{UserID: "u1", DataIDs: []string{courseA.Hex(), courseB.Hex(), "not-an-object-id"}},
		{UserID: "someone-else", DataIDs: []string{primitive.NewObjectID().Hex()}},
	}}
	svc := NewCourseService(courses, payments, nil)

	got, err := svc.ListEnrolled(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	// The aggregate receives each id exactly once.
	assert.Equal(t, []primitive.ObjectID{courseA, courseB}, courses.listByIDsIn)
}

func TestListEnrolledNoPayments(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), &fakePaymentRepo{}, nil)

	got, err := svc.ListEnrolled(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListUsesCache(t *testing.T) {
	courses := newFakeCourseRepo()
	courses.courses = []*models.Course{{ID: primitive.NewObjectID(), Title: "Cached"}}
	listCache := newFakeCache()
	svc := NewCourseService(courses, &fakePaymentRepo{}, listCache)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, listCache.sets)

	// Second call is served from the cache even if the repo changes.
	courses.courses = nil
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, "Cached", second[0].Title)
}

func TestCourseWritesInvalidateListCache(t *testing.T) {
	courses := newFakeCourseRepo()
	listCache := newFakeCache()
	svc := NewCourseService(courses, &fakePaymentRepo{}, listCache)

	_, err := svc.Create(context.Background(), models.CreateCourseRequest{
		OwnerID: "owner1", Title: "New", Price: 10,
	})
	require.NoError(t, err)

	title := "Renamed"
	_, err = svc.Update(context.Background(), primitive.NewObjectID().Hex(), models.UpdateCourseRequest{Title: &title})
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)

	assert.Equal(t, 3, listCache.deletes)
}

func TestUpdateOnlySetsProvidedFields(t *testing.T) {
	courses := newFakeCourseRepo()
	svc := NewCourseService(courses, &fakePaymentRepo{}, nil)

	id := primitive.NewObjectID().Hex()
	price := 19.99
	_, err := svc.Update(context.Background(), id, models.UpdateCourseRequest{Price: &price})
	require.NoError(t, err)

	fields := courses.updated[id]
	assert.Equal(t, map[string]interface{}{"price": 19.99}, fields)
	assert.NotContains(t, fields, "ownerId", "ownership is never reassigned")
}

func TestUpdateMalformedID(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo(), &fakePaymentRepo{}, nil)

	_, err := svc.Update(context.Background(), "bad", models.UpdateCourseRequest{})
	assert.ErrorIs(t, err, database.ErrMalformedID)
}
