package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

const coursesCollection = "courses"

// mongoCourseRepository implements CourseRepository over the document store.
type mongoCourseRepository struct {
	store database.DocumentStore
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(store database.DocumentStore) CourseRepository {
	return &mongoCourseRepository{store: store}
}

// Create inserts a new course and returns its generated id.
func (r *mongoCourseRepository) Create(ctx context.Context, course *models.Course) (string, error) {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now
	return r.store.InsertOne(ctx, coursesCollection, course)
}

// GetByID fetches a course by its opaque id.
func (r *mongoCourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	var course models.Course
	if err := r.store.FindOne(ctx, coursesCollection, bson.M{"_id": oid}, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// List returns every course. The full match set is returned; there is no
// pagination.
func (r *mongoCourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	if err := r.store.FindMany(ctx, coursesCollection, bson.M{}, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// ListByOwner returns the courses created by the given owner.
func (r *mongoCourseRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Course, error) {
	var courses []*models.Course
	if err := r.store.FindMany(ctx, coursesCollection, bson.M{"ownerId": ownerID}, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// ListByIDs resolves course ids into full course records.
func (r *mongoCourseRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error) {
	var courses []*models.Course
	if err := r.store.AggregateMatch(ctx, coursesCollection, ids, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Update sets the given fields on the course. The ownerId field is never
// part of fields; ownership is not reassignable.
func (r *mongoCourseRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*database.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	return r.store.UpdateOne(ctx, coursesCollection, bson.M{"_id": oid}, bson.M{"$set": set})
}

// Delete removes the course with the given id.
func (r *mongoCourseRepository) Delete(ctx context.Context, id string) (*database.DeleteResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.store.DeleteOne(ctx, coursesCollection, bson.M{"_id": oid})
}
