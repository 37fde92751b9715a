package core

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

// Hand-written fakes for the repository and infrastructure interfaces the
// services depend on.

type fakeUserRepo struct {
	upserted []*models.User
	result   *database.UpsertResult
	err      error
}

func (f *fakeUserRepo) Upsert(ctx context.Context, user *models.User) (*database.UpsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.upserted = append(f.upserted, user)
	if f.result != nil {
		return f.result, nil
	}
	return &database.UpsertResult{MatchedCount: 0, ModifiedCount: 0, UpsertedID: primitive.NewObjectID().Hex()}, nil
}

type fakeCourseRepo struct {
	courses      []*models.Course
	byID         map[string]*models.Course
	created      []*models.Course
	updated      map[string]map[string]interface{}
	deleted      []string
	listByIDsIn  []primitive.ObjectID
	listByIDsOut []*models.Course
	err          error
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		byID:    map[string]*models.Course{},
		updated: map[string]map[string]interface{}{},
	}
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, course)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := database.ParseID(id); err != nil {
		return nil, err
	}
	course, ok := f.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return course, nil
}

func (f *fakeCourseRepo) List(ctx context.Context) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func (f *fakeCourseRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Course
	for _, course := range f.courses {
		if course.OwnerID == ownerID {
			out = append(out, course)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.listByIDsIn = ids
	return f.listByIDsOut, nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*database.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := database.ParseID(id); err != nil {
		return nil, err
	}
	f.updated[id] = fields
	return &database.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id string) (*database.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, err := database.ParseID(id); err != nil {
		return nil, err
	}
	f.deleted = append(f.deleted, id)
	return &database.DeleteResult{DeletedCount: 1}, nil
}

type fakePaymentRepo struct {
	payments  []*models.Payment
	inserted  []*models.Payment
	insertErr error
	listErr   error
}

func (f *fakePaymentRepo) Insert(ctx context.Context, payment *models.Payment) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	payment.CreatedAt = time.Now().UTC()
	f.inserted = append(f.inserted, payment)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakePaymentRepo) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Payment
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByUserID(ctx context.Context, userID string) ([]*models.Payment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCartRepo struct {
	deletedIDs []primitive.ObjectID
	err        error
}

func (f *fakeCartRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deletedIDs = append(f.deletedIDs, ids...)
	return int64(len(ids)), nil
}

type fakeBookingRepo struct {
	paidIDs []primitive.ObjectID
	err     error
}

func (f *fakeBookingRepo) MarkPaidByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.paidIDs = append(f.paidIDs, ids...)
	return int64(len(ids)), nil
}

// fakeTxRunner runs the transaction body inline.
type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeCache struct {
	mu      sync.Mutex
	data    map[string]string
	sets    int
	deletes int
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.data[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.data[key] = value.(string)
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.data, key)
	return nil
}

type fakeQueue struct {
	published [][]byte
	queues    []string
	err       error
}

func (f *fakeQueue) Publish(queueName string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.queues = append(f.queues, queueName)
	f.published = append(f.published, body)
	return nil
}

func (f *fakeQueue) Close() error { return nil }

type fakeMailer struct {
	recipients []string
	subjects   []string
	err        error
}

func (f *fakeMailer) Send(recipient, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.recipients = append(f.recipients, recipient)
	f.subjects = append(f.subjects, subject)
	return nil
}
