package core

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brainbox-backend-go/internal/db"
	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/cache"
	"brainbox-backend-go/pkg/database"
)

const (
	courseListCacheKey = "courses:all"
	courseListCacheTTL = time.Minute
)

// courseService implements the CourseService interface.
type courseService struct {
	courseRepo  db.CourseRepository
	paymentRepo db.PaymentRepository
	cache       cache.Cache // optional; nil disables course-list caching
}

// NewCourseService creates a new CourseService instance. The cache may be
// nil, in which case course listings always hit the store.
func NewCourseService(courseRepo db.CourseRepository, paymentRepo db.PaymentRepository, listCache cache.Cache) CourseService {
	return &courseService{
		courseRepo:  courseRepo,
		paymentRepo: paymentRepo,
		cache:       listCache,
	}
}

// Create inserts a new course. The owner is fixed at creation.
func (s *courseService) Create(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
	}
	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("store returned unparseable course id %q: %w", id, err)
	}
	course.ID = oid

	s.invalidateListCache(ctx)
	return course, nil
}

// List returns every course, served from cache when one is configured.
func (s *courseService) List(ctx context.Context) ([]*models.Course, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, courseListCacheKey); err == nil && raw != "" {
			var courses []*models.Course
			if err := json.Unmarshal([]byte(raw), &courses); err == nil {
				return courses, nil
			}
			// Undecodable cache entry: fall through to the store.
		}
	}

	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(courses); err == nil {
			// Cache write failures are not fatal to the listing.
			_ = s.cache.Set(ctx, courseListCacheKey, string(raw), courseListCacheTTL)
		}
	}
	return courses, nil
}

// GetWithPaymentStatus fetches a course together with whether userID has
// already paid for it. A payment covers the course when the course id
// appears in its dataIDs.
func (s *courseService) GetWithPaymentStatus(ctx context.Context, courseID, userID string) (*models.Course, bool, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, false, err
	}

	payments, err := s.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load payments for user %q: %w", userID, err)
	}
	for _, p := range payments {
		for _, dataID := range p.DataIDs {
			if dataID == courseID {
				return course, true, nil
			}
		}
	}
	return course, false, nil
}

// ListByOwner returns the courses created by ownerID.
func (s *courseService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Course, error) {
	courses, err := s.courseRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses for owner %q: %w", ownerID, err)
	}
	return courses, nil
}

// ListEnrolled resolves the user's payment history into course records:
// payments -> referenced ids -> deduplicate -> aggregate fetch. Ids that do
// not parse or that reference non-course items simply do not match.
func (s *courseService) ListEnrolled(ctx context.Context, userID string) ([]*models.Course, error) {
	payments, err := s.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for user %q: %w", userID, err)
	}

	seen := make(map[string]struct{})
	var ids []primitive.ObjectID
	for _, p := range payments {
		for _, dataID := range p.DataIDs {
			if _, ok := seen[dataID]; ok {
				continue
			}
			seen[dataID] = struct{}{}
			oid, err := database.ParseID(dataID)
			if err != nil {
				continue
			}
			ids = append(ids, oid)
		}
	}
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}

	courses, err := s.courseRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve enrolled courses for user %q: %w", userID, err)
	}
	return courses, nil
}

// Update sets the provided fields on the course. Ownership is not among the
// updatable fields.
func (s *courseService) Update(ctx context.Context, courseID string, req models.UpdateCourseRequest) (*database.UpdateResult, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ImageURL != nil {
		fields["imageURL"] = *req.ImageURL
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}

	result, err := s.courseRepo.Update(ctx, courseID, fields)
	if err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return result, nil
}

// Delete removes the course.
func (s *courseService) Delete(ctx context.Context, courseID string) (*database.DeleteResult, error) {
	result, err := s.courseRepo.Delete(ctx, courseID)
	if err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return result, nil
}

func (s *courseService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, courseListCacheKey)
}
