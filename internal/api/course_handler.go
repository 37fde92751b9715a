package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brainbox-backend-go/internal/core"
	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	courseService core.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(cs core.CourseService) *CourseHandler {
	return &CourseHandler{courseService: cs}
}

// ListCourses handles GET /courses: every course, unpaginated.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourseWithStatus handles GET /courses/:id/:uid. A malformed or unknown
// course id does not error: the response is 200 with a null course and
// alreadyPaid=false, so the client cannot tell "absent" from "bad id". This
// matches the public API contract.
func (h *CourseHandler) GetCourseWithStatus(c *gin.Context) {
	courseID := c.Param("id")
	userID := c.Param("uid")

	course, alreadyPaid, err := h.courseService.GetWithPaymentStatus(c.Request.Context(), courseID, userID)
	if err != nil {
		if errors.Is(err, database.ErrMalformedID) || errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusOK, CourseStatusResponse{Course: nil, AlreadyPaid: false})
			return
		}
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, CourseStatusResponse{Course: course, AlreadyPaid: alreadyPaid})
}

// ListMyCourses handles GET /my-courses/:uid: courses owned by the user.
func (h *CourseHandler) ListMyCourses(c *gin.Context) {
	courses, err := h.courseService.ListByOwner(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	c.JSON(http.StatusOK, courses)
}

// ListEnrolledCourses handles GET /enrolled-courses/:uid: the set of
// courses referenced by the user's payments, without duplicates.
func (h *CourseHandler) ListEnrolledCourses(c *gin.Context) {
	courses, err := h.courseService.ListEnrolled(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// CreateCourse handles POST /courses. The owner is taken from the request
// and fixed for the course's lifetime.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid course payload: " + err.Error()})
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse handles PATCH /courses/:id.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req models.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid course payload: " + err.Error()})
		return
	}

	result, err := h.courseService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteCourse handles DELETE /courses/:id.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	result, err := h.courseService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
