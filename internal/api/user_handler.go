package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brainbox-backend-go/internal/core"
	"brainbox-backend-go/internal/models"
)

// UserHandler handles user-profile endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// UpsertUser handles POST /users. The user is keyed by email: repeating the
// request with different fields overwrites the stored profile.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req models.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid user payload: " + err.Error()})
		return
	}

	result, err := h.userService.Upsert(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
