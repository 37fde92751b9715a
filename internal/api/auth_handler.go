package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brainbox-backend-go/internal/token"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	tokenService *token.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ts *token.Service) *AuthHandler {
	return &AuthHandler{tokenService: ts}
}

// IssueToken handles POST /auth. The request body is embedded as the token
// claims as-is; any JSON object is accepted (no claim schema is enforced).
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "request body must be a JSON object"})
		return
	}

	signed, err := h.tokenService.Issue(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{Token: signed})
}
