package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brainbox-backend-go/internal/models"
	"brainbox-backend-go/pkg/database"
)

// MessageResponse is the single error/info payload shape of this API.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// CourseStatusResponse is the payload of the public course lookup: the
// course plus whether the requesting user already paid for it. Course is
// null when the id is malformed or matches nothing.
type CourseStatusResponse struct {
	Course      *models.Course `json:"course"`
	AlreadyPaid bool           `json:"alreadyPaid"`
}

// PaymentIntentResponse surfaces only the gateway intent's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// respondStoreError maps store-layer errors onto the API's {message} shape.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrMalformedID):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "malformed identifier"})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, MessageResponse{Message: "not found"})
	default:
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: err.Error()})
	}
}
