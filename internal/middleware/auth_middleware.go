package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brainbox-backend-go/internal/token"
)

// ClaimsContextKey is the gin context key under which verified token claims
// are stored for downstream handlers.
const ClaimsContextKey = "claims"

// unauthorizedBody is the single auth error payload; every auth failure
// looks the same to the client.
var unauthorizedBody = gin.H{"message": "unauthorized access"}

// VerifyToken returns a gin middleware that gates a route on a valid bearer
// token. It rejects requests with a missing Authorization header, a missing
// bearer segment, a bad signature, or an expired token, all with the same
// 401 response. On success the decoded claims are attached to the context.
func VerifyToken(tokenService *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		claims, err := tokenService.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}
