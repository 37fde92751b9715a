package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brainbox-backend-go/internal/token"
)

func setupProtectedRouter(ts *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", VerifyToken(ts), func(c *gin.Context) {
		claims, _ := c.Get(ClaimsContextKey)
		mc, _ := claims.(jwt.MapClaims)
		c.JSON(http.StatusOK, gin.H{"uid": mc["uid"]})
	})
	return router
}

func TestVerifyTokenRejections(t *testing.T) {
	ts := token.NewService("test-secret")
	otherTs := token.NewService("other-secret")
	router := setupProtectedRouter(ts)

	foreign, err := otherTs.Issue(map[string]interface{}{"uid": "u1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing_header", header: ""},
		{name: "no_bearer_segment", header: "just-a-token"},
		{name: "wrong_scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "invalid_signature", header: "Bearer " + foreign},
		{name: "garbage_token", header: "Bearer nonsense"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.JSONEq(t, `{"message":"unauthorized access"}`, recorder.Body.String())
		})
	}
}

func TestVerifyTokenPassesClaimsThrough(t *testing.T) {
	ts := token.NewService("test-secret")
	router := setupProtectedRouter(ts)

	signed, err := ts.Issue(map[string]interface{}{"uid": "u1"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"uid":"u1"`)
}
