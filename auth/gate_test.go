package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	tokens := NewTokenService("test-secret")
	gate := NewGate(tokens)

	valid, err := tokens.Issue(9, "user@example.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + valid, wantStatus: http.StatusUnauthorized},
		{name: "bearer without token", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer garbage", wantStatus: http.StatusForbidden},
		{name: "valid token", header: "Bearer " + valid, wantStatus: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := gate.Authenticate(tt.header)
			if tt.wantStatus == 0 {
				require.True(t, res.Authorized())
				assert.Equal(t, uint(9), res.Claims.UserID)
				assert.Equal(t, "user@example.com", res.Claims.Email)
				return
			}
			require.False(t, res.Authorized())
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.NotEmpty(t, res.Reason)
		})
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := NewTokenService("test-secret")
	gate := NewGate(tokens)

	router := gin.New()
	router.GET("/protected", gate.Middleware(), func(c *gin.Context) {
		claims := c.MustGet(ContextClaimsKey).(*Claims)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired-style invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("valid token reaches handler with claims", func(t *testing.T) {
		token, err := tokens.Issue(3, "user@example.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user@example.com")
	})
}
