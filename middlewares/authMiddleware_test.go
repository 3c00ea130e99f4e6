package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	authUtils "vikasit-jharkhand-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	r.GET("/admin", AuthMiddleware(), AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newTestRouter()

	token, err := authUtils.GenerateAndSetToken("64f1b2c3d4e5f60718293a4b", "citizen")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "64f1b2c3d4e5f60718293a4b")
	assert.Contains(t, w.Body.String(), "citizen")
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newTestRouter()

	token, err := authUtils.GenerateAndSetToken("64f1b2c3d4e5f60718293a4b", "citizen")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_CitizenForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newTestRouter()

	token, err := authUtils.GenerateAndSetToken("64f1b2c3d4e5f60718293a4b", "citizen")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newTestRouter()

	token, err := authUtils.GenerateAndSetToken("64f1b2c3d4e5f60718293a4b", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
