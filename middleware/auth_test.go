package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vd437/quick-cash-control/utils"
)

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/p")
	g.Use(AuthMiddleware(roles...))
	g.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAllowsMatchingRole(t *testing.T) {
	r := protectedRouter("admin")

	token, err := utils.GenerateToken(1, "admin")
	require.NoError(t, err)

	w := get(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAuthMiddlewareAllowsAnyListedRole(t *testing.T) {
	r := protectedRouter("cashier", "admin")

	for _, role := range []string{"cashier", "admin"} {
		token, err := utils.GenerateToken(1, role)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, get(r, token).Code)
	}
}

func TestAuthMiddlewareRejectsWrongRole(t *testing.T) {
	r := protectedRouter("admin")

	token, err := utils.GenerateToken(2, "cashier")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, token).Code)
}

func TestAuthMiddlewareRejectsMissingOrGarbageToken(t *testing.T) {
	r := protectedRouter("admin")

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "not-a-token").Code)
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	r := protectedRouter("admin")

	token, err := utils.GenerateToken(1, "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/p/ping", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
