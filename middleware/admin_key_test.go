package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGuardedRouter(adminKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AdminKeyAuth(adminKey), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAdminKeyAuthAcceptsMatchingKey(t *testing.T) {
	router := newGuardedRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Admin-Key", "secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKeyAuthRejectsWrongOrMissingKey(t *testing.T) {
	router := newGuardedRouter("secret")

	for _, key := range []string{"", "wrong", "SECRET"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if key != "" {
			req.Header.Set("X-Admin-Key", key)
		}
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, key)
	}
}

func TestAdminKeyAuthLocksWhenUnconfigured(t *testing.T) {
	router := newGuardedRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("X-Admin-Key", "")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
