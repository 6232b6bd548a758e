//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"workshop-admin-api/internal/handler/middleware"
	"workshop-admin-api/internal/pkg/config"
	"workshop-admin-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     []string{"https://dashboard.example.com"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	router := newCORSRouter()

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	httptest.AssertHeaders(t, w, map[string]string{
		"Access-Control-Allow-Origin":      "https://dashboard.example.com",
		"Access-Control-Allow-Credentials": "true",
	})
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	router := newCORSRouter()

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
