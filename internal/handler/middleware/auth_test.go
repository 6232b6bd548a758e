//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"workshop-admin-api/internal/handler/middleware"
	"workshop-admin-api/internal/pkg/cookie"
	"workshop-admin-api/internal/pkg/jwt"
	"workshop-admin-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	svc    *jwt.Service
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.svc = jwt.NewService("test-secret", time.Hour)
	auth := middleware.NewAuthMiddleware(s.svc)

	s.router = gin.New()
	s.router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": id.String(), "role": role})
	})
	s.router.DELETE("/admin-only", auth.RequireAuth(), auth.RequireRoleAtLeast(middleware.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(role string) string {
	token, err := s.svc.GenerateToken(uuid.New(), role)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestBearerTokenAccepted() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, s.token(middleware.RoleViewer))

	s.Require().Equal(http.StatusOK, w.Code)
	var body struct {
		UserID string `json:"userId"`
		Role   string `json:"role"`
	}
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), w.Body, &body))
	s.Equal(middleware.RoleViewer, body.Role)
	s.NotEmpty(body.UserID)
}

func (s *AuthMiddlewareTestSuite) TestSessionCookieAccepted() {
	cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.token(middleware.RoleOperator)}}

	w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/me", nil, cookies, "")

	s.Equal(http.StatusOK, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestMissingTokenRejected() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestMalformedTokenRejected() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "not-a-jwt")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestRoleBelowMinimumForbidden() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin-only", nil, s.token(middleware.RoleOperator))

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestAdminPassesRoleGate() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin-only", nil, s.token(middleware.RoleAdmin))

	s.Equal(http.StatusNoContent, w.Code)
}
