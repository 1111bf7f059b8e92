package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sports-association-admin/internal/audit"
	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/internal/core/ports/mocks"
	"sports-association-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() zerolog.Logger {
	return logger.Nop()
}

func TestRequestContext_AttachesCarrier(t *testing.T) {
	router := gin.New()
	router.Use(RequestContext())

	var captured *audit.RequestContext
	router.GET("/probe", func(c *gin.Context) {
		captured = audit.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("User-Agent", "go-test/1.0")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, captured)
	assert.Equal(t, "203.0.113.7", captured.IPAddress)
	assert.Equal(t, "go-test/1.0", captured.UserAgent)
	assert.Nil(t, captured.ActorID)
}

func TestJWTAuth_FillsCarrier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	userID := uuid.New()
	tokenSvc.EXPECT().Validate("good-token").Return(&ports.TokenClaims{
		UserID: userID,
		Name:   "Root Admin",
		Email:  "admin@example.com",
		Role:   domain.RoleAdmin,
	}, nil)

	router := gin.New()
	router.Use(RequestContext(), JWTAuth(tokenSvc, testLogger()))

	var captured *audit.RequestContext
	router.GET("/probe", func(c *gin.Context) {
		captured = audit.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.ActorID)
	assert.Equal(t, userID.String(), *captured.ActorID)
	require.NotNil(t, captured.ActorEmail)
	assert.Equal(t, "admin@example.com", *captured.ActorEmail)
	require.NotNil(t, captured.ActorRole)
	assert.Equal(t, "admin", *captured.ActorRole)
}

func TestJWTAuth_RejectsMissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := gin.New()
	router.Use(RequestContext(), JWTAuth(mocks.NewMockTokenService(ctrl), testLogger()))
	router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		status int
	}{
		{"admin passes", "admin", http.StatusOK},
		{"staff rejected", "staff", http.StatusForbidden},
		{"club_admin rejected", "club_admin", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				role := tt.role
				rc := &audit.RequestContext{ActorRole: &role}
				c.Request = c.Request.WithContext(audit.WithRequestContext(c.Request.Context(), rc))
			}, AdminOnly())
			router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestAdminOnly_NoCarrier(t *testing.T) {
	router := gin.New()
	router.Use(AdminOnly())
	router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
