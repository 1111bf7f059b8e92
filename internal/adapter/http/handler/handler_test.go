package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sports-association-admin/internal/audit"
	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/internal/core/ports/mocks"
	"sports-association-admin/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mocks.NewMockAuthService(ctrl)
	var candidate *audit.ActorCandidate
	authSvc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ports.RegisterRequest) (*domain.User, error) {
			candidate = audit.CandidateFromContext(ctx)
			return &domain.User{
				ID:        uuid.New(),
				Name:      req.Name,
				Email:     req.Email,
				Role:      domain.RoleStaff,
				CreatedAt: time.Now().UTC(),
			}, nil
		})

	router := gin.New()
	router.POST("/register", NewAuthHandler(authSvc).Register)

	w := performJSON(router, http.MethodPost, "/register", gin.H{
		"name":     "New Staff",
		"email":    "new@example.com",
		"password": "longenough",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, candidate)
	assert.Equal(t, "new@example.com", candidate.Email)
	assert.Equal(t, "New Staff", candidate.Name)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := gin.New()
	router.POST("/register", NewAuthHandler(mocks.NewMockAuthService(ctrl)).Register)

	w := performJSON(router, http.MethodPost, "/register", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditHandler_List_SuccessShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditSvc := mocks.NewMockAuditQueryService(ctrl)
	auditSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ports.AuditListParams) (*ports.AuditPage, error) {
			assert.Equal(t, "Club", params.EntityType)
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 50, params.PageSize)
			assert.True(t, params.SortAsc)
			require.NotNil(t, params.From)
			assert.Equal(t, 2026, params.From.Year())
			assert.Nil(t, params.To) // garbage value treated as absent
			return &ports.AuditPage{
				Logs:       []domain.AuditLog{{ID: uuid.New(), Action: "CLUB_CREATE", EntityType: "Club"}},
				Page:       2,
				TotalPages: 3,
				TotalCount: 101,
			}, nil
		})

	router := gin.New()
	router.GET("/audit-logs", NewAuditHandler(auditSvc).List)

	req := httptest.NewRequest(http.MethodGet,
		"/audit-logs?entityType=Club&page=2&limit=50&sortOrder=asc&from=2026-01-15&to=yesterday", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "logs")
	assert.Contains(t, body, "page")
	assert.Contains(t, body, "totalPages")
	assert.Contains(t, body, "totalLogs")
	assert.Equal(t, "101", string(body["totalLogs"]))
}

func TestAuditHandler_List_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditSvc := mocks.NewMockAuditQueryService(ctrl)
	auditSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrAdminOnly())

	router := gin.New()
	router.GET("/audit-logs", NewAuditHandler(auditSvc).List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit-logs", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body struct {
		Errors struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Errors.Message)
}

func TestAuditHandler_List_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auditSvc := mocks.NewMockAuditQueryService(ctrl)
	auditSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrAuditStoreUnavailable())

	router := gin.New()
	router.GET("/audit-logs", NewAuditHandler(auditSvc).List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit-logs", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "errors")
}

func TestClubHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clubSvc := mocks.NewMockClubService(ctrl)
	clubSvc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, club *domain.Club) error {
			assert.Equal(t, "Lions FC", club.Name)
			assert.Equal(t, "LIONS", club.Code)
			club.ID = uuid.New()
			return nil
		})

	router := gin.New()
	router.POST("/clubs", NewClubHandler(clubSvc, mocks.NewMockPlayerService(ctrl)).Create)

	w := performJSON(router, http.MethodPost, "/clubs", gin.H{
		"name": "Lions FC",
		"code": "lions",
		"city": "Pune",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestClubHandler_DeactivatePlayers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clubID := uuid.New()
	playerSvc := mocks.NewMockPlayerService(ctrl)
	playerSvc.EXPECT().
		DeactivateByClub(gomock.Any(), clubID).
		Return(int64(7), nil)

	router := gin.New()
	router.POST("/clubs/:id/deactivate-players",
		NewClubHandler(mocks.NewMockClubService(ctrl), playerSvc).DeactivatePlayers)

	w := performJSON(router, http.MethodPost, "/clubs/"+clubID.String()+"/deactivate-players", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":7`)
}
