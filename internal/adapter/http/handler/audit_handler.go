package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sports-association-admin/internal/core/ports"
	"sports-association-admin/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the administrator-only audit record viewer.
//
// Its wire format differs from the rest of the API on purpose: the viewer
// frontend consumes {logs, page, totalPages, totalLogs} on success and
// {errors: {message}} on failure.
type AuditHandler struct {
	auditSvc ports.AuditQueryService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditSvc ports.AuditQueryService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// List handles GET /api/v1/audit-logs.
//
// Query parameters: page, limit, search, entityType, action, actorEmail,
// from, to, sortOrder (asc|desc, default desc). Unparseable from/to values
// are treated as absent rather than rejected.
func (h *AuditHandler) List(c *gin.Context) {
	params := ports.AuditListParams{
		EntityType: c.Query("entityType"),
		Action:     c.Query("action"),
		ActorEmail: c.Query("actorEmail"),
		Search:     c.Query("search"),
		Page:       intQuery(c, "page", 1),
		PageSize:   intQuery(c, "limit", 20),
		SortAsc:    c.Query("sortOrder") == "asc",
	}
	params.From = timeQuery(c, "from")
	params.To = timeQuery(c, "to")

	result, err := h.auditSvc.List(c.Request.Context(), params)
	if err != nil {
		status := http.StatusInternalServerError
		message := "failed to fetch audit logs"
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status = appErr.HTTPStatus
			message = appErr.Message
		}
		c.JSON(status, gin.H{"errors": gin.H{"message": message}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":       result.Logs,
		"page":       result.Page,
		"totalPages": result.TotalPages,
		"totalLogs":  result.TotalCount,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// timeQuery parses a timestamp query parameter as RFC 3339 or a bare
// date. Anything else is treated as absent.
func timeQuery(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
