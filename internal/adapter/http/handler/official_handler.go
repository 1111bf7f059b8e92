package handler

import (
	"time"

	"sports-association-admin/internal/adapter/http/dto"
	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/pkg/apperror"
	"sports-association-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// OfficialHandler handles official management endpoints.
type OfficialHandler struct {
	officialSvc ports.OfficialService
}

// NewOfficialHandler creates a new OfficialHandler.
func NewOfficialHandler(officialSvc ports.OfficialService) *OfficialHandler {
	return &OfficialHandler{officialSvc: officialSvc}
}

// Create handles POST /api/v1/officials.
func (h *OfficialHandler) Create(c *gin.Context) {
	var req dto.OfficialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	official := &domain.Official{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.OfficialRole(req.Role),
	}
	if err := h.officialSvc.Create(c.Request.Context(), official); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, official)
}

// Get handles GET /api/v1/officials/:id.
func (h *OfficialHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	official, err := h.officialSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, official)
}

// Update handles PUT /api/v1/officials/:id.
func (h *OfficialHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.OfficialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	official, err := h.officialSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	official.Name = req.Name
	official.Email = req.Email
	official.Role = domain.OfficialRole(req.Role)
	if req.Active != nil {
		official.Active = *req.Active
	}
	official.UpdatedAt = time.Now().UTC()

	if err := h.officialSvc.Update(c.Request.Context(), official); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, official)
}

// Delete handles DELETE /api/v1/officials/:id.
func (h *OfficialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.officialSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// List handles GET /api/v1/officials.
func (h *OfficialHandler) List(c *gin.Context) {
	officials, err := h.officialSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, officials)
}

// PurgeInactive handles POST /api/v1/officials/purge-inactive.
// Bulk-deletes all inactive officials.
func (h *OfficialHandler) PurgeInactive(c *gin.Context) {
	count, err := h.officialSvc.PurgeInactive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BulkResultResponse{Count: count})
}
