package handler

import (
	"strings"
	"time"

	"sports-association-admin/internal/adapter/http/dto"
	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/pkg/apperror"
	"sports-association-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClubHandler handles club management endpoints.
type ClubHandler struct {
	clubSvc   ports.ClubService
	playerSvc ports.PlayerService
}

// NewClubHandler creates a new ClubHandler.
func NewClubHandler(clubSvc ports.ClubService, playerSvc ports.PlayerService) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc, playerSvc: playerSvc}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/v1/clubs.
func (h *ClubHandler) Create(c *gin.Context) {
	var req dto.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	club := &domain.Club{
		Name:        req.Name,
		Code:        strings.ToUpper(req.Code),
		City:        req.City,
		FoundedYear: req.FoundedYear,
	}
	if err := h.clubSvc.Create(c.Request.Context(), club); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, club)
}

// Get handles GET /api/v1/clubs/:id.
func (h *ClubHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	club, err := h.clubSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, club)
}

// Update handles PUT /api/v1/clubs/:id.
func (h *ClubHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	club, err := h.clubSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	club.Name = req.Name
	club.Code = strings.ToUpper(req.Code)
	club.City = req.City
	club.FoundedYear = req.FoundedYear
	if req.Active != nil {
		club.Active = *req.Active
	}
	club.UpdatedAt = time.Now().UTC()

	if err := h.clubSvc.Update(c.Request.Context(), club); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, club)
}

// Delete handles DELETE /api/v1/clubs/:id.
func (h *ClubHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.clubSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// List handles GET /api/v1/clubs.
func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.clubSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, clubs)
}

// DeactivatePlayers handles POST /api/v1/clubs/:id/deactivate-players.
// Bulk-deactivates every active player of the club.
func (h *ClubHandler) DeactivatePlayers(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	count, err := h.playerSvc.DeactivateByClub(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BulkResultResponse{Count: count})
}
