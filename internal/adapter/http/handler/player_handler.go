package handler

import (
	"time"

	"sports-association-admin/internal/adapter/http/dto"
	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/pkg/apperror"
	"sports-association-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayerHandler handles player management endpoints.
type PlayerHandler struct {
	playerSvc ports.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(playerSvc ports.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerSvc: playerSvc}
}

func playerFromRequest(req *dto.PlayerRequest, player *domain.Player) error {
	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return apperror.Validation("invalid club_id")
	}
	player.ClubID = clubID
	player.FirstName = req.FirstName
	player.LastName = req.LastName
	player.Email = req.Email
	player.AadharNumber = req.AadharNumber
	if req.Active != nil {
		player.Active = *req.Active
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return apperror.Validation("invalid date_of_birth, expected YYYY-MM-DD")
		}
		player.DateOfBirth = &dob
	}
	return nil
}

// Create handles POST /api/v1/players.
func (h *PlayerHandler) Create(c *gin.Context) {
	var req dto.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	player := &domain.Player{}
	if err := playerFromRequest(&req, player); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.playerSvc.Create(c.Request.Context(), player); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, player)
}

// Get handles GET /api/v1/players/:id.
func (h *PlayerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	player, err := h.playerSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, player)
}

// Update handles PUT /api/v1/players/:id.
func (h *PlayerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	player, err := h.playerSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := playerFromRequest(&req, player); err != nil {
		response.Error(c, err)
		return
	}
	player.UpdatedAt = time.Now().UTC()

	if err := h.playerSvc.Update(c.Request.Context(), player); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, player)
}

// Delete handles DELETE /api/v1/players/:id.
func (h *PlayerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.playerSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// ListByClub handles GET /api/v1/clubs/:id/players.
func (h *PlayerHandler) ListByClub(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	players, err := h.playerSvc.ListByClub(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, players)
}
