package service

import (
	"context"
	"strings"
	"time"

	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/pkg/apperror"

	"github.com/google/uuid"
)

// PlayerServiceImpl implements ports.PlayerService over an audited
// player repository.
type PlayerServiceImpl struct {
	repo     ports.PlayerRepository
	clubRepo ports.ClubRepository
}

func NewPlayerService(repo ports.PlayerRepository, clubRepo ports.ClubRepository) *PlayerServiceImpl {
	return &PlayerServiceImpl{repo: repo, clubRepo: clubRepo}
}

func (s *PlayerServiceImpl) Create(ctx context.Context, player *domain.Player) error {
	player.FirstName = strings.TrimSpace(player.FirstName)
	player.LastName = strings.TrimSpace(player.LastName)
	if player.FirstName == "" || player.LastName == "" {
		return apperror.Validation("player first and last name are required")
	}

	club, err := s.clubRepo.GetByID(ctx, player.ClubID)
	if err != nil {
		return err
	}
	if club == nil {
		return apperror.ErrNotFound("club")
	}

	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	now := time.Now().UTC()
	player.CreatedAt = now
	player.UpdatedAt = now
	player.Active = true

	return s.repo.Create(ctx, player)
}

func (s *PlayerServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}
	return player, nil
}

func (s *PlayerServiceImpl) Update(ctx context.Context, player *domain.Player) error {
	player.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, player)
}

func (s *PlayerServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *PlayerServiceImpl) ListByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Player, error) {
	return s.repo.ListByClub(ctx, clubID)
}

// DeactivateByClub bulk-deactivates every player of a club, e.g. when the
// club loses its affiliation. Returns the number of affected players.
func (s *PlayerServiceImpl) DeactivateByClub(ctx context.Context, clubID uuid.UUID) (int64, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return 0, err
	}
	if club == nil {
		return 0, apperror.ErrNotFound("club")
	}
	return s.repo.UpdateActiveByClub(ctx, clubID, false)
}
