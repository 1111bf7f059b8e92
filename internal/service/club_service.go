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

// ClubServiceImpl implements ports.ClubService. It expects an audited
// repository so every mutation is recorded.
type ClubServiceImpl struct {
	repo ports.ClubRepository
}

func NewClubService(repo ports.ClubRepository) *ClubServiceImpl {
	return &ClubServiceImpl{repo: repo}
}

func (s *ClubServiceImpl) Create(ctx context.Context, club *domain.Club) error {
	club.Name = strings.TrimSpace(club.Name)
	club.Code = strings.ToUpper(strings.TrimSpace(club.Code))
	if club.Name == "" || club.Code == "" {
		return apperror.Validation("club name and code are required")
	}

	if existing, err := s.repo.GetByCode(ctx, club.Code); err == nil && existing != nil {
		return apperror.ErrDuplicate("club")
	}

	if club.ID == uuid.Nil {
		club.ID = uuid.New()
	}
	now := time.Now().UTC()
	club.CreatedAt = now
	club.UpdatedAt = now
	club.Active = true

	return s.repo.Create(ctx, club)
}

func (s *ClubServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	club, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, apperror.ErrNotFound("club")
	}
	return club, nil
}

func (s *ClubServiceImpl) Update(ctx context.Context, club *domain.Club) error {
	club.Name = strings.TrimSpace(club.Name)
	if club.Name == "" {
		return apperror.Validation("club name is required")
	}
	club.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, club)
}

func (s *ClubServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ClubServiceImpl) List(ctx context.Context) ([]domain.Club, error) {
	return s.repo.List(ctx)
}
