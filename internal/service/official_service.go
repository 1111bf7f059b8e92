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

// OfficialServiceImpl implements ports.OfficialService over an audited
// official repository.
type OfficialServiceImpl struct {
	repo ports.OfficialRepository
}

func NewOfficialService(repo ports.OfficialRepository) *OfficialServiceImpl {
	return &OfficialServiceImpl{repo: repo}
}

var validOfficialRoles = map[domain.OfficialRole]bool{
	domain.OfficialRoleReferee:       true,
	domain.OfficialRoleUmpire:        true,
	domain.OfficialRoleScorer:        true,
	domain.OfficialRoleMatchDirector: true,
}

func (s *OfficialServiceImpl) Create(ctx context.Context, official *domain.Official) error {
	official.Name = strings.TrimSpace(official.Name)
	if official.Name == "" {
		return apperror.Validation("official name is required")
	}
	if !validOfficialRoles[official.Role] {
		return apperror.Validation("unknown official role")
	}

	if official.ID == uuid.Nil {
		official.ID = uuid.New()
	}
	now := time.Now().UTC()
	official.CreatedAt = now
	official.UpdatedAt = now
	official.Active = true

	return s.repo.Create(ctx, official)
}

func (s *OfficialServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Official, error) {
	official, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if official == nil {
		return nil, apperror.ErrNotFound("official")
	}
	return official, nil
}

func (s *OfficialServiceImpl) Update(ctx context.Context, official *domain.Official) error {
	if !validOfficialRoles[official.Role] {
		return apperror.Validation("unknown official role")
	}
	official.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, official)
}

func (s *OfficialServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *OfficialServiceImpl) List(ctx context.Context) ([]domain.Official, error) {
	return s.repo.List(ctx)
}

// PurgeInactive removes every inactive official in one sweep and returns
// the number removed.
func (s *OfficialServiceImpl) PurgeInactive(ctx context.Context) (int64, error) {
	return s.repo.DeleteInactive(ctx)
}
