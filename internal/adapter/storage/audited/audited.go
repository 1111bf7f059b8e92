// Package audited wraps the persistence repositories with the generic
// audit interceptor. Call sites keep talking to the ports interfaces and
// never know auditing exists; each wrapper method is a single dispatch
// into the generic interception core.
package audited

import (
	"context"

	"sports-association-admin/internal/audit"
	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"

	"github.com/google/uuid"
)

var (
	clubEntity = audit.Entity[domain.Club]{
		Name: "Club",
		Key:  func(c *domain.Club) string { return c.ID.String() },
	}
	playerEntity = audit.Entity[domain.Player]{
		Name: "Player",
		Key:  func(p *domain.Player) string { return p.ID.String() },
	}
	officialEntity = audit.Entity[domain.Official]{
		Name: "Official",
		Key:  func(o *domain.Official) string { return o.ID.String() },
	}
	userEntity = audit.Entity[domain.User]{
		Name: "User",
		Key:  func(u *domain.User) string { return u.ID.String() },
	}
)

// ClubRepository audits every mutation of clubs.
type ClubRepository struct {
	next ports.ClubRepository
	ic   *audit.Interceptor
}

// NewClubRepository wraps next with audit interception.
func NewClubRepository(next ports.ClubRepository, ic *audit.Interceptor) *ClubRepository {
	return &ClubRepository{next: next, ic: ic}
}

func (r *ClubRepository) Create(ctx context.Context, club *domain.Club) error {
	_, err := audit.Create(ctx, r.ic, clubEntity, func(ctx context.Context) (*domain.Club, error) {
		if err := r.next.Create(ctx, club); err != nil {
			return nil, err
		}
		return club, nil
	})
	return err
}

func (r *ClubRepository) Update(ctx context.Context, club *domain.Club) error {
	_, err := audit.Update(ctx, r.ic, clubEntity, club.ID.String(),
		func(ctx context.Context) (*domain.Club, error) { return r.next.GetByID(ctx, club.ID) },
		func(ctx context.Context) (*domain.Club, error) {
			if err := r.next.Update(ctx, club); err != nil {
				return nil, err
			}
			return club, nil
		})
	return err
}

func (r *ClubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return audit.Delete(ctx, r.ic, clubEntity, id.String(),
		func(ctx context.Context) (*domain.Club, error) { return r.next.GetByID(ctx, id) },
		func(ctx context.Context) error { return r.next.Delete(ctx, id) })
}

func (r *ClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	return r.next.GetByID(ctx, id)
}

func (r *ClubRepository) GetByCode(ctx context.Context, code string) (*domain.Club, error) {
	return r.next.GetByCode(ctx, code)
}

func (r *ClubRepository) List(ctx context.Context) ([]domain.Club, error) {
	return r.next.List(ctx)
}

// PlayerRepository audits every mutation of players.
type PlayerRepository struct {
	next ports.PlayerRepository
	ic   *audit.Interceptor
}

// NewPlayerRepository wraps next with audit interception.
func NewPlayerRepository(next ports.PlayerRepository, ic *audit.Interceptor) *PlayerRepository {
	return &PlayerRepository{next: next, ic: ic}
}

func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	_, err := audit.Create(ctx, r.ic, playerEntity, func(ctx context.Context) (*domain.Player, error) {
		if err := r.next.Create(ctx, player); err != nil {
			return nil, err
		}
		return player, nil
	})
	return err
}

func (r *PlayerRepository) Update(ctx context.Context, player *domain.Player) error {
	_, err := audit.Update(ctx, r.ic, playerEntity, player.ID.String(),
		func(ctx context.Context) (*domain.Player, error) { return r.next.GetByID(ctx, player.ID) },
		func(ctx context.Context) (*domain.Player, error) {
			if err := r.next.Update(ctx, player); err != nil {
				return nil, err
			}
			return player, nil
		})
	return err
}

func (r *PlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return audit.Delete(ctx, r.ic, playerEntity, id.String(),
		func(ctx context.Context) (*domain.Player, error) { return r.next.GetByID(ctx, id) },
		func(ctx context.Context) error { return r.next.Delete(ctx, id) })
}

func (r *PlayerRepository) UpdateActiveByClub(ctx context.Context, clubID uuid.UUID, active bool) (int64, error) {
	filter := map[string]any{"club_id": clubID.String(), "active": !active}
	return audit.UpdateMany(ctx, r.ic, playerEntity.Name, filter,
		func(ctx context.Context) (int64, error) { return r.next.UpdateActiveByClub(ctx, clubID, active) })
}

func (r *PlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	return r.next.GetByID(ctx, id)
}

func (r *PlayerRepository) ListByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Player, error) {
	return r.next.ListByClub(ctx, clubID)
}

// OfficialRepository audits every mutation of officials.
type OfficialRepository struct {
	next ports.OfficialRepository
	ic   *audit.Interceptor
}

// NewOfficialRepository wraps next with audit interception.
func NewOfficialRepository(next ports.OfficialRepository, ic *audit.Interceptor) *OfficialRepository {
	return &OfficialRepository{next: next, ic: ic}
}

func (r *OfficialRepository) Create(ctx context.Context, official *domain.Official) error {
	_, err := audit.Create(ctx, r.ic, officialEntity, func(ctx context.Context) (*domain.Official, error) {
		if err := r.next.Create(ctx, official); err != nil {
			return nil, err
		}
		return official, nil
	})
	return err
}

func (r *OfficialRepository) Update(ctx context.Context, official *domain.Official) error {
	_, err := audit.Update(ctx, r.ic, officialEntity, official.ID.String(),
		func(ctx context.Context) (*domain.Official, error) { return r.next.GetByID(ctx, official.ID) },
		func(ctx context.Context) (*domain.Official, error) {
			if err := r.next.Update(ctx, official); err != nil {
				return nil, err
			}
			return official, nil
		})
	return err
}

func (r *OfficialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return audit.Delete(ctx, r.ic, officialEntity, id.String(),
		func(ctx context.Context) (*domain.Official, error) { return r.next.GetByID(ctx, id) },
		func(ctx context.Context) error { return r.next.Delete(ctx, id) })
}

func (r *OfficialRepository) DeleteInactive(ctx context.Context) (int64, error) {
	filter := map[string]any{"active": false}
	return audit.DeleteMany(ctx, r.ic, officialEntity.Name, filter,
		func(ctx context.Context) (int64, error) { return r.next.DeleteInactive(ctx) })
}

func (r *OfficialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Official, error) {
	return r.next.GetByID(ctx, id)
}

func (r *OfficialRepository) List(ctx context.Context) ([]domain.Official, error) {
	return r.next.List(ctx)
}

// UserRepository audits every mutation of user accounts.
type UserRepository struct {
	next ports.UserRepository
	ic   *audit.Interceptor
}

// NewUserRepository wraps next with audit interception.
func NewUserRepository(next ports.UserRepository, ic *audit.Interceptor) *UserRepository {
	return &UserRepository{next: next, ic: ic}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := audit.Create(ctx, r.ic, userEntity, func(ctx context.Context) (*domain.User, error) {
		if err := r.next.Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	})
	return err
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	_, err := audit.Update(ctx, r.ic, userEntity, user.ID.String(),
		func(ctx context.Context) (*domain.User, error) { return r.next.GetByID(ctx, user.ID) },
		func(ctx context.Context) (*domain.User, error) {
			if err := r.next.Update(ctx, user); err != nil {
				return nil, err
			}
			return user, nil
		})
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return audit.Delete(ctx, r.ic, userEntity, id.String(),
		func(ctx context.Context) (*domain.User, error) { return r.next.GetByID(ctx, id) },
		func(ctx context.Context) error { return r.next.Delete(ctx, id) })
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.next.GetByID(ctx, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.next.GetByEmail(ctx, email)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.next.List(ctx)
}
