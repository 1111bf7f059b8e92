package ports

import (
	"context"
	"time"

	"sports-association-admin/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for user accounts.
// It doubles as the identity store the audit writer consults when
// backfilling actor attribution by email.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.User, error)
}

// ClubRepository defines persistence operations for clubs.
type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Club, error)
	GetByCode(ctx context.Context, code string) (*domain.Club, error)
	Update(ctx context.Context, club *domain.Club) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Club, error)
}

// PlayerRepository defines persistence operations for players.
type PlayerRepository interface {
	Create(ctx context.Context, player *domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Player, error)
	// UpdateActiveByClub flips the active flag for every matching player
	// and reports the affected-row count.
	UpdateActiveByClub(ctx context.Context, clubID uuid.UUID, active bool) (int64, error)
}

// OfficialRepository defines persistence operations for officials.
type OfficialRepository interface {
	Create(ctx context.Context, official *domain.Official) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Official, error)
	Update(ctx context.Context, official *domain.Official) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Official, error)
	// DeleteInactive removes every official marked inactive and reports
	// the affected-row count.
	DeleteInactive(ctx context.Context) (int64, error)
}

// AuditRepository defines persistence for audit records.
type AuditRepository interface {
	Create(ctx context.Context, record *domain.AuditLog) error
	List(ctx context.Context, params AuditListParams) ([]domain.AuditLog, int64, error)
	// DeleteOlderThan removes records created before the cutoff.
	// Used only by the retention pruner.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditListParams holds filters + pagination for listing audit records.
// All filters are optional and logically ANDed.
type AuditListParams struct {
	EntityType string // exact match
	Action     string // exact match
	ActorEmail string // substring match
	Search     string // substring match across actor name/email, entity type/id, action
	From       *time.Time
	To         *time.Time
	Page       int  // 1-indexed
	PageSize   int  // clamped by the service
	SortAsc    bool // by created_at; default is descending
}
