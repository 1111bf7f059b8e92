package ports

import (
	"context"
	"time"

	"sports-association-admin/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(user *domain.User) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   domain.Role
}

// --- Service Ports (Business Logic) ---

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error) // token, expiry, error
}

// RegisterRequest holds input for account registration.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Phone    *string
}

// ClubService defines club management business logic.
type ClubService interface {
	Create(ctx context.Context, club *domain.Club) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Club, error)
	Update(ctx context.Context, club *domain.Club) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Club, error)
}

// PlayerService defines player management business logic.
type PlayerService interface {
	Create(ctx context.Context, player *domain.Player) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	Update(ctx context.Context, player *domain.Player) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Player, error)
	// DeactivateByClub bulk-deactivates all active players of a club.
	DeactivateByClub(ctx context.Context, clubID uuid.UUID) (int64, error)
}

// OfficialService defines official management business logic.
type OfficialService interface {
	Create(ctx context.Context, official *domain.Official) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Official, error)
	Update(ctx context.Context, official *domain.Official) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Official, error)
	// PurgeInactive bulk-deletes all inactive officials.
	PurgeInactive(ctx context.Context) (int64, error)
}

// UserService defines administrator-facing user management.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.User, error)
}

// AuditQueryService is the administrator-only read path over audit records.
type AuditQueryService interface {
	List(ctx context.Context, params AuditListParams) (*AuditPage, error)
}

// AuditPage is one page of audit records.
type AuditPage struct {
	Logs       []domain.AuditLog
	Page       int
	TotalPages int
	TotalCount int64
}
