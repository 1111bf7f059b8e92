package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"sports-association-admin/internal/audit"
	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultAuditPageSize = 20
	maxAuditPageSize     = 200
	defaultWriteTimeout  = 5 * time.Second
)

// AuditService is both the audit record writer (the sink behind the
// operation interceptor) and the administrator-only query service.
//
// The write path is strictly failure-isolated: attribution resolution,
// serialization and persistence problems are logged and discarded, never
// surfaced to the mutation that triggered them. Persistence happens on a
// detached goroutine so a slow audit store cannot stall the request path.
type AuditService struct {
	repo         ports.AuditRepository // nil = store disabled, writes become no-ops
	userRepo     ports.UserRepository  // nil = no attribution backfill
	log          zerolog.Logger
	writeTimeout time.Duration
}

// NewAuditService creates a new AuditService. A nil repo silently
// disables persistence on the write path (the query path reports it).
func NewAuditService(repo ports.AuditRepository, userRepo ports.UserRepository, log zerolog.Logger, writeTimeout time.Duration) *AuditService {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &AuditService{repo: repo, userRepo: userRepo, log: log, writeTimeout: writeTimeout}
}

// Write persists one audit record. It implements audit.Recorder and never
// returns control to its caller with an error, by contract.
//
// Actor attribution resolves in priority order: the authenticated
// RequestContext, then the actor candidate planted by pre-authentication
// flows (login, self-registration), then a best-effort identity-store
// lookup by email. The email fallback deliberately trusts the request
// body for pre-auth operations; anyone supplying a known email can be
// attributed, which is a trust boundary to keep in mind when reading
// records for LOGIN/REGISTER-class actions.
func (s *AuditService) Write(ctx context.Context, action, entityType string, entityID *string, changes any) {
	if s == nil {
		return
	}

	record := &domain.AuditLog{
		ID:         uuid.New(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}

	// Resolve everything the request context already carries before
	// detaching: the request may complete while the write is in flight.
	if rc := audit.FromContext(ctx); rc != nil {
		record.ActorID = rc.ActorID
		record.ActorName = rc.ActorName
		record.ActorEmail = rc.ActorEmail
		record.ActorRole = rc.ActorRole
		if rc.IPAddress != "" {
			record.IPAddress = &rc.IPAddress
		}
		if rc.UserAgent != "" {
			record.UserAgent = &rc.UserAgent
		}
	}
	if record.ActorEmail == nil {
		if ac := audit.CandidateFromContext(ctx); ac != nil {
			if ac.Email != "" {
				record.ActorEmail = &ac.Email
			}
			if record.ActorName == nil && ac.Name != "" {
				record.ActorName = &ac.Name
			}
		}
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().Interface("panic", r).Str("action", action).Msg("audit write panicked")
			}
		}()

		wctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
		defer cancel()

		s.backfillActor(wctx, record)
		record.Changes = s.serializeChanges(action, changes)

		s.log.Info().
			Str("action", record.Action).
			Str("entity_type", record.EntityType).
			Msg("audit")

		if s.repo == nil {
			return
		}
		if err := s.repo.Create(wctx, record); err != nil {
			s.log.Warn().Err(err).Str("action", action).Msg("failed to persist audit record")
		}
	}()
}

// backfillActor fills missing attribution from the identity store when an
// email candidate exists. Lookup failures degrade to null attribution.
func (s *AuditService) backfillActor(ctx context.Context, record *domain.AuditLog) {
	if s.userRepo == nil || record.ActorEmail == nil {
		return
	}
	if record.ActorID != nil && record.ActorName != nil && record.ActorRole != nil {
		return
	}

	user, err := s.userRepo.GetByEmail(ctx, *record.ActorEmail)
	if err != nil || user == nil {
		return
	}
	if record.ActorID == nil {
		id := user.ID.String()
		record.ActorID = &id
	}
	if record.ActorName == nil {
		record.ActorName = &user.Name
	}
	if record.ActorRole == nil {
		role := string(user.Role)
		record.ActorRole = &role
	}
}

// serializeChanges renders changes as a stable JSON string. A failure
// drops the changes rather than the record.
func (s *AuditService) serializeChanges(action string, changes any) string {
	if changes == nil {
		return ""
	}
	if str, ok := changes.(string); ok {
		return str
	}
	b, err := json.Marshal(changes)
	if err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("failed to serialize audit changes")
		return ""
	}
	return string(b)
}

// List returns one page of audit records for administrator callers.
// Every other caller receives an authorization error before any query
// executes.
func (s *AuditService) List(ctx context.Context, params ports.AuditListParams) (*ports.AuditPage, error) {
	rc := audit.FromContext(ctx)
	if rc == nil || rc.ActorRole == nil || domain.Role(*rc.ActorRole) != domain.RoleAdmin {
		return nil, apperror.ErrAdminOnly()
	}
	if s.repo == nil {
		return nil, apperror.ErrAuditStoreUnavailable()
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = defaultAuditPageSize
	}
	if params.PageSize > maxAuditPageSize {
		params.PageSize = maxAuditPageSize
	}

	logs, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(params.PageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	return &ports.AuditPage{
		Logs:       logs,
		Page:       params.Page,
		TotalPages: totalPages,
		TotalCount: total,
	}, nil
}
