package audit

import (
	"context"
	"strings"

	"sports-association-admin/internal/core/domain"

	"github.com/rs/zerolog"
)

// auditEntityName is the one entity kind permanently excluded from
// interception, so the audit log never audits itself.
const auditEntityName = "AuditLog"

// Recorder persists one structured audit record. Implementations must
// swallow their own failures: Write has no error return on purpose.
type Recorder interface {
	Write(ctx context.Context, action, entityType string, entityID *string, changes any)
}

// Entity describes one auditable entity kind: its logical name and how to
// extract a primary key from an instance. This is the only per-entity
// capability the interceptor needs; everything else is generic.
type Entity[T any] struct {
	Name string
	Key  func(*T) string
}

// Interceptor observes data-layer mutations and dispatches audit records.
// A nil Interceptor (or one with a nil Recorder) disables auditing; every
// generic operation then degrades to calling the real operation directly.
type Interceptor struct {
	rec Recorder
	log zerolog.Logger
}

// NewInterceptor creates an Interceptor dispatching to rec.
func NewInterceptor(rec Recorder, log zerolog.Logger) *Interceptor {
	return &Interceptor{rec: rec, log: log}
}

func (i *Interceptor) enabled(entity string) bool {
	return i != nil && i.rec != nil && entity != auditEntityName
}

// Action builds the taxonomy string <ENTITY>_<OP>, e.g. CLUB_UPDATE.
func Action(entity string, op string) string {
	return strings.ToUpper(entity) + "_" + op
}

// Create executes the real create operation and, on success, records the
// full scalar state of the result. Audit failures are logged and dropped;
// the result is returned to the caller unchanged either way.
func Create[T any](ctx context.Context, i *Interceptor, e Entity[T], exec func(context.Context) (*T, error)) (*T, error) {
	created, err := exec(ctx)
	if err != nil || created == nil || !i.enabled(e.Name) {
		return created, err
	}

	after, snapErr := Snapshot(created)
	if snapErr != nil {
		i.log.Warn().Err(snapErr).Str("entity", e.Name).Msg("audit: snapshot after create failed")
		return created, nil
	}
	changes := Diff(nil, after)
	if len(changes) == 0 {
		return created, nil
	}
	id := e.Key(created)
	i.rec.Write(ctx, Action(e.Name, string(domain.AuditOpCreate)), e.Name, &id, changes)
	return created, nil
}

// Update captures the entity's current state via fetch, executes the real
// update, and records the field-level difference. An empty diff means no
// auditable change occurred and no record is emitted. A failing before
// fetch degrades to a creation-style diff rather than blocking the update.
func Update[T any](ctx context.Context, i *Interceptor, e Entity[T], id string, fetch func(context.Context) (*T, error), exec func(context.Context) (*T, error)) (*T, error) {
	var before map[string]any
	if i.enabled(e.Name) && fetch != nil {
		prev, err := fetch(ctx)
		if err != nil {
			i.log.Warn().Err(err).Str("entity", e.Name).Str("id", id).Msg("audit: before-state fetch failed")
		} else if prev != nil {
			if before, err = Snapshot(prev); err != nil {
				i.log.Warn().Err(err).Str("entity", e.Name).Msg("audit: snapshot before update failed")
			}
		}
	}

	updated, err := exec(ctx)
	if err != nil {
		return nil, err
	}
	if !i.enabled(e.Name) || updated == nil {
		return updated, nil
	}

	after, snapErr := Snapshot(updated)
	if snapErr != nil {
		i.log.Warn().Err(snapErr).Str("entity", e.Name).Msg("audit: snapshot after update failed")
		return updated, nil
	}
	changes := Diff(before, after)
	if len(changes) == 0 {
		return updated, nil
	}
	entityID := e.Key(updated)
	if entityID == "" {
		entityID = id
	}
	i.rec.Write(ctx, Action(e.Name, string(domain.AuditOpUpdate)), e.Name, &entityID, changes)
	return updated, nil
}

// Delete captures the entity's state before deletion, executes the real
// delete, and always emits a record: a deletion is auditable even when no
// scalar field observably changes.
func Delete[T any](ctx context.Context, i *Interceptor, e Entity[T], id string, fetch func(context.Context) (*T, error), exec func(context.Context) error) error {
	var before map[string]any
	if i.enabled(e.Name) && fetch != nil {
		prev, err := fetch(ctx)
		if err != nil {
			i.log.Warn().Err(err).Str("entity", e.Name).Str("id", id).Msg("audit: before-state fetch failed")
		} else if prev != nil {
			if before, err = Snapshot(prev); err != nil {
				i.log.Warn().Err(err).Str("entity", e.Name).Msg("audit: snapshot before delete failed")
			}
		}
	}

	if err := exec(ctx); err != nil {
		return err
	}
	if !i.enabled(e.Name) {
		return nil
	}

	i.rec.Write(ctx, Action(e.Name, string(domain.AuditOpDelete)), e.Name, &id, Diff(before, nil))
	return nil
}

// UpdateMany executes a bulk update and records a single summary: the
// filter criteria and the affected-row count. No per-row before/after is
// captured for bulk operations.
func UpdateMany(ctx context.Context, i *Interceptor, entity string, filter map[string]any, exec func(context.Context) (int64, error)) (int64, error) {
	return bulk(ctx, i, entity, string(domain.AuditOpUpdateMany), filter, exec)
}

// DeleteMany executes a bulk delete and records a single summary record.
func DeleteMany(ctx context.Context, i *Interceptor, entity string, filter map[string]any, exec func(context.Context) (int64, error)) (int64, error) {
	return bulk(ctx, i, entity, string(domain.AuditOpDeleteMany), filter, exec)
}

func bulk(ctx context.Context, i *Interceptor, entity, op string, filter map[string]any, exec func(context.Context) (int64, error)) (int64, error) {
	count, err := exec(ctx)
	if err != nil || !i.enabled(entity) {
		return count, err
	}

	summary := map[string]any{
		"filter": filter,
		"count":  Change{Old: nil, New: count},
	}
	i.rec.Write(ctx, Action(entity, op), entity, nil, summary)
	return count, nil
}
