package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository. The table is append-only;
// the only delete path is the retention pruner.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create inserts one audit record.
func (r *AuditRepo) Create(ctx context.Context, record *domain.AuditLog) error {
	query := `INSERT INTO audit_logs (id, action, entity_type, entity_id, actor_id, actor_name, actor_email, actor_role, ip_address, user_agent, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		record.ID, record.Action, record.EntityType, record.EntityID,
		record.ActorID, record.ActorName, record.ActorEmail, record.ActorRole,
		record.IPAddress, record.UserAgent, record.Changes, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List returns one page of records matching params plus the total count
// of matches across all pages.
func (r *AuditRepo) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	where, args := buildAuditFilter(params)

	var total int64
	countQuery := "SELECT COUNT(*) FROM audit_logs" + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	order := "DESC"
	if params.SortAsc {
		order = "ASC"
	}
	query := fmt.Sprintf(
		`SELECT id, action, entity_type, entity_id, actor_id, actor_name, actor_email, actor_role, ip_address, user_agent, changes, created_at
		FROM audit_logs%s ORDER BY created_at %s LIMIT $%d OFFSET $%d`,
		where, order, len(args)+1, len(args)+2,
	)
	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query audit logs: %w", err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditLog, error) {
		var l domain.AuditLog
		err := row.Scan(
			&l.ID, &l.Action, &l.EntityType, &l.EntityID,
			&l.ActorID, &l.ActorName, &l.ActorEmail, &l.ActorRole,
			&l.IPAddress, &l.UserAgent, &l.Changes, &l.CreatedAt,
		)
		return l, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan audit logs: %w", err)
	}

	return logs, total, nil
}

// DeleteOlderThan removes records created before the cutoff and reports
// how many were removed.
func (r *AuditRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM audit_logs WHERE created_at < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune audit logs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// buildAuditFilter renders the WHERE clause shared by the count and page
// queries. Filters are ANDed; absent filters contribute nothing.
func buildAuditFilter(params ports.AuditListParams) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if params.EntityType != "" {
		add("entity_type = $%d", params.EntityType)
	}
	if params.Action != "" {
		add("action = $%d", params.Action)
	}
	if params.ActorEmail != "" {
		add("actor_email ILIKE $%d", "%"+params.ActorEmail+"%")
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(actor_name ILIKE $%d OR actor_email ILIKE $%d OR entity_type ILIKE $%d OR entity_id ILIKE $%d OR action ILIKE $%d)",
			n, n, n, n, n,
		))
	}
	if params.From != nil {
		add("created_at >= $%d", *params.From)
	}
	if params.To != nil {
		add("created_at <= $%d", *params.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
