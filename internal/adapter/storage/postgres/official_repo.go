package postgres

import (
	"context"
	"errors"
	"fmt"

	"sports-association-admin/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OfficialRepo implements ports.OfficialRepository.
type OfficialRepo struct {
	pool Pool
}

// NewOfficialRepo creates a new OfficialRepo.
func NewOfficialRepo(pool Pool) *OfficialRepo {
	return &OfficialRepo{pool: pool}
}

const officialColumns = "id, name, email, role, active, created_at, updated_at"

func scanOfficial(row pgx.Row) (*domain.Official, error) {
	o := &domain.Official{}
	err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Role, &o.Active, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

func (r *OfficialRepo) Create(ctx context.Context, official *domain.Official) error {
	query := `INSERT INTO officials (id, name, email, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		official.ID, official.Name, official.Email, official.Role,
		official.Active, official.CreatedAt, official.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert official: %w", err)
	}
	return nil
}

func (r *OfficialRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Official, error) {
	official, err := scanOfficial(r.pool.QueryRow(ctx,
		"SELECT "+officialColumns+" FROM officials WHERE id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("get official by id: %w", err)
	}
	return official, nil
}

func (r *OfficialRepo) Update(ctx context.Context, official *domain.Official) error {
	query := `UPDATE officials SET name = $2, email = $3, role = $4, active = $5, updated_at = $6
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		official.ID, official.Name, official.Email, official.Role,
		official.Active, official.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update official: %w", err)
	}
	return nil
}

func (r *OfficialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM officials WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete official: %w", err)
	}
	return nil
}

func (r *OfficialRepo) List(ctx context.Context) ([]domain.Official, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+officialColumns+" FROM officials ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list officials: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Official, error) {
		var o domain.Official
		err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Role, &o.Active, &o.CreatedAt, &o.UpdatedAt)
		return o, err
	})
}

// DeleteInactive removes every official marked inactive in one statement.
func (r *OfficialRepo) DeleteInactive(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM officials WHERE active = false")
	if err != nil {
		return 0, fmt.Errorf("bulk delete officials: %w", err)
	}
	return tag.RowsAffected(), nil
}
