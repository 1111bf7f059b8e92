package postgres

import (
	"context"
	"errors"
	"fmt"

	"sports-association-admin/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ClubRepo implements ports.ClubRepository.
type ClubRepo struct {
	pool Pool
}

// NewClubRepo creates a new ClubRepo.
func NewClubRepo(pool Pool) *ClubRepo {
	return &ClubRepo{pool: pool}
}

const clubColumns = "id, name, code, city, founded_year, active, created_at, updated_at"

func scanClub(row pgx.Row) (*domain.Club, error) {
	c := &domain.Club{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Code, &c.City,
		&c.FoundedYear, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *ClubRepo) Create(ctx context.Context, club *domain.Club) error {
	query := `INSERT INTO clubs (id, name, code, city, founded_year, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		club.ID, club.Name, club.Code, club.City,
		club.FoundedYear, club.Active, club.CreatedAt, club.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert club: %w", err)
	}
	return nil
}

func (r *ClubRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Club, error) {
	club, err := scanClub(r.pool.QueryRow(ctx,
		"SELECT "+clubColumns+" FROM clubs WHERE id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("get club by id: %w", err)
	}
	return club, nil
}

func (r *ClubRepo) GetByCode(ctx context.Context, code string) (*domain.Club, error) {
	club, err := scanClub(r.pool.QueryRow(ctx,
		"SELECT "+clubColumns+" FROM clubs WHERE code = $1", code))
	if err != nil {
		return nil, fmt.Errorf("get club by code: %w", err)
	}
	return club, nil
}

func (r *ClubRepo) Update(ctx context.Context, club *domain.Club) error {
	query := `UPDATE clubs SET name = $2, code = $3, city = $4, founded_year = $5, active = $6, updated_at = $7
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		club.ID, club.Name, club.Code, club.City,
		club.FoundedYear, club.Active, club.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update club: %w", err)
	}
	return nil
}

func (r *ClubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM clubs WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete club: %w", err)
	}
	return nil
}

func (r *ClubRepo) List(ctx context.Context) ([]domain.Club, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+clubColumns+" FROM clubs ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Club, error) {
		var c domain.Club
		err := row.Scan(
			&c.ID, &c.Name, &c.Code, &c.City,
			&c.FoundedYear, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		)
		return c, err
	})
}
