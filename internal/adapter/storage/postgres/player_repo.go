package postgres

import (
	"context"
	"errors"
	"fmt"

	"sports-association-admin/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PlayerRepo implements ports.PlayerRepository.
type PlayerRepo struct {
	pool Pool
}

// NewPlayerRepo creates a new PlayerRepo.
func NewPlayerRepo(pool Pool) *PlayerRepo {
	return &PlayerRepo{pool: pool}
}

const playerColumns = "id, club_id, first_name, last_name, email, date_of_birth, aadhar_number, active, created_at, updated_at"

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	p := &domain.Player{}
	err := row.Scan(
		&p.ID, &p.ClubID, &p.FirstName, &p.LastName, &p.Email,
		&p.DateOfBirth, &p.AadharNumber, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepo) Create(ctx context.Context, player *domain.Player) error {
	query := `INSERT INTO players (id, club_id, first_name, last_name, email, date_of_birth, aadhar_number, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		player.ID, player.ClubID, player.FirstName, player.LastName, player.Email,
		player.DateOfBirth, player.AadharNumber, player.Active, player.CreatedAt, player.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	player, err := scanPlayer(r.pool.QueryRow(ctx,
		"SELECT "+playerColumns+" FROM players WHERE id = $1", id))
	if err != nil {
		return nil, fmt.Errorf("get player by id: %w", err)
	}
	return player, nil
}

func (r *PlayerRepo) Update(ctx context.Context, player *domain.Player) error {
	query := `UPDATE players SET club_id = $2, first_name = $3, last_name = $4, email = $5, date_of_birth = $6, aadhar_number = $7, active = $8, updated_at = $9
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query,
		player.ID, player.ClubID, player.FirstName, player.LastName, player.Email,
		player.DateOfBirth, player.AadharNumber, player.Active, player.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (r *PlayerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM players WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (r *PlayerRepo) ListByClub(ctx context.Context, clubID uuid.UUID) ([]domain.Player, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+playerColumns+" FROM players WHERE club_id = $1 ORDER BY last_name, first_name", clubID)
	if err != nil {
		return nil, fmt.Errorf("list players by club: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Player, error) {
		var p domain.Player
		err := row.Scan(
			&p.ID, &p.ClubID, &p.FirstName, &p.LastName, &p.Email,
			&p.DateOfBirth, &p.AadharNumber, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		)
		return p, err
	})
}

// UpdateActiveByClub flips the active flag for every player of a club
// whose flag differs, reporting the affected-row count.
func (r *PlayerRepo) UpdateActiveByClub(ctx context.Context, clubID uuid.UUID, active bool) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		"UPDATE players SET active = $2, updated_at = now() WHERE club_id = $1 AND active <> $2",
		clubID, active,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk update players: %w", err)
	}
	return tag.RowsAffected(), nil
}
