package postgres

import (
	"context"
	"testing"
	"time"

	"sports-association-admin/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClub() *domain.Club {
	return &domain.Club{
		ID:          uuid.New(),
		Name:        "Lions FC",
		Code:        "LIONS",
		City:        "Pune",
		FoundedYear: 1987,
		Active:      true,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func clubRow(c *domain.Club) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "code", "city", "founded_year", "active", "created_at", "updated_at"}).
		AddRow(c.ID, c.Name, c.Code, c.City, c.FoundedYear, c.Active, c.CreatedAt, c.UpdatedAt)
}

func TestClubRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClubRepo(mock)
	c := newTestClub()

	mock.ExpectExec("INSERT INTO clubs").
		WithArgs(c.ID, c.Name, c.Code, c.City, c.FoundedYear, c.Active, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), c)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClubRepo(mock)
	c := newTestClub()

	mock.ExpectQuery("SELECT (.+) FROM clubs WHERE id").
		WithArgs(c.ID).
		WillReturnRows(clubRow(c))

	got, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.Code, got.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClubRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM clubs WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "code", "city", "founded_year", "active", "created_at", "updated_at"}))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClubRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewClubRepo(mock)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM clubs WHERE id").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
