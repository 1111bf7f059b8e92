package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepo_UpdateActiveByClub(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	clubID := uuid.New()

	mock.ExpectExec("UPDATE players SET active").
		WithArgs(clubID, false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 5))

	n, err := repo.UpdateActiveByClub(context.Background(), clubID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM players WHERE id").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
