package postgres

import (
	"context"
	"testing"
	"time"

	"sports-association-admin/internal/core/domain"
	"sports-association-admin/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestAuditLog() *domain.AuditLog {
	return &domain.AuditLog{
		ID:         uuid.New(),
		Action:     "CLUB_UPDATE",
		EntityType: "Club",
		EntityID:   strPtr(uuid.NewString()),
		ActorID:    strPtr(uuid.NewString()),
		ActorName:  strPtr("Root Admin"),
		ActorEmail: strPtr("admin@example.com"),
		ActorRole:  strPtr("admin"),
		IPAddress:  strPtr("203.0.113.7"),
		UserAgent:  strPtr("go-test/1.0"),
		Changes:    `{"name":{"old":"Lions","new":"Tigers"}}`,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func auditColumns() []string {
	return []string{"id", "action", "entity_type", "entity_id", "actor_id", "actor_name", "actor_email", "actor_role", "ip_address", "user_agent", "changes", "created_at"}
}

func auditRow(l *domain.AuditLog) *pgxmock.Rows {
	return pgxmock.NewRows(auditColumns()).AddRow(
		l.ID, l.Action, l.EntityType, l.EntityID,
		l.ActorID, l.ActorName, l.ActorEmail, l.ActorRole,
		l.IPAddress, l.UserAgent, l.Changes, l.CreatedAt,
	)
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	l := newTestAuditLog()

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(l.ID, l.Action, l.EntityType, l.EntityID,
			l.ActorID, l.ActorName, l.ActorEmail, l.ActorRole,
			l.IPAddress, l.UserAgent, l.Changes, l.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), l)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_List_NoFilters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	l := newTestAuditLog()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM audit_logs`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT id, action, entity_type").
		WithArgs(20, 0).
		WillReturnRows(auditRow(l))

	logs, total, err := repo.List(context.Background(), ports.AuditListParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)
	assert.Equal(t, l.Action, logs[0].Action)
	assert.Equal(t, l.Changes, logs[0].Changes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_List_Filters(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	from := time.Now().Add(-24 * time.Hour).UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM audit_logs WHERE entity_type = \$1 AND actor_email ILIKE \$2 AND created_at >= \$3`).
		WithArgs("Club", "%admin%", from).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT id, action, entity_type").
		WithArgs("Club", "%admin%", from, 50, 50).
		WillReturnRows(pgxmock.NewRows(auditColumns()))

	logs, total, err := repo.List(context.Background(), ports.AuditListParams{
		EntityType: "Club",
		ActorEmail: "admin",
		From:       &from,
		Page:       2,
		PageSize:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_List_SortOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM audit_logs`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`ORDER BY created_at ASC`).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(auditColumns()))

	_, _, err = repo.List(context.Background(), ports.AuditListParams{Page: 1, PageSize: 20, SortAsc: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_DeleteOlderThan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	cutoff := time.Now().AddDate(0, 0, -90).UTC()

	mock.ExpectExec("DELETE FROM audit_logs WHERE created_at").
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 42))

	n, err := repo.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
