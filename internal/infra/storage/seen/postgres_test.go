package seen

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

type execCall struct {
	query string
	args  []interface{}
}

// recordingExecutor запоминает Exec запросы; чтение не поддерживается
type recordingExecutor struct {
	calls []execCall
	err   error
}

func (e *recordingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.calls = append(e.calls, execCall{query: query, args: args})
	if e.err != nil {
		return nil, e.err
	}
	return driverResult(1), nil
}

func (e *recordingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not supported")
}

func (e *recordingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestPostgresRepository_SetUpserts(t *testing.T) {
	db := &recordingExecutor{}
	repo := NewPostgresRepository(db)

	require.NoError(t, repo.Set(context.Background(), "Mahasiswa1", domain.SeenCounts{Approved: 4, Rejected: 2}))

	require.Len(t, db.calls, 1)
	call := db.calls[0]
	assert.True(t, strings.HasPrefix(call.query, "INSERT INTO seen_counts (username,approved,rejected,updated_at) VALUES ($1,$2,$3,NOW())"))
	assert.True(t, strings.HasSuffix(call.query,
		"ON CONFLICT (username) DO UPDATE SET approved = EXCLUDED.approved, rejected = EXCLUDED.rejected, updated_at = EXCLUDED.updated_at"))
	assert.Equal(t, []interface{}{"Mahasiswa1", 4, 2}, call.args)
}

func TestPostgresRepository_SetExecFailure(t *testing.T) {
	db := &recordingExecutor{err: errors.New("pq: connection reset")}
	repo := NewPostgresRepository(db)

	err := repo.Set(context.Background(), "Mahasiswa1", domain.SeenCounts{Approved: 1})
	assert.ErrorIs(t, err, ErrExecQuery)
}
