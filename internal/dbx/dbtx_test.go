package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openRunsDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE runs (id INTEGER PRIMARY KEY, scenario TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)
	return db
}

func countRuns(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n))
	return n
}

func insertRun(ctx context.Context, tx DBTX, scenario string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO runs(scenario) VALUES (?)`, scenario)
	return err
}

func TestWithTx_CommitsEveryStatement(t *testing.T) {
	db := openRunsDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if err := insertRun(ctx, tx, "upload"); err != nil {
			return err
		}
		return insertRun(ctx, tx, "download")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countRuns(t, db))
}

func TestWithTx_SecondInsertFailsRollsBackFirst(t *testing.T) {
	db := openRunsDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertRun(ctx, tx, "upload"))
		return insertRun(ctx, tx, "upload")
	})
	require.Error(t, err)
	assert.Equal(t, 0, countRuns(t, db))
}

func TestWithTx_ReturnsCallbackError(t *testing.T) {
	db := openRunsDB(t)
	sentinel := errors.New("stop")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertRun(ctx, tx, "stream"))
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, countRuns(t, db))
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := openRunsDB(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insertRun(ctx, tx, "chat"))
			panic("boom")
		})
	})
	assert.Equal(t, 0, countRuns(t, db))
}

func TestWithTx_BeginFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})
	require.ErrorContains(t, err, "begin tx")
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO runs").WithArgs("upload").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return insertRun(ctx, tx, "upload")
	})
	require.ErrorContains(t, err, "commit tx: disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}
