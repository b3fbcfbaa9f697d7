package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdesk/hr-backend/pkg/database"
	"github.com/hrdesk/hr-backend/pkg/logger"
)

func newMock(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return database.Wrap(sqlx.NewDb(raw, "postgres"), logger.Nop()), mock
}

func TestHealth(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectPing()

		status := db.Health(context.Background())
		assert.Equal(t, "up", status["status"])
	})

	t.Run("down", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		status := db.Health(context.Background())
		assert.Equal(t, "down", status["status"])
		assert.Equal(t, "connection refused", status["error"])
	})
}

func TestPing_HonoursCancelledContext(t *testing.T) {
	db, _ := newMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, db.Ping(ctx))
}

func TestTransaction(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE sections").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := db.Transaction(context.Background(), func(tx *sqlx.Tx) error {
			_, err := tx.Exec("UPDATE sections SET section_name = 'x'")
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := db.Transaction(context.Background(), func(tx *sqlx.Tx) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
