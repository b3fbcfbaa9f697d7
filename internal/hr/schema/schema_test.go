package schema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdesk/hr-backend/internal/hr/schema"
	"github.com/hrdesk/hr-backend/pkg/testutil"
)

func TestSchemaSQL_DefinesAllTables(t *testing.T) {
	ddl := schema.SchemaSQL()
	for _, table := range []string{"areas", "states", "places", "employments", "sections", "staffs", "employment_history", "college"} {
		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+table+" ", table)
	}
}

func TestApply(t *testing.T) {
	t.Run("schema only", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("CREATE TABLE IF NOT EXISTS areas").WillReturnResult(sqlmock.NewResult(0, 0))
		mockDB.ExpectCommit()

		require.NoError(t, schema.Apply(context.Background(), mockDB.DB, false))
		mockDB.ExpectationsWereMet(t)
	})

	t.Run("with seed", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("CREATE TABLE IF NOT EXISTS areas").WillReturnResult(sqlmock.NewResult(0, 0))
		mockDB.ExpectExec("INSERT INTO areas").WillReturnResult(sqlmock.NewResult(0, 3))
		mockDB.ExpectCommit()

		require.NoError(t, schema.Apply(context.Background(), mockDB.DB, true))
		mockDB.ExpectationsWereMet(t)
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))
		mockDB.ExpectRollback()

		err := schema.Apply(context.Background(), mockDB.DB, false)
		assert.ErrorContains(t, err, "permission denied")
		mockDB.ExpectationsWereMet(t)
	})
}
