package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
	apperrors "github.com/hrdesk/hr-backend/pkg/errors"
	"github.com/hrdesk/hr-backend/pkg/testutil"
)

var sectionColumns = []string{"section_id", "section_name", "manager_id", "place_id", "manager_name", "place_address", "place_city"}

func TestSectionRepository_List(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("COALESCE(m.first_name || ' ' || m.last_name, '') AS manager_name").
		WillReturnRows(testutil.MockRows(sectionColumns...).
			AddRow(10, "Administration", 100, 1700, "Steven King", "2004 Charade Rd", "Seattle").
			AddRow(50, "Shipping", nil, 1500, "", "2011 Interiors Blvd", "South San Francisco"))

	repo := repository.NewSectionRepository(mockDB.DB)
	sections, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, sections, 2)
	assert.Equal(t, "Steven King", sections[0].ManagerName)
	assert.Nil(t, sections[1].ManagerID)
	assert.Equal(t, "", sections[1].ManagerName)
	mockDB.ExpectationsWereMet(t)
}

func TestSectionRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("WHERE sec.section_id = $1").
			WithArgs(int64(60)).
			WillReturnRows(testutil.MockRows(sectionColumns...).
				AddRow(60, "IT", 103, 1400, "Alexander Hunold", "2014 Jabberwocky Rd", "Southlake"))

		repo := repository.NewSectionRepository(mockDB.DB)
		section, err := repo.GetByID(ctx, 60)
		require.NoError(t, err)
		assert.Equal(t, "IT", section.Name)
		assert.Equal(t, "Southlake", *section.PlaceCity)
	})

	t.Run("not found", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("WHERE sec.section_id = $1").
			WithArgs(int64(999)).
			WillReturnRows(testutil.MockRows(sectionColumns...))

		repo := repository.NewSectionRepository(mockDB.DB)
		_, err := repo.GetByID(ctx, 999)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestSectionRepository_UpdateName(t *testing.T) {
	ctx := context.Background()

	t.Run("renamed", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE sections SET section_name = $1 WHERE section_id = $2").
			WithArgs("Information Technology", int64(60)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := repository.NewSectionRepository(mockDB.DB)
		require.NoError(t, repo.UpdateName(ctx, 60, "Information Technology"))
		mockDB.ExpectationsWereMet(t)
	})

	t.Run("missing section", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE sections").WillReturnResult(sqlmock.NewResult(0, 0))

		repo := repository.NewSectionRepository(mockDB.DB)
		err := repo.UpdateName(ctx, 999, "Nowhere")
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("name too long", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE sections").WillReturnError(&pq.Error{Code: "22001"})

		repo := repository.NewSectionRepository(mockDB.DB)
		err := repo.UpdateName(ctx, 60, "a name that is far too long for the column")
		assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))
	})
}

func TestSectionRepository_ManagedBy(t *testing.T) {
	ctx := context.Background()

	t.Run("manager", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT section_id FROM sections WHERE manager_id = $1 ORDER BY section_id LIMIT 1").
			WithArgs(int64(103)).
			WillReturnRows(testutil.MockRows("section_id").AddRow(60))

		repo := repository.NewSectionRepository(mockDB.DB)
		sectionID, err := repo.ManagedBy(ctx, 103)
		require.NoError(t, err)
		require.NotNil(t, sectionID)
		assert.Equal(t, int64(60), *sectionID)
	})

	t.Run("not a manager", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("WHERE manager_id = $1").
			WithArgs(int64(104)).
			WillReturnRows(testutil.MockRows("section_id"))

		repo := repository.NewSectionRepository(mockDB.DB)
		sectionID, err := repo.ManagedBy(ctx, 104)
		require.NoError(t, err)
		assert.Nil(t, sectionID)
	})
}
