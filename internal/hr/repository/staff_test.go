package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
	apperrors "github.com/hrdesk/hr-backend/pkg/errors"
	"github.com/hrdesk/hr-backend/pkg/testutil"
)

var staffColumns = []string{
	"staff_id", "first_name", "last_name", "email", "phone_number", "hire_date",
	"employment_id", "salary", "commission_pct", "manager_id", "section_id", "password",
	"section_name", "manager_name", "employment_title",
}

var hired = time.Date(2016, 1, 3, 0, 0, 0, 0, time.UTC)

func staffRows() *sqlmock.Rows {
	return testutil.MockRows(staffColumns...)
}

func TestStaffRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found with enrichment", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("FROM staffs s LEFT JOIN sections sec ON sec.section_id = s.section_id").
			WithArgs(int64(103)).
			WillReturnRows(staffRows().AddRow(
				103, "Alexander", "Hunold", "AHUNOLD", "590.423.4567", hired,
				"IT_PROG", "9000.00", nil, 100, 60, "password",
				"IT", "Steven King", "Programmer",
			))

		repo := repository.NewStaffRepository(mockDB.DB)
		staff, err := repo.GetByID(ctx, 103)
		require.NoError(t, err)

		assert.Equal(t, int64(103), staff.ID)
		assert.Equal(t, "Alexander Hunold", staff.FullName())
		assert.Equal(t, "9000", staff.Salary.String())
		assert.False(t, staff.CommissionPct.Valid)
		require.NotNil(t, staff.SectionName)
		assert.Equal(t, "IT", *staff.SectionName)
		require.NotNil(t, staff.ManagerName)
		assert.Equal(t, "Steven King", *staff.ManagerName)
		require.NotNil(t, staff.EmploymentTitle)
		assert.Equal(t, "Programmer", *staff.EmploymentTitle)
		assert.Equal(t, "password", staff.Password)
		mockDB.ExpectationsWereMet(t)
	})

	t.Run("unresolved references stay nil", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("WHERE s.staff_id = $1").
			WithArgs(int64(178)).
			WillReturnRows(staffRows().AddRow(
				178, "Kimberely", "Grant", nil, nil, nil,
				"XX_GONE", "7000.00", "0.15", nil, nil, "password",
				nil, nil, nil,
			))

		repo := repository.NewStaffRepository(mockDB.DB)
		staff, err := repo.GetByID(ctx, 178)
		require.NoError(t, err)

		assert.Nil(t, staff.SectionName)
		assert.Nil(t, staff.ManagerName)
		assert.Nil(t, staff.EmploymentTitle)
		assert.True(t, staff.CommissionPct.Valid)
		assert.Equal(t, "0.15", staff.CommissionPct.Decimal.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("WHERE s.staff_id = $1").
			WithArgs(int64(999)).
			WillReturnRows(staffRows())

		repo := repository.NewStaffRepository(mockDB.DB)
		_, err := repo.GetByID(ctx, 999)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestStaffRepository_ListOrdering(t *testing.T) {
	tests := []struct {
		name     string
		bySalary bool
		order    string
	}{
		{"by id", false, "ORDER BY s.staff_id"},
		{"by salary", true, "ORDER BY s.salary DESC, s.staff_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := testutil.NewMockDB(t)
			defer mockDB.Close()

			mockDB.ExpectQuery(tt.order).
				WillReturnRows(staffRows().
					AddRow(100, "Steven", "King", nil, nil, nil, "AD_PRES", "24000", nil, nil, 10, "p", "Administration", nil, "President").
					AddRow(104, "Bruce", "Ernst", nil, nil, nil, "IT_PROG", "6000", nil, 103, 60, "p", "IT", "Alexander Hunold", "Programmer"))

			repo := repository.NewStaffRepository(mockDB.DB)
			staff, err := repo.List(context.Background(), tt.bySalary)
			require.NoError(t, err)
			assert.Len(t, staff, 2)
			mockDB.ExpectationsWereMet(t)
		})
	}
}

func TestStaffRepository_ListBySection(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("WHERE s.section_id = $1 ORDER BY s.salary DESC, s.staff_id").
		WithArgs(int64(70)).
		WillReturnRows(staffRows())

	repo := repository.NewStaffRepository(mockDB.DB)
	staff, err := repo.ListBySection(context.Background(), 70, true)
	require.NoError(t, err)

	assert.NotNil(t, staff)
	assert.Empty(t, staff)
	mockDB.ExpectationsWereMet(t)
}

func TestStaffRepository_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("all sections", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("WHERE (strpos(s.first_name, $1) > 0 OR strpos(s.last_name, $1) > 0) ORDER BY s.staff_id").
			WithArgs("an").
			WillReturnRows(staffRows().
				AddRow(108, "Nancy", "Greenberg", nil, nil, nil, "FI_MGR", "12008", nil, 100, 100, "p", "Finance", "Steven King", "Finance Manager").
				AddRow(109, "Daniel", "Faviet", nil, nil, nil, "FI_ACCOUNT", "9000", nil, 108, 100, "p", "Finance", "Nancy Greenberg", "Accountant"))

		repo := repository.NewStaffRepository(mockDB.DB)
		staff, err := repo.Search(ctx, "an", nil)
		require.NoError(t, err)
		assert.Len(t, staff, 2)
		mockDB.ExpectationsWereMet(t)
	})

	t.Run("within a section", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("AND s.section_id = $2 ORDER BY s.staff_id").
			WithArgs("Ern", int64(60)).
			WillReturnRows(staffRows().
				AddRow(104, "Bruce", "Ernst", nil, nil, nil, "IT_PROG", "6000", nil, 103, 60, "p", "IT", "Alexander Hunold", "Programmer"))

		repo := repository.NewStaffRepository(mockDB.DB)
		section := int64(60)
		staff, err := repo.Search(ctx, "Ern", &section)
		require.NoError(t, err)
		require.Len(t, staff, 1)
		assert.Equal(t, int64(104), staff[0].ID)
		mockDB.ExpectationsWereMet(t)
	})
}

func TestStaffRepository_UpdatePhone(t *testing.T) {
	ctx := context.Background()
	phone := "515.999.0000"

	t.Run("updated", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE staffs SET phone_number = $1 WHERE staff_id = $2").
			WithArgs(phone, int64(104)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := repository.NewStaffRepository(mockDB.DB)
		require.NoError(t, repo.UpdatePhone(ctx, 104, &phone))
		mockDB.ExpectationsWereMet(t)
	})

	t.Run("missing staff", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE staffs SET phone_number").
			WithArgs(phone, int64(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := repository.NewStaffRepository(mockDB.DB)
		err := repo.UpdatePhone(ctx, 999, &phone)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE staffs SET phone_number").
			WillReturnError(errors.New("connection reset"))

		repo := repository.NewStaffRepository(mockDB.DB)
		err := repo.UpdatePhone(ctx, 104, &phone)
		assert.ErrorContains(t, err, "connection reset")
	})
}

var statsColumns = []string{"section_id", "section_name", "max_salary", "min_salary", "avg_salary"}

func TestStaffRepository_SalaryStatsBySection(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("FROM sections sec LEFT JOIN staffs s ON s.section_id = sec.section_id WHERE sec.section_id = $1").
			WithArgs(int64(60)).
			WillReturnRows(testutil.MockRows(statsColumns...).AddRow(60, "IT", "300.00", "100.00", 200.0))

		repo := repository.NewStaffRepository(mockDB.DB)
		stats, err := repo.SalaryStatsBySection(ctx, 60)
		require.NoError(t, err)

		assert.Equal(t, "300", stats.MaxSalary.Decimal.String())
		assert.Equal(t, "100", stats.MinSalary.Decimal.String())
		require.NotNil(t, stats.AvgSalary)
		assert.Equal(t, 200.0, *stats.AvgSalary)
	})

	t.Run("section without staff", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("WHERE sec.section_id = $1").
			WithArgs(int64(70)).
			WillReturnRows(testutil.MockRows(statsColumns...).AddRow(70, "Public Relations", nil, nil, nil))

		repo := repository.NewStaffRepository(mockDB.DB)
		stats, err := repo.SalaryStatsBySection(ctx, 70)
		require.NoError(t, err)

		assert.False(t, stats.MaxSalary.Valid)
		assert.Nil(t, stats.AvgSalary)
	})

	t.Run("unknown section", func(t *testing.T) {
		mockDB := testutil.NewMockDB(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("WHERE sec.section_id = $1").
			WithArgs(int64(999)).
			WillReturnRows(testutil.MockRows(statsColumns...))

		repo := repository.NewStaffRepository(mockDB.DB)
		_, err := repo.SalaryStatsBySection(ctx, 999)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestStaffRepository_SalaryStatsAllSections(t *testing.T) {
	mockDB := testutil.NewMockDB(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("GROUP BY s.section_id, sec.section_name ORDER BY s.section_id NULLS LAST").
		WillReturnRows(testutil.MockRows(statsColumns...).
			AddRow(10, "Administration", "24000", "24000", 24000.0).
			AddRow(60, "IT", "9000", "4200", 6400.0).
			AddRow(nil, nil, "7000", "7000", 7000.0))

	repo := repository.NewStaffRepository(mockDB.DB)
	stats, err := repo.SalaryStatsAllSections(context.Background())
	require.NoError(t, err)

	require.Len(t, stats, 3)
	assert.Equal(t, int64(60), *stats[1].SectionID)
	assert.Nil(t, stats[2].SectionID)
	mockDB.ExpectationsWereMet(t)
}
