package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
)

func TestWriteStaffWorkbook(t *testing.T) {
	hired := time.Date(2003, 6, 17, 0, 0, 0, 0, time.UTC)
	email, section, manager := "SKING", "Executive", "Nobody Special"

	staff := []repository.Staff{
		{ID: 100, FirstName: "Steven", LastName: "King", Email: &email, HireDate: &hired, Salary: decimal.NewFromInt(24000), SectionName: &section},
		{ID: 178, FirstName: "Kimberely", LastName: "Grant", Salary: decimal.NewFromInt(7000), CommissionPct: decimal.NewNullDecimal(decimal.RequireFromString("0.15")), ManagerName: &manager},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStaffWorkbook(&buf, staff))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Staff ID", rows[0][0])
	assert.Equal(t, "Section", rows[0][len(rows[0])-1])

	assert.Equal(t, "100", rows[1][0])
	assert.Equal(t, "SKING", rows[1][3])
	assert.Equal(t, "2003-06-17", rows[1][5])
	assert.Equal(t, "24000", rows[1][7])
	assert.Equal(t, "Executive", rows[1][10])

	assert.Equal(t, "Grant", rows[2][2])
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "0.15", rows[2][8])
	assert.Equal(t, "Nobody Special", rows[2][9])
}

func TestWriteStaffWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStaffWorkbook(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 11)
}
