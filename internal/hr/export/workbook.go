// Package export renders staff listings as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
)

// SheetName is the only sheet in an exported workbook
const SheetName = "Employees"

// ContentType is the media type of an exported workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type column struct {
	header string
	width  float64
	value  func(s *repository.Staff) interface{}
}

var columns = []column{
	{"Staff ID", 10, func(s *repository.Staff) interface{} { return s.ID }},
	{"First Name", 16, func(s *repository.Staff) interface{} { return s.FirstName }},
	{"Last Name", 16, func(s *repository.Staff) interface{} { return s.LastName }},
	{"Email", 20, func(s *repository.Staff) interface{} { return deref(s.Email) }},
	{"Phone", 18, func(s *repository.Staff) interface{} { return deref(s.PhoneNumber) }},
	{"Hire Date", 12, func(s *repository.Staff) interface{} {
		if s.HireDate == nil {
			return nil
		}
		return s.HireDate.Format("2006-01-02")
	}},
	{"Title", 24, func(s *repository.Staff) interface{} { return deref(s.EmploymentTitle) }},
	{"Salary", 12, func(s *repository.Staff) interface{} { return s.Salary.InexactFloat64() }},
	{"Commission", 12, func(s *repository.Staff) interface{} {
		if !s.CommissionPct.Valid {
			return nil
		}
		return s.CommissionPct.Decimal.InexactFloat64()
	}},
	{"Manager", 20, func(s *repository.Staff) interface{} { return deref(s.ManagerName) }},
	{"Section", 20, func(s *repository.Staff) interface{} { return deref(s.SectionName) }},
}

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// WriteStaffWorkbook writes staff to w as a single-sheet workbook with a bold header row.
func WriteStaffWorkbook(w io.Writer, staff []repository.Staff) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		if err := sw.SetColWidth(i+1, i+1, col.width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
		header[i] = excelize.Cell{Value: col.header, StyleID: bold}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for r := range staff {
		row := make([]interface{}, len(columns))
		for i, col := range columns {
			row[i] = col.value(&staff[r])
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	return f.Write(w)
}
