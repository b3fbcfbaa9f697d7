package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrdesk/hr-backend/pkg/database"
	"github.com/hrdesk/hr-backend/pkg/errors"
)

const staffSelect = `
	SELECT s.staff_id, s.first_name, s.last_name, s.email, s.phone_number, s.hire_date,
	       s.employment_id, s.salary, s.commission_pct, s.manager_id, s.section_id, s.password,
	       sec.section_name,
	       m.first_name || ' ' || m.last_name AS manager_name,
	       e.employment_title
	FROM staffs s
	LEFT JOIN sections sec ON sec.section_id = s.section_id
	LEFT JOIN staffs m ON m.staff_id = s.manager_id
	LEFT JOIN employments e ON e.employment_id = s.employment_id
`

const (
	orderByID     = ` ORDER BY s.staff_id`
	orderBySalary = ` ORDER BY s.salary DESC, s.staff_id`
)

func staffOrder(bySalary bool) string {
	if bySalary {
		return orderBySalary
	}
	return orderByID
}

// StaffRepository handles staff persistence and salary aggregation
type StaffRepository struct {
	db *database.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *database.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// GetByID gets a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*Staff, error) {
	var staff Staff
	err := r.db.GetContext(ctx, &staff, staffSelect+` WHERE s.staff_id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("staff")
	}
	if err != nil {
		return nil, err
	}

	return &staff, nil
}

// List returns every staff member, by id or by salary descending
func (r *StaffRepository) List(ctx context.Context, bySalary bool) ([]Staff, error) {
	staff := make([]Staff, 0)
	if err := r.db.SelectContext(ctx, &staff, staffSelect+staffOrder(bySalary)); err != nil {
		return nil, err
	}
	return staff, nil
}

// ListBySection returns the staff of one section, by id or by salary descending
func (r *StaffRepository) ListBySection(ctx context.Context, sectionID int64, bySalary bool) ([]Staff, error) {
	staff := make([]Staff, 0)
	query := staffSelect + ` WHERE s.section_id = $1` + staffOrder(bySalary)
	if err := r.db.SelectContext(ctx, &staff, query, sectionID); err != nil {
		return nil, err
	}
	return staff, nil
}

// Search returns staff whose first or last name contains name (case-sensitive).
// A non-nil sectionID restricts the search to that section.
func (r *StaffRepository) Search(ctx context.Context, name string, sectionID *int64) ([]Staff, error) {
	query := staffSelect + ` WHERE (strpos(s.first_name, $1) > 0 OR strpos(s.last_name, $1) > 0)`
	args := []interface{}{name}
	if sectionID != nil {
		query += ` AND s.section_id = $2`
		args = append(args, *sectionID)
	}
	query += orderByID

	staff := make([]Staff, 0)
	if err := r.db.SelectContext(ctx, &staff, query, args...); err != nil {
		return nil, err
	}
	return staff, nil
}

// UpdatePhone sets the phone number of a staff member. A nil phone clears it.
func (r *StaffRepository) UpdatePhone(ctx context.Context, id int64, phone *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE staffs SET phone_number = $1 WHERE staff_id = $2`, phone, id)
	if err != nil {
		return fmt.Errorf("failed to update phone number: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("staff")
	}

	return nil
}

// SalaryStatsBySection computes max/min/avg salary of one section.
// Unknown sections are NotFound; a section without staff yields null aggregates.
func (r *StaffRepository) SalaryStatsBySection(ctx context.Context, sectionID int64) (*SalaryStats, error) {
	query := `
		SELECT sec.section_id, sec.section_name,
		       MAX(s.salary) AS max_salary,
		       MIN(s.salary) AS min_salary,
		       ROUND(AVG(s.salary), 2)::float8 AS avg_salary
		FROM sections sec
		LEFT JOIN staffs s ON s.section_id = sec.section_id
		WHERE sec.section_id = $1
		GROUP BY sec.section_id, sec.section_name
	`

	var stats SalaryStats
	err := r.db.GetContext(ctx, &stats, query, sectionID)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("section")
	}
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// SalaryStatsAllSections computes the same aggregates for every section id found on staff rows.
// Staff without a section form their own group with a null section id.
func (r *StaffRepository) SalaryStatsAllSections(ctx context.Context) ([]SalaryStats, error) {
	query := `
		SELECT s.section_id, sec.section_name,
		       MAX(s.salary) AS max_salary,
		       MIN(s.salary) AS min_salary,
		       ROUND(AVG(s.salary), 2)::float8 AS avg_salary
		FROM staffs s
		LEFT JOIN sections sec ON sec.section_id = s.section_id
		GROUP BY s.section_id, sec.section_name
		ORDER BY s.section_id NULLS LAST
	`

	stats := make([]SalaryStats, 0)
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return stats, nil
}
