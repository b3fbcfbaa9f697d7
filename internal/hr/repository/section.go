package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrdesk/hr-backend/pkg/database"
	"github.com/hrdesk/hr-backend/pkg/errors"
)

const sectionSelect = `
	SELECT sec.section_id, sec.section_name, sec.manager_id, sec.place_id,
	       COALESCE(m.first_name || ' ' || m.last_name, '') AS manager_name,
	       p.street_address AS place_address,
	       p.city AS place_city
	FROM sections sec
	LEFT JOIN staffs m ON m.staff_id = sec.manager_id
	LEFT JOIN places p ON p.place_id = sec.place_id
`

// SectionRepository handles section persistence
type SectionRepository struct {
	db *database.DB
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *database.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// List returns all sections ordered by id
func (r *SectionRepository) List(ctx context.Context) ([]Section, error) {
	sections := make([]Section, 0)
	if err := r.db.SelectContext(ctx, &sections, sectionSelect+` ORDER BY sec.section_id`); err != nil {
		return nil, err
	}
	return sections, nil
}

// GetByID gets a section by ID
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*Section, error) {
	var section Section
	err := r.db.GetContext(ctx, &section, sectionSelect+` WHERE sec.section_id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("section")
	}
	if err != nil {
		return nil, err
	}

	return &section, nil
}

// UpdateName renames a section
func (r *SectionRepository) UpdateName(ctx context.Context, id int64, name string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE sections SET section_name = $1 WHERE section_id = $2`, name, id)
	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return fmt.Errorf("failed to rename section: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.NotFound("section")
	}

	return nil
}

// ManagedBy returns the id of the section managed by staffID, or nil if there is none.
// When a staff member manages several sections the lowest id wins.
func (r *SectionRepository) ManagedBy(ctx context.Context, staffID int64) (*int64, error) {
	var sectionID int64
	err := r.db.GetContext(ctx, &sectionID,
		`SELECT section_id FROM sections WHERE manager_id = $1 ORDER BY section_id LIMIT 1`, staffID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sectionID, nil
}
