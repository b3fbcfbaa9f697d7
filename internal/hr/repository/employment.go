package repository

import (
	"context"

	"github.com/hrdesk/hr-backend/pkg/database"
)

// EmploymentRepository reads the employment (job title) catalogue
type EmploymentRepository struct {
	db *database.DB
}

// NewEmploymentRepository creates a new employment repository
func NewEmploymentRepository(db *database.DB) *EmploymentRepository {
	return &EmploymentRepository{db: db}
}

// List returns all employments ordered by id
func (r *EmploymentRepository) List(ctx context.Context) ([]Employment, error) {
	query := `
		SELECT employment_id, employment_title, min_salary, max_salary
		FROM employments
		ORDER BY employment_id
	`

	employments := make([]Employment, 0)
	if err := r.db.SelectContext(ctx, &employments, query); err != nil {
		return nil, err
	}
	return employments, nil
}
