package repository

import (
	"context"

	"github.com/hrdesk/hr-backend/pkg/database"
)

// HistoryRepository reads employment history. Rows are never modified.
type HistoryRepository struct {
	db *database.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *database.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// ListByStaff returns a staff member's history, oldest first
func (r *HistoryRepository) ListByStaff(ctx context.Context, staffID int64) ([]HistoryEntry, error) {
	query := `
		SELECT h.id, h.staff_id, h.start_date, h.end_date, h.employment_id, h.section_id,
		       e.employment_title, sec.section_name
		FROM employment_history h
		LEFT JOIN employments e ON e.employment_id = h.employment_id
		LEFT JOIN sections sec ON sec.section_id = h.section_id
		WHERE h.staff_id = $1
		ORDER BY h.start_date, h.id
	`

	entries := make([]HistoryEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, staffID); err != nil {
		return nil, err
	}
	return entries, nil
}
