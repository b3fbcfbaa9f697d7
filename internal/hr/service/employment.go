package service

import (
	"context"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
)

// EmploymentService serves the job title catalogue and employment history
type EmploymentService struct {
	employments EmploymentStore
	history     HistoryStore
}

// NewEmploymentService creates a new employment service
func NewEmploymentService(employments EmploymentStore, history HistoryStore) *EmploymentService {
	return &EmploymentService{
		employments: employments,
		history:     history,
	}
}

// List lists all employments
func (s *EmploymentService) List(ctx context.Context) ([]repository.Employment, error) {
	return s.employments.List(ctx)
}

// History lists a staff member's employment history. Unknown staff have an empty history.
func (s *EmploymentService) History(ctx context.Context, staffID int64) ([]repository.HistoryEntry, error) {
	return s.history.ListByStaff(ctx, staffID)
}
