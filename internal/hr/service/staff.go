package service

import (
	"context"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
	"github.com/hrdesk/hr-backend/pkg/errors"
	"github.com/hrdesk/hr-backend/pkg/logger"
)

// StaffService handles staff lookups, phone updates and salary statistics
type StaffService struct {
	staff     StaffStore
	publisher EventPublisher
	logger    *logger.Logger
}

// NewStaffService creates a new staff service
func NewStaffService(staff StaffStore, publisher EventPublisher, log *logger.Logger) *StaffService {
	return &StaffService{
		staff:     staff,
		publisher: publisher,
		logger:    log.WithComponent("staff"),
	}
}

// GetByID gets a staff member by ID
func (s *StaffService) GetByID(ctx context.Context, id int64) (*repository.Staff, error) {
	return s.staff.GetByID(ctx, id)
}

// List lists all staff
func (s *StaffService) List(ctx context.Context, bySalary bool) ([]repository.Staff, error) {
	return s.staff.List(ctx, bySalary)
}

// ListBySection lists the staff of one section
func (s *StaffService) ListBySection(ctx context.Context, sectionID int64, bySalary bool) ([]repository.Staff, error) {
	return s.staff.ListBySection(ctx, sectionID, bySalary)
}

// GetInSection gets a staff member only if they belong to sectionID
func (s *StaffService) GetInSection(ctx context.Context, sectionID, staffID int64) (*repository.Staff, error) {
	staff, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if staff.SectionID == nil || *staff.SectionID != sectionID {
		return nil, errors.NotFound("staff")
	}

	return staff, nil
}

// Search finds staff by a substring of their first or last name.
// A nil sectionID searches everybody.
func (s *StaffService) Search(ctx context.Context, name string, sectionID *int64) ([]repository.Staff, error) {
	return s.staff.Search(ctx, name, sectionID)
}

// UpdatePhone changes a staff member's phone number
func (s *StaffService) UpdatePhone(ctx context.Context, id int64, phone *string) error {
	if err := s.staff.UpdatePhone(ctx, id, phone); err != nil {
		return err
	}

	s.logger.Info().Int64("staff_id", id).Msg("phone number updated")
	s.publisher.PhoneUpdated(ctx, id, phone)

	return nil
}

// SectionSalaryStats returns salary statistics for one section
func (s *StaffService) SectionSalaryStats(ctx context.Context, sectionID int64) (*repository.SalaryStats, error) {
	return s.staff.SalaryStatsBySection(ctx, sectionID)
}

// SalaryStats returns salary statistics for every section that has staff
func (s *StaffService) SalaryStats(ctx context.Context) ([]repository.SalaryStats, error) {
	return s.staff.SalaryStatsAllSections(ctx)
}
