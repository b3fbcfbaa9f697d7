package service

import (
	"context"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
)

// StaffStore is the staff persistence used by the services.
// *repository.StaffRepository implements it.
type StaffStore interface {
	GetByID(ctx context.Context, id int64) (*repository.Staff, error)
	List(ctx context.Context, bySalary bool) ([]repository.Staff, error)
	ListBySection(ctx context.Context, sectionID int64, bySalary bool) ([]repository.Staff, error)
	Search(ctx context.Context, name string, sectionID *int64) ([]repository.Staff, error)
	UpdatePhone(ctx context.Context, id int64, phone *string) error
	SalaryStatsBySection(ctx context.Context, sectionID int64) (*repository.SalaryStats, error)
	SalaryStatsAllSections(ctx context.Context) ([]repository.SalaryStats, error)
}

// SectionStore is the section persistence used by the services
type SectionStore interface {
	List(ctx context.Context) ([]repository.Section, error)
	GetByID(ctx context.Context, id int64) (*repository.Section, error)
	UpdateName(ctx context.Context, id int64, name string) error
	ManagedBy(ctx context.Context, staffID int64) (*int64, error)
}

// PlaceStore is the place persistence used by the services
type PlaceStore interface {
	List(ctx context.Context) ([]repository.Place, error)
	GetByID(ctx context.Context, id int64) (*repository.Place, error)
	Create(ctx context.Context, place *repository.Place) (*repository.Place, error)
}

// EmploymentStore reads the job title catalogue
type EmploymentStore interface {
	List(ctx context.Context) ([]repository.Employment, error)
}

// HistoryStore reads employment history
type HistoryStore interface {
	ListByStaff(ctx context.Context, staffID int64) ([]repository.HistoryEntry, error)
}

// EventPublisher announces completed mutations. Implementations never fail the caller.
type EventPublisher interface {
	PhoneUpdated(ctx context.Context, staffID int64, phone *string)
	SectionRenamed(ctx context.Context, sectionID int64, name string)
	PlaceCreated(ctx context.Context, place *repository.Place)
}
