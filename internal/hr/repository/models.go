package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Staff is an employee record enriched with its section name, manager name and employment title.
// Enrichment fields are nil when the referenced row does not exist.
type Staff struct {
	ID            int64               `db:"staff_id" json:"staffId"`
	FirstName     string              `db:"first_name" json:"firstName"`
	LastName      string              `db:"last_name" json:"lastName"`
	Email         *string             `db:"email" json:"email"`
	PhoneNumber   *string             `db:"phone_number" json:"phoneNumber"`
	HireDate      *time.Time          `db:"hire_date" json:"hireDate"`
	EmploymentID  *string             `db:"employment_id" json:"employmentId"`
	Salary        decimal.Decimal     `db:"salary" json:"salary"`
	CommissionPct decimal.NullDecimal `db:"commission_pct" json:"commissionPct"`
	ManagerID     *int64              `db:"manager_id" json:"managerId"`
	SectionID     *int64              `db:"section_id" json:"sectionId"`
	Password      string              `db:"password" json:"-"`

	SectionName     *string `db:"section_name" json:"sectionName"`
	ManagerName     *string `db:"manager_name" json:"managerName"`
	EmploymentTitle *string `db:"employment_title" json:"employmentTitle"`
}

// FullName returns "First Last"
func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Section is a department. ManagerName is "" when the manager cannot be resolved.
type Section struct {
	ID        int64  `db:"section_id" json:"sectionId"`
	Name      string `db:"section_name" json:"sectionName"`
	ManagerID *int64 `db:"manager_id" json:"managerId"`
	PlaceID   *int64 `db:"place_id" json:"placeId"`

	ManagerName  string  `db:"manager_name" json:"managerName"`
	PlaceAddress *string `db:"place_address" json:"placeAddress"`
	PlaceCity    *string `db:"place_city" json:"placeCity"`
}

// Place is a physical location with its state and area names attached
type Place struct {
	ID            int64   `db:"place_id" json:"placeId"`
	StreetAddress *string `db:"street_address" json:"streetAddress" validate:"omitempty,max=40"`
	PostalCode    *string `db:"postal_code" json:"postalCode" validate:"omitempty,max=12"`
	City          *string `db:"city" json:"city" validate:"omitempty,max=30"`
	StateProvince *string `db:"state_province" json:"stateProvince" validate:"omitempty,max=25"`
	StateID       *string `db:"state_id" json:"stateId" validate:"omitempty,max=2"`

	StateName *string `db:"state_name" json:"stateName"`
	AreaName  *string `db:"area_name" json:"areaName"`
}

// Employment is a job title with its salary band
type Employment struct {
	ID        string              `db:"employment_id" json:"employmentId"`
	Title     string              `db:"employment_title" json:"employmentTitle"`
	MinSalary decimal.NullDecimal `db:"min_salary" json:"minSalary"`
	MaxSalary decimal.NullDecimal `db:"max_salary" json:"maxSalary"`
}

// HistoryEntry is one past (or current, when EndDate is nil) assignment of a staff member
type HistoryEntry struct {
	ID           int64      `db:"id" json:"id"`
	StaffID      int64      `db:"staff_id" json:"staffId"`
	StartDate    time.Time  `db:"start_date" json:"startDate"`
	EndDate      *time.Time `db:"end_date" json:"endDate"`
	EmploymentID *string    `db:"employment_id" json:"employmentId"`
	SectionID    *int64     `db:"section_id" json:"sectionId"`

	EmploymentTitle *string `db:"employment_title" json:"employmentTitle"`
	SectionName     *string `db:"section_name" json:"sectionName"`
}

// SalaryStats holds max/min/avg salary for one section.
// The aggregates are null for a section without staff.
type SalaryStats struct {
	SectionID   *int64              `db:"section_id" json:"sectionId"`
	SectionName *string             `db:"section_name" json:"sectionName"`
	MaxSalary   decimal.NullDecimal `db:"max_salary" json:"maxSalary"`
	MinSalary   decimal.NullDecimal `db:"min_salary" json:"minSalary"`
	AvgSalary   *float64            `db:"avg_salary" json:"avgSalary"`
}
