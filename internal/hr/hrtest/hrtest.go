// Package hrtest provides in-memory stores for service and handler tests.
// They mirror the repository semantics: left-join enrichment, ordering,
// case-sensitive substring search and NotFound on missing rows.
package hrtest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
	"github.com/hrdesk/hr-backend/pkg/errors"
)

// Data is the shared backing state of all fake stores
type Data struct {
	mu          sync.Mutex
	Staff       []repository.Staff
	Sections    []repository.Section
	Places      []repository.Place
	States      map[string]State
	Employments []repository.Employment
	History     []repository.HistoryEntry

	// Err, when set, is returned by every store call.
	Err error

	nextPlaceID int64
}

// State is a state row with its area name already resolved
type State struct {
	Name     string
	AreaName string
}

func str(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Fixture returns a small organisation:
//
//	section 10 Administration, managed by 100
//	section 60 IT, managed by 103, staff 103 (9000), 104 (6000), 107 (4200)
//	section 70 Public Relations, no manager and no staff
//	staff 178 without a section and with an unknown employment id
//
// Every password is "password".
func Fixture() *Data {
	hired := time.Date(2016, 1, 3, 0, 0, 0, 0, time.UTC)
	return &Data{
		Staff: []repository.Staff{
			{ID: 100, FirstName: "Steven", LastName: "King", Email: str("SKING"), PhoneNumber: str("515.123.4567"), HireDate: &hired, EmploymentID: str("AD_PRES"), Salary: money(24000), SectionID: int64Ptr(10), Password: "password"},
			{ID: 103, FirstName: "Alexander", LastName: "Hunold", Email: str("AHUNOLD"), PhoneNumber: str("590.423.4567"), HireDate: &hired, EmploymentID: str("IT_PROG"), Salary: money(9000), ManagerID: int64Ptr(100), SectionID: int64Ptr(60), Password: "password"},
			{ID: 104, FirstName: "Bruce", LastName: "Ernst", Email: str("BERNST"), PhoneNumber: str("590.423.4568"), HireDate: &hired, EmploymentID: str("IT_PROG"), Salary: money(6000), ManagerID: int64Ptr(103), SectionID: int64Ptr(60), Password: "password"},
			{ID: 107, FirstName: "Diana", LastName: "Lorentz", Email: str("DLORENTZ"), HireDate: &hired, EmploymentID: str("IT_PROG"), Salary: money(4200), ManagerID: int64Ptr(103), SectionID: int64Ptr(60), Password: "password"},
			{ID: 178, FirstName: "Kimberely", LastName: "Grant", EmploymentID: str("XX_GONE"), Salary: money(7000), CommissionPct: decimal.NewNullDecimal(decimal.RequireFromString("0.15")), ManagerID: int64Ptr(999), Password: "password"},
		},
		Sections: []repository.Section{
			{ID: 10, Name: "Administration", ManagerID: int64Ptr(100), PlaceID: int64Ptr(1700)},
			{ID: 60, Name: "IT", ManagerID: int64Ptr(103), PlaceID: int64Ptr(1400)},
			{ID: 70, Name: "Public Relations", PlaceID: int64Ptr(2400)},
		},
		Places: []repository.Place{
			{ID: 1400, StreetAddress: str("2014 Jabberwocky Rd"), PostalCode: str("26192"), City: str("Southlake"), StateProvince: str("Texas"), StateID: str("US")},
			{ID: 1700, StreetAddress: str("2004 Charade Rd"), PostalCode: str("98199"), City: str("Seattle"), StateProvince: str("Washington"), StateID: str("US")},
		},
		States: map[string]State{
			"US": {Name: "United States of America", AreaName: "Americas"},
		},
		Employments: []repository.Employment{
			{ID: "AD_PRES", Title: "President", MinSalary: decimal.NewNullDecimal(money(20080)), MaxSalary: decimal.NewNullDecimal(money(40000))},
			{ID: "IT_PROG", Title: "Programmer", MinSalary: decimal.NewNullDecimal(money(4000)), MaxSalary: decimal.NewNullDecimal(money(10000))},
		},
		History: []repository.HistoryEntry{
			{ID: 2, StaffID: 104, StartDate: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &hired, EmploymentID: str("ST_CLERK"), SectionID: int64Ptr(50)},
			{ID: 1, StaffID: 104, StartDate: time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &hired, EmploymentID: str("IT_PROG"), SectionID: int64Ptr(60)},
		},
		nextPlaceID: 2401,
	}
}

// StaffStore returns a staff store over d
func (d *Data) StaffStore() *StaffStore { return &StaffStore{d: d} }

// SectionStore returns a section store over d
func (d *Data) SectionStore() *SectionStore { return &SectionStore{d: d} }

// PlaceStore returns a place store over d
func (d *Data) PlaceStore() *PlaceStore { return &PlaceStore{d: d} }

// EmploymentStore returns an employment store over d
func (d *Data) EmploymentStore() *EmploymentStore { return &EmploymentStore{d: d} }

// HistoryStore returns a history store over d
func (d *Data) HistoryStore() *HistoryStore { return &HistoryStore{d: d} }

func (d *Data) staffRow(id int64) *repository.Staff {
	for i := range d.Staff {
		if d.Staff[i].ID == id {
			return &d.Staff[i]
		}
	}
	return nil
}

func (d *Data) sectionRow(id int64) *repository.Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

func (d *Data) placeRow(id int64) *repository.Place {
	for i := range d.Places {
		if d.Places[i].ID == id {
			return &d.Places[i]
		}
	}
	return nil
}

func (d *Data) employmentTitle(id *string) *string {
	if id == nil {
		return nil
	}
	for _, e := range d.Employments {
		if e.ID == *id {
			return str(e.Title)
		}
	}
	return nil
}

func (d *Data) enrichStaff(s repository.Staff) repository.Staff {
	s.SectionName, s.ManagerName, s.EmploymentTitle = nil, nil, d.employmentTitle(s.EmploymentID)
	if s.SectionID != nil {
		if sec := d.sectionRow(*s.SectionID); sec != nil {
			s.SectionName = str(sec.Name)
		}
	}
	if s.ManagerID != nil {
		if m := d.staffRow(*s.ManagerID); m != nil {
			s.ManagerName = str(m.FullName())
		}
	}
	return s
}

func (d *Data) enrichSection(s repository.Section) repository.Section {
	s.ManagerName, s.PlaceAddress, s.PlaceCity = "", nil, nil
	if s.ManagerID != nil {
		if m := d.staffRow(*s.ManagerID); m != nil {
			s.ManagerName = m.FullName()
		}
	}
	if s.PlaceID != nil {
		if p := d.placeRow(*s.PlaceID); p != nil {
			s.PlaceAddress, s.PlaceCity = p.StreetAddress, p.City
		}
	}
	return s
}

func (d *Data) enrichPlace(p repository.Place) repository.Place {
	p.StateName, p.AreaName = nil, nil
	if p.StateID != nil {
		if st, ok := d.States[*p.StateID]; ok {
			p.StateName, p.AreaName = str(st.Name), str(st.AreaName)
		}
	}
	return p
}

func sortStaff(staff []repository.Staff, bySalary bool) {
	sort.SliceStable(staff, func(i, j int) bool {
		if bySalary {
			if c := staff[i].Salary.Cmp(staff[j].Salary); c != 0 {
				return c > 0
			}
		}
		return staff[i].ID < staff[j].ID
	})
}

// StaffStore is an in-memory service.StaffStore
type StaffStore struct{ d *Data }

func (s *StaffStore) GetByID(_ context.Context, id int64) (*repository.Staff, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	row := s.d.staffRow(id)
	if row == nil {
		return nil, errors.NotFound("staff")
	}
	staff := s.d.enrichStaff(*row)
	return &staff, nil
}

func (s *StaffStore) filter(keep func(repository.Staff) bool, bySalary bool) ([]repository.Staff, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	out := make([]repository.Staff, 0)
	for _, row := range s.d.Staff {
		if keep(row) {
			out = append(out, s.d.enrichStaff(row))
		}
	}
	sortStaff(out, bySalary)
	return out, nil
}

func (s *StaffStore) List(_ context.Context, bySalary bool) ([]repository.Staff, error) {
	return s.filter(func(repository.Staff) bool { return true }, bySalary)
}

func (s *StaffStore) ListBySection(_ context.Context, sectionID int64, bySalary bool) ([]repository.Staff, error) {
	return s.filter(func(row repository.Staff) bool {
		return row.SectionID != nil && *row.SectionID == sectionID
	}, bySalary)
}

func (s *StaffStore) Search(_ context.Context, name string, sectionID *int64) ([]repository.Staff, error) {
	return s.filter(func(row repository.Staff) bool {
		if sectionID != nil && (row.SectionID == nil || *row.SectionID != *sectionID) {
			return false
		}
		return strings.Contains(row.FirstName, name) || strings.Contains(row.LastName, name)
	}, false)
}

func (s *StaffStore) UpdatePhone(_ context.Context, id int64, phone *string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return s.d.Err
	}
	row := s.d.staffRow(id)
	if row == nil {
		return errors.NotFound("staff")
	}
	row.PhoneNumber = phone
	return nil
}

func stats(sectionID *int64, sectionName *string, rows []repository.Staff) repository.SalaryStats {
	out := repository.SalaryStats{SectionID: sectionID, SectionName: sectionName}
	if len(rows) == 0 {
		return out
	}
	max, min, sum := rows[0].Salary, rows[0].Salary, decimal.Zero
	for _, r := range rows {
		if r.Salary.GreaterThan(max) {
			max = r.Salary
		}
		if r.Salary.LessThan(min) {
			min = r.Salary
		}
		sum = sum.Add(r.Salary)
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(len(rows)))).Round(2).Float64()
	out.MaxSalary = decimal.NewNullDecimal(max)
	out.MinSalary = decimal.NewNullDecimal(min)
	out.AvgSalary = &avg
	return out
}

func (s *StaffStore) SalaryStatsBySection(_ context.Context, sectionID int64) (*repository.SalaryStats, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	sec := s.d.sectionRow(sectionID)
	if sec == nil {
		return nil, errors.NotFound("section")
	}
	var rows []repository.Staff
	for _, row := range s.d.Staff {
		if row.SectionID != nil && *row.SectionID == sectionID {
			rows = append(rows, row)
		}
	}
	result := stats(int64Ptr(sec.ID), str(sec.Name), rows)
	return &result, nil
}

func (s *StaffStore) SalaryStatsAllSections(_ context.Context) ([]repository.SalaryStats, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}

	const noSection = int64(-1)
	groups := make(map[int64][]repository.Staff)
	for _, row := range s.d.Staff {
		key := noSection
		if row.SectionID != nil {
			key = *row.SectionID
		}
		groups[key] = append(groups[key], row)
	}

	keys := make([]int64, 0, len(groups))
	for k := range groups {
		if k != noSection {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]repository.SalaryStats, 0, len(groups))
	for _, k := range keys {
		var name *string
		if sec := s.d.sectionRow(k); sec != nil {
			name = str(sec.Name)
		}
		out = append(out, stats(int64Ptr(k), name, groups[k]))
	}
	if rows, ok := groups[noSection]; ok {
		out = append(out, stats(nil, nil, rows))
	}
	return out, nil
}

// SectionStore is an in-memory service.SectionStore
type SectionStore struct{ d *Data }

func (s *SectionStore) List(_ context.Context) ([]repository.Section, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	out := make([]repository.Section, 0, len(s.d.Sections))
	for _, sec := range s.d.Sections {
		out = append(out, s.d.enrichSection(sec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *SectionStore) GetByID(_ context.Context, id int64) (*repository.Section, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	row := s.d.sectionRow(id)
	if row == nil {
		return nil, errors.NotFound("section")
	}
	sec := s.d.enrichSection(*row)
	return &sec, nil
}

func (s *SectionStore) UpdateName(_ context.Context, id int64, name string) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return s.d.Err
	}
	row := s.d.sectionRow(id)
	if row == nil {
		return errors.NotFound("section")
	}
	row.Name = name
	return nil
}

func (s *SectionStore) ManagedBy(_ context.Context, staffID int64) (*int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	var found *int64
	for _, sec := range s.d.Sections {
		if sec.ManagerID != nil && *sec.ManagerID == staffID && (found == nil || sec.ID < *found) {
			found = int64Ptr(sec.ID)
		}
	}
	return found, nil
}

// PlaceStore is an in-memory service.PlaceStore
type PlaceStore struct{ d *Data }

func (s *PlaceStore) List(_ context.Context) ([]repository.Place, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	out := make([]repository.Place, 0, len(s.d.Places))
	for _, p := range s.d.Places {
		out = append(out, s.d.enrichPlace(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *PlaceStore) GetByID(_ context.Context, id int64) (*repository.Place, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	row := s.d.placeRow(id)
	if row == nil {
		return nil, errors.NotFound("place")
	}
	p := s.d.enrichPlace(*row)
	return &p, nil
}

// Create rejects unknown state ids the way the foreign key does.
func (s *PlaceStore) Create(_ context.Context, place *repository.Place) (*repository.Place, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	if place.StateID != nil {
		if _, ok := s.d.States[*place.StateID]; !ok {
			return nil, errors.Validation(map[string]string{"stateId": "unknown state"})
		}
	}

	row := repository.Place{
		ID:            s.d.nextPlaceID,
		StreetAddress: place.StreetAddress,
		PostalCode:    place.PostalCode,
		City:          place.City,
		StateProvince: place.StateProvince,
		StateID:       place.StateID,
	}
	s.d.nextPlaceID++
	s.d.Places = append(s.d.Places, row)

	created := s.d.enrichPlace(row)
	return &created, nil
}

// EmploymentStore is an in-memory service.EmploymentStore
type EmploymentStore struct{ d *Data }

func (s *EmploymentStore) List(_ context.Context) ([]repository.Employment, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	out := append(make([]repository.Employment, 0, len(s.d.Employments)), s.d.Employments...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// HistoryStore is an in-memory service.HistoryStore
type HistoryStore struct{ d *Data }

func (s *HistoryStore) ListByStaff(_ context.Context, staffID int64) ([]repository.HistoryEntry, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if s.d.Err != nil {
		return nil, s.d.Err
	}
	out := make([]repository.HistoryEntry, 0)
	for _, h := range s.d.History {
		if h.StaffID != staffID {
			continue
		}
		h.EmploymentTitle, h.SectionName = s.d.employmentTitle(h.EmploymentID), nil
		if h.SectionID != nil {
			if sec := s.d.sectionRow(*h.SectionID); sec != nil {
				h.SectionName = str(sec.Name)
			}
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Events records published events
type Events struct {
	mu      sync.Mutex
	Phones  map[int64]*string
	Renames map[int64]string
	Places  []int64
}

// NewEvents creates an empty recorder
func NewEvents() *Events {
	return &Events{
		Phones:  make(map[int64]*string),
		Renames: make(map[int64]string),
	}
}

func (e *Events) PhoneUpdated(_ context.Context, staffID int64, phone *string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Phones[staffID] = phone
}

func (e *Events) SectionRenamed(_ context.Context, sectionID int64, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Renames[sectionID] = name
}

func (e *Events) PlaceCreated(_ context.Context, place *repository.Place) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Places = append(e.Places, place.ID)
}

// Count returns the number of recorded events
func (e *Events) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.Phones) + len(e.Renames) + len(e.Places)
}
