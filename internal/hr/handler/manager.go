package handler

import (
	"net/http"

	"github.com/hrdesk/hr-backend/internal/hr/service"
	"github.com/hrdesk/hr-backend/pkg/httputil"
)

// ManagerHandler serves section-scoped views. Every route carries the section in its path.
type ManagerHandler struct {
	staff *service.StaffService
}

// NewManagerHandler creates a new manager handler
func NewManagerHandler(staff *service.StaffService) *ManagerHandler {
	return &ManagerHandler{
		staff: staff,
	}
}

func (h *ManagerHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	sectionID, err := httputil.PathInt64(r, "sectionId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	bySalary, err := httputil.QueryBool(r, "orderBySalary", false)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	staff, err := h.staff.ListBySection(r.Context(), sectionID, bySalary)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, staff)
}

// GetEmployee returns 404 for staff outside the path section
func (h *ManagerHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	sectionID, err := httputil.PathInt64(r, "sectionId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	staffID, err := httputil.PathInt64(r, "staffId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	staff, err := h.staff.GetInSection(r.Context(), sectionID, staffID)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, staff)
}

func (h *ManagerHandler) Search(w http.ResponseWriter, r *http.Request) {
	sectionID, err := httputil.PathInt64(r, "sectionId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	name, err := httputil.QueryRequired(r, "name")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	staff, err := h.staff.Search(r.Context(), name, &sectionID)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, staff)
}

func (h *ManagerHandler) SalaryStats(w http.ResponseWriter, r *http.Request) {
	sectionID, err := httputil.PathInt64(r, "sectionId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	stats, err := h.staff.SectionSalaryStats(r.Context(), sectionID)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, stats)
}
