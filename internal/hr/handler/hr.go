package handler

import (
	"bytes"
	"net/http"

	"github.com/hrdesk/hr-backend/internal/hr/export"
	"github.com/hrdesk/hr-backend/internal/hr/repository"
	"github.com/hrdesk/hr-backend/internal/hr/service"
	"github.com/hrdesk/hr-backend/pkg/httputil"
	"github.com/hrdesk/hr-backend/pkg/logger"
)

// HRHandler serves the organisation-wide administrative endpoints
type HRHandler struct {
	staff       *service.StaffService
	sections    *service.SectionService
	places      *service.PlaceService
	employments *service.EmploymentService
	logger      *logger.Logger
}

// NewHRHandler creates a new HR handler
func NewHRHandler(
	staff *service.StaffService,
	sections *service.SectionService,
	places *service.PlaceService,
	employments *service.EmploymentService,
	log *logger.Logger,
) *HRHandler {
	return &HRHandler{
		staff:       staff,
		sections:    sections,
		places:      places,
		employments: employments,
		logger:      log,
	}
}

// RenameSectionRequest is the body of a section rename
type RenameSectionRequest struct {
	SectionName *string `json:"sectionName" validate:"omitempty,max=30"`
}

// Employee handlers

func (h *HRHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	bySalary, err := httputil.QueryBool(r, "orderBySalary", false)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	staff, err := h.staff.List(r.Context(), bySalary)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, staff)
}

// ExportEmployees streams the staff listing as an xlsx attachment
func (h *HRHandler) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	bySalary, err := httputil.QueryBool(r, "orderBySalary", false)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	staff, err := h.staff.List(r.Context(), bySalary)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	// Rendered into memory first so a failure can still become a JSON error.
	var buf bytes.Buffer
	if err := export.WriteStaffWorkbook(&buf, staff); err != nil {
		h.logger.Error().Err(err).Msg("failed to render staff workbook")
		httputil.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *HRHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathInt64(r, "staffId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	staff, err := h.staff.GetByID(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, staff)
}

func (h *HRHandler) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathInt64(r, "staffId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	history, err := h.employments.History(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, history)
}

func (h *HRHandler) Search(w http.ResponseWriter, r *http.Request) {
	name, err := httputil.QueryRequired(r, "name")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	staff, err := h.staff.Search(r.Context(), name, nil)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, staff)
}

func (h *HRHandler) SalaryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.staff.SalaryStats(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, stats)
}

// Section handlers

func (h *HRHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sections.List(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, sections)
}

func (h *HRHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathInt64(r, "sectionId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	section, err := h.sections.GetByID(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, section)
}

func (h *HRHandler) RenameSection(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathInt64(r, "sectionId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	var req RenameSectionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := h.sections.Rename(r.Context(), id, req.SectionName); err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.OK(w)
}

// Place handlers

func (h *HRHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.places.List(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, places)
}

func (h *HRHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathInt64(r, "placeId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	place, err := h.places.GetByID(r.Context(), id)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, place)
}

func (h *HRHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var place repository.Place
	if err := httputil.DecodeJSON(r, &place); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&place); err != nil {
		httputil.Error(w, err)
		return
	}

	created, err := h.places.Create(r.Context(), &place)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, created)
}

// Employment handlers

func (h *HRHandler) ListEmployments(w http.ResponseWriter, r *http.Request) {
	employments, err := h.employments.List(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, employments)
}
