package handler

import (
	"net/http"

	"github.com/hrdesk/hr-backend/internal/hr/service"
	"github.com/hrdesk/hr-backend/pkg/httputil"
)

// EmployeeHandler serves the self-service endpoints
type EmployeeHandler struct {
	staff *service.StaffService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(staff *service.StaffService) *EmployeeHandler {
	return &EmployeeHandler{
		staff: staff,
	}
}

// PhoneRequest is the body of a phone update. A null phoneNumber clears the number.
type PhoneRequest struct {
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
}

// Get returns one staff member
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// UpdatePhone replaces the caller's phone number
func (h *EmployeeHandler) UpdatePhone(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathInt64(r, "staffId")
	if err != nil {
		httputil.Error(w, err)
		return
	}

	var req PhoneRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := httputil.Validate(&req); err != nil {
		httputil.Error(w, err)
		return
	}

	if err := h.staff.UpdatePhone(r.Context(), id, req.PhoneNumber); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.OK(w)
}
