package handler

import (
	"net/http"

	"github.com/hrdesk/hr-backend/internal/hr/service"
	"github.com/hrdesk/hr-backend/pkg/errors"
	"github.com/hrdesk/hr-backend/pkg/httputil"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// Login checks a staff id and password and returns the caller's identity and role.
// Any failure, a malformed body included, answers 401 with an empty body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, errors.InvalidCredentials())
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, response)
}
