package httputil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hrdesk/hr-backend/pkg/errors"
)

// ErrorBody is written for errors that carry a message to the client
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// JSON sends data as a bare JSON document
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(data)
}

// OK sends a 200 with no body
func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

// Error sends an error response.
// Not-found and credential failures are signalled by status alone, with an empty body.
func Error(w http.ResponseWriter, err error) {
	var appErr *errors.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(appErr, errors.ErrNotFound),
			errors.Is(appErr, errors.ErrInvalidCredentials):
			w.WriteHeader(appErr.StatusCode)
			return
		}

		JSON(w, appErr.StatusCode, ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	JSON(w, http.StatusInternalServerError, ErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

// DecodeJSON decodes the request body into the provided struct
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.BadRequest("invalid JSON body")
	}
	return nil
}

// PathInt64 parses a numeric chi URL parameter.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.BadRequest("invalid " + name + ": " + raw)
	}
	return id, nil
}

// QueryBool parses an optional boolean query parameter, returning def when absent.
func QueryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.BadRequest("invalid " + name + ": " + raw)
	}
	return v, nil
}

// QueryRequired returns a query parameter that must be present (it may be empty).
func QueryRequired(r *http.Request, name string) (string, error) {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return "", errors.BadRequest("missing query parameter: " + name)
	}
	return values[0], nil
}
