package database

import (
	stderrors "errors"
	"strings"

	"github.com/lib/pq"

	"github.com/hrdesk/hr-backend/pkg/errors"
)

// MapPQError converts a PostgreSQL error to an AppError with meaningful messages.
// Returns nil if the error is not a pq.Error.
func MapPQError(err error) *errors.AppError {
	var pqErr *pq.Error
	if !stderrors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	// Check constraint violation (23514)
	case "23514":
		return mapCheckConstraint(pqErr)

	// Unique constraint violation (23505)
	case "23505":
		return errors.Conflict("a record with these values already exists")

	// Foreign key violation (23503)
	case "23503":
		return mapForeignKey(pqErr)

	// Not null violation (23502)
	case "23502":
		col := pqErr.Column
		if col == "" {
			col = "required field"
		}
		return errors.Validation(map[string]string{
			col: "must not be empty",
		})

	// String too long (22001)
	case "22001":
		return errors.BadRequest("value too long for column")

	default:
		return nil
	}
}

func mapCheckConstraint(pqErr *pq.Error) *errors.AppError {
	constraint := pqErr.Constraint

	switch {
	case strings.Contains(constraint, "salary_non_negative"):
		return errors.Validation(map[string]string{
			"salary": "must not be negative",
		})

	case strings.Contains(constraint, "salary_band"):
		return errors.Validation(map[string]string{
			"maxSalary": "must not be lower than minSalary",
		})

	default:
		return errors.BadRequest("data validation failed: " + constraint)
	}
}

func mapForeignKey(pqErr *pq.Error) *errors.AppError {
	switch {
	case strings.Contains(pqErr.Constraint, "state_id"):
		return errors.Validation(map[string]string{
			"stateId": "unknown state",
		})
	default:
		return errors.BadRequest("referenced record does not exist")
	}
}
