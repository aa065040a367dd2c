// Package server provides the HTTP REST API for the internship portal.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Prajwal471/PM-Internship-Portal/internal/recommend"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		incomplete      *recommend.ErrProfileIncomplete
		profileNotFound *recommend.ErrProfileNotFound
		postingNotFound *recommend.ErrPostingNotFound
		validation      *ErrValidation
	)
	switch {
	case errors.As(err, &incomplete), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &profileNotFound), errors.As(err, &postingNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
