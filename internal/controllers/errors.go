package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
)

// clientErrors are the errors caused by invalid requests.
var clientErrors = []error{
	types.ErrValidation,
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	httputil.ErrInvalidUUID,
	errMissingField,
}

// status returns the HTTP status to use for an error.
//
// Errors that are not known to be caused by the request are server errors.
func status(err error) int {
	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrBudgetNotUnique) {
		return http.StatusConflict
	}

	for _, e := range clientErrors {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

var errMissingField = errors.New("missing required field")

func missingField(param string) error {
	return fmt.Errorf("%w: %s", errMissingField, param)
}
