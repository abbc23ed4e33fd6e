package v1

import (
	"errors"
	"net/http"

	"github.com/kiracukai/backend/internal/models"
	"github.com/kiracukai/backend/internal/tax"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database or engine error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, tax.ErrNoSchedule) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errProfileParameter = errors.New("the profile parameter must be set")
	errYearParameter    = errors.New("the year parameter must be set")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
