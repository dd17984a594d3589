package v1

import (
	"errors"
	"net/http"

	"github.com/kleinbuch/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no entry matching your query"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Report errors
var (
	errYearInvalid   = errors.New("the year must be a four digit calendar year")
	errFormatInvalid = errors.New("the format query parameter only supports 'json' and 'text'")
)
