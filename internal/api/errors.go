package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalid validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, intel.ErrCompanyRequired), errors.As(err, &invalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
