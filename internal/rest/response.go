package rest

import (
	"errors"
	"net/http"

	"ballisticmarket/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Error string `json:"error"`
}

// httpStatus maps the domain error taxonomy onto HTTP status codes. Anything
// unrecognized is treated as a storage-level failure.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPreconditionFailed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorBody hides internals behind a generic message for 5xx responses; the
// full error has already been logged.
func errorBody(err error) ResponseError {
	if httpStatus(err) == http.StatusInternalServerError {
		return ResponseError{Error: "Database error"}
	}
	return ResponseError{Error: err.Error()}
}
