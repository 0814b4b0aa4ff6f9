package api

import (
	"errors"
	"net/http"

	"github.com/treetap/treetap-api/internal/service/auth"
	"github.com/treetap/treetap-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Application errors are client errors (400);
// credential-extraction errors are authentication errors (401).
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors: the bearer credential could not be extracted
	// from the request at all.
	case errors.Is(err, auth.ErrMissingAuthHeader),
		errors.Is(err, auth.ErrTooManyAuthHeaders),
		errors.Is(err, auth.ErrMissingBearerScheme),
		errors.Is(err, auth.ErrTokenDecode),
		errors.Is(err, auth.ErrTokenPayload):
		return http.StatusUnauthorized

	// Application errors: the request was well-formed but cannot be
	// satisfied. All of these are surfaced as 400 with a stable message.
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrNoSuchUser),
		errors.Is(err, store.ErrBadPassword),
		errors.Is(err, store.ErrInvalidID),
		errors.Is(err, store.ErrNoTasks):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-visible message for an error. Each
// component-level failure translates 1:1 into a stable message; unknown
// errors get a generic one so internal details never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "an unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "email exists"
	case errors.Is(err, store.ErrNoSuchUser):
		return "no such user"
	case errors.Is(err, store.ErrBadPassword):
		return "password doesn't match"
	case errors.Is(err, store.ErrInvalidID):
		return "invalid token"
	case errors.Is(err, store.ErrNoTasks):
		return "no tasks"

	// Credential-extraction errors keep their own messages; they are
	// constructed for the client and carry no internal detail.
	case errors.Is(err, auth.ErrMissingAuthHeader),
		errors.Is(err, auth.ErrTooManyAuthHeaders),
		errors.Is(err, auth.ErrMissingBearerScheme),
		errors.Is(err, auth.ErrTokenDecode),
		errors.Is(err, auth.ErrTokenPayload):
		return err.Error()

	default:
		return "an unexpected error occurred"
	}
}
