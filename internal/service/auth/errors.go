package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingAuthHeader indicates no Authorization header was present on
	// the request.
	ErrMissingAuthHeader = errors.New("auth: missing header")

	// ErrTooManyAuthHeaders indicates more than one Authorization header was
	// present on the request.
	ErrTooManyAuthHeaders = errors.New("auth: too many headers")

	// ErrMissingBearerScheme indicates the Authorization header was not of
	// the form "Bearer <token>".
	ErrMissingBearerScheme = errors.New("auth: missing Bearer scheme")

	// ErrTokenDecode indicates the token was not valid base64.
	ErrTokenDecode = errors.New("auth: while base64 decoding")

	// ErrTokenPayload indicates the decoded token bytes were not the
	// expected JSON payload.
	ErrTokenPayload = errors.New("auth: while JSON decoding")

	// ErrPasswordMismatch indicates the supplied password does not verify
	// against the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)
