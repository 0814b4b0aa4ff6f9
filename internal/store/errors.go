package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., an account with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// Entity-specific errors

	// ErrEmailExists indicates that an account with the given email already
	// exists. Returned when attempting to sign up with an email that is
	// already indexed.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrNoSuchUser indicates that no account is indexed under the given
	// email.
	ErrNoSuchUser = fmt.Errorf("%w: user", ErrNotFound)

	// ErrBadPassword indicates the stored password hash did not verify
	// against the supplied password.
	ErrBadPassword = errors.New("password doesn't match")

	// ErrInvalidID indicates no account exists for the given ID. This covers
	// both tampered and stale bearer tokens.
	ErrInvalidID = fmt.Errorf("%w: account", ErrNotFound)

	// ErrNoTasks indicates the account exists but has never written a task
	// document. Distinct from an empty document.
	ErrNoTasks = fmt.Errorf("%w: tasks", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
