package store

import (
	"context"

	"github.com/treetap/treetap-api/internal/domain"
)

// AccountStore defines the interface for account and task-document
// persistence. All four operations on an implementation observe the three
// underlying structures (email index, accounts, task documents) atomically:
// no operation may see them in a mutually inconsistent state.
type AccountStore interface {
	// CreateAccount registers a new account for the email, hashing the
	// password internally, and returns the derived account ID.
	// Returns ErrEmailExists if the email is already taken. The existence
	// check and the insertion are a single atomic step with respect to
	// other store operations.
	CreateAccount(ctx context.Context, email, password string) (domain.ID, error)

	// Authenticate verifies the email/password pair and returns the
	// account ID on success.
	// Returns ErrNoSuchUser if the email is not indexed and ErrBadPassword
	// if the stored hash does not verify.
	Authenticate(ctx context.Context, email, password string) (domain.ID, error)

	// GetTasks returns a copy of the account's task document.
	// Returns ErrInvalidID if no account exists for id, and ErrNoTasks if
	// the account has never written a document.
	GetTasks(ctx context.Context, id domain.ID) (domain.TaskDocument, error)

	// PutTasks replaces the account's task document wholesale, creating it
	// if absent. Returns ErrInvalidID if no account exists for id.
	PutTasks(ctx context.Context, id domain.ID, doc domain.TaskDocument) error
}
