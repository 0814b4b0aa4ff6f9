package domain

import (
	"encoding/json"
	"hash/fnv"
	"time"
)

// ID is a 64-bit account identifier derived from the account's email.
//
// IDs are deterministic within a running process but are NOT stable across
// versions or implementations: a different hash function may assign a
// different ID to the same email. Never persist IDs or compare them across
// deployments. Collisions are possible and are not detected.
type ID uint64

// TaskDocument is the arbitrary JSON payload an account stores and retrieves.
// The backend treats it as opaque: it is wholesale-replaced on every write
// and never merged or inspected.
type TaskDocument = json.RawMessage

// Account represents a registered user of the task-list application.
// Accounts are created on signup and never mutated or deleted.
type Account struct {
	ID             ID        `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// DeriveID maps an email to its account identifier using a 64-bit FNV-1a
// hash. Pure function; any string is acceptable input.
func DeriveID(email string) ID {
	h := fnv.New64a()
	// hash.Hash.Write never returns an error
	_, _ = h.Write([]byte(email))
	return ID(h.Sum64())
}
