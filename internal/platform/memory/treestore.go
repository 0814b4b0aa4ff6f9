// Package memory provides the in-memory implementation of the store
// interfaces. All state lives for the lifetime of the process and is
// discarded on shutdown; that is a deliberate property of the design, not
// an omission.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/treetap/treetap-api/internal/domain"
	"github.com/treetap/treetap-api/internal/service/auth"
	"github.com/treetap/treetap-api/internal/store"
)

// TreeStore implements store.AccountStore with three maps guarded by one
// mutex. The single lock covers every operation on all three maps, so the
// email index, the account map, and the task documents are never observed
// in a mutually inconsistent state. Holding the lock across password
// hashing serializes signups and logins; that throughput ceiling is an
// accepted property of the design.
type TreeStore struct {
	mu       sync.Mutex
	emails   map[string]domain.ID
	accounts map[domain.ID]domain.Account
	tasks    map[domain.ID]domain.TaskDocument

	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
}

// NewTreeStore creates an empty TreeStore using the given password hasher
// and verifier.
func NewTreeStore(hasher auth.PasswordHasher, verifier auth.PasswordVerifier) *TreeStore {
	return &TreeStore{
		emails:   make(map[string]domain.ID),
		accounts: make(map[domain.ID]domain.Account),
		tasks:    make(map[domain.ID]domain.TaskDocument),
		hasher:   hasher,
		verifier: verifier,
	}
}

// Ensure TreeStore implements store.AccountStore
var _ store.AccountStore = (*TreeStore)(nil)

// CreateAccount implements store.AccountStore.CreateAccount. The duplicate
// check and the two insertions happen under one lock acquisition.
func (s *TreeStore) CreateAccount(ctx context.Context, email, password string) (domain.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emails[email]; exists {
		return 0, store.ErrEmailExists
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		// Hashing only fails on misconfiguration, which is fatal at
		// startup, not a per-request condition.
		return 0, err
	}

	id := domain.DeriveID(email)
	s.emails[email] = id
	s.accounts[id] = domain.Account{
		ID:             id,
		Email:          email,
		HashedPassword: hashed,
		CreatedAt:      time.Now().UTC(),
	}

	return id, nil
}

// Authenticate implements store.AccountStore.Authenticate.
func (s *TreeStore) Authenticate(ctx context.Context, email, password string) (domain.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.emails[email]
	if !exists {
		return 0, store.ErrNoSuchUser
	}

	account := s.accounts[id]
	if err := s.verifier.Compare(account.HashedPassword, password); err != nil {
		return 0, store.ErrBadPassword
	}

	return id, nil
}

// GetTasks implements store.AccountStore.GetTasks. The returned document is
// a copy; callers cannot mutate stored state through it.
func (s *TreeStore) GetTasks(ctx context.Context, id domain.ID) (domain.TaskDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[id]; !exists {
		return nil, store.ErrInvalidID
	}

	doc, exists := s.tasks[id]
	if !exists {
		return nil, store.ErrNoTasks
	}

	out := make(domain.TaskDocument, len(doc))
	copy(out, doc)
	return out, nil
}

// PutTasks implements store.AccountStore.PutTasks. The stored document is a
// copy of the argument, replacing any previous document wholesale.
func (s *TreeStore) PutTasks(ctx context.Context, id domain.ID, doc domain.TaskDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[id]; !exists {
		return store.ErrInvalidID
	}

	stored := make(domain.TaskDocument, len(doc))
	copy(stored, doc)
	s.tasks[id] = stored
	return nil
}
