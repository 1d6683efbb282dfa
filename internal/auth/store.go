// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/morganforge/proton-tui/internal/model"
	"github.com/morganforge/proton-tui/internal/storage"
)

// =============================================================================
// IDENTITY STORE
// =============================================================================

// Store tracks the signed-in user and the local account list. Safe for
// concurrent use. All mutations persist synchronously; a persistence failure
// leaves the in-memory state applied and reports the error through the last
// error accessor rather than failing the sign-in.
type Store struct {
	mu sync.Mutex

	backend *storage.Store
	current *model.User
	lastErr error
}

// NewStore creates an identity store backed by the given storage, restoring
// any persisted session.
func NewStore(backend *storage.Store) *Store {
	s := &Store{backend: backend}
	user, err := backend.CurrentUser()
	if err != nil {
		s.lastErr = err
	}
	s.current = user
	return s
}

// CurrentUser returns the signed-in user, or nil when signed out. The
// returned value is a copy.
func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// LastError returns the most recent persistence error, if any.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// =============================================================================
// LOGIN / SIGNUP / LOGOUT
// =============================================================================

// Login matches email and password against the stored accounts. On success
// the matched account becomes the signed-in user, the session is persisted,
// and the public identity is returned. Returns false when no account matches;
// the caller shows a single generic failure message either way.
func (s *Store) Login(email, password string) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.backend.Credentials()
	if err != nil {
		s.lastErr = err
		return nil, false
	}

	for i := range creds {
		if creds[i].Email == email && creds[i].Password == password {
			user := creds[i].Sanitize()
			s.current = &user
			if err := s.backend.SetCurrentUser(&user); err != nil {
				s.lastErr = err
			}
			out := user
			return &out, true
		}
	}
	return nil, false
}

// Signup registers a new account and signs it in. Returns false when an
// account with the same email already exists. The full credential, password
// included, joins the account list; the session holds only the public
// identity.
func (s *Store) Signup(name, email, password string) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.backend.Credentials()
	if err != nil {
		s.lastErr = err
		return nil, false
	}

	for i := range creds {
		if creds[i].Email == email {
			return nil, false
		}
	}

	cred := model.Credential{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
	}
	creds = append(creds, cred)
	if err := s.backend.SetCredentials(creds); err != nil {
		s.lastErr = err
	}

	user := cred.Sanitize()
	s.current = &user
	if err := s.backend.SetCurrentUser(&user); err != nil {
		s.lastErr = err
	}

	out := user
	return &out, true
}

// Logout clears the signed-in user and removes the persisted session. The
// account list and chat histories stay intact.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.backend.ClearCurrentUser(); err != nil {
		s.lastErr = err
	}
}
