// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "errors"

// =============================================================================
// USER TYPE
// =============================================================================

// User is the public identity of an account. It never carries the password;
// the session layer only ever sees this shape. The user ID names the storage
// namespace that holds the user's chats.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Validate checks a user record read back from storage.
func (u *User) Validate() error {
	if u.ID == "" {
		return errors.New("user: empty id")
	}
	if u.Email == "" {
		return errors.New("user: empty email")
	}
	return nil
}

// =============================================================================
// CREDENTIAL TYPE
// =============================================================================

// Credential is the stored account record, password included. It stays
// inside the identity store; no two credentials share an email.
//
// The password is stored as entered. The upstream product keeps plaintext
// credentials in client-only storage with no real security boundary, and
// this client preserves that behavior rather than inventing a scheme the
// service does not share.
type Credential struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Sanitize returns the public identity with the password stripped.
func (c *Credential) Sanitize() User {
	return User{
		ID:    c.ID,
		Email: c.Email,
		Name:  c.Name,
	}
}

// Validate checks a credential record read back from storage.
func (c *Credential) Validate() error {
	if c.ID == "" {
		return errors.New("credential: empty id")
	}
	if c.Email == "" {
		return errors.New("credential: empty email")
	}
	return nil
}
