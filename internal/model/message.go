// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Proton AI"
	default:
		return string(r)
	}
}

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single turn in a chat. Messages are immutable once
// appended; ordering within a chat is append order.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// NewMessage creates a message with a generated ID and the current time.
func NewMessage(role Role, content string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: nowMillis(),
	}
}

// Time returns the message timestamp as a time.Time.
func (m *Message) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}

// Validate checks a message read back from storage.
func (m *Message) Validate() error {
	if m.ID == "" {
		return errors.New("message: empty id")
	}
	if !m.Role.Valid() {
		return errors.New("message: unknown role " + string(m.Role))
	}
	if m.Timestamp < 0 {
		return errors.New("message: negative timestamp")
	}
	return nil
}

// nowMillis returns the current time in Unix milliseconds, the unit every
// persisted timestamp in this package uses.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}
