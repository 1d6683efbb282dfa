// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/morganforge/proton-tui/internal/proton"
)

// TitleMaxRunes is the number of runes of the first user message kept as the
// auto-derived chat title. Longer messages get an ellipsis marker appended.
const TitleMaxRunes = 50

// DefaultTitle is the title of a chat before its first user message arrives.
const DefaultTitle = "New Chat"

// =============================================================================
// CHAT TYPE
// =============================================================================

// Chat is a titled, ordered conversation owned by one user. Ownership is
// implied by the storage namespace, not recorded on the chat itself.
type Chat struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Messages  []*Message `json:"messages"`
	CreatedAt int64      `json:"createdAt"` // Unix milliseconds
	UpdatedAt int64      `json:"updatedAt"` // Unix milliseconds
}

// NewChat creates an empty chat with a generated ID and the default title.
func NewChat() *Chat {
	now := nowMillis()
	return &Chat{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		Messages:  make([]*Message, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage constructs a message with a fresh ID and current timestamp,
// appends it, and bumps UpdatedAt. When the appended message is the chat's
// first and is user-authored, the title is derived from its content.
func (c *Chat) AddMessage(role Role, content string) *Message {
	first := len(c.Messages) == 0

	msg := NewMessage(role, content)
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = nowMillis()

	if first && role == RoleUser {
		c.Title = TitleFromContent(content)
	}

	return msg
}

// SetTitle replaces the title and bumps UpdatedAt.
func (c *Chat) SetTitle(title string) {
	c.Title = title
	c.UpdatedAt = nowMillis()
}

// LastMessage returns the most recent message, or nil if the chat is empty.
func (c *Chat) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// MessageCount returns the number of messages.
func (c *Chat) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Chat) IsEmpty() bool {
	return len(c.Messages) == 0
}

// UpdatedTime returns UpdatedAt as a time.Time.
func (c *Chat) UpdatedTime() time.Time {
	return time.UnixMilli(c.UpdatedAt)
}

// Clone creates a deep copy of the chat.
func (c *Chat) Clone() *Chat {
	clone := &Chat{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  make([]*Message, len(c.Messages)),
	}
	for i, msg := range c.Messages {
		msgCopy := *msg
		clone.Messages[i] = &msgCopy
	}
	return clone
}

// =============================================================================
// TITLE DERIVATION
// =============================================================================

// TitleFromContent derives a chat title from message content: the first
// TitleMaxRunes runes, with "..." appended only when content was longer.
// Rune-based slicing keeps multi-byte characters intact.
func TitleFromContent(content string) string {
	runes := []rune(content)
	if len(runes) <= TitleMaxRunes {
		return content
	}
	return string(runes[:TitleMaxRunes]) + "..."
}

// =============================================================================
// COMPLETION CONVERSION
// =============================================================================

// ToProtonMessages converts the chat history to the completion endpoint's
// wire format, preserving append order.
func (c *Chat) ToProtonMessages() []proton.ChatMessage {
	messages := make([]proton.ChatMessage, 0, len(c.Messages))
	for _, msg := range c.Messages {
		if !msg.Role.Valid() {
			continue
		}
		messages = append(messages, proton.ChatMessage{
			Role:    msg.Role.String(),
			Content: msg.Content,
		})
	}
	return messages
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks a chat read back from storage, including every message.
func (c *Chat) Validate() error {
	if c.ID == "" {
		return errors.New("chat: empty id")
	}
	if c.CreatedAt < 0 || c.UpdatedAt < 0 {
		return errors.New("chat: negative timestamp")
	}
	for _, msg := range c.Messages {
		if msg == nil {
			return errors.New("chat: nil message")
		}
		if err := msg.Validate(); err != nil {
			return err
		}
	}
	return nil
}
