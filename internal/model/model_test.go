// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// =============================================================================
// TITLE DERIVATION TESTS
// =============================================================================

func TestTitleFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short stays whole", "How do tides work?", "How do tides work?"},
		{"44 chars no ellipsis", strings.Repeat("a", 44), strings.Repeat("a", 44)},
		{"exactly 50 no ellipsis", strings.Repeat("b", 50), strings.Repeat("b", 50)},
		{"51 chars gets ellipsis", strings.Repeat("c", 51), strings.Repeat("c", 50) + "..."},
		{"60 chars gets ellipsis", strings.Repeat("x", 60), strings.Repeat("x", 50) + "..."},
		{"empty", "", ""},
		{"multibyte counted as runes", strings.Repeat("é", 55), strings.Repeat("é", 50) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleFromContent(tt.content); got != tt.want {
				t.Errorf("TitleFromContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddMessageTitleRules(t *testing.T) {
	t.Run("first user message sets title", func(t *testing.T) {
		chat := NewChat()
		chat.AddMessage(RoleUser, "hello there")
		if chat.Title != "hello there" {
			t.Errorf("Title = %q, want %q", chat.Title, "hello there")
		}
	})

	t.Run("first assistant message keeps default", func(t *testing.T) {
		chat := NewChat()
		chat.AddMessage(RoleAssistant, "greetings")
		if chat.Title != DefaultTitle {
			t.Errorf("Title = %q, want %q", chat.Title, DefaultTitle)
		}
	})

	t.Run("later user message does not retitle", func(t *testing.T) {
		chat := NewChat()
		chat.AddMessage(RoleAssistant, "greetings")
		chat.AddMessage(RoleUser, "a question")
		if chat.Title != DefaultTitle {
			t.Errorf("Title = %q, want %q", chat.Title, DefaultTitle)
		}
	})
}

// =============================================================================
// CHAT TESTS
// =============================================================================

func TestNewChat(t *testing.T) {
	chat := NewChat()

	if chat.ID == "" {
		t.Error("NewChat() ID is empty")
	}
	if chat.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", chat.Title, DefaultTitle)
	}
	if !chat.IsEmpty() {
		t.Error("NewChat() should be empty")
	}
	if chat.CreatedAt != chat.UpdatedAt {
		t.Error("CreatedAt and UpdatedAt should match at creation")
	}
	if err := chat.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestAddMessageAppendsInOrder(t *testing.T) {
	chat := NewChat()
	chat.AddMessage(RoleUser, "one")
	chat.AddMessage(RoleAssistant, "two")
	chat.AddMessage(RoleUser, "three")

	if chat.MessageCount() != 3 {
		t.Fatalf("MessageCount() = %d, want 3", chat.MessageCount())
	}
	got := []string{chat.Messages[0].Content, chat.Messages[1].Content, chat.Messages[2].Content}
	want := []string{"one", "two", "three"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Messages[%d].Content = %q, want %q", i, got[i], want[i])
		}
	}
	if last := chat.LastMessage(); last == nil || last.Content != "three" {
		t.Errorf("LastMessage() = %+v", last)
	}
}

func TestChatJSONFieldNames(t *testing.T) {
	chat := NewChat()
	chat.AddMessage(RoleUser, "hi")

	data, err := json.Marshal(chat)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"createdAt"`, `"updatedAt"`, `"timestamp"`, `"messages"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("marshaled chat missing %s field: %s", field, data)
		}
	}
}

func TestChatValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Chat)
		wantErr bool
	}{
		{"valid", func(c *Chat) {}, false},
		{"empty id", func(c *Chat) { c.ID = "" }, true},
		{"negative timestamp", func(c *Chat) { c.CreatedAt = -1 }, true},
		{"nil message", func(c *Chat) { c.Messages = append(c.Messages, nil) }, true},
		{"message without id", func(c *Chat) { c.Messages[0].ID = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := NewChat()
			chat.AddMessage(RoleUser, "hi")
			tt.mutate(chat)
			err := chat.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	chat := NewChat()
	chat.AddMessage(RoleUser, "original")

	clone := chat.Clone()
	clone.Title = "changed"
	clone.Messages[0].Content = "changed"

	if chat.Title == "changed" {
		t.Error("Clone() shares title with original")
	}
	if chat.Messages[0].Content == "changed" {
		t.Error("Clone() shares messages with original")
	}
}

func TestToProtonMessages(t *testing.T) {
	chat := NewChat()
	chat.AddMessage(RoleUser, "question")
	chat.AddMessage(RoleAssistant, "answer")
	chat.Messages = append(chat.Messages, &Message{ID: "x", Role: Role("tool"), Content: "skipped"})

	msgs := chat.ToProtonMessages()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2 (invalid role dropped)", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "question" {
		t.Errorf("msgs[0] = %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" || msgs[1].Content != "answer" {
		t.Errorf("msgs[1] = %+v", msgs[1])
	}
}

// =============================================================================
// MESSAGE AND ROLE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	msg := NewMessage(RoleUser, "hello")

	if msg.ID == "" {
		t.Error("NewMessage() ID is empty")
	}
	if msg.Timestamp <= 0 {
		t.Errorf("Timestamp = %d, want positive", msg.Timestamp)
	}
	if err := msg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestRole(t *testing.T) {
	if !RoleUser.Valid() || !RoleAssistant.Valid() {
		t.Error("built-in roles should be valid")
	}
	if Role("system").Valid() {
		t.Error("unknown role should be invalid")
	}
	if RoleUser.DisplayName() != "You" {
		t.Errorf("RoleUser.DisplayName() = %q", RoleUser.DisplayName())
	}
	if RoleAssistant.DisplayName() != "Proton AI" {
		t.Errorf("RoleAssistant.DisplayName() = %q", RoleAssistant.DisplayName())
	}
}

// =============================================================================
// CREDENTIAL TESTS
// =============================================================================

func TestCredentialSanitize(t *testing.T) {
	cred := Credential{ID: "u1", Name: "Ada", Email: "ada@example.com", Password: "secret"}
	user := cred.Sanitize()

	if user.ID != "u1" || user.Email != "ada@example.com" || user.Name != "Ada" {
		t.Errorf("Sanitize() = %+v", user)
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("sanitized user leaks password")
	}
}
