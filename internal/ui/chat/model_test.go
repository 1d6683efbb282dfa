// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morganforge/proton-tui/internal/model"
	"github.com/morganforge/proton-tui/internal/proton"
	"github.com/morganforge/proton-tui/internal/session"
	"github.com/morganforge/proton-tui/internal/storage"
)

func newTestModel(t *testing.T) (Model, *session.Store) {
	t.Helper()
	backend, err := storage.Open(filepath.Join(t.TempDir(), "proton.db"))
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	sessions := session.NewStore(backend)
	sessions.SetUser(&model.User{ID: "u1", Email: "a@b.com", Name: "Ada"})

	// The endpoint is never reached in these tests.
	client := proton.NewClient("http://127.0.0.1:1", "")
	return New(sessions, client), sessions
}

func TestSubmitCreatesChatWhenNoneSelected(t *testing.T) {
	m, sessions := newTestModel(t)
	require.Zero(t, sessions.ChatCount())

	m.input.SetValue("first question")
	m, _ = m.submit()

	require.Equal(t, 1, sessions.ChatCount())
	chat := sessions.CurrentChat()
	require.NotNil(t, chat)
	assert.Equal(t, "first question", chat.Title)
	require.Equal(t, 1, chat.MessageCount())
	assert.Equal(t, model.RoleUser, chat.Messages[0].Role)
	assert.Empty(t, m.input.Value(), "input should clear on submit")
}

func TestSubmitAppendsToSelectedChat(t *testing.T) {
	m, sessions := newTestModel(t)
	id := sessions.CreateNewChat()

	m.input.SetValue("hello")
	m, _ = m.submit()

	require.Equal(t, 1, sessions.ChatCount(), "no extra chat created")
	chat := sessions.CurrentChat()
	require.Equal(t, id, chat.ID)
	assert.Equal(t, 1, chat.MessageCount())
}

func TestSubmitIgnoredWhileStreaming(t *testing.T) {
	m, sessions := newTestModel(t)
	sessions.CreateNewChat()
	m.streaming = true

	m.input.SetValue("queued while busy")
	m, _ = m.submit()

	assert.Zero(t, sessions.CurrentChat().MessageCount())
	assert.Equal(t, "queued while busy", m.input.Value())
}

func TestSubmitIgnoresEmptyInput(t *testing.T) {
	m, sessions := newTestModel(t)
	sessions.CreateNewChat()

	m, _ = m.submit()
	assert.Zero(t, sessions.CurrentChat().MessageCount())
}

func TestStreamCompleteAppendsToPinnedChat(t *testing.T) {
	m, sessions := newTestModel(t)

	pinned := sessions.CreateNewChat()
	sessions.AddMessageToChat(pinned, model.RoleUser, "question in first chat")

	// Selection moves to another chat while the request is in flight.
	other := sessions.CreateNewChat()
	require.Equal(t, other, sessions.CurrentChatID())

	m.streaming = true
	m.streamChatID = pinned
	m, _ = m.Update(StreamCompleteMsg{ChatID: pinned, Content: "the answer"})

	chats := sessions.Chats()
	var pinnedChat, otherChat *model.Chat
	for _, c := range chats {
		switch c.ID {
		case pinned:
			pinnedChat = c
		case other:
			otherChat = c
		}
	}
	require.NotNil(t, pinnedChat)
	require.NotNil(t, otherChat)

	assert.Equal(t, 2, pinnedChat.MessageCount(), "reply lands in the chat that made the request")
	assert.Equal(t, model.RoleAssistant, pinnedChat.Messages[1].Role)
	assert.Equal(t, "the answer", pinnedChat.Messages[1].Content)
	assert.Zero(t, otherChat.MessageCount(), "selected chat stays untouched")
	assert.False(t, m.streaming)
}

func TestStreamCompleteOnDeletedChatIsDropped(t *testing.T) {
	m, sessions := newTestModel(t)
	pinned := sessions.CreateNewChat()
	sessions.DeleteChat(pinned)

	m.streaming = true
	m.streamChatID = pinned
	m, _ = m.Update(StreamCompleteMsg{ChatID: pinned, Content: "orphan reply"})

	assert.Zero(t, sessions.ChatCount())
	assert.False(t, m.streaming)
}

func TestStreamErrorShowsGenericNotice(t *testing.T) {
	m, sessions := newTestModel(t)
	id := sessions.CreateNewChat()
	sessions.AddMessageToChat(id, model.RoleUser, "doomed question")

	m.streaming = true
	m.streamChatID = id
	m, _ = m.Update(StreamCompleteMsg{ChatID: id, Err: assert.AnError})

	assert.Equal(t, genericFailureNotice, m.errText)
	// No assistant message is appended on failure.
	assert.Equal(t, 1, sessions.CurrentChat().MessageCount())
}

func TestNewChatKey(t *testing.T) {
	m, sessions := newTestModel(t)

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 1, sessions.ChatCount())
	assert.NotEmpty(t, sessions.CurrentChatID())
}

func TestDeleteChatKeyRepairsSelection(t *testing.T) {
	m, sessions := newTestModel(t)
	older := sessions.CreateNewChat()
	sessions.CreateNewChat()

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Equal(t, 1, sessions.ChatCount())
	assert.Equal(t, older, sessions.CurrentChatID())
}

func TestSelectAdjacent(t *testing.T) {
	m, sessions := newTestModel(t)
	oldest := sessions.CreateNewChat()
	middle := sessions.CreateNewChat()
	newest := sessions.CreateNewChat()
	require.Equal(t, newest, sessions.CurrentChatID())

	// List is newest-first, so "next" walks toward older chats.
	m.selectAdjacent(1)
	assert.Equal(t, middle, sessions.CurrentChatID())
	m.selectAdjacent(1)
	assert.Equal(t, oldest, sessions.CurrentChatID())
	m.selectAdjacent(1)
	assert.Equal(t, oldest, sessions.CurrentChatID(), "clamped at the end")

	m.selectAdjacent(-1)
	assert.Equal(t, middle, sessions.CurrentChatID())
}
