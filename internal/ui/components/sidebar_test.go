// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/morganforge/proton-tui/internal/model"
)

func TestSidebarRenderShowsChatsAndActions(t *testing.T) {
	sidebar := NewSidebar(32, 20)

	first := model.NewChat()
	first.AddMessage(model.RoleUser, "Tides")
	second := model.NewChat()
	second.AddMessage(model.RoleUser, "Orbits")

	out := sidebar.Render("Ada", []*model.Chat{second, first}, second.ID, -1)

	for _, want := range []string{"Proton AI", "Ada", "New Chat", "Sign Out", "Tides", "Orbits"} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar output missing %q", want)
		}
	}
}

func TestSidebarTruncatesLongTitles(t *testing.T) {
	sidebar := NewSidebar(28, 20)

	chat := model.NewChat()
	chat.SetTitle(strings.Repeat("verylongtitle", 10))

	out := sidebar.Render("Ada", []*model.Chat{chat}, "", -1)
	if !strings.Contains(out, "...") {
		t.Error("long title should be truncated with ellipsis")
	}
	if strings.Contains(out, chat.Title) {
		t.Error("full title should not appear in narrow sidebar")
	}
}

func TestSidebarRenderEmpty(t *testing.T) {
	sidebar := NewSidebar(32, 20)
	out := sidebar.RenderEmpty("Ada")
	if !strings.Contains(out, "No chats yet") {
		t.Error("empty sidebar missing placeholder")
	}
}

func TestMessageRendererTranscript(t *testing.T) {
	r := NewMessageRenderer(60)

	chat := model.NewChat()
	chat.AddMessage(model.RoleUser, "What is a tide?")
	chat.AddMessage(model.RoleAssistant, "A tide is the rise and fall of sea levels.")

	out := r.RenderTranscript(chat)
	if !strings.Contains(out, "You") {
		t.Error("transcript missing user speaker label")
	}
	if !strings.Contains(out, "Proton AI") {
		t.Error("transcript missing assistant speaker label")
	}
	if !strings.Contains(out, "What is a tide?") {
		t.Error("transcript missing user content")
	}
}

func TestMessageRendererEmptyStates(t *testing.T) {
	r := NewMessageRenderer(60)

	if out := r.RenderTranscript(nil); !strings.Contains(out, "Start a new conversation") {
		t.Error("nil chat should render the empty state hero")
	}
	if out := r.RenderTranscript(model.NewChat()); !strings.Contains(out, "Start a new conversation") {
		t.Error("empty chat should render the empty state hero")
	}
}

func TestMessageRendererPending(t *testing.T) {
	r := NewMessageRenderer(60)

	out := r.RenderPending("Partial answ", "...")
	if !strings.Contains(out, "Partial answ") {
		t.Error("pending render missing streamed text")
	}

	out = r.RenderPending("", "⣾")
	if !strings.Contains(out, "⣾") {
		t.Error("pending render missing indicator when no text yet")
	}
}
