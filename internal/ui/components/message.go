// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/proton-tui/internal/model"
	"github.com/morganforge/proton-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MessageRenderer renders transcript turns. Assistant content goes through a
// markdown renderer; user content is shown verbatim in a right-aligned
// bubble.
type MessageRenderer struct {
	width    int
	markdown *glamour.TermRenderer
}

// NewMessageRenderer creates a renderer for the given pane width. When the
// markdown renderer cannot be built the renderer falls back to plain text.
func NewMessageRenderer(width int) *MessageRenderer {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}

	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		md = nil
	}

	return &MessageRenderer{width: width, markdown: md}
}

// Width returns the pane width the renderer wraps to.
func (r *MessageRenderer) Width() int {
	return r.width
}

// RenderMessage draws one transcript turn with its speaker label.
func (r *MessageRenderer) RenderMessage(msg *model.Message) string {
	label := styles.SpeakerLabel.Render(msg.Role.DisplayName())

	switch msg.Role {
	case model.RoleUser:
		bubble := styles.UserBubble.MaxWidth(r.width - 2).Render(msg.Content)
		block := label + "\n" + bubble
		return lipgloss.PlaceHorizontal(r.width, lipgloss.Right, block)
	default:
		return label + "\n" + r.renderAssistantBody(msg.Content)
	}
}

// RenderPending draws the in-progress assistant turn: the streamed text so
// far plus an animated indicator.
func (r *MessageRenderer) RenderPending(partial, indicator string) string {
	label := styles.SpeakerLabel.Render(model.RoleAssistant.DisplayName())
	if partial == "" {
		return label + "\n" + styles.AssistantBubble.Render(indicator)
	}
	// Raw text while streaming; markdown needs the complete document.
	body := styles.AssistantBubble.MaxWidth(r.width - 2).Render(partial + " " + indicator)
	return label + "\n" + body
}

// RenderTranscript draws a whole chat, oldest first, separated by blank
// lines.
func (r *MessageRenderer) RenderTranscript(chat *model.Chat) string {
	if chat == nil || chat.IsEmpty() {
		return r.RenderEmptyState()
	}

	parts := make([]string, 0, len(chat.Messages))
	for _, msg := range chat.Messages {
		parts = append(parts, r.RenderMessage(msg))
	}
	return strings.Join(parts, "\n\n")
}

// RenderEmptyState draws the hero shown for an empty or absent chat.
func (r *MessageRenderer) RenderEmptyState() string {
	return styles.EmptyState.Width(r.width).Render("\nStart a new conversation\n\nAsk Proton AI anything.")
}

// renderAssistantBody renders assistant markdown, falling back to the plain
// bubble on render failure.
func (r *MessageRenderer) renderAssistantBody(content string) string {
	if r.markdown != nil {
		if out, err := r.markdown.Render(content); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return styles.AssistantBubble.MaxWidth(r.width - 2).Render(content)
}
