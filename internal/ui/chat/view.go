// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/proton-tui/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	user := m.sessions.User()
	userName := ""
	if user != nil {
		userName = user.Name
	}

	chats := m.sessions.Chats()
	var left string
	if len(chats) == 0 {
		left = m.sidebar.RenderEmpty(userName)
	} else {
		left = m.sidebar.Render(userName, chats, m.sessions.CurrentChatID(), -1)
	}

	inputStyle := styles.InputBoxFocused
	if m.streaming {
		inputStyle = styles.InputBox
	}
	inputView := inputStyle.Width(m.viewport.Width - 2).Render(m.input.View())

	rightParts := []string{m.viewport.View()}
	if m.errText != "" {
		rightParts = append(rightParts, styles.ErrorNotice.Render(m.errText))
	}
	rightParts = append(rightParts, inputView)
	right := lipgloss.JoinVertical(lipgloss.Left, rightParts...)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
