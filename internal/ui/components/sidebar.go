// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/proton-tui/internal/model"
	"github.com/morganforge/proton-tui/internal/ui/styles"
	"github.com/morganforge/proton-tui/internal/util"
)

// =============================================================================
// SIDEBAR
// =============================================================================

// Sidebar renders the chat list pane: brand, user, New Chat action, one row
// per chat with truncated title and relative activity time, and Sign Out.
type Sidebar struct {
	Width  int
	Height int
}

// NewSidebar creates a sidebar with the given dimensions.
func NewSidebar(width, height int) Sidebar {
	return Sidebar{Width: width, Height: height}
}

// timeColumnWidth is the space reserved for the activity timestamp.
const timeColumnWidth = 10

// Render draws the sidebar. selectedID marks the current chat; focusIndex is
// the row highlighted by keyboard navigation (-1 for none) counted over the
// chat rows only.
func (s Sidebar) Render(userName string, chats []*model.Chat, selectedID string, focusIndex int) string {
	var b strings.Builder

	b.WriteString(styles.SidebarBrand.Render("Proton AI"))
	b.WriteString("\n")
	b.WriteString(styles.SidebarUser.Render(userName))
	b.WriteString("\n\n")
	b.WriteString(styles.SidebarAction.Render("+ New Chat  (ctrl+n)"))
	b.WriteString("\n\n")

	now := time.Now()
	for i, chat := range chats {
		b.WriteString(s.renderRow(chat, chat.ID == selectedID, i == focusIndex, now))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SidebarAction.Render("Sign Out  (ctrl+o)"))

	return styles.Sidebar.Width(s.Width).Height(s.Height).Render(b.String())
}

// renderRow draws one chat row: truncated title left, relative time right.
func (s Sidebar) renderRow(chat *model.Chat, selected, focused bool, now time.Time) string {
	timeStr := util.FormatRelativeTimeAt(chat.UpdatedTime(), now)

	// Padding and borders eat into the row; keep one space between columns.
	titleWidth := s.Width - timeColumnWidth - 4
	if titleWidth < 4 {
		titleWidth = 4
	}
	title := util.TruncateWidth(chat.Title, titleWidth)

	row := util.PadRight(title, titleWidth) + " " + styles.SidebarTime.Render(timeStr)

	switch {
	case selected:
		return styles.SidebarItemSelected.Render(row)
	case focused:
		return styles.SidebarItem.Background(styles.Overlay).Render(row)
	default:
		return styles.SidebarItem.Render(row)
	}
}

// RenderEmpty draws the sidebar with no chats.
func (s Sidebar) RenderEmpty(userName string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.SidebarBrand.Render("Proton AI"),
		styles.SidebarUser.Render(userName),
		"",
		styles.SidebarAction.Render("+ New Chat  (ctrl+n)"),
		"",
		styles.SidebarTime.Padding(0, 1).Render("No chats yet"),
	)
	return styles.Sidebar.Width(s.Width).Height(s.Height).Render(content)
}
