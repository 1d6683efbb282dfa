// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME SETUP
// =============================================================================

// ApplyTheme forces the lipgloss background assumption to match the
// configured theme instead of terminal autodetection. "dark" is the default.
// The color profile is pinned once here so styles render consistently for
// the lifetime of the program.
func ApplyTheme(theme string) {
	lipgloss.SetColorProfile(ColorProfile())

	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(true)
	}
}

// ColorProfile returns the detected terminal color profile.
func ColorProfile() termenv.Profile {
	return termenv.ColorProfile()
}

// =============================================================================
// SIDEBAR STYLES
// =============================================================================

var (
	// Sidebar is the container for the chat list.
	Sidebar = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(Overlay)

	// SidebarBrand is the "Proton AI" header.
	SidebarBrand = lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true).
			Padding(0, 1)

	// SidebarUser is the signed-in user's name under the brand.
	SidebarUser = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Padding(0, 1)

	// SidebarItem is an unselected chat row.
	SidebarItem = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Padding(0, 1)

	// SidebarItemSelected is the current chat row.
	SidebarItemSelected = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(SelectionBg).
				Bold(true).
				Padding(0, 1)

	// SidebarTime is the relative activity timestamp on a chat row.
	SidebarTime = lipgloss.NewStyle().
			Foreground(TextMuted)

	// SidebarAction is the New Chat / Sign Out rows.
	SidebarAction = lipgloss.NewStyle().
			Foreground(Cyan).
			Padding(0, 1)
)

// =============================================================================
// TRANSCRIPT STYLES
// =============================================================================

var (
	// UserBubble wraps a user turn, right aligned by the renderer.
	UserBubble = lipgloss.NewStyle().
			Foreground(UserBubbleFg).
			Background(UserBubbleBg).
			Padding(0, 1)

	// AssistantBubble wraps an assistant turn.
	AssistantBubble = lipgloss.NewStyle().
			Foreground(AssistantBubbleFg).
			Background(AssistantBubbleBg).
			Padding(0, 1)

	// SpeakerLabel is the "You" / "Proton AI" line above a bubble.
	SpeakerLabel = lipgloss.NewStyle().
			Foreground(TextMuted).
			Bold(true)

	// EmptyState is the hero text shown when no chat is selected or the
	// chat has no messages yet.
	EmptyState = lipgloss.NewStyle().
			Foreground(TextMuted).
			Align(lipgloss.Center)
)

// =============================================================================
// INPUT AND NOTICE STYLES
// =============================================================================

var (
	// InputBox frames the message input.
	InputBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Overlay).
			Padding(0, 1)

	// InputBoxFocused frames the input while it has focus.
	InputBoxFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Cyan).
			Padding(0, 1)

	// ErrorNotice is the inline failure banner.
	ErrorNotice = lipgloss.NewStyle().
			Foreground(Rose).
			Bold(true).
			Padding(0, 1)

	// FormTitle heads the login and signup forms.
	FormTitle = lipgloss.NewStyle().
			Foreground(Purple).
			Bold(true)

	// FormLabel labels a form field.
	FormLabel = lipgloss.NewStyle().
			Foreground(TextSecondary)

	// FormHint is the switch-mode hint under a form.
	FormHint = lipgloss.NewStyle().
			Foreground(TextMuted)
)
