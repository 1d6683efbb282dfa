// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the root Bubble Tea model: it routes between the
// login screen and the chat view and owns the session lifecycle around
// sign-in and sign-out.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/proton-tui/internal/auth"
	"github.com/morganforge/proton-tui/internal/proton"
	"github.com/morganforge/proton-tui/internal/session"
	"github.com/morganforge/proton-tui/internal/ui/chat"
	"github.com/morganforge/proton-tui/internal/ui/login"
)

// screen names the active view.
type screen int

const (
	screenLogin screen = iota
	screenChat
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// App is the top-level model.
type App struct {
	identity *auth.Store
	sessions *session.Store

	screen screen
	login  login.Model
	chat   chat.Model

	width  int
	height int
}

// NewApp builds the root model. A persisted session skips the login screen.
func NewApp(identity *auth.Store, sessions *session.Store, client *proton.Client) App {
	app := App{
		identity: identity,
		sessions: sessions,
		screen:   screenLogin,
		login:    login.New(identity),
		chat:     chat.New(sessions, client),
	}

	if user := identity.CurrentUser(); user != nil {
		sessions.SetUser(user)
		app.screen = screenChat
	}
	return app
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.screen == screenChat {
		return a.chat.Init()
	}
	return a.login.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var loginCmd, chatCmd tea.Cmd
		a.login, loginCmd = a.login.Update(msg)
		a.chat, chatCmd = a.chat.Update(msg)
		return a, tea.Batch(loginCmd, chatCmd)

	case login.AuthSuccessMsg:
		a.sessions.SetUser(msg.User)
		a.screen = screenChat
		return a, a.chat.Init()

	case chat.SignOutMsg:
		a.identity.Logout()
		a.sessions.SetUser(nil)
		a.screen = screenLogin
		a.login = login.New(a.identity)
		return a, tea.Batch(a.login.Init(), a.resendSize())

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC && a.screen == screenLogin {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenChat:
		a.chat, cmd = a.chat.Update(msg)
	default:
		a.login, cmd = a.login.Update(msg)
	}
	return a, cmd
}

// resendSize replays the last known terminal size to freshly built screens.
func (a App) resendSize() tea.Cmd {
	if a.width == 0 {
		return nil
	}
	w, h := a.width, a.height
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: w, Height: h}
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.screen == screenChat {
		return a.chat.View()
	}
	return a.login.View()
}
