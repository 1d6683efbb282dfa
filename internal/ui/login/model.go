// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/proton-tui/internal/auth"
	"github.com/morganforge/proton-tui/internal/model"
	"github.com/morganforge/proton-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// AuthSuccessMsg reports a completed login or signup to the root model.
type AuthSuccessMsg struct {
	User *model.User
}

// =============================================================================
// FORM MODES
// =============================================================================

// Mode selects which form is shown.
type Mode int

const (
	// ModeLogin shows the email/password form.
	ModeLogin Mode = iota
	// ModeSignup shows the name/email/password form.
	ModeSignup
)

// Failure messages match the product copy exactly.
const (
	errInvalidCredentials = "Invalid email or password"
	errDuplicateEmail     = "An account with this email already exists"
)

// =============================================================================
// LOGIN MODEL
// =============================================================================

// Model is the login/signup screen.
type Model struct {
	store *auth.Store
	mode  Mode

	name     textinput.Model
	email    textinput.Model
	password textinput.Model
	focus    int

	errText string
	width   int
	height  int
}

// New creates the login screen bound to the identity store.
func New(store *auth.Store) Model {
	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 200

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 200

	m := Model{
		store:    store,
		mode:     ModeLogin,
		name:     name,
		email:    email,
		password: password,
	}
	m.email.Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the active form mode.
func (m Model) Mode() Mode {
	return m.mode
}

// ErrText returns the current inline error, if any.
func (m Model) ErrText() string {
	return m.errText
}

// fields returns the active inputs in focus order.
func (m *Model) fields() []*textinput.Model {
	if m.mode == ModeSignup {
		return []*textinput.Model{&m.name, &m.email, &m.password}
	}
	return []*textinput.Model{&m.email, &m.password}
}

// setFocus moves focus to the field at index i.
func (m *Model) setFocus(i int) tea.Cmd {
	fields := m.fields()
	if i < 0 {
		i = len(fields) - 1
	}
	if i >= len(fields) {
		i = 0
	}
	m.focus = i

	var cmd tea.Cmd
	for j, f := range fields {
		if j == i {
			cmd = f.Focus()
		} else {
			f.Blur()
		}
	}
	return cmd
}

// toggleMode switches between login and signup and resets errors.
func (m *Model) toggleMode() tea.Cmd {
	if m.mode == ModeLogin {
		m.mode = ModeSignup
	} else {
		m.mode = ModeLogin
	}
	m.errText = ""
	return m.setFocus(0)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "ctrl+t":
			return m, m.toggleMode()
		case "enter":
			return m.submit()
		}
	}

	// Route everything else to the focused input.
	fields := m.fields()
	var cmd tea.Cmd
	*fields[m.focus], cmd = fields[m.focus].Update(msg)
	return m, cmd
}

// submit runs the active form against the identity store.
func (m Model) submit() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	if m.mode == ModeSignup {
		name := strings.TrimSpace(m.name.Value())
		user, ok := m.store.Signup(name, email, password)
		if !ok {
			m.errText = errDuplicateEmail
			return m, nil
		}
		return m, func() tea.Msg { return AuthSuccessMsg{User: user} }
	}

	user, ok := m.store.Login(email, password)
	if !ok {
		m.errText = errInvalidCredentials
		return m, nil
	}
	return m, func() tea.Msg { return AuthSuccessMsg{User: user} }
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := "Welcome back"
	hint := "ctrl+t: create an account    enter: log in"
	if m.mode == ModeSignup {
		title = "Create your account"
		hint = "ctrl+t: back to login    enter: sign up"
	}

	b.WriteString(styles.FormTitle.Render("Proton AI"))
	b.WriteString("\n")
	b.WriteString(styles.FormLabel.Render(title))
	b.WriteString("\n\n")

	if m.mode == ModeSignup {
		b.WriteString(m.name.View())
		b.WriteString("\n")
	}
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.errText != "" {
		b.WriteString(styles.ErrorNotice.Render(m.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FormHint.Render(hint))

	form := styles.InputBoxFocused.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
	}
	return form
}
