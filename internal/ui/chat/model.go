// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/proton-tui/internal/model"
	"github.com/morganforge/proton-tui/internal/proton"
	"github.com/morganforge/proton-tui/internal/session"
	"github.com/morganforge/proton-tui/internal/ui/components"
)

// sidebarWidth is the fixed width of the chat list pane.
const sidebarWidth = 32

// genericFailureNotice is the only error copy shown for a failed
// completion; the underlying cause stays out of the transcript.
const genericFailureNotice = "Something went wrong. Please try again."

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the main chat view.
type Model struct {
	sessions *session.Store
	client   *proton.Client
	keys     KeyMap

	sidebar  components.Sidebar
	renderer *components.MessageRenderer
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Streaming state. streamChatID pins the destination chat for the
	// in-flight request; partial holds the flushed tokens rendered so far.
	streaming    bool
	streamChatID string
	partial      string
	buffer       *StreamingBuffer
	streamCh     chan tea.Msg

	errText string
	width   int
	height  int
	ready   bool
}

// New creates the chat view over the session store and completion client.
func New(sessions *session.Store, client *proton.Client) Model {
	input := textinput.New()
	input.Placeholder = "Ask Proton AI anything..."
	input.CharLimit = 4000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		sessions: sessions,
		client:   client,
		keys:     DefaultKeyMap(),
		input:    input,
		spinner:  sp,
		buffer:   NewStreamingBuffer(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StreamStartMsg:
		m.streaming = true
		m.streamChatID = msg.ChatID
		m.partial = ""
		m.buffer.Reset()
		m.errText = ""
		return m, tea.Batch(m.spinner.Tick, streamTickCmd(), m.waitForStream())

	case StreamTokenMsg:
		m.buffer.Write(msg.Token)
		return m, m.waitForStream()

	case StreamTickMsg:
		if !m.streaming {
			return m, nil
		}
		if chunk, ok := m.buffer.Flush(); ok {
			m.partial += chunk
			m.refreshTranscript()
		}
		return m, streamTickCmd()

	case StreamCompleteMsg:
		return m.finishStream(msg)

	case spinner.TickMsg:
		if !m.streaming {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize lays the panes out for a new terminal size.
func (m Model) resize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	paneWidth := msg.Width - sidebarWidth
	if paneWidth < 20 {
		paneWidth = 20
	}
	// Input box and its border take the bottom rows.
	paneHeight := msg.Height - 4
	if paneHeight < 5 {
		paneHeight = 5
	}

	m.sidebar = components.NewSidebar(sidebarWidth, msg.Height)
	m.renderer = components.NewMessageRenderer(paneWidth)
	m.input.Width = paneWidth - 6

	if !m.ready {
		m.viewport = viewport.New(paneWidth, paneHeight)
		m.ready = true
	} else {
		m.viewport.Width = paneWidth
		m.viewport.Height = paneHeight
	}
	m.refreshTranscript()
	return m
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SignOut):
		return m, func() tea.Msg { return SignOutMsg{} }

	case key.Matches(msg, m.keys.NewChat):
		m.sessions.CreateNewChat()
		m.errText = ""
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, m.keys.DeleteChat):
		if id := m.sessions.CurrentChatID(); id != "" {
			m.sessions.DeleteChat(id)
			m.refreshTranscript()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevChat):
		m.selectAdjacent(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextChat):
		m.selectAdjacent(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selectAdjacent moves the selection up or down the chat list.
func (m *Model) selectAdjacent(delta int) {
	chats := m.sessions.Chats()
	if len(chats) == 0 {
		return
	}

	current := m.sessions.CurrentChatID()
	idx := 0
	for i, chat := range chats {
		if chat.ID == current {
			idx = i + delta
			break
		}
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(chats) {
		idx = len(chats) - 1
	}
	m.sessions.SelectChat(chats[idx].ID)
	m.errText = ""
	m.refreshTranscript()
}

// =============================================================================
// SUBMIT AND STREAMING
// =============================================================================

// submit sends the input as a user message and dispatches the completion
// request. Input is ignored while a request is in flight.
func (m Model) submit() (Model, tea.Cmd) {
	if m.streaming {
		return m, nil
	}
	content := m.input.Value()
	if content == "" {
		return m, nil
	}

	chatID := m.sessions.CurrentChatID()
	if m.sessions.CurrentChat() == nil {
		chatID = m.sessions.CreateNewChat()
	}
	m.sessions.AddMessageToChat(chatID, model.RoleUser, content)
	m.input.Reset()
	m.refreshTranscript()

	chat := m.sessions.CurrentChat()
	transcript := chat.ToProtonMessages()

	return m, m.startStream(chatID, transcript)
}

// startStream launches the completion request on its own goroutine. The
// chat ID rides along on every message so the reply lands in the chat the
// request was made for.
func (m *Model) startStream(chatID string, transcript []proton.ChatMessage) tea.Cmd {
	ch := make(chan tea.Msg, 64)
	m.streamCh = ch

	go func() {
		acc := proton.NewAccumulator()
		err := m.client.ChatStream(context.Background(), transcript, func(chunk proton.StreamChunk) {
			acc.Add(chunk)
			if token := chunk.GetContent(); token != "" {
				ch <- StreamTokenMsg{ChatID: chatID, Token: token}
			}
		})
		ch <- StreamCompleteMsg{ChatID: chatID, Content: acc.Content(), Err: err}
		close(ch)
	}()

	return func() tea.Msg {
		return StreamStartMsg{ChatID: chatID, StartTime: time.Now()}
	}
}

// waitForStream relays the next message from the streaming goroutine.
func (m Model) waitForStream() tea.Cmd {
	ch := m.streamCh
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// finishStream commits or reports the completed request. The assistant
// message goes to the pinned chat; if that chat is gone the append is a
// silent no-op in the store.
func (m Model) finishStream(msg StreamCompleteMsg) (Model, tea.Cmd) {
	if chunk, ok := m.buffer.ForceFlush(); ok {
		m.partial += chunk
	}
	m.streaming = false
	m.streamChatID = ""
	m.partial = ""
	m.streamCh = nil

	if msg.Err != nil {
		m.errText = genericFailureNotice
		m.refreshTranscript()
		return m, nil
	}

	m.sessions.AddMessageToChat(msg.ChatID, model.RoleAssistant, msg.Content)
	m.refreshTranscript()
	return m, nil
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshTranscript re-renders the viewport content from the current chat
// and any in-flight stream.
func (m *Model) refreshTranscript() {
	if !m.ready || m.renderer == nil {
		return
	}

	chat := m.sessions.CurrentChat()
	content := m.renderer.RenderTranscript(chat)

	// The live stream renders only in the chat it belongs to.
	if m.streaming && chat != nil && chat.ID == m.streamChatID {
		content += "\n\n" + m.renderer.RenderPending(m.partial, m.spinner.View())
	}

	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}
