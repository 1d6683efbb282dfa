// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"

	"github.com/morganforge/proton-tui/internal/model"
	"github.com/morganforge/proton-tui/internal/storage"
)

// =============================================================================
// CHANGE EVENTS
// =============================================================================

// EventKind names the category of a store change.
type EventKind int

const (
	// EventChatsChanged fires when the chat list content changed: a chat
	// was created, deleted, retitled, or received a message.
	EventChatsChanged EventKind = iota

	// EventSelectionChanged fires when the current chat changed.
	EventSelectionChanged

	// EventUserChanged fires when the store switched to a different user.
	EventUserChanged
)

// Event describes one store change. ChatID names the affected chat where
// that is meaningful, and is empty otherwise.
type Event struct {
	Kind   EventKind
	ChatID string
}

// =============================================================================
// SESSION STORE
// =============================================================================

// Store holds the signed-in user's chats, newest first, plus the current
// selection. Safe for concurrent use. Every mutation that changes the chat
// list writes the full list through to storage while a user is set and the
// list is non-empty.
//
// The epoch counter increments on every user switch. Persistence carries
// the epoch it was captured under and is discarded when the store has since
// moved on, so a slow mutation can never write one user's chats under
// another user's key.
type Store struct {
	mu sync.Mutex

	backend   *storage.Store
	user      *model.User
	chats     []*model.Chat
	currentID string
	epoch     uint64

	subscribers []func(Event)
	lastErr     error
}

// NewStore creates an empty session store backed by the given storage. No
// user is set; call SetUser once identity is known.
func NewStore(backend *storage.Store) *Store {
	return &Store{
		backend: backend,
		chats:   make([]*model.Chat, 0),
	}
}

// Subscribe registers a callback invoked after each store change, outside
// the store lock. Callbacks run on the mutating goroutine.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// notify invokes subscribers for the given events. Must be called without
// the lock held.
func (s *Store) notify(events ...Event) {
	s.mu.Lock()
	subs := make([]func(Event), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}

// LastError returns the most recent persistence error, if any.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// =============================================================================
// READ ACCESS
// =============================================================================

// Chats returns a snapshot of the chat list, newest first.
func (s *Store) Chats() []*model.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Chat, len(s.chats))
	for i, chat := range s.chats {
		out[i] = chat.Clone()
	}
	return out
}

// CurrentChatID returns the selected chat's ID, or "" when none.
func (s *Store) CurrentChatID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// CurrentChat returns a snapshot of the selected chat. A selection that
// resolves to no stored chat yields nil.
func (s *Store) CurrentChat() *model.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	if chat := s.findLocked(s.currentID); chat != nil {
		return chat.Clone()
	}
	return nil
}

// ChatCount returns the number of chats.
func (s *Store) ChatCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chats)
}

// findLocked returns the live chat with the given ID, or nil.
func (s *Store) findLocked(id string) *model.Chat {
	if id == "" {
		return nil
	}
	for _, chat := range s.chats {
		if chat.ID == id {
			return chat
		}
	}
	return nil
}

// =============================================================================
// USER SWITCHING
// =============================================================================

// SetUser discards the in-memory state and loads the given user's chat
// list, selecting the newest chat when the list is non-empty. A nil user
// clears everything. Either way the store epoch advances, invalidating any
// in-flight persistence captured under the previous user.
func (s *Store) SetUser(user *model.User) {
	s.mu.Lock()
	s.epoch++

	s.user = user
	s.chats = make([]*model.Chat, 0)
	s.currentID = ""

	if user != nil {
		chats, err := s.backend.ChatsFor(user.ID)
		if err != nil {
			s.lastErr = err
		} else {
			s.chats = chats
		}
		if len(s.chats) > 0 {
			s.currentID = s.chats[0].ID
		}
	}
	s.mu.Unlock()

	s.notify(Event{Kind: EventUserChanged}, Event{Kind: EventSelectionChanged, ChatID: s.CurrentChatID()})
}

// User returns the user the store is bound to, or nil.
func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// =============================================================================
// CHAT OPERATIONS
// =============================================================================

// CreateNewChat prepends an empty chat with the default title, selects it,
// and returns its ID.
func (s *Store) CreateNewChat() string {
	s.mu.Lock()
	chat := model.NewChat()
	s.chats = append([]*model.Chat{chat}, s.chats...)
	s.currentID = chat.ID
	w := s.captureLocked()
	s.mu.Unlock()

	s.persist(w)
	s.notify(
		Event{Kind: EventChatsChanged, ChatID: chat.ID},
		Event{Kind: EventSelectionChanged, ChatID: chat.ID},
	)
	return chat.ID
}

// SelectChat makes the given chat current. The selection is taken as given:
// an ID not present in the list simply resolves to a nil CurrentChat.
func (s *Store) SelectChat(id string) {
	s.mu.Lock()
	changed := s.currentID != id
	s.currentID = id
	s.mu.Unlock()

	if changed {
		s.notify(Event{Kind: EventSelectionChanged, ChatID: id})
	}
}

// UpdateChatTitle replaces a chat's title and bumps its update time. An
// unknown ID is a silent no-op.
func (s *Store) UpdateChatTitle(id, title string) {
	s.mu.Lock()
	chat := s.findLocked(id)
	if chat == nil {
		s.mu.Unlock()
		return
	}
	chat.SetTitle(title)
	w := s.captureLocked()
	s.mu.Unlock()

	s.persist(w)
	s.notify(Event{Kind: EventChatsChanged, ChatID: id})
}

// AddMessageToChat appends a message to the given chat. The chat's first
// user message also sets its title. An unknown ID is a silent no-op; the
// chat may have been deleted or belong to a previous user.
func (s *Store) AddMessageToChat(id string, role model.Role, content string) {
	s.mu.Lock()
	chat := s.findLocked(id)
	if chat == nil {
		s.mu.Unlock()
		return
	}
	chat.AddMessage(role, content)
	w := s.captureLocked()
	s.mu.Unlock()

	s.persist(w)
	s.notify(Event{Kind: EventChatsChanged, ChatID: id})
}

// DeleteChat removes the given chat. Deleting the current chat moves the
// selection to the newest remaining chat, or clears it when none remain.
// An unknown ID is a silent no-op.
func (s *Store) DeleteChat(id string) {
	s.mu.Lock()
	idx := -1
	for i, chat := range s.chats {
		if chat.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	s.chats = append(s.chats[:idx], s.chats[idx+1:]...)

	selectionMoved := false
	if s.currentID == id {
		selectionMoved = true
		s.currentID = ""
		if len(s.chats) > 0 {
			s.currentID = s.chats[0].ID
		}
	}
	newCurrent := s.currentID
	w := s.captureLocked()
	s.mu.Unlock()

	s.persist(w)
	events := []Event{{Kind: EventChatsChanged, ChatID: id}}
	if selectionMoved {
		events = append(events, Event{Kind: EventSelectionChanged, ChatID: newCurrent})
	}
	s.notify(events...)
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// pendingWrite is a chat-list snapshot captured under the lock, tagged with
// the epoch and owner it was taken from.
type pendingWrite struct {
	epoch  uint64
	userID string
	chats  []*model.Chat
}

// captureLocked snapshots the state a mutation wants persisted. Callers
// hold the lock. Returns nil when there is nothing to write: no user, or an
// empty list (matching the load side, where an absent key reads as empty).
func (s *Store) captureLocked() *pendingWrite {
	if s.user == nil || len(s.chats) == 0 {
		return nil
	}

	snapshot := make([]*model.Chat, len(s.chats))
	for i, chat := range s.chats {
		snapshot[i] = chat.Clone()
	}
	return &pendingWrite{epoch: s.epoch, userID: s.user.ID, chats: snapshot}
}

// persist writes a captured snapshot, unless the store has switched users
// since the capture. Called without the lock held.
func (s *Store) persist(w *pendingWrite) {
	if w == nil {
		return
	}

	s.mu.Lock()
	stale := w.epoch != s.epoch
	s.mu.Unlock()
	if stale {
		return
	}

	if err := s.backend.SetChatsFor(w.userID, w.chats); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
	}
}
