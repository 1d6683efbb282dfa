// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"

	"github.com/morganforge/proton-tui/internal/model"
)

// Well-known keys. The per-user chat list key embeds the owning user's ID so
// each account reads and writes its own namespace.
const (
	// KeyCurrentUser holds the signed-in user's public identity.
	KeyCurrentUser = "current-user"

	// KeyAllUsers holds the full account list, passwords included.
	KeyAllUsers = "all-users"

	// chatsKeyPrefix prefixes the per-user chat list keys.
	chatsKeyPrefix = "chats-for-user-"
)

// ChatsKey returns the storage key for a user's chat list.
func ChatsKey(userID string) string {
	return chatsKeyPrefix + userID
}

// =============================================================================
// CURRENT USER
// =============================================================================

// CurrentUser returns the persisted signed-in user, or nil when no session
// exists or the record is unreadable.
func (s *Store) CurrentUser() (*model.User, error) {
	data, ok, err := s.Get(KeyCurrentUser)
	if err != nil || !ok {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		// Unreadable session record means no session
		return nil, nil
	}
	if user.Validate() != nil {
		return nil, nil
	}
	return &user, nil
}

// SetCurrentUser persists the signed-in user.
func (s *Store) SetCurrentUser(user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.Set(KeyCurrentUser, data)
}

// ClearCurrentUser removes the signed-in user record.
func (s *Store) ClearCurrentUser() error {
	return s.Delete(KeyCurrentUser)
}

// =============================================================================
// ACCOUNT LIST
// =============================================================================

// Credentials returns every stored account. A missing or malformed record
// reads back as an empty list.
func (s *Store) Credentials() ([]model.Credential, error) {
	data, ok, err := s.Get(KeyAllUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Credential{}, nil
	}

	var creds []model.Credential
	if err := json.Unmarshal(data, &creds); err != nil {
		return []model.Credential{}, nil
	}
	return creds, nil
}

// SetCredentials replaces the stored account list.
func (s *Store) SetCredentials(creds []model.Credential) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return s.Set(KeyAllUsers, data)
}

// =============================================================================
// CHAT LISTS
// =============================================================================

// ChatsFor returns the chat list for a user, most recent first as persisted.
// A missing or malformed record reads back as an empty list; individual chats
// that fail validation are dropped rather than failing the whole load.
func (s *Store) ChatsFor(userID string) ([]*model.Chat, error) {
	data, ok, err := s.Get(ChatsKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*model.Chat{}, nil
	}

	var chats []*model.Chat
	if err := json.Unmarshal(data, &chats); err != nil {
		return []*model.Chat{}, nil
	}

	valid := chats[:0]
	for _, chat := range chats {
		if chat == nil || chat.Validate() != nil {
			continue
		}
		valid = append(valid, chat)
	}
	return valid, nil
}

// SetChatsFor replaces a user's chat list.
func (s *Store) SetChatsFor(userID string, chats []*model.Chat) error {
	data, err := json.Marshal(chats)
	if err != nil {
		return err
	}
	return s.Set(ChatsKey(userID), data)
}

// DeleteChatsFor removes a user's chat list.
func (s *Store) DeleteChatsFor(userID string) error {
	return s.Delete(ChatsKey(userID))
}
