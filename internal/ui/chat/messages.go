// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"
)

// =============================================================================
// STREAMING MESSAGES
// =============================================================================

// StreamStartMsg signals that a completion request was dispatched. ChatID is
// the destination chat, pinned for the lifetime of the request.
type StreamStartMsg struct {
	ChatID    string
	StartTime time.Time
}

// StreamTokenMsg delivers a streamed token for the pinned chat.
type StreamTokenMsg struct {
	ChatID string
	Token  string
}

// StreamCompleteMsg signals that the stream finished. Content carries the
// full accumulated assistant text; Err is non-nil on failure.
type StreamCompleteMsg struct {
	ChatID  string
	Content string
	Err     error
}

// StreamTickMsg drives the frame-capped flush of buffered tokens.
type StreamTickMsg struct {
	Time time.Time
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// SignOutMsg asks the root model to end the session and return to login.
type SignOutMsg struct{}
