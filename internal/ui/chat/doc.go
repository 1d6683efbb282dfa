// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view: sidebar chat list, transcript
// viewport, and the message input, wired to the session store and the
// completion client.
//
// Streaming runs on its own goroutine and feeds tokens back through Bubble
// Tea messages. Every request pins the chat it was dispatched for, so the
// assistant reply lands in that chat even when the selection has moved on.
package chat
