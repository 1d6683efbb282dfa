// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for users, chats and messages.
//
// Records in this package round-trip through the key-value store as JSON.
// Anything read back from storage must pass Validate before use; malformed
// records are discarded rather than trusted.
package model
