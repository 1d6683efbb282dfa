// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides local persistence for identities and chats.
//
// All state lives in a single SQLite key-value table keyed by fixed string
// names: the signed-in user, the account list, and one chat list per user.
// Values are JSON documents. A missing or malformed value reads back as the
// empty state rather than an error, so a damaged database degrades to a
// fresh start instead of blocking sign-in.
package storage
