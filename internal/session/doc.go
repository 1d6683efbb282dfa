// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the per-user chat list and the current selection.
//
// The store owns ordering (newest chat first), selection repair when the
// current chat is deleted, and write-through persistence of the active
// user's chat list. Interested parties subscribe for change events; there
// is no implicit reactivity.
package session
