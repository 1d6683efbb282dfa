// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the login and signup screens shown before the chat
// view. Both are simple text-input forms over the identity store; a
// successful submit emits AuthSuccessMsg for the root model to act on.
package login
