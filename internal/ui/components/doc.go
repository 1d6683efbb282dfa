// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable render helpers for the proton TUI:
// the sidebar chat list and the transcript message renderer.
package components
