// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth manages local accounts and the signed-in session.
//
// Accounts live entirely in local storage; there is no server-side identity.
// Signup and login match against the stored account list, the signed-in user
// is persisted so a restart resumes the session, and every mutation writes
// through to storage before returning.
package auth
