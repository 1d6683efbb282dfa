// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package proton implements the client for the hosted Proton AI
// chat-completions endpoint.
//
// The endpoint accepts the full prior transcript as ordered role/content
// pairs and streams the assistant response back as Server-Sent Events.
// Callers receive tokens through a callback and the final accumulated text
// when the stream finishes. The client owns retry-free, cancellation-free
// delivery: any failure surfaces as a single error for the UI to report.
package proton
