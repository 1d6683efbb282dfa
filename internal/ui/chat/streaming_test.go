// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"testing"
	"time"
)

func TestStreamingBufferBatchFlush(t *testing.T) {
	sb := NewStreamingBuffer()

	// Below the batch threshold and inside the frame window: no flush.
	sb.Write("a")
	if _, ok := sb.Flush(); ok {
		t.Error("Flush() should hold back a single fresh token")
	}

	// Reaching the batch size forces a flush regardless of timing.
	for i := 0; i < 20; i++ {
		sb.Write("x")
	}
	content, ok := sb.Flush()
	if !ok {
		t.Fatal("Flush() should fire once batch size is reached")
	}
	if len(content) != 21 {
		t.Errorf("flushed %d chars, want 21", len(content))
	}
	if sb.Pending() != 0 {
		t.Errorf("Pending() = %d after flush", sb.Pending())
	}
}

func TestStreamingBufferTimeFlush(t *testing.T) {
	sb := NewStreamingBuffer()
	sb.Write("slow")

	time.Sleep(40 * time.Millisecond)

	content, ok := sb.Flush()
	if !ok {
		t.Fatal("Flush() should fire after the frame interval")
	}
	if content != "slow" {
		t.Errorf("content = %q", content)
	}
}

func TestStreamingBufferForceFlush(t *testing.T) {
	sb := NewStreamingBuffer()

	if _, ok := sb.ForceFlush(); ok {
		t.Error("ForceFlush() on empty buffer should report nothing")
	}

	sb.Write("tail")
	content, ok := sb.ForceFlush()
	if !ok || content != "tail" {
		t.Errorf("ForceFlush() = %q, %v", content, ok)
	}
}

func TestStreamingBufferReset(t *testing.T) {
	sb := NewStreamingBuffer()
	sb.Write("discarded")
	sb.Reset()

	if _, ok := sb.ForceFlush(); ok {
		t.Error("buffer should be empty after Reset")
	}
}
