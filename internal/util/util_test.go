// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"testing"
	"time"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"zero max", "hello", 0, ""},
		{"tiny max no ellipsis", "hello", 2, "he"},
		{"multibyte intact", "héllo wörld", 8, "héllo..."},
		{"cjk runes", "日本語のテキスト", 5, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.input, tt.maxRunes); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"cjk double width fits", "日本", 4, "日本"},
		{"cjk double width truncated", "日本語テキスト", 7, "日本..."},
		{"zero width", "hello", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWidth(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("hello"); got != 5 {
		t.Errorf("StringWidth(hello) = %d, want 5", got)
	}
	if got := StringWidth("日本"); got != 4 {
		t.Errorf("StringWidth(日本) = %d, want 4", got)
	}
}

func TestFormatRelativeTimeAt(t *testing.T) {
	// A fixed reference keeps the boundaries deterministic.
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC) // a Saturday

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"minutes ago", now.Add(-30 * time.Minute), "11:30"},
		{"just under a day", now.Add(-23 * time.Hour), "13:00"},
		{"two days ago", now.Add(-48 * time.Hour), "Thursday"},
		{"just under a week", now.Add(-6 * 24 * time.Hour), "Sunday"},
		{"over a week", now.Add(-8 * 24 * time.Hour), "Mar 7"},
		{"months ago", now.Add(-60 * 24 * time.Hour), "Jan 14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelativeTimeAt(tt.t, now); got != tt.want {
				t.Errorf("FormatRelativeTimeAt(%v) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}
}
