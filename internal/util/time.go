// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "time"

// FormatRelativeTime renders a timestamp the way the sidebar shows chat
// activity: time of day within the last 24 hours, weekday name within the
// last week, calendar date beyond that.
func FormatRelativeTime(t time.Time) string {
	return FormatRelativeTimeAt(t, time.Now())
}

// FormatRelativeTimeAt is FormatRelativeTime against an explicit reference
// time.
func FormatRelativeTimeAt(t, now time.Time) string {
	diff := now.Sub(t)

	if diff < 24*time.Hour {
		return t.Format("15:04")
	}
	if diff < 7*24*time.Hour {
		return t.Format("Monday")
	}
	return t.Format("Jan 2")
}
