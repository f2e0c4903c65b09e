// Package format provides shared display formatting for terminal output.
package format

import (
	"fmt"
	"time"
)

// Count abbreviates a number for display: 950 -> "950", 1250 -> "1.2k",
// 2500000 -> "2.5M".
func Count(n int) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Seconds formats a duration in seconds as readable coding time:
// "45 mins", "3 hrs 20 mins", "1.2k hrs".
func Seconds(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60

	if hours >= 1000 {
		return fmt.Sprintf("%.1fk hrs", float64(hours)/1000)
	}
	if hours > 0 {
		return fmt.Sprintf("%d hrs %d mins", hours, minutes)
	}
	return fmt.Sprintf("%d mins", minutes)
}

// Age formats the time since t as a compact relative age: "just now",
// "5m ago", "2h ago", "3d ago", "2w ago", "4mo ago", "1y ago".
func Age(t time.Time) string {
	return AgeAt(t, time.Now())
}

// AgeAt is Age relative to an explicit reference time.
func AgeAt(t, now time.Time) string {
	d := now.Sub(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}

	days := int(d.Hours() / 24)
	switch {
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	case days < 30:
		return fmt.Sprintf("%dw ago", days/7)
	case days < 365:
		return fmt.Sprintf("%dmo ago", days/30)
	default:
		return fmt.Sprintf("%dy ago", days/365)
	}
}

// Date formats t for display: "Jan 2, 2025".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
