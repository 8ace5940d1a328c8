package domain

import "fmt"

// FormatSeconds renders a second count as "Xh Ym", dropping the hour part
// when it is zero
func FormatSeconds(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// zeroTime is what the UI shows when no stats exist for a slot
const zeroTime = "0h 0m"

// TotalTime picks the human readable total, defaulting to zero display
func TotalTime(human string) string {
	if human == "" {
		return zeroTime
	}
	return human
}

// TodayTime approximates today from the daily average, defaulting to zero display
func TodayTime(human string) string {
	if human == "" {
		return zeroTime
	}
	return human
}
