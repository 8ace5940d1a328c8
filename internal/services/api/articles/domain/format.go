package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FormatDate renders an RFC3339 timestamp as "January 15, 2024"
// unparseable input passes through untouched
func FormatDate(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}

// ReadingTime renders a minute count as display text
func ReadingTime(minutes int) string {
	if minutes < 1 {
		return "Less than a minute"
	}
	if minutes == 1 {
		return "1 minute read"
	}
	return fmt.Sprintf("%d min read", minutes)
}

// TagTitle display-cases a dev.to tag slug ("webdev" -> "Webdev")
func TagTitle(tag string) string {
	return titleCaser.String(strings.TrimSpace(tag))
}
