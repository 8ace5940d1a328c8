package domain

import "testing"

func TestReadingTime(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "Less than a minute"},
		{-1, "Less than a minute"},
		{1, "1 minute read"},
		{2, "2 min read"},
		{15, "15 min read"},
	}
	for _, tc := range cases {
		if got := ReadingTime(tc.minutes); got != tc.want {
			t.Errorf("ReadingTime(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-01-15T08:30:00Z"); got != "January 15, 2024" {
		t.Fatalf("FormatDate = %q", got)
	}
	// unparseable input passes through
	if got := FormatDate("yesterday"); got != "yesterday" {
		t.Fatalf("FormatDate passthrough = %q", got)
	}
}

func TestTagTitle(t *testing.T) {
	if got := TagTitle("webdev"); got != "Webdev" {
		t.Fatalf("TagTitle = %q", got)
	}
	if got := TagTitle("  go  "); got != "Go" {
		t.Fatalf("TagTitle trims = %q", got)
	}
}
