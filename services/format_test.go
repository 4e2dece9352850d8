package services

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	tests := []string{
		"2026-03-02T10:30:00Z",
		"2026-03-02T10:30:00",
		"2026-03-02T10:30:00.000000",
		"2026-03-02T12:30:00+02:00",
		" 2026-03-02 10:30:00 ",
	}
	for _, in := range tests {
		got, err := ParseTimestamp(in)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) error = %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC)
	if got := FormatAge("2026-03-02T10:30:00", now); got != "3 hours ago" {
		t.Errorf("FormatAge = %q", got)
	}
	if got := FormatAge("garbage", now); got != "garbage" {
		t.Errorf("FormatAge should pass through unparseable input, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo", 10); got != "héllo" {
		t.Errorf("short string changed: %q", got)
	}
	if got := Truncate("héllo world", 5); got != "héllo…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("abc", 0); got != "abc" {
		t.Errorf("zero limit should keep input, got %q", got)
	}
}
