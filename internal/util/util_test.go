package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{name: "short text unchanged", input: "A pavilion", limit: 20, expected: "A pavilion"},
		{name: "trims whitespace", input: "  A pavilion  ", limit: 20, expected: "A pavilion"},
		{name: "cuts at word boundary", input: "A timber pavilion by the sea", limit: 12, expected: "A timber…"},
		{name: "cuts inside a long word", input: "Pavilionpavilion", limit: 8, expected: "Pavilion…"},
		{name: "counts runes not bytes", input: "جناح المرفأ الخشبي", limit: 11, expected: "جناح المرفأ…"},
		{name: "no limit", input: "anything", limit: 0, expected: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TruncateRunes(tt.input, tt.limit); got != tt.expected {
				t.Fatalf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.expected)
			}
		})
	}
}
