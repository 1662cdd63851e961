package util

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name         string
		s            string
		width        int
		continuation string
		want         string
	}{
		{"fits", "hello", 10, "...", "hello"},
		{"exact", "hello", 5, "...", "hello"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"zero width", "hello", 0, "...", ""},
		{"continuation wider than width", "hello", 2, "...", ".."},
		{"no continuation", "hello world", 5, "", "hello"},
		{"double width rune", "日本語テスト", 7, "...", "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.width, tt.continuation); got != tt.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tt.s, tt.width, tt.continuation, got, tt.want)
			}
		})
	}
}

func TestPadToWidth(t *testing.T) {
	if got := PadToWidth("hi", 5); got != "hi   " {
		t.Errorf("PadToWidth(\"hi\", 5) = %q", got)
	}
	if got := PadToWidth("hello world", 8); got != "hello..." {
		t.Errorf("PadToWidth overflow = %q", got)
	}
}

func TestWrapHeight(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  int
	}{
		{"empty", "", 10, 1},
		{"single line", "short", 10, 1},
		{"wraps to two", "aaaa bbbb cccc", 9, 2},
		{"zero width", "anything", 0, 1},
		{"newlines preserved", "a\nb\nc", 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapHeight(tt.s, tt.width); got != tt.want {
				t.Errorf("WrapHeight(%q, %d) = %d, want %d", tt.s, tt.width, got, tt.want)
			}
		})
	}
}
