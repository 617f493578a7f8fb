package textutil

import "testing"

func TestVisualWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"┌─┐", 3},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := VisualWidth(tt.in); got != tt.want {
			t.Errorf("VisualWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSpacesAndRepeat(t *testing.T) {
	if got := Spaces(3); got != "   " {
		t.Errorf("Spaces(3) = %q", got)
	}
	if got := Spaces(-1); got != "" {
		t.Errorf("Spaces(-1) = %q, want empty", got)
	}
	if got := Repeat('═', 2); got != "══" {
		t.Errorf("Repeat('═', 2) = %q", got)
	}
	if got := Repeat('─', 0); got != "" {
		t.Errorf("Repeat('─', 0) = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if VisualWidth(got) > tt.width {
			t.Errorf("Truncate(%q, %d) width %d exceeds limit", tt.in, tt.width, VisualWidth(got))
		}
	}
}
