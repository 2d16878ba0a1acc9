package jcs

import (
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"tab", "a\tb", `a\tb`},
		{"backspace", "\b", `\b`},
		{"newline", "\n", `\n`},
		{"carriage return", "\r", `\r`},
		{"form feed", "\f", `\f`},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"backslash", `a\b`, `a\\b`},
		{"control one", "\x01", `\u0001`},
		{"vertical tab", "\v", `\u000b`},
		{"unit separator", "\x1f", `\u001f`},
		{"delete passes through", "\x7f", "\x7f"},
		{"non-ascii passes through", "café ☺", "café ☺"},
		{"supplementary passes through", "\U0001f600", "\U0001f600"},
		{"mixed", "\"\\\n\x02x", `\"\\\n\u0002x`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.expected {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}
