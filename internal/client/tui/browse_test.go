package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exact", 5, "exact"},
		{"ascii cut", "a long contact name", 7, "a long…"},
		{"multi-byte fits", "Müller", 6, "Müller"},
		{"multi-byte cut", "Müller GmbH München", 7, "Müller…"},
		{"cut before umlaut", "Mü", 1, "M"},
		{"zero width", "anything", 0, ""},
		{"cjk cut", "日本語のテスト", 4, "日本語…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clip(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got), "clip must never split a rune")
		})
	}
}
