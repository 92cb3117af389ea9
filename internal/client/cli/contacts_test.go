package cli

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"fits", "Ada", 20, "Ada"},
		{"ascii cut", "a rather long company name", 10, "a rathe..."},
		{"multi-byte fits", "Škoda", 5, "Škoda"},
		{"multi-byte cut", "Müller & Söhne GmbH", 10, "Müller ..."},
		{"tiny width", "Über", 3, "Übe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got), "truncate must never split a rune")
		})
	}
}
