package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean ascii", "Hello World", "Hello World"},
		{"keeps tab", "a\tb", "a\tb"},
		{"strips control chars", "a\x1b[31mb", "a[31mb"},
		{"strips invalid utf8", "a\xffb", "ab"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"keeps unicode", "Sigur Rós — Ágætis", "Sigur Rós — Ágætis"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Hello", Truncate("Hello", 10))
	assert.Equal(t, "Hell...", Truncate("Hello World", 7))
	// Wide runes count double
	assert.Equal(t, "日本...", Truncate("日本語のタイトル", 7))
}
