package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean input passes through",
			input:    "John Doe",
			expected: "John Doe",
		},
		{
			name:     "classic injection tail",
			input:    "'; DROP TABLE users; --",
			expected: "TABLE users",
		},
		{
			name:     "select with comment",
			input:    "SELECT * FROM users WHERE id = 1; -- comment",
			expected: "* FROM users WHERE id = 1  comment",
		},
		{
			name:     "script tag",
			input:    "<script>alert('xss')</script>",
			expected: "alert(xss)",
		},
		{
			name:     "stored procedure prefixes",
			input:    "xp_cmdshell 'dir'",
			expected: "cmdshell dir",
		},
		{
			name:     "sp prefix inside word",
			input:    "run sp_help now",
			expected: "run help now",
		},
		{
			name:     "keywords are case insensitive",
			input:    "select union ExEc",
			expected: "",
		},
		{
			name:     "keywords only match whole words",
			input:    "selection dropbox created",
			expected: "selection dropbox created",
		},
		{
			name:     "block comment markers removed",
			input:    "/* comment */ UNION",
			expected: "comment",
		},
		{
			name:     "escaped quote removed with its backslash",
			input:    `O\'Brien`,
			expected: "OBrien",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "   hello world   ",
			expected: "hello world",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitize_IsTotal(t *testing.T) {
	// Sanitize never fails, whatever bytes arrive.
	inputs := []string{
		"\x00\x01\x02",
		"日本語のテキスト",
		"<<<>>>",
		"''';;;---",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Sanitize(input) })
	}
}
