package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{
			name:  "valid address",
			email: "user@example.com",
			valid: true,
		},
		{
			name:  "normalized before checking",
			email: "  User@Example.COM  ",
			valid: true,
		},
		{
			name:  "uncommon tld within fallback length",
			email: "user@domain.cloud",
			valid: true,
		},
		{
			name:  "empty input",
			email: "",
			valid: false,
		},
		{
			name:  "whitespace only",
			email: "   ",
			valid: false,
		},
		{
			name:  "not an email",
			email: "not-an-email",
			valid: false,
		},
		{
			name:  "missing domain dot",
			email: "user@localhost",
			valid: false,
		},
		{
			name:  "embedded whitespace",
			email: "us er@example.com",
			valid: false,
		},
		{
			name:  "address too long",
			email: strings.Repeat("ab", 15) + "@" + strings.Repeat("cd", 13) + ".com",
			valid: false,
		},
		{
			name:  "local part too long",
			email: strings.Repeat("ab", 15) + "a" + "@x.com",
			valid: false,
		},
		{
			name:  "domain too short",
			email: "ab@x.y",
			valid: false,
		},
		{
			name:  "tld too long for fallback",
			email: "user@domain.engineering",
			valid: false,
		},
		{
			name:  "purely numeric local part",
			email: "111@12345.co",
			valid: false,
		},
		{
			name:  "domain mostly digits",
			email: "user@12345.co",
			valid: false,
		},
		{
			name:  "character repeated five times",
			email: "aaaaa@test.com",
			valid: false,
		},
		{
			name:  "local starting with eight digits",
			email: "12345678abc@gmail.com",
			valid: false,
		},
		{
			name:  "throwaway domain marker",
			email: "user@temporary-mail.com",
			valid: false,
		},
		{
			name:  "two short domain labels",
			email: "user@ab.cd",
			valid: false,
		},
		{
			name:  "single character local part",
			email: "a@mailinator.com",
			valid: false,
		},
		{
			name:  "disposable domain",
			email: "user@mailinator.com",
			valid: false,
		},
		{
			name:  "disposable domain guerrillamail",
			email: "someone@guerrillamail.com",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateEmail(tt.email)
			assert.Equal(t, tt.valid, result.Valid)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestValidateEmail_FirstFailingCheckWins(t *testing.T) {
	t.Run("length check fires before spam heuristics", func(t *testing.T) {
		// repeated-run address that is also over the length limit
		email := strings.Repeat("a", 40) + "@" + strings.Repeat("b", 30) + ".com"
		result := ValidateEmail(email)

		assert.False(t, result.Valid)
		assert.Equal(t, "email must not exceed 60 characters", result.Message)
	})

	t.Run("short local part reported before disposable domain", func(t *testing.T) {
		result := ValidateEmail("a@mailinator.com")

		assert.False(t, result.Valid)
		assert.Equal(t, "email local part is invalid", result.Message)
	})
}
