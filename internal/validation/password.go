package validation

import (
	"strings"
	"unicode"
)

// passwordMinLength is the minimum password length requirement.
const passwordMinLength = 8

// passwordSpecialChars is the fixed set of accepted special characters.
const passwordSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// ValidatePassword evaluates the five password-strength requirements: minimum
// length, uppercase, lowercase, number, and special character.
//
// Valid is true only if all five hold; otherwise Message lists the missing
// requirements in fixed order, joined with commas. The Requirements breakdown
// is always populated regardless of overall validity so callers can render a
// checklist UI.
func ValidatePassword(input string) PasswordResult {
	requirements := Requirements{
		MinLength:   len(input) >= passwordMinLength,
		Uppercase:   hasUpperCase(input),
		Lowercase:   hasLowerCase(input),
		Number:      hasNumber(input),
		SpecialChar: hasSpecialChar(input),
	}

	var missing []string
	if !requirements.MinLength {
		missing = append(missing, "at least 8 characters")
	}
	if !requirements.Uppercase {
		missing = append(missing, "an uppercase letter")
	}
	if !requirements.Lowercase {
		missing = append(missing, "a lowercase letter")
	}
	if !requirements.Number {
		missing = append(missing, "a number")
	}
	if !requirements.SpecialChar {
		missing = append(missing, "a special character")
	}

	if len(missing) > 0 {
		return PasswordResult{
			Result:       invalid("password must contain " + strings.Join(missing, ", ")),
			Requirements: requirements,
		}
	}

	return PasswordResult{
		Result:       Result{Valid: true, Message: "password meets all requirements"},
		Requirements: requirements,
	}
}

// hasUpperCase checks if string contains uppercase letters
func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// hasLowerCase checks if string contains lowercase letters
func hasLowerCase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// hasNumber checks if string contains numbers
func hasNumber(s string) bool {
	for _, r := range s {
		if unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// hasSpecialChar checks if string contains one of the accepted special characters
func hasSpecialChar(s string) bool {
	return strings.ContainsAny(s, passwordSpecialChars)
}
