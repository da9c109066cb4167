package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// DeliverableEmail validates that a string passes the full email pipeline
// (shape, length, TLD, spam heuristics, and disposable-domain denylist), for
// use in struct-level validation of registration requests.
var DeliverableEmail = validation.NewStringRuleWithError(
	func(s string) bool {
		return ValidateEmail(s).Valid
	},
	validation.NewError("validation_email_deliverable", "must be a valid, non-disposable email address"),
)

// StrongPassword validates that a string meets all five password-strength
// requirements.
var StrongPassword = validation.NewStringRuleWithError(
	func(s string) bool {
		return ValidatePassword(s).Valid
	},
	validation.NewError("validation_password_strength", "must meet all password requirements"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
