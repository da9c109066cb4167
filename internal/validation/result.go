// Package validation provides input validation and sanitization for the
// registration, login, and credential-management flows: email deliverability
// checks, password-strength policy, and a best-effort SQL/HTML sanitizer.
package validation

// Result is the outcome of a validation check.
//
// Validation failure is a normal return value, never an error: Valid is false
// and Message carries a human-readable reason suitable for end users. Results
// are constructed fresh per call and never mutated.
type Result struct {
	Valid   bool
	Message string
}

// Requirements is the per-check breakdown of the password-strength policy.
// Each field is true when the corresponding requirement is met.
type Requirements struct {
	MinLength   bool
	Uppercase   bool
	Lowercase   bool
	Number      bool
	SpecialChar bool
}

// PasswordResult is the outcome of a password-strength check. The
// Requirements breakdown is always populated, regardless of overall validity,
// so callers can render a checklist UI.
type PasswordResult struct {
	Result
	Requirements Requirements
}

// invalid builds a failing Result with the given message.
func invalid(message string) Result {
	return Result{Valid: false, Message: message}
}
