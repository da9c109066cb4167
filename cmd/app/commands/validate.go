package commands

import (
	"fmt"

	"github.com/katochrasik794/solitaire-markets-crm-backend-sub003/internal/validation"
)

// RunValidateEmail runs the email validation pipeline and prints the verdict.
func RunValidateEmail(email string, cmdIO IOTuple) error {
	result := validation.ValidateEmail(email)
	printVerdict(cmdIO, result.Valid, result.Message)
	return nil
}

// RunValidatePassword runs the password-strength policy and prints the
// verdict along with the per-requirement checklist.
func RunValidatePassword(password string, cmdIO IOTuple) error {
	result := validation.ValidatePassword(password)
	printVerdict(cmdIO, result.Valid, result.Message)

	fmt.Fprintf(cmdIO.Writer, "  [%s] at least 8 characters\n", checkMark(result.Requirements.MinLength))
	fmt.Fprintf(cmdIO.Writer, "  [%s] uppercase letter\n", checkMark(result.Requirements.Uppercase))
	fmt.Fprintf(cmdIO.Writer, "  [%s] lowercase letter\n", checkMark(result.Requirements.Lowercase))
	fmt.Fprintf(cmdIO.Writer, "  [%s] number\n", checkMark(result.Requirements.Number))
	fmt.Fprintf(cmdIO.Writer, "  [%s] special character\n", checkMark(result.Requirements.SpecialChar))
	return nil
}

// RunSanitize strips SQL keywords, dangerous sequences, and HTML tags from
// the input and prints the sanitized text.
func RunSanitize(input string, cmdIO IOTuple) error {
	fmt.Fprintln(cmdIO.Writer, validation.Sanitize(input))
	return nil
}

// printVerdict prints a valid/invalid line with the validation message.
func printVerdict(cmdIO IOTuple, valid bool, message string) {
	verdict := "invalid"
	if valid {
		verdict = "valid"
	}
	fmt.Fprintf(cmdIO.Writer, "%s: %s\n", verdict, message)
}

// checkMark renders a requirement state for the checklist output.
func checkMark(met bool) string {
	if met {
		return "x"
	}
	return " "
}
