package validation

import (
	"regexp"
	"strings"
)

var (
	// sqlKeywordRegex strips common SQL keywords as whole words,
	// case-insensitively. EXECUTE precedes EXEC so the longer keyword is
	// consumed whole.
	sqlKeywordRegex = regexp.MustCompile(
		`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|CREATE|ALTER|EXECUTE|EXEC|UNION|SCRIPT)\b`,
	)

	// storedProcRegex strips extended/system stored-procedure prefixes.
	storedProcRegex = regexp.MustCompile(`(?i)(xp_|sp_)`)

	// htmlTagRegex strips any HTML/XML tag.
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// dangerousSequences removes quote, statement-separator, and comment
	// sequences. The escaped-quote form is listed first so the backslash is
	// removed along with the quote.
	dangerousSequences = strings.NewReplacer(
		`\'`, "",
		`'`, "",
		`;`, "",
		`--`, "",
		`/*`, "",
		`*/`, "",
	)
)

// Sanitize strips SQL keywords, dangerous punctuation sequences, and HTML/XML
// tags from the input, then trims surrounding whitespace.
//
// This is a best-effort denylist filter for free-text fields, not a
// substitute for parameterized queries or contextual output encoding.
func Sanitize(input string) string {
	sanitized := sqlKeywordRegex.ReplaceAllString(input, "")
	sanitized = dangerousSequences.Replace(sanitized)
	sanitized = storedProcRegex.ReplaceAllString(sanitized, "")
	sanitized = htmlTagRegex.ReplaceAllString(sanitized, "")
	return strings.TrimSpace(sanitized)
}
