package validation

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength  = 60
	minLocalLength  = 1
	maxLocalLength  = 30
	minDomainLength = 4
	maxDomainLength = 253
)

// emailShapeRegex is a basic local@domain shape check: no whitespace, a
// single @, and at least one dot in the domain.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// numericRegex matches purely numeric strings.
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

// leadingDigitsRegex matches a local part starting with 8+ consecutive digits.
var leadingDigitsRegex = regexp.MustCompile(`^[0-9]{8,}`)

// commonTLDs is the allow-list of top-level domains accepted without further
// length checks.
var commonTLDs = map[string]struct{}{
	"com": {}, "net": {}, "org": {}, "edu": {}, "gov": {}, "mil": {},
	"int": {}, "co": {}, "io": {}, "me": {}, "info": {}, "biz": {},
	"name": {}, "pro": {}, "xyz": {}, "tech": {}, "online": {}, "site": {},
	"website": {}, "store": {}, "shop": {}, "app": {}, "dev": {},
	"test": {}, "example": {}, "invalid": {}, "localhost": {},
}

// spamDomainSubstrings flags domains that advertise themselves as throwaway.
var spamDomainSubstrings = []string{
	"test", "temp", "fake", "spam", "trash", "throwaway", "disposable",
}

// disposableDomains is the denylist of known disposable-email providers.
var disposableDomains = []string{
	"tempmail.com",
	"10minutemail.com",
	"guerrillamail.com",
	"mailinator.com",
	"throwaway.email",
	"trashmail.com",
}

// ValidateEmail checks an email address for basic deliverability and spam
// heuristics.
//
// The input is normalized (trimmed and lower-cased) and then run through an
// ordered sequence of checks; the first failing check wins and its message is
// returned alone. Validation failure is a normal return value, never an
// error.
func ValidateEmail(input string) Result {
	email := strings.ToLower(strings.TrimSpace(input))

	if email == "" {
		return invalid("email is required")
	}

	if !emailShapeRegex.MatchString(email) {
		return invalid("email format is invalid")
	}

	if len(email) > maxEmailLength {
		return invalid("email must not exceed 60 characters")
	}

	at := strings.Index(email, "@")
	local, domain := email[:at], email[at+1:]

	if len(local) < minLocalLength || len(local) > maxLocalLength {
		return invalid("email local part must be between 1 and 30 characters")
	}

	if len(domain) < minDomainLength || len(domain) > maxDomainLength {
		return invalid("email domain must be between 4 and 253 characters")
	}

	if !hasAcceptableTLD(domain) {
		return invalid("email domain extension is invalid")
	}

	if looksLikeSpam(local, domain, email) {
		return invalid("email address appears to be invalid or disposable")
	}

	if numericRegex.MatchString(local) || len(local) < 2 {
		return invalid("email local part is invalid")
	}

	for _, disposable := range disposableDomains {
		if strings.Contains(email, disposable) {
			return invalid("disposable email addresses are not allowed")
		}
	}

	return Result{Valid: true, Message: "email is valid"}
}

// hasAcceptableTLD accepts domains ending in a common TLD, falling back to
// accepting any final dot-segment between 2 and 10 characters.
func hasAcceptableTLD(domain string) bool {
	tld := domain[strings.LastIndex(domain, ".")+1:]
	if _, ok := commonTLDs[tld]; ok {
		return true
	}
	return len(tld) >= 2 && len(tld) <= 10
}

// looksLikeSpam applies the heuristic spam patterns to a normalized address.
func looksLikeSpam(local, domain, email string) bool {
	// Purely numeric local part
	if numericRegex.MatchString(local) {
		return true
	}

	// Domain that is mostly digits
	if digitCount(domain)*2 > len(domain) {
		return true
	}

	// Any character repeated 5+ times consecutively
	if hasRepeatedRun(email, 5) {
		return true
	}

	// Local part starting with 8+ consecutive digits
	if leadingDigitsRegex.MatchString(local) {
		return true
	}

	// Domain advertising itself as temporary
	for _, marker := range spamDomainSubstrings {
		if strings.Contains(domain, marker) {
			return true
		}
	}

	// Domain with both labels 1-2 characters long (e.g. a.b)
	labels := strings.Split(domain, ".")
	if len(labels) == 2 && len(labels[0]) <= 2 && len(labels[1]) <= 2 {
		return true
	}

	return false
}

// digitCount counts ASCII digits in s.
func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

// hasRepeatedRun reports whether s contains the same rune repeated at least
// n times consecutively.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
