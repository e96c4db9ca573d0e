package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern matches conventional email addresses
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 6

	// RatingMin and RatingMax bound course ratings
	RatingMin = 1
	RatingMax = 5
)

var emailRegex = regexp.MustCompile(EmailPattern)

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// IsFilled reports whether s contains non-whitespace content
func IsFilled(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidURL reports whether s parses as an absolute URL. The original form
// layer constructed a URL object and treated a throw as invalid; url.Parse is
// looser, so the scheme and host are checked explicitly.
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsValidRating reports whether r is inside the accepted rating range
func IsValidRating(r int) bool {
	return r >= RatingMin && r <= RatingMax
}
