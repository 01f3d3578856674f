package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Username pattern - letters, digits and underscores only
	UsernamePattern = `^[a-zA-Z0-9_]+$`

	// Password min length
	PasswordMinLength = 6

	// Username min/max length
	UsernameMinLength = 3
	UsernameMaxLength = 32

	// Profile name min/max length
	NameMinLength = 2
	NameMaxLength = 128
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Username *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Username: regexp.MustCompile(UsernamePattern),
}

// ValidUsername reports whether a username is well-formed.
func ValidUsername(username string) bool {
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return false
	}
	return CompiledPatterns.Username.MatchString(username)
}

// ValidEmail reports whether an email address is well-formed.
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// ValidPassword reports whether a password meets the minimum requirements.
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
