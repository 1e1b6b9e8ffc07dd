package validation

import (
	"regexp"
	"unicode/utf8"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 8
)

// Messages returned in Outcome.Message.
const (
	MsgEmailRequired         = "Email is required"
	MsgEmailInvalid          = "Invalid email format"
	MsgUsernameRequired      = "Username is required"
	MsgUsernameTooShort      = "Username must be at least 3 characters"
	MsgUsernameTooLong       = "Username must be less than 20 characters"
	MsgUsernameCharset       = "Only letters, numbers, and underscores allowed"
	MsgPasswordRequired      = "Password is required"
	MsgPasswordTooShort      = "Password must be at least 8 characters"
	MsgConfirmationRequired  = "Please confirm your password"
	MsgConfirmationMismatch  = "Passwords do not match"
	MsgFillAllFields         = "Please fill in all fields"
	MsgFixErrorsBeforeSubmit = "Please fix all errors before submitting"
)

var (
	// RE2's \s is ASCII only; \x0B, \p{Z} and BOM widen it to every space.
	emailPattern    = regexp.MustCompile(`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// Outcome is the verdict for a single field. Message is empty iff Valid.
type Outcome struct {
	Valid   bool
	Message string
}

func valid() Outcome { return Outcome{Valid: true} }

func invalid(msg string) Outcome { return Outcome{Message: msg} }

// ValidateEmail checks presence and the local@domain.tld shape.
// Existence and uniqueness are left to the server.
func ValidateEmail(email string) Outcome {
	if email == "" {
		return invalid(MsgEmailRequired)
	}
	if !emailPattern.MatchString(email) {
		return invalid(MsgEmailInvalid)
	}
	return valid()
}

// ValidateUsername applies the username rules in order and reports the first
// one that fails.
func ValidateUsername(username string) Outcome {
	if username == "" {
		return invalid(MsgUsernameRequired)
	}

	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength {
		return invalid(MsgUsernameTooShort)
	}
	if n > MaxUsernameLength {
		return invalid(MsgUsernameTooLong)
	}

	if !usernamePattern.MatchString(username) {
		return invalid(MsgUsernameCharset)
	}
	return valid()
}

// ValidatePasswordConfirmation compares the confirmation with the password
// byte for byte.
func ValidatePasswordConfirmation(password, confirmation string) Outcome {
	if confirmation == "" {
		return invalid(MsgConfirmationRequired)
	}
	if password != confirmation {
		return invalid(MsgConfirmationMismatch)
	}
	return valid()
}
