package validation

import "unicode/utf8"

// Strength classifies a password. StrengthNone means no classification.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return ""
	}
}

// MaxPasswordScore is the number of complexity predicates PasswordScore sums.
const MaxPasswordScore = 6

// PasswordOutcome is an Outcome with a strength attached.
// Strength is set for every non-empty password, including too-short ones.
type PasswordOutcome struct {
	Outcome
	Strength Strength
}

// ValidatePassword requires a password of at least MinPasswordLength and
// grades it. A too-short password is invalid and always graded weak.
func ValidatePassword(password string) PasswordOutcome {
	if password == "" {
		return PasswordOutcome{Outcome: invalid(MsgPasswordRequired)}
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return PasswordOutcome{Outcome: invalid(MsgPasswordTooShort), Strength: StrengthWeak}
	}
	return PasswordOutcome{Outcome: valid(), Strength: PasswordStrength(password)}
}

// PasswordScore counts satisfied predicates: length >= 8, length >= 12,
// lowercase, uppercase, digit, and a character outside [A-Za-z0-9].
func PasswordScore(password string) int {
	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	n := utf8.RuneCountInString(password)
	score := 0
	for _, ok := range []bool{n >= 8, n >= 12, lower, upper, digit, other} {
		if ok {
			score++
		}
	}
	return score
}

// PasswordStrength maps PasswordScore onto Strength: 5+ strong, 3+ medium.
func PasswordStrength(password string) Strength {
	switch score := PasswordScore(password); {
	case score >= 5:
		return StrengthStrong
	case score >= 3:
		return StrengthMedium
	default:
		return StrengthWeak
	}
}
