package validation

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		valid   bool
		message string
	}{
		{"empty", "", false, MsgEmailRequired},
		{"no tld", "a@b", false, MsgEmailInvalid},
		{"no at", "ab.com", false, MsgEmailInvalid},
		{"double at", "a@@b.com", false, MsgEmailInvalid},
		{"whitespace in local part", "a b@x.com", false, MsgEmailInvalid},
		{"trailing dot only", "a@b.", false, MsgEmailInvalid},
		{"no-break space in local part", "a\u00a0b@x.com", false, MsgEmailInvalid},
		{"em space in domain", "bob@x\u2003y.com", false, MsgEmailInvalid},
		{"line separator at end", "bob@x.com\u2028", false, MsgEmailInvalid},
		{"vertical tab", "bob\v@x.com", false, MsgEmailInvalid},
		{"byte order mark", "\ufeffbob@x.com", false, MsgEmailInvalid},
		{"non-ascii letters", "jos\u00e9@x.com", true, ""},
		{"simple", "a@b.com", true, ""},
		{"subdomain", "bob@mail.x.co", true, ""},
		{"plus tag", "bob+tag@x.com", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateEmail(tt.in)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		valid   bool
		message string
	}{
		{"empty", "", false, MsgUsernameRequired},
		{"too short", "ab", false, MsgUsernameTooShort},
		{"too long", strings.Repeat("a", 21), false, MsgUsernameTooLong},
		{"length checked before charset", strings.Repeat("a", 12) + " " + strings.Repeat("b", 12), false, MsgUsernameTooLong},
		{"short with bad char reports length", "a!", false, MsgUsernameTooShort},
		{"space", "a b", false, MsgUsernameCharset},
		{"dash", "user-name", false, MsgUsernameCharset},
		{"non ascii letter", "üser", false, MsgUsernameCharset},
		{"min length", "bob", true, ""},
		{"max length", strings.Repeat("z", 20), true, ""},
		{"underscore and digits", "bob_42", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateUsername(tt.in)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestValidateUsername_Property(t *testing.T) {
	const alphabet = "abcXYZ019_ -!é"
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		n := rnd.Intn(26)
		var b strings.Builder
		for j := 0; j < n; j++ {
			r := []rune(alphabet)
			b.WriteRune(r[rnd.Intn(len(r))])
		}
		s := b.String()

		runes := []rune(s)
		want := len(runes) >= 3 && len(runes) <= 20
		for _, r := range runes {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
				want = false
			}
		}

		got := ValidateUsername(s)
		require.Equal(t, want, got.Valid, "input %q", s)
		require.Equal(t, got.Valid, got.Message == "", "message must be empty iff valid, input %q", s)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		valid    bool
		message  string
		strength Strength
	}{
		{"empty has no strength", "", false, MsgPasswordRequired, StrengthNone},
		{"too short is weak", "short", false, MsgPasswordTooShort, StrengthWeak},
		{"too short even if complex", "Aa1!", false, MsgPasswordTooShort, StrengthWeak},
		{"lowercase only", "password", true, "", StrengthWeak},
		{"four points", "alllowercase1", true, "", StrengthMedium},
		{"three points", "Password", true, "", StrengthMedium},
		{"five points at min length", "Aa1!Aa1!", true, "", StrengthStrong},
		{"all six", "Aa1!Aa1!Aa1!", true, "", StrengthStrong},
		{"unicode counts as symbol", "ünïcödé1", true, "", StrengthMedium},
		{"emoji count once", "Aa1!😀😀", false, MsgPasswordTooShort, StrengthWeak},
		{"emoji at min length", "Aa1!😀😀😀😀", true, "", StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePassword(tt.in)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.message, got.Message)
			assert.Equal(t, tt.strength, got.Strength)
		})
	}
}

func TestPasswordScore(t *testing.T) {
	assert.Equal(t, 0, PasswordScore(""))
	assert.Equal(t, 1, PasswordScore("abc"))
	assert.Equal(t, 2, PasswordScore("abcdefgh"))
	assert.Equal(t, 4, PasswordScore("alllowercase1"))
	assert.Equal(t, MaxPasswordScore, PasswordScore("Aa1!Aa1!Aa1!"))
	assert.Equal(t, 5, PasswordScore("Aa1!😀😀😀😀😀😀😀"))
}

func TestPasswordScore_OrderIndependent(t *testing.T) {
	base := []rune("Aa1!bcdefghij")
	want := PasswordScore(string(base))
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		rnd.Shuffle(len(base), func(a, b int) { base[a], base[b] = base[b], base[a] })
		require.Equal(t, want, PasswordScore(string(base)))
	}
}

func TestStrength_String(t *testing.T) {
	assert.Equal(t, "", StrengthNone.String())
	assert.Equal(t, "weak", StrengthWeak.String())
	assert.Equal(t, "medium", StrengthMedium.String())
	assert.Equal(t, "strong", StrengthStrong.String())
}

func TestValidatePasswordConfirmation(t *testing.T) {
	assert.Equal(t, Outcome{Valid: true}, ValidatePasswordConfirmation("x", "x"))
	assert.Equal(t, Outcome{Message: MsgConfirmationMismatch}, ValidatePasswordConfirmation("x", "y"))
	assert.Equal(t, Outcome{Message: MsgConfirmationRequired}, ValidatePasswordConfirmation("x", ""))
	assert.Equal(t, Outcome{Message: MsgConfirmationMismatch}, ValidatePasswordConfirmation("Secret", "secret"))
}
