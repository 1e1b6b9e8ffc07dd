package validation

import "github.com/dmitrijs2005/gophauth/internal/client/models"

// Form field names, shared with API error attribution.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// FieldError ties a message to the form field it belongs to.
type FieldError struct {
	Field   string
	Message string
}

// FormResult collects per-field errors in form order.
// Message holds a form-level banner when one applies.
type FormResult struct {
	Errors   []FieldError
	Message  string
	Strength Strength
}

// Valid reports whether the form may be submitted.
func (r FormResult) Valid() bool {
	return len(r.Errors) == 0 && r.Message == ""
}

// Error returns the message recorded for field, if any.
func (r FormResult) Error(field string) (string, bool) {
	for _, fe := range r.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

func (r *FormResult) add(field string, o Outcome) {
	if !o.Valid {
		r.Errors = append(r.Errors, FieldError{Field: field, Message: o.Message})
	}
}

// ValidateLoginForm checks a login submission. Both fields are required; the
// email format is checked once it is present. The password is not graded:
// an existing account may predate the current rules.
func ValidateLoginForm(c models.LoginCredentials) FormResult {
	var r FormResult
	if c.Email == "" || c.Password == "" {
		r.Message = MsgFillAllFields
		return r
	}
	r.add(FieldEmail, ValidateEmail(c.Email))
	return r
}

// ValidateRegisterForm runs every registration rule and reports all failures.
func ValidateRegisterForm(c models.RegisterCredentials, confirmation string) FormResult {
	var r FormResult

	r.add(FieldUsername, ValidateUsername(c.Username))
	r.add(FieldEmail, ValidateEmail(c.Email))

	pw := ValidatePassword(c.Password)
	r.add(FieldPassword, pw.Outcome)
	r.Strength = pw.Strength

	r.add(FieldConfirmPassword, ValidatePasswordConfirmation(c.Password, confirmation))

	if len(r.Errors) > 0 {
		r.Message = MsgFixErrorsBeforeSubmit
	}
	return r
}
