package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/validation"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errInvalidForm = errors.New("form has errors")

const (
	msgTokenOnFile   = "Token on file, please log in"
	msgNotLoggedIn   = "Not logged in"
	msgNoTokenStored = "No token stored"
)

var fieldLabels = map[string]string{
	validation.FieldUsername:        "Username",
	validation.FieldEmail:           "Email",
	validation.FieldPassword:        "Password",
	validation.FieldConfirmPassword: "Confirm password",
}

// Register prompts for username, email, password and confirmation, checks
// them locally and submits them. Nothing is sent while the form has errors.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if pw := validation.ValidatePassword(string(password)); pw.Strength != validation.StrengthNone {
		fmt.Fprintf(a.out, "Password strength: %s\n", pw.Strength)
	}

	confirmation, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	creds := models.RegisterCredentials{Username: username, Email: email, Password: string(password)}
	if form := validation.ValidateRegisterForm(creds, string(confirmation)); !form.Valid() {
		a.printForm(form)
		return errInvalidForm
	}

	res, err := a.authService.Register(ctx, creds)
	if err != nil {
		a.printFailure(services.OpRegister, err)
		return err
	}

	fmt.Fprintf(a.out, "Registration successful, account id %d\n", res.User.ID)
	return nil
}

// Login prompts for email and password and authenticates. Both fields are
// required and the email must be well formed before anything is sent.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.LoginCredentials{Email: email, Password: string(password)}
	if form := validation.ValidateLoginForm(creds); !form.Valid() {
		a.printForm(form)
		return errInvalidForm
	}

	if _, err := a.authService.Login(ctx, creds); err != nil {
		a.printFailure(services.OpLogin, err)
		return err
	}
	return nil
}

// Logout forgets the session and the stored token.
func (a *App) Logout(ctx context.Context) error {
	wasLoggedIn := a.isLoggedIn()
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed")
		return err
	}
	if !wasLoggedIn {
		fmt.Fprintln(a.out, msgNotLoggedIn)
	}
	return nil
}

// Status prints who is logged in. A stored token without a session (left
// over from an earlier run) is reported but not trusted.
func (a *App) Status(ctx context.Context) error {
	s := a.session.Snapshot()
	if s.Authenticated() {
		fmt.Fprintf(a.out, "Logged in as %s <%s> (id %d)\n", s.User.Username, s.User.Email, s.User.ID)
		return nil
	}

	_, ok, err := a.authService.Token(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read token store")
		return err
	}
	if ok {
		fmt.Fprintln(a.out, msgTokenOnFile)
		return nil
	}
	fmt.Fprintln(a.out, msgNotLoggedIn)
	return nil
}

// Token prints the stored bearer token.
func (a *App) Token(ctx context.Context) error {
	token, ok, err := a.authService.Token(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read token store")
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, msgNoTokenStored)
		return nil
	}
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) printForm(form validation.FormResult) {
	for _, fe := range form.Errors {
		fmt.Fprintf(a.out, "  %s: %s\n", fieldLabels[fe.Field], fe.Message)
	}
	if form.Message != "" {
		fmt.Fprintln(a.out, form.Message)
	}
}

// printFailure shows the failure next to the field the server blamed, or as
// a banner when it named none.
func (a *App) printFailure(op services.Op, err error) {
	msg := services.FailureMessage(op, err)
	if field, ok := client.FieldOf(err); ok {
		if label, known := fieldLabels[field]; known {
			fmt.Fprintf(a.out, "  %s: %s\n", label, msg)
			return
		}
	}
	fmt.Fprintln(a.out, msg)
}
