package services

import "github.com/dmitrijs2005/gophauth/internal/client/client"

// Op names an authentication operation for logs and messages.
type Op string

const (
	OpLogin    Op = "login"
	OpRegister Op = "register"
)

const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
)

// FailureMessage is what the user is shown when op failed with err: the
// server's own detail when it sent one, otherwise a generic line.
func FailureMessage(op Op, err error) string {
	if detail, ok := client.DetailOf(err); ok {
		return detail
	}
	if op == OpRegister {
		return MsgRegistrationFailed
	}
	return MsgLoginFailed
}
