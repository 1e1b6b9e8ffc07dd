package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Status(context.Context) error { f.calls = append(f.calls, "status"); return nil }
func (f *fakeExec) Token(context.Context) error  { f.calls = append(f.calls, "token"); return nil }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"status",
		"whoami",
		"token",
		"logout",
		"register",
		"foobar",
		"exit",
		"login",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "(s)" }, rdr(input), &out)

	assert.Equal(t, []string{"login", "status", "status", "token", "logout", "register"}, exec.calls)

	s := out.String()
	assert.Contains(t, s, "gophauth (s)> ")
	assert.Contains(t, s, "Available commands: register, login, status, token, exit")
	assert.Contains(t, s, "Available commands: status, token, logout, login, register, exit")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("status"), &out)

	assert.Equal(t, []string{"status"}, exec.calls)
	assert.NotContains(t, out.String(), "Bye!")
}
