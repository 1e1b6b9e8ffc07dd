package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/apitest"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, baseURL string, ephemeral bool) *config.Config {
	t.Helper()
	return &config.Config{
		ServerBaseURL:  baseURL,
		DatabasePath:   filepath.Join(t.TempDir(), "auth.db"),
		RequestTimeout: 2 * time.Second,
		LogLevel:       "info",
		LogBackend:     "slog",
		Ephemeral:      ephemeral,
	}
}

// runApp drives the REPL to completion and releases the app.
func runApp(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()
	app.Root(ctx)
	require.NoError(t, app.Close(ctx))
}

func TestNewApp_RejectsBadURL(t *testing.T) {
	_, err := NewApp(context.Background(), testConfig(t, "not a url", true), logging.Nop(), strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
}

func TestApp_SessionAcrossREPL(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	srv := apitest.NewServer()
	defer srv.Close()

	in := strings.Join([]string{
		"register",
		"bob", "bob@x.com", "Aa1!Aa1!", "Aa1!Aa1!",
		"status",
		"logout",
		"logout",
		"login",
		"bob@x.com", "wrong-password",
		"login",
		"bob@x.com", "Aa1!Aa1!",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	cfg := testConfig(t, srv.BaseURL(), false)
	app, err := NewApp(context.Background(), cfg, logging.Nop(), strings.NewReader(in), &out)
	require.NoError(t, err)
	runApp(t, app)

	s := out.String()
	assert.Contains(t, s, "Password strength: strong")
	assert.Contains(t, s, "Registration successful, account id 1")
	assert.Contains(t, s, "Logged in as bob <bob@x.com> (id 1)")
	assert.Contains(t, s, "gophauth (bob)> ")
	assert.Contains(t, s, "Signed out")
	assert.Contains(t, s, "Not logged in")
	assert.Contains(t, s, "Incorrect email or password")
	assert.Equal(t, 2, strings.Count(s, "Signed in as bob"))
	assert.Contains(t, s, "Bye!")
}

func TestApp_ReportsTokenFromEarlierRun(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	srv := apitest.NewServer()
	defer srv.Close()
	cfg := testConfig(t, srv.BaseURL(), false)

	first := "register\nbob\nbob@x.com\nAa1!Aa1!\nAa1!Aa1!\nexit\n"
	app, err := NewApp(context.Background(), cfg, logging.Nop(), strings.NewReader(first), &bytes.Buffer{})
	require.NoError(t, err)
	runApp(t, app)

	var out bytes.Buffer
	app, err = NewApp(context.Background(), cfg, logging.Nop(), strings.NewReader("status\ntoken\nexit\n"), &out)
	require.NoError(t, err)
	runApp(t, app)

	s := out.String()
	assert.Equal(t, 2, strings.Count(s, "Token on file, please log in"))
	assert.Contains(t, s, "gophauth > ")
	assert.Contains(t, s, "> eyJ")
}

func TestApp_EphemeralForgetsToken(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	srv := apitest.NewServer()
	defer srv.Close()
	cfg := testConfig(t, srv.BaseURL(), true)

	first := "register\nbob\nbob@x.com\nAa1!Aa1!\nAa1!Aa1!\nexit\n"
	app, err := NewApp(context.Background(), cfg, logging.Nop(), strings.NewReader(first), &bytes.Buffer{})
	require.NoError(t, err)
	runApp(t, app)

	var out bytes.Buffer
	app, err = NewApp(context.Background(), cfg, logging.Nop(), strings.NewReader("token\nexit\n"), &out)
	require.NoError(t, err)
	runApp(t, app)

	assert.Contains(t, out.String(), "No token stored")
}
