package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/client/tokens"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	session     *session.Store
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	unwatch     func()
}

// NewApp builds the client stack described by c. User interaction goes
// through in and out.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	store, err := openTokenStore(ctx, c)
	if err != nil {
		_ = apiClient.Close()
		log.Error(ctx, "error initializing token store", "error", err)
		return nil, err
	}

	_, publisher := session.NewStore()
	as := services.NewAuthService(apiClient, store, publisher, log)
	return newApp(c, as, log, in, out), nil
}

func openTokenStore(ctx context.Context, c *config.Config) (tokens.Store, error) {
	if c.Ephemeral {
		return tokens.NewMemoryStore(), nil
	}
	s, err := tokens.OpenSQLiteStore(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}
	return s, nil
}

func newApp(c *config.Config, as services.AuthService, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:      c,
		authService: as,
		session:     as.Session(),
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
	}
	a.unwatch = a.session.Subscribe(a.onSessionChange)
	return a
}

// onSessionChange runs on the goroutine that changed the session.
func (a *App) onSessionChange(s session.Session) {
	if s.Authenticated() {
		fmt.Fprintf(a.out, "Signed in as %s\n", s.User.Username)
		return
	}
	fmt.Fprintln(a.out, "Signed out")
}

func (a *App) Close(ctx context.Context) error {
	a.unwatch()
	return a.authService.Close(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated()
}
