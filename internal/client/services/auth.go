// Package services contains application services for the gophauth client.
// This file defines the authentication service: register, login, logout and
// the persisted bearer token behind the current session.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/client/tokens"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register/Login: one API call; on success persist the token, then
//     publish the session. On failure nothing is persisted or published.
//   - Logout: forget the token and publish the anonymous session. No API call.
//   - Token: the persisted token, if any.
//   - Session: the read side of the session state.
//   - Close: release the API client and the token store.
type AuthService interface {
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResult, error)
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResult, error)
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, bool, error)
	Session() *session.Store
	Close(ctx context.Context) error
}

type authService struct {
	client    client.Client
	tokens    tokens.Store
	publisher *session.Publisher
	log       logging.Logger

	// writeMu keeps each persist+publish pair in order. Token does not take it,
	// so listeners may read the token while a write is being published.
	writeMu sync.Mutex
}

// NewAuthService constructs an AuthService. It becomes the only writer of
// the store behind publisher.
func NewAuthService(c client.Client, store tokens.Store, publisher *session.Publisher, log logging.Logger) AuthService {
	return &authService{client: c, tokens: store, publisher: publisher, log: log}
}

func (a *authService) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResult, error) {
	log := a.log.With("op", OpRegister)

	res, err := a.client.Register(ctx, creds)
	if err != nil {
		logFailure(ctx, log, err)
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.establish(ctx, res); err != nil {
		log.Error(ctx, "session not established", "error", err)
		return nil, err
	}

	log.Info(ctx, "registered", "user_id", res.User.ID)
	return res, nil
}

func (a *authService) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResult, error) {
	log := a.log.With("op", OpLogin)

	res, err := a.client.Login(ctx, creds)
	if err != nil {
		logFailure(ctx, log, err)
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.establish(ctx, res); err != nil {
		log.Error(ctx, "session not established", "error", err)
		return nil, err
	}

	log.Info(ctx, "logged in", "user_id", res.User.ID)
	return res, nil
}

// establish persists the token and then publishes the session.
func (a *authService) establish(ctx context.Context, res *models.AuthResult) error {
	if !res.Complete() {
		return fmt.Errorf("%w: missing user or token", client.ErrMalformedResponse)
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	if err := a.tokens.Set(ctx, common.TokenStorageKey, res.Token.AccessToken); err != nil {
		return fmt.Errorf("token saving error: %w", err)
	}
	if _, err := a.publisher.Authenticate(res.User, res.Token.AccessToken); err != nil {
		return err
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	if err := a.tokens.Remove(ctx, common.TokenStorageKey); err != nil {
		return fmt.Errorf("token removal error: %w", err)
	}
	if a.publisher.Clear() {
		a.log.Info(ctx, "logged out")
	}
	return nil
}

// Token reads the persisted token. The token is written before the session is
// published, so a listener sees the token that matches the session it gets.
func (a *authService) Token(ctx context.Context) (string, bool, error) {
	return a.tokens.Get(ctx, common.TokenStorageKey)
}

func (a *authService) Session() *session.Store {
	return a.publisher.Store()
}

// Close releases the API client and, when it holds resources, the token store.
func (a *authService) Close(ctx context.Context) error {
	var errs []error
	if err := a.client.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close client: %w", err))
	}
	if c, ok := a.tokens.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close token store: %w", err))
		}
	}
	return errors.Join(errs...)
}

func logFailure(ctx context.Context, log logging.Logger, err error) {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		log.Info(ctx, "rejected by server", "status", apiErr.Status)
	case client.IsTransport(err):
		log.Warn(ctx, "server unreachable", "error", err)
	default:
		log.Error(ctx, "request failed", "error", err)
	}
}
