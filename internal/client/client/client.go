package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Client is the authentication API as seen by the auth service.
// Register and Login are unauthenticated calls.
type Client interface {
	Register(ctx context.Context, c models.RegisterCredentials) (*models.AuthResult, error)
	Login(ctx context.Context, c models.LoginCredentials) (*models.AuthResult, error)
	Close() error
}
