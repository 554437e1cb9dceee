// Package services contains application services for the bioadmin client.
// They sit between the interactive CLI and the raw API client: applying
// defaults, constructing request values, and logging outcomes.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bioadmin/internal/client/api"
	"github.com/dmitrijs2005/bioadmin/internal/client/models"
	"github.com/dmitrijs2005/bioadmin/internal/logging"
)

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Login: authenticate the operator against the platform; the secret
//     buffer is wiped before Login returns, success or failure.
//   - Logout: drop the session locally.
//   - IsAuthenticated: whether a session token is currently held.
type AuthService interface {
	Login(ctx context.Context, loginID string, secret []byte) error
	Logout(ctx context.Context)
	IsAuthenticated() bool
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client api.Client, log logging.Logger) AuthService {
	return &authService{client: client, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, loginID string, secret []byte) error {
	creds := &models.Credentials{LoginID: loginID, Secret: secret}

	if err := a.client.Login(ctx, creds); err != nil {
		a.log.Warn(ctx, "login failed", "login_id", loginID, "err", err)
		return fmt.Errorf("login error: %w", err)
	}

	a.log.Info(ctx, "login successful", "login_id", loginID)
	return nil
}

func (a *authService) Logout(ctx context.Context) {
	a.client.Logout()
	a.log.Info(ctx, "logged out")
}

func (a *authService) IsAuthenticated() bool {
	return a.client.IsAuthenticated()
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
