package api

import (
	"context"

	"github.com/dmitrijs2005/bioadmin/internal/client/models"
)

// Client is the operation surface of the platform's administrative API.
//
// All methods honor context cancellation. None of them retries: a 401 clears
// the session and surfaces ErrSessionExpired, after which the caller decides
// whether to Login again.
type Client interface {
	// Login authenticates with the given credentials and stores the
	// server-issued session token. The credentials' secret is wiped on
	// every exit path, success or failure.
	Login(ctx context.Context, creds *models.Credentials) error

	// ListUsers fetches one page of the user directory.
	ListUsers(ctx context.Context, q models.UserQuery) (*models.UserCollectionResult, error)

	// CreateUser creates a directory user and returns the created user id
	// (echoing the request, since the server response is not guaranteed to
	// include a canonical representation).
	CreateUser(ctx context.Context, r *models.NewUserRequest) (string, error)

	// Logout drops the session token locally.
	Logout()

	// IsAuthenticated reports whether a session token is held.
	IsAuthenticated() bool

	// Close releases idle transport resources.
	Close() error
}
