package api

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bioadmin/internal/client/models"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrNotAuthenticated is returned when an operation requires a session
	// and none exists. No network call is made.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired is returned when the server answers 401 to an
	// authenticated operation. The session is cleared as a side effect;
	// the caller must log in again before retrying.
	ErrSessionExpired = errors.New("session expired")
)

// AuthFailure classifies why a login attempt failed.
type AuthFailure string

const (
	// AuthRejected: the login endpoint answered with a non-success status.
	AuthRejected AuthFailure = "rejected"

	// AuthMissingToken: the login endpoint answered with a success status
	// but without a session token header. Distinct from a rejected login.
	AuthMissingToken AuthFailure = "missing session token"
)

// AuthError reports a failed login attempt. Status and Body carry the raw
// server response for diagnostics; both are zero for AuthMissingToken unless
// the server supplied them.
type AuthError struct {
	Reason AuthFailure
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("login failed (%s): status %d: %s", e.Reason, e.Status, e.Body)
	}
	return fmt.Sprintf("login failed (%s)", e.Reason)
}

// ValidationError reports locally-detected malformed input; no request was
// sent. It is the models-level field error under the name the rest of the
// taxonomy uses.
type ValidationError = models.FieldError

// NetworkError reports that the transport could not complete the exchange
// (unreachable server, TLS failure, timeout). No automatic retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx, non-401 response. Body carries the raw
// response for diagnostics.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status %d: %s", e.Status, e.Body)
}

// DecodeError reports a response body that does not match the expected
// schema. Kept distinct from ServerError even on a success status.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode server response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
