// Package common contains shared constants and sentinel errors used across
// bioadmin components.
package common

// SessionHeaderName is the HTTP header carrying the server-issued session
// token, both on the login response and on subsequent authenticated requests.
const SessionHeaderName = "bs-session-id"
