// Package api implements the session-authenticated request pipeline against
// the access-control platform's administrative REST API.
//
// The pipeline has four parts:
//
//   - Session: the mutable session-token store; token mutation is a critical
//     section, and the token (once set) is attached to every outgoing request
//     until explicitly cleared.
//   - request builders: pure functions turning operation parameters into wire
//     requests (paths, query strings, JSON bodies).
//   - response decoding: unwraps the server's envelope conventions and keeps
//     decode failures distinct from server failures.
//   - RESTClient: sequences the operations Login, ListUsers and CreateUser,
//     reacting to authorization loss (401 clears the session and surfaces
//     ErrSessionExpired; the caller decides whether to log in again).
//
// The package never retries and never logs; every failure is returned as a
// distinguishable error (see errors.go).
package api
