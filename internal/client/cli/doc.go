// Package cli provides the interactive bioadmin command-line client.
//
// It wires configuration, the API client, application services, and an
// interactive REPL. Typical flow: prompt for operator credentials, then
// execute directory commands until the user exits.
//
// Key features:
//   - Login / Logout against the platform's session endpoint
//   - List directory users page by page
//   - Add a user (interactive prompts, optional fields skippable)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
