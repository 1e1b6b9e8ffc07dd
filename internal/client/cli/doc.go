// Package cli provides the interactive gophauth command-line client.
//
// It wires configuration, the local token store, the API client and the auth
// service, then runs a REPL over them. The same App backs the one-shot
// subcommands of cmd/cli.
//
// Commands:
//   - register / login: prompt for credentials, validate them locally, submit
//   - logout: forget the session and the stored token
//   - status / token: show the current session or the stored token
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
