// Package cli provides the interactive command-line front-end of the auth
// client.
//
// It wires configuration, session storage, the Auth API client and the
// AuthService, then runs a REPL in which the terminal plays the role of the
// two pages of the web front-end: the login view and the dashboard view.
// Navigation and status messages produced by the service are rendered as
// lines of output.
//
// Key features:
//   - Register / Login / Logout
//   - Profile of the logged-in user, refreshed from the server
//   - whoami from the locally stored session
//   - Background connectivity watcher (online / offline in the prompt)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
