// Package cli provides the interactive WordBridge command-line client.
//
// It wires configuration and the HTTP API client into a small REPL:
//   - signup     create an account (password is read without echo)
//   - login      check credentials and remember the email for the prompt
//   - translate  translate a line of text into a target language
//   - help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
