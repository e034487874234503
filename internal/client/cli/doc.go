// Package cli provides the interactive MediaVault command-line client.
//
// It wires configuration, the local mutation cache, the remote gateway, the
// item store and the upload pipeline into an interactive REPL. Typical flow:
// paste a session token, list items, toggle flags, upload files and manage
// albums; mutations apply locally first and survive remote failures.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
