// Package cli provides the interactive gophmatch command-line client.
//
// It wires configuration, the gRPC client and a small REPL: register or log
// in, like other users by id, list likes and matches, and request an avatar
// upload URL. A background watcher tracks whether the server is reachable.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
