// Package app wires application dependencies for the CLI and the server.
//
// It reads Config from the environment, builds the logger, stores,
// clipboard, services and remote client, and exposes them via the Wire
// struct. Serve runs the HTTP server until its context is cancelled.
package app
