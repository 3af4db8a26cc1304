// Package store provides persistence for the converter widget's state.
//
// StateFileStore serialises the state as JSON under the configured home
// directory, replacing the file atomically on every save. MemoryStore keeps
// it in process memory for the HTTP server and tests. Both are safe for
// concurrent use.
package store
