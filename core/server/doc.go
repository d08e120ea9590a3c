// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/serve.go) builds the Fiber app; this package
// only defines the settings it reads: listen port, optional API key, request body
// limit and the upload concurrency bounds.
package server
