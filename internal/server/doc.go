// Package server runs the local control API of the sync client.
//
// It owns the listener and the graceful shutdown of the HTTP server. Signal
// handling stays with the client application, which stops the server together
// with the sync engine.
package server
