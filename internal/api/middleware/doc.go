// Package middleware contains the HTTP middleware chain: request tracing and
// logging, and the bearer-token authentication gate.
package middleware
