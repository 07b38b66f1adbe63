// Package api implements the HTTP handlers for accounts, restaurants and the
// health probe. Handlers decode and validate JSON bodies, enforce resource
// ownership, and translate service errors into status codes and the
// {"error": "..."} response body.
package api
