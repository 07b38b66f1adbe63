// Package service contains the application use cases: registering and
// authenticating users, owner-scoped profile reads and updates, and the
// restaurant directory.
//
// Services receive their stores, the password hasher and the token service
// through constructor injection, and never depend on a concrete database.
// Errors from the store layer are wrapped with %w so the HTTP layer can map
// them with errors.Is; ErrInvalidCredentials is the only error introduced
// here.
package service
