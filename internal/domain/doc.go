// Package domain contains the core business entities of the service: user
// accounts, restaurant listings, and the partial-update and paging value
// types that travel between the HTTP layer and the stores.
package domain
