// Package store declares the persistence contracts for user accounts and
// restaurant listings, together with the sentinel errors every implementation
// reports. The postgres package provides the production implementations.
package store
