// Package postgres provides PostgreSQL implementations of the store interfaces
// for users and restaurants, the embedded goose migrations that create their
// tables, and the mapping from driver errors to store errors.
package postgres
