// Package mocks provides test doubles for the store, auth and service
// interfaces. Stores are testify/mock based; the rest use function fields
// with default return values.
package mocks
