// Package store defines the persistence interfaces used by the service layer
// and the errors their implementations return. Implementations live in
// internal/platform/postgres.
package store
