// Package store defines the persistence interfaces and errors used by the
// rest of the application. Implementations live under internal/platform.
package store
