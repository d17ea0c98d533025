// Package repository owns the entity collections for the process
// lifetime. Each entity has an interface, an in-memory implementation
// (the default deployment) and, where persistence is useful, a
// postgres implementation selected at startup.
package repository

import "errors"

var (
	// ErrNotFound is returned for unknown entity ids.
	ErrNotFound = errors.New("not found")
	// ErrDecided is returned when a signup decision is repeated.
	ErrDecided = errors.New("signup already decided")
)
