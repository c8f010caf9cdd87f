// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "videotube/internal/errors"

// Domain-specific persistence errors. Implementations return these (optionally wrapped)
// so that use cases never need to know about driver errors.
var (
	// ErrInvalidID is returned when an identifier cannot be converted to the store's native id.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)
