package store

import "errors"

var (
	// ErrNotFound is returned when no order matches the requested id.
	ErrNotFound = errors.New("order not found")

	// ErrValidation is returned for order submissions missing required fields.
	ErrValidation = errors.New("invalid order payload")

	// ErrPersist is returned when a collection could not be written to disk.
	// The in-memory mutation that triggered the write is NOT rolled back:
	// callers must treat it as "applied in memory, durability uncertain" and
	// may retry via FlushAll later.
	ErrPersist = errors.New("failed to persist collection")
)
