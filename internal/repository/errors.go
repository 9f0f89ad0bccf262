package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when the addressed record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint
	ErrDuplicate = errors.New("duplicate value violates a unique constraint")
	// ErrProtected is returned when a delete is blocked by dependent rows
	ErrProtected = errors.New("record is protected by dependent records")
)
