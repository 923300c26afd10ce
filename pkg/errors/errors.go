package errors

import "errors"

var (
	// Construction errors
	ErrInvalidCapacity = errors.New("memtable: capacity must be positive")

	// Lifecycle errors
	ErrClosed = errors.New("memtable: closed")

	// Config errors
	ErrInvalidFilterBits = errors.New("config: filter bits per key must be positive")

	// Client surface
	ErrKeyNotFound = errors.New("membuf: key not found")
)
