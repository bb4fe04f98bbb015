package transform

import "errors"

// Sentinel errors for transform operations.
var (
	// Dispatch errors
	ErrUnknownAlgorithm = errors.New("transform: unknown algorithm")
	ErrUnknownOperation = errors.New("transform: unknown operation")

	// Input validation errors
	ErrInvalidKey      = errors.New("transform: invalid key")
	ErrInvalidStrength = errors.New("transform: invalid strength")
	ErrNilBuffer       = errors.New("transform: nil buffer")
)
