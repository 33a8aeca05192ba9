package cubeview

import "errors"

// Sentinel errors for the cubeview package.
var (
	// Validation errors
	ErrInvalidFace     = errors.New("cubeview: invalid face")
	ErrLayerOutOfRange = errors.New("cubeview: layer out of range")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubeview: invalid move notation")

	// Construction errors
	ErrCubeSize = errors.New("cubeview: cube size must be at least 2")
)
