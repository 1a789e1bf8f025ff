package pixbuf

import "errors"

// Errors reported by buffer operations.
var (
	// ErrShapeMismatch is returned when operand shapes disagree where an
	// operation requires them to be equal.
	ErrShapeMismatch = errors.New("pixbuf: shape mismatch")

	// ErrInvalidRegion is returned when a crop rectangle leaves the source.
	ErrInvalidRegion = errors.New("pixbuf: invalid region")

	// ErrAllocationFailure marks storage that cannot be allocated. It is
	// raised as a panic, never returned.
	ErrAllocationFailure = errors.New("pixbuf: allocation failure")
)
