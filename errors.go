package countnet

import "errors"

// Construction errors. Traverse and Next have no failure modes: every
// runtime operation on a fully constructed Network is infallible.
var (
	// ErrWidthZero is returned when a network is constructed with width 0.
	ErrWidthZero = errors.New("countnet: width must be greater than zero")

	// ErrWidthNotPowerOfTwo is returned when a requested width is not a
	// power of two.
	ErrWidthNotPowerOfTwo = errors.New("countnet: width must be a power of two")

	// ErrOutputsLengthMismatch describes an output sequence whose length
	// disagrees with a requested width. No constructor in this package
	// takes both a width and an output sequence, so none returns it.
	ErrOutputsLengthMismatch = errors.New("countnet: len(outputs) must equal width")
)
