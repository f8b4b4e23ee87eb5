package rope

import "errors"

// Errors returned by rope operations. Functions wrap these with some context,
// clients should test for them with errors.Is.
var (
	// ErrIndexOutOfRange is returned for positions outside of a rope.
	ErrIndexOutOfRange = errors.New("rope: index out of range")

	// ErrInvalidArgument is returned for malformed ranges, e.g. start > end.
	ErrInvalidArgument = errors.New("rope: invalid argument")

	// ErrInvalidState flags a broken tree invariant. Well-formed ropes never
	// produce it.
	ErrInvalidState = errors.New("rope: invalid state")
)
