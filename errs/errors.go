// Package errs defines the sentinel errors returned by the checked
// bitstream operations.
//
// Errors are returned wrapped with call-site context via
// fmt.Errorf("%w: ...") and should be matched with errors.Is:
//
//	if err := stream.TryReadBits(buf, 64); errors.Is(err, errs.ErrEndOfStream) {
//	    // not enough valid bits left
//	}
//
// Only data-dependent failures are reported as errors. Programming
// errors (negative bit counts on the unchecked tier, use of a stream
// after Close) panic instead.
package errs

import "errors"

var (
	// ErrEndOfStream is returned when a checked read requests more bits
	// than remain between the cursor and the logical stream length.
	ErrEndOfStream = errors.New("bitstream: end of stream")

	// ErrExceedsCapacity is returned when a checked write on a stream
	// wrapping caller-owned storage would run past the fixed capacity.
	ErrExceedsCapacity = errors.New("bitstream: exceeds fixed capacity")

	// ErrInvalidBitCount is returned when a checked operation is given
	// a negative bit count.
	ErrInvalidBitCount = errors.New("bitstream: invalid bit count")

	// ErrBufferTooSmall is returned when the caller-supplied source or
	// destination slice cannot hold the requested number of bits.
	ErrBufferTooSmall = errors.New("bitstream: buffer too small")
)
