package bitstream

import (
	"fmt"

	"github.com/arloliu/bitstream/errs"
)

// Checked operation tier.
//
// The unchecked methods assume the caller already validated bounds and
// panic on contract violations, keeping the hot path free of error
// plumbing. The Try variants below validate first and report
// data-dependent failures as wrapped sentinel errors from the errs
// package, for call sites fed by untrusted or unpredictable input.
//
// Programming errors, such as using a stream after Close, still panic
// in both tiers.

// TryWriteBits is the checked variant of WriteBits.
//
// Returns:
//   - errs.ErrInvalidBitCount if count is negative
//   - errs.ErrBufferTooSmall if src cannot hold count bits
//   - errs.ErrExceedsCapacity if the stream is fixed and the write
//     would run past its capacity
//
// Writes on growable streams cannot fail for capacity; growth handles
// any count.
func (s *Bitstream) TryWriteBits(src []byte, count int) error {
	s.checkOpen()

	if count < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBitCount, count)
	}
	if count == 0 {
		return nil
	}
	if len(src) < quantCount(count) {
		return fmt.Errorf("%w: %d bits need %d bytes, source has %d",
			errs.ErrBufferTooSmall, count, quantCount(count), len(src))
	}
	if !s.owns && s.cursor+count > s.capBits {
		return fmt.Errorf("%w: %d bits at cursor %d, capacity %d",
			errs.ErrExceedsCapacity, count, s.cursor, s.capBits)
	}

	s.WriteBits(src, count)

	return nil
}

// TryReadBits is the checked variant of ReadBits.
//
// Returns:
//   - errs.ErrInvalidBitCount if count is negative
//   - errs.ErrBufferTooSmall if dst cannot hold count bits
//   - errs.ErrEndOfStream if fewer than count bits remain before the
//     logical length
func (s *Bitstream) TryReadBits(dst []byte, count int) error {
	s.checkOpen()

	if count < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBitCount, count)
	}
	if count == 0 {
		return nil
	}
	if len(dst) < quantCount(count) {
		return fmt.Errorf("%w: %d bits need %d bytes, destination has %d",
			errs.ErrBufferTooSmall, count, quantCount(count), len(dst))
	}
	if s.cursor+count > s.numBits {
		return fmt.Errorf("%w: %d bits at cursor %d, length %d",
			errs.ErrEndOfStream, count, s.cursor, s.numBits)
	}

	s.ReadBits(dst, count)

	return nil
}

// TryWriteBool is the checked variant of WriteBool. It returns
// errs.ErrExceedsCapacity instead of panicking when the stream is
// fixed and the cursor sits at its capacity.
func (s *Bitstream) TryWriteBool(value bool) error {
	s.checkOpen()

	if !s.owns && s.cursor+1 > s.capBits {
		return fmt.Errorf("%w: 1 bit at cursor %d, capacity %d",
			errs.ErrExceedsCapacity, s.cursor, s.capBits)
	}

	s.WriteBool(value)

	return nil
}

// TryReadBool is the checked variant of ReadBool. It returns
// errs.ErrEndOfStream instead of panicking when the cursor is at or
// past the logical length.
func (s *Bitstream) TryReadBool() (bool, error) {
	s.checkOpen()

	if s.cursor >= s.numBits {
		return false, fmt.Errorf("%w: 1 bit at cursor %d, length %d",
			errs.ErrEndOfStream, s.cursor, s.numBits)
	}

	return s.ReadBool(), nil
}
