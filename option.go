package bitstream

import (
	"fmt"

	"github.com/arloliu/bitstream/endian"
	"github.com/arloliu/bitstream/internal/options"
)

// Option represents a functional option for configuring a Bitstream.
// This is a type alias for the generic Option interface specialized
// for Bitstream.
type Option = options.Option[*Bitstream]

// WithLittleEndian makes typed multi-byte values enter the stream
// least significant byte first. It is the default option.
func WithLittleEndian() Option {
	return options.NoError(func(s *Bitstream) {
		s.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian makes typed multi-byte values enter the stream most
// significant byte first. It rarely needs to be used unless
// interoperability with big-endian formats is required.
func WithBigEndian() Option {
	return options.NoError(func(s *Bitstream) {
		s.engine = endian.GetBigEndianEngine()
	})
}

// WithEngine sets a specific endian engine for typed values.
func WithEngine(engine endian.EndianEngine) Option {
	return options.New(func(s *Bitstream) error {
		if engine == nil {
			return fmt.Errorf("bitstream: nil endian engine")
		}
		s.engine = engine

		return nil
	})
}
