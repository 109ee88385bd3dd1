// Package bitstream encodes and decodes values at bit granularity
// over a contiguous byte buffer.
//
// A Bitstream tracks a single cursor measured in bits and supports
// reads and writes of arbitrary bit counts, so serializers can pack
// fields tighter than byte boundaries allow: a 1-bit flag, a 3-bit
// enum, and a 12-bit length occupy exactly 16 bits. The stream handles
// the sub-byte arithmetic, including values that straddle byte
// boundaries, without disturbing neighboring bits.
//
// # Construction Modes
//
// A stream either owns its memory and grows on demand, or wraps
// caller-owned storage of fixed size:
//
//	s := bitstream.New()                     // empty, grows lazily
//	s := bitstream.NewWithCapacity(64)       // 64 bytes reserved up front
//	s := bitstream.FromBytes(buf)            // fixed, wraps caller memory
//	s := bitstream.FromBits(buf, 13)         // fixed, 13 addressable bits
//
// Growable streams draw their backing buffers from an internal pool;
// call Close when done to return the buffer for reuse. Fixed streams
// never grow and never release the wrapped memory.
//
// # Basic Usage
//
//	s := bitstream.New()
//	defer s.Close()
//
//	s.WriteBool(true)          // 1 bit
//	s.WriteUintBits(0b101, 3)  // 3 bits
//	s.WriteUint32(42)          // 32 bits
//
//	s.Seek(0)
//	flag := s.ReadBool()
//	mode := s.ReadUintBits(3)
//	id := s.ReadUint32()
//
//	payload := s.Bytes()   // ceil(Size()/8) bytes, ready for transport
//	digest := s.Sum64()    // xxHash64 integrity checksum of the payload
//
// # Error Handling
//
// The methods above form the unchecked tier: they assume the caller
// validated bounds (Size() - Tell() before reads, capacity on fixed
// streams before writes) and panic on contract violations. The Try
// variants (TryWriteBits, TryReadBits, TryWriteBool, TryReadBool)
// validate first and return sentinel errors from the errs package,
// matched with errors.Is.
//
// # Byte and Bit Order
//
// Bits pack LSB-first within each byte. Typed multi-byte values are
// split into bytes by a configurable endian engine, little-endian by
// default:
//
//	s := bitstream.New(bitstream.WithBigEndian())
//
// # Concurrency
//
// A Bitstream performs no locking and no blocking operations. Sharing
// one across goroutines requires external synchronization.
package bitstream
