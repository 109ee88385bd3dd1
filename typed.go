package bitstream

import (
	"encoding/binary"
	"math"
)

// Typed fixed-width helpers.
//
// Each helper serializes one value to its fixed-width byte
// representation and delegates to the raw bit operations, so values
// land at the cursor regardless of alignment. Multi-byte values pass
// through the stream's endian engine first; the bit order within each
// byte is always LSB-first.
//
// The helpers share the unchecked tier's contract: reads past the
// logical length and fixed-buffer overflows panic. Callers needing
// recoverable errors should pre-validate with Remaining() or use the
// raw Try variants.

// WriteUint8 writes an 8-bit value at the cursor.
func (s *Bitstream) WriteUint8(value uint8) {
	buf := [1]byte{value}
	s.WriteBits(buf[:], 8)
}

// WriteUint16 writes a 16-bit value at the cursor, byte-ordered by the
// stream's endian engine.
func (s *Bitstream) WriteUint16(value uint16) {
	var buf [2]byte
	s.engine.PutUint16(buf[:], value)
	s.WriteBits(buf[:], 16)
}

// WriteUint32 writes a 32-bit value at the cursor, byte-ordered by the
// stream's endian engine.
func (s *Bitstream) WriteUint32(value uint32) {
	var buf [4]byte
	s.engine.PutUint32(buf[:], value)
	s.WriteBits(buf[:], 32)
}

// WriteUint64 writes a 64-bit value at the cursor, byte-ordered by the
// stream's endian engine.
func (s *Bitstream) WriteUint64(value uint64) {
	var buf [8]byte
	s.engine.PutUint64(buf[:], value)
	s.WriteBits(buf[:], 64)
}

// WriteInt8 writes an 8-bit signed value at the cursor.
func (s *Bitstream) WriteInt8(value int8) {
	s.WriteUint8(uint8(value))
}

// WriteInt16 writes a 16-bit signed value at the cursor.
func (s *Bitstream) WriteInt16(value int16) {
	s.WriteUint16(uint16(value))
}

// WriteInt32 writes a 32-bit signed value at the cursor.
func (s *Bitstream) WriteInt32(value int32) {
	s.WriteUint32(uint32(value))
}

// WriteInt64 writes a 64-bit signed value at the cursor.
func (s *Bitstream) WriteInt64(value int64) {
	s.WriteUint64(uint64(value))
}

// WriteFloat32 writes a float32 as its IEEE 754 bit pattern.
func (s *Bitstream) WriteFloat32(value float32) {
	s.WriteUint32(math.Float32bits(value))
}

// WriteFloat64 writes a float64 as its IEEE 754 bit pattern.
func (s *Bitstream) WriteFloat64(value float64) {
	s.WriteUint64(math.Float64bits(value))
}

// WriteBytes writes all of src at the cursor, len(src)*8 bits.
func (s *Bitstream) WriteBytes(src []byte) {
	s.WriteBits(src, len(src)*bitsPerQuant)
}

// ReadUint8 reads an 8-bit value at the cursor.
func (s *Bitstream) ReadUint8() uint8 {
	var buf [1]byte
	s.ReadBits(buf[:], 8)

	return buf[0]
}

// ReadUint16 reads a 16-bit value at the cursor, byte-ordered by the
// stream's endian engine.
func (s *Bitstream) ReadUint16() uint16 {
	var buf [2]byte
	s.ReadBits(buf[:], 16)

	return s.engine.Uint16(buf[:])
}

// ReadUint32 reads a 32-bit value at the cursor, byte-ordered by the
// stream's endian engine.
func (s *Bitstream) ReadUint32() uint32 {
	var buf [4]byte
	s.ReadBits(buf[:], 32)

	return s.engine.Uint32(buf[:])
}

// ReadUint64 reads a 64-bit value at the cursor, byte-ordered by the
// stream's endian engine.
func (s *Bitstream) ReadUint64() uint64 {
	var buf [8]byte
	s.ReadBits(buf[:], 64)

	return s.engine.Uint64(buf[:])
}

// ReadInt8 reads an 8-bit signed value at the cursor.
func (s *Bitstream) ReadInt8() int8 {
	return int8(s.ReadUint8())
}

// ReadInt16 reads a 16-bit signed value at the cursor.
func (s *Bitstream) ReadInt16() int16 {
	return int16(s.ReadUint16())
}

// ReadInt32 reads a 32-bit signed value at the cursor.
func (s *Bitstream) ReadInt32() int32 {
	return int32(s.ReadUint32())
}

// ReadInt64 reads a 64-bit signed value at the cursor.
func (s *Bitstream) ReadInt64() int64 {
	return int64(s.ReadUint64())
}

// ReadFloat32 reads a float32 from its IEEE 754 bit pattern.
func (s *Bitstream) ReadFloat32() float32 {
	return math.Float32frombits(s.ReadUint32())
}

// ReadFloat64 reads a float64 from its IEEE 754 bit pattern.
func (s *Bitstream) ReadFloat64() float64 {
	return math.Float64frombits(s.ReadUint64())
}

// ReadBytes fills dst from the cursor, len(dst)*8 bits.
func (s *Bitstream) ReadBytes(dst []byte) {
	s.ReadBits(dst, len(dst)*bitsPerQuant)
}

// WriteUintBits writes the low count bits of value at the cursor,
// least significant bit first. count must be between 0 and 64. This is
// the primitive for packing sub-width fields, such as a 3-bit enum or
// a 12-bit length.
//
// The endian engine does not apply here: sub-width values follow the
// stream's fixed LSB-first bit layout so that a field packed with
// WriteUintBits(v, n) occupies exactly the n bits after the cursor.
func (s *Bitstream) WriteUintBits(value uint64, count int) {
	if count < 0 || count > 64 {
		panic("bitstream: bit count out of range [0, 64]")
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	s.WriteBits(buf[:], count)
}

// ReadUintBits reads count bits at the cursor and returns them
// right-aligned in a uint64, least significant bit first. count must
// be between 0 and 64.
func (s *Bitstream) ReadUintBits(count int) uint64 {
	if count < 0 || count > 64 {
		panic("bitstream: bit count out of range [0, 64]")
	}

	var buf [8]byte
	s.ReadBits(buf[:], count)

	return binary.LittleEndian.Uint64(buf[:])
}
