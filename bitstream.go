package bitstream

import (
	"github.com/arloliu/bitstream/endian"
	"github.com/arloliu/bitstream/internal/hash"
	"github.com/arloliu/bitstream/internal/options"
	"github.com/arloliu/bitstream/internal/pool"
)

// Storage quantum parameters. The backing buffer is addressed in whole
// bytes; bit operations splice values across quantum boundaries.
const (
	bytesPerQuant    = 1
	bitsPerQuant     = 8
	bitsPerQuantLog2 = 3
)

// growthSlackQuants is the fixed over-allocation added on top of the
// requested size during growth, in storage quanta.
const growthSlackQuants = 4

// Bitstream reads and writes values at bit granularity over a
// contiguous byte buffer.
//
// A stream is either growable (it owns its backing buffer and expands
// it on demand) or fixed (it wraps caller-owned storage and never
// grows, never releases). The mode is decided at construction and
// never changes.
//
// The stream tracks a single cursor, measured in bits from the start
// of the buffer, shared by reads and writes. Bits are packed LSB-first
// within each byte; multi-byte typed values are ordered by the
// configured endian engine before entering the stream.
//
// A Bitstream is not safe for concurrent use; callers that share one
// across goroutines must provide their own locking.
type Bitstream struct {
	data    []byte
	capBits int
	numBits int
	cursor  int
	owns    bool
	closed  bool
	engine  endian.EndianEngine
}

// New creates an empty growable bitstream with zero capacity.
// The backing buffer is allocated lazily on the first write.
func New(opts ...Option) *Bitstream {
	s := &Bitstream{
		owns:   true,
		engine: endian.GetLittleEndianEngine(),
	}
	applyOptions(s, opts)

	return s
}

// NewWithCapacity creates a growable bitstream with numBytes of
// capacity reserved up front in a single allocation. The logical
// length starts at zero; writes past the reserved capacity still grow
// the buffer.
//
// Panics if numBytes is negative.
func NewWithCapacity(numBytes int, opts ...Option) *Bitstream {
	if numBytes < 0 {
		panic("bitstream: negative capacity")
	}

	s := &Bitstream{
		owns:   true,
		engine: endian.GetLittleEndianEngine(),
	}
	if numBytes > 0 {
		s.realloc(numBytes * bitsPerQuant)
	}
	applyOptions(s, opts)

	return s
}

// FromBits creates a bitstream wrapping caller-owned storage. Both the
// capacity and the logical length are set to numBits, so the whole
// range is immediately readable. The stream never grows and never
// releases buf; the caller must keep buf alive for the lifetime of the
// stream.
//
// Writing past numBits on such a stream is a contract violation: the
// unchecked operations panic and the checked operations return
// errs.ErrExceedsCapacity.
//
// Panics if numBits is negative or exceeds the bits available in buf.
func FromBits(buf []byte, numBits int, opts ...Option) *Bitstream {
	if numBits < 0 || numBits > len(buf)*bitsPerQuant {
		panic("bitstream: bit count out of range of the provided buffer")
	}

	s := &Bitstream{
		data:    buf,
		capBits: numBits,
		numBits: numBits,
		owns:    false,
		engine:  endian.GetLittleEndianEngine(),
	}
	applyOptions(s, opts)

	return s
}

// FromBytes creates a bitstream wrapping caller-owned storage with
// every bit of buf addressable. Equivalent to
// FromBits(buf, len(buf)*8, opts...).
func FromBytes(buf []byte, opts ...Option) *Bitstream {
	return FromBits(buf, len(buf)*bitsPerQuant, opts...)
}

func applyOptions(s *Bitstream, opts []Option) {
	// The built-in options cannot fail; a failing option is a
	// programming error at the construction site.
	if err := options.Apply(s, opts...); err != nil {
		panic(err)
	}
}

// WriteBits writes count bits from src into the stream at the current
// cursor, starting from bit 0 of src[0]. The cursor advances by count
// and the logical length extends when the cursor passes it.
//
// Growable streams expand their capacity as needed, so the write
// always succeeds. On fixed streams the caller must not write past the
// capacity; doing so panics. Use TryWriteBits for a checked variant.
//
// When the cursor is byte-aligned the whole-quantum portion of src is
// bulk-copied and only the tail goes through the bit merge. Unaligned
// writes merge each source byte across up to two destination bytes,
// leaving every bit outside the written range untouched.
//
// src must hold at least ceil(count/8) bytes. count == 0 is a no-op.
func (s *Bitstream) WriteBits(src []byte, count int) {
	s.checkOpen()

	if count == 0 {
		return
	}
	if count < 0 {
		panic("bitstream: negative bit count")
	}
	if len(src) < quantCount(count) {
		panic("bitstream: source buffer too small for bit count")
	}

	newCursor := s.cursor + count
	s.ensureCapacity(newCursor)

	destQuant := s.cursor >> bitsPerQuantLog2
	destMod := s.cursor & (bitsPerQuant - 1)

	// Aligned fast path: bulk-copy all whole quanta, leaving only the
	// sub-quantum tail for the merge loop.
	if destMod == 0 {
		numQuants := count >> bitsPerQuantLog2
		copy(s.data[destQuant:destQuant+numQuants], src[:numQuants])

		src = src[numQuants:]
		count -= numQuants * bitsPerQuant
		destQuant += numQuants
	}

	for count > 0 {
		n := min(count, bitsPerQuant)

		quant := src[0]
		src = src[1:]
		if n < bitsPerQuant {
			quant &= 1<<n - 1
		}

		// Merge the low part into the current quantum. The mask covers
		// exactly the n written bits so neighbors survive.
		lowMask := byte((uint32(1)<<n - 1) << destMod)
		s.data[destQuant] = s.data[destQuant]&^lowMask | quant<<destMod

		// Spill the high part into the next quantum when the source
		// byte straddles the boundary.
		if spill := n + destMod - bitsPerQuant; spill > 0 {
			highMask := byte(1<<spill - 1)
			s.data[destQuant+1] = s.data[destQuant+1]&^highMask | quant>>(bitsPerQuant-destMod)
		}

		destQuant++
		count -= n
	}

	s.cursor = newCursor
	if newCursor > s.numBits {
		s.numBits = newCursor
	}
}

// ReadBits reads count bits from the stream at the current cursor into
// dst, filling dst from bit 0 of dst[0]. The cursor advances by count.
// Bits of the final destination byte beyond count are zeroed.
//
// The caller must ensure count bits remain before the logical length
// (Size() - Tell() >= count); reading past it panics. Use TryReadBits
// for a checked variant.
//
// dst must hold at least ceil(count/8) bytes. count == 0 is a no-op.
func (s *Bitstream) ReadBits(dst []byte, count int) {
	s.checkOpen()

	if count == 0 {
		return
	}
	if count < 0 {
		panic("bitstream: negative bit count")
	}
	if len(dst) < quantCount(count) {
		panic("bitstream: destination buffer too small for bit count")
	}
	if s.cursor+count > s.numBits {
		panic("bitstream: read past the end of the stream")
	}

	newCursor := s.cursor + count
	srcQuant := s.cursor >> bitsPerQuantLog2
	srcMod := s.cursor & (bitsPerQuant - 1)

	// Aligned fast path, mirroring WriteBits.
	if srcMod == 0 {
		numQuants := count >> bitsPerQuantLog2
		copy(dst[:numQuants], s.data[srcQuant:srcQuant+numQuants])

		dst = dst[numQuants:]
		count -= numQuants * bitsPerQuant
		srcQuant += numQuants
	}

	for count > 0 {
		n := min(count, bitsPerQuant)

		quant := s.data[srcQuant] >> srcMod
		if n > bitsPerQuant-srcMod {
			quant |= s.data[srcQuant+1] << (bitsPerQuant - srcMod)
		}
		if n < bitsPerQuant {
			quant &= 1<<n - 1
		}

		dst[0] = quant
		dst = dst[1:]
		srcQuant++
		count -= n
	}

	s.cursor = newCursor
}

// WriteBool sets or clears the single bit at the cursor and advances
// the cursor by one, extending the logical length when needed. A
// single bit never straddles a quantum boundary, so this skips the
// byte-oriented merge path entirely and leaves every neighboring bit
// untouched.
//
// On fixed streams, writing past the capacity panics.
func (s *Bitstream) WriteBool(value bool) {
	s.checkOpen()
	s.ensureCapacity(s.cursor + 1)

	quant := s.cursor >> bitsPerQuantLog2
	bit := byte(1) << (s.cursor & (bitsPerQuant - 1))
	if value {
		s.data[quant] |= bit
	} else {
		s.data[quant] &^= bit
	}

	s.cursor++
	if s.cursor > s.numBits {
		s.numBits = s.cursor
	}
}

// ReadBool reads the single bit at the cursor and advances the cursor
// by one. Reading at or past the logical length panics; use
// TryReadBool for a checked variant.
func (s *Bitstream) ReadBool() bool {
	s.checkOpen()

	if s.cursor >= s.numBits {
		panic("bitstream: read past the end of the stream")
	}

	quant := s.cursor >> bitsPerQuantLog2
	bit := s.data[quant] >> (s.cursor & (bitsPerQuant - 1)) & 1
	s.cursor++

	return bit == 1
}

// Skip moves the cursor by count bits, forward or backward, clamped to
// [0, Capacity()]. Skipping never grows the buffer: the cursor
// expresses a desired position, not a demand for storage.
func (s *Bitstream) Skip(count int) {
	pos := s.cursor + count
	if pos < 0 {
		pos = 0
	}
	if pos > s.capBits {
		pos = s.capBits
	}

	s.cursor = pos
}

// Seek repositions the cursor to the given absolute bit position,
// clamped to [0, Capacity()]. Seeking never grows the buffer.
func (s *Bitstream) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > s.capBits {
		pos = s.capBits
	}

	s.cursor = pos
}

// Align advances the cursor to the next boundary that is a multiple of
// numBytes bytes from the start of the buffer. A cursor already on the
// boundary stays put. The move goes through the clamped Skip, so the
// requested alignment may not be reached near the end of a fixed
// buffer. numBytes <= 0 is a no-op.
func (s *Bitstream) Align(numBytes int) {
	if numBytes <= 0 {
		return
	}

	bits := numBytes * bitsPerQuant
	if rem := s.cursor % bits; rem != 0 {
		s.Skip(bits - rem)
	}
}

// Tell returns the current cursor position, in bits.
func (s *Bitstream) Tell() int {
	return s.cursor
}

// EOF reports whether the cursor is at or past the logical length.
func (s *Bitstream) EOF() bool {
	return s.cursor >= s.numBits
}

// Size returns the logical length of the stream, in bits: the number
// of bits that have been validly written and are safe to read.
func (s *Bitstream) Size() int {
	return s.numBits
}

// Capacity returns the total number of bits the stream can hold
// without growing.
func (s *Bitstream) Capacity() int {
	return s.capBits
}

// Remaining returns the number of readable bits between the cursor and
// the logical length.
func (s *Bitstream) Remaining() int {
	if s.cursor >= s.numBits {
		return 0
	}

	return s.numBits - s.cursor
}

// Data returns the backing storage, ceil(Capacity()/8) bytes. The
// slice aliases the stream's buffer: it stays valid until the next
// growing write, Close, or, for fixed streams, until the caller
// releases the wrapped memory.
func (s *Bitstream) Data() []byte {
	return s.data[:quantCount(s.capBits)]
}

// Bytes returns the logical payload, ceil(Size()/8) bytes. This is the
// view to hand to a transport or storage layer. The same aliasing
// rules as Data apply.
func (s *Bitstream) Bytes() []byte {
	return s.data[:quantCount(s.numBits)]
}

// Sum64 returns the xxHash64 digest of the logical payload, suitable
// as an integrity checksum shipped alongside the encoded bytes.
func (s *Bitstream) Sum64() uint64 {
	return hash.Sum64(s.Bytes())
}

// Engine returns the endian engine used by the typed operations.
func (s *Bitstream) Engine() endian.EndianEngine {
	return s.engine
}

// Reset rewinds the cursor to zero so the stream can be re-encoded in
// place. Growable streams also drop their logical length back to zero
// while keeping the allocated capacity; fixed streams keep their full
// length since the wrapped contents belong to the caller.
func (s *Bitstream) Reset() {
	s.cursor = 0
	if s.owns {
		s.numBits = 0
	}
}

// Close releases the stream's resources. A growable stream returns its
// backing buffer to the internal pool; a fixed stream merely detaches
// from the wrapped memory, which remains the caller's to release.
//
// Close is idempotent. Any read or write on a closed stream panics.
func (s *Bitstream) Close() {
	if s.closed {
		return
	}

	if s.owns && s.data != nil {
		pool.PutBuffer(s.data)
	}

	s.data = nil
	s.capBits = 0
	s.numBits = 0
	s.cursor = 0
	s.closed = true
}

func (s *Bitstream) checkOpen() {
	if s.closed {
		panic("bitstream: stream already closed")
	}
}

// ensureCapacity grows the backing buffer so numBits fit. Fixed
// streams cannot grow; exceeding their capacity is a caller contract
// violation.
func (s *Bitstream) ensureCapacity(numBits int) {
	if numBits <= s.capBits {
		return
	}

	if !s.owns {
		panic("bitstream: write past the end of a fixed external buffer")
	}

	// Over-allocate by a few quanta plus half the requested size to
	// amortize repeated small writes.
	s.realloc(numBits + growthSlackQuants*bitsPerQuant + numBits/2)
}

// realloc resizes the backing buffer to hold numBits, rounded up to a
// whole number of storage quanta. Previously valid bytes are copied
// over before the old buffer is returned to the pool, so a failed
// allocation leaves the stream unchanged. Capacity never shrinks.
func (s *Bitstream) realloc(numBits int) {
	numBits = quantCount(numBits) * bitsPerQuant
	if numBits <= s.capBits {
		return
	}

	newBuf := pool.GetBuffer(quantCount(numBits) * bytesPerQuant)
	if s.data != nil {
		copy(newBuf, s.data)
		pool.PutBuffer(s.data)
	}

	s.data = newBuf
	s.capBits = numBits
}

// quantCount returns the number of storage quanta needed for bits.
func quantCount(bits int) int {
	return (bits + bitsPerQuant - 1) >> bitsPerQuantLog2
}
