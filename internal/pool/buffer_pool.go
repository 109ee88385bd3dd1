// Package pool recycles backing buffers for growable bitstreams to
// minimize allocations when streams are created and released in hot
// paths.
package pool

import "sync"

const (
	// BufferDefaultSize is the capacity of freshly pooled buffers.
	// Packed payloads are typically small, so the pool starts modest
	// and lets the growth policy ask for more.
	BufferDefaultSize = 256

	// BufferMaxThreshold is the largest buffer capacity the pool will
	// retain. Larger buffers are discarded on Put to avoid pinning
	// memory after a rare oversized stream.
	BufferMaxThreshold = 1024 * 1024 // 1MiB
)

var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, BufferDefaultSize)
		return &buf
	},
}

// GetBuffer returns a zero-filled buffer with length numBytes.
//
// The buffer comes from the pool when a pooled buffer has sufficient
// capacity; otherwise a new slice of exactly numBytes is allocated.
// The caller must return the buffer with PutBuffer once it is no
// longer referenced.
//
// Parameters:
//   - numBytes: required buffer length in bytes
//
// Returns:
//   - []byte: zero-filled slice with len == numBytes
func GetBuffer(numBytes int) []byte {
	ptr, _ := bufferPool.Get().(*[]byte)
	buf := *ptr

	if cap(buf) < numBytes {
		// Hand the pooled buffer back before allocating an exact fit.
		bufferPool.Put(ptr)
		return make([]byte, numBytes)
	}

	buf = buf[:numBytes]
	clear(buf)

	return buf
}

// PutBuffer returns a buffer to the pool for reuse.
//
// Buffers above BufferMaxThreshold are discarded to prevent memory
// bloat. Passing nil is a no-op.
func PutBuffer(buf []byte) {
	if buf == nil || cap(buf) > BufferMaxThreshold {
		return
	}

	buf = buf[:0]
	bufferPool.Put(&buf)
}
