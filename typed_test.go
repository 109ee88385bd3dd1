package bitstream

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitstream/endian"
)

func TestTypedRoundTrip_Unsigned(t *testing.T) {
	s := New()
	defer s.Close()

	s.WriteUint8(0xAB)
	s.WriteUint16(0xBEEF)
	s.WriteUint32(0xDEADBEEF)
	s.WriteUint64(0x0123456789ABCDEF)
	require.Equal(t, 8+16+32+64, s.Size())

	s.Seek(0)
	require.Equal(t, uint8(0xAB), s.ReadUint8())
	require.Equal(t, uint16(0xBEEF), s.ReadUint16())
	require.Equal(t, uint32(0xDEADBEEF), s.ReadUint32())
	require.Equal(t, uint64(0x0123456789ABCDEF), s.ReadUint64())
	require.True(t, s.EOF())
}

func TestTypedRoundTrip_Signed(t *testing.T) {
	s := New()
	defer s.Close()

	s.WriteInt8(-5)
	s.WriteInt16(-12345)
	s.WriteInt32(-123456789)
	s.WriteInt64(-1234567890123456789)

	s.Seek(0)
	require.Equal(t, int8(-5), s.ReadInt8())
	require.Equal(t, int16(-12345), s.ReadInt16())
	require.Equal(t, int32(-123456789), s.ReadInt32())
	require.Equal(t, int64(-1234567890123456789), s.ReadInt64())
}

func TestTypedRoundTrip_Floats(t *testing.T) {
	s := New()
	defer s.Close()

	values64 := []float64{0, 1.5, -3.25, math.Pi, math.Inf(1), math.SmallestNonzeroFloat64}
	for _, v := range values64 {
		s.WriteFloat64(v)
	}
	s.WriteFloat32(2.75)

	s.Seek(0)
	for _, v := range values64 {
		require.Equal(t, v, s.ReadFloat64())
	}
	require.Equal(t, float32(2.75), s.ReadFloat32())
}

func TestTypedRoundTrip_NaN(t *testing.T) {
	s := New()
	defer s.Close()

	s.WriteFloat64(math.NaN())
	s.Seek(0)
	require.True(t, math.IsNaN(s.ReadFloat64()))
}

// Typed values must survive an unaligned cursor: each byte straddles
// two storage quanta.
func TestTypedRoundTrip_Misaligned(t *testing.T) {
	for offset := 1; offset <= 7; offset++ {
		s := New()

		s.WriteUintBits(0x55, offset)
		s.WriteUint32(0xCAFEBABE)
		s.WriteFloat64(math.E)
		s.WriteBool(true)

		s.Seek(offset)
		require.Equal(t, uint32(0xCAFEBABE), s.ReadUint32(), "offset %d", offset)
		require.Equal(t, math.E, s.ReadFloat64(), "offset %d", offset)
		require.True(t, s.ReadBool(), "offset %d", offset)

		s.Close()
	}
}

func TestWriteBytes_ReadBytes(t *testing.T) {
	s := New()
	defer s.Close()

	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	s.WriteBytes(payload)
	require.Equal(t, len(payload)*8, s.Size())

	s.Seek(0)
	got := make([]byte, len(payload))
	s.ReadBytes(got)
	require.Equal(t, payload, got)
}

func TestUintBits_RoundTripWidths(t *testing.T) {
	for count := 0; count < 65; count++ {
		value := uint64(0xA5A5A5A5A5A5A5A5)
		var want uint64
		if count == 64 {
			want = value
		} else {
			want = value & (1<<count - 1)
		}

		s := New()
		s.WriteUintBits(value, count)
		require.Equal(t, count, s.Size(), "count %d", count)

		s.Seek(0)
		require.Equal(t, want, s.ReadUintBits(count), "count %d", count)
		s.Close()
	}
}

func TestUintBits_CountOutOfRangePanics(t *testing.T) {
	s := New()
	defer s.Close()

	require.Panics(t, func() { s.WriteUintBits(0, 65) })
	require.Panics(t, func() { s.WriteUintBits(0, -1) })
	require.Panics(t, func() { s.ReadUintBits(65) })
	require.Panics(t, func() { s.ReadUintBits(-1) })
}

func TestEndianEngine_ByteOrder(t *testing.T) {
	le := New()
	defer le.Close()
	le.WriteUint16(0x0102)
	require.Equal(t, []byte{0x02, 0x01}, le.Bytes())

	be := New(WithBigEndian())
	defer be.Close()
	be.WriteUint16(0x0102)
	require.Equal(t, []byte{0x01, 0x02}, be.Bytes())

	be.Seek(0)
	require.Equal(t, uint16(0x0102), be.ReadUint16())
}

func TestWithEngine(t *testing.T) {
	s := New(WithEngine(endian.GetBigEndianEngine()))
	defer s.Close()

	require.Equal(t, endian.GetBigEndianEngine(), s.Engine())

	s.WriteUint32(0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, s.Bytes())
}

func TestWithEngine_NilPanics(t *testing.T) {
	require.Panics(t, func() {
		New(WithEngine(nil))
	})
}

func TestWithLittleEndian_Default(t *testing.T) {
	s := New(WithLittleEndian())
	defer s.Close()

	require.Equal(t, endian.GetLittleEndianEngine(), s.Engine())
}

// Sub-width fields are independent of the engine: mixed-endian typed
// values around them still land on the right bits.
func TestUintBits_EngineIndependent(t *testing.T) {
	le := New()
	defer le.Close()
	be := New(WithBigEndian())
	defer be.Close()

	le.WriteUintBits(0b1011, 4)
	be.WriteUintBits(0b1011, 4)
	require.Equal(t, le.Bytes(), be.Bytes())
}
