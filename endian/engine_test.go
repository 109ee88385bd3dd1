package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.NotNil(t, engine)
	require.Equal(t, binary.LittleEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.NotNil(t, engine)
	require.Equal(t, binary.BigEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}

func TestEngineAppend(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint16(nil, 0xBEEF)
	require.Equal(t, []byte{0xEF, 0xBE}, buf)

	buf = engine.AppendUint64(buf[:0], 0x0102030405060708)
	require.Len(t, buf, 8)
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
}
