// Package endian provides byte order utilities for the typed bitstream
// operations.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so the typed
// read/write helpers can both decode in place and append efficiently
// through one value.
//
// The bitstream packs bits LSB-first within each storage byte; the
// engine only decides the ordering of the bytes a multi-byte value is
// split into before those bytes enter the stream. Little-endian is the
// default and rarely needs to change:
//
//	import "github.com/arloliu/bitstream/endian"
//
//	stream := bitstream.New(bitstream.WithEngine(endian.GetBigEndianEngine()))
//
// The returned engines are the immutable binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary into a single interface for byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so any
// existing code holding a binary.ByteOrder constant can hand it to the
// bitstream unchanged.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default
// byte order for typed bitstream values.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, for
// interoperability with formats that store values most significant
// byte first.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
