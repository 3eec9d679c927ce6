// Package endian provides byte order utilities for binary encoding and decoding.
//
// The LAS wire format is little-endian throughout, so nearly every caller in
// this module uses GetLittleEndianEngine(). The codec units still take an
// EndianEngine rather than hard-coding binary.LittleEndian so that record
// layouts can be exercised against both orders in tests.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian,
// so it interoperates with any code built on the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. This is the byte
// order mandated by the LAS specification for all record layouts.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
