package section

import (
	"fmt"

	"github.com/arloliu/lasrec/endian"
	"github.com/arloliu/lasrec/errs"
)

// Fixed header sizes. The payload follows the header immediately.
const (
	// VlrHeaderSize is the size of a variable-length record header:
	// reserved u16, user id [16], record id u16, payload length u16,
	// description [32].
	VlrHeaderSize = 54

	// EvlrHeaderSize is the size of an extended variable-length record
	// header. It differs from the VLR header only in carrying a 64-bit
	// payload length, supporting payloads above 64 KiB.
	EvlrHeaderSize = 60
)

// VlrHeader is the parsed form of a VLR or EVLR header. Length is widened
// to uint64 so the one struct serves both variants.
type VlrHeader struct {
	UserID      string
	RecordID    uint16
	Length      uint64
	Description string
}

// ParseVlrHeader parses a 54-byte VLR header.
func ParseVlrHeader(buf []byte) (VlrHeader, error) {
	if len(buf) < VlrHeaderSize {
		return VlrHeader{}, fmt.Errorf("%w: got %d bytes, need %d",
			errs.ErrInvalidVlrHeaderSize, len(buf), VlrHeaderSize)
	}
	engine := endian.GetLittleEndianEngine()

	return VlrHeader{
		UserID:      trimPadded(buf[2:18]),
		RecordID:    engine.Uint16(buf[18:20]),
		Length:      uint64(engine.Uint16(buf[20:22])),
		Description: trimPadded(buf[22:54]),
	}, nil
}

// ParseEvlrHeader parses a 60-byte EVLR header.
func ParseEvlrHeader(buf []byte) (VlrHeader, error) {
	if len(buf) < EvlrHeaderSize {
		return VlrHeader{}, fmt.Errorf("%w: got %d bytes, need %d",
			errs.ErrInvalidVlrHeaderSize, len(buf), EvlrHeaderSize)
	}
	engine := endian.GetLittleEndianEngine()

	return VlrHeader{
		UserID:      trimPadded(buf[2:18]),
		RecordID:    engine.Uint16(buf[18:20]),
		Length:      engine.Uint64(buf[20:28]),
		Description: trimPadded(buf[28:60]),
	}, nil
}

// Bytes serializes the header in the 54-byte VLR layout. The length is
// truncated to 16 bits; callers writing large payloads must use the EVLR
// layout instead.
func (h VlrHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	buf := make([]byte, 0, VlrHeaderSize)
	buf = engine.AppendUint16(buf, 0) // reserved
	buf = appendPadded(buf, h.UserID, 16)
	buf = engine.AppendUint16(buf, h.RecordID)
	buf = engine.AppendUint16(buf, uint16(h.Length))

	return appendPadded(buf, h.Description, 32)
}

// EvlrBytes serializes the header in the 60-byte EVLR layout.
func (h VlrHeader) EvlrBytes() []byte {
	engine := endian.GetLittleEndianEngine()

	buf := make([]byte, 0, EvlrHeaderSize)
	buf = engine.AppendUint16(buf, 0) // reserved
	buf = appendPadded(buf, h.UserID, 16)
	buf = engine.AppendUint16(buf, h.RecordID)
	buf = engine.AppendUint64(buf, h.Length)

	return appendPadded(buf, h.Description, 32)
}
