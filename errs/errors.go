// Package errs defines the sentinel errors shared across lasrec packages.
//
// Callers should use errors.Is to test for these values; most call sites
// wrap them with additional context via fmt.Errorf and the %w verb.
package errs

import "errors"

// Format errors: the byte layout or a format selector is unusable.
var (
	// ErrUnsupportedFormat indicates a point-record format id this codec
	// cannot decode (wave-packet formats 4, 5, 9, 10 and anything above 10).
	ErrUnsupportedFormat = errors.New("unsupported point record format")

	// ErrBufferTooSmall indicates a record buffer shorter than the size the
	// assembled loader chain requires.
	ErrBufferTooSmall = errors.New("buffer too small for point record")

	// ErrInvalidExtraBytesSize indicates an extra-bytes payload whose length
	// is not a multiple of the 192-byte spec record size, or a record buffer
	// shorter than one spec record.
	ErrInvalidExtraBytesSize = errors.New("invalid extra bytes record size")

	// ErrInvalidLasType indicates an extra-bytes data type code outside the
	// 0-30 wire table.
	ErrInvalidLasType = errors.New("invalid extra bytes data type code")

	// ErrInvalidVlrHeaderSize indicates a VLR or EVLR header buffer shorter
	// than the fixed header size.
	ErrInvalidVlrHeaderSize = errors.New("invalid VLR header size")
)

// Config errors: caller-supplied settings are unusable.
var (
	// ErrInvalidDimSpec indicates an unparsable extra-dimension spec token
	// under strict parsing.
	ErrInvalidDimSpec = errors.New("invalid extra dimension spec")

	// ErrInvalidVlrSpec indicates an unparsable ignored-VLR spec token.
	ErrInvalidVlrSpec = errors.New("invalid VLR spec")
)

// I/O errors: the injected byte-range reader misbehaved.
var (
	// ErrShortRead indicates the byte-range reader returned fewer bytes than
	// requested.
	ErrShortRead = errors.New("short read from byte source")

	// ErrPayloadTooLarge indicates a VLR payload longer than the byte-range
	// reader can fetch in one call.
	ErrPayloadTooLarge = errors.New("VLR payload too large to fetch")
)

// Codec errors.
var (
	// ErrExternalCodec indicates a compression kind that is handled by an
	// externally registered codec rather than a built-in one.
	ErrExternalCodec = errors.New("compression kind requires an external codec")
)
