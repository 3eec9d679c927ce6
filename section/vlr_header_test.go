package section

import (
	"testing"

	"github.com/arloliu/lasrec/errs"
	"github.com/stretchr/testify/require"
)

func TestVlrHeaderRoundTrip(t *testing.T) {
	h := VlrHeader{
		UserID:      "LASF_Projection",
		RecordID:    2112,
		Length:      480,
		Description: "OGC WKT",
	}

	buf := h.Bytes()
	require.Len(t, buf, VlrHeaderSize)

	parsed, err := ParseVlrHeader(buf)
	require.NoError(t, err)
	require.Equal(t, h, parsed)
}

func TestEvlrHeaderRoundTrip(t *testing.T) {
	// EVLR payloads may exceed the 16-bit length range.
	h := VlrHeader{
		UserID:   "LASF_Spec",
		RecordID: 65535,
		Length:   1 << 33,
	}

	buf := h.EvlrBytes()
	require.Len(t, buf, EvlrHeaderSize)

	parsed, err := ParseEvlrHeader(buf)
	require.NoError(t, err)
	require.Equal(t, h, parsed)
}

func TestVlrHeaderShortBuffer(t *testing.T) {
	_, err := ParseVlrHeader(make([]byte, VlrHeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidVlrHeaderSize)

	_, err = ParseEvlrHeader(make([]byte, EvlrHeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidVlrHeaderSize)
}

func TestVlrHeaderPaddingStripped(t *testing.T) {
	h := VlrHeader{UserID: "hobu", RecordID: 1, Length: 10, Description: "d"}
	buf := h.Bytes()

	parsed, err := ParseVlrHeader(buf)
	require.NoError(t, err)
	require.Equal(t, "hobu", parsed.UserID)
	require.Equal(t, "d", parsed.Description)
}
