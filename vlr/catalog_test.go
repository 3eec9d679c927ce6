package vlr

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/arloliu/lasrec/errs"
	"github.com/arloliu/lasrec/section"
	"github.com/stretchr/testify/require"
)

// buildStream lays out VLR records back to back starting at the given
// offset, returning the full synthetic byte stream.
func buildStream(t *testing.T, startOffset int, records []struct {
	userID   string
	recordID uint16
	payload  []byte
}) []byte {
	t.Helper()

	stream := make([]byte, startOffset)
	for _, r := range records {
		h := section.VlrHeader{
			UserID:   r.userID,
			RecordID: r.recordID,
			Length:   uint64(len(r.payload)),
		}
		stream = append(stream, h.Bytes()...)
		stream = append(stream, r.payload...)
	}

	return stream
}

func TestCatalogLoadAndFetch(t *testing.T) {
	stream := buildStream(t, 100, []struct {
		userID   string
		recordID uint16
		payload  []byte
	}{
		{"hobu", 1, []byte("first payload")},
		{"LASF_Spec", 4, bytes.Repeat([]byte{0xAB}, 192)},
		{"hobu", 1, []byte("second payload")},
	})

	cat := NewCatalog(ReaderAt(bytes.NewReader(stream)))
	require.NoError(t, cat.Load(100, 3, 0, 0))

	entries := cat.Entries()
	require.Len(t, entries, 3)
	// Discovery order is preserved and duplicates are kept.
	require.Equal(t, "hobu", entries[0].UserID)
	require.Equal(t, "hobu", entries[2].UserID)
	require.Less(t, entries[0].Offset, entries[2].Offset)

	t.Run("duplicate resolves to first match", func(t *testing.T) {
		payload, err := cat.Fetch("hobu", 1)
		require.NoError(t, err)
		require.Equal(t, []byte("first payload"), payload)
	})

	t.Run("distinct record", func(t *testing.T) {
		payload, err := cat.Fetch("LASF_Spec", 4)
		require.NoError(t, err)
		require.Len(t, payload, 192)
	})

	t.Run("miss is empty not error", func(t *testing.T) {
		payload, err := cat.Fetch("missing", 9)
		require.NoError(t, err)
		require.Nil(t, payload)
	})
}

func TestCatalogEvlr(t *testing.T) {
	// One EVLR whose payload length would not fit a 16-bit VLR length.
	payload := bytes.Repeat([]byte{0x5A}, 70000)
	h := section.VlrHeader{UserID: "copc", RecordID: 1000, Length: uint64(len(payload))}

	stream := make([]byte, 500)
	stream = append(stream, h.EvlrBytes()...)
	stream = append(stream, payload...)

	cat, err := NewLoadedCatalog(ReaderAt(bytes.NewReader(stream)), 0, 0, 500, 1)
	require.NoError(t, err)

	got, err := cat.Fetch("copc", 1000)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestCatalogMixedRegions(t *testing.T) {
	vlrPart := buildStream(t, 0, []struct {
		userID   string
		recordID uint16
		payload  []byte
	}{
		{"LASF_Projection", 2112, []byte("wkt")},
	})

	evlrHeader := section.VlrHeader{UserID: "extra", RecordID: 7, Length: 4}
	stream := append([]byte{}, vlrPart...)
	evlrOffset := uint64(len(stream))
	stream = append(stream, evlrHeader.EvlrBytes()...)
	stream = append(stream, []byte{1, 2, 3, 4}...)

	cat, err := NewLoadedCatalog(ReaderAt(bytes.NewReader(stream)), 0, 1, evlrOffset, 1)
	require.NoError(t, err)
	require.Len(t, cat.Entries(), 2)

	got, err := cat.Fetch("extra", 7)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestCatalogReloadReplaces(t *testing.T) {
	stream := buildStream(t, 0, []struct {
		userID   string
		recordID uint16
		payload  []byte
	}{
		{"a", 1, []byte("one")},
		{"b", 2, []byte("two")},
	})

	cat := NewCatalog(ReaderAt(bytes.NewReader(stream)))
	require.NoError(t, cat.Load(0, 2, 0, 0))
	require.Len(t, cat.Entries(), 2)

	// A second load replaces the directory rather than appending to it.
	require.NoError(t, cat.Load(0, 1, 0, 0))
	require.Len(t, cat.Entries(), 1)
	require.Equal(t, "a", cat.Entries()[0].UserID)
}

func TestCatalogZeroLengthPayload(t *testing.T) {
	stream := buildStream(t, 0, []struct {
		userID   string
		recordID uint16
		payload  []byte
	}{
		{"empty", 1, nil},
	})

	cat, err := NewLoadedCatalog(ReaderAt(bytes.NewReader(stream)), 0, 1, 0, 0)
	require.NoError(t, err)

	got, err := cat.Fetch("empty", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestCatalogReaderFailure(t *testing.T) {
	boom := errors.New("connection reset")
	failing := ReadFunc(func(offset uint64, size int32) ([]byte, error) {
		return nil, boom
	})

	cat := NewCatalog(failing)
	err := cat.Load(0, 1, 0, 0)
	require.ErrorIs(t, err, boom)
}

func TestCatalogShortRead(t *testing.T) {
	// A stream truncated mid-header must surface as a short read.
	cat := NewCatalog(ReaderAt(bytes.NewReader(make([]byte, 10))))
	err := cat.Load(0, 1, 0, 0)
	require.ErrorIs(t, err, errs.ErrShortRead)
}

func TestCatalogConcurrentFetch(t *testing.T) {
	stream := buildStream(t, 0, []struct {
		userID   string
		recordID uint16
		payload  []byte
	}{
		{"hobu", 1, []byte("alpha")},
		{"hobu", 2, []byte("beta")},
		{"hobu", 3, []byte("gamma")},
	})

	cat, err := NewLoadedCatalog(ReaderAt(bytes.NewReader(stream)), 0, 3, 0, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				id := uint16(i%3 + 1)
				payload, err := cat.Fetch("hobu", id)
				require.NoError(t, err)
				require.NotEmpty(t, payload)
			}
		}()
	}
	wg.Wait()
}
