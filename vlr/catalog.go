// Package vlr indexes the variable-length metadata records embedded in a
// LAS file and serves random payload lookups through an injected byte-range
// reader, keeping the catalog agnostic to local versus remote storage.
package vlr

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/arloliu/lasrec/errs"
	"github.com/arloliu/lasrec/section"
)

// ReadFunc is the injected byte-range capability: it returns exactly size
// bytes starting at offset, or an error. Retry, timeout and cancellation
// policy belong to the implementer; the catalog issues plain blocking
// calls.
type ReadFunc func(offset uint64, size int32) ([]byte, error)

// ReaderAt adapts an io.ReaderAt (a local file, a memory buffer) to a
// ReadFunc.
func ReaderAt(r io.ReaderAt) ReadFunc {
	return func(offset uint64, size int32) ([]byte, error) {
		buf := make([]byte, size)
		n, err := r.ReadAt(buf, int64(offset))
		if err != nil && err != io.EOF {
			return nil, err
		}
		if n < int(size) {
			return nil, fmt.Errorf("%w: got %d bytes at offset %d, want %d",
				errs.ErrShortRead, n, offset, size)
		}

		return buf, nil
	}
}

// Entry locates one record's payload: the (userId, recordId) key, the
// absolute byte offset of the payload and its length. Duplicate keys are
// legal and kept in discovery order.
type Entry struct {
	UserID   string
	RecordID uint16
	Offset   uint64
	Length   uint64
}

// Catalog is a lazy, thread-safe directory of VLR and EVLR records.
// Build the directory once with Load (or NewLoadedCatalog), then Fetch
// payloads on demand from any number of goroutines.
type Catalog struct {
	mu      sync.RWMutex
	read    ReadFunc
	entries []Entry
}

// NewCatalog creates a catalog whose directory is built later via Load.
func NewCatalog(read ReadFunc) *Catalog {
	return &Catalog{read: read}
}

// NewLoadedCatalog creates a catalog and builds its directory immediately
// from the given VLR and EVLR regions.
func NewLoadedCatalog(read ReadFunc, vlrOffset uint64, vlrCount uint32,
	evlrOffset uint64, evlrCount uint32) (*Catalog, error) {
	c := NewCatalog(read)
	if err := c.Load(vlrOffset, vlrCount, evlrOffset, evlrCount); err != nil {
		return nil, err
	}

	return c, nil
}

// Load walks vlrCount record headers starting at vlrOffset and evlrCount
// extended headers starting at evlrOffset, recording one entry per record
// in discovery order. All reads go through the injected reader.
//
// Load replaces any directory built by a previous call. It must not run
// concurrently with Fetch.
func (c *Catalog) Load(vlrOffset uint64, vlrCount uint32, evlrOffset uint64, evlrCount uint32) error {
	entries := make([]Entry, 0, vlrCount+evlrCount)

	cursor := vlrOffset
	for range vlrCount {
		buf, err := c.read(cursor, section.VlrHeaderSize)
		if err != nil {
			return fmt.Errorf("reading VLR header at offset %d: %w", cursor, err)
		}
		h, err := section.ParseVlrHeader(buf)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			UserID:   h.UserID,
			RecordID: h.RecordID,
			Offset:   cursor + section.VlrHeaderSize,
			Length:   h.Length,
		})
		cursor += section.VlrHeaderSize + h.Length
	}

	cursor = evlrOffset
	for range evlrCount {
		buf, err := c.read(cursor, section.EvlrHeaderSize)
		if err != nil {
			return fmt.Errorf("reading EVLR header at offset %d: %w", cursor, err)
		}
		h, err := section.ParseEvlrHeader(buf)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			UserID:   h.UserID,
			RecordID: h.RecordID,
			Offset:   cursor + section.EvlrHeaderSize,
			Length:   h.Length,
		})
		cursor += section.EvlrHeaderSize + h.Length
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()

	return nil
}

// Fetch returns the payload of the first (lowest-offset) record matching
// (userID, recordID), or nil when no record matches; absence is not an
// error. The matched entry is copied under the read lock and the payload
// read happens outside it, so fetches of distinct records overlap.
func (c *Catalog) Fetch(userID string, recordID uint16) ([]byte, error) {
	var entry Entry
	found := false

	c.mu.RLock()
	for _, e := range c.entries {
		if e.UserID == userID && e.RecordID == recordID {
			entry = e
			found = true
			break
		}
	}
	c.mu.RUnlock()

	if !found {
		return nil, nil
	}
	if entry.Length > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %q/%d is %d bytes", errs.ErrPayloadTooLarge,
			userID, recordID, entry.Length)
	}
	if entry.Length == 0 {
		return []byte{}, nil
	}

	buf, err := c.read(entry.Offset, int32(entry.Length))
	if err != nil {
		return nil, fmt.Errorf("reading payload of %q/%d: %w", userID, recordID, err)
	}

	return buf, nil
}

// Entries returns a snapshot of the directory in discovery order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)

	return out
}
