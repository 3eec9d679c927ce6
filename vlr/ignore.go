package vlr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/lasrec/errs"
)

// Ident names one record or one user id's whole record family, used to
// declare records a consumer wants skipped. AllRecords as the record id
// matches every record of the user id.
type Ident struct {
	UserID   string
	RecordID uint16
	All      bool
}

// AllRecords marks an Ident matching every record id of its user id.
const AllRecords = "all"

// ParseIgnored parses skip-list tokens of the form "userId/recordId",
// "userId/all" or a bare "userId" (equivalent to all).
func ParseIgnored(specs []string) ([]Ident, error) {
	idents := make([]Ident, 0, len(specs))
	for _, spec := range specs {
		userID, rec, ok := strings.Cut(spec, "/")
		userID = strings.TrimSpace(userID)
		if userID == "" {
			return nil, fmt.Errorf("%w: %q", errs.ErrInvalidVlrSpec, spec)
		}
		if !ok || strings.EqualFold(strings.TrimSpace(rec), AllRecords) {
			idents = append(idents, Ident{UserID: userID, All: true})

			continue
		}

		id, err := strconv.ParseUint(strings.TrimSpace(rec), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: bad record id", errs.ErrInvalidVlrSpec, spec)
		}
		idents = append(idents, Ident{UserID: userID, RecordID: uint16(id)})
	}

	return idents, nil
}

// Matches reports whether the ident covers the given record key.
func (i Ident) Matches(userID string, recordID uint16) bool {
	if i.UserID != userID {
		return false
	}

	return i.All || i.RecordID == recordID
}
