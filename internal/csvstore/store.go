// Package csvstore reads and writes the flat delimited text files the
// cinema data lives in between runs. One record per line, fields joined
// by commas, seat lists nested with semicolons, no header and no
// quoting. The codec only ever reports failures through error values;
// deciding whether a failure is terminal is the caller's job.
package csvstore

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	fieldSep = ","
	seatSep  = ";"
)

// ErrUnknownReference marks a record pointing at a parent entity that
// does not exist (a session naming an unknown movie, a ticket naming an
// unknown session). Unlike a malformed line this poisons the whole
// file, so decoding stops and the error is returned.
var ErrUnknownReference = errors.New("unknown reference")

// SkippedRecord describes a malformed line the decoder dropped. The
// collection around it still loads.
type SkippedRecord struct {
	Line   int
	Reason string
}

func (s SkippedRecord) String() string {
	return fmt.Sprintf("line %d: %s", s.Line, s.Reason)
}

// Store is the file-backed implementation of the services' storage
// interfaces.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// checkField guards against values that would corrupt the format on
// the way out. The comma and the newline are structural; a value
// containing either cannot be round-tripped.
func checkField(v string) error {
	if strings.ContainsAny(v, fieldSep+"\n\r") {
		return fmt.Errorf("field %q contains a delimiter", v)
	}
	return nil
}

// openIfExists opens the file at path for reading. A missing file is
// not an error: on a first run there is simply nothing to load yet.
func openIfExists(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
