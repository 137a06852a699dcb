// Package scan streams analysis log and selects records with fragments
// matching requested regions.
//
// Every log line is a record of three tab separated fields:
//
//	identifier	{+chr1:120-150,-chr2:5-9}	chr1,chr2
package scan

import (
	"errors"
	"fmt"
	"strings"

	"psearch/region"
)

// ErrMalformedRecord is returned (wrapped) when log line cannot be parsed.
var ErrMalformedRecord = errors.New("malformed log record")

const fieldsPerRecord = 3

// Record is a single parsed log line.
type Record struct {
	ID          string
	Fragments   []region.Fragment
	Chromosomes string
	// Line is 1 based line number in the log, 0 when unknown.
	Line int
}

// ParseRecord parses single log line, trailing line terminators are ignored.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")

	fields := strings.Split(line, "\t")
	if len(fields) != fieldsPerRecord {
		return Record{}, fmt.Errorf("%w: expected %d tab separated fields, got %d", ErrMalformedRecord, fieldsPerRecord, len(fields))
	}

	id := strings.TrimSpace(fields[0])
	if len(id) == 0 {
		return Record{}, fmt.Errorf("%w: empty identifier", ErrMalformedRecord)
	}

	frags, err := region.ParseFragments(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s: %w", ErrMalformedRecord, id, err)
	}

	return Record{
		ID:          id,
		Fragments:   frags,
		Chromosomes: strings.TrimSpace(fields[2]),
	}, nil
}
