// Package region parses region and fragment descriptors and decides whether a
// fragment is contained in (or encloses) a region.
//
// Descriptor syntax is "[+|-]chromosome:start-end", for example "-X:100-21313".
package region

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"psearch/common"
)

// ErrInvalidRegion is returned (wrapped) for any descriptor which does not
// describe chromosome, start and end.
var ErrInvalidRegion = errors.New("invalid region definition")

var separators = regexp.MustCompile(`[:-]`)

// Region defines a stranded span on a chromosome. Coordinates are kept as
// given, start is not required to be smaller than end.
type Region struct {
	Strand     common.Strand
	Chromosome string
	Start, End int64
}

// Fragment is a span recorded against an analysis result in the log. It has
// the same shape and descriptor syntax as Region.
type Fragment Region

func (r Region) String() string {
	return fmt.Sprintf("%s%s:%d-%d", r.Strand, r.Chromosome, r.Start, r.End)
}

func (f Fragment) String() string {
	return Region(f).String()
}

// pieces splits descriptor on separators dropping empty parts. Leading "-"
// produces empty first part and disappears here - it is a strand marker, not a
// sign of the coordinate.
func pieces(token string) []string {
	var out []string
	for _, p := range separators.Split(token, -1) {
		if len(p) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Valid reports whether token splits into exactly three non-empty pieces. It
// does not look at the pieces themselves.
func Valid(token string) bool {
	return len(pieces(token)) == 3
}

// Parse converts descriptor into Region.
func Parse(token string) (Region, error) {
	parts := pieces(token)
	if len(parts) != 3 {
		return Region{}, fmt.Errorf("%w: %q must have chromosome, start and end", ErrInvalidRegion, token)
	}

	r := Region{Strand: common.StrandPlus}
	if token[0] == '-' {
		r.Strand = common.StrandMinus
	}

	// "+" is accepted as explicit marker of the default strand
	r.Chromosome = strings.TrimPrefix(parts[0], string(common.StrandPlus))
	if len(r.Chromosome) == 0 {
		return Region{}, fmt.Errorf("%w: %q has empty chromosome name", ErrInvalidRegion, token)
	}

	var err error
	if r.Start, err = strconv.ParseInt(parts[1], 10, 64); err != nil {
		return Region{}, fmt.Errorf("%w: %q start position: %w", ErrInvalidRegion, token, err)
	}
	if r.End, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
		return Region{}, fmt.Errorf("%w: %q end position: %w", ErrInvalidRegion, token, err)
	}
	return r, nil
}

// ParseAll parses every token before returning. If any of them is invalid no
// regions are returned and error lists all offending tokens.
func ParseAll(tokens []string) ([]Region, error) {
	var (
		regions = make([]Region, 0, len(tokens))
		errs    error
	)
	for _, t := range tokens {
		r, err := Parse(t)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		regions = append(regions, r)
	}
	if errs != nil {
		return nil, errs
	}
	return regions, nil
}
