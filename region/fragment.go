package region

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFragment is returned (wrapped) when fragment list field or one of
// its descriptors cannot be parsed.
var ErrInvalidFragment = errors.New("invalid fragment definition")

// ParseFragment parses single fragment descriptor as found in the log.
func ParseFragment(token string) (Fragment, error) {
	r, err := Parse(strings.TrimSpace(token))
	if err != nil {
		return Fragment{}, fmt.Errorf("%w: %w", ErrInvalidFragment, err)
	}
	return Fragment(r), nil
}

// ParseFragments parses bracketed comma separated list of fragment
// descriptors: "{+chr1:10-20,-chr2:5-7}". Empty list "{}" is valid.
func ParseFragments(field string) ([]Fragment, error) {
	field = strings.TrimSpace(field)
	if len(field) < 2 || !strings.ContainsRune("{[", rune(field[0])) || !strings.ContainsRune("}]", rune(field[len(field)-1])) {
		return nil, fmt.Errorf("%w: list %q is not enclosed in brackets", ErrInvalidFragment, field)
	}

	body := strings.TrimSpace(field[1 : len(field)-1])
	if len(body) == 0 {
		return nil, nil
	}

	tokens := strings.Split(body, ",")
	frags := make([]Fragment, 0, len(tokens))
	for _, t := range tokens {
		f, err := ParseFragment(t)
		if err != nil {
			return nil, err
		}
		frags = append(frags, f)
	}
	return frags, nil
}
