// Package results narrows selected result identifiers by category.
package results

import (
	"slices"
	"strings"

	"github.com/maruel/natural"

	"psearch/common"
)

// CategoryOf derives category from identifier prefix.
func CategoryOf(id string) common.Category {
	for _, c := range []common.Category{common.CategoryCircular, common.CategoryMultistrand} {
		if strings.HasPrefix(id, c.Prefix()) {
			return c
		}
	}
	return common.CategoryNone
}

// Requested turns category flags into category to filter by. Flags are
// mutually exclusive: when both are set they cancel each other.
func Requested(circular, multistrand bool) common.Category {
	switch {
	case circular && !multistrand:
		return common.CategoryCircular
	case multistrand && !circular:
		return common.CategoryMultistrand
	}
	return common.CategoryNone
}

// Filter keeps identifiers of requested category preserving their order.
// CategoryNone keeps everything.
func Filter(ids []string, category common.Category) []string {
	if category == common.CategoryNone {
		return ids
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if CategoryOf(id) == category {
			out = append(out, id)
		}
	}
	return out
}

// SortNatural orders identifiers so that numbered results follow numeric
// order ("circ_2" before "circ_10").
func SortNatural(ids []string) {
	slices.SortStableFunc(ids, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
}
