// Package collect materializes selected results on disk: copies their graph
// artifacts and renders them with external GraphViz compatible program.
//
// Failures are isolated per artifact - each one is logged, remembered and
// processing continues with the next identifier.
package collect

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"psearch/common"
	"psearch/results"
)

// ArtifactExt is extension of graph files analysis produces for every result.
const ArtifactExt = ".dot"

// Layout describes where artifacts are kept. Circular results live in
// Circulars directory, everything else in Multis. Both are relative to Root.
type Layout struct {
	Root      string
	Circulars string
	Multis    string
}

// ErrBadIdentifier is returned by Locate for identifiers which cannot name a
// file inside results directory.
var ErrBadIdentifier = errors.New("identifier is not a plain file name")

// Locate returns path to artifact for result identifier. Identifiers come from
// the log and must not point outside of the layout.
func (l Layout) Locate(id string) (string, error) {
	if len(id) == 0 || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.VolumeName(id) != "" {
		return "", fmt.Errorf("%w: %q", ErrBadIdentifier, id)
	}
	dir := l.Multis
	if results.CategoryOf(id) == common.CategoryCircular {
		dir = l.Circulars
	}
	return filepath.Join(l.Root, dir, id+ArtifactExt), nil
}
