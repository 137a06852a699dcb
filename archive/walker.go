// Package archive locates analysis logs stored inside zip archives.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrNotFound is returned by Open when archive has no suitable entry.
var ErrNotFound = errors.New("no matching entry in archive")

// WalkFunc is called for each file in archive visited by Walk. If an error is
// returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits all regular files in the archive whose names start with pattern.
// Archive with absolute or ".." entry names is refused as a whole, analysis
// never produces such entries.
func Walk(archive, pattern string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Open returns reader for a single entry. When name is a full entry path it
// must match exactly, otherwise the first entry with base name equal to name
// is used. Closing returned reader closes the archive.
func Open(archive, name string) (io.ReadCloser, error) {
	var found string
	errStop := errors.New("stop")

	// full path narrows walk to entries starting with it, base name needs all
	full := strings.Contains(name, "/")
	pattern := ""
	if full {
		pattern = name
	}

	err := Walk(archive, pattern, func(_ string, f *zip.File) error {
		if f.Name == name || (!full && path.Base(f.Name) == name) {
			found = f.Name
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotFound, archive, name)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, err
	}
	rc, err := r.Open(found)
	if err != nil {
		r.Close()
		return nil, err
	}
	return &entryReader{ReadCloser: rc, arc: r}, nil
}

type entryReader struct {
	io.ReadCloser
	arc *zip.ReadCloser
}

func (e *entryReader) Close() error {
	err := e.ReadCloser.Close()
	if er := e.arc.Close(); err == nil {
		err = er
	}
	return err
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
