package scan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/klauspost/compress/gzip"

	"psearch/archive"
)

// DefaultLogName is the log name analysis produces. It is looked up when
// source is a zip archive without path inside it.
const DefaultLogName = "pressspan.log"

// header size is enough for all matchers filetype has
const sniffLen = 262

// Open returns reader for the log. Source could be a plain or gzip compressed
// file, zip archive containing DefaultLogName, or path inside zip archive:
// "[path_to_archive]archive.zip[path_in_archive]/pressspan.log".
func Open(src string) (io.ReadCloser, error) {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}
		if fi.Mode().IsDir() && len(tail) != 0 {
			break
		}
		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("log source is not a regular file (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		kind, err := sniff(head)
		if err != nil {
			return nil, fmt.Errorf("unable to check log type: %w", err)
		}

		inner := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
		switch {
		case kind == "zip":
			if len(inner) == 0 {
				inner = DefaultLogName
			}
			return archive.Open(head, inner)
		case len(tail) != 0:
			// only archive could have tail
			return nil, fmt.Errorf("log source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		case kind == "gz":
			return openGzip(head)
		default:
			return os.Open(head)
		}
	}
	return nil, fmt.Errorf("log source was not found (%s): %w", src, os.ErrNotExist)
}

func sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	buf = buf[:n]

	switch {
	case filetype.Is(buf, "zip"):
		return "zip", nil
	case filetype.Is(buf, "gz"):
		return "gz", nil
	}
	return "", nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if er := g.f.Close(); err == nil {
		err = er
	}
	return err
}

func openGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to decompress log: %w", err)
	}
	return &gzipFile{Reader: zr, f: f}, nil
}
