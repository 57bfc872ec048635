package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry describes one member of an OOXML package.
// Content is nil for directories and for parts that are not textual.
type Entry struct {
	Path    string
	IsDir   bool
	Size    uint64
	Content *string
}

// Inspect reads a zip container and returns one Entry per member, in the
// order the container lists them. Textual parts are decoded to UTF-8;
// everything else keeps Content nil. Any read failure aborts the whole
// inspection so callers never see a partial listing.
func Inspect(r io.ReaderAt, size int64) ([]Entry, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read package: %w", err)
	}

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		name := f.Name

		if strings.HasSuffix(name, "/") {
			entries = append(entries, Entry{
				Path:  strings.TrimRight(name, "/"),
				IsDir: true,
			})
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		raw, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close %s: %w", name, closeErr)
		}

		entry := Entry{Path: name, Size: uint64(len(raw))}
		if IsTextualName(name) {
			text := DecodeText(raw)
			entry.Content = &text
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// InspectBytes inspects a package held fully in memory.
func InspectBytes(data []byte) ([]Entry, error) {
	return Inspect(bytes.NewReader(data), int64(len(data)))
}

// InspectFile inspects the package at path. The file is read into memory
// first; OOXML packages are small enough that streaming is not worth the
// bookkeeping.
func InspectFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read package: %w", err)
	}
	return InspectBytes(data)
}
