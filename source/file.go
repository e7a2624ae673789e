package source

import (
	"fmt"
	"io"
	"math"
	"os"
	"unicode/utf8"
)

// File is a rune reader over the whole contents of a file.
//
// Regular files are memory-mapped where the platform supports it; other
// files (pipes, terminals) are read into memory. A File must be closed to
// release the mapping.
type File struct {
	name    string
	data    []byte
	off     int
	release func() error
}

// Open opens the named file for rune reading.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return &File{name: name, data: data, release: noRelease}, nil
	}

	size := fi.Size()
	if size > math.MaxInt {
		return nil, fmt.Errorf("source: %s: file too large (%d bytes)", name, size)
	}
	data, release, err := mapFile(f, int(size))
	if err != nil {
		return nil, fmt.Errorf("source: map %s: %w", name, err)
	}
	return &File{name: name, data: data, release: release}, nil
}

// Name returns the name passed to Open
func (f *File) Name() string {
	return f.name
}

// Size returns the file size in bytes
func (f *File) Size() int {
	return len(f.data)
}

// ReadRune decodes the next UTF-8 sequence. Invalid bytes decode as
// utf8.RuneError of size 1.
func (f *File) ReadRune() (rune, int, error) {
	if f.data == nil && f.release == nil {
		return 0, 0, os.ErrClosed
	}
	if f.off >= len(f.data) {
		return 0, 0, io.EOF
	}
	r, size := utf8.DecodeRune(f.data[f.off:])
	f.off += size
	return r, size, nil
}

// Close releases the file contents. Reading a closed File fails.
func (f *File) Close() error {
	if f.release == nil {
		return os.ErrClosed
	}
	err := f.release()
	f.data, f.release = nil, nil
	return err
}

func noRelease() error {
	return nil
}
