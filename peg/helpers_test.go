package peg

import (
	"errors"
	"io"
)

var errReader = errors.New("reader failed")

// failingReader yields s and then errReader instead of io.EOF.
type failingReader struct {
	s   string
	off int
}

func (r *failingReader) ReadRune() (rune, int, error) {
	if r.off >= len(r.s) {
		return 0, 0, errReader
	}
	c := rune(r.s[r.off])
	r.off++
	return c, 1, nil
}

var _ io.RuneReader = (*failingReader)(nil)
