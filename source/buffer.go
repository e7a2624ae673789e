package source

import (
	"errors"
	"fmt"
)

// ErrBufferOverflow indicates that a pushback did not fit under the buffer
// limit. It aborts the whole match and is never a plain non-match.
var ErrBufferOverflow = errors.New("pushback buffer overflow")

// OverflowError reports a pushback that exceeded the buffer limit.
type OverflowError struct {
	// Need is the number of runes the buffer would have had to hold.
	Need int

	// Max is the buffer limit.
	Max int
}

// Error implements the error interface
func (e *OverflowError) Error() string {
	return fmt.Sprintf("source: pushback of %d characters exceeds the limit of %d", e.Need, e.Max)
}

// Unwrap returns ErrBufferOverflow
func (e *OverflowError) Unwrap() error {
	return ErrBufferOverflow
}

// Buffer is a growable pushback store.
//
// Runes pushed back are returned by Read before anything else, most recent
// pushback first. Unread content always lives in data[read:end]; an empty
// buffer has both cursors at -1.
type Buffer struct {
	data []rune
	read int
	end  int
	max  int
}

// NewBuffer creates a buffer with the given initial capacity and limit.
// A size below 1 is raised to 1 and a limit below size is raised to size.
func NewBuffer(size, limit int) *Buffer {
	size = max(size, 1)
	return &Buffer{
		data: make([]rune, size),
		read: -1,
		end:  -1,
		max:  max(limit, size),
	}
}

// Len returns the number of runes waiting to be read
func (b *Buffer) Len() int {
	if b.read < 0 {
		return 0
	}
	return b.end - b.read
}

// Cap returns the current capacity
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Max returns the capacity limit
func (b *Buffer) Max() int {
	return b.max
}

// Read returns the next pushed-back rune. ok is false when the buffer is
// empty and the caller must read from the underlying source.
func (b *Buffer) Read() (r rune, ok bool) {
	if b.read < 0 {
		return 0, false
	}
	r = b.data[b.read]
	b.read++
	if b.read >= b.end {
		b.read, b.end = -1, -1
	}
	return r, true
}

// Unread pushes back a single rune.
func (b *Buffer) Unread(r rune) error {
	return b.Backtrack([]rune{r})
}

// Backtrack pushes seq back in front of the unread content, so that the
// next len(seq) reads return seq in order.
//
// The unread content is first compacted to offset 0. While the combined
// length does not fit, the capacity doubles, capped at the limit. When the
// capacity is already at the limit an *OverflowError is returned and the
// buffer keeps its previous content.
func (b *Buffer) Backtrack(seq []rune) error {
	if len(seq) == 0 {
		return nil
	}

	remaining := b.Len()
	if remaining > 0 && b.read > 0 {
		copy(b.data, b.data[b.read:b.end])
	}
	b.setContent(remaining)

	need := len(seq) + remaining
	for need > len(b.data) {
		if len(b.data) >= b.max {
			return &OverflowError{Need: need, Max: b.max}
		}
		grown := make([]rune, min(2*len(b.data), b.max))
		copy(grown, b.data[:remaining])
		b.data = grown
	}

	copy(b.data[len(seq):], b.data[:remaining])
	copy(b.data, seq)
	b.setContent(need)
	return nil
}

// Reset drops all pushed-back content, keeping the capacity.
func (b *Buffer) Reset() {
	b.read, b.end = -1, -1
}

func (b *Buffer) setContent(n int) {
	if n == 0 {
		b.read, b.end = -1, -1
		return
	}
	b.read, b.end = 0, n
}
