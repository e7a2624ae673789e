package source

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnreadMismatch indicates a pushback of text that is not the most
	// recently consumed text
	ErrUnreadMismatch = errors.New("source: pushback does not match consumed input")

	// ErrInvalidMark indicates a position that was never reached or lies
	// ahead of the current one
	ErrInvalidMark = errors.New("source: invalid position")

	// ErrTextDiscarded indicates a range that was dropped from the history
	ErrTextDiscarded = errors.New("source: text no longer retained")
)

// Input is a rune reader with exact rollback.
//
// Recently handed out runes are recorded, so a caller can note Pos before a
// trial and Rewind to it afterwards; the rewound runes are pushed into the
// Buffer and read again in order. The record is bounded by
// Config.HistorySize, except for text after a position kept by Hold.
// Input is not safe for concurrent use; each match owns its own Input.
type Input struct {
	reader  io.RuneReader
	buf     *Buffer
	history []rune // consumed runes at positions [pos-len(history), pos)
	pos     int
	limit   int
	holds   []int // held positions, oldest first
}

// NewInput wraps r using the given configuration. The configuration is not
// validated; see Config.Validate.
func NewInput(r io.RuneReader, config Config) *Input {
	buf := NewBuffer(config.BufferSize, config.MaxBufferSize)
	limit := config.HistorySize
	if limit <= 0 {
		limit = buf.Max()
	}
	return &Input{
		reader: r,
		buf:    buf,
		limit:  limit,
	}
}

// FromString returns an Input over s with the default configuration.
func FromString(s string) *Input {
	return NewInput(strings.NewReader(s), DefaultConfig())
}

// ReadRune returns the next rune, taking pushed-back runes first.
// It returns io.EOF at the end of the underlying reader.
func (in *Input) ReadRune() (rune, int, error) {
	r, ok := in.buf.Read()
	size := 0
	if ok {
		size = utf8.RuneLen(r)
		if size < 0 {
			size = 1
		}
	} else {
		var err error
		r, size, err = in.reader.ReadRune()
		if err != nil {
			return 0, 0, err
		}
	}

	in.history = append(in.history, r)
	in.pos++
	keep := in.limit
	if len(in.holds) > 0 {
		keep = max(keep, in.pos-in.holds[0])
	}
	if len(in.history) >= 2*keep {
		in.trim(keep)
	}
	return r, size, nil
}

// Hold keeps the text consumed from the current position on available to
// Text until release is called, however much of it is read. Holds must be
// released in the reverse order they were taken.
func (in *Input) Hold() (mark int, release func()) {
	mark = in.pos
	in.holds = append(in.holds, mark)
	return mark, func() {
		in.holds = in.holds[:len(in.holds)-1]
	}
}

// Unread pushes back r, which must be the last rune read.
func (in *Input) Unread(r rune) error {
	if len(in.history) == 0 || in.history[len(in.history)-1] != r {
		return fmt.Errorf("%w: %q", ErrUnreadMismatch, r)
	}
	if err := in.buf.Unread(r); err != nil {
		return err
	}
	in.drop(1)
	return nil
}

// Backtrack pushes back text, which must be the text most recently consumed.
func (in *Input) Backtrack(text string) error {
	runes := []rune(text)
	if len(runes) > len(in.history) || string(in.history[len(in.history)-len(runes):]) != text {
		return fmt.Errorf("%w: %q", ErrUnreadMismatch, text)
	}
	return in.restore(len(runes))
}

// Rewind restores every rune consumed since position mark.
// Rolling back more runes than the buffer limit allows, or past the
// retained history, fails with an error wrapping ErrBufferOverflow.
func (in *Input) Rewind(mark int) error {
	switch {
	case mark > in.pos || mark < 0:
		return fmt.Errorf("%w: %d (at %d)", ErrInvalidMark, mark, in.pos)
	case mark == in.pos:
		return nil
	case mark < in.floor():
		return &OverflowError{Need: in.pos - mark + in.buf.Len(), Max: in.buf.Max()}
	}
	return in.restore(in.pos - mark)
}

// Pos returns the number of runes consumed and not rewound.
func (in *Input) Pos() int {
	return in.pos
}

// Text returns the consumed text between positions from and to.
func (in *Input) Text(from, to int) (string, error) {
	if from < 0 || from > to || to > in.pos {
		return "", fmt.Errorf("%w: [%d, %d) (at %d)", ErrInvalidMark, from, to, in.pos)
	}
	floor := in.floor()
	if from < floor {
		return "", fmt.Errorf("%w: [%d, %d)", ErrTextDiscarded, from, to)
	}
	return string(in.history[from-floor : to-floor]), nil
}

// Buffered returns the number of pushed-back runes waiting to be read.
func (in *Input) Buffered() int {
	return in.buf.Len()
}

func (in *Input) floor() int {
	return in.pos - len(in.history)
}

// trim drops all but the last keep runes of the history, releasing the
// backing array once it is far larger than needed.
func (in *Input) trim(keep int) {
	tail := in.history[len(in.history)-keep:]
	if cap(in.history) > 4*keep {
		in.history = append(make([]rune, 0, 2*keep), tail...)
		return
	}
	n := copy(in.history, tail)
	in.history = in.history[:n]
}

func (in *Input) restore(n int) error {
	if n == 0 {
		return nil
	}
	if err := in.buf.Backtrack(in.history[len(in.history)-n:]); err != nil {
		return err
	}
	in.drop(n)
	return nil
}

func (in *Input) drop(n int) {
	in.history = in.history[:len(in.history)-n]
	in.pos -= n
}
