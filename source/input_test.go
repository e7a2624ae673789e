package source

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readN(t *testing.T, in *Input, n int) string {
	t.Helper()
	var out []rune
	for i := 0; i < n; i++ {
		r, _, err := in.ReadRune()
		require.NoError(t, err)
		out = append(out, r)
	}
	return string(out)
}

func rest(t *testing.T, in *Input) string {
	t.Helper()
	var out []rune
	for {
		r, _, err := in.ReadRune()
		if errors.Is(err, io.EOF) {
			return string(out)
		}
		require.NoError(t, err)
		out = append(out, r)
	}
}

func TestInput_RewindRestoresExactly(t *testing.T) {
	in := FromString("hello, world")

	assert.Equal(t, "hel", readN(t, in, 3))
	mark := in.Pos()
	assert.Equal(t, "lo, w", readN(t, in, 5))
	assert.Equal(t, 8, in.Pos())

	require.NoError(t, in.Rewind(mark))
	assert.Equal(t, 3, in.Pos())
	assert.Equal(t, "lo, world", rest(t, in))
}

func TestInput_NestedRewind(t *testing.T) {
	in := FromString("abcdef")

	outer := in.Pos()
	readN(t, in, 2)
	inner := in.Pos()
	readN(t, in, 3)

	require.NoError(t, in.Rewind(inner))
	assert.Equal(t, "cd", readN(t, in, 2))
	require.NoError(t, in.Rewind(outer))
	assert.Equal(t, 0, in.Pos())
	assert.Equal(t, "abcdef", rest(t, in))
}

func TestInput_RewindThroughPendingPushback(t *testing.T) {
	in := FromString("xyz")
	readN(t, in, 3)
	require.NoError(t, in.Rewind(1))
	assert.Equal(t, 2, in.Buffered())

	// consume part of the pushback, then roll everything back
	assert.Equal(t, "y", readN(t, in, 1))
	require.NoError(t, in.Rewind(0))
	assert.Equal(t, 3, in.Buffered())
	assert.Equal(t, "xyz", rest(t, in))
}

func TestInput_Unread(t *testing.T) {
	in := FromString("ab")
	r, size, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, size)

	assert.ErrorIs(t, in.Unread('z'), ErrUnreadMismatch)
	require.NoError(t, in.Unread('a'))
	assert.Equal(t, 0, in.Pos())
	assert.ErrorIs(t, in.Unread('a'), ErrUnreadMismatch, "nothing left to unread")
	assert.Equal(t, "ab", rest(t, in))
}

func TestInput_Backtrack(t *testing.T) {
	in := FromString("été!")
	readN(t, in, 3)

	assert.ErrorIs(t, in.Backtrack("xé"), ErrUnreadMismatch)
	assert.ErrorIs(t, in.Backtrack("étéé"), ErrUnreadMismatch)
	require.NoError(t, in.Backtrack("té"))
	assert.Equal(t, 1, in.Pos())

	r, size, err := in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 't', r)
	assert.Equal(t, 1, size)
	r, size, err = in.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, size, "sizes of pushed-back runes are UTF-8 lengths")
}

func TestInput_RewindOverflow(t *testing.T) {
	in := NewInput(strings.NewReader(strings.Repeat("a", 100)), Config{BufferSize: 4, MaxBufferSize: 16})
	readN(t, in, 17)

	err := in.Rewind(0)
	var oe *OverflowError
	require.ErrorAs(t, err, &oe)
	assert.ErrorIs(t, err, ErrBufferOverflow)
	assert.Equal(t, 17, oe.Need)
	assert.Equal(t, 16, oe.Max)

	require.NoError(t, in.Rewind(1), "a rollback inside the limit still works")
}

func TestInput_InvalidMark(t *testing.T) {
	in := FromString("abc")
	readN(t, in, 1)
	assert.ErrorIs(t, in.Rewind(2), ErrInvalidMark)
	assert.ErrorIs(t, in.Rewind(-1), ErrInvalidMark)
	require.NoError(t, in.Rewind(1))
}

func TestInput_Text(t *testing.T) {
	in := FromString("parse me")
	readN(t, in, 5)

	got, err := in.Text(0, 5)
	require.NoError(t, err)
	assert.Equal(t, "parse", got)

	got, err = in.Text(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "rs", got)

	_, err = in.Text(3, 6)
	assert.ErrorIs(t, err, ErrInvalidMark)
}

func TestInput_HistorySize(t *testing.T) {
	config := Config{BufferSize: 2, MaxBufferSize: 4, HistorySize: 4}
	in := NewInput(strings.NewReader("0123456789"), config)
	readN(t, in, 9)

	// only the last few runes are retained
	_, err := in.Text(0, 2)
	assert.ErrorIs(t, err, ErrTextDiscarded)
	assert.ErrorIs(t, in.Rewind(0), ErrBufferOverflow)

	got, err := in.Text(6, 9)
	require.NoError(t, err)
	assert.Equal(t, "678", got)

	require.NoError(t, in.Rewind(5))
	assert.Equal(t, "56789", rest(t, in))
}

func TestInput_DefaultHistoryBounded(t *testing.T) {
	const n = 1_000_000
	in := NewInput(strings.NewReader(strings.Repeat("a", n)), DefaultConfig())
	readN(t, in, n)

	assert.LessOrEqual(t, len(in.history), 2*DefaultMaxBufferSize)
	_, err := in.Text(0, n)
	assert.ErrorIs(t, err, ErrTextDiscarded)
	assert.ErrorIs(t, in.Rewind(0), ErrBufferOverflow)

	require.NoError(t, in.Rewind(n-DefaultMaxBufferSize), "the last MaxBufferSize runes can be restored")
	assert.Equal(t, DefaultMaxBufferSize, in.Buffered())
}

func TestInput_Hold(t *testing.T) {
	config := Config{BufferSize: 2, MaxBufferSize: 4}
	in := NewInput(strings.NewReader(strings.Repeat("x", 10)+strings.Repeat("y", 1000)+"z"), config)
	readN(t, in, 10)

	mark, release := in.Hold()
	assert.Equal(t, 10, mark)
	readN(t, in, 1000)

	got, err := in.Text(mark, in.Pos())
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("y", 1000), got)
	_, err = in.Text(0, 10)
	assert.ErrorIs(t, err, ErrTextDiscarded, "text before the hold is not kept")
	assert.ErrorIs(t, in.Rewind(mark), ErrBufferOverflow, "a hold does not extend Rewind")

	release()
	assert.Equal(t, "z", readN(t, in, 1))
	_, err = in.Text(mark, in.Pos())
	assert.ErrorIs(t, err, ErrTextDiscarded)
	assert.LessOrEqual(t, cap(in.history), 4*4)
}

type brokenReader struct{ err error }

func (r brokenReader) ReadRune() (rune, int, error) {
	return 0, 0, r.err
}

func TestInput_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	in := NewInput(brokenReader{boom}, DefaultConfig())
	_, _, err := in.ReadRune()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, in.Pos())
}
