package nfa

import (
	"errors"
	"testing"
)

func TestCompileError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CompileError
		wantFull string
	}{
		{
			name:     "with pattern",
			err:      &CompileError{Pattern: `(ab`, Pos: 0, Err: ErrMissingParen},
			wantFull: `regex compilation failed for pattern "(ab" at offset 0: missing closing )`,
		},
		{
			name:     "empty pattern",
			err:      &CompileError{Pattern: "", Err: ErrUnexpectedEnd},
			wantFull: "regex compilation failed: unexpected end of pattern",
		},
		{
			name:     "offset",
			err:      &CompileError{Pattern: "a**", Pos: 2, Err: ErrMissingOperand},
			wantFull: `regex compilation failed for pattern "a**" at offset 2: missing argument to repetition operator`,
		},
		{
			name:     "nil inner error",
			err:      &CompileError{Pattern: "x", Err: nil},
			wantFull: `regex compilation failed for pattern "x" at offset 0: <nil>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantFull {
				t.Errorf("Error() = %q, want %q", got, tt.wantFull)
			}
		})
	}
}

func TestCompileError_Unwrap(t *testing.T) {
	for _, sentinel := range []error{ErrMissingParen, ErrTooComplex, ErrInvalidClass} {
		err := error(&CompileError{Pattern: "p", Err: sentinel})
		if !errors.Is(err, sentinel) {
			t.Errorf("errors.Is(%v, %v) = false", err, sentinel)
		}
	}

	joined := &CompileError{Pattern: "[z-a]", Err: errors.Join(ErrInvalidClass, errors.New("bad range"))}
	if !errors.Is(joined, ErrInvalidClass) {
		t.Error("joined class error does not match ErrInvalidClass")
	}
}

func TestBuildError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *BuildError
		want string
	}{
		{
			name: "with state",
			err:  &BuildError{Message: "fragment used twice", StateID: 3, Err: ErrSharedFragment},
			want: "NFA build error at state 3: fragment used twice",
		},
		{
			name: "without state",
			err:  &BuildError{Message: "no branches", StateID: InvalidState, Err: ErrEmptyAlternation},
			want: "NFA build error: no branches",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, tt.err.Err) {
				t.Errorf("Unwrap does not expose %v", tt.err.Err)
			}
		})
	}
}
