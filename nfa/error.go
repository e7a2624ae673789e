// Package nfa provides composable nondeterministic finite automata and a
// compiler for a small regular-expression dialect.
//
// An automaton is a tree of fragments (Null, Singleton, Alternation,
// Concatenation, Repetition). Composite fragments answer transition queries
// by delegating to the child that owns a state, so composing fragments never
// renumbers or copies states. NFA.Run performs a greedy single forward pass
// over an Input and reports the consumed prefix.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrMissingParen indicates a '(' without its closing ')'
	ErrMissingParen = errors.New("missing closing )")

	// ErrUnexpectedParen indicates a ')' without an opening '('
	ErrUnexpectedParen = errors.New("unexpected )")

	// ErrMissingOperand indicates a quantifier with no preceding atom
	ErrMissingOperand = errors.New("missing argument to repetition operator")

	// ErrUnexpectedEnd indicates that the pattern ended where an atom was expected
	ErrUnexpectedEnd = errors.New("unexpected end of pattern")

	// ErrTrailingBackslash indicates a pattern ending with an unescaped '\'
	ErrTrailingBackslash = errors.New("trailing backslash at end of pattern")

	// ErrInvalidClass indicates a bracket expression rejected by regexp/syntax
	ErrInvalidClass = errors.New("invalid character class")

	// ErrTooComplex indicates the pattern nests groups beyond the configured depth
	ErrTooComplex = errors.New("pattern too complex")

	// ErrEmptyAlternation indicates an alternation without branches
	ErrEmptyAlternation = errors.New("empty alternation")

	// ErrEmptyConcatenation indicates a concatenation without elements
	ErrEmptyConcatenation = errors.New("empty concatenation")

	// ErrSharedFragment indicates a fragment placed twice in one tree
	ErrSharedFragment = errors.New("fragment shared inside one automaton")

	// ErrForeignFragment indicates a fragment from another Builder
	ErrForeignFragment = errors.New("fragment from another builder")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	Pattern string
	Pos     int // rune offset in Pattern where the error was detected
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("regex compilation failed for pattern %q at offset %d: %v", e.Pattern, e.Pos, e.Err)
	}
	return fmt.Sprintf("regex compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during fragment construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
	Err     error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}

// Unwrap returns the underlying sentinel error
func (e *BuildError) Unwrap() error {
	return e.Err
}
