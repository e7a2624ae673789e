package peg

import (
	"github.com/coregx/corepeg/nfa"
	"github.com/coregx/corepeg/source"
)

// Result is the outcome of a successful parse step.
type Result[A any] struct {
	// Index counts the characters consumed since the start of the match.
	Index int

	// Attr is the attribute produced by the step.
	Attr A
}

// Parser is a single parse step.
//
// Parse starts at the current position of in with the inherited index and
// attribute. A step that does not match returns ok == false and must leave
// in exactly where it found it. A non-nil error is fatal and aborts the
// whole match; every combinator passes it through unchanged.
type Parser[A any] interface {
	Parse(in *source.Input, index int, attr A) (res Result[A], ok bool, err error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc[A any] func(in *source.Input, index int, attr A) (Result[A], bool, error)

// Parse calls f(in, index, attr).
func (f ParserFunc[A]) Parse(in *source.Input, index int, attr A) (Result[A], bool, error) {
	return f(in, index, attr)
}

// Condition is a lookahead test run by Branch.
// *nfa.NFA implements it.
type Condition interface {
	Run(in nfa.Input) (nfa.ConditionResult, error)
}

var _ Condition = (*nfa.NFA)(nil)

func succeed[A any](index int, attr A) (Result[A], bool, error) {
	return Result[A]{Index: index, Attr: attr}, true, nil
}

func miss[A any]() (Result[A], bool, error) {
	return Result[A]{}, false, nil
}

func abort[A any](err error) (Result[A], bool, error) {
	return Result[A]{}, false, err
}

// rollback rewinds in to mark and reports a non-match, or the rewind error.
func rollback[A any](in *source.Input, mark int) (Result[A], bool, error) {
	if err := in.Rewind(mark); err != nil {
		return abort[A](err)
	}
	return miss[A]()
}
