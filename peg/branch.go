package peg

import (
	"github.com/coregx/corepeg/source"
)

// Branch is a guarded choice built by Cond.
//
// Each arm pairs a lookahead condition with a parser. The conditions are
// tested in order; testing never consumes input. The first condition that
// accepts selects its arm and the branch result is that arm's result, also
// when the arm fails. When no condition accepts, the fallback set by OrElse
// runs; without a fallback the branch fails.
//
// A Branch is built by chaining calls and must not be modified once it is
// in use by a match.
type Branch[A any] struct {
	g        *Grammar[A]
	arms     []arm[A]
	fallback Parser[A]
}

type arm[A any] struct {
	cond Condition
	then Parser[A]
}

// Cond starts a branch taking ifTrue when pattern matches at the current
// position. It panics if pattern does not compile; use CondOn with a
// compiled automaton to handle the error.
func (g *Grammar[A]) Cond(pattern string, ifTrue Parser[A]) *Branch[A] {
	return g.CondOn(g.mustCompile("Cond", pattern), ifTrue)
}

// CondOn starts a branch taking ifTrue when cond accepts.
func (g *Grammar[A]) CondOn(cond Condition, ifTrue Parser[A]) *Branch[A] {
	return &Branch[A]{g: g, arms: []arm[A]{{cond: cond, then: ifTrue}}}
}

// OrElseIf adds an arm tested after the existing ones. It panics if
// pattern does not compile.
func (b *Branch[A]) OrElseIf(pattern string, ifTrue Parser[A]) *Branch[A] {
	return b.OrElseOn(b.g.mustCompile("OrElseIf", pattern), ifTrue)
}

// OrElseOn adds an arm with a compiled condition.
func (b *Branch[A]) OrElseOn(cond Condition, ifTrue Parser[A]) *Branch[A] {
	b.arms = append(b.arms, arm[A]{cond: cond, then: ifTrue})
	return b
}

// OrElse sets the parser used when no condition accepts.
func (b *Branch[A]) OrElse(fallback Parser[A]) *Branch[A] {
	b.fallback = fallback
	return b
}

// Parse implements Parser.
func (b *Branch[A]) Parse(in *source.Input, index int, attr A) (Result[A], bool, error) {
	for _, a := range b.arms {
		hit, err := lookahead(in, a.cond)
		if err != nil {
			return abort[A](err)
		}
		if hit {
			return a.then.Parse(in, index, attr)
		}
	}
	if b.fallback == nil {
		return miss[A]()
	}
	return b.fallback.Parse(in, index, attr)
}

// lookahead runs cond without consuming input.
func lookahead(in *source.Input, cond Condition) (bool, error) {
	mark := in.Pos()
	res, err := cond.Run(in)
	if err != nil {
		return false, err
	}
	if err := in.Rewind(mark); err != nil {
		return false, err
	}
	return res.Matched, nil
}
