package peg

import (
	"fmt"

	"github.com/coregx/corepeg/source"
)

// Times returns a parser running p repeatedly, each iteration starting
// from the result of the previous one. A negative max means no upper bound.
//
// Repetition stops at the first failing iteration or after max iterations,
// without attempting another one. The parser matches with the last
// successful result if at least min iterations completed; otherwise all
// input consumed by the completed iterations is restored and it fails.
// An unbounded repetition also stops after an iteration that consumed no
// input once min is reached, so a parser matching the empty string cannot
// loop forever.
//
// Times panics if min is negative or max is non-negative and below min.
func (g *Grammar[A]) Times(min, max int, p Parser[A]) Parser[A] {
	if min < 0 || (max >= 0 && max < min) {
		panic(fmt.Sprintf("peg: Times(%d, %d): invalid bounds", min, max))
	}
	return &repeatParser[A]{min: min, max: max, p: p}
}

// AtLeast matches p min or more times
func (g *Grammar[A]) AtLeast(min int, p Parser[A]) Parser[A] {
	return g.Times(min, -1, p)
}

// AtMost matches p up to max times
func (g *Grammar[A]) AtMost(max int, p Parser[A]) Parser[A] {
	return g.Times(0, max, p)
}

// ZeroOrMore matches p any number of times
func (g *Grammar[A]) ZeroOrMore(p Parser[A]) Parser[A] {
	return g.Times(0, -1, p)
}

// OneOrMore matches p at least once
func (g *Grammar[A]) OneOrMore(p Parser[A]) Parser[A] {
	return g.Times(1, -1, p)
}

// Maybe matches p zero or one time
func (g *Grammar[A]) Maybe(p Parser[A]) Parser[A] {
	return g.Times(0, 1, p)
}

type repeatParser[A any] struct {
	min, max int
	p        Parser[A]
}

func (r *repeatParser[A]) Parse(in *source.Input, index int, attr A) (Result[A], bool, error) {
	mark := in.Pos()
	res := Result[A]{Index: index, Attr: attr}
	count := 0
	for r.max < 0 || count < r.max {
		before := in.Pos()
		next, ok, err := r.p.Parse(in, res.Index, res.Attr)
		if err != nil {
			return abort[A](err)
		}
		if !ok {
			break
		}
		res = next
		count++
		if r.max < 0 && count >= r.min && in.Pos() == before {
			break
		}
	}
	if count < r.min {
		return rollback[A](in, mark)
	}
	return res, true, nil
}
