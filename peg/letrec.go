package peg

import (
	"fmt"

	"github.com/coregx/corepeg/source"
)

// Letrec builds a recursive parser. f receives a reference to the parser it
// is about to return and may use it anywhere inside that parser; the
// reference dispatches to the finished parser at parse time.
//
//	brackets := g.Letrec(func(self peg.Parser[int]) peg.Parser[int] {
//	    return g.Cond("<", g.Then(g.MustRegex("<"), self, g.MustRegex(">"))).
//	        OrElse(g.Success())
//	})
//
// Letrec panics if f returns nil or the reference itself.
func (g *Grammar[A]) Letrec(f func(self Parser[A]) Parser[A]) Parser[A] {
	ref := &recursive[A]{name: "letrec"}
	target := f(ref)
	if target == nil {
		panic("peg: Letrec function returned nil")
	}
	if r, ok := target.(*recursive[A]); ok && r == ref {
		panic("peg: Letrec function returned its own argument")
	}
	ref.target = target
	return target
}

// recursive is a forward reference patched once its target is built.
type recursive[A any] struct {
	name   string
	target Parser[A]
}

func (r *recursive[A]) Parse(in *source.Input, index int, attr A) (Result[A], bool, error) {
	if r.target == nil {
		return abort[A](fmt.Errorf("%w: %s", ErrUnresolvedRule, r.name))
	}
	return r.target.Parse(in, index, attr)
}
