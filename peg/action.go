package peg

import (
	"github.com/coregx/corepeg/source"
)

// Action returns a parser matching pattern and replacing the attribute with
// combine(matchedText, inheritedAttr). It panics if pattern does not
// compile; Capture is the general form.
func (g *Grammar[A]) Action(pattern string, combine func(text string, attr A) A) Parser[A] {
	return g.Capture(g.NFA(g.mustCompile("Action", pattern)), combine)
}

// Capture returns a parser running p and replacing its attribute with
// combine(text, attr), where text is the input consumed by p and attr the
// attribute p produced.
func (g *Grammar[A]) Capture(p Parser[A], combine func(text string, attr A) A) Parser[A] {
	return ParserFunc[A](func(in *source.Input, index int, attr A) (Result[A], bool, error) {
		mark, release := in.Hold()
		defer release()
		res, ok, err := p.Parse(in, index, attr)
		if err != nil || !ok {
			return res, false, err
		}
		text, err := in.Text(mark, in.Pos())
		if err != nil {
			return abort[A](err)
		}
		return succeed(res.Index, combine(text, res.Attr))
	})
}

// ActionOf returns a parser running p and replacing the attribute with
// combine(resultAttr, inheritedAttr). The index advances to where p
// stopped.
func (g *Grammar[A]) ActionOf(p Parser[A], combine func(result, inherited A) A) Parser[A] {
	return ParserFunc[A](func(in *source.Input, index int, attr A) (Result[A], bool, error) {
		res, ok, err := p.Parse(in, index, attr)
		if err != nil || !ok {
			return res, false, err
		}
		return succeed(res.Index, combine(res.Attr, attr))
	})
}
