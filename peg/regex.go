package peg

import (
	"unicode/utf8"

	"github.com/coregx/corepeg/nfa"
	"github.com/coregx/corepeg/source"
)

// Regex returns a parser matching pattern at the current position.
//
// The match is the greedy single-pass prefix of nfa.Run; the attribute is
// passed through unchanged. When the automaton does not accept, everything
// it scanned is pushed back.
func (g *Grammar[A]) Regex(pattern string) (Parser[A], error) {
	n, err := g.compile(pattern)
	if err != nil {
		return nil, err
	}
	return g.NFA(n), nil
}

// MustRegex is like Regex but panics if the pattern does not compile.
func (g *Grammar[A]) MustRegex(pattern string) Parser[A] {
	return g.NFA(g.mustCompile("MustRegex", pattern))
}

// NFA returns a parser running a compiled automaton.
func (g *Grammar[A]) NFA(n *nfa.NFA) Parser[A] {
	return &regexParser[A]{nfa: n}
}

type regexParser[A any] struct {
	nfa *nfa.NFA
}

func (p *regexParser[A]) Parse(in *source.Input, index int, attr A) (Result[A], bool, error) {
	text, matched, err := scan(in, p.nfa)
	if err != nil || !matched {
		return Result[A]{}, false, err
	}
	return succeed(index+utf8.RuneCountInString(text), attr)
}

// scan runs n and keeps the scanned text only when n accepts.
func scan(in *source.Input, n *nfa.NFA) (string, bool, error) {
	mark := in.Pos()
	res, err := n.Run(in)
	if err != nil {
		return "", false, err
	}
	if !res.Matched {
		return "", false, in.Rewind(mark)
	}
	return res.Scanned, true, nil
}
