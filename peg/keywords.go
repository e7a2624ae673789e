package peg

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/corepeg/source"
)

// Keywords returns a parser matching one of words at the current position.
//
// The words are compiled into a single Aho-Corasick automaton. When several
// words match at the current position, the one declared first wins, as in
// an ordered choice. Input is read ahead by at most the length of the
// longest word and pushed back past the match.
func (g *Grammar[A]) Keywords(words ...string) (Parser[A], error) {
	if len(words) == 0 {
		return nil, ErrNoKeywords
	}
	builder := ahocorasick.NewBuilder()
	longest := 0
	for _, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty keyword", ErrNoKeywords)
		}
		builder.AddPattern([]byte(w))
		longest = max(longest, utf8.RuneCountInString(w))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("peg: build keyword automaton: %w", err)
	}
	return &keywordParser[A]{auto: auto, longest: longest}, nil
}

type keywordParser[A any] struct {
	auto    *ahocorasick.Automaton
	longest int // in runes
}

func (p *keywordParser[A]) Parse(in *source.Input, index int, attr A) (Result[A], bool, error) {
	mark := in.Pos()
	window := make([]byte, 0, p.longest*utf8.UTFMax)
	for i := 0; i < p.longest; i++ {
		r, _, err := in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return abort[A](err)
		}
		window = utf8.AppendRune(window, r)
	}

	m, found := p.first(window)
	if !found {
		return rollback[A](in, mark)
	}
	n := utf8.RuneCount(window[:m.End])
	if err := in.Rewind(mark + n); err != nil {
		return abort[A](err)
	}
	return succeed(index+n, attr)
}

// first returns the match at the start of window of the word declared
// first. Find and FindAt stop at the match that ends first, which is not
// necessarily that word, so every overlapping match is considered.
func (p *keywordParser[A]) first(window []byte) (ahocorasick.Match, bool) {
	var best ahocorasick.Match
	found := false
	for _, m := range p.auto.FindAllOverlapping(window) {
		if m.Start == 0 && (!found || m.PatternID < best.PatternID) {
			best, found = m, true
		}
	}
	return best, found
}
