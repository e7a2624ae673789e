package peg

import "github.com/coregx/corepeg/source"

// Then returns a parser running steps one after another, each starting
// where the previous one stopped. If any step fails, the input consumed by
// the earlier steps is restored and the sequence fails. An empty sequence
// always matches.
func (g *Grammar[A]) Then(steps ...Parser[A]) Parser[A] {
	return &seqParser[A]{steps: append([]Parser[A](nil), steps...)}
}

type seqParser[A any] struct {
	steps []Parser[A]
}

func (p *seqParser[A]) Parse(in *source.Input, index int, attr A) (Result[A], bool, error) {
	mark := in.Pos()
	res := Result[A]{Index: index, Attr: attr}
	for _, step := range p.steps {
		next, ok, err := step.Parse(in, res.Index, res.Attr)
		if err != nil {
			return abort[A](err)
		}
		if !ok {
			return rollback[A](in, mark)
		}
		res = next
	}
	return res, true, nil
}
