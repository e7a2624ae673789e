package peg

import (
	"log/slog"

	"github.com/coregx/corepeg/source"
)

// Named wraps p so that entering and leaving it is logged at debug level
// on the grammar logger, with the rule name and positions.
func (g *Grammar[A]) Named(name string, p Parser[A]) Parser[A] {
	return ParserFunc[A](func(in *source.Input, index int, attr A) (Result[A], bool, error) {
		if !g.tracing() {
			return p.Parse(in, index, attr)
		}

		g.logger.Debug("enter", slog.String("rule", name), slog.Int("index", index), slog.Int("pos", in.Pos()))
		res, ok, err := p.Parse(in, index, attr)
		switch {
		case err != nil:
			g.logger.Debug("abort", slog.String("rule", name), slog.Int("index", index), slog.Any("err", err))
		case ok:
			g.logger.Debug("match", slog.String("rule", name), slog.Int("index", index), slog.Int("end", res.Index))
		default:
			g.logger.Debug("fail", slog.String("rule", name), slog.Int("index", index))
		}
		return res, ok, err
	})
}
