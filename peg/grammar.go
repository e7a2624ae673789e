// Package peg provides parser combinators over the nfa regex engine.
//
// A Grammar[A] builds Parser[A] steps that thread a user-defined attribute
// of type A through a parse: regexes, sequences, guarded branches,
// bounded repetition, semantic actions and recursive rules. Every step that
// fails restores exactly the input it consumed, so alternatives may be tried
// at any nesting depth. The only fatal condition of a match is rolling back
// more input than the pushback buffer allows (source.ErrBufferOverflow).
//
// Basic usage:
//
//	g := peg.New[int]()
//	digits := g.Action(`[0-9]+`, func(text string, n int) int {
//	    v, _ := strconv.Atoi(text)
//	    return n + v
//	})
//	sum := g.Then(digits, g.ZeroOrMore(g.Then(g.MustRegex(`\+`), digits)))
//	res, ok, err := g.MatchString(sum, "1+2+3", 0) // res.Attr == 6
//
// Parsers are immutable once built and may be shared by any number of
// concurrent matches; each match owns its own input.
package peg

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/coregx/corepeg/nfa"
	"github.com/coregx/corepeg/source"
)

// Config controls how a Grammar compiles patterns and reads input.
//
// Example:
//
//	config := peg.DefaultConfig()
//	config.Buffer.MaxBufferSize = 1 << 16 // allow deeper rollback
//	g, err := peg.NewWithConfig[string](config)
type Config struct {
	// Buffer configures the input of each match.
	Buffer source.Config

	// Compiler configures regex compilation.
	Compiler nfa.CompilerConfig

	// Logger receives rule traces from Named at debug level.
	// Default: nil (discard)
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Buffer:   source.DefaultConfig(),
		Compiler: nfa.DefaultCompilerConfig(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if err := c.Buffer.Validate(); err != nil {
		return err
	}
	if c.Compiler.MaxRecursionDepth < 1 || c.Compiler.MaxRecursionDepth > 1_000 {
		return &ConfigError{
			Field:   "Compiler.MaxRecursionDepth",
			Message: "must be between 1 and 1,000",
		}
	}
	return nil
}

// Grammar builds parsers sharing one configuration.
type Grammar[A any] struct {
	config Config
	logger *slog.Logger
}

// New creates a grammar with the default configuration.
func New[A any]() *Grammar[A] {
	g, err := NewWithConfig[A](DefaultConfig())
	if err != nil {
		panic("peg: default config is invalid: " + err.Error())
	}
	return g
}

// NewWithConfig creates a grammar with the given configuration.
func NewWithConfig[A any](config Config) (*Grammar[A], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Grammar[A]{config: config, logger: logger}, nil
}

// Config returns the grammar configuration
func (g *Grammar[A]) Config() Config {
	return g.config
}

// Success returns a parser that always matches without consuming input.
func (g *Grammar[A]) Success() Parser[A] {
	return ParserFunc[A](func(_ *source.Input, index int, attr A) (Result[A], bool, error) {
		return succeed(index, attr)
	})
}

// Fail returns a parser that never matches.
func (g *Grammar[A]) Fail() Parser[A] {
	return ParserFunc[A](func(*source.Input, int, A) (Result[A], bool, error) {
		return miss[A]()
	})
}

// Match runs p from index 0 over a fresh input reading from r.
// It reports the final index and attribute when p matches; trailing input
// after the match is left unread. err is non-nil only for fatal conditions.
func (g *Grammar[A]) Match(p Parser[A], r io.RuneReader, attr A) (Result[A], bool, error) {
	return p.Parse(source.NewInput(r, g.config.Buffer), 0, attr)
}

// MatchString is like Match but reads from s.
func (g *Grammar[A]) MatchString(p Parser[A], s string, attr A) (Result[A], bool, error) {
	return g.Match(p, strings.NewReader(s), attr)
}

func (g *Grammar[A]) compile(pattern string) (*nfa.NFA, error) {
	return nfa.NewCompiler(g.config.Compiler).Compile(pattern)
}

func (g *Grammar[A]) mustCompile(fn, pattern string) *nfa.NFA {
	n, err := g.compile(pattern)
	if err != nil {
		panic("peg: " + fn + "(`" + pattern + "`): " + err.Error())
	}
	return n
}

func (g *Grammar[A]) tracing() bool {
	return g.logger.Enabled(context.Background(), slog.LevelDebug)
}
