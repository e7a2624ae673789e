// Package corepeg provides a small composable regex engine and the parser
// combinators built on it.
//
// The root package is a convenience facade over the nfa package: it
// compiles a pattern once and matches it as a prefix of strings and
// readers. Grammars are built with the peg package.
//
// Supported syntax:
//   - literal characters, with '\' escaping the next one (\n, \t, \r)
//   - '.' for any character except newline
//   - '[...]' bracket expressions (Go regexp/syntax class syntax)
//   - '*' and '+' repetition, '|' alternation, '(' ')' grouping
//
// Basic usage:
//
//	re := corepeg.MustCompile(`(ab)+`)
//	prefix, ok := re.MatchPrefix("ababx") // "abab", true
//
// Matching is a greedy single forward pass: it consumes characters while
// any transition is alive and then reports whether the automaton accepts.
// It never retries a shorter prefix.
package corepeg

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/coregx/corepeg/nfa"
	"github.com/coregx/corepeg/source"
)

// Config combines compiler and input settings.
//
// Example:
//
//	config := corepeg.DefaultConfig()
//	config.Compiler.DotNewline = true // '.' also matches '\n'
//	re, err := corepeg.CompileWithConfig(".+", config)
type Config struct {
	// Compiler configures pattern compilation.
	Compiler nfa.CompilerConfig

	// Buffer configures readers passed to MatchReader.
	Buffer source.Config
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return Config{
		Compiler: nfa.DefaultCompilerConfig(),
		Buffer:   source.DefaultConfig(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	return c.Buffer.Validate()
}

// Regex is a compiled pattern.
//
// A Regex is immutable and safe to use concurrently from multiple
// goroutines.
type Regex struct {
	nfa     *nfa.NFA
	pattern string
	config  Config
}

// Compile compiles a pattern with the default configuration.
//
// Example:
//
//	re, err := corepeg.Compile(`765|346`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("corepeg: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	n, err := nfa.NewCompiler(config.Compiler).Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{nfa: n, pattern: pattern, config: config}, nil
}

// String returns the source pattern
func (r *Regex) String() string {
	return r.pattern
}

// NFA returns the compiled automaton
func (r *Regex) NFA() *nfa.NFA {
	return r.nfa
}

// MatchPrefix runs the pattern over s and returns the consumed prefix and
// whether the automaton accepts it. When ok is false, prefix is the text
// scanned before the dead end. Each byte of s that is not valid UTF-8 is
// read as one U+FFFD, so prefix then differs from the bytes of s.
func (r *Regex) MatchPrefix(s string) (prefix string, ok bool) {
	res, _ := r.run(s)
	return res.Scanned, res.Matched
}

// MatchString reports whether the whole of s is accepted.
func (r *Regex) MatchString(s string) bool {
	res, n := r.run(s)
	return res.Matched && n == utf8.RuneCountInString(s)
}

// run scans s and returns the result with the number of runes consumed.
func (r *Regex) run(s string) (nfa.ConditionResult, int) {
	in := source.NewInput(strings.NewReader(s), r.config.Buffer)
	res, err := r.nfa.Run(in)
	if err != nil {
		// strings.Reader only fails with io.EOF
		panic("corepeg: unexpected read error: " + err.Error())
	}
	return res, in.Pos()
}

// MatchReader runs the pattern over rd and returns the consumed prefix and
// whether it is accepted. The character that ended the scan is left unread
// in the returned Input. Read errors other than io.EOF are returned.
func (r *Regex) MatchReader(rd io.RuneReader) (prefix string, ok bool, rest *source.Input, err error) {
	in := source.NewInput(rd, r.config.Buffer)
	res, err := r.nfa.Run(in)
	if err != nil {
		return res.Scanned, false, in, err
	}
	return res.Scanned, res.Matched, in, nil
}

// Explain writes the fragment tree of the compiled pattern to w.
func (r *Regex) Explain(w io.Writer) error {
	return nfa.Dump(w, r.nfa.Root())
}

// QuoteMeta returns a string that escapes all metacharacters inside the
// argument text; the returned string is a pattern matching the literal text.
//
// Example:
//
//	escaped := corepeg.QuoteMeta("a+b")
//	// escaped = `a\+b`
func QuoteMeta(s string) string {
	const special = `\.+*()|[]`

	n := strings.IndexAny(s, special)
	if n < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:n])
	for i := n; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
