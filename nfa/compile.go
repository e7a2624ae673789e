package nfa

import "errors"

// CompilerConfig configures regex compilation behavior
type CompilerConfig struct {
	// DotNewline determines whether '.' matches '\n'
	DotNewline bool

	// MaxRecursionDepth limits group nesting to prevent stack overflow
	// Default: 100
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		DotNewline:        false,
		MaxRecursionDepth: 100,
	}
}

// Compiler compiles patterns into fragment trees.
//
// The accepted dialect:
//
//	Alternation := Sequence ('|' Sequence)*
//	Sequence    := Repetition*            // stops at '|', ')' or end of pattern
//	Repetition  := Primary ('*' | '+')?
//	Primary     := '(' Alternation ')' | '.' | '[' class ']' | '\' char | char
//
// A bracket expression is handed verbatim to regexp/syntax. An empty
// sequence in front of '|' or ')' is the Null fragment; an empty sequence at
// the end of the pattern is an error.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	pattern []rune
	source  string
	pos     int
	depth   int
}

// NewCompiler creates a new compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxRecursionDepth == 0 {
		config.MaxRecursionDepth = 100
	}
	return &Compiler{config: config}
}

// NewDefaultCompiler creates a new compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile compiles a pattern with the default configuration.
func Compile(pattern string) (*NFA, error) {
	return NewDefaultCompiler().Compile(pattern)
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) *NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic("nfa: Compile(`" + pattern + "`): " + err.Error())
	}
	return n
}

// Compile compiles a pattern into an NFA.
// Either the whole pattern compiles or an error is returned; nothing partial
// is ever handed out.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	c.builder = NewBuilder()
	c.pattern = []rune(pattern)
	c.source = pattern
	c.pos = 0
	c.depth = 0

	root, err := c.parseAlternation()
	if err != nil {
		return nil, err
	}
	if c.pos < len(c.pattern) {
		// parseAlternation only stops early on ')'
		return nil, c.errorf(ErrUnexpectedParen)
	}

	n, err := c.builder.Build(root)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Pos: c.pos, Err: err}
	}
	n.pattern = pattern
	return n, nil
}

func (c *Compiler) errorf(err error) *CompileError {
	return &CompileError{Pattern: c.source, Pos: c.pos, Err: err}
}

func (c *Compiler) more() bool {
	return c.pos < len(c.pattern)
}

func (c *Compiler) peek() rune {
	return c.pattern[c.pos]
}

func (c *Compiler) parseAlternation() (Fragment, error) {
	first, err := c.parseSequence()
	if err != nil {
		return nil, err
	}
	if !c.more() || c.peek() != '|' {
		return first, nil
	}

	branches := []Fragment{first}
	for c.more() && c.peek() == '|' {
		c.pos++
		next, err := c.parseSequence()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	alt, err := c.builder.Alternation(branches...)
	if err != nil {
		return nil, c.errorf(err)
	}
	return alt, nil
}

func (c *Compiler) parseSequence() (Fragment, error) {
	var seq []Fragment
	for c.more() && c.peek() != '|' && c.peek() != ')' {
		f, err := c.parseRepetition()
		if err != nil {
			return nil, err
		}
		seq = append(seq, f)
	}

	switch len(seq) {
	case 0:
		// inside a group the missing ')' is reported by parseGroup
		if !c.more() && c.depth == 0 {
			return nil, c.errorf(ErrUnexpectedEnd)
		}
		return c.builder.Null(), nil
	case 1:
		return seq[0], nil
	}
	cat, err := c.builder.Concatenation(seq...)
	if err != nil {
		return nil, c.errorf(err)
	}
	return cat, nil
}

func (c *Compiler) parseRepetition() (Fragment, error) {
	f, err := c.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !c.more() {
		return f, nil
	}
	switch c.peek() {
	case '*':
		c.pos++
		return c.builder.Repetition(f, true), nil
	case '+':
		c.pos++
		return c.builder.Repetition(f, false), nil
	}
	return f, nil
}

func (c *Compiler) parsePrimary() (Fragment, error) {
	if !c.more() {
		return nil, c.errorf(ErrUnexpectedEnd)
	}

	switch ch := c.peek(); ch {
	case '(':
		return c.parseGroup()
	case '.':
		c.pos++
		return c.builder.Any(c.config.DotNewline), nil
	case '*', '+':
		return nil, c.errorf(ErrMissingOperand)
	case '\\':
		if c.pos+1 >= len(c.pattern) {
			return nil, c.errorf(ErrTrailingBackslash)
		}
		r := unescape(c.pattern[c.pos+1])
		c.pos += 2
		return c.builder.Char(r), nil
	case '[':
		if n := scanBracket(c.pattern, c.pos); n > 0 {
			class, err := bracketClass(string(c.pattern[c.pos : c.pos+n]))
			if err != nil {
				return nil, &CompileError{Pattern: c.source, Pos: c.pos, Err: errors.Join(ErrInvalidClass, err)}
			}
			c.pos += n
			return c.builder.Class(class), nil
		}
		c.pos++
		return c.builder.Char(ch), nil
	default:
		c.pos++
		return c.builder.Char(ch), nil
	}
}

func (c *Compiler) parseGroup() (Fragment, error) {
	open := c.pos
	c.depth++
	if c.depth > c.config.MaxRecursionDepth {
		return nil, c.errorf(ErrTooComplex)
	}
	c.pos++

	f, err := c.parseAlternation()
	if err != nil {
		return nil, err
	}
	if !c.more() || c.peek() != ')' {
		return nil, &CompileError{Pattern: c.source, Pos: open, Err: ErrMissingParen}
	}
	c.pos++
	c.depth--
	return f, nil
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	}
	return r
}
