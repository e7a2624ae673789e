package peg

import "errors"

// Errors reported while building or running a grammar.
//
// An ordinary non-match is never an error; errors abort the whole match.
var (
	// ErrUnresolvedRule indicates a recursive reference used before its
	// target was set
	ErrUnresolvedRule = errors.New("peg: recursive reference used before it was resolved")

	// ErrUndefinedRule indicates a rule referenced but never defined
	ErrUndefinedRule = errors.New("peg: undefined rule")

	// ErrDuplicateRule indicates a rule defined twice
	ErrDuplicateRule = errors.New("peg: duplicate rule")

	// ErrNoKeywords indicates a keyword set without keywords
	ErrNoKeywords = errors.New("peg: empty keyword set")
)

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "peg: invalid config: " + e.Field + ": " + e.Message
}
