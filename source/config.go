// Package source provides the character input consumed by the matcher and
// the combinator engine.
//
// The central type is Input: a rune reader over any io.RuneReader that can
// take back everything it handed out since a recorded position. Pushback is
// stored in a Buffer whose capacity grows by doubling up to a hard limit;
// exceeding that limit is the only fatal condition of a match.
//
// Basic usage:
//
//	in := source.NewInput(strings.NewReader("abc"), source.DefaultConfig())
//	mark := in.Pos()
//	r, _, _ := in.ReadRune() // 'a'
//	if err := in.Rewind(mark); err != nil {
//	    // pushback limit exceeded
//	}
//
// Files can be read through Open, which memory-maps them where the platform
// allows it.
package source

const (
	// DefaultBufferSize is the initial pushback capacity in runes.
	DefaultBufferSize = 64

	// DefaultMaxBufferSize is the pushback capacity limit in runes.
	DefaultMaxBufferSize = 1024
)

// Config controls pushback buffering of an Input.
//
// Example:
//
//	config := source.DefaultConfig()
//	config.MaxBufferSize = 1 << 16 // allow deeper rollback
//	in := source.NewInput(r, config)
type Config struct {
	// BufferSize is the initial pushback capacity in runes.
	// Default: 64
	BufferSize int

	// MaxBufferSize caps the pushback capacity. Restoring more runes than
	// this at once fails with ErrBufferOverflow.
	// Default: 1024
	MaxBufferSize int

	// HistorySize bounds how many consumed runes are remembered for Rewind
	// and Text. Zero means MaxBufferSize, the furthest a Rewind can reach.
	// A positive value must not be below MaxBufferSize. Text held by
	// Input.Hold is kept regardless.
	// Default: 0 (MaxBufferSize)
	HistorySize int
}

// DefaultConfig returns a configuration with the default buffer sizes.
func DefaultConfig() Config {
	return Config{
		BufferSize:    DefaultBufferSize,
		MaxBufferSize: DefaultMaxBufferSize,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - BufferSize: 1 to MaxBufferSize
//   - MaxBufferSize: up to 16,777,216
//   - HistorySize: 0, or MaxBufferSize and above
func (c Config) Validate() error {
	if c.BufferSize < 1 {
		return &ConfigError{
			Field:   "BufferSize",
			Message: "must be at least 1",
		}
	}
	if c.MaxBufferSize < c.BufferSize {
		return &ConfigError{
			Field:   "MaxBufferSize",
			Message: "must not be below BufferSize",
		}
	}
	if c.MaxBufferSize > 1<<24 {
		return &ConfigError{
			Field:   "MaxBufferSize",
			Message: "must be at most 16,777,216",
		}
	}
	if c.HistorySize != 0 && c.HistorySize < c.MaxBufferSize {
		return &ConfigError{
			Field:   "HistorySize",
			Message: "must be 0 or at least MaxBufferSize",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "source: invalid config: " + e.Field + ": " + e.Message
}
