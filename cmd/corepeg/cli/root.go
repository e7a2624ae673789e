// Package cli implements the corepeg command line.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coregx/corepeg"
	"github.com/coregx/corepeg/source"
)

var (
	// ErrNoMatch is returned when at least one input did not match
	ErrNoMatch = errors.New("no match")

	// ErrInvalidPattern is returned when at least one pattern did not compile
	ErrInvalidPattern = errors.New("invalid pattern")
)

type options struct {
	bufferSize    int
	maxBufferSize int
	dotNewline    bool
	verbose       bool

	logger *slog.Logger
}

func (o *options) config() corepeg.Config {
	config := corepeg.DefaultConfig()
	config.Compiler.DotNewline = o.dotNewline
	config.Buffer.BufferSize = o.bufferSize
	config.Buffer.MaxBufferSize = o.maxBufferSize
	return config
}

func (o *options) compile(pattern string) (*corepeg.Regex, error) {
	return corepeg.CompileWithConfig(pattern, o.config())
}

func addConfigFlags(fs *pflag.FlagSet, o *options) {
	fs.IntVar(&o.bufferSize, "buffer-size", source.DefaultBufferSize, "initial pushback buffer size in characters")
	fs.IntVar(&o.maxBufferSize, "max-buffer-size", source.DefaultMaxBufferSize, "maximum pushback buffer size in characters")
	fs.BoolVar(&o.dotNewline, "dot-newline", false, "let '.' match a newline")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information to stderr")
}

// newLogger returns a tint handler on w, colored when w is a terminal.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !color,
	}))
}

// Main returns the root command.
func Main() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:           "corepeg",
		Short:         "Compile and run corepeg patterns",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			o.logger = newLogger(cmd.ErrOrStderr(), o.verbose)
			return o.config().Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}
	addConfigFlags(rootCmd.PersistentFlags(), o)

	rootCmd.AddCommand(matchCmd(o))
	rootCmd.AddCommand(explainCmd(o))
	rootCmd.AddCommand(checkCmd(o))

	return rootCmd
}
