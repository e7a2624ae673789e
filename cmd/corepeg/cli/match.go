package cli

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coregx/corepeg"
	"github.com/coregx/corepeg/source"
)

type matchResult struct {
	name   string
	length int
	ok     bool
}

// matchCmd returns the match sub-command.
func matchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN [FILE...]",
		Short: "Match the pattern against the start of each file",
		Long: `Match runs the pattern over the beginning of every FILE, or of standard
input when no file is given, and prints the length in characters of the
accepted prefix. Files are matched concurrently; results are printed in
argument order. The exit status is 1 if any input does not match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := o.compile(args[0])
			if err != nil {
				return err
			}

			var results []matchResult
			if len(args) == 1 {
				res, err := matchReader(re, "-", bufio.NewReader(cmd.InOrStdin()))
				if err != nil {
					return err
				}
				results = []matchResult{res}
			} else {
				results, err = matchFiles(o, re, args[1:])
				if err != nil {
					return err
				}
			}
			return report(cmd.OutOrStdout(), results)
		},
	}
}

func matchFiles(o *options, re *corepeg.Regex, names []string) ([]matchResult, error) {
	results := make([]matchResult, len(names))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		eg.Go(func() error {
			f, err := source.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := matchReader(re, name, f)
			if err != nil {
				return err
			}
			o.logger.Debug("matched", "file", name, "bytes", f.Size(), "length", res.length, "ok", res.ok)
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func matchReader(re *corepeg.Regex, name string, r io.RuneReader) (matchResult, error) {
	prefix, ok, _, err := re.MatchReader(r)
	if err != nil {
		return matchResult{}, fmt.Errorf("%s: %w", name, err)
	}
	return matchResult{name: name, length: utf8.RuneCountInString(prefix), ok: ok}, nil
}

func report(w io.Writer, results []matchResult) error {
	failed := false
	for _, res := range results {
		var err error
		if res.ok {
			_, err = fmt.Fprintf(w, "%s\t%d\n", res.name, res.length)
		} else {
			failed = true
			_, err = fmt.Fprintf(w, "%s\tno match\n", res.name)
		}
		if err != nil {
			return err
		}
	}
	if failed {
		return ErrNoMatch
	}
	return nil
}
