package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd returns the check sub-command.
func checkCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check PATTERN...",
		Short: "Report whether each pattern compiles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			invalid := 0
			for _, pattern := range args {
				if _, err := o.compile(pattern); err != nil {
					invalid++
					fmt.Fprintf(out, "error\t%q\t%v\n", pattern, err)
					continue
				}
				fmt.Fprintf(out, "ok\t%q\n", pattern)
			}
			if invalid > 0 {
				o.logger.Info("check failed", "invalid", invalid, "total", len(args))
				return ErrInvalidPattern
			}
			return nil
		},
	}
}
