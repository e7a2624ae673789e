package cli

import (
	"github.com/spf13/cobra"
)

// explainCmd returns the explain sub-command.
func explainCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain PATTERN",
		Short: "Print the automaton fragment tree of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := o.compile(args[0])
			if err != nil {
				return err
			}
			o.logger.Debug("compiled", "pattern", args[0], "states", re.NFA().States())
			return re.Explain(cmd.OutOrStdout())
		},
	}
}
