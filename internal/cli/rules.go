package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dalemusser/programdesign/internal/app/system/polarity"
	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules command
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the polarity triggers in the order they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tTRIGGER\tREPLACEMENT")
			for i, r := range polarity.Rules() {
				repl := r.Replacement
				if repl == "" {
					repl = "(removed)"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, r.Trigger, repl)
			}
			return tw.Flush()
		},
	}
}
