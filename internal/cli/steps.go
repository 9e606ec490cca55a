package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/spf13/cobra"
)

// NewStepsCommand creates the steps command
func NewStepsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the wizard steps and what completes each one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STEP\tTITLE\tSECTION\tCOMPLETE WHEN")
			for _, s := range wizard.Steps() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Title, s.Section, s.Requirement)
			}
			return tw.Flush()
		},
	}
}
