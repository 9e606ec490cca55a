package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/spf13/cobra"
)

// ProgressCommand handles the progress command
type ProgressCommand struct {
	open Opener
}

// NewProgressCommand creates a new progress command
func NewProgressCommand(open Opener) *cobra.Command {
	cmd := &ProgressCommand{open: open}

	cobraCmd := &cobra.Command{
		Use:   "progress <project-id>",
		Short: "Show which wizard steps a stored project has completed",
		Args:  cobra.ExactArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().Bool("json", false, "Print the progress report as JSON")

	return cobraCmd
}

// Run executes the progress command
func (c *ProgressCommand) Run(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	p, err := loadProject(cmd, c.open, args[0])
	if err != nil {
		return err
	}
	prog := wizard.EvaluateProject(p)
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(prog)
	}

	fmt.Fprintf(out, "%s: step %d of %d, %d complete (%d%%)\n\n",
		p.Name, prog.CurrentStep, wizard.LastStep, prog.Completed, prog.Percent)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tTITLE\tCOMPLETE\tREACHABLE")
	for _, s := range prog.Steps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Title, yesNo(s.Complete), yesNo(s.Reachable))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
