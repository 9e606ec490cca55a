package cli

import (
	"time"

	"github.com/dalemusser/programdesign/internal/app/system/export"
	"github.com/spf13/cobra"
)

// ExportCommand handles the export command
type ExportCommand struct {
	open Opener
	now  func() time.Time
}

// NewExportCommand creates a new export command
func NewExportCommand(open Opener) *cobra.Command {
	cmd := &ExportCommand{open: open, now: time.Now}

	cobraCmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Print a stored project as YAML or JSON",
		Example: `  programdesignctl export 6650f1c2a7d3e94b1c0a1234
  programdesignctl export 6650f1c2a7d3e94b1c0a1234 --format json > design.json`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("format", "f", export.FormatYAML, "Output format: yaml or json")

	return cobraCmd
}

// Run executes the export command
func (c *ExportCommand) Run(cmd *cobra.Command, args []string) error {
	rawFormat, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return err
	}

	p, err := loadProject(cmd, c.open, args[0])
	if err != nil {
		return err
	}

	b, err := export.Marshal(export.NewDocument(p, c.now()), format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}
