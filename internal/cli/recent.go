package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dalemusser/programdesign/internal/app/store/audit"
	"github.com/spf13/cobra"
)

const maxRecent = 1000

// RecentCommand handles the recent command
type RecentCommand struct {
	open Opener
}

// NewRecentCommand creates a new recent command
func NewRecentCommand(open Opener) *cobra.Command {
	cmd := &RecentCommand{open: open}

	cobraCmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent project events across all planners",
		Long: `Prints the newest audit events first. Events are only recorded when the
service runs with audit_log_projects set to "all" or "db".`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Int64P("limit", "n", 20, "Number of events to show")
	cobraCmd.Flags().Bool("json", false, "Print events as JSON")

	return cobraCmd
}

// Run executes the recent command
func (c *RecentCommand) Run(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt64("limit")
	asJSON, _ := cmd.Flags().GetBool("json")
	if limit < 1 || limit > maxRecent {
		return fmt.Errorf("--limit must be between 1 and %d", maxRecent)
	}

	var events []audit.Event
	err := withSource(cmd, c.open, func(ctx context.Context, src Source) error {
		var err error
		events, err = src.GetRecent(ctx, limit)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(events)
	}
	if len(events) == 0 {
		fmt.Fprintln(out, "No events recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tEVENT\tPROJECT\tDETAILS")
	for _, e := range events {
		project := "-"
		if e.ProjectID != nil {
			project = e.ProjectID.Hex()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.Timestamp.UTC().Format(time.RFC3339), e.EventType, project, formatDetails(e.Details))
	}
	return tw.Flush()
}

// formatDetails renders details as sorted key=value pairs.
func formatDetails(d map[string]string) string {
	if len(d) == 0 {
		return ""
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + d[k]
	}
	return strings.Join(parts, " ")
}
