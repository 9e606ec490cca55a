package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dalemusser/programdesign/internal/app/system/polarity"
	"github.com/spf13/cobra"
)

// TransformCommand handles the transform command
type TransformCommand struct{}

type transformLine struct {
	Text        string `json:"text"`
	Transformed string `json:"transformed"`
}

// NewTransformCommand creates a new transform command
func NewTransformCommand() *cobra.Command {
	cmd := &TransformCommand{}

	cobraCmd := &cobra.Command{
		Use:   "transform [text...]",
		Short: "Rewrite problem statements into objective phrasing",
		Long: `Applies the polarity rules to each argument, or to each line of stdin
when no arguments are given. Output keeps the input order, one result per line.`,
		Example: `  programdesignctl transform "Low crop yields" "Lack of clean water"
  cat causes.txt | programdesignctl transform --json`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("json", false, "Print input/output pairs as JSON")

	return cobraCmd
}

// Run executes the transform command
func (c *TransformCommand) Run(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	texts := args
	if len(texts) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		texts = lines
	}

	out := cmd.OutOrStdout()
	results := polarity.TransformAll(texts)

	if asJSON {
		pairs := make([]transformLine, len(texts))
		for i := range texts {
			pairs[i] = transformLine{Text: texts[i], Transformed: results[i]}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(pairs)
	}

	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	return nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
