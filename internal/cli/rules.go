package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/swiftfmt/internal/ui/pretty"
	"github.com/yaklabco/swiftfmt/pkg/lint"
)

// defaultTableWidth is used when the output is not a terminal.
const defaultTableWidth = 100

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name           string `json:"name"`
	Help           string `json:"help"`
	DefaultEnabled bool   `json:"defaultEnabled"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available formatting rules",
		Long: `List all formatting rules with their help text and whether they run
by default. Opt-in rules are switched on with --enable or rules.enable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := lint.DefaultRegistry.Rules()

			switch format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			case "", "text":
			default:
				return fmt.Errorf("%w: unknown format %q", ErrInvalidUsage, format)
			}

			rows := make([]pretty.RuleRow, 0, len(rules))
			for _, rule := range rules {
				rows = append(rows, pretty.RuleRow{
					Name:    rule.Name(),
					Enabled: rule.DefaultEnabled(),
					Help:    rule.Help(),
				})
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

			_, err = io.WriteString(out, styles.FormatRulesTable(rows, terminalWidth(out)))
			if err != nil {
				return fmt.Errorf("write rules: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			Name:           rule.Name(),
			Help:           rule.Help(),
			DefaultEnabled: rule.DefaultEnabled(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return defaultTableWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultTableWidth
	}
	return width
}
