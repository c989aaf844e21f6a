package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	defaultTermWidth = 100
	tablePadding     = 2
	minHelpWidth     = 20
	ellipsis         = "…"
)

// RuleRow is one line of the rules table.
type RuleRow struct {
	Name    string
	Enabled bool
	Help    string
}

// FormatRulesTable renders rules as a three column table (name, default
// state, help), truncating help to fit termWidth.
func (s *Styles) FormatRulesTable(rows []RuleRow, termWidth int) string {
	if len(rows) == 0 {
		return ""
	}
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}

	nameWidth := len("RULE")
	for _, row := range rows {
		nameWidth = max(nameWidth, utf8.RuneCountInString(row.Name))
	}
	const stateWidth = len("DEFAULT")
	helpWidth := max(minHelpWidth, termWidth-nameWidth-stateWidth-2*tablePadding)
	gap := strings.Repeat(" ", tablePadding)

	var builder strings.Builder
	builder.WriteString(s.TableHeader.Render(fmt.Sprintf("%-*s%s%-*s%s%s",
		nameWidth, "RULE", gap, stateWidth, "DEFAULT", gap, "HELP")))
	builder.WriteString("\n")
	builder.WriteString(s.TableBorder.Render(strings.Repeat("-", nameWidth+stateWidth+helpWidth+2*tablePadding)))
	builder.WriteString("\n")

	for _, row := range rows {
		state := "off"
		style := s.Dim
		if row.Enabled {
			state = "on"
			style = s.Success
		}
		help := truncate(strings.ReplaceAll(row.Help, "\n", " "), helpWidth)
		builder.WriteString(fmt.Sprintf("%-*s%s%s%s%s\n",
			nameWidth, row.Name,
			gap, style.Render(fmt.Sprintf("%-*s", stateWidth, state)),
			gap, help))
	}

	return builder.String()
}

func truncate(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	runes := []rune(text)
	return string(runes[:width-1]) + ellipsis
}
