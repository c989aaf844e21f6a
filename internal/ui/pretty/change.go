package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

// FormatChange renders one change in the compiler-style line format
// "<path>:<line>:1: <severity>: (<rule>) <help>". Newlines in help become
// spaces so every change stays on one line.
func (s *Styles) FormatChange(path string, line int, severity config.Severity, rule, help string) string {
	help = strings.ReplaceAll(help, "\n", " ")
	return fmt.Sprintf("%s%s %s %s %s\n",
		s.FilePath.Render(path),
		s.Location.Render(fmt.Sprintf(":%d:1:", line)),
		s.FormatSeverity(severity)+":",
		s.RuleName.Render("("+rule+")"),
		s.Message.Render(help),
	)
}

// FormatFileError renders an error for a whole file as "<path>: error: <message>".
func (s *Styles) FormatFileError(path, message string) string {
	return fmt.Sprintf("%s: %s %s\n",
		s.FilePath.Render(path),
		s.Error.Render("error:"),
		s.Message.Render(message),
	)
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return string(sev)
	}
}
