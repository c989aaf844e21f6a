package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/swiftfmt/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 5 files require formatting (7 changes), 1 error".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, lintMode bool) string {
	checked := s.Dim.Render(fmt.Sprintf("(%d %s checked)", stats.FilesProcessed,
		plural(stats.FilesProcessed, wordFile, wordFiles)))

	var parts []string
	switch {
	case stats.FilesWithChanges == 0:
		parts = append(parts, s.Success.Render("No changes needed")+" "+checked)
	case lintMode:
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d of %d %s require formatting",
			stats.FilesWithChanges, stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))+
			s.Dim.Render(fmt.Sprintf(" (%d %s)", stats.ChangesTotal, plural(stats.ChangesTotal, "change", "changes"))))
	default:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d of %d %s formatted",
			stats.FilesModified, stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))+
			s.Dim.Render(fmt.Sprintf(" (%d %s)", stats.ChangesTotal, plural(stats.ChangesTotal, "change", "changes"))))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if errs := stats.FilesErrored + stats.FormatErrors; errs > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", errs, plural(errs, "error", "errors"))))
	}

	return strings.Join(parts, ", ") + "\n"
}
