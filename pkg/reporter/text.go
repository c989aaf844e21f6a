package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/swiftfmt/internal/ui/pretty"
	"github.com/yaklabco/swiftfmt/pkg/runner"
)

// TextReporter writes one compiler-style line per change, so editors and CI
// annotators can jump to the affected line.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. The count is the number of change lines written.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No Swift files found."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error.Error()))
			continue
		}
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		for _, ferr := range file.Result.Errors {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, ferr.Message))
		}
		if file.Result.Skipped {
			fmt.Fprintf(r.bw, "%s: %s\n", r.styles.FilePath.Render(path),
				r.styles.Warning.Render(file.Result.Summary()))
		}

		if !r.opts.ShowChanges {
			continue
		}
		for _, change := range collapseChanges(file.Result.Changes) {
			fmt.Fprint(r.bw, r.styles.FormatChange(path, change.Line, r.opts.Severity, change.Rule,
				ruleHelp(r.opts.Registry, change.Rule)))
			total++
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, r.opts.Lint))
	}

	return total, nil
}
