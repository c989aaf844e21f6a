package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/swiftfmt/internal/ui/pretty"
	"github.com/yaklabco/swiftfmt/pkg/runner"
)

// DiffReporter writes the unified diff of every file whose output differs.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. The count is the number of files with a diff.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var files, additions, deletions int
	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error.Error()))
			continue
		}
		if file.Result == nil || file.Result.Diff == "" {
			continue
		}

		files++
		fmt.Fprintln(r.bw, r.styles.DiffHeader.Render(fmt.Sprintf("diff --git a/%s b/%s", path, path)))
		fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("--- a/"+path))
		fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+++ b/"+path))

		inHeader := true
		for _, line := range strings.Split(strings.TrimSuffix(file.Result.Diff, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "@@"):
				inHeader = false
				fmt.Fprintln(r.bw, r.styles.DiffHunk.Render(line))
			case inHeader:
				// The ---/+++ lines are replaced by the headers above.
			case strings.HasPrefix(line, "+"):
				additions++
				fmt.Fprintln(r.bw, r.styles.DiffAdd.Render(line))
			case strings.HasPrefix(line, "-"):
				deletions++
				fmt.Fprintln(r.bw, r.styles.DiffRemove.Render(line))
			default:
				fmt.Fprintln(r.bw, r.styles.DiffContext.Render(line))
			}
		}
		fmt.Fprintln(r.bw)
	}

	if files > 0 && r.opts.ShowSummary {
		r.writeSummary(files, additions, deletions)
	}

	return files, nil
}

// writeSummary writes a git-style "N files changed" line.
func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{fmt.Sprintf("%d %s changed", files, plural(files, "file", "files"))}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))))
	}
	fmt.Fprintln(r.bw, strings.Join(parts, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
