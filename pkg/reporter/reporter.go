// Package reporter renders formatting results as text, JSON, SARIF or unified
// diffs.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of items reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.Severity == "" {
		opts.Severity = defaults.Severity
	}
	if opts.Registry == nil {
		opts.Registry = defaults.Registry
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// collapseChanges orders changes by line then rule and keeps one change per
// (line, rule) pair.
func collapseChanges(changes []formatter.Change) []formatter.Change {
	sorted := slices.Clone(changes)
	slices.SortStableFunc(sorted, func(a, b formatter.Change) int {
		if a.Line != b.Line {
			return a.Line - b.Line
		}
		return strings.Compare(a.Rule, b.Rule)
	})
	return slices.CompactFunc(sorted, func(a, b formatter.Change) bool {
		return a.Line == b.Line && a.Rule == b.Rule
	})
}

// ruleHelp returns the help text of a rule, or "" if it is not registered.
func ruleHelp(registry *lint.Registry, name string) string {
	if registry == nil {
		return ""
	}
	if rule, _, ok := registry.Resolve(name); ok {
		return rule.Help()
	}
	return ""
}

// displayPath makes path relative to workDir when that does not climb out of it.
func displayPath(path, workDir string) string {
	if workDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
