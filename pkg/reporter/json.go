package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/swiftfmt/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string       `json:"path"`
	Changes  []JSONChange `json:"changes"`
	Errors   []string     `json:"errors,omitempty"`
	Modified bool         `json:"modified"`
	Written  bool         `json:"written,omitempty"`
	Skipped  string       `json:"skipped,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// JSONChange represents one reported change.
type JSONChange struct {
	Line     int    `json:"line"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Help     string `json:"help,omitempty"`
	Move     bool   `json:"move,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked     int `json:"filesChecked"`
	FilesWithChanges int `json:"filesWithChanges"`
	FilesModified    int `json:"filesModified"`
	FilesErrored     int `json:"filesErrored"`
	TotalChanges     int `json:"totalChanges"`
	TotalErrors      int `json:"totalErrors"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. The count is the number of changes reported.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalChanges, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:    displayPath(file.Path, r.opts.WorkingDir),
			Changes: make([]JSONChange, 0),
		}

		switch {
		case file.Error != nil:
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		case file.Result != nil && file.Result.FileResult != nil:
			fileResult.Modified = file.Result.Modified
			fileResult.Written = file.Result.Written
			if file.Result.Skipped {
				fileResult.Skipped = file.Result.SkipReason
			}

			for _, change := range collapseChanges(file.Result.Changes) {
				fileResult.Changes = append(fileResult.Changes, JSONChange{
					Line:     change.Line,
					Rule:     change.Rule,
					Severity: string(r.opts.Severity),
					Help:     ruleHelp(r.opts.Registry, change.Rule),
					Move:     change.IsMove,
				})
			}
			for _, ferr := range file.Result.Errors {
				fileResult.Errors = append(fileResult.Errors, ferr.Message)
			}

			output.Summary.TotalChanges += len(fileResult.Changes)
			output.Summary.TotalErrors += len(fileResult.Errors)
			if fileResult.Modified {
				output.Summary.FilesWithChanges++
			}
			if fileResult.Written {
				output.Summary.FilesModified++
			}
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
