package runner

import "github.com/yaklabco/swiftfmt/pkg/lint"

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	Path string

	// Result is nil when Error is set.
	Result *lint.PipelineResult

	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int

	// FilesSkipped counts files left unwritten because they changed on disk.
	FilesSkipped int

	FilesErrored int

	// FilesWithChanges counts files whose formatted output differs.
	FilesWithChanges int

	// FilesModified counts files written back to disk.
	FilesModified int

	ChangesTotal int

	// FormatErrors counts directive errors reported by the formatter.
	FormatErrors int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered as discovered (sorted by path).
	Files []FileOutcome
	Stats Stats
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{}
}

// HasChanges reports whether any file needs (or received) formatting.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesWithChanges > 0
}

// HasErrors reports whether any file failed or produced formatter errors.
func (r *Result) HasErrors() bool {
	return r != nil && (r.Stats.FilesErrored > 0 || r.Stats.FormatErrors > 0)
}

// Add appends an outcome and updates the statistics.
func (r *Result) Add(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Result.Written {
		r.Stats.FilesModified++
	}
	if outcome.Result.Modified {
		r.Stats.FilesWithChanges++
	}
	if outcome.Result.FileResult != nil {
		r.Stats.ChangesTotal += len(outcome.Result.Changes)
		r.Stats.FormatErrors += len(outcome.Result.Errors)
	}
}
