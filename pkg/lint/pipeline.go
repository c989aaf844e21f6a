package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/diff"
	"github.com/yaklabco/swiftfmt/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	*FileResult

	// OriginalInfo is the file state before processing (nil for in-memory content).
	OriginalInfo *fsutil.FileInfo

	// Original is the source text before formatting.
	Original string

	// Modified is true if formatting changed the text.
	Modified bool

	// Diff is the unified diff for dry runs and diff output.
	Diff string

	// Skipped is true if the file was not written (e.g., concurrent modification).
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// Written is true if the file was written to disk.
	Written bool

	// BackedUp is true if a sidecar backup of the original was created.
	BackedUp bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written:
		return "formatted"
	case pr.Modified:
		return "changes pending"
	default:
		return "ok"
	}
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Write saves formatted output back to the file.
	Write bool

	// Diff computes a unified diff for modified files.
	Diff bool

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// Backup keeps a copy of the original next to each rewritten file.
	Backup bool
}

// PipelineOptionsFromConfig derives PipelineOptions from a Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	opts := PipelineOptions{Write: true, StrictRaceDetection: true}
	if cfg == nil {
		return opts
	}
	opts.Write = !cfg.Lint && !cfg.DryRun
	opts.Diff = cfg.DryRun || cfg.Format == config.FormatDiff
	opts.Backup = cfg.Backup
	return opts
}

// Pipeline reads, formats and optionally writes a single file.
type Pipeline struct {
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the pipeline for a file on disk.
//
// The pipeline performs the following steps:
//  1. Read and hash the original file.
//  2. Format the content.
//  3. Generate a diff (if requested).
//  4. Check for concurrent modifications.
//  5. Back up the original (if requested).
//  6. Write the formatted content atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.process(ctx, path, content, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || !opts.Write {
		return result, nil
	}

	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, err
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup {
		result.BackedUp, err = fsutil.CreateBackup(ctx, info, content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(result.Output), info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent formats in-memory content without file I/O.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	return p.process(ctx, path, content, cfg, opts)
}

func (p *Pipeline) process(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	fileResult, err := p.Engine.FormatSource(ctx, path, content, cfg)
	if err != nil {
		return nil, err
	}

	result := &PipelineResult{
		FileResult: fileResult,
		Original:   string(content),
		Modified:   fileResult.Output != string(content),
	}

	if result.Modified && opts.Diff {
		result.Diff, err = diff.Unified(path, result.Original, fileResult.Output)
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", path, err)
		}
	}

	return result, nil
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}
