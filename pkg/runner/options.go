// Package runner formats many files concurrently.
// It discovers Swift sources under the given paths, runs each through a
// lint.Pipeline and aggregates the outcomes in a deterministic order.
package runner

import "github.com/yaklabco/swiftfmt/pkg/config"

// Options controls file discovery and processing.
type Options struct {
	// Paths are the files or directories to process. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors ExcludeGlobs.
	// Defaults to the process working directory.
	WorkingDir string

	// Extensions are the lowercase extensions, with leading dot, that mark
	// a file as Swift during directory walks. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files and directories. Patterns use '/'
	// as separator; "**" crosses directories and a pattern without '/'
	// also matches the base name.
	ExcludeGlobs []string

	// IncludeVendored formats files under dependency directories (Pods/,
	// Carthage/, ...) and generated files, which are skipped by default.
	IncludeVendored bool

	// FollowSymlinks walks symlinked directories.
	FollowSymlinks bool

	// Jobs limits concurrent files; 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for the run.
	Config *config.Config
}

// DefaultExtensions returns the extensions of Swift source files.
func DefaultExtensions() []string {
	return []string{".swift"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
