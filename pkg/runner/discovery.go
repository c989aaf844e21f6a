package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/swiftfmt/pkg/langdetect"
)

// sniffSize is how much of an explicitly named file is read to detect its language.
const sniffSize = 4096

// Discover finds Swift files under opts.Paths. Directories are walked and
// filtered by extension; files named explicitly are accepted when their
// extension matches or their content is detected as Swift. The result is a
// sorted, de-duplicated list of absolute paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := CompileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	walker := &walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		excludes:   excludes,
		opts:       opts,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := walker.walk(absPath); err != nil {
				return nil, err
			}
			continue
		}
		if walker.acceptExplicit(absPath) {
			walker.add(absPath)
		}
	}

	slices.Sort(walker.files)
	return walker.files, nil
}

// CompileGlobs compiles exclude patterns with '/' as the separator.
func CompileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		compiled, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, compiled)
	}
	return globs, nil
}

// MatchAny reports whether relPath, or its base name, matches any glob.
// Directories are also tried with a trailing slash so "Pods/**" skips the
// Pods directory itself.
func MatchAny(globs []glob.Glob, relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)
	base := path.Base(relPath)
	for _, g := range globs {
		if g.Match(relPath) || g.Match(base) {
			return true
		}
		if isDir && g.Match(relPath+"/") {
			return true
		}
	}
	return false
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

type walker struct {
	ctx        context.Context
	workDir    string
	extensions []string
	excludes   []glob.Glob
	opts       Options
	seen       map[string]struct{}
	files      []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) rel(path string) string {
	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		rel := w.rel(path)

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(entry.Name(), ".") || MatchAny(w.excludes, rel, true) {
				return filepath.SkipDir
			}
			if !w.opts.IncludeVendored && langdetect.IsVendored(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(path)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, err := os.Stat(target)
			if err != nil {
				return nil //nolint:nilerr // Unreadable targets are skipped.
			}
			if info.IsDir() {
				if !w.opts.FollowSymlinks {
					return nil
				}
				return w.walk(target)
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if w.acceptWalked(path, rel) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

func (w *walker) acceptWalked(path, rel string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(w.extensions, ext) {
		return false
	}
	if MatchAny(w.excludes, rel, false) {
		return false
	}
	if !w.opts.IncludeVendored && (langdetect.IsVendored(rel) || langdetect.IsGenerated(rel, nil)) {
		return false
	}
	return true
}

// acceptExplicit applies the exclude globs to a file named on the command
// line and falls back to content detection for unknown extensions.
func (w *walker) acceptExplicit(path string) bool {
	if MatchAny(w.excludes, w.rel(path), false) {
		return false
	}
	if slices.Contains(w.extensions, strings.ToLower(filepath.Ext(path))) {
		return true
	}
	return langdetect.IsSwift(path, sniff(path))
}

func sniff(path string) []byte {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	buf := make([]byte, sniffSize)
	n, _ := file.Read(buf)
	return buf[:n]
}
