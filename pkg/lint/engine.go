package lint

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/token"
	"github.com/yaklabco/swiftfmt/pkg/tokenize"
)

// DefaultMaxPasses is the maximum number of times the rule set is applied to
// one file. Rules that keep undoing each other stop here.
const DefaultMaxPasses = 10

// FileResult contains the results of formatting a single file.
type FileResult struct {
	// Path is the file path reported in changes.
	Path string

	// Tokens is the formatted token sequence.
	Tokens []token.Token

	// Output is the formatted source text.
	Output string

	// Changes lists every change made, in the order rules made them.
	Changes []formatter.Change

	// Errors lists directive errors. Each one disabled the rule that hit it
	// for the rest of the file.
	Errors []formatter.Error

	// Passes is the number of times the rule set ran.
	Passes int

	// Converged is false when the last pass still changed the tokens.
	Converged bool
}

// HasChanges returns true if any rule changed the file.
func (fr *FileResult) HasChanges() bool {
	return len(fr.Changes) > 0
}

// HasErrors returns true if any directive errors were recorded.
func (fr *FileResult) HasErrors() bool {
	return len(fr.Errors) > 0
}

// Engine coordinates tokenizing and rule execution.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry

	// Logger receives rule-run diagnostics. Defaults to a discarding logger.
	Logger *log.Logger

	// MaxPasses limits how often the rule set is repeated. Zero means
	// DefaultMaxPasses.
	MaxPasses int
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{
		Registry: registry,
		Logger:   log.New(io.Discard),
	}
}

// FormatSource tokenizes content and formats it.
func (e *Engine) FormatSource(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	return e.FormatTokens(ctx, path, tokenize.Tokenize(string(content)), cfg)
}

// FormatTokens runs every resolved rule over tokens, repeating the rule set
// until the output is stable or MaxPasses is reached.
func (e *Engine) FormatTokens(
	ctx context.Context,
	path string,
	tokens []token.Token,
	cfg *config.Config,
) (*FileResult, error) {
	opts, err := cfg.FormatOptions()
	if err != nil {
		return nil, fmt.Errorf("resolve options: %w", err)
	}

	maxPasses := e.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	resolved := ResolveRules(e.Registry, cfg)
	result := &FileResult{Path: path}
	seenErrors := make(map[string]struct{})

	for range maxPasses {
		fmtr := formatter.New(tokens,
			formatter.WithOptions(opts),
			formatter.WithFilePath(path),
			formatter.WithChangeTracking(true),
			formatter.WithLogger(e.logger()),
		)

		for _, rule := range resolved {
			// Check for cancellation.
			select {
			case <-ctx.Done():
				return result, fmt.Errorf("formatting cancelled: %w", ctx.Err())
			default:
			}

			fmtr.SetRule(rule.Name())
			rule.Apply(fmtr)
		}

		result.Passes++
		result.Changes = append(result.Changes, fmtr.Changes()...)
		for _, ferr := range fmtr.Errors() {
			if _, dup := seenErrors[ferr.Message]; dup {
				continue
			}
			seenErrors[ferr.Message] = struct{}{}
			result.Errors = append(result.Errors, ferr)
		}

		next := fmtr.Tokens()
		if slices.EqualFunc(next, tokens, token.Token.Equal) {
			result.Converged = true
			break
		}
		tokens = next
	}

	if !result.Converged {
		e.logger().Warn("rules did not converge", "path", path, "passes", result.Passes)
	}
	e.logger().Debug("formatted file",
		"path", path,
		"rules", len(resolved),
		"passes", result.Passes,
		"changes", len(result.Changes),
	)

	result.Tokens = tokens
	result.Output = token.Join(tokens)
	return result, nil
}

func (e *Engine) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}
