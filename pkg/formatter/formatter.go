// Package formatter implements the token buffer that formatting rules inspect
// and rewrite.
//
// A Formatter owns one file's token sequence for the duration of a run. Rules
// walk it with ForEach and its variants, query it with the scope-aware search
// functions, and edit it only through the mutation primitives, which keep the
// traversal cursor, the formatting range, auto-updating references and the
// change log consistent. Directive comments ("// swiftformat:disable foo")
// are interpreted during traversal and decide where the current rule runs.
package formatter

import (
	"fmt"
	"io"
	"slices"
	"weak"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/token"
)

// Span is a half-open token index interval [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of indices in the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether index lies inside the span.
func (s Span) Contains(index int) bool { return index >= s.Start && index < s.End }

// Option configures a Formatter.
type Option func(*Formatter)

// WithOptions sets the formatting options the file starts with.
func WithOptions(opts config.FormatOptions) Option {
	return func(f *Formatter) {
		f.options = opts.Clone()
	}
}

// WithFilePath sets the path reported in changes.
func WithFilePath(path string) Option {
	return func(f *Formatter) {
		f.filePath = path
	}
}

// WithChangeTracking enables recording of Change records.
func WithChangeTracking(enabled bool) Option {
	return func(f *Formatter) {
		f.trackChanges = enabled
	}
}

// WithRange restricts rule application to tokens in [start, end).
// The bounds are clamped to the token sequence.
func WithRange(start, end int) Option {
	return func(f *Formatter) {
		start = min(max(start, 0), len(f.tokens))
		end = min(max(end, start), len(f.tokens))
		f.rng = &Span{Start: start, End: end}
	}
}

// WithLogger sets the logger used for directive diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Formatter is a mutable token buffer for one file.
// It is not safe for concurrent use.
type Formatter struct {
	tokens []token.Token

	options        config.FormatOptions
	initialOptions config.FormatOptions
	filePath       string
	trackChanges   bool
	rng            *Span
	logger         *log.Logger

	// Traversal state. cursor is only meaningful while enumerating.
	enumerating bool
	cursor      int
	rule        string

	// Directive state for the current rule.
	disabledCount    int
	disabledNext     int
	wasNextDirective bool
	ruleDisabled     bool
	tempOptions      *config.FormatOptions

	changes   []Change
	errors    []Error
	errorSeen map[string]struct{}

	refs []weak.Pointer[Ref]
}

// New returns a Formatter owning a copy of tokens.
func New(tokens []token.Token, opts ...Option) *Formatter {
	f := &Formatter{
		tokens:    slices.Clone(tokens),
		options:   config.DefaultFormatOptions(),
		logger:    log.New(io.Discard),
		errorSeen: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.initialOptions = f.options.Clone()
	return f
}

// Tokens returns a copy of the current token sequence.
func (f *Formatter) Tokens() []token.Token {
	return slices.Clone(f.tokens)
}

// Len returns the number of tokens.
func (f *Formatter) Len() int { return len(f.tokens) }

// Token returns the token at index, or false if index is out of range.
func (f *Formatter) Token(index int) (token.Token, bool) {
	if index < 0 || index >= len(f.tokens) {
		return token.Token{}, false
	}
	return f.tokens[index], true
}

// Last returns the final token, or false if the buffer is empty.
func (f *Formatter) Last() (token.Token, bool) {
	return f.Token(len(f.tokens) - 1)
}

// Options returns the active formatting options.
func (f *Formatter) Options() config.FormatOptions { return f.options }

// SetOptions replaces the active formatting options.
func (f *Formatter) SetOptions(opts config.FormatOptions) { f.options = opts.Clone() }

// Range returns the formatting range, if one is set.
func (f *Formatter) Range() (Span, bool) {
	if f.rng == nil {
		return Span{}, false
	}
	return *f.rng, true
}

// FilePath returns the path of the file being formatted.
func (f *Formatter) FilePath() string { return f.filePath }

// Rule returns the name of the rule currently running.
func (f *Formatter) Rule() string { return f.rule }

// Changes returns the recorded changes in the order they were made.
func (f *Formatter) Changes() []Change { return slices.Clone(f.changes) }

// Errors returns the recorded errors in the order they were found.
func (f *Formatter) Errors() []Error { return slices.Clone(f.errors) }

// String returns the source text of the buffer.
func (f *Formatter) String() string { return token.Join(f.tokens) }

// LinebreakToken returns a linebreak in the configured style, attributed to
// the original line of index.
func (f *Formatter) LinebreakToken(index int) token.Token {
	return token.NewLinebreak(f.options.Linebreak, f.OriginalLine(index))
}

// OriginalLine returns the input-file line number of index: one past the
// line recorded by the nearest preceding linebreak, or 1.
func (f *Formatter) OriginalLine(index int) int {
	for i := min(index, len(f.tokens)) - 1; i >= 0; i-- {
		if f.tokens[i].IsLinebreak() {
			return f.tokens[i].Line + 1
		}
	}
	return 1
}

func (f *Formatter) checkIndex(index int) {
	if index < 0 || index >= len(f.tokens) {
		panic(fmt.Sprintf("formatter: index %d out of range [0:%d]", index, len(f.tokens)))
	}
}

func (f *Formatter) checkSpan(start, end int) {
	if start < 0 || end < start || end > len(f.tokens) {
		panic(fmt.Sprintf("formatter: range [%d:%d] out of range [0:%d]", start, end, len(f.tokens)))
	}
}
