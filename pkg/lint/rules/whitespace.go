package rules

import (
	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/token"
)

// TrailingSpaceRule removes space at the end of lines.
type TrailingSpaceRule struct {
	lint.BaseRule
}

// NewTrailingSpaceRule creates a new trailing space rule.
func NewTrailingSpaceRule() *TrailingSpaceRule {
	return &TrailingSpaceRule{
		BaseRule: lint.NewBaseRule("trailingSpace", "Remove trailing space at end of a line."),
	}
}

// Apply removes trailing space. With trimwhitespace set to "nonblank-lines",
// lines holding nothing but space keep it.
func (r *TrailingSpaceRule) Apply(f *formatter.Formatter) {
	f.ForEachToken(token.Token.IsSpace, func(index int, _ token.Token) {
		if next, ok := f.Token(index + 1); ok && !next.IsLinebreak() {
			return
		}
		if f.Options().TrimWhitespace == "nonblank-lines" {
			if prev, ok := f.Token(index - 1); !ok || prev.IsLinebreak() {
				return
			}
		}
		f.Remove(index)
	})
}

// ConsecutiveBlankLinesRule collapses runs of blank lines.
type ConsecutiveBlankLinesRule struct {
	lint.BaseRule
}

// NewConsecutiveBlankLinesRule creates a new blank line rule.
func NewConsecutiveBlankLinesRule() *ConsecutiveBlankLinesRule {
	return &ConsecutiveBlankLinesRule{
		BaseRule: lint.NewBaseRule("consecutiveBlankLines", "Replace consecutive blank lines with a single blank line."),
	}
}

// Apply removes every blank line that follows another blank line.
// Multiline string contents are preserved.
func (r *ConsecutiveBlankLinesRule) Apply(f *formatter.Formatter) {
	f.ForEachToken(token.Token.IsLinebreak, func(index int, _ token.Token) {
		prev := previousBlankLinebreak(f, index)
		if prev < 0 || previousBlankLinebreak(f, prev) < 0 {
			return
		}
		if inMultilineString(f, index) {
			return
		}
		f.RemoveRange(prev+1, index+1)
	})
}

// previousBlankLinebreak returns the linebreak before index when only space
// separates the two, or -1.
func previousBlankLinebreak(f *formatter.Formatter, index int) int {
	for i := index - 1; i >= 0; i-- {
		tok, _ := f.Token(i)
		switch {
		case tok.IsLinebreak():
			return i
		case !tok.IsSpace():
			return -1
		}
	}
	return -1
}

func inMultilineString(f *formatter.Formatter, index int) bool {
	tok, ok := f.Token(f.StartOfScope(index))
	return ok && tok.Is(token.StartOfScope, `"""`)
}

// LinebreakAtEndOfFileRule makes files end with exactly one linebreak.
type LinebreakAtEndOfFileRule struct {
	lint.BaseRule
}

// NewLinebreakAtEndOfFileRule creates a new end of file rule.
func NewLinebreakAtEndOfFileRule() *LinebreakAtEndOfFileRule {
	return &LinebreakAtEndOfFileRule{
		BaseRule: lint.NewBaseRule("linebreakAtEndOfFile", "Add empty blank line at end of file."),
	}
}

// Apply adds a missing final linebreak and drops blank lines after it.
// Files that are empty or all whitespace are left alone.
func (r *LinebreakAtEndOfFileRule) Apply(f *formatter.Formatter) {
	// Read directives up to the end of the file.
	f.ForEach(func(int, token.Token) {})
	if !f.Enabled() {
		return
	}

	end := f.Len()
	for end > 0 {
		tok, _ := f.Token(end - 1)
		if !tok.IsSpaceOrLinebreak() {
			break
		}
		end--
	}
	if end == 0 {
		return
	}

	for i := end; i < f.Len(); i++ {
		if tok, _ := f.Token(i); tok.IsLinebreak() {
			if i+1 < f.Len() {
				f.RemoveRange(i+1, f.Len())
			}
			return
		}
	}
	f.Insert(f.Len(), f.LinebreakToken(f.Len()))
}
