package rules

import (
	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/token"
)

// SemicolonsRule removes semicolons that end statements.
type SemicolonsRule struct {
	lint.BaseRule
}

// NewSemicolonsRule creates a new semicolons rule.
func NewSemicolonsRule() *SemicolonsRule {
	return &SemicolonsRule{
		BaseRule: lint.NewBaseRule("semicolons", "Remove semicolons."),
	}
}

// Apply removes semicolons at the end of a line or before a closing brace.
// With semicolons set to "never", semicolons between statements on one line
// are replaced by a linebreak and the line's indentation.
func (r *SemicolonsRule) Apply(f *formatter.Formatter) {
	f.ForEachMatching(token.NewDelimiter(";"), func(index int, _ token.Token) {
		if !inStatementScope(f, index) {
			return
		}

		next, ok := f.Token(f.NextToken(index, token.Token.IsSpaceOrComment))
		if !ok || next.IsLinebreak() || next.Is(token.EndOfScope, "}") {
			f.Remove(index)
			return
		}

		if f.Options().Semicolons != "never" {
			return
		}

		end := index + 1
		if tok, ok := f.Token(end); ok && tok.IsSpace() {
			end++
		}
		replacement := []token.Token{f.LinebreakToken(index)}
		if indent, ok := f.Token(f.StartOfLine(index)); ok && indent.IsSpace() {
			replacement = append(replacement, indent)
		}
		f.ReplaceRange(index, end, replacement...)
	})
}

// inStatementScope reports whether index is at top level, in a brace block
// or in a switch case body.
func inStatementScope(f *formatter.Formatter, index int) bool {
	start := f.StartOfScope(index)
	if start < 0 {
		return true
	}
	tok, _ := f.Token(start)
	return tok.Text == "{" || tok.Text == ":"
}
