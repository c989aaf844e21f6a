package rules

import (
	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/token"
)

// SpaceInsideBracketsRule removes space just inside square brackets.
type SpaceInsideBracketsRule struct {
	lint.BaseRule
}

// NewSpaceInsideBracketsRule creates a new bracket spacing rule.
func NewSpaceInsideBracketsRule() *SpaceInsideBracketsRule {
	return &SpaceInsideBracketsRule{
		BaseRule: lint.NewBaseRule("spaceInsideBrackets", "Remove space inside square brackets."),
	}
}

// Apply removes the spaces.
func (r *SpaceInsideBracketsRule) Apply(f *formatter.Formatter) {
	removeSpaceInside(f, "[", "]")
}

// SpaceInsideParensRule removes space just inside parentheses.
type SpaceInsideParensRule struct {
	lint.BaseRule
}

// NewSpaceInsideParensRule creates a new parenthesis spacing rule.
func NewSpaceInsideParensRule() *SpaceInsideParensRule {
	return &SpaceInsideParensRule{
		BaseRule: lint.NewBaseRule("spaceInsideParens", "Remove space inside parentheses."),
	}
}

// Apply removes the spaces.
func (r *SpaceInsideParensRule) Apply(f *formatter.Formatter) {
	removeSpaceInside(f, "(", ")")
}

// removeSpaceInside deletes a space after open or before closing, unless the
// space separates the delimiter from a comment or is line indentation.
func removeSpaceInside(f *formatter.Formatter, open, closing string) {
	f.ForEach(func(index int, tok token.Token) {
		switch {
		case tok.Is(token.StartOfScope, open):
			next, ok := f.Token(index + 1)
			if !ok || !next.IsSpace() {
				return
			}
			if after, ok := f.Token(index + 2); !ok || after.IsLinebreak() || after.IsComment() {
				return
			}
			f.Remove(index + 1)

		case tok.Is(token.EndOfScope, closing):
			prev, ok := f.Token(index - 1)
			if !ok || !prev.IsSpace() {
				return
			}
			if before, ok := f.Token(index - 2); !ok || before.IsLinebreak() || before.IsComment() {
				return
			}
			f.Remove(index - 1)
		}
	})
}

// ConsecutiveSpacesRule collapses runs of spaces between tokens.
type ConsecutiveSpacesRule struct {
	lint.BaseRule
}

// NewConsecutiveSpacesRule creates a new consecutive spaces rule.
func NewConsecutiveSpacesRule() *ConsecutiveSpacesRule {
	return &ConsecutiveSpacesRule{
		BaseRule: lint.NewBaseRule("consecutiveSpaces", "Replace consecutive spaces with a single space."),
	}
}

// Apply collapses the spaces. Indentation, trailing space and space next to
// comments are left alone.
func (r *ConsecutiveSpacesRule) Apply(f *formatter.Formatter) {
	f.ForEachToken(token.Token.IsSpace, func(index int, tok token.Token) {
		if len(tok.Text) < 2 {
			return
		}
		prev, ok := f.Token(index - 1)
		if !ok || prev.IsLinebreak() || prev.IsComment() {
			return
		}
		next, ok := f.Token(index + 1)
		if !ok || next.IsLinebreak() || next.IsComment() {
			return
		}
		f.Replace(index, token.NewSpace(" "))
	})
}
