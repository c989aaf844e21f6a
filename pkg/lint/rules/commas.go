package rules

import (
	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/token"
)

// TrailingCommasRule manages the comma after the last element of a
// collection literal.
type TrailingCommasRule struct {
	lint.BaseRule
}

// NewTrailingCommasRule creates a new trailing comma rule.
func NewTrailingCommasRule() *TrailingCommasRule {
	return &TrailingCommasRule{
		BaseRule: lint.NewBaseRule("trailingCommas", "Add or remove trailing comma from the last item in a collection literal."),
	}
}

// Apply adds a trailing comma to multiline collection literals when commas
// is "always" and removes it when commas is "inline". Single-line literals
// never keep a trailing comma.
func (r *TrailingCommasRule) Apply(f *formatter.Formatter) {
	f.ForEachMatching(token.NewEndOfScope("]"), func(index int, _ token.Token) {
		open := f.StartOfScope(index)
		if tok, ok := f.Token(open); !ok || !tok.Is(token.StartOfScope, "[") || !isCollectionLiteral(f, open) {
			return
		}

		last := f.LastNonSpaceOrCommentOrLinebreak(index)
		lastTok, ok := f.Token(last)
		if !ok || last <= open || lastTok.Is(token.Delimiter, ":") {
			// Empty array or dictionary.
			return
		}

		hasComma := lastTok.Is(token.Delimiter, ",")
		wantComma := f.Options().Commas == "always" && spansLines(f, last, index)

		switch {
		case hasComma && !wantComma:
			f.Remove(last)
		case !hasComma && wantComma:
			f.Insert(last+1, token.NewDelimiter(","))
		}
	})
}

// isCollectionLiteral reports whether the bracket at open starts a literal
// rather than a subscript.
func isCollectionLiteral(f *formatter.Formatter, open int) bool {
	prev, ok := f.Token(f.LastNonSpaceOrCommentOrLinebreak(open))
	if !ok {
		return true
	}
	switch prev.Kind {
	case token.Identifier, token.Number, token.StringBody:
		return false
	case token.Keyword:
		return prev.Text != "self" && prev.Text != "Self" && prev.Text != "super"
	case token.EndOfScope:
		// A closing bracket, paren or quote means a subscript; a switch
		// label does not.
		return prev.IsSwitchCaseOrDefault()
	case token.Operator:
		// Postfix ? and ! as in dict?[key].
		return prev.Text != "?" && prev.Text != "!"
	default:
		return true
	}
}

// spansLines reports whether a linebreak lies between from and to.
func spansLines(f *formatter.Formatter, from, to int) bool {
	for i := from + 1; i < to; i++ {
		if tok, _ := f.Token(i); tok.IsLinebreak() {
			return true
		}
	}
	return false
}
