package formatter

import "github.com/yaklabco/swiftfmt/pkg/token"

// IndexAfter returns the index of the first token after index that satisfies
// match at the same nesting level as index, or -1.
//
// Tokens inside nested scopes are skipped. Reaching the end of the scope that
// encloses index stops the search, unless the closing token itself matches.
// A linebreak that ends a line comment may match when it returns the search
// to the starting level. Conditional compilation blocks are not scopes for
// switch labels: a case or default directly inside an open #if is skipped,
// and #endif discards anything left open since its #if.
func (f *Formatter) IndexAfter(index int, match func(token.Token) bool) int {
	var stack []token.Token
	for i := max(index+1, 0); i < len(f.tokens); i++ {
		tok := f.tokens[i]

		if len(stack) > 0 && token.ClosesScope(stack[len(stack)-1], tok) {
			popped := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch {
			case popped.Text == ":" && tok.Text == "}" && len(stack) > 0:
				// A closing brace also ends the switch body around the case.
				if token.ClosesScope(stack[len(stack)-1], tok) {
					stack = stack[:len(stack)-1]
				}
				continue
			case popped.Text == ":" && tok.Text == "}":
				// The brace closes the scope the search started in.
			default:
				if tok.IsLinebreak() && len(stack) == 0 && match(tok) {
					return i
				}
				continue
			}
		}

		if len(stack) == 0 && match(tok) {
			return i
		}

		switch tok.Kind {
		case token.EndOfScope:
			if tok.Text == "#endif" {
				if open := lastIndexOf(stack, "#if"); open >= 0 {
					stack = stack[:open]
					continue
				}
			}
			if tok.IsSwitchCaseOrDefault() && len(stack) > 0 && stack[len(stack)-1].Text == "#if" {
				continue
			}
			if len(stack) == 0 {
				return -1
			}
		case token.StartOfScope:
			stack = append(stack, tok)
		}
	}
	return -1
}

// IndexBefore returns the index of the last token before index that
// satisfies match at the same nesting level as index, or -1.
//
// Walking backward, a line comment start that is followed by a linebreak
// already crossed is a complete trailing comment and is skipped; otherwise it
// bounds the search like any other scope start. Switch labels and case body
// colons inside nested scopes are transparent.
func (f *Formatter) IndexBefore(index int, match func(token.Token) bool) int {
	var stack []token.Token
	index = min(index, len(f.tokens))
	linebreakCrossed := index >= 0 && index < len(f.tokens) && f.tokens[index].IsLinebreak()

	for i := index - 1; i >= 0; i-- {
		tok := f.tokens[i]

		switch {
		case tok.IsStartOfScope():
			if len(stack) > 0 {
				if tok.Text == ":" {
					continue
				}
				if tok.Text == "#if" {
					if open := lastIndexOf(stack, "#endif"); open >= 0 {
						stack = stack[:open]
						continue
					}
				}
				if token.ClosesScope(tok, stack[len(stack)-1]) {
					stack = stack[:len(stack)-1]
				}
				continue
			}
			if tok.Text == "//" && linebreakCrossed {
				linebreakCrossed = false
				continue
			}
			if match(tok) {
				return i
			}
			return -1

		case tok.IsSwitchCaseOrDefault():
			if len(stack) == 0 && match(tok) {
				return i
			}

		case tok.IsEndOfScope():
			if len(stack) == 0 && match(tok) {
				return i
			}
			stack = append(stack, tok)

		default:
			if tok.IsLinebreak() {
				linebreakCrossed = true
			}
			if len(stack) == 0 && match(tok) {
				return i
			}
		}
	}
	return -1
}

func lastIndexOf(stack []token.Token, text string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Text == text {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first token equal to tok after index at
// the same nesting level, or -1.
func (f *Formatter) IndexOf(tok token.Token, after int) int {
	return f.IndexAfter(after, tok.Equal)
}

// LastIndexOf returns the index of the last token equal to tok before index
// at the same nesting level, or -1.
func (f *Formatter) LastIndexOf(tok token.Token, before int) int {
	return f.IndexBefore(before, tok.Equal)
}

// IndexOfKind returns the index of the first token of kind after index that
// also satisfies where (if non-nil), or -1.
func (f *Formatter) IndexOfKind(kind token.Kind, after int, where func(token.Token) bool) int {
	return f.IndexAfter(after, kindMatcher(kind, where))
}

// LastIndexOfKind is the backward form of IndexOfKind.
func (f *Formatter) LastIndexOfKind(kind token.Kind, before int, where func(token.Token) bool) int {
	return f.IndexBefore(before, kindMatcher(kind, where))
}

func kindMatcher(kind token.Kind, where func(token.Token) bool) func(token.Token) bool {
	return func(tok token.Token) bool {
		return tok.Kind == kind && (where == nil || where(tok))
	}
}

// NextToken returns the index of the first token after index for which skip
// is false, or -1.
func (f *Formatter) NextToken(after int, skip func(token.Token) bool) int {
	return f.IndexAfter(after, func(tok token.Token) bool { return !skip(tok) })
}

// LastToken returns the index of the last token before index for which skip
// is false, or -1.
func (f *Formatter) LastToken(before int, skip func(token.Token) bool) int {
	return f.IndexBefore(before, func(tok token.Token) bool { return !skip(tok) })
}

// NextNonSpace returns the index of the next token that is not a space.
func (f *Formatter) NextNonSpace(after int) int {
	return f.NextToken(after, token.Token.IsSpace)
}

// NextNonSpaceOrLinebreak returns the index of the next token that is not whitespace.
func (f *Formatter) NextNonSpaceOrLinebreak(after int) int {
	return f.NextToken(after, token.Token.IsSpaceOrLinebreak)
}

// NextNonSpaceOrCommentOrLinebreak returns the index of the next significant token.
func (f *Formatter) NextNonSpaceOrCommentOrLinebreak(after int) int {
	return f.NextToken(after, token.Token.IsSpaceOrCommentOrLinebreak)
}

// LastNonSpace returns the index of the previous token that is not a space.
func (f *Formatter) LastNonSpace(before int) int {
	return f.LastToken(before, token.Token.IsSpace)
}

// LastNonSpaceOrLinebreak returns the index of the previous token that is not whitespace.
func (f *Formatter) LastNonSpaceOrLinebreak(before int) int {
	return f.LastToken(before, token.Token.IsSpaceOrLinebreak)
}

// LastNonSpaceOrCommentOrLinebreak returns the index of the previous significant token.
func (f *Formatter) LastNonSpaceOrCommentOrLinebreak(before int) int {
	return f.LastToken(before, token.Token.IsSpaceOrCommentOrLinebreak)
}

// EndOfScope returns the index of the token that closes the scope opened at
// index, or, if index is not a scope start, the end of the scope that
// encloses it. The end of a switch body is its closing brace, not the first
// case label. It returns -1 if the scope is never closed.
func (f *Formatter) EndOfScope(index int) int {
	start, ok := f.Token(index)
	if !ok {
		return -1
	}
	if !start.IsStartOfScope() {
		return f.IndexAfter(index, token.Token.IsEndOfScope)
	}

	end := f.IndexAfter(index, func(tok token.Token) bool {
		return token.ClosesScope(start, tok) || (start.Text == "{" && tok.IsSwitchCaseOrDefault())
	})
	for end >= 0 && start.Text == "{" && f.tokens[end].IsSwitchCaseOrDefault() {
		colon := f.IndexAfter(end, func(tok token.Token) bool {
			return tok.Is(token.StartOfScope, ":")
		})
		if colon < 0 {
			return -1
		}
		body := f.tokens[colon]
		end = f.IndexAfter(colon, func(tok token.Token) bool {
			return token.ClosesScope(body, tok)
		})
	}
	return end
}

// StartOfScope returns the index of the token that opens the scope
// enclosing index, or -1 at top level.
func (f *Formatter) StartOfScope(index int) int {
	return f.IndexBefore(index, token.Token.IsStartOfScope)
}

// StartOfLine returns the index of the first token on the line containing index.
func (f *Formatter) StartOfLine(index int) int {
	for i := min(index, len(f.tokens)) - 1; i >= 0; i-- {
		if f.tokens[i].IsLinebreak() {
			return i + 1
		}
	}
	return 0
}

// EndOfLine returns the index of the linebreak that ends the line containing
// index, or Len if the line is the last and unterminated.
func (f *Formatter) EndOfLine(index int) int {
	for i := max(index, 0); i < len(f.tokens); i++ {
		if f.tokens[i].IsLinebreak() {
			return i
		}
	}
	return len(f.tokens)
}
