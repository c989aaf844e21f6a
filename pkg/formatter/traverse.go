package formatter

import "github.com/yaklabco/swiftfmt/pkg/token"

// SetRule makes name the current rule and resets directive state so that
// directives read by a previous rule do not leak into this one. The options
// the file started with are restored.
func (f *Formatter) SetRule(name string) {
	f.rule = name
	f.disabledCount = 0
	f.disabledNext = 0
	f.wasNextDirective = false
	f.ruleDisabled = false
	f.tempOptions = nil
	f.options = f.initialOptions.Clone()
}

// ForEach calls fn for every token where the current rule is enabled.
//
// fn may mutate the buffer. Tokens inserted at or before the visited index
// are not visited, and removing the visited token makes the walk continue
// with the token that takes its place. Calling ForEach again from inside fn
// panics.
func (f *Formatter) ForEach(fn func(index int, tok token.Token)) {
	if f.enumerating {
		panic("formatter: reentrant traversal")
	}
	f.enumerating = true
	f.cursor = 0
	defer func() {
		f.enumerating = false
	}()

	for f.cursor < len(f.tokens) {
		tok := f.tokens[f.cursor]
		switch tok.Kind {
		case token.CommentBody:
			f.processCommentBody(tok.Text, f.cursor)
		case token.Linebreak:
			f.processLinebreak()
		}
		if f.enabledAt(f.cursor) {
			fn(f.cursor, tok)
		}
		f.cursor++
	}
}

// ForEachToken calls fn for every enabled token accepted by match.
func (f *Formatter) ForEachToken(match func(token.Token) bool, fn func(index int, tok token.Token)) {
	f.ForEach(func(index int, tok token.Token) {
		if match(tok) {
			fn(index, tok)
		}
	})
}

// ForEachMatching calls fn for every enabled token equal to want.
func (f *Formatter) ForEachMatching(want token.Token, fn func(index int, tok token.Token)) {
	f.ForEachToken(want.Equal, fn)
}

// Enabled reports whether the current rule is enabled at the traversal
// cursor. Outside a traversal it reports the state left by the last one.
func (f *Formatter) Enabled() bool {
	return f.enabledAt(f.cursor)
}

func (f *Formatter) enabledAt(index int) bool {
	if f.rng != nil && !f.rng.Contains(index) {
		return false
	}
	return f.disabledCount+f.disabledNext <= 0 && !f.ruleDisabled
}
