package formatter

import (
	"strings"

	"github.com/yaklabco/swiftfmt/pkg/diff"
	"github.com/yaklabco/swiftfmt/pkg/token"
)

// ReplaceLines replaces tokens in [start, end) with toks, editing line by
// line so that unchanged lines stay in place. A line removed in one place and
// inserted unchanged in another is recorded as a move. Each inserted or
// removed line is one change. It returns the change in buffer length.
func (f *Formatter) ReplaceLines(start, end int, toks []token.Token) int {
	f.checkSpan(start, end)

	oldLines := token.Lines(f.tokens[start:end])
	for idx, line := range oldLines {
		oldLines[idx] = append([]token.Token(nil), line...)
	}
	newLines := token.Lines(toks)

	oldKeys, newKeys := lineKeys(oldLines), lineKeys(newLines)
	ops := diff.Lines(oldKeys, newKeys)
	moves := pairMoves(ops, oldKeys, newKeys)

	pos := start
	for idx, op := range ops {
		mode := trackEdit
		if moves[idx] {
			mode = trackMove
		}
		switch op.Kind {
		case diff.OpEqual:
			pos += len(oldLines[op.OldIndex])
		case diff.OpDelete:
			line := oldLines[op.OldIndex]
			f.removeTokens(pos, pos+len(line), mode)
		case diff.OpInsert:
			line := newLines[op.NewIndex]
			f.insertTokens(pos, line, mode)
			pos += len(line)
		}
	}

	return len(toks) - (end - start)
}

// lineKeys returns a comparable key per line covering token kinds and text.
func lineKeys(lines [][]token.Token) []string {
	keys := make([]string, len(lines))
	var builder strings.Builder
	for idx, line := range lines {
		builder.Reset()
		for _, tok := range line {
			builder.WriteByte(byte(tok.Kind))
			builder.WriteString(tok.Text)
			builder.WriteByte(0)
		}
		keys[idx] = builder.String()
	}
	return keys
}

// pairMoves marks delete and insert steps whose lines are identical. Each
// removed line pairs with at most one inserted line, in document order.
func pairMoves(ops []diff.Op, oldKeys, newKeys []string) []bool {
	moves := make([]bool, len(ops))
	pending := make(map[string][]int)

	for idx, op := range ops {
		if op.Kind == diff.OpDelete {
			key := oldKeys[op.OldIndex]
			pending[key] = append(pending[key], idx)
		}
	}
	for idx, op := range ops {
		if op.Kind != diff.OpInsert {
			continue
		}
		key := newKeys[op.NewIndex]
		if deletes := pending[key]; len(deletes) > 0 {
			moves[deletes[0]] = true
			moves[idx] = true
			pending[key] = deletes[1:]
		}
	}
	return moves
}
