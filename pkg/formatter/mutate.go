package formatter

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/yaklabco/swiftfmt/pkg/token"
)

// Replace replaces the token at index with toks.
// It returns the change in buffer length.
func (f *Formatter) Replace(index int, toks ...token.Token) int {
	f.checkIndex(index)
	return f.ReplaceRange(index, index+1, toks...)
}

// ReplaceRange replaces tokens in [start, end) with toks, overwriting
// position by position and then inserting or removing the remainder.
// Positions whose text is unchanged are not recorded as changes.
// It returns the change in buffer length.
func (f *Formatter) ReplaceRange(start, end int, toks ...token.Token) int {
	f.checkSpan(start, end)

	common := min(end-start, len(toks))
	for offset := range common {
		f.replaceToken(start+offset, toks[offset], trackEdit)
	}

	switch {
	case end-start > common:
		f.removeTokens(start+common, end, trackEdit)
	case len(toks) > common:
		f.insertTokens(start+common, toks[common:], trackEdit)
	}

	return len(toks) - (end - start)
}

// Insert inserts toks before index. index may equal Len to append.
func (f *Formatter) Insert(index int, toks ...token.Token) {
	if index < 0 || index > len(f.tokens) {
		panic(fmt.Sprintf("formatter: insert index %d out of range [0:%d]", index, len(f.tokens)))
	}
	f.insertTokens(index, toks, trackEdit)
}

// Remove removes the token at index.
func (f *Formatter) Remove(index int) {
	f.checkIndex(index)
	f.removeTokens(index, index+1, trackEdit)
}

// RemoveRange removes tokens in [start, end).
func (f *Formatter) RemoveRange(start, end int) {
	f.checkSpan(start, end)
	f.removeTokens(start, end, trackEdit)
}

// RemoveRanges removes several disjoint spans. The spans may be given in any
// order; they are removed from the highest start down so that earlier
// indices stay valid. Overlapping non-empty spans panic.
func (f *Formatter) RemoveRanges(spans []Span) {
	for _, span := range spans {
		f.checkSpan(span.Start, span.End)
	}
	// Empty spans remove nothing and never overlap.
	sorted := slices.DeleteFunc(slices.Clone(spans), func(span Span) bool { return span.Len() == 0 })
	slices.SortFunc(sorted, func(a, b Span) int { return cmp.Compare(a.Start, b.Start) })

	for idx, span := range sorted {
		if idx > 0 && span.Start < sorted[idx-1].End {
			panic(fmt.Sprintf("formatter: overlapping ranges [%d:%d] and [%d:%d]",
				sorted[idx-1].Start, sorted[idx-1].End, span.Start, span.End))
		}
	}

	for _, span := range slices.Backward(sorted) {
		f.removeTokens(span.Start, span.End, trackEdit)
	}
}

// RemoveLast removes the final token.
func (f *Formatter) RemoveLast() {
	if len(f.tokens) == 0 {
		panic("formatter: RemoveLast on empty buffer")
	}
	f.removeTokens(len(f.tokens)-1, len(f.tokens), trackEdit)
}

// MoveRange moves tokens in [start, end) so that they are inserted before
// the token that was at index to. A destination inside the range leaves the
// buffer unchanged. The move is recorded as a single change.
// It returns the index the moved tokens now start at.
func (f *Formatter) MoveRange(start, end, to int) int {
	f.checkSpan(start, end)
	if to < 0 || to > len(f.tokens) {
		panic(fmt.Sprintf("formatter: move destination %d out of range [0:%d]", to, len(f.tokens)))
	}
	if start == end || (to >= start && to <= end) {
		return start
	}

	moved := slices.Clone(f.tokens[start:end])
	line := f.OriginalLine(start)

	f.removeTokens(start, end, trackNone)
	if to > end {
		to -= end - start
	}
	f.insertTokens(to, moved, trackNone)

	if f.trackChanges && token.Join(moved) != "" {
		f.changes = append(f.changes, Change{Line: line, Rule: f.rule, FilePath: f.filePath, IsMove: true})
	}
	return to
}

// replaceToken overwrites one token. The token is always stored so that
// metadata such as linebreak line numbers is refreshed, but only a change of
// text is recorded.
func (f *Formatter) replaceToken(index int, tok token.Token, mode trackMode) {
	if f.tokens[index].Text != tok.Text {
		f.recordChange(index, mode)
	}
	f.tokens[index] = tok
}

func (f *Formatter) insertTokens(index int, toks []token.Token, mode trackMode) {
	count := len(toks)
	if count == 0 {
		return
	}
	if token.Join(toks) != "" {
		f.recordChange(index, mode)
	}

	f.tokens = slices.Insert(f.tokens, index, toks...)

	f.updateRefs(index, count)
	if f.rng != nil {
		if index < f.rng.Start {
			f.rng.Start += count
		}
		if index <= f.rng.End {
			f.rng.End += count
		}
	}
	if f.enumerating && index <= f.cursor {
		f.cursor += count
	}
}

func (f *Formatter) removeTokens(start, end int, mode trackMode) {
	count := end - start
	if count == 0 {
		return
	}
	if token.Join(f.tokens[start:end]) != "" {
		f.recordChange(start, mode)
	}

	f.tokens = slices.Delete(f.tokens, start, end)

	f.updateRefs(start, -count)
	if f.rng != nil {
		f.rng.Start = shiftRemoved(f.rng.Start, start, end)
		f.rng.End = shiftRemoved(f.rng.End, start, end)
	}
	if f.enumerating {
		switch {
		case f.cursor >= end:
			f.cursor -= count
		case f.cursor >= start:
			// The visited token is gone; the next step lands on whatever
			// slid into start.
			f.cursor = start - 1
		}
	}
}

// shiftRemoved maps a boundary position across the removal of [start, end).
func shiftRemoved(pos, start, end int) int {
	switch {
	case pos >= end:
		return pos - (end - start)
	case pos > start:
		return start
	default:
		return pos
	}
}
