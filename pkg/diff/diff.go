// Package diff computes minimal line edit scripts and renders unified diffs.
package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// OpKind identifies an edit script step.
type OpKind int

const (
	// OpEqual keeps a line present in both sequences.
	OpEqual OpKind = iota

	// OpDelete removes a line from the original sequence.
	OpDelete

	// OpInsert adds a line from the modified sequence.
	OpInsert
)

// String returns a short name for the kind.
func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a single step of an edit script.
type Op struct {
	// Kind is the step type.
	Kind OpKind

	// OldIndex is the index into the original sequence (-1 for inserts).
	OldIndex int

	// NewIndex is the index into the modified sequence (-1 for deletes).
	NewIndex int
}

// Lines returns a minimal edit script turning orig into mod.
// Steps are in document order; within a changed region deletions come
// before insertions.
func Lines[T comparable](orig, mod []T) []Op {
	table := lcsTable(orig, mod)

	ops := make([]Op, 0, max(len(orig), len(mod)))
	row, col := 0, 0
	for row < len(orig) || col < len(mod) {
		switch {
		case row < len(orig) && col < len(mod) && orig[row] == mod[col]:
			ops = append(ops, Op{Kind: OpEqual, OldIndex: row, NewIndex: col})
			row++
			col++
		case row < len(orig) && (col >= len(mod) || table[row+1][col] >= table[row][col+1]):
			ops = append(ops, Op{Kind: OpDelete, OldIndex: row, NewIndex: -1})
			row++
		default:
			ops = append(ops, Op{Kind: OpInsert, OldIndex: -1, NewIndex: col})
			col++
		}
	}

	return ops
}

// lcsTable builds a suffix table where table[i][j] is the length of the
// longest common subsequence of orig[i:] and mod[j:].
func lcsTable[T comparable](orig, mod []T) [][]int {
	table := make([][]int, len(orig)+1)
	for idx := range table {
		table[idx] = make([]int, len(mod)+1)
	}

	for row := len(orig) - 1; row >= 0; row-- {
		for col := len(mod) - 1; col >= 0; col-- {
			if orig[row] == mod[col] {
				table[row][col] = table[row+1][col+1] + 1
			} else {
				table[row][col] = max(table[row+1][col], table[row][col+1])
			}
		}
	}

	return table
}

// Changed reports whether an edit script contains anything but equal steps.
func Changed(ops []Op) bool {
	for _, op := range ops {
		if op.Kind != OpEqual {
			return true
		}
	}
	return false
}

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// Unified renders a unified diff between two texts, or "" if they are equal.
func Unified(path, original, modified string) (string, error) {
	if original == modified {
		return "", nil
	}

	path = strings.TrimPrefix(path, "/")
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	})
	if err != nil {
		return "", fmt.Errorf("render diff for %s: %w", path, err)
	}
	return text, nil
}
