package formatter_test

import (
	"slices"
	"testing"

	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/token"
	"github.com/yaklabco/swiftfmt/pkg/tokenize"
)

func TestForEach_InsertAfterCursor(t *testing.T) {
	t.Parallel()

	f := formatter.New(idents("a", "b", "c"))

	var visited []string
	f.ForEach(func(index int, tok token.Token) {
		visited = append(visited, tok.Text)
		if tok.Kind == token.Identifier {
			f.Insert(index+1, token.NewOperator("+"))
		}
	})

	if want := []string{"a", "+", "b", "+", "c", "+"}; !slices.Equal(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}

func TestForEach_CursorConsistency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(f *formatter.Formatter, index int, tok token.Token)
		want   []string
	}{
		{
			name: "insert before cursor",
			mutate: func(f *formatter.Formatter, index int, tok token.Token) {
				if tok.Text == "b" {
					f.Insert(0, idents("x", "y")...)
				}
			},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "insert at cursor",
			mutate: func(f *formatter.Formatter, index int, tok token.Token) {
				if tok.Text == "b" {
					f.Insert(index, idents("x")...)
				}
			},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "remove visited token",
			mutate: func(f *formatter.Formatter, index int, tok token.Token) {
				if tok.Text == "b" {
					f.Remove(index)
				}
			},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "remove first token while visiting it",
			mutate: func(f *formatter.Formatter, index int, tok token.Token) {
				if tok.Text == "a" {
					f.Remove(index)
				}
			},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "remove tokens before cursor",
			mutate: func(f *formatter.Formatter, index int, tok token.Token) {
				if tok.Text == "c" {
					f.RemoveRange(0, 2)
				}
			},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "replace visited token with two",
			mutate: func(f *formatter.Formatter, index int, tok token.Token) {
				if tok.Text == "b" {
					f.ReplaceRange(index, index+1, idents("b1", "b2")...)
				}
			},
			want: []string{"a", "b", "b2", "c", "d"},
		},
		{
			name: "remove tokens after cursor",
			mutate: func(f *formatter.Formatter, index int, tok token.Token) {
				if tok.Text == "a" {
					f.RemoveRange(index+1, index+3)
				}
			},
			want: []string{"a", "d"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := formatter.New(idents("a", "b", "c", "d"))

			var visited []string
			f.ForEach(func(index int, tok token.Token) {
				visited = append(visited, tok.Text)
				testCase.mutate(f, index, tok)
			})

			if !slices.Equal(visited, testCase.want) {
				t.Errorf("visited = %v, want %v", visited, testCase.want)
			}
		})
	}
}

func TestForEach_Reentrant(t *testing.T) {
	t.Parallel()

	f := formatter.New(idents("a"))
	assertPanics(t, "nested ForEach", func() {
		f.ForEach(func(int, token.Token) {
			f.ForEach(func(int, token.Token) {})
		})
	})

	// A traversal that panicked must not leave the buffer locked.
	count := 0
	f.ForEach(func(int, token.Token) { count++ })
	if count != 1 {
		t.Errorf("visited %d tokens after recovered panic, want 1", count)
	}
}

func TestForEachMatching(t *testing.T) {
	t.Parallel()

	f := formatter.New(tokenize.Tokenize("a, b, c"))

	var indices []int
	f.ForEachMatching(token.NewDelimiter(","), func(index int, _ token.Token) {
		indices = append(indices, index)
	})

	if want := []int{1, 4}; !slices.Equal(indices, want) {
		t.Errorf("indices = %v, want %v", indices, want)
	}
}

func TestForEach_Range(t *testing.T) {
	t.Parallel()

	f := formatter.New(idents("a", "b", "c", "d", "e"), formatter.WithRange(1, 3))

	var visited []string
	f.ForEach(func(index int, tok token.Token) {
		visited = append(visited, tok.Text)
		if tok.Text == "b" {
			f.Insert(index+1, idents("x")...)
		}
	})

	if want := []string{"b", "x", "c"}; !slices.Equal(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
	if span, ok := f.Range(); !ok || span != (formatter.Span{Start: 1, End: 4}) {
		t.Errorf("Range() = %+v, %v", span, ok)
	}
}

func TestRange_Shifts(t *testing.T) {
	t.Parallel()

	f := formatter.New(idents("a", "b", "c", "d", "e", "f"), formatter.WithRange(2, 4))

	f.Insert(0, idents("x")...)
	if span, _ := f.Range(); span != (formatter.Span{Start: 3, End: 5}) {
		t.Errorf("after insert before: %+v", span)
	}

	f.RemoveRange(2, 4)
	if span, _ := f.Range(); span != (formatter.Span{Start: 2, End: 3}) {
		t.Errorf("after overlapping removal: %+v", span)
	}

	f.Remove(4)
	if span, _ := f.Range(); span != (formatter.Span{Start: 2, End: 3}) {
		t.Errorf("after removal past end: %+v", span)
	}
}

// bracketSpaceRule removes spaces just inside square brackets.
func bracketSpaceRule(f *formatter.Formatter) {
	f.ForEach(func(index int, tok token.Token) {
		switch {
		case tok.Is(token.StartOfScope, "["):
			if next, ok := f.Token(index + 1); ok && next.IsSpace() {
				f.Remove(index + 1)
			}
		case tok.Is(token.EndOfScope, "]"):
			if prev, ok := f.Token(index - 1); ok && prev.IsSpace() {
				f.Remove(index - 1)
			}
		}
	})
}

func TestBracketInteriorSpace(t *testing.T) {
	t.Parallel()

	f := formatter.New(tokenize.Tokenize("[ 1, 2, 3 ]"), formatter.WithChangeTracking(true))
	f.SetRule("spaceInsideBrackets")
	bracketSpaceRule(f)

	if got := f.String(); got != "[1, 2, 3]" {
		t.Errorf("output = %q, want %q", got, "[1, 2, 3]")
	}
	if n := len(f.Changes()); n != 2 {
		t.Errorf("changes = %d, want 2", n)
	}
}
