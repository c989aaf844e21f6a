package rules

import "testing"

func TestTrailingCommasRule(t *testing.T) {
	runRuleCases(t, NewTrailingCommasRule(), []ruleCase{
		{
			name:        "added to multiline array",
			input:       "let a = [\n    1,\n    2\n]\n",
			want:        "let a = [\n    1,\n    2,\n]\n",
			wantChanges: 1,
		},
		{name: "already present", input: "let a = [\n    1,\n]\n", want: "let a = [\n    1,\n]\n"},
		{
			name:        "removed when inline",
			input:       "[\n    1,\n    2,\n]",
			want:        "[\n    1,\n    2\n]",
			wantChanges: 1,
			args:        []string{"--commas", "inline"},
		},
		{name: "single line removed", input: "[1, 2,]", want: "[1, 2]", wantChanges: 1},
		{name: "single line untouched", input: "[1, 2]", want: "[1, 2]"},
		{name: "subscript", input: "foo[\n    0\n]", want: "foo[\n    0\n]"},
		{name: "empty array", input: "[\n]", want: "[\n]"},
		{name: "empty dictionary", input: "[:]", want: "[:]"},
		{
			name:        "dictionary",
			input:       "[\n    \"a\": 1\n]",
			want:        "[\n    \"a\": 1,\n]",
			wantChanges: 1,
		},
		{
			name:        "before trailing comment",
			input:       "[\n    1 // one\n]",
			want:        "[\n    1, // one\n]",
			wantChanges: 1,
		},
		{
			name:        "nested",
			input:       "[\n    [1, 2],\n    [3]\n]",
			want:        "[\n    [1, 2],\n    [3],\n]",
			wantChanges: 1,
		},
		{name: "type annotation", input: "let x: [Int] = []", want: "let x: [Int] = []"},
	})
}
