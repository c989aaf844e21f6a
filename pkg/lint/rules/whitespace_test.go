package rules

import "testing"

func TestTrailingSpaceRule(t *testing.T) {
	runRuleCases(t, NewTrailingSpaceRule(), []ruleCase{
		{name: "end of lines", input: "a  \nb \n", want: "a\nb\n", wantChanges: 2},
		{name: "blank line", input: "a\n  \nb", want: "a\n\nb", wantChanges: 1},
		{
			name:  "blank line kept for nonblank-lines",
			input: "a\n  \nb",
			want:  "a\n  \nb",
			args:  []string{"--trimwhitespace", "nonblank-lines"},
		},
		{
			name:        "nonblank-lines still trims code lines",
			input:       "a \n  \nb",
			want:        "a\n  \nb",
			wantChanges: 1,
			args:        []string{"--trimwhitespace", "nonblank-lines"},
		},
		{name: "after comment", input: "a // c  \n", want: "a // c\n", wantChanges: 1},
		{name: "end of file", input: "a  ", want: "a", wantChanges: 1},
		{name: "indentation kept", input: "  a\n", want: "  a\n"},
		{
			name:        "options directive",
			input:       "a \n// swiftformat:options --trimwhitespace nonblank-lines\n  \nb \n",
			want:        "a\n// swiftformat:options --trimwhitespace nonblank-lines\n  \nb\n",
			wantChanges: 2,
		},
	})
}

func TestConsecutiveBlankLinesRule(t *testing.T) {
	runRuleCases(t, NewConsecutiveBlankLinesRule(), []ruleCase{
		{name: "collapsed", input: "a\n\n\n\nb", want: "a\n\nb", wantChanges: 2},
		{name: "single blank kept", input: "a\n\nb", want: "a\n\nb"},
		{name: "blank lines with space", input: "a\n  \n \nb", want: "a\n  \nb", wantChanges: 1},
		{name: "inside braces", input: "{\n    a\n\n\n    b\n}", want: "{\n    a\n\n    b\n}", wantChanges: 1},
		{name: "multiline string kept", input: "let s = \"\"\"\n\n\n\n\"\"\"\n", want: "let s = \"\"\"\n\n\n\n\"\"\"\n"},
	})
}

func TestLinebreakAtEndOfFileRule(t *testing.T) {
	runRuleCases(t, NewLinebreakAtEndOfFileRule(), []ruleCase{
		{name: "missing", input: "a", want: "a\n", wantChanges: 1},
		{name: "present", input: "a\n", want: "a\n"},
		{name: "extra blank lines", input: "a\n\n\n", want: "a\n", wantChanges: 1},
		{name: "empty file", input: "", want: ""},
		{name: "only whitespace", input: "\n\n", want: "\n\n"},
		{name: "crlf", input: "a", want: "a\r\n", wantChanges: 1, args: []string{"--linebreaks", "crlf"}},
		{name: "disabled", input: "// swiftformat:disable linebreakAtEndOfFile\na", want: "// swiftformat:disable linebreakAtEndOfFile\na"},
		{name: "disable all", input: "// swiftformat:disable all\na", want: "// swiftformat:disable all\na"},
	})
}
