package rules

import "testing"

func TestSpaceInsideBracketsRule(t *testing.T) {
	runRuleCases(t, NewSpaceInsideBracketsRule(), []ruleCase{
		{name: "spaces removed", input: "[ 1, 2, 3 ]", want: "[1, 2, 3]", wantChanges: 2},
		{name: "already tight", input: "[1, 2]", want: "[1, 2]"},
		{name: "empty with space", input: "[ ]", want: "[]", wantChanges: 1},
		{name: "subscript", input: "foo[ 0 ]", want: "foo[0]", wantChanges: 2},
		{name: "multiline kept", input: "[\n    1,\n]", want: "[\n    1,\n]"},
		{name: "space before comment kept", input: "[ // items\n    1]", want: "[ // items\n    1]"},
		{name: "parens untouched", input: "( 1 )", want: "( 1 )"},
		{
			name:        "disabled by directive",
			input:       "// swiftformat:disable:next spaceInsideBrackets\nlet a = [ 1 ]\nlet b = [ 2 ]\n",
			want:        "// swiftformat:disable:next spaceInsideBrackets\nlet a = [ 1 ]\nlet b = [2]\n",
			wantChanges: 2,
		},
	})
}

func TestSpaceInsideParensRule(t *testing.T) {
	runRuleCases(t, NewSpaceInsideParensRule(), []ruleCase{
		{name: "call", input: "foo( a, b )", want: "foo(a, b)", wantChanges: 2},
		{name: "nested", input: "( ( x ) )", want: "((x))", wantChanges: 4},
		{name: "brackets untouched", input: "[ 1 ]", want: "[ 1 ]"},
		{name: "indented close kept", input: "foo(\n    a\n    )", want: "foo(\n    a\n    )"},
	})
}

func TestConsecutiveSpacesRule(t *testing.T) {
	runRuleCases(t, NewConsecutiveSpacesRule(), []ruleCase{
		{name: "collapsed", input: "let  a   =  1\n", want: "let a = 1\n", wantChanges: 3},
		{name: "indentation kept", input: "{\n        a\n}", want: "{\n        a\n}"},
		{name: "trailing kept", input: "a   \nb", want: "a   \nb"},
		{name: "before comment kept", input: "a    // note\n", want: "a    // note\n"},
		{name: "inside comment kept", input: "//    note\n", want: "//    note\n"},
		{name: "single tab kept", input: "a\tb", want: "a\tb"},
		{name: "string contents kept", input: `let s = "a    b"`, want: `let s = "a    b"`},
	})
}
