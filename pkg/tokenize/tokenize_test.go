package tokenize_test

import (
	"testing"

	"github.com/yaklabco/swiftfmt/pkg/token"
	"github.com/yaklabco/swiftfmt/pkg/tokenize"
)

func TestTokenize_RoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"",
		"let a = 1\n",
		"[ 1, 2, 3 ]",
		"// swiftformat:disable foo\nlet a = 1\n",
		"/* block\n comment */ let x = \"str\"\r\n",
		"switch x {\ncase 1:\n    break\ndefault:\n    break\n}\n",
		"#if DEBUG\nprint(\"debug\")\n#else\nprint(\"release\")\n#endif\n",
		"let s = \"\"\"\n  multi\n  line\n  \"\"\"\n",
		"let r = 1..<3 // range  \n",
		"func `default`() -> Int { return $0 }",
		"let broken = \"unterminated\nnext",
		"@objc func f() {}\n",
	}

	for _, src := range sources {
		got := token.Join(tokenize.Tokenize(src))
		if got != src {
			t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, src)
		}
	}
}

func TestTokenize_LinebreakNumbering(t *testing.T) {
	t.Parallel()

	tokens := tokenize.Tokenize("a\nb\r\nc\n")

	var lines []int
	for _, tok := range tokens {
		if tok.IsLinebreak() {
			lines = append(lines, tok.Line)
		}
	}

	want := []int{1, 2, 3}
	if len(lines) != len(want) {
		t.Fatalf("linebreaks = %v, want %v", lines, want)
	}
	for idx := range want {
		if lines[idx] != want[idx] {
			t.Errorf("linebreak %d line = %d, want %d", idx, lines[idx], want[idx])
		}
	}
}

func TestTokenize_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []token.Token
	}{
		{
			name: "brackets",
			src:  "[ 1, 2 ]",
			want: []token.Token{
				token.NewStartOfScope("["),
				token.NewSpace(" "),
				token.NewNumber("1"),
				token.NewDelimiter(","),
				token.NewSpace(" "),
				token.NewNumber("2"),
				token.NewSpace(" "),
				token.NewEndOfScope("]"),
			},
		},
		{
			name: "line comment",
			src:  "// hello  \n",
			want: []token.Token{
				token.NewStartOfScope("//"),
				token.NewSpace(" "),
				token.NewCommentBody("hello"),
				token.NewSpace("  "),
				token.NewLinebreak("\n", 1),
			},
		},
		{
			name: "string",
			src:  `"hi"`,
			want: []token.Token{
				token.NewStartOfScope(`"`),
				token.NewStringBody("hi"),
				token.NewEndOfScope(`"`),
			},
		},
		{
			name: "conditional compilation",
			src:  "#if A\n#endif",
			want: []token.Token{
				token.NewStartOfScope("#if"),
				token.NewSpace(" "),
				token.NewIdentifier("A"),
				token.NewLinebreak("\n", 1),
				token.NewEndOfScope("#endif"),
			},
		},
		{
			name: "switch case labels",
			src:  "switch x {\ncase 1: y\n}",
			want: []token.Token{
				token.NewKeyword("switch"),
				token.NewSpace(" "),
				token.NewIdentifier("x"),
				token.NewSpace(" "),
				token.NewStartOfScope("{"),
				token.NewLinebreak("\n", 1),
				token.NewEndOfScope("case"),
				token.NewSpace(" "),
				token.NewNumber("1"),
				token.NewStartOfScope(":"),
				token.NewSpace(" "),
				token.NewIdentifier("y"),
				token.NewLinebreak("\n", 2),
				token.NewEndOfScope("}"),
			},
		},
		{
			name: "enum case is a keyword",
			src:  "enum E { case a }",
			want: []token.Token{
				token.NewKeyword("enum"),
				token.NewSpace(" "),
				token.NewIdentifier("E"),
				token.NewSpace(" "),
				token.NewStartOfScope("{"),
				token.NewSpace(" "),
				token.NewKeyword("case"),
				token.NewSpace(" "),
				token.NewIdentifier("a"),
				token.NewSpace(" "),
				token.NewEndOfScope("}"),
			},
		},
		{
			name: "ternary colon is a delimiter",
			src:  "a ? b : c",
			want: []token.Token{
				token.NewIdentifier("a"),
				token.NewSpace(" "),
				token.NewOperator("?"),
				token.NewSpace(" "),
				token.NewIdentifier("b"),
				token.NewSpace(" "),
				token.NewDelimiter(":"),
				token.NewSpace(" "),
				token.NewIdentifier("c"),
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := tokenize.Tokenize(testCase.src)
			if len(got) != len(testCase.want) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(testCase.want))
			}
			for idx := range got {
				if got[idx] != testCase.want[idx] {
					t.Errorf("token %d = %+v, want %+v", idx, got[idx], testCase.want[idx])
				}
			}
		})
	}
}
