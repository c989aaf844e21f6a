package formatter_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/token"
	"github.com/yaklabco/swiftfmt/pkg/tokenize"
)

// visitedIdentifiers runs rule over f and returns the identifiers it was
// allowed to see.
func visitedIdentifiers(f *formatter.Formatter, rule string) []string {
	f.SetRule(rule)
	var visited []string
	f.ForEach(func(_ int, tok token.Token) {
		if tok.Kind == token.Identifier {
			visited = append(visited, tok.Text)
		}
	})
	return visited
}

func TestDirectives_Enablement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		rule string
		want []string
	}{
		{
			name: "disable then enable",
			src:  "a\n// swiftformat:disable foo\nb\nc\n// swiftformat:enable foo\nd\n",
			rule: "foo",
			want: []string{"a", "d"},
		},
		{
			name: "other rule unaffected",
			src:  "a\n// swiftformat:disable foo\nb\nc\n// swiftformat:enable foo\nd\n",
			rule: "bar",
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "disable next covers one line",
			src:  "// swiftformat:disable:next foo\nb\nc\n",
			rule: "foo",
			want: []string{"c"},
		},
		{
			name: "enable next inside disabled region",
			src:  "// swiftformat:disable foo\na\n// swiftformat:enable:next foo\nb\nc\n",
			rule: "foo",
			want: []string{"b"},
		},
		{
			name: "all matches every rule",
			src:  "// swiftformat:disable all\na\n",
			rule: "anything",
			want: nil,
		},
		{
			name: "case insensitive names",
			src:  "// swiftformat:disable FOO\na\n",
			rule: "foo",
			want: nil,
		},
		{
			name: "whole word names",
			src:  "// swiftformat:disable foobar\na\n",
			rule: "foo",
			want: []string{"a"},
		},
		{
			name: "name list",
			src:  "// swiftformat:disable bar, foo\na\n",
			rule: "foo",
			want: nil,
		},
		{
			name: "nested disables",
			src:  "// swiftformat:disable foo\n// swiftformat:disable all\na\n// swiftformat:enable foo\nb\n// swiftformat:enable all\nc\n",
			rule: "foo",
			want: []string{"c"},
		},
		{
			name: "stray enable does not bank",
			src:  "// swiftformat:enable foo\na\n// swiftformat:disable foo\nb\n",
			rule: "foo",
			want: []string{"a"},
		},
		{
			name: "extra enable clamps at zero",
			src:  "// swiftformat:disable foo\na\n// swiftformat:enable foo\n// swiftformat:enable foo\nb\n// swiftformat:disable foo\nc\n",
			rule: "foo",
			want: []string{"b"},
		},
		{
			name: "prefix is case sensitive",
			src:  "// SwiftFormat:disable foo\na\n",
			rule: "foo",
			want: []string{"a"},
		},
		{
			name: "sort is reserved",
			src:  "// swiftformat:sort\na\n",
			rule: "foo",
			want: []string{"a"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := formatter.New(tokenize.Tokenize(testCase.src))
			got := visitedIdentifiers(f, testCase.rule)

			if !slices.Equal(got, testCase.want) {
				t.Errorf("visited = %v, want %v", got, testCase.want)
			}
			if errs := f.Errors(); len(errs) != 0 {
				t.Errorf("unexpected errors: %v", errs)
			}
		})
	}
}

func TestDirectives_DisableEnableScenario(t *testing.T) {
	t.Parallel()

	src := "// swiftformat:disable foo\nlet a = 1\n// swiftformat:enable foo\nlet b = 2"
	f := formatter.New(tokenize.Tokenize(src), formatter.WithChangeTracking(true))
	f.SetRule("foo")

	f.ForEachToken(func(tok token.Token) bool { return tok.Kind == token.Number }, func(index int, _ token.Token) {
		f.Insert(index+1, token.NewOperator("!"))
	})

	want := "// swiftformat:disable foo\nlet a = 1\n// swiftformat:enable foo\nlet b = 2!"
	if got := f.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	changes := f.Changes()
	if len(changes) != 1 || changes[0].Line != 4 || changes[0].Rule != "foo" {
		t.Errorf("changes = %+v", changes)
	}
}

func TestDirectives_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		kind     formatter.ErrorKind
		contains string
	}{
		{name: "unknown directive", src: "// swiftformat:frobnicate foo\na\n", kind: formatter.ParsingError, contains: "swiftformat:frobnicate on line 1"},
		{name: "empty directive", src: "b\n// swiftformat:\na\n", kind: formatter.ParsingError, contains: "line 2"},
		{name: "bad suffix", src: "// swiftformat:disable:later foo\na\n", kind: formatter.ParsingError, contains: "disable:later"},
		{name: "invalid option value", src: "// swiftformat:options --commas sometimes\na\n", kind: formatter.OptionsError, contains: "--commas"},
		{name: "unknown option", src: "// swiftformat:options --flavor gfm\na\n", kind: formatter.OptionsError, contains: "unknown option"},
		{name: "unsplittable arguments", src: "// swiftformat:options --indent \"2\na\n", kind: formatter.ParsingError, contains: "options directive"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := formatter.New(tokenize.Tokenize(testCase.src))

			if got := visitedIdentifiers(f, "foo"); slices.Contains(got, "a") {
				t.Errorf("rule still ran after error: visited %v", got)
			}

			errs := f.Errors()
			if len(errs) != 1 {
				t.Fatalf("errors = %v, want 1", errs)
			}
			if errs[0].Kind != testCase.kind {
				t.Errorf("kind = %v, want %v", errs[0].Kind, testCase.kind)
			}
			if !strings.Contains(errs[0].Error(), testCase.contains) {
				t.Errorf("message %q does not contain %q", errs[0].Message, testCase.contains)
			}

			// Every rule re-reads the directive; the error is logged once and
			// each rule is disabled in turn.
			if got := visitedIdentifiers(f, "bar"); slices.Contains(got, "a") {
				t.Errorf("second rule ran after error: visited %v", got)
			}
			if n := len(f.Errors()); n != 1 {
				t.Errorf("errors after second rule = %d, want 1", n)
			}
		})
	}
}

func TestDirectives_ErrorKeepsEarlierTokens(t *testing.T) {
	t.Parallel()

	f := formatter.New(tokenize.Tokenize("a\n// swiftformat:bogus\nb\n"))
	if got := visitedIdentifiers(f, "foo"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("visited = %v, want [a]", got)
	}
}

func TestDirectives_Options(t *testing.T) {
	t.Parallel()

	indents := func(f *formatter.Formatter) map[string]string {
		f.SetRule("foo")
		seen := make(map[string]string)
		f.ForEach(func(_ int, tok token.Token) {
			if tok.Kind == token.Identifier {
				seen[tok.Text] = f.Options().Indent
			}
		})
		return seen
	}

	t.Run("persistent", func(t *testing.T) {
		t.Parallel()

		f := formatter.New(tokenize.Tokenize("a\n// swiftformat:options --indent 2\nb\nc\n"))
		got := indents(f)
		if got["a"] != "    " || got["b"] != "  " || got["c"] != "  " {
			t.Errorf("indents = %q", got)
		}

		// A new rule starts from the file's initial options.
		if f.Options().Indent == "    " {
			t.Error("options should still reflect the directive after traversal")
		}
		f.SetRule("bar")
		if f.Options().Indent != "    " {
			t.Errorf("SetRule did not restore initial options: %q", f.Options().Indent)
		}
	})

	t.Run("next line only", func(t *testing.T) {
		t.Parallel()

		f := formatter.New(tokenize.Tokenize("// swiftformat:options:next --indent tab\nb\nc\n"))
		got := indents(f)
		if got["b"] != "\t" || got["c"] != "    " {
			t.Errorf("indents = %q", got)
		}
	})
}

func TestSetRule_ResetsState(t *testing.T) {
	t.Parallel()

	f := formatter.New(tokenize.Tokenize("a\n// swiftformat:disable foo\nb\n"))

	if got := visitedIdentifiers(f, "foo"); !slices.Equal(got, []string{"a"}) {
		t.Fatalf("first pass visited %v", got)
	}
	if f.Enabled() {
		t.Error("rule should be disabled at the end of the first pass")
	}

	f.SetRule("foo")
	if !f.Enabled() {
		t.Error("SetRule should reset the disable counter")
	}
}
