package rules

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/token"
)

// SortImportsRule sorts contiguous blocks of import statements.
type SortImportsRule struct {
	lint.BaseRule
}

// NewSortImportsRule creates a new import sorting rule.
func NewSortImportsRule() *SortImportsRule {
	return &SortImportsRule{
		BaseRule: lint.NewBaseRule("sortImports", "Sort import statements alphabetically."),
	}
}

// importModifiers may precede the import keyword.
//
//nolint:gochecknoglobals // Read-only lookup table.
var importModifiers = map[string]bool{
	"public": true, "internal": true, "private": true, "fileprivate": true, "package": true,
}

// importLine is one import statement without its linebreak.
type importLine struct {
	tokens   []token.Token
	module   string
	testable bool
}

// Apply sorts each block of consecutive import lines. Blank lines, comments
// and disabled lines separate blocks. Lines keep their linebreaks in place,
// so an unterminated last line stays last in the file.
func (r *SortImportsRule) Apply(f *formatter.Formatter) {
	var blocks []formatter.Span
	f.ForEachMatching(token.NewKeyword("import"), func(index int, _ token.Token) {
		start := f.StartOfLine(index)
		if !onlyImportPrefix(f, start, index) {
			return
		}
		end := min(f.EndOfLine(index)+1, f.Len())
		if n := len(blocks); n > 0 && blocks[n-1].End == start {
			blocks[n-1].End = end
			return
		}
		blocks = append(blocks, formatter.Span{Start: start, End: end})
	})

	// Block bounds are tracked with references so they stay valid whatever
	// the replacement of an earlier block does to the token count.
	refs := make([]*formatter.Ref, len(blocks))
	for idx, block := range blocks {
		refs[idx] = f.NewRangeRef(block.Start, block.End-1)
	}

	order := importOrder(f.Options().ImportGrouping)
	for _, ref := range refs {
		lower, upper := ref.Range()
		ref.Release()
		sortImportBlock(f, lower, upper+1, order)
	}
}

// onlyImportPrefix reports whether the tokens in [start, index) are
// indentation, attributes and access modifiers.
func onlyImportPrefix(f *formatter.Formatter, start, index int) bool {
	for i := start; i < index; i++ {
		tok, _ := f.Token(i)
		switch {
		case tok.IsSpace():
		case tok.Kind == token.Keyword && strings.HasPrefix(tok.Text, "@"):
		case tok.Kind == token.Keyword && importModifiers[tok.Text]:
		default:
			return false
		}
	}
	return true
}

func sortImportBlock(f *formatter.Formatter, start, end int, order func(a, b importLine) int) {
	block := f.Tokens()[start:end]

	var lines []importLine
	var breaks []token.Token
	var current []token.Token
	for _, tok := range block {
		if tok.IsLinebreak() {
			lines = append(lines, newImportLine(current))
			breaks = append(breaks, tok)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		lines = append(lines, newImportLine(current))
	}
	if len(lines) < 2 {
		return
	}

	sorted := slices.Clone(lines)
	slices.SortStableFunc(sorted, order)

	replacement := make([]token.Token, 0, len(block))
	for idx, line := range sorted {
		replacement = append(replacement, line.tokens...)
		if idx < len(breaks) {
			replacement = append(replacement, breaks[idx])
		}
	}
	f.ReplaceLines(start, end, replacement)
}

func newImportLine(tokens []token.Token) importLine {
	line := importLine{tokens: tokens}
	afterImport := false
	var module strings.Builder
	for _, tok := range tokens {
		switch {
		case tok.Is(token.Keyword, "@testable"):
			line.testable = true
		case tok.Is(token.Keyword, "import"):
			afterImport = true
		case afterImport && !tok.IsSpaceOrComment():
			module.WriteString(tok.Text)
		}
	}
	line.module = module.String()
	return line
}

// importOrder returns the comparison for an importgrouping value.
func importOrder(grouping string) func(a, b importLine) int {
	collator := collate.New(language.Und, collate.IgnoreCase)
	alpha := func(a, b importLine) int {
		if c := collator.CompareString(a.module, b.module); c != 0 {
			return c
		}
		return strings.Compare(a.module, b.module)
	}

	switch grouping {
	case "length":
		return func(a, b importLine) int {
			if c := cmp.Compare(len(a.module), len(b.module)); c != 0 {
				return c
			}
			return alpha(a, b)
		}
	case "testable-first", "testable-last":
		testableFirst := grouping == "testable-first"
		return func(a, b importLine) int {
			if a.testable != b.testable {
				if a.testable == testableFirst {
					return -1
				}
				return 1
			}
			return alpha(a, b)
		}
	default:
		return alpha
	}
}
