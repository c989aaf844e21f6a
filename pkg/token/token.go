// Package token defines the lexical token model shared by the formatter engine,
// the reference tokenizer, and formatting rules.
package token

import "strings"

// Kind classifies a token.
type Kind uint8

// Token kinds. The set is closed: every byte of a source file belongs to
// exactly one token of one of these kinds.
const (
	Error Kind = iota
	Space
	Linebreak
	Identifier
	Keyword
	Operator
	Number
	StringBody
	CommentBody
	StartOfScope
	EndOfScope
	Delimiter
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	Error:        "error",
	Space:        "space",
	Linebreak:    "linebreak",
	Identifier:   "identifier",
	Keyword:      "keyword",
	Operator:     "operator",
	Number:       "number",
	StringBody:   "stringBody",
	CommentBody:  "commentBody",
	StartOfScope: "startOfScope",
	EndOfScope:   "endOfScope",
	Delimiter:    "delimiter",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is a single classified lexical unit carrying its exact source text.
type Token struct {
	// Kind classifies what this token represents.
	Kind Kind

	// Text is the exact source text of the token.
	Text string

	// Line is the original 1-based line number terminated by a linebreak token.
	// It is zero for every other kind.
	Line int
}

// NewSpace returns a whitespace token.
func NewSpace(text string) Token { return Token{Kind: Space, Text: text} }

// NewLinebreak returns a linebreak token that terminates the given original line.
func NewLinebreak(text string, line int) Token {
	return Token{Kind: Linebreak, Text: text, Line: line}
}

// NewIdentifier returns an identifier token.
func NewIdentifier(text string) Token { return Token{Kind: Identifier, Text: text} }

// NewKeyword returns a keyword token.
func NewKeyword(text string) Token { return Token{Kind: Keyword, Text: text} }

// NewOperator returns an operator token.
func NewOperator(text string) Token { return Token{Kind: Operator, Text: text} }

// NewNumber returns a numeric literal token.
func NewNumber(text string) Token { return Token{Kind: Number, Text: text} }

// NewStringBody returns the body of a string literal.
func NewStringBody(text string) Token { return Token{Kind: StringBody, Text: text} }

// NewCommentBody returns the body of a comment.
func NewCommentBody(text string) Token { return Token{Kind: CommentBody, Text: text} }

// NewStartOfScope returns a scope-opening token such as "(" or "#if".
func NewStartOfScope(text string) Token { return Token{Kind: StartOfScope, Text: text} }

// NewEndOfScope returns a scope-closing token such as ")" or "#endif".
func NewEndOfScope(text string) Token { return Token{Kind: EndOfScope, Text: text} }

// NewDelimiter returns a delimiter token such as "," or ";".
func NewDelimiter(text string) Token { return Token{Kind: Delimiter, Text: text} }

// NewError returns a token for source text the lexer could not classify.
func NewError(text string) Token { return Token{Kind: Error, Text: text} }

// String returns the source text of the token.
func (t Token) String() string { return t.Text }

// Equal reports whether two tokens have the same kind and exact text.
// The original line carried by linebreaks is ignored.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// Is reports whether the token has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsSpace reports whether the token is horizontal whitespace.
func (t Token) IsSpace() bool { return t.Kind == Space }

// IsLinebreak reports whether the token is a line terminator.
func (t Token) IsLinebreak() bool { return t.Kind == Linebreak }

// IsSpaceOrLinebreak reports whether the token is any whitespace.
func (t Token) IsSpaceOrLinebreak() bool { return t.Kind == Space || t.Kind == Linebreak }

// IsComment reports whether the token is part of a comment: its body or
// one of the comment delimiters.
func (t Token) IsComment() bool {
	switch t.Kind {
	case CommentBody:
		return true
	case StartOfScope:
		return t.Text == "//" || t.Text == "/*"
	case EndOfScope:
		return t.Text == "*/"
	default:
		return false
	}
}

// IsSpaceOrComment reports whether the token is horizontal whitespace or a comment.
func (t Token) IsSpaceOrComment() bool { return t.IsSpace() || t.IsComment() }

// IsSpaceOrCommentOrLinebreak reports whether the token is trivia.
func (t Token) IsSpaceOrCommentOrLinebreak() bool {
	return t.IsSpaceOrLinebreak() || t.IsComment()
}

// IsStartOfScope reports whether the token opens a scope.
func (t Token) IsStartOfScope() bool { return t.Kind == StartOfScope }

// IsEndOfScope reports whether the token closes a scope.
func (t Token) IsEndOfScope() bool { return t.Kind == EndOfScope }

// IsSwitchCaseOrDefault reports whether the token is a switch "case" or
// "default" label, which the tokenizer classifies as end of scope.
func (t Token) IsSwitchCaseOrDefault() bool {
	return t.Kind == EndOfScope && (t.Text == "case" || t.Text == "default")
}

// IsDelimiter reports whether the token is a delimiter.
func (t Token) IsDelimiter() bool { return t.Kind == Delimiter }

// IsIdentifierOrKeyword reports whether the token is a word.
func (t Token) IsIdentifierOrKeyword() bool {
	return t.Kind == Identifier || t.Kind == Keyword
}

// ClosesScope reports whether end terminates a scope opened by start.
func ClosesScope(start, end Token) bool {
	if start.Kind != StartOfScope {
		return false
	}
	switch start.Text {
	case "//":
		return end.Kind == Linebreak
	case ":":
		return end.Kind == EndOfScope && (end.Text == "case" || end.Text == "default" || end.Text == "}")
	}
	if end.Kind != EndOfScope {
		return false
	}
	closing, ok := closingDelimiters[start.Text]
	return ok && end.Text == closing
}

//nolint:gochecknoglobals // Read-only lookup table.
var closingDelimiters = map[string]string{
	"(":   ")",
	"[":   "]",
	"<":   ">",
	"{":   "}",
	"#if": "#endif",
	"/*":  "*/",
	`"`:   `"`,
	`"""`: `"""`,
}

// Join concatenates the source text of tokens.
func Join(tokens []Token) string {
	var builder strings.Builder
	for _, tok := range tokens {
		builder.WriteString(tok.Text)
	}
	return builder.String()
}

// Lines partitions tokens into lines. Each line ends with a linebreak token,
// except possibly the last. The returned slices alias the input.
func Lines(tokens []Token) [][]Token {
	var lines [][]Token
	start := 0
	for idx, tok := range tokens {
		if tok.Kind == Linebreak {
			lines = append(lines, tokens[start:idx+1])
			start = idx + 1
		}
	}
	if start < len(tokens) {
		lines = append(lines, tokens[start:])
	}
	return lines
}
