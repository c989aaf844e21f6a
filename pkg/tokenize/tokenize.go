// Package tokenize provides a small, lossless Swift tokenizer.
//
// It exists so the command-line tool and tests can produce token sequences
// without a full compiler front end. Its output obeys the invariant the
// formatter relies on: token.Join(Tokenize(src)) == src.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/swiftfmt/pkg/token"
)

//nolint:gochecknoglobals // Read-only lookup table.
var keywords = map[string]bool{
	"actor": true, "any": true, "as": true, "associatedtype": true, "async": true,
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"continue": true, "default": true, "defer": true, "deinit": true, "do": true,
	"else": true, "enum": true, "extension": true, "fallthrough": true, "false": true,
	"fileprivate": true, "final": true, "for": true, "func": true, "guard": true,
	"if": true, "import": true, "in": true, "init": true, "inout": true,
	"internal": true, "is": true, "let": true, "nil": true, "open": true,
	"operator": true, "override": true, "private": true, "protocol": true,
	"public": true, "repeat": true, "rethrows": true, "return": true, "self": true,
	"Self": true, "some": true, "static": true, "struct": true, "subscript": true,
	"super": true, "switch": true, "throw": true, "throws": true, "true": true,
	"try": true, "typealias": true, "var": true, "where": true, "while": true,
}

const operatorChars = "/=-+!*%<>&|^~?."

// scope is an entry on the tokenizer's nesting stack.
type scope struct {
	text     string
	isSwitch bool
}

type scanner struct {
	src    string
	pos    int
	line   int
	tokens []token.Token
	scopes []scope

	// pendingSwitch is set after the switch keyword until its body opens.
	pendingSwitch bool

	// expectCaseColon is set after a case label until its colon is read.
	expectCaseColon bool
	parenDepth      int
}

// Tokenize splits Swift source text into tokens.
func Tokenize(src string) []token.Token {
	scan := &scanner{src: src, line: 1}
	for scan.pos < len(scan.src) {
		scan.next()
	}
	return scan.tokens
}

func (s *scanner) emit(tok token.Token) {
	s.tokens = append(s.tokens, tok)
}

func (s *scanner) peek(offset int) byte {
	if s.pos+offset < len(s.src) {
		return s.src[s.pos+offset]
	}
	return 0
}

func (s *scanner) next() {
	char := s.src[s.pos]
	rest := s.src[s.pos:]

	switch {
	case char == ' ' || char == '\t':
		s.scanSpace()
	case char == '\n' || char == '\r':
		s.scanLinebreak()
	case strings.HasPrefix(rest, "//"):
		s.scanLineComment()
	case strings.HasPrefix(rest, "/*"):
		s.scanBlockComment()
	case strings.HasPrefix(rest, `"""`):
		s.scanMultilineString()
	case char == '"':
		s.scanString()
	case char >= '0' && char <= '9':
		s.scanNumber()
	case char == '#':
		s.scanDirective()
	case char == '@':
		s.pos++
		word := s.scanWord()
		s.emit(token.NewKeyword("@" + word))
	case char == '`':
		s.scanEscapedIdentifier()
	case char == '$' || char == '_' || isLetter(rest):
		s.scanIdentifier()
	case char == '(' || char == '[' || char == '{':
		s.openScope(string(char))
	case char == ')' || char == ']' || char == '}':
		s.closeScope(string(char))
	case char == ',' || char == ';':
		s.pos++
		s.emit(token.NewDelimiter(string(char)))
	case char == ':':
		s.scanColon()
	case strings.IndexByte(operatorChars, char) >= 0:
		s.scanOperator()
	default:
		_, size := utf8.DecodeRuneInString(rest)
		s.emit(token.NewError(rest[:size]))
		s.pos += size
	}
}

func (s *scanner) scanSpace() {
	start := s.pos
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
	s.emit(token.NewSpace(s.src[start:s.pos]))
}

func (s *scanner) scanLinebreak() {
	text := s.src[s.pos : s.pos+1]
	if s.src[s.pos] == '\r' && s.peek(1) == '\n' {
		text = "\r\n"
	}
	s.pos += len(text)
	s.emit(token.NewLinebreak(text, s.line))
	s.line++
}

// scanLineComment emits "//", optional leading space, the body, and trailing space.
// The linebreak that closes the comment scope is emitted by the main loop.
func (s *scanner) scanLineComment() {
	s.pos += 2
	s.emit(token.NewStartOfScope("//"))

	end := strings.IndexAny(s.src[s.pos:], "\r\n")
	if end < 0 {
		end = len(s.src) - s.pos
	}
	s.emitCommentLine(s.src[s.pos : s.pos+end])
	s.pos += end
}

// emitCommentLine splits a single line of comment text into space and body tokens.
func (s *scanner) emitCommentLine(text string) {
	body := strings.TrimLeft(text, " \t")
	if leading := text[:len(text)-len(body)]; leading != "" {
		s.emit(token.NewSpace(leading))
	}
	trimmed := strings.TrimRight(body, " \t")
	if trimmed != "" {
		s.emit(token.NewCommentBody(trimmed))
	}
	if trailing := body[len(trimmed):]; trailing != "" {
		s.emit(token.NewSpace(trailing))
	}
}

func (s *scanner) scanBlockComment() {
	s.pos += 2
	s.emit(token.NewStartOfScope("/*"))

	depth := 1
	start := s.pos
	for s.pos < len(s.src) && depth > 0 {
		rest := s.src[s.pos:]
		switch {
		case strings.HasPrefix(rest, "/*"):
			depth++
			s.pos += 2
		case strings.HasPrefix(rest, "*/"):
			depth--
			if depth == 0 {
				s.emitCommentText(s.src[start:s.pos])
				s.pos += 2
				s.emit(token.NewEndOfScope("*/"))
				return
			}
			s.pos += 2
		default:
			s.pos++
		}
	}
	s.emitCommentText(s.src[start:s.pos])
}

// emitCommentText emits multi-line comment content, numbering its linebreaks.
func (s *scanner) emitCommentText(text string) {
	for text != "" {
		idx := strings.IndexAny(text, "\r\n")
		if idx < 0 {
			s.emitCommentLine(text)
			return
		}
		s.emitCommentLine(text[:idx])
		breakLen := 1
		if text[idx] == '\r' && idx+1 < len(text) && text[idx+1] == '\n' {
			breakLen = 2
		}
		s.emit(token.NewLinebreak(text[idx:idx+breakLen], s.line))
		s.line++
		text = text[idx+breakLen:]
	}
}

func (s *scanner) scanString() {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '"':
			s.emit(token.NewStartOfScope(`"`))
			if body := s.src[start+1 : s.pos]; body != "" {
				s.emit(token.NewStringBody(body))
			}
			s.pos++
			s.emit(token.NewEndOfScope(`"`))
			return
		case '\n', '\r':
			s.emitUnterminatedString(start)
			return
		}
		s.pos++
	}
	if s.pos > len(s.src) {
		s.pos = len(s.src)
	}
	s.emitUnterminatedString(start)
}

func (s *scanner) emitUnterminatedString(start int) {
	s.emit(token.NewError(`"`))
	if body := s.src[start+1 : s.pos]; body != "" {
		s.emit(token.NewStringBody(body))
	}
}

func (s *scanner) scanMultilineString() {
	s.pos += 3
	s.emit(token.NewStartOfScope(`"""`))

	end := strings.Index(s.src[s.pos:], `"""`)
	if end < 0 {
		end = len(s.src) - s.pos
	}
	body := s.src[s.pos : s.pos+end]
	s.pos += end

	for body != "" {
		idx := strings.IndexAny(body, "\r\n")
		if idx < 0 {
			s.emit(token.NewStringBody(body))
			break
		}
		if idx > 0 {
			s.emit(token.NewStringBody(body[:idx]))
		}
		breakLen := 1
		if body[idx] == '\r' && idx+1 < len(body) && body[idx+1] == '\n' {
			breakLen = 2
		}
		s.emit(token.NewLinebreak(body[idx:idx+breakLen], s.line))
		s.line++
		body = body[idx+breakLen:]
	}

	if strings.HasPrefix(s.src[s.pos:], `"""`) {
		s.pos += 3
		s.emit(token.NewEndOfScope(`"""`))
	}
}

func (s *scanner) scanNumber() {
	start := s.pos
	for s.pos < len(s.src) {
		char := s.src[s.pos]
		switch {
		case char >= '0' && char <= '9', char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z', char == '_':
			s.pos++
		case char == '.' && s.peek(1) >= '0' && s.peek(1) <= '9':
			s.pos++
		default:
			s.emit(token.NewNumber(s.src[start:s.pos]))
			return
		}
	}
	s.emit(token.NewNumber(s.src[start:s.pos]))
}

func (s *scanner) scanDirective() {
	s.pos++
	word := "#" + s.scanWord()
	switch word {
	case "#if":
		s.emit(token.NewStartOfScope(word))
		s.scopes = append(s.scopes, scope{text: word})
	case "#endif":
		s.emit(token.NewEndOfScope(word))
		for len(s.scopes) > 0 {
			top := s.scopes[len(s.scopes)-1]
			s.scopes = s.scopes[:len(s.scopes)-1]
			if top.text == "#if" {
				break
			}
		}
	default:
		s.emit(token.NewKeyword(word))
	}
}

func (s *scanner) scanWord() string {
	start := s.pos
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		s.pos += size
	}
	return s.src[start:s.pos]
}

func (s *scanner) scanEscapedIdentifier() {
	end := strings.IndexByte(s.src[s.pos+1:], '`')
	if end < 0 {
		s.emit(token.NewError("`"))
		s.pos++
		return
	}
	text := s.src[s.pos : s.pos+end+2]
	s.pos += len(text)
	s.emit(token.NewIdentifier(text))
}

func (s *scanner) scanIdentifier() {
	word := s.scanWord()
	if !keywords[word] {
		s.emit(token.NewIdentifier(word))
		return
	}

	switch word {
	case "switch":
		s.pendingSwitch = true
	case "case", "default":
		if s.atStatementStart() && s.inSwitchBody() {
			s.closeCaseBody()
			s.emit(token.NewEndOfScope(word))
			s.expectCaseColon = true
			s.parenDepth = 0
			return
		}
	}
	s.emit(token.NewKeyword(word))
}

// atStatementStart reports whether the previous significant token begins a statement.
func (s *scanner) atStatementStart() bool {
	for idx := len(s.tokens) - 1; idx >= 0; idx-- {
		tok := s.tokens[idx]
		switch {
		case tok.IsSpace(), tok.Kind == token.CommentBody, tok.IsComment():
			continue
		case tok.IsLinebreak():
			return true
		case tok.Is(token.StartOfScope, "{"), tok.Is(token.StartOfScope, ":"), tok.Is(token.Delimiter, ";"):
			return true
		default:
			return false
		}
	}
	return true
}

// inSwitchBody reports whether the innermost brace scope is a switch body.
func (s *scanner) inSwitchBody() bool {
	for idx := len(s.scopes) - 1; idx >= 0; idx-- {
		switch s.scopes[idx].text {
		case ":", "#if":
			continue
		case "{":
			return s.scopes[idx].isSwitch
		default:
			return false
		}
	}
	return false
}

// closeCaseBody pops an open case body before the next label.
func (s *scanner) closeCaseBody() {
	if n := len(s.scopes); n > 0 && s.scopes[n-1].text == ":" {
		s.scopes = s.scopes[:n-1]
	}
}

func (s *scanner) scanColon() {
	s.pos++
	if s.expectCaseColon && s.parenDepth == 0 {
		s.expectCaseColon = false
		s.emit(token.NewStartOfScope(":"))
		s.scopes = append(s.scopes, scope{text: ":"})
		return
	}
	s.emit(token.NewDelimiter(":"))
}

func (s *scanner) openScope(text string) {
	s.pos++
	s.emit(token.NewStartOfScope(text))
	entry := scope{text: text}
	if text == "{" && s.pendingSwitch {
		entry.isSwitch = true
		s.pendingSwitch = false
	}
	if s.expectCaseColon {
		s.parenDepth++
	}
	s.scopes = append(s.scopes, entry)
}

func (s *scanner) closeScope(text string) {
	s.pos++
	if text == "}" {
		s.closeCaseBody()
	}
	if s.expectCaseColon && s.parenDepth > 0 {
		s.parenDepth--
	}
	if n := len(s.scopes); n > 0 {
		s.scopes = s.scopes[:n-1]
	}
	s.emit(token.NewEndOfScope(text))
}

func (s *scanner) scanOperator() {
	start := s.pos
	for s.pos < len(s.src) && strings.IndexByte(operatorChars, s.src[s.pos]) >= 0 {
		rest := s.src[s.pos:]
		if s.pos > start && (strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "/*")) {
			break
		}
		s.pos++
	}
	s.emit(token.NewOperator(s.src[start:s.pos]))
}

func isLetter(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLetter(r)
}
