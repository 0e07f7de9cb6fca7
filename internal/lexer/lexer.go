package lexer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/KimNorgaard/go-locsheet/internal/token"
)

const bom = '\uFEFF'

// Lexer holds the state for tokenizing a translation literal.
type Lexer struct {
	r      *bufio.Reader
	buf    bytes.Buffer
	ch     rune
	size   int
	line   int
	column int
}

// New creates and returns a new Lexer.
func New(r io.Reader) *Lexer {
	l := &Lexer{
		r:      bufio.NewReader(r),
		line:   1,
		column: 1,
	}
	l.readRune()
	if l.ch == bom {
		l.readRune()
	}
	return l
}

// NextToken scans the input and returns the next token. Whitespace, line
// breaks and comments are skipped.
func (l *Lexer) NextToken() token.Token {
	if msg, ok := l.skipTrivia(); !ok {
		return token.Token{Type: token.ILLEGAL, Literal: msg, Line: l.line, Column: l.column}
	}
	tok := token.Token{Line: l.line, Column: l.column}
	switch l.ch {
	case '{', '}', '[', ']', ',', ':', ';':
		tok.Type = token.Type(l.ch)
		tok.Literal = string(l.ch)
	case '\'':
		lit, ok := l.readSingleQuoted()
		tok.Type, tok.Literal = token.STRING, lit
		if !ok {
			tok.Type = token.ILLEGAL
		}
		return tok
	case '"':
		lit, ok := l.readDoubleQuoted()
		tok.Type, tok.Literal = token.DSTRING, lit
		if !ok {
			tok.Type = token.ILLEGAL
		}
		return tok
	case -1: // Corresponds to io.EOF
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	default:
		if isDigit(l.ch) || ((l.ch == '-' || l.ch == '.') && (isDigit(l.peekRune()) || l.peekRune() == '.')) {
			lit := l.readNumber()
			if IsNumber(lit) {
				tok.Type = token.NUMBER
				tok.Literal = lit
			} else {
				tok.Type = token.ILLEGAL
				tok.Literal = fmt.Sprintf("invalid number %q", lit)
			}
			return tok
		}
		if isIdentStart(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		}
		tok.Type = token.ILLEGAL
		if l.invalid() {
			tok.Literal = "invalid utf-8"
		} else {
			tok.Literal = fmt.Sprintf("unexpected character %q", l.ch)
		}
	}
	l.advance()
	return tok
}

func (l *Lexer) readRune() {
	r, size, err := l.r.ReadRune()
	if err != nil {
		l.ch, l.size = -1, 0
		return
	}
	l.ch, l.size = r, size
}

// invalid reports whether the current rune came from a malformed UTF-8
// sequence, as opposed to a literal U+FFFD.
func (l *Lexer) invalid() bool {
	return l.ch == utf8.RuneError && l.size == 1
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.readRune()
	l.column++
}

// skipTrivia consumes whitespace and comments. It reports false with a
// message when a block comment is never closed.
func (l *Lexer) skipTrivia() (string, bool) {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' || l.ch == bom:
			l.advance()
		case l.ch == '/' && l.peekRune() == '/':
			for l.ch != '\n' && l.ch != -1 {
				l.advance()
			}
		case l.ch == '/' && l.peekRune() == '*':
			l.advance()
			l.advance()
			for !(l.ch == '*' && l.peekRune() == '/') {
				if l.ch == -1 {
					return "unterminated comment", false
				}
				l.advance()
			}
			l.advance()
			l.advance()
		default:
			return "", true
		}
	}
}

func (l *Lexer) readIdentifier() string {
	l.buf.Reset()
	for isIdentChar(l.ch) {
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	return l.buf.String()
}

func (l *Lexer) readNumber() string {
	l.buf.Reset()
	for isIdentChar(l.ch) || l.ch == '.' || l.ch == '+' || l.ch == '-' {
		l.buf.WriteRune(l.ch)
		l.advance()
	}
	return l.buf.String()
}

// readSingleQuoted reads a single-quoted string. The only escape is \' which
// decodes to a quote; any other backslash is kept as written, and raw line
// breaks are part of the value.
func (l *Lexer) readSingleQuoted() (string, bool) {
	l.advance() // consume opening quote
	l.buf.Reset()
	for {
		switch {
		case l.ch == -1:
			return "unterminated string", false
		case l.ch == '\'':
			l.advance() // consume closing quote
			return l.buf.String(), true
		case l.ch == '\\' && l.peekRune() == '\'':
			l.advance()
			l.buf.WriteRune('\'')
		case l.invalid():
			return "invalid utf-8 sequence in string", false
		default:
			l.buf.WriteRune(l.ch)
		}
		l.advance()
	}
}

func (l *Lexer) readDoubleQuoted() (string, bool) {
	l.advance() // consume opening quote
	l.buf.Reset()
	for {
		if l.ch == '"' {
			l.advance() // consume closing quote
			return l.buf.String(), true
		}
		if l.ch == '\n' || l.ch == -1 {
			return "unterminated string", false
		}
		if l.ch == '\\' {
			r, ok, errMsg := l.readEscapeSequence()
			if !ok {
				return errMsg, false
			}
			l.buf.WriteRune(r)
		} else {
			if l.invalid() {
				return "invalid utf-8 sequence in string", false
			}
			l.buf.WriteRune(l.ch)
		}
		l.advance()
	}
}

func (l *Lexer) readEscapeSequence() (rune, bool, string) {
	l.advance() // consume backslash
	switch l.ch {
	case 'b', 'f', 'n', 'r', 't', 'v', '0':
		return unescape(l.ch), true, ""
	case 'u':
		val, ok := l.readHex(4)
		if !ok {
			return 0, false, "invalid unicode escape"
		}
		if val >= 0xD800 && val <= 0xDFFF {
			return 0, false, "invalid unicode scalar value (surrogate pair)"
		}
		return val, true, ""
	case -1, '\n':
		return 0, false, "unterminated string"
	default:
		// An unknown escape stands for the character itself.
		return l.ch, true, ""
	}
}

func (l *Lexer) readHex(n int) (rune, bool) {
	var val rune
	for range n {
		l.advance()
		var d rune
		switch {
		case '0' <= l.ch && l.ch <= '9':
			d = l.ch - '0'
		case 'a' <= l.ch && l.ch <= 'f':
			d = l.ch - 'a' + 10
		case 'A' <= l.ch && l.ch <= 'F':
			d = l.ch - 'A' + 10
		default:
			return 0, false
		}
		val = val*16 + d
	}
	return val, true
}

func (l *Lexer) peekRune() rune {
	// Prioritize the returned slice, as Peek can return both bytes and an error
	bytes, _ := l.r.Peek(utf8.UTFMax)
	if len(bytes) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(bytes)
	return r
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_' || ch == '$'
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// IsIdentifier reports whether s can be written as a bare object key.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if i == 0 && !isIdentStart(ch) {
			return false
		}
		if !isIdentChar(ch) {
			return false
		}
	}
	return true
}

func unescape(ch rune) rune {
	switch ch {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case '0':
		return 0
	}
	return ch
}

func consumeDigits(s string, i int) int {
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	return i
}

// IsNumber reports whether s is a decimal number literal: an optional minus
// sign, digits with an optional fraction (either side of the dot may be
// empty, not both) and an optional exponent.
func IsNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	intStart := i
	i = consumeDigits(s, i)
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		i = consumeDigits(s, i)
		digits += i - fracStart
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		i = consumeDigits(s, i)
		if i == expStart {
			return false
		}
	}
	return i == len(s)
}
