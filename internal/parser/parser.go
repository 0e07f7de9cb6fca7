package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-locsheet/errors"
	"github.com/KimNorgaard/go-locsheet/internal/ast"
	"github.com/KimNorgaard/go-locsheet/internal/lexer"
	"github.com/KimNorgaard/go-locsheet/internal/token"
)

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 1000

// Parser holds the state of the parser.
type Parser struct {
	l      *lexer.Lexer
	errors errors.ParseErrors

	curToken  token.Token
	peekToken token.Token

	loose    bool
	maxDepth int
	depth    int
}

// Option configures a Parser.
type Option func(*Parser)

// Loose accepts double-quoted strings, numbers, booleans, null, undefined
// and arrays in addition to the strict single-quoted grammar.
func Loose() Option {
	return func(p *Parser) { p.loose = true }
}

// MaxDepth limits the nesting depth of objects and arrays.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// New creates a new parser.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:        l,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the syntax errors encountered during parsing.
func (p *Parser) Errors() errors.ParseErrors {
	return p.errors
}

// Parse parses a translation module:
//
//	[export default] { ... } [as const] [;]
//
// The returned document is only meaningful when Errors is empty.
func (p *Parser) Parse() *ast.Document {
	doc := &ast.Document{}

	if p.curTokenIs(token.EXPORT) {
		if !p.peekTokenIs(token.DEFAULT) {
			p.errorf(p.peekToken, "expected 'default' after 'export', got %s", describe(p.peekToken))
			return doc
		}
		p.nextToken()
		p.nextToken()
		doc.ExportDefault = true
	}

	if !p.curTokenIs(token.LBRACE) {
		p.errorf(p.curToken, "expected object literal, got %s", describe(p.curToken))
		return doc
	}
	doc.Object = p.parseObjectLiteral()
	if doc.Object == nil {
		return doc
	}

	if p.curTokenIs(token.AS) {
		p.nextToken()
		if !p.curTokenIs(token.CONST) {
			p.errorf(p.curToken, "expected 'const' after 'as', got %s", describe(p.curToken))
			return doc
		}
		p.nextToken()
		doc.AsConst = true
	}

	if p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	if !p.curTokenIs(token.EOF) {
		p.errorf(p.curToken, "unexpected %s after object literal", describe(p.curToken))
	}

	return doc
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// The contract for all parse functions is that they are entered with p.curToken
// being the first token of the construct, and they must return with p.curToken
// pointing to the token *after* the construct.

func (p *Parser) parseObjectLiteral() *ast.ObjectLiteral {
	obj := &ast.ObjectLiteral{Token: p.curToken, Pairs: []*ast.KeyValueExpression{}}

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.errorf(p.curToken, "maximum nesting depth of %d exceeded", p.maxDepth)
		p.skipBalanced()
		return nil
	}

	p.nextToken() // Consume '{'
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if pair := p.parseKeyValuePair(); pair != nil {
			obj.Pairs = append(obj.Pairs, pair)
		} else {
			// Error already reported. Recover to the next separator or end of object.
			p.synchronize()
		}

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.errorf(p.curToken, "expected ',' or '}' after value, got %s", describe(p.curToken))
			p.synchronize()
			if p.curTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
	}

	if !p.curTokenIs(token.RBRACE) {
		p.errorf(p.curToken, "unterminated object literal, expected '}' got %s", describe(p.curToken))
		return nil
	}
	p.nextToken() // Consume '}'
	return obj
}

func (p *Parser) parseKeyValuePair() *ast.KeyValueExpression {
	key := p.parseObjectKey()
	if key == nil {
		return nil
	}

	if !p.curTokenIs(token.COLON) {
		p.errorf(p.curToken, "expected ':' after key %s, got %s", key.String(), describe(p.curToken))
		return nil
	}
	colon := p.curToken
	p.nextToken() // Consume ':'

	value := p.parseValue()
	if value == nil {
		return nil
	}

	return &ast.KeyValueExpression{Token: colon, Key: key, Value: value}
}

func (p *Parser) parseObjectKey() ast.Expression {
	var key ast.Expression
	switch {
	case p.curTokenIs(token.STRING):
		key = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case token.IsWord(p.curToken.Type):
		key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	case p.loose && p.curTokenIs(token.DSTRING):
		key = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	case p.loose && p.curTokenIs(token.NUMBER) && p.curToken.Literal[0] != '-':
		key = &ast.ScalarLiteral{Token: p.curToken}
	default:
		p.errorf(p.curToken, "invalid object key: %s", describe(p.curToken))
		return nil
	}
	p.nextToken()
	return key
}

func (p *Parser) parseValue() ast.Expression {
	switch p.curToken.Type {
	case token.STRING:
		return p.parseStringLiteral()
	case token.LBRACE:
		if obj := p.parseObjectLiteral(); obj != nil {
			return obj
		}
		return nil
	case token.ILLEGAL:
		p.errorf(p.curToken, "%s", p.curToken.Literal)
		p.nextToken()
		return nil
	}

	if !p.loose {
		switch p.curToken.Type {
		case token.DSTRING, token.NUMBER, token.TRUE, token.FALSE, token.NULL, token.UNDEFINED, token.LBRACK:
			p.errorf(p.curToken, "unsupported value %s: expected a single-quoted string or an object", describe(p.curToken))
		default:
			p.errorf(p.curToken, "expected a value, got %s", describe(p.curToken))
		}
		return nil
	}

	switch p.curToken.Type {
	case token.DSTRING:
		return p.parseStringLiteral()
	case token.NUMBER, token.TRUE, token.FALSE, token.NULL, token.UNDEFINED:
		expr := &ast.ScalarLiteral{Token: p.curToken}
		p.nextToken()
		return expr
	case token.LBRACK:
		if arr := p.parseArrayLiteral(); arr != nil {
			return arr
		}
		return nil
	}
	p.errorf(p.curToken, "expected a value, got %s", describe(p.curToken))
	return nil
}

func (p *Parser) parseStringLiteral() ast.Expression {
	expr := &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken()
	return expr
}

func (p *Parser) parseArrayLiteral() *ast.ArrayLiteral {
	array := &ast.ArrayLiteral{Token: p.curToken, Elements: []ast.Expression{}}

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.errorf(p.curToken, "maximum nesting depth of %d exceeded", p.maxDepth)
		p.skipBalanced()
		return nil
	}

	p.nextToken() // Consume '['
	for !p.curTokenIs(token.RBRACK) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.LBRACE) {
			p.errorf(p.curToken, "objects inside arrays are not supported")
			return nil
		}
		elem := p.parseValue()
		if elem == nil {
			return nil
		}
		array.Elements = append(array.Elements, elem)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if !p.curTokenIs(token.RBRACK) {
			p.errorf(p.curToken, "expected ',' or ']' after array element, got %s", describe(p.curToken))
			return nil
		}
	}

	if !p.curTokenIs(token.RBRACK) {
		p.errorf(p.curToken, "unterminated array literal, expected ']' got %s", describe(p.curToken))
		return nil
	}
	p.nextToken() // Consume ']'
	return array
}

// synchronize skips tokens until a ',' or '}' that belongs to the enclosing
// object, stepping over nested brackets without recursing into them.
func (p *Parser) synchronize() {
	depth := 0
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.LBRACE, token.LBRACK:
			depth++
		case token.RBRACK:
			if depth > 0 {
				depth--
			}
		case token.RBRACE:
			if depth == 0 {
				return
			}
			depth--
		case token.COMMA:
			if depth == 0 {
				return
			}
		}
		p.nextToken()
	}
}

// skipBalanced is entered on an opening bracket and consumes everything up to
// and including its matching closer.
func (p *Parser) skipBalanced() {
	depth := 0
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.LBRACE, token.LBRACK:
			depth++
		case token.RBRACE, token.RBRACK:
			depth--
		}
		p.nextToken()
		if depth == 0 {
			return
		}
	}
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	p.errors = append(p.errors, errors.ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	})
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

func describe(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of input"
	case token.STRING, token.DSTRING:
		return "string " + fmt.Sprintf("%q", t.Literal)
	case token.NUMBER:
		return "number " + t.Literal
	case token.IDENT:
		return fmt.Sprintf("identifier %q", t.Literal)
	case token.ILLEGAL:
		return t.Literal
	}
	if token.IsWord(t.Type) {
		return fmt.Sprintf("keyword %q", t.Literal)
	}
	return fmt.Sprintf("'%s'", t.Literal)
}
