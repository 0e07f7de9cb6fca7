package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-locsheet/errors"
	"github.com/KimNorgaard/go-locsheet/internal/ast"
	"github.com/KimNorgaard/go-locsheet/internal/lexer"
	"github.com/KimNorgaard/go-locsheet/internal/parser"
)

func parse(input string, opts ...parser.Option) (*ast.Document, errors.ParseErrors) {
	p := parser.New(lexer.New(strings.NewReader(input)), opts...)
	doc := p.Parse()
	return doc, p.Errors()
}

func checkParserErrors(t *testing.T, errs errors.ParseErrors) {
	t.Helper()
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		t.Errorf("parser error: %s", e.Error())
	}
	t.FailNow()
}

func TestDocumentWrappers(t *testing.T) {
	tests := []struct {
		input         string
		exportDefault bool
		asConst       bool
	}{
		{"export default { a: 'x' } as const;", true, true},
		{"export default { a: 'x' } as const", true, true},
		{"export default { a: 'x' };", true, false},
		{"{ a: 'x' } as const;", false, true},
		{"{ a: 'x' }", false, false},
		{"\n\n  export   default\n{ a: 'x' }\n  as\n const ;\n\n", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			doc, errs := parse(tt.input)
			checkParserErrors(t, errs)
			require.Equal(t, tt.exportDefault, doc.ExportDefault)
			require.Equal(t, tt.asConst, doc.AsConst)
			require.Equal(t, "{a: 'x'}", doc.Object.String())
		})
	}
}

func TestObjectLiteralParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"{}", "{}"},
		{"{ a: 'x' }", "{a: 'x'}"},
		{"{ a: 'x', }", "{a: 'x'}"},
		{"{ 'nav-bar': { signIn: 'Sign in' } }", "{'nav-bar': {signIn: 'Sign in'}}"},
		{"{ home: { title: 'Welcome' }, footer: 'Bye' }", "{home: {title: 'Welcome'}, footer: 'Bye'}"},
		{"{ default: 'x', as: 'y', $t: 'z', _u: 'w' }", "{default: 'x', as: 'y', $t: 'z', _u: 'w'}"},
		{"{ a: 'it\\'s' }", "{a: 'it\\'s'}"},
		{"{ /* note */ a: 'x', // trailing\n b: 'y' }", "{a: 'x', b: 'y'}"},
		{"{ a: { b: { c: { d: 'deep' } } } }", "{a: {b: {c: {d: 'deep'}}}}"},
		{"{ a: 'x', a: 'y' }", "{a: 'x', a: 'y'}"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			doc, errs := parse(tt.input)
			checkParserErrors(t, errs)
			require.Equal(t, tt.expected, doc.Object.String())
		})
	}
}

func TestLooseValues(t *testing.T) {
	input := `{ "a": "x", 1: 2, b: [1, 'two', null, [true]], c: undefined, d: -0.5, e: false }`
	doc, errs := parse(input, parser.Loose())
	checkParserErrors(t, errs)
	require.Equal(t, `{"a": "x", 1: 2, b: [1, 'two', null, [true]], c: undefined, d: -0.5, e: false}`, doc.Object.String())

	arr := doc.Object.Pairs[2].Value.(*ast.ArrayLiteral)
	require.Len(t, arr.Elements, 4)
}

func TestLooseValuesErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"{ a: [{ b: 'x' }] }", "objects inside arrays are not supported"},
		{"{ -1: 'x' }", "invalid object key: number -1"},
		{"{ a: [1 2] }", "expected ',' or ']' after array element, got number 2"},
		{"{ a: [1, 2 }", "expected ',' or ']' after array element, got '}'"},
		{"{ a: x }", `expected a value, got identifier "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, errs := parse(tt.input, parser.Loose())
			require.NotEmpty(t, errs)
			require.Equal(t, tt.expected, errs[0].Message)
		})
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		line     int
		column   int
	}{
		{"empty input", "", "expected object literal, got end of input", 1, 1},
		{"array root", "['a']", "expected object literal, got '['", 1, 1},
		{"string root", "'a'", `expected object literal, got string "a"`, 1, 1},
		{"export without default", "export { }", "expected 'default' after 'export', got '{'", 1, 8},
		{"as without const", "{} as let", `expected 'const' after 'as', got identifier "let"`, 1, 7},
		{"trailing garbage", "{} extra", `unexpected identifier "extra" after object literal`, 1, 4},
		{"second object", "{} {}", "unexpected '{' after object literal", 1, 4},
		{"number value", "{ a: 1 }", "unsupported value number 1: expected a single-quoted string or an object", 1, 6},
		{"boolean value", "{ a: true }", `unsupported value keyword "true": expected a single-quoted string or an object`, 1, 6},
		{"double-quoted value", `{ a: "x" }`, `unsupported value string "x": expected a single-quoted string or an object`, 1, 6},
		{"array value", "{ a: ['x'] }", "unsupported value '[': expected a single-quoted string or an object", 1, 6},
		{"missing value", "{ a: }", "expected a value, got '}'", 1, 6},
		{"missing colon", "{ a 'x' }", `expected ':' after key a, got string "x"`, 1, 5},
		{"numeric key", "{ 1: 'x' }", "invalid object key: number 1", 1, 3},
		{"double-quoted key", `{ "a": 'x' }`, `invalid object key: string "a"`, 1, 3},
		{"missing comma", "{ a: 'x' b: 'y' }", `expected ',' or '}' after value, got identifier "b"`, 1, 10},
		{"unterminated object", "{ a: 'x'", "unterminated object literal, expected '}' got end of input", 1, 9},
		{"unterminated string", "{ a: 'x }", "unterminated string", 1, 6},
		{"unexpected character", "{ a: 'x' ) }", `expected ',' or '}' after value, got unexpected character ')'`, 1, 10},
		{"function call", "{ a: t('x') }", `expected a value, got identifier "t"`, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parse(tt.input)
			require.NotEmpty(t, errs, "expected a parse error")
			require.Equal(t, tt.expected, errs[0].Message)
			require.Equal(t, tt.line, errs[0].Line, "line")
			require.Equal(t, tt.column, errs[0].Column, "column")
		})
	}
}

func TestErrorRecoveryCollectsAllErrors(t *testing.T) {
	input := `{
  a: 'x',
  b: 1,
  c: { d: 'y' },
  e: true,
}`
	_, errs := parse(input)
	require.Len(t, errs, 2)
	require.Equal(t, 3, errs[0].Line)
	require.Equal(t, 5, errs[1].Line)
	require.ErrorIs(t, errs, errors.ErrMalformedLiteral)
	require.Contains(t, errs.Error(), "(and 1 more)")
}

func TestRecoveryMakesProgress(t *testing.T) {
	for _, input := range []string{"{ ] ] }", "{ a: ] }", "{ , , }", "{ [ { ] } }", "{ a: { ] }"} {
		t.Run(input, func(t *testing.T) {
			_, errs := parse(input)
			require.NotEmpty(t, errs)
		})
	}
}

func TestMaxDepth(t *testing.T) {
	input := "{ a: { b: { c: 'x' } } }"

	_, errs := parse(input, parser.MaxDepth(3))
	checkParserErrors(t, errs)

	_, errs = parse(input, parser.MaxDepth(2))
	require.Len(t, errs, 1)
	require.Equal(t, "maximum nesting depth of 2 exceeded", errs[0].Message)
	require.Equal(t, 11, errs[0].Column)
}

func TestDefaultMaxDepth(t *testing.T) {
	deep := strings.Repeat("{ a: ", parser.DefaultMaxDepth+1) + "'x'" + strings.Repeat(" }", parser.DefaultMaxDepth+1)
	_, errs := parse(deep)
	require.Len(t, errs, 1)
	require.Equal(t, "maximum nesting depth of 1000 exceeded", errs[0].Message)

	ok := strings.Repeat("{ a: ", parser.DefaultMaxDepth) + "'x'" + strings.Repeat(" }", parser.DefaultMaxDepth)
	_, errs = parse(ok)
	checkParserErrors(t, errs)
}
