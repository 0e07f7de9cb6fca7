package locsheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-locsheet/internal/ast"
	"github.com/KimNorgaard/go-locsheet/internal/token"
	"github.com/KimNorgaard/go-locsheet/tree"
)

// decodeDocument maps a parsed document onto the translation tree. Nesting
// was already bounded by the parser.
func decodeDocument(doc *ast.Document) (*tree.Node, error) {
	if doc == nil || doc.Object == nil {
		return nil, fmt.Errorf("%w: no object literal", ErrMalformedLiteral)
	}
	return decodeObject(doc.Object)
}

func decodeObject(obj *ast.ObjectLiteral) (*tree.Node, error) {
	node := tree.NewNode()
	for _, pair := range obj.Pairs {
		key, err := keyName(pair.Key)
		if err != nil {
			return nil, err
		}
		value, err := decodeValue(pair.Value)
		if err != nil {
			return nil, err
		}
		// Repeated keys keep their first position and take the last value.
		node.Set(key, value)
	}
	return node, nil
}

func decodeValue(expr ast.Expression) (tree.Value, error) {
	switch e := expr.(type) {
	case *ast.ObjectLiteral:
		return decodeObject(e)
	case *ast.StringLiteral:
		return tree.Leaf(e.Value), nil
	case *ast.ScalarLiteral:
		return tree.Leaf(scalarString(e.Token)), nil
	case *ast.ArrayLiteral:
		s, err := joinArray(e)
		if err != nil {
			return nil, err
		}
		return tree.Leaf(s), nil
	}
	return nil, fmt.Errorf("%w: unexpected value %T", ErrMalformedLiteral, expr)
}

func keyName(key ast.Expression) (string, error) {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Value, nil
	case *ast.StringLiteral:
		return k.Value, nil
	case *ast.ScalarLiteral:
		return scalarString(k.Token), nil
	}
	return "", fmt.Errorf("%w: unexpected key %T", ErrMalformedLiteral, key)
}

// joinArray renders an array the way a list is stringified in the source
// language: elements joined by commas, null and undefined as empty strings,
// nested arrays flattened in place.
func joinArray(arr *ast.ArrayLiteral) (string, error) {
	parts := make([]string, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		switch e := el.(type) {
		case *ast.StringLiteral:
			parts = append(parts, e.Value)
		case *ast.ScalarLiteral:
			if e.Token.Type == token.NULL || e.Token.Type == token.UNDEFINED {
				parts = append(parts, "")
			} else {
				parts = append(parts, scalarString(e.Token))
			}
		case *ast.ArrayLiteral:
			s, err := joinArray(e)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		default:
			return "", fmt.Errorf("%w: unsupported array element %T", ErrMalformedLiteral, el)
		}
	}
	return strings.Join(parts, ","), nil
}

func scalarString(tok token.Token) string {
	switch tok.Type {
	case token.TRUE:
		return "true"
	case token.FALSE:
		return "false"
	case token.NULL:
		return "null"
	case token.UNDEFINED:
		return "undefined"
	case token.NUMBER:
		// ParseFloat reports ErrRange for overflow but still returns ±Inf.
		f, _ := strconv.ParseFloat(tok.Literal, 64)
		return numberString(f)
	}
	return tok.Literal
}

// numberString formats f like the default number-to-string conversion of
// the source language: plain decimals between 1e-6 and 1e21, exponent form
// with an explicit sign outside that range.
func numberString(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
