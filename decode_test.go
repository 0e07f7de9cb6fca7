package locsheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-locsheet/internal/ast"
	"github.com/KimNorgaard/go-locsheet/internal/token"
)

func TestNumberString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-7, "-7"},
		{0.1, "0.1"},
		{1.5, "1.5"},
		{123.456, "123.456"},
		{0.000001, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-2.5e22, "-2.5e+22"},
		{1e300, "1e+300"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, numberString(tt.in))
		})
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Type: token.NUMBER, Literal: "010"}, "10"},
		{token.Token{Type: token.NUMBER, Literal: "-0.50"}, "-0.5"},
		{token.Token{Type: token.NUMBER, Literal: "1e400"}, "Infinity"},
		{token.Token{Type: token.NUMBER, Literal: "5."}, "5"},
		{token.Token{Type: token.NUMBER, Literal: ".25"}, "0.25"},
		{token.Token{Type: token.TRUE, Literal: "true"}, "true"},
		{token.Token{Type: token.FALSE, Literal: "false"}, "false"},
		{token.Token{Type: token.NULL, Literal: "null"}, "null"},
		{token.Token{Type: token.UNDEFINED, Literal: "undefined"}, "undefined"},
	}
	for _, tt := range tests {
		t.Run(tt.tok.Literal, func(t *testing.T) {
			require.Equal(t, tt.want, scalarString(tt.tok))
		})
	}
}

func scalar(typ token.Type, lit string) *ast.ScalarLiteral {
	return &ast.ScalarLiteral{Token: token.Token{Type: typ, Literal: lit}}
}

func str(s string) *ast.StringLiteral {
	return &ast.StringLiteral{Token: token.Token{Type: token.STRING, Literal: s}, Value: s}
}

func TestJoinArray(t *testing.T) {
	tests := []struct {
		name string
		arr  *ast.ArrayLiteral
		want string
	}{
		{"empty", &ast.ArrayLiteral{}, ""},
		{"strings", &ast.ArrayLiteral{Elements: []ast.Expression{str("a"), str("b")}}, "a,b"},
		{"holes", &ast.ArrayLiteral{Elements: []ast.Expression{
			scalar(token.NULL, "null"), str("x"), scalar(token.UNDEFINED, "undefined"),
		}}, ",x,"},
		{"scalars", &ast.ArrayLiteral{Elements: []ast.Expression{
			scalar(token.NUMBER, "1.0"), scalar(token.TRUE, "true"),
		}}, "1,true"},
		{"nested", &ast.ArrayLiteral{Elements: []ast.Expression{
			str("a"),
			&ast.ArrayLiteral{Elements: []ast.Expression{str("b"), &ast.ArrayLiteral{}}},
		}}, "a,b,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := joinArray(tt.arr)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestJoinArray_RejectsObjects(t *testing.T) {
	_, err := joinArray(&ast.ArrayLiteral{Elements: []ast.Expression{&ast.ObjectLiteral{}}})
	require.ErrorIs(t, err, ErrMalformedLiteral)
}

func TestDecodeDocument_NoObject(t *testing.T) {
	_, err := decodeDocument(&ast.Document{})
	require.ErrorIs(t, err, ErrMalformedLiteral)
	_, err = decodeDocument(nil)
	require.ErrorIs(t, err, ErrMalformedLiteral)
}
