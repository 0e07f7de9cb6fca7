package ast

import (
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-locsheet/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// TokenLiteral returns the literal value of the token associated with the node.
	TokenLiteral() string
	// String returns a compact source representation of the node.
	String() string
}

// Expression is a node that can stand as an object value.
type Expression interface {
	Node
	expressionNode()
}

// Document is the root node of a translation module: an object literal with
// its optional export/const decoration.
type Document struct {
	ExportDefault bool
	AsConst       bool
	Object        *ObjectLiteral
}

// TokenLiteral returns the literal value of the token associated with the node.
func (d *Document) TokenLiteral() string {
	if d.Object != nil {
		return d.Object.TokenLiteral()
	}
	return ""
}

// String returns a string representation of the node.
func (d *Document) String() string {
	var out strings.Builder
	if d.ExportDefault {
		out.WriteString("export default ")
	}
	if d.Object != nil {
		out.WriteString(d.Object.String())
	}
	if d.AsConst {
		out.WriteString(" as const")
	}
	return out.String()
}

// Identifier represents a bare object key.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// StringLiteral represents a quoted string.
type StringLiteral struct {
	Token token.Token // token.STRING or token.DSTRING
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string {
	if sl.Token.Type == token.DSTRING {
		return strconv.Quote(sl.Value)
	}
	return "'" + strings.ReplaceAll(sl.Value, "'", `\'`) + "'"
}

// ScalarLiteral represents a number, boolean, null or undefined value. Its
// string form is computed by the decoder.
type ScalarLiteral struct {
	Token token.Token
}

func (sc *ScalarLiteral) expressionNode()      {}
func (sc *ScalarLiteral) TokenLiteral() string { return sc.Token.Literal }
func (sc *ScalarLiteral) String() string       { return sc.Token.Literal }

// ArrayLiteral represents an array literal.
type ArrayLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	elements := make([]string, 0, len(al.Elements))
	for _, el := range al.Elements {
		elements = append(elements, el.String())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// ObjectLiteral represents an object literal.
type ObjectLiteral struct {
	Token token.Token // the '{' token
	Pairs []*KeyValueExpression
}

func (ol *ObjectLiteral) expressionNode()      {}
func (ol *ObjectLiteral) TokenLiteral() string { return ol.Token.Literal }
func (ol *ObjectLiteral) String() string {
	pairs := make([]string, 0, len(ol.Pairs))
	for _, p := range ol.Pairs {
		pairs = append(pairs, p.String())
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// KeyValueExpression represents a key-value pair in an object literal.
type KeyValueExpression struct {
	Token token.Token // The ':' token
	Key   Expression  // *Identifier, *StringLiteral or a numeric *ScalarLiteral
	Value Expression
}

func (kv *KeyValueExpression) expressionNode()      {}
func (kv *KeyValueExpression) TokenLiteral() string { return kv.Token.Literal }
func (kv *KeyValueExpression) String() string {
	return kv.Key.String() + ": " + kv.Value.String()
}
