package token

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unknown or invalid token
	EOF     Type = "EOF"     // End of file

	// Literals
	IDENT   Type = "IDENT"   // home, nav_bar, $t
	NUMBER  Type = "NUMBER"  // 12, -1.5e3
	STRING  Type = "STRING"  // 'single quoted'
	DSTRING Type = "DSTRING" // "double quoted"

	// Delimiters
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LBRACK    Type = "["
	RBRACK    Type = "]"
	COMMA     Type = ","
	COLON     Type = ":"
	SEMICOLON Type = ";"

	// Keywords
	EXPORT    Type = "EXPORT"
	DEFAULT   Type = "DEFAULT"
	AS        Type = "AS"
	CONST     Type = "CONST"
	TRUE      Type = "TRUE"
	FALSE     Type = "FALSE"
	NULL      Type = "NULL"
	UNDEFINED Type = "UNDEFINED"
)

var keywords = map[string]Type{
	"export":    EXPORT,
	"default":   DEFAULT,
	"as":        AS,
	"const":     CONST,
	"true":      TRUE,
	"false":     FALSE,
	"null":      NULL,
	"undefined": UNDEFINED,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsWord reports whether t was produced from an identifier-shaped word, i.e.
// IDENT or any keyword. Keywords are valid object keys.
func IsWord(t Type) bool {
	if t == IDENT {
		return true
	}
	for _, kw := range keywords {
		if kw == t {
			return true
		}
	}
	return false
}
