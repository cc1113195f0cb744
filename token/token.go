// Package token defines the lexical tokens produced by ako/lexer and
// consumed by the parser and path resolver.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	None Kind = iota
	Bool
	Int
	Float
	String
	Ident
	Dot
	Semicolon
	And
	Plus
	Minus
	OpenBrace
	CloseBrace
	OpenDoubleBrace
	CloseDoubleBrace
	VectorCross
)

var names = [...]string{
	None:             "None",
	Bool:             "Bool",
	Int:              "Int",
	Float:            "Float",
	String:           "String",
	Ident:            "Identity",
	Dot:              "Dot",
	Semicolon:        "Semicolon",
	And:              "And",
	Plus:             "Plus",
	Minus:            "Minus",
	OpenBrace:        "OpenBrace",
	CloseBrace:       "CloseBrace",
	OpenDoubleBrace:  "OpenDoubleBrace",
	CloseDoubleBrace: "CloseDoubleBrace",
	VectorCross:      "VectorCross",
}

// String returns the token kind's diagnostic name, matching the original
// implementation's TokenType_Strings table.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// Location is a 1-based line/column, 0-based byte-index position in the
// source. Locations are only used for diagnostics; they never appear in
// the parsed value tree.
type Location struct {
	Line   int
	Column int
	Index  int
}

// String formats the location as "line:column", matching location_format
// in the original tokenizer.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Token is a single lexical unit with its source span and kind-dependent
// payload. Exactly one of Int, Float, or Str is meaningful, depending on
// Kind.
type Token struct {
	Kind  Kind
	Start Location
	End   Location

	Int   int64
	Float float64
	Str   string
}
