// Package token defines the token kinds produced by the CLua lexer and the
// flat, offset-addressed record that carries them.
package token

import "strconv"

// Kind is the closed set of token kinds the lexer can produce.
type Kind uint8

const (
	// Identifier is a run of letters/digits starting with a letter.
	Identifier Kind = iota
	// Numeric is a hex, binary, or decimal (possibly fractional) literal.
	Numeric
	// Symbol is a maximal-munch operator or punctuation spelling.
	Symbol
	// Whitespace is a run of space, tab, or carriage return bytes.
	Whitespace
	// NewLine is exactly one '\n'.
	NewLine
	// Comment is an inline "//" or block "/* */" comment.
	Comment
	// String is a double-quoted string literal.
	String
	// Char is a single-quoted character literal.
	Char
	// EndOfFile is the single terminal token covering the sentinel byte.
	EndOfFile
	// LuaBlock is an entire embedded `{ ... }` inner-Lua body, emitted whole.
	LuaBlock
	// Error marks a token the lexer could not classify or close cleanly.
	Error
	// None is the sentinel for "no token cached"; never emitted by the lexer.
	None
)

var kindNames = [...]string{
	Identifier: "Identifier",
	Numeric:    "Numeric",
	Symbol:     "Symbol",
	Whitespace: "Whitespace",
	NewLine:    "NewLine",
	Comment:    "Comment",
	String:     "String",
	Char:       "Char",
	EndOfFile:  "EndOfFile",
	LuaBlock:   "LuaBlock",
	Error:      "Error",
	None:       "None",
}

// String returns the kind's name, or "Kind(n)" for an out-of-range value.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a flat record into the source buffer: callers re-slice the
// source with Offset/Length when they need the spelling. Tokens carry no
// decoded value.
type Token struct {
	Kind   Kind
	Offset int
	Length int
}

// End returns the offset one past the token's last byte.
func (t Token) End() int {
	return t.Offset + t.Length
}

// Text returns the token's spelling by re-slicing src.
func (t Token) Text(src []byte) string {
	return string(src[t.Offset:t.End()])
}
