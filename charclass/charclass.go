// Package charclass holds the two 256-entry byte classification tables the
// lexer dispatches on: one for host (CLua) mode, one for inner-Lua (LuaU)
// mode. Both are built once, at package init, mirroring the original C++
// lexer's immediately-invoked table-builder lambdas.
package charclass

import "strconv"

// Class is the coarse classification of a single source byte.
type Class uint8

const (
	Letter Class = iota
	Unicode
	Numeric
	Symbol
	Whitespace
	NewLine
	EndOfFile
	Error
)

var classNames = [...]string{
	Letter:     "Letter",
	Unicode:    "Unicode",
	Numeric:    "Numeric",
	Symbol:     "Symbol",
	Whitespace: "Whitespace",
	NewLine:    "NewLine",
	EndOfFile:  "EndOfFile",
	Error:      "Error",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Host is the byte -> Class table used in CLua and LuaUCapture, and by
// the LuaU dispatcher between the capture prologue and a block body. The
// bytes of a LuaU block body are classified with Lua instead.
var Host [256]Class

// Lua is the inner-Lua table. It is not a copy of Host and uses its own
// LuaClass set: '{' and '}' are LuaLBrace/LuaRBrace so the inner-Lua mode
// driver can bracket-balance without re-inspecting the byte, NUL is
// LuaEndOfFile, control bytes are LuaError, printable ASCII other than
// letters and digits is LuaSymbol, and every other byte (letters, digits,
// tab, CR, LF, bytes >= 0x80) is LuaOther.
var Lua [256]LuaClass

// LuaClass is the byte classification used by the inner-Lua block driver.
type LuaClass uint8

const (
	LuaSymbol LuaClass = iota
	LuaOther
	LuaEndOfFile
	LuaLBrace
	LuaRBrace
	LuaError
)

var luaClassNames = [...]string{
	LuaSymbol:    "LuaSymbol",
	LuaOther:     "LuaOther",
	LuaEndOfFile: "LuaEndOfFile",
	LuaLBrace:    "LuaLBrace",
	LuaRBrace:    "LuaRBrace",
	LuaError:     "LuaError",
}

func (c LuaClass) String() string {
	if int(c) < len(luaClassNames) {
		return luaClassNames[c]
	}
	return "LuaClass(" + strconv.Itoa(int(c)) + ")"
}

func isControlError(b byte) bool {
	// Bytes below 0x20 are control characters; only tab, CR, LF, and the
	// synthetic NUL sentinel are legal inside source text.
	return b < 0x20 && b != '\t' && b != '\r' && b != '\n' && b != 0x00
}

func isNumeric(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func isHostWhitespace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

// isSpecial reports whether b is one of the inner-Lua driver's symbol
// bytes: printable ASCII (0x20..0x7E, space included) other than letters
// and digits. This mirrors the original's
// TypeClassificator::is_special_char used to build luau_char_type_map.
func isSpecial(b byte) bool {
	switch {
	case b >= '0' && b <= '9', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return false
	case b >= 0x20 && b < 0x7f:
		return true
	default:
		return false
	}
}

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		Host[i] = classifyHost(b)
	}
	Host[0] = EndOfFile

	for i := 0; i < 256; i++ {
		b := byte(i)
		Lua[i] = classifyLua(b)
	}
	Lua['{'] = LuaLBrace
	Lua['}'] = LuaRBrace
	Lua[0] = LuaEndOfFile
}

// classifyHost applies the host character classification priority order
// from §4.2: control-byte rejection, then digit, then letter, then
// host whitespace, then newline, then high-bit Unicode, then the
// remaining printable-ASCII punctuation falls to Symbol.
func classifyHost(b byte) Class {
	switch {
	case isControlError(b):
		return Error
	case isNumeric(b):
		return Numeric
	case isLetter(b):
		return Letter
	case isHostWhitespace(b):
		return Whitespace
	case b == '\n':
		return NewLine
	case b >= 0x80:
		return Unicode
	case b >= '!' && b <= '~':
		return Symbol
	default:
		return Error
	}
}

func classifyLua(b byte) LuaClass {
	switch {
	case isControlError(b):
		return LuaError
	case isSpecial(b):
		return LuaSymbol
	default:
		return LuaOther
	}
}

// IsNumberCompatible reports whether c may legally terminate a numeric
// literal: whitespace, newline, end of file, or the start of a new
// Symbol token. Anything else (a letter, a stray Unicode continuation
// byte) makes the number malformed.
func IsNumberCompatible(c Class) bool {
	switch c {
	case Whitespace, NewLine, EndOfFile, Symbol:
		return true
	default:
		return false
	}
}

func IsHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func IsBinDigit(b byte) bool {
	return b == '0' || b == '1'
}
