package token

import "strconv"

// ErrorCode is the closed set of reasons an Error token can be emitted.
// The lexer never aborts on one of these; it records the code as the
// token's side-hint and keeps scanning.
type ErrorCode uint8

const (
	NoError ErrorCode = iota
	UnknownSymbol
	UnexpectedCharacter
	UnexpectedTokenType
	InvalidByte
	TruncatedUnicodeSequence
	TruncatedNumberSequence
	MalformedNumber
	UnclosedComment
	UnclosedString
	UnclosedChar
	InvalidCharCode
	TooLongChar
	UnclosedLuaBlock
)

var errorCodeNames = [...]string{
	NoError:                  "NoError",
	UnknownSymbol:            "UnknownSymbol",
	UnexpectedCharacter:      "UnexpectedCharacter",
	UnexpectedTokenType:      "UnexpectedTokenType",
	InvalidByte:              "InvalidByte",
	TruncatedUnicodeSequence: "TruncatedUnicodeSequence",
	TruncatedNumberSequence:  "TruncatedNumberSequence",
	MalformedNumber:          "MalformedNumber",
	UnclosedComment:          "UnclosedComment",
	UnclosedString:           "UnclosedString",
	UnclosedChar:             "UnclosedChar",
	InvalidCharCode:          "InvalidCharCode",
	TooLongChar:              "TooLongChar",
	UnclosedLuaBlock:         "UnclosedLuaBlock",
}

// String returns the error code's name, or "ErrorCode(n)" if out of range.
func (c ErrorCode) String() string {
	if int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}
