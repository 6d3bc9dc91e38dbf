package token

import "strconv"

// NumberBase is the radix a Numeric token was written in.
type NumberBase uint8

const (
	NoBase NumberBase = iota
	Hex
	Decimal
	Binary
)

var numberBaseNames = [...]string{
	NoBase:  "NoBase",
	Hex:     "Hex",
	Decimal: "Decimal",
	Binary:  "Binary",
}

func (b NumberBase) String() string {
	if int(b) < len(numberBaseNames) {
		return numberBaseNames[b]
	}
	return "NumberBase(" + strconv.Itoa(int(b)) + ")"
}

// NumberType distinguishes an integer literal from a fractional one.
// Only Decimal numbers can be Float; Hex and Binary are always Integer.
type NumberType uint8

const (
	NoNumberType NumberType = iota
	Integer
	Float
)

var numberTypeNames = [...]string{
	NoNumberType: "NoNumberType",
	Integer:      "Integer",
	Float:        "Float",
}

func (t NumberType) String() string {
	if int(t) < len(numberTypeNames) {
		return numberTypeNames[t]
	}
	return "NumberType(" + strconv.Itoa(int(t)) + ")"
}

// NumberHint is the side-hint attached to a Numeric token.
type NumberHint struct {
	Base NumberBase
	Type NumberType
}
