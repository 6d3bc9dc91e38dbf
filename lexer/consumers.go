package lexer

import (
	"github.com/clua-lang/clua/charclass"
	"github.com/clua-lang/clua/token"
)

// Each consumer below assumes the mode driver has already guessed the
// token kind from the leading byte and assumes the cursor still sits on
// that leading byte. A consumer advances the cursor past the whole token
// and, if the spelling demands it, calls exactly one Record* method on
// ctx to promote the token's ultimate kind (grounded on
// original_source/src/lexer/lexer.cpp's consume_*_token family).

func consumeNumbersAndLetters(ctx *Context) {
	c := ctx.Cursor
	for {
		cls := charclass.Host[c.Current()]
		if cls != charclass.Numeric && cls != charclass.Letter {
			return
		}
		c.Consume(1)
	}
}

func consumeDigits(ctx *Context) int {
	c := ctx.Cursor
	n := 0
	for charclass.Host[c.Current()] == charclass.Numeric {
		c.Consume(1)
		n++
	}
	return n
}

// consumeIdentifier consumes a Letter followed by a run of Letter|Numeric
// and records the spelling's keyword classification.
func consumeIdentifier(ctx *Context) {
	c := ctx.Cursor
	offset := c.Index()
	consumeNumbersAndLetters(ctx)
	spelling := string(c.Slice(offset, c.Index()-offset))
	ctx.RecordIdentifier(spelling)
}

// consumeHexNumeric consumes a "0x" prefixed hexadecimal integer literal.
func consumeHexNumeric(ctx *Context) {
	c := ctx.Cursor
	c.Consume(2) // '0x'

	if !charclass.IsHexDigit(c.Current()) {
		ctx.RecordError(token.MalformedNumber)
		return
	}

	length := 0
	for charclass.IsHexDigit(c.Current()) {
		c.Consume(1)
		length++
	}

	if !charclass.IsNumberCompatible(charclass.Host[c.Current()]) {
		ctx.RecordError(token.MalformedNumber)
		return
	}
	if length == 0 {
		ctx.RecordError(token.TruncatedNumberSequence)
		return
	}
	ctx.RecordNumber(token.Hex, token.Integer)
}

// consumeBinNumeric consumes a "0b" prefixed binary integer literal.
func consumeBinNumeric(ctx *Context) {
	c := ctx.Cursor
	c.Consume(2) // '0b'

	if !charclass.IsBinDigit(c.Current()) {
		ctx.RecordError(token.MalformedNumber)
		return
	}

	length := 0
	for charclass.IsBinDigit(c.Current()) {
		c.Consume(1)
		length++
	}

	if !charclass.IsNumberCompatible(charclass.Host[c.Current()]) {
		ctx.RecordError(token.MalformedNumber)
		return
	}
	if length == 0 {
		ctx.RecordError(token.TruncatedNumberSequence)
		return
	}
	ctx.RecordNumber(token.Binary, token.Integer)
}

// consumeDecimalNumeric consumes a plain decimal literal in one of the
// three shapes `[digits]`, `.[digits]`, or `[digits].[digits]`.
//
// A lone `'.'` immediately followed by a second `'.'` (spelling `".."`,
// the Range symbol) never belongs to the number: `"1..2"` must tokenize
// as `Numeric("1")`, `Symbol("..")`, `Numeric("2")`, not as a malformed
// `"1."` float swallowing half of the Range operator. The one-byte
// lookahead past the candidate trailing dot exists only to make that
// call, matching spec.md's own worked example over a literal reading of
// original_source's dot-then-consume order.
func consumeDecimalNumeric(ctx *Context) {
	c := ctx.Cursor
	firstChar := c.Current()

	if firstChar == '.' {
		c.Consume(1)
		if charclass.Host[c.Current()] != charclass.Numeric {
			panic("lexer: consumeDecimalNumeric: dispatcher misclassified a leading '.' with no following digit")
		}
	}

	consumeDigits(ctx)

	if firstChar == '.' {
		ctx.RecordNumber(token.Decimal, token.Float)
		return
	}

	middleChar := c.Current()
	middleClass := charclass.Host[middleChar]

	switch {
	case middleChar == '.' && c.Peek1() == '.':
		ctx.RecordNumber(token.Decimal, token.Integer)
		return
	case middleChar == '.':
		c.Consume(1)
		consumeDigits(ctx)
	case charclass.IsNumberCompatible(middleClass):
		ctx.RecordNumber(token.Decimal, token.Integer)
		return
	default:
		ctx.RecordError(token.MalformedNumber)
		return
	}

	endClass := charclass.Host[c.Current()]
	if charclass.IsNumberCompatible(endClass) {
		ctx.RecordNumber(token.Decimal, token.Float)
	} else {
		ctx.RecordError(token.MalformedNumber)
	}
}

// consumeNumeric dispatches to the hex/binary/decimal consumer based on
// the leading "0x"/"0b" prefix.
func consumeNumeric(ctx *Context) {
	c := ctx.Cursor
	current, next := c.Current(), c.Peek1()

	switch {
	case current == '0' && next == 'x':
		consumeHexNumeric(ctx)
	case current == '0' && next == 'b':
		consumeBinNumeric(ctx)
	default:
		consumeDecimalNumeric(ctx)
	}
}

// consumeSymbol greedily extends the candidate spelling while it remains
// a known prefix in the symbol table, committing the longest match. A
// byte with no known spelling at all (kind still Unknown on the first
// failed lookup) is consumed anyway, so the cursor always advances at
// least one byte per token even when recording UnknownSymbol.
func consumeSymbol(ctx *Context) {
	c := ctx.Cursor
	start := c.Index()

	kind := token.Unknown
	for charclass.Host[c.Current()] == charclass.Symbol {
		length := c.Index() - start + 1
		next := token.LookupSymbol(c.Slice(start, length))
		if next == token.Unknown {
			if kind == token.Unknown {
				c.Consume(1)
			}
			break
		}
		kind = next
		c.Consume(1)
	}

	if kind == token.Unknown {
		ctx.RecordError(token.UnknownSymbol)
		return
	}
	ctx.RecordSymbol(kind)
}

func consumeWhitespace(ctx *Context) {
	c := ctx.Cursor
	for charclass.Host[c.Current()] == charclass.Whitespace {
		c.Consume(1)
	}
}

func consumeNewLine(ctx *Context) {
	ctx.Cursor.Consume(1)
}

func consumeInlineComment(ctx *Context) {
	c := ctx.Cursor
	for {
		cls := charclass.Host[c.Current()]
		if cls == charclass.NewLine || cls == charclass.EndOfFile {
			return
		}
		c.Consume(1)
	}
}

func consumeBlockComment(ctx *Context) {
	c := ctx.Cursor
	c.Consume(2) // '/*'

	for charclass.Host[c.Current()] != charclass.EndOfFile {
		if c.Current() == '*' && c.Peek1() == '/' {
			c.Consume(2)
			return
		}
		c.Consume(1)
	}
	ctx.RecordError(token.UnclosedComment)
}

// consumeComment dispatches to the inline or block comment consumer
// based on the second byte of the "//"/"/*" opener.
func consumeComment(ctx *Context) {
	if ctx.Cursor.Peek1() == '*' {
		consumeBlockComment(ctx)
	} else {
		consumeInlineComment(ctx)
	}
}

func consumeString(ctx *Context) {
	c := ctx.Cursor
	for {
		c.Consume(1)
		cur := c.Current()
		cls := charclass.Host[cur]

		if cls == charclass.EndOfFile {
			ctx.RecordError(token.UnclosedString)
			return
		}
		if cur == '\\' {
			c.Consume(1)
			if charclass.Host[c.Current()] == charclass.EndOfFile {
				ctx.RecordError(token.UnclosedString)
				return
			}
			continue
		}
		if cur == '"' {
			c.Consume(1)
			return
		}
	}
}

func consumeChar(ctx *Context) {
	c := ctx.Cursor
	c.Consume(1) // opening '\''

	count := 0
	for c.Current() != '\'' {
		if c.Current() == 0 {
			ctx.RecordError(token.UnclosedChar)
			return
		}
		if c.Current() == '\\' {
			c.Consume(1)
			if c.Current() == 0 {
				ctx.RecordError(token.UnclosedChar)
				return
			}
		}
		c.Consume(1)
		count++
	}
	c.Consume(1) // closing '\''

	switch {
	case count == 0:
		ctx.RecordError(token.InvalidCharCode)
	case count > 1:
		ctx.RecordError(token.TooLongChar)
	}
}

func consumeEOF(ctx *Context) {
	ctx.Cursor.Consume(1)
}

func consumeErrorFallback(ctx *Context) {
	ctx.RecordError(token.UnexpectedCharacter)
	ctx.Cursor.Consume(1)
}
