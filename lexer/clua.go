package lexer

import (
	"github.com/clua-lang/clua/charclass"
	"github.com/clua-lang/clua/token"
)

// guessCLuaKind inspects the leading byte (and one byte of lookahead)
// and returns the token kind a CLua- or LuaUCapture-mode token will
// start as, before any consumer has run. Grounded on
// original_source/src/lexer/lexer.cpp's CLua::guess_token_type.
func guessCLuaKind(ctx *Context) Kind {
	c := ctx.Cursor
	current := c.Current()
	cls := charclass.Host[current]

	switch cls {
	case charclass.Error:
		return token.Error
	case charclass.Letter:
		return token.Identifier
	case charclass.Numeric:
		return token.Numeric
	case charclass.Symbol:
		next := c.Peek1()
		switch {
		case current == '/' && (next == '/' || next == '*'):
			return token.Comment
		case current == '"':
			return token.String
		case current == '\'':
			return token.Char
		case current == '.' && charclass.Host[next] == charclass.Numeric:
			return token.Numeric
		}
		return token.Symbol
	case charclass.Whitespace:
		return token.Whitespace
	case charclass.NewLine:
		return token.NewLine
	case charclass.EndOfFile:
		return token.EndOfFile
	default:
		return token.Error
	}
}

// dispatchCLua consumes one token of the given guessed kind while in
// ModeCLua. Encountering '@' on a Symbol token switches the context into
// ModeLuaUCapture before the symbol itself is consumed, matching the
// original's inline mode switch inside CLua::get_next_token.
func dispatchCLua(ctx *Context, kind Kind) {
	switch kind {
	case token.Identifier:
		consumeIdentifier(ctx)
	case token.Numeric:
		consumeNumeric(ctx)
	case token.Symbol:
		if ctx.Cursor.Current() == '@' {
			ctx.SwitchMode(ModeLuaUCapture)
		}
		consumeSymbol(ctx)
	case token.Whitespace:
		consumeWhitespace(ctx)
	case token.Comment:
		consumeComment(ctx)
	case token.String:
		consumeString(ctx)
	case token.Char:
		consumeChar(ctx)
	case token.NewLine:
		consumeNewLine(ctx)
	case token.EndOfFile:
		consumeEOF(ctx)
	case token.Error:
		consumeErrorFallback(ctx)
	default:
		panic("lexer: dispatchCLua: unhandled guessed token kind " + kind.String())
	}
}

// dispatchLuaUCapture consumes one token while in ModeLuaUCapture: same
// token set as CLua, but a Symbol token additionally tracks '['/']'
// balance, and the mode reverts to ModeLuaU once that balance returns to
// zero after having seen at least one bracket. Grounded on
// original_source/src/lexer/lexer.cpp's LuaUCapture::get_next_token.
func dispatchLuaUCapture(ctx *Context, kind Kind) {
	if kind == token.Symbol {
		switch ctx.Cursor.Current() {
		case '[':
			ctx.capture.metFirstOpen = true
			ctx.capture.braceBalance++
		case ']':
			ctx.capture.metFirstOpen = true
			ctx.capture.braceBalance--
		}
		consumeSymbol(ctx)
	} else {
		dispatchCLua(ctx, kind)
	}

	if ctx.capture.braceBalance == 0 && ctx.capture.metFirstOpen {
		ctx.SwitchMode(ModeLuaU)
	}
}
