package lexer

import (
	"github.com/clua-lang/clua/charclass"
	"github.com/clua-lang/clua/token"
)

// luaKind is the inner-Lua driver's own token classification, used only
// to decide how to consume bytes inside a LuaBlock; it never becomes a
// token.Kind on its own — the whole LuaU body is emitted as one
// token.LuaBlock token once brace balance returns to zero. Grounded on
// original_source/src/lexer/lexer.cpp's LuaUCode::LuaUTokenType.
type luaKind uint8

const (
	luaLBracket luaKind = iota
	luaRBracket
	luaString
	luaComment
	luaOther
	luaError
	luaEndOfFile
)

// isValidLuaBlockOpener reports whether the bytes starting peekOffset
// ahead of the cursor spell a long-bracket opener `=*[`.
func isValidLuaBlockOpener(ctx *Context, peekOffset int) bool {
	c := ctx.Cursor
	cur := c.Peek(peekOffset)
	for cur == '=' {
		peekOffset++
		cur = c.Peek(peekOffset)
	}
	return cur == '['
}

func isLuaStringStart(ctx *Context) bool {
	c := ctx.Cursor
	cur := c.Current()
	if cur != '\'' && cur != '"' && cur != '[' && cur != '`' {
		return false
	}
	if cur == '[' {
		return isValidLuaBlockOpener(ctx, 1)
	}
	return true
}

func isLuaCommentStart(ctx *Context) bool {
	c := ctx.Cursor
	return c.Current() == '-' && c.Peek1() == '-'
}

// guessLuaKind classifies the current byte for the inner-Lua driver.
// Grounded on LuaUCode::guess_luau_token_type.
func guessLuaKind(ctx *Context) luaKind {
	c := ctx.Cursor
	cur := c.Current()
	cls := charclass.Lua[cur]

	switch cls {
	case charclass.LuaError:
		return luaError
	case charclass.LuaOther:
		return luaOther
	case charclass.LuaLBrace:
		return luaLBracket
	case charclass.LuaRBrace:
		return luaRBracket
	case charclass.LuaEndOfFile:
		return luaEndOfFile
	case charclass.LuaSymbol:
		switch {
		case isLuaCommentStart(ctx):
			return luaComment
		case isLuaStringStart(ctx):
			return luaString
		default:
			return luaOther
		}
	default:
		return luaError
	}
}

// processIsLuaBlock tests for and consumes a long-bracket opener `[=*[`
// at the cursor, reporting the equals-sign count via equalSignCount. When
// the cursor sits on '[' but no second '[' follows the '=' run, the first
// '[' and the '=' run stay consumed and it returns false. Grounded on
// LuaUCode::process_is_lua_block.
func processIsLuaBlock(ctx *Context, equalSignCount *int) bool {
	c := ctx.Cursor
	if c.Current() != '[' {
		return false
	}

	n := 0
	for c.Peek(n+1) == '=' {
		n++
	}
	*equalSignCount = n
	c.Consume(n + 1)

	if c.Current() != '[' {
		return false
	}
	c.Consume(1)
	return true
}

// processEndOfLuaBlock consumes a candidate long-bracket closer `]=*]`
// at the cursor and reports whether its equals-sign count matches
// equalSignCount. Grounded on LuaUCode::process_end_of_lua_block_token.
func processEndOfLuaBlock(ctx *Context, equalSignCount int) bool {
	c := ctx.Cursor
	if c.Current() != ']' {
		panic("lexer: processEndOfLuaBlock: called with cursor not on ']'")
	}
	c.Consume(1)

	seen := 0
	for c.Current() == '=' {
		seen++
		c.Consume(1)
	}

	if c.Current() != ']' {
		return false
	}
	c.Consume(1)
	return seen == equalSignCount
}

// consumeLuaBlockBody consumes the body of a long-bracket string or
// comment up to and including its matching `]=*]` closer.
func consumeLuaBlockBody(ctx *Context, equalSignCount int) {
	c := ctx.Cursor
	for charclass.Lua[c.Current()] != charclass.LuaEndOfFile {
		if c.Current() == ']' {
			// A failed closer has already consumed at least its ']'.
			if processEndOfLuaBlock(ctx, equalSignCount) {
				return
			}
			continue
		}
		c.Consume(1)
	}
	ctx.RecordError(token.UnclosedLuaBlock)
}

// consumeLuaBasicString consumes a quote-delimited Lua string (single,
// double, or backtick quoted) with backslash escaping.
func consumeLuaBasicString(ctx *Context) {
	c := ctx.Cursor
	quote := c.Current()
	c.Consume(1)

	for charclass.Lua[c.Current()] != charclass.LuaEndOfFile {
		cur := c.Current()
		if cur == quote {
			c.Consume(1)
			return
		}
		if cur == '\\' {
			c.Consume(1)
			if charclass.Lua[c.Current()] == charclass.LuaEndOfFile {
				ctx.RecordError(token.UnclosedLuaBlock)
				return
			}
		}
		c.Consume(1)
	}
}

func consumeLuaString(ctx *Context) {
	equalSignCount := 0
	if processIsLuaBlock(ctx, &equalSignCount) {
		consumeLuaBlockBody(ctx, equalSignCount)
	} else {
		consumeLuaBasicString(ctx)
	}
}

func consumeLuaInlineComment(ctx *Context) {
	c := ctx.Cursor
	for {
		cls := charclass.Lua[c.Current()]
		if cls == charclass.LuaEndOfFile {
			ctx.RecordError(token.UnclosedLuaBlock)
			return
		}
		// A literal newline byte isn't distinguished in the Lua table
		// (it folds into LuaOther), so the original stops only at
		// EndOfFile or an actual '\n' byte.
		if c.Current() == '\n' {
			return
		}
		c.Consume(1)
	}
}

func consumeLuaComment(ctx *Context) {
	ctx.Cursor.Consume(2) // '--'

	equalSignCount := 0
	if processIsLuaBlock(ctx, &equalSignCount) {
		consumeLuaBlockBody(ctx, equalSignCount)
	} else {
		consumeLuaInlineComment(ctx)
	}
}

func consumeLuaOther(ctx *Context) {
	ctx.Cursor.Consume(1)
}

func consumeLuaLBracket(ctx *Context) {
	ctx.code.braceBalance++
	ctx.Cursor.Consume(1)
}

func consumeLuaRBracket(ctx *Context) {
	if ctx.code.braceBalance <= 0 {
		ctx.RecordError(token.UnexpectedTokenType)
		return
	}
	ctx.code.braceBalance--
	ctx.Cursor.Consume(1)
}

// consumeLuaBody consumes the whole `{ ... }` body of an embedded LuaU
// block, one inner element at a time. It returns only once the brace
// balance returns to zero, or immediately on EndOfFile; an error recorded
// by an inner string or comment does not itself stop the loop. Only the
// first error of the block is recorded as its side-hint. Grounded on
// LuaUCode::consume_lua_block.
func consumeLuaBody(ctx *Context) {
	for {
		switch guessLuaKind(ctx) {
		case luaComment:
			consumeLuaComment(ctx)
		case luaString:
			consumeLuaString(ctx)
		case luaLBracket:
			consumeLuaLBracket(ctx)
		case luaRBracket:
			consumeLuaRBracket(ctx)
		case luaOther:
			consumeLuaOther(ctx)
		case luaEndOfFile:
			if !ctx.HasEmitted() {
				ctx.RecordError(token.UnclosedLuaBlock)
			}
			return
		default:
			if !ctx.HasEmitted() {
				ctx.RecordError(token.UnexpectedCharacter)
			}
			ctx.Cursor.Consume(1)
		}

		if ctx.code.braceBalance == 0 {
			return
		}
	}
}

// guessLuaUKind classifies the current byte while in ModeLuaU at the
// outer (CLua-delegated) dispatch level: a '{' begins a new LuaBlock
// token, a "//"/"/*" opener is still a host Comment, any other Symbol
// byte is a Symbol, and every non-Symbol byte falls back to the host
// guesser. Grounded on LuaUCode::guess_token_type.
func guessLuaUKind(ctx *Context) Kind {
	c := ctx.Cursor
	current := c.Current()
	cls := charclass.Host[current]

	if cls == charclass.Symbol {
		next := c.Peek1()
		switch {
		case current == '/' && (next == '/' || next == '*'):
			return token.Comment
		case current == '{':
			return token.LuaBlock
		}
		return token.Symbol
	}
	return guessCLuaKind(ctx)
}

// consumeUnexpectedToken records an UnexpectedTokenType error and
// consumes one byte; it's the ModeLuaU fallback for any guessed kind
// that isn't legal in the gap between the capture prologue and the
// block body. Grounded on LuaUCode::consume_unexpected_token.
func consumeUnexpectedToken(ctx *Context) {
	ctx.RecordError(token.UnexpectedTokenType)
	ctx.Cursor.Consume(1)
}

// dispatchLuaU consumes one token while in ModeLuaU. A LuaBlock token
// consumes the entire `{...}` body (the opening brace already counted by
// consumeLuaBody's first iteration) and returns the context to ModeCLua.
// Only whitespace and comments may otherwise legally appear between the
// capture prologue and the block body; anything else is an
// UnexpectedTokenType error. Grounded on LuaUCode::process_next_token.
func dispatchLuaU(ctx *Context, kind Kind) {
	switch kind {
	case token.LuaBlock:
		consumeLuaBody(ctx)
		ctx.SwitchMode(ModeCLua)
	case token.Whitespace:
		consumeWhitespace(ctx)
	case token.Comment:
		consumeComment(ctx)
	case token.Error:
		consumeErrorFallback(ctx)
	case token.None:
		panic("lexer: dispatchLuaU: guesser produced None, which is never a legal guessed kind")
	default:
		consumeUnexpectedToken(ctx)
	}
}
