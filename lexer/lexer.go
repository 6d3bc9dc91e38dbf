// Package lexer implements the hand-written, multi-mode CLua lexer: a
// byte cursor, a mode state machine (CLua, LuaUCapture, LuaU), and a set
// of per-kind token consumers, wrapped in a façade offering one token of
// lookahead and a side-hint channel for auxiliary classification data.
package lexer

import "github.com/clua-lang/clua/token"

// Lexer is the public façade over the mode-driven tokenizer. It owns a
// Context (cursor + mode + side-hints) and a single peeked-token cache
// slot. Grounded on original_source/src/lexer/lexer.hpp's Lexer class,
// generalized from its one CLua-only mode dispatch to all three modes.
type Lexer struct {
	ctx *Context

	peeked    *token.Token
	hasPeeked bool
}

// New returns a Lexer positioned at the start of src, in ModeCLua. src
// is borrowed for the Lexer's lifetime and never mutated.
func New(src []byte) *Lexer {
	return &Lexer{ctx: NewContext(src)}
}

// guessAndDispatch guesses the next token's kind from the active mode
// and consumes it, returning the resulting (possibly promoted) kind.
// Grounded on Lexer::get_next_token's three-way mode switch.
func (l *Lexer) guessAndDispatch() token.Kind {
	ctx := l.ctx
	var guessed token.Kind

	switch ctx.ModeNow() {
	case ModeCLua:
		guessed = guessCLuaKind(ctx)
		ctx.OriginalKind, ctx.UltimateKind = guessed, guessed
		dispatchCLua(ctx, guessed)
	case ModeLuaUCapture:
		guessed = guessCLuaKind(ctx)
		ctx.OriginalKind, ctx.UltimateKind = guessed, guessed
		dispatchLuaUCapture(ctx, guessed)
	case ModeLuaU:
		guessed = guessLuaUKind(ctx)
		ctx.OriginalKind, ctx.UltimateKind = guessed, guessed
		dispatchLuaU(ctx, guessed)
	default:
		panic("lexer: guessAndDispatch: unhandled mode")
	}

	return ctx.UltimateKind
}

// nextToken runs one full cursor-advancing tokenization pass and builds
// the resulting Token from the byte range consumed.
func (l *Lexer) nextToken() token.Token {
	l.ctx.tokenEnter()

	start := l.ctx.Cursor.Index()
	kind := l.guessAndDispatch()
	end := l.ctx.Cursor.Index()

	return token.Token{Kind: kind, Offset: start, Length: end - start}
}

// ProcessNextToken drains the peek cache if populated, otherwise scans a
// fresh token. This is the primary entry point a parser drives one token
// at a time.
func (l *Lexer) ProcessNextToken() token.Token {
	if l.hasPeeked {
		tok := *l.peeked
		l.peeked = nil
		l.hasPeeked = false
		return tok
	}
	return l.nextToken()
}

// PeekNextToken returns the next token without consuming it from the
// caller's perspective: the following ProcessNextToken call returns the
// cached token instead of scanning again.
// Calling PeekNextToken while a peeked token is already cached is a
// programmer-error invariant (the façade has only one peek slot).
func (l *Lexer) PeekNextToken() token.Token {
	if l.hasPeeked {
		panic("lexer: PeekNextToken: called with a token already cached; drain it with ProcessNextToken first")
	}
	tok := l.nextToken()
	l.peeked = &tok
	l.hasPeeked = true
	return tok
}

// Mode reports the lexer's current consumer mode.
func (l *Lexer) Mode() Mode { return l.ctx.ModeNow() }

// SetMode forces the lexer into the given mode, resetting both LuaU
// sub-states. Used by the CLI's -lua flag to start tokenizing a source
// buffer that's already inside an embedded Lua body, bypassing the '@'
// capture prologue.
func (l *Lexer) SetMode(m Mode) { l.ctx.SwitchMode(m) }

// LastError returns the error code most recently recorded by any
// consumer, valid until the next token that records a different hint.
func (l *Lexer) LastError() token.ErrorCode { return l.ctx.LastError }

// LastNumber returns the numeric base/type hint most recently recorded.
func (l *Lexer) LastNumber() token.NumberHint { return l.ctx.LastNumber }

// LastSymbol returns the symbol kind most recently recorded.
func (l *Lexer) LastSymbol() token.SymbolKind { return l.ctx.LastSymbol }

// LastKeyword returns the keyword classification most recently recorded
// for an identifier spelling (Unknown for user identifiers).
func (l *Lexer) LastKeyword() token.Keyword { return l.ctx.LastKeyword }

// OriginalKind returns the token kind the active mode's dispatcher
// originally guessed for the most recently produced token, before any
// consumer promoted it (e.g. Symbol promoted to Error). Exposed purely
// for manual error-recovery callers; most parsers only need the Token's
// own Kind field.
func (l *Lexer) OriginalKind() token.Kind { return l.ctx.OriginalKind }

// Text returns the source spelling of tok. src must be the same buffer
// the Lexer was constructed over.
func Text(src []byte, tok token.Token) string { return tok.Text(src) }
