package lexer

import (
	"fmt"

	"github.com/clua-lang/clua/token"
)

// Mode is the active sub-lexer. Switching mode resets both LuaU sub-states.
type Mode uint8

const (
	// ModeCLua is the initial, outer C/C++-like host mode.
	ModeCLua Mode = iota
	// ModeLuaUCapture is the transient mode entered at '@' that still
	// tokenizes as host but tracks '['/']' balance.
	ModeLuaUCapture
	// ModeLuaU is the opaque single-token consumption of a `{ ... }`
	// embedded Lua body.
	ModeLuaU
)

func (m Mode) String() string {
	switch m {
	case ModeCLua:
		return "CLua"
	case ModeLuaUCapture:
		return "LuaUCapture"
	case ModeLuaU:
		return "LuaU"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// captureState tracks '['/']' balance during the `@Ident [...]` prologue.
type captureState struct {
	braceBalance int
	metFirstOpen bool
}

// codeState tracks '{'/'}' balance during an embedded LuaU body.
type codeState struct {
	braceBalance int
	metFirstOpen bool
}

// Context is the lexer's mutable state: the cursor, the active mode, the
// per-mode sub-state, the last-emitted side-hints, and the emit guard
// that traps a consumer recording more than one hint for a single token.
type Context struct {
	Cursor *Cursor

	mode    Mode
	capture captureState
	code    codeState

	emitted bool

	// UltimateKind and OriginalKind mirror the original lexer's
	// ultimate_token_type/original_token_type pair: UltimateKind is what
	// the current token will actually be emitted as (promoted to Error
	// or Numeric etc. by a consumer's record call); OriginalKind is
	// whatever the mode driver guessed before the consumer ran, kept
	// around purely so a caller doing manual error recovery can see what
	// the dispatcher originally thought this token was.
	UltimateKind Kind
	OriginalKind Kind

	LastError   token.ErrorCode
	LastNumber  token.NumberHint
	LastSymbol  token.SymbolKind
	LastKeyword token.Keyword
}

// Kind is an alias of token.Kind scoped to this package for brevity in
// mode-driver signatures.
type Kind = token.Kind

// NewContext creates a Context over src, starting in ModeCLua.
func NewContext(src []byte) *Context {
	return &Context{Cursor: NewCursor(src)}
}

// ModeNow returns the currently active consumer mode.
func (ctx *Context) ModeNow() Mode { return ctx.mode }

// SwitchMode changes the active mode and resets both LuaU sub-states, the
// way the original's switch_consumer_mode does.
func (ctx *Context) SwitchMode(m Mode) {
	ctx.mode = m
	ctx.capture = captureState{}
	ctx.code = codeState{}
}

// tokenEnter clears the emit guard at the start of every token, mirroring
// LexerContext::token_enter.
func (ctx *Context) tokenEnter() {
	ctx.emitted = false
}

func (ctx *Context) onEmit() {
	if ctx.emitted {
		panic("lexer: context: attempted to emit more than one side-hint for a single token")
	}
	ctx.emitted = true
}

// RecordError records code as the current token's side-hint and promotes
// the token's ultimate kind to Error.
func (ctx *Context) RecordError(code token.ErrorCode) {
	ctx.onEmit()
	ctx.LastError = code
	ctx.OriginalKind = ctx.UltimateKind
	ctx.UltimateKind = token.Error
}

// RecordNumber records base/typ as the current token's side-hint and
// promotes the token's ultimate kind to Numeric.
func (ctx *Context) RecordNumber(base token.NumberBase, typ token.NumberType) {
	ctx.onEmit()
	ctx.LastNumber = token.NumberHint{Base: base, Type: typ}
	ctx.OriginalKind = ctx.UltimateKind
	ctx.UltimateKind = token.Numeric
}

// RecordSymbol records kind as the current token's side-hint and promotes
// the token's ultimate kind to Symbol.
func (ctx *Context) RecordSymbol(kind token.SymbolKind) {
	ctx.onEmit()
	ctx.LastSymbol = kind
	ctx.OriginalKind = ctx.UltimateKind
	ctx.UltimateKind = token.Symbol
}

// RecordIdentifier looks spelling up in the keyword table, records the
// result as the current token's side-hint, and promotes the token's
// ultimate kind to Identifier.
func (ctx *Context) RecordIdentifier(spelling string) {
	ctx.onEmit()
	ctx.LastKeyword = token.LookupKeyword(spelling)
	ctx.OriginalKind = ctx.UltimateKind
	ctx.UltimateKind = token.Identifier
}

// HasEmitted reports whether the current token has already recorded a
// side-hint.
func (ctx *Context) HasEmitted() bool { return ctx.emitted }
