package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clua-lang/clua/token"
)

func TestContextRecordSetsUltimateKindAndPreservesOriginal(t *testing.T) {
	ctx := NewContext([]byte("x"))
	ctx.tokenEnter()
	ctx.UltimateKind = token.Identifier
	ctx.OriginalKind = token.Identifier

	ctx.RecordError(token.UnexpectedCharacter)

	assert.Equal(t, token.Error, ctx.UltimateKind)
	assert.Equal(t, token.Identifier, ctx.OriginalKind)
	assert.Equal(t, token.UnexpectedCharacter, ctx.LastError)
}

func TestContextOnEmitPanicsOnDoubleEmit(t *testing.T) {
	ctx := NewContext([]byte("x"))
	ctx.tokenEnter()
	ctx.RecordSymbol(token.Plus)

	require.Panics(t, func() {
		ctx.RecordError(token.UnknownSymbol)
	})
}

func TestContextTokenEnterClearsEmitGuard(t *testing.T) {
	ctx := NewContext([]byte("x"))
	ctx.tokenEnter()
	ctx.RecordIdentifier("x")
	assert.True(t, ctx.HasEmitted())

	ctx.tokenEnter()
	assert.False(t, ctx.HasEmitted())

	assert.NotPanics(t, func() {
		ctx.RecordNumber(token.Decimal, token.Integer)
	})
}

func TestContextSwitchModeResetsSubStates(t *testing.T) {
	ctx := NewContext([]byte("[[{{"))
	ctx.SwitchMode(ModeLuaUCapture)

	ctx.capture.braceBalance = 2
	ctx.capture.metFirstOpen = true

	ctx.SwitchMode(ModeLuaU)
	assert.Equal(t, ModeLuaU, ctx.ModeNow())
	assert.Equal(t, captureState{}, ctx.capture)

	ctx.code.braceBalance = 3
	ctx.SwitchMode(ModeCLua)
	assert.Equal(t, codeState{}, ctx.code)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "CLua", ModeCLua.String())
	assert.Equal(t, "LuaUCapture", ModeLuaUCapture.String())
	assert.Equal(t, "LuaU", ModeLuaU.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
