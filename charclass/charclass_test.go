package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostTable(t *testing.T) {
	assert.Equal(t, EndOfFile, Host[0])
	assert.Equal(t, Numeric, Host['5'])
	assert.Equal(t, Letter, Host['_'])
	assert.Equal(t, Letter, Host['a'])
	assert.Equal(t, Whitespace, Host[' '])
	assert.Equal(t, Whitespace, Host['\t'])
	assert.Equal(t, Whitespace, Host['\r'])
	assert.Equal(t, NewLine, Host['\n'])
	assert.Equal(t, Symbol, Host['+'])
	assert.Equal(t, Symbol, Host['@'])
	assert.Equal(t, Unicode, Host[0x80])
	assert.Equal(t, Unicode, Host[0xFF])
	assert.Equal(t, Error, Host[0x01])
	assert.Equal(t, Error, Host[0x1F])
}

func TestLuaTable(t *testing.T) {
	assert.Equal(t, LuaEndOfFile, Lua[0])
	assert.Equal(t, LuaLBrace, Lua['{'])
	assert.Equal(t, LuaRBrace, Lua['}'])
	assert.Equal(t, LuaOther, Lua['a'])
	assert.Equal(t, LuaOther, Lua['5'])
	assert.Equal(t, LuaSymbol, Lua['"'])
	assert.Equal(t, LuaSymbol, Lua['-'])
	assert.Equal(t, LuaSymbol, Lua['['])
}

func TestIsNumberCompatible(t *testing.T) {
	assert.True(t, IsNumberCompatible(Whitespace))
	assert.True(t, IsNumberCompatible(NewLine))
	assert.True(t, IsNumberCompatible(EndOfFile))
	assert.True(t, IsNumberCompatible(Symbol))
	assert.False(t, IsNumberCompatible(Letter))
	assert.False(t, IsNumberCompatible(Numeric))
}
