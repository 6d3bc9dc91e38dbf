package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clua-lang/clua/token"
)

func TestTokenStreamReaderMaterializesAndAllowsRandomAccess(t *testing.T) {
	r := NewTokenStreamReader(New([]byte("foo bar")))

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, token.Identifier, r.See().Kind)

	assert.Equal(t, token.Whitespace, r.Peek(1).Kind)
	assert.Equal(t, token.Identifier, r.See().Kind, "Peek must not advance the reader")

	r.Advance(1)
	assert.Equal(t, token.Whitespace, r.See().Kind)

	r.Advance(10)
	assert.Equal(t, EOFToken, r.See(), "out-of-range access returns the shared EOF sentinel")
}

func TestTokenStreamReaderSliceClamps(t *testing.T) {
	r := NewTokenStreamReader(New([]byte("foo")))

	all := r.All()
	assert.Len(t, all, 2)

	assert.Equal(t, all, r.Slice(-5, 100))
	assert.Nil(t, r.Slice(5, 1))
}
