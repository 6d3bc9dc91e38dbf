package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenText(t *testing.T) {
	src := []byte("foo bar")
	tok := Token{Kind: Identifier, Offset: 4, Length: 3}
	assert.Equal(t, "bar", tok.Text(src))
	assert.Equal(t, 7, tok.End())
}

func TestLookupSymbolMaximalMunchEntries(t *testing.T) {
	cases := map[string]SymbolKind{
		"+":   Plus,
		"++":  DoublePlus,
		"+=":  PlusEqual,
		"..":  Range,
		".":   Dot,
		"<<=": BitLShiftEqual,
		"?=":  TernaryAssign,
		"??":  Unknown,
	}
	for spelling, want := range cases {
		assert.Equalf(t, want, LookupSymbol([]byte(spelling)), "spelling %q", spelling)
	}
}

func TestLookupKeyword(t *testing.T) {
	assert.Equal(t, KeywordIf, LookupKeyword("if"))
	assert.Equal(t, KeywordLua, LookupKeyword("Lua"))
	assert.Equal(t, KeywordUnknown, LookupKeyword("notakeyword"))
	assert.Equal(t, KeywordUnknown, LookupKeyword(""))
}

func TestAsPanicsOnKindMismatch(t *testing.T) {
	tok := Token{Kind: Identifier, Offset: 0, Length: 3}
	require.Panics(t, func() {
		As[NumericView](tok)
	})

	view := As[IdentifierView](tok)
	assert.Equal(t, tok, view.Token)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Identifier", Identifier.String())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}
