package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clua-lang/clua/token"
)

// tok is a terse literal-constructor helper so the table below reads as
// "kind@offset:length" the same way §8 of the source spec describes it.
func tok(kind token.Kind, offset, length int) token.Token {
	return token.Token{Kind: kind, Offset: offset, Length: length}
}

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	lex := New([]byte(src))
	var got []token.Token
	for {
		tt := lex.ProcessNextToken()
		got = append(got, tt)
		if tt.Kind == token.EndOfFile {
			break
		}
	}
	return got
}

func TestScanSimpleIdentifier(t *testing.T) {
	got := allTokens(t, "wdadwad122e312")
	want := []token.Token{
		tok(token.Identifier, 0, 14),
		tok(token.EndOfFile, 14, 1),
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestScanIdentifiersWithWhitespace(t *testing.T) {
	got := allTokens(t, "foo bar")
	want := []token.Token{
		tok(token.Identifier, 0, 3),
		tok(token.Whitespace, 3, 1),
		tok(token.Identifier, 4, 3),
		tok(token.EndOfFile, 7, 1),
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestScanNumericBases(t *testing.T) {
	src := "12 0xFF 0b101"
	lex := New([]byte(src))

	n := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Numeric, 0, 2), n)
	assert.Equal(t, token.NumberHint{Base: token.Decimal, Type: token.Integer}, lex.LastNumber())

	ws := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Whitespace, 2, 1), ws)

	hex := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Numeric, 3, 4), hex)
	assert.Equal(t, token.NumberHint{Base: token.Hex, Type: token.Integer}, lex.LastNumber())

	ws2 := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Whitespace, 7, 1), ws2)

	bin := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Numeric, 8, 5), bin)
	assert.Equal(t, token.NumberHint{Base: token.Binary, Type: token.Integer}, lex.LastNumber())

	eof := lex.ProcessNextToken()
	assert.Equal(t, tok(token.EndOfFile, 13, 1), eof)
}

func TestScanInlineComment(t *testing.T) {
	got := allTokens(t, "// hello world\n")
	want := []token.Token{
		tok(token.Comment, 0, 14),
		tok(token.NewLine, 14, 1),
		tok(token.EndOfFile, 15, 1),
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestScanUnclosedBlockComment(t *testing.T) {
	src := "wdadwad122e312 /* dasd adwa"
	lex := New([]byte(src))

	id := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Identifier, 0, 14), id)

	ws := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Whitespace, 14, 1), ws)

	errTok := lex.ProcessNextToken()
	assert.Equal(t, token.Error, errTok.Kind)
	assert.Equal(t, token.UnclosedComment, lex.LastError())

	eof := lex.ProcessNextToken()
	assert.Equal(t, tok(token.EndOfFile, 27, 1), eof)
}

// TestScanUnrecognizedSymbolByteAdvances covers spec.md §4.6's progress
// guarantee: a lone Symbol-class byte with no entry in token/symbol.go's
// table (not special-cased earlier by guessCLuaKind into Comment/
// String/Char/Numeric) must still advance the cursor and record
// UnknownSymbol, not loop forever re-scanning a zero-length token.
func TestScanUnrecognizedSymbolByteAdvances(t *testing.T) {
	for _, src := range []string{"#", "$", "\\", "`"} {
		t.Run(src, func(t *testing.T) {
			lex := New([]byte(src))

			errTok := lex.ProcessNextToken()
			assert.Equal(t, token.Error, errTok.Kind)
			assert.Equal(t, 0, errTok.Offset)
			assert.Equal(t, 1, errTok.Length, "the cursor must advance at least one byte per token")
			assert.Equal(t, token.UnknownSymbol, lex.LastError())

			eof := lex.ProcessNextToken()
			assert.Equal(t, tok(token.EndOfFile, 1, 1), eof)
		})
	}
}

func TestScanString(t *testing.T) {
	src := `"hello\nworld"`
	got := allTokens(t, src)
	want := []token.Token{
		tok(token.String, 0, len(src)),
		tok(token.EndOfFile, len(src), 1),
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestScanChar(t *testing.T) {
	cases := []struct {
		name      string
		src       string
		wantError token.ErrorCode
	}{
		{name: "single byte", src: `'a'`},
		{name: "empty", src: `''`, wantError: token.InvalidCharCode},
		{name: "too long", src: `'ab'`, wantError: token.TooLongChar},
		{name: "escaped newline", src: `'\n'`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lex := New([]byte(c.src))
			first := lex.ProcessNextToken()

			if c.wantError != token.NoError {
				require.Equal(t, token.Error, first.Kind)
				assert.Equal(t, c.wantError, lex.LastError())
			} else {
				assert.Equal(t, tok(token.Char, 0, len(c.src)), first)
			}

			eof := lex.ProcessNextToken()
			assert.Equal(t, tok(token.EndOfFile, len(c.src), 1), eof)
		})
	}
}

func TestScanNumericDotForms(t *testing.T) {
	// ".5": leading dot, fractional digits only.
	got := allTokens(t, ".5")
	assert.Empty(t, cmp.Diff([]token.Token{
		tok(token.Numeric, 0, 2),
		tok(token.EndOfFile, 2, 1),
	}, got))

	// "5.": a trailing dot alone is a legal float.
	lex := New([]byte("5."))
	n := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Numeric, 0, 2), n)
	assert.Equal(t, token.NumberHint{Base: token.Decimal, Type: token.Float}, lex.LastNumber())
	eof := lex.ProcessNextToken()
	assert.Equal(t, tok(token.EndOfFile, 2, 1), eof)
}

// TestScanRangeNotSwallowedByNumber covers the "1..2" case from §8: the
// number consumer must stop before a '.' that is itself immediately
// followed by a second '.', leaving ".." to tokenize as the Range symbol
// rather than being split across two malformed floats. See DESIGN.md's
// "Deliberate deviation from original_source's decimal-dot consume
// order" entry.
func TestScanRangeNotSwallowedByNumber(t *testing.T) {
	lex := New([]byte("1..2"))

	one := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Numeric, 0, 1), one)
	assert.Equal(t, token.NumberHint{Base: token.Decimal, Type: token.Integer}, lex.LastNumber())

	rng := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Symbol, 1, 2), rng)
	assert.Equal(t, token.Range, lex.LastSymbol())

	two := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Numeric, 3, 1), two)
	assert.Equal(t, token.NumberHint{Base: token.Decimal, Type: token.Integer}, lex.LastNumber())

	eof := lex.ProcessNextToken()
	assert.Equal(t, tok(token.EndOfFile, 4, 1), eof)
}

func TestScanLuaBlockSimple(t *testing.T) {
	src := `@Lua []{print("x")}`
	got := allTokens(t, src)
	want := []token.Token{
		tok(token.Symbol, 0, 1),
		tok(token.Identifier, 1, 3),
		tok(token.Whitespace, 4, 1),
		tok(token.Symbol, 5, 1),
		tok(token.Symbol, 6, 1),
		tok(token.LuaBlock, 7, 12),
		tok(token.EndOfFile, 19, 1),
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestScanLuaBlockIgnoresBraceInsideString(t *testing.T) {
	src := `@Lua []{print("{")}`
	got := allTokens(t, src)
	require.Len(t, got, 7)
	assert.Equal(t, tok(token.LuaBlock, 7, 12), got[5])
	assert.Equal(t, tok(token.EndOfFile, 19, 1), got[6])
}

func TestScanLuaBlockUnclosedAtEOF(t *testing.T) {
	src := `@Lua []{print(1)`
	lex := New([]byte(src))

	for i := 0; i < 5; i++ {
		lex.ProcessNextToken()
	}

	block := lex.ProcessNextToken()
	assert.Equal(t, token.Error, block.Kind)
	assert.Equal(t, 7, block.Offset)
	assert.Equal(t, token.UnclosedLuaBlock, lex.LastError())

	eof := lex.ProcessNextToken()
	assert.Equal(t, token.EndOfFile, eof.Kind)
}

func TestLexerPeekDrainsCacheBeforeScanningAgain(t *testing.T) {
	lex := New([]byte("foo bar"))

	peeked := lex.PeekNextToken()
	assert.Equal(t, tok(token.Identifier, 0, 3), peeked)

	processed := lex.ProcessNextToken()
	assert.Equal(t, peeked, processed)

	next := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Whitespace, 3, 1), next)
}

func TestLexerPeekPanicsOnDoublePeek(t *testing.T) {
	lex := New([]byte("foo"))
	lex.PeekNextToken()
	require.Panics(t, func() {
		lex.PeekNextToken()
	})
}

func TestUnicodeByteInIdentifierSplitsIntoErrorTokens(t *testing.T) {
	// "wdź" - "wd" is a plain identifier, then the two UTF-8 continuation
	// bytes of 'ź' are each classified Unicode at the table but every
	// consumer treats them as Error, one byte at a time (spec.md §9,
	// decision 2 in DESIGN.md).
	src := "wdź"
	lex := New([]byte(src))

	id := lex.ProcessNextToken()
	assert.Equal(t, tok(token.Identifier, 0, 2), id)

	first := lex.ProcessNextToken()
	assert.Equal(t, token.Error, first.Kind)
	assert.Equal(t, 1, first.Length)
	assert.Equal(t, token.UnexpectedCharacter, lex.LastError())

	second := lex.ProcessNextToken()
	assert.Equal(t, token.Error, second.Kind)
	assert.Equal(t, 1, second.Length)
	assert.Equal(t, token.UnexpectedCharacter, lex.LastError())

	eof := lex.ProcessNextToken()
	assert.Equal(t, token.EndOfFile, eof.Kind)
}
