package lexer

import "github.com/clua-lang/clua/token"

// EOFToken is the reusable static sentinel TokenStreamReader returns for
// any out-of-range index, so callers doing random access past the end of
// the stream never need a separate bounds check. Grounded on the
// original's EOFToken marker type (original_source/src/lexer/lexer.hpp),
// generalized here to a single shared value rather than a distinct type.
var EOFToken = token.Token{Kind: token.EndOfFile}

// TokenStreamReader materializes an entire token stream up front and
// offers random access over it, for callers (such as tests) that want to inspect or re-walk the stream without re-driving the
// Lexer façade's single-token-at-a-time contract.
type TokenStreamReader struct {
	tokens []token.Token
	pos    int
}

// NewTokenStreamReader drains lex by repeated ProcessNextToken calls
// until an EndOfFile token is produced (inclusive), and returns a reader
// over the materialized slice.
func NewTokenStreamReader(lex *Lexer) *TokenStreamReader {
	var tokens []token.Token
	for {
		tok := lex.ProcessNextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EndOfFile {
			break
		}
	}
	return &TokenStreamReader{tokens: tokens}
}

// Len returns the number of tokens materialized, including the trailing
// EndOfFile token.
func (r *TokenStreamReader) Len() int { return len(r.tokens) }

// See returns the token at the reader's current position without
// advancing it, or EOFToken if the position is out of range.
func (r *TokenStreamReader) See() token.Token { return r.Peek(0) }

// Peek returns the token k positions ahead of the reader's current
// position without advancing it, or EOFToken if that position is out of
// range.
func (r *TokenStreamReader) Peek(k int) token.Token {
	i := r.pos + k
	if i < 0 || i >= len(r.tokens) {
		return EOFToken
	}
	return r.tokens[i]
}

// Advance moves the reader forward by n positions (n may be negative).
func (r *TokenStreamReader) Advance(n int) { r.pos += n }

// Slice returns the tokens in [start, start+length), clamped to the
// materialized stream's bounds.
func (r *TokenStreamReader) Slice(start, length int) []token.Token {
	end := start + length
	if start < 0 {
		start = 0
	}
	if end > len(r.tokens) {
		end = len(r.tokens)
	}
	if start >= end {
		return nil
	}
	return r.tokens[start:end]
}

// All returns every materialized token, including the trailing
// EndOfFile token.
func (r *TokenStreamReader) All() []token.Token { return r.tokens }
