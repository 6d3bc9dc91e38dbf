package lexer

import (
	"fmt"
	"io"

	participlelexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/clua-lang/clua/token"
)

// ParticipleAdapter wraps the core Lexer to satisfy participle/v2's
// lexer.Definition and lexer.Lexer interfaces, for the out-of-scope
// parser/evaluator collaborator the spec names as the lexer's only
// client: it is a pure translation layer, never an independent scanner.
// Grounded on lukeod-gosmi's parser/lexer.LexerDefinition/Lexer pair,
// generalized from its hand-rolled rune scanner to wrap our own
// byte-offset Lexer façade instead of re-implementing scanning.
type ParticipleAdapter struct {
	src []byte
	lex *Lexer
}

// NewParticipleAdapter wraps an existing core Lexer for participle-based
// callers such as a future parser.
func NewParticipleAdapter(src []byte, lex *Lexer) *ParticipleAdapter {
	return &ParticipleAdapter{src: src, lex: lex}
}

// Next implements participle/v2's lexer.Lexer, translating the core
// Lexer's next token into participle's lexer.Token. Kind becomes the
// participle TokenType, Offset/Length become participle's byte Offset
// and Value. There is no line/column tracking (the spec explicitly
// excludes source-location tracking beyond byte offsets), so Pos.Line
// and Pos.Column are always 1.
func (a *ParticipleAdapter) Next() (participlelexer.Token, error) {
	tok := a.lex.ProcessNextToken()

	typ := participlelexer.TokenType(tok.Kind)
	if tok.Kind == token.EndOfFile {
		typ = participlelexer.EOF
	}

	return participlelexer.Token{
		Type:  typ,
		Value: tok.Text(a.src),
		Pos: participlelexer.Position{
			Offset: tok.Offset,
			Line:   1,
			Column: 1,
		},
	}, nil
}

// ParticipleDefinition implements participle/v2's lexer.Definition over
// the CLua core Lexer, always starting a fresh tokenization in ModeCLua.
type ParticipleDefinition struct{}

func (ParticipleDefinition) Lex(filename string, r io.Reader) (participlelexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("clua lexer: reading %s: %w", filename, err)
	}
	return NewParticipleAdapter(src, New(src)), nil
}

func (ParticipleDefinition) LexString(filename string, input string) (participlelexer.Lexer, error) {
	src := []byte(input)
	return NewParticipleAdapter(src, New(src)), nil
}

func (ParticipleDefinition) LexBytes(filename string, src []byte) (participlelexer.Lexer, error) {
	return NewParticipleAdapter(src, New(src)), nil
}

// Symbols implements participle/v2's lexer.Definition, mapping every
// token.Kind name to its participle TokenType so participle can render
// readable error messages ("unexpected Symbol" instead of "unexpected
// token type 2").
func (ParticipleDefinition) Symbols() map[string]participlelexer.TokenType {
	out := make(map[string]participlelexer.TokenType, token.None+1)
	for k := token.Identifier; k <= token.None; k++ {
		out[k.String()] = participlelexer.TokenType(k)
	}
	return out
}
