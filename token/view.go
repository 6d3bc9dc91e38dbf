package token

import "fmt"

// viewPtr constrains the pointer type of a view struct so As can both
// query the Kind it corresponds to and fill in the wrapped Token without
// a reinterpret-cast (Go has none). Each concrete view below implements
// this via a pointer receiver.
type viewPtr[T any] interface {
	*T
	kind() Kind
	setToken(Token)
}

// As reinterprets tok as the requested view type, the Go analogue of the
// original C++ lexer's TokenGeneric::as<T>(): a kind-checked downcast
// from the generic Token to a view naming the kind it's known to hold.
// It panics if tok.Kind doesn't match T's kind — a programmer-error
// invariant (§7), not a recoverable failure: callers should only request
// a view they already know, from tok.Kind, is valid.
func As[T any, PT viewPtr[T]](tok Token) T {
	var v T
	p := PT(&v)
	if tok.Kind != p.kind() {
		panic(fmt.Sprintf("token: As: expected kind %s, got %s", p.kind(), tok.Kind))
	}
	p.setToken(tok)
	return v
}

type (
	// NumericView is the Numeric-kind view of a Token.
	NumericView struct{ Token }
	// SymbolView is the Symbol-kind view of a Token.
	SymbolView struct{ Token }
	// IdentifierView is the Identifier-kind view of a Token.
	IdentifierView struct{ Token }
	// ErrorView is the Error-kind view of a Token.
	ErrorView struct{ Token }
	// WhitespaceView is the Whitespace-kind view of a Token.
	WhitespaceView struct{ Token }
	// NewLineView is the NewLine-kind view of a Token.
	NewLineView struct{ Token }
	// CommentView is the Comment-kind view of a Token.
	CommentView struct{ Token }
	// StringView is the String-kind view of a Token.
	StringView struct{ Token }
	// CharView is the Char-kind view of a Token.
	CharView struct{ Token }
	// EndOfFileView is the EndOfFile-kind view of a Token.
	EndOfFileView struct{ Token }
	// LuaBlockView is the LuaBlock-kind view of a Token.
	LuaBlockView struct{ Token }
)

func (v *NumericView) kind() Kind { return Numeric }
func (v *NumericView) setToken(t Token) { v.Token = t }
func (v *SymbolView) kind() Kind { return Symbol }
func (v *SymbolView) setToken(t Token) { v.Token = t }
func (v *IdentifierView) kind() Kind { return Identifier }
func (v *IdentifierView) setToken(t Token) { v.Token = t }
func (v *ErrorView) kind() Kind { return Error }
func (v *ErrorView) setToken(t Token) { v.Token = t }
func (v *WhitespaceView) kind() Kind { return Whitespace }
func (v *WhitespaceView) setToken(t Token) { v.Token = t }
func (v *NewLineView) kind() Kind { return NewLine }
func (v *NewLineView) setToken(t Token) { v.Token = t }
func (v *CommentView) kind() Kind { return Comment }
func (v *CommentView) setToken(t Token) { v.Token = t }
func (v *StringView) kind() Kind { return String }
func (v *StringView) setToken(t Token) { v.Token = t }
func (v *CharView) kind() Kind { return Char }
func (v *CharView) setToken(t Token) { v.Token = t }
func (v *EndOfFileView) kind() Kind { return EndOfFile }
func (v *EndOfFileView) setToken(t Token) { v.Token = t }
func (v *LuaBlockView) kind() Kind { return LuaBlock }
func (v *LuaBlockView) setToken(t Token) { v.Token = t }
