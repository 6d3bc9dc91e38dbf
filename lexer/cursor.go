package lexer

import "fmt"

// Cursor is a byte-indexed view over a source buffer with a virtual
// one-past-end NUL sentinel: reads at or beyond the buffer's length
// return '\0' so consumers never need a separate EOF check before
// calling Current. The cursor never mutates the buffer it borrows.
type Cursor struct {
	src   []byte
	index int
}

// NewCursor returns a Cursor positioned at the start of src. src is
// borrowed for the cursor's lifetime and never copied or mutated.
func NewCursor(src []byte) *Cursor {
	return &Cursor{src: src}
}

// Index is the cursor's current byte offset into the source, 0 <= Index
// <= len(src)+1; it only reaches len(src)+1 once the sentinel itself has
// been consumed.
func (c *Cursor) Index() int { return c.index }

// Len is the length of the underlying source buffer.
func (c *Cursor) Len() int { return len(c.src) }

// CanConsume reports whether n more bytes can be consumed without
// stepping past the one-past-end sentinel position.
func (c *Cursor) CanConsume(n int) bool {
	return c.index+n-1 < c.Len()
}

// CanConsumeSentinel reports whether n more consumes are legal counting
// the virtual sentinel byte as addressable (i.e. the sentinel at
// index == len(src) may itself be consumed, leaving the index at
// len(src)+1; nothing beyond it may).
func (c *Cursor) CanConsumeSentinel(n int) bool {
	return c.index+n-1 < c.Len()+1
}

// CanPeek reports whether a real (non-sentinel) byte exists at
// distance k from the current position.
func (c *Cursor) CanPeek(k int) bool {
	return c.index+k < c.Len()
}

// CanPeekSentinel reports whether offset k from the current position is
// within the addressable range, including the virtual sentinel.
func (c *Cursor) CanPeekSentinel(k int) bool {
	return c.index+k < c.Len()+1
}

// Current returns the byte at the cursor, or '\0' if the cursor sits on
// the virtual one-past-end sentinel.
func (c *Cursor) Current() byte {
	if !c.CanConsume(1) {
		return 0
	}
	return c.src[c.index]
}

// Peek returns the byte k positions ahead of the cursor (default 1 via
// Peek1), or '\0' if that position is the sentinel. Peeking past the
// sentinel panics.
func (c *Cursor) Peek(k int) byte {
	if !c.CanPeekSentinel(k) {
		panic(fmt.Sprintf("lexer: cursor: peek(%d) out of bounds at index %d", k, c.index))
	}
	if !c.CanPeek(k) {
		return 0
	}
	return c.src[c.index+k]
}

// Peek1 is Peek(1), the common case of looking at the byte right after
// Current.
func (c *Cursor) Peek1() byte { return c.Peek(1) }

// Consume advances the cursor by n bytes. Stepping past the virtual
// sentinel (index > len(src)+1) is a programmer-error invariant, not a
// recoverable failure: every consumer is expected to check Current's
// class before calling Consume.
func (c *Cursor) Consume(n int) {
	if !c.CanConsumeSentinel(n) {
		panic(fmt.Sprintf("lexer: cursor: consume(%d) would read past the source buffer at index %d", n, c.index))
	}
	c.index += n
}

// Slice returns a borrowed view [start, start+length) of the source
// buffer. The returned slice must not outlive the buffer it borrows.
func (c *Cursor) Slice(start, length int) []byte {
	return c.src[start : start+length]
}

// SetIndex repositions the cursor, used by the peek/rollback façade to
// restore the post-peek position after returning a cached token.
func (c *Cursor) SetIndex(i int) { c.index = i }
