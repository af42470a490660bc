// Package cursor implements the lookahead token cursor described in
// spec.md §4.B: a materialized token list plus a position index, with a
// nested savepoint stack so the parser can speculatively try a production
// and roll back to retry another without re-lexing. It is grounded on
// original_source/javalang/util.py's LookAheadListIterator, which holds
// the same list/marker/saved_markers shape; advance/peek/rollback are all
// O(1) here for the same reason they are there: the cursor owns the whole
// token slice up front instead of pulling from a live iterator.
package cursor

import "github.com/c2nes/javalang/token"

// Cursor walks a fixed slice of tokens with unbounded lookahead and
// nested speculative savepoints.
type Cursor struct {
	tokens []token.Token
	pos    int
	marks  []int
}

// New creates a Cursor over tokens. tokens must end with an EndOfInput
// token; Peek returns it forever once the cursor reaches the end,
// mirroring LookAheadListIterator.look's "past the end returns the
// default" behavior without needing a sentinel default value. Advance
// never moves past that token, so Last then returns the token before it.
func New(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Peek returns the token i positions ahead of the cursor (Peek(0) is the
// next token to be consumed). Requesting past the end of the stream
// returns the trailing EndOfInput token repeatedly.
func (c *Cursor) Peek(i int) token.Token {
	idx := c.pos + i
	if idx >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[idx]
}

// Last returns the most recently consumed token. Calling it before the
// first Advance returns the zero Token.
func (c *Cursor) Last() token.Token {
	if c.pos == 0 {
		return token.Token{}
	}
	return c.tokens[c.pos-1]
}

// Advance consumes and returns the next token.
func (c *Cursor) Advance() token.Token {
	t := c.Peek(0)
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return t
}

// AtEnd reports whether the cursor has reached the trailing EndOfInput
// token.
func (c *Cursor) AtEnd() bool {
	return c.Peek(0).Kind == token.EndOfInput
}

// Save pushes a savepoint at the cursor's current position, returning a
// token identifying it for Commit/Rollback.
func (c *Cursor) Save() int {
	c.marks = append(c.marks, c.pos)
	return len(c.marks) - 1
}

// Rollback restores the cursor to the position recorded by the savepoint
// mark and pops it and every savepoint pushed after it, mirroring
// pop_marker(reset=True).
func (c *Cursor) Rollback(mark int) {
	c.pos = c.marks[mark]
	c.marks = c.marks[:mark]
}

// Commit discards the savepoint mark without moving the cursor, keeping
// its current position, mirroring pop_marker(reset=False): the consumed
// tokens stay consumed, and the mark stack unwinds just as Rollback's
// does.
func (c *Cursor) Commit(mark int) {
	c.marks = c.marks[:mark]
}

// Try runs fn speculatively: if fn returns a non-nil error, the cursor is
// rolled back to its pre-call position and the error is returned;
// otherwise the speculative advance is committed. This is the bounded
// speculation primitive named in spec.md §4.B and §9 ("a handful of
// lookahead helpers implemented via savepoint/rollback, not a generic
// backtracking engine").
func (c *Cursor) Try(fn func() error) error {
	mark := c.Save()
	if err := fn(); err != nil {
		c.Rollback(mark)
		return err
	}
	c.Commit(mark)
	return nil
}
