package cursor

import (
	"errors"
	"testing"

	"github.com/c2nes/javalang/token"
)

func idents(values ...string) []token.Token {
	toks := make([]token.Token, 0, len(values)+1)
	for _, v := range values {
		toks = append(toks, token.Token{Kind: token.Identifier, Value: v})
	}
	toks = append(toks, token.Token{Kind: token.EndOfInput})
	return toks
}

func TestAdvanceAndPeek(t *testing.T) {
	c := New(idents("a", "b", "c"))

	if got := c.Peek(0).Value; got != "a" {
		t.Fatalf("Peek(0) = %q, want a", got)
	}
	if got := c.Peek(1).Value; got != "b" {
		t.Fatalf("Peek(1) = %q, want b", got)
	}

	if got := c.Advance().Value; got != "a" {
		t.Fatalf("Advance() = %q, want a", got)
	}
	if got := c.Last().Value; got != "a" {
		t.Fatalf("Last() = %q, want a", got)
	}
	if got := c.Peek(0).Value; got != "b" {
		t.Fatalf("Peek(0) after advance = %q, want b", got)
	}
}

func TestPeekPastEndReturnsEndOfInput(t *testing.T) {
	c := New(idents("a"))
	if got := c.Peek(10).Kind; got != token.EndOfInput {
		t.Fatalf("Peek(10).Kind = %v, want EndOfInput", got)
	}
}

func TestRollbackRestoresPosition(t *testing.T) {
	c := New(idents("a", "b", "c"))

	mark := c.Save()
	c.Advance()
	c.Advance()
	c.Rollback(mark)

	if got := c.Peek(0).Value; got != "a" {
		t.Fatalf("Peek(0) after rollback = %q, want a", got)
	}
}

func TestCommitKeepsPosition(t *testing.T) {
	c := New(idents("a", "b", "c"))

	mark := c.Save()
	c.Advance()
	c.Commit(mark)

	if got := c.Peek(0).Value; got != "b" {
		t.Fatalf("Peek(0) after commit = %q, want b", got)
	}
}

func TestNestedSavepoints(t *testing.T) {
	c := New(idents("a", "b", "c", "d"))

	outer := c.Save()
	c.Advance() // a

	inner := c.Save()
	c.Advance() // b
	c.Rollback(inner)

	if got := c.Peek(0).Value; got != "b" {
		t.Fatalf("Peek(0) after inner rollback = %q, want b", got)
	}

	c.Rollback(outer)
	if got := c.Peek(0).Value; got != "a" {
		t.Fatalf("Peek(0) after outer rollback = %q, want a", got)
	}
}

func TestTryRollsBackOnError(t *testing.T) {
	c := New(idents("a", "b", "c"))

	err := c.Try(func() error {
		c.Advance()
		c.Advance()
		return errors.New("nope")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := c.Peek(0).Value; got != "a" {
		t.Fatalf("Peek(0) after failed Try = %q, want a", got)
	}
}

func TestTryCommitsOnSuccess(t *testing.T) {
	c := New(idents("a", "b", "c"))

	err := c.Try(func() error {
		c.Advance()
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Peek(0).Value; got != "b" {
		t.Fatalf("Peek(0) after successful Try = %q, want b", got)
	}
}
