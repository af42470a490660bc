// Package token defines the closed set of lexical token kinds the Java
// parser consumes, along with source position tracking. Lexical scanning
// itself lives in package lexer; this package is the contract between a
// token producer and the cursor/parser that consume it.
package token

import "fmt"

// Position identifies a single point in a source file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers the tokens from which a node was built: the first and last
// token's positions, per spec.md §3 ("Every node carries a Position{start,
// end}").
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
