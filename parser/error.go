package parser

import (
	"fmt"

	"github.com/c2nes/javalang/token"
)

// SyntaxError reports a failure to match the grammar at a specific
// position: the token-level analogue of a compile error, grounded on
// original_source/java/parser.py's JavaSyntaxError (description + at).
// spec.md §7: "a syntax error carries a description and a position; it is
// not a panic."
type SyntaxError struct {
	Description string
	At          token.Token
	File        string
}

func (e *SyntaxError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%s: %s (found %q)", e.File, e.At.Span.Start, e.Description, e.At.Value)
	}
	return fmt.Sprintf("%s: %s (found %q)", e.At.Span.Start, e.Description, e.At.Value)
}

// InternalParserError reports a parser invariant violation — a production
// reached a state its own logic believes to be unreachable. It is
// distinct from SyntaxError: a SyntaxError means the input is invalid
// Java, an InternalParserError means the parser itself has a bug
// (original_source/java/parser.py's JavaParserError, raised only from
// build_binary_operation's "should never happen" fallthrough).
type InternalParserError struct {
	Message string
}

func (e *InternalParserError) Error() string {
	return "internal parser error: " + e.Message
}
