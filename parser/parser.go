// Package parser implements the hand-written recursive-descent Java 8
// parser described by spec.md §4: a single-pass, non-error-recovering
// parser producing a typed ast.Node tree, built directly over
// package cursor's lookahead token cursor. It is grounded
// function-for-function on original_source/java/parser.py (the Python
// javalang parser this module is a Go port of), with lambda and method
// reference support — absent from that Python original, since it predates
// Java 8 — grounded instead on the teacher's (dhamidi-sai) isLambda/
// parseLambdaExpr/parseMethodRef/isCast in java/parser/parser.go.
package parser

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/c2nes/javalang/ast"
	"github.com/c2nes/javalang/cursor"
	"github.com/c2nes/javalang/token"
)

// Parser holds the mutable state of a single parse: the token cursor, and
// the ambient configuration set by Option values. It is not safe for
// concurrent use (spec.md §5: "a Parser instance parses exactly one
// compilation unit on one goroutine; there is no shared mutable state
// between parses").
type Parser struct {
	cur    *cursor.Cursor
	logger commonlog.Logger
	trace  bool
	file   string
}

// New creates a Parser over tokens, applying opts in order.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{cur: cursor.New(tokens)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse tokenizes src is not this function's job (see package lexer); it
// assembles tokens already produced by the lexer into a CompilationUnit,
// the single entry point named in spec.md §6.
func Parse(tokens []token.Token, opts ...Option) (*ast.CompilationUnit, error) {
	return New(tokens, opts...).ParseCompilationUnit()
}

func (p *Parser) tracef(format string, args ...interface{}) {
	if !p.trace || p.logger == nil {
		return
	}
	p.logger.Debug(fmt.Sprintf(format, args...))
}

func (p *Parser) errorf(at token.Token, format string, args ...interface{}) error {
	return &SyntaxError{
		Description: fmt.Sprintf(format, args...),
		At:          at,
		File:        p.file,
	}
}

func (p *Parser) internalf(format string, args ...interface{}) error {
	return &InternalParserError{Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) span(start token.Token) token.Span {
	return token.Span{Start: start.Span.Start, End: p.cur.Last().Span.End}
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token { return p.cur.Peek(0) }

// peekN returns the token i positions ahead without consuming it.
func (p *Parser) peekN(i int) token.Token { return p.cur.Peek(i) }

// peekValue reports whether the next token's literal value matches any of
// values, without consuming it — original_source's would_accept for a
// single position.
func (p *Parser) peekValue(values ...string) bool {
	v := p.peek().Value
	for _, want := range values {
		if v == want {
			return true
		}
	}
	return false
}

// peekKind reports whether the next token has the given kind.
func (p *Parser) peekKind(kind token.Kind) bool {
	return p.peek().Kind == kind
}

// expect consumes and returns the next token if its value matches want,
// otherwise returns a SyntaxError — original_source's accept(tokens, want).
func (p *Parser) expect(want string) (token.Token, error) {
	if !p.peekValue(want) {
		return token.Token{}, p.errorf(p.peek(), "expected %q", want)
	}
	p.tracef("expect %q -> %q", want, p.peek().Value)
	return p.cur.Advance(), nil
}

// expectKind consumes and returns the next token if its kind matches
// want, otherwise returns a SyntaxError.
func (p *Parser) expectKind(want token.Kind, description string) (token.Token, error) {
	if !p.peekKind(want) {
		return token.Token{}, p.errorf(p.peek(), "expected %s", description)
	}
	return p.cur.Advance(), nil
}

// tryConsume consumes and returns true if the next token's value matches
// any of values, otherwise leaves the cursor untouched and returns false
// — original_source's try_accept.
func (p *Parser) tryConsume(values ...string) bool {
	if !p.peekValue(values...) {
		return false
	}
	p.cur.Advance()
	return true
}

// parseIdentifier consumes a single Identifier token and returns its
// text.
func (p *Parser) parseIdentifier() (string, error) {
	tok, err := p.expectKind(token.Identifier, "an identifier")
	if err != nil {
		return "", err
	}
	return tok.Value, nil
}

// parseQualifiedIdentifier consumes "a.b.c" and returns the dotted string
// — original_source's parse_qualified_identifier.
func (p *Parser) parseQualifiedIdentifier() (string, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return "", err
	}
	for p.peekValue(".") && p.peekN(1).Kind == token.Identifier {
		p.cur.Advance()
		part, err := p.parseIdentifier()
		if err != nil {
			return "", err
		}
		name += "." + part
	}
	return name, nil
}

// parseQualifiedIdentifierList consumes a comma-separated list of
// qualified identifiers — original_source's parse_qualified_identifier_list.
func (p *Parser) parseQualifiedIdentifierList() ([]string, error) {
	var names []string
	for {
		name, err := p.parseQualifiedIdentifier()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if !p.tryConsume(",") {
			break
		}
	}
	return names, nil
}

// trySpeculative runs fn against a rollback savepoint; if fn returns an
// error, the cursor is rolled back and (nil, false) is returned, letting
// the caller try a different production. This is spec.md §4.B and §9's
// "bounded speculation": used only at the handful of genuinely ambiguous
// points in the grammar (cast vs. parenthesized expression, local variable
// declaration vs. expression statement, and the for-loop header forms).
// Lambdas are recognized by isLambda's token scan instead.
func trySpeculative[T any](p *Parser, fn func() (T, error)) (T, bool) {
	var zero T
	mark := p.cur.Save()
	v, err := fn()
	if err != nil {
		p.cur.Rollback(mark)
		return zero, false
	}
	p.cur.Commit(mark)
	return v, true
}
