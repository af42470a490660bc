// Package ast defines the typed, discriminated-union abstract syntax tree
// produced by package parser. It carries no resolved types or resolved
// names, and no comments other than the javadoc text kept verbatim on
// Documented.Documentation. Each production in the grammar maps to exactly
// one concrete Go type implementing Node; Go has no algebraic sum types,
// so the union is encoded the idiomatic way — an interface plus a marker
// method per category (Decl/Stmt/Expr/TypeNode), the same shape used
// throughout the corpus's own ast packages.
//
// The field sets are grounded on original_source/javalang/tree.py's attrs
// tuples: each Python class's attrs (including those inherited from its
// base classes) becomes the Go struct's field list, flattened since Go has
// no class inheritance. Where tree.py factors shared attrs into a base
// class (Documented, NonEmptyDeclaration, Statement, Primary), this
// package factors them into an embeddable, exported struct instead, so
// package parser can populate it directly in a composite literal.
package ast

import "github.com/c2nes/javalang/token"

// Node is implemented by every AST node. Span reports the source range the
// node was parsed from (spec.md §3, "every node carries a Position{start,
// end}").
type Node interface {
	Span() token.Span
}

// Decl is implemented by every declaration-level node: things that can
// appear in a CompilationUnit's Types or a class/interface/enum body.
type Decl interface {
	Node
	declNode()
}

// Stmt is implemented by every statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression, including the Primary family.
type Expr interface {
	Node
	exprNode()
}

// TypeNode is implemented by every type reference: BasicType, ReferenceType,
// DiamondType.
type TypeNode interface {
	Node
	typeNode()
}

// Base carries the source span every node has; embed it to implement
// Node.Span with no boilerplate.
type Base struct {
	NodeSpan token.Span
}

func (b Base) Span() token.Span { return b.NodeSpan }

// Documented carries the javadoc text preceding a declaration, verbatim
// and unparsed (tree.py's Documented.attrs = ("documentation",);
// SPEC_FULL.md §4 javadoc attachment).
type Documented struct {
	Base
	Documentation string
}

// DeclCommon carries the fields shared by every non-empty declaration:
// modifiers, annotations, and the javadoc comment preceding it
// (tree.py's NonEmptyDeclaration.attrs = ("modifiers", "annotations")).
type DeclCommon struct {
	Documented
	Modifiers   []string
	Annotations []Annotation
}

func (DeclCommon) declNode() {}

// StmtCommon carries the fields shared by every statement: an optional
// label (tree.py's Statement.attrs = ("label",)).
type StmtCommon struct {
	Base
	Label string
}

func (StmtCommon) stmtNode() {}

// PrimaryCommon carries the fields shared by every Primary expression:
// prefix/postfix unary operators applied around it, an optional qualifier
// (the dotted path preceding it), and the chain of selectors applied after
// it (tree.py's Primary.attrs).
type PrimaryCommon struct {
	Base
	PrefixOperators  []string
	PostfixOperators []string
	Qualifier        string
	Selectors        []Expr
}

func (PrimaryCommon) exprNode() {}
