package ast

// NoExpression is an expression node with no content (tree.py:
// NoExpression(Expression), attrs = ()). The parser does not construct it:
// an omitted optional expression slot, such as "for (;;)"'s condition, is
// left nil.
type NoExpression struct {
	Base
}

func (NoExpression) exprNode() {}

// ReferenceTypeExpression wraps a bare type reference used as an
// expression, e.g. the "Foo" right operand of "x instanceof Foo"; a
// "Foo.class" literal is a ClassReference instead (tree.py:
// ReferenceTypeExpression(Expression),
// attrs = ("type",)).
type ReferenceTypeExpression struct {
	Base
	Type TypeNode
}

func (ReferenceTypeExpression) exprNode() {}

// BlockExpression wraps a lambda body that is a block rather than a bare
// expression (tree.py: BlockExpression(Expression), attrs = ("block",)).
type BlockExpression struct {
	Base
	Block []Stmt
}

func (BlockExpression) exprNode() {}

// ArraySelector is an "[index]" selector in a selector chain (tree.py:
// ArraySelector(Expression), attrs = ("index",)).
type ArraySelector struct {
	Base
	Index Expr
}

func (ArraySelector) exprNode() {}

// ParenthesizedExpression is a "(expression)" grouping (tree.py:
// ParenthesizedExpression(Primary), attrs = ("expression",)).
type ParenthesizedExpression struct {
	PrimaryCommon
	Expression Expr
}

// Assignment is an "lhs op= rhs" expression (tree.py: Assignment(Primary),
// attrs = ("expressionl", "value", "type")). Type holds the assignment
// operator's literal text ("=", "+=", ...).
type Assignment struct {
	PrimaryCommon
	Expressionl Expr
	Value       Expr
	Type        string
}

// TernaryExpression is a "condition ? ifTrue : ifFalse" expression
// (tree.py: TernaryExpression(Primary),
// attrs = ("condition", "if_true", "if_false")).
type TernaryExpression struct {
	PrimaryCommon
	Condition Expr
	IfTrue    Expr
	IfFalse   Expr
}

// BinaryOperation is a left-associative "operandl operator operandr"
// expression, the result of precedence-climbing over a flat operator/
// operand list (tree.py: BinaryOperation(Primary),
// attrs = ("operator", "operandl", "operandr"); SPEC_FULL.md §1,
// buildBinaryOperation).
type BinaryOperation struct {
	PrimaryCommon
	Operator string
	Operandl Expr
	Operandr Expr
}

// MethodReference is a "Type::method" or "expr::new" method reference
// (tree.py: MethodReference(Primary),
// attrs = ("expression", "method", "type_arguments")). Method is "new"
// for a constructor reference.
type MethodReference struct {
	PrimaryCommon
	Expression    Expr
	Method        string
	TypeArguments []TypeArgument
}

// LambdaExpression is a "(params) -> body" lambda (tree.py:
// LambdaExpression(Primary), attrs = ("parameter", "parameters", "body")).
// Parameter holds the sole bare identifier for a single-parameter lambda
// omitting parens ("x -> x + 1"); Parameters holds the full list
// otherwise. Body is an Expr for an expression-bodied lambda, or a
// *BlockExpression for a block-bodied one.
type LambdaExpression struct {
	PrimaryCommon
	Parameter  string
	Parameters []*FormalParameter
	Body       Expr
}

// Identifier is a bare name reference (tree.py: Identifier(Primary),
// attrs = ("id",)).
type Identifier struct {
	PrimaryCommon
	ID string
}

// Literal is a numeric, character, string, or boolean/null literal,
// carrying its raw source text uninterpreted (tree.py: Literal(Primary),
// attrs = ("value",)).
type Literal struct {
	PrimaryCommon
	Value string
}

// This is a "this" reference (tree.py: This(Primary), attrs = ()).
type This struct {
	PrimaryCommon
}

// Cast is a "(Type) expression" cast (tree.py: Cast(Primary),
// attrs = ("type", "expression")).
type Cast struct {
	PrimaryCommon
	Type       TypeNode
	Expression Expr
}

// FieldReference is a ".field" selector (tree.py: FieldReference(Primary),
// attrs = ("field",)).
type FieldReference struct {
	PrimaryCommon
	Field string
}

// MemberReference is a bare (possibly array-indexed) variable/field
// reference reached without an explicit qualifier selector (tree.py:
// MemberReference(Primary), attrs = ("member",)).
type MemberReference struct {
	PrimaryCommon
	Member string
}

// InvocationCommon carries the fields shared by every call-like
// expression (tree.py: Invocation(Primary),
// attrs = ("type_arguments", "arguments")).
type InvocationCommon struct {
	PrimaryCommon
	TypeArguments []TypeArgument
	Arguments     []Expr
}

// ExplicitConstructorInvocation is a "this(...);" call at the start of a
// constructor body (tree.py: ExplicitConstructorInvocation(Invocation),
// attrs = ()).
type ExplicitConstructorInvocation struct {
	InvocationCommon
}

// SuperConstructorInvocation is a "super(...);" call at the start of a
// constructor body (tree.py: SuperConstructorInvocation(Invocation),
// attrs = ()).
type SuperConstructorInvocation struct {
	InvocationCommon
}

// MethodInvocation is a "name(...)" or "qualifier.name(...)" call
// (tree.py: MethodInvocation(Invocation), attrs = ("member",)).
type MethodInvocation struct {
	InvocationCommon
	Member string
}

// SuperMethodInvocation is a "super.name(...)" call (tree.py:
// SuperMethodInvocation(Invocation), attrs = ("member",)).
type SuperMethodInvocation struct {
	InvocationCommon
	Member string
}

// SuperMemberReference is a "super.field" reference (tree.py:
// SuperMemberReference(Primary), attrs = ("member",)).
type SuperMemberReference struct {
	PrimaryCommon
	Member string
}

// ClassReference is a "Type.class" expression (tree.py:
// ClassReference(Primary), attrs = ("type",)).
type ClassReference struct {
	PrimaryCommon
	Type TypeNode
}

// VoidClassReference is a "void.class" expression (tree.py:
// VoidClassReference(ClassReference), attrs = ()).
type VoidClassReference struct {
	PrimaryCommon
}

// CreatorCommon carries the type being created, shared by every "new ..."
// form (tree.py: Creator(Primary), attrs = ("type",)).
type CreatorCommon struct {
	PrimaryCommon
	Type TypeNode
}

// ArrayCreator is a "new Type[dim]...{initializer}" array creation
// expression (tree.py: ArrayCreator(Creator),
// attrs = ("dimensions", "initializer")). Dimensions holds one entry per
// "[...]" pair, nil for a trailing dimension with no explicit size
// (tree.py's ArrayDimension, attrs = ("dim",)).
type ArrayCreator struct {
	CreatorCommon
	Dimensions  []Expr
	Initializer *ArrayInitializer
}

// ClassCreator is a "new Type(...)" object creation expression, optionally
// with an anonymous class Body (tree.py: ClassCreator(Creator),
// attrs = ("constructor_type_arguments", "arguments", "body")).
type ClassCreator struct {
	CreatorCommon
	ConstructorTypeArguments []TypeArgument
	Arguments                []Expr
	Body                     []Decl
}

// InnerClassCreator is a "qualifier.new Type(...)" inner-class creation
// expression (tree.py: InnerClassCreator(Creator),
// attrs = ("constructor_type_arguments", "arguments", "body")). Open
// Question (ii) (SPEC_FULL.md §4 / DESIGN.md): Body is nil when no
// anonymous class body follows, matching ClassCreator's convention.
type InnerClassCreator struct {
	CreatorCommon
	ConstructorTypeArguments []TypeArgument
	Arguments                []Expr
	Body                     []Decl
}
