package parser

import (
	"reflect"
	"strings"

	"github.com/c2nes/javalang/ast"
	"github.com/c2nes/javalang/token"
)

// reflectSetField sets the named field on e's underlying struct via
// reflection, a no-op if the field does not exist or cannot be set. This
// mirrors the technique ast.Inspect already uses (ast/walk.go) to traverse
// the same open set of concrete Primary expression types: e's field set is
// only known at the call site of a specific concrete constructor, but the
// span/selector/operator-chain bookkeeping below applies uniformly across
// every one of the ~20 types embedding ast.PrimaryCommon, so a single
// reflective setter replaces what original_source does by mutating a
// dynamically-typed object's attributes after the fact.
func reflectSetField(e ast.Expr, name string, value interface{}) {
	v := reflect.ValueOf(e)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	f := v.FieldByName(name)
	if f.IsValid() && f.CanSet() {
		f.Set(reflect.ValueOf(value))
	}
}

// finishPrimary stamps the span, prefix operators and selector chain
// collected around a primary expression onto whichever concrete type
// parsePrimary produced; postfix operators are set by the caller.
func finishPrimary(e ast.Expr, span token.Span, prefix []string, selectors []ast.Expr) {
	reflectSetField(e, "NodeSpan", span)
	if len(prefix) > 0 {
		reflectSetField(e, "PrefixOperators", prefix)
	}
	if len(selectors) > 0 {
		reflectSetField(e, "Selectors", selectors)
	}
}

// ------------------------------------------------------------------------
// Top-level expression grammar (original_source: parse_expression,
// parse_expressionl, parse_expression_2, parse_expression_3)
// ------------------------------------------------------------------------

// parseExpression parses a full expression: a ternary-or-lower expression,
// optionally followed by "op= rhs" — original_source's parse_expression.
// isLambda is checked first since a bare "x -> ..." or "(T x) -> ..."
// lambda is not itself expressible as a ternary-and-climb over the binary
// operator grammar (grounded on the teacher's parseExpression/isLambda,
// absent from original_source since it predates Java 8).
func (p *Parser) parseExpression() (ast.Expr, error) {
	start := p.peek()

	if p.isLambda() {
		return p.parseLambdaExpr()
	}

	left, err := p.parseExpressionl()
	if err != nil {
		return nil, err
	}

	if token.IsAssignment(p.peek().Value) {
		op := p.cur.Advance().Value
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{
			PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Expressionl:   left,
			Value:         right,
			Type:          op,
		}, nil
	}
	return left, nil
}

// parseExpressionl parses a ternary-or-lower expression — original_source's
// parse_expressionl. isLambda is checked again before the false branch: a
// ternary's else-arm can itself be a lambda, e.g.
// "cond ? (x) -> x : (y) -> y" (teacher's parseTernaryExpr).
func (p *Parser) parseExpressionl() (ast.Expr, error) {
	start := p.peek()
	cond, err := p.parseExpression2()
	if err != nil {
		return nil, err
	}
	if !p.tryConsume("?") {
		return cond, nil
	}

	ifTrue, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(":"); err != nil {
		return nil, err
	}

	var ifFalse ast.Expr
	if p.isLambda() {
		ifFalse, err = p.parseLambdaExpr()
	} else {
		ifFalse, err = p.parseExpressionl()
	}
	if err != nil {
		return nil, err
	}

	return &ast.TernaryExpression{
		PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
		Condition:     cond,
		IfTrue:        ifTrue,
		IfFalse:       ifFalse,
	}, nil
}

// precedence is the 10-level binary operator precedence table, lowest
// first, ported exactly from original_source's build_binary_operation.
var precedence = [][]string{
	{"||"},
	{"&&"},
	{"|"},
	{"^"},
	{"&"},
	{"==", "!="},
	{"<", ">", ">=", "<=", "instanceof"},
	{"<<", ">>", ">>>"},
	{"+", "-"},
	{"*", "/", "%"},
}

func precedenceLevel(op string) int {
	for level, ops := range precedence {
		for _, o := range ops {
			if o == op {
				return level
			}
		}
	}
	return -1
}

// parseExpression2 collects a flat list of operands and infix operators
// (including "instanceof") at or above parseExpression3's level, then folds
// it into a BinaryOperation tree via buildBinaryOperation — original_source's
// parse_expression_2/parse_expression_2_rest.
func (p *Parser) parseExpression2() (ast.Expr, error) {
	start := p.peek()
	first, err := p.parseExpression3()
	if err != nil {
		return nil, err
	}

	operands := []ast.Expr{first}
	var operators []string

	for {
		if p.peekValue("instanceof") {
			p.cur.Advance()
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			operators = append(operators, "instanceof")
			operands = append(operands, &ast.ReferenceTypeExpression{Base: ast.Base{NodeSpan: p.span(start)}, Type: t})
			continue
		}

		if !p.peekKind(token.Operator) || !token.IsInfix(p.peek().Value) {
			break
		}
		op, err := p.parseInfixOperator()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseExpression3()
		if err != nil {
			return nil, err
		}
		operators = append(operators, op)
		operands = append(operands, operand)
	}

	if len(operators) == 0 {
		return first, nil
	}
	return buildBinaryOperation(operands, operators, 0), nil
}

// buildBinaryOperation folds a flat operand/operator list into a tree of
// left-associative BinaryOperation nodes honoring precedence, the Go
// translation of original_source's build_binary_operation: operands and
// operators here are the two parallel slices that stand in for Python's
// single alternating flat list (len(operands) == len(operators)+1).
func buildBinaryOperation(operands []ast.Expr, operators []string, startLevel int) ast.Expr {
	if len(operators) == 0 {
		return operands[0]
	}
	for level := startLevel; level < len(precedence); level++ {
		for i := len(operators) - 1; i >= 0; i-- {
			if precedenceLevel(operators[i]) != level {
				continue
			}
			left := buildBinaryOperation(operands[:i+1], operators[:i], level)
			right := buildBinaryOperation(operands[i+1:], operators[i+1:], level+1)
			return &ast.BinaryOperation{
				PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: token.Span{Start: left.Span().Start, End: right.Span().End}}},
				Operator:      operators[i],
				Operandl:      left,
				Operandr:      right,
			}
		}
	}
	return operands[0]
}

// parseInfixOperator consumes an infix operator, synthesizing ">>" and
// ">>>" from consecutive bare ">" tokens since the lexer never emits those
// as single tokens (spec.md §6) — original_source's parse_infix_operator.
func (p *Parser) parseInfixOperator() (string, error) {
	tok, err := p.expectKind(token.Operator, "an infix operator")
	if err != nil {
		return "", err
	}
	op := tok.Value
	if !token.IsInfix(op) {
		return "", p.errorf(tok, "expected an infix operator")
	}
	if op == ">" && p.tryConsume(">") {
		op = ">>"
		if p.tryConsume(">") {
			op = ">>>"
		}
	}
	return op, nil
}

// parseExpression3 parses a prefix-operator run, then either a cast, a
// lambda, or a primary expression followed by its selector chain, method
// references, and postfix-operator run — original_source's
// parse_expression_3, extended with the Java-8 cast/lambda disambiguation
// and "::" method references grounded on the teacher's parseUnaryExpr/
// isCast/parseCastExpr/parsePostfixSuffix. A cast is tried only when no
// prefix operator was read; after a prefix operator, "(" always starts a
// parenthesized primary, so an input such as "-(int) x" is rejected.
func (p *Parser) parseExpression3() (ast.Expr, error) {
	start := p.peek()

	var prefixOps []string
	for p.peekKind(token.Operator) && token.IsPrefix(p.peek().Value) {
		prefixOps = append(prefixOps, p.cur.Advance().Value)
	}

	if len(prefixOps) == 0 && p.peekValue("(") {
		if cast, ok := trySpeculative(p, func() (ast.Expr, error) {
			if _, err := p.expect("("); err != nil {
				return nil, err
			}
			castType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			for p.tryConsume("&") {
				if _, err := p.parseReferenceType(); err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(")"); err != nil {
				return nil, err
			}

			var inner ast.Expr
			if p.isLambda() {
				inner, err = p.parseLambdaExpr()
			} else {
				inner, err = p.parseExpression3()
			}
			if err != nil {
				return nil, err
			}
			return &ast.Cast{
				PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
				Type:          castType,
				Expression:    inner,
			}, nil
		}); ok {
			return cast, nil
		}
	}

	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	var selectors []ast.Expr
	for p.peekValue("[", ".") {
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
	}
	finishPrimary(primary, p.span(start), prefixOps, selectors)

	result := primary
	if p.peekValue("::") {
		result, err = p.parseMethodRef(primary, start)
		if err != nil {
			return nil, err
		}
	}

	var postfixOps []string
	for p.peekKind(token.Operator) && token.IsPostfix(p.peek().Value) {
		postfixOps = append(postfixOps, p.cur.Advance().Value)
	}
	if len(postfixOps) > 0 {
		reflectSetField(result, "PostfixOperators", postfixOps)
		reflectSetField(result, "NodeSpan", p.span(start))
	}

	return result, nil
}

// ------------------------------------------------------------------------
// Java 8 lambda expressions (grounded on the teacher's isLambda/
// parseLambdaExpr/parseLambdaParameters/isLambdaTypedParam; absent from
// original_source, which predates Java 8)
// ------------------------------------------------------------------------

// isLambda reports whether the tokens starting here form a lambda
// expression, without consuming any of them.
func (p *Parser) isLambda() bool {
	if p.peekKind(token.Identifier) && p.peekN(1).Value == "->" {
		return true
	}
	if !p.peekValue("(") {
		return false
	}

	mark := p.cur.Save()
	defer p.cur.Rollback(mark)

	p.cur.Advance()
	depth := 1
	for depth > 0 {
		switch {
		case p.peekKind(token.EndOfInput):
			return false
		case p.peekValue("("):
			depth++
			p.cur.Advance()
		case p.peekValue(")"):
			depth--
			p.cur.Advance()
		default:
			p.cur.Advance()
		}
	}
	return p.peekValue("->")
}

// parseLambdaExpr parses "(params) -> body" or the shorthand "name -> body"
// — the teacher's parseLambdaExpr.
func (p *Parser) parseLambdaExpr() (*ast.LambdaExpression, error) {
	start := p.peek()

	lambda := &ast.LambdaExpression{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}}

	if p.peekKind(token.Identifier) {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		lambda.Parameter = name
	} else {
		params, err := p.parseLambdaParameters()
		if err != nil {
			return nil, err
		}
		lambda.Parameters = params
	}

	if _, err := p.expect("->"); err != nil {
		return nil, err
	}

	if p.peekValue("{") {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		lambda.Body = &ast.BlockExpression{Base: ast.Base{NodeSpan: p.span(start)}, Block: block}
	} else {
		body, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		lambda.Body = body
	}

	lambda.NodeSpan = p.span(start)
	return lambda, nil
}

// parseLambdaParameters parses "(p1, p2, ...)", where each parameter is
// either a bare name or a fully typed formal parameter — the teacher's
// parseLambdaParameters/isLambdaTypedParam.
func (p *Parser) parseLambdaParameters() ([]*ast.FormalParameter, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	if p.tryConsume(")") {
		return nil, nil
	}

	var params []*ast.FormalParameter
	for {
		start := p.peek()
		if p.isLambdaTypedParam() {
			modifiers, annotations, err := p.parseVariableModifiers()
			if err != nil {
				return nil, err
			}
			paramType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			varargs := p.tryConsume("...")
			name, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			dims, err := p.parseArrayDimension()
			if err != nil {
				return nil, err
			}
			addDimensions(paramType, dims)
			params = append(params, &ast.FormalParameter{
				DeclCommon: declCommon(start, p.span(start), modifiers, annotations),
				Type:       paramType,
				Name:       name,
				Varargs:    varargs,
			})
		} else {
			name, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			params = append(params, &ast.FormalParameter{
				DeclCommon: declCommon(start, p.span(start), nil, nil),
				Name:       name,
			})
		}
		if !p.tryConsume(",") {
			break
		}
	}

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return params, nil
}

// isLambdaTypedParam reports whether the lambda parameter starting here
// carries an explicit type, as opposed to being a bare untyped name — the
// teacher's isLambdaTypedParam.
func (p *Parser) isLambdaTypedParam() bool {
	switch {
	case p.peekValue("final"), p.peekKind(token.AnnotationMarker), p.peekKind(token.BasicType), p.peekValue("var"):
		return true
	case p.peekKind(token.Identifier):
		next := p.peekN(1)
		return next.Kind == token.Identifier || next.Value == "<" || next.Value == "." || next.Value == "["
	default:
		return false
	}
}

// ------------------------------------------------------------------------
// Primary expressions (original_source: parse_primary, parse_literal,
// parse_par_expression, parse_arguments, parse_super_suffix,
// parse_explicit_generic_invocation[_suffix], parse_creator,
// parse_created_name, parse_class_creator_rest, parse_array_creator_rest,
// parse_identifier_suffix, parse_inner_creator, parse_selector)
// ------------------------------------------------------------------------

// parseParExpression parses "(expression)" for a statement header (if,
// while, switch, synchronized) — original_source's parse_par_expression.
// Unlike a parenthesized expression appearing inside a larger expression,
// original_source never wraps this one in a node since a statement header's
// parentheses are structural rather than semantic; this port follows suit
// here and reserves ast.ParenthesizedExpression for parsePrimary's "("
// branch, where the parens are themselves part of an expression and the
// unparser needs the node to reproduce them (DESIGN.md).
func (p *Parser) parseParExpression() (ast.Expr, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseArguments parses "(arg1, arg2, ...)" — original_source's
// parse_arguments.
func (p *Parser) parseArguments() ([]ast.Expr, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	if p.tryConsume(")") {
		return nil, nil
	}
	var args []ast.Expr
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if !p.tryConsume(",") {
			break
		}
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseLiteral parses a single literal token — original_source's
// parse_literal.
func (p *Parser) parseLiteral() (*ast.Literal, error) {
	tok, err := p.expectKind(token.Literal, "a literal")
	if err != nil {
		return nil, err
	}
	return &ast.Literal{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(tok)}}, Value: tok.Value}, nil
}

// parsePrimary parses a single primary expression with no prefix/postfix
// operators or selectors applied — original_source's parse_primary.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	start := p.peek()

	switch {
	case p.peekKind(token.Literal):
		return p.parseLiteral()

	case p.peekValue("("):
		p.cur.Advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(")"); err != nil {
			return nil, err
		}
		return &ast.ParenthesizedExpression{
			PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Expression:    inner,
		}, nil

	case p.tryConsume("this"):
		if p.peekValue("(") {
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			return &ast.ExplicitConstructorInvocation{
				InvocationCommon: ast.InvocationCommon{
					PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
					Arguments:     args,
				},
			}, nil
		}
		return &ast.This{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}}, nil

	case p.tryConsume("super"):
		return p.parseSuperSuffix(start)

	case p.tryConsume("new"):
		return p.parseCreator(start)

	case p.peekValue("<"):
		typeArgs, err := p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
		if p.tryConsume("this") {
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			return &ast.ExplicitConstructorInvocation{
				InvocationCommon: ast.InvocationCommon{
					PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
					TypeArguments: typeArgs,
					Arguments:     args,
				},
			}, nil
		}
		invocation, err := p.parseExplicitGenericInvocationSuffix()
		if err != nil {
			return nil, err
		}
		reflectSetField(invocation, "TypeArguments", typeArgs)
		return invocation, nil

	case p.peekKind(token.Identifier):
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		parts := []string{name}
		for p.peekValue(".") && p.peekN(1).Kind == token.Identifier {
			p.cur.Advance()
			part, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}

		suffix, err := p.parseIdentifierSuffix()
		if err != nil {
			return nil, err
		}

		switch v := suffix.(type) {
		case *ast.MemberReference:
			v.Member = parts[len(parts)-1]
			parts = parts[:len(parts)-1]
		case *ast.MethodInvocation:
			v.Member = parts[len(parts)-1]
			parts = parts[:len(parts)-1]
		}
		reflectSetField(suffix, "Qualifier", strings.Join(parts, "."))
		reflectSetField(suffix, "NodeSpan", p.span(start))
		return suffix, nil

	case p.peekKind(token.BasicType):
		bt, err := p.parseBasicType()
		if err != nil {
			return nil, err
		}
		dims, err := p.parseArrayDimension()
		if err != nil {
			return nil, err
		}
		bt.Dimensions = dims
		if _, err := p.expect("."); err != nil {
			return nil, err
		}
		if _, err := p.expect("class"); err != nil {
			return nil, err
		}
		return &ast.ClassReference{
			PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Type:          bt,
		}, nil

	case p.tryConsume("void"):
		if _, err := p.expect("."); err != nil {
			return nil, err
		}
		if _, err := p.expect("class"); err != nil {
			return nil, err
		}
		return &ast.VoidClassReference{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}}, nil
	}

	return nil, p.errorf(start, "expected an expression")
}

// parseIdentifierSuffix parses what follows a qualified-identifier prefix
// in parsePrimary, dispatching on the punctuation that comes next —
// original_source's parse_identifier_suffix.
func (p *Parser) parseIdentifierSuffix() (ast.Expr, error) {
	start := p.peek()

	if p.peekValue("[") && p.peekN(1).Value == "]" {
		p.cur.Advance()
		p.cur.Advance()
		extra, err := p.parseArrayDimension()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("."); err != nil {
			return nil, err
		}
		if _, err := p.expect("class"); err != nil {
			return nil, err
		}
		return &ast.ClassReference{
			PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Type:          &ast.ReferenceType{Arguments: []ast.TypeArgument{}, Dimensions: 1 + extra},
		}, nil
	}

	if p.peekValue("(") {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &ast.MethodInvocation{
			InvocationCommon: ast.InvocationCommon{
				PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
				Arguments:     args,
			},
		}, nil
	}

	if p.peekValue(".") && p.peekN(1).Value == "class" {
		p.cur.Advance()
		p.cur.Advance()
		return &ast.ClassReference{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}}, nil
	}

	if p.peekValue(".") && p.peekN(1).Value == "this" {
		p.cur.Advance()
		p.cur.Advance()
		return &ast.This{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}}, nil
	}

	if p.peekValue(".") && p.peekN(1).Value == "<" {
		p.cur.Advance()
		return p.parseExplicitGenericInvocation()
	}

	if p.peekValue(".") && p.peekN(1).Value == "new" {
		p.cur.Advance()
		p.cur.Advance()
		var typeArgs []ast.TypeArgument
		if p.peekValue("<") {
			var err error
			typeArgs, err = p.parseTypeArguments()
			if err != nil {
				return nil, err
			}
		}
		inner, err := p.parseInnerCreator()
		if err != nil {
			return nil, err
		}
		inner.ConstructorTypeArguments = typeArgs
		return inner, nil
	}

	if p.peekValue(".") && p.peekN(1).Value == "super" && p.peekN(2).Value == "(" {
		p.cur.Advance()
		p.cur.Advance()
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &ast.SuperConstructorInvocation{
			InvocationCommon: ast.InvocationCommon{
				PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
				Arguments:     args,
			},
		}, nil
	}

	return &ast.MemberReference{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}}, nil
}

// parseSuperSuffix parses what follows "super": a constructor invocation, a
// qualified method invocation, or a bare member reference —
// original_source's parse_super_suffix.
func (p *Parser) parseSuperSuffix(start token.Token) (ast.Expr, error) {
	if p.peekValue("(") {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &ast.SuperConstructorInvocation{
			InvocationCommon: ast.InvocationCommon{
				PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
				Arguments:     args,
			},
		}, nil
	}

	if _, err := p.expect("."); err != nil {
		return nil, err
	}

	var typeArgs []ast.TypeArgument
	if p.peekValue("<") {
		var err error
		typeArgs, err = p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
	}

	identifier, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if p.peekValue("(") {
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &ast.SuperMethodInvocation{
			InvocationCommon: ast.InvocationCommon{
				PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
				TypeArguments: typeArgs,
				Arguments:     args,
			},
			Member: identifier,
		}, nil
	}

	return &ast.SuperMemberReference{
		PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
		Member:        identifier,
	}, nil
}

// parseExplicitGenericInvocation parses "<TypeArgs> suffix" following a
// ".<" lookahead — original_source's parse_explicit_generic_invocation.
func (p *Parser) parseExplicitGenericInvocation() (ast.Expr, error) {
	typeArgs, err := p.parseTypeArguments()
	if err != nil {
		return nil, err
	}
	invocation, err := p.parseExplicitGenericInvocationSuffix()
	if err != nil {
		return nil, err
	}
	reflectSetField(invocation, "TypeArguments", typeArgs)
	return invocation, nil
}

// parseExplicitGenericInvocationSuffix parses what follows an explicit
// type-argument list: either a qualified "super" suffix or a plain
// "name(args)" method call — original_source's
// parse_explicit_generic_invocation_suffix.
func (p *Parser) parseExplicitGenericInvocationSuffix() (ast.Expr, error) {
	start := p.peek()
	if p.tryConsume("super") {
		return p.parseSuperSuffix(start)
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return &ast.MethodInvocation{
		InvocationCommon: ast.InvocationCommon{
			PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Arguments:     args,
		},
		Member: name,
	}, nil
}

// parseCreator parses everything following "new" — original_source's
// parse_creator.
func (p *Parser) parseCreator(start token.Token) (ast.Expr, error) {
	if p.peekKind(token.BasicType) {
		bt, err := p.parseBasicType()
		if err != nil {
			return nil, err
		}
		rest, err := p.parseArrayCreatorRest(start)
		if err != nil {
			return nil, err
		}
		rest.Type = bt
		return rest, nil
	}

	var constructorTypeArgs []ast.TypeArgument
	if p.peekValue("<") {
		var err error
		constructorTypeArgs, err = p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
	}

	createdName, err := p.parseCreatedName()
	if err != nil {
		return nil, err
	}

	if p.peekValue("[") {
		rest, err := p.parseArrayCreatorRest(start)
		if err != nil {
			return nil, err
		}
		rest.Type = createdName
		return rest, nil
	}

	args, body, err := p.parseClassCreatorRest()
	if err != nil {
		return nil, err
	}
	return &ast.ClassCreator{
		CreatorCommon: ast.CreatorCommon{
			PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Type:          createdName,
		},
		ConstructorTypeArguments: constructorTypeArgs,
		Arguments:                args,
		Body:                     body,
	}, nil
}

// parseCreatedName parses the possibly-generic, possibly-nested type name
// following "new" — original_source's parse_created_name.
func (p *Parser) parseCreatedName() (*ast.ReferenceType, error) {
	start := p.peek()
	root := &ast.ReferenceType{Arguments: []ast.TypeArgument{}}
	tail := root

	for {
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		tail.Name = name

		if p.peekValue("<") {
			args, err := p.parseTypeArgumentsOrDiamond()
			if err != nil {
				return nil, err
			}
			tail.Arguments = args
		}

		if p.tryConsume(".") {
			next := &ast.ReferenceType{Arguments: []ast.TypeArgument{}}
			tail.SubType = next
			tail = next
		} else {
			break
		}
	}
	root.NodeSpan = p.span(start)
	return root, nil
}

// parseClassCreatorRest parses "(args) [{ body }]" following a created name
// — original_source's parse_class_creator_rest.
func (p *Parser) parseClassCreatorRest() ([]ast.Expr, []ast.Decl, error) {
	args, err := p.parseArguments()
	if err != nil {
		return nil, nil, err
	}
	var body []ast.Decl
	if p.peekValue("{") {
		if body, err = p.parseClassBody(); err != nil {
			return nil, nil, err
		}
	}
	return args, body, nil
}

// parseArrayCreatorRest parses the "[...]" dimensions (and optional
// initializer) following a created array's element type —
// original_source's parse_array_creator_rest. The returned ArrayCreator's
// Type field is left unset for the caller to fill in.
func (p *Parser) parseArrayCreatorRest(start token.Token) (*ast.ArrayCreator, error) {
	if p.peekValue("[") && p.peekN(1).Value == "]" {
		dims, err := p.parseArrayDimension()
		if err != nil {
			return nil, err
		}
		init, err := p.parseArrayInitializer()
		if err != nil {
			return nil, err
		}
		return &ast.ArrayCreator{
			CreatorCommon: ast.CreatorCommon{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}},
			Dimensions:    make([]ast.Expr, dims),
			Initializer:   init,
		}, nil
	}

	var dimensions []ast.Expr
	for p.peekValue("[") && p.peekN(1).Value != "]" {
		p.cur.Advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		dimensions = append(dimensions, expr)
		if _, err := p.expect("]"); err != nil {
			return nil, err
		}
	}
	extra, err := p.parseArrayDimension()
	if err != nil {
		return nil, err
	}
	for i := 0; i < extra; i++ {
		dimensions = append(dimensions, nil)
	}
	return &ast.ArrayCreator{
		CreatorCommon: ast.CreatorCommon{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}},
		Dimensions:    dimensions,
	}, nil
}

// parseInnerCreator parses "Identifier [<TypeArgs>] (args) [{ body }]"
// following a ".new" selector — original_source's parse_inner_creator.
// (original_source's own implementation refers to an undefined local in
// its return statement; this follows the evident intent — the class body
// it just parsed — rather than that oversight.)
func (p *Parser) parseInnerCreator() (*ast.InnerClassCreator, error) {
	start := p.peek()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	args := []ast.TypeArgument{}
	if p.peekValue("<") {
		if args, err = p.parseTypeArgumentsOrDiamond(); err != nil {
			return nil, err
		}
	}
	rt := &ast.ReferenceType{Base: ast.Base{NodeSpan: p.span(start)}, Name: name, Arguments: args}

	callArgs, body, err := p.parseClassCreatorRest()
	if err != nil {
		return nil, err
	}

	return &ast.InnerClassCreator{
		CreatorCommon: ast.CreatorCommon{
			PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Type:          rt,
		},
		Arguments: callArgs,
		Body:      body,
	}, nil
}

// parseSelector parses a single "[index]" or "."-prefixed selector —
// original_source's parse_selector, extended with a case for an inner-class
// creator already handled via parseInnerCreator.
func (p *Parser) parseSelector() (ast.Expr, error) {
	start := p.peek()

	if p.tryConsume("[") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("]"); err != nil {
			return nil, err
		}
		return &ast.ArraySelector{Base: ast.Base{NodeSpan: p.span(start)}, Index: expr}, nil
	}

	if _, err := p.expect("."); err != nil {
		return nil, err
	}

	switch {
	case p.peekKind(token.Identifier):
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		if p.peekValue("(") {
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			return &ast.MethodInvocation{
				InvocationCommon: ast.InvocationCommon{
					PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
					Arguments:     args,
				},
				Member: name,
			}, nil
		}
		return &ast.FieldReference{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Field: name}, nil

	case p.peekValue("<"):
		return p.parseExplicitGenericInvocation()

	case p.tryConsume("this"):
		return &ast.This{PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}}}, nil

	case p.tryConsume("super"):
		return p.parseSuperSuffix(start)

	case p.tryConsume("new"):
		var typeArgs []ast.TypeArgument
		if p.peekValue("<") {
			var err error
			typeArgs, err = p.parseTypeArguments()
			if err != nil {
				return nil, err
			}
		}
		inner, err := p.parseInnerCreator()
		if err != nil {
			return nil, err
		}
		inner.ConstructorTypeArguments = typeArgs
		return inner, nil
	}

	return nil, p.errorf(start, "expected a selector")
}

// ------------------------------------------------------------------------
// Java 8 method references (grounded on the teacher's parseMethodRef;
// absent from original_source)
// ------------------------------------------------------------------------

// parseMethodRef parses "::[<TypeArgs>] (identifier | new)" following a
// primary expression — the teacher's parseMethodRef.
func (p *Parser) parseMethodRef(target ast.Expr, start token.Token) (*ast.MethodReference, error) {
	if _, err := p.expect("::"); err != nil {
		return nil, err
	}

	var typeArgs []ast.TypeArgument
	if p.peekValue("<") {
		var err error
		typeArgs, err = p.parseTypeArguments()
		if err != nil {
			return nil, err
		}
	}

	var method string
	if p.tryConsume("new") {
		method = "new"
	} else {
		var err error
		method, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}

	return &ast.MethodReference{
		PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(start)}},
		Expression:    target,
		Method:        method,
		TypeArguments: typeArgs,
	}, nil
}
