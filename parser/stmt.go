package parser

import (
	"github.com/c2nes/javalang/ast"
	"github.com/c2nes/javalang/token"
)

// setLabel stamps a freshly parsed statement with the label discovered by
// looking one token ahead of it ("name: statement") — original_source
// assigns Statement.label the same way, after the fact, since
// parse_statement dispatches dynamically on whichever production it ends
// up parsing before the label is known.
func setLabel(s ast.Stmt, label string) {
	switch v := s.(type) {
	case *ast.LocalVariableDeclarationStatement:
		v.Label = label
	case *ast.TypeDeclarationStatement:
		v.Label = label
	case *ast.IfStatement:
		v.Label = label
	case *ast.WhileStatement:
		v.Label = label
	case *ast.DoStatement:
		v.Label = label
	case *ast.ForStatement:
		v.Label = label
	case *ast.AssertStatement:
		v.Label = label
	case *ast.BreakStatement:
		v.Label = label
	case *ast.ContinueStatement:
		v.Label = label
	case *ast.ReturnStatement:
		v.Label = label
	case *ast.ThrowStatement:
		v.Label = label
	case *ast.SynchronizedStatement:
		v.Label = label
	case *ast.TryStatement:
		v.Label = label
	case *ast.SwitchStatement:
		v.Label = label
	case *ast.BlockStatement:
		v.Label = label
	case *ast.ExpressionStatement:
		v.Label = label
	case *ast.EmptyStatement:
		v.Label = label
	}
}

// parseBlock parses "{ statement* }" — original_source's parse_block.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	stmts := []ast.Stmt{}
	for !p.peekValue("}") {
		s, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseBlockStatement parses one statement inside a block: a nested type
// declaration, a local variable declaration, or an ordinary statement —
// original_source's parse_block_statement. The three share an ambiguous
// prefix ("final"/annotations, then a type-looking token sequence), so this
// first walks ahead by hand over any "final"/annotation run, as
// original_source does with its own index-based lookahead (a
// modifier/annotation run can be arbitrarily long, and repeatedly
// re-speculating over it is wasteful when a single linear scan settles the
// question). When that scan does not settle it, a local variable
// declaration is tried under a savepoint and an ordinary statement is
// parsed if that attempt fails.
func (p *Parser) parseBlockStatement() (ast.Stmt, error) {
	start := p.peek()

	if p.isAnnotationDeclaration(0) || p.peekValue("class") {
		decl, err := p.parseClassOrInterfaceDeclaration()
		if err != nil {
			return nil, err
		}
		return &ast.TypeDeclarationStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Declaration: decl}, nil
	}

	i := 0
	for p.peekN(i).Value == "final" || p.isAnnotation(i) {
		if p.isAnnotation(i) {
			i++
			if p.peekN(i).Value == "(" {
				depth := 1
				i++
				for depth > 0 {
					switch p.peekN(i).Value {
					case "(":
						depth++
					case ")":
						depth--
					}
					i++
				}
			} else if p.peekN(i).Kind == token.Identifier {
				i++
			}
		} else {
			i++
		}
	}

	if p.peekN(i).Value == "class" {
		decl, err := p.parseClassOrInterfaceDeclaration()
		if err != nil {
			return nil, err
		}
		return &ast.TypeDeclarationStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Declaration: decl}, nil
	}

	if p.peekN(i).Kind == token.BasicType {
		return p.parseLocalVariableDeclarationStatement()
	}

	if i > 0 {
		// A "final"/annotation run was consumed by the scan above; the only
		// remaining production that can start this way is a local variable
		// declaration.
		return p.parseLocalVariableDeclarationStatement()
	}

	if stmt, ok := trySpeculative(p, func() (ast.Stmt, error) {
		return p.parseLocalVariableDeclarationStatement()
	}); ok {
		return stmt, nil
	}

	return p.parseStatement()
}

// parseLocalVariableDeclarationStatement parses "[final] Type name = init,
// ...;" — original_source's parse_local_variable_declaration_statement.
func (p *Parser) parseLocalVariableDeclarationStatement() (*ast.LocalVariableDeclarationStatement, error) {
	start := p.peek()
	modifiers, annotations, err := p.parseVariableModifiers()
	if err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	declarators, err := p.parseVariableDeclarators()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}
	return &ast.LocalVariableDeclarationStatement{
		StmtCommon:  ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}},
		Modifiers:   modifiers,
		Annotations: annotations,
		Type:        varType,
		Declarators: declarators,
	}, nil
}

// parseStatement parses a single statement — original_source's
// parse_statement, the dispatcher covering every statement form.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	start := p.peek()

	switch {
	case p.peekValue("{"):
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Statements: block}, nil

	case p.tryConsume(";"):
		return &ast.EmptyStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}}, nil

	case p.peekKind(token.Identifier) && p.peekN(1).Value == ":":
		label, _ := p.parseIdentifier()
		p.cur.Advance()
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		setLabel(stmt, label)
		return stmt, nil

	case p.tryConsume("if"):
		cond, err := p.parseParExpression()
		if err != nil {
			return nil, err
		}
		thenStmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		var elseStmt ast.Stmt
		if p.tryConsume("else") {
			if elseStmt, err = p.parseStatement(); err != nil {
				return nil, err
			}
		}
		return &ast.IfStatement{
			StmtCommon:    ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Condition:     cond,
			ThenStatement: thenStmt,
			ElseStatement: elseStmt,
		}, nil

	case p.tryConsume("assert"):
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		var value ast.Expr
		if p.tryConsume(":") {
			if value, err = p.parseExpression(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		return &ast.AssertStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Condition: cond, Value: value}, nil

	case p.tryConsume("switch"):
		expr, err := p.parseParExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("{"); err != nil {
			return nil, err
		}
		cases, err := p.parseSwitchBlockStatementGroups()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("}"); err != nil {
			return nil, err
		}
		return &ast.SwitchStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Expression: expr, Cases: cases}, nil

	case p.tryConsume("while"):
		cond, err := p.parseParExpression()
		if err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.WhileStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Condition: cond, Body: body}, nil

	case p.tryConsume("do"):
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("while"); err != nil {
			return nil, err
		}
		cond, err := p.parseParExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		return &ast.DoStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Condition: cond, Body: body}, nil

	case p.tryConsume("for"):
		if _, err := p.expect("("); err != nil {
			return nil, err
		}
		control, err := p.parseForControl()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(")"); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return &ast.ForStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Control: control, Body: body}, nil

	case p.tryConsume("break"):
		var label string
		if p.peekKind(token.Identifier) {
			label, _ = p.parseIdentifier()
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		return &ast.BreakStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Goto: label}, nil

	case p.tryConsume("continue"):
		var label string
		if p.peekKind(token.Identifier) {
			label, _ = p.parseIdentifier()
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		return &ast.ContinueStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Goto: label}, nil

	case p.tryConsume("return"):
		var expr ast.Expr
		if !p.peekValue(";") {
			var err error
			if expr, err = p.parseExpression(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Expression: expr}, nil

	case p.tryConsume("throw"):
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		return &ast.ThrowStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Expression: expr}, nil

	case p.tryConsume("synchronized"):
		lock, err := p.parseParExpression()
		if err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.SynchronizedStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Lock: lock, Block: block}, nil

	case p.tryConsume("try"):
		var resources []*ast.TryResource
		if p.peekValue("(") {
			var err error
			if resources, err = p.parseResourceSpecification(); err != nil {
				return nil, err
			}
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		var catches []*ast.CatchClause
		if p.peekValue("catch") {
			if catches, err = p.parseCatches(); err != nil {
				return nil, err
			}
		}
		var finallyBlock []ast.Stmt
		if p.tryConsume("finally") {
			if finallyBlock, err = p.parseBlock(); err != nil {
				return nil, err
			}
		}
		if len(catches) == 0 && finallyBlock == nil {
			return nil, p.errorf(start, "try statement must have a catch or finally clause")
		}
		return &ast.TryStatement{
			StmtCommon:   ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}},
			Resources:    resources,
			Block:        block,
			Catches:      catches,
			FinallyBlock: finallyBlock,
		}, nil

	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		return &ast.ExpressionStatement{StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}}, Expression: expr}, nil
	}
}

// parseCatches parses one or more consecutive "catch (...) { ... }" clauses
// — original_source's parse_catches.
func (p *Parser) parseCatches() ([]*ast.CatchClause, error) {
	var catches []*ast.CatchClause
	for p.peekValue("catch") {
		c, err := p.parseCatchClause()
		if err != nil {
			return nil, err
		}
		catches = append(catches, c)
	}
	return catches, nil
}

// parseCatchClause parses "catch ([final] Type1 | Type2 name) { block }" —
// original_source's parse_catch_clause. Unlike original_source, which reads
// each catch alternative as a bare qualified identifier, this calls
// parseReferenceType for each: a catch type never carries generic arguments
// in valid Java, so parseReferenceType's plain-dotted-name case covers
// exactly the same ground while keeping CatchClauseParameter.Types
// consistent with every other *ReferenceType-typed field in the AST
// (DESIGN.md).
func (p *Parser) parseCatchClause() (*ast.CatchClause, error) {
	start := p.peek()
	if _, err := p.expect("catch"); err != nil {
		return nil, err
	}
	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	paramStart := p.peek()
	modifiers, annotations, err := p.parseVariableModifiers()
	if err != nil {
		return nil, err
	}

	var types []*ast.ReferenceType
	for {
		t, err := p.parseReferenceType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
		if !p.tryConsume("|") {
			break
		}
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.CatchClause{
		StmtCommon: ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}},
		Parameter: &ast.CatchClauseParameter{
			DeclCommon: declCommon(paramStart, p.span(paramStart), modifiers, annotations),
			Types:      types,
			Name:       name,
		},
		Block: block,
	}, nil
}

// parseResourceSpecification parses "(resource; resource...;?)" —
// original_source's parse_resource_specification.
func (p *Parser) parseResourceSpecification() ([]*ast.TryResource, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var resources []*ast.TryResource
	for {
		r, err := p.parseResource()
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
		if !p.tryConsume(";") || p.peekValue(")") {
			break
		}
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return resources, nil
}

// parseResource parses "[final] Type[] name = value" — original_source's
// parse_resource. The array dimension is split across both sides of the
// resource's name, matching the underlying variable declarator grammar.
func (p *Parser) parseResource() (*ast.TryResource, error) {
	start := p.peek()
	modifiers, annotations, err := p.parseVariableModifiers()
	if err != nil {
		return nil, err
	}
	resourceType, err := p.parseReferenceType()
	if err != nil {
		return nil, err
	}
	leadingDims, err := p.parseArrayDimension()
	if err != nil {
		return nil, err
	}
	resourceType.Dimensions += leadingDims

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	trailingDims, err := p.parseArrayDimension()
	if err != nil {
		return nil, err
	}
	resourceType.Dimensions += trailingDims

	if _, err := p.expect("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.TryResource{
		DeclCommon: declCommon(start, p.span(start), modifiers, annotations),
		Type:       resourceType,
		Name:       name,
		Value:      value,
	}, nil
}

// parseSwitchBlockStatementGroups parses the case/default arms of a switch
// body — original_source's parse_switch_block_statement_groups.
func (p *Parser) parseSwitchBlockStatementGroups() ([]*ast.SwitchStatementCase, error) {
	var groups []*ast.SwitchStatementCase
	for !p.peekValue("}") {
		g, err := p.parseSwitchBlockStatementGroup()
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// parseSwitchBlockStatementGroup parses one "case value:"/"default:" label
// plus the statements that follow it up to the next label or the closing
// brace — original_source's parse_switch_block_statement_group. A bare
// "case Identifier:" label is parsed as an identifier (Java restricts enum
// switch labels to bare constant names) and wrapped in an *ast.Identifier
// so SwitchStatementCase.Case stays uniformly []ast.Expr.
func (p *Parser) parseSwitchBlockStatementGroup() (*ast.SwitchStatementCase, error) {
	start := p.peek()
	var labels []ast.Expr

	if p.tryConsume("case") {
		labelStart := p.peek()
		if p.peekKind(token.Identifier) && p.peekN(1).Value == ":" {
			name, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			labels = append(labels, &ast.Identifier{
				PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: p.span(labelStart)}},
				ID:            name,
			})
		} else {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			labels = append(labels, expr)
		}
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
	} else if _, err := p.expect("default"); err == nil {
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
	} else {
		return nil, err
	}

	var stmts []ast.Stmt
	for !p.peekValue("case", "default", "}") {
		s, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}

	return &ast.SwitchStatementCase{Base: ast.Base{NodeSpan: p.span(start)}, Case: labels, Statements: stmts}, nil
}

// forVarControlRest is the dynamically-typed result original_source returns
// from parse_for_var_control_rest: either an enhanced-for iterable
// expression, or the (declarators, condition, update) tail of a classic
// for loop whose init was a variable declaration.
type forVarControlRest struct {
	iterable    ast.Expr
	declarators []*ast.VariableDeclarator
	condition   ast.Expr
	update      []ast.Expr
}

// parseForControl parses the header between a for loop's parentheses,
// returning either a *ast.ForControl or a *ast.EnhancedForControl —
// original_source's parse_for_control. The enhanced-for form is tried
// speculatively first since both forms start identically with
// "[final] [@Annotations] Type name".
func (p *Parser) parseForControl() (ast.Node, error) {
	if p.peekValue(";") {
		return p.parseForControlClassic(nil)
	}

	if control, ok := trySpeculative(p, func() (ast.Node, error) {
		return p.parseForVarControl()
	}); ok {
		return control, nil
	}

	var init []ast.Expr
	if !p.peekValue(";") {
		var err error
		if init, err = p.parseForInitOrUpdate(); err != nil {
			return nil, err
		}
	}
	return p.parseForControlClassic(init)
}

// parseForControlClassic parses the ";"-separated condition/update tail of
// a classic for loop once its init clause (possibly empty) is already in
// hand.
func (p *Parser) parseForControlClassic(init []ast.Expr) (*ast.ForControl, error) {
	start := p.peek()
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}
	var condition ast.Expr
	if !p.peekValue(";") {
		var err error
		if condition, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}
	var update []ast.Expr
	if !p.peekValue(")") {
		var err error
		if update, err = p.parseForInitOrUpdate(); err != nil {
			return nil, err
		}
	}

	initNodes := make([]ast.Node, len(init))
	for i, e := range init {
		initNodes[i] = e
	}
	return &ast.ForControl{Base: ast.Base{NodeSpan: p.span(start)}, Init: initNodes, Condition: condition, Update: update}, nil
}

// parseForVarControl parses the "[final] [@Annotations] Type name ..."
// prefix shared by an enhanced-for and a classic-for-with-declared-init,
// then dispatches on what follows — original_source's
// parse_for_var_control.
func (p *Parser) parseForVarControl() (ast.Node, error) {
	start := p.peek()
	modifiers, _, err := p.parseVariableModifiers()
	if err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	dims, err := p.parseArrayDimension()
	if err != nil {
		return nil, err
	}
	addDimensions(varType, dims)

	rest, err := p.parseForVarControlRest()
	if err != nil {
		return nil, err
	}

	if rest.iterable != nil {
		return &ast.EnhancedForControl{
			Base:      ast.Base{NodeSpan: p.span(start)},
			Var:       &ast.VariableDeclarator{Base: ast.Base{NodeSpan: p.span(start)}, Name: name},
			VarType:   varType,
			Modifiers: modifiers,
			Iterable:  rest.iterable,
		}, nil
	}

	declarators := append([]*ast.VariableDeclarator{{
		Base:        ast.Base{NodeSpan: p.span(start)},
		Name:        name,
		Initializer: rest.declarators[0].Initializer,
		Dimensions:  rest.declarators[0].Dimensions,
	}}, rest.declarators[1:]...)

	localDecl := &ast.LocalVariableDeclarationStatement{
		StmtCommon:  ast.StmtCommon{Base: ast.Base{NodeSpan: p.span(start)}},
		Type:        varType,
		Declarators: declarators,
	}

	return &ast.ForControl{
		Base:      ast.Base{NodeSpan: p.span(start)},
		Init:      []ast.Node{localDecl},
		Condition: rest.condition,
		Update:    rest.update,
	}, nil
}

// parseForVarControlRest parses the tail following "Type name": either
// ": iterable" for an enhanced-for, or the remaining declarators plus
// ";condition;update" for a classic for whose init declares a variable —
// original_source's parse_for_var_control_rest.
func (p *Parser) parseForVarControlRest() (*forVarControlRest, error) {
	if init, ok := trySpeculative(p, func() (ast.Node, error) {
		if _, err := p.expect("="); err != nil {
			return nil, err
		}
		return p.parseVariableInitializer()
	}); ok {
		declarators := []*ast.VariableDeclarator{{Initializer: init}}
		for p.tryConsume(",") {
			d, err := p.parseForVariableDeclaratorRest()
			if err != nil {
				return nil, err
			}
			declarators = append(declarators, d)
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		var condition ast.Expr
		var err error
		if !p.peekValue(";") {
			if condition, err = p.parseExpression(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		var update []ast.Expr
		if !p.peekValue(")") {
			if update, err = p.parseForInitOrUpdate(); err != nil {
				return nil, err
			}
		}
		return &forVarControlRest{declarators: declarators, condition: condition, update: update}, nil
	}

	if _, err := p.expect(":"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &forVarControlRest{iterable: iterable}, nil
}

// parseForVariableDeclaratorRest parses one further "name [= init]" entry
// following the first declarator of a classic for loop's declared init —
// original_source's parse_for_variable_declarator_rest.
func (p *Parser) parseForVariableDeclaratorRest() (*ast.VariableDeclarator, error) {
	start := p.peek()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	dims, init, err := p.parseVariableDeclaratorRest()
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclarator{Base: ast.Base{NodeSpan: p.span(start)}, Name: name, Dimensions: dims, Initializer: init}, nil
}

// parseForInitOrUpdate parses a comma-separated list of expressions used as
// a classic for loop's init or update clause — original_source's
// parse_for_init_or_update.
func (p *Parser) parseForInitOrUpdate() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.tryConsume(",") {
			return exprs, nil
		}
	}
}
