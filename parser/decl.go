package parser

import (
	"strings"

	"github.com/c2nes/javalang/ast"
	"github.com/c2nes/javalang/token"
)

// isAnnotation reports whether the token i positions ahead starts an
// annotation application, as opposed to an "@interface" declaration —
// original_source's is_annotation.
func (p *Parser) isAnnotation(i int) bool {
	return p.peekN(i).Kind == token.AnnotationMarker && p.peekN(i+1).Value != "interface"
}

// isAnnotationDeclaration reports whether the token i positions ahead
// starts an "@interface" declaration — original_source's
// is_annotation_declaration.
func (p *Parser) isAnnotationDeclaration(i int) bool {
	return p.peekN(i).Kind == token.AnnotationMarker && p.peekN(i+1).Value == "interface"
}

// declCommon builds the embeddable common fields for a non-empty
// declaration: its span, leading javadoc (captured from start, the first
// token of the declaration including any modifiers/annotations that
// precede it), and its modifiers/annotations.
func declCommon(start token.Token, span token.Span, modifiers []string, annotations []ast.Annotation) ast.DeclCommon {
	return ast.DeclCommon{
		Documented:  ast.Documented{Base: ast.Base{NodeSpan: span}, Documentation: start.LeadingDoc},
		Modifiers:   modifiers,
		Annotations: annotations,
	}
}

// finishDecl stamps a type/member declaration parsed without its modifiers
// and annotations (because the grammar decides which concrete production
// to parse only after already consuming them) with the modifiers,
// annotations, javadoc, and final span determined by the caller.
// original_source assigns member.modifiers/annotations the same way, after
// the fact, since parse_member_declaration dispatches dynamically.
func finishDecl(d ast.Decl, start token.Token, modifiers []string, annotations []ast.Annotation, span token.Span) {
	doc := start.LeadingDoc
	switch v := d.(type) {
	case *ast.MethodDeclaration:
		v.Modifiers, v.Annotations, v.Documentation, v.NodeSpan = modifiers, annotations, doc, span
	case *ast.FieldDeclaration:
		v.Modifiers, v.Annotations, v.Documentation, v.NodeSpan = modifiers, annotations, doc, span
	case *ast.ConstructorDeclaration:
		v.Modifiers, v.Annotations, v.Documentation, v.NodeSpan = modifiers, annotations, doc, span
	case *ast.ClassDeclaration:
		v.Modifiers, v.Annotations, v.Documentation, v.NodeSpan = modifiers, annotations, doc, span
	case *ast.InterfaceDeclaration:
		v.Modifiers, v.Annotations, v.Documentation, v.NodeSpan = modifiers, annotations, doc, span
	case *ast.EnumDeclaration:
		v.Modifiers, v.Annotations, v.Documentation, v.NodeSpan = modifiers, annotations, doc, span
	case *ast.AnnotationDeclaration:
		v.Modifiers, v.Annotations, v.Documentation, v.NodeSpan = modifiers, annotations, doc, span
	case *ast.AnnotationMethod:
		v.Modifiers, v.Annotations, v.Documentation, v.NodeSpan = modifiers, annotations, doc, span
	}
}

// addDimensions adds extra to t's own array-dimension count, used wherever
// the grammar lets "[]" trail a declarator or parameter rather than (or in
// addition to) the type name itself — original_source folds this the same
// way by mutating the parsed type's "dimensions" attribute in place.
func addDimensions(t ast.TypeNode, extra int) {
	if extra == 0 {
		return
	}
	switch v := t.(type) {
	case *ast.BasicType:
		v.Dimensions += extra
	case *ast.ReferenceType:
		v.Dimensions += extra
	}
}

// parseModifiers consumes a run of modifier keywords and annotation
// applications in any order — original_source's parse_modifiers.
func (p *Parser) parseModifiers() ([]string, []ast.Annotation, error) {
	var modifiers []string
	var annotations []ast.Annotation
	for {
		switch {
		case p.peekKind(token.Modifier):
			modifiers = append(modifiers, p.cur.Advance().Value)
		case p.isAnnotation(0):
			a, err := p.parseAnnotation()
			if err != nil {
				return nil, nil, err
			}
			annotations = append(annotations, a)
		default:
			return modifiers, annotations, nil
		}
	}
}

// parseAnnotations consumes one or more consecutive annotation
// applications — original_source's parse_annotations.
func (p *Parser) parseAnnotations() ([]ast.Annotation, error) {
	var annotations []ast.Annotation
	for {
		a, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
		if !p.isAnnotation(0) {
			return annotations, nil
		}
	}
}

// parseAnnotation parses a single "@Name" or "@Name(...)" application —
// original_source's parse_annotation.
func (p *Parser) parseAnnotation() (ast.Annotation, error) {
	start := p.peek()
	if _, err := p.expect("@"); err != nil {
		return ast.Annotation{}, err
	}
	name, err := p.parseQualifiedIdentifier()
	if err != nil {
		return ast.Annotation{}, err
	}

	var element interface{}
	if p.tryConsume("(") {
		if !p.peekValue(")") {
			element, err = p.parseAnnotationElement()
			if err != nil {
				return ast.Annotation{}, err
			}
		}
		if _, err := p.expect(")"); err != nil {
			return ast.Annotation{}, err
		}
	}

	return ast.Annotation{Base: ast.Base{NodeSpan: p.span(start)}, Name: name, Element: element}, nil
}

// parseAnnotationElement distinguishes a NormalAnnotation's "name = value,
// ..." pairs from a SingleElementAnnotation's bare value —
// original_source's parse_annotation_element.
func (p *Parser) parseAnnotationElement() (interface{}, error) {
	if p.peekKind(token.Identifier) && p.peekN(1).Value == "=" {
		return p.parseElementValuePairs()
	}
	return p.parseElementValue()
}

// parseElementValuePairs parses a comma-separated "name = value" list —
// original_source's parse_element_value_pairs.
func (p *Parser) parseElementValuePairs() ([]ast.ElementValuePair, error) {
	var pairs []ast.ElementValuePair
	for {
		pair, err := p.parseElementValuePair()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
		if !p.tryConsume(",") {
			return pairs, nil
		}
	}
}

// parseElementValuePair parses a single "name = value" entry —
// original_source's parse_element_value_pair.
func (p *Parser) parseElementValuePair() (ast.ElementValuePair, error) {
	start := p.peek()
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.ElementValuePair{}, err
	}
	if _, err := p.expect("="); err != nil {
		return ast.ElementValuePair{}, err
	}
	value, err := p.parseElementValue()
	if err != nil {
		return ast.ElementValuePair{}, err
	}
	return ast.ElementValuePair{Base: ast.Base{NodeSpan: p.span(start)}, Name: name, Value: value}, nil
}

// parseElementValue parses one annotation element value: a nested
// annotation, an array initializer, or a conditional (non-assignment)
// expression — original_source's parse_element_value.
func (p *Parser) parseElementValue() (ast.Expr, error) {
	switch {
	case p.isAnnotation(0):
		a, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		return a, nil
	case p.peekValue("{"):
		return p.parseElementValueArrayInitializer()
	default:
		return p.parseExpressionl()
	}
}

// parseElementValueArrayInitializer parses "{ v1, v2, ... }" —
// original_source's parse_element_value_array_initializer.
func (p *Parser) parseElementValueArrayInitializer() (*ast.ElementValueArrayInitializer, error) {
	start := p.peek()
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	if p.tryConsume("}") {
		return &ast.ElementValueArrayInitializer{Base: ast.Base{NodeSpan: p.span(start)}}, nil
	}
	values, err := p.parseElementValues()
	if err != nil {
		return nil, err
	}
	p.tryConsume(",")
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return &ast.ElementValueArrayInitializer{Base: ast.Base{NodeSpan: p.span(start)}, Values: values}, nil
}

// parseElementValues parses a comma-separated list of element values —
// original_source's parse_element_values.
func (p *Parser) parseElementValues() ([]ast.Expr, error) {
	var values []ast.Expr
	for {
		v, err := p.parseElementValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if p.peekValue("}") || (p.peekValue(",") && p.peekN(1).Value == "}") {
			return values, nil
		}
		if _, err := p.expect(","); err != nil {
			return nil, err
		}
	}
}

// ------------------------------------------------------------------------
// Top-level units
// ------------------------------------------------------------------------

// ParseCompilationUnit parses an entire source file: an optional package
// declaration, imports, and type declarations — original_source's
// parse_compilation_unit, the parser's sole entry point (spec.md §6).
func (p *Parser) ParseCompilationUnit() (*ast.CompilationUnit, error) {
	start := p.peek()
	cu := &ast.CompilationUnit{}

	mark := p.cur.Save()
	var packageAnnotations []ast.Annotation
	if p.isAnnotation(0) {
		var err error
		packageAnnotations, err = p.parseAnnotations()
		if err != nil {
			return nil, err
		}
	}

	if p.tryConsume("package") {
		p.cur.Commit(mark)
		name, err := p.parseQualifiedIdentifier()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		cu.Package = &ast.PackageDeclaration{
			DeclCommon: declCommon(start, p.span(start), nil, packageAnnotations),
			Name:       name,
		}
	} else {
		p.cur.Rollback(mark)
	}

	for p.peekValue("import") {
		imp, err := p.parseImportDeclaration()
		if err != nil {
			return nil, err
		}
		cu.Imports = append(cu.Imports, imp)
	}

	for !p.peekKind(token.EndOfInput) {
		decl, err := p.parseTypeDeclaration()
		if err != nil {
			return nil, err
		}
		if decl != nil {
			cu.Types = append(cu.Types, decl)
		}
	}

	cu.NodeSpan = p.span(start)
	return cu, nil
}

// parseImportDeclaration parses a single "import [static] a.b.C[.*];" —
// original_source's parse_import_declaration.
func (p *Parser) parseImportDeclaration() (ast.Import, error) {
	start := p.peek()
	if _, err := p.expect("import"); err != nil {
		return ast.Import{}, err
	}
	static := p.tryConsume("static")

	var parts []string
	wildcard := false
	for {
		name, err := p.parseIdentifier()
		if err != nil {
			return ast.Import{}, err
		}
		parts = append(parts, name)

		if p.tryConsume(".") {
			if p.tryConsume("*") {
				wildcard = true
				if _, err := p.expect(";"); err != nil {
					return ast.Import{}, err
				}
				break
			}
			continue
		}
		if _, err := p.expect(";"); err != nil {
			return ast.Import{}, err
		}
		break
	}

	return ast.Import{
		Base:     ast.Base{NodeSpan: p.span(start)},
		Path:     strings.Join(parts, "."),
		Static:   static,
		Wildcard: wildcard,
	}, nil
}

// parseTypeDeclaration parses a single top-level type declaration, or a
// lone ";" (returning nil) — original_source's parse_type_declaration.
func (p *Parser) parseTypeDeclaration() (ast.Decl, error) {
	if p.tryConsume(";") {
		return nil, nil
	}
	return p.parseClassOrInterfaceDeclaration()
}

// parseClassOrInterfaceDeclaration parses modifiers followed by a class,
// interface, enum, or annotation-type declaration — original_source's
// parse_class_or_interface_declaration.
func (p *Parser) parseClassOrInterfaceDeclaration() (ast.Decl, error) {
	start := p.peek()
	modifiers, annotations, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}

	var decl ast.Decl
	switch {
	case p.peekValue("class"):
		decl, err = p.parseNormalClassDeclaration()
	case p.peekValue("enum"):
		decl, err = p.parseEnumDeclaration()
	case p.peekValue("interface"):
		decl, err = p.parseNormalInterfaceDeclaration()
	case p.isAnnotationDeclaration(0):
		decl, err = p.parseAnnotationTypeDeclaration()
	default:
		return nil, p.errorf(p.peek(), "expected a type declaration")
	}
	if err != nil {
		return nil, err
	}

	finishDecl(decl, start, modifiers, annotations, p.span(start))
	return decl, nil
}

// parseNormalClassDeclaration parses "class Name<T> extends S implements
// I1, I2 { ... }" — original_source's parse_normal_class_declaration.
func (p *Parser) parseNormalClassDeclaration() (*ast.ClassDeclaration, error) {
	start := p.peek()
	if _, err := p.expect("class"); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var typeParams []ast.TypeParameter
	if p.peekValue("<") {
		if typeParams, err = p.parseTypeParameters(); err != nil {
			return nil, err
		}
	}

	var extends *ast.ReferenceType
	if p.tryConsume("extends") {
		if extends, err = p.parseReferenceType(); err != nil {
			return nil, err
		}
	}

	var implements []*ast.ReferenceType
	if p.tryConsume("implements") {
		if implements, err = p.parseTypeList(); err != nil {
			return nil, err
		}
	}

	body, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}

	return &ast.ClassDeclaration{
		TypeDeclCommon: ast.TypeDeclCommon{
			DeclCommon: declCommon(start, p.span(start), nil, nil),
			Name:       name,
			Body:       body,
		},
		TypeParameters: typeParams,
		Extends:        extends,
		Implements:     implements,
	}, nil
}

// parseEnumDeclaration parses "enum Name implements I1, I2 { ... }" —
// original_source's parse_enum_declaration.
func (p *Parser) parseEnumDeclaration() (*ast.EnumDeclaration, error) {
	start := p.peek()
	if _, err := p.expect("enum"); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var implements []*ast.ReferenceType
	if p.tryConsume("implements") {
		if implements, err = p.parseTypeList(); err != nil {
			return nil, err
		}
	}

	constants, body, err := p.parseEnumBody()
	if err != nil {
		return nil, err
	}

	return &ast.EnumDeclaration{
		TypeDeclCommon: ast.TypeDeclCommon{
			DeclCommon: declCommon(start, p.span(start), nil, nil),
			Name:       name,
			Body:       body,
		},
		Implements: implements,
		Constants:  constants,
	}, nil
}

// parseNormalInterfaceDeclaration parses "interface Name<T> extends I1, I2
// { ... }" — original_source's parse_normal_interface_declaration.
func (p *Parser) parseNormalInterfaceDeclaration() (*ast.InterfaceDeclaration, error) {
	start := p.peek()
	if _, err := p.expect("interface"); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var typeParams []ast.TypeParameter
	if p.peekValue("<") {
		if typeParams, err = p.parseTypeParameters(); err != nil {
			return nil, err
		}
	}

	var extends []*ast.ReferenceType
	if p.tryConsume("extends") {
		if extends, err = p.parseTypeList(); err != nil {
			return nil, err
		}
	}

	body, err := p.parseInterfaceBody()
	if err != nil {
		return nil, err
	}

	return &ast.InterfaceDeclaration{
		TypeDeclCommon: ast.TypeDeclCommon{
			DeclCommon: declCommon(start, p.span(start), nil, nil),
			Name:       name,
			Body:       body,
		},
		TypeParameters: typeParams,
		Extends:        extends,
	}, nil
}

// parseAnnotationTypeDeclaration parses "@interface Name { ... }" —
// original_source's parse_annotation_type_declaration.
func (p *Parser) parseAnnotationTypeDeclaration() (*ast.AnnotationDeclaration, error) {
	start := p.peek()
	if _, err := p.expect("@"); err != nil {
		return nil, err
	}
	if _, err := p.expect("interface"); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	body, err := p.parseAnnotationTypeBody()
	if err != nil {
		return nil, err
	}
	return &ast.AnnotationDeclaration{
		TypeDeclCommon: ast.TypeDeclCommon{
			DeclCommon: declCommon(start, p.span(start), nil, nil),
			Name:       name,
			Body:       body,
		},
	}, nil
}

// ------------------------------------------------------------------------
// Class body
// ------------------------------------------------------------------------

// parseClassBody parses "{ member* }" — original_source's parse_class_body.
func (p *Parser) parseClassBody() ([]ast.Decl, error) {
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	decls := []ast.Decl{}
	for !p.peekValue("}") {
		d, err := p.parseClassBodyDeclaration()
		if err != nil {
			return nil, err
		}
		if d != nil {
			decls = append(decls, d)
		}
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return decls, nil
}

// parseClassBodyDeclaration parses a lone ";", a static or instance
// initializer block, or a member declaration — original_source's
// parse_class_body_declaration.
func (p *Parser) parseClassBodyDeclaration() (ast.Decl, error) {
	start := p.peek()
	if p.tryConsume(";") {
		return nil, nil
	}

	if p.peekValue("static") && p.peekN(1).Value == "{" {
		p.cur.Advance()
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.StaticInitializer{
			DeclCommon: declCommon(start, p.span(start), nil, nil),
			Block:      block,
		}, nil
	}

	if p.peekValue("{") {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.InstanceInitializer{
			DeclCommon: declCommon(start, p.span(start), nil, nil),
			Block:      block,
		}, nil
	}

	return p.parseMemberDeclaration()
}

// parseMemberDeclaration parses a field, method, constructor, or nested
// type declaration inside a class body — original_source's
// parse_member_declaration.
func (p *Parser) parseMemberDeclaration() (ast.Decl, error) {
	start := p.peek()
	modifiers, annotations, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}

	var member ast.Decl
	switch {
	case p.tryConsume("void"):
		name, ierr := p.parseIdentifier()
		if ierr != nil {
			return nil, ierr
		}
		m, merr := p.parseVoidMethodDeclaratorRest()
		if merr != nil {
			return nil, merr
		}
		m.Name = name
		member = m

	case p.peekValue("<"):
		member, err = p.parseGenericMethodOrConstructorDeclaration()

	case p.peekValue("class"):
		member, err = p.parseNormalClassDeclaration()

	case p.peekValue("enum"):
		member, err = p.parseEnumDeclaration()

	case p.peekValue("interface"):
		member, err = p.parseNormalInterfaceDeclaration()

	case p.isAnnotationDeclaration(0):
		member, err = p.parseAnnotationTypeDeclaration()

	case p.peekKind(token.Identifier) && p.peekN(1).Value == "(":
		name, ierr := p.parseIdentifier()
		if ierr != nil {
			return nil, ierr
		}
		c, cerr := p.parseConstructorDeclaratorRest()
		if cerr != nil {
			return nil, cerr
		}
		c.Name = name
		member = c

	default:
		member, err = p.parseMethodOrFieldDeclaration()
	}
	if err != nil {
		return nil, err
	}

	finishDecl(member, start, modifiers, annotations, p.span(start))
	return member, nil
}

// parseMethodOrFieldDeclaration parses "Type name rest" where rest decides
// whether this is a field or a method — original_source's
// parse_method_or_field_declaraction.
func (p *Parser) parseMethodOrFieldDeclaration() (ast.Decl, error) {
	memberType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	memberName, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	member, extraDims, err := p.parseMethodOrFieldRest()
	if err != nil {
		return nil, err
	}

	switch m := member.(type) {
	case *ast.MethodDeclaration:
		addDimensions(memberType, extraDims)
		m.Name = memberName
		m.ReturnType = memberType
	case *ast.FieldDeclaration:
		m.Type = memberType
		m.Declarators[0].Name = memberName
	}

	return member, nil
}

// parseMethodOrFieldRest parses everything after "Type name", returning
// either a field declaration or a method declaration plus any extra array
// dimensions from its declarator rest — original_source's
// parse_method_or_field_rest.
func (p *Parser) parseMethodOrFieldRest() (ast.Decl, int, error) {
	if p.peekValue("(") {
		m, dims, err := p.parseMethodDeclaratorRest()
		return m, dims, err
	}
	rest, err := p.parseFieldDeclaratorsRest()
	if err != nil {
		return nil, 0, err
	}
	if _, err := p.expect(";"); err != nil {
		return nil, 0, err
	}
	return rest, 0, nil
}

// parseFieldDeclaratorsRest parses "[] [= init] [, name2 ...]" following a
// field's type and first declarator name — original_source's
// parse_field_declarators_rest.
func (p *Parser) parseFieldDeclaratorsRest() (*ast.FieldDeclaration, error) {
	start := p.peek()
	dims, init, err := p.parseVariableDeclaratorRest()
	if err != nil {
		return nil, err
	}
	declarators := []*ast.VariableDeclarator{{
		Base:        ast.Base{NodeSpan: p.span(start)},
		Dimensions:  dims,
		Initializer: init,
	}}
	for p.tryConsume(",") {
		d, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		declarators = append(declarators, d)
	}
	return &ast.FieldDeclaration{Declarators: declarators}, nil
}

// parseMethodDeclaratorRest parses "(params) [] [throws T1, T2] (block |
// ;)" — original_source's parse_method_declarator_rest. The returned int
// is the array dimension written after the parameter list, to be folded
// into the method's return type by the caller.
func (p *Parser) parseMethodDeclaratorRest() (*ast.MethodDeclaration, int, error) {
	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, 0, err
	}
	dims, err := p.parseArrayDimension()
	if err != nil {
		return nil, 0, err
	}

	var throws []*ast.ReferenceType
	if p.tryConsume("throws") {
		if throws, err = p.parseTypeList(); err != nil {
			return nil, 0, err
		}
	}

	var body []ast.Stmt
	if p.peekValue("{") {
		if body, err = p.parseBlock(); err != nil {
			return nil, 0, err
		}
	} else if _, err := p.expect(";"); err != nil {
		return nil, 0, err
	}

	return &ast.MethodDeclaration{Parameters: params, Throws: throws, Body: body}, dims, nil
}

// parseVoidMethodDeclaratorRest parses "(params) [throws T1, T2] (block |
// ;)" for a "void" method — original_source's
// parse_void_method_declarator_rest.
func (p *Parser) parseVoidMethodDeclaratorRest() (*ast.MethodDeclaration, error) {
	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}
	var throws []*ast.ReferenceType
	if p.tryConsume("throws") {
		if throws, err = p.parseTypeList(); err != nil {
			return nil, err
		}
	}
	var body []ast.Stmt
	if p.peekValue("{") {
		if body, err = p.parseBlock(); err != nil {
			return nil, err
		}
	} else if _, err := p.expect(";"); err != nil {
		return nil, err
	}
	return &ast.MethodDeclaration{Parameters: params, Throws: throws, Body: body}, nil
}

// parseConstructorDeclaratorRest parses "(params) [throws T1, T2] block" —
// original_source's parse_constructor_declarator_rest.
func (p *Parser) parseConstructorDeclaratorRest() (*ast.ConstructorDeclaration, error) {
	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}
	var throws []*ast.ReferenceType
	if p.tryConsume("throws") {
		if throws, err = p.parseTypeList(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ConstructorDeclaration{Parameters: params, Throws: throws, Body: body}, nil
}

// parseGenericMethodOrConstructorDeclaration parses a member starting with
// "<T1, T2>", which could be a generic constructor or a generic method —
// original_source's parse_generic_method_or_constructor_declaration.
func (p *Parser) parseGenericMethodOrConstructorDeclaration() (ast.Decl, error) {
	typeParams, err := p.parseTypeParameters()
	if err != nil {
		return nil, err
	}

	switch {
	case p.peekKind(token.Identifier) && p.peekN(1).Value == "(":
		name, ierr := p.parseIdentifier()
		if ierr != nil {
			return nil, ierr
		}
		c, cerr := p.parseConstructorDeclaratorRest()
		if cerr != nil {
			return nil, cerr
		}
		c.Name = name
		c.TypeParameters = typeParams
		return c, nil

	case p.tryConsume("void"):
		name, ierr := p.parseIdentifier()
		if ierr != nil {
			return nil, ierr
		}
		m, merr := p.parseVoidMethodDeclaratorRest()
		if merr != nil {
			return nil, merr
		}
		m.Name = name
		m.TypeParameters = typeParams
		return m, nil

	default:
		returnType, terr := p.parseType()
		if terr != nil {
			return nil, terr
		}
		name, ierr := p.parseIdentifier()
		if ierr != nil {
			return nil, ierr
		}
		m, dims, merr := p.parseMethodDeclaratorRest()
		if merr != nil {
			return nil, merr
		}
		addDimensions(returnType, dims)
		m.ReturnType = returnType
		m.Name = name
		m.TypeParameters = typeParams
		return m, nil
	}
}

// ------------------------------------------------------------------------
// Interface body
// ------------------------------------------------------------------------

// parseInterfaceBody parses "{ member* }" — original_source's
// parse_interface_body.
func (p *Parser) parseInterfaceBody() ([]ast.Decl, error) {
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	decls := []ast.Decl{}
	for !p.peekValue("}") {
		d, err := p.parseInterfaceBodyDeclaration()
		if err != nil {
			return nil, err
		}
		if d != nil {
			decls = append(decls, d)
		}
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return decls, nil
}

// parseInterfaceBodyDeclaration parses a lone ";" or a member declaration
// — original_source's parse_interface_body_declaration.
func (p *Parser) parseInterfaceBodyDeclaration() (ast.Decl, error) {
	start := p.peek()
	if p.tryConsume(";") {
		return nil, nil
	}
	modifiers, annotations, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}
	decl, err := p.parseInterfaceMemberDeclaration()
	if err != nil {
		return nil, err
	}
	finishDecl(decl, start, modifiers, annotations, p.span(start))
	return decl, nil
}

// parseInterfaceMemberDeclaration dispatches on the shape of an interface
// member — original_source's parse_interface_member_declaration.
func (p *Parser) parseInterfaceMemberDeclaration() (ast.Decl, error) {
	switch {
	case p.peekValue("class"):
		return p.parseNormalClassDeclaration()
	case p.peekValue("interface"):
		return p.parseNormalInterfaceDeclaration()
	case p.peekValue("enum"):
		return p.parseEnumDeclaration()
	case p.isAnnotationDeclaration(0):
		return p.parseAnnotationTypeDeclaration()
	case p.peekValue("<"):
		return p.parseInterfaceGenericMethodDeclarator()
	case p.tryConsume("void"):
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		m, err := p.parseVoidInterfaceMethodDeclaratorRest()
		if err != nil {
			return nil, err
		}
		m.Name = name
		return m, nil
	default:
		return p.parseInterfaceMethodOrFieldDeclaration()
	}
}

// parseInterfaceMethodOrFieldDeclaration parses "Type name rest" inside an
// interface body — original_source's
// parse_interface_method_or_field_declaration.
func (p *Parser) parseInterfaceMethodOrFieldDeclaration() (ast.Decl, error) {
	javaType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	member, extraDims, err := p.parseInterfaceMethodOrFieldRest()
	if err != nil {
		return nil, err
	}
	switch m := member.(type) {
	case *ast.MethodDeclaration:
		addDimensions(javaType, extraDims)
		m.Name = name
		m.ReturnType = javaType
	case *ast.FieldDeclaration:
		m.Type = javaType
		m.Declarators[0].Name = name
	}
	return member, nil
}

// parseInterfaceMethodOrFieldRest parses everything after "Type name" in
// an interface member — original_source's
// parse_interface_method_or_field_rest.
func (p *Parser) parseInterfaceMethodOrFieldRest() (ast.Decl, int, error) {
	if p.peekValue("(") {
		m, dims, err := p.parseInterfaceMethodDeclaratorRest()
		return m, dims, err
	}
	rest, err := p.parseConstantDeclaratorsRest()
	if err != nil {
		return nil, 0, err
	}
	if _, err := p.expect(";"); err != nil {
		return nil, 0, err
	}
	return rest, 0, nil
}

// parseConstantDeclaratorsRest parses "[] = init [, name2 ...]" for an
// interface constant, represented with the same ast.FieldDeclaration a
// class field uses — original_source's parse_constant_declarators_rest.
func (p *Parser) parseConstantDeclaratorsRest() (*ast.FieldDeclaration, error) {
	start := p.peek()
	dims, init, err := p.parseConstantDeclaratorRest()
	if err != nil {
		return nil, err
	}
	declarators := []*ast.VariableDeclarator{{
		Base:        ast.Base{NodeSpan: p.span(start)},
		Dimensions:  dims,
		Initializer: init,
	}}
	for p.tryConsume(",") {
		d, err := p.parseConstantDeclarator()
		if err != nil {
			return nil, err
		}
		declarators = append(declarators, d)
	}
	return &ast.FieldDeclaration{Declarators: declarators}, nil
}

// parseConstantDeclaratorRest parses "[] = init" — original_source's
// parse_constant_declarator_rest. Unlike an ordinary variable declarator,
// an interface constant's initializer is mandatory.
func (p *Parser) parseConstantDeclaratorRest() (int, ast.Node, error) {
	dims, err := p.parseArrayDimension()
	if err != nil {
		return 0, nil, err
	}
	if _, err := p.expect("="); err != nil {
		return 0, nil, err
	}
	init, err := p.parseVariableInitializer()
	if err != nil {
		return 0, nil, err
	}
	return dims, init, nil
}

// parseConstantDeclarator parses "name [] = init" — original_source's
// parse_constant_declarator.
func (p *Parser) parseConstantDeclarator() (*ast.VariableDeclarator, error) {
	start := p.peek()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	dims, init, err := p.parseConstantDeclaratorRest()
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclarator{Base: ast.Base{NodeSpan: p.span(start)}, Name: name, Dimensions: dims, Initializer: init}, nil
}

// parseInterfaceMethodDeclaratorRest parses "(params) [] [throws T1, T2]
// ;" — original_source's parse_interface_method_declarator_rest.
func (p *Parser) parseInterfaceMethodDeclaratorRest() (*ast.MethodDeclaration, int, error) {
	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, 0, err
	}
	dims, err := p.parseArrayDimension()
	if err != nil {
		return nil, 0, err
	}
	var throws []*ast.ReferenceType
	if p.tryConsume("throws") {
		if throws, err = p.parseTypeList(); err != nil {
			return nil, 0, err
		}
	}
	if _, err := p.expect(";"); err != nil {
		return nil, 0, err
	}
	return &ast.MethodDeclaration{Parameters: params, Throws: throws}, dims, nil
}

// parseVoidInterfaceMethodDeclaratorRest parses "(params) [throws T1, T2]
// ;" for a "void" interface method — original_source's
// parse_void_interface_method_declarator_rest.
func (p *Parser) parseVoidInterfaceMethodDeclaratorRest() (*ast.MethodDeclaration, error) {
	params, err := p.parseFormalParameters()
	if err != nil {
		return nil, err
	}
	var throws []*ast.ReferenceType
	if p.tryConsume("throws") {
		if throws, err = p.parseTypeList(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}
	return &ast.MethodDeclaration{Parameters: params, Throws: throws}, nil
}

// parseInterfaceGenericMethodDeclarator parses an interface member
// starting with "<T1, T2>" — original_source's
// parse_interface_generic_method_declarator.
func (p *Parser) parseInterfaceGenericMethodDeclarator() (*ast.MethodDeclaration, error) {
	typeParams, err := p.parseTypeParameters()
	if err != nil {
		return nil, err
	}
	var returnType ast.TypeNode
	if !p.tryConsume("void") {
		if returnType, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	m, dims, err := p.parseInterfaceMethodDeclaratorRest()
	if err != nil {
		return nil, err
	}
	addDimensions(returnType, dims)
	m.Name = name
	m.ReturnType = returnType
	m.TypeParameters = typeParams
	return m, nil
}

// ------------------------------------------------------------------------
// Parameters and variables
// ------------------------------------------------------------------------

// parseFormalParameters parses "(Type1 name1, Type2... name2)" —
// original_source's parse_formal_parameters.
func (p *Parser) parseFormalParameters() ([]*ast.FormalParameter, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	if p.tryConsume(")") {
		return nil, nil
	}

	var params []*ast.FormalParameter
	for {
		start := p.peek()
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

		if varargs {
			break
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

// parseVariableModifiers parses the "final"/annotation run preceding a
// local variable or parameter — original_source's parse_variable_modifiers.
func (p *Parser) parseVariableModifiers() ([]string, []ast.Annotation, error) {
	var modifiers []string
	var annotations []ast.Annotation
	for {
		switch {
		case p.tryConsume("final"):
			modifiers = append(modifiers, "final")
		case p.isAnnotation(0):
			a, err := p.parseAnnotation()
			if err != nil {
				return nil, nil, err
			}
			annotations = append(annotations, a)
		default:
			return modifiers, annotations, nil
		}
	}
}

// parseVariableDeclarators parses a comma-separated list of declarators —
// original_source's parse_variable_declarators.
func (p *Parser) parseVariableDeclarators() ([]*ast.VariableDeclarator, error) {
	var declarators []*ast.VariableDeclarator
	for {
		d, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		declarators = append(declarators, d)
		if !p.tryConsume(",") {
			return declarators, nil
		}
	}
}

// parseVariableDeclarator parses "name [] [= init]" — original_source's
// parse_variable_declarator.
func (p *Parser) parseVariableDeclarator() (*ast.VariableDeclarator, error) {
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

// parseVariableDeclaratorRest parses "[] [= init]" — original_source's
// parse_variable_declarator_rest. Unlike a constant declarator, the
// initializer here is optional.
func (p *Parser) parseVariableDeclaratorRest() (int, ast.Node, error) {
	dims, err := p.parseArrayDimension()
	if err != nil {
		return 0, nil, err
	}
	var init ast.Node
	if p.tryConsume("=") {
		if init, err = p.parseVariableInitializer(); err != nil {
			return 0, nil, err
		}
	}
	return dims, init, nil
}

// parseVariableInitializer parses either an array initializer or a plain
// expression — original_source's parse_variable_initializer.
func (p *Parser) parseVariableInitializer() (ast.Node, error) {
	if p.peekValue("{") {
		return p.parseArrayInitializer()
	}
	return p.parseExpression()
}

// parseArrayInitializer parses "{ v1, v2, ... [,] }" —
// original_source's parse_array_initializer.
func (p *Parser) parseArrayInitializer() (*ast.ArrayInitializer, error) {
	start := p.peek()
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}

	if p.tryConsume(",") {
		if _, err := p.expect("}"); err != nil {
			return nil, err
		}
		return &ast.ArrayInitializer{Base: ast.Base{NodeSpan: p.span(start)}, Comma: true}, nil
	}
	if p.tryConsume("}") {
		return &ast.ArrayInitializer{Base: ast.Base{NodeSpan: p.span(start)}}, nil
	}

	var initializers []ast.Node
	comma := false
	for {
		init, err := p.parseVariableInitializer()
		if err != nil {
			return nil, err
		}
		initializers = append(initializers, init)

		if !p.peekValue("}") {
			if _, err := p.expect(","); err != nil {
				return nil, err
			}
			comma = true
		} else {
			comma = false
		}

		if p.tryConsume("}") {
			return &ast.ArrayInitializer{Base: ast.Base{NodeSpan: p.span(start)}, Initializers: initializers, Comma: comma}, nil
		}
	}
}

// ------------------------------------------------------------------------
// Enum and annotation-type body
// ------------------------------------------------------------------------

// parseEnumBody parses "{ [Constant1, Constant2 [,]] [; member*] }" —
// original_source's parse_enum_body.
func (p *Parser) parseEnumBody() ([]*ast.EnumConstantDeclaration, []ast.Decl, error) {
	var constants []*ast.EnumConstantDeclaration
	var declarations []ast.Decl

	if _, err := p.expect("{"); err != nil {
		return nil, nil, err
	}

	if !p.tryConsume(",") {
		for !p.peekValue(";") && !p.peekValue("}") {
			c, err := p.parseEnumConstant()
			if err != nil {
				return nil, nil, err
			}
			constants = append(constants, c)
			if !p.tryConsume(",") {
				break
			}
		}
	}

	if p.tryConsume(";") {
		for !p.peekValue("}") {
			d, err := p.parseClassBodyDeclaration()
			if err != nil {
				return nil, nil, err
			}
			if d != nil {
				declarations = append(declarations, d)
			}
		}
	}

	if _, err := p.expect("}"); err != nil {
		return nil, nil, err
	}

	return constants, declarations, nil
}

// parseEnumConstant parses "[@Annotation...] Name [(args)] [{ body }]" —
// original_source's parse_enum_constant.
func (p *Parser) parseEnumConstant() (*ast.EnumConstantDeclaration, error) {
	start := p.peek()
	var annotations []ast.Annotation
	if p.peekKind(token.AnnotationMarker) {
		var err error
		if annotations, err = p.parseAnnotations(); err != nil {
			return nil, err
		}
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	var arguments []ast.Expr
	if p.peekValue("(") {
		if arguments, err = p.parseArguments(); err != nil {
			return nil, err
		}
	}

	var body []ast.Decl
	if p.peekValue("{") {
		if body, err = p.parseClassBody(); err != nil {
			return nil, err
		}
	}

	return &ast.EnumConstantDeclaration{
		DeclCommon: declCommon(start, p.span(start), nil, annotations),
		Name:       name,
		Arguments:  arguments,
		Body:       body,
	}, nil
}

// parseAnnotationTypeBody parses "{ element* }" — original_source's
// parse_annotation_type_body.
func (p *Parser) parseAnnotationTypeBody() ([]ast.Decl, error) {
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	decls, err := p.parseAnnotationTypeElementDeclarations()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect("}"); err != nil {
		return nil, err
	}
	return decls, nil
}

// parseAnnotationTypeElementDeclarations parses zero or more annotation
// elements up to the closing "}" — original_source's
// parse_annotation_type_element_declarations.
func (p *Parser) parseAnnotationTypeElementDeclarations() ([]ast.Decl, error) {
	decls := []ast.Decl{}
	for !p.peekValue("}") {
		d, err := p.parseAnnotationTypeElementDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// parseAnnotationTypeElementDeclaration parses a single "@interface"
// member: a nested type declaration or an annotation method/constant —
// original_source's parse_annotation_type_element_declaration.
func (p *Parser) parseAnnotationTypeElementDeclaration() (ast.Decl, error) {
	start := p.peek()
	modifiers, annotations, err := p.parseModifiers()
	if err != nil {
		return nil, err
	}

	var decl ast.Decl
	switch {
	case p.peekValue("class"):
		decl, err = p.parseNormalClassDeclaration()
	case p.peekValue("interface"):
		decl, err = p.parseNormalInterfaceDeclaration()
	case p.peekValue("enum"):
		decl, err = p.parseEnumDeclaration()
	case p.isAnnotationDeclaration(0):
		decl, err = p.parseAnnotationTypeDeclaration()
	default:
		var attributeType ast.TypeNode
		attributeType, err = p.parseType()
		if err != nil {
			return nil, err
		}
		var attributeName string
		attributeName, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		decl, err = p.parseAnnotationMethodOrConstantRest()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(";"); err != nil {
			return nil, err
		}

		switch d := decl.(type) {
		case *ast.AnnotationMethod:
			d.Name = attributeName
			d.ReturnType = attributeType
		case *ast.FieldDeclaration:
			d.Type = attributeType
			d.Declarators[0].Name = attributeName
		}
	}
	if err != nil {
		return nil, err
	}

	finishDecl(decl, start, modifiers, annotations, p.span(start))
	return decl, nil
}

// parseAnnotationMethodOrConstantRest parses "()[] [default value]" for an
// annotation element, or "[] = value" for an annotation constant —
// original_source's parse_annotation_method_or_constant_rest.
func (p *Parser) parseAnnotationMethodOrConstantRest() (ast.Decl, error) {
	if p.tryConsume("(") {
		if _, err := p.expect(")"); err != nil {
			return nil, err
		}
		dims, err := p.parseArrayDimension()
		if err != nil {
			return nil, err
		}
		var def ast.Expr
		if p.tryConsume("default") {
			if def, err = p.parseElementValue(); err != nil {
				return nil, err
			}
		}
		return &ast.AnnotationMethod{Dimensions: dims, Default: def}, nil
	}
	return p.parseConstantDeclaratorsRest()
}
