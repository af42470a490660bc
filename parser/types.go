package parser

import (
	"github.com/c2nes/javalang/ast"
	"github.com/c2nes/javalang/token"
)

// parseType parses a basic or reference type followed by any trailing
// "[]" array dimensions — original_source's parse_type.
func (p *Parser) parseType() (ast.TypeNode, error) {
	start := p.peek()
	var t ast.TypeNode
	var err error

	switch {
	case p.peekKind(token.BasicType):
		t, err = p.parseBasicType()
	case p.peekKind(token.Identifier):
		t, err = p.parseReferenceType()
	default:
		return nil, p.errorf(start, "expected a type")
	}
	if err != nil {
		return nil, err
	}

	dims, err := p.parseArrayDimension()
	if err != nil {
		return nil, err
	}
	switch v := t.(type) {
	case *ast.BasicType:
		v.Dimensions = dims
	case *ast.ReferenceType:
		v.Dimensions = dims
	}
	return t, nil
}

// parseBasicType parses a single primitive type name — original_source's
// parse_basic_type.
func (p *Parser) parseBasicType() (*ast.BasicType, error) {
	start := p.peek()
	tok, err := p.expectKind(token.BasicType, "a primitive type")
	if err != nil {
		return nil, err
	}
	return &ast.BasicType{Base: ast.Base{NodeSpan: p.span(start)}, Name: tok.Value}, nil
}

// parseReferenceType parses a possibly-generic, possibly-nested class or
// interface type name, e.g. "Outer<T>.Inner<U>" — original_source's
// parse_reference_type.
func (p *Parser) parseReferenceType() (*ast.ReferenceType, error) {
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
			args, err := p.parseTypeArguments()
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

// parseTypeArguments parses "<T1, T2, ...>" — original_source's
// parse_type_arguments.
func (p *Parser) parseTypeArguments() ([]ast.TypeArgument, error) {
	if _, err := p.expect("<"); err != nil {
		return nil, err
	}
	args := []ast.TypeArgument{}
	for {
		arg, err := p.parseTypeArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tryConsume(">") {
			break
		}
		if _, err := p.expect(","); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// parseTypeArgument parses a single type-argument-list entry, including
// wildcards ("?", "? extends T", "? super T") — original_source's
// parse_type_argument.
func (p *Parser) parseTypeArgument() (ast.TypeArgument, error) {
	start := p.peek()
	var pattern string

	if p.tryConsume("?") {
		if p.peekValue("extends", "super") {
			pattern = p.cur.Advance().Value
		} else {
			return ast.TypeArgument{Base: ast.Base{NodeSpan: p.span(start)}, PatternType: "?"}, nil
		}
	}

	baseType, err := p.parseArgumentBaseType()
	if err != nil {
		return ast.TypeArgument{}, err
	}

	return ast.TypeArgument{Base: ast.Base{NodeSpan: p.span(start)}, Type: baseType, PatternType: pattern}, nil
}

// parseArgumentBaseType parses the type named by a type argument: a basic
// type followed by "[]" (an array of a
// primitive) or a reference type, either way followed by any further
// array dimensions.
func (p *Parser) parseArgumentBaseType() (ast.TypeNode, error) {
	if p.peekKind(token.BasicType) {
		bt, err := p.parseBasicType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect("["); err != nil {
			return nil, err
		}
		if _, err := p.expect("]"); err != nil {
			return nil, err
		}
		bt.Dimensions = 1
		extra, err := p.parseArrayDimension()
		if err != nil {
			return nil, err
		}
		bt.Dimensions += extra
		return bt, nil
	}

	rt, err := p.parseReferenceType()
	if err != nil {
		return nil, err
	}
	extra, err := p.parseArrayDimension()
	if err != nil {
		return nil, err
	}
	rt.Dimensions += extra
	return rt, nil
}

// parseTypeList parses a comma-separated list of types, used by throws
// clauses and extends/implements lists — original_source's
// parse_type_list, restricted to reference types since neither throws nor
// extends/implements ever names a primitive type.
func (p *Parser) parseTypeList() ([]*ast.ReferenceType, error) {
	var types []*ast.ReferenceType
	for {
		t, err := p.parseReferenceType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
		if !p.tryConsume(",") {
			break
		}
	}
	return types, nil
}

// parseTypeArgumentsOrDiamond parses either "<>" (returning no arguments)
// or a full "<T1, T2, ...>" list — original_source's
// parse_type_arguments_or_diamond, used by class creators.
func (p *Parser) parseTypeArgumentsOrDiamond() ([]ast.TypeArgument, error) {
	if p.peekValue("<") && p.peekN(1).Value == ">" {
		p.cur.Advance()
		p.cur.Advance()
		return []ast.TypeArgument{}, nil
	}
	return p.parseTypeArguments()
}

// parseTypeParameters parses a declaration's "<T extends Bound, U>" clause
// — original_source's parse_type_parameters.
func (p *Parser) parseTypeParameters() ([]ast.TypeParameter, error) {
	if _, err := p.expect("<"); err != nil {
		return nil, err
	}
	var params []ast.TypeParameter
	for {
		tp, err := p.parseTypeParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, tp)
		if p.tryConsume(">") {
			break
		}
		if _, err := p.expect(","); err != nil {
			return nil, err
		}
	}
	return params, nil
}

// parseTypeParameter parses a single "T extends Bound1 & Bound2" entry —
// original_source's parse_type_parameter.
func (p *Parser) parseTypeParameter() (ast.TypeParameter, error) {
	start := p.peek()
	name, err := p.parseIdentifier()
	if err != nil {
		return ast.TypeParameter{}, err
	}

	var extends []ast.TypeNode
	if p.tryConsume("extends") {
		for {
			rt, err := p.parseReferenceType()
			if err != nil {
				return ast.TypeParameter{}, err
			}
			extends = append(extends, rt)
			if !p.tryConsume("&") {
				break
			}
		}
	}

	return ast.TypeParameter{Base: ast.Base{NodeSpan: p.span(start)}, Name: name, Extends: extends}, nil
}

// parseArrayDimension consumes zero or more "[]" pairs and returns how
// many it found — original_source's parse_array_dimension.
func (p *Parser) parseArrayDimension() (int, error) {
	dims := 0
	for p.peekValue("[") && p.peekN(1).Value == "]" {
		p.cur.Advance()
		p.cur.Advance()
		dims++
	}
	return dims, nil
}
