// Package unparser renders a parsed ast.Node back into Java source text.
// It is the mirror image of package parser: where the parser discards
// everything but grammar structure, unparser reconstructs syntactically
// valid (if not whitespace-faithful) Java from that structure alone,
// grounded function-for-case on original_source/javalang/unparser.py's own
// single recursive `unparse` dispatch.
package unparser

import (
	"fmt"
	"strings"

	"github.com/c2nes/javalang/ast"
)

const indentUnit = "    "

// Unparse renders node back into Java source text.
func Unparse(node ast.Node) string {
	return unparse(node, 0)
}

func indentString(indent int) string {
	return strings.Repeat(indentUnit, indent)
}

func prefixStr(ops []string) string {
	return strings.Join(ops, "")
}

func postfixStr(ops []string) string {
	return strings.Join(ops, "")
}

func selectorStr(selectors []ast.Expr) string {
	var sb strings.Builder
	for _, s := range selectors {
		if _, ok := s.(*ast.ArraySelector); ok {
			sb.WriteString(unparse(s, 0))
		} else {
			sb.WriteString(".")
			sb.WriteString(unparse(s, 0))
		}
	}
	return sb.String()
}

func qualifierStr(qualifier string) string {
	if qualifier == "" {
		return ""
	}
	return qualifier + "."
}

func modifierStr(modifiers []string, trailingSpace bool) string {
	s := strings.Join(modifiers, " ")
	if trailingSpace && len(modifiers) > 0 {
		s += " "
	}
	return s
}

func typeArgumentsStr(args []ast.TypeArgument, leadingSpace, trailingSpace bool) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = unparse(&a, 0)
	}
	s := "<" + strings.Join(parts, ", ") + ">"
	if leadingSpace {
		s = " " + s
	}
	if trailingSpace {
		s += " "
	}
	return s
}

func annotationStr(annotations []ast.Annotation, indentStr string) string {
	if len(annotations) == 0 {
		return ""
	}
	parts := make([]string, len(annotations))
	for i, a := range annotations {
		parts[i] = unparse(&a, 0)
	}
	return indentStr + strings.Join(parts, " ") + "\n"
}

func labelStr(label string, indentStr string) string {
	if label == "" {
		return ""
	}
	return indentStr + label + ":\n"
}

// bodyStr renders a "{ ... }" declaration or statement body, one element
// per line at indent+1, matching original_source's _get_body_str. A nil
// slice renders as the empty string (no body at all), distinct from an
// empty-but-present body.
func bodyStr[T ast.Node](elements []T, indent int) string {
	if elements == nil {
		return ""
	}
	indentStr := indentString(indent)
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = unparse(e, indent+1)
	}
	return " {\n" + strings.Join(parts, "\n") + "\n" + indentStr + "}"
}

func typeList(types []*ast.ReferenceType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = unparse(t, 0)
	}
	return strings.Join(parts, ", ")
}

func exprList(exprs []ast.Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = unparse(e, 0)
	}
	return strings.Join(parts, ", ")
}

func unparse(node ast.Node, indent int) string {
	indentStr := indentString(indent)

	switch n := node.(type) {
	case *ast.CompilationUnit:
		var packageStr string
		if n.Package != nil {
			packageStr = indentStr + fmt.Sprintf("package %s;", n.Package.Name)
		}
		imports := make([]string, len(n.Imports))
		for i, imp := range n.Imports {
			imports[i] = indentStr + unparse(&imp, indent)
		}
		types := make([]string, len(n.Types))
		for i, t := range n.Types {
			types[i] = unparse(t, indent)
		}
		return fmt.Sprintf("%s\n\n%s\n\n%s", packageStr, strings.Join(imports, "\n"), strings.Join(types, "\n"))

	case *ast.Import:
		prefix := "import "
		if n.Static {
			prefix = "import static "
		}
		if n.Wildcard {
			return prefix + n.Path + ".*;"
		}
		return prefix + n.Path + ";"

	case *ast.PackageDeclaration:
		return indentStr + fmt.Sprintf("package %s;", n.Name)

	case *ast.ClassDeclaration:
		extends := ""
		if n.Extends != nil {
			extends = " extends " + unparse(n.Extends, 0)
		}
		implements := ""
		if len(n.Implements) > 0 {
			implements = " implements " + typeList(n.Implements)
		}
		return fmt.Sprintf("%s%sclass %s%s%s%s",
			annotationStr(n.Annotations, indentStr), indentStr+modifierStr(n.Modifiers, true),
			n.Name, typeParametersStr(n.TypeParameters, false, false), extends, implements) +
			bodyStr(n.Body, indent)

	case *ast.EnumDeclaration:
		implements := ""
		if len(n.Implements) > 0 {
			implements = " implements " + typeList(n.Implements)
		}
		constants := make([]string, len(n.Constants))
		for i, c := range n.Constants {
			constants[i] = indentStr + indentUnit + unparse(c, indent+1)
		}
		members := make([]string, len(n.Body))
		for i, d := range n.Body {
			members[i] = unparse(d, indent+1)
		}
		inner := strings.Join(constants, ",\n")
		if len(members) > 0 {
			inner += ";\n" + strings.Join(members, "\n")
		}
		return fmt.Sprintf("%s%senum %s%s {\n%s\n%s}",
			annotationStr(n.Annotations, indentStr), indentStr+modifierStr(n.Modifiers, true),
			n.Name, implements, inner, indentStr)

	case *ast.InterfaceDeclaration:
		extends := ""
		if len(n.Extends) > 0 {
			extends = " extends " + typeList(n.Extends)
		}
		return fmt.Sprintf("%s%sinterface %s%s%s",
			annotationStr(n.Annotations, indentStr), indentStr+modifierStr(n.Modifiers, true),
			n.Name, typeParametersStr(n.TypeParameters, false, false), extends) +
			bodyStr(n.Body, indent)

	case *ast.AnnotationDeclaration:
		return fmt.Sprintf("%s%s@interface %s",
			annotationStr(n.Annotations, indentStr), indentStr+modifierStr(n.Modifiers, true), n.Name) +
			bodyStr(n.Body, indent)

	case *ast.BasicType:
		return n.Name + strings.Repeat("[]", n.Dimensions)

	case *ast.ReferenceType:
		subType := ""
		if n.SubType != nil {
			subType = "." + unparse(n.SubType, 0)
		}
		args := ""
		if len(n.Arguments) > 0 {
			args = "<" + func() string {
				parts := make([]string, len(n.Arguments))
				for i, a := range n.Arguments {
					parts[i] = unparse(&a, 0)
				}
				return strings.Join(parts, ", ")
			}() + ">"
		}
		return n.Name + args + subType + strings.Repeat("[]", n.Dimensions)

	case *ast.DiamondType:
		return n.Name + "<>"

	case *ast.TypeArgument:
		switch n.PatternType {
		case "":
			return unparse(n.Type, 0)
		case "?":
			return "?"
		case "extends":
			return "? extends " + unparse(n.Type, 0)
		case "super":
			return "? super " + unparse(n.Type, 0)
		default:
			return "?"
		}

	case *ast.TypeParameter:
		if len(n.Extends) == 0 {
			return n.Name
		}
		bounds := make([]string, len(n.Extends))
		for i, b := range n.Extends {
			bounds[i] = unparse(b, 0)
		}
		return n.Name + " extends " + strings.Join(bounds, " & ")

	case *ast.Annotation:
		switch e := n.Element.(type) {
		case nil:
			return "@" + n.Name
		case []ast.ElementValuePair:
			parts := make([]string, len(e))
			for i, p := range e {
				parts[i] = unparse(&p, 0)
			}
			return fmt.Sprintf("@%s(%s)", n.Name, strings.Join(parts, ", "))
		case ast.Expr:
			return fmt.Sprintf("@%s(%s)", n.Name, unparse(e, 0))
		default:
			return "@" + n.Name
		}

	case *ast.ElementValuePair:
		return fmt.Sprintf("%s = %s", n.Name, unparse(n.Value, 0))

	case *ast.ElementValueArrayInitializer:
		return "{" + exprList(n.Values) + "}"

	case *ast.MethodDeclaration:
		returnType := "void"
		if n.ReturnType != nil {
			returnType = unparse(n.ReturnType, 0)
		}
		params := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = unparse(p, 0)
		}
		throws := ""
		if len(n.Throws) > 0 {
			throws = " throws " + typeList(n.Throws)
		}
		body := bodyStr(n.Body, indent)
		if body == "" {
			body = ";"
		}
		return fmt.Sprintf("%s%s%s%s %s(%s)%s%s",
			annotationStr(n.Annotations, indentStr), indentStr+modifierStr(n.Modifiers, true),
			typeParametersStr(n.TypeParameters, false, true), returnType,
			n.Name, strings.Join(params, ", "), throws, body)

	case *ast.FieldDeclaration:
		modifier := indentStr + modifierStr(n.Modifiers, true)
		var sb strings.Builder
		sb.WriteString(annotationStr(n.Annotations, indentStr))
		sb.WriteString(modifier)
		sb.WriteString(unparse(n.Type, 0))
		sb.WriteString(" ")
		decls := make([]string, len(n.Declarators))
		for i, d := range n.Declarators {
			decls[i] = unparse(d, 0)
		}
		sb.WriteString(strings.Join(decls, ", "))
		sb.WriteString(";")
		return sb.String()

	case *ast.ConstructorDeclaration:
		params := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = unparse(p, 0)
		}
		throws := ""
		if len(n.Throws) > 0 {
			throws = " throws " + typeList(n.Throws)
		}
		return fmt.Sprintf("%s%s%s %s(%s)%s%s",
			annotationStr(n.Annotations, indentStr), indentStr+modifierStr(n.Modifiers, false),
			typeParametersStr(n.TypeParameters, true, false), n.Name,
			strings.Join(params, ", "), throws, bodyStr(n.Body, indent))

	case *ast.StaticInitializer:
		return indentStr + "static" + bodyStr(n.Block, indent)

	case *ast.InstanceInitializer:
		return indentStr + bodyStr(n.Block, indent)[1:]

	case *ast.ArrayInitializer:
		parts := make([]string, len(n.Initializers))
		for i, e := range n.Initializers {
			parts[i] = unparse(e, 0)
		}
		s := "{" + strings.Join(parts, ", ")
		if n.Comma {
			s += ","
		}
		return s + "}"

	case *ast.VariableDeclarator:
		name := n.Name + strings.Repeat("[]", n.Dimensions)
		if n.Initializer != nil {
			return fmt.Sprintf("%s = %s", name, unparse(n.Initializer, 0))
		}
		return name

	case *ast.FormalParameter:
		annotation := strings.TrimSpace(annotationStr(n.Annotations, indentStr))
		if annotation != "" {
			annotation += " "
		}
		vararg := " "
		if n.Varargs {
			vararg = "... "
		}
		return annotation + modifierStr(n.Modifiers, true) + unparse(n.Type, 0) + vararg + n.Name

	case *ast.LocalVariableDeclarationStatement:
		modifier := modifierStr(n.Modifiers, true)
		decls := make([]string, len(n.Declarators))
		for i, d := range n.Declarators {
			decls[i] = unparse(d, 0)
		}
		return annotationStr(n.Annotations, indentStr) + indentStr + modifier + unparse(n.Type, 0) + " " + strings.Join(decls, ", ") + ";\n"

	case *ast.TypeDeclarationStatement:
		return unparse(n.Declaration, indent)

	case *ast.IfStatement:
		label := labelStr(n.Label, indentStr)
		preamble := label + indentStr + fmt.Sprintf("if (%s)", unparse(n.Condition, 0))
		then := strings.TrimSpace(unparse(n.ThenStatement, indent))
		if n.ElseStatement != nil {
			elseStr := strings.TrimSpace(unparse(n.ElseStatement, indent))
			return fmt.Sprintf("%s %s else %s", preamble, then, elseStr)
		}
		return fmt.Sprintf("%s %s", preamble, then)

	case *ast.WhileStatement:
		label := labelStr(n.Label, indentStr)
		preamble := label + indentStr + fmt.Sprintf("while (%s) ", unparse(n.Condition, 0))
		return preamble + unparse(n.Body, indent)

	case *ast.DoStatement:
		label := labelStr(n.Label, indentStr)
		preamble := label + indentStr + "do "
		return fmt.Sprintf("%s%s while (%s);", preamble, unparse(n.Body, indent), unparse(n.Condition, 0))

	case *ast.ForStatement:
		label := labelStr(n.Label, indentStr)
		control := unparse(n.Control, 0)
		body := strings.TrimSpace(unparse(n.Body, indent))
		return fmt.Sprintf("%s%sfor (%s) %s", label, indentStr, control, body)

	case *ast.AssertStatement:
		value := ""
		if n.Value != nil {
			value = " : " + unparse(n.Value, 0)
		}
		return indentStr + fmt.Sprintf("assert(%s)%s;", unparse(n.Condition, 0), value)

	case *ast.BreakStatement:
		goTo := ""
		if n.Goto != "" {
			goTo = " " + n.Goto
		}
		return indentStr + "break" + goTo + ";"

	case *ast.ContinueStatement:
		goTo := ""
		if n.Goto != "" {
			goTo = " " + n.Goto
		}
		return indentStr + "continue" + goTo + ";"

	case *ast.ReturnStatement:
		if n.Expression != nil {
			return indentStr + "return " + unparse(n.Expression, 0) + ";"
		}
		return indentStr + "return;"

	case *ast.ThrowStatement:
		return indentStr + "throw " + unparse(n.Expression, 0) + ";"

	case *ast.SynchronizedStatement:
		label := labelStr(n.Label, indentStr)
		return label + indentStr + fmt.Sprintf("synchronized (%s)", unparse(n.Lock, 0)) + bodyStr(n.Block, indent)

	case *ast.TryStatement:
		preamble := labelStr(n.Label, indentStr) + indentStr
		if n.Resources != nil {
			parts := make([]string, len(n.Resources))
			for i, r := range n.Resources {
				parts[i] = unparse(r, 0)
			}
			preamble += fmt.Sprintf("try (%s)", strings.Join(parts, "; "))
		} else {
			preamble += "try"
		}
		block := bodyStr(n.Block, indent)
		catches := make([]string, len(n.Catches))
		for i, c := range n.Catches {
			catches[i] = unparse(c, indent)
		}
		if n.FinallyBlock == nil {
			return fmt.Sprintf("%s%s %s", preamble, block, strings.Join(catches, " "))
		}
		return fmt.Sprintf("%s%s %s finally%s", preamble, block, strings.Join(catches, " "), bodyStr(n.FinallyBlock, indent))

	case *ast.SwitchStatement:
		label := labelStr(n.Label, indentStr)
		return fmt.Sprintf("%s%sswitch (%s)", label, indentStr, unparse(n.Expression, 0)) + bodyStr(n.Cases, indent)

	case *ast.BlockStatement:
		label := labelStr(n.Label, indentStr)
		block := strings.TrimSpace(bodyStr(n.Statements, indent))
		return label + indentStr + block

	case *ast.ExpressionStatement:
		return indentStr + unparse(n.Expression, 0) + ";"

	case *ast.EmptyStatement:
		return indentStr + ";"

	case *ast.TryResource:
		modifier := modifierStr(n.Modifiers, true)
		value := ""
		if n.Value != nil {
			value = " = " + unparse(n.Value, 0)
		}
		return modifier + unparse(n.Type, 0) + " " + n.Name + value

	case *ast.CatchClause:
		return indentStr + fmt.Sprintf("catch (%s)", unparse(n.Parameter, 0)) + bodyStr(n.Block, indent)

	case *ast.CatchClauseParameter:
		modifier := modifierStr(n.Modifiers, true)
		types := make([]string, len(n.Types))
		for i, t := range n.Types {
			types[i] = unparse(t, 0)
		}
		return fmt.Sprintf("%s%s %s", modifier, strings.Join(types, " | "), n.Name)

	case *ast.SwitchStatementCase:
		var casesStr string
		if len(n.Case) == 0 {
			casesStr = indentStr + "default:"
		} else {
			lines := make([]string, len(n.Case))
			for i, c := range n.Case {
				lines[i] = indentStr + fmt.Sprintf("case %s:", unparse(c, 0))
			}
			casesStr = strings.Join(lines, "\n")
		}
		statements := make([]string, len(n.Statements))
		for i, s := range n.Statements {
			statements[i] = unparse(s, indent+1)
		}
		return fmt.Sprintf("%s\n%s", casesStr, strings.Join(statements, "\n"))

	case *ast.ForControl:
		init := ""
		if n.Init != nil {
			init = forInitStr(n.Init)
		}
		cond := ""
		if n.Condition != nil {
			cond = unparse(n.Condition, 0)
		}
		update := exprList(n.Update)
		return fmt.Sprintf("%s %s; %s", init, cond, update)

	case *ast.EnhancedForControl:
		modifier := modifierStr(n.Modifiers, true)
		return fmt.Sprintf("%s%s %s : %s", modifier, unparse(n.VarType, 0), n.Var.Name, unparse(n.Iterable, 0))

	case *ast.NoExpression:
		return ""

	case *ast.ReferenceTypeExpression:
		return unparse(n.Type, 0)

	case *ast.BlockExpression:
		statements := make([]string, len(n.Block))
		for i, s := range n.Block {
			statements[i] = strings.TrimSpace(unparse(s, 0))
		}
		return "{" + strings.Join(statements, "; ") + "}"

	case *ast.ArraySelector:
		return fmt.Sprintf("[%s]", unparse(n.Index, 0))

	case *ast.ParenthesizedExpression:
		return primaryWrap(n.PrimaryCommon, "("+unparse(n.Expression, 0)+")")

	case *ast.Assignment:
		core := fmt.Sprintf("%s %s %s", unparse(n.Expressionl, 0), n.Type, unparse(n.Value, 0))
		return primaryWrap(n.PrimaryCommon, core)

	case *ast.TernaryExpression:
		core := fmt.Sprintf("%s ? %s : %s", unparse(n.Condition, 0), unparse(n.IfTrue, 0), unparse(n.IfFalse, 0))
		return primaryWrap(n.PrimaryCommon, core)

	case *ast.BinaryOperation:
		core := fmt.Sprintf("%s %s %s", unparse(n.Operandl, 0), n.Operator, unparse(n.Operandr, 0))
		return primaryWrap(n.PrimaryCommon, core)

	case *ast.MethodReference:
		typeArgs := typeArgumentsStr(n.TypeArguments, false, false)
		return fmt.Sprintf("%s%s::%s%s", prefixStr(n.PrefixOperators), unparse(n.Expression, 0), typeArgs, n.Method)

	case *ast.LambdaExpression:
		var params string
		if n.Parameter != "" {
			params = n.Parameter
		} else {
			parts := make([]string, len(n.Parameters))
			for i, p := range n.Parameters {
				parts[i] = unparse(p, 0)
			}
			params = "(" + strings.Join(parts, ", ") + ")"
		}
		return fmt.Sprintf("%s -> %s", params, unparse(n.Body, 0))

	case *ast.Identifier:
		return n.ID

	case *ast.Literal:
		return fmt.Sprintf("%s%s%s%s", prefixStr(n.PrefixOperators), n.Value, selectorStr(n.Selectors), postfixStr(n.PostfixOperators))

	case *ast.This:
		return fmt.Sprintf("%s%sthis%s%s", prefixStr(n.PrefixOperators), qualifierStr(n.Qualifier), selectorStr(n.Selectors), postfixStr(n.PostfixOperators))

	case *ast.Cast:
		core := fmt.Sprintf("(%s) %s", unparse(n.Type, 0), unparse(n.Expression, 0))
		prefix := prefixStr(n.PrefixOperators)
		selector := selectorStr(n.Selectors)
		if prefix != "" || selector != "" {
			return fmt.Sprintf("%s(%s)%s", prefix, core, selector)
		}
		return core

	case *ast.FieldReference:
		return n.Field

	case *ast.MemberReference:
		core := n.Member
		if n.Qualifier != "" {
			core = n.Qualifier + "." + n.Member
		}
		return fmt.Sprintf("%s%s%s%s", prefixStr(n.PrefixOperators), core, postfixStr(n.PostfixOperators), selectorStr(n.Selectors))

	case *ast.ExplicitConstructorInvocation:
		return fmt.Sprintf("this(%s)", exprList(n.Arguments))

	case *ast.SuperConstructorInvocation:
		return fmt.Sprintf("%ssuper(%s)", qualifierStr(n.Qualifier), exprList(n.Arguments))

	case *ast.MethodInvocation:
		typeArgs := ""
		if len(n.TypeArguments) > 0 {
			parts := make([]string, len(n.TypeArguments))
			for i, t := range n.TypeArguments {
				parts[i] = unparse(&t, 0)
			}
			typeArgs = "<" + strings.Join(parts, ", ") + ">"
		}
		name := qualifierStr(n.Qualifier) + typeArgs + n.Member
		return fmt.Sprintf("%s%s(%s)%s%s", prefixStr(n.PrefixOperators), name, exprList(n.Arguments), selectorStr(n.Selectors), postfixStr(n.PostfixOperators))

	case *ast.SuperMethodInvocation:
		return fmt.Sprintf("%ssuper.%s(%s)%s", prefixStr(n.PrefixOperators), n.Member, exprList(n.Arguments), selectorStr(n.Selectors))

	case *ast.SuperMemberReference:
		return fmt.Sprintf("super.%s", n.Member)

	case *ast.ClassReference:
		typeStr := unparse(n.Type, 0)
		return fmt.Sprintf("%s%s%s.class%s", prefixStr(n.PrefixOperators), qualifierStr(n.Qualifier), typeStr, selectorStr(n.Selectors))

	case *ast.VoidClassReference:
		return fmt.Sprintf("%s%svoid.class%s", prefixStr(n.PrefixOperators), qualifierStr(n.Qualifier), selectorStr(n.Selectors))

	case *ast.ArrayCreator:
		selector := selectorStr(n.Selectors)
		var dim strings.Builder
		for _, d := range n.Dimensions {
			if d != nil {
				fmt.Fprintf(&dim, "[%s]", unparse(d, 0))
			} else {
				dim.WriteString("[]")
			}
		}
		init := ""
		if n.Initializer != nil {
			init = unparse(n.Initializer, 0)
		}
		if selector == "" {
			return fmt.Sprintf("new %s%s%s", unparse(n.Type, 0), dim.String(), init)
		}
		return fmt.Sprintf("(new %s%s%s)%s", unparse(n.Type, 0), dim.String(), init, selector)

	case *ast.ClassCreator:
		prefix := prefixStr(n.PrefixOperators)
		selector := selectorStr(n.Selectors)
		return fmt.Sprintf("%snew %s(%s)%s%s", prefix, unparse(n.Type, 0), exprList(n.Arguments), selector, bodyStr(n.Body, indent))

	case *ast.InnerClassCreator:
		return fmt.Sprintf("%snew %s(%s)%s", qualifierStr(n.Qualifier), unparse(n.Type, 0), exprList(n.Arguments), bodyStr(n.Body, indent))

	case *ast.EnumConstantDeclaration:
		args := ""
		if len(n.Arguments) > 0 {
			args = "(" + exprList(n.Arguments) + ")"
		}
		return annotationStr(n.Annotations, indentStr) + n.Name + args + bodyStr(n.Body, indent)

	case *ast.AnnotationMethod:
		def := ""
		if n.Default != nil {
			def = " default " + unparse(n.Default, 0)
		}
		returnType := unparse(n.ReturnType, 0) + strings.Repeat("[]", n.Dimensions)
		return fmt.Sprintf("%s%s%s %s()%s;", annotationStr(n.Annotations, indentStr), indentStr+modifierStr(n.Modifiers, true), returnType, n.Name, def)

	default:
		return fmt.Sprintf("/* unsupported node %T */", node)
	}
}

// typeParametersStr renders a declaration-site "<T extends A & B, U>"
// clause, bounds included, with the same optional surrounding spaces as
// typeArgumentsStr.
func typeParametersStr(params []ast.TypeParameter, leadingSpace, trailingSpace bool) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = unparse(&p, 0)
	}
	s := "<" + strings.Join(parts, ", ") + ">"
	if leadingSpace {
		s = " " + s
	}
	if trailingSpace {
		s += " "
	}
	return s
}

// primaryWrap parenthesizes and appends the prefix/selector decorations
// original_source attaches to compound Primary expressions (assignments,
// ternaries, binary operations) whenever one is present — original_source's
// unparse treats the "bare" and "decorated" forms as two different template
// strings for the same node kinds.
func primaryWrap(p ast.PrimaryCommon, core string) string {
	prefix := prefixStr(p.PrefixOperators)
	selector := selectorStr(p.Selectors)
	if prefix == "" && selector == "" {
		return core
	}
	return fmt.Sprintf("%s(%s)%s", prefix, core, selector)
}

func forInitStr(init []ast.Node) string {
	if len(init) == 1 {
		if decl, ok := init[0].(*ast.LocalVariableDeclarationStatement); ok {
			return strings.TrimRight(unparse(decl, 0), "\n")
		}
	}
	parts := make([]string, len(init))
	for i, e := range init {
		parts[i] = unparse(e.(ast.Expr), 0)
	}
	return strings.Join(parts, ", ") + ";"
}
