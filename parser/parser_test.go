package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c2nes/javalang/ast"
	"github.com/c2nes/javalang/lexer"
)

func parseUnit(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(src))
	require.NoError(t, err)
	unit, err := Parse(toks, WithFile("test.java"))
	require.NoError(t, err)
	require.NotNil(t, unit)
	return unit
}

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(src))
	require.NoError(t, err)
	p := New(toks)
	expr, err := p.parseExpression()
	require.NoError(t, err)
	return expr
}

func TestParseCompilationUnitShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty class", "class Foo {}"},
		{"package and import", "package com.example;\nimport java.util.List;\nclass Foo {}"},
		{"static import wildcard", "import static java.lang.Math.*;\nclass Foo {}"},
		{"interface", "interface Foo { void bar(); }"},
		{"enum with constants and body", "enum Color { RED, GREEN, BLUE; void describe() {} }"},
		{"annotation declaration", "@interface Marker { String value() default \"x\"; }"},
		{"generic class", "class Box<T extends Comparable<T>> { T value; }"},
		{"nested class body", "class Outer { class Inner {} }"},
		{"field with initializer", "class Foo { int x = 1, y = 2; }"},
		{"constructor", "class Foo { Foo(int x) { this.x = x; } int x; }"},
		{"varargs method", "class Foo { void f(int... xs) {} }"},
		{"throws clause", "class Foo { void f() throws java.io.IOException {} }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := parseUnit(t, tt.src)
			require.NotEmpty(t, unit.Types)
		})
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"if-else", "class F { void m() { if (x) { y(); } else { z(); } } }"},
		{"while", "class F { void m() { while (x) { y(); } } }"},
		{"do-while", "class F { void m() { do { y(); } while (x); } }"},
		{"classic for", "class F { void m() { for (int i = 0, j = 1; i < j; i++, j--) {} } }"},
		{"enhanced for", "class F { void m() { for (String s : names) {} } }"},
		{"switch", "class F { void m() { switch (x) { case 1: y(); break; default: z(); } } }"},
		{"try with resources", "class F { void m() throws Exception { try (AutoCloseable c = open()) { use(c); } catch (Exception e) { } finally { done(); } } }"},
		{"labeled break", "class F { void m() { outer: for (;;) { break outer; } } }"},
		{"local class", "class F { void m() { class Local {} } }"},
		{"synchronized", "class F { void m() { synchronized (lock) { go(); } } }"},
		{"assert", "class F { void m() { assert x > 0 : \"bad\"; } }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseUnit(t, tt.src)
		})
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	expr := parseExpr(t, "a + b * c")
	bin, ok := expr.(*ast.BinaryOperation)
	require.True(t, ok, "expected top-level BinaryOperation, got %T", expr)
	require.Equal(t, "+", bin.Operator)

	_, ok = bin.Operandl.(*ast.MemberReference)
	require.True(t, ok)

	rhs, ok := bin.Operandr.(*ast.BinaryOperation)
	require.True(t, ok, "expected b*c to parse as a nested BinaryOperation")
	require.Equal(t, "*", rhs.Operator)
}

func TestParseExpressionVariants(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want ast.Expr
	}{
		{"ternary", "a ? b : c", &ast.TernaryExpression{}},
		{"assignment", "x = 5", &ast.Assignment{}},
		{"cast", "(int) x", &ast.Cast{}},
		{"lambda single param", "x -> x + 1", &ast.LambdaExpression{}},
		{"lambda param list", "(a, b) -> a + b", &ast.LambdaExpression{}},
		{"method reference", "Foo::bar", &ast.MethodReference{}},
		{"instanceof", "x instanceof String", &ast.BinaryOperation{}},
		{"class literal", "String.class", &ast.ClassReference{}},
		{"array class literal", "int[].class", &ast.ClassReference{}},
		{"array creator", "new int[10]", &ast.ArrayCreator{}},
		{"class creator", "new Foo()", &ast.ClassCreator{}},
		{"anonymous class creator", "new Runnable() { public void run() {} }", &ast.ClassCreator{}},
		{"parenthesized", "(x)", &ast.ParenthesizedExpression{}},
		{"field selector", "obj.field", &ast.MemberReference{}},
		{"method call", "obj.method()", &ast.MethodInvocation{}},
		{"array selector", "arr[0]", &ast.MemberReference{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseExpr(t, tt.src)
			require.IsType(t, tt.want, got)
		})
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	toks, err := lexer.Tokenize([]byte("class Foo { void m() { 1 + ; } }"))
	require.NoError(t, err)

	_, err = Parse(toks, WithFile("bad.java"))
	require.Error(t, err)

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, "bad.java", syntaxErr.File)
	require.Equal(t, 1, syntaxErr.At.Span.Start.Line)
	require.Equal(t, 28, syntaxErr.At.Span.Start.Column)
}

func TestTrySpeculativeRollsBackOnFailure(t *testing.T) {
	toks, err := lexer.Tokenize([]byte("x y"))
	require.NoError(t, err)
	p := New(toks)

	before := p.peek()
	_, ok := trySpeculative(p, func() (string, error) {
		p.cur.Advance()
		return "", p.errorf(p.peek(), "forced failure")
	})
	require.False(t, ok)
	require.Equal(t, before, p.peek(), "cursor must be restored to its pre-attempt position")
}

func TestGenericMethodCallTypeArguments(t *testing.T) {
	parseUnit(t, "class F { void m() { this.<String>foo(); } }")
}

func TestMultiCatch(t *testing.T) {
	unit := parseUnit(t, "class F { void m() { try { go(); } catch (java.io.IOException | RuntimeException e) { } } }")
	require.NotEmpty(t, unit.Types)
}
