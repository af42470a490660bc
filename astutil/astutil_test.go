package astutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c2nes/javalang/ast"
	"github.com/c2nes/javalang/token"
)

func TestEqualIgnoresPositions(t *testing.T) {
	a := &ast.Identifier{
		PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: token.Span{
			Start: token.Position{Line: 1, Column: 1},
			End:   token.Position{Line: 1, Column: 2},
		}}},
		ID: "x",
	}
	b := &ast.Identifier{
		PrimaryCommon: ast.PrimaryCommon{Base: ast.Base{NodeSpan: token.Span{
			Start: token.Position{Line: 9, Column: 9},
			End:   token.Position{Line: 9, Column: 10},
		}}},
		ID: "x",
	}

	require.True(t, Equal(a, b), "trees differing only in position must compare equal")
}

func TestEqualDetectsStructuralDifference(t *testing.T) {
	a := &ast.Identifier{ID: "x"}
	b := &ast.Identifier{ID: "y"}

	require.False(t, Equal(a, b))
	require.NotEmpty(t, Diff(a, b))
}

func TestEqualTreatsNilAndEmptySliceAlike(t *testing.T) {
	a := &ast.MethodInvocation{Member: "f"}
	b := &ast.MethodInvocation{Member: "f", InvocationCommon: ast.InvocationCommon{Arguments: []ast.Expr{}}}

	require.True(t, Equal(a, b), "nil and empty argument lists should be equivalent")
}
