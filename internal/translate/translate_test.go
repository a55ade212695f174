package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/astbridge"
	"github.com/orizon-lang/j2o/internal/frontend/javats"
)

func parseUnit(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	unit, err := javats.Parse(context.Background(), "T.java", []byte(src))
	require.NoError(t, err)
	cu, err := astbridge.ConvertCompilationUnit(nil, unit)
	require.NoError(t, err)
	return cu
}

func method(t *testing.T, cu *ast.CompilationUnit, name string) *ast.MethodDeclaration {
	t.Helper()
	for _, d := range cu.Types().Get(0).BodyDeclarations().Slice() {
		if md, ok := d.(*ast.MethodDeclaration); ok && md.Name().Identifier() == name {
			return md
		}
	}
	t.Fatalf("no method %s", name)
	return nil
}

func returned(t *testing.T, cu *ast.CompilationUnit, name string) ast.Expression {
	t.Helper()
	stmts := method(t, cu, name).Body().Statements()
	ret, ok := stmts.Get(stmts.Len() - 1).(*ast.ReturnStatement)
	require.True(t, ok, "last statement of %s is not a return", name)
	return ret.Expression()
}
