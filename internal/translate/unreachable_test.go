package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/ast"
)

const unreachable = `class T {
    int early(int x) {
        return x;
        x++;
        x--;
    }

    int loop(int[] xs) {
        int n = 0;
        for (int x : xs) {
            if (x < 0) {
                continue;
            }
            n++;
            break;
            n--;
        }
        return n;
    }

    int constant() {
        if (true) {
            return 1;
        } else {
            return 2;
        }
    }

    int dead(int x) {
        if (false) x++;
        if (1 > 2) x--;
        while (x > 0) if (false) x--;
        return x;
    }

    int terminal() {
        if (true) return 3;
        return 4;
    }
}
`

func statementKinds(stmts *ast.ChildList[ast.Statement]) []string {
	var kinds []string
	for _, s := range stmts.Slice() {
		kinds = append(kinds, s.Kind().String())
	}
	return kinds
}

func TestUnreachableCodeRemover(t *testing.T) {
	cu := parseUnit(t, unreachable)
	require.NoError(t, NewUnreachableCodeRemover().Run(cu))

	early := method(t, cu, "early").Body().Statements()
	assert.Equal(t, []string{"ReturnStatement"}, statementKinds(early))

	loop := method(t, cu, "loop").Body().Statements()
	require.Equal(t, 3, loop.Len())
	body := loop.Get(1).(*ast.EnhancedForStatement).Body().(*ast.Block)
	assert.Equal(t, []string{"IfStatement", "ExpressionStatement", "BreakStatement"}, statementKinds(body.Statements()))

	constant := method(t, cu, "constant").Body().Statements()
	require.Equal(t, 1, constant.Len())
	taken := constant.Get(0).(*ast.Block)
	ret := taken.Statements().Get(0).(*ast.ReturnStatement)
	assert.Equal(t, int32(1), ret.Expression().ConstantValue())
	assert.Same(t, method(t, cu, "constant").Body(), taken.Parent())

	dead := method(t, cu, "dead").Body().Statements()
	assert.Equal(t, []string{"IfStatement", "WhileStatement", "ReturnStatement"}, statementKinds(dead))
	assert.IsType(t, &ast.EmptyStatement{}, dead.Get(1).(*ast.WhileStatement).Body())

	terminal := method(t, cu, "terminal").Body().Statements()
	require.Equal(t, 1, terminal.Len())
	assert.Equal(t, int32(3), terminal.Get(0).(*ast.ReturnStatement).Expression().ConstantValue())

	require.NoError(t, ast.Validate(cu))
}

func TestUnreachableCodeRemover_AfterFolding(t *testing.T) {
	cu := parseUnit(t, unreachable)
	require.NoError(t, NewConstantFolder().Run(cu))
	require.NoError(t, NewUnreachableCodeRemover().Run(cu))

	dead := method(t, cu, "dead").Body().Statements()
	assert.Equal(t, []string{"WhileStatement", "ReturnStatement"}, statementKinds(dead))
}
