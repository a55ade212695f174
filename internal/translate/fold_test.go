package translate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
)

const folding = `class T {
    int arithmetic() { return 2 * 3 + 4; }
    long shifted() { return 1L << 65; }
    String concat() { return "n=" + 1 + 'x' + true; }
    boolean negated() { return !(1 < 2); }
    int divByZero() { return 1 / 0; }
    int partial(int x) { return x + 1 * 2; }
    int unary() { return -(3) + ~0; }
    double mixed() { return 1.5 * 2; }
}
`

func TestConstantFolder_Unit(t *testing.T) {
	cu := parseUnit(t, folding)
	require.NoError(t, NewConstantFolder().Run(cu))

	tests := []struct {
		method string
		want   any
	}{
		{"arithmetic", int32(10)},
		{"shifted", int64(2)},
		{"concat", "n=1xtrue"},
		{"negated", false},
		{"unary", int32(-4)},
		{"mixed", 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			e := returned(t, cu, tt.method)
			assert.Equal(t, tt.want, e.ConstantValue())
			assert.NotNil(t, e.TypeMirror())
			assert.IsType(t, &ast.ReturnStatement{}, e.Parent())
		})
	}

	div := returned(t, cu, "divByZero")
	assert.IsType(t, &ast.InfixExpression{}, div)

	partial := returned(t, cu, "partial").(*ast.InfixExpression)
	require.Equal(t, 2, partial.Operands().Len())
	assert.IsType(t, &ast.SimpleName{}, partial.Operands().Get(0))
	assert.Equal(t, int32(2), partial.Operands().Get(1).ConstantValue())

	require.NoError(t, ast.Validate(cu))
}

func TestConstantFolder_KeepsPosition(t *testing.T) {
	cu := parseUnit(t, folding)
	before := returned(t, cu, "arithmetic").Position()
	require.NoError(t, NewConstantFolder().Run(cu))
	assert.Equal(t, before, returned(t, cu, "arithmetic").Position())
}

func intConst(v int32) constant   { return constant{kind: binding.KindInt, v: v} }
func longConst(v int64) constant  { return constant{kind: binding.KindLong, v: v} }
func charConst(v rune) constant   { return constant{kind: binding.KindChar, v: v} }
func strConst(v string) constant  { return constant{kind: kindString, v: v} }
func dblConst(v float64) constant { return constant{kind: binding.KindDouble, v: v} }

func TestBinary(t *testing.T) {
	tests := []struct {
		name string
		op   ast.InfixOp
		a, b constant
		want any
		ok   bool
	}{
		{"overflow wraps", ast.InfixPlus, intConst(math.MaxInt32), intConst(1), int32(math.MinInt32), true},
		{"min div minus one", ast.InfixDivide, intConst(math.MinInt32), intConst(-1), int32(math.MinInt32), true},
		{"remainder sign", ast.InfixRemainder, intConst(-7), intConst(2), int32(-1), true},
		{"int promotes to long", ast.InfixTimes, intConst(3), longConst(4), int64(12), true},
		{"int shift masks", ast.InfixLeftShift, intConst(1), intConst(33), int32(2), true},
		{"unsigned shift", ast.InfixRightShiftUnsigned, intConst(-1), intConst(28), int32(15), true},
		{"signed shift", ast.InfixRightShiftSigned, intConst(-16), intConst(2), int32(-4), true},
		{"chars add as ints", ast.InfixPlus, charConst('a'), charConst('b'), int32(195), true},
		{"char concat", ast.InfixPlus, strConst("a"), charConst('b'), "ab", true},
		{"comparison", ast.InfixGreaterEquals, dblConst(1.5), intConst(1), true, true},
		{"double remainder", ast.InfixRemainder, dblConst(5.5), dblConst(2), 1.5, true},
		{"bitwise", ast.InfixXor, intConst(6), intConst(3), int32(5), true},
		{"division by zero", ast.InfixDivide, intConst(1), intConst(0), nil, false},
		{"remainder by zero", ast.InfixRemainder, longConst(1), longConst(0), nil, false},
		{"double concat", ast.InfixPlus, strConst("x"), dblConst(1), nil, false},
		{"string minus", ast.InfixMinus, strConst("x"), intConst(1), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := binary(tt.op, tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.v)
			}
		})
	}
}

func TestLogical(t *testing.T) {
	got, ok := binary(ast.InfixConditionalAnd, constant{binding.KindBoolean, true}, constant{binding.KindBoolean, false})
	require.True(t, ok)
	assert.Equal(t, false, got.v)

	got, ok = binary(ast.InfixXor, constant{binding.KindBoolean, true}, constant{binding.KindBoolean, false})
	require.True(t, ok)
	assert.Equal(t, true, got.v)

	_, ok = binary(ast.InfixLess, constant{binding.KindBoolean, true}, constant{binding.KindBoolean, false})
	assert.False(t, ok)
}

func TestUnary(t *testing.T) {
	got, ok := unary(ast.PrefixMinus, charConst('a'))
	require.True(t, ok)
	assert.Equal(t, int32(-97), got.v)

	got, ok = unary(ast.PrefixComplement, longConst(0))
	require.True(t, ok)
	assert.Equal(t, int64(-1), got.v)

	_, ok = unary(ast.PrefixComplement, dblConst(1))
	assert.False(t, ok)
	_, ok = unary(ast.PrefixNot, intConst(1))
	assert.False(t, ok)
	_, ok = unary(ast.PrefixIncrement, intConst(1))
	assert.False(t, ok)
}

func TestConstantFolder_LeavesNonFiniteResults(t *testing.T) {
	b := ast.NewBuilder(binding.NewUniverse())
	ret := ast.NewReturnStatement()
	div := b.Infix(ast.InfixDivide, nil, b.Double(1), b.Double(0))
	ret.SetExpression(div)
	block := b.Block(ret)

	require.NoError(t, ast.Run(&constantFolder{}, block))
	assert.Same(t, div, ret.Expression())
}
