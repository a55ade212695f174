package translate

import (
	"math"
	"strconv"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
)

// ConstantFolderName is the configuration name of the constant folder.
const ConstantFolderName = "fold-constants"

// NewConstantFolder returns a pass that replaces infix and prefix
// expressions over constant operands with the literal they evaluate to.
// Expressions whose value has no literal form, integer division by zero
// among them, are left in place.
func NewConstantFolder() Pass {
	return VisitorPass(ConstantFolderName, func() ast.Visitor { return &constantFolder{} })
}

type constantFolder struct {
	ast.TreeVisitor
	fallback *binding.Universe
}

func (f *constantFolder) universe() *binding.Universe {
	if f.Env != nil && f.Env.Universe != nil {
		return f.Env.Universe
	}
	if f.fallback == nil {
		f.fallback = binding.NewUniverse()
	}
	return f.fallback
}

// replace swaps n for the literal form of v, if there is one.
func (f *constantFolder) replace(n ast.Expression, v any) {
	if x, ok := v.(float64); ok && (math.IsNaN(x) || math.IsInf(x, 0)) {
		return
	}
	if x, ok := v.(float32); ok && (math.IsNaN(float64(x)) || math.IsInf(float64(x), 0)) {
		return
	}
	lit := ast.NewBuilder(f.universe()).At(n.Position()).Literal(v)
	if lit == nil || n.Parent() == nil {
		return
	}
	n.ReplaceWith(lit)
}

func (f *constantFolder) EndVisitInfixExpression(n *ast.InfixExpression) {
	operands := n.Operands()
	if operands.Len() < 2 {
		return
	}
	acc, ok := constantOf(operands.Get(0))
	if !ok {
		return
	}
	for i := 1; i < operands.Len(); i++ {
		next, ok := constantOf(operands.Get(i))
		if !ok {
			return
		}
		if acc, ok = binary(n.Operator(), acc, next); !ok {
			return
		}
	}
	f.replace(n, acc.v)
}

func (f *constantFolder) EndVisitPrefixExpression(n *ast.PrefixExpression) {
	c, ok := constantOf(n.Operand())
	if !ok {
		return
	}
	if r, ok := unary(n.Operator(), c); ok {
		f.replace(n, r.v)
	}
}

func (f *constantFolder) EndVisitParenthesizedExpression(n *ast.ParenthesizedExpression) {
	inner := n.Expression()
	if !isLiteral(inner) || n.Parent() == nil {
		return
	}
	inner.Remove()
	n.ReplaceWith(inner)
}

func isLiteral(e ast.Expression) bool {
	switch e.(type) {
	case *ast.NumberLiteral, *ast.BooleanLiteral, *ast.CharacterLiteral, *ast.StringLiteral:
		return true
	}
	return false
}

// kindString marks a String constant.
const kindString = binding.KindDeclared

type constant struct {
	kind binding.TypeKind
	v    any
}

// constantOf classifies the constant value of e. char constants are runes
// and only the static type tells them apart from int.
func constantOf(e ast.Expression) (constant, bool) {
	if e == nil {
		return constant{}, false
	}
	v := e.ConstantValue()
	var k binding.TypeKind
	switch v.(type) {
	case bool:
		k = binding.KindBoolean
	case int32:
		k = binding.KindInt
		if t := e.TypeMirror(); t != nil && t.Kind().IsIntegral() && t.Kind() != binding.KindLong {
			k = t.Kind()
		}
		if _, ok := e.(*ast.CharacterLiteral); ok {
			k = binding.KindChar
		}
	case int64:
		k = binding.KindLong
	case float32:
		k = binding.KindFloat
	case float64:
		k = binding.KindDouble
	case string:
		k = kindString
	default:
		return constant{}, false
	}
	return constant{kind: k, v: v}, true
}

// promote applies unary numeric promotion.
func promote(k binding.TypeKind) binding.TypeKind {
	switch k {
	case binding.KindByte, binding.KindShort, binding.KindChar:
		return binding.KindInt
	}
	return k
}

func promoteBoth(a, b binding.TypeKind) binding.TypeKind {
	switch {
	case a == binding.KindDouble || b == binding.KindDouble:
		return binding.KindDouble
	case a == binding.KindFloat || b == binding.KindFloat:
		return binding.KindFloat
	case a == binding.KindLong || b == binding.KindLong:
		return binding.KindLong
	}
	return binding.KindInt
}

func asInt64(c constant) int64 {
	switch x := c.v.(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	}
	return 0
}

func asFloat64(c constant) float64 {
	switch x := c.v.(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

func asFloat32(c constant) float32 {
	switch x := c.v.(type) {
	case int32:
		return float32(x)
	case int64:
		return float32(x)
	case float32:
		return x
	case float64:
		return float32(x)
	}
	return 0
}

// text renders c the way string concatenation does. Floating point values
// are not folded since their string form differs from Go's.
func text(c constant) (string, bool) {
	switch c.kind {
	case kindString:
		return c.v.(string), true
	case binding.KindBoolean:
		return strconv.FormatBool(c.v.(bool)), true
	case binding.KindChar:
		return string(c.v.(int32)), true
	case binding.KindByte, binding.KindShort, binding.KindInt, binding.KindLong:
		return strconv.FormatInt(asInt64(c), 10), true
	}
	return "", false
}

func binary(op ast.InfixOp, a, b constant) (constant, bool) {
	if op == ast.InfixPlus && (a.kind == kindString || b.kind == kindString) {
		l, ok := text(a)
		if !ok {
			return constant{}, false
		}
		r, ok := text(b)
		if !ok {
			return constant{}, false
		}
		return constant{kind: kindString, v: l + r}, true
	}
	if a.kind == binding.KindBoolean && b.kind == binding.KindBoolean {
		return logical(op, a.v.(bool), b.v.(bool))
	}
	if !a.kind.IsNumeric() || !b.kind.IsNumeric() {
		return constant{}, false
	}
	if op.IsShift() {
		return shift(op, a, asInt64(b))
	}
	switch k := promoteBoth(promote(a.kind), promote(b.kind)); k {
	case binding.KindInt:
		return integral(op, k, int32(asInt64(a)), int32(asInt64(b)))
	case binding.KindLong:
		return integral(op, k, asInt64(a), asInt64(b))
	case binding.KindFloat:
		return floating(op, k, asFloat32(a), asFloat32(b))
	default:
		return floating(op, k, asFloat64(a), asFloat64(b))
	}
}

func logical(op ast.InfixOp, a, b bool) (constant, bool) {
	var r bool
	switch op {
	case ast.InfixConditionalAnd, ast.InfixAnd:
		r = a && b
	case ast.InfixConditionalOr, ast.InfixOr:
		r = a || b
	case ast.InfixXor, ast.InfixNotEquals:
		r = a != b
	case ast.InfixEquals:
		r = a == b
	default:
		return constant{}, false
	}
	return constant{kind: binding.KindBoolean, v: r}, true
}

func boolean(r bool) (constant, bool) {
	return constant{kind: binding.KindBoolean, v: r}, true
}

func integral[T int32 | int64](op ast.InfixOp, k binding.TypeKind, x, y T) (constant, bool) {
	var r T
	switch op {
	case ast.InfixTimes:
		r = x * y
	case ast.InfixDivide:
		if y == 0 {
			return constant{}, false
		}
		r = x / y
	case ast.InfixRemainder:
		if y == 0 {
			return constant{}, false
		}
		r = x % y
	case ast.InfixPlus:
		r = x + y
	case ast.InfixMinus:
		r = x - y
	case ast.InfixAnd:
		r = x & y
	case ast.InfixOr:
		r = x | y
	case ast.InfixXor:
		r = x ^ y
	case ast.InfixLess:
		return boolean(x < y)
	case ast.InfixGreater:
		return boolean(x > y)
	case ast.InfixLessEquals:
		return boolean(x <= y)
	case ast.InfixGreaterEquals:
		return boolean(x >= y)
	case ast.InfixEquals:
		return boolean(x == y)
	case ast.InfixNotEquals:
		return boolean(x != y)
	default:
		return constant{}, false
	}
	return constant{kind: k, v: r}, true
}

func floating[T float32 | float64](op ast.InfixOp, k binding.TypeKind, x, y T) (constant, bool) {
	var r T
	switch op {
	case ast.InfixTimes:
		r = x * y
	case ast.InfixDivide:
		r = x / y
	case ast.InfixRemainder:
		r = T(math.Mod(float64(x), float64(y)))
	case ast.InfixPlus:
		r = x + y
	case ast.InfixMinus:
		r = x - y
	case ast.InfixLess:
		return boolean(x < y)
	case ast.InfixGreater:
		return boolean(x > y)
	case ast.InfixLessEquals:
		return boolean(x <= y)
	case ast.InfixGreaterEquals:
		return boolean(x >= y)
	case ast.InfixEquals:
		return boolean(x == y)
	case ast.InfixNotEquals:
		return boolean(x != y)
	default:
		return constant{}, false
	}
	return constant{kind: k, v: r}, true
}

// shift masks the distance to the width of the promoted left operand.
func shift(op ast.InfixOp, a constant, distance int64) (constant, bool) {
	switch promote(a.kind) {
	case binding.KindInt:
		x, n := int32(asInt64(a)), uint(distance&31)
		switch op {
		case ast.InfixLeftShift:
			x <<= n
		case ast.InfixRightShiftSigned:
			x >>= n
		default:
			x = int32(uint32(x) >> n)
		}
		return constant{kind: binding.KindInt, v: x}, true
	case binding.KindLong:
		x, n := asInt64(a), uint(distance&63)
		switch op {
		case ast.InfixLeftShift:
			x <<= n
		case ast.InfixRightShiftSigned:
			x >>= n
		default:
			x = int64(uint64(x) >> n)
		}
		return constant{kind: binding.KindLong, v: x}, true
	}
	return constant{}, false
}

func unary(op ast.PrefixOp, c constant) (constant, bool) {
	if op == ast.PrefixNot {
		if c.kind != binding.KindBoolean {
			return constant{}, false
		}
		return boolean(!c.v.(bool))
	}
	if !c.kind.IsNumeric() {
		return constant{}, false
	}
	k := promote(c.kind)
	switch op {
	case ast.PrefixPlus:
		return convert(k, c), true
	case ast.PrefixMinus:
		switch k {
		case binding.KindInt:
			return constant{kind: k, v: -int32(asInt64(c))}, true
		case binding.KindLong:
			return constant{kind: k, v: -asInt64(c)}, true
		case binding.KindFloat:
			return constant{kind: k, v: -asFloat32(c)}, true
		default:
			return constant{kind: k, v: -asFloat64(c)}, true
		}
	case ast.PrefixComplement:
		switch k {
		case binding.KindInt:
			return constant{kind: k, v: ^int32(asInt64(c))}, true
		case binding.KindLong:
			return constant{kind: k, v: ^asInt64(c)}, true
		}
	}
	return constant{}, false
}

func convert(k binding.TypeKind, c constant) constant {
	switch k {
	case binding.KindInt:
		return constant{kind: k, v: int32(asInt64(c))}
	case binding.KindLong:
		return constant{kind: k, v: asInt64(c)}
	case binding.KindFloat:
		return constant{kind: k, v: asFloat32(c)}
	}
	return constant{kind: binding.KindDouble, v: asFloat64(c)}
}
