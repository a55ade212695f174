package ast

import (
	"strconv"

	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/position"
)

// Builder creates typed, bound nodes for code synthesized by passes. Every
// node it creates carries the builder's position, which defaults to
// position.Unknown.
type Builder struct {
	u   *binding.Universe
	pos position.SourcePosition
}

// NewBuilder creates a builder resolving primitive types through u.
func NewBuilder(u *binding.Universe) *Builder {
	return &Builder{u: u, pos: position.Unknown}
}

// At returns a builder that stamps nodes with pos, typically the position of
// the node being rewritten.
func (b *Builder) At(pos position.SourcePosition) *Builder {
	return &Builder{u: b.u, pos: pos}
}

func at[T Node](b *Builder, n T) T {
	n.SetPosition(b.pos)
	return n
}

// Name returns a simple name bound to e.
func (b *Builder) Name(e binding.Element) *SimpleName {
	n := NewSimpleName(e.Name())
	n.Rebind(e)
	return at(b, n)
}

// Type returns a type node for t.
func (b *Builder) Type(t binding.Type) Type {
	n := NewType(t)
	if n != nil {
		n.SetPosition(b.pos)
	}
	return n
}

// Int returns an int literal.
func (b *Builder) Int(v int32) *NumberLiteral {
	n := NewNumberLiteral(strconv.FormatInt(int64(v), 10), v)
	n.SetTypeMirror(b.u.Primitive(binding.KindInt))
	return at(b, n)
}

// Long returns a long literal.
func (b *Builder) Long(v int64) *NumberLiteral {
	n := NewNumberLiteral(strconv.FormatInt(v, 10)+"L", v)
	n.SetTypeMirror(b.u.Primitive(binding.KindLong))
	return at(b, n)
}

// Double returns a double literal.
func (b *Builder) Double(v float64) *NumberLiteral {
	n := NewNumberLiteral(formatDouble(v), v)
	n.SetTypeMirror(b.u.Primitive(binding.KindDouble))
	return at(b, n)
}

// Float returns a float literal.
func (b *Builder) Float(v float32) *NumberLiteral {
	n := NewNumberLiteral(strconv.FormatFloat(float64(v), 'g', -1, 32)+"f", v)
	n.SetTypeMirror(b.u.Primitive(binding.KindFloat))
	return at(b, n)
}

func formatDouble(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'N' || c == 'I' {
			return s
		}
	}
	return s + ".0"
}

// Bool returns a boolean literal.
func (b *Builder) Bool(v bool) *BooleanLiteral {
	n := NewBooleanLiteral(v)
	n.SetTypeMirror(b.u.Primitive(binding.KindBoolean))
	return at(b, n)
}

// Char returns a char literal.
func (b *Builder) Char(v rune) *CharacterLiteral {
	n := NewCharacterLiteral(v)
	n.SetTypeMirror(b.u.Primitive(binding.KindChar))
	return at(b, n)
}

// Str returns a string literal.
func (b *Builder) Str(v string) *StringLiteral {
	n := NewStringLiteral(v)
	n.SetTypeMirror(b.u.StringType())
	return at(b, n)
}

// Null returns the null literal.
func (b *Builder) Null() *NullLiteral {
	n := NewNullLiteral()
	n.SetTypeMirror(b.u.Null())
	return at(b, n)
}

// Literal converts a folded constant back into a literal node. It returns
// nil for values that have no literal form.
func (b *Builder) Literal(v any) Expression {
	switch x := v.(type) {
	case bool:
		return b.Bool(x)
	case int32:
		return b.Int(x)
	case int64:
		return b.Long(x)
	case float32:
		return b.Float(x)
	case float64:
		return b.Double(x)
	case string:
		return b.Str(x)
	}
	return nil
}

// Infix joins operands with op. The result type is t.
func (b *Builder) Infix(op InfixOp, t binding.Type, operands ...Expression) *InfixExpression {
	n := NewInfixExpression(op)
	n.Operands().Add(operands...)
	n.SetTypeMirror(t)
	return at(b, n)
}

// Not negates a boolean expression.
func (b *Builder) Not(e Expression) *PrefixExpression {
	n := NewPrefixExpression(PrefixNot).SetOperand(e)
	n.SetTypeMirror(b.u.Primitive(binding.KindBoolean))
	return at(b, n)
}

// Assign returns lhs = rhs.
func (b *Builder) Assign(lhs, rhs Expression) *Assignment {
	n := NewAssignment(AssignPlain).SetLeftHandSide(lhs).SetRightHandSide(rhs)
	n.SetTypeMirror(lhs.TypeMirror())
	return at(b, n)
}

// Invoke calls m on recv, which may be nil for an unqualified call.
func (b *Builder) Invoke(recv Expression, m *binding.ExecutableElement, args ...Expression) *MethodInvocation {
	n := NewMethodInvocation().SetExpression(recv).SetName(b.Name(m))
	n.Arguments().Add(args...)
	n.RebindMethod(m)
	return at(b, n)
}

// Field returns recv.field, or the bare field name when recv is nil.
func (b *Builder) Field(recv Expression, v *binding.VariableElement) Expression {
	if recv == nil {
		return b.Name(v)
	}
	n := NewFieldAccess().SetExpression(recv).SetName(b.Name(v))
	n.SetTypeMirror(v.Type())
	return at(b, n)
}

// ExprStmt wraps e in a statement.
func (b *Builder) ExprStmt(e Expression) *ExpressionStatement {
	return at(b, NewExpressionStatement().SetExpression(e))
}

// Return returns e, which may be nil.
func (b *Builder) Return(e Expression) *ReturnStatement {
	return at(b, NewReturnStatement().SetExpression(e))
}

// Block collects statements into a block.
func (b *Builder) Block(stmts ...Statement) *Block {
	n := NewBlock()
	n.Statements().Add(stmts...)
	return at(b, n)
}

// If returns if (cond) then else els; els may be nil.
func (b *Builder) If(cond Expression, then, els Statement) *IfStatement {
	return at(b, NewIfStatement().SetExpression(cond).SetThenStatement(then).SetElseStatement(els))
}

// Local declares v with an optional initializer.
func (b *Builder) Local(v *binding.VariableElement, init Expression) *VariableDeclarationStatement {
	frag := NewVariableDeclarationFragment().SetName(b.Name(v)).SetInitializer(init)
	frag.SetVariableElement(v)
	at(b, frag)
	n := NewVariableDeclarationStatement().SetType(b.Type(v.Type()))
	n.Fragments().Add(frag)
	return at(b, n)
}
