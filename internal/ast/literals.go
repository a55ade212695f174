package ast

// BooleanLiteral is a boolean literal.
type BooleanLiteral struct {
	expressionBase
	value bool
}

// NewBooleanLiteral returns a new BooleanLiteral.
func NewBooleanLiteral(value bool) *BooleanLiteral {
	n := &BooleanLiteral{value: value}
	n.pos = unknownPos
	return n
}

func (n *BooleanLiteral) Kind() Kind       { return KindBooleanLiteral }
func (n *BooleanLiteral) Accept(v Visitor) { accept(n, v) }
func (n *BooleanLiteral) slots() []slot    { return nil }

func (n *BooleanLiteral) BooleanValue() bool { return n.value }

func (n *BooleanLiteral) acceptInner(v Visitor) {
	v.VisitBooleanLiteral(n)
	v.EndVisitBooleanLiteral(n)
}

func (n *BooleanLiteral) Copy() Node {
	c := NewBooleanLiteral(n.value)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

func (n *BooleanLiteral) ConstantValue() any { return n.value }

// CharacterLiteral is a character literal.
type CharacterLiteral struct {
	expressionBase
	value rune
}

// NewCharacterLiteral returns a new CharacterLiteral.
func NewCharacterLiteral(value rune) *CharacterLiteral {
	n := &CharacterLiteral{value: value}
	n.pos = unknownPos
	return n
}

func (n *CharacterLiteral) Kind() Kind       { return KindCharacterLiteral }
func (n *CharacterLiteral) Accept(v Visitor) { accept(n, v) }
func (n *CharacterLiteral) slots() []slot    { return nil }

func (n *CharacterLiteral) CharValue() rune { return n.value }

func (n *CharacterLiteral) acceptInner(v Visitor) {
	v.VisitCharacterLiteral(n)
	v.EndVisitCharacterLiteral(n)
}

func (n *CharacterLiteral) Copy() Node {
	c := NewCharacterLiteral(n.value)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

func (n *CharacterLiteral) ConstantValue() any { return n.value }

// CStringLiteral is a target-language C string, emitted without boxing.
type CStringLiteral struct {
	expressionBase
	literalValue string
}

// NewCStringLiteral returns a new CStringLiteral.
func NewCStringLiteral(literalValue string) *CStringLiteral {
	n := &CStringLiteral{literalValue: literalValue}
	n.pos = unknownPos
	return n
}

func (n *CStringLiteral) Kind() Kind       { return KindCStringLiteral }
func (n *CStringLiteral) Accept(v Visitor) { accept(n, v) }
func (n *CStringLiteral) slots() []slot    { return nil }

func (n *CStringLiteral) LiteralValue() string { return n.literalValue }

func (n *CStringLiteral) acceptInner(v Visitor) {
	v.VisitCStringLiteral(n)
	v.EndVisitCStringLiteral(n)
}

func (n *CStringLiteral) Copy() Node {
	c := NewCStringLiteral(n.literalValue)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// NullLiteral is a null literal.
type NullLiteral struct {
	expressionBase
}

// NewNullLiteral returns a new NullLiteral.
func NewNullLiteral() *NullLiteral {
	n := &NullLiteral{}
	n.pos = unknownPos
	return n
}

func (n *NullLiteral) Kind() Kind       { return KindNullLiteral }
func (n *NullLiteral) Accept(v Visitor) { accept(n, v) }
func (n *NullLiteral) slots() []slot    { return nil }

func (n *NullLiteral) acceptInner(v Visitor) {
	v.VisitNullLiteral(n)
	v.EndVisitNullLiteral(n)
}

func (n *NullLiteral) Copy() Node {
	c := NewNullLiteral()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// NumberLiteral keeps the source token for printing and the decoded value
// (int32, int64, float32 or float64) for folding.
type NumberLiteral struct {
	expressionBase
	token string
	value any
}

// NewNumberLiteral returns a new NumberLiteral.
func NewNumberLiteral(token string, value any) *NumberLiteral {
	n := &NumberLiteral{token: token, value: value}
	n.pos = unknownPos
	return n
}

func (n *NumberLiteral) Kind() Kind       { return KindNumberLiteral }
func (n *NumberLiteral) Accept(v Visitor) { accept(n, v) }
func (n *NumberLiteral) slots() []slot    { return nil }

func (n *NumberLiteral) Token() string { return n.token }
func (n *NumberLiteral) Value() any    { return n.value }

func (n *NumberLiteral) acceptInner(v Visitor) {
	v.VisitNumberLiteral(n)
	v.EndVisitNumberLiteral(n)
}

func (n *NumberLiteral) Copy() Node {
	c := NewNumberLiteral(n.token, n.value)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

func (n *NumberLiteral) ConstantValue() any { return n.value }

// StringLiteral is a string literal.
type StringLiteral struct {
	expressionBase
	literalValue string
}

// NewStringLiteral returns a new StringLiteral.
func NewStringLiteral(literalValue string) *StringLiteral {
	n := &StringLiteral{literalValue: literalValue}
	n.pos = unknownPos
	return n
}

func (n *StringLiteral) Kind() Kind       { return KindStringLiteral }
func (n *StringLiteral) Accept(v Visitor) { accept(n, v) }
func (n *StringLiteral) slots() []slot    { return nil }

func (n *StringLiteral) LiteralValue() string { return n.literalValue }

func (n *StringLiteral) acceptInner(v Visitor) {
	v.VisitStringLiteral(n)
	v.EndVisitStringLiteral(n)
}

func (n *StringLiteral) Copy() Node {
	c := NewStringLiteral(n.literalValue)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

func (n *StringLiteral) ConstantValue() any { return n.literalValue }
