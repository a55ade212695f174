package ast

import "github.com/orizon-lang/j2o/internal/binding"

// VariableDeclarationFragment is one declarator of a field, local variable
// or lambda parameter list.
type VariableDeclarationFragment struct {
	variableDeclarationBase
	name        ChildLink[*SimpleName]
	initializer ChildLink[Expression]
}

// NewVariableDeclarationFragment returns a new VariableDeclarationFragment.
func NewVariableDeclarationFragment() *VariableDeclarationFragment {
	n := &VariableDeclarationFragment{}
	n.pos = unknownPos
	n.name.init(n, "name", true)
	n.initializer.init(n, "initializer", false)
	return n
}

func (n *VariableDeclarationFragment) Kind() Kind       { return KindVariableDeclarationFragment }
func (n *VariableDeclarationFragment) Accept(v Visitor) { accept(n, v) }

func (n *VariableDeclarationFragment) Name() *SimpleName       { return n.name.Get() }
func (n *VariableDeclarationFragment) Initializer() Expression { return n.initializer.Get() }

func (n *VariableDeclarationFragment) SetName(name *SimpleName) *VariableDeclarationFragment {
	n.name.Set(name)
	return n
}

func (n *VariableDeclarationFragment) SetInitializer(initializer Expression) *VariableDeclarationFragment {
	n.initializer.Set(initializer)
	return n
}

func (n *VariableDeclarationFragment) slots() []slot {
	return []slot{&n.name, &n.initializer}
}

func (n *VariableDeclarationFragment) acceptInner(v Visitor) {
	if v.VisitVariableDeclarationFragment(n) {
		acceptChildren(n, v)
	}
	v.EndVisitVariableDeclarationFragment(n)
}

func (n *VariableDeclarationFragment) Copy() Node {
	c := NewVariableDeclarationFragment()
	c.element = n.element
	c.extraDimensions = n.extraDimensions
	copyNode(c, n)
	return c
}

// SingleVariableDeclaration is a typed declaration of one variable: a method
// parameter, a catch parameter or an enhanced for variable.
type SingleVariableDeclaration struct {
	variableDeclarationBase
	annotations ChildList[Annotation]
	typ         ChildLink[Type]
	name        ChildLink[*SimpleName]
	initializer ChildLink[Expression]
	modifiers   binding.Modifier
	isVarargs   bool
}

// NewSingleVariableDeclaration returns a new SingleVariableDeclaration.
func NewSingleVariableDeclaration() *SingleVariableDeclaration {
	n := &SingleVariableDeclaration{}
	n.pos = unknownPos
	n.annotations.init(n, "annotations")
	n.typ.init(n, "type", true)
	n.name.init(n, "name", true)
	n.initializer.init(n, "initializer", false)
	return n
}

func (n *SingleVariableDeclaration) Kind() Kind       { return KindSingleVariableDeclaration }
func (n *SingleVariableDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *SingleVariableDeclaration) Annotations() *ChildList[Annotation] { return &n.annotations }
func (n *SingleVariableDeclaration) Type() Type                          { return n.typ.Get() }
func (n *SingleVariableDeclaration) Name() *SimpleName                   { return n.name.Get() }
func (n *SingleVariableDeclaration) Initializer() Expression             { return n.initializer.Get() }
func (n *SingleVariableDeclaration) Modifiers() binding.Modifier         { return n.modifiers }
func (n *SingleVariableDeclaration) IsVarargs() bool                     { return n.isVarargs }

func (n *SingleVariableDeclaration) SetType(t Type) *SingleVariableDeclaration {
	n.typ.Set(t)
	return n
}

func (n *SingleVariableDeclaration) SetName(name *SimpleName) *SingleVariableDeclaration {
	n.name.Set(name)
	return n
}

func (n *SingleVariableDeclaration) SetInitializer(initializer Expression) *SingleVariableDeclaration {
	n.initializer.Set(initializer)
	return n
}

func (n *SingleVariableDeclaration) SetModifiers(modifiers binding.Modifier) *SingleVariableDeclaration {
	n.modifiers = modifiers
	return n
}

func (n *SingleVariableDeclaration) SetVarargs(isVarargs bool) *SingleVariableDeclaration {
	n.isVarargs = isVarargs
	return n
}

func (n *SingleVariableDeclaration) slots() []slot {
	return []slot{&n.annotations, &n.typ, &n.name, &n.initializer}
}

func (n *SingleVariableDeclaration) acceptInner(v Visitor) {
	if v.VisitSingleVariableDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSingleVariableDeclaration(n)
}

func (n *SingleVariableDeclaration) Copy() Node {
	c := NewSingleVariableDeclaration()
	c.element = n.element
	c.extraDimensions = n.extraDimensions
	c.modifiers = n.modifiers
	c.isVarargs = n.isVarargs
	copyNode(c, n)
	return c
}

// VariableDeclarationStatement declares local variables.
type VariableDeclarationStatement struct {
	statementBase
	annotations ChildList[Annotation]
	typ         ChildLink[Type]
	fragments   ChildList[*VariableDeclarationFragment]
	modifiers   binding.Modifier
}

// NewVariableDeclarationStatement returns a new VariableDeclarationStatement.
func NewVariableDeclarationStatement() *VariableDeclarationStatement {
	n := &VariableDeclarationStatement{}
	n.pos = unknownPos
	n.annotations.init(n, "annotations")
	n.typ.init(n, "type", true)
	n.fragments.init(n, "fragments")
	return n
}

func (n *VariableDeclarationStatement) Kind() Kind       { return KindVariableDeclarationStatement }
func (n *VariableDeclarationStatement) Accept(v Visitor) { accept(n, v) }

func (n *VariableDeclarationStatement) Annotations() *ChildList[Annotation]                 { return &n.annotations }
func (n *VariableDeclarationStatement) Type() Type                                          { return n.typ.Get() }
func (n *VariableDeclarationStatement) Fragments() *ChildList[*VariableDeclarationFragment] { return &n.fragments }
func (n *VariableDeclarationStatement) Modifiers() binding.Modifier                         { return n.modifiers }

func (n *VariableDeclarationStatement) SetType(t Type) *VariableDeclarationStatement {
	n.typ.Set(t)
	return n
}

func (n *VariableDeclarationStatement) SetModifiers(modifiers binding.Modifier) *VariableDeclarationStatement {
	n.modifiers = modifiers
	return n
}

func (n *VariableDeclarationStatement) slots() []slot {
	return []slot{&n.annotations, &n.typ, &n.fragments}
}

func (n *VariableDeclarationStatement) acceptInner(v Visitor) {
	if v.VisitVariableDeclarationStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitVariableDeclarationStatement(n)
}

func (n *VariableDeclarationStatement) Copy() Node {
	c := NewVariableDeclarationStatement()
	c.modifiers = n.modifiers
	copyNode(c, n)
	return c
}

// VariableDeclarationExpression declares variables in a for initializer or a
// try resource.
type VariableDeclarationExpression struct {
	expressionBase
	typ       ChildLink[Type]
	fragments ChildList[*VariableDeclarationFragment]
}

// NewVariableDeclarationExpression returns a new VariableDeclarationExpression.
func NewVariableDeclarationExpression() *VariableDeclarationExpression {
	n := &VariableDeclarationExpression{}
	n.pos = unknownPos
	n.typ.init(n, "type", true)
	n.fragments.init(n, "fragments")
	return n
}

func (n *VariableDeclarationExpression) Kind() Kind       { return KindVariableDeclarationExpression }
func (n *VariableDeclarationExpression) Accept(v Visitor) { accept(n, v) }

func (n *VariableDeclarationExpression) Type() Type                                          { return n.typ.Get() }
func (n *VariableDeclarationExpression) Fragments() *ChildList[*VariableDeclarationFragment] { return &n.fragments }

func (n *VariableDeclarationExpression) SetType(t Type) *VariableDeclarationExpression {
	n.typ.Set(t)
	return n
}

func (n *VariableDeclarationExpression) slots() []slot {
	return []slot{&n.typ, &n.fragments}
}

func (n *VariableDeclarationExpression) acceptInner(v Visitor) {
	if v.VisitVariableDeclarationExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitVariableDeclarationExpression(n)
}

func (n *VariableDeclarationExpression) Copy() Node {
	c := NewVariableDeclarationExpression()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}
