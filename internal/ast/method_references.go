package ast

// CreationReference is T::new.
type CreationReference struct {
	methodReferenceBase
	typ ChildLink[Type]
}

// NewCreationReference returns a new CreationReference.
func NewCreationReference() *CreationReference {
	n := &CreationReference{}
	n.pos = unknownPos
	n.typ.init(n, "type", true)
	return n
}

func (n *CreationReference) Kind() Kind       { return KindCreationReference }
func (n *CreationReference) Accept(v Visitor) { accept(n, v) }

func (n *CreationReference) Type() Type { return n.typ.Get() }

func (n *CreationReference) SetType(t Type) *CreationReference {
	n.typ.Set(t)
	return n
}

func (n *CreationReference) slots() []slot {
	return []slot{&n.typ}
}

func (n *CreationReference) acceptInner(v Visitor) {
	if v.VisitCreationReference(n) {
		acceptChildren(n, v)
	}
	v.EndVisitCreationReference(n)
}

func (n *CreationReference) Copy() Node {
	c := NewCreationReference()
	c.typeMirror = n.typeMirror
	c.method = n.method
	copyNode(c, n)
	return c
}

// ExpressionMethodReference is expr::name.
type ExpressionMethodReference struct {
	methodReferenceBase
	expression ChildLink[Expression]
	name       ChildLink[*SimpleName]
}

// NewExpressionMethodReference returns a new ExpressionMethodReference.
func NewExpressionMethodReference() *ExpressionMethodReference {
	n := &ExpressionMethodReference{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	n.name.init(n, "name", true)
	return n
}

func (n *ExpressionMethodReference) Kind() Kind       { return KindExpressionMethodReference }
func (n *ExpressionMethodReference) Accept(v Visitor) { accept(n, v) }

func (n *ExpressionMethodReference) Expression() Expression { return n.expression.Get() }
func (n *ExpressionMethodReference) Name() *SimpleName      { return n.name.Get() }

func (n *ExpressionMethodReference) SetExpression(expression Expression) *ExpressionMethodReference {
	n.expression.Set(expression)
	return n
}

func (n *ExpressionMethodReference) SetName(name *SimpleName) *ExpressionMethodReference {
	n.name.Set(name)
	return n
}

func (n *ExpressionMethodReference) slots() []slot {
	return []slot{&n.expression, &n.name}
}

func (n *ExpressionMethodReference) acceptInner(v Visitor) {
	if v.VisitExpressionMethodReference(n) {
		acceptChildren(n, v)
	}
	v.EndVisitExpressionMethodReference(n)
}

func (n *ExpressionMethodReference) Copy() Node {
	c := NewExpressionMethodReference()
	c.typeMirror = n.typeMirror
	c.method = n.method
	copyNode(c, n)
	return c
}

// SuperMethodReference is [Q.]super::name.
type SuperMethodReference struct {
	methodReferenceBase
	qualifier ChildLink[Name]
	name      ChildLink[*SimpleName]
}

// NewSuperMethodReference returns a new SuperMethodReference.
func NewSuperMethodReference() *SuperMethodReference {
	n := &SuperMethodReference{}
	n.pos = unknownPos
	n.qualifier.init(n, "qualifier", false)
	n.name.init(n, "name", true)
	return n
}

func (n *SuperMethodReference) Kind() Kind       { return KindSuperMethodReference }
func (n *SuperMethodReference) Accept(v Visitor) { accept(n, v) }

func (n *SuperMethodReference) Qualifier() Name   { return n.qualifier.Get() }
func (n *SuperMethodReference) Name() *SimpleName { return n.name.Get() }

func (n *SuperMethodReference) SetQualifier(qualifier Name) *SuperMethodReference {
	n.qualifier.Set(qualifier)
	return n
}

func (n *SuperMethodReference) SetName(name *SimpleName) *SuperMethodReference {
	n.name.Set(name)
	return n
}

func (n *SuperMethodReference) slots() []slot {
	return []slot{&n.qualifier, &n.name}
}

func (n *SuperMethodReference) acceptInner(v Visitor) {
	if v.VisitSuperMethodReference(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSuperMethodReference(n)
}

func (n *SuperMethodReference) Copy() Node {
	c := NewSuperMethodReference()
	c.typeMirror = n.typeMirror
	c.method = n.method
	copyNode(c, n)
	return c
}

// TypeMethodReference is T::name.
type TypeMethodReference struct {
	methodReferenceBase
	typ           ChildLink[Type]
	typeArguments ChildList[Type]
	name          ChildLink[*SimpleName]
}

// NewTypeMethodReference returns a new TypeMethodReference.
func NewTypeMethodReference() *TypeMethodReference {
	n := &TypeMethodReference{}
	n.pos = unknownPos
	n.typ.init(n, "type", true)
	n.typeArguments.init(n, "typeArguments")
	n.name.init(n, "name", true)
	return n
}

func (n *TypeMethodReference) Kind() Kind       { return KindTypeMethodReference }
func (n *TypeMethodReference) Accept(v Visitor) { accept(n, v) }

func (n *TypeMethodReference) Type() Type                      { return n.typ.Get() }
func (n *TypeMethodReference) TypeArguments() *ChildList[Type] { return &n.typeArguments }
func (n *TypeMethodReference) Name() *SimpleName               { return n.name.Get() }

func (n *TypeMethodReference) SetType(t Type) *TypeMethodReference {
	n.typ.Set(t)
	return n
}

func (n *TypeMethodReference) SetName(name *SimpleName) *TypeMethodReference {
	n.name.Set(name)
	return n
}

func (n *TypeMethodReference) slots() []slot {
	return []slot{&n.typ, &n.typeArguments, &n.name}
}

func (n *TypeMethodReference) acceptInner(v Visitor) {
	if v.VisitTypeMethodReference(n) {
		acceptChildren(n, v)
	}
	v.EndVisitTypeMethodReference(n)
}

func (n *TypeMethodReference) Copy() Node {
	c := NewTypeMethodReference()
	c.typeMirror = n.typeMirror
	c.method = n.method
	copyNode(c, n)
	return c
}
