package ast

// ArrayType adds one dimension to its component type; T[][] is two nested
// ArrayType nodes.
type ArrayType struct {
	typeBase
	componentType ChildLink[Type]
}

// NewArrayType returns a new ArrayType.
func NewArrayType() *ArrayType {
	n := &ArrayType{}
	n.pos = unknownPos
	n.componentType.init(n, "componentType", true)
	return n
}

func (n *ArrayType) Kind() Kind       { return KindArrayType }
func (n *ArrayType) Accept(v Visitor) { accept(n, v) }

func (n *ArrayType) ComponentType() Type { return n.componentType.Get() }

func (n *ArrayType) SetComponentType(componentType Type) *ArrayType {
	n.componentType.Set(componentType)
	return n
}

func (n *ArrayType) slots() []slot {
	return []slot{&n.componentType}
}

func (n *ArrayType) acceptInner(v Visitor) {
	if v.VisitArrayType(n) {
		acceptChildren(n, v)
	}
	v.EndVisitArrayType(n)
}

func (n *ArrayType) Copy() Node {
	c := NewArrayType()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// IntersectionType is an intersection type.
type IntersectionType struct {
	typeBase
	types ChildList[Type]
}

// NewIntersectionType returns a new IntersectionType.
func NewIntersectionType() *IntersectionType {
	n := &IntersectionType{}
	n.pos = unknownPos
	n.types.init(n, "types")
	return n
}

func (n *IntersectionType) Kind() Kind       { return KindIntersectionType }
func (n *IntersectionType) Accept(v Visitor) { accept(n, v) }

func (n *IntersectionType) Types() *ChildList[Type] { return &n.types }

func (n *IntersectionType) slots() []slot {
	return []slot{&n.types}
}

func (n *IntersectionType) acceptInner(v Visitor) {
	if v.VisitIntersectionType(n) {
		acceptChildren(n, v)
	}
	v.EndVisitIntersectionType(n)
}

func (n *IntersectionType) Copy() Node {
	c := NewIntersectionType()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// NameQualifiedType is a type qualified by a package or type name with
// annotations on the simple name.
type NameQualifiedType struct {
	typeBase
	qualifier   ChildLink[Name]
	annotations ChildList[Annotation]
	name        ChildLink[*SimpleName]
}

// NewNameQualifiedType returns a new NameQualifiedType.
func NewNameQualifiedType() *NameQualifiedType {
	n := &NameQualifiedType{}
	n.pos = unknownPos
	n.qualifier.init(n, "qualifier", true)
	n.annotations.init(n, "annotations")
	n.name.init(n, "name", true)
	return n
}

func (n *NameQualifiedType) Kind() Kind       { return KindNameQualifiedType }
func (n *NameQualifiedType) Accept(v Visitor) { accept(n, v) }

func (n *NameQualifiedType) Qualifier() Name                     { return n.qualifier.Get() }
func (n *NameQualifiedType) Annotations() *ChildList[Annotation] { return &n.annotations }
func (n *NameQualifiedType) Name() *SimpleName                   { return n.name.Get() }

func (n *NameQualifiedType) SetQualifier(qualifier Name) *NameQualifiedType {
	n.qualifier.Set(qualifier)
	return n
}

func (n *NameQualifiedType) SetName(name *SimpleName) *NameQualifiedType {
	n.name.Set(name)
	return n
}

func (n *NameQualifiedType) slots() []slot {
	return []slot{&n.qualifier, &n.annotations, &n.name}
}

func (n *NameQualifiedType) acceptInner(v Visitor) {
	if v.VisitNameQualifiedType(n) {
		acceptChildren(n, v)
	}
	v.EndVisitNameQualifiedType(n)
}

func (n *NameQualifiedType) Copy() Node {
	c := NewNameQualifiedType()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// ParameterizedType is a parameterized type.
type ParameterizedType struct {
	typeBase
	typ           ChildLink[Type]
	typeArguments ChildList[Type]
}

// NewParameterizedType returns a new ParameterizedType.
func NewParameterizedType() *ParameterizedType {
	n := &ParameterizedType{}
	n.pos = unknownPos
	n.typ.init(n, "type", true)
	n.typeArguments.init(n, "typeArguments")
	return n
}

func (n *ParameterizedType) Kind() Kind       { return KindParameterizedType }
func (n *ParameterizedType) Accept(v Visitor) { accept(n, v) }

func (n *ParameterizedType) Type() Type                      { return n.typ.Get() }
func (n *ParameterizedType) TypeArguments() *ChildList[Type] { return &n.typeArguments }

func (n *ParameterizedType) SetType(t Type) *ParameterizedType {
	n.typ.Set(t)
	return n
}

func (n *ParameterizedType) slots() []slot {
	return []slot{&n.typ, &n.typeArguments}
}

func (n *ParameterizedType) acceptInner(v Visitor) {
	if v.VisitParameterizedType(n) {
		acceptChildren(n, v)
	}
	v.EndVisitParameterizedType(n)
}

func (n *ParameterizedType) Copy() Node {
	c := NewParameterizedType()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// PrimitiveType covers the eight primitives and void.
type PrimitiveType struct {
	typeBase
}

// NewPrimitiveType returns a new PrimitiveType.
func NewPrimitiveType() *PrimitiveType {
	n := &PrimitiveType{}
	n.pos = unknownPos
	return n
}

func (n *PrimitiveType) Kind() Kind       { return KindPrimitiveType }
func (n *PrimitiveType) Accept(v Visitor) { accept(n, v) }
func (n *PrimitiveType) slots() []slot    { return nil }

func (n *PrimitiveType) acceptInner(v Visitor) {
	v.VisitPrimitiveType(n)
	v.EndVisitPrimitiveType(n)
}

func (n *PrimitiveType) Copy() Node {
	c := NewPrimitiveType()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// QualifiedType is a qualified type.
type QualifiedType struct {
	typeBase
	qualifier ChildLink[Type]
	name      ChildLink[*SimpleName]
}

// NewQualifiedType returns a new QualifiedType.
func NewQualifiedType() *QualifiedType {
	n := &QualifiedType{}
	n.pos = unknownPos
	n.qualifier.init(n, "qualifier", true)
	n.name.init(n, "name", true)
	return n
}

func (n *QualifiedType) Kind() Kind       { return KindQualifiedType }
func (n *QualifiedType) Accept(v Visitor) { accept(n, v) }

func (n *QualifiedType) Qualifier() Type   { return n.qualifier.Get() }
func (n *QualifiedType) Name() *SimpleName { return n.name.Get() }

func (n *QualifiedType) SetQualifier(qualifier Type) *QualifiedType {
	n.qualifier.Set(qualifier)
	return n
}

func (n *QualifiedType) SetName(name *SimpleName) *QualifiedType {
	n.name.Set(name)
	return n
}

func (n *QualifiedType) slots() []slot {
	return []slot{&n.qualifier, &n.name}
}

func (n *QualifiedType) acceptInner(v Visitor) {
	if v.VisitQualifiedType(n) {
		acceptChildren(n, v)
	}
	v.EndVisitQualifiedType(n)
}

func (n *QualifiedType) Copy() Node {
	c := NewQualifiedType()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// SimpleType is a simple type.
type SimpleType struct {
	typeBase
	name ChildLink[Name]
}

// NewSimpleType returns a new SimpleType.
func NewSimpleType() *SimpleType {
	n := &SimpleType{}
	n.pos = unknownPos
	n.name.init(n, "name", true)
	return n
}

func (n *SimpleType) Kind() Kind       { return KindSimpleType }
func (n *SimpleType) Accept(v Visitor) { accept(n, v) }

func (n *SimpleType) Name() Name { return n.name.Get() }

func (n *SimpleType) SetName(name Name) *SimpleType {
	n.name.Set(name)
	return n
}

func (n *SimpleType) slots() []slot {
	return []slot{&n.name}
}

func (n *SimpleType) acceptInner(v Visitor) {
	if v.VisitSimpleType(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSimpleType(n)
}

func (n *SimpleType) Copy() Node {
	c := NewSimpleType()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// UnionType is the type of a multi-catch parameter.
type UnionType struct {
	typeBase
	types ChildList[Type]
}

// NewUnionType returns a new UnionType.
func NewUnionType() *UnionType {
	n := &UnionType{}
	n.pos = unknownPos
	n.types.init(n, "types")
	return n
}

func (n *UnionType) Kind() Kind       { return KindUnionType }
func (n *UnionType) Accept(v Visitor) { accept(n, v) }

func (n *UnionType) Types() *ChildList[Type] { return &n.types }

func (n *UnionType) slots() []slot {
	return []slot{&n.types}
}

func (n *UnionType) acceptInner(v Visitor) {
	if v.VisitUnionType(n) {
		acceptChildren(n, v)
	}
	v.EndVisitUnionType(n)
}

func (n *UnionType) Copy() Node {
	c := NewUnionType()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// Dimension is one [] of an array type or declarator with its type
// annotations.
type Dimension struct {
	nodeBase
	annotations ChildList[Annotation]
}

// NewDimension returns a new Dimension.
func NewDimension() *Dimension {
	n := &Dimension{}
	n.pos = unknownPos
	n.annotations.init(n, "annotations")
	return n
}

func (n *Dimension) Kind() Kind       { return KindDimension }
func (n *Dimension) Accept(v Visitor) { accept(n, v) }

func (n *Dimension) Annotations() *ChildList[Annotation] { return &n.annotations }

func (n *Dimension) slots() []slot {
	return []slot{&n.annotations}
}

func (n *Dimension) acceptInner(v Visitor) {
	if v.VisitDimension(n) {
		acceptChildren(n, v)
	}
	v.EndVisitDimension(n)
}

func (n *Dimension) Copy() Node {
	c := NewDimension()
	copyNode(c, n)
	return c
}
