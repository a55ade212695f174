package ast

// SimpleName is an identifier bound to the element it denotes.
type SimpleName struct {
	nameBase
	identifier string
}

// NewSimpleName returns a new SimpleName.
func NewSimpleName(identifier string) *SimpleName {
	n := &SimpleName{identifier: identifier}
	n.pos = unknownPos
	return n
}

func (n *SimpleName) Kind() Kind       { return KindSimpleName }
func (n *SimpleName) Accept(v Visitor) { accept(n, v) }
func (n *SimpleName) slots() []slot    { return nil }

func (n *SimpleName) Identifier() string { return n.identifier }

func (n *SimpleName) SetIdentifier(identifier string) *SimpleName {
	n.identifier = identifier
	return n
}

func (n *SimpleName) acceptInner(v Visitor) {
	v.VisitSimpleName(n)
	v.EndVisitSimpleName(n)
}

func (n *SimpleName) Copy() Node {
	c := NewSimpleName(n.identifier)
	c.typeMirror = n.typeMirror
	c.element = n.element
	copyNode(c, n)
	return c
}

// FullyQualifiedName returns the identifier.
func (n *SimpleName) FullyQualifiedName() string { return n.identifier }

// QualifiedName is qualifier.name, such as a package name or a static field
// reference.
type QualifiedName struct {
	nameBase
	qualifier ChildLink[Name]
	name      ChildLink[*SimpleName]
}

// NewQualifiedName returns a new QualifiedName.
func NewQualifiedName() *QualifiedName {
	n := &QualifiedName{}
	n.pos = unknownPos
	n.qualifier.init(n, "qualifier", true)
	n.name.init(n, "name", true)
	return n
}

func (n *QualifiedName) Kind() Kind       { return KindQualifiedName }
func (n *QualifiedName) Accept(v Visitor) { accept(n, v) }

func (n *QualifiedName) Qualifier() Name   { return n.qualifier.Get() }
func (n *QualifiedName) Name() *SimpleName { return n.name.Get() }

func (n *QualifiedName) SetQualifier(qualifier Name) *QualifiedName {
	n.qualifier.Set(qualifier)
	return n
}

func (n *QualifiedName) SetName(name *SimpleName) *QualifiedName {
	n.name.Set(name)
	return n
}

func (n *QualifiedName) slots() []slot {
	return []slot{&n.qualifier, &n.name}
}

func (n *QualifiedName) acceptInner(v Visitor) {
	if v.VisitQualifiedName(n) {
		acceptChildren(n, v)
	}
	v.EndVisitQualifiedName(n)
}

func (n *QualifiedName) Copy() Node {
	c := NewQualifiedName()
	c.typeMirror = n.typeMirror
	c.element = n.element
	copyNode(c, n)
	return c
}

// FullyQualifiedName returns the dotted name.
func (n *QualifiedName) FullyQualifiedName() string {
	var q, s string
	if qual := n.qualifier.Get(); qual != nil {
		q = qual.FullyQualifiedName()
	}
	if name := n.name.Get(); name != nil {
		s = name.identifier
	}
	if q == "" {
		return s
	}
	return q + "." + s
}
