package ast

import (
	"slices"
	"strings"
)

// MarkerAnnotation is an annotation without arguments, such as @Override.
type MarkerAnnotation struct {
	annotationBase
	typeName ChildLink[Name]
}

// NewMarkerAnnotation returns a new MarkerAnnotation.
func NewMarkerAnnotation() *MarkerAnnotation {
	n := &MarkerAnnotation{}
	n.pos = unknownPos
	n.typeName.init(n, "typeName", true)
	return n
}

func (n *MarkerAnnotation) Kind() Kind       { return KindMarkerAnnotation }
func (n *MarkerAnnotation) Accept(v Visitor) { accept(n, v) }

func (n *MarkerAnnotation) TypeName() Name { return n.typeName.Get() }

func (n *MarkerAnnotation) SetTypeName(typeName Name) *MarkerAnnotation {
	n.typeName.Set(typeName)
	return n
}

func (n *MarkerAnnotation) slots() []slot {
	return []slot{&n.typeName}
}

func (n *MarkerAnnotation) acceptInner(v Visitor) {
	if v.VisitMarkerAnnotation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitMarkerAnnotation(n)
}

func (n *MarkerAnnotation) Copy() Node {
	c := NewMarkerAnnotation()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// SingleMemberAnnotation is an annotation with a single unnamed value.
type SingleMemberAnnotation struct {
	annotationBase
	typeName ChildLink[Name]
	value    ChildLink[Expression]
}

// NewSingleMemberAnnotation returns a new SingleMemberAnnotation.
func NewSingleMemberAnnotation() *SingleMemberAnnotation {
	n := &SingleMemberAnnotation{}
	n.pos = unknownPos
	n.typeName.init(n, "typeName", true)
	n.value.init(n, "value", true)
	return n
}

func (n *SingleMemberAnnotation) Kind() Kind       { return KindSingleMemberAnnotation }
func (n *SingleMemberAnnotation) Accept(v Visitor) { accept(n, v) }

func (n *SingleMemberAnnotation) TypeName() Name    { return n.typeName.Get() }
func (n *SingleMemberAnnotation) Value() Expression { return n.value.Get() }

func (n *SingleMemberAnnotation) SetTypeName(typeName Name) *SingleMemberAnnotation {
	n.typeName.Set(typeName)
	return n
}

func (n *SingleMemberAnnotation) SetValue(value Expression) *SingleMemberAnnotation {
	n.value.Set(value)
	return n
}

func (n *SingleMemberAnnotation) slots() []slot {
	return []slot{&n.typeName, &n.value}
}

func (n *SingleMemberAnnotation) acceptInner(v Visitor) {
	if v.VisitSingleMemberAnnotation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSingleMemberAnnotation(n)
}

func (n *SingleMemberAnnotation) Copy() Node {
	c := NewSingleMemberAnnotation()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// NormalAnnotation is an annotation with name=value pairs.
type NormalAnnotation struct {
	annotationBase
	typeName ChildLink[Name]
	values   ChildList[*MemberValuePair]
}

// NewNormalAnnotation returns a new NormalAnnotation.
func NewNormalAnnotation() *NormalAnnotation {
	n := &NormalAnnotation{}
	n.pos = unknownPos
	n.typeName.init(n, "typeName", true)
	n.values.init(n, "values")
	return n
}

func (n *NormalAnnotation) Kind() Kind       { return KindNormalAnnotation }
func (n *NormalAnnotation) Accept(v Visitor) { accept(n, v) }

func (n *NormalAnnotation) TypeName() Name                       { return n.typeName.Get() }
func (n *NormalAnnotation) Values() *ChildList[*MemberValuePair] { return &n.values }

func (n *NormalAnnotation) SetTypeName(typeName Name) *NormalAnnotation {
	n.typeName.Set(typeName)
	return n
}

func (n *NormalAnnotation) slots() []slot {
	return []slot{&n.typeName, &n.values}
}

func (n *NormalAnnotation) acceptInner(v Visitor) {
	if v.VisitNormalAnnotation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitNormalAnnotation(n)
}

func (n *NormalAnnotation) Copy() Node {
	c := NewNormalAnnotation()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// PropertyAnnotation is the translator's @Property annotation, reduced to its
// set of property attributes.
type PropertyAnnotation struct {
	annotationBase
	typeName   ChildLink[Name]
	attributes []string
}

// NewPropertyAnnotation returns a new PropertyAnnotation.
func NewPropertyAnnotation() *PropertyAnnotation {
	n := &PropertyAnnotation{}
	n.pos = unknownPos
	n.typeName.init(n, "typeName", true)
	return n
}

func (n *PropertyAnnotation) Kind() Kind       { return KindPropertyAnnotation }
func (n *PropertyAnnotation) Accept(v Visitor) { accept(n, v) }

func (n *PropertyAnnotation) TypeName() Name       { return n.typeName.Get() }
func (n *PropertyAnnotation) Attributes() []string { return n.attributes }

func (n *PropertyAnnotation) SetTypeName(typeName Name) *PropertyAnnotation {
	n.typeName.Set(typeName)
	return n
}

func (n *PropertyAnnotation) slots() []slot {
	return []slot{&n.typeName}
}

func (n *PropertyAnnotation) acceptInner(v Visitor) {
	if v.VisitPropertyAnnotation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitPropertyAnnotation(n)
}

func (n *PropertyAnnotation) Copy() Node {
	c := NewPropertyAnnotation()
	c.typeMirror = n.typeMirror
	c.attributes = slices.Clone(n.attributes)
	copyNode(c, n)
	return c
}

// AddAttribute records a property attribute once.
func (n *PropertyAnnotation) AddAttribute(attr string) *PropertyAnnotation {
	if !n.HasAttribute(attr) {
		n.attributes = append(n.attributes, attr)
	}
	return n
}

// HasAttribute reports whether attr was recorded.
func (n *PropertyAnnotation) HasAttribute(attr string) bool {
	return slices.Contains(n.attributes, attr)
}

// AttributeString renders the attributes as they appear in the annotation.
func (n *PropertyAnnotation) AttributeString() string {
	return strings.Join(n.attributes, ", ")
}

// MemberValuePair is one name=value argument of a NormalAnnotation.
type MemberValuePair struct {
	nodeBase
	name  ChildLink[*SimpleName]
	value ChildLink[Expression]
}

// NewMemberValuePair returns a new MemberValuePair.
func NewMemberValuePair() *MemberValuePair {
	n := &MemberValuePair{}
	n.pos = unknownPos
	n.name.init(n, "name", true)
	n.value.init(n, "value", true)
	return n
}

func (n *MemberValuePair) Kind() Kind       { return KindMemberValuePair }
func (n *MemberValuePair) Accept(v Visitor) { accept(n, v) }

func (n *MemberValuePair) Name() *SimpleName { return n.name.Get() }
func (n *MemberValuePair) Value() Expression { return n.value.Get() }

func (n *MemberValuePair) SetName(name *SimpleName) *MemberValuePair {
	n.name.Set(name)
	return n
}

func (n *MemberValuePair) SetValue(value Expression) *MemberValuePair {
	n.value.Set(value)
	return n
}

func (n *MemberValuePair) slots() []slot {
	return []slot{&n.name, &n.value}
}

func (n *MemberValuePair) acceptInner(v Visitor) {
	if v.VisitMemberValuePair(n) {
		acceptChildren(n, v)
	}
	v.EndVisitMemberValuePair(n)
}

func (n *MemberValuePair) Copy() Node {
	c := NewMemberValuePair()
	copyNode(c, n)
	return c
}
