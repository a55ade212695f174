// Package ast defines the translator's intermediate tree: a closed set of
// node kinds, the single-owner links and lists that connect them, and the
// visitor protocol every pass uses to read and rewrite the tree.
//
// Every node has at most one owner. Children are attached through
// ChildLink and ChildList slots, which clear the previous occupant's owner
// before attaching a new child and refuse children that are already owned.
// A node is moved by detaching it first (Remove) or by attaching a Copy.
//
// Traversal goes through Node.Accept. Lists tolerate mutation while they are
// being visited: the in-flight iteration continues over a snapshot and the
// change is visible to the next traversal.
package ast

import (
	"reflect"

	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/position"
)

// Node is implemented by every concrete node kind in this package.
type Node interface {
	// Kind returns the concrete kind discriminant.
	Kind() Kind
	// Accept traverses the subtree rooted at this node.
	Accept(v Visitor)
	// Copy returns an unowned deep copy. Binding handles are shared.
	Copy() Node
	// Parent returns the node owning this one, or nil.
	Parent() Node
	// Position returns the source range of the node.
	Position() position.SourcePosition
	SetPosition(p position.SourcePosition)
	StartPosition() int
	Length() int
	// LineNumber returns the 1-based source line, or position.NoLine.
	LineNumber() int
	// ReplaceWith puts other in this node's slot and detaches this node.
	ReplaceWith(other Node)
	// Remove detaches the node from its owner.
	Remove()

	common() *nodeBase
	acceptInner(v Visitor)
	slots() []slot
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	TypeMirror() binding.Type
	SetTypeMirror(t binding.Type)
	// ConstantValue returns the compile-time constant of the expression, or
	// nil.
	ConstantValue() any
	expressionNode()
}

// Statement is a node that can appear in a block.
type Statement interface {
	Node
	statementNode()
}

// BodyDeclaration is a member of a type body.
type BodyDeclaration interface {
	Node
	Modifiers() binding.Modifier
	SetModifiers(m binding.Modifier)
	Javadoc() *Javadoc
	Annotations() *ChildList[Annotation]
	bodyDeclarationNode()
}

// AbstractTypeDeclaration is a class, interface, enum or annotation type.
type AbstractTypeDeclaration interface {
	BodyDeclaration
	Name() *SimpleName
	BodyDeclarations() *ChildList[BodyDeclaration]
	ClassInitStatements() *ChildList[Statement]
	TypeElement() *binding.TypeElement
	SetTypeElement(e *binding.TypeElement)
	typeDeclarationNode()
}

// Type is a node that names a type.
type Type interface {
	Node
	TypeMirror() binding.Type
	SetTypeMirror(t binding.Type)
	typeNode()
}

// Name is a simple or qualified name.
type Name interface {
	Expression
	Element() binding.Element
	Rebind(e binding.Element)
	FullyQualifiedName() string
	nameNode()
}

// Annotation is a marker, single-member, normal or property annotation.
type Annotation interface {
	Expression
	TypeName() Name
	annotationNode()
}

// Comment is a line, block or documentation comment.
type Comment interface {
	Node
	commentNode()
}

// VariableDeclaration is a fragment or a single variable declaration.
type VariableDeclaration interface {
	Node
	Name() *SimpleName
	Initializer() Expression
	VariableElement() *binding.VariableElement
	SetVariableElement(e *binding.VariableElement)
	ExtraDimensions() int
	variableDeclarationNode()
}

// MethodReference is one of the four method reference forms.
type MethodReference interface {
	Expression
	ExecutableElement() *binding.ExecutableElement
	SetExecutableElement(m *binding.ExecutableElement)
	methodReferenceNode()
}

// unknownPos is the position of a node until a converter or pass sets one.
var unknownPos = position.Unknown

type nodeBase struct {
	owner owner
	pos   position.SourcePosition
}

func (b *nodeBase) common() *nodeBase                     { return b }
func (b *nodeBase) Position() position.SourcePosition     { return b.pos }
func (b *nodeBase) SetPosition(p position.SourcePosition) { b.pos = p }
func (b *nodeBase) StartPosition() int                    { return b.pos.Start }
func (b *nodeBase) Length() int                           { return b.pos.Length }
func (b *nodeBase) LineNumber() int                       { return b.pos.Line }

// Parent returns the node that owns this one, or nil for a root or a
// detached node.
func (b *nodeBase) Parent() Node {
	if b.owner == nil {
		return nil
	}
	return b.owner.parent()
}

// ReplaceWith moves other into the slot currently holding this node. The
// node must be owned; other must not be. Replacing with nil removes the node.
func (b *nodeBase) ReplaceWith(other Node) {
	if b.owner == nil {
		panic(&InvariantError{Err: ErrUnparentedNode, Op: "replace"})
	}
	if isNil(other) {
		b.owner.detach()
		return
	}
	b.owner.replace(other)
}

// Remove detaches the node. List elements are removed from their list;
// removing an unowned node does nothing.
func (b *nodeBase) Remove() {
	if b.owner != nil {
		b.owner.detach()
	}
}

type expressionBase struct {
	nodeBase
	typeMirror binding.Type
}

func (b *expressionBase) TypeMirror() binding.Type     { return b.typeMirror }
func (b *expressionBase) SetTypeMirror(t binding.Type) { b.typeMirror = t }
func (b *expressionBase) ConstantValue() any           { return nil }
func (b *expressionBase) expressionNode()              {}

type statementBase struct {
	nodeBase
}

func (b *statementBase) statementNode() {}

type bodyDeclarationBase struct {
	nodeBase
	modifiers binding.Modifier
}

func (b *bodyDeclarationBase) Modifiers() binding.Modifier     { return b.modifiers }
func (b *bodyDeclarationBase) SetModifiers(m binding.Modifier) { b.modifiers = m }
func (b *bodyDeclarationBase) bodyDeclarationNode()            {}

type typeDeclarationBase struct {
	bodyDeclarationBase
	element *binding.TypeElement
}

func (b *typeDeclarationBase) TypeElement() *binding.TypeElement     { return b.element }
func (b *typeDeclarationBase) SetTypeElement(e *binding.TypeElement) { b.element = e }
func (b *typeDeclarationBase) typeDeclarationNode()                  {}

type typeBase struct {
	nodeBase
	typeMirror binding.Type
}

func (b *typeBase) TypeMirror() binding.Type     { return b.typeMirror }
func (b *typeBase) SetTypeMirror(t binding.Type) { b.typeMirror = t }
func (b *typeBase) typeNode()                    {}

type annotationBase struct {
	expressionBase
}

func (b *annotationBase) annotationNode() {}

type commentBase struct {
	nodeBase
}

func (b *commentBase) commentNode() {}

type nameBase struct {
	expressionBase
	element binding.Element
}

// Element returns the declaration the name refers to, or nil.
func (b *nameBase) Element() binding.Element { return b.element }

// Rebind points the name at a different element and adopts its type. A
// name bound to a method keeps its current type.
func (b *nameBase) Rebind(e binding.Element) {
	b.element = e
	if e == nil {
		return
	}
	if _, ok := e.(*binding.ExecutableElement); ok {
		return
	}
	if t := e.Type(); t != nil {
		b.typeMirror = t
	}
}

// ConstantValue returns the constant of a constant variable the name refers
// to.
func (b *nameBase) ConstantValue() any {
	if v, ok := b.element.(*binding.VariableElement); ok {
		return v.ConstantValue()
	}
	return nil
}

func (b *nameBase) nameNode() {}

type variableDeclarationBase struct {
	nodeBase
	element         *binding.VariableElement
	extraDimensions int
}

func (b *variableDeclarationBase) VariableElement() *binding.VariableElement { return b.element }
func (b *variableDeclarationBase) ExtraDimensions() int                      { return b.extraDimensions }
func (b *variableDeclarationBase) SetExtraDimensions(d int)                  { b.extraDimensions = d }
func (b *variableDeclarationBase) variableDeclarationNode()                  {}

func (b *variableDeclarationBase) SetVariableElement(e *binding.VariableElement) {
	b.element = e
}

type methodReferenceBase struct {
	expressionBase
	method *binding.ExecutableElement
}

func (b *methodReferenceBase) ExecutableElement() *binding.ExecutableElement { return b.method }
func (b *methodReferenceBase) methodReferenceNode()                          {}

func (b *methodReferenceBase) SetExecutableElement(m *binding.ExecutableElement) {
	b.method = m
}

// CopyOf returns a deep copy of n with its static type preserved. A nil n
// yields nil.
func CopyOf[T Node](n T) T {
	if isNil(n) {
		var zero T
		return zero
	}
	return n.Copy().(T)
}

// EnclosingUnit returns the compilation unit containing n, or nil.
func EnclosingUnit(n Node) *CompilationUnit {
	u, _ := FindAncestor[*CompilationUnit](n)
	return u
}

// FindAncestor returns the nearest node of type T starting at n itself.
func FindAncestor[T Node](n Node) (T, bool) {
	for cur := n; !isNil(cur); cur = cur.Parent() {
		if t, ok := cur.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Children returns the current children of n in traversal order.
func Children(n Node) []Node {
	var out []Node
	for _, s := range n.slots() {
		out = append(out, s.nodes()...)
	}
	return out
}

func copyNode(dst, src Node) {
	dst.common().pos = src.common().pos
	ds, ss := dst.slots(), src.slots()
	for i := range ds {
		ds[i].copyFrom(ss[i])
	}
}

func acceptChildren(n Node, v Visitor) {
	for _, s := range n.slots() {
		s.accept(v)
	}
}

func variableOf(name *SimpleName) *binding.VariableElement {
	if name == nil {
		return nil
	}
	v, _ := name.element.(*binding.VariableElement)
	return v
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
