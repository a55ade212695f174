// Package frontend is the input boundary of the translator. A front end
// hands over a concrete syntax tree made of Node values together with an
// Oracle answering resolution questions about those nodes; the astbridge
// package turns both into the translator tree.
package frontend

import (
	"github.com/orizon-lang/j2o/internal/binding"
)

// Node is one node of a front end's syntax tree. Kind is the grammar's
// discriminant ("method_invocation", "identifier", ...).
type Node interface {
	Kind() string
	StartByte() int
	EndByte() int
	// Line returns the 1-based line of the first byte.
	Line() int
	Text() string
	// Field returns the first child stored under a grammar field, or nil.
	Field(name string) Node
	// Fields returns every child stored under a grammar field.
	Fields(name string) []Node
	// Children returns the named children in source order.
	Children() []Node
	// Tokens returns the text of the anonymous children (keywords and
	// punctuation) in source order.
	Tokens() []string
}

// Oracle answers what the front end resolved for a node. Every method
// returns nil when nothing is known.
type Oracle interface {
	TypeOf(n Node) binding.Type
	ElementOf(n Node) binding.Element
	ConstantOf(n Node) any
}

// Unit is one parsed source file ready for conversion.
type Unit struct {
	Path   string
	Source string
	Root   Node
	// Comments holds the comments of the file in source order. They are not
	// part of the Root tree.
	Comments []Node
	Oracle   Oracle
	Universe *binding.Universe
}

// NamedChild returns the first named child of n with the given kind.
func NamedChild(n Node, kind string) Node {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// HasToken reports whether n has an anonymous child with the given text.
func HasToken(n Node, tok string) bool {
	for _, t := range n.Tokens() {
		if t == tok {
			return true
		}
	}
	return false
}
