package frontend

import "github.com/orizon-lang/j2o/internal/binding"

// MapOracle is an Oracle backed by maps keyed on node identity. Front ends
// fill one while resolving; tests fill one by hand. A nil *MapOracle answers
// nil for everything.
type MapOracle struct {
	types     map[Node]binding.Type
	elements  map[Node]binding.Element
	constants map[Node]any
}

// NewMapOracle returns an empty oracle.
func NewMapOracle() *MapOracle {
	return &MapOracle{
		types:     make(map[Node]binding.Type),
		elements:  make(map[Node]binding.Element),
		constants: make(map[Node]any),
	}
}

func (o *MapOracle) SetType(n Node, t binding.Type) {
	if t != nil {
		o.types[n] = t
	}
}

func (o *MapOracle) SetElement(n Node, e binding.Element) {
	if e != nil {
		o.elements[n] = e
	}
}

func (o *MapOracle) SetConstant(n Node, c any) {
	if c != nil {
		o.constants[n] = c
	}
}

func (o *MapOracle) TypeOf(n Node) binding.Type {
	if o == nil {
		return nil
	}
	return o.types[n]
}

func (o *MapOracle) ElementOf(n Node) binding.Element {
	if o == nil {
		return nil
	}
	return o.elements[n]
}

func (o *MapOracle) ConstantOf(n Node) any {
	if o == nil {
		return nil
	}
	return o.constants[n]
}

// Len returns the number of nodes with at least one recorded fact.
func (o *MapOracle) Len() int {
	seen := make(map[Node]struct{}, len(o.types))
	for n := range o.types {
		seen[n] = struct{}{}
	}
	for n := range o.elements {
		seen[n] = struct{}{}
	}
	for n := range o.constants {
		seen[n] = struct{}{}
	}
	return len(seen)
}
