package ast

import "github.com/orizon-lang/j2o/internal/binding"

// NewType builds a type node for a resolved type, so synthesized code can
// carry the same type information as parsed code. Arrays become nested
// ArrayType nodes and declared types with arguments become
// ParameterizedType nodes.
func NewType(t binding.Type) Type {
	switch tt := t.(type) {
	case nil:
		return nil
	case *binding.Primitive:
		n := NewPrimitiveType()
		n.SetTypeMirror(tt)
		return n
	case *binding.Array:
		n := NewArrayType().SetComponentType(NewType(tt.Component()))
		n.SetTypeMirror(tt)
		return n
	case *binding.Declared:
		simple := NewSimpleType().SetName(typeName(tt.Element().Name(), tt.Element(), tt.Element().DeclaredType()))
		simple.SetTypeMirror(tt.Element().DeclaredType())
		if len(tt.TypeArguments()) == 0 {
			return simple
		}
		n := NewParameterizedType().SetType(simple)
		for _, arg := range tt.TypeArguments() {
			n.TypeArguments().Add(NewType(arg))
		}
		n.SetTypeMirror(tt)
		return n
	case *binding.Compound:
		var parts *ChildList[Type]
		var n Type
		if tt.Kind() == binding.KindUnion {
			u := NewUnionType()
			parts, n = u.Types(), u
		} else {
			i := NewIntersectionType()
			parts, n = i.Types(), i
		}
		for _, p := range tt.Parts() {
			parts.Add(NewType(p))
		}
		n.SetTypeMirror(tt)
		return n
	case *binding.TypeVar:
		n := NewSimpleType().SetName(typeName(tt.Name(), nil, tt))
		n.SetTypeMirror(tt)
		return n
	default:
		n := NewSimpleType().SetName(typeName(tt.String(), nil, tt))
		n.SetTypeMirror(tt)
		return n
	}
}

func typeName(id string, e binding.Element, t binding.Type) *SimpleName {
	name := NewSimpleName(id)
	if e != nil {
		name.Rebind(e)
	}
	name.SetTypeMirror(t)
	return name
}

// TypeCache memoizes NewType per resolved type. The cached nodes are never
// attached; Get hands out copies.
type TypeCache struct {
	protos map[binding.Type]Type
}

// NewTypeCache returns an empty cache.
func NewTypeCache() *TypeCache {
	return &TypeCache{protos: make(map[binding.Type]Type)}
}

// Get returns a fresh type node for t.
func (c *TypeCache) Get(t binding.Type) Type {
	if t == nil {
		return nil
	}
	proto, ok := c.protos[t]
	if !ok {
		proto = NewType(t)
		c.protos[t] = proto
	}
	return CopyOf(proto)
}

// Len returns the number of cached types.
func (c *TypeCache) Len() int { return len(c.protos) }
