package javats

import (
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

var typeNodeKinds = map[string]bool{
	"void_type":              true,
	"integral_type":          true,
	"floating_point_type":    true,
	"boolean_type":           true,
	"type_identifier":        true,
	"scoped_type_identifier": true,
	"generic_type":           true,
	"array_type":             true,
	"annotated_type":         true,
}

func isTypeNode(n frontend.Node) bool { return typeNodeKinds[n.Kind()] }

// resolveType resolves a type node and records the result on it. A nil
// result means the type is inferred ("var") or absent.
func (r *resolver) resolveType(n frontend.Node, s *scope) binding.Type {
	if n == nil {
		return nil
	}
	t := r.typeOf(n, s)
	r.o.SetType(n, t)
	return t
}

func (r *resolver) typeOf(n frontend.Node, s *scope) binding.Type {
	switch n.Kind() {
	case "void_type", "integral_type", "floating_point_type", "boolean_type":
		if p, ok := r.u.PrimitiveByName(n.Text()); ok {
			return p
		}
		return r.u.Error(n.Text())
	case "type_identifier", "identifier":
		name := n.Text()
		if name == "var" {
			return nil
		}
		if tv := s.lookupTypeVar(name); tv != nil {
			return tv
		}
		if te := r.lookupType(name, s); te != nil {
			r.o.SetElement(n, te)
			return te.Type()
		}
		return r.u.Error(name)
	case "scoped_type_identifier", "scoped_identifier":
		if te := r.u.Lookup(dotted(n)); te != nil {
			r.o.SetElement(n, te)
			return te.Type()
		}
		parts := n.Children()
		if len(parts) == 2 {
			if outer := elementOf(r.resolveType(parts[0], s)); outer != nil {
				if mt := outer.LookupMemberType(parts[1].Text()); mt != nil {
					r.setElement(mt, n, parts[1])
					return mt.Type()
				}
			}
		}
		return r.u.Error(dotted(n))
	case "generic_type":
		var raw binding.Type
		var args []binding.Type
		for _, c := range n.Children() {
			if c.Kind() == "type_arguments" {
				for _, a := range c.Children() {
					args = append(args, r.typeArgument(a, s))
				}
				continue
			}
			raw = r.resolveType(c, s)
		}
		if te := elementOf(raw); te != nil {
			if _, isVar := raw.(*binding.TypeVar); !isVar {
				return r.u.Parameterized(te, args)
			}
		}
		return raw
	case "array_type":
		return r.arrayOf(r.resolveType(n.Field("element"), s), countDims(n.Field("dimensions")))
	case "annotated_type":
		for _, c := range n.Children() {
			if c.Kind() != "marker_annotation" && c.Kind() != "annotation" {
				return r.resolveType(c, s)
			}
		}
	}
	return nil
}

// typeArgument resolves one type argument. Wildcards become their upper
// bound, or Object when unbounded or lower-bounded.
func (r *resolver) typeArgument(n frontend.Node, s *scope) binding.Type {
	if n.Kind() != "wildcard" {
		return r.resolveType(n, s)
	}
	var bound binding.Type = r.u.ObjectType()
	for _, c := range n.Children() {
		if isTypeNode(c) {
			t := r.resolveType(c, s)
			if frontend.HasToken(n, "extends") && t != nil {
				bound = t
			}
		}
	}
	r.o.SetType(n, bound)
	return bound
}

// lookupType resolves a simple type name: types in scope, enclosing types
// and their members, single-type imports, the current package and
// java.lang, then on-demand imports.
func (r *resolver) lookupType(name string, s *scope) *binding.TypeElement {
	for cur := s; cur != nil; cur = cur.parent {
		if te, ok := cur.types[name]; ok {
			return te
		}
		if cur.typ == nil {
			continue
		}
		if cur.typ.Name() == name {
			return cur.typ
		}
		if mt := cur.typ.LookupMemberType(name); mt != nil {
			return mt
		}
	}
	if te, ok := r.imports[name]; ok {
		return te
	}
	if te := r.u.LookupSimple(r.pkg, name); te != nil {
		return te
	}
	for _, pkg := range r.onDemand {
		if te := r.u.Lookup(pkg + "." + name); te != nil {
			return te
		}
	}
	return nil
}

// arrayOf wraps t in dims array dimensions. A nil t stays nil.
func (r *resolver) arrayOf(t binding.Type, dims int) binding.Type {
	if t == nil {
		return nil
	}
	for range dims {
		t = r.u.ArrayOf(t)
	}
	return t
}
