package javats

import "github.com/orizon-lang/j2o/internal/binding"

// scope is one level of name visibility: a type body, a method, a block or
// a lambda.
type scope struct {
	parent   *scope
	vars     map[string]*binding.VariableElement
	types    map[string]*binding.TypeElement
	typeVars map[string]*binding.TypeVar
	typ      *binding.TypeElement
	method   *binding.ExecutableElement
}

func newScope(parent *scope) *scope {
	return &scope{
		parent:   parent,
		vars:     make(map[string]*binding.VariableElement),
		types:    make(map[string]*binding.TypeElement),
		typeVars: make(map[string]*binding.TypeVar),
	}
}

func (s *scope) child() *scope { return newScope(s) }

func (s *scope) declare(v *binding.VariableElement) { s.vars[v.Name()] = v }

// lookupVar finds a local, a parameter or a field of an enclosing type.
func (s *scope) lookupVar(name string) *binding.VariableElement {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v
		}
		if cur.typ != nil {
			if f := cur.typ.LookupField(name); f != nil {
				return f
			}
		}
	}
	return nil
}

func (s *scope) lookupTypeVar(name string) *binding.TypeVar {
	for cur := s; cur != nil; cur = cur.parent {
		if tv, ok := cur.typeVars[name]; ok {
			return tv
		}
	}
	return nil
}

func (s *scope) enclosingType() *binding.TypeElement {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.typ != nil {
			return cur.typ
		}
	}
	return nil
}

// owner returns the method or type that declares locals of this scope.
func (s *scope) owner() binding.Element {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.method != nil {
			return cur.method
		}
		if cur.typ != nil {
			return cur.typ
		}
	}
	return nil
}
