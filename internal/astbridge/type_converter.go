package astbridge

import (
	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

// TypeConverter converts type syntax into ast type nodes bound to the
// oracle's resolved types.
type TypeConverter struct {
	env    *ast.Environment
	oracle frontend.Oracle
}

// NewTypeConverter creates a type converter over env and oracle.
func NewTypeConverter(env *ast.Environment, oracle frontend.Oracle) *TypeConverter {
	return &TypeConverter{env: env, oracle: oracle}
}

// Convert converts one type node.
func (tc *TypeConverter) Convert(n frontend.Node) (ast.Type, error) {
	if n == nil {
		return nil, nil
	}
	t, err := tc.convert(n)
	if err != nil {
		return nil, err
	}
	if m := tc.oracle.TypeOf(n); m != nil {
		t.SetTypeMirror(m)
	}
	return t, nil
}

func (tc *TypeConverter) convert(n frontend.Node) (ast.Type, error) {
	switch n.Kind() {
	case "void_type", "integral_type", "floating_point_type", "boolean_type":
		pt := setPos(ast.NewPrimitiveType(), n)
		if p, ok := tc.env.Universe.PrimitiveByName(n.Text()); ok {
			pt.SetTypeMirror(p)
		}
		return pt, nil
	case "type_identifier", "identifier", "scoped_type_identifier", "scoped_identifier":
		if n.Text() == "var" {
			return tc.inferred(n)
		}
		st := setPos(ast.NewSimpleType(), n)
		name := nameOf(tc.oracle, n)
		if te, ok := tc.oracle.ElementOf(n).(*binding.TypeElement); ok {
			name.Rebind(te)
		}
		return st.SetName(name), nil
	case "generic_type":
		pt := setPos(ast.NewParameterizedType(), n)
		for _, c := range n.Children() {
			if c.Kind() != "type_arguments" {
				raw, err := tc.Convert(c)
				if err != nil {
					return nil, err
				}
				pt.SetType(raw)
				continue
			}
			for _, a := range c.Children() {
				arg, err := tc.argument(a)
				if err != nil {
					return nil, err
				}
				pt.TypeArguments().Add(arg)
			}
		}
		if pt.Type() == nil {
			return nil, malformed(n, "raw type")
		}
		return pt, nil
	case "array_type":
		elem, err := tc.Convert(n.Field("element"))
		if err != nil {
			return nil, err
		}
		if elem == nil {
			return nil, malformed(n, "element type")
		}
		return tc.wrapArray(elem, dims(n.Field("dimensions")), n), nil
	case "annotated_type":
		// Type annotations are not represented.
		for _, c := range n.Children() {
			if !annotationKinds[c.Kind()] {
				return tc.Convert(c)
			}
		}
		return nil, malformed(n, "type")
	}
	return nil, &UnknownKindError{Kind: n.Kind(), Line: n.Line()}
}

// inferred builds the type node of a "var" declaration from the type the
// front end inferred.
func (tc *TypeConverter) inferred(n frontend.Node) (ast.Type, error) {
	m := tc.oracle.TypeOf(n)
	if m == nil {
		return nil, unsupported(n, "var without an inferred type")
	}
	return setPos(tc.env.Types.Get(m), n), nil
}

// argument converts a type argument. Wildcards are erased to their bound.
func (tc *TypeConverter) argument(n frontend.Node) (ast.Type, error) {
	if n.Kind() != "wildcard" {
		return tc.Convert(n)
	}
	bound := tc.oracle.TypeOf(n)
	if bound == nil {
		bound = tc.env.Universe.ObjectType()
	}
	return setPos(tc.env.Types.Get(bound), n), nil
}

// wrapArray nests elem in dims ArrayType nodes. The outermost node takes
// the mirror of n; inner ones derive theirs from the element.
func (tc *TypeConverter) wrapArray(elem ast.Type, dims int, n frontend.Node) ast.Type {
	t := elem
	for range dims {
		at := setPos(ast.NewArrayType(), n)
		if m := t.TypeMirror(); m != nil {
			at.SetTypeMirror(tc.env.Universe.ArrayOf(m))
		}
		t = at.SetComponentType(t)
	}
	return t
}

// unionOf converts the alternatives of a multi-catch parameter.
func (tc *TypeConverter) unionOf(n frontend.Node) (ast.Type, error) {
	alts := n.Children()
	if len(alts) == 1 {
		return tc.Convert(alts[0])
	}
	ut := setPos(ast.NewUnionType(), n)
	var mirrors []binding.Type
	for _, a := range alts {
		t, err := tc.Convert(a)
		if err != nil {
			return nil, err
		}
		ut.Types().Add(t)
		mirrors = append(mirrors, t.TypeMirror())
	}
	ut.SetTypeMirror(tc.env.Universe.Union(mirrors...))
	return ut, nil
}

func dims(n frontend.Node) int {
	if n == nil {
		return 0
	}
	count := 0
	for _, tok := range n.Tokens() {
		if tok == "[" {
			count++
		}
	}
	return count
}
