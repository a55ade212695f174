package astbridge

import (
	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/frontend"
)

// nameOf builds a simple or qualified name from an identifier, a scoped
// identifier or a chain of field accesses on identifiers. Every part is
// bound to what the oracle resolved for it.
func nameOf(o frontend.Oracle, n frontend.Node) ast.Name {
	var qualifier, last frontend.Node
	switch n.Kind() {
	case "scoped_identifier":
		qualifier, last = n.Field("scope"), n.Field("name")
	case "field_access":
		qualifier, last = n.Field("object"), n.Field("field")
	case "scoped_type_identifier":
		if parts := n.Children(); len(parts) >= 2 {
			qualifier, last = parts[0], parts[len(parts)-1]
		}
	case "generic_type":
		// Outer<T>.Inner: the qualifier keeps only the raw name.
		for _, c := range n.Children() {
			if c.Kind() != "type_arguments" {
				return nameOf(o, c)
			}
		}
	}
	if qualifier == nil || last == nil {
		sn := setPos(ast.NewSimpleName(n.Text()), n)
		bind(o, sn, n)
		return sn
	}
	qn := setPos(ast.NewQualifiedName(), n)
	qn.SetQualifier(nameOf(o, qualifier))
	sn := setPos(ast.NewSimpleName(last.Text()), last)
	bind(o, sn, last)
	qn.SetName(sn)
	bind(o, qn, n)
	return qn
}

func bind(o frontend.Oracle, name ast.Name, n frontend.Node) {
	if e := o.ElementOf(n); e != nil {
		name.Rebind(e)
	}
	if t := o.TypeOf(n); t != nil {
		name.SetTypeMirror(t)
	}
}

// isNameChain reports whether n is a dotted run of identifiers, which the
// tree represents as a Name rather than field accesses.
func isNameChain(n frontend.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind() {
	case "identifier", "scoped_identifier":
		return true
	case "field_access":
		f := n.Field("field")
		return f != nil && f.Kind() == "identifier" && isNameChain(n.Field("object"))
	}
	return false
}

func (c *Converter) qualifiedName(n frontend.Node) ast.Name { return nameOf(c.oracle, n) }
