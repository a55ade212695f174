// Package astbridge converts front-end syntax trees into the translator's
// ast. The input is the generic frontend.Node shape; the discriminant
// strings are the tree-sitter Java node kinds. Resolution results come from
// the frontend.Oracle and are attached to the nodes as bindings.
package astbridge

import (
	"path/filepath"
	"strings"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
	"github.com/orizon-lang/j2o/internal/position"
)

// Converter turns frontend nodes into ast nodes. A Converter is bound to
// one environment and oracle and must not be used concurrently.
type Converter struct {
	env    *ast.Environment
	oracle frontend.Oracle
	types  *TypeConverter

	// docs maps the start of a declaration to the doc comment before it.
	docs map[int]frontend.Node
	used map[frontend.Node]bool
}

// NewConverter creates a converter. A nil env gets a fresh environment at
// the newest source level; a nil oracle resolves nothing.
func NewConverter(env *ast.Environment, oracle frontend.Oracle) *Converter {
	if env == nil {
		env = ast.NewEnvironment(binding.NewUniverse(), nil)
	}
	if oracle == nil {
		oracle = frontend.NewMapOracle()
	}
	return &Converter{
		env:    env,
		oracle: oracle,
		types:  NewTypeConverter(env, oracle),
		docs:   make(map[int]frontend.Node),
		used:   make(map[frontend.Node]bool),
	}
}

// Convert converts a single expression, statement, body declaration or type
// node. Whole files go through ConvertCompilationUnit.
func (c *Converter) Convert(n frontend.Node) (ast.Node, error) {
	if n == nil {
		return nil, nil
	}
	kind := n.Kind()
	switch {
	case kind == "program":
		return nil, errorf(n, "program nodes must be converted with ConvertCompilationUnit")
	case expressionKinds[kind]:
		return c.expression(n)
	case statementKinds[kind]:
		return c.statement(n)
	case declarationKinds[kind]:
		return c.bodyDeclaration(n)
	case typeKinds[kind]:
		return c.types.Convert(n)
	}
	return nil, &UnknownKindError{Kind: kind, Line: n.Line()}
}

// ConvertCompilationUnit converts a parsed file. The main type name is the
// file's base name without extension.
func ConvertCompilationUnit(env *ast.Environment, unit *frontend.Unit) (*ast.CompilationUnit, error) {
	if unit == nil || unit.Root == nil {
		return nil, &ConversionError{Err: ErrNilInput}
	}
	if env == nil {
		u := unit.Universe
		if u == nil {
			u = binding.NewUniverse()
		}
		env = ast.NewEnvironment(u, nil)
	}
	c := NewConverter(env, unit.Oracle)
	c.indexDocs(unit)

	base := filepath.Base(unit.Path)
	main := strings.TrimSuffix(base, filepath.Ext(base))
	cu := ast.NewCompilationUnit(env, unit.Path, main, unit.Source)
	cu.SetPosition(pos(unit.Root))

	for _, n := range unit.Root.Children() {
		var err error
		switch n.Kind() {
		case "package_declaration":
			err = c.packageDeclaration(cu, n)
		case "import_declaration":
			cu.AddImport(importName(n))
		default:
			var d ast.BodyDeclaration
			d, err = c.bodyDeclaration(n)
			if err == nil {
				td, ok := d.(ast.AbstractTypeDeclaration)
				if !ok {
					err = errorf(n, "%s is not a type declaration", n.Kind())
				} else {
					cu.Types().Add(td)
				}
			}
		}
		if err != nil {
			return nil, wrap(unit.Path, err)
		}
	}
	if cu.Package() == nil {
		cu.SetPackage(defaultPackage(cu))
	}
	for _, cm := range unit.Comments {
		if !c.used[cm] {
			cu.Comments().Add(c.comment(cm))
		}
	}
	return cu, nil
}

func (c *Converter) packageDeclaration(cu *ast.CompilationUnit, n frontend.Node) error {
	pd := ast.NewPackageDeclaration()
	setPos(pd, n)
	pd.SetJavadoc(c.javadocFor(n))
	for _, a := range n.Children() {
		if annotationKinds[a.Kind()] {
			an, err := c.annotation(a)
			if err != nil {
				return err
			}
			pd.Annotations().Add(an)
		}
	}
	pe, _ := c.oracle.ElementOf(n).(*binding.PackageElement)
	if pe != nil {
		pd.SetPackageElement(pe)
	}
	for _, ch := range n.Children() {
		if ch.Kind() == "identifier" || ch.Kind() == "scoped_identifier" {
			name := c.qualifiedName(ch)
			if pe != nil {
				name.Rebind(pe)
			}
			pd.SetName(name)
		}
	}
	cu.SetPackage(pd)
	return nil
}

// defaultPackage is the unnamed package of a file without a package
// declaration. It sits at the start of the unit with no extent.
func defaultPackage(cu *ast.CompilationUnit) *ast.PackageDeclaration {
	pd := ast.NewPackageDeclaration()
	pd.SetPosition(position.SourcePosition{Start: cu.Position().Start, Line: cu.Position().Line})
	return pd
}

// importName renders an import as a dotted name, with a "static " prefix
// and a ".*" suffix where the source has them.
func importName(n frontend.Node) string {
	var sb strings.Builder
	if frontend.HasToken(n, "static") {
		sb.WriteString("static ")
	}
	for _, ch := range n.Children() {
		switch ch.Kind() {
		case "identifier", "scoped_identifier":
			sb.WriteString(dotted(ch))
		case "asterisk":
			sb.WriteString(".*")
		}
	}
	return sb.String()
}

func pos(n frontend.Node) position.SourcePosition {
	return position.SourcePosition{Start: n.StartByte(), Length: n.EndByte() - n.StartByte(), Line: n.Line()}
}

func setPos[T ast.Node](node T, n frontend.Node) T {
	node.SetPosition(pos(n))
	return node
}

// dotted returns the text of a qualified name without whitespace.
func dotted(n frontend.Node) string {
	return strings.Join(strings.Fields(n.Text()), "")
}
