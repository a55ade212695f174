// Package translate runs tree-rewriting passes over converted compilation
// units.
package translate

import (
	"github.com/orizon-lang/j2o/internal/ast"
)

// Pass rewrites one compilation unit in place.
type Pass interface {
	Name() string
	Run(unit *ast.CompilationUnit) error
}

// VisitorPass adapts a visitor into a Pass. factory is called once per unit
// so visitors may keep per-unit state.
func VisitorPass(name string, factory func() ast.Visitor) Pass {
	return &visitorPass{name: name, factory: factory}
}

type visitorPass struct {
	name    string
	factory func() ast.Visitor
}

func (p *visitorPass) Name() string { return p.name }

func (p *visitorPass) Run(unit *ast.CompilationUnit) error {
	return ast.Run(p.factory(), unit)
}

// DefaultPasses returns the passes run when no list is configured, in order.
func DefaultPasses() []Pass {
	return []Pass{NewConstantFolder(), NewUnreachableCodeRemover()}
}

// Lookup returns the registered pass with the given name.
func Lookup(name string) (Pass, bool) {
	switch name {
	case ConstantFolderName:
		return NewConstantFolder(), true
	case UnreachableCodeRemoverName:
		return NewUnreachableCodeRemover(), true
	}
	return nil, false
}

// Names lists every registered pass name.
func Names() []string {
	return []string{ConstantFolderName, UnreachableCodeRemoverName}
}
