package ast

import (
	"slices"

	"github.com/orizon-lang/j2o/internal/binding"
)

// CompilationUnit is the root of the tree for one source file. It carries the
// environment captured by Run along with the file path and source text.
type CompilationUnit struct {
	nodeBase
	pkg            ChildLink[*PackageDeclaration]
	comments       ChildList[Comment]
	types          ChildList[AbstractTypeDeclaration]
	nativeBlocks   ChildList[*NativeDeclaration]
	env            *Environment
	sourceFilePath string
	mainTypeName   string
	source         string
	imports        []string
}

// NewCompilationUnit returns a new CompilationUnit.
func NewCompilationUnit(env *Environment, sourceFilePath, mainTypeName, source string) *CompilationUnit {
	n := &CompilationUnit{env: env, sourceFilePath: sourceFilePath, mainTypeName: mainTypeName, source: source}
	n.pos = unknownPos
	n.pkg.init(n, "package", true)
	n.comments.init(n, "comments")
	n.types.init(n, "types")
	n.nativeBlocks.init(n, "nativeBlocks")
	return n
}

func (n *CompilationUnit) Kind() Kind       { return KindCompilationUnit }
func (n *CompilationUnit) Accept(v Visitor) { accept(n, v) }

func (n *CompilationUnit) Package() *PackageDeclaration                 { return n.pkg.Get() }
func (n *CompilationUnit) Comments() *ChildList[Comment]                { return &n.comments }
func (n *CompilationUnit) Types() *ChildList[AbstractTypeDeclaration]   { return &n.types }
func (n *CompilationUnit) NativeBlocks() *ChildList[*NativeDeclaration] { return &n.nativeBlocks }
func (n *CompilationUnit) Env() *Environment                            { return n.env }
func (n *CompilationUnit) SourceFilePath() string                       { return n.sourceFilePath }
func (n *CompilationUnit) MainTypeName() string                         { return n.mainTypeName }
func (n *CompilationUnit) Source() string                               { return n.source }
func (n *CompilationUnit) Imports() []string                            { return n.imports }

func (n *CompilationUnit) SetPackage(pkg *PackageDeclaration) *CompilationUnit {
	n.pkg.Set(pkg)
	return n
}

func (n *CompilationUnit) SetEnv(env *Environment) *CompilationUnit {
	n.env = env
	return n
}

func (n *CompilationUnit) SetMainTypeName(mainTypeName string) *CompilationUnit {
	n.mainTypeName = mainTypeName
	return n
}

func (n *CompilationUnit) slots() []slot {
	return []slot{&n.pkg, &n.comments, &n.types, &n.nativeBlocks}
}

func (n *CompilationUnit) acceptInner(v Visitor) {
	if v.VisitCompilationUnit(n) {
		acceptChildren(n, v)
	}
	v.EndVisitCompilationUnit(n)
}

func (n *CompilationUnit) Copy() Node {
	c := NewCompilationUnit(n.env, n.sourceFilePath, n.mainTypeName, n.source)
	c.imports = slices.Clone(n.imports)
	copyNode(c, n)
	return c
}

// AddImport records an import declaration by its dotted name.
func (n *CompilationUnit) AddImport(name string) *CompilationUnit {
	n.imports = append(n.imports, name)
	return n
}

// PackageDeclaration names the package of a compilation unit. The default
// package has no name.
type PackageDeclaration struct {
	nodeBase
	javadoc     ChildLink[*Javadoc]
	annotations ChildList[Annotation]
	name        ChildLink[Name]
	element     *binding.PackageElement
}

// NewPackageDeclaration returns a new PackageDeclaration.
func NewPackageDeclaration() *PackageDeclaration {
	n := &PackageDeclaration{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.name.init(n, "name", false)
	return n
}

func (n *PackageDeclaration) Kind() Kind       { return KindPackageDeclaration }
func (n *PackageDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *PackageDeclaration) Javadoc() *Javadoc                       { return n.javadoc.Get() }
func (n *PackageDeclaration) Annotations() *ChildList[Annotation]     { return &n.annotations }
func (n *PackageDeclaration) Name() Name                              { return n.name.Get() }
func (n *PackageDeclaration) PackageElement() *binding.PackageElement { return n.element }

func (n *PackageDeclaration) SetJavadoc(javadoc *Javadoc) *PackageDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *PackageDeclaration) SetName(name Name) *PackageDeclaration {
	n.name.Set(name)
	return n
}

func (n *PackageDeclaration) SetPackageElement(element *binding.PackageElement) *PackageDeclaration {
	n.element = element
	return n
}

func (n *PackageDeclaration) slots() []slot {
	return []slot{&n.javadoc, &n.annotations, &n.name}
}

func (n *PackageDeclaration) acceptInner(v Visitor) {
	if v.VisitPackageDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitPackageDeclaration(n)
}

func (n *PackageDeclaration) Copy() Node {
	c := NewPackageDeclaration()
	c.element = n.element
	copyNode(c, n)
	return c
}

// IsDefaultPackage reports whether the declaration names the unnamed package.
func (n *PackageDeclaration) IsDefaultPackage() bool {
	return n.name.Get() == nil
}
