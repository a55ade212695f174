package ast

import "github.com/orizon-lang/j2o/internal/binding"

// TypeDeclaration is a class or interface declaration.
type TypeDeclaration struct {
	typeDeclarationBase
	javadoc             ChildLink[*Javadoc]
	annotations         ChildList[Annotation]
	name                ChildLink[*SimpleName]
	superclassType      ChildLink[Type]
	superInterfaceTypes ChildList[Type]
	bodyDeclarations    ChildList[BodyDeclaration]
	classInitStatements ChildList[Statement]
	isInterface         bool
}

// NewTypeDeclaration returns a new TypeDeclaration.
func NewTypeDeclaration() *TypeDeclaration {
	n := &TypeDeclaration{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.name.init(n, "name", true)
	n.superclassType.init(n, "superclassType", false)
	n.superInterfaceTypes.init(n, "superInterfaceTypes")
	n.bodyDeclarations.init(n, "bodyDeclarations")
	n.classInitStatements.init(n, "classInitStatements")
	return n
}

func (n *TypeDeclaration) Kind() Kind       { return KindTypeDeclaration }
func (n *TypeDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *TypeDeclaration) Javadoc() *Javadoc                             { return n.javadoc.Get() }
func (n *TypeDeclaration) Annotations() *ChildList[Annotation]           { return &n.annotations }
func (n *TypeDeclaration) Name() *SimpleName                             { return n.name.Get() }
func (n *TypeDeclaration) SuperclassType() Type                          { return n.superclassType.Get() }
func (n *TypeDeclaration) SuperInterfaceTypes() *ChildList[Type]         { return &n.superInterfaceTypes }
func (n *TypeDeclaration) BodyDeclarations() *ChildList[BodyDeclaration] { return &n.bodyDeclarations }
func (n *TypeDeclaration) ClassInitStatements() *ChildList[Statement]    { return &n.classInitStatements }
func (n *TypeDeclaration) IsInterface() bool                             { return n.isInterface }

func (n *TypeDeclaration) SetJavadoc(javadoc *Javadoc) *TypeDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *TypeDeclaration) SetName(name *SimpleName) *TypeDeclaration {
	n.name.Set(name)
	return n
}

func (n *TypeDeclaration) SetSuperclassType(superclassType Type) *TypeDeclaration {
	n.superclassType.Set(superclassType)
	return n
}

func (n *TypeDeclaration) SetInterface(isInterface bool) *TypeDeclaration {
	n.isInterface = isInterface
	return n
}

func (n *TypeDeclaration) slots() []slot {
	return []slot{
		&n.javadoc,
		&n.annotations,
		&n.name,
		&n.superclassType,
		&n.superInterfaceTypes,
		&n.bodyDeclarations,
		&n.classInitStatements,
	}
}

func (n *TypeDeclaration) acceptInner(v Visitor) {
	if v.VisitTypeDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitTypeDeclaration(n)
}

func (n *TypeDeclaration) Copy() Node {
	c := NewTypeDeclaration()
	c.modifiers = n.modifiers
	c.element = n.element
	c.isInterface = n.isInterface
	copyNode(c, n)
	return c
}

// EnumDeclaration is an enum type declaration.
type EnumDeclaration struct {
	typeDeclarationBase
	javadoc             ChildLink[*Javadoc]
	annotations         ChildList[Annotation]
	name                ChildLink[*SimpleName]
	superInterfaceTypes ChildList[Type]
	enumConstants       ChildList[*EnumConstantDeclaration]
	bodyDeclarations    ChildList[BodyDeclaration]
	classInitStatements ChildList[Statement]
}

// NewEnumDeclaration returns a new EnumDeclaration.
func NewEnumDeclaration() *EnumDeclaration {
	n := &EnumDeclaration{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.name.init(n, "name", true)
	n.superInterfaceTypes.init(n, "superInterfaceTypes")
	n.enumConstants.init(n, "enumConstants")
	n.bodyDeclarations.init(n, "bodyDeclarations")
	n.classInitStatements.init(n, "classInitStatements")
	return n
}

func (n *EnumDeclaration) Kind() Kind       { return KindEnumDeclaration }
func (n *EnumDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *EnumDeclaration) Javadoc() *Javadoc                                   { return n.javadoc.Get() }
func (n *EnumDeclaration) Annotations() *ChildList[Annotation]                 { return &n.annotations }
func (n *EnumDeclaration) Name() *SimpleName                                   { return n.name.Get() }
func (n *EnumDeclaration) SuperInterfaceTypes() *ChildList[Type]               { return &n.superInterfaceTypes }
func (n *EnumDeclaration) EnumConstants() *ChildList[*EnumConstantDeclaration] { return &n.enumConstants }
func (n *EnumDeclaration) BodyDeclarations() *ChildList[BodyDeclaration]       { return &n.bodyDeclarations }
func (n *EnumDeclaration) ClassInitStatements() *ChildList[Statement]          { return &n.classInitStatements }

func (n *EnumDeclaration) SetJavadoc(javadoc *Javadoc) *EnumDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *EnumDeclaration) SetName(name *SimpleName) *EnumDeclaration {
	n.name.Set(name)
	return n
}

func (n *EnumDeclaration) slots() []slot {
	return []slot{
		&n.javadoc,
		&n.annotations,
		&n.name,
		&n.superInterfaceTypes,
		&n.enumConstants,
		&n.bodyDeclarations,
		&n.classInitStatements,
	}
}

func (n *EnumDeclaration) acceptInner(v Visitor) {
	if v.VisitEnumDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitEnumDeclaration(n)
}

func (n *EnumDeclaration) Copy() Node {
	c := NewEnumDeclaration()
	c.modifiers = n.modifiers
	c.element = n.element
	copyNode(c, n)
	return c
}

// AnnotationTypeDeclaration is an @interface declaration.
type AnnotationTypeDeclaration struct {
	typeDeclarationBase
	javadoc             ChildLink[*Javadoc]
	annotations         ChildList[Annotation]
	name                ChildLink[*SimpleName]
	bodyDeclarations    ChildList[BodyDeclaration]
	classInitStatements ChildList[Statement]
}

// NewAnnotationTypeDeclaration returns a new AnnotationTypeDeclaration.
func NewAnnotationTypeDeclaration() *AnnotationTypeDeclaration {
	n := &AnnotationTypeDeclaration{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.name.init(n, "name", true)
	n.bodyDeclarations.init(n, "bodyDeclarations")
	n.classInitStatements.init(n, "classInitStatements")
	return n
}

func (n *AnnotationTypeDeclaration) Kind() Kind       { return KindAnnotationTypeDeclaration }
func (n *AnnotationTypeDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *AnnotationTypeDeclaration) Javadoc() *Javadoc                             { return n.javadoc.Get() }
func (n *AnnotationTypeDeclaration) Annotations() *ChildList[Annotation]           { return &n.annotations }
func (n *AnnotationTypeDeclaration) Name() *SimpleName                             { return n.name.Get() }
func (n *AnnotationTypeDeclaration) BodyDeclarations() *ChildList[BodyDeclaration] { return &n.bodyDeclarations }
func (n *AnnotationTypeDeclaration) ClassInitStatements() *ChildList[Statement]    { return &n.classInitStatements }

func (n *AnnotationTypeDeclaration) SetJavadoc(javadoc *Javadoc) *AnnotationTypeDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *AnnotationTypeDeclaration) SetName(name *SimpleName) *AnnotationTypeDeclaration {
	n.name.Set(name)
	return n
}

func (n *AnnotationTypeDeclaration) slots() []slot {
	return []slot{&n.javadoc, &n.annotations, &n.name, &n.bodyDeclarations, &n.classInitStatements}
}

func (n *AnnotationTypeDeclaration) acceptInner(v Visitor) {
	if v.VisitAnnotationTypeDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitAnnotationTypeDeclaration(n)
}

func (n *AnnotationTypeDeclaration) Copy() Node {
	c := NewAnnotationTypeDeclaration()
	c.modifiers = n.modifiers
	c.element = n.element
	copyNode(c, n)
	return c
}

// AnonymousClassDeclaration is the body of an anonymous class. It only appears
// under a ClassInstanceCreation or an EnumConstantDeclaration.
type AnonymousClassDeclaration struct {
	nodeBase
	bodyDeclarations ChildList[BodyDeclaration]
	element          *binding.TypeElement
}

// NewAnonymousClassDeclaration returns a new AnonymousClassDeclaration.
func NewAnonymousClassDeclaration() *AnonymousClassDeclaration {
	n := &AnonymousClassDeclaration{}
	n.pos = unknownPos
	n.bodyDeclarations.init(n, "bodyDeclarations")
	return n
}

func (n *AnonymousClassDeclaration) Kind() Kind       { return KindAnonymousClassDeclaration }
func (n *AnonymousClassDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *AnonymousClassDeclaration) BodyDeclarations() *ChildList[BodyDeclaration] { return &n.bodyDeclarations }
func (n *AnonymousClassDeclaration) TypeElement() *binding.TypeElement             { return n.element }

func (n *AnonymousClassDeclaration) SetTypeElement(element *binding.TypeElement) *AnonymousClassDeclaration {
	n.element = element
	return n
}

func (n *AnonymousClassDeclaration) slots() []slot {
	return []slot{&n.bodyDeclarations}
}

func (n *AnonymousClassDeclaration) acceptInner(v Visitor) {
	if v.VisitAnonymousClassDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitAnonymousClassDeclaration(n)
}

func (n *AnonymousClassDeclaration) Copy() Node {
	c := NewAnonymousClassDeclaration()
	c.element = n.element
	copyNode(c, n)
	return c
}

// FieldDeclaration declares one or more fields of the same type.
type FieldDeclaration struct {
	bodyDeclarationBase
	javadoc     ChildLink[*Javadoc]
	annotations ChildList[Annotation]
	typ         ChildLink[Type]
	fragments   ChildList[*VariableDeclarationFragment]
}

// NewFieldDeclaration returns a new FieldDeclaration.
func NewFieldDeclaration() *FieldDeclaration {
	n := &FieldDeclaration{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.typ.init(n, "type", true)
	n.fragments.init(n, "fragments")
	return n
}

func (n *FieldDeclaration) Kind() Kind       { return KindFieldDeclaration }
func (n *FieldDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *FieldDeclaration) Javadoc() *Javadoc                                   { return n.javadoc.Get() }
func (n *FieldDeclaration) Annotations() *ChildList[Annotation]                 { return &n.annotations }
func (n *FieldDeclaration) Type() Type                                          { return n.typ.Get() }
func (n *FieldDeclaration) Fragments() *ChildList[*VariableDeclarationFragment] { return &n.fragments }

func (n *FieldDeclaration) SetJavadoc(javadoc *Javadoc) *FieldDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *FieldDeclaration) SetType(t Type) *FieldDeclaration {
	n.typ.Set(t)
	return n
}

func (n *FieldDeclaration) slots() []slot {
	return []slot{&n.javadoc, &n.annotations, &n.typ, &n.fragments}
}

func (n *FieldDeclaration) acceptInner(v Visitor) {
	if v.VisitFieldDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitFieldDeclaration(n)
}

func (n *FieldDeclaration) Copy() Node {
	c := NewFieldDeclaration()
	c.modifiers = n.modifiers
	copyNode(c, n)
	return c
}

// MethodDeclaration is a method or constructor. Abstract and native methods
// have no body.
type MethodDeclaration struct {
	bodyDeclarationBase
	javadoc              ChildLink[*Javadoc]
	annotations          ChildList[Annotation]
	returnType           ChildLink[Type]
	name                 ChildLink[*SimpleName]
	parameters           ChildList[*SingleVariableDeclaration]
	thrownExceptionTypes ChildList[Type]
	body                 ChildLink[*Block]
	element              *binding.ExecutableElement
	isConstructor        bool
}

// NewMethodDeclaration returns a new MethodDeclaration.
func NewMethodDeclaration() *MethodDeclaration {
	n := &MethodDeclaration{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.returnType.init(n, "returnType", false)
	n.name.init(n, "name", true)
	n.parameters.init(n, "parameters")
	n.thrownExceptionTypes.init(n, "thrownExceptionTypes")
	n.body.init(n, "body", false)
	return n
}

func (n *MethodDeclaration) Kind() Kind       { return KindMethodDeclaration }
func (n *MethodDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *MethodDeclaration) Javadoc() *Javadoc                                  { return n.javadoc.Get() }
func (n *MethodDeclaration) Annotations() *ChildList[Annotation]                { return &n.annotations }
func (n *MethodDeclaration) ReturnType() Type                                   { return n.returnType.Get() }
func (n *MethodDeclaration) Name() *SimpleName                                  { return n.name.Get() }
func (n *MethodDeclaration) Parameters() *ChildList[*SingleVariableDeclaration] { return &n.parameters }
func (n *MethodDeclaration) ThrownExceptionTypes() *ChildList[Type]             { return &n.thrownExceptionTypes }
func (n *MethodDeclaration) Body() *Block                                       { return n.body.Get() }
func (n *MethodDeclaration) ExecutableElement() *binding.ExecutableElement      { return n.element }
func (n *MethodDeclaration) IsConstructor() bool                                { return n.isConstructor }

func (n *MethodDeclaration) SetJavadoc(javadoc *Javadoc) *MethodDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *MethodDeclaration) SetReturnType(returnType Type) *MethodDeclaration {
	n.returnType.Set(returnType)
	return n
}

func (n *MethodDeclaration) SetName(name *SimpleName) *MethodDeclaration {
	n.name.Set(name)
	return n
}

func (n *MethodDeclaration) SetBody(body *Block) *MethodDeclaration {
	n.body.Set(body)
	return n
}

func (n *MethodDeclaration) SetExecutableElement(element *binding.ExecutableElement) *MethodDeclaration {
	n.element = element
	return n
}

func (n *MethodDeclaration) SetConstructor(isConstructor bool) *MethodDeclaration {
	n.isConstructor = isConstructor
	return n
}

func (n *MethodDeclaration) slots() []slot {
	return []slot{
		&n.javadoc,
		&n.annotations,
		&n.returnType,
		&n.name,
		&n.parameters,
		&n.thrownExceptionTypes,
		&n.body,
	}
}

func (n *MethodDeclaration) acceptInner(v Visitor) {
	if v.VisitMethodDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitMethodDeclaration(n)
}

func (n *MethodDeclaration) Copy() Node {
	c := NewMethodDeclaration()
	c.modifiers = n.modifiers
	c.element = n.element
	c.isConstructor = n.isConstructor
	copyNode(c, n)
	return c
}

// Initializer is a static or instance initializer block.
type Initializer struct {
	bodyDeclarationBase
	javadoc     ChildLink[*Javadoc]
	annotations ChildList[Annotation]
	body        ChildLink[*Block]
}

// NewInitializer returns a new Initializer.
func NewInitializer() *Initializer {
	n := &Initializer{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.body.init(n, "body", true)
	return n
}

func (n *Initializer) Kind() Kind       { return KindInitializer }
func (n *Initializer) Accept(v Visitor) { accept(n, v) }

func (n *Initializer) Javadoc() *Javadoc                   { return n.javadoc.Get() }
func (n *Initializer) Annotations() *ChildList[Annotation] { return &n.annotations }
func (n *Initializer) Body() *Block                        { return n.body.Get() }

func (n *Initializer) SetJavadoc(javadoc *Javadoc) *Initializer {
	n.javadoc.Set(javadoc)
	return n
}

func (n *Initializer) SetBody(body *Block) *Initializer {
	n.body.Set(body)
	return n
}

func (n *Initializer) slots() []slot {
	return []slot{&n.javadoc, &n.annotations, &n.body}
}

func (n *Initializer) acceptInner(v Visitor) {
	if v.VisitInitializer(n) {
		acceptChildren(n, v)
	}
	v.EndVisitInitializer(n)
}

func (n *Initializer) Copy() Node {
	c := NewInitializer()
	c.modifiers = n.modifiers
	copyNode(c, n)
	return c
}

// EnumConstantDeclaration declares one constant of an enum.
type EnumConstantDeclaration struct {
	bodyDeclarationBase
	javadoc                   ChildLink[*Javadoc]
	annotations               ChildList[Annotation]
	name                      ChildLink[*SimpleName]
	arguments                 ChildList[Expression]
	anonymousClassDeclaration ChildLink[*AnonymousClassDeclaration]
	element                   *binding.VariableElement
	constructor               *binding.ExecutableElement
}

// NewEnumConstantDeclaration returns a new EnumConstantDeclaration.
func NewEnumConstantDeclaration() *EnumConstantDeclaration {
	n := &EnumConstantDeclaration{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.name.init(n, "name", true)
	n.arguments.init(n, "arguments")
	n.anonymousClassDeclaration.init(n, "anonymousClassDeclaration", false)
	return n
}

func (n *EnumConstantDeclaration) Kind() Kind       { return KindEnumConstantDeclaration }
func (n *EnumConstantDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *EnumConstantDeclaration) Javadoc() *Javadoc                                     { return n.javadoc.Get() }
func (n *EnumConstantDeclaration) Annotations() *ChildList[Annotation]                   { return &n.annotations }
func (n *EnumConstantDeclaration) Name() *SimpleName                                     { return n.name.Get() }
func (n *EnumConstantDeclaration) Arguments() *ChildList[Expression]                     { return &n.arguments }
func (n *EnumConstantDeclaration) AnonymousClassDeclaration() *AnonymousClassDeclaration { return n.anonymousClassDeclaration.Get() }
func (n *EnumConstantDeclaration) VariableElement() *binding.VariableElement             { return n.element }
func (n *EnumConstantDeclaration) ExecutableElement() *binding.ExecutableElement         { return n.constructor }

func (n *EnumConstantDeclaration) SetJavadoc(javadoc *Javadoc) *EnumConstantDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *EnumConstantDeclaration) SetName(name *SimpleName) *EnumConstantDeclaration {
	n.name.Set(name)
	return n
}

func (n *EnumConstantDeclaration) SetAnonymousClassDeclaration(anonymousClassDeclaration *AnonymousClassDeclaration) *EnumConstantDeclaration {
	n.anonymousClassDeclaration.Set(anonymousClassDeclaration)
	return n
}

func (n *EnumConstantDeclaration) SetVariableElement(element *binding.VariableElement) *EnumConstantDeclaration {
	n.element = element
	return n
}

func (n *EnumConstantDeclaration) SetExecutableElement(constructor *binding.ExecutableElement) *EnumConstantDeclaration {
	n.constructor = constructor
	return n
}

func (n *EnumConstantDeclaration) slots() []slot {
	return []slot{&n.javadoc, &n.annotations, &n.name, &n.arguments, &n.anonymousClassDeclaration}
}

func (n *EnumConstantDeclaration) acceptInner(v Visitor) {
	if v.VisitEnumConstantDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitEnumConstantDeclaration(n)
}

func (n *EnumConstantDeclaration) Copy() Node {
	c := NewEnumConstantDeclaration()
	c.modifiers = n.modifiers
	c.element = n.element
	c.constructor = n.constructor
	copyNode(c, n)
	return c
}

// AnnotationTypeMemberDeclaration is a member of an annotation type.
type AnnotationTypeMemberDeclaration struct {
	bodyDeclarationBase
	javadoc      ChildLink[*Javadoc]
	annotations  ChildList[Annotation]
	typ          ChildLink[Type]
	name         ChildLink[*SimpleName]
	defaultValue ChildLink[Expression]
	element      *binding.ExecutableElement
}

// NewAnnotationTypeMemberDeclaration returns a new AnnotationTypeMemberDeclaration.
func NewAnnotationTypeMemberDeclaration() *AnnotationTypeMemberDeclaration {
	n := &AnnotationTypeMemberDeclaration{}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.typ.init(n, "type", true)
	n.name.init(n, "name", true)
	n.defaultValue.init(n, "default", false)
	return n
}

func (n *AnnotationTypeMemberDeclaration) Kind() Kind       { return KindAnnotationTypeMemberDeclaration }
func (n *AnnotationTypeMemberDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *AnnotationTypeMemberDeclaration) Javadoc() *Javadoc                             { return n.javadoc.Get() }
func (n *AnnotationTypeMemberDeclaration) Annotations() *ChildList[Annotation]           { return &n.annotations }
func (n *AnnotationTypeMemberDeclaration) Type() Type                                    { return n.typ.Get() }
func (n *AnnotationTypeMemberDeclaration) Name() *SimpleName                             { return n.name.Get() }
func (n *AnnotationTypeMemberDeclaration) Default() Expression                           { return n.defaultValue.Get() }
func (n *AnnotationTypeMemberDeclaration) ExecutableElement() *binding.ExecutableElement { return n.element }

func (n *AnnotationTypeMemberDeclaration) SetJavadoc(javadoc *Javadoc) *AnnotationTypeMemberDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *AnnotationTypeMemberDeclaration) SetType(t Type) *AnnotationTypeMemberDeclaration {
	n.typ.Set(t)
	return n
}

func (n *AnnotationTypeMemberDeclaration) SetName(name *SimpleName) *AnnotationTypeMemberDeclaration {
	n.name.Set(name)
	return n
}

func (n *AnnotationTypeMemberDeclaration) SetDefault(defaultValue Expression) *AnnotationTypeMemberDeclaration {
	n.defaultValue.Set(defaultValue)
	return n
}

func (n *AnnotationTypeMemberDeclaration) SetExecutableElement(element *binding.ExecutableElement) *AnnotationTypeMemberDeclaration {
	n.element = element
	return n
}

func (n *AnnotationTypeMemberDeclaration) slots() []slot {
	return []slot{&n.javadoc, &n.annotations, &n.typ, &n.name, &n.defaultValue}
}

func (n *AnnotationTypeMemberDeclaration) acceptInner(v Visitor) {
	if v.VisitAnnotationTypeMemberDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitAnnotationTypeMemberDeclaration(n)
}

func (n *AnnotationTypeMemberDeclaration) Copy() Node {
	c := NewAnnotationTypeMemberDeclaration()
	c.modifiers = n.modifiers
	c.element = n.element
	copyNode(c, n)
	return c
}

// FunctionDeclaration is a target-language function synthesized by a pass.
type FunctionDeclaration struct {
	bodyDeclarationBase
	javadoc     ChildLink[*Javadoc]
	annotations ChildList[Annotation]
	returnType  ChildLink[Type]
	parameters  ChildList[*SingleVariableDeclaration]
	body        ChildLink[*Block]
	name        string
}

// NewFunctionDeclaration returns a new FunctionDeclaration.
func NewFunctionDeclaration(name string) *FunctionDeclaration {
	n := &FunctionDeclaration{name: name}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	n.returnType.init(n, "returnType", true)
	n.parameters.init(n, "parameters")
	n.body.init(n, "body", false)
	return n
}

func (n *FunctionDeclaration) Kind() Kind       { return KindFunctionDeclaration }
func (n *FunctionDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *FunctionDeclaration) Javadoc() *Javadoc                                  { return n.javadoc.Get() }
func (n *FunctionDeclaration) Annotations() *ChildList[Annotation]                { return &n.annotations }
func (n *FunctionDeclaration) ReturnType() Type                                   { return n.returnType.Get() }
func (n *FunctionDeclaration) Parameters() *ChildList[*SingleVariableDeclaration] { return &n.parameters }
func (n *FunctionDeclaration) Body() *Block                                       { return n.body.Get() }
func (n *FunctionDeclaration) Name() string                                       { return n.name }

func (n *FunctionDeclaration) SetJavadoc(javadoc *Javadoc) *FunctionDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *FunctionDeclaration) SetReturnType(returnType Type) *FunctionDeclaration {
	n.returnType.Set(returnType)
	return n
}

func (n *FunctionDeclaration) SetBody(body *Block) *FunctionDeclaration {
	n.body.Set(body)
	return n
}

func (n *FunctionDeclaration) slots() []slot {
	return []slot{&n.javadoc, &n.annotations, &n.returnType, &n.parameters, &n.body}
}

func (n *FunctionDeclaration) acceptInner(v Visitor) {
	if v.VisitFunctionDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitFunctionDeclaration(n)
}

func (n *FunctionDeclaration) Copy() Node {
	c := NewFunctionDeclaration(n.name)
	c.modifiers = n.modifiers
	copyNode(c, n)
	return c
}
