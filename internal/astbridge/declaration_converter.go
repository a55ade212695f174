package astbridge

import (
	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

// modifiers reads the keyword modifiers and annotations of a declaration.
func (c *Converter) modifiers(n frontend.Node) (binding.Modifier, []ast.Annotation, error) {
	m := frontend.NamedChild(n, "modifiers")
	if m == nil {
		return 0, nil, nil
	}
	var mods binding.Modifier
	for _, tok := range m.Tokens() {
		if bit, ok := binding.ParseModifier(tok); ok {
			mods |= bit
		}
	}
	var anns []ast.Annotation
	for _, a := range m.Children() {
		if !annotationKinds[a.Kind()] {
			continue
		}
		an, err := c.annotation(a)
		if err != nil {
			return 0, nil, err
		}
		anns = append(anns, an)
	}
	return mods, anns, nil
}

// declared applies source modifiers and annotations to d. Resolved elements
// contribute their implicit modifiers.
func (c *Converter) declared(d ast.BodyDeclaration, n frontend.Node, e binding.Element) error {
	mods, anns, err := c.modifiers(n)
	if err != nil {
		return err
	}
	if e != nil {
		mods |= e.Modifiers()
	}
	d.SetModifiers(mods)
	for _, a := range anns {
		d.Annotations().Add(a)
	}
	return nil
}

func (c *Converter) bodyDeclaration(n frontend.Node) (ast.BodyDeclaration, error) {
	return c.member(n, false)
}

// member converts one declaration of a type body. inInterface is set for
// interface and annotation type bodies.
func (c *Converter) member(n frontend.Node, inInterface bool) (ast.BodyDeclaration, error) {
	kind := n.Kind()
	if typeDeclarationKinds[kind] {
		return c.typeDeclaration(n)
	}
	switch kind {
	case "field_declaration", "constant_declaration":
		return c.field(n)
	case "method_declaration", "constructor_declaration":
		return c.method(n, inInterface)
	case "static_initializer":
		b := frontend.NamedChild(n, "block")
		if b == nil {
			return nil, malformed(n, "block")
		}
		init, err := c.initializerBlock(n, b)
		if err != nil {
			return nil, err
		}
		init.SetModifiers(binding.ModStatic)
		return init, nil
	case "block":
		return c.initializerBlock(n, n)
	case "enum_constant":
		return c.enumConstant(n)
	case "annotation_type_element_declaration":
		return c.annotationMember(n)
	}
	return nil, &UnknownKindError{Kind: kind, Line: n.Line()}
}

func (c *Converter) typeDeclaration(n frontend.Node) (ast.AbstractTypeDeclaration, error) {
	nameNode := n.Field("name")
	if nameNode == nil {
		return nil, malformed(n, "name")
	}
	te, _ := c.oracle.ElementOf(n).(*binding.TypeElement)
	doc := c.javadocFor(n)
	name := c.simpleName(nameNode)

	var td ast.AbstractTypeDeclaration
	switch n.Kind() {
	case "class_declaration", "interface_declaration":
		iface := n.Kind() == "interface_declaration"
		d := setPos(ast.NewTypeDeclaration(), n).SetJavadoc(doc).SetName(name).SetInterface(iface)
		if sc := n.Field("superclass"); sc != nil {
			st, err := c.types.Convert(firstChild(sc))
			if err != nil {
				return nil, err
			}
			d.SetSuperclassType(st)
		}
		list := n.Field("interfaces")
		if iface {
			list = frontend.NamedChild(n, "extends_interfaces")
		}
		if err := c.typeList(list, d.SuperInterfaceTypes()); err != nil {
			return nil, err
		}
		td = d
	case "enum_declaration":
		d := setPos(ast.NewEnumDeclaration(), n).SetJavadoc(doc).SetName(name)
		if err := c.typeList(n.Field("interfaces"), d.SuperInterfaceTypes()); err != nil {
			return nil, err
		}
		td = d
	case "annotation_type_declaration":
		td = setPos(ast.NewAnnotationTypeDeclaration(), n).SetJavadoc(doc).SetName(name)
	default:
		return nil, &UnknownKindError{Kind: n.Kind(), Line: n.Line()}
	}
	if te != nil {
		td.SetTypeElement(te)
	}
	var elem binding.Element
	if te != nil {
		elem = te
	}
	if err := c.declared(td, n, elem); err != nil {
		return nil, err
	}

	body := n.Field("body")
	if body == nil {
		return nil, malformed(n, "body")
	}
	inInterface := n.Kind() == "interface_declaration" || n.Kind() == "annotation_type_declaration"
	for _, m := range body.Children() {
		switch m.Kind() {
		case "enum_constant":
			ec, err := c.enumConstant(m)
			if err != nil {
				return nil, err
			}
			td.(*ast.EnumDeclaration).EnumConstants().Add(ec)
		case "enum_body_declarations":
			if err := c.members(m, td.BodyDeclarations(), false); err != nil {
				return nil, err
			}
		default:
			d, err := c.member(m, inInterface)
			if err != nil {
				return nil, err
			}
			td.BodyDeclarations().Add(d)
		}
	}
	return td, nil
}

func (c *Converter) members(body frontend.Node, list *ast.ChildList[ast.BodyDeclaration], inInterface bool) error {
	for _, m := range body.Children() {
		d, err := c.member(m, inInterface)
		if err != nil {
			return err
		}
		list.Add(d)
	}
	return nil
}

// typeList converts the type_list under a super_interfaces or
// extends_interfaces node.
func (c *Converter) typeList(n frontend.Node, list *ast.ChildList[ast.Type]) error {
	if n == nil {
		return nil
	}
	tl := frontend.NamedChild(n, "type_list")
	if tl == nil {
		return malformed(n, "type list")
	}
	for _, tn := range tl.Children() {
		t, err := c.types.Convert(tn)
		if err != nil {
			return err
		}
		list.Add(t)
	}
	return nil
}

func (c *Converter) anonymousClass(body frontend.Node) (*ast.AnonymousClassDeclaration, error) {
	acd := setPos(ast.NewAnonymousClassDeclaration(), body)
	if te, ok := c.oracle.ElementOf(body).(*binding.TypeElement); ok {
		acd.SetTypeElement(te)
	}
	return acd, c.members(body, acd.BodyDeclarations(), false)
}

func (c *Converter) field(n frontend.Node) (ast.BodyDeclaration, error) {
	t, err := c.types.Convert(n.Field("type"))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, malformed(n, "type")
	}
	fd := setPos(ast.NewFieldDeclaration(), n).SetJavadoc(c.javadocFor(n)).SetType(t)
	if err := c.fragments(n, t.TypeMirror(), fd.Fragments()); err != nil {
		return nil, err
	}
	var elem binding.Element
	if frags := fd.Fragments().Len(); frags > 0 {
		if ve := fd.Fragments().Get(0).VariableElement(); ve != nil {
			elem = ve
		}
	}
	return fd, c.declared(fd, n, elem)
}

func (c *Converter) method(n frontend.Node, inInterface bool) (ast.BodyDeclaration, error) {
	nameNode := n.Field("name")
	if nameNode == nil {
		return nil, malformed(n, "name")
	}
	m, _ := c.oracle.ElementOf(n).(*binding.ExecutableElement)
	md := setPos(ast.NewMethodDeclaration(), n).SetJavadoc(c.javadocFor(n)).SetName(c.simpleName(nameNode))
	if m != nil {
		md.SetExecutableElement(m)
	}
	var elem binding.Element
	if m != nil {
		elem = m
	}
	if err := c.declared(md, n, elem); err != nil {
		return nil, err
	}
	if inInterface && md.Modifiers().Has(binding.ModPrivate) && !c.env.SupportsPrivateInterfaceMethods() {
		return nil, unsupported(n, "private interface method below source level 9")
	}

	if n.Kind() == "constructor_declaration" {
		md.SetConstructor(true)
	} else {
		rt, err := c.types.Convert(n.Field("type"))
		if err != nil {
			return nil, err
		}
		if rt == nil {
			return nil, malformed(n, "return type")
		}
		md.SetReturnType(c.types.wrapArray(rt, dims(n.Field("dimensions")), n))
	}

	if params := n.Field("parameters"); params != nil {
		for _, p := range params.Children() {
			svd, err := c.parameter(p)
			if err != nil {
				return nil, err
			}
			if svd != nil {
				md.Parameters().Add(svd)
			}
		}
	}
	if throws := frontend.NamedChild(n, "throws"); throws != nil {
		for _, tn := range throws.Children() {
			t, err := c.types.Convert(tn)
			if err != nil {
				return nil, err
			}
			md.ThrownExceptionTypes().Add(t)
		}
	}
	if b := n.Field("body"); b != nil {
		body, err := c.block(b)
		if err != nil {
			return nil, err
		}
		md.SetBody(body)
	}
	return md, nil
}

// parameter converts a formal or varargs parameter. Receiver parameters
// have no representation and yield nil.
func (c *Converter) parameter(p frontend.Node) (*ast.SingleVariableDeclaration, error) {
	var name, typeNode frontend.Node
	varargs := false
	switch p.Kind() {
	case "formal_parameter":
		name, typeNode = p.Field("name"), p.Field("type")
	case "spread_parameter":
		varargs = true
		if decl := frontend.NamedChild(p, "variable_declarator"); decl != nil {
			name = decl.Field("name")
		}
		for _, ch := range p.Children() {
			if ch.Kind() != "modifiers" && ch.Kind() != "variable_declarator" {
				typeNode = ch
				break
			}
		}
	case "receiver_parameter":
		return nil, nil
	default:
		return nil, &UnknownKindError{Kind: p.Kind(), Line: p.Line()}
	}
	if name == nil || typeNode == nil {
		return nil, malformed(p, "type or name")
	}
	t, err := c.types.Convert(typeNode)
	if err != nil {
		return nil, err
	}
	mods, anns, err := c.modifiers(p)
	if err != nil {
		return nil, err
	}
	svd := setPos(ast.NewSingleVariableDeclaration(), p).
		SetType(t).SetName(c.simpleName(name)).SetModifiers(mods).SetVarargs(varargs)
	for _, a := range anns {
		svd.Annotations().Add(a)
	}
	svd.SetExtraDimensions(dims(p.Field("dimensions")))
	c.declare(svd, p, name)
	return svd, nil
}

func (c *Converter) initializerBlock(n, b frontend.Node) (*ast.Initializer, error) {
	body, err := c.block(b)
	if err != nil {
		return nil, err
	}
	return setPos(ast.NewInitializer(), n).SetJavadoc(c.javadocFor(n)).SetBody(body), nil
}

func (c *Converter) enumConstant(n frontend.Node) (*ast.EnumConstantDeclaration, error) {
	nameNode := n.Field("name")
	if nameNode == nil {
		return nil, malformed(n, "name")
	}
	ec := setPos(ast.NewEnumConstantDeclaration(), n).SetJavadoc(c.javadocFor(n)).SetName(c.simpleName(nameNode))
	var elem binding.Element
	if ve, ok := c.oracle.ElementOf(n).(*binding.VariableElement); ok {
		ec.SetVariableElement(ve)
		elem = ve
	}
	if err := c.declared(ec, n, elem); err != nil {
		return nil, err
	}
	if args := n.Field("arguments"); args != nil {
		if ctor, ok := c.oracle.ElementOf(args).(*binding.ExecutableElement); ok {
			ec.SetExecutableElement(ctor)
		}
		if err := c.arguments(args, ec.Arguments()); err != nil {
			return nil, err
		}
	}
	if body := n.Field("body"); body != nil {
		anon, err := c.anonymousClass(body)
		if err != nil {
			return nil, err
		}
		ec.SetAnonymousClassDeclaration(anon)
	}
	return ec, nil
}

func (c *Converter) annotationMember(n frontend.Node) (ast.BodyDeclaration, error) {
	nameNode := n.Field("name")
	if nameNode == nil {
		return nil, malformed(n, "name")
	}
	t, err := c.types.Convert(n.Field("type"))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, malformed(n, "type")
	}
	am := setPos(ast.NewAnnotationTypeMemberDeclaration(), n).SetJavadoc(c.javadocFor(n)).
		SetType(c.types.wrapArray(t, dims(n.Field("dimensions")), n)).SetName(c.simpleName(nameNode))
	var elem binding.Element
	if m, ok := c.oracle.ElementOf(n).(*binding.ExecutableElement); ok {
		am.SetExecutableElement(m)
		elem = m
	}
	if err := c.declared(am, n, elem); err != nil {
		return nil, err
	}
	def, err := c.elementValue(n.Field("value"))
	if err != nil {
		return nil, err
	}
	am.SetDefault(def)
	return am, nil
}
