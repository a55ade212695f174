package javats

import (
	"strconv"
	"strings"

	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

var typeKinds = map[string]binding.ElementKind{
	"class_declaration":           binding.ElemClass,
	"interface_declaration":       binding.ElemInterface,
	"enum_declaration":            binding.ElemEnum,
	"annotation_type_declaration": binding.ElemAnnotationType,
	"record_declaration":          binding.ElemRecord,
}

type typeDecl struct {
	node  frontend.Node
	body  frontend.Node
	elem  *binding.TypeElement
	scope *scope
}

// resolver walks a program in three rounds: declare every type, declare
// their members, then resolve bodies. Members of a later class are
// therefore visible from an earlier one.
type resolver struct {
	u        *binding.Universe
	o        *frontend.MapOracle
	pkg      *binding.PackageElement
	imports  map[string]*binding.TypeElement
	onDemand []string
	methods  map[frontend.Node]*scope
	anon     map[*binding.TypeElement]int
}

func newResolver(u *binding.Universe, o *frontend.MapOracle) *resolver {
	return &resolver{
		u:       u,
		o:       o,
		pkg:     u.Package(""),
		imports: make(map[string]*binding.TypeElement),
		methods: make(map[frontend.Node]*scope),
		anon:    make(map[*binding.TypeElement]int),
	}
}

func (r *resolver) resolveProgram(program frontend.Node) {
	file := newScope(nil)
	var tds []*typeDecl
	for _, c := range program.Children() {
		switch c.Kind() {
		case "package_declaration":
			if name := nameChild(c); name != nil {
				r.pkg = r.u.Package(dotted(name))
			}
			r.o.SetElement(c, r.pkg)
		case "import_declaration":
			r.declareImport(c)
		default:
			if _, ok := typeKinds[c.Kind()]; ok {
				tds = append(tds, r.declareType(c, r.pkg, file)...)
			}
		}
	}
	r.complete(tds)
}

func (r *resolver) complete(tds []*typeDecl) {
	for _, td := range tds {
		r.declareMembers(td)
	}
	for _, td := range tds {
		r.resolveBodies(td)
	}
}

func (r *resolver) declareImport(n frontend.Node) {
	name := nameChild(n)
	if name == nil {
		return
	}
	q := dotted(name)
	static := frontend.HasToken(n, "static")
	if frontend.NamedChild(n, "asterisk") != nil {
		if !static {
			r.onDemand = append(r.onDemand, q)
		}
		return
	}
	if static {
		return
	}
	te := r.u.Lookup(q)
	if te == nil {
		pkg, simple := "", q
		if i := strings.LastIndexByte(q, '.'); i >= 0 {
			pkg, simple = q[:i], q[i+1:]
		}
		te = r.u.NewType(r.u.Package(pkg), simple, binding.ElemClass, binding.ModPublic)
	}
	r.imports[te.Name()] = te
	r.o.SetElement(n, te)
}

func (r *resolver) declareType(n frontend.Node, enclosing binding.Element, outer *scope) []*typeDecl {
	name := n.Field("name")
	kind := typeKinds[n.Kind()]
	mods := modifiersOf(n)
	if _, nested := enclosing.(*binding.TypeElement); nested && kind != binding.ElemClass {
		mods |= binding.ModStatic
	}
	te := r.u.NewType(enclosing, name.Text(), kind, mods)
	r.setElement(te, n, name)
	return r.declareBody(n, n.Field("body"), te, outer)
}

func (r *resolver) declareBody(decl, body frontend.Node, te *binding.TypeElement, outer *scope) []*typeDecl {
	s := outer.child()
	s.typ = te
	r.declareTypeParams(decl.Field("type_parameters"), s)
	out := []*typeDecl{{node: decl, body: body, elem: te, scope: s}}
	for _, m := range membersOf(body) {
		if _, ok := typeKinds[m.Kind()]; ok {
			out = append(out, r.declareType(m, te, s)...)
		}
	}
	return out
}

func (r *resolver) declareTypeParams(tp frontend.Node, s *scope) {
	if tp == nil {
		return
	}
	for _, p := range tp.Children() {
		id := frontend.NamedChild(p, "type_identifier")
		if id == nil {
			continue
		}
		var bound binding.Type
		if b := frontend.NamedChild(p, "type_bound"); b != nil {
			if bs := b.Children(); len(bs) > 0 {
				bound = r.resolveType(bs[0], s)
			}
		}
		tv := r.u.TypeVariable(id.Text(), bound)
		s.typeVars[id.Text()] = tv
		r.o.SetType(p, tv)
		r.o.SetType(id, tv)
	}
}

func (r *resolver) declareMembers(td *typeDecl) {
	n, te, s := td.node, td.elem, td.scope
	if sc := n.Field("superclass"); sc != nil {
		if ts := sc.Children(); len(ts) > 0 {
			te.SetSuperclass(r.resolveType(ts[0], s))
		}
	}
	if te.ElementKind() == binding.ElemEnum {
		te.SetSuperclass(r.u.Lookup("java.lang.Enum").Type())
	}
	for _, list := range []frontend.Node{n.Field("interfaces"), frontend.NamedChild(n, "extends_interfaces")} {
		if list == nil {
			continue
		}
		if tl := frontend.NamedChild(list, "type_list"); tl != nil {
			for _, t := range tl.Children() {
				te.AddInterface(r.resolveType(t, s))
			}
		}
	}

	hasCtor := false
	for _, m := range membersOf(td.body) {
		switch m.Kind() {
		case "field_declaration", "constant_declaration":
			r.declareFields(m, te, s)
		case "method_declaration", "annotation_type_element_declaration":
			r.declareMethod(m, te, s, binding.ElemMethod)
		case "constructor_declaration", "compact_constructor_declaration":
			hasCtor = true
			r.declareMethod(m, te, s, binding.ElemConstructor)
		case "enum_constant":
			name := m.Field("name")
			v := binding.NewVariable(binding.ElemEnumConstant, name.Text(), te.Type(),
				binding.ModPublic|binding.ModStatic|binding.ModFinal, te)
			r.setElement(v, m, name)
		}
	}
	switch te.ElementKind() {
	case binding.ElemClass, binding.ElemEnum, binding.ElemRecord:
		if !hasCtor {
			vis := te.Modifiers() & (binding.ModPublic | binding.ModProtected | binding.ModPrivate)
			binding.NewMethod(binding.ElemConstructor, te.Name(), r.u.Void(), vis, te)
		}
	}
}

func isInterface(te *binding.TypeElement) bool {
	k := te.ElementKind()
	return k == binding.ElemInterface || k == binding.ElemAnnotationType
}

func (r *resolver) declareFields(m frontend.Node, te *binding.TypeElement, s *scope) {
	mods := modifiersOf(m)
	if isInterface(te) {
		mods |= binding.ModPublic | binding.ModStatic | binding.ModFinal
	}
	t := r.resolveType(m.Field("type"), s)
	for _, d := range m.Fields("declarator") {
		name := d.Field("name")
		v := binding.NewVariable(binding.ElemField, name.Text(), r.arrayOf(t, countDims(d.Field("dimensions"))), mods, te)
		r.setElement(v, d, name)
	}
}

func (r *resolver) declareMethod(m frontend.Node, te *binding.TypeElement, s *scope, kind binding.ElementKind) {
	ms := s.child()
	r.declareTypeParams(m.Field("type_parameters"), ms)

	mods := modifiersOf(m)
	if isInterface(te) {
		if m.Field("body") == nil && !mods.Has(binding.ModStatic) && !mods.Has(binding.ModPrivate) {
			mods |= binding.ModAbstract
		}
		if !mods.Has(binding.ModPrivate) {
			mods |= binding.ModPublic
		}
	}
	name, result := te.Name(), r.u.Void()
	if kind == binding.ElemMethod {
		name = m.Field("name").Text()
		if t := r.resolveType(m.Field("type"), ms); t != nil {
			result = r.arrayOf(t, countDims(m.Field("dimensions")))
		}
	}
	x := binding.NewMethod(kind, name, result, mods, te)
	r.setElement(x, m, m.Field("name"))
	ms.method = x

	if params := m.Field("parameters"); params != nil {
		for _, p := range params.Children() {
			r.declareParam(x, p, ms)
		}
	}
	if throws := frontend.NamedChild(m, "throws"); throws != nil {
		for _, t := range throws.Children() {
			x.AddThrown(r.resolveType(t, ms))
		}
	}
	r.methods[m] = ms
}

func (r *resolver) declareParam(x *binding.ExecutableElement, p frontend.Node, ms *scope) {
	var name frontend.Node
	var t binding.Type
	switch p.Kind() {
	case "formal_parameter":
		name = p.Field("name")
		t = r.arrayOf(r.resolveType(p.Field("type"), ms), countDims(p.Field("dimensions")))
	case "spread_parameter":
		decl := frontend.NamedChild(p, "variable_declarator")
		if decl == nil {
			return
		}
		name = decl.Field("name")
		for _, c := range p.Children() {
			if c.Kind() != "modifiers" && c.Kind() != "variable_declarator" {
				t = r.u.ArrayOf(r.resolveType(c, ms))
				break
			}
		}
		x.SetVarargs(true)
	default:
		return
	}
	v := x.AddParameter(name.Text(), t)
	ms.declare(v)
	r.setElement(v, p, name)
}

func (r *resolver) resolveBodies(td *typeDecl) {
	s := td.scope
	for _, m := range membersOf(td.body) {
		switch m.Kind() {
		case "field_declaration", "constant_declaration":
			for _, d := range m.Fields("declarator") {
				value := d.Field("value")
				if value == nil {
					continue
				}
				f, _ := r.o.ElementOf(d).(*binding.VariableElement)
				r.initializer(value, s, typeOfVar(f))
				if f != nil && f.Modifiers().Has(binding.ModFinal) {
					f.SetConstantValue(r.o.ConstantOf(value))
				}
			}
		case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
			if body := m.Field("body"); body != nil {
				r.stmt(body, r.methods[m])
			}
		case "annotation_type_element_declaration":
			r.expr(m.Field("value"), s)
		case "static_initializer":
			for _, c := range m.Children() {
				r.stmt(c, s.child())
			}
		case "block":
			r.stmt(m, s.child())
		case "enum_constant":
			argTypes := r.args(m.Field("arguments"), s)
			if args := m.Field("arguments"); args != nil {
				if ctor := td.elem.LookupConstructor(len(argTypes)); ctor != nil {
					r.o.SetElement(args, ctor)
				}
			}
			if body := m.Field("body"); body != nil {
				r.anonymous(body, td.elem.Type(), s)
			}
		}
	}
}

// anonymous declares and resolves the body of an anonymous class.
func (r *resolver) anonymous(body frontend.Node, super binding.Type, s *scope) {
	outer := s.enclosingType()
	var enclosing binding.Element = r.pkg
	if outer != nil {
		enclosing = outer
	}
	r.anon[outer]++
	te := r.u.NewType(enclosing, strconv.Itoa(r.anon[outer]), binding.ElemClass, 0)
	if st := elementOf(super); st != nil && isInterface(st) {
		te.AddInterface(super)
	} else if super != nil {
		te.SetSuperclass(super)
	}
	r.o.SetElement(body, te)
	r.complete(r.declareBody(body, body, te, s))
}

func (r *resolver) setElement(e binding.Element, nodes ...frontend.Node) {
	for _, n := range nodes {
		if n != nil {
			r.o.SetElement(n, e)
		}
	}
}

// membersOf lists the declarations of a class, interface, enum or
// annotation body, flattening the declarations section of an enum body.
func membersOf(body frontend.Node) []frontend.Node {
	if body == nil {
		return nil
	}
	var out []frontend.Node
	for _, c := range body.Children() {
		if c.Kind() == "enum_body_declarations" {
			out = append(out, c.Children()...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func modifiersOf(n frontend.Node) binding.Modifier {
	m := frontend.NamedChild(n, "modifiers")
	if m == nil {
		return 0
	}
	var mods binding.Modifier
	for _, tok := range m.Tokens() {
		if bit, ok := binding.ParseModifier(tok); ok {
			mods |= bit
		}
	}
	return mods
}

// nameChild returns the identifier or scoped identifier of a package or
// import declaration.
func nameChild(n frontend.Node) frontend.Node {
	for _, c := range n.Children() {
		if c.Kind() == "identifier" || c.Kind() == "scoped_identifier" {
			return c
		}
	}
	return nil
}

// dotted returns the text of a qualified name without whitespace.
func dotted(n frontend.Node) string {
	return strings.Join(strings.Fields(n.Text()), "")
}

func countDims(d frontend.Node) int {
	if d == nil {
		return 0
	}
	n := 0
	for _, tok := range d.Tokens() {
		if tok == "[" {
			n++
		}
	}
	return n
}

func typeOfVar(v *binding.VariableElement) binding.Type {
	if v == nil {
		return nil
	}
	return v.Type()
}

func elementOf(t binding.Type) *binding.TypeElement {
	switch t := t.(type) {
	case *binding.Declared:
		return t.Element()
	case *binding.TypeVar:
		return elementOf(t.Bound())
	}
	return nil
}
