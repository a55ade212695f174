package javats

import (
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

func (r *resolver) stmt(n frontend.Node, s *scope) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case "block", "constructor_body":
		bs := s.child()
		for _, c := range n.Children() {
			r.stmt(c, bs)
		}
	case "local_variable_declaration":
		r.locals(n, s)
	case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
		var enclosing binding.Element = r.pkg
		if te := s.enclosingType(); te != nil {
			enclosing = te
		}
		tds := r.declareType(n, enclosing, s)
		s.types[tds[0].elem.Name()] = tds[0].elem
		r.complete(tds)
	case "for_statement":
		fs := s.child()
		for _, init := range n.Fields("init") {
			r.stmt(init, fs)
		}
		r.expr(n.Field("condition"), fs)
		for _, u := range n.Fields("update") {
			r.expr(u, fs)
		}
		r.stmt(n.Field("body"), fs)
	case "enhanced_for_statement":
		fs := s.child()
		iterable := r.expr(n.Field("value"), fs)
		t := r.resolveType(n.Field("type"), fs)
		if t == nil {
			t = componentOf(iterable)
			r.o.SetType(n.Field("type"), t)
		}
		name := n.Field("name")
		v := binding.NewVariable(binding.ElemLocalVariable, name.Text(),
			r.arrayOf(t, countDims(n.Field("dimensions"))), modifiersOf(n), s.owner())
		fs.declare(v)
		r.setElement(v, name)
		r.stmt(n.Field("body"), fs)
	case "try_statement":
		r.stmt(n.Field("body"), s)
		r.handlers(n, s)
	case "try_with_resources_statement":
		ts := s.child()
		if res := n.Field("resources"); res != nil {
			for _, rn := range res.Children() {
				r.resource(rn, ts)
			}
		}
		r.stmt(n.Field("body"), ts)
		r.handlers(n, s)
	case "switch_expression", "switch_statement":
		r.switchBlock(n, s)
	case "labeled_statement":
		for _, c := range n.Children() {
			if c.Kind() != "identifier" {
				r.stmt(c, s)
			}
		}
	case "explicit_constructor_invocation":
		r.constructorCall(n, s)
	case "break_statement", "continue_statement":
		// The identifier child is a label.
	case "if_statement", "while_statement", "do_statement", "synchronized_statement",
		"expression_statement", "return_statement", "throw_statement", "assert_statement",
		"yield_statement":
		for _, c := range n.Children() {
			r.stmt(c, s)
		}
	default:
		r.expr(n, s)
	}
}

func (r *resolver) locals(n frontend.Node, s *scope) {
	typeNode := n.Field("type")
	t := r.resolveType(typeNode, s)
	mods := modifiersOf(n)
	for _, d := range n.Fields("declarator") {
		name := d.Field("name")
		vt := r.arrayOf(t, countDims(d.Field("dimensions")))
		value := d.Field("value")
		init := r.initializer(value, s, vt)
		if vt == nil {
			vt = init
			r.o.SetType(typeNode, vt)
		}
		v := binding.NewVariable(binding.ElemLocalVariable, name.Text(), vt, mods, s.owner())
		if value != nil && mods.Has(binding.ModFinal) {
			v.SetConstantValue(r.o.ConstantOf(value))
		}
		s.declare(v)
		r.setElement(v, d, name)
	}
}

func (r *resolver) resource(n frontend.Node, s *scope) {
	typeNode := n.Field("type")
	if typeNode == nil {
		for _, c := range n.Children() {
			r.expr(c, s)
		}
		return
	}
	t := r.resolveType(typeNode, s)
	if init := r.initializer(n.Field("value"), s, t); t == nil {
		t = init
	}
	name := n.Field("name")
	v := binding.NewVariable(binding.ElemResourceVariable, name.Text(), t, modifiersOf(n), s.owner())
	s.declare(v)
	r.setElement(v, n, name)
}

// handlers resolves the catch clauses and finally block of a try.
func (r *resolver) handlers(n frontend.Node, s *scope) {
	for _, c := range n.Children() {
		switch c.Kind() {
		case "catch_clause":
			cs := s.child()
			if p := frontend.NamedChild(c, "catch_formal_parameter"); p != nil {
				var alts []binding.Type
				if ct := frontend.NamedChild(p, "catch_type"); ct != nil {
					for _, t := range ct.Children() {
						alts = append(alts, r.resolveType(t, cs))
					}
				}
				var t binding.Type
				switch len(alts) {
				case 0:
				case 1:
					t = alts[0]
				default:
					t = r.u.Union(alts...)
				}
				name := p.Field("name")
				v := binding.NewVariable(binding.ElemExceptionParameter, name.Text(), t, modifiersOf(p), s.owner())
				cs.declare(v)
				r.setElement(v, p, name)
			}
			r.stmt(c.Field("body"), cs)
		case "finally_clause":
			for _, b := range c.Children() {
				r.stmt(b, s)
			}
		}
	}
}

func (r *resolver) switchBlock(n frontend.Node, s *scope) {
	st := r.expr(n.Field("condition"), s)
	var enum *binding.TypeElement
	if te := elementOf(st); te != nil && te.ElementKind() == binding.ElemEnum {
		enum = te
	}
	body := n.Field("body")
	if body == nil {
		return
	}
	bs := s.child()
	for _, group := range body.Children() {
		for _, c := range group.Children() {
			if c.Kind() != "switch_label" {
				r.stmt(c, bs)
				continue
			}
			for _, label := range c.Children() {
				if enum != nil && label.Kind() == "identifier" {
					if f := enum.LookupField(label.Text()); f != nil {
						r.o.SetElement(label, f)
						r.o.SetType(label, f.Type())
						continue
					}
				}
				r.expr(label, bs)
			}
		}
	}
}

func (r *resolver) constructorCall(n frontend.Node, s *scope) {
	argTypes := r.args(n.Field("arguments"), s)
	r.expr(n.Field("object"), s)
	te := s.enclosingType()
	if c := n.Field("constructor"); c != nil && c.Kind() == "super" && te != nil {
		te = elementOf(te.Superclass())
	}
	if te == nil {
		return
	}
	if ctor := te.LookupConstructor(len(argTypes)); ctor != nil {
		r.o.SetElement(n, ctor)
	}
}
