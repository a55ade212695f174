package javats

import (
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

// expr resolves an expression and records its static type.
func (r *resolver) expr(n frontend.Node, s *scope) binding.Type {
	if n == nil {
		return nil
	}
	t := r.exprType(n, s)
	r.o.SetType(n, t)
	return t
}

func (r *resolver) exprType(n frontend.Node, s *scope) binding.Type {
	switch n.Kind() {
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal",
		"binary_integer_literal", "decimal_floating_point_literal", "hex_floating_point_literal":
		v, err := frontend.DecodeNumber(n.Text())
		if err != nil {
			return nil
		}
		r.o.SetConstant(n, v)
		return r.numberType(v)
	case "true", "false":
		r.o.SetConstant(n, n.Kind() == "true")
		return r.u.Primitive(binding.KindBoolean)
	case "character_literal":
		if c, err := frontend.DecodeChar(n.Text()); err == nil {
			r.o.SetConstant(n, c)
		}
		return r.u.Primitive(binding.KindChar)
	case "string_literal", "text_block":
		if str, err := frontend.DecodeString(n.Text()); err == nil {
			r.o.SetConstant(n, str)
		}
		return r.u.StringType()
	case "null_literal":
		return r.u.Null()
	case "identifier":
		return r.name(n, s)
	case "this":
		if te := s.enclosingType(); te != nil {
			return te.Type()
		}
		return nil
	case "super":
		return superOf(s)
	case "parenthesized_expression":
		for _, c := range n.Children() {
			t := r.expr(c, s)
			r.o.SetConstant(n, r.o.ConstantOf(c))
			return t
		}
		return nil
	case "field_access":
		return r.fieldAccess(n, s)
	case "method_invocation":
		return r.invocation(n, s)
	case "object_creation_expression":
		return r.creation(n, s)
	case "array_creation_expression":
		return r.arrayCreation(n, s)
	case "array_access":
		at := r.expr(n.Field("array"), s)
		r.expr(n.Field("index"), s)
		return componentOf(at)
	case "assignment_expression":
		lt := r.expr(n.Field("left"), s)
		r.expr(n.Field("right"), s)
		return lt
	case "binary_expression":
		return r.binary(n, s)
	case "unary_expression":
		operand := n.Field("operand")
		ot := r.expr(operand, s)
		switch n.Field("operator").Text() {
		case "!":
			return r.u.Primitive(binding.KindBoolean)
		case "-":
			r.o.SetConstant(n, negate(r.o.ConstantOf(operand)))
		case "+":
			r.o.SetConstant(n, r.o.ConstantOf(operand))
		}
		return r.unaryPromotion(ot)
	case "update_expression":
		for _, c := range n.Children() {
			return r.expr(c, s)
		}
		return nil
	case "ternary_expression":
		r.expr(n.Field("condition"), s)
		a := r.expr(n.Field("consequence"), s)
		b := r.expr(n.Field("alternative"), s)
		return r.conditional(a, b)
	case "cast_expression":
		var parts []binding.Type
		for _, tn := range n.Fields("type") {
			parts = append(parts, r.resolveType(tn, s))
		}
		r.expr(n.Field("value"), s)
		switch len(parts) {
		case 0:
			return nil
		case 1:
			return parts[0]
		}
		return r.u.Intersection(parts...)
	case "instanceof_expression":
		r.expr(n.Field("left"), s)
		t := r.resolveType(n.Field("right"), s)
		if name := n.Field("name"); name != nil {
			v := binding.NewVariable(binding.ElemLocalVariable, name.Text(), t, 0, s.owner())
			s.declare(v)
			r.setElement(v, name)
		}
		return r.u.Primitive(binding.KindBoolean)
	case "lambda_expression":
		r.lambda(n, s)
		return nil
	case "method_reference":
		for _, c := range n.Children() {
			if isTypeNode(c) {
				r.resolveType(c, s)
			} else if c.Kind() != "type_arguments" {
				r.expr(c, s)
			}
		}
		return nil
	case "class_literal":
		for _, c := range n.Children() {
			r.resolveType(c, s)
		}
		return r.u.Lookup("java.lang.Class").Type()
	case "switch_expression":
		r.switchBlock(n, s)
		return nil
	case "array_initializer":
		r.arrayInit(n, s, nil)
		return nil
	}
	for _, c := range n.Children() {
		r.expr(c, s)
	}
	return nil
}

func (r *resolver) name(n frontend.Node, s *scope) binding.Type {
	if v := s.lookupVar(n.Text()); v != nil {
		r.o.SetElement(n, v)
		r.o.SetConstant(n, v.ConstantValue())
		return v.Type()
	}
	if te := r.lookupType(n.Text(), s); te != nil {
		r.o.SetElement(n, te)
		return te.Type()
	}
	return nil
}

func (r *resolver) fieldAccess(n frontend.Node, s *scope) binding.Type {
	obj, field := n.Field("object"), n.Field("field")
	var ot binding.Type
	if obj.Kind() == "super" {
		ot = superOf(s)
		r.o.SetType(obj, ot)
	} else {
		ot = r.expr(obj, s)
	}
	if field.Kind() == "this" {
		return ot
	}
	if ot == nil {
		// A package-qualified type name such as java.lang.Math.
		if te := r.u.Lookup(dotted(n)); te != nil {
			r.setElement(te, n, field)
			return te.Type()
		}
		return nil
	}
	if _, ok := ot.(*binding.Array); ok && field.Text() == "length" {
		return r.u.Primitive(binding.KindInt)
	}
	te := elementOf(ot)
	if te == nil {
		return nil
	}
	if f := te.LookupField(field.Text()); f != nil {
		r.setElement(f, n, field)
		r.o.SetConstant(n, f.ConstantValue())
		return f.Type()
	}
	if mt := te.LookupMemberType(field.Text()); mt != nil {
		r.setElement(mt, n, field)
		return mt.Type()
	}
	return nil
}

func (r *resolver) invocation(n frontend.Node, s *scope) binding.Type {
	argc := len(r.args(n.Field("arguments"), s))
	name := n.Field("name")
	obj := n.Field("object")
	var m *binding.ExecutableElement
	switch {
	case obj == nil:
		for cur := s; cur != nil && m == nil; cur = cur.parent {
			if cur.typ != nil {
				m = cur.typ.LookupMethod(name.Text(), argc)
			}
		}
	case obj.Kind() == "super":
		st := superOf(s)
		r.o.SetType(obj, st)
		if te := elementOf(st); te != nil {
			m = te.LookupMethod(name.Text(), argc)
		}
	default:
		if te := elementOf(r.expr(obj, s)); te != nil {
			m = te.LookupMethod(name.Text(), argc)
		}
	}
	if m == nil {
		return nil
	}
	r.setElement(m, n, name)
	return m.ReturnType()
}

func (r *resolver) creation(n frontend.Node, s *scope) binding.Type {
	t := r.resolveType(n.Field("type"), s)
	argc := len(r.args(n.Field("arguments"), s))
	for _, c := range n.Children() {
		switch c.Kind() {
		case "class_body", "argument_list", "type_arguments":
		default:
			if c != n.Field("type") {
				// The outer instance of a qualified creation.
				r.expr(c, s)
			}
		}
	}
	if te := elementOf(t); te != nil {
		if ctor := te.LookupConstructor(argc); ctor != nil {
			r.o.SetElement(n, ctor)
		}
	}
	if body := frontend.NamedChild(n, "class_body"); body != nil {
		r.anonymous(body, t, s)
	}
	return t
}

func (r *resolver) arrayCreation(n frontend.Node, s *scope) binding.Type {
	t := r.resolveType(n.Field("type"), s)
	dims := 0
	for _, d := range n.Fields("dimensions") {
		switch d.Kind() {
		case "dimensions_expr":
			dims++
			for _, c := range d.Children() {
				r.expr(c, s)
			}
		case "dimensions":
			dims += countDims(d)
		}
	}
	at := r.arrayOf(t, dims)
	if v := n.Field("value"); v != nil {
		r.arrayInit(v, s, at)
	}
	return at
}

func (r *resolver) binary(n frontend.Node, s *scope) binding.Type {
	l := r.expr(n.Field("left"), s)
	rt := r.expr(n.Field("right"), s)
	boolean := r.u.Primitive(binding.KindBoolean)
	switch n.Field("operator").Text() {
	case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
		return boolean
	case "+":
		if binding.IsString(l) || binding.IsString(rt) {
			return r.u.StringType()
		}
	case "<<", ">>", ">>>":
		return r.unaryPromotion(l)
	case "&", "|", "^":
		if l == boolean && rt == boolean {
			return boolean
		}
	}
	return r.u.BinaryNumericPromotion(l, rt)
}

func (r *resolver) lambda(n frontend.Node, s *scope) {
	ls := s.child()
	if params := n.Field("parameters"); params != nil {
		switch params.Kind() {
		case "identifier":
			r.lambdaParam(ls, nil, params)
		case "inferred_parameters":
			for _, id := range params.Children() {
				r.lambdaParam(ls, nil, id)
			}
		case "formal_parameters":
			for _, p := range params.Children() {
				t := r.resolveType(p.Field("type"), ls)
				r.lambdaParam(ls, t, p.Field("name"), p)
			}
		}
	}
	body := n.Field("body")
	if body != nil && body.Kind() == "block" {
		r.stmt(body, ls)
		return
	}
	r.expr(body, ls)
}

func (r *resolver) lambdaParam(s *scope, t binding.Type, name frontend.Node, decl ...frontend.Node) {
	if name == nil {
		return
	}
	v := binding.NewVariable(binding.ElemParameter, name.Text(), t, 0, s.owner())
	s.declare(v)
	r.setElement(v, append(decl, name)...)
}

func (r *resolver) args(n frontend.Node, s *scope) []binding.Type {
	if n == nil {
		return nil
	}
	var out []binding.Type
	for _, c := range n.Children() {
		out = append(out, r.expr(c, s))
	}
	return out
}

// initializer resolves a variable initializer against the declared type;
// bare array initializers take that type.
func (r *resolver) initializer(n frontend.Node, s *scope, want binding.Type) binding.Type {
	if n == nil {
		return nil
	}
	if n.Kind() == "array_initializer" {
		r.arrayInit(n, s, want)
		return want
	}
	return r.expr(n, s)
}

func (r *resolver) arrayInit(n frontend.Node, s *scope, t binding.Type) {
	r.o.SetType(n, t)
	comp := componentOf(t)
	for _, c := range n.Children() {
		r.initializer(c, s, comp)
	}
}

func (r *resolver) numberType(v any) binding.Type {
	switch v.(type) {
	case int32:
		return r.u.Primitive(binding.KindInt)
	case int64:
		return r.u.Primitive(binding.KindLong)
	case float32:
		return r.u.Primitive(binding.KindFloat)
	case float64:
		return r.u.Primitive(binding.KindDouble)
	}
	return nil
}

func (r *resolver) unaryPromotion(t binding.Type) binding.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case binding.KindByte, binding.KindShort, binding.KindChar:
		return r.u.Primitive(binding.KindInt)
	}
	return t
}

func (r *resolver) conditional(a, b binding.Type) binding.Type {
	switch {
	case a == b:
		return a
	case a == nil || a == r.u.Null():
		return b
	case b == nil || b == r.u.Null():
		return a
	}
	if p := r.u.BinaryNumericPromotion(a, b); p != nil {
		return p
	}
	return a
}

func superOf(s *scope) binding.Type {
	if te := s.enclosingType(); te != nil {
		return te.Superclass()
	}
	return nil
}

func componentOf(t binding.Type) binding.Type {
	if a, ok := t.(*binding.Array); ok {
		return a.Component()
	}
	return nil
}

func negate(c any) any {
	switch v := c.(type) {
	case int32:
		return -v
	case int64:
		return -v
	case float32:
		return -v
	case float64:
		return -v
	}
	return nil
}
