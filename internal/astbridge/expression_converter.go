package astbridge

import (
	"strings"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

// expression converts an expression node and attaches its resolved type.
// Parentheses are dropped; the tree shape carries the grouping.
func (c *Converter) expression(n frontend.Node) (ast.Expression, error) {
	for n.Kind() == "parenthesized_expression" {
		inner := n.Children()
		if len(inner) != 1 {
			return nil, malformed(n, "expression")
		}
		n = inner[0]
	}
	e, err := c.convertExpression(n)
	if err != nil {
		return nil, err
	}
	if t := c.oracle.TypeOf(n); t != nil {
		e.SetTypeMirror(t)
	}
	return e, nil
}

// required converts the expression in field of n, which must be present.
func (c *Converter) required(n frontend.Node, field string) (ast.Expression, error) {
	child := n.Field(field)
	if child == nil {
		return nil, malformed(n, field)
	}
	return c.expression(child)
}

// optional converts n when it is present.
func (c *Converter) optional(n frontend.Node) (ast.Expression, error) {
	if n == nil {
		return nil, nil
	}
	return c.expression(n)
}

func (c *Converter) convertExpression(n frontend.Node) (ast.Expression, error) {
	kind := n.Kind()
	if literalKinds[kind] {
		return c.literal(n)
	}
	switch kind {
	case "identifier", "scoped_identifier":
		return c.qualifiedName(n), nil
	case "this":
		return setPos(ast.NewThisExpression(), n), nil
	case "field_access":
		return c.fieldAccess(n)
	case "method_invocation":
		return c.invocation(n)
	case "object_creation_expression":
		return c.creation(n)
	case "array_creation_expression":
		return c.arrayCreation(n)
	case "array_initializer":
		return c.arrayInitializer(n)
	case "array_access":
		array, err := c.required(n, "array")
		if err != nil {
			return nil, err
		}
		index, err := c.required(n, "index")
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewArrayAccess(), n).SetArray(array).SetIndex(index), nil
	case "assignment_expression":
		return c.assignment(n)
	case "binary_expression":
		return c.infix(n)
	case "unary_expression":
		op, ok := ast.ParsePrefixOp(tokenOf(n, "operator"))
		if !ok {
			return nil, malformed(n, "operator")
		}
		operand, err := c.required(n, "operand")
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewPrefixExpression(op), n).SetOperand(operand), nil
	case "update_expression":
		return c.update(n)
	case "ternary_expression":
		cond, err := c.required(n, "condition")
		if err != nil {
			return nil, err
		}
		then, err := c.required(n, "consequence")
		if err != nil {
			return nil, err
		}
		els, err := c.required(n, "alternative")
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewConditionalExpression(), n).
			SetExpression(cond).SetThenExpression(then).SetElseExpression(els), nil
	case "cast_expression":
		return c.cast(n)
	case "instanceof_expression":
		if n.Field("name") != nil || n.Field("pattern") != nil {
			return nil, unsupported(n, "instanceof pattern")
		}
		left, err := c.required(n, "left")
		if err != nil {
			return nil, err
		}
		right, err := c.types.Convert(n.Field("right"))
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewInstanceofExpression(), n).SetLeftOperand(left).SetRightOperand(right), nil
	case "lambda_expression":
		return c.lambda(n)
	case "method_reference":
		return c.methodReference(n)
	case "class_literal":
		children := n.Children()
		if len(children) == 0 {
			return nil, malformed(n, "type")
		}
		t, err := c.types.Convert(children[0])
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewTypeLiteral(), n).SetType(t), nil
	case "marker_annotation", "annotation":
		return c.annotation(n)
	case "switch_expression":
		return nil, unsupported(n, "switch expression")
	}
	return nil, &UnknownKindError{Kind: kind, Line: n.Line()}
}

func (c *Converter) literal(n frontend.Node) (ast.Expression, error) {
	u := c.env.Universe
	v := c.oracle.ConstantOf(n)
	var e ast.Expression
	switch n.Kind() {
	case "true", "false":
		e = ast.NewBooleanLiteral(n.Kind() == "true")
		e.SetTypeMirror(u.Primitive(binding.KindBoolean))
	case "null_literal":
		e = ast.NewNullLiteral()
		e.SetTypeMirror(u.Null())
	case "character_literal":
		r, ok := v.(rune)
		if !ok {
			var err error
			if r, err = frontend.DecodeChar(n.Text()); err != nil {
				return nil, errorf(n, "%w", err)
			}
		}
		e = ast.NewCharacterLiteral(r)
		e.SetTypeMirror(u.Primitive(binding.KindChar))
	case "string_literal", "text_block":
		s, ok := v.(string)
		if !ok {
			var err error
			if s, err = frontend.DecodeString(n.Text()); err != nil {
				return nil, errorf(n, "%w", err)
			}
		}
		e = ast.NewStringLiteral(s)
		e.SetTypeMirror(u.StringType())
	default:
		if v == nil {
			var err error
			if v, err = frontend.DecodeNumber(n.Text()); err != nil {
				return nil, errorf(n, "%w", err)
			}
		}
		e = ast.NewNumberLiteral(n.Text(), v)
		e.SetTypeMirror(numberType(u, v))
	}
	e.SetPosition(pos(n))
	return e, nil
}

func numberType(u *binding.Universe, v any) binding.Type {
	switch v.(type) {
	case int64:
		return u.Primitive(binding.KindLong)
	case float32:
		return u.Primitive(binding.KindFloat)
	case float64:
		return u.Primitive(binding.KindDouble)
	}
	return u.Primitive(binding.KindInt)
}

func (c *Converter) simpleName(n frontend.Node) *ast.SimpleName {
	sn := setPos(ast.NewSimpleName(n.Text()), n)
	bind(c.oracle, sn, n)
	return sn
}

// superQualifier reports whether n is Outer.super and returns the Outer
// name.
func (c *Converter) superQualifier(n frontend.Node) (ast.Name, bool) {
	if n == nil || n.Kind() != "field_access" {
		return nil, false
	}
	if f := n.Field("field"); f == nil || f.Kind() != "super" {
		return nil, false
	}
	return c.qualifiedName(n.Field("object")), true
}

func (c *Converter) fieldAccess(n frontend.Node) (ast.Expression, error) {
	obj, field := n.Field("object"), n.Field("field")
	if obj == nil || field == nil {
		return nil, malformed(n, "object or field")
	}
	if field.Kind() == "this" {
		return setPos(ast.NewThisExpression(), n).SetQualifier(c.qualifiedName(obj)), nil
	}
	if obj.Kind() == "super" {
		return setPos(ast.NewSuperFieldAccess(), n).SetName(c.simpleName(field)), nil
	}
	if q, ok := c.superQualifier(obj); ok {
		return setPos(ast.NewSuperFieldAccess(), n).SetQualifier(q).SetName(c.simpleName(field)), nil
	}
	if isNameChain(n) {
		return c.qualifiedName(n), nil
	}
	recv, err := c.expression(obj)
	if err != nil {
		return nil, err
	}
	return setPos(ast.NewFieldAccess(), n).SetExpression(recv).SetName(c.simpleName(field)), nil
}

func (c *Converter) arguments(n frontend.Node, list *ast.ChildList[ast.Expression]) error {
	if n == nil {
		return nil
	}
	for _, a := range n.Children() {
		e, err := c.expression(a)
		if err != nil {
			return err
		}
		list.Add(e)
	}
	return nil
}

func (c *Converter) invocation(n frontend.Node) (ast.Expression, error) {
	name := n.Field("name")
	if name == nil {
		return nil, malformed(n, "name")
	}
	m, _ := c.oracle.ElementOf(n).(*binding.ExecutableElement)
	obj := n.Field("object")

	q, isSuper := c.superQualifier(obj)
	if obj != nil && obj.Kind() == "super" {
		isSuper = true
	}
	if isSuper {
		smi := setPos(ast.NewSuperMethodInvocation(), n).SetQualifier(q).SetName(c.simpleName(name))
		if m != nil {
			smi.SetExecutableElement(m)
		}
		return smi, c.arguments(n.Field("arguments"), smi.Arguments())
	}

	mi := setPos(ast.NewMethodInvocation(), n).SetName(c.simpleName(name))
	if obj != nil {
		recv, err := c.expression(obj)
		if err != nil {
			return nil, err
		}
		mi.SetExpression(recv)
	}
	if m != nil {
		mi.SetExecutableElement(m)
	}
	return mi, c.arguments(n.Field("arguments"), mi.Arguments())
}

func (c *Converter) creation(n frontend.Node) (ast.Expression, error) {
	typeNode := n.Field("type")
	t, err := c.types.Convert(typeNode)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, malformed(n, "type")
	}
	cic := setPos(ast.NewClassInstanceCreation(), n).SetType(t)
	if ctor, ok := c.oracle.ElementOf(n).(*binding.ExecutableElement); ok {
		cic.SetExecutableElement(ctor)
	}
	for _, ch := range n.Children() {
		switch ch.Kind() {
		case "argument_list", "type_arguments":
		case "class_body":
			anon, err := c.anonymousClass(ch)
			if err != nil {
				return nil, err
			}
			cic.SetAnonymousClassDeclaration(anon)
		default:
			if ch == typeNode {
				continue
			}
			outer, err := c.expression(ch)
			if err != nil {
				return nil, err
			}
			cic.SetExpression(outer)
		}
	}
	return cic, c.arguments(n.Field("arguments"), cic.Arguments())
}

func (c *Converter) arrayCreation(n frontend.Node) (ast.Expression, error) {
	elem, err := c.types.Convert(n.Field("type"))
	if err != nil {
		return nil, err
	}
	if elem == nil {
		return nil, malformed(n, "type")
	}
	ac := setPos(ast.NewArrayCreation(), n)
	total := 0
	for _, d := range n.Fields("dimensions") {
		switch d.Kind() {
		case "dimensions_expr":
			total++
			for _, e := range d.Children() {
				dim, err := c.expression(e)
				if err != nil {
					return nil, err
				}
				ac.Dimensions().Add(dim)
			}
		case "dimensions":
			total += dims(d)
		}
	}
	at, ok := c.types.wrapArray(elem, total, n).(*ast.ArrayType)
	if !ok {
		return nil, malformed(n, "dimensions")
	}
	if m := c.oracle.TypeOf(n); m != nil {
		at.SetTypeMirror(m)
	}
	ac.SetType(at)
	if v := n.Field("value"); v != nil {
		init, err := c.arrayInitializer(v)
		if err != nil {
			return nil, err
		}
		ac.SetInitializer(init)
	}
	return ac, nil
}

func (c *Converter) arrayInitializer(n frontend.Node) (*ast.ArrayInitializer, error) {
	ai := setPos(ast.NewArrayInitializer(), n)
	if t := c.oracle.TypeOf(n); t != nil {
		ai.SetTypeMirror(t)
	}
	for _, ch := range n.Children() {
		e, err := c.expression(ch)
		if err != nil {
			return nil, err
		}
		ai.Expressions().Add(e)
	}
	return ai, nil
}

// initializer converts a variable initializer; bare array initializers take
// the declared type.
func (c *Converter) initializer(n frontend.Node, declared binding.Type) (ast.Expression, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind() == "array_initializer" {
		ai, err := c.arrayInitializer(n)
		if err != nil {
			return nil, err
		}
		if ai.TypeMirror() == nil && declared != nil {
			ai.SetTypeMirror(declared)
		}
		return ai, nil
	}
	return c.expression(n)
}

func (c *Converter) assignment(n frontend.Node) (ast.Expression, error) {
	op, ok := ast.ParseAssignOp(tokenOf(n, "operator"))
	if !ok {
		return nil, malformed(n, "operator")
	}
	lhs, err := c.required(n, "left")
	if err != nil {
		return nil, err
	}
	rhs, err := c.required(n, "right")
	if err != nil {
		return nil, err
	}
	return setPos(ast.NewAssignment(op), n).SetLeftHandSide(lhs).SetRightHandSide(rhs), nil
}

// infix converts a binary expression. A left operand with the same
// operator and type is flattened into one extended operand list.
func (c *Converter) infix(n frontend.Node) (ast.Expression, error) {
	text := tokenOf(n, "operator")
	op, ok := ast.ParseInfixOp(text)
	if !ok {
		return nil, malformed(n, "operator")
	}
	ie := setPos(ast.NewInfixExpression(op), n)
	for _, operand := range c.operands(n, text) {
		e, err := c.expression(operand)
		if err != nil {
			return nil, err
		}
		ie.Operands().Add(e)
	}
	return ie, nil
}

func (c *Converter) operands(n frontend.Node, op string) []frontend.Node {
	left, right := n.Field("left"), n.Field("right")
	if left == nil || right == nil {
		return nil
	}
	if left.Kind() == "binary_expression" && tokenOf(left, "operator") == op &&
		c.oracle.TypeOf(left) == c.oracle.TypeOf(n) {
		return append(c.operands(left, op), right)
	}
	return []frontend.Node{left, right}
}

func (c *Converter) update(n frontend.Node) (ast.Expression, error) {
	children := n.Children()
	if len(children) != 1 {
		return nil, malformed(n, "operand")
	}
	operand, err := c.expression(children[0])
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(n.Text())
	if strings.HasPrefix(text, "++") || strings.HasPrefix(text, "--") {
		op, _ := ast.ParsePrefixOp(text[:2])
		return setPos(ast.NewPrefixExpression(op), n).SetOperand(operand), nil
	}
	op, ok := ast.ParsePostfixOp(text[len(text)-2:])
	if !ok {
		return nil, malformed(n, "operator")
	}
	return setPos(ast.NewPostfixExpression(op), n).SetOperand(operand), nil
}

func (c *Converter) cast(n frontend.Node) (ast.Expression, error) {
	typeNodes := n.Fields("type")
	var t ast.Type
	switch len(typeNodes) {
	case 0:
		return nil, malformed(n, "type")
	case 1:
		var err error
		if t, err = c.types.Convert(typeNodes[0]); err != nil {
			return nil, err
		}
	default:
		it := setPos(ast.NewIntersectionType(), n)
		var mirrors []binding.Type
		for _, tn := range typeNodes {
			part, err := c.types.Convert(tn)
			if err != nil {
				return nil, err
			}
			it.Types().Add(part)
			mirrors = append(mirrors, part.TypeMirror())
		}
		it.SetTypeMirror(c.env.Universe.Intersection(mirrors...))
		t = it
	}
	value, err := c.required(n, "value")
	if err != nil {
		return nil, err
	}
	return setPos(ast.NewCastExpression(), n).SetType(t).SetExpression(value), nil
}

func (c *Converter) lambda(n frontend.Node) (ast.Expression, error) {
	if !c.env.SupportsLambdas() {
		return nil, unsupported(n, "lambda expression below source level 1.8")
	}
	le := setPos(ast.NewLambdaExpression(), n)
	if params := n.Field("parameters"); params != nil {
		switch params.Kind() {
		case "identifier":
			le.Parameters().Add(c.fragment(params))
		case "inferred_parameters":
			for _, id := range params.Children() {
				le.Parameters().Add(c.fragment(id))
			}
		case "formal_parameters":
			for _, p := range params.Children() {
				svd, err := c.parameter(p)
				if err != nil {
					return nil, err
				}
				if svd != nil {
					le.Parameters().Add(svd)
				}
			}
		}
	}
	body := n.Field("body")
	if body == nil {
		return nil, malformed(n, "body")
	}
	if body.Kind() == "block" {
		b, err := c.block(body)
		if err != nil {
			return nil, err
		}
		le.SetBody(b)
		return le, nil
	}
	e, err := c.expression(body)
	if err != nil {
		return nil, err
	}
	le.SetBody(e)
	return le, nil
}

// fragment declares an untyped variable, such as an inferred lambda
// parameter.
func (c *Converter) fragment(name frontend.Node) *ast.VariableDeclarationFragment {
	f := setPos(ast.NewVariableDeclarationFragment(), name).SetName(c.simpleName(name))
	c.declare(f, name)
	return f
}

func (c *Converter) methodReference(n frontend.Node) (ast.Expression, error) {
	if !c.env.SupportsLambdas() {
		return nil, unsupported(n, "method reference below source level 1.8")
	}
	children := n.Children()
	if len(children) == 0 {
		return nil, malformed(n, "qualifier")
	}
	first, last := children[0], children[len(children)-1]
	m, _ := c.oracle.ElementOf(n).(*binding.ExecutableElement)

	var ref ast.MethodReference
	switch {
	case frontend.HasToken(n, "new"):
		t, err := c.types.Convert(first)
		if err != nil {
			return nil, err
		}
		ref = setPos(ast.NewCreationReference(), n).SetType(t)
	case first.Kind() == "super":
		ref = setPos(ast.NewSuperMethodReference(), n).SetName(c.simpleName(last))
	case c.isTypeReference(first):
		t, err := c.referenceType(first)
		if err != nil {
			return nil, err
		}
		ref = setPos(ast.NewTypeMethodReference(), n).SetType(t).SetName(c.simpleName(last))
	default:
		if q, ok := c.superQualifier(first); ok {
			ref = setPos(ast.NewSuperMethodReference(), n).SetQualifier(q).SetName(c.simpleName(last))
			break
		}
		recv, err := c.expression(first)
		if err != nil {
			return nil, err
		}
		ref = setPos(ast.NewExpressionMethodReference(), n).SetExpression(recv).SetName(c.simpleName(last))
	}
	if m != nil {
		ref.SetExecutableElement(m)
	}
	return ref, nil
}

// isTypeReference reports whether the qualifier of a method reference names
// a type rather than a value.
func (c *Converter) isTypeReference(n frontend.Node) bool {
	if typeKinds[n.Kind()] {
		return true
	}
	if !isNameChain(n) {
		return false
	}
	_, ok := c.oracle.ElementOf(n).(*binding.TypeElement)
	return ok
}

// referenceType converts the type qualifier of a method reference. Dotted
// qualifiers parse as expressions and become simple types over the name.
func (c *Converter) referenceType(n frontend.Node) (ast.Type, error) {
	if typeKinds[n.Kind()] {
		return c.types.Convert(n)
	}
	st := setPos(ast.NewSimpleType(), n).SetName(c.qualifiedName(n))
	if te, ok := c.oracle.ElementOf(n).(*binding.TypeElement); ok {
		st.SetTypeMirror(te.Type())
	}
	return st, nil
}

func (c *Converter) annotation(n frontend.Node) (ast.Annotation, error) {
	nameNode := n.Field("name")
	if nameNode == nil {
		return nil, malformed(n, "name")
	}
	name := c.qualifiedName(nameNode)
	if name.Element() == nil {
		if te := c.env.Universe.LookupSimple(nil, dotted(nameNode)); te != nil {
			name.Rebind(te)
		}
	}
	var an ast.Annotation
	args := n.Field("arguments")
	switch {
	case n.Kind() == "marker_annotation" || args == nil || len(args.Children()) == 0:
		an = setPos(ast.NewMarkerAnnotation(), n).SetTypeName(name)
	case args.Children()[0].Kind() == "element_value_pair":
		na := setPos(ast.NewNormalAnnotation(), n).SetTypeName(name)
		for _, pair := range args.Children() {
			key := pair.Field("key")
			if key == nil {
				return nil, malformed(pair, "key")
			}
			value, err := c.elementValue(pair.Field("value"))
			if err != nil {
				return nil, err
			}
			na.Values().Add(setPos(ast.NewMemberValuePair(), pair).SetName(c.simpleName(key)).SetValue(value))
		}
		an = na
	default:
		value, err := c.elementValue(args.Children()[0])
		if err != nil {
			return nil, err
		}
		an = setPos(ast.NewSingleMemberAnnotation(), n).SetTypeName(name).SetValue(value)
	}
	if te, ok := name.Element().(*binding.TypeElement); ok {
		an.SetTypeMirror(te.Type())
	}
	return an, nil
}

func (c *Converter) elementValue(n frontend.Node) (ast.Expression, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind() != "element_value_array_initializer" {
		return c.expression(n)
	}
	ai := setPos(ast.NewArrayInitializer(), n)
	for _, ch := range n.Children() {
		e, err := c.elementValue(ch)
		if err != nil {
			return nil, err
		}
		ai.Expressions().Add(e)
	}
	return ai, nil
}

// tokenOf returns the text of field of n, usually an operator token.
func tokenOf(n frontend.Node, field string) string {
	if f := n.Field(field); f != nil {
		return f.Text()
	}
	return ""
}
