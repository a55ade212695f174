package astbridge

import (
	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

func (c *Converter) statement(n frontend.Node) (ast.Statement, error) {
	kind := n.Kind()
	if typeDeclarationKinds[kind] {
		d, err := c.typeDeclaration(n)
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewTypeDeclarationStatement(), n).SetDeclaration(d), nil
	}
	switch kind {
	case "block":
		return c.block(n)
	case ";":
		return setPos(ast.NewEmptyStatement(), n), nil
	case "expression_statement":
		children := n.Children()
		if len(children) != 1 {
			return nil, malformed(n, "expression")
		}
		// A switch in statement position parses as an expression.
		if children[0].Kind() == "switch_expression" {
			return c.switchStatement(children[0])
		}
		e, err := c.expression(children[0])
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewExpressionStatement(), n).SetExpression(e), nil
	case "local_variable_declaration":
		return c.localVariables(n)
	case "if_statement":
		return c.ifStatement(n)
	case "while_statement":
		cond, err := c.required(n, "condition")
		if err != nil {
			return nil, err
		}
		body, err := c.body(n)
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewWhileStatement(), n).SetExpression(cond).SetBody(body), nil
	case "do_statement":
		body, err := c.body(n)
		if err != nil {
			return nil, err
		}
		cond, err := c.required(n, "condition")
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewDoStatement(), n).SetBody(body).SetExpression(cond), nil
	case "for_statement":
		return c.forStatement(n)
	case "enhanced_for_statement":
		return c.enhancedFor(n)
	case "return_statement":
		e, err := c.optional(firstChild(n))
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewReturnStatement(), n).SetExpression(e), nil
	case "break_statement":
		bs := setPos(ast.NewBreakStatement(), n)
		if label := firstChild(n); label != nil {
			bs.SetLabel(setPos(ast.NewSimpleName(label.Text()), label))
		}
		return bs, nil
	case "continue_statement":
		cs := setPos(ast.NewContinueStatement(), n)
		if label := firstChild(n); label != nil {
			cs.SetLabel(setPos(ast.NewSimpleName(label.Text()), label))
		}
		return cs, nil
	case "throw_statement":
		child := firstChild(n)
		if child == nil {
			return nil, malformed(n, "expression")
		}
		e, err := c.expression(child)
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewThrowStatement(), n).SetExpression(e), nil
	case "try_statement", "try_with_resources_statement":
		return c.tryStatement(n)
	case "switch_statement", "switch_expression":
		return c.switchStatement(n)
	case "synchronized_statement":
		lock := frontend.NamedChild(n, "parenthesized_expression")
		if lock == nil {
			return nil, malformed(n, "lock expression")
		}
		e, err := c.expression(lock)
		if err != nil {
			return nil, err
		}
		body, err := c.blockField(n, "body")
		if err != nil {
			return nil, err
		}
		return setPos(ast.NewSynchronizedStatement(), n).SetExpression(e).SetBody(body), nil
	case "labeled_statement":
		children := n.Children()
		if len(children) != 2 {
			return nil, malformed(n, "label or statement")
		}
		body, err := c.statement(children[1])
		if err != nil {
			return nil, err
		}
		label := setPos(ast.NewSimpleName(children[0].Text()), children[0])
		return setPos(ast.NewLabeledStatement(), n).SetLabel(label).SetBody(body), nil
	case "assert_statement":
		children := n.Children()
		if len(children) == 0 {
			return nil, malformed(n, "condition")
		}
		as := setPos(ast.NewAssertStatement(), n)
		cond, err := c.expression(children[0])
		if err != nil {
			return nil, err
		}
		as.SetExpression(cond)
		if len(children) > 1 {
			msg, err := c.expression(children[1])
			if err != nil {
				return nil, err
			}
			as.SetMessage(msg)
		}
		return as, nil
	case "explicit_constructor_invocation":
		return c.constructorInvocation(n)
	case "yield_statement":
		return nil, unsupported(n, "yield")
	}
	return nil, &UnknownKindError{Kind: kind, Line: n.Line()}
}

func firstChild(n frontend.Node) frontend.Node {
	if children := n.Children(); len(children) > 0 {
		return children[0]
	}
	return nil
}

func (c *Converter) block(n frontend.Node) (*ast.Block, error) {
	b := setPos(ast.NewBlock(), n)
	for _, s := range n.Children() {
		st, err := c.statement(s)
		if err != nil {
			return nil, err
		}
		b.Statements().Add(st)
	}
	return b, nil
}

// blockField converts the block stored under field, which must be present.
func (c *Converter) blockField(n frontend.Node, field string) (*ast.Block, error) {
	b := n.Field(field)
	if b == nil {
		return nil, malformed(n, field)
	}
	return c.block(b)
}

// body converts the statement under the body field of a loop.
func (c *Converter) body(n frontend.Node) (ast.Statement, error) {
	b := n.Field("body")
	if b == nil {
		return nil, malformed(n, "body")
	}
	return c.statement(b)
}

func (c *Converter) ifStatement(n frontend.Node) (ast.Statement, error) {
	cond, err := c.required(n, "condition")
	if err != nil {
		return nil, err
	}
	thenNode := n.Field("consequence")
	if thenNode == nil {
		return nil, malformed(n, "consequence")
	}
	then, err := c.statement(thenNode)
	if err != nil {
		return nil, err
	}
	is := setPos(ast.NewIfStatement(), n).SetExpression(cond).SetThenStatement(then)
	if elseNode := n.Field("alternative"); elseNode != nil {
		els, err := c.statement(elseNode)
		if err != nil {
			return nil, err
		}
		is.SetElseStatement(els)
	}
	return is, nil
}

// declare binds a declared variable and reserves its name so generated
// temporaries never shadow it.
func (c *Converter) declare(v interface {
	SetVariableElement(*binding.VariableElement)
}, nodes ...frontend.Node) {
	for _, n := range nodes {
		if ve, ok := c.oracle.ElementOf(n).(*binding.VariableElement); ok {
			v.SetVariableElement(ve)
			c.env.Names.Reserve(ve.Name())
			return
		}
	}
}

// fragments converts the declarators of a field or local declaration.
func (c *Converter) fragments(n frontend.Node, declared binding.Type, list *ast.ChildList[*ast.VariableDeclarationFragment]) error {
	for _, d := range n.Fields("declarator") {
		name := d.Field("name")
		if name == nil {
			return malformed(d, "name")
		}
		f := setPos(ast.NewVariableDeclarationFragment(), d).SetName(c.simpleName(name))
		extra := dims(d.Field("dimensions"))
		f.SetExtraDimensions(extra)
		c.declare(f, d, name)
		vt := declared
		if vt != nil && extra > 0 {
			vt = arrayOf(c.env.Universe, vt, extra)
		}
		init, err := c.initializer(d.Field("value"), vt)
		if err != nil {
			return err
		}
		f.SetInitializer(init)
		list.Add(f)
	}
	return nil
}

func arrayOf(u *binding.Universe, t binding.Type, dims int) binding.Type {
	for range dims {
		t = u.ArrayOf(t)
	}
	return t
}

func (c *Converter) localVariables(n frontend.Node) (ast.Statement, error) {
	t, err := c.types.Convert(n.Field("type"))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, malformed(n, "type")
	}
	mods, anns, err := c.modifiers(n)
	if err != nil {
		return nil, err
	}
	vds := setPos(ast.NewVariableDeclarationStatement(), n).SetType(t).SetModifiers(mods)
	for _, a := range anns {
		vds.Annotations().Add(a)
	}
	if err := c.fragments(n, t.TypeMirror(), vds.Fragments()); err != nil {
		return nil, err
	}
	return vds, nil
}

// variableExpression converts a local declaration in a for initializer.
func (c *Converter) variableExpression(n frontend.Node) (ast.Expression, error) {
	t, err := c.types.Convert(n.Field("type"))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, malformed(n, "type")
	}
	vde := setPos(ast.NewVariableDeclarationExpression(), n).SetType(t)
	vde.SetTypeMirror(t.TypeMirror())
	if err := c.fragments(n, t.TypeMirror(), vde.Fragments()); err != nil {
		return nil, err
	}
	return vde, nil
}

func (c *Converter) forStatement(n frontend.Node) (ast.Statement, error) {
	fs := setPos(ast.NewForStatement(), n)
	for _, init := range n.Fields("init") {
		var e ast.Expression
		var err error
		if init.Kind() == "local_variable_declaration" {
			e, err = c.variableExpression(init)
		} else {
			e, err = c.expression(init)
		}
		if err != nil {
			return nil, err
		}
		fs.Initializers().Add(e)
	}
	cond, err := c.optional(n.Field("condition"))
	if err != nil {
		return nil, err
	}
	fs.SetExpression(cond)
	for _, u := range n.Fields("update") {
		e, err := c.expression(u)
		if err != nil {
			return nil, err
		}
		fs.Updaters().Add(e)
	}
	body, err := c.body(n)
	if err != nil {
		return nil, err
	}
	return fs.SetBody(body), nil
}

func (c *Converter) enhancedFor(n frontend.Node) (ast.Statement, error) {
	name := n.Field("name")
	if name == nil {
		return nil, malformed(n, "name")
	}
	t, err := c.types.Convert(n.Field("type"))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, malformed(n, "type")
	}
	mods, anns, err := c.modifiers(n)
	if err != nil {
		return nil, err
	}
	param := setPos(ast.NewSingleVariableDeclaration(), n).SetType(t).SetName(c.simpleName(name)).SetModifiers(mods)
	for _, a := range anns {
		param.Annotations().Add(a)
	}
	param.SetExtraDimensions(dims(n.Field("dimensions")))
	c.declare(param, name)

	iterable, err := c.required(n, "value")
	if err != nil {
		return nil, err
	}
	body, err := c.body(n)
	if err != nil {
		return nil, err
	}
	return setPos(ast.NewEnhancedForStatement(), n).SetParameter(param).SetExpression(iterable).SetBody(body), nil
}

func (c *Converter) tryStatement(n frontend.Node) (ast.Statement, error) {
	body, err := c.blockField(n, "body")
	if err != nil {
		return nil, err
	}
	ts := setPos(ast.NewTryStatement(), n).SetBody(body)
	if res := n.Field("resources"); res != nil {
		for _, r := range res.Children() {
			e, err := c.resource(r)
			if err != nil {
				return nil, err
			}
			ts.Resources().Add(e)
		}
	}
	for _, ch := range n.Children() {
		switch ch.Kind() {
		case "catch_clause":
			cc, err := c.catchClause(ch)
			if err != nil {
				return nil, err
			}
			ts.CatchClauses().Add(cc)
		case "finally_clause":
			b := frontend.NamedChild(ch, "block")
			if b == nil {
				return nil, malformed(ch, "block")
			}
			fin, err := c.block(b)
			if err != nil {
				return nil, err
			}
			ts.SetFinally(fin)
		}
	}
	return ts, nil
}

// resource converts a try resource: a declaration becomes a variable
// declaration expression, a reference to an effectively final variable
// stays an expression.
func (c *Converter) resource(n frontend.Node) (ast.Expression, error) {
	typeNode := n.Field("type")
	if typeNode == nil {
		child := firstChild(n)
		if child == nil {
			return nil, malformed(n, "variable")
		}
		return c.expression(child)
	}
	name := n.Field("name")
	if name == nil {
		return nil, malformed(n, "name")
	}
	t, err := c.types.Convert(typeNode)
	if err != nil {
		return nil, err
	}
	f := setPos(ast.NewVariableDeclarationFragment(), n).SetName(c.simpleName(name))
	c.declare(f, n, name)
	init, err := c.initializer(n.Field("value"), t.TypeMirror())
	if err != nil {
		return nil, err
	}
	f.SetInitializer(init)
	vde := setPos(ast.NewVariableDeclarationExpression(), n).SetType(t)
	vde.SetTypeMirror(t.TypeMirror())
	vde.Fragments().Add(f)
	return vde, nil
}

func (c *Converter) catchClause(n frontend.Node) (*ast.CatchClause, error) {
	p := frontend.NamedChild(n, "catch_formal_parameter")
	if p == nil {
		return nil, malformed(n, "parameter")
	}
	ct := frontend.NamedChild(p, "catch_type")
	name := p.Field("name")
	if ct == nil || name == nil {
		return nil, malformed(p, "type or name")
	}
	t, err := c.types.unionOf(ct)
	if err != nil {
		return nil, err
	}
	mods, anns, err := c.modifiers(p)
	if err != nil {
		return nil, err
	}
	svd := setPos(ast.NewSingleVariableDeclaration(), p).SetType(t).SetName(c.simpleName(name)).SetModifiers(mods)
	for _, a := range anns {
		svd.Annotations().Add(a)
	}
	c.declare(svd, p, name)
	body, err := c.blockField(n, "body")
	if err != nil {
		return nil, err
	}
	return setPos(ast.NewCatchClause(), n).SetException(svd).SetBody(body), nil
}

// switchStatement flattens a switch block: each label becomes a SwitchCase
// followed by the statements of its group.
func (c *Converter) switchStatement(n frontend.Node) (ast.Statement, error) {
	cond, err := c.required(n, "condition")
	if err != nil {
		return nil, err
	}
	ss := setPos(ast.NewSwitchStatement(), n).SetExpression(cond)
	body := n.Field("body")
	if body == nil {
		return nil, malformed(n, "body")
	}
	for _, group := range body.Children() {
		if group.Kind() == "switch_rule" {
			return nil, unsupported(group, "switch rule")
		}
		for _, ch := range group.Children() {
			if ch.Kind() != "switch_label" {
				st, err := c.statement(ch)
				if err != nil {
					return nil, err
				}
				ss.Statements().Add(st)
				continue
			}
			if err := c.switchLabel(ch, ss); err != nil {
				return nil, err
			}
		}
	}
	return ss, nil
}

func (c *Converter) switchLabel(n frontend.Node, ss *ast.SwitchStatement) error {
	exprs := n.Children()
	if len(exprs) == 0 {
		ss.Statements().Add(setPos(ast.NewSwitchCase(), n).SetDefault(true))
		return nil
	}
	for _, e := range exprs {
		ce, err := c.expression(e)
		if err != nil {
			return err
		}
		ss.Statements().Add(setPos(ast.NewSwitchCase(), e).SetExpression(ce))
	}
	return nil
}

func (c *Converter) constructorInvocation(n frontend.Node) (ast.Statement, error) {
	ctor, _ := c.oracle.ElementOf(n).(*binding.ExecutableElement)
	target := n.Field("constructor")
	if target == nil {
		return nil, malformed(n, "constructor")
	}
	if target.Kind() == "this" {
		ci := setPos(ast.NewConstructorInvocation(), n)
		if ctor != nil {
			ci.SetExecutableElement(ctor)
		}
		return ci, c.arguments(n.Field("arguments"), ci.Arguments())
	}
	sci := setPos(ast.NewSuperConstructorInvocation(), n)
	if ctor != nil {
		sci.SetExecutableElement(ctor)
	}
	outer, err := c.optional(n.Field("object"))
	if err != nil {
		return nil, err
	}
	sci.SetExpression(outer)
	return sci, c.arguments(n.Field("arguments"), sci.Arguments())
}
