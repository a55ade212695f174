package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/position"
)

func invariantPanic(t *testing.T, fn func()) *InvariantError {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	ie, ok := got.(*InvariantError)
	require.Truef(t, ok, "expected *InvariantError panic, got %#v", got)
	return ie
}

func exprStmt(id string) *ExpressionStatement {
	return NewExpressionStatement().SetExpression(NewSimpleName(id))
}

func TestEveryKindHasFactory(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 93)
	for _, k := range kinds {
		f, ok := newNodeFuncs[k]
		if !assert.Truef(t, ok, "no factory for %s", k) {
			continue
		}
		n := f()
		assert.Equal(t, k, n.Kind())
		assert.Nil(t, n.Parent())
		assert.Equal(t, position.NoLine, n.LineNumber(), "%s", k)
	}
}

func TestSingleOwnerForAllKinds(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			n := newNodeFuncs[k]()
			first := NewLambdaExpression().SetBody(n)
			require.Same(t, first, n.Parent())

			ie := invariantPanic(t, func() { NewLambdaExpression().SetBody(n) })
			assert.ErrorIs(t, ie, ErrAlreadyOwned)
			assert.Equal(t, k, ie.Child)

			ie = invariantPanic(t, func() { NewTagElement("@see").Fragments().Add(n) })
			assert.ErrorIs(t, ie, ErrAlreadyOwned)

			// Still owned by the first parent.
			assert.Same(t, first, n.Parent())
			assert.Same(t, n, first.Body())

			n.Remove()
			assert.Nil(t, n.Parent())
			assert.Nil(t, first.Body())
			tag := NewTagElement("@see")
			tag.Fragments().Add(n)
			assert.Same(t, tag, n.Parent())
		})
	}
}

func TestSetClearsPreviousOwner(t *testing.T) {
	ret := NewReturnStatement()
	a := NewSimpleName("a")
	b := NewSimpleName("b")

	ret.SetExpression(a)
	assert.Same(t, ret, a.Parent())

	ret.SetExpression(b)
	assert.Nil(t, a.Parent())
	assert.Same(t, ret, b.Parent())
	assert.Same(t, b, ret.Expression())

	// a is free again and can be attached elsewhere.
	NewThrowStatement().SetExpression(a)

	ret.SetExpression(b)
	assert.Same(t, ret, b.Parent(), "setting the same child again is a no-op")

	var typedNil *SimpleName
	ret.SetExpression(typedNil)
	assert.Nil(t, ret.Expression())
	assert.Nil(t, b.Parent())
}

func TestReplaceWith(t *testing.T) {
	block := NewBlock()
	s1, s2, s3 := exprStmt("a"), exprStmt("b"), exprStmt("c")
	block.Statements().Add(s1, s2)

	s1.ReplaceWith(s3)
	assert.Nil(t, s1.Parent())
	assert.Same(t, block, s3.Parent())
	assert.Equal(t, []Statement{s3, s2}, block.Statements().Slice())

	x := NewSimpleName("x")
	asg := NewAssignment(AssignPlain).SetLeftHandSide(x).SetRightHandSide(NewSimpleName("y"))
	lit := NewNumberLiteral("1", int32(1))
	x.ReplaceWith(lit)
	assert.Same(t, lit, asg.LeftHandSide())
	assert.Nil(t, x.Parent())

	s2.ReplaceWith(nil)
	assert.Equal(t, 1, block.Statements().Len())

	ie := invariantPanic(t, func() { NewSimpleName("free").ReplaceWith(NewSimpleName("other")) })
	assert.ErrorIs(t, ie, ErrUnparentedNode)
}

func TestReplaceWithWrongKind(t *testing.T) {
	ret := NewReturnStatement().SetExpression(NewSimpleName("a"))
	ie := invariantPanic(t, func() { ret.Expression().ReplaceWith(NewBlock()) })
	assert.ErrorIs(t, ie, ErrWrongChildType)
	assert.Equal(t, KindReturnStatement, ie.Parent)
	assert.Equal(t, "expression", ie.Slot)
	assert.Contains(t, ie.Error(), "ReturnStatement.expression")
}

func TestCopyIsDeepAndUnowned(t *testing.T) {
	u := binding.NewUniverse()
	intType := u.Primitive(binding.KindInt)
	v := binding.NewVariable(binding.ElemLocalVariable, "i", intType, 0, nil)

	name := NewSimpleName("i")
	name.Rebind(v)
	cond := NewInfixExpression(InfixLess)
	cond.Operands().Add(name, NewNumberLiteral("10", int32(10)))
	body := NewBlock()
	body.Statements().Add(exprStmt("work"))
	loop := NewWhileStatement().SetExpression(cond).SetBody(body)
	loop.SetPosition(position.SourcePosition{Start: 5, Length: 20, Line: 3})
	NewBlock().Statements().Add(loop)

	c := CopyOf(loop)
	require.NotSame(t, loop, c)
	assert.Nil(t, c.Parent())
	assert.Equal(t, loop.Position(), c.Position())
	assert.Equal(t, DebugString(loop), DebugString(c))

	cc := c.Expression().(*InfixExpression)
	require.NotSame(t, cond, cc)
	assert.Same(t, c, cc.Parent())
	cn := cc.Operands().Get(0).(*SimpleName)
	assert.NotSame(t, name, cn)
	assert.Same(t, v, cn.Element(), "bindings are shared")
	assert.Equal(t, intType, cn.TypeMirror())

	cc.Operands().Add(NewNumberLiteral("2", int32(2)))
	c.Body().(*Block).Statements().Clear()
	assert.Equal(t, 2, cond.Operands().Len())
	assert.Equal(t, 1, body.Statements().Len())
}

func TestCopyEveryKind(t *testing.T) {
	for _, k := range Kinds() {
		n := newNodeFuncs[k]()
		c := n.Copy()
		assert.Equal(t, k, c.Kind())
		assert.NotSame(t, n, c)
		assert.Nil(t, c.Parent())
	}
}

func TestLinkCopyFrom(t *testing.T) {
	src := NewReturnStatement().SetExpression(NewSimpleName("a"))
	dst := NewReturnStatement()
	dst.expression.CopyFrom(&src.expression)
	require.NotNil(t, dst.Expression())
	assert.NotSame(t, src.Expression(), dst.Expression())
	assert.Same(t, dst, dst.Expression().Parent())
}

func TestFindAncestor(t *testing.T) {
	unit := NewCompilationUnit(nil, "A.java", "A", "")
	td := NewTypeDeclaration().SetName(NewSimpleName("A"))
	m := NewMethodDeclaration().SetName(NewSimpleName("run")).SetBody(NewBlock())
	td.BodyDeclarations().Add(m)
	unit.Types().Add(td)
	ret := NewReturnStatement()
	m.Body().Statements().Add(ret)

	got, ok := FindAncestor[*MethodDeclaration](ret)
	require.True(t, ok)
	assert.Same(t, m, got)
	assert.Same(t, unit, EnclosingUnit(ret))

	_, ok = FindAncestor[*LambdaExpression](ret)
	assert.False(t, ok)
	assert.Nil(t, EnclosingUnit(NewBlock()))
}

func TestChildrenOrder(t *testing.T) {
	cond := NewConditionalExpression().
		SetExpression(NewSimpleName("a")).
		SetThenExpression(NewSimpleName("b")).
		SetElseExpression(NewSimpleName("c"))
	var ids []string
	for _, c := range Children(cond) {
		ids = append(ids, c.(*SimpleName).Identifier())
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestRebind(t *testing.T) {
	u := binding.NewUniverse()
	obj := u.Lookup("java.lang.Object")
	toString := obj.LookupMethod("toString", 0)
	require.NotNil(t, toString)

	inv := NewMethodInvocation().SetName(NewSimpleName("foo"))
	inv.RebindMethod(toString)
	assert.Same(t, toString, inv.ExecutableElement())
	assert.Equal(t, u.StringType(), inv.TypeMirror())
	assert.Same(t, toString, inv.Name().Element())

	runnable := u.Lookup("java.lang.Runnable")
	run := binding.NewMethod(binding.ElemMethod, "run", u.Void(), binding.ModPublic|binding.ModAbstract, runnable)
	lambda := NewLambdaExpression().SetBody(NewBlock())
	lambda.Rebind(runnable.DeclaredType(), run)
	assert.Same(t, run, lambda.Descriptor())
	assert.Equal(t, runnable.DeclaredType(), lambda.TypeMirror())

	cast := NewCastExpression()
	cast.Rebind(u.ObjectType())
	assert.Equal(t, u.ObjectType(), cast.TypeMirror())
}

func TestConstantValues(t *testing.T) {
	u := binding.NewUniverse()
	c := binding.NewVariable(binding.ElemField, "MAX", u.Primitive(binding.KindInt), binding.ModStatic|binding.ModFinal, nil)
	c.SetConstantValue(int32(7))
	name := NewSimpleName("MAX")
	name.Rebind(c)

	assert.Equal(t, int32(7), name.ConstantValue())
	assert.Equal(t, true, NewBooleanLiteral(true).ConstantValue())
	assert.Equal(t, 'x', NewCharacterLiteral('x').ConstantValue())
	assert.Equal(t, "s", NewStringLiteral("s").ConstantValue())
	assert.Equal(t, int64(3), NewNumberLiteral("3L", int64(3)).ConstantValue())
	assert.Nil(t, NewNullLiteral().ConstantValue())
	assert.Nil(t, NewMethodInvocation().ConstantValue())
}

func TestInvariantErrorMessages(t *testing.T) {
	err := &InvariantError{Err: ErrIndexOutOfRange, Op: "index", Parent: KindBlock, Slot: "statements", Index: 4}
	assert.Equal(t, "ast: index Block.statements[4]: child index out of range", err.Error())
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	err = &InvariantError{Err: ErrAlreadyOwned, Op: "set", Parent: KindBlock, Slot: "statements", Child: KindSimpleName}
	assert.Equal(t, "ast: set Block.statements: node already has an owner (SimpleName)", err.Error())
}
