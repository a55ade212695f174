package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(l *ChildList[Expression]) []string {
	var out []string
	for _, e := range l.Slice() {
		out = append(out, e.(*SimpleName).Identifier())
	}
	return out
}

func TestChildListOperations(t *testing.T) {
	call := NewMethodInvocation().SetName(NewSimpleName("f"))
	args := call.Arguments()
	assert.True(t, args.IsEmpty())

	a, b, c := NewSimpleName("a"), NewSimpleName("b"), NewSimpleName("c")
	args.Add(a, c)
	args.Insert(1, b)
	assert.Equal(t, []string{"a", "b", "c"}, ids(args))
	assert.Equal(t, 1, args.IndexOf(b))
	for _, n := range []*SimpleName{a, b, c} {
		assert.Same(t, call, n.Parent())
	}

	removed := args.Remove(0)
	assert.Same(t, a, removed)
	assert.Nil(t, a.Parent())
	assert.Equal(t, -1, args.IndexOf(a))

	d := NewSimpleName("d")
	args.Set(0, d)
	assert.Nil(t, b.Parent())
	assert.Equal(t, []string{"d", "c"}, ids(args))

	assert.True(t, args.RemoveNode(c))
	assert.False(t, args.RemoveNode(c))
	assert.Equal(t, []string{"d"}, ids(args))

	args.Set(0, nil)
	assert.True(t, args.IsEmpty())
	assert.Nil(t, d.Parent())
}

func TestChildListElementsMoveWithRemove(t *testing.T) {
	call := NewMethodInvocation().SetName(NewSimpleName("f"))
	x := NewSimpleName("x")
	call.Arguments().Add(x)

	x.Remove()
	assert.True(t, call.Arguments().IsEmpty())
	other := NewMethodInvocation().SetName(NewSimpleName("g"))
	other.Arguments().Add(x)
	assert.Same(t, other, x.Parent())
}

func TestChildListRejectsOwnedAndNil(t *testing.T) {
	first := NewArrayInitializer()
	second := NewArrayInitializer()
	n := NewSimpleName("n")
	first.Expressions().Add(n)

	ie := invariantPanic(t, func() { second.Expressions().Add(n) })
	assert.ErrorIs(t, ie, ErrAlreadyOwned)
	assert.Equal(t, KindArrayInitializer, ie.Parent)
	assert.Equal(t, "expressions", ie.Slot)
	assert.True(t, second.Expressions().IsEmpty())

	ie = invariantPanic(t, func() { second.Expressions().Add(nil) })
	assert.ErrorIs(t, ie, ErrNilChild)

	ie = invariantPanic(t, func() { first.Expressions().Get(3) })
	assert.ErrorIs(t, ie, ErrIndexOutOfRange)
	assert.Equal(t, 3, ie.Index)

	ie = invariantPanic(t, func() { first.Expressions().Insert(-1, NewSimpleName("m")) })
	assert.ErrorIs(t, ie, ErrIndexOutOfRange)
}

func TestChildListAllToleratesMutation(t *testing.T) {
	arr := NewArrayInitializer()
	for _, id := range []string{"a", "b", "c"} {
		arr.Expressions().Add(NewSimpleName(id))
	}
	var seen []string
	for _, e := range arr.Expressions().All() {
		id := e.(*SimpleName).Identifier()
		seen = append(seen, id)
		if id == "a" {
			arr.Expressions().Get(1).Remove()
		}
	}
	assert.Equal(t, []string{"a", "c"}, seen)
	assert.Equal(t, 2, arr.Expressions().Len())
}

func TestChildListCopies(t *testing.T) {
	src := NewArrayInitializer()
	src.Expressions().Add(NewSimpleName("a"), NewSimpleName("b"))

	dst := NewArrayInitializer()
	dst.Expressions().Add(NewSimpleName("old"))
	dst.Expressions().CopyFrom(src.Expressions())
	assert.Equal(t, []string{"a", "b"}, ids(dst.Expressions()))
	for i, e := range dst.Expressions().Slice() {
		assert.NotSame(t, src.Expressions().Get(i), e)
		assert.Same(t, dst, e.Parent())
	}

	dst.Expressions().AddCopies(src.Expressions().Slice()...)
	assert.Equal(t, []string{"a", "b", "a", "b"}, ids(dst.Expressions()))
	assert.Equal(t, 2, src.Expressions().Len())

	dst.Expressions().Clear()
	assert.True(t, dst.Expressions().IsEmpty())
}

func TestChildListNestedTraversalMutation(t *testing.T) {
	b := NewBlock()
	for _, id := range []string{"s1", "s2", "s3"} {
		b.Statements().Add(exprStmt(id))
	}
	// The inner traversal of the same list removes s3; the outer one skips it
	// when it gets there.
	var outer []string
	v := &nested{block: b, outer: &outer}
	require.NotPanics(t, func() { b.Accept(v) })
	assert.Equal(t, []string{"s1", "s2"}, outer)
	assert.Equal(t, 2, b.Statements().Len())
}

type nested struct {
	BaseVisitor
	block *Block
	outer *[]string
	depth int
}

func (n *nested) VisitExpressionStatement(s *ExpressionStatement) bool {
	id := s.Expression().(*SimpleName).Identifier()
	if n.depth > 0 {
		if id == "s3" {
			s.Remove()
		}
		return false
	}
	*n.outer = append(*n.outer, id)
	if id == "s1" {
		n.depth++
		n.block.Accept(n)
		n.depth--
	}
	return false
}

func TestChildSlotsTreatTypedNilAsEmpty(t *testing.T) {
	pd := NewPackageDeclaration()
	doc := NewJavadoc()
	pd.SetJavadoc(doc)
	pd.SetJavadoc((*Javadoc)(nil))
	assert.Nil(t, pd.Javadoc())
	assert.Nil(t, doc.Parent())

	unit := NewCompilationUnit(nil, "A.java", "A", "")
	blocks := unit.NativeBlocks()
	assert.Equal(t, -1, blocks.IndexOf(nil))
	ie := invariantPanic(t, func() { blocks.Add((*NativeDeclaration)(nil)) })
	assert.ErrorIs(t, ie, ErrNilChild)

	blocks.AddCopies(nil, NewNativeDeclaration("h", "c"))
	require.Equal(t, 1, blocks.Len())
	assert.Same(t, unit, blocks.Get(0).Parent())
	assert.Zero(t, blocks.IndexOf(blocks.Get(0)))
}
