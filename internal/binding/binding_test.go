package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveSingletons(t *testing.T) {
	u := NewUniverse()

	intType, ok := u.PrimitiveByName("int")
	require.True(t, ok)
	assert.Same(t, u.Primitive(KindInt), intType)
	assert.Equal(t, "int", intType.String())
	assert.True(t, intType.Kind().IsIntegral())

	_, ok = u.PrimitiveByName("Integer")
	assert.False(t, ok)

	assert.Equal(t, KindVoid, u.Void().Kind())
	assert.Equal(t, KindNull, u.Null().Kind())
	assert.False(t, KindVoid.IsPrimitive())
	assert.False(t, KindBoolean.IsNumeric())
}

func TestArrayTypesAreCanonical(t *testing.T) {
	u := NewUniverse()

	a := u.ArrayOf(u.Primitive(KindInt))
	assert.Same(t, a, u.ArrayOf(u.Primitive(KindInt)))

	aa := u.ArrayOf(a)
	assert.Equal(t, "int[][]", aa.String())
	assert.Equal(t, 2, Dimensions(aa))
	assert.Equal(t, 0, Dimensions(u.StringType()))
}

func TestTypeElements(t *testing.T) {
	u := NewUniverse()
	pkg := u.Package("com.example")

	foo := u.NewType(pkg, "Foo", ElemClass, ModPublic|ModFinal)
	inner := u.NewType(foo, "Inner", ElemClass, ModStatic)

	assert.Equal(t, "com.example.Foo", foo.QualifiedName())
	assert.Equal(t, "com.example.Foo.Inner", inner.QualifiedName())
	assert.Same(t, inner, foo.LookupMemberType("Inner"))
	assert.Same(t, foo, u.Lookup("com.example.Foo"))
	assert.Same(t, foo, u.NewType(pkg, "Foo", ElemClass, 0))
	assert.Same(t, foo, u.LookupSimple(pkg, "Foo"))
	assert.Same(t, u.Lookup("java.lang.String"), u.LookupSimple(pkg, "String"))
	assert.Nil(t, u.LookupSimple(pkg, "Missing"))

	assert.Equal(t, u.ObjectType(), foo.Superclass())
	assert.Equal(t, "public final", foo.Modifiers().String())
	assert.True(t, foo.ElementKind().IsType())
}

func TestMemberLookup(t *testing.T) {
	u := NewUniverse()
	pkg := u.Package("")

	base := u.NewType(pkg, "Base", ElemClass, 0)
	f := NewVariable(ElemField, "count", u.Primitive(KindInt), ModStatic|ModFinal, base)
	f.SetConstantValue(int32(3))
	m := NewMethod(ElemMethod, "format", u.StringType(), 0, base)
	m.AddParameter("fmt", u.StringType())
	m.AddParameter("args", u.ArrayOf(u.ObjectType()))
	m.SetVarargs(true)

	derived := u.NewType(pkg, "Derived", ElemClass, 0)
	derived.SetSuperclass(base.DeclaredType())

	assert.Same(t, f, derived.LookupField("count"))
	assert.Equal(t, int32(3), derived.LookupField("count").ConstantValue())
	assert.Same(t, m, derived.LookupMethod("format", 1))
	assert.Same(t, m, derived.LookupMethod("format", 4))
	assert.Nil(t, derived.LookupMethod("format", 0))
	assert.Same(t, m, derived.LookupMethod("format", -1))
	assert.Same(t, base, m.DeclaringType())

	sig := m.ExecutableType()
	assert.Equal(t, "(java.lang.String,java.lang.Object[])java.lang.String", sig.String())
	m.AddThrown(u.Lookup("java.lang.Exception").DeclaredType())
	assert.Len(t, m.ExecutableType().ThrownTypes(), 1)

	ctor := NewMethod(ElemConstructor, "Derived", u.Void(), ModPublic, derived)
	assert.Same(t, ctor, derived.LookupConstructor(0))
	assert.Nil(t, derived.LookupMethod("Derived", 0))
}

func TestBuiltins(t *testing.T) {
	u := NewUniverse()

	out := u.Lookup("java.lang.System").LookupField("out")
	require.NotNil(t, out)
	ps, ok := out.Type().(*Declared)
	require.True(t, ok)
	assert.NotNil(t, ps.Element().LookupMethod("println", 1))
	assert.NotNil(t, u.Lookup("java.lang.String").LookupMethod("hashCode", 0))
	assert.True(t, IsString(u.StringType()))
	assert.False(t, IsString(u.ObjectType()))
}

func TestIsSubtype(t *testing.T) {
	u := NewUniverse()
	rte := u.Lookup("java.lang.RuntimeException").DeclaredType()
	thr := u.Lookup("java.lang.Throwable").DeclaredType()
	runnable := u.Lookup("java.lang.Runnable").DeclaredType()

	task := u.NewType(u.Package("app"), "Task", ElemClass, 0)
	task.AddInterface(runnable)

	assert.True(t, u.IsSubtype(rte, thr))
	assert.False(t, u.IsSubtype(thr, rte))
	assert.True(t, u.IsSubtype(task.DeclaredType(), runnable))
	assert.True(t, u.IsSubtype(runnable, u.ObjectType()))
	assert.False(t, u.IsSubtype(u.Primitive(KindInt), u.ObjectType()))
}

func TestCompoundTypes(t *testing.T) {
	u := NewUniverse()
	io := u.NewType(u.Package("java.io"), "IOException", ElemClass, ModPublic)
	rte := u.Lookup("java.lang.RuntimeException").DeclaredType()

	assert.Equal(t, "java.io.IOException | java.lang.RuntimeException", u.Union(io.DeclaredType(), rte).String())
	assert.Equal(t, KindIntersection, u.Intersection(rte).Kind())

	list := u.NewType(u.Package("java.util"), "List", ElemInterface, ModPublic)
	assert.Same(t, list.DeclaredType(), u.Parameterized(list, nil))
	assert.Equal(t, "java.util.List<java.lang.String>", u.Parameterized(list, []Type{u.StringType()}).String())
	assert.Nil(t, list.Superclass())

	tv := u.TypeVariable("T", nil)
	assert.Equal(t, u.ObjectType(), tv.Bound())
	assert.Same(t, u.Error("Missing"), u.Error("Missing"))
}

func TestBinaryNumericPromotion(t *testing.T) {
	u := NewUniverse()
	p := u.Primitive

	assert.Equal(t, p(KindInt), u.BinaryNumericPromotion(p(KindByte), p(KindChar)))
	assert.Equal(t, p(KindLong), u.BinaryNumericPromotion(p(KindInt), p(KindLong)))
	assert.Equal(t, p(KindDouble), u.BinaryNumericPromotion(p(KindFloat), p(KindDouble)))
	assert.Nil(t, u.BinaryNumericPromotion(p(KindBoolean), p(KindInt)))
	assert.Nil(t, u.BinaryNumericPromotion(u.StringType(), p(KindInt)))
}

func TestModifiers(t *testing.T) {
	m, ok := ParseModifier("synchronized")
	require.True(t, ok)
	assert.Equal(t, ModSynchronized, m)
	_, ok = ParseModifier("sealed")
	assert.False(t, ok)

	mods := ModStatic | ModPrivate | ModFinal
	assert.Equal(t, "private static final", mods.String())
	assert.True(t, mods.Has(ModStatic|ModFinal))
	assert.False(t, mods.Has(ModPublic))
	assert.Equal(t, "qualified", SimpleName("a.b.qualified"))
	assert.Equal(t, "plain", SimpleName("plain"))
}
