package binding

import (
	"math"
	"strings"
)

// Universe owns the canonical type handles for one translation: the
// primitive singletons, packages, declared types and array types. Handles
// from one Universe must not be mixed with another's.
type Universe struct {
	primitives map[TypeKind]*Primitive
	packages   map[string]*PackageElement
	types      map[string]*TypeElement
	arrays     map[Type]*Array
	errors     map[string]*ErrorType
}

var javaLang = []struct {
	name  string
	kind  ElementKind
	super string
}{
	{"Object", ElemClass, ""},
	{"String", ElemClass, "Object"},
	{"CharSequence", ElemInterface, ""},
	{"Comparable", ElemInterface, ""},
	{"Class", ElemClass, "Object"},
	{"Enum", ElemClass, "Object"},
	{"Number", ElemClass, "Object"},
	{"Boolean", ElemClass, "Object"},
	{"Byte", ElemClass, "Number"},
	{"Short", ElemClass, "Number"},
	{"Integer", ElemClass, "Number"},
	{"Long", ElemClass, "Number"},
	{"Character", ElemClass, "Object"},
	{"Float", ElemClass, "Number"},
	{"Double", ElemClass, "Number"},
	{"Void", ElemClass, "Object"},
	{"Math", ElemClass, "Object"},
	{"System", ElemClass, "Object"},
	{"StringBuilder", ElemClass, "Object"},
	{"Iterable", ElemInterface, ""},
	{"Runnable", ElemInterface, ""},
	{"AutoCloseable", ElemInterface, ""},
	{"Throwable", ElemClass, "Object"},
	{"Exception", ElemClass, "Throwable"},
	{"Error", ElemClass, "Throwable"},
	{"RuntimeException", ElemClass, "Exception"},
	{"IllegalArgumentException", ElemClass, "RuntimeException"},
	{"IllegalStateException", ElemClass, "RuntimeException"},
	{"ArithmeticException", ElemClass, "RuntimeException"},
	{"NullPointerException", ElemClass, "RuntimeException"},
	{"UnsupportedOperationException", ElemClass, "RuntimeException"},
	{"AssertionError", ElemClass, "Error"},
	{"Override", ElemAnnotationType, ""},
	{"Deprecated", ElemAnnotationType, ""},
	{"SuppressWarnings", ElemAnnotationType, ""},
	{"FunctionalInterface", ElemAnnotationType, ""},
}

// NewUniverse creates a universe preloaded with primitives and the common
// java.lang types.
func NewUniverse() *Universe {
	u := &Universe{
		primitives: make(map[TypeKind]*Primitive),
		packages:   make(map[string]*PackageElement),
		types:      make(map[string]*TypeElement),
		arrays:     make(map[Type]*Array),
		errors:     make(map[string]*ErrorType),
	}
	for k := KindNone; k <= KindNull; k++ {
		u.primitives[k] = &Primitive{kind: k}
	}
	lang := u.Package("java.lang")
	for _, jl := range javaLang {
		te := u.NewType(lang, jl.name, jl.kind, ModPublic)
		if jl.super != "" {
			te.SetSuperclass(u.types["java.lang."+jl.super].typ)
		}
	}
	obj := u.types["java.lang.Object"]
	u.addBuiltinMethods(obj)
	return u
}

func (u *Universe) addBuiltinMethods(obj *TypeElement) {
	str := u.StringType()
	NewMethod(ElemMethod, "toString", str, ModPublic, obj)
	NewMethod(ElemMethod, "hashCode", u.Primitive(KindInt), ModPublic, obj)
	eq := NewMethod(ElemMethod, "equals", u.Primitive(KindBoolean), ModPublic, obj)
	eq.AddParameter("other", obj.typ)
	NewMethod(ElemMethod, "getClass", u.Lookup("java.lang.Class").typ, ModPublic|ModFinal, obj)

	s := u.Lookup("java.lang.String")
	NewMethod(ElemMethod, "length", u.Primitive(KindInt), ModPublic, s)
	at := NewMethod(ElemMethod, "charAt", u.Primitive(KindChar), ModPublic, s)
	at.AddParameter("index", u.Primitive(KindInt))
	NewMethod(ElemMethod, "isEmpty", u.Primitive(KindBoolean), ModPublic, s)

	ps := u.NewType(u.Package("java.io"), "PrintStream", ElemClass, ModPublic)
	for _, name := range []string{"print", "println"} {
		m := NewMethod(ElemMethod, name, u.Void(), ModPublic, ps)
		m.AddParameter("x", obj.typ)
	}
	NewMethod(ElemMethod, "println", u.Void(), ModPublic, ps)
	NewVariable(ElemField, "out", ps.typ, ModPublic|ModStatic|ModFinal, u.Lookup("java.lang.System"))

	mathType := u.Lookup("java.lang.Math")
	for _, c := range []struct {
		name  string
		value float64
	}{{"E", math.E}, {"PI", math.Pi}} {
		NewVariable(ElemField, c.name, u.Primitive(KindDouble), ModPublic|ModStatic|ModFinal, mathType).SetConstantValue(c.value)
	}
}

// Primitive returns the singleton for a primitive, void, null or none kind.
func (u *Universe) Primitive(k TypeKind) *Primitive {
	return u.primitives[k]
}

// PrimitiveByName maps a keyword such as "int" or "void" to its type.
func (u *Universe) PrimitiveByName(name string) (*Primitive, bool) {
	for k := KindBoolean; k <= KindVoid; k++ {
		if k.String() == name {
			return u.primitives[k], true
		}
	}
	return nil, false
}

// Null returns the type of the null literal.
func (u *Universe) Null() Type { return u.primitives[KindNull] }

// Void returns the void type.
func (u *Universe) Void() Type { return u.primitives[KindVoid] }

// None returns the absent type, used for packages and initializers.
func (u *Universe) None() Type { return u.primitives[KindNone] }

// ObjectType returns java.lang.Object.
func (u *Universe) ObjectType() *Declared { return u.types["java.lang.Object"].typ }

// StringType returns java.lang.String.
func (u *Universe) StringType() *Declared { return u.types["java.lang.String"].typ }

// Package returns the package element for name, creating it on first use.
// The empty name is the default package.
func (u *Universe) Package(name string) *PackageElement {
	if p, ok := u.packages[name]; ok {
		return p
	}
	p := &PackageElement{elementBase: elementBase{name: name}}
	u.packages[name] = p
	return p
}

// NewType declares a type element inside enclosing, which is either a
// package or another type element. Redeclaring an existing qualified name
// returns the existing element.
func (u *Universe) NewType(enclosing Element, name string, kind ElementKind, mods Modifier) *TypeElement {
	te := &TypeElement{
		elementBase: elementBase{name: name, modifiers: mods, enclosing: enclosing},
		kind:        kind,
	}
	qn := te.QualifiedName()
	if existing, ok := u.types[qn]; ok {
		return existing
	}
	te.typ = &Declared{element: te}
	if kind != ElemInterface && kind != ElemAnnotationType && qn != "java.lang.Object" {
		te.superclass = u.objectOrNil()
	}
	if outer, ok := enclosing.(*TypeElement); ok {
		outer.AddMember(te)
	}
	u.types[qn] = te
	return te
}

func (u *Universe) objectOrNil() Type {
	if obj, ok := u.types["java.lang.Object"]; ok {
		return obj.typ
	}
	return nil
}

// Lookup returns the type element with the given qualified name, or nil.
func (u *Universe) Lookup(qualifiedName string) *TypeElement {
	return u.types[qualifiedName]
}

// LookupSimple resolves a simple name against pkg and then java.lang.
func (u *Universe) LookupSimple(pkg *PackageElement, name string) *TypeElement {
	if pkg != nil && !pkg.IsUnnamed() {
		if te := u.types[pkg.name+"."+name]; te != nil {
			return te
		}
	} else if te := u.types[name]; te != nil {
		return te
	}
	return u.types["java.lang."+name]
}

// ArrayOf returns the canonical array type over component.
func (u *Universe) ArrayOf(component Type) *Array {
	if a, ok := u.arrays[component]; ok {
		return a
	}
	a := &Array{component: component}
	u.arrays[component] = a
	return a
}

// Parameterized returns a declared type with type arguments. Parameterized
// types are not canonicalized.
func (u *Universe) Parameterized(te *TypeElement, args []Type) *Declared {
	if len(args) == 0 {
		return te.typ
	}
	return &Declared{element: te, args: args}
}

// Union returns the union of alternatives (multi-catch).
func (u *Universe) Union(alts ...Type) *Compound {
	return &Compound{kind: KindUnion, parts: alts}
}

// Intersection returns the intersection of bounds.
func (u *Universe) Intersection(bounds ...Type) *Compound {
	return &Compound{kind: KindIntersection, parts: bounds}
}

// TypeVariable creates a type variable with an optional bound.
func (u *Universe) TypeVariable(name string, bound Type) *TypeVar {
	if bound == nil {
		bound = u.objectOrNil()
	}
	return &TypeVar{name: name, bound: bound}
}

// Error returns the error type for an unresolved name.
func (u *Universe) Error(name string) *ErrorType {
	if e, ok := u.errors[name]; ok {
		return e
	}
	e := &ErrorType{name: name}
	u.errors[name] = e
	return e
}

// IsSubtype reports whether sub is assignable to super by declared
// supertypes only. It ignores boxing and generics.
func (u *Universe) IsSubtype(sub, super Type) bool {
	if sub == super {
		return true
	}
	sd, ok1 := sub.(*Declared)
	pd, ok2 := super.(*Declared)
	if !ok1 || !ok2 {
		return false
	}
	if pd.element.QualifiedName() == "java.lang.Object" {
		return true
	}
	seen := map[*TypeElement]bool{}
	var walk func(te *TypeElement) bool
	walk = func(te *TypeElement) bool {
		if te == nil || seen[te] {
			return false
		}
		seen[te] = true
		if te == pd.element {
			return true
		}
		if d, ok := te.superclass.(*Declared); ok && walk(d.element) {
			return true
		}
		for _, i := range te.interfaces {
			if d, ok := i.(*Declared); ok && walk(d.element) {
				return true
			}
		}
		return false
	}
	return walk(sd.element)
}

// BinaryNumericPromotion returns the promoted type of a numeric binary
// operation on l and r, or nil if either operand is not numeric.
func (u *Universe) BinaryNumericPromotion(l, r Type) Type {
	if l == nil || r == nil || !l.Kind().IsNumeric() || !r.Kind().IsNumeric() {
		return nil
	}
	switch {
	case l.Kind() == KindDouble || r.Kind() == KindDouble:
		return u.Primitive(KindDouble)
	case l.Kind() == KindFloat || r.Kind() == KindFloat:
		return u.Primitive(KindFloat)
	case l.Kind() == KindLong || r.Kind() == KindLong:
		return u.Primitive(KindLong)
	}
	return u.Primitive(KindInt)
}

// SimpleName returns the last segment of a dotted name.
func SimpleName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
