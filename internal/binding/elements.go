package binding

import "strings"

// Modifier is a bitmask of declaration modifiers.
type Modifier uint32

const (
	ModPublic Modifier = 1 << iota
	ModPrivate
	ModProtected
	ModStatic
	ModFinal
	ModAbstract
	ModNative
	ModSynchronized
	ModTransient
	ModVolatile
	ModStrictfp
	ModDefault
	// ModSynthetic marks declarations created by the translator.
	ModSynthetic
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModPublic, "public"},
	{ModPrivate, "private"},
	{ModProtected, "protected"},
	{ModAbstract, "abstract"},
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
	{ModSynchronized, "synchronized"},
	{ModNative, "native"},
	{ModStrictfp, "strictfp"},
	{ModDefault, "default"},
}

// Has reports whether all bits of other are set.
func (m Modifier) Has(other Modifier) bool { return m&other == other }

// String renders the modifiers in source order, space separated.
func (m Modifier) String() string {
	var parts []string
	for _, mn := range modifierNames {
		if m&mn.mod != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, " ")
}

// ParseModifier maps a source keyword to its modifier bit.
func ParseModifier(keyword string) (Modifier, bool) {
	for _, mn := range modifierNames {
		if mn.name == keyword {
			return mn.mod, true
		}
	}
	return 0, false
}

// ElementKind discriminates resolved elements.
type ElementKind int

const (
	ElemPackage ElementKind = iota
	ElemClass
	ElemInterface
	ElemEnum
	ElemAnnotationType
	ElemRecord
	ElemMethod
	ElemConstructor
	ElemInitializer
	ElemField
	ElemEnumConstant
	ElemParameter
	ElemLocalVariable
	ElemExceptionParameter
	ElemResourceVariable
	ElemTypeParameter
)

var elementKindNames = [...]string{
	ElemPackage:            "package",
	ElemClass:              "class",
	ElemInterface:          "interface",
	ElemEnum:               "enum",
	ElemAnnotationType:     "annotation type",
	ElemRecord:             "record",
	ElemMethod:             "method",
	ElemConstructor:        "constructor",
	ElemInitializer:        "initializer",
	ElemField:              "field",
	ElemEnumConstant:       "enum constant",
	ElemParameter:          "parameter",
	ElemLocalVariable:      "local variable",
	ElemExceptionParameter: "exception parameter",
	ElemResourceVariable:   "resource variable",
	ElemTypeParameter:      "type parameter",
}

func (k ElementKind) String() string {
	if int(k) < len(elementKindNames) {
		return elementKindNames[k]
	}
	return "unknown"
}

// IsType reports whether k declares a type.
func (k ElementKind) IsType() bool {
	return k >= ElemClass && k <= ElemRecord
}

// IsVariable reports whether k declares a variable.
func (k ElementKind) IsVariable() bool {
	return k >= ElemField && k <= ElemResourceVariable
}

// Element is a resolved declaration handle: a package, type, method or
// variable.
type Element interface {
	ElementKind() ElementKind
	Name() string
	Modifiers() Modifier
	Enclosing() Element
	Type() Type
}

type elementBase struct {
	name      string
	modifiers Modifier
	enclosing Element
}

func (e *elementBase) Name() string        { return e.name }
func (e *elementBase) Modifiers() Modifier { return e.modifiers }
func (e *elementBase) Enclosing() Element  { return e.enclosing }

// PackageElement is a package.
type PackageElement struct {
	elementBase
}

func (p *PackageElement) ElementKind() ElementKind { return ElemPackage }
func (p *PackageElement) Type() Type               { return nil }

// IsUnnamed reports whether p is the default package.
func (p *PackageElement) IsUnnamed() bool { return p.name == "" }

// TypeElement is a class, interface, enum, annotation type or record.
type TypeElement struct {
	elementBase
	kind       ElementKind
	typ        *Declared
	superclass Type
	interfaces []Type
	members    []Element
}

func (t *TypeElement) ElementKind() ElementKind { return t.kind }
func (t *TypeElement) Type() Type               { return t.typ }
func (t *TypeElement) Superclass() Type         { return t.superclass }
func (t *TypeElement) Interfaces() []Type       { return t.interfaces }
func (t *TypeElement) Members() []Element       { return t.members }

// DeclaredType returns the type declared by t without type arguments.
func (t *TypeElement) DeclaredType() *Declared { return t.typ }

// QualifiedName returns the dotted name including the package and any
// enclosing types.
func (t *TypeElement) QualifiedName() string {
	switch enc := t.enclosing.(type) {
	case *TypeElement:
		return enc.QualifiedName() + "." + t.name
	case *PackageElement:
		if !enc.IsUnnamed() {
			return enc.name + "." + t.name
		}
	}
	return t.name
}

// SetSuperclass records the direct superclass.
func (t *TypeElement) SetSuperclass(s Type) { t.superclass = s }

// AddInterface records a directly implemented interface.
func (t *TypeElement) AddInterface(i Type) { t.interfaces = append(t.interfaces, i) }

// AddMember records a member element. Front ends call this while declaring.
func (t *TypeElement) AddMember(e Element) { t.members = append(t.members, e) }

// LookupField finds a field or enum constant declared by t or one of its
// known supertypes.
func (t *TypeElement) LookupField(name string) *VariableElement {
	for cur := t; cur != nil; cur = superElement(cur) {
		for _, m := range cur.members {
			if v, ok := m.(*VariableElement); ok && v.name == name {
				return v
			}
		}
	}
	return nil
}

// LookupMethod finds a method named name taking argc arguments, searching
// supertypes. argc < 0 matches any arity.
func (t *TypeElement) LookupMethod(name string, argc int) *ExecutableElement {
	for cur := t; cur != nil; cur = superElement(cur) {
		for _, m := range cur.members {
			x, ok := m.(*ExecutableElement)
			if !ok || x.kind != ElemMethod || x.name != name {
				continue
			}
			if argc < 0 || len(x.params) == argc || (x.varargs && argc >= len(x.params)-1) {
				return x
			}
		}
	}
	return nil
}

// LookupConstructor finds a constructor taking argc arguments.
func (t *TypeElement) LookupConstructor(argc int) *ExecutableElement {
	for _, m := range t.members {
		if x, ok := m.(*ExecutableElement); ok && x.kind == ElemConstructor && len(x.params) == argc {
			return x
		}
	}
	return nil
}

// LookupMemberType finds a nested type declared directly by t.
func (t *TypeElement) LookupMemberType(name string) *TypeElement {
	for _, m := range t.members {
		if te, ok := m.(*TypeElement); ok && te.name == name {
			return te
		}
	}
	return nil
}

func superElement(t *TypeElement) *TypeElement {
	if d, ok := t.superclass.(*Declared); ok && d.element != t {
		return d.element
	}
	return nil
}

// ExecutableElement is a method, constructor or initializer.
type ExecutableElement struct {
	elementBase
	kind    ElementKind
	params  []*VariableElement
	result  Type
	throws  []Type
	varargs bool
	typ     *Executable
}

func (x *ExecutableElement) ElementKind() ElementKind       { return x.kind }
func (x *ExecutableElement) Parameters() []*VariableElement { return x.params }
func (x *ExecutableElement) ReturnType() Type               { return x.result }
func (x *ExecutableElement) IsVarargs() bool                { return x.varargs }

// Type returns the executable type of x.
func (x *ExecutableElement) Type() Type { return x.ExecutableType() }

// ExecutableType returns the method signature as a type.
func (x *ExecutableElement) ExecutableType() *Executable {
	if x.typ == nil {
		params := make([]Type, len(x.params))
		for i, p := range x.params {
			params[i] = p.typ
		}
		x.typ = NewExecutable(params, x.result, x.throws)
	}
	return x.typ
}

// DeclaringType returns the type that declares x.
func (x *ExecutableElement) DeclaringType() *TypeElement {
	te, _ := x.enclosing.(*TypeElement)
	return te
}

// AddParameter appends a parameter and returns it.
func (x *ExecutableElement) AddParameter(name string, t Type) *VariableElement {
	p := &VariableElement{
		elementBase: elementBase{name: name, enclosing: x},
		kind:        ElemParameter,
		typ:         t,
	}
	x.params = append(x.params, p)
	x.typ = nil
	return p
}

// SetVarargs marks the last parameter as variable arity.
func (x *ExecutableElement) SetVarargs(v bool) { x.varargs = v }

// AddThrown records a declared thrown type.
func (x *ExecutableElement) AddThrown(t Type) {
	x.throws = append(x.throws, t)
	x.typ = nil
}

// VariableElement is a field, enum constant, parameter or local variable.
type VariableElement struct {
	elementBase
	kind     ElementKind
	typ      Type
	constant any
}

func (v *VariableElement) ElementKind() ElementKind { return v.kind }
func (v *VariableElement) Type() Type               { return v.typ }

// ConstantValue returns the compile-time constant of a final variable with a
// constant initializer, or nil.
func (v *VariableElement) ConstantValue() any { return v.constant }

// SetConstantValue records the compile-time constant of v.
func (v *VariableElement) SetConstantValue(c any) { v.constant = c }

// IsField reports whether v is a member of a type.
func (v *VariableElement) IsField() bool {
	return v.kind == ElemField || v.kind == ElemEnumConstant
}

// NewVariable creates a variable element owned by enclosing.
func NewVariable(kind ElementKind, name string, t Type, mods Modifier, enclosing Element) *VariableElement {
	v := &VariableElement{
		elementBase: elementBase{name: name, modifiers: mods, enclosing: enclosing},
		kind:        kind,
		typ:         t,
	}
	if te, ok := enclosing.(*TypeElement); ok && v.IsField() {
		te.AddMember(v)
	}
	return v
}

// NewMethod creates a method or constructor element and registers it with
// its declaring type.
func NewMethod(kind ElementKind, name string, result Type, mods Modifier, declaring *TypeElement) *ExecutableElement {
	x := &ExecutableElement{
		elementBase: elementBase{name: name, modifiers: mods, enclosing: declaring},
		kind:        kind,
		result:      result,
	}
	if declaring != nil {
		declaring.AddMember(x)
	}
	return x
}
