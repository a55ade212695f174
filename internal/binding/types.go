// Package binding holds the resolved type and element handles produced by a
// front end. Handles are shared and read-only: the translator tree refers to
// them but never owns or copies them, so identity comparison is meaningful.
package binding

import (
	"strings"
)

// TypeKind discriminates resolved types.
type TypeKind int

const (
	KindNone TypeKind = iota
	KindBoolean
	KindByte
	KindShort
	KindInt
	KindLong
	KindChar
	KindFloat
	KindDouble
	KindVoid
	KindNull
	KindArray
	KindDeclared
	KindTypeVar
	KindWildcard
	KindUnion
	KindIntersection
	KindExecutable
	KindPackage
	KindError
)

var typeKindNames = [...]string{
	KindNone:         "none",
	KindBoolean:      "boolean",
	KindByte:         "byte",
	KindShort:        "short",
	KindInt:          "int",
	KindLong:         "long",
	KindChar:         "char",
	KindFloat:        "float",
	KindDouble:       "double",
	KindVoid:         "void",
	KindNull:         "null",
	KindArray:        "array",
	KindDeclared:     "declared",
	KindTypeVar:      "typevar",
	KindWildcard:     "wildcard",
	KindUnion:        "union",
	KindIntersection: "intersection",
	KindExecutable:   "executable",
	KindPackage:      "package",
	KindError:        "error",
}

func (k TypeKind) String() string {
	if int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether k is one of the eight primitive kinds.
func (k TypeKind) IsPrimitive() bool {
	return k >= KindBoolean && k <= KindDouble
}

// IsNumeric reports whether k is a primitive numeric kind (char included).
func (k TypeKind) IsNumeric() bool {
	return k >= KindByte && k <= KindDouble
}

// IsIntegral reports whether k is an integral primitive kind.
func (k TypeKind) IsIntegral() bool {
	return k >= KindByte && k <= KindChar
}

// Type is a resolved type handle.
type Type interface {
	Kind() TypeKind
	String() string
}

// Primitive is a primitive, void, null or none type. One instance of each
// exists per Universe.
type Primitive struct {
	kind TypeKind
}

func (p *Primitive) Kind() TypeKind { return p.kind }
func (p *Primitive) String() string { return p.kind.String() }

// Array is an array type with a single dimension over its component.
type Array struct {
	component Type
}

func (a *Array) Kind() TypeKind  { return KindArray }
func (a *Array) Component() Type { return a.component }
func (a *Array) String() string  { return a.component.String() + "[]" }

// Dimensions returns the number of array dimensions of t.
func Dimensions(t Type) int {
	n := 0
	for {
		a, ok := t.(*Array)
		if !ok {
			return n
		}
		n++
		t = a.component
	}
}

// Declared is a class, interface, enum or annotation type, possibly with
// type arguments.
type Declared struct {
	element *TypeElement
	args    []Type
}

func (d *Declared) Kind() TypeKind        { return KindDeclared }
func (d *Declared) Element() *TypeElement { return d.element }
func (d *Declared) TypeArguments() []Type { return d.args }
func (d *Declared) String() string {
	if len(d.args) == 0 {
		return d.element.QualifiedName()
	}
	parts := make([]string, len(d.args))
	for i, a := range d.args {
		parts[i] = a.String()
	}
	return d.element.QualifiedName() + "<" + strings.Join(parts, ",") + ">"
}

// TypeVar is a type variable.
type TypeVar struct {
	name  string
	bound Type
}

func (v *TypeVar) Kind() TypeKind { return KindTypeVar }
func (v *TypeVar) Name() string   { return v.name }
func (v *TypeVar) Bound() Type    { return v.bound }
func (v *TypeVar) String() string { return v.name }

// Compound is a union (catch clauses) or intersection (casts, bounds) type.
type Compound struct {
	kind  TypeKind
	parts []Type
}

func (c *Compound) Kind() TypeKind { return c.kind }
func (c *Compound) Parts() []Type  { return c.parts }
func (c *Compound) String() string {
	sep := " & "
	if c.kind == KindUnion {
		sep = " | "
	}
	parts := make([]string, len(c.parts))
	for i, p := range c.parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}

// Executable is the type of a method or constructor.
type Executable struct {
	params []Type
	result Type
	throws []Type
}

func (e *Executable) Kind() TypeKind         { return KindExecutable }
func (e *Executable) ParameterTypes() []Type { return e.params }
func (e *Executable) ReturnType() Type       { return e.result }
func (e *Executable) ThrownTypes() []Type    { return e.throws }
func (e *Executable) String() string {
	parts := make([]string, len(e.params))
	for i, p := range e.params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ",") + ")" + e.result.String()
}

// NewExecutable builds an executable type.
func NewExecutable(params []Type, result Type, throws []Type) *Executable {
	return &Executable{params: params, result: result, throws: throws}
}

// ErrorType is produced for names the front end could not resolve.
type ErrorType struct {
	name string
}

func (e *ErrorType) Kind() TypeKind { return KindError }
func (e *ErrorType) String() string { return e.name }

// IsString reports whether t is java.lang.String.
func IsString(t Type) bool {
	d, ok := t.(*Declared)
	return ok && d.element.QualifiedName() == "java.lang.String"
}
