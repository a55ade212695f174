package ast

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/j2o/internal/binding"
)

// Environment is the per-unit context shared by every pass: the type
// universe of the front end, generated names and cached type nodes.
type Environment struct {
	Universe    *binding.Universe
	Names       *NameTable
	Types       *TypeCache
	SourceLevel *semver.Version
}

var (
	level8 = semver.MustParse("1.8.0")
	level9 = semver.MustParse("9.0.0")
)

// NewEnvironment creates an environment over u for the given source level.
// A nil level means the newest supported language.
func NewEnvironment(u *binding.Universe, level *semver.Version) *Environment {
	return &Environment{
		Universe:    u,
		Names:       NewNameTable(),
		Types:       NewTypeCache(),
		SourceLevel: level,
	}
}

// AtLeast reports whether the source level is v or newer.
func (e *Environment) AtLeast(v *semver.Version) bool {
	return e.SourceLevel == nil || !e.SourceLevel.LessThan(v)
}

// SupportsLambdas reports whether lambdas and method references are legal.
func (e *Environment) SupportsLambdas() bool { return e.AtLeast(level8) }

// SupportsPrivateInterfaceMethods reports whether interfaces may declare
// private methods.
func (e *Environment) SupportsPrivateInterfaceMethods() bool { return e.AtLeast(level9) }

// NameTable hands out generated names: stable names for elements and fresh
// names for temporaries.
type NameTable struct {
	byElement map[binding.Element]string
	used      map[string]int
}

// NewNameTable returns an empty table.
func NewNameTable() *NameTable {
	return &NameTable{
		byElement: make(map[binding.Element]string),
		used:      make(map[string]int),
	}
}

// Reserve marks name as taken so UniqueName will not return it.
func (t *NameTable) Reserve(name string) {
	if _, ok := t.used[name]; !ok {
		t.used[name] = 0
	}
}

// UniqueName returns base the first time and base_1, base_2, ... afterwards.
func (t *NameTable) UniqueName(base string) string {
	n, ok := t.used[base]
	if !ok {
		t.used[base] = 0
		return base
	}
	for {
		n++
		candidate := fmt.Sprintf("%s_%d", base, n)
		if _, taken := t.used[candidate]; !taken {
			t.used[base] = n
			t.used[candidate] = 0
			return candidate
		}
	}
}

// SetName records the generated name of e.
func (t *NameTable) SetName(e binding.Element, name string) {
	t.byElement[e] = name
	t.Reserve(name)
}

// NameOf returns the generated name of e, falling back to its source name.
func (t *NameTable) NameOf(e binding.Element) string {
	if name, ok := t.byElement[e]; ok {
		return name
	}
	return e.Name()
}
