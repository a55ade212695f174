package javats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

const greeter = `package demo;

import java.util.List;

/** Greets. */
public class Greeter {
    static final int LIMIT = -20;
    private String name;

    public Greeter(String name) { this.name = name; }

    public int count(int[] xs) {
        int total = 0;
        for (int x : xs) {
            total += x;
        }
        return total + LIMIT;
    }

    void greet() {
        System.out.println("hi " + name);
    }
}
`

// find returns the first node of kind whose text is text.
func find(t *testing.T, root frontend.Node, kind, text string) frontend.Node {
	t.Helper()
	var out frontend.Node
	frontend.Walk(root, func(n frontend.Node) bool {
		if out == nil && n.Kind() == kind && n.Text() == text {
			out = n
		}
		return out == nil
	})
	require.NotNil(t, out, "no %s %q", kind, text)
	return out
}

func parseGreeter(t *testing.T) *frontend.Unit {
	t.Helper()
	unit, err := Parse(context.Background(), "demo/Greeter.java", []byte(greeter))
	require.NoError(t, err)
	return unit
}

func TestParseMirrorsTree(t *testing.T) {
	unit := parseGreeter(t)

	assert.Equal(t, "program", unit.Root.Kind())
	assert.Equal(t, "demo/Greeter.java", unit.Path)
	require.Len(t, unit.Comments, 1)
	assert.Equal(t, "/** Greets. */", unit.Comments[0].Text())
	assert.Equal(t, 5, unit.Comments[0].Line())

	cls := find(t, unit.Root, "identifier", "Greeter")
	assert.Equal(t, 6, cls.Line())
}

func TestResolveDeclarations(t *testing.T) {
	unit := parseGreeter(t)
	o := unit.Oracle

	var decl frontend.Node
	frontend.Walk(unit.Root, func(n frontend.Node) bool {
		if n.Kind() == "class_declaration" {
			decl = n
		}
		return decl == nil
	})
	require.NotNil(t, decl)
	te, ok := o.ElementOf(decl).(*binding.TypeElement)
	require.True(t, ok)
	assert.Equal(t, "demo.Greeter", te.QualifiedName())
	assert.NotNil(t, te.LookupConstructor(1))
	assert.NotNil(t, te.LookupMethod("count", 1))

	limit, ok := o.ElementOf(find(t, unit.Root, "identifier", "LIMIT")).(*binding.VariableElement)
	require.True(t, ok)
	assert.Equal(t, int32(-20), limit.ConstantValue())
	assert.True(t, limit.Modifiers().Has(binding.ModStatic|binding.ModFinal))
}

func TestResolveExpressionTypes(t *testing.T) {
	unit := parseGreeter(t)
	o := unit.Oracle
	u := unit.Universe

	sum := find(t, unit.Root, "binary_expression", "total + LIMIT")
	assert.Equal(t, binding.Type(u.Primitive(binding.KindInt)), o.TypeOf(sum))

	concat := find(t, unit.Root, "binary_expression", `"hi " + name`)
	assert.True(t, binding.IsString(o.TypeOf(concat)))

	lit := find(t, unit.Root, "string_literal", `"hi "`)
	assert.Equal(t, "hi ", o.ConstantOf(lit))

	call := find(t, unit.Root, "method_invocation", `System.out.println("hi " + name)`)
	m, ok := o.ElementOf(call).(*binding.ExecutableElement)
	require.True(t, ok)
	assert.Equal(t, "println", m.Name())
	assert.Equal(t, u.Void(), o.TypeOf(call))

	xs := find(t, unit.Root, "identifier", "xs")
	param, ok := o.ElementOf(xs).(*binding.VariableElement)
	require.True(t, ok)
	assert.Equal(t, binding.ElemParameter, param.ElementKind())
	assert.Equal(t, 1, binding.Dimensions(param.Type()))
}

func TestResolveEnhancedForVariable(t *testing.T) {
	unit := parseGreeter(t)

	var x frontend.Node
	frontend.Walk(unit.Root, func(n frontend.Node) bool {
		if n.Kind() == "enhanced_for_statement" {
			x = n.Field("name")
		}
		return x == nil
	})
	require.NotNil(t, x)
	v, ok := unit.Oracle.ElementOf(x).(*binding.VariableElement)
	require.True(t, ok)
	assert.Equal(t, binding.ElemLocalVariable, v.ElementKind())
	assert.Equal(t, binding.KindInt, v.Type().Kind())
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), "Broken.java", []byte("class Broken {\n  void f( {\n}\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Broken.java", se.Path)
	assert.GreaterOrEqual(t, se.Line, 1)
}

func TestParseInvalidContent(t *testing.T) {
	_, err := Parse(context.Background(), "Bad.java", []byte{'c', 0xff, 0xfe})
	assert.ErrorIs(t, err, ErrInvalidContent)
}
