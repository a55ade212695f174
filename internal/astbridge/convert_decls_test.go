package astbridge

import (
	"context"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend/javats"
)

const shapes = `package demo.shapes;

import java.util.List;

/**
 * A shape with an area.
 * @author someone
 */
public class Circle extends Object implements Comparable<Circle> {
    // radius in meters
    private final double radius;
    static final int SIDES = 0;

    /** Creates a circle. */
    public Circle(double radius) {
        super();
        this.radius = radius;
    }

    public double area() {
        return Math.PI * radius * radius;
    }

    public int compareTo(Circle other) {
        if (radius < other.radius) {
            return -1;
        } else if (radius > other.radius) {
            return 1;
        }
        return 0;
    }

    enum Unit { METERS, FEET }

    int sum(int[] xs) {
        int total = 0;
        for (int i = 0; i < xs.length; i++) {
            total += xs[i];
        }
        try {
            total = total / xs.length;
        } catch (ArithmeticException | IllegalStateException e) {
            total = -1;
        } finally {
            total++;
        }
        return total;
    }
}
`

func convertSource(t *testing.T, path, src string) *ast.CompilationUnit {
	t.Helper()
	unit, err := javats.Parse(context.Background(), path, []byte(src))
	require.NoError(t, err)
	cu, err := ConvertCompilationUnit(nil, unit)
	require.NoError(t, err)
	return cu
}

func findMethod(t *testing.T, td ast.AbstractTypeDeclaration, name string) *ast.MethodDeclaration {
	t.Helper()
	for _, d := range td.BodyDeclarations().Slice() {
		if md, ok := d.(*ast.MethodDeclaration); ok && md.Name().Identifier() == name {
			return md
		}
	}
	t.Fatalf("no method %s", name)
	return nil
}

func TestDeclarations_Class_RoundTrip(t *testing.T) {
	cu := convertSource(t, "demo/shapes/Circle.java", shapes)

	assert.Equal(t, "Circle", cu.MainTypeName())
	assert.Equal(t, []string{"java.util.List"}, cu.Imports())
	require.NotNil(t, cu.Package())
	assert.Equal(t, "demo.shapes", cu.Package().Name().FullyQualifiedName())

	require.Equal(t, 1, cu.Types().Len())
	td, ok := cu.Types().Get(0).(*ast.TypeDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Circle", td.Name().Identifier())
	assert.False(t, td.IsInterface())
	assert.True(t, td.Modifiers().Has(binding.ModPublic))
	require.NotNil(t, td.TypeElement())
	assert.Equal(t, "demo.shapes.Circle", td.TypeElement().QualifiedName())
	require.NotNil(t, td.SuperclassType())
	assert.Equal(t, 1, td.SuperInterfaceTypes().Len())

	require.NotNil(t, td.Javadoc())
	tags := td.Javadoc().Tags()
	require.Equal(t, 2, tags.Len())
	assert.Equal(t, "", tags.Get(0).TagName())
	assert.Equal(t, "@author", tags.Get(1).TagName())

	// The line comment is free-standing; the doc comments are attached.
	require.Equal(t, 1, cu.Comments().Len())
	assert.IsType(t, &ast.LineComment{}, cu.Comments().Get(0))

	require.NoError(t, ast.Validate(cu))
}

func TestDeclarations_Members(t *testing.T) {
	cu := convertSource(t, "demo/shapes/Circle.java", shapes)
	td := cu.Types().Get(0)

	var fields []*ast.FieldDeclaration
	var enums []*ast.EnumDeclaration
	var ctor *ast.MethodDeclaration
	for _, d := range td.BodyDeclarations().Slice() {
		switch d := d.(type) {
		case *ast.FieldDeclaration:
			fields = append(fields, d)
		case *ast.EnumDeclaration:
			enums = append(enums, d)
		case *ast.MethodDeclaration:
			if d.IsConstructor() {
				ctor = d
			}
		}
	}

	require.Len(t, fields, 2)
	radius := fields[0]
	assert.True(t, radius.Modifiers().Has(binding.ModPrivate|binding.ModFinal))
	require.Equal(t, 1, radius.Fragments().Len())
	assert.Equal(t, binding.KindDouble, radius.Type().TypeMirror().Kind())
	require.NotNil(t, radius.Fragments().Get(0).VariableElement())

	require.NotNil(t, ctor)
	assert.NotNil(t, ctor.Javadoc())
	assert.Nil(t, ctor.ReturnType())
	require.Equal(t, 1, ctor.Parameters().Len())
	require.NotNil(t, ctor.Body())
	stmts := ctor.Body().Statements()
	require.Equal(t, 2, stmts.Len())
	assert.IsType(t, &ast.SuperConstructorInvocation{}, stmts.Get(0))
	assign := stmts.Get(1).(*ast.ExpressionStatement).Expression().(*ast.Assignment)
	assert.IsType(t, &ast.FieldAccess{}, assign.LeftHandSide())

	require.Len(t, enums, 1)
	require.Equal(t, 2, enums[0].EnumConstants().Len())
	assert.Equal(t, "FEET", enums[0].EnumConstants().Get(1).Name().Identifier())
}

func TestDeclarations_MethodBodies(t *testing.T) {
	cu := convertSource(t, "demo/shapes/Circle.java", shapes)
	td := cu.Types().Get(0)

	area := findMethod(t, td, "area")
	ret := area.Body().Statements().Get(0).(*ast.ReturnStatement)
	product := ret.Expression().(*ast.InfixExpression)
	assert.Equal(t, ast.InfixTimes, product.Operator())
	assert.Equal(t, 3, product.Operands().Len())
	assert.Equal(t, binding.KindDouble, product.TypeMirror().Kind())

	cmp := findMethod(t, td, "compareTo")
	ifs := cmp.Body().Statements().Get(0).(*ast.IfStatement)
	assert.IsType(t, &ast.IfStatement{}, ifs.ElseStatement())

	sum := findMethod(t, td, "sum")
	stmts := sum.Body().Statements()
	require.Equal(t, 4, stmts.Len())
	loop := stmts.Get(1).(*ast.ForStatement)
	require.Equal(t, 1, loop.Initializers().Len())
	assert.IsType(t, &ast.VariableDeclarationExpression{}, loop.Initializers().Get(0))
	assert.IsType(t, &ast.PostfixExpression{}, loop.Updaters().Get(0))

	try := stmts.Get(2).(*ast.TryStatement)
	require.Equal(t, 1, try.CatchClauses().Len())
	assert.IsType(t, &ast.UnionType{}, try.CatchClauses().Get(0).Exception().Type())
	assert.NotNil(t, try.Finally())
}

func TestDeclarations_Positions(t *testing.T) {
	cu := convertSource(t, "demo/shapes/Circle.java", shapes)
	td := cu.Types().Get(0)

	assert.Equal(t, 9, td.LineNumber())
	area := findMethod(t, td, "area")
	assert.Equal(t, 20, area.LineNumber())
	assert.Equal(t, "area", shapes[area.Name().StartPosition():area.Name().StartPosition()+area.Name().Length()])
}

func TestDeclarations_PrivateInterfaceMethodNeedsJava9(t *testing.T) {
	const src = `interface Greeter {
    private String name() { return "x"; }
}
`
	unit, err := javats.Parse(context.Background(), "Greeter.java", []byte(src))
	require.NoError(t, err)

	env := ast.NewEnvironment(unit.Universe, semver.MustParse("1.8.0"))
	_, err = ConvertCompilationUnit(env, unit)
	require.ErrorIs(t, err, ErrUnsupported)

	cu, err := ConvertCompilationUnit(nil, unit)
	require.NoError(t, err)
	td := cu.Types().Get(0).(*ast.TypeDeclaration)
	assert.True(t, td.IsInterface())
}

func TestConvertCompilationUnit_DefaultPackage(t *testing.T) {
	cu := convertSource(t, "T.java", "class T { int f() { return 1; } }")

	require.NotNil(t, cu.Package())
	assert.True(t, cu.Package().IsDefaultPackage())
	assert.Same(t, cu, cu.Package().Parent())
	require.NoError(t, ast.Validate(cu))

	assert.Equal(t, 1, cu.Types().Len())
	findMethod(t, cu.Types().Get(0), "f")
	assert.NotContains(t, ast.DebugString(cu), "package")
}

func TestKindSets_AreIndependent(t *testing.T) {
	assert.False(t, literalKinds["assignment_expression"])
	assert.False(t, literalKinds["identifier"])
	assert.True(t, expressionKinds["assignment_expression"])
	assert.True(t, expressionKinds["decimal_integer_literal"])

	assert.False(t, typeDeclarationKinds["method_declaration"])
	assert.False(t, typeDeclarationKinds["field_declaration"])
	assert.True(t, declarationKinds["method_declaration"])
	assert.True(t, declarationKinds["class_declaration"])
}

func TestConvertCompilationUnit_MembersAndExpressions(t *testing.T) {
	cu := convertSource(t, "T.java", `class T {
    int x;
    int f(boolean a, int b, int c) {
        x = (a ? b : c);
        return x + 1;
    }
}`)
	require.NoError(t, ast.Validate(cu))

	td := cu.Types().Get(0)
	require.Equal(t, 2, td.BodyDeclarations().Len())
	_, ok := td.BodyDeclarations().Get(0).(*ast.FieldDeclaration)
	assert.True(t, ok)

	stmts := findMethod(t, td, "f").Body().Statements()
	require.Equal(t, 2, stmts.Len())
	assign, ok := stmts.Get(0).(*ast.ExpressionStatement).Expression().(*ast.Assignment)
	require.True(t, ok)
	_, ok = assign.RightHandSide().(*ast.ConditionalExpression)
	assert.True(t, ok)
}
