package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/position"
)

func greeterUnit(u *binding.Universe) *CompilationUnit {
	b := NewBuilder(u)
	unit := NewCompilationUnit(NewEnvironment(u, nil), "com/example/Greeter.java", "Greeter", "")
	unit.SetPackage(NewPackageDeclaration().SetName(
		NewQualifiedName().SetQualifier(NewSimpleName("com")).SetName(NewSimpleName("example"))))
	unit.AddImport("java.util.List")

	td := NewTypeDeclaration().SetName(NewSimpleName("Greeter"))
	td.SetModifiers(binding.ModPublic)
	unit.Types().Add(td)

	args := NewSingleVariableDeclaration().
		SetType(b.Type(u.ArrayOf(u.StringType()))).
		SetName(NewSimpleName("args"))
	m := NewMethodDeclaration().
		SetReturnType(b.Type(u.Void())).
		SetName(NewSimpleName("main"))
	m.SetModifiers(binding.ModPublic | binding.ModStatic)
	m.Parameters().Add(args)
	td.BodyDeclarations().Add(m)

	x := binding.NewVariable(binding.ElemLocalVariable, "x", u.Primitive(binding.KindInt), 0, nil)
	sum := b.Infix(InfixPlus, u.Primitive(binding.KindInt), b.Int(1), b.Int(2))
	out := NewQualifiedName().SetQualifier(NewSimpleName("System")).SetName(NewSimpleName("out"))
	call := NewMethodInvocation().SetExpression(out).SetName(NewSimpleName("println"))
	call.Arguments().Add(b.Str("hi"))
	cond := b.If(b.Not(NewSimpleName("done")), b.Block(b.ExprStmt(call)), b.Return(nil))
	m.SetBody(b.Block(b.Local(x, sum), cond))
	return unit
}

func TestDebugString(t *testing.T) {
	unit := greeterUnit(binding.NewUniverse())
	want := `package com.example;
import java.util.List;

public class Greeter {
  public static void main(String[] args) {
    int x = 1 + 2;
    if (!done) {
      System.out.println("hi");
    } else return;
  }
}
`
	assert.Equal(t, want, DebugString(unit))
}

func TestDebugStringExpressions(t *testing.T) {
	u := binding.NewUniverse()
	b := NewBuilder(u)

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"null", nil, "<nil>"},
		{"double", b.Double(2), "2.0"},
		{"long", b.Long(5), "5L"},
		{"char", b.Char('q'), "'q'"},
		{"string escapes", b.Str("a\"b"), `"a\"b"`},
		{
			"conditional",
			NewConditionalExpression().SetExpression(NewSimpleName("a")).
				SetThenExpression(NewSimpleName("b")).SetElseExpression(NewSimpleName("c")),
			"a ? b : c",
		},
		{
			"array creation",
			arrayCreation(NewType(u.ArrayOf(u.ArrayOf(u.Primitive(binding.KindInt)))), b.Int(3)),
			"new int[3][]",
		},
		{
			"cast",
			NewCastExpression().SetType(NewType(u.ObjectType())).SetExpression(NewSimpleName("s")),
			"(Object) s",
		},
		{
			"lambda",
			NewLambdaExpression().SetBody(NewSimpleName("y")),
			"() -> y",
		},
		{
			"method reference",
			NewExpressionMethodReference().SetExpression(NewSimpleName("list")).SetName(NewSimpleName("add")),
			"list::add",
		},
		{
			"postfix",
			NewPostfixExpression(PostfixIncrement).SetOperand(NewSimpleName("i")),
			"i++",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DebugString(tt.node))
		})
	}
}

func arrayCreation(t Type, dims ...Expression) *ArrayCreation {
	n := NewArrayCreation().SetType(t.(*ArrayType))
	n.Dimensions().Add(dims...)
	return n
}

func TestOutline(t *testing.T) {
	u := binding.NewUniverse()
	b := NewBuilder(u)
	stmt := b.At(position.SourcePosition{Start: 0, Length: 9, Line: 4}).
		ExprStmt(b.Assign(NewSimpleName("x"), b.Int(1)))

	got := Outline(stmt)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	assert.Equal(t, []string{
		"ExpressionStatement @4",
		"  Assignment =",
		"    SimpleName x",
		"    NumberLiteral 1",
	}, lines)
	assert.Empty(t, Outline(nil))
}
