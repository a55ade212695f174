package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/position"
)

func TestValidateRequiredSlots(t *testing.T) {
	cond := NewConditionalExpression().
		SetExpression(NewSimpleName("a")).
		SetThenExpression(NewSimpleName("b"))
	cond.SetPosition(position.SourcePosition{Start: 0, Length: 5, Line: 12})

	err := Validate(cond)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, KindConditionalExpression, ve.Kind)
	assert.Equal(t, "elseExpression", ve.Field)
	assert.Equal(t, "line 12: invalid ConditionalExpression: missing required elseExpression", err.Error())

	cond.SetElseExpression(NewSimpleName("c"))
	assert.NoError(t, Validate(cond))
}

func TestValidateReportsFirstNestedProblem(t *testing.T) {
	b := NewBlock()
	b.Statements().Add(exprStmt("ok"), NewReturnStatement())
	assert.NoError(t, Validate(b), "return without value is valid")

	b.Statements().Add(NewThrowStatement(), NewIfStatement().SetThenStatement(NewEmptyStatement()))
	err := Validate(b)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, KindThrowStatement, ve.Kind)
	assert.Equal(t, "expression", ve.Field)

	b.Statements().Get(2).(*ThrowStatement).SetExpression(NewSimpleName("e"))
	err = Validate(b)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, KindIfStatement, ve.Kind)
}

func TestValidateShapeRules(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "infix with one operand",
			node: func() Node {
				n := NewInfixExpression(InfixPlus)
				n.Operands().Add(NewSimpleName("a"))
				return n
			}(),
			want: "+ needs at least two operands",
		},
		{
			name: "case without expression",
			node: NewSwitchCase(),
			want: "either default or have an expression",
		},
		{
			name: "default with expression",
			node: NewSwitchCase().SetDefault(true).SetExpression(NewSimpleName("x")),
			want: "either default or have an expression",
		},
		{
			name: "array creation without size",
			node: NewArrayCreation().SetType(NewArrayType().SetComponentType(NewPrimitiveType())),
			want: "dimensions or an initializer",
		},
		{
			name: "bare try",
			node: NewTryStatement().SetBody(NewBlock()),
			want: "resource, a catch clause or a finally",
		},
		{
			name: "method without return type",
			node: NewMethodDeclaration().SetName(NewSimpleName("m")),
			want: "method m has no return type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.node)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateAcceptsWellFormedShapes(t *testing.T) {
	ctor := NewMethodDeclaration().SetName(NewSimpleName("A")).SetConstructor(true).SetBody(NewBlock())
	assert.NoError(t, Validate(ctor))

	try := NewTryStatement().SetBody(NewBlock()).SetFinally(NewBlock())
	assert.NoError(t, Validate(try))

	assert.NoError(t, Validate(NewSwitchCase().SetDefault(true)))
	assert.NoError(t, Validate(nil))
}
