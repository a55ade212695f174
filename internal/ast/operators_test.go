package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorTokensRoundTrip(t *testing.T) {
	for op := InfixTimes; op <= InfixConditionalOr; op++ {
		got, ok := ParseInfixOp(op.String())
		assert.True(t, ok, op.String())
		assert.Equal(t, op, got)
	}
	for op := AssignPlain; op <= AssignRightShiftUnsigned; op++ {
		got, ok := ParseAssignOp(op.String())
		assert.True(t, ok, op.String())
		assert.Equal(t, op, got)
	}
	for op := PrefixIncrement; op <= PrefixNot; op++ {
		got, ok := ParsePrefixOp(op.String())
		assert.True(t, ok)
		assert.Equal(t, op, got)
	}
	_, ok := ParseInfixOp("<=>")
	assert.False(t, ok)
	assert.Equal(t, "?", InfixOp(99).String())
}

func TestCompoundAssignmentOperator(t *testing.T) {
	op, ok := AssignRightShiftUnsigned.Binary()
	assert.True(t, ok)
	assert.Equal(t, InfixRightShiftUnsigned, op)

	_, ok = AssignPlain.Binary()
	assert.False(t, ok)
}

func TestInfixClassification(t *testing.T) {
	assert.True(t, InfixLessEquals.IsComparison())
	assert.False(t, InfixPlus.IsComparison())
	assert.True(t, InfixConditionalAnd.IsLogical())
	assert.True(t, InfixRightShiftSigned.IsShift())
	assert.False(t, InfixAnd.IsLogical())
}
