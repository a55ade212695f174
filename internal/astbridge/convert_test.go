package astbridge

import (
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/ast"
	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/frontend"
)

func ident(name string) *frontend.SyntaxNode {
	return frontend.NewSyntaxNode("identifier", name)
}

type kindRecorder struct {
	ast.BaseVisitor
	seen []string
}

func (r *kindRecorder) PreVisit(n ast.Node) bool {
	label := n.Kind().String()
	if s, ok := n.(*ast.SimpleName); ok {
		label += "(" + s.Identifier() + ")"
	}
	r.seen = append(r.seen, label)
	return true
}

func preOrder(n ast.Node) []string {
	r := &kindRecorder{}
	n.Accept(r)
	return r.seen
}

// parenthesizedAssignment builds the tree of `x = (a ? b : c);`.
func parenthesizedAssignment() *frontend.SyntaxNode {
	cond := frontend.NewSyntaxNode("ternary_expression", "a ? b : c").
		Append("condition", ident("a")).
		Append("", frontend.NewToken("?")).
		Append("consequence", ident("b")).
		Append("", frontend.NewToken(":")).
		Append("alternative", ident("c"))
	paren := frontend.NewSyntaxNode("parenthesized_expression", "(a ? b : c)").
		Add(frontend.NewToken("("), cond, frontend.NewToken(")"))
	assign := frontend.NewSyntaxNode("assignment_expression", "x = (a ? b : c)").
		Append("left", ident("x")).
		Append("operator", frontend.NewToken("=").SetNamed(false)).
		Append("right", paren)
	return frontend.NewSyntaxNode("expression_statement", "x = (a ? b : c);").
		Add(assign, frontend.NewToken(";"))
}

func TestConvert_ParenthesizedAssignment_Shape(t *testing.T) {
	got, err := NewConverter(nil, nil).Convert(parenthesizedAssignment())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ExpressionStatement",
		"Assignment",
		"SimpleName(x)",
		"ConditionalExpression",
		"SimpleName(a)",
		"SimpleName(b)",
		"SimpleName(c)",
	}, preOrder(got))

	assign := got.(*ast.ExpressionStatement).Expression().(*ast.Assignment)
	assert.Equal(t, ast.AssignPlain, assign.Operator())
	assert.Same(t, got, assign.Parent())
}

func TestConvert_UnknownKind(t *testing.T) {
	n := frontend.NewSyntaxNode("record_pattern", "Point(var x, var y)").SetSpan(0, 19, 7)
	_, err := NewConverter(nil, nil).Convert(n)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)

	var uk *UnknownKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "record_pattern", uk.Kind)
	assert.Equal(t, 7, uk.Line)
}

func TestConvert_RejectsProgram(t *testing.T) {
	_, err := NewConverter(nil, nil).Convert(frontend.NewSyntaxNode("program", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ConvertCompilationUnit")
}

func TestConvert_NilNode(t *testing.T) {
	got, err := NewConverter(nil, nil).Convert(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConvertCompilationUnit_NilInput(t *testing.T) {
	_, err := ConvertCompilationUnit(nil, nil)
	assert.ErrorIs(t, err, ErrNilInput)
}

func TestConvertCompilationUnit_ErrorLocation(t *testing.T) {
	tests := []struct {
		name   string
		decl   *frontend.SyntaxNode
		target error
		msg    string
	}{
		{
			name:   "unknown declaration",
			decl:   frontend.NewSyntaxNode("record_declaration", "record P() {}").SetSpan(10, 23, 42),
			target: ErrUnknownKind,
		},
		{
			name:   "missing name",
			decl:   frontend.NewSyntaxNode("class_declaration", "class {}").SetSpan(10, 18, 42),
			target: ErrMalformed,
			msg:    "Foo.src:42: malformed input: class_declaration without name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := frontend.NewSyntaxNode("program", "").Add(tt.decl)
			_, err := ConvertCompilationUnit(nil, &frontend.Unit{Path: "Foo.src", Root: root})
			require.Error(t, err)

			var ce *ConversionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, "Foo.src", ce.File)
			assert.Equal(t, 42, ce.Line)
			assert.ErrorIs(t, err, tt.target)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}
}

func TestConvert_InfixFlattening(t *testing.T) {
	u := binding.NewUniverse()
	intType := u.Primitive(binding.KindInt)
	o := frontend.NewMapOracle()

	binary := func(l, r *frontend.SyntaxNode, text string) *frontend.SyntaxNode {
		return frontend.NewSyntaxNode("binary_expression", text).
			Append("left", l).
			Append("operator", frontend.NewToken("+")).
			Append("right", r)
	}

	// a + b + c, all int.
	ab := binary(ident("a"), ident("b"), "a + b")
	abc := binary(ab, ident("c"), "a + b + c")
	o.SetType(ab, intType)
	o.SetType(abc, intType)

	c := NewConverter(ast.NewEnvironment(u, nil), o)
	got, err := c.Convert(abc)
	require.NoError(t, err)
	ie := got.(*ast.InfixExpression)
	assert.Equal(t, 3, ie.Operands().Len())
	assert.Same(t, intType, ie.TypeMirror())

	// (1 + 2) + "s" keeps the numeric sum as its own operand.
	sum := binary(frontend.NewSyntaxNode("decimal_integer_literal", "1"), frontend.NewSyntaxNode("decimal_integer_literal", "2"), "1 + 2")
	concat := binary(sum, frontend.NewSyntaxNode("string_literal", `"s"`), `1 + 2 + "s"`)
	o.SetType(sum, intType)
	o.SetType(concat, u.StringType())

	got, err = c.Convert(concat)
	require.NoError(t, err)
	ie = got.(*ast.InfixExpression)
	require.Equal(t, 2, ie.Operands().Len())
	inner, ok := ie.Operands().Get(0).(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, 2, inner.Operands().Len())
	lit := ie.Operands().Get(1).(*ast.StringLiteral)
	assert.Equal(t, "s", lit.LiteralValue())
}

func TestConvert_Literals(t *testing.T) {
	tests := []struct {
		kind, text string
		want       any
	}{
		{"decimal_integer_literal", "42", int32(42)},
		{"hex_integer_literal", "0xFFL", int64(255)},
		{"decimal_floating_point_literal", "1.5f", float32(1.5)},
		{"character_literal", `'\n'`, '\n'},
		{"true", "true", true},
		{"string_literal", `"a\tb"`, "a\tb"},
	}
	c := NewConverter(nil, nil)
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := c.Convert(frontend.NewSyntaxNode(tt.kind, tt.text))
			require.NoError(t, err)
			e := got.(ast.Expression)
			assert.Equal(t, tt.want, e.ConstantValue())
			assert.NotNil(t, e.TypeMirror())
		})
	}
}

func TestConvert_LambdaNeedsSourceLevel8(t *testing.T) {
	lambda := func() *frontend.SyntaxNode {
		return frontend.NewSyntaxNode("lambda_expression", "x -> x").
			Append("parameters", ident("x")).
			Append("", frontend.NewToken("->")).
			Append("body", ident("x"))
	}

	old := ast.NewEnvironment(binding.NewUniverse(), semver.MustParse("1.7.0"))
	_, err := NewConverter(old, nil).Convert(lambda())
	assert.True(t, errors.Is(err, ErrUnsupported), "got %v", err)

	got, err := NewConverter(nil, nil).Convert(lambda())
	require.NoError(t, err)
	le := got.(*ast.LambdaExpression)
	require.Equal(t, 1, le.Parameters().Len())
	assert.Equal(t, "x", le.Parameters().Get(0).Name().Identifier())
	assert.IsType(t, &ast.SimpleName{}, le.Body())
}

func TestConvert_SwitchGroups(t *testing.T) {
	label := func(text string, exprs ...*frontend.SyntaxNode) *frontend.SyntaxNode {
		l := frontend.NewSyntaxNode("switch_label", text)
		for _, e := range exprs {
			l.Add(e)
		}
		return l
	}
	brk := frontend.NewSyntaxNode("break_statement", "break;").Add(frontend.NewToken("break"), frontend.NewToken(";"))
	group1 := frontend.NewSyntaxNode("switch_block_statement_group", "case 1: case 2: break;").
		Add(label("case 1", frontend.NewSyntaxNode("decimal_integer_literal", "1")),
			label("case 2", frontend.NewSyntaxNode("decimal_integer_literal", "2")),
			brk)
	group2 := frontend.NewSyntaxNode("switch_block_statement_group", "default: break;").
		Add(label("default"), frontend.NewSyntaxNode("break_statement", "break;"))
	body := frontend.NewSyntaxNode("switch_block", "{...}").Add(group1, group2)
	cond := frontend.NewSyntaxNode("parenthesized_expression", "(k)").Add(ident("k"))
	sw := frontend.NewSyntaxNode("switch_expression", "switch (k) {...}").
		Append("condition", cond).
		Append("body", body)
	stmt := frontend.NewSyntaxNode("expression_statement", "switch (k) {...}").Add(sw)

	got, err := NewConverter(nil, nil).Convert(stmt)
	require.NoError(t, err)
	ss := got.(*ast.SwitchStatement)

	var kinds []string
	for _, s := range ss.Statements().Slice() {
		kinds = append(kinds, s.Kind().String())
	}
	assert.Equal(t, []string{"SwitchCase", "SwitchCase", "BreakStatement", "SwitchCase", "BreakStatement"}, kinds)
	assert.True(t, ss.Statements().Get(3).(*ast.SwitchCase).IsDefault())
	require.NoError(t, ast.Validate(ss))
}

func TestConvert_SwitchRuleUnsupported(t *testing.T) {
	rule := frontend.NewSyntaxNode("switch_rule", "case 1 -> {}")
	sw := frontend.NewSyntaxNode("switch_expression", "switch (k) {...}").
		Append("condition", ident("k")).
		Append("body", frontend.NewSyntaxNode("switch_block", "{...}").Add(rule))
	_, err := NewConverter(nil, nil).Convert(frontend.NewSyntaxNode("expression_statement", "").Add(sw))
	assert.ErrorIs(t, err, ErrUnsupported)
}
