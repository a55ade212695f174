package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/j2o/internal/binding"
	"github.com/orizon-lang/j2o/internal/position"
)

func label(n Node) string {
	if s, ok := n.(*SimpleName); ok {
		return "SimpleName(" + s.Identifier() + ")"
	}
	return n.Kind().String()
}

// recorder logs PreVisit as the pre-order and PostVisit as the post-order.
type recorder struct {
	BaseVisitor
	pre  []string
	post []string
}

func (r *recorder) PreVisit(n Node) bool {
	r.pre = append(r.pre, label(n))
	return true
}

func (r *recorder) PostVisit(n Node) {
	r.post = append(r.post, label(n))
}

func preOrder(n Node) []string {
	r := &recorder{}
	n.Accept(r)
	return r.pre
}

func sampleBlock() *Block {
	ifStmt := NewIfStatement().
		SetExpression(NewSimpleName("c")).
		SetThenStatement(exprStmt("t")).
		SetElseStatement(exprStmt("e"))
	b := NewBlock()
	b.Statements().Add(exprStmt("a"), ifStmt, exprStmt("z"))
	return b
}

func TestTraversalOrder(t *testing.T) {
	r := &recorder{}
	sampleBlock().Accept(r)

	assert.Equal(t, []string{
		"Block",
		"ExpressionStatement", "SimpleName(a)",
		"IfStatement", "SimpleName(c)",
		"ExpressionStatement", "SimpleName(t)",
		"ExpressionStatement", "SimpleName(e)",
		"ExpressionStatement", "SimpleName(z)",
	}, r.pre)
	assert.Equal(t, []string{
		"SimpleName(a)", "ExpressionStatement",
		"SimpleName(c)",
		"SimpleName(t)", "ExpressionStatement",
		"SimpleName(e)", "ExpressionStatement",
		"IfStatement",
		"SimpleName(z)", "ExpressionStatement",
		"Block",
	}, r.post)
}

// phases logs the four callbacks for if statements and names.
type phases struct {
	BaseVisitor
	log      []string
	skipIf   bool
	skipName string
}

func (p *phases) PreVisit(n Node) bool {
	p.log = append(p.log, "pre "+label(n))
	if s, ok := n.(*SimpleName); ok && s.Identifier() == p.skipName {
		return false
	}
	return true
}

func (p *phases) PostVisit(n Node) { p.log = append(p.log, "post "+label(n)) }

func (p *phases) VisitIfStatement(*IfStatement) bool {
	p.log = append(p.log, "visit IfStatement")
	return !p.skipIf
}

func (p *phases) EndVisitIfStatement(*IfStatement) {
	p.log = append(p.log, "end IfStatement")
}

func (p *phases) VisitSimpleName(n *SimpleName) bool {
	p.log = append(p.log, "visit "+label(n))
	return true
}

func (p *phases) EndVisitSimpleName(n *SimpleName) {
	p.log = append(p.log, "end "+label(n))
}

func TestFourPhaseProtocol(t *testing.T) {
	ifStmt := NewIfStatement().SetExpression(NewSimpleName("c")).SetThenStatement(NewEmptyStatement())
	p := &phases{}
	ifStmt.Accept(p)
	assert.Equal(t, []string{
		"pre IfStatement",
		"visit IfStatement",
		"pre SimpleName(c)", "visit SimpleName(c)", "end SimpleName(c)", "post SimpleName(c)",
		"pre EmptyStatement", "post EmptyStatement",
		"end IfStatement",
		"post IfStatement",
	}, p.log)
}

func TestVisitFalseSkipsChildren(t *testing.T) {
	b := sampleBlock()
	p := &phases{skipIf: true}
	b.Accept(p)

	assert.Contains(t, p.log, "visit IfStatement")
	assert.Contains(t, p.log, "end IfStatement")
	assert.NotContains(t, p.log, "pre SimpleName(c)")
	assert.NotContains(t, p.log, "pre SimpleName(t)")
	assert.NotContains(t, p.log, "pre SimpleName(e)")
	assert.Contains(t, p.log, "visit SimpleName(z)", "siblings after the skipped node are still visited")
}

func TestPreVisitFalseSkipsNode(t *testing.T) {
	p := &phases{skipName: "a"}
	sampleBlock().Accept(p)
	assert.Contains(t, p.log, "pre SimpleName(a)")
	assert.Contains(t, p.log, "post SimpleName(a)")
	assert.NotContains(t, p.log, "visit SimpleName(a)")
	assert.NotContains(t, p.log, "end SimpleName(a)")
}

// remover deletes the first statement of its block when it reaches the
// statement named at.
type remover struct {
	BaseVisitor
	block   *Block
	at      string
	removed bool
	seen    []string
}

func (r *remover) VisitExpressionStatement(n *ExpressionStatement) bool {
	id := n.Expression().(*SimpleName).Identifier()
	r.seen = append(r.seen, id)
	if id == r.at && !r.removed {
		r.block.Statements().Remove(0)
		r.removed = true
	}
	return true
}

func TestRemoveSiblingDuringTraversal(t *testing.T) {
	b := NewBlock()
	b.Statements().Add(exprStmt("s1"), exprStmt("s2"), exprStmt("s3"), exprStmt("s4"), exprStmt("s5"))

	r := &remover{block: b, at: "s3"}
	require.NotPanics(t, func() { b.Accept(r) })
	assert.Equal(t, []string{"s1", "s2", "s3", "s4", "s5"}, r.seen)
	assert.Equal(t, 4, b.Statements().Len())

	again := &remover{block: b, at: "never"}
	b.Accept(again)
	assert.Equal(t, []string{"s2", "s3", "s4", "s5"}, again.seen)
}

// laterRemover removes a sibling the traversal has not reached yet.
type laterRemover struct {
	BaseVisitor
	block *Block
	seen  []string
}

func (r *laterRemover) VisitExpressionStatement(n *ExpressionStatement) bool {
	id := n.Expression().(*SimpleName).Identifier()
	r.seen = append(r.seen, id)
	if id == "s1" {
		r.block.Statements().Get(2).Remove()
		r.block.Statements().Add(exprStmt("s9"))
	}
	return true
}

func TestMutationAheadOfTraversal(t *testing.T) {
	b := NewBlock()
	b.Statements().Add(exprStmt("s1"), exprStmt("s2"), exprStmt("s3"))

	r := &laterRemover{block: b}
	b.Accept(r)
	assert.Equal(t, []string{"s1", "s2"}, r.seen, "removed siblings are skipped, appended ones wait for the next pass")
	assert.Equal(t, "s1, s2, s9", joinIDs(b))
}

func joinIDs(b *Block) string {
	out := ""
	for i, s := range b.Statements().Slice() {
		if i > 0 {
			out += ", "
		}
		out += s.(*ExpressionStatement).Expression().(*SimpleName).Identifier()
	}
	return out
}

func TestParenthesizedAssignmentShape(t *testing.T) {
	cond := NewConditionalExpression().
		SetExpression(NewSimpleName("a")).
		SetThenExpression(NewSimpleName("b")).
		SetElseExpression(NewSimpleName("c"))
	stmt := NewExpressionStatement().SetExpression(
		NewAssignment(AssignPlain).SetLeftHandSide(NewSimpleName("x")).SetRightHandSide(cond))

	want := []string{
		"ExpressionStatement", "Assignment", "SimpleName(x)",
		"ConditionalExpression", "SimpleName(a)", "SimpleName(b)", "SimpleName(c)",
	}
	assert.Equal(t, want, preOrder(stmt))
	assert.Equal(t, want, preOrder(stmt.Copy()))
}

type failAt struct {
	BaseVisitor
	err error
}

func (f *failAt) VisitMethodInvocation(*MethodInvocation) bool {
	Fail(f.err)
	return true
}

func unitWithCall(path string, line int) (*CompilationUnit, *MethodInvocation) {
	unit := NewCompilationUnit(nil, path, "Foo", "")
	td := NewTypeDeclaration().SetName(NewSimpleName("Foo"))
	m := NewMethodDeclaration().SetName(NewSimpleName("run")).SetBody(NewBlock())
	td.BodyDeclarations().Add(m)
	unit.Types().Add(td)
	call := NewMethodInvocation().SetName(NewSimpleName("go"))
	call.SetPosition(position.SourcePosition{Start: 100, Length: 4, Line: line})
	m.Body().Statements().Add(NewExpressionStatement().SetExpression(call))
	return unit, call
}

func TestTraversalErrorCarriesLocation(t *testing.T) {
	unit, _ := unitWithCall("Foo.src", 42)
	boom := errors.New("boom")

	err := Run(&failAt{err: boom}, unit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Foo.src")
	assert.Contains(t, err.Error(), "42")
	assert.Contains(t, err.Error(), "MethodInvocation")
	assert.ErrorIs(t, err, boom)
	assert.True(t, IsTraversalError(err))

	var te *TraversalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, KindMethodInvocation, te.Kind)
	assert.Equal(t, 42, te.Line)
	assert.NotEmpty(t, te.Stack)
}

func TestTraversalErrorUsesNearestLine(t *testing.T) {
	unit, call := unitWithCall("Bar.java", 0)
	stmt := call.Parent()
	stmt.SetPosition(position.SourcePosition{Start: 90, Length: 10, Line: 17})

	err := Run(&failAt{err: errors.New("x")}, unit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bar.java:17")
}

func TestRunWithoutUnit(t *testing.T) {
	call := NewMethodInvocation().SetName(NewSimpleName("go"))
	err := Run(&failAt{err: errors.New("bad")}, call)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<unknown>")
}

func TestInvariantViolationSurfacesThroughRun(t *testing.T) {
	unit, call := unitWithCall("Foo.src", 8)
	v := &stealer{victim: call.Name()}
	err := Run(v, unit)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyOwned)
	assert.Contains(t, err.Error(), "Foo.src:8")
}

type stealer struct {
	BaseVisitor
	victim *SimpleName
}

func (s *stealer) VisitMethodInvocation(n *MethodInvocation) bool {
	NewReturnStatement().SetExpression(s.victim)
	return true
}

type contextProbe struct {
	TreeVisitor
	units []*CompilationUnit
	envs  []*Environment
}

func (c *contextProbe) VisitMethodInvocation(*MethodInvocation) bool {
	c.units = append(c.units, c.Unit)
	c.envs = append(c.envs, c.Env)
	return true
}

func TestRunCapturesUnitContext(t *testing.T) {
	unit, call := unitWithCall("Foo.java", 3)
	env := NewEnvironment(binding.NewUniverse(), nil)
	unit.SetEnv(env)

	probe := &contextProbe{}
	require.NoError(t, Run(probe, call))
	require.Len(t, probe.units, 1)
	assert.Same(t, unit, probe.units[0])
	assert.Same(t, env, probe.envs[0])
	assert.Nil(t, probe.Unit, "context is cleared after the run")
	assert.Nil(t, probe.Env)
}

func TestRunNil(t *testing.T) {
	assert.NoError(t, Run(&BaseVisitor{}, nil))
}
