package translate

import (
	"github.com/orizon-lang/j2o/internal/ast"
)

// UnreachableCodeRemoverName is the configuration name of the remover.
const UnreachableCodeRemoverName = "remove-unreachable"

// NewUnreachableCodeRemover returns a pass that drops the statements of a
// block following a return, throw, break or continue, and replaces an if
// statement with a constant condition by the branch it takes.
func NewUnreachableCodeRemover() Pass {
	return VisitorPass(UnreachableCodeRemoverName, func() ast.Visitor { return &unreachableRemover{} })
}

type unreachableRemover struct {
	ast.TreeVisitor
}

// truncateAfter removes the siblings following s in its block. The block
// may be mid-iteration; removed siblings are not visited.
func truncateAfter(s ast.Statement) {
	block, ok := s.Parent().(*ast.Block)
	if !ok {
		return
	}
	stmts := block.Statements()
	i := stmts.IndexOf(s)
	if i < 0 {
		return
	}
	for stmts.Len() > i+1 {
		stmts.Remove(i + 1)
	}
}

func (r *unreachableRemover) VisitReturnStatement(n *ast.ReturnStatement) bool {
	truncateAfter(n)
	return true
}

func (r *unreachableRemover) VisitThrowStatement(n *ast.ThrowStatement) bool {
	truncateAfter(n)
	return true
}

func (r *unreachableRemover) VisitBreakStatement(n *ast.BreakStatement) bool {
	truncateAfter(n)
	return true
}

func (r *unreachableRemover) VisitContinueStatement(n *ast.ContinueStatement) bool {
	truncateAfter(n)
	return true
}

func (r *unreachableRemover) EndVisitIfStatement(n *ast.IfStatement) {
	cond := n.Expression()
	if cond == nil || n.Parent() == nil {
		return
	}
	taken, ok := cond.ConstantValue().(bool)
	if !ok {
		return
	}
	branch := n.ElseStatement()
	if taken {
		branch = n.ThenStatement()
	}
	if branch == nil {
		if _, inBlock := n.Parent().(*ast.Block); inBlock {
			n.Remove()
			return
		}
		empty := ast.NewEmptyStatement()
		empty.SetPosition(n.Position())
		n.ReplaceWith(empty)
		return
	}
	branch.Remove()
	n.ReplaceWith(branch)
	if terminates(branch) {
		truncateAfter(branch)
	}
}

func terminates(s ast.Statement) bool {
	switch s.(type) {
	case *ast.ReturnStatement, *ast.ThrowStatement, *ast.BreakStatement, *ast.ContinueStatement:
		return true
	}
	return false
}
