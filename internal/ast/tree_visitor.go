package ast

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// accept runs the visit protocol for n. A panic raised while visiting n or
// its subtree is wrapped once, at the innermost node, in a *TraversalError
// carrying that node's file and line.
func accept(n Node, v Visitor) {
	defer func() {
		if r := recover(); r != nil {
			panic(wrapTraversal(n, r))
		}
	}()
	if v.PreVisit(n) {
		n.acceptInner(v)
	}
	v.PostVisit(n)
}

func wrapTraversal(n Node, r any) *TraversalError {
	if te, ok := r.(*TraversalError); ok {
		return te
	}
	var err error
	switch x := r.(type) {
	case error:
		err = x
	default:
		err = fmt.Errorf("%v", x)
	}
	te := &TraversalError{Kind: n.Kind(), Err: err, Line: -1, Stack: debug.Stack()}
	for cur := n; cur != nil; cur = cur.Parent() {
		if te.Line <= 0 && cur.LineNumber() > 0 {
			te.Line = cur.LineNumber()
		}
		if u, ok := cur.(*CompilationUnit); ok {
			te.File = u.SourceFilePath()
		}
	}
	return te
}

// Fail aborts the current traversal with err. Run returns it wrapped in a
// *TraversalError locating the node being visited.
func Fail(err error) {
	panic(err)
}

// Failf is Fail with a formatted error.
func Failf(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}

// TreeVisitor is embedded by visitors that need the compilation unit being
// traversed and its environment. Run fills both before the traversal starts
// and restores them afterwards.
type TreeVisitor struct {
	BaseVisitor
	Unit *CompilationUnit
	Env  *Environment
}

func (tv *TreeVisitor) treeVisitor() *TreeVisitor { return tv }

type contextVisitor interface {
	treeVisitor() *TreeVisitor
}

// Run traverses root with v. Visitors embedding TreeVisitor get the enclosing
// compilation unit and its environment for the duration of the call. A
// failure inside the traversal is returned as a *TraversalError; invariant
// violations surface the same way, wrapped around their *InvariantError.
func Run(v Visitor, root Node) (err error) {
	if isNil(root) {
		return nil
	}
	if cv, ok := v.(contextVisitor); ok {
		tv := cv.treeVisitor()
		prevUnit, prevEnv := tv.Unit, tv.Env
		tv.Unit = EnclosingUnit(root)
		tv.Env = nil
		if tv.Unit != nil {
			tv.Env = tv.Unit.Env()
		}
		defer func() {
			tv.Unit, tv.Env = prevUnit, prevEnv
		}()
	}
	defer func() {
		if r := recover(); r != nil {
			te, ok := r.(*TraversalError)
			if !ok {
				panic(r)
			}
			err = te
		}
	}()
	root.Accept(v)
	return nil
}

// IsTraversalError reports whether err came from a failed traversal.
func IsTraversalError(err error) bool {
	var te *TraversalError
	return errors.As(err, &te)
}
