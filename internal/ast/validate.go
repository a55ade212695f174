package ast

import "fmt"

// Validate checks the subtree rooted at n: every required slot is filled and
// kind-specific shape rules hold. It reports the first problem found in
// traversal order.
func Validate(n Node) error {
	if isNil(n) {
		return nil
	}
	if err := validateNode(n); err != nil {
		return err
	}
	for _, c := range Children(n) {
		if err := Validate(c); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n Node) error {
	for _, s := range n.slots() {
		if s.isRequired() && len(s.nodes()) == 0 {
			return &ValidationError{Kind: n.Kind(), Field: s.slotName(), Line: n.LineNumber()}
		}
	}
	invalid := func(format string, args ...any) error {
		return &ValidationError{Kind: n.Kind(), Line: n.LineNumber(), Reason: fmt.Sprintf(format, args...)}
	}
	switch x := n.(type) {
	case *InfixExpression:
		if x.Operands().Len() < 2 {
			return invalid("%s needs at least two operands, has %d", x.Operator(), x.Operands().Len())
		}
	case *SwitchCase:
		if x.IsDefault() == (x.Expression() != nil) {
			return invalid("case must be either default or have an expression")
		}
	case *ArrayCreation:
		if x.Dimensions().IsEmpty() && x.Initializer() == nil {
			return invalid("array creation needs dimensions or an initializer")
		}
	case *TryStatement:
		if x.Resources().IsEmpty() && x.CatchClauses().IsEmpty() && x.Finally() == nil {
			return invalid("try needs a resource, a catch clause or a finally block")
		}
	case *CommaExpression:
		if x.Expressions().Len() < 2 {
			return invalid("comma expression needs at least two expressions")
		}
	case *MethodDeclaration:
		if !x.IsConstructor() && x.ReturnType() == nil {
			return invalid("method %s has no return type", identifierOf(x.Name()))
		}
	}
	return nil
}

func identifierOf(name *SimpleName) string {
	if name == nil {
		return "<anonymous>"
	}
	return name.Identifier()
}
