package ast

import "github.com/orizon-lang/j2o/internal/binding"

// ArrayAccess is an array access.
type ArrayAccess struct {
	expressionBase
	array ChildLink[Expression]
	index ChildLink[Expression]
}

// NewArrayAccess returns a new ArrayAccess.
func NewArrayAccess() *ArrayAccess {
	n := &ArrayAccess{}
	n.pos = unknownPos
	n.array.init(n, "array", true)
	n.index.init(n, "index", true)
	return n
}

func (n *ArrayAccess) Kind() Kind       { return KindArrayAccess }
func (n *ArrayAccess) Accept(v Visitor) { accept(n, v) }

func (n *ArrayAccess) Array() Expression { return n.array.Get() }
func (n *ArrayAccess) Index() Expression { return n.index.Get() }

func (n *ArrayAccess) SetArray(array Expression) *ArrayAccess {
	n.array.Set(array)
	return n
}

func (n *ArrayAccess) SetIndex(index Expression) *ArrayAccess {
	n.index.Set(index)
	return n
}

func (n *ArrayAccess) slots() []slot {
	return []slot{&n.array, &n.index}
}

func (n *ArrayAccess) acceptInner(v Visitor) {
	if v.VisitArrayAccess(n) {
		acceptChildren(n, v)
	}
	v.EndVisitArrayAccess(n)
}

func (n *ArrayAccess) Copy() Node {
	c := NewArrayAccess()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// ArrayCreation is new T[n]... with optional initializer.
type ArrayCreation struct {
	expressionBase
	typ         ChildLink[*ArrayType]
	dimensions  ChildList[Expression]
	initializer ChildLink[*ArrayInitializer]
}

// NewArrayCreation returns a new ArrayCreation.
func NewArrayCreation() *ArrayCreation {
	n := &ArrayCreation{}
	n.pos = unknownPos
	n.typ.init(n, "type", true)
	n.dimensions.init(n, "dimensions")
	n.initializer.init(n, "initializer", false)
	return n
}

func (n *ArrayCreation) Kind() Kind       { return KindArrayCreation }
func (n *ArrayCreation) Accept(v Visitor) { accept(n, v) }

func (n *ArrayCreation) Type() *ArrayType                   { return n.typ.Get() }
func (n *ArrayCreation) Dimensions() *ChildList[Expression] { return &n.dimensions }
func (n *ArrayCreation) Initializer() *ArrayInitializer     { return n.initializer.Get() }

func (n *ArrayCreation) SetType(t *ArrayType) *ArrayCreation {
	n.typ.Set(t)
	return n
}

func (n *ArrayCreation) SetInitializer(initializer *ArrayInitializer) *ArrayCreation {
	n.initializer.Set(initializer)
	return n
}

func (n *ArrayCreation) slots() []slot {
	return []slot{&n.typ, &n.dimensions, &n.initializer}
}

func (n *ArrayCreation) acceptInner(v Visitor) {
	if v.VisitArrayCreation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitArrayCreation(n)
}

func (n *ArrayCreation) Copy() Node {
	c := NewArrayCreation()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// ArrayInitializer is an array initializer.
type ArrayInitializer struct {
	expressionBase
	expressions ChildList[Expression]
}

// NewArrayInitializer returns a new ArrayInitializer.
func NewArrayInitializer() *ArrayInitializer {
	n := &ArrayInitializer{}
	n.pos = unknownPos
	n.expressions.init(n, "expressions")
	return n
}

func (n *ArrayInitializer) Kind() Kind       { return KindArrayInitializer }
func (n *ArrayInitializer) Accept(v Visitor) { accept(n, v) }

func (n *ArrayInitializer) Expressions() *ChildList[Expression] { return &n.expressions }

func (n *ArrayInitializer) slots() []slot {
	return []slot{&n.expressions}
}

func (n *ArrayInitializer) acceptInner(v Visitor) {
	if v.VisitArrayInitializer(n) {
		acceptChildren(n, v)
	}
	v.EndVisitArrayInitializer(n)
}

func (n *ArrayInitializer) Copy() Node {
	c := NewArrayInitializer()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// Assignment is an assignment.
type Assignment struct {
	expressionBase
	leftHandSide  ChildLink[Expression]
	rightHandSide ChildLink[Expression]
	operator      AssignOp
}

// NewAssignment returns a new Assignment.
func NewAssignment(operator AssignOp) *Assignment {
	n := &Assignment{operator: operator}
	n.pos = unknownPos
	n.leftHandSide.init(n, "leftHandSide", true)
	n.rightHandSide.init(n, "rightHandSide", true)
	return n
}

func (n *Assignment) Kind() Kind       { return KindAssignment }
func (n *Assignment) Accept(v Visitor) { accept(n, v) }

func (n *Assignment) LeftHandSide() Expression  { return n.leftHandSide.Get() }
func (n *Assignment) RightHandSide() Expression { return n.rightHandSide.Get() }
func (n *Assignment) Operator() AssignOp        { return n.operator }

func (n *Assignment) SetLeftHandSide(leftHandSide Expression) *Assignment {
	n.leftHandSide.Set(leftHandSide)
	return n
}

func (n *Assignment) SetRightHandSide(rightHandSide Expression) *Assignment {
	n.rightHandSide.Set(rightHandSide)
	return n
}

func (n *Assignment) SetOperator(operator AssignOp) *Assignment {
	n.operator = operator
	return n
}

func (n *Assignment) slots() []slot {
	return []slot{&n.leftHandSide, &n.rightHandSide}
}

func (n *Assignment) acceptInner(v Visitor) {
	if v.VisitAssignment(n) {
		acceptChildren(n, v)
	}
	v.EndVisitAssignment(n)
}

func (n *Assignment) Copy() Node {
	c := NewAssignment(n.operator)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// CastExpression is a cast expression.
type CastExpression struct {
	expressionBase
	typ        ChildLink[Type]
	expression ChildLink[Expression]
}

// NewCastExpression returns a new CastExpression.
func NewCastExpression() *CastExpression {
	n := &CastExpression{}
	n.pos = unknownPos
	n.typ.init(n, "type", true)
	n.expression.init(n, "expression", true)
	return n
}

func (n *CastExpression) Kind() Kind       { return KindCastExpression }
func (n *CastExpression) Accept(v Visitor) { accept(n, v) }

func (n *CastExpression) Type() Type             { return n.typ.Get() }
func (n *CastExpression) Expression() Expression { return n.expression.Get() }

func (n *CastExpression) SetType(t Type) *CastExpression {
	n.typ.Set(t)
	return n
}

func (n *CastExpression) SetExpression(expression Expression) *CastExpression {
	n.expression.Set(expression)
	return n
}

func (n *CastExpression) slots() []slot {
	return []slot{&n.typ, &n.expression}
}

func (n *CastExpression) acceptInner(v Visitor) {
	if v.VisitCastExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitCastExpression(n)
}

func (n *CastExpression) Copy() Node {
	c := NewCastExpression()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// Rebind replaces the resolved type of the cast and of its type node.
func (n *CastExpression) Rebind(t binding.Type) *CastExpression {
	n.typeMirror = t
	if tn := n.typ.Get(); tn != nil {
		tn.SetTypeMirror(t)
	}
	return n
}

// ClassInstanceCreation is a new expression, optionally with an outer
// instance and an anonymous class body.
type ClassInstanceCreation struct {
	expressionBase
	expression                ChildLink[Expression]
	typ                       ChildLink[Type]
	arguments                 ChildList[Expression]
	anonymousClassDeclaration ChildLink[*AnonymousClassDeclaration]
	element                   *binding.ExecutableElement
}

// NewClassInstanceCreation returns a new ClassInstanceCreation.
func NewClassInstanceCreation() *ClassInstanceCreation {
	n := &ClassInstanceCreation{}
	n.pos = unknownPos
	n.expression.init(n, "expression", false)
	n.typ.init(n, "type", true)
	n.arguments.init(n, "arguments")
	n.anonymousClassDeclaration.init(n, "anonymousClassDeclaration", false)
	return n
}

func (n *ClassInstanceCreation) Kind() Kind       { return KindClassInstanceCreation }
func (n *ClassInstanceCreation) Accept(v Visitor) { accept(n, v) }

func (n *ClassInstanceCreation) Expression() Expression                                { return n.expression.Get() }
func (n *ClassInstanceCreation) Type() Type                                            { return n.typ.Get() }
func (n *ClassInstanceCreation) Arguments() *ChildList[Expression]                     { return &n.arguments }
func (n *ClassInstanceCreation) AnonymousClassDeclaration() *AnonymousClassDeclaration { return n.anonymousClassDeclaration.Get() }
func (n *ClassInstanceCreation) ExecutableElement() *binding.ExecutableElement         { return n.element }

func (n *ClassInstanceCreation) SetExpression(expression Expression) *ClassInstanceCreation {
	n.expression.Set(expression)
	return n
}

func (n *ClassInstanceCreation) SetType(t Type) *ClassInstanceCreation {
	n.typ.Set(t)
	return n
}

func (n *ClassInstanceCreation) SetAnonymousClassDeclaration(anonymousClassDeclaration *AnonymousClassDeclaration) *ClassInstanceCreation {
	n.anonymousClassDeclaration.Set(anonymousClassDeclaration)
	return n
}

func (n *ClassInstanceCreation) SetExecutableElement(element *binding.ExecutableElement) *ClassInstanceCreation {
	n.element = element
	return n
}

func (n *ClassInstanceCreation) slots() []slot {
	return []slot{&n.expression, &n.typ, &n.arguments, &n.anonymousClassDeclaration}
}

func (n *ClassInstanceCreation) acceptInner(v Visitor) {
	if v.VisitClassInstanceCreation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitClassInstanceCreation(n)
}

func (n *ClassInstanceCreation) Copy() Node {
	c := NewClassInstanceCreation()
	c.typeMirror = n.typeMirror
	c.element = n.element
	copyNode(c, n)
	return c
}

// CommaExpression evaluates its expressions in order. Only passes create it.
type CommaExpression struct {
	expressionBase
	expressions ChildList[Expression]
}

// NewCommaExpression returns a new CommaExpression.
func NewCommaExpression() *CommaExpression {
	n := &CommaExpression{}
	n.pos = unknownPos
	n.expressions.init(n, "expressions")
	return n
}

func (n *CommaExpression) Kind() Kind       { return KindCommaExpression }
func (n *CommaExpression) Accept(v Visitor) { accept(n, v) }

func (n *CommaExpression) Expressions() *ChildList[Expression] { return &n.expressions }

func (n *CommaExpression) slots() []slot {
	return []slot{&n.expressions}
}

func (n *CommaExpression) acceptInner(v Visitor) {
	if v.VisitCommaExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitCommaExpression(n)
}

func (n *CommaExpression) Copy() Node {
	c := NewCommaExpression()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// ConditionalExpression is a conditional expression.
type ConditionalExpression struct {
	expressionBase
	expression     ChildLink[Expression]
	thenExpression ChildLink[Expression]
	elseExpression ChildLink[Expression]
}

// NewConditionalExpression returns a new ConditionalExpression.
func NewConditionalExpression() *ConditionalExpression {
	n := &ConditionalExpression{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	n.thenExpression.init(n, "thenExpression", true)
	n.elseExpression.init(n, "elseExpression", true)
	return n
}

func (n *ConditionalExpression) Kind() Kind       { return KindConditionalExpression }
func (n *ConditionalExpression) Accept(v Visitor) { accept(n, v) }

func (n *ConditionalExpression) Expression() Expression     { return n.expression.Get() }
func (n *ConditionalExpression) ThenExpression() Expression { return n.thenExpression.Get() }
func (n *ConditionalExpression) ElseExpression() Expression { return n.elseExpression.Get() }

func (n *ConditionalExpression) SetExpression(expression Expression) *ConditionalExpression {
	n.expression.Set(expression)
	return n
}

func (n *ConditionalExpression) SetThenExpression(thenExpression Expression) *ConditionalExpression {
	n.thenExpression.Set(thenExpression)
	return n
}

func (n *ConditionalExpression) SetElseExpression(elseExpression Expression) *ConditionalExpression {
	n.elseExpression.Set(elseExpression)
	return n
}

func (n *ConditionalExpression) slots() []slot {
	return []slot{&n.expression, &n.thenExpression, &n.elseExpression}
}

func (n *ConditionalExpression) acceptInner(v Visitor) {
	if v.VisitConditionalExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitConditionalExpression(n)
}

func (n *ConditionalExpression) Copy() Node {
	c := NewConditionalExpression()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// FieldAccess is a field access.
type FieldAccess struct {
	expressionBase
	expression ChildLink[Expression]
	name       ChildLink[*SimpleName]
}

// NewFieldAccess returns a new FieldAccess.
func NewFieldAccess() *FieldAccess {
	n := &FieldAccess{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	n.name.init(n, "name", true)
	return n
}

func (n *FieldAccess) Kind() Kind       { return KindFieldAccess }
func (n *FieldAccess) Accept(v Visitor) { accept(n, v) }

func (n *FieldAccess) Expression() Expression { return n.expression.Get() }
func (n *FieldAccess) Name() *SimpleName      { return n.name.Get() }

func (n *FieldAccess) SetExpression(expression Expression) *FieldAccess {
	n.expression.Set(expression)
	return n
}

func (n *FieldAccess) SetName(name *SimpleName) *FieldAccess {
	n.name.Set(name)
	return n
}

func (n *FieldAccess) slots() []slot {
	return []slot{&n.expression, &n.name}
}

func (n *FieldAccess) acceptInner(v Visitor) {
	if v.VisitFieldAccess(n) {
		acceptChildren(n, v)
	}
	v.EndVisitFieldAccess(n)
}

func (n *FieldAccess) Copy() Node {
	c := NewFieldAccess()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// VariableElement returns the field the access resolves to, or nil.
func (n *FieldAccess) VariableElement() *binding.VariableElement {
	return variableOf(n.name.Get())
}

// FunctionInvocation calls a FunctionDeclaration by name.
type FunctionInvocation struct {
	expressionBase
	arguments ChildList[Expression]
	name      string
}

// NewFunctionInvocation returns a new FunctionInvocation.
func NewFunctionInvocation(name string) *FunctionInvocation {
	n := &FunctionInvocation{name: name}
	n.pos = unknownPos
	n.arguments.init(n, "arguments")
	return n
}

func (n *FunctionInvocation) Kind() Kind       { return KindFunctionInvocation }
func (n *FunctionInvocation) Accept(v Visitor) { accept(n, v) }

func (n *FunctionInvocation) Arguments() *ChildList[Expression] { return &n.arguments }
func (n *FunctionInvocation) Name() string                      { return n.name }

func (n *FunctionInvocation) slots() []slot {
	return []slot{&n.arguments}
}

func (n *FunctionInvocation) acceptInner(v Visitor) {
	if v.VisitFunctionInvocation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitFunctionInvocation(n)
}

func (n *FunctionInvocation) Copy() Node {
	c := NewFunctionInvocation(n.name)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// InfixExpression applies one operator to two or more operands, left to right.
type InfixExpression struct {
	expressionBase
	operands ChildList[Expression]
	operator InfixOp
}

// NewInfixExpression returns a new InfixExpression.
func NewInfixExpression(operator InfixOp) *InfixExpression {
	n := &InfixExpression{operator: operator}
	n.pos = unknownPos
	n.operands.init(n, "operands")
	return n
}

func (n *InfixExpression) Kind() Kind       { return KindInfixExpression }
func (n *InfixExpression) Accept(v Visitor) { accept(n, v) }

func (n *InfixExpression) Operands() *ChildList[Expression] { return &n.operands }
func (n *InfixExpression) Operator() InfixOp                { return n.operator }

func (n *InfixExpression) SetOperator(operator InfixOp) *InfixExpression {
	n.operator = operator
	return n
}

func (n *InfixExpression) slots() []slot {
	return []slot{&n.operands}
}

func (n *InfixExpression) acceptInner(v Visitor) {
	if v.VisitInfixExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitInfixExpression(n)
}

func (n *InfixExpression) Copy() Node {
	c := NewInfixExpression(n.operator)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// InstanceofExpression is an instanceof expression.
type InstanceofExpression struct {
	expressionBase
	leftOperand  ChildLink[Expression]
	rightOperand ChildLink[Type]
}

// NewInstanceofExpression returns a new InstanceofExpression.
func NewInstanceofExpression() *InstanceofExpression {
	n := &InstanceofExpression{}
	n.pos = unknownPos
	n.leftOperand.init(n, "leftOperand", true)
	n.rightOperand.init(n, "rightOperand", true)
	return n
}

func (n *InstanceofExpression) Kind() Kind       { return KindInstanceofExpression }
func (n *InstanceofExpression) Accept(v Visitor) { accept(n, v) }

func (n *InstanceofExpression) LeftOperand() Expression { return n.leftOperand.Get() }
func (n *InstanceofExpression) RightOperand() Type      { return n.rightOperand.Get() }

func (n *InstanceofExpression) SetLeftOperand(leftOperand Expression) *InstanceofExpression {
	n.leftOperand.Set(leftOperand)
	return n
}

func (n *InstanceofExpression) SetRightOperand(rightOperand Type) *InstanceofExpression {
	n.rightOperand.Set(rightOperand)
	return n
}

func (n *InstanceofExpression) slots() []slot {
	return []slot{&n.leftOperand, &n.rightOperand}
}

func (n *InstanceofExpression) acceptInner(v Visitor) {
	if v.VisitInstanceofExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitInstanceofExpression(n)
}

func (n *InstanceofExpression) Copy() Node {
	c := NewInstanceofExpression()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// LambdaExpression carries its functional interface type and the method it
// implements.
type LambdaExpression struct {
	expressionBase
	parameters ChildList[VariableDeclaration]
	body       ChildLink[Node]
	descriptor *binding.ExecutableElement
}

// NewLambdaExpression returns a new LambdaExpression.
func NewLambdaExpression() *LambdaExpression {
	n := &LambdaExpression{}
	n.pos = unknownPos
	n.parameters.init(n, "parameters")
	n.body.init(n, "body", true)
	return n
}

func (n *LambdaExpression) Kind() Kind       { return KindLambdaExpression }
func (n *LambdaExpression) Accept(v Visitor) { accept(n, v) }

func (n *LambdaExpression) Parameters() *ChildList[VariableDeclaration] { return &n.parameters }
func (n *LambdaExpression) Body() Node                                  { return n.body.Get() }
func (n *LambdaExpression) Descriptor() *binding.ExecutableElement      { return n.descriptor }

func (n *LambdaExpression) SetBody(body Node) *LambdaExpression {
	n.body.Set(body)
	return n
}

func (n *LambdaExpression) SetDescriptor(descriptor *binding.ExecutableElement) *LambdaExpression {
	n.descriptor = descriptor
	return n
}

func (n *LambdaExpression) slots() []slot {
	return []slot{&n.parameters, &n.body}
}

func (n *LambdaExpression) acceptInner(v Visitor) {
	if v.VisitLambdaExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitLambdaExpression(n)
}

func (n *LambdaExpression) Copy() Node {
	c := NewLambdaExpression()
	c.typeMirror = n.typeMirror
	c.descriptor = n.descriptor
	copyNode(c, n)
	return c
}

// Rebind overwrites the functional interface type, typically once a cast
// makes an ambiguous target type known.
func (n *LambdaExpression) Rebind(t binding.Type, descriptor *binding.ExecutableElement) *LambdaExpression {
	n.typeMirror = t
	n.descriptor = descriptor
	return n
}

// MethodInvocation calls a method, optionally on a receiver expression.
type MethodInvocation struct {
	expressionBase
	expression ChildLink[Expression]
	name       ChildLink[*SimpleName]
	arguments  ChildList[Expression]
	element    *binding.ExecutableElement
}

// NewMethodInvocation returns a new MethodInvocation.
func NewMethodInvocation() *MethodInvocation {
	n := &MethodInvocation{}
	n.pos = unknownPos
	n.expression.init(n, "expression", false)
	n.name.init(n, "name", true)
	n.arguments.init(n, "arguments")
	return n
}

func (n *MethodInvocation) Kind() Kind       { return KindMethodInvocation }
func (n *MethodInvocation) Accept(v Visitor) { accept(n, v) }

func (n *MethodInvocation) Expression() Expression                        { return n.expression.Get() }
func (n *MethodInvocation) Name() *SimpleName                             { return n.name.Get() }
func (n *MethodInvocation) Arguments() *ChildList[Expression]             { return &n.arguments }
func (n *MethodInvocation) ExecutableElement() *binding.ExecutableElement { return n.element }

func (n *MethodInvocation) SetExpression(expression Expression) *MethodInvocation {
	n.expression.Set(expression)
	return n
}

func (n *MethodInvocation) SetName(name *SimpleName) *MethodInvocation {
	n.name.Set(name)
	return n
}

func (n *MethodInvocation) SetExecutableElement(element *binding.ExecutableElement) *MethodInvocation {
	n.element = element
	return n
}

func (n *MethodInvocation) slots() []slot {
	return []slot{&n.expression, &n.name, &n.arguments}
}

func (n *MethodInvocation) acceptInner(v Visitor) {
	if v.VisitMethodInvocation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitMethodInvocation(n)
}

func (n *MethodInvocation) Copy() Node {
	c := NewMethodInvocation()
	c.typeMirror = n.typeMirror
	c.element = n.element
	copyNode(c, n)
	return c
}

// RebindMethod points the invocation at a different method, for example a
// bridge or a renamed overload, and updates the name and result type.
func (n *MethodInvocation) RebindMethod(m *binding.ExecutableElement) *MethodInvocation {
	n.element = m
	if m != nil {
		n.typeMirror = m.ReturnType()
		if name := n.name.Get(); name != nil {
			name.Rebind(m)
		}
	}
	return n
}

// ParenthesizedExpression is a parenthesized expression.
type ParenthesizedExpression struct {
	expressionBase
	expression ChildLink[Expression]
}

// NewParenthesizedExpression returns a new ParenthesizedExpression.
func NewParenthesizedExpression() *ParenthesizedExpression {
	n := &ParenthesizedExpression{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	return n
}

func (n *ParenthesizedExpression) Kind() Kind       { return KindParenthesizedExpression }
func (n *ParenthesizedExpression) Accept(v Visitor) { accept(n, v) }

func (n *ParenthesizedExpression) Expression() Expression { return n.expression.Get() }

func (n *ParenthesizedExpression) SetExpression(expression Expression) *ParenthesizedExpression {
	n.expression.Set(expression)
	return n
}

func (n *ParenthesizedExpression) slots() []slot {
	return []slot{&n.expression}
}

func (n *ParenthesizedExpression) acceptInner(v Visitor) {
	if v.VisitParenthesizedExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitParenthesizedExpression(n)
}

func (n *ParenthesizedExpression) Copy() Node {
	c := NewParenthesizedExpression()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// PostfixExpression is a postfix expression.
type PostfixExpression struct {
	expressionBase
	operand  ChildLink[Expression]
	operator PostfixOp
}

// NewPostfixExpression returns a new PostfixExpression.
func NewPostfixExpression(operator PostfixOp) *PostfixExpression {
	n := &PostfixExpression{operator: operator}
	n.pos = unknownPos
	n.operand.init(n, "operand", true)
	return n
}

func (n *PostfixExpression) Kind() Kind       { return KindPostfixExpression }
func (n *PostfixExpression) Accept(v Visitor) { accept(n, v) }

func (n *PostfixExpression) Operand() Expression { return n.operand.Get() }
func (n *PostfixExpression) Operator() PostfixOp { return n.operator }

func (n *PostfixExpression) SetOperand(operand Expression) *PostfixExpression {
	n.operand.Set(operand)
	return n
}

func (n *PostfixExpression) SetOperator(operator PostfixOp) *PostfixExpression {
	n.operator = operator
	return n
}

func (n *PostfixExpression) slots() []slot {
	return []slot{&n.operand}
}

func (n *PostfixExpression) acceptInner(v Visitor) {
	if v.VisitPostfixExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitPostfixExpression(n)
}

func (n *PostfixExpression) Copy() Node {
	c := NewPostfixExpression(n.operator)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// PrefixExpression is a prefix expression.
type PrefixExpression struct {
	expressionBase
	operand  ChildLink[Expression]
	operator PrefixOp
}

// NewPrefixExpression returns a new PrefixExpression.
func NewPrefixExpression(operator PrefixOp) *PrefixExpression {
	n := &PrefixExpression{operator: operator}
	n.pos = unknownPos
	n.operand.init(n, "operand", true)
	return n
}

func (n *PrefixExpression) Kind() Kind       { return KindPrefixExpression }
func (n *PrefixExpression) Accept(v Visitor) { accept(n, v) }

func (n *PrefixExpression) Operand() Expression { return n.operand.Get() }
func (n *PrefixExpression) Operator() PrefixOp  { return n.operator }

func (n *PrefixExpression) SetOperand(operand Expression) *PrefixExpression {
	n.operand.Set(operand)
	return n
}

func (n *PrefixExpression) SetOperator(operator PrefixOp) *PrefixExpression {
	n.operator = operator
	return n
}

func (n *PrefixExpression) slots() []slot {
	return []slot{&n.operand}
}

func (n *PrefixExpression) acceptInner(v Visitor) {
	if v.VisitPrefixExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitPrefixExpression(n)
}

func (n *PrefixExpression) Copy() Node {
	c := NewPrefixExpression(n.operator)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// SuperFieldAccess is a super field access.
type SuperFieldAccess struct {
	expressionBase
	qualifier ChildLink[Name]
	name      ChildLink[*SimpleName]
}

// NewSuperFieldAccess returns a new SuperFieldAccess.
func NewSuperFieldAccess() *SuperFieldAccess {
	n := &SuperFieldAccess{}
	n.pos = unknownPos
	n.qualifier.init(n, "qualifier", false)
	n.name.init(n, "name", true)
	return n
}

func (n *SuperFieldAccess) Kind() Kind       { return KindSuperFieldAccess }
func (n *SuperFieldAccess) Accept(v Visitor) { accept(n, v) }

func (n *SuperFieldAccess) Qualifier() Name   { return n.qualifier.Get() }
func (n *SuperFieldAccess) Name() *SimpleName { return n.name.Get() }

func (n *SuperFieldAccess) SetQualifier(qualifier Name) *SuperFieldAccess {
	n.qualifier.Set(qualifier)
	return n
}

func (n *SuperFieldAccess) SetName(name *SimpleName) *SuperFieldAccess {
	n.name.Set(name)
	return n
}

func (n *SuperFieldAccess) slots() []slot {
	return []slot{&n.qualifier, &n.name}
}

func (n *SuperFieldAccess) acceptInner(v Visitor) {
	if v.VisitSuperFieldAccess(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSuperFieldAccess(n)
}

func (n *SuperFieldAccess) Copy() Node {
	c := NewSuperFieldAccess()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// VariableElement returns the field the access resolves to, or nil.
func (n *SuperFieldAccess) VariableElement() *binding.VariableElement {
	return variableOf(n.name.Get())
}

// SuperMethodInvocation is a super method invocation.
type SuperMethodInvocation struct {
	expressionBase
	qualifier ChildLink[Name]
	name      ChildLink[*SimpleName]
	arguments ChildList[Expression]
	element   *binding.ExecutableElement
}

// NewSuperMethodInvocation returns a new SuperMethodInvocation.
func NewSuperMethodInvocation() *SuperMethodInvocation {
	n := &SuperMethodInvocation{}
	n.pos = unknownPos
	n.qualifier.init(n, "qualifier", false)
	n.name.init(n, "name", true)
	n.arguments.init(n, "arguments")
	return n
}

func (n *SuperMethodInvocation) Kind() Kind       { return KindSuperMethodInvocation }
func (n *SuperMethodInvocation) Accept(v Visitor) { accept(n, v) }

func (n *SuperMethodInvocation) Qualifier() Name                               { return n.qualifier.Get() }
func (n *SuperMethodInvocation) Name() *SimpleName                             { return n.name.Get() }
func (n *SuperMethodInvocation) Arguments() *ChildList[Expression]             { return &n.arguments }
func (n *SuperMethodInvocation) ExecutableElement() *binding.ExecutableElement { return n.element }

func (n *SuperMethodInvocation) SetQualifier(qualifier Name) *SuperMethodInvocation {
	n.qualifier.Set(qualifier)
	return n
}

func (n *SuperMethodInvocation) SetName(name *SimpleName) *SuperMethodInvocation {
	n.name.Set(name)
	return n
}

func (n *SuperMethodInvocation) SetExecutableElement(element *binding.ExecutableElement) *SuperMethodInvocation {
	n.element = element
	return n
}

func (n *SuperMethodInvocation) slots() []slot {
	return []slot{&n.qualifier, &n.name, &n.arguments}
}

func (n *SuperMethodInvocation) acceptInner(v Visitor) {
	if v.VisitSuperMethodInvocation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSuperMethodInvocation(n)
}

func (n *SuperMethodInvocation) Copy() Node {
	c := NewSuperMethodInvocation()
	c.typeMirror = n.typeMirror
	c.element = n.element
	copyNode(c, n)
	return c
}

// ThisExpression is a this expression.
type ThisExpression struct {
	expressionBase
	qualifier ChildLink[Name]
}

// NewThisExpression returns a new ThisExpression.
func NewThisExpression() *ThisExpression {
	n := &ThisExpression{}
	n.pos = unknownPos
	n.qualifier.init(n, "qualifier", false)
	return n
}

func (n *ThisExpression) Kind() Kind       { return KindThisExpression }
func (n *ThisExpression) Accept(v Visitor) { accept(n, v) }

func (n *ThisExpression) Qualifier() Name { return n.qualifier.Get() }

func (n *ThisExpression) SetQualifier(qualifier Name) *ThisExpression {
	n.qualifier.Set(qualifier)
	return n
}

func (n *ThisExpression) slots() []slot {
	return []slot{&n.qualifier}
}

func (n *ThisExpression) acceptInner(v Visitor) {
	if v.VisitThisExpression(n) {
		acceptChildren(n, v)
	}
	v.EndVisitThisExpression(n)
}

func (n *ThisExpression) Copy() Node {
	c := NewThisExpression()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}

// TypeLiteral is T.class.
type TypeLiteral struct {
	expressionBase
	typ ChildLink[Type]
}

// NewTypeLiteral returns a new TypeLiteral.
func NewTypeLiteral() *TypeLiteral {
	n := &TypeLiteral{}
	n.pos = unknownPos
	n.typ.init(n, "type", true)
	return n
}

func (n *TypeLiteral) Kind() Kind       { return KindTypeLiteral }
func (n *TypeLiteral) Accept(v Visitor) { accept(n, v) }

func (n *TypeLiteral) Type() Type { return n.typ.Get() }

func (n *TypeLiteral) SetType(t Type) *TypeLiteral {
	n.typ.Set(t)
	return n
}

func (n *TypeLiteral) slots() []slot {
	return []slot{&n.typ}
}

func (n *TypeLiteral) acceptInner(v Visitor) {
	if v.VisitTypeLiteral(n) {
		acceptChildren(n, v)
	}
	v.EndVisitTypeLiteral(n)
}

func (n *TypeLiteral) Copy() Node {
	c := NewTypeLiteral()
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}
