package ast

import "github.com/orizon-lang/j2o/internal/binding"

// AssertStatement is an assert statement.
type AssertStatement struct {
	statementBase
	expression ChildLink[Expression]
	message    ChildLink[Expression]
}

// NewAssertStatement returns a new AssertStatement.
func NewAssertStatement() *AssertStatement {
	n := &AssertStatement{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	n.message.init(n, "message", false)
	return n
}

func (n *AssertStatement) Kind() Kind       { return KindAssertStatement }
func (n *AssertStatement) Accept(v Visitor) { accept(n, v) }

func (n *AssertStatement) Expression() Expression { return n.expression.Get() }
func (n *AssertStatement) Message() Expression    { return n.message.Get() }

func (n *AssertStatement) SetExpression(expression Expression) *AssertStatement {
	n.expression.Set(expression)
	return n
}

func (n *AssertStatement) SetMessage(message Expression) *AssertStatement {
	n.message.Set(message)
	return n
}

func (n *AssertStatement) slots() []slot {
	return []slot{&n.expression, &n.message}
}

func (n *AssertStatement) acceptInner(v Visitor) {
	if v.VisitAssertStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitAssertStatement(n)
}

func (n *AssertStatement) Copy() Node {
	c := NewAssertStatement()
	copyNode(c, n)
	return c
}

// Block is a braced statement list.
type Block struct {
	statementBase
	statements         ChildList[Statement]
	hasAutoreleasePool bool
}

// NewBlock returns a new Block.
func NewBlock() *Block {
	n := &Block{}
	n.pos = unknownPos
	n.statements.init(n, "statements")
	return n
}

func (n *Block) Kind() Kind       { return KindBlock }
func (n *Block) Accept(v Visitor) { accept(n, v) }

func (n *Block) Statements() *ChildList[Statement] { return &n.statements }
func (n *Block) HasAutoreleasePool() bool          { return n.hasAutoreleasePool }

func (n *Block) SetHasAutoreleasePool(hasAutoreleasePool bool) *Block {
	n.hasAutoreleasePool = hasAutoreleasePool
	return n
}

func (n *Block) slots() []slot {
	return []slot{&n.statements}
}

func (n *Block) acceptInner(v Visitor) {
	if v.VisitBlock(n) {
		acceptChildren(n, v)
	}
	v.EndVisitBlock(n)
}

func (n *Block) Copy() Node {
	c := NewBlock()
	c.hasAutoreleasePool = n.hasAutoreleasePool
	copyNode(c, n)
	return c
}

// BreakStatement is a break statement.
type BreakStatement struct {
	statementBase
	label ChildLink[*SimpleName]
}

// NewBreakStatement returns a new BreakStatement.
func NewBreakStatement() *BreakStatement {
	n := &BreakStatement{}
	n.pos = unknownPos
	n.label.init(n, "label", false)
	return n
}

func (n *BreakStatement) Kind() Kind       { return KindBreakStatement }
func (n *BreakStatement) Accept(v Visitor) { accept(n, v) }

func (n *BreakStatement) Label() *SimpleName { return n.label.Get() }

func (n *BreakStatement) SetLabel(label *SimpleName) *BreakStatement {
	n.label.Set(label)
	return n
}

func (n *BreakStatement) slots() []slot {
	return []slot{&n.label}
}

func (n *BreakStatement) acceptInner(v Visitor) {
	if v.VisitBreakStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitBreakStatement(n)
}

func (n *BreakStatement) Copy() Node {
	c := NewBreakStatement()
	copyNode(c, n)
	return c
}

// ConstructorInvocation is an explicit this(...) call.
type ConstructorInvocation struct {
	statementBase
	arguments ChildList[Expression]
	element   *binding.ExecutableElement
}

// NewConstructorInvocation returns a new ConstructorInvocation.
func NewConstructorInvocation() *ConstructorInvocation {
	n := &ConstructorInvocation{}
	n.pos = unknownPos
	n.arguments.init(n, "arguments")
	return n
}

func (n *ConstructorInvocation) Kind() Kind       { return KindConstructorInvocation }
func (n *ConstructorInvocation) Accept(v Visitor) { accept(n, v) }

func (n *ConstructorInvocation) Arguments() *ChildList[Expression]             { return &n.arguments }
func (n *ConstructorInvocation) ExecutableElement() *binding.ExecutableElement { return n.element }

func (n *ConstructorInvocation) SetExecutableElement(element *binding.ExecutableElement) *ConstructorInvocation {
	n.element = element
	return n
}

func (n *ConstructorInvocation) slots() []slot {
	return []slot{&n.arguments}
}

func (n *ConstructorInvocation) acceptInner(v Visitor) {
	if v.VisitConstructorInvocation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitConstructorInvocation(n)
}

func (n *ConstructorInvocation) Copy() Node {
	c := NewConstructorInvocation()
	c.element = n.element
	copyNode(c, n)
	return c
}

// ContinueStatement is a continue statement.
type ContinueStatement struct {
	statementBase
	label ChildLink[*SimpleName]
}

// NewContinueStatement returns a new ContinueStatement.
func NewContinueStatement() *ContinueStatement {
	n := &ContinueStatement{}
	n.pos = unknownPos
	n.label.init(n, "label", false)
	return n
}

func (n *ContinueStatement) Kind() Kind       { return KindContinueStatement }
func (n *ContinueStatement) Accept(v Visitor) { accept(n, v) }

func (n *ContinueStatement) Label() *SimpleName { return n.label.Get() }

func (n *ContinueStatement) SetLabel(label *SimpleName) *ContinueStatement {
	n.label.Set(label)
	return n
}

func (n *ContinueStatement) slots() []slot {
	return []slot{&n.label}
}

func (n *ContinueStatement) acceptInner(v Visitor) {
	if v.VisitContinueStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitContinueStatement(n)
}

func (n *ContinueStatement) Copy() Node {
	c := NewContinueStatement()
	copyNode(c, n)
	return c
}

// DoStatement is a do statement.
type DoStatement struct {
	statementBase
	body       ChildLink[Statement]
	expression ChildLink[Expression]
}

// NewDoStatement returns a new DoStatement.
func NewDoStatement() *DoStatement {
	n := &DoStatement{}
	n.pos = unknownPos
	n.body.init(n, "body", true)
	n.expression.init(n, "expression", true)
	return n
}

func (n *DoStatement) Kind() Kind       { return KindDoStatement }
func (n *DoStatement) Accept(v Visitor) { accept(n, v) }

func (n *DoStatement) Body() Statement        { return n.body.Get() }
func (n *DoStatement) Expression() Expression { return n.expression.Get() }

func (n *DoStatement) SetBody(body Statement) *DoStatement {
	n.body.Set(body)
	return n
}

func (n *DoStatement) SetExpression(expression Expression) *DoStatement {
	n.expression.Set(expression)
	return n
}

func (n *DoStatement) slots() []slot {
	return []slot{&n.body, &n.expression}
}

func (n *DoStatement) acceptInner(v Visitor) {
	if v.VisitDoStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitDoStatement(n)
}

func (n *DoStatement) Copy() Node {
	c := NewDoStatement()
	copyNode(c, n)
	return c
}

// EmptyStatement is an empty statement.
type EmptyStatement struct {
	statementBase
}

// NewEmptyStatement returns a new EmptyStatement.
func NewEmptyStatement() *EmptyStatement {
	n := &EmptyStatement{}
	n.pos = unknownPos
	return n
}

func (n *EmptyStatement) Kind() Kind       { return KindEmptyStatement }
func (n *EmptyStatement) Accept(v Visitor) { accept(n, v) }
func (n *EmptyStatement) slots() []slot    { return nil }

func (n *EmptyStatement) acceptInner(v Visitor) {
	v.VisitEmptyStatement(n)
	v.EndVisitEmptyStatement(n)
}

func (n *EmptyStatement) Copy() Node {
	c := NewEmptyStatement()
	copyNode(c, n)
	return c
}

// EnhancedForStatement is a for-each loop.
type EnhancedForStatement struct {
	statementBase
	parameter  ChildLink[*SingleVariableDeclaration]
	expression ChildLink[Expression]
	body       ChildLink[Statement]
}

// NewEnhancedForStatement returns a new EnhancedForStatement.
func NewEnhancedForStatement() *EnhancedForStatement {
	n := &EnhancedForStatement{}
	n.pos = unknownPos
	n.parameter.init(n, "parameter", true)
	n.expression.init(n, "expression", true)
	n.body.init(n, "body", true)
	return n
}

func (n *EnhancedForStatement) Kind() Kind       { return KindEnhancedForStatement }
func (n *EnhancedForStatement) Accept(v Visitor) { accept(n, v) }

func (n *EnhancedForStatement) Parameter() *SingleVariableDeclaration { return n.parameter.Get() }
func (n *EnhancedForStatement) Expression() Expression                { return n.expression.Get() }
func (n *EnhancedForStatement) Body() Statement                       { return n.body.Get() }

func (n *EnhancedForStatement) SetParameter(parameter *SingleVariableDeclaration) *EnhancedForStatement {
	n.parameter.Set(parameter)
	return n
}

func (n *EnhancedForStatement) SetExpression(expression Expression) *EnhancedForStatement {
	n.expression.Set(expression)
	return n
}

func (n *EnhancedForStatement) SetBody(body Statement) *EnhancedForStatement {
	n.body.Set(body)
	return n
}

func (n *EnhancedForStatement) slots() []slot {
	return []slot{&n.parameter, &n.expression, &n.body}
}

func (n *EnhancedForStatement) acceptInner(v Visitor) {
	if v.VisitEnhancedForStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitEnhancedForStatement(n)
}

func (n *EnhancedForStatement) Copy() Node {
	c := NewEnhancedForStatement()
	copyNode(c, n)
	return c
}

// ExpressionStatement is an expression statement.
type ExpressionStatement struct {
	statementBase
	expression ChildLink[Expression]
}

// NewExpressionStatement returns a new ExpressionStatement.
func NewExpressionStatement() *ExpressionStatement {
	n := &ExpressionStatement{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	return n
}

func (n *ExpressionStatement) Kind() Kind       { return KindExpressionStatement }
func (n *ExpressionStatement) Accept(v Visitor) { accept(n, v) }

func (n *ExpressionStatement) Expression() Expression { return n.expression.Get() }

func (n *ExpressionStatement) SetExpression(expression Expression) *ExpressionStatement {
	n.expression.Set(expression)
	return n
}

func (n *ExpressionStatement) slots() []slot {
	return []slot{&n.expression}
}

func (n *ExpressionStatement) acceptInner(v Visitor) {
	if v.VisitExpressionStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitExpressionStatement(n)
}

func (n *ExpressionStatement) Copy() Node {
	c := NewExpressionStatement()
	copyNode(c, n)
	return c
}

// ForStatement is a for statement.
type ForStatement struct {
	statementBase
	initializers ChildList[Expression]
	expression   ChildLink[Expression]
	updaters     ChildList[Expression]
	body         ChildLink[Statement]
}

// NewForStatement returns a new ForStatement.
func NewForStatement() *ForStatement {
	n := &ForStatement{}
	n.pos = unknownPos
	n.initializers.init(n, "initializers")
	n.expression.init(n, "expression", false)
	n.updaters.init(n, "updaters")
	n.body.init(n, "body", true)
	return n
}

func (n *ForStatement) Kind() Kind       { return KindForStatement }
func (n *ForStatement) Accept(v Visitor) { accept(n, v) }

func (n *ForStatement) Initializers() *ChildList[Expression] { return &n.initializers }
func (n *ForStatement) Expression() Expression               { return n.expression.Get() }
func (n *ForStatement) Updaters() *ChildList[Expression]     { return &n.updaters }
func (n *ForStatement) Body() Statement                      { return n.body.Get() }

func (n *ForStatement) SetExpression(expression Expression) *ForStatement {
	n.expression.Set(expression)
	return n
}

func (n *ForStatement) SetBody(body Statement) *ForStatement {
	n.body.Set(body)
	return n
}

func (n *ForStatement) slots() []slot {
	return []slot{&n.initializers, &n.expression, &n.updaters, &n.body}
}

func (n *ForStatement) acceptInner(v Visitor) {
	if v.VisitForStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitForStatement(n)
}

func (n *ForStatement) Copy() Node {
	c := NewForStatement()
	copyNode(c, n)
	return c
}

// IfStatement is an if statement.
type IfStatement struct {
	statementBase
	expression    ChildLink[Expression]
	thenStatement ChildLink[Statement]
	elseStatement ChildLink[Statement]
}

// NewIfStatement returns a new IfStatement.
func NewIfStatement() *IfStatement {
	n := &IfStatement{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	n.thenStatement.init(n, "thenStatement", true)
	n.elseStatement.init(n, "elseStatement", false)
	return n
}

func (n *IfStatement) Kind() Kind       { return KindIfStatement }
func (n *IfStatement) Accept(v Visitor) { accept(n, v) }

func (n *IfStatement) Expression() Expression   { return n.expression.Get() }
func (n *IfStatement) ThenStatement() Statement { return n.thenStatement.Get() }
func (n *IfStatement) ElseStatement() Statement { return n.elseStatement.Get() }

func (n *IfStatement) SetExpression(expression Expression) *IfStatement {
	n.expression.Set(expression)
	return n
}

func (n *IfStatement) SetThenStatement(thenStatement Statement) *IfStatement {
	n.thenStatement.Set(thenStatement)
	return n
}

func (n *IfStatement) SetElseStatement(elseStatement Statement) *IfStatement {
	n.elseStatement.Set(elseStatement)
	return n
}

func (n *IfStatement) slots() []slot {
	return []slot{&n.expression, &n.thenStatement, &n.elseStatement}
}

func (n *IfStatement) acceptInner(v Visitor) {
	if v.VisitIfStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitIfStatement(n)
}

func (n *IfStatement) Copy() Node {
	c := NewIfStatement()
	copyNode(c, n)
	return c
}

// LabeledStatement is a labeled statement.
type LabeledStatement struct {
	statementBase
	label ChildLink[*SimpleName]
	body  ChildLink[Statement]
}

// NewLabeledStatement returns a new LabeledStatement.
func NewLabeledStatement() *LabeledStatement {
	n := &LabeledStatement{}
	n.pos = unknownPos
	n.label.init(n, "label", true)
	n.body.init(n, "body", true)
	return n
}

func (n *LabeledStatement) Kind() Kind       { return KindLabeledStatement }
func (n *LabeledStatement) Accept(v Visitor) { accept(n, v) }

func (n *LabeledStatement) Label() *SimpleName { return n.label.Get() }
func (n *LabeledStatement) Body() Statement    { return n.body.Get() }

func (n *LabeledStatement) SetLabel(label *SimpleName) *LabeledStatement {
	n.label.Set(label)
	return n
}

func (n *LabeledStatement) SetBody(body Statement) *LabeledStatement {
	n.body.Set(body)
	return n
}

func (n *LabeledStatement) slots() []slot {
	return []slot{&n.label, &n.body}
}

func (n *LabeledStatement) acceptInner(v Visitor) {
	if v.VisitLabeledStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitLabeledStatement(n)
}

func (n *LabeledStatement) Copy() Node {
	c := NewLabeledStatement()
	copyNode(c, n)
	return c
}

// ReturnStatement is a return statement.
type ReturnStatement struct {
	statementBase
	expression ChildLink[Expression]
}

// NewReturnStatement returns a new ReturnStatement.
func NewReturnStatement() *ReturnStatement {
	n := &ReturnStatement{}
	n.pos = unknownPos
	n.expression.init(n, "expression", false)
	return n
}

func (n *ReturnStatement) Kind() Kind       { return KindReturnStatement }
func (n *ReturnStatement) Accept(v Visitor) { accept(n, v) }

func (n *ReturnStatement) Expression() Expression { return n.expression.Get() }

func (n *ReturnStatement) SetExpression(expression Expression) *ReturnStatement {
	n.expression.Set(expression)
	return n
}

func (n *ReturnStatement) slots() []slot {
	return []slot{&n.expression}
}

func (n *ReturnStatement) acceptInner(v Visitor) {
	if v.VisitReturnStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitReturnStatement(n)
}

func (n *ReturnStatement) Copy() Node {
	c := NewReturnStatement()
	copyNode(c, n)
	return c
}

// SuperConstructorInvocation is an explicit super(...) call, optionally
// qualified by an outer instance.
type SuperConstructorInvocation struct {
	statementBase
	expression ChildLink[Expression]
	arguments  ChildList[Expression]
	element    *binding.ExecutableElement
}

// NewSuperConstructorInvocation returns a new SuperConstructorInvocation.
func NewSuperConstructorInvocation() *SuperConstructorInvocation {
	n := &SuperConstructorInvocation{}
	n.pos = unknownPos
	n.expression.init(n, "expression", false)
	n.arguments.init(n, "arguments")
	return n
}

func (n *SuperConstructorInvocation) Kind() Kind       { return KindSuperConstructorInvocation }
func (n *SuperConstructorInvocation) Accept(v Visitor) { accept(n, v) }

func (n *SuperConstructorInvocation) Expression() Expression                        { return n.expression.Get() }
func (n *SuperConstructorInvocation) Arguments() *ChildList[Expression]             { return &n.arguments }
func (n *SuperConstructorInvocation) ExecutableElement() *binding.ExecutableElement { return n.element }

func (n *SuperConstructorInvocation) SetExpression(expression Expression) *SuperConstructorInvocation {
	n.expression.Set(expression)
	return n
}

func (n *SuperConstructorInvocation) SetExecutableElement(element *binding.ExecutableElement) *SuperConstructorInvocation {
	n.element = element
	return n
}

func (n *SuperConstructorInvocation) slots() []slot {
	return []slot{&n.expression, &n.arguments}
}

func (n *SuperConstructorInvocation) acceptInner(v Visitor) {
	if v.VisitSuperConstructorInvocation(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSuperConstructorInvocation(n)
}

func (n *SuperConstructorInvocation) Copy() Node {
	c := NewSuperConstructorInvocation()
	c.element = n.element
	copyNode(c, n)
	return c
}

// SwitchStatement holds its case labels inline with the statements they
// precede.
type SwitchStatement struct {
	statementBase
	expression ChildLink[Expression]
	statements ChildList[Statement]
}

// NewSwitchStatement returns a new SwitchStatement.
func NewSwitchStatement() *SwitchStatement {
	n := &SwitchStatement{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	n.statements.init(n, "statements")
	return n
}

func (n *SwitchStatement) Kind() Kind       { return KindSwitchStatement }
func (n *SwitchStatement) Accept(v Visitor) { accept(n, v) }

func (n *SwitchStatement) Expression() Expression            { return n.expression.Get() }
func (n *SwitchStatement) Statements() *ChildList[Statement] { return &n.statements }

func (n *SwitchStatement) SetExpression(expression Expression) *SwitchStatement {
	n.expression.Set(expression)
	return n
}

func (n *SwitchStatement) slots() []slot {
	return []slot{&n.expression, &n.statements}
}

func (n *SwitchStatement) acceptInner(v Visitor) {
	if v.VisitSwitchStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSwitchStatement(n)
}

func (n *SwitchStatement) Copy() Node {
	c := NewSwitchStatement()
	copyNode(c, n)
	return c
}

// SwitchCase is a case or default label inside a SwitchStatement.
type SwitchCase struct {
	statementBase
	expression ChildLink[Expression]
	isDefault  bool
}

// NewSwitchCase returns a new SwitchCase.
func NewSwitchCase() *SwitchCase {
	n := &SwitchCase{}
	n.pos = unknownPos
	n.expression.init(n, "expression", false)
	return n
}

func (n *SwitchCase) Kind() Kind       { return KindSwitchCase }
func (n *SwitchCase) Accept(v Visitor) { accept(n, v) }

func (n *SwitchCase) Expression() Expression { return n.expression.Get() }
func (n *SwitchCase) IsDefault() bool        { return n.isDefault }

func (n *SwitchCase) SetExpression(expression Expression) *SwitchCase {
	n.expression.Set(expression)
	return n
}

func (n *SwitchCase) SetDefault(isDefault bool) *SwitchCase {
	n.isDefault = isDefault
	return n
}

func (n *SwitchCase) slots() []slot {
	return []slot{&n.expression}
}

func (n *SwitchCase) acceptInner(v Visitor) {
	if v.VisitSwitchCase(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSwitchCase(n)
}

func (n *SwitchCase) Copy() Node {
	c := NewSwitchCase()
	c.isDefault = n.isDefault
	copyNode(c, n)
	return c
}

// SynchronizedStatement is a synchronized statement.
type SynchronizedStatement struct {
	statementBase
	expression ChildLink[Expression]
	body       ChildLink[*Block]
}

// NewSynchronizedStatement returns a new SynchronizedStatement.
func NewSynchronizedStatement() *SynchronizedStatement {
	n := &SynchronizedStatement{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	n.body.init(n, "body", true)
	return n
}

func (n *SynchronizedStatement) Kind() Kind       { return KindSynchronizedStatement }
func (n *SynchronizedStatement) Accept(v Visitor) { accept(n, v) }

func (n *SynchronizedStatement) Expression() Expression { return n.expression.Get() }
func (n *SynchronizedStatement) Body() *Block           { return n.body.Get() }

func (n *SynchronizedStatement) SetExpression(expression Expression) *SynchronizedStatement {
	n.expression.Set(expression)
	return n
}

func (n *SynchronizedStatement) SetBody(body *Block) *SynchronizedStatement {
	n.body.Set(body)
	return n
}

func (n *SynchronizedStatement) slots() []slot {
	return []slot{&n.expression, &n.body}
}

func (n *SynchronizedStatement) acceptInner(v Visitor) {
	if v.VisitSynchronizedStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitSynchronizedStatement(n)
}

func (n *SynchronizedStatement) Copy() Node {
	c := NewSynchronizedStatement()
	copyNode(c, n)
	return c
}

// ThrowStatement is a throw statement.
type ThrowStatement struct {
	statementBase
	expression ChildLink[Expression]
}

// NewThrowStatement returns a new ThrowStatement.
func NewThrowStatement() *ThrowStatement {
	n := &ThrowStatement{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	return n
}

func (n *ThrowStatement) Kind() Kind       { return KindThrowStatement }
func (n *ThrowStatement) Accept(v Visitor) { accept(n, v) }

func (n *ThrowStatement) Expression() Expression { return n.expression.Get() }

func (n *ThrowStatement) SetExpression(expression Expression) *ThrowStatement {
	n.expression.Set(expression)
	return n
}

func (n *ThrowStatement) slots() []slot {
	return []slot{&n.expression}
}

func (n *ThrowStatement) acceptInner(v Visitor) {
	if v.VisitThrowStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitThrowStatement(n)
}

func (n *ThrowStatement) Copy() Node {
	c := NewThrowStatement()
	copyNode(c, n)
	return c
}

// TryStatement covers plain try and try-with-resources.
type TryStatement struct {
	statementBase
	resources    ChildList[Expression]
	body         ChildLink[*Block]
	catchClauses ChildList[*CatchClause]
	finallyBlock ChildLink[*Block]
}

// NewTryStatement returns a new TryStatement.
func NewTryStatement() *TryStatement {
	n := &TryStatement{}
	n.pos = unknownPos
	n.resources.init(n, "resources")
	n.body.init(n, "body", true)
	n.catchClauses.init(n, "catchClauses")
	n.finallyBlock.init(n, "finally", false)
	return n
}

func (n *TryStatement) Kind() Kind       { return KindTryStatement }
func (n *TryStatement) Accept(v Visitor) { accept(n, v) }

func (n *TryStatement) Resources() *ChildList[Expression]      { return &n.resources }
func (n *TryStatement) Body() *Block                           { return n.body.Get() }
func (n *TryStatement) CatchClauses() *ChildList[*CatchClause] { return &n.catchClauses }
func (n *TryStatement) Finally() *Block                        { return n.finallyBlock.Get() }

func (n *TryStatement) SetBody(body *Block) *TryStatement {
	n.body.Set(body)
	return n
}

func (n *TryStatement) SetFinally(finallyBlock *Block) *TryStatement {
	n.finallyBlock.Set(finallyBlock)
	return n
}

func (n *TryStatement) slots() []slot {
	return []slot{&n.resources, &n.body, &n.catchClauses, &n.finallyBlock}
}

func (n *TryStatement) acceptInner(v Visitor) {
	if v.VisitTryStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitTryStatement(n)
}

func (n *TryStatement) Copy() Node {
	c := NewTryStatement()
	copyNode(c, n)
	return c
}

// CatchClause only appears under a TryStatement.
type CatchClause struct {
	nodeBase
	exception ChildLink[*SingleVariableDeclaration]
	body      ChildLink[*Block]
}

// NewCatchClause returns a new CatchClause.
func NewCatchClause() *CatchClause {
	n := &CatchClause{}
	n.pos = unknownPos
	n.exception.init(n, "exception", true)
	n.body.init(n, "body", true)
	return n
}

func (n *CatchClause) Kind() Kind       { return KindCatchClause }
func (n *CatchClause) Accept(v Visitor) { accept(n, v) }

func (n *CatchClause) Exception() *SingleVariableDeclaration { return n.exception.Get() }
func (n *CatchClause) Body() *Block                          { return n.body.Get() }

func (n *CatchClause) SetException(exception *SingleVariableDeclaration) *CatchClause {
	n.exception.Set(exception)
	return n
}

func (n *CatchClause) SetBody(body *Block) *CatchClause {
	n.body.Set(body)
	return n
}

func (n *CatchClause) slots() []slot {
	return []slot{&n.exception, &n.body}
}

func (n *CatchClause) acceptInner(v Visitor) {
	if v.VisitCatchClause(n) {
		acceptChildren(n, v)
	}
	v.EndVisitCatchClause(n)
}

func (n *CatchClause) Copy() Node {
	c := NewCatchClause()
	copyNode(c, n)
	return c
}

// TypeDeclarationStatement is a local class declaration.
type TypeDeclarationStatement struct {
	statementBase
	declaration ChildLink[AbstractTypeDeclaration]
}

// NewTypeDeclarationStatement returns a new TypeDeclarationStatement.
func NewTypeDeclarationStatement() *TypeDeclarationStatement {
	n := &TypeDeclarationStatement{}
	n.pos = unknownPos
	n.declaration.init(n, "declaration", true)
	return n
}

func (n *TypeDeclarationStatement) Kind() Kind       { return KindTypeDeclarationStatement }
func (n *TypeDeclarationStatement) Accept(v Visitor) { accept(n, v) }

func (n *TypeDeclarationStatement) Declaration() AbstractTypeDeclaration { return n.declaration.Get() }

func (n *TypeDeclarationStatement) SetDeclaration(declaration AbstractTypeDeclaration) *TypeDeclarationStatement {
	n.declaration.Set(declaration)
	return n
}

func (n *TypeDeclarationStatement) slots() []slot {
	return []slot{&n.declaration}
}

func (n *TypeDeclarationStatement) acceptInner(v Visitor) {
	if v.VisitTypeDeclarationStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitTypeDeclarationStatement(n)
}

func (n *TypeDeclarationStatement) Copy() Node {
	c := NewTypeDeclarationStatement()
	copyNode(c, n)
	return c
}

// WhileStatement is a while statement.
type WhileStatement struct {
	statementBase
	expression ChildLink[Expression]
	body       ChildLink[Statement]
}

// NewWhileStatement returns a new WhileStatement.
func NewWhileStatement() *WhileStatement {
	n := &WhileStatement{}
	n.pos = unknownPos
	n.expression.init(n, "expression", true)
	n.body.init(n, "body", true)
	return n
}

func (n *WhileStatement) Kind() Kind       { return KindWhileStatement }
func (n *WhileStatement) Accept(v Visitor) { accept(n, v) }

func (n *WhileStatement) Expression() Expression { return n.expression.Get() }
func (n *WhileStatement) Body() Statement        { return n.body.Get() }

func (n *WhileStatement) SetExpression(expression Expression) *WhileStatement {
	n.expression.Set(expression)
	return n
}

func (n *WhileStatement) SetBody(body Statement) *WhileStatement {
	n.body.Set(body)
	return n
}

func (n *WhileStatement) slots() []slot {
	return []slot{&n.expression, &n.body}
}

func (n *WhileStatement) acceptInner(v Visitor) {
	if v.VisitWhileStatement(n) {
		acceptChildren(n, v)
	}
	v.EndVisitWhileStatement(n)
}

func (n *WhileStatement) Copy() Node {
	c := NewWhileStatement()
	copyNode(c, n)
	return c
}
