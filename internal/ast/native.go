package ast

// NativeDeclaration is verbatim target code placed in the generated header
// or implementation.
type NativeDeclaration struct {
	bodyDeclarationBase
	javadoc            ChildLink[*Javadoc]
	annotations        ChildList[Annotation]
	headerCode         string
	implementationCode string
}

// NewNativeDeclaration returns a new NativeDeclaration.
func NewNativeDeclaration(headerCode, implementationCode string) *NativeDeclaration {
	n := &NativeDeclaration{headerCode: headerCode, implementationCode: implementationCode}
	n.pos = unknownPos
	n.javadoc.init(n, "javadoc", false)
	n.annotations.init(n, "annotations")
	return n
}

func (n *NativeDeclaration) Kind() Kind       { return KindNativeDeclaration }
func (n *NativeDeclaration) Accept(v Visitor) { accept(n, v) }

func (n *NativeDeclaration) Javadoc() *Javadoc                   { return n.javadoc.Get() }
func (n *NativeDeclaration) Annotations() *ChildList[Annotation] { return &n.annotations }
func (n *NativeDeclaration) HeaderCode() string                  { return n.headerCode }
func (n *NativeDeclaration) ImplementationCode() string          { return n.implementationCode }

func (n *NativeDeclaration) SetJavadoc(javadoc *Javadoc) *NativeDeclaration {
	n.javadoc.Set(javadoc)
	return n
}

func (n *NativeDeclaration) SetHeaderCode(headerCode string) *NativeDeclaration {
	n.headerCode = headerCode
	return n
}

func (n *NativeDeclaration) SetImplementationCode(implementationCode string) *NativeDeclaration {
	n.implementationCode = implementationCode
	return n
}

func (n *NativeDeclaration) slots() []slot {
	return []slot{&n.javadoc, &n.annotations}
}

func (n *NativeDeclaration) acceptInner(v Visitor) {
	if v.VisitNativeDeclaration(n) {
		acceptChildren(n, v)
	}
	v.EndVisitNativeDeclaration(n)
}

func (n *NativeDeclaration) Copy() Node {
	c := NewNativeDeclaration(n.headerCode, n.implementationCode)
	c.modifiers = n.modifiers
	copyNode(c, n)
	return c
}

// NativeStatement is a verbatim target-language statement.
type NativeStatement struct {
	statementBase
	code string
}

// NewNativeStatement returns a new NativeStatement.
func NewNativeStatement(code string) *NativeStatement {
	n := &NativeStatement{code: code}
	n.pos = unknownPos
	return n
}

func (n *NativeStatement) Kind() Kind       { return KindNativeStatement }
func (n *NativeStatement) Accept(v Visitor) { accept(n, v) }
func (n *NativeStatement) slots() []slot    { return nil }

func (n *NativeStatement) Code() string { return n.code }

func (n *NativeStatement) acceptInner(v Visitor) {
	v.VisitNativeStatement(n)
	v.EndVisitNativeStatement(n)
}

func (n *NativeStatement) Copy() Node {
	c := NewNativeStatement(n.code)
	copyNode(c, n)
	return c
}

// NativeExpression is a verbatim target-language expression.
type NativeExpression struct {
	expressionBase
	code string
}

// NewNativeExpression returns a new NativeExpression.
func NewNativeExpression(code string) *NativeExpression {
	n := &NativeExpression{code: code}
	n.pos = unknownPos
	return n
}

func (n *NativeExpression) Kind() Kind       { return KindNativeExpression }
func (n *NativeExpression) Accept(v Visitor) { accept(n, v) }
func (n *NativeExpression) slots() []slot    { return nil }

func (n *NativeExpression) Code() string { return n.code }

func (n *NativeExpression) acceptInner(v Visitor) {
	v.VisitNativeExpression(n)
	v.EndVisitNativeExpression(n)
}

func (n *NativeExpression) Copy() Node {
	c := NewNativeExpression(n.code)
	c.typeMirror = n.typeMirror
	copyNode(c, n)
	return c
}
