package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orizon-lang/j2o/internal/binding"
)

// DebugString renders n as Java-like source. The output is for diagnostics
// and tests; it is not guaranteed to compile.
func DebugString(n Node) string {
	if isNil(n) {
		return "<nil>"
	}
	p := &printer{}
	n.Accept(p)
	return p.sb.String()
}

type printer struct {
	BaseVisitor
	sb     strings.Builder
	indent int
}

func (p *printer) print(s ...string) {
	for _, x := range s {
		p.sb.WriteString(x)
	}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(&p.sb, format, args...)
}

func (p *printer) newline() {
	p.sb.WriteByte('\n')
	p.sb.WriteString(strings.Repeat("  ", p.indent))
}

func (p *printer) node(n Node) {
	if !isNil(n) {
		n.Accept(p)
	}
}

func printList[T Node](p *printer, l *ChildList[T], sep string) {
	for i, n := range l.Slice() {
		if i > 0 {
			p.print(sep)
		}
		p.node(n)
	}
}

func (p *printer) modifiers(m binding.Modifier) {
	if s := m.String(); s != "" {
		p.print(s, " ")
	}
}

func (p *printer) annotations(l *ChildList[Annotation]) {
	for _, a := range l.Slice() {
		p.node(a)
		p.print(" ")
	}
}

func (p *printer) arguments(l *ChildList[Expression]) {
	p.print("(")
	printList(p, l, ", ")
	p.print(")")
}

func (p *printer) body(l *ChildList[BodyDeclaration], head func()) {
	p.print(" {")
	p.indent++
	if head != nil {
		head()
	}
	for _, d := range l.Slice() {
		p.newline()
		p.node(d)
	}
	p.indent--
	p.newline()
	p.print("}")
}

func (p *printer) VisitCompilationUnit(n *CompilationUnit) bool {
	if pkg := n.Package(); pkg != nil && !pkg.IsDefaultPackage() {
		p.node(pkg)
		p.print("\n")
	}
	for _, imp := range n.Imports() {
		p.print("import ", imp, ";\n")
	}
	for _, t := range n.Types().Slice() {
		p.print("\n")
		p.node(t)
		p.print("\n")
	}
	for _, nb := range n.NativeBlocks().Slice() {
		p.node(nb)
		p.print("\n")
	}
	return false
}

func (p *printer) VisitPackageDeclaration(n *PackageDeclaration) bool {
	p.annotations(n.Annotations())
	p.print("package ")
	p.node(n.Name())
	p.print(";")
	return false
}

func (p *printer) VisitJavadoc(n *Javadoc) bool {
	p.print("/**")
	for _, tag := range n.Tags().Slice() {
		p.newline()
		p.print(" * ")
		p.node(tag)
	}
	p.newline()
	p.print(" */")
	p.newline()
	return false
}

func (p *printer) VisitTagElement(n *TagElement) bool {
	if n.TagName() != "" {
		p.print(n.TagName(), " ")
	}
	printList(p, n.Fragments(), " ")
	return false
}

func (p *printer) VisitTextElement(n *TextElement) bool {
	p.print(n.Text())
	return false
}

func (p *printer) VisitBlockComment(n *BlockComment) bool {
	p.print("/*", n.Text(), "*/")
	return false
}

func (p *printer) VisitLineComment(n *LineComment) bool {
	p.print("//", n.Text())
	return false
}

func (p *printer) VisitMarkerAnnotation(n *MarkerAnnotation) bool {
	p.print("@")
	p.node(n.TypeName())
	return false
}

func (p *printer) VisitSingleMemberAnnotation(n *SingleMemberAnnotation) bool {
	p.print("@")
	p.node(n.TypeName())
	p.print("(")
	p.node(n.Value())
	p.print(")")
	return false
}

func (p *printer) VisitNormalAnnotation(n *NormalAnnotation) bool {
	p.print("@")
	p.node(n.TypeName())
	p.print("(")
	printList(p, n.Values(), ", ")
	p.print(")")
	return false
}

func (p *printer) VisitPropertyAnnotation(n *PropertyAnnotation) bool {
	p.print("@Property(\"", n.AttributeString(), "\")")
	return false
}

func (p *printer) VisitMemberValuePair(n *MemberValuePair) bool {
	p.node(n.Name())
	p.print("=")
	p.node(n.Value())
	return false
}

func (p *printer) VisitTypeDeclaration(n *TypeDeclaration) bool {
	p.node(n.Javadoc())
	p.annotations(n.Annotations())
	p.modifiers(n.Modifiers())
	if n.IsInterface() {
		p.print("interface ")
	} else {
		p.print("class ")
	}
	p.node(n.Name())
	if st := n.SuperclassType(); st != nil {
		p.print(" extends ")
		p.node(st)
	}
	if !n.SuperInterfaceTypes().IsEmpty() {
		if n.IsInterface() {
			p.print(" extends ")
		} else {
			p.print(" implements ")
		}
		printList(p, n.SuperInterfaceTypes(), ", ")
	}
	p.body(n.BodyDeclarations(), p.classInit(n.ClassInitStatements()))
	return false
}

func (p *printer) classInit(l *ChildList[Statement]) func() {
	if l.IsEmpty() {
		return nil
	}
	return func() {
		p.newline()
		p.print("static {")
		p.indent++
		for _, s := range l.Slice() {
			p.newline()
			p.node(s)
		}
		p.indent--
		p.newline()
		p.print("}")
	}
}

func (p *printer) VisitEnumDeclaration(n *EnumDeclaration) bool {
	p.node(n.Javadoc())
	p.annotations(n.Annotations())
	p.modifiers(n.Modifiers())
	p.print("enum ")
	p.node(n.Name())
	if !n.SuperInterfaceTypes().IsEmpty() {
		p.print(" implements ")
		printList(p, n.SuperInterfaceTypes(), ", ")
	}
	p.body(n.BodyDeclarations(), func() {
		if !n.EnumConstants().IsEmpty() {
			p.newline()
			printList(p, n.EnumConstants(), ", ")
			p.print(";")
		}
		if f := p.classInit(n.ClassInitStatements()); f != nil {
			f()
		}
	})
	return false
}

func (p *printer) VisitAnnotationTypeDeclaration(n *AnnotationTypeDeclaration) bool {
	p.node(n.Javadoc())
	p.annotations(n.Annotations())
	p.modifiers(n.Modifiers())
	p.print("@interface ")
	p.node(n.Name())
	p.body(n.BodyDeclarations(), nil)
	return false
}

func (p *printer) VisitAnonymousClassDeclaration(n *AnonymousClassDeclaration) bool {
	p.body(n.BodyDeclarations(), nil)
	return false
}

func (p *printer) VisitFieldDeclaration(n *FieldDeclaration) bool {
	p.node(n.Javadoc())
	p.annotations(n.Annotations())
	p.modifiers(n.Modifiers())
	p.node(n.Type())
	p.print(" ")
	printList(p, n.Fragments(), ", ")
	p.print(";")
	return false
}

func (p *printer) VisitMethodDeclaration(n *MethodDeclaration) bool {
	p.node(n.Javadoc())
	p.annotations(n.Annotations())
	p.modifiers(n.Modifiers())
	if !n.IsConstructor() {
		p.node(n.ReturnType())
		p.print(" ")
	}
	p.node(n.Name())
	p.print("(")
	printList(p, n.Parameters(), ", ")
	p.print(")")
	if !n.ThrownExceptionTypes().IsEmpty() {
		p.print(" throws ")
		printList(p, n.ThrownExceptionTypes(), ", ")
	}
	if b := n.Body(); b != nil {
		p.print(" ")
		p.node(b)
	} else {
		p.print(";")
	}
	return false
}

func (p *printer) VisitInitializer(n *Initializer) bool {
	p.modifiers(n.Modifiers())
	p.node(n.Body())
	return false
}

func (p *printer) VisitEnumConstantDeclaration(n *EnumConstantDeclaration) bool {
	p.annotations(n.Annotations())
	p.node(n.Name())
	if !n.Arguments().IsEmpty() {
		p.arguments(n.Arguments())
	}
	p.node(n.AnonymousClassDeclaration())
	return false
}

func (p *printer) VisitAnnotationTypeMemberDeclaration(n *AnnotationTypeMemberDeclaration) bool {
	p.node(n.Javadoc())
	p.modifiers(n.Modifiers())
	p.node(n.Type())
	p.print(" ")
	p.node(n.Name())
	p.print("()")
	if d := n.Default(); d != nil {
		p.print(" default ")
		p.node(d)
	}
	p.print(";")
	return false
}

func (p *printer) VisitFunctionDeclaration(n *FunctionDeclaration) bool {
	p.modifiers(n.Modifiers())
	p.node(n.ReturnType())
	p.print(" ", n.Name(), "(")
	printList(p, n.Parameters(), ", ")
	p.print(") ")
	p.node(n.Body())
	return false
}

func (p *printer) VisitNativeDeclaration(n *NativeDeclaration) bool {
	p.print("/*-[", n.HeaderCode())
	if n.ImplementationCode() != "" {
		p.print(" | ", n.ImplementationCode())
	}
	p.print("]-*/")
	return false
}

func (p *printer) VisitNativeStatement(n *NativeStatement) bool {
	p.print("/*-[", n.Code(), "]-*/")
	return false
}

func (p *printer) VisitNativeExpression(n *NativeExpression) bool {
	p.print(n.Code())
	return false
}

func (p *printer) VisitVariableDeclarationFragment(n *VariableDeclarationFragment) bool {
	p.node(n.Name())
	for range n.ExtraDimensions() {
		p.print("[]")
	}
	if init := n.Initializer(); init != nil {
		p.print(" = ")
		p.node(init)
	}
	return false
}

func (p *printer) VisitSingleVariableDeclaration(n *SingleVariableDeclaration) bool {
	p.annotations(n.Annotations())
	p.modifiers(n.Modifiers())
	p.node(n.Type())
	if n.IsVarargs() {
		p.print("...")
	}
	p.print(" ")
	p.node(n.Name())
	if init := n.Initializer(); init != nil {
		p.print(" = ")
		p.node(init)
	}
	return false
}

func (p *printer) VisitVariableDeclarationStatement(n *VariableDeclarationStatement) bool {
	p.annotations(n.Annotations())
	p.modifiers(n.Modifiers())
	p.node(n.Type())
	p.print(" ")
	printList(p, n.Fragments(), ", ")
	p.print(";")
	return false
}

func (p *printer) VisitVariableDeclarationExpression(n *VariableDeclarationExpression) bool {
	p.node(n.Type())
	p.print(" ")
	printList(p, n.Fragments(), ", ")
	return false
}

func (p *printer) VisitAssertStatement(n *AssertStatement) bool {
	p.print("assert ")
	p.node(n.Expression())
	if m := n.Message(); m != nil {
		p.print(" : ")
		p.node(m)
	}
	p.print(";")
	return false
}

func (p *printer) VisitBlock(n *Block) bool {
	if n.HasAutoreleasePool() {
		p.print("@autoreleasepool ")
	}
	p.print("{")
	p.indent++
	for _, s := range n.Statements().Slice() {
		p.newline()
		p.node(s)
	}
	p.indent--
	p.newline()
	p.print("}")
	return false
}

func (p *printer) VisitBreakStatement(n *BreakStatement) bool {
	p.jump("break", n.Label())
	return false
}

func (p *printer) VisitContinueStatement(n *ContinueStatement) bool {
	p.jump("continue", n.Label())
	return false
}

func (p *printer) jump(keyword string, label *SimpleName) {
	p.print(keyword)
	if label != nil {
		p.print(" ")
		p.node(label)
	}
	p.print(";")
}

func (p *printer) VisitConstructorInvocation(n *ConstructorInvocation) bool {
	p.print("this")
	p.arguments(n.Arguments())
	p.print(";")
	return false
}

func (p *printer) VisitSuperConstructorInvocation(n *SuperConstructorInvocation) bool {
	if e := n.Expression(); e != nil {
		p.node(e)
		p.print(".")
	}
	p.print("super")
	p.arguments(n.Arguments())
	p.print(";")
	return false
}

func (p *printer) VisitDoStatement(n *DoStatement) bool {
	p.print("do ")
	p.node(n.Body())
	p.print(" while (")
	p.node(n.Expression())
	p.print(");")
	return false
}

func (p *printer) VisitEmptyStatement(n *EmptyStatement) bool {
	p.print(";")
	return false
}

func (p *printer) VisitEnhancedForStatement(n *EnhancedForStatement) bool {
	p.print("for (")
	p.node(n.Parameter())
	p.print(" : ")
	p.node(n.Expression())
	p.print(") ")
	p.node(n.Body())
	return false
}

func (p *printer) VisitExpressionStatement(n *ExpressionStatement) bool {
	p.node(n.Expression())
	p.print(";")
	return false
}

func (p *printer) VisitForStatement(n *ForStatement) bool {
	p.print("for (")
	printList(p, n.Initializers(), ", ")
	p.print("; ")
	p.node(n.Expression())
	p.print("; ")
	printList(p, n.Updaters(), ", ")
	p.print(") ")
	p.node(n.Body())
	return false
}

func (p *printer) VisitIfStatement(n *IfStatement) bool {
	p.print("if (")
	p.node(n.Expression())
	p.print(") ")
	p.node(n.ThenStatement())
	if e := n.ElseStatement(); e != nil {
		p.print(" else ")
		p.node(e)
	}
	return false
}

func (p *printer) VisitLabeledStatement(n *LabeledStatement) bool {
	p.node(n.Label())
	p.print(": ")
	p.node(n.Body())
	return false
}

func (p *printer) VisitReturnStatement(n *ReturnStatement) bool {
	p.print("return")
	if e := n.Expression(); e != nil {
		p.print(" ")
		p.node(e)
	}
	p.print(";")
	return false
}

func (p *printer) VisitSwitchStatement(n *SwitchStatement) bool {
	p.print("switch (")
	p.node(n.Expression())
	p.print(") {")
	p.indent++
	for _, s := range n.Statements().Slice() {
		if _, ok := s.(*SwitchCase); ok {
			p.indent--
			p.newline()
			p.node(s)
			p.indent++
			continue
		}
		p.newline()
		p.node(s)
	}
	p.indent--
	p.newline()
	p.print("}")
	return false
}

func (p *printer) VisitSwitchCase(n *SwitchCase) bool {
	if n.IsDefault() {
		p.print("default:")
		return false
	}
	p.print("case ")
	p.node(n.Expression())
	p.print(":")
	return false
}

func (p *printer) VisitSynchronizedStatement(n *SynchronizedStatement) bool {
	p.print("synchronized (")
	p.node(n.Expression())
	p.print(") ")
	p.node(n.Body())
	return false
}

func (p *printer) VisitThrowStatement(n *ThrowStatement) bool {
	p.print("throw ")
	p.node(n.Expression())
	p.print(";")
	return false
}

func (p *printer) VisitTryStatement(n *TryStatement) bool {
	p.print("try ")
	if !n.Resources().IsEmpty() {
		p.print("(")
		printList(p, n.Resources(), "; ")
		p.print(") ")
	}
	p.node(n.Body())
	for _, c := range n.CatchClauses().Slice() {
		p.print(" ")
		p.node(c)
	}
	if f := n.Finally(); f != nil {
		p.print(" finally ")
		p.node(f)
	}
	return false
}

func (p *printer) VisitCatchClause(n *CatchClause) bool {
	p.print("catch (")
	p.node(n.Exception())
	p.print(") ")
	p.node(n.Body())
	return false
}

func (p *printer) VisitTypeDeclarationStatement(n *TypeDeclarationStatement) bool {
	p.node(n.Declaration())
	return false
}

func (p *printer) VisitWhileStatement(n *WhileStatement) bool {
	p.print("while (")
	p.node(n.Expression())
	p.print(") ")
	p.node(n.Body())
	return false
}

func (p *printer) VisitArrayAccess(n *ArrayAccess) bool {
	p.node(n.Array())
	p.print("[")
	p.node(n.Index())
	p.print("]")
	return false
}

func (p *printer) VisitArrayCreation(n *ArrayCreation) bool {
	p.print("new ")
	t := n.Type()
	if t == nil {
		p.print("?")
		return false
	}
	var elem Type = t
	for {
		at, ok := elem.(*ArrayType)
		if !ok {
			break
		}
		elem = at.ComponentType()
	}
	p.node(elem)
	dims := n.Dimensions().Slice()
	for _, d := range dims {
		p.print("[")
		p.node(d)
		p.print("]")
	}
	for range arrayDepth(t) - len(dims) {
		p.print("[]")
	}
	if init := n.Initializer(); init != nil {
		p.print(" ")
		p.node(init)
	}
	return false
}

func arrayDepth(t Type) int {
	d := 0
	for {
		at, ok := t.(*ArrayType)
		if !ok {
			return d
		}
		d++
		t = at.ComponentType()
	}
}

func (p *printer) VisitArrayInitializer(n *ArrayInitializer) bool {
	p.print("{")
	printList(p, n.Expressions(), ", ")
	p.print("}")
	return false
}

func (p *printer) VisitAssignment(n *Assignment) bool {
	p.node(n.LeftHandSide())
	p.print(" ", n.Operator().String(), " ")
	p.node(n.RightHandSide())
	return false
}

func (p *printer) VisitCastExpression(n *CastExpression) bool {
	p.print("(")
	p.node(n.Type())
	p.print(") ")
	p.node(n.Expression())
	return false
}

func (p *printer) VisitClassInstanceCreation(n *ClassInstanceCreation) bool {
	if e := n.Expression(); e != nil {
		p.node(e)
		p.print(".")
	}
	p.print("new ")
	p.node(n.Type())
	p.arguments(n.Arguments())
	p.node(n.AnonymousClassDeclaration())
	return false
}

func (p *printer) VisitCommaExpression(n *CommaExpression) bool {
	p.print("(")
	printList(p, n.Expressions(), ", ")
	p.print(")")
	return false
}

func (p *printer) VisitConditionalExpression(n *ConditionalExpression) bool {
	p.node(n.Expression())
	p.print(" ? ")
	p.node(n.ThenExpression())
	p.print(" : ")
	p.node(n.ElseExpression())
	return false
}

func (p *printer) VisitFieldAccess(n *FieldAccess) bool {
	p.node(n.Expression())
	p.print(".")
	p.node(n.Name())
	return false
}

func (p *printer) VisitFunctionInvocation(n *FunctionInvocation) bool {
	p.print(n.Name())
	p.arguments(n.Arguments())
	return false
}

func (p *printer) VisitInfixExpression(n *InfixExpression) bool {
	printList(p, n.Operands(), " "+n.Operator().String()+" ")
	return false
}

func (p *printer) VisitInstanceofExpression(n *InstanceofExpression) bool {
	p.node(n.LeftOperand())
	p.print(" instanceof ")
	p.node(n.RightOperand())
	return false
}

func (p *printer) VisitLambdaExpression(n *LambdaExpression) bool {
	p.print("(")
	printList(p, n.Parameters(), ", ")
	p.print(") -> ")
	p.node(n.Body())
	return false
}

func (p *printer) VisitMethodInvocation(n *MethodInvocation) bool {
	if e := n.Expression(); e != nil {
		p.node(e)
		p.print(".")
	}
	p.node(n.Name())
	p.arguments(n.Arguments())
	return false
}

func (p *printer) VisitParenthesizedExpression(n *ParenthesizedExpression) bool {
	p.print("(")
	p.node(n.Expression())
	p.print(")")
	return false
}

func (p *printer) VisitPostfixExpression(n *PostfixExpression) bool {
	p.node(n.Operand())
	p.print(n.Operator().String())
	return false
}

func (p *printer) VisitPrefixExpression(n *PrefixExpression) bool {
	p.print(n.Operator().String())
	p.node(n.Operand())
	return false
}

func (p *printer) VisitSuperFieldAccess(n *SuperFieldAccess) bool {
	p.qualified(n.Qualifier(), "super.")
	p.node(n.Name())
	return false
}

func (p *printer) VisitSuperMethodInvocation(n *SuperMethodInvocation) bool {
	p.qualified(n.Qualifier(), "super.")
	p.node(n.Name())
	p.arguments(n.Arguments())
	return false
}

func (p *printer) VisitThisExpression(n *ThisExpression) bool {
	p.qualified(n.Qualifier(), "this")
	return false
}

func (p *printer) qualified(q Name, keyword string) {
	if q != nil {
		p.node(q)
		p.print(".")
	}
	p.print(keyword)
}

func (p *printer) VisitTypeLiteral(n *TypeLiteral) bool {
	p.node(n.Type())
	p.print(".class")
	return false
}

func (p *printer) VisitCreationReference(n *CreationReference) bool {
	p.node(n.Type())
	p.print("::new")
	return false
}

func (p *printer) VisitExpressionMethodReference(n *ExpressionMethodReference) bool {
	p.node(n.Expression())
	p.print("::")
	p.node(n.Name())
	return false
}

func (p *printer) VisitSuperMethodReference(n *SuperMethodReference) bool {
	p.qualified(n.Qualifier(), "super::")
	p.node(n.Name())
	return false
}

func (p *printer) VisitTypeMethodReference(n *TypeMethodReference) bool {
	p.node(n.Type())
	p.print("::")
	if !n.TypeArguments().IsEmpty() {
		p.print("<")
		printList(p, n.TypeArguments(), ", ")
		p.print(">")
	}
	p.node(n.Name())
	return false
}

func (p *printer) VisitBooleanLiteral(n *BooleanLiteral) bool {
	p.print(strconv.FormatBool(n.BooleanValue()))
	return false
}

func (p *printer) VisitCharacterLiteral(n *CharacterLiteral) bool {
	p.print(strconv.QuoteRune(n.CharValue()))
	return false
}

func (p *printer) VisitCStringLiteral(n *CStringLiteral) bool {
	p.print(strconv.Quote(n.LiteralValue()))
	return false
}

func (p *printer) VisitNullLiteral(n *NullLiteral) bool {
	p.print("null")
	return false
}

func (p *printer) VisitNumberLiteral(n *NumberLiteral) bool {
	if n.Token() != "" {
		p.print(n.Token())
	} else {
		p.printf("%v", n.Value())
	}
	return false
}

func (p *printer) VisitStringLiteral(n *StringLiteral) bool {
	p.print(strconv.Quote(n.LiteralValue()))
	return false
}

func (p *printer) VisitSimpleName(n *SimpleName) bool {
	p.print(n.Identifier())
	return false
}

func (p *printer) VisitQualifiedName(n *QualifiedName) bool {
	p.print(n.FullyQualifiedName())
	return false
}

func (p *printer) VisitArrayType(n *ArrayType) bool {
	p.node(n.ComponentType())
	p.print("[]")
	return false
}

func (p *printer) VisitIntersectionType(n *IntersectionType) bool {
	printList(p, n.Types(), " & ")
	return false
}

func (p *printer) VisitNameQualifiedType(n *NameQualifiedType) bool {
	p.node(n.Qualifier())
	p.print(".")
	p.annotations(n.Annotations())
	p.node(n.Name())
	return false
}

func (p *printer) VisitParameterizedType(n *ParameterizedType) bool {
	p.node(n.Type())
	p.print("<")
	printList(p, n.TypeArguments(), ", ")
	p.print(">")
	return false
}

func (p *printer) VisitPrimitiveType(n *PrimitiveType) bool {
	if t := n.TypeMirror(); t != nil {
		p.print(t.String())
	} else {
		p.print("?")
	}
	return false
}

func (p *printer) VisitQualifiedType(n *QualifiedType) bool {
	p.node(n.Qualifier())
	p.print(".")
	p.node(n.Name())
	return false
}

func (p *printer) VisitSimpleType(n *SimpleType) bool {
	p.node(n.Name())
	return false
}

func (p *printer) VisitUnionType(n *UnionType) bool {
	printList(p, n.Types(), " | ")
	return false
}

func (p *printer) VisitDimension(n *Dimension) bool {
	p.annotations(n.Annotations())
	p.print("[]")
	return false
}

// Outline renders the subtree as one line per node, indented by depth, with
// the kind, the source line when known and a short detail for leaves.
func Outline(n Node) string {
	if isNil(n) {
		return ""
	}
	o := &outliner{}
	n.Accept(o)
	return o.sb.String()
}

type outliner struct {
	BaseVisitor
	sb    strings.Builder
	depth int
}

func (o *outliner) PreVisit(n Node) bool {
	o.sb.WriteString(strings.Repeat("  ", o.depth))
	o.sb.WriteString(n.Kind().String())
	if line := n.LineNumber(); line > 0 {
		fmt.Fprintf(&o.sb, " @%d", line)
	}
	if d := outlineDetail(n); d != "" {
		o.sb.WriteString(" ")
		o.sb.WriteString(d)
	}
	o.sb.WriteByte('\n')
	o.depth++
	return true
}

func (o *outliner) PostVisit(Node) { o.depth-- }

func outlineDetail(n Node) string {
	switch x := n.(type) {
	case *SimpleName:
		return x.Identifier()
	case *InfixExpression:
		return x.Operator().String()
	case *PrefixExpression:
		return x.Operator().String()
	case *PostfixExpression:
		return x.Operator().String()
	case *Assignment:
		return x.Operator().String()
	case *NumberLiteral, *BooleanLiteral, *CharacterLiteral, *StringLiteral, *NullLiteral, *PrimitiveType:
		return DebugString(n)
	case *FunctionDeclaration:
		return x.Name()
	case *FunctionInvocation:
		return x.Name()
	}
	return ""
}
