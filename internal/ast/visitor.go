package ast

// Visitor receives callbacks while a tree is traversed. PreVisit runs before
// every node and may skip it entirely; otherwise VisitX runs and, when it
// returns true, the children of the node are visited in order before
// EndVisitX. PostVisit runs for every node, skipped or not.
//
// Implementations embed BaseVisitor (or TreeVisitor) and override the
// methods they need.
type Visitor interface {
	PreVisit(n Node) bool
	PostVisit(n Node)

	VisitAnnotationTypeDeclaration(n *AnnotationTypeDeclaration) bool
	EndVisitAnnotationTypeDeclaration(n *AnnotationTypeDeclaration)
	VisitAnnotationTypeMemberDeclaration(n *AnnotationTypeMemberDeclaration) bool
	EndVisitAnnotationTypeMemberDeclaration(n *AnnotationTypeMemberDeclaration)
	VisitAnonymousClassDeclaration(n *AnonymousClassDeclaration) bool
	EndVisitAnonymousClassDeclaration(n *AnonymousClassDeclaration)
	VisitArrayAccess(n *ArrayAccess) bool
	EndVisitArrayAccess(n *ArrayAccess)
	VisitArrayCreation(n *ArrayCreation) bool
	EndVisitArrayCreation(n *ArrayCreation)
	VisitArrayInitializer(n *ArrayInitializer) bool
	EndVisitArrayInitializer(n *ArrayInitializer)
	VisitArrayType(n *ArrayType) bool
	EndVisitArrayType(n *ArrayType)
	VisitAssertStatement(n *AssertStatement) bool
	EndVisitAssertStatement(n *AssertStatement)
	VisitAssignment(n *Assignment) bool
	EndVisitAssignment(n *Assignment)
	VisitBlock(n *Block) bool
	EndVisitBlock(n *Block)
	VisitBlockComment(n *BlockComment) bool
	EndVisitBlockComment(n *BlockComment)
	VisitBooleanLiteral(n *BooleanLiteral) bool
	EndVisitBooleanLiteral(n *BooleanLiteral)
	VisitBreakStatement(n *BreakStatement) bool
	EndVisitBreakStatement(n *BreakStatement)
	VisitCStringLiteral(n *CStringLiteral) bool
	EndVisitCStringLiteral(n *CStringLiteral)
	VisitCastExpression(n *CastExpression) bool
	EndVisitCastExpression(n *CastExpression)
	VisitCatchClause(n *CatchClause) bool
	EndVisitCatchClause(n *CatchClause)
	VisitCharacterLiteral(n *CharacterLiteral) bool
	EndVisitCharacterLiteral(n *CharacterLiteral)
	VisitClassInstanceCreation(n *ClassInstanceCreation) bool
	EndVisitClassInstanceCreation(n *ClassInstanceCreation)
	VisitCommaExpression(n *CommaExpression) bool
	EndVisitCommaExpression(n *CommaExpression)
	VisitCompilationUnit(n *CompilationUnit) bool
	EndVisitCompilationUnit(n *CompilationUnit)
	VisitConditionalExpression(n *ConditionalExpression) bool
	EndVisitConditionalExpression(n *ConditionalExpression)
	VisitConstructorInvocation(n *ConstructorInvocation) bool
	EndVisitConstructorInvocation(n *ConstructorInvocation)
	VisitContinueStatement(n *ContinueStatement) bool
	EndVisitContinueStatement(n *ContinueStatement)
	VisitCreationReference(n *CreationReference) bool
	EndVisitCreationReference(n *CreationReference)
	VisitDimension(n *Dimension) bool
	EndVisitDimension(n *Dimension)
	VisitDoStatement(n *DoStatement) bool
	EndVisitDoStatement(n *DoStatement)
	VisitEmptyStatement(n *EmptyStatement) bool
	EndVisitEmptyStatement(n *EmptyStatement)
	VisitEnhancedForStatement(n *EnhancedForStatement) bool
	EndVisitEnhancedForStatement(n *EnhancedForStatement)
	VisitEnumConstantDeclaration(n *EnumConstantDeclaration) bool
	EndVisitEnumConstantDeclaration(n *EnumConstantDeclaration)
	VisitEnumDeclaration(n *EnumDeclaration) bool
	EndVisitEnumDeclaration(n *EnumDeclaration)
	VisitExpressionMethodReference(n *ExpressionMethodReference) bool
	EndVisitExpressionMethodReference(n *ExpressionMethodReference)
	VisitExpressionStatement(n *ExpressionStatement) bool
	EndVisitExpressionStatement(n *ExpressionStatement)
	VisitFieldAccess(n *FieldAccess) bool
	EndVisitFieldAccess(n *FieldAccess)
	VisitFieldDeclaration(n *FieldDeclaration) bool
	EndVisitFieldDeclaration(n *FieldDeclaration)
	VisitForStatement(n *ForStatement) bool
	EndVisitForStatement(n *ForStatement)
	VisitFunctionDeclaration(n *FunctionDeclaration) bool
	EndVisitFunctionDeclaration(n *FunctionDeclaration)
	VisitFunctionInvocation(n *FunctionInvocation) bool
	EndVisitFunctionInvocation(n *FunctionInvocation)
	VisitIfStatement(n *IfStatement) bool
	EndVisitIfStatement(n *IfStatement)
	VisitInfixExpression(n *InfixExpression) bool
	EndVisitInfixExpression(n *InfixExpression)
	VisitInitializer(n *Initializer) bool
	EndVisitInitializer(n *Initializer)
	VisitInstanceofExpression(n *InstanceofExpression) bool
	EndVisitInstanceofExpression(n *InstanceofExpression)
	VisitIntersectionType(n *IntersectionType) bool
	EndVisitIntersectionType(n *IntersectionType)
	VisitJavadoc(n *Javadoc) bool
	EndVisitJavadoc(n *Javadoc)
	VisitLabeledStatement(n *LabeledStatement) bool
	EndVisitLabeledStatement(n *LabeledStatement)
	VisitLambdaExpression(n *LambdaExpression) bool
	EndVisitLambdaExpression(n *LambdaExpression)
	VisitLineComment(n *LineComment) bool
	EndVisitLineComment(n *LineComment)
	VisitMarkerAnnotation(n *MarkerAnnotation) bool
	EndVisitMarkerAnnotation(n *MarkerAnnotation)
	VisitMemberValuePair(n *MemberValuePair) bool
	EndVisitMemberValuePair(n *MemberValuePair)
	VisitMethodDeclaration(n *MethodDeclaration) bool
	EndVisitMethodDeclaration(n *MethodDeclaration)
	VisitMethodInvocation(n *MethodInvocation) bool
	EndVisitMethodInvocation(n *MethodInvocation)
	VisitNameQualifiedType(n *NameQualifiedType) bool
	EndVisitNameQualifiedType(n *NameQualifiedType)
	VisitNativeDeclaration(n *NativeDeclaration) bool
	EndVisitNativeDeclaration(n *NativeDeclaration)
	VisitNativeExpression(n *NativeExpression) bool
	EndVisitNativeExpression(n *NativeExpression)
	VisitNativeStatement(n *NativeStatement) bool
	EndVisitNativeStatement(n *NativeStatement)
	VisitNormalAnnotation(n *NormalAnnotation) bool
	EndVisitNormalAnnotation(n *NormalAnnotation)
	VisitNullLiteral(n *NullLiteral) bool
	EndVisitNullLiteral(n *NullLiteral)
	VisitNumberLiteral(n *NumberLiteral) bool
	EndVisitNumberLiteral(n *NumberLiteral)
	VisitPackageDeclaration(n *PackageDeclaration) bool
	EndVisitPackageDeclaration(n *PackageDeclaration)
	VisitParameterizedType(n *ParameterizedType) bool
	EndVisitParameterizedType(n *ParameterizedType)
	VisitParenthesizedExpression(n *ParenthesizedExpression) bool
	EndVisitParenthesizedExpression(n *ParenthesizedExpression)
	VisitPostfixExpression(n *PostfixExpression) bool
	EndVisitPostfixExpression(n *PostfixExpression)
	VisitPrefixExpression(n *PrefixExpression) bool
	EndVisitPrefixExpression(n *PrefixExpression)
	VisitPrimitiveType(n *PrimitiveType) bool
	EndVisitPrimitiveType(n *PrimitiveType)
	VisitPropertyAnnotation(n *PropertyAnnotation) bool
	EndVisitPropertyAnnotation(n *PropertyAnnotation)
	VisitQualifiedName(n *QualifiedName) bool
	EndVisitQualifiedName(n *QualifiedName)
	VisitQualifiedType(n *QualifiedType) bool
	EndVisitQualifiedType(n *QualifiedType)
	VisitReturnStatement(n *ReturnStatement) bool
	EndVisitReturnStatement(n *ReturnStatement)
	VisitSimpleName(n *SimpleName) bool
	EndVisitSimpleName(n *SimpleName)
	VisitSimpleType(n *SimpleType) bool
	EndVisitSimpleType(n *SimpleType)
	VisitSingleMemberAnnotation(n *SingleMemberAnnotation) bool
	EndVisitSingleMemberAnnotation(n *SingleMemberAnnotation)
	VisitSingleVariableDeclaration(n *SingleVariableDeclaration) bool
	EndVisitSingleVariableDeclaration(n *SingleVariableDeclaration)
	VisitStringLiteral(n *StringLiteral) bool
	EndVisitStringLiteral(n *StringLiteral)
	VisitSuperConstructorInvocation(n *SuperConstructorInvocation) bool
	EndVisitSuperConstructorInvocation(n *SuperConstructorInvocation)
	VisitSuperFieldAccess(n *SuperFieldAccess) bool
	EndVisitSuperFieldAccess(n *SuperFieldAccess)
	VisitSuperMethodInvocation(n *SuperMethodInvocation) bool
	EndVisitSuperMethodInvocation(n *SuperMethodInvocation)
	VisitSuperMethodReference(n *SuperMethodReference) bool
	EndVisitSuperMethodReference(n *SuperMethodReference)
	VisitSwitchCase(n *SwitchCase) bool
	EndVisitSwitchCase(n *SwitchCase)
	VisitSwitchStatement(n *SwitchStatement) bool
	EndVisitSwitchStatement(n *SwitchStatement)
	VisitSynchronizedStatement(n *SynchronizedStatement) bool
	EndVisitSynchronizedStatement(n *SynchronizedStatement)
	VisitTagElement(n *TagElement) bool
	EndVisitTagElement(n *TagElement)
	VisitTextElement(n *TextElement) bool
	EndVisitTextElement(n *TextElement)
	VisitThisExpression(n *ThisExpression) bool
	EndVisitThisExpression(n *ThisExpression)
	VisitThrowStatement(n *ThrowStatement) bool
	EndVisitThrowStatement(n *ThrowStatement)
	VisitTryStatement(n *TryStatement) bool
	EndVisitTryStatement(n *TryStatement)
	VisitTypeDeclaration(n *TypeDeclaration) bool
	EndVisitTypeDeclaration(n *TypeDeclaration)
	VisitTypeDeclarationStatement(n *TypeDeclarationStatement) bool
	EndVisitTypeDeclarationStatement(n *TypeDeclarationStatement)
	VisitTypeLiteral(n *TypeLiteral) bool
	EndVisitTypeLiteral(n *TypeLiteral)
	VisitTypeMethodReference(n *TypeMethodReference) bool
	EndVisitTypeMethodReference(n *TypeMethodReference)
	VisitUnionType(n *UnionType) bool
	EndVisitUnionType(n *UnionType)
	VisitVariableDeclarationExpression(n *VariableDeclarationExpression) bool
	EndVisitVariableDeclarationExpression(n *VariableDeclarationExpression)
	VisitVariableDeclarationFragment(n *VariableDeclarationFragment) bool
	EndVisitVariableDeclarationFragment(n *VariableDeclarationFragment)
	VisitVariableDeclarationStatement(n *VariableDeclarationStatement) bool
	EndVisitVariableDeclarationStatement(n *VariableDeclarationStatement)
	VisitWhileStatement(n *WhileStatement) bool
	EndVisitWhileStatement(n *WhileStatement)
}

// BaseVisitor descends into every node and does nothing else.
type BaseVisitor struct{}

func (*BaseVisitor) PreVisit(Node) bool { return true }
func (*BaseVisitor) PostVisit(Node)     {}

func (*BaseVisitor) VisitAnnotationTypeDeclaration(*AnnotationTypeDeclaration) bool             { return true }
func (*BaseVisitor) EndVisitAnnotationTypeDeclaration(*AnnotationTypeDeclaration)               {}
func (*BaseVisitor) VisitAnnotationTypeMemberDeclaration(*AnnotationTypeMemberDeclaration) bool { return true }
func (*BaseVisitor) EndVisitAnnotationTypeMemberDeclaration(*AnnotationTypeMemberDeclaration)   {}
func (*BaseVisitor) VisitAnonymousClassDeclaration(*AnonymousClassDeclaration) bool             { return true }
func (*BaseVisitor) EndVisitAnonymousClassDeclaration(*AnonymousClassDeclaration)               {}
func (*BaseVisitor) VisitArrayAccess(*ArrayAccess) bool                                         { return true }
func (*BaseVisitor) EndVisitArrayAccess(*ArrayAccess)                                           {}
func (*BaseVisitor) VisitArrayCreation(*ArrayCreation) bool                                     { return true }
func (*BaseVisitor) EndVisitArrayCreation(*ArrayCreation)                                       {}
func (*BaseVisitor) VisitArrayInitializer(*ArrayInitializer) bool                               { return true }
func (*BaseVisitor) EndVisitArrayInitializer(*ArrayInitializer)                                 {}
func (*BaseVisitor) VisitArrayType(*ArrayType) bool                                             { return true }
func (*BaseVisitor) EndVisitArrayType(*ArrayType)                                               {}
func (*BaseVisitor) VisitAssertStatement(*AssertStatement) bool                                 { return true }
func (*BaseVisitor) EndVisitAssertStatement(*AssertStatement)                                   {}
func (*BaseVisitor) VisitAssignment(*Assignment) bool                                           { return true }
func (*BaseVisitor) EndVisitAssignment(*Assignment)                                             {}
func (*BaseVisitor) VisitBlock(*Block) bool                                                     { return true }
func (*BaseVisitor) EndVisitBlock(*Block)                                                       {}
func (*BaseVisitor) VisitBlockComment(*BlockComment) bool                                       { return true }
func (*BaseVisitor) EndVisitBlockComment(*BlockComment)                                         {}
func (*BaseVisitor) VisitBooleanLiteral(*BooleanLiteral) bool                                   { return true }
func (*BaseVisitor) EndVisitBooleanLiteral(*BooleanLiteral)                                     {}
func (*BaseVisitor) VisitBreakStatement(*BreakStatement) bool                                   { return true }
func (*BaseVisitor) EndVisitBreakStatement(*BreakStatement)                                     {}
func (*BaseVisitor) VisitCStringLiteral(*CStringLiteral) bool                                   { return true }
func (*BaseVisitor) EndVisitCStringLiteral(*CStringLiteral)                                     {}
func (*BaseVisitor) VisitCastExpression(*CastExpression) bool                                   { return true }
func (*BaseVisitor) EndVisitCastExpression(*CastExpression)                                     {}
func (*BaseVisitor) VisitCatchClause(*CatchClause) bool                                         { return true }
func (*BaseVisitor) EndVisitCatchClause(*CatchClause)                                           {}
func (*BaseVisitor) VisitCharacterLiteral(*CharacterLiteral) bool                               { return true }
func (*BaseVisitor) EndVisitCharacterLiteral(*CharacterLiteral)                                 {}
func (*BaseVisitor) VisitClassInstanceCreation(*ClassInstanceCreation) bool                     { return true }
func (*BaseVisitor) EndVisitClassInstanceCreation(*ClassInstanceCreation)                       {}
func (*BaseVisitor) VisitCommaExpression(*CommaExpression) bool                                 { return true }
func (*BaseVisitor) EndVisitCommaExpression(*CommaExpression)                                   {}
func (*BaseVisitor) VisitCompilationUnit(*CompilationUnit) bool                                 { return true }
func (*BaseVisitor) EndVisitCompilationUnit(*CompilationUnit)                                   {}
func (*BaseVisitor) VisitConditionalExpression(*ConditionalExpression) bool                     { return true }
func (*BaseVisitor) EndVisitConditionalExpression(*ConditionalExpression)                       {}
func (*BaseVisitor) VisitConstructorInvocation(*ConstructorInvocation) bool                     { return true }
func (*BaseVisitor) EndVisitConstructorInvocation(*ConstructorInvocation)                       {}
func (*BaseVisitor) VisitContinueStatement(*ContinueStatement) bool                             { return true }
func (*BaseVisitor) EndVisitContinueStatement(*ContinueStatement)                               {}
func (*BaseVisitor) VisitCreationReference(*CreationReference) bool                             { return true }
func (*BaseVisitor) EndVisitCreationReference(*CreationReference)                               {}
func (*BaseVisitor) VisitDimension(*Dimension) bool                                             { return true }
func (*BaseVisitor) EndVisitDimension(*Dimension)                                               {}
func (*BaseVisitor) VisitDoStatement(*DoStatement) bool                                         { return true }
func (*BaseVisitor) EndVisitDoStatement(*DoStatement)                                           {}
func (*BaseVisitor) VisitEmptyStatement(*EmptyStatement) bool                                   { return true }
func (*BaseVisitor) EndVisitEmptyStatement(*EmptyStatement)                                     {}
func (*BaseVisitor) VisitEnhancedForStatement(*EnhancedForStatement) bool                       { return true }
func (*BaseVisitor) EndVisitEnhancedForStatement(*EnhancedForStatement)                         {}
func (*BaseVisitor) VisitEnumConstantDeclaration(*EnumConstantDeclaration) bool                 { return true }
func (*BaseVisitor) EndVisitEnumConstantDeclaration(*EnumConstantDeclaration)                   {}
func (*BaseVisitor) VisitEnumDeclaration(*EnumDeclaration) bool                                 { return true }
func (*BaseVisitor) EndVisitEnumDeclaration(*EnumDeclaration)                                   {}
func (*BaseVisitor) VisitExpressionMethodReference(*ExpressionMethodReference) bool             { return true }
func (*BaseVisitor) EndVisitExpressionMethodReference(*ExpressionMethodReference)               {}
func (*BaseVisitor) VisitExpressionStatement(*ExpressionStatement) bool                         { return true }
func (*BaseVisitor) EndVisitExpressionStatement(*ExpressionStatement)                           {}
func (*BaseVisitor) VisitFieldAccess(*FieldAccess) bool                                         { return true }
func (*BaseVisitor) EndVisitFieldAccess(*FieldAccess)                                           {}
func (*BaseVisitor) VisitFieldDeclaration(*FieldDeclaration) bool                               { return true }
func (*BaseVisitor) EndVisitFieldDeclaration(*FieldDeclaration)                                 {}
func (*BaseVisitor) VisitForStatement(*ForStatement) bool                                       { return true }
func (*BaseVisitor) EndVisitForStatement(*ForStatement)                                         {}
func (*BaseVisitor) VisitFunctionDeclaration(*FunctionDeclaration) bool                         { return true }
func (*BaseVisitor) EndVisitFunctionDeclaration(*FunctionDeclaration)                           {}
func (*BaseVisitor) VisitFunctionInvocation(*FunctionInvocation) bool                           { return true }
func (*BaseVisitor) EndVisitFunctionInvocation(*FunctionInvocation)                             {}
func (*BaseVisitor) VisitIfStatement(*IfStatement) bool                                         { return true }
func (*BaseVisitor) EndVisitIfStatement(*IfStatement)                                           {}
func (*BaseVisitor) VisitInfixExpression(*InfixExpression) bool                                 { return true }
func (*BaseVisitor) EndVisitInfixExpression(*InfixExpression)                                   {}
func (*BaseVisitor) VisitInitializer(*Initializer) bool                                         { return true }
func (*BaseVisitor) EndVisitInitializer(*Initializer)                                           {}
func (*BaseVisitor) VisitInstanceofExpression(*InstanceofExpression) bool                       { return true }
func (*BaseVisitor) EndVisitInstanceofExpression(*InstanceofExpression)                         {}
func (*BaseVisitor) VisitIntersectionType(*IntersectionType) bool                               { return true }
func (*BaseVisitor) EndVisitIntersectionType(*IntersectionType)                                 {}
func (*BaseVisitor) VisitJavadoc(*Javadoc) bool                                                 { return true }
func (*BaseVisitor) EndVisitJavadoc(*Javadoc)                                                   {}
func (*BaseVisitor) VisitLabeledStatement(*LabeledStatement) bool                               { return true }
func (*BaseVisitor) EndVisitLabeledStatement(*LabeledStatement)                                 {}
func (*BaseVisitor) VisitLambdaExpression(*LambdaExpression) bool                               { return true }
func (*BaseVisitor) EndVisitLambdaExpression(*LambdaExpression)                                 {}
func (*BaseVisitor) VisitLineComment(*LineComment) bool                                         { return true }
func (*BaseVisitor) EndVisitLineComment(*LineComment)                                           {}
func (*BaseVisitor) VisitMarkerAnnotation(*MarkerAnnotation) bool                               { return true }
func (*BaseVisitor) EndVisitMarkerAnnotation(*MarkerAnnotation)                                 {}
func (*BaseVisitor) VisitMemberValuePair(*MemberValuePair) bool                                 { return true }
func (*BaseVisitor) EndVisitMemberValuePair(*MemberValuePair)                                   {}
func (*BaseVisitor) VisitMethodDeclaration(*MethodDeclaration) bool                             { return true }
func (*BaseVisitor) EndVisitMethodDeclaration(*MethodDeclaration)                               {}
func (*BaseVisitor) VisitMethodInvocation(*MethodInvocation) bool                               { return true }
func (*BaseVisitor) EndVisitMethodInvocation(*MethodInvocation)                                 {}
func (*BaseVisitor) VisitNameQualifiedType(*NameQualifiedType) bool                             { return true }
func (*BaseVisitor) EndVisitNameQualifiedType(*NameQualifiedType)                               {}
func (*BaseVisitor) VisitNativeDeclaration(*NativeDeclaration) bool                             { return true }
func (*BaseVisitor) EndVisitNativeDeclaration(*NativeDeclaration)                               {}
func (*BaseVisitor) VisitNativeExpression(*NativeExpression) bool                               { return true }
func (*BaseVisitor) EndVisitNativeExpression(*NativeExpression)                                 {}
func (*BaseVisitor) VisitNativeStatement(*NativeStatement) bool                                 { return true }
func (*BaseVisitor) EndVisitNativeStatement(*NativeStatement)                                   {}
func (*BaseVisitor) VisitNormalAnnotation(*NormalAnnotation) bool                               { return true }
func (*BaseVisitor) EndVisitNormalAnnotation(*NormalAnnotation)                                 {}
func (*BaseVisitor) VisitNullLiteral(*NullLiteral) bool                                         { return true }
func (*BaseVisitor) EndVisitNullLiteral(*NullLiteral)                                           {}
func (*BaseVisitor) VisitNumberLiteral(*NumberLiteral) bool                                     { return true }
func (*BaseVisitor) EndVisitNumberLiteral(*NumberLiteral)                                       {}
func (*BaseVisitor) VisitPackageDeclaration(*PackageDeclaration) bool                           { return true }
func (*BaseVisitor) EndVisitPackageDeclaration(*PackageDeclaration)                             {}
func (*BaseVisitor) VisitParameterizedType(*ParameterizedType) bool                             { return true }
func (*BaseVisitor) EndVisitParameterizedType(*ParameterizedType)                               {}
func (*BaseVisitor) VisitParenthesizedExpression(*ParenthesizedExpression) bool                 { return true }
func (*BaseVisitor) EndVisitParenthesizedExpression(*ParenthesizedExpression)                   {}
func (*BaseVisitor) VisitPostfixExpression(*PostfixExpression) bool                             { return true }
func (*BaseVisitor) EndVisitPostfixExpression(*PostfixExpression)                               {}
func (*BaseVisitor) VisitPrefixExpression(*PrefixExpression) bool                               { return true }
func (*BaseVisitor) EndVisitPrefixExpression(*PrefixExpression)                                 {}
func (*BaseVisitor) VisitPrimitiveType(*PrimitiveType) bool                                     { return true }
func (*BaseVisitor) EndVisitPrimitiveType(*PrimitiveType)                                       {}
func (*BaseVisitor) VisitPropertyAnnotation(*PropertyAnnotation) bool                           { return true }
func (*BaseVisitor) EndVisitPropertyAnnotation(*PropertyAnnotation)                             {}
func (*BaseVisitor) VisitQualifiedName(*QualifiedName) bool                                     { return true }
func (*BaseVisitor) EndVisitQualifiedName(*QualifiedName)                                       {}
func (*BaseVisitor) VisitQualifiedType(*QualifiedType) bool                                     { return true }
func (*BaseVisitor) EndVisitQualifiedType(*QualifiedType)                                       {}
func (*BaseVisitor) VisitReturnStatement(*ReturnStatement) bool                                 { return true }
func (*BaseVisitor) EndVisitReturnStatement(*ReturnStatement)                                   {}
func (*BaseVisitor) VisitSimpleName(*SimpleName) bool                                           { return true }
func (*BaseVisitor) EndVisitSimpleName(*SimpleName)                                             {}
func (*BaseVisitor) VisitSimpleType(*SimpleType) bool                                           { return true }
func (*BaseVisitor) EndVisitSimpleType(*SimpleType)                                             {}
func (*BaseVisitor) VisitSingleMemberAnnotation(*SingleMemberAnnotation) bool                   { return true }
func (*BaseVisitor) EndVisitSingleMemberAnnotation(*SingleMemberAnnotation)                     {}
func (*BaseVisitor) VisitSingleVariableDeclaration(*SingleVariableDeclaration) bool             { return true }
func (*BaseVisitor) EndVisitSingleVariableDeclaration(*SingleVariableDeclaration)               {}
func (*BaseVisitor) VisitStringLiteral(*StringLiteral) bool                                     { return true }
func (*BaseVisitor) EndVisitStringLiteral(*StringLiteral)                                       {}
func (*BaseVisitor) VisitSuperConstructorInvocation(*SuperConstructorInvocation) bool           { return true }
func (*BaseVisitor) EndVisitSuperConstructorInvocation(*SuperConstructorInvocation)             {}
func (*BaseVisitor) VisitSuperFieldAccess(*SuperFieldAccess) bool                               { return true }
func (*BaseVisitor) EndVisitSuperFieldAccess(*SuperFieldAccess)                                 {}
func (*BaseVisitor) VisitSuperMethodInvocation(*SuperMethodInvocation) bool                     { return true }
func (*BaseVisitor) EndVisitSuperMethodInvocation(*SuperMethodInvocation)                       {}
func (*BaseVisitor) VisitSuperMethodReference(*SuperMethodReference) bool                       { return true }
func (*BaseVisitor) EndVisitSuperMethodReference(*SuperMethodReference)                         {}
func (*BaseVisitor) VisitSwitchCase(*SwitchCase) bool                                           { return true }
func (*BaseVisitor) EndVisitSwitchCase(*SwitchCase)                                             {}
func (*BaseVisitor) VisitSwitchStatement(*SwitchStatement) bool                                 { return true }
func (*BaseVisitor) EndVisitSwitchStatement(*SwitchStatement)                                   {}
func (*BaseVisitor) VisitSynchronizedStatement(*SynchronizedStatement) bool                     { return true }
func (*BaseVisitor) EndVisitSynchronizedStatement(*SynchronizedStatement)                       {}
func (*BaseVisitor) VisitTagElement(*TagElement) bool                                           { return true }
func (*BaseVisitor) EndVisitTagElement(*TagElement)                                             {}
func (*BaseVisitor) VisitTextElement(*TextElement) bool                                         { return true }
func (*BaseVisitor) EndVisitTextElement(*TextElement)                                           {}
func (*BaseVisitor) VisitThisExpression(*ThisExpression) bool                                   { return true }
func (*BaseVisitor) EndVisitThisExpression(*ThisExpression)                                     {}
func (*BaseVisitor) VisitThrowStatement(*ThrowStatement) bool                                   { return true }
func (*BaseVisitor) EndVisitThrowStatement(*ThrowStatement)                                     {}
func (*BaseVisitor) VisitTryStatement(*TryStatement) bool                                       { return true }
func (*BaseVisitor) EndVisitTryStatement(*TryStatement)                                         {}
func (*BaseVisitor) VisitTypeDeclaration(*TypeDeclaration) bool                                 { return true }
func (*BaseVisitor) EndVisitTypeDeclaration(*TypeDeclaration)                                   {}
func (*BaseVisitor) VisitTypeDeclarationStatement(*TypeDeclarationStatement) bool               { return true }
func (*BaseVisitor) EndVisitTypeDeclarationStatement(*TypeDeclarationStatement)                 {}
func (*BaseVisitor) VisitTypeLiteral(*TypeLiteral) bool                                         { return true }
func (*BaseVisitor) EndVisitTypeLiteral(*TypeLiteral)                                           {}
func (*BaseVisitor) VisitTypeMethodReference(*TypeMethodReference) bool                         { return true }
func (*BaseVisitor) EndVisitTypeMethodReference(*TypeMethodReference)                           {}
func (*BaseVisitor) VisitUnionType(*UnionType) bool                                             { return true }
func (*BaseVisitor) EndVisitUnionType(*UnionType)                                               {}
func (*BaseVisitor) VisitVariableDeclarationExpression(*VariableDeclarationExpression) bool     { return true }
func (*BaseVisitor) EndVisitVariableDeclarationExpression(*VariableDeclarationExpression)       {}
func (*BaseVisitor) VisitVariableDeclarationFragment(*VariableDeclarationFragment) bool         { return true }
func (*BaseVisitor) EndVisitVariableDeclarationFragment(*VariableDeclarationFragment)           {}
func (*BaseVisitor) VisitVariableDeclarationStatement(*VariableDeclarationStatement) bool       { return true }
func (*BaseVisitor) EndVisitVariableDeclarationStatement(*VariableDeclarationStatement)         {}
func (*BaseVisitor) VisitWhileStatement(*WhileStatement) bool                                   { return true }
func (*BaseVisitor) EndVisitWhileStatement(*WhileStatement)                                     {}
