package ast

// newNodeFuncs builds an empty node of every kind.
var newNodeFuncs = map[Kind]func() Node{
	KindAnnotationTypeDeclaration:       func() Node { return NewAnnotationTypeDeclaration() },
	KindAnnotationTypeMemberDeclaration: func() Node { return NewAnnotationTypeMemberDeclaration() },
	KindAnonymousClassDeclaration:       func() Node { return NewAnonymousClassDeclaration() },
	KindArrayAccess:                     func() Node { return NewArrayAccess() },
	KindArrayCreation:                   func() Node { return NewArrayCreation() },
	KindArrayInitializer:                func() Node { return NewArrayInitializer() },
	KindArrayType:                       func() Node { return NewArrayType() },
	KindAssertStatement:                 func() Node { return NewAssertStatement() },
	KindAssignment:                      func() Node { return NewAssignment(AssignPlain) },
	KindBlock:                           func() Node { return NewBlock() },
	KindBlockComment:                    func() Node { return NewBlockComment("") },
	KindBooleanLiteral:                  func() Node { return NewBooleanLiteral(false) },
	KindBreakStatement:                  func() Node { return NewBreakStatement() },
	KindCStringLiteral:                  func() Node { return NewCStringLiteral("") },
	KindCastExpression:                  func() Node { return NewCastExpression() },
	KindCatchClause:                     func() Node { return NewCatchClause() },
	KindCharacterLiteral:                func() Node { return NewCharacterLiteral('x') },
	KindClassInstanceCreation:           func() Node { return NewClassInstanceCreation() },
	KindCommaExpression:                 func() Node { return NewCommaExpression() },
	KindCompilationUnit:                 func() Node { return NewCompilationUnit(nil, "", "", "") },
	KindConditionalExpression:           func() Node { return NewConditionalExpression() },
	KindConstructorInvocation:           func() Node { return NewConstructorInvocation() },
	KindContinueStatement:               func() Node { return NewContinueStatement() },
	KindCreationReference:               func() Node { return NewCreationReference() },
	KindDimension:                       func() Node { return NewDimension() },
	KindDoStatement:                     func() Node { return NewDoStatement() },
	KindEmptyStatement:                  func() Node { return NewEmptyStatement() },
	KindEnhancedForStatement:            func() Node { return NewEnhancedForStatement() },
	KindEnumConstantDeclaration:         func() Node { return NewEnumConstantDeclaration() },
	KindEnumDeclaration:                 func() Node { return NewEnumDeclaration() },
	KindExpressionMethodReference:       func() Node { return NewExpressionMethodReference() },
	KindExpressionStatement:             func() Node { return NewExpressionStatement() },
	KindFieldAccess:                     func() Node { return NewFieldAccess() },
	KindFieldDeclaration:                func() Node { return NewFieldDeclaration() },
	KindForStatement:                    func() Node { return NewForStatement() },
	KindFunctionDeclaration:             func() Node { return NewFunctionDeclaration("") },
	KindFunctionInvocation:              func() Node { return NewFunctionInvocation("") },
	KindIfStatement:                     func() Node { return NewIfStatement() },
	KindInfixExpression:                 func() Node { return NewInfixExpression(InfixPlus) },
	KindInitializer:                     func() Node { return NewInitializer() },
	KindInstanceofExpression:            func() Node { return NewInstanceofExpression() },
	KindIntersectionType:                func() Node { return NewIntersectionType() },
	KindJavadoc:                         func() Node { return NewJavadoc() },
	KindLabeledStatement:                func() Node { return NewLabeledStatement() },
	KindLambdaExpression:                func() Node { return NewLambdaExpression() },
	KindLineComment:                     func() Node { return NewLineComment("") },
	KindMarkerAnnotation:                func() Node { return NewMarkerAnnotation() },
	KindMemberValuePair:                 func() Node { return NewMemberValuePair() },
	KindMethodDeclaration:               func() Node { return NewMethodDeclaration() },
	KindMethodInvocation:                func() Node { return NewMethodInvocation() },
	KindNameQualifiedType:               func() Node { return NewNameQualifiedType() },
	KindNativeDeclaration:               func() Node { return NewNativeDeclaration("", "") },
	KindNativeExpression:                func() Node { return NewNativeExpression("") },
	KindNativeStatement:                 func() Node { return NewNativeStatement("") },
	KindNormalAnnotation:                func() Node { return NewNormalAnnotation() },
	KindNullLiteral:                     func() Node { return NewNullLiteral() },
	KindNumberLiteral:                   func() Node { return NewNumberLiteral("", nil) },
	KindPackageDeclaration:              func() Node { return NewPackageDeclaration() },
	KindParameterizedType:               func() Node { return NewParameterizedType() },
	KindParenthesizedExpression:         func() Node { return NewParenthesizedExpression() },
	KindPostfixExpression:               func() Node { return NewPostfixExpression(PostfixIncrement) },
	KindPrefixExpression:                func() Node { return NewPrefixExpression(PrefixNot) },
	KindPrimitiveType:                   func() Node { return NewPrimitiveType() },
	KindPropertyAnnotation:              func() Node { return NewPropertyAnnotation() },
	KindQualifiedName:                   func() Node { return NewQualifiedName() },
	KindQualifiedType:                   func() Node { return NewQualifiedType() },
	KindReturnStatement:                 func() Node { return NewReturnStatement() },
	KindSimpleName:                      func() Node { return NewSimpleName("") },
	KindSimpleType:                      func() Node { return NewSimpleType() },
	KindSingleMemberAnnotation:          func() Node { return NewSingleMemberAnnotation() },
	KindSingleVariableDeclaration:       func() Node { return NewSingleVariableDeclaration() },
	KindStringLiteral:                   func() Node { return NewStringLiteral("") },
	KindSuperConstructorInvocation:      func() Node { return NewSuperConstructorInvocation() },
	KindSuperFieldAccess:                func() Node { return NewSuperFieldAccess() },
	KindSuperMethodInvocation:           func() Node { return NewSuperMethodInvocation() },
	KindSuperMethodReference:            func() Node { return NewSuperMethodReference() },
	KindSwitchCase:                      func() Node { return NewSwitchCase() },
	KindSwitchStatement:                 func() Node { return NewSwitchStatement() },
	KindSynchronizedStatement:           func() Node { return NewSynchronizedStatement() },
	KindTagElement:                      func() Node { return NewTagElement("") },
	KindTextElement:                     func() Node { return NewTextElement("") },
	KindThisExpression:                  func() Node { return NewThisExpression() },
	KindThrowStatement:                  func() Node { return NewThrowStatement() },
	KindTryStatement:                    func() Node { return NewTryStatement() },
	KindTypeDeclaration:                 func() Node { return NewTypeDeclaration() },
	KindTypeDeclarationStatement:        func() Node { return NewTypeDeclarationStatement() },
	KindTypeLiteral:                     func() Node { return NewTypeLiteral() },
	KindTypeMethodReference:             func() Node { return NewTypeMethodReference() },
	KindUnionType:                       func() Node { return NewUnionType() },
	KindVariableDeclarationExpression:   func() Node { return NewVariableDeclarationExpression() },
	KindVariableDeclarationFragment:     func() Node { return NewVariableDeclarationFragment() },
	KindVariableDeclarationStatement:    func() Node { return NewVariableDeclarationStatement() },
	KindWhileStatement:                  func() Node { return NewWhileStatement() },
}
