package ast

// Kind is the discriminant of a concrete node type.
type Kind int

const (
	KindInvalid Kind = iota
	KindAnnotationTypeDeclaration
	KindAnnotationTypeMemberDeclaration
	KindAnonymousClassDeclaration
	KindArrayAccess
	KindArrayCreation
	KindArrayInitializer
	KindArrayType
	KindAssertStatement
	KindAssignment
	KindBlock
	KindBlockComment
	KindBooleanLiteral
	KindBreakStatement
	KindCStringLiteral
	KindCastExpression
	KindCatchClause
	KindCharacterLiteral
	KindClassInstanceCreation
	KindCommaExpression
	KindCompilationUnit
	KindConditionalExpression
	KindConstructorInvocation
	KindContinueStatement
	KindCreationReference
	KindDimension
	KindDoStatement
	KindEmptyStatement
	KindEnhancedForStatement
	KindEnumConstantDeclaration
	KindEnumDeclaration
	KindExpressionMethodReference
	KindExpressionStatement
	KindFieldAccess
	KindFieldDeclaration
	KindForStatement
	KindFunctionDeclaration
	KindFunctionInvocation
	KindIfStatement
	KindInfixExpression
	KindInitializer
	KindInstanceofExpression
	KindIntersectionType
	KindJavadoc
	KindLabeledStatement
	KindLambdaExpression
	KindLineComment
	KindMarkerAnnotation
	KindMemberValuePair
	KindMethodDeclaration
	KindMethodInvocation
	KindNameQualifiedType
	KindNativeDeclaration
	KindNativeExpression
	KindNativeStatement
	KindNormalAnnotation
	KindNullLiteral
	KindNumberLiteral
	KindPackageDeclaration
	KindParameterizedType
	KindParenthesizedExpression
	KindPostfixExpression
	KindPrefixExpression
	KindPrimitiveType
	KindPropertyAnnotation
	KindQualifiedName
	KindQualifiedType
	KindReturnStatement
	KindSimpleName
	KindSimpleType
	KindSingleMemberAnnotation
	KindSingleVariableDeclaration
	KindStringLiteral
	KindSuperConstructorInvocation
	KindSuperFieldAccess
	KindSuperMethodInvocation
	KindSuperMethodReference
	KindSwitchCase
	KindSwitchStatement
	KindSynchronizedStatement
	KindTagElement
	KindTextElement
	KindThisExpression
	KindThrowStatement
	KindTryStatement
	KindTypeDeclaration
	KindTypeDeclarationStatement
	KindTypeLiteral
	KindTypeMethodReference
	KindUnionType
	KindVariableDeclarationExpression
	KindVariableDeclarationFragment
	KindVariableDeclarationStatement
	KindWhileStatement
)

var kindNames = [...]string{
	KindInvalid:                         "Invalid",
	KindAnnotationTypeDeclaration:       "AnnotationTypeDeclaration",
	KindAnnotationTypeMemberDeclaration: "AnnotationTypeMemberDeclaration",
	KindAnonymousClassDeclaration:       "AnonymousClassDeclaration",
	KindArrayAccess:                     "ArrayAccess",
	KindArrayCreation:                   "ArrayCreation",
	KindArrayInitializer:                "ArrayInitializer",
	KindArrayType:                       "ArrayType",
	KindAssertStatement:                 "AssertStatement",
	KindAssignment:                      "Assignment",
	KindBlock:                           "Block",
	KindBlockComment:                    "BlockComment",
	KindBooleanLiteral:                  "BooleanLiteral",
	KindBreakStatement:                  "BreakStatement",
	KindCStringLiteral:                  "CStringLiteral",
	KindCastExpression:                  "CastExpression",
	KindCatchClause:                     "CatchClause",
	KindCharacterLiteral:                "CharacterLiteral",
	KindClassInstanceCreation:           "ClassInstanceCreation",
	KindCommaExpression:                 "CommaExpression",
	KindCompilationUnit:                 "CompilationUnit",
	KindConditionalExpression:           "ConditionalExpression",
	KindConstructorInvocation:           "ConstructorInvocation",
	KindContinueStatement:               "ContinueStatement",
	KindCreationReference:               "CreationReference",
	KindDimension:                       "Dimension",
	KindDoStatement:                     "DoStatement",
	KindEmptyStatement:                  "EmptyStatement",
	KindEnhancedForStatement:            "EnhancedForStatement",
	KindEnumConstantDeclaration:         "EnumConstantDeclaration",
	KindEnumDeclaration:                 "EnumDeclaration",
	KindExpressionMethodReference:       "ExpressionMethodReference",
	KindExpressionStatement:             "ExpressionStatement",
	KindFieldAccess:                     "FieldAccess",
	KindFieldDeclaration:                "FieldDeclaration",
	KindForStatement:                    "ForStatement",
	KindFunctionDeclaration:             "FunctionDeclaration",
	KindFunctionInvocation:              "FunctionInvocation",
	KindIfStatement:                     "IfStatement",
	KindInfixExpression:                 "InfixExpression",
	KindInitializer:                     "Initializer",
	KindInstanceofExpression:            "InstanceofExpression",
	KindIntersectionType:                "IntersectionType",
	KindJavadoc:                         "Javadoc",
	KindLabeledStatement:                "LabeledStatement",
	KindLambdaExpression:                "LambdaExpression",
	KindLineComment:                     "LineComment",
	KindMarkerAnnotation:                "MarkerAnnotation",
	KindMemberValuePair:                 "MemberValuePair",
	KindMethodDeclaration:               "MethodDeclaration",
	KindMethodInvocation:                "MethodInvocation",
	KindNameQualifiedType:               "NameQualifiedType",
	KindNativeDeclaration:               "NativeDeclaration",
	KindNativeExpression:                "NativeExpression",
	KindNativeStatement:                 "NativeStatement",
	KindNormalAnnotation:                "NormalAnnotation",
	KindNullLiteral:                     "NullLiteral",
	KindNumberLiteral:                   "NumberLiteral",
	KindPackageDeclaration:              "PackageDeclaration",
	KindParameterizedType:               "ParameterizedType",
	KindParenthesizedExpression:         "ParenthesizedExpression",
	KindPostfixExpression:               "PostfixExpression",
	KindPrefixExpression:                "PrefixExpression",
	KindPrimitiveType:                   "PrimitiveType",
	KindPropertyAnnotation:              "PropertyAnnotation",
	KindQualifiedName:                   "QualifiedName",
	KindQualifiedType:                   "QualifiedType",
	KindReturnStatement:                 "ReturnStatement",
	KindSimpleName:                      "SimpleName",
	KindSimpleType:                      "SimpleType",
	KindSingleMemberAnnotation:          "SingleMemberAnnotation",
	KindSingleVariableDeclaration:       "SingleVariableDeclaration",
	KindStringLiteral:                   "StringLiteral",
	KindSuperConstructorInvocation:      "SuperConstructorInvocation",
	KindSuperFieldAccess:                "SuperFieldAccess",
	KindSuperMethodInvocation:           "SuperMethodInvocation",
	KindSuperMethodReference:            "SuperMethodReference",
	KindSwitchCase:                      "SwitchCase",
	KindSwitchStatement:                 "SwitchStatement",
	KindSynchronizedStatement:           "SynchronizedStatement",
	KindTagElement:                      "TagElement",
	KindTextElement:                     "TextElement",
	KindThisExpression:                  "ThisExpression",
	KindThrowStatement:                  "ThrowStatement",
	KindTryStatement:                    "TryStatement",
	KindTypeDeclaration:                 "TypeDeclaration",
	KindTypeDeclarationStatement:        "TypeDeclarationStatement",
	KindTypeLiteral:                     "TypeLiteral",
	KindTypeMethodReference:             "TypeMethodReference",
	KindUnionType:                       "UnionType",
	KindVariableDeclarationExpression:   "VariableDeclarationExpression",
	KindVariableDeclarationFragment:     "VariableDeclarationFragment",
	KindVariableDeclarationStatement:    "VariableDeclarationStatement",
	KindWhileStatement:                  "WhileStatement",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid"
}

// Kinds returns every concrete node kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, len(kindNames)-1)
	for k := KindInvalid + 1; int(k) < len(kindNames); k++ {
		ks = append(ks, k)
	}
	return ks
}
