package astbridge

func set(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

var literalKinds = set(
	"decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal",
	"decimal_floating_point_literal", "hex_floating_point_literal",
	"true", "false", "character_literal", "string_literal", "text_block", "null_literal",
)

var expressionKinds = union(literalKinds, set(
	"identifier", "scoped_identifier", "this", "field_access", "method_invocation",
	"object_creation_expression", "array_creation_expression", "array_initializer", "array_access",
	"assignment_expression", "binary_expression", "unary_expression", "update_expression",
	"ternary_expression", "cast_expression", "instanceof_expression", "lambda_expression",
	"method_reference", "class_literal", "parenthesized_expression", "switch_expression",
	"marker_annotation", "annotation",
))

var statementKinds = set(
	"block", ";", "expression_statement", "local_variable_declaration", "if_statement",
	"while_statement", "do_statement", "for_statement", "enhanced_for_statement",
	"return_statement", "break_statement", "continue_statement", "throw_statement",
	"try_statement", "try_with_resources_statement", "switch_statement", "synchronized_statement",
	"labeled_statement", "assert_statement", "explicit_constructor_invocation", "yield_statement",
)

var typeDeclarationKinds = set(
	"class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration",
)

var declarationKinds = union(typeDeclarationKinds, set(
	"field_declaration", "constant_declaration", "method_declaration", "constructor_declaration",
	"static_initializer", "enum_constant", "annotation_type_element_declaration",
))

var typeKinds = set(
	"void_type", "integral_type", "floating_point_type", "boolean_type", "type_identifier",
	"scoped_type_identifier", "generic_type", "array_type", "annotated_type",
)

var annotationKinds = set("marker_annotation", "annotation")

// union returns a new set holding the members of all sets.
func union(sets ...map[string]bool) map[string]bool {
	m := make(map[string]bool)
	for _, s := range sets {
		for k := range s {
			m[k] = true
		}
	}
	return m
}
