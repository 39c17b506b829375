package ast

// Node kinds produced by the tree-sitter javascript grammar
const (
	KindProgram                      = "program"
	KindStatementBlock               = "statement_block"
	KindFunctionDeclaration          = "function_declaration"
	KindGeneratorFunctionDeclaration = "generator_function_declaration"
	KindFunctionExpression           = "function_expression"
	KindFunction                     = "function" // function expression in older grammar releases
	KindGeneratorFunction            = "generator_function"
	KindArrowFunction                = "arrow_function"
	KindMethodDefinition             = "method_definition"
	KindClassDeclaration             = "class_declaration"
	KindClass                        = "class"
	KindVariableDeclaration          = "variable_declaration"
	KindLexicalDeclaration           = "lexical_declaration"
	KindVariableDeclarator           = "variable_declarator"
	KindFormalParameters             = "formal_parameters"
	KindIdentifier                   = "identifier"
	KindPropertyIdentifier           = "property_identifier"
	KindPrivatePropertyIdentifier    = "private_property_identifier"
	KindShorthandPropertyIdentifier  = "shorthand_property_identifier"
	KindShorthandPropertyPattern     = "shorthand_property_identifier_pattern"
	KindThis                         = "this"
	KindMemberExpression             = "member_expression"
	KindSubscriptExpression          = "subscript_expression"
	KindCallExpression               = "call_expression"
	KindPair                         = "pair"
	KindPairPattern                  = "pair_pattern"
	KindObjectPattern                = "object_pattern"
	KindArrayPattern                 = "array_pattern"
	KindAssignmentPattern            = "assignment_pattern"
	KindObjectAssignmentPattern      = "object_assignment_pattern"
	KindRestPattern                  = "rest_pattern"
	KindAssignmentExpression         = "assignment_expression"
	KindAwaitExpression              = "await_expression"
	KindExpressionStatement          = "expression_statement"
	KindParenthesizedExpression      = "parenthesized_expression"
	KindImportStatement              = "import_statement"
	KindImportClause                 = "import_clause"
	KindNamedImports                 = "named_imports"
	KindNamespaceImport              = "namespace_import"
	KindImportSpecifier              = "import_specifier"
	KindExportStatement              = "export_statement"
	KindString                       = "string"
	KindNumber                       = "number"
	KindCatchClause                  = "catch_clause"
	KindFieldDefinition              = "field_definition"
	KindPublicFieldDefinition        = "public_field_definition"
	KindComment                      = "comment"
	KindError                        = "ERROR"
)

// Field names used to address children
const (
	FieldName       = "name"
	FieldBody       = "body"
	FieldParameters = "parameters"
	FieldParameter  = "parameter"
	FieldValue      = "value"
	FieldKey        = "key"
	FieldLeft       = "left"
	FieldRight      = "right"
	FieldObject     = "object"
	FieldProperty   = "property"
	FieldAlias      = "alias"
)
