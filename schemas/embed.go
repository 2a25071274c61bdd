// Package schemas provides access to embedded JSON schemas.
package schemas

import (
	_ "embed"
)

// Embed the expression-document JSON Schema into the binary for
// validation and tooling. The schema describes the shape of expression
// documents (single $-prefixed key per expression node) and enables
// IDE autocompletion and schema-based validation of expression files.
//
//go:embed expression.schema.json
var expressionSchema []byte

// GetExpressionSchema returns the embedded expression JSON Schema as raw bytes.
func GetExpressionSchema() []byte {
	return expressionSchema
}

// GetExpressionSchemaString returns the embedded expression JSON Schema
// as a string, for use cases that need it in string form.
func GetExpressionSchemaString() string {
	return string(expressionSchema)
}
