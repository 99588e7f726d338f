// Package schemas provides JSON Schema validation for the documents the
// engine consumes and emits.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolvePath attempts to find a schema file by trying the path relative to
// the working directory and then one and two levels up. Commands and tests
// run from different directories, so a fixed relative path is not enough.
// Returns empty string when no candidate exists.
func ResolvePath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// ValidationError reports the fields that failed schema validation.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateDocument validates an in-memory document (any JSON-serializable
// value) against the schema at schemaPath.
func ValidateDocument(schemaPath string, document any) error {
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewGoLoader(document)
	return runValidation(schemaLoader, documentLoader, schemaPath)
}

// ValidateFile validates the JSON document at docPath against the schema at
// schemaPath.
func ValidateFile(schemaPath, docPath string) error {
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + docPath)
	return runValidation(schemaLoader, documentLoader, schemaPath)
}

func runValidation(schemaLoader, documentLoader gojsonschema.JSONLoader, schemaPath string) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation with %s: %w", schemaPath, err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
