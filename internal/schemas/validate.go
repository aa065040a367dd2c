// Package schemas provides JSON Schema validation for structured LLM output.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed enhancement.schema.json
var enhancementSchemaJSON string

var (
	enhancementSchema     *gojsonschema.Schema
	enhancementSchemaOnce sync.Once
	enhancementSchemaErr  error
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateEnhancementList checks a JSON document against the enhancement
// list schema. The document is the array an LLM returns when re-ranking a
// recommendation slate. Returns nil when the document conforms, a
// *ValidationError otherwise.
func ValidateEnhancementList(jsonContent string) error {
	enhancementSchemaOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(enhancementSchemaJSON)
		enhancementSchema, enhancementSchemaErr = gojsonschema.NewSchema(loader)
	})
	if enhancementSchemaErr != nil {
		return fmt.Errorf("failed to compile enhancement schema: %w", enhancementSchemaErr)
	}

	result, err := enhancementSchema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
