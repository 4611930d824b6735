// Package schemas validates assembled documents against the RenderCV JSON
// Schema. Validation happens after assembly and is never retried: a schema
// failure indicates a bug in the mapper or a bad override block, not a
// recoverable selection problem.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/tailorcv/internal/types"
)

//go:embed rendercv.schema.json
var renderCVSchema string

// Authority checks a document against an external schema contract
type Authority interface {
	Validate(doc *types.Document) error
}

// SchemaAuthority validates documents against the embedded RenderCV schema
type SchemaAuthority struct {
	schema *gojsonschema.Schema
}

// NewSchemaAuthority compiles the embedded RenderCV schema
func NewSchemaAuthority() (*SchemaAuthority, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(renderCVSchema))
	if err != nil {
		return nil, &SchemaLoadError{
			Message: "failed to compile embedded schema",
			Cause:   err,
		}
	}
	return &SchemaAuthority{schema: schema}, nil
}

// Validate checks the document against the schema. It returns nil when the
// document conforms, a *ValidationError listing every violating field path
// when it does not, and a plain error when the document cannot be serialized.
func (a *SchemaAuthority) Validate(doc *types.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document for validation: %w", err)
	}

	result, err := a.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
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
