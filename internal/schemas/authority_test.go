package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/tailorcv/internal/types"
)

func validDocument() *types.Document {
	return &types.Document{
		CV: &types.CV{
			Name:  "Test User",
			Email: "test@example.com",
			Sections: types.Sections{
				{
					Title: types.SectionExperience,
					Entries: []any{
						types.ExperienceEntry{
							Company:    "Acme",
							Position:   "Engineer",
							Highlights: []string{"Did things"},
						},
					},
				},
				{
					Title: types.SectionSkills,
					Entries: []any{
						types.SkillLineEntry{Label: "Languages", Details: "Go"},
					},
				},
			},
		},
		Design:   map[string]any{"theme": "engineeringresumes"},
		Locale:   map[string]any{"language": "english"},
		Settings: map[string]any{},
	}
}

func TestNewSchemaAuthority_CompilesEmbeddedSchema(t *testing.T) {
	authority, err := NewSchemaAuthority()
	require.NoError(t, err)
	require.NotNil(t, authority)
}

func TestValidate_ValidDocument(t *testing.T) {
	authority, err := NewSchemaAuthority()
	require.NoError(t, err)

	assert.NoError(t, authority.Validate(validDocument()))
}

func TestValidate_MissingName(t *testing.T) {
	authority, err := NewSchemaAuthority()
	require.NoError(t, err)

	doc := validDocument()
	doc.CV.Name = ""

	err = authority.Validate(doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)

	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "cv.name")
}

func TestValidate_MissingThemeReportsFieldPath(t *testing.T) {
	authority, err := NewSchemaAuthority()
	require.NoError(t, err)

	doc := validDocument()
	doc.Design = map[string]any{}

	err = authority.Validate(doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	found := false
	for _, fe := range validationErr.Errors {
		if fe.Field == "design" {
			found = true
		}
	}
	assert.True(t, found, "expected a violation at the design block: %v", validationErr.Errors)
}

func TestValidate_EmptySectionsRejected(t *testing.T) {
	authority, err := NewSchemaAuthority()
	require.NoError(t, err)

	doc := validDocument()
	doc.CV.Sections = types.Sections{}

	err = authority.Validate(doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidate_AccumulatesMultipleErrors(t *testing.T) {
	authority, err := NewSchemaAuthority()
	require.NoError(t, err)

	doc := validDocument()
	doc.CV.Name = ""
	doc.Design = map[string]any{}

	err = authority.Validate(doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
}
