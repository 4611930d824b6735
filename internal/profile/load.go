// Package profile provides functionality to load and validate profile files.
package profile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/tailorcv/internal/types"
)

// validate is shared across loads; validator instances cache struct metadata
var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a profile YAML file, decodes it, and checks required fields.
// The returned profile is treated as immutable by all downstream stages.
func Load(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Parse(content)
}

// Parse decodes and validates raw profile YAML content
func Parse(content []byte) (*types.Profile, error) {
	var p types.Profile
	if err := yaml.Unmarshal(content, &p); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal YAML",
			Cause:   err,
		}
	}

	if err := validate.Struct(&p); err != nil {
		return nil, &LoadError{
			Message: describeValidationError(err),
			Cause:   err,
		}
	}

	if err := checkDuplicateIDs(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

// describeValidationError flattens validator errors into one actionable message
func describeValidationError(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "profile schema validation failed"
	}

	msg := "missing or invalid required fields:"
	for i, fe := range verrs {
		if i > 0 {
			msg += ","
		}
		msg += " " + fe.Namespace()
	}
	return msg
}

// checkDuplicateIDs enforces that selectable entry ids are unique within their category
func checkDuplicateIDs(p *types.Profile) error {
	categories := map[string][]string{
		"experience": p.ExperienceIDs(),
		"projects":   p.ProjectIDs(),
		"education":  p.EducationIDs(),
	}

	for category, ids := range categories {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				return &LoadError{
					Message: fmt.Sprintf("duplicate %s id: %q", category, id),
				}
			}
			seen[id] = true
		}
	}
	return nil
}
