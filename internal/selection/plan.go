package selection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/tailorcv/internal/types"
)

// LoadPlan reads a selection plan from a JSON file. This is the manual
// override path: a file-supplied plan bypasses the oracle and retry loop but
// goes through the same validation and mapping as a generated one.
func LoadPlan(path string) (*types.SelectionPlan, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{
			Message: fmt.Sprintf("failed to read selection file %s", path),
			Cause:   err,
		}
	}
	return ParsePlan(content)
}

// ParsePlan decodes a selection plan from raw JSON. All keys are optional;
// absent keys decode to empty values. Unknown keys are rejected so a
// misspelled key surfaces as parse feedback instead of being silently dropped.
func ParsePlan(raw []byte) (*types.SelectionPlan, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &ParseError{Message: "selection payload is empty"}
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	var plan types.SelectionPlan
	if err := decoder.Decode(&plan); err != nil {
		return nil, &ParseError{
			Message: "selection payload is not valid plan JSON",
			Cause:   err,
		}
	}

	// Trailing content after the JSON object is malformed payload
	if decoder.More() {
		return nil, &ParseError{Message: "selection payload contains trailing content"}
	}

	return &plan, nil
}
