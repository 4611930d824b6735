// Package assembly builds the final four-block document around a mapped cv:
// cv, design, locale, and settings. Defaults fill any block the caller did not
// supply; a supplied block replaces the default wholesale rather than being
// merged into it.
package assembly

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/tailorcv/internal/types"
)

// Overrides carries caller-supplied configuration blocks. A nil block means
// "use the default"; a non-nil block, even an empty one, wins outright.
type Overrides struct {
	Design   map[string]any
	Locale   map[string]any
	Settings map[string]any
}

// Assemble combines the cv block with design, locale, and settings into a
// complete document. All four blocks are always present in the result.
func Assemble(cv *types.CV, overrides Overrides) *types.Document {
	doc := &types.Document{
		CV:       cv,
		Design:   DefaultDesign(),
		Locale:   DefaultLocale(),
		Settings: DefaultSettings(),
	}
	if overrides.Design != nil {
		doc.Design = overrides.Design
	}
	if overrides.Locale != nil {
		doc.Locale = overrides.Locale
	}
	if overrides.Settings != nil {
		doc.Settings = overrides.Settings
	}
	return doc
}

// LoadBlock reads an override block from a YAML file. An empty path returns
// nil, meaning "no override".
func LoadBlock(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read override file %s: %w", path, err)
	}

	block := map[string]any{}
	if err := yaml.Unmarshal(content, &block); err != nil {
		return nil, fmt.Errorf("failed to parse override file %s: %w", path, err)
	}
	return block, nil
}
