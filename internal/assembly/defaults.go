package assembly

// DefaultDesign returns the default design block. The defaults bias the
// rendered output toward a single page while staying minimal enough to pass
// downstream schema validation.
func DefaultDesign() map[string]any {
	return map[string]any{
		"theme": "engineeringresumes",
		"page": map[string]any{
			"size":          "us-letter",
			"top_margin":    "0.7in",
			"bottom_margin": "0.7in",
			"left_margin":   "0.7in",
			"right_margin":  "0.7in",
			"show_footer":   false,
		},
		"typography": map[string]any{
			"line_spacing": "0.6em",
			"font_size":    map[string]any{"body": "10pt", "name": "24pt"},
		},
		"entries": map[string]any{
			"date_and_location_width": "4.0cm",
		},
	}
}

// DefaultLocale returns the default locale block. Language only: the renderer
// already defaults to English conventions for dates and labels.
func DefaultLocale() map[string]any {
	return map[string]any{"language": "english"}
}

// DefaultSettings returns the default settings block. Empty defers every
// setting to the renderer.
func DefaultSettings() map[string]any {
	return map[string]any{}
}
