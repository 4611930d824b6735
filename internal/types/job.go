package types

// Job represents a cleaned job posting plus its extracted keyword set.
// Immutable after construction.
type Job struct {
	RawText     string   `json:"raw_text"`
	CleanedText string   `json:"cleaned_text"`
	Keywords    []string `json:"keywords"`
}
