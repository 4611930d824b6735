// Package ingestion provides functionality to load and clean job postings and extract keywords.
package ingestion

import "fmt"

// JobLoadError represents an I/O-level failure loading a job posting.
// Cleaning and keyword extraction never fail on noisy content; only missing or
// unreadable inputs produce this error.
type JobLoadError struct {
	Message string
	Cause   error
}

func (e *JobLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job load error: %s", e.Message)
}

func (e *JobLoadError) Unwrap() error {
	return e.Cause
}
