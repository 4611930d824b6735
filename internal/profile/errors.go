// Package profile provides functionality to load and validate profile files.
package profile

import "fmt"

// LoadError represents a failure to read, parse, or validate a profile.
// It is never retried: a malformed profile is a caller-provided structural defect.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
