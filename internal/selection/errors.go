// Package selection provides selection plan loading, parsing, and strict
// validation against a profile.
package selection

import (
	"fmt"
	"strings"

	"github.com/jonathan/tailorcv/internal/types"
)

// ParseError represents a selection payload that is not well-formed JSON
// matching the plan wire format. It is distinct from a validation failure and
// is still usable as retry feedback.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("selection parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("selection parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationFailure carries the complete, ordered violation list for a plan
// that references content missing from its profile or selects nothing.
type ValidationFailure struct {
	Violations *types.Violations
}

func (e *ValidationFailure) Error() string {
	msgs := e.Violations.Messages()
	return fmt.Sprintf("selection plan failed validation (%d violations): %s",
		len(msgs), strings.Join(msgs, "; "))
}

// Messages returns the violation messages, the feedback payload for retries
func (e *ValidationFailure) Messages() []string {
	return e.Violations.Messages()
}
