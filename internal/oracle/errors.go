package oracle

import (
	"fmt"
	"strings"
)

// AttemptError records why a single generation attempt was rejected
type AttemptError struct {
	Attempt int
	Message string
}

// ExhaustedError is returned when every generation attempt failed. It carries
// the full per-attempt history so callers can show what went wrong at each
// step, not just the final failure.
type ExhaustedError struct {
	Attempts []AttemptError
}

func (e *ExhaustedError) Error() string {
	details := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		details = append(details, fmt.Sprintf("attempt %d: %s", a.Attempt, a.Message))
	}
	return fmt.Sprintf("selection generation failed after %d attempts: %s",
		len(e.Attempts), strings.Join(details, "; "))
}

// LastAttempt returns the final attempt's error detail
func (e *ExhaustedError) LastAttempt() AttemptError {
	if len(e.Attempts) == 0 {
		return AttemptError{}
	}
	return e.Attempts[len(e.Attempts)-1]
}
