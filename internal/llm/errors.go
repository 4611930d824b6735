package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportError represents a provider-level failure: network errors, HTTP
// error statuses, or malformed API responses. Transport errors are retryable
// by the caller.
type TransportError struct {
	Provider Provider
	Message  string
	Timeout  bool
	Cause    error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s transport error: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s transport error: %s", e.Provider, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// newTransportError wraps a provider failure, flagging deadline and network
// timeouts so callers can report them distinctly
func newTransportError(provider Provider, message string, cause error) *TransportError {
	return &TransportError{
		Provider: provider,
		Message:  message,
		Timeout:  isTimeout(cause),
		Cause:    cause,
	}
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
