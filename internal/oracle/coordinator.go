package oracle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/tailorcv/internal/llm"
	"github.com/jonathan/tailorcv/internal/logger"
	"github.com/jonathan/tailorcv/internal/selection"
	"github.com/jonathan/tailorcv/internal/types"
)

// State is the coordinator's position in the retry loop
type State string

const (
	// StateIdle means no generation has started
	StateIdle State = "idle"
	// StateAttempting means a generation attempt is in flight
	StateAttempting State = "attempting"
	// StateSucceeded means a valid plan was produced
	StateSucceeded State = "succeeded"
	// StateExhausted means every attempt failed
	StateExhausted State = "exhausted"
)

// DefaultMaxAttempts is the attempt budget when the caller does not set one
const DefaultMaxAttempts = 3

// maxLoggedReasonChars caps rejection reasons in log output; full messages
// still reach the model as retry feedback and the final ExhaustedError
const maxLoggedReasonChars = 500

// Coordinator drives the propose/validate loop. Each rejected attempt's
// messages become the retry feedback of the next attempt, so the model sees
// exactly what to fix.
type Coordinator struct {
	proposer       Proposer
	maxAttempts    int
	attemptTimeout time.Duration
	logger         *zap.Logger
	state          State
}

// CoordinatorOption configures a Coordinator
type CoordinatorOption func(*Coordinator)

// WithAttemptTimeout bounds each individual attempt. Zero means no
// per-attempt deadline beyond the caller's context.
func WithAttemptTimeout(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) { c.attemptTimeout = d }
}

// WithLogger attaches a logger for per-attempt progress
func WithLogger(logger *zap.Logger) CoordinatorOption {
	return func(c *Coordinator) { c.logger = logger }
}

// NewCoordinator creates a coordinator with a positive attempt budget
func NewCoordinator(proposer Proposer, maxAttempts int, opts ...CoordinatorOption) (*Coordinator, error) {
	if maxAttempts < 1 {
		return nil, fmt.Errorf("max attempts must be >= 1, got %d", maxAttempts)
	}

	c := &Coordinator{
		proposer:    proposer,
		maxAttempts: maxAttempts,
		logger:      zap.NewNop(),
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// State reports the coordinator's current state
func (c *Coordinator) State() State {
	return c.state
}

// Generate runs the retry loop until a proposal validates cleanly, the
// attempt budget runs out, or the context is canceled. On exhaustion the
// returned *ExhaustedError lists every attempt's failure.
func (c *Coordinator) Generate(ctx context.Context, profile *types.Profile, job *types.Job) (*types.SelectionPlan, error) {
	var feedback []string
	var attemptErrors []AttemptError

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			c.state = StateExhausted
			return nil, fmt.Errorf("selection generation canceled before attempt %d: %w", attempt, err)
		}

		c.state = StateAttempting
		c.logger.Debug("requesting selection plan",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.maxAttempts),
			zap.Int("feedback_items", len(feedback)))

		plan, err := c.runAttempt(ctx, profile, job, feedback)
		if err != nil {
			message, nextFeedback := classifyAttemptFailure(err)
			feedback = nextFeedback
			attemptErrors = append(attemptErrors, AttemptError{Attempt: attempt, Message: message})
			c.logger.Warn("selection attempt rejected",
				zap.Int("attempt", attempt),
				zap.String("reason", logger.TruncateForLog(message, maxLoggedReasonChars)))
			continue
		}

		c.state = StateSucceeded
		c.logger.Debug("selection plan accepted", zap.Int("attempt", attempt))
		return plan, nil
	}

	c.state = StateExhausted
	return nil, &ExhaustedError{Attempts: attemptErrors}
}

// runAttempt performs one propose/validate round under the per-attempt
// deadline
func (c *Coordinator) runAttempt(ctx context.Context, profile *types.Profile, job *types.Job, feedback []string) (*types.SelectionPlan, error) {
	attemptCtx := ctx
	if c.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.attemptTimeout)
		defer cancel()
	}

	plan, err := c.proposer.Propose(attemptCtx, profile, job, feedback)
	if err != nil {
		return nil, err
	}
	if failure := selection.Validate(profile, plan); failure != nil {
		return nil, failure
	}
	return plan, nil
}

// classifyAttemptFailure turns an attempt error into a human-readable record
// and the feedback lines for the next attempt
func classifyAttemptFailure(err error) (message string, feedback []string) {
	var validationFailure *selection.ValidationFailure
	if errors.As(err, &validationFailure) {
		feedback = validationFailure.Messages()
		return "selection validation failed: " + strings.Join(feedback, " | "), feedback
	}

	var parseErr *selection.ParseError
	if errors.As(err, &parseErr) {
		message = "response parsing failed: " + parseErr.Error()
		return message, []string{message}
	}

	var transportErr *llm.TransportError
	if errors.As(err, &transportErr) {
		message = "provider failure: " + transportErr.Error()
		return message, []string{message}
	}

	message = "attempt failed: " + err.Error()
	return message, []string{message}
}
