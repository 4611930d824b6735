package oracle

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/tailorcv/internal/llm"
	"github.com/jonathan/tailorcv/internal/selection"
	"github.com/jonathan/tailorcv/internal/types"
)

// scriptedProposer returns pre-built plans or errors in sequence and records
// the feedback passed to each call
type scriptedProposer struct {
	plans    []*types.SelectionPlan
	errs     []error
	feedback [][]string
}

func (s *scriptedProposer) Propose(ctx context.Context, _ *types.Profile, _ *types.Job, feedback []string) (*types.SelectionPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	call := len(s.feedback)
	s.feedback = append(s.feedback, append([]string(nil), feedback...))
	if call < len(s.errs) && s.errs[call] != nil {
		return nil, s.errs[call]
	}
	if call < len(s.plans) {
		return s.plans[call], nil
	}
	return nil, &llm.TransportError{Message: "no scripted proposal"}
}

func coordinatorProfile() *types.Profile {
	return &types.Profile{
		Meta: types.Meta{Name: "Ada", Location: "London", Email: "ada@example.com"},
		Experience: []types.Experience{
			{ID: "exp_1", Company: "Acme", Position: "Engineer", Highlights: []string{"A"}},
		},
		Skills: []types.SkillEntry{{Label: "Languages", Details: "Go"}},
	}
}

func coordinatorJob() *types.Job {
	return &types.Job{CleanedText: "Go engineer", Keywords: []string{"go"}}
}

func validPlan() *types.SelectionPlan {
	return &types.SelectionPlan{SelectedExperienceIDs: []string{"exp_1"}}
}

func invalidPlan() *types.SelectionPlan {
	return &types.SelectionPlan{SelectedExperienceIDs: []string{"exp_9"}}
}

func TestNewCoordinator_RejectsNonPositiveAttempts(t *testing.T) {
	_, err := NewCoordinator(&scriptedProposer{}, 0)
	assert.Error(t, err)
}

func TestCoordinator_SucceedsFirstAttempt(t *testing.T) {
	proposer := &scriptedProposer{plans: []*types.SelectionPlan{validPlan()}}
	coordinator, err := NewCoordinator(proposer, 3)
	require.NoError(t, err)

	plan, err := coordinator.Generate(context.Background(), coordinatorProfile(), coordinatorJob())
	require.NoError(t, err)

	assert.Equal(t, []string{"exp_1"}, plan.SelectedExperienceIDs)
	assert.Equal(t, StateSucceeded, coordinator.State())
	assert.Len(t, proposer.feedback, 1)
	assert.Empty(t, proposer.feedback[0])
}

func TestCoordinator_ViolationsBecomeNextAttemptFeedback(t *testing.T) {
	proposer := &scriptedProposer{plans: []*types.SelectionPlan{invalidPlan(), validPlan()}}
	coordinator, err := NewCoordinator(proposer, 3)
	require.NoError(t, err)

	plan, err := coordinator.Generate(context.Background(), coordinatorProfile(), coordinatorJob())
	require.NoError(t, err)
	require.NotNil(t, plan)

	require.Len(t, proposer.feedback, 2)
	require.Len(t, proposer.feedback[1], 1)
	assert.Contains(t, proposer.feedback[1][0], "exp_9")
	assert.Equal(t, StateSucceeded, coordinator.State())
}

func TestCoordinator_ExhaustedAfterBudget(t *testing.T) {
	proposer := &scriptedProposer{
		plans: []*types.SelectionPlan{invalidPlan(), invalidPlan(), invalidPlan()},
	}
	coordinator, err := NewCoordinator(proposer, 3)
	require.NoError(t, err)

	_, err = coordinator.Generate(context.Background(), coordinatorProfile(), coordinatorJob())

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Len(t, exhausted.Attempts, 3)
	assert.Equal(t, 1, exhausted.Attempts[0].Attempt)
	assert.Equal(t, 3, exhausted.Attempts[2].Attempt)
	assert.Contains(t, exhausted.LastAttempt().Message, "exp_9")
	assert.Equal(t, StateExhausted, coordinator.State())
	assert.Len(t, proposer.feedback, 3)
}

func TestCoordinator_ParseFailureFeedsBack(t *testing.T) {
	proposer := &scriptedProposer{
		errs:  []error{&selection.ParseError{Message: "unexpected token"}},
		plans: []*types.SelectionPlan{nil, validPlan()},
	}
	coordinator, err := NewCoordinator(proposer, 3)
	require.NoError(t, err)

	_, err = coordinator.Generate(context.Background(), coordinatorProfile(), coordinatorJob())
	require.NoError(t, err)

	require.Len(t, proposer.feedback, 2)
	require.Len(t, proposer.feedback[1], 1)
	assert.Contains(t, proposer.feedback[1][0], "parsing failed")
}

func TestCoordinator_TransportFailureRetried(t *testing.T) {
	proposer := &scriptedProposer{
		errs:  []error{&llm.TransportError{Message: "connection reset"}},
		plans: []*types.SelectionPlan{nil, validPlan()},
	}
	coordinator, err := NewCoordinator(proposer, 2)
	require.NoError(t, err)

	plan, err := coordinator.Generate(context.Background(), coordinatorProfile(), coordinatorJob())
	require.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Contains(t, proposer.feedback[1][0], "provider failure")
}

func TestCoordinator_CancellationStopsLoop(t *testing.T) {
	proposer := &scriptedProposer{plans: []*types.SelectionPlan{validPlan()}}
	coordinator, err := NewCoordinator(proposer, 3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = coordinator.Generate(ctx, coordinatorProfile(), coordinatorJob())

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, proposer.feedback, "no attempt should run after cancellation")
}

func TestCoordinator_AttemptTimeoutApplied(t *testing.T) {
	// The proposer observes the per-attempt deadline through its context.
	observed := make(chan bool, 1)
	proposer := proposerFunc(func(ctx context.Context, _ *types.Profile, _ *types.Job, _ []string) (*types.SelectionPlan, error) {
		_, ok := ctx.Deadline()
		observed <- ok
		return validPlan(), nil
	})

	coordinator, err := NewCoordinator(proposer, 1, WithAttemptTimeout(5*time.Second))
	require.NoError(t, err)

	_, err = coordinator.Generate(context.Background(), coordinatorProfile(), coordinatorJob())
	require.NoError(t, err)
	assert.True(t, <-observed)
}

func TestCoordinator_RejectionReasonTruncatedInLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	proposer := &scriptedProposer{
		errs:  []error{&llm.TransportError{Message: strings.Repeat("x", 2000)}},
		plans: []*types.SelectionPlan{nil, validPlan()},
	}
	coordinator, err := NewCoordinator(proposer, 2, WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = coordinator.Generate(context.Background(), coordinatorProfile(), coordinatorJob())
	require.NoError(t, err)

	entries := logs.FilterMessage("selection attempt rejected").All()
	require.Len(t, entries, 1)
	reason, ok := entries[0].ContextMap()["reason"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(reason, "..."))
	assert.LessOrEqual(t, len([]rune(reason)), maxLoggedReasonChars+3)
}

// proposerFunc adapts a function to the Proposer interface
type proposerFunc func(context.Context, *types.Profile, *types.Job, []string) (*types.SelectionPlan, error)

func (f proposerFunc) Propose(ctx context.Context, p *types.Profile, j *types.Job, fb []string) (*types.SelectionPlan, error) {
	return f(ctx, p, j, fb)
}
