package evalclient

import (
	"context"
	"sync/atomic"
	"time"

	"placement-backend/internal/assessment"
	"placement-backend/internal/shared/metrics"
	"placement-backend/internal/shared/telemetry"
)

// DefaultMockDelay is the simulated latency before mock results are returned.
const DefaultMockDelay = 1500 * time.Millisecond

// SimulatedNotice is shown to the user whenever mock results are returned.
const SimulatedNotice = "Using simulated results. Connect to the backend API for real evaluations."

// Service is the remote side of an evaluation.
type Service interface {
	Evaluate(ctx context.Context, req assessment.Request) (assessment.Response, error)
	Requirements(ctx context.Context) ([]assessment.RoleRequirement, error)
}

// Outcome is the result of a submission. Simulated marks mock content and
// Cause holds the service error that triggered the fallback.
type Outcome struct {
	Response  assessment.Response
	Simulated bool
	Notice    string
	Cause     error
}

// Evaluator submits evaluations to the service and falls back to the local
// mock assembler when the service fails. Only one submission may be in
// flight at a time.
type Evaluator struct {
	svc       Service
	mockDelay time.Duration
	pending   atomic.Bool
}

// NewEvaluator constructs an Evaluator. A negative delay uses DefaultMockDelay.
func NewEvaluator(svc Service, mockDelay time.Duration) *Evaluator {
	if mockDelay < 0 {
		mockDelay = DefaultMockDelay
	}
	return &Evaluator{svc: svc, mockDelay: mockDelay}
}

// Pending reports whether a submission is outstanding.
func (e *Evaluator) Pending() bool {
	return e.pending.Load()
}

// Submit validates req, calls the service and on any service error waits the
// mock delay and returns mock results. Validation errors, ErrSubmissionPending
// and context cancellation are returned as errors; service errors are not.
func (e *Evaluator) Submit(ctx context.Context, req assessment.Request) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}
	if !e.pending.CompareAndSwap(false, true) {
		return Outcome{}, ErrSubmissionPending
	}
	defer e.pending.Store(false)

	start := time.Now()
	metrics.IncEvaluationStarted()

	var (
		resp assessment.Response
		err  error
	)
	if e.svc != nil {
		resp, err = e.svc.Evaluate(ctx, req)
	} else {
		err = &ServiceError{Op: "evaluate", Err: errNoService}
	}
	if err == nil {
		metrics.IncEvaluationCompleted(metrics.SourceService, string(resp.Readiness.Status))
		metrics.ObserveEvaluationDuration(metrics.SourceService, start)
		return Outcome{Response: resp}, nil
	}

	telemetry.Warn("evaluation.fallback", map[string]any{
		"err":      err,
		"delay_ms": e.mockDelay.Milliseconds(),
	})
	metrics.IncFallback()
	if werr := wait(ctx, e.mockDelay); werr != nil {
		metrics.IncEvaluationFailed("canceled")
		return Outcome{}, werr
	}

	mock := assessment.AssembleMock(req)
	metrics.IncEvaluationCompleted(metrics.SourceMock, string(mock.Readiness.Status))
	metrics.ObserveEvaluationDuration(metrics.SourceMock, start)
	return Outcome{
		Response:  mock,
		Simulated: true,
		Notice:    SimulatedNotice,
		Cause:     err,
	}, nil
}

// Requirements fetches the role catalog, falling back to the static list.
// The second return value reports whether the fallback was used.
func (e *Evaluator) Requirements(ctx context.Context) ([]assessment.RoleRequirement, bool) {
	if e.svc != nil {
		roles, err := e.svc.Requirements(ctx)
		if err == nil {
			return roles, false
		}
		telemetry.Warn("requirements.fallback", map[string]any{"err": err})
	}
	return assessment.MockRoleRequirements(), true
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
