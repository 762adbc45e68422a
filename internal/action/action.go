package action

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/logging"
)

// Fixed delays of the simulated actions. They are not configurable.
const (
	CourseGenerationDelay = 2 * time.Second
	QuizRegenerationDelay = 2 * time.Second
	MarketRefreshDelay    = 2 * time.Second
	SignInDelay           = 1500 * time.Millisecond
	ChatReplyDelay        = 1 * time.Second
	VoiceInputDelay       = 2 * time.Second
)

// Reporter receives the completion notice of an action.
type Reporter interface {
	Success(format string, args ...interface{})
}

// Spec describes a simulated action.
type Spec[P any] struct {
	// Name identifies the action in logs and errors.
	Name string
	// Delay is how long the action stays pending.
	Delay time.Duration
	// Reveal returns the canned payload. It must be deterministic.
	Reveal func() P
	// SuccessMessage is reported when the payload is revealed. Empty means silent.
	SuccessMessage string
}

// Action is a simulated asynchronous action. Trigger enters the pending state
// immediately; after the fixed delay the payload is revealed, pending clears
// and the success message is reported. Re-triggering while pending is refused.
type Action[P any] struct {
	spec      Spec[P]
	scheduler Scheduler
	reporter  Reporter
	logger    zerolog.Logger

	mu       sync.Mutex
	pending  bool
	timer    Timer
	done     chan struct{}
	result   P
	revealed bool
	canceled bool
	onDone   []func(P)
}

// New creates an idle action.
func New[P any](spec Spec[P], scheduler Scheduler, reporter Reporter, logger zerolog.Logger) *Action[P] {
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	return &Action[P]{
		spec:      spec,
		scheduler: scheduler,
		reporter:  reporter,
		logger:    logging.WithAction(logger, spec.Name),
	}
}

// Name returns the action name.
func (a *Action[P]) Name() string {
	return a.spec.Name
}

// Delay returns the fixed pending delay.
func (a *Action[P]) Delay() time.Duration {
	return a.spec.Delay
}

// OnDone registers a callback run after each reveal, outside the action lock.
func (a *Action[P]) OnDone(f func(P)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onDone = append(a.onDone, f)
}

// Trigger starts the action. It returns ErrActionPending while a previous
// trigger has not revealed yet.
func (a *Action[P]) Trigger(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewActionError(a.spec.Name, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending {
		return apperrors.NewActionError(a.spec.Name, apperrors.ErrActionPending)
	}

	a.pending = true
	a.canceled = false
	a.done = make(chan struct{})
	done := a.done
	a.timer = a.scheduler.AfterFunc(a.spec.Delay, func() { a.complete(done) })

	logging.LogActionState(a.logger, "pending", a.spec.Delay)
	return nil
}

func (a *Action[P]) complete(done chan struct{}) {
	a.mu.Lock()
	if !a.pending || a.done != done {
		a.mu.Unlock()
		return
	}
	var payload P
	if a.spec.Reveal != nil {
		payload = a.spec.Reveal()
	}
	a.result = payload
	a.revealed = true
	a.pending = false
	a.timer = nil
	callbacks := slices.Clone(a.onDone)
	a.mu.Unlock()
	defer close(done)

	logging.LogActionState(a.logger, "revealed", a.spec.Delay)
	if a.reporter != nil && a.spec.SuccessMessage != "" {
		a.reporter.Success("%s", a.spec.SuccessMessage)
	}
	for _, f := range callbacks {
		f(payload)
	}
}

// Cancel drops a pending reveal. It reports whether anything was canceled.
func (a *Action[P]) Cancel() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.pending {
		return false
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.pending = false
	a.canceled = true
	a.timer = nil
	close(a.done)
	logging.LogActionState(a.logger, "canceled", a.spec.Delay)
	return true
}

// Pending reports whether the action is waiting to reveal.
func (a *Action[P]) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending
}

// Result returns the last revealed payload.
func (a *Action[P]) Result() (P, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result, a.revealed
}

// Wait blocks until the current run is canceled, ctx ends, or it reveals and
// its OnDone callbacks have returned.
func (a *Action[P]) Wait(ctx context.Context) (P, error) {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()

	var zero P
	if done == nil {
		return zero, apperrors.NewActionError(a.spec.Name, apperrors.ErrActionIdle)
	}

	select {
	case <-done:
	case <-ctx.Done():
		return zero, apperrors.NewActionError(a.spec.Name, ctx.Err())
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.canceled {
		return zero, apperrors.NewActionError(a.spec.Name, apperrors.ErrActionCanceled)
	}
	return a.result, nil
}
