package action

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	apperrors "sphereoftech/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingReporter struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingReporter) Success(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

func quizSpec() Spec[string] {
	return Spec[string]{
		Name:           "regenerate-quiz",
		Delay:          QuizRegenerationDelay,
		Reveal:         func() string { return "Advanced CNN Architectures Quiz" },
		SuccessMessage: "New quiz generated with adaptive difficulty!",
	}
}

func TestTriggerPendingThenReveal(t *testing.T) {
	sched := NewManualScheduler()
	rep := &recordingReporter{}
	a := New(quizSpec(), sched, rep, zerolog.Nop())

	require.NoError(t, a.Trigger(context.Background()))
	assert.True(t, a.Pending(), "pending must be set immediately")
	_, revealed := a.Result()
	assert.False(t, revealed)
	assert.Empty(t, rep.Messages())

	sched.Advance(QuizRegenerationDelay - time.Millisecond)
	assert.True(t, a.Pending(), "must stay pending until the delay elapses")

	sched.Advance(time.Millisecond)
	assert.False(t, a.Pending())
	payload, revealed := a.Result()
	assert.True(t, revealed)
	assert.Equal(t, "Advanced CNN Architectures Quiz", payload)
	assert.Equal(t, []string{"New quiz generated with adaptive difficulty!"}, rep.Messages())
}

func TestTriggerWhilePendingIsDebounced(t *testing.T) {
	sched := NewManualScheduler()
	rep := &recordingReporter{}
	a := New(quizSpec(), sched, rep, zerolog.Nop())

	require.NoError(t, a.Trigger(context.Background()))
	err := a.Trigger(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrActionPending))
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(QuizRegenerationDelay)
	assert.Len(t, rep.Messages(), 1)

	// Once revealed the action can run again.
	require.NoError(t, a.Trigger(context.Background()))
	sched.Advance(QuizRegenerationDelay)
	assert.Len(t, rep.Messages(), 2)
}

func TestCancelDropsReveal(t *testing.T) {
	sched := NewManualScheduler()
	rep := &recordingReporter{}
	a := New(quizSpec(), sched, rep, zerolog.Nop())

	require.NoError(t, a.Trigger(context.Background()))
	assert.True(t, a.Cancel())
	assert.False(t, a.Cancel(), "second cancel is a no-op")
	assert.False(t, a.Pending())

	sched.Advance(time.Minute)
	_, revealed := a.Result()
	assert.False(t, revealed)
	assert.Empty(t, rep.Messages())

	_, err := a.Wait(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrActionCanceled))
}

func TestOnDoneReceivesPayload(t *testing.T) {
	sched := NewManualScheduler()
	a := New(quizSpec(), sched, nil, zerolog.Nop())

	var got []string
	a.OnDone(func(p string) { got = append(got, p) })

	require.NoError(t, a.Trigger(context.Background()))
	sched.Advance(QuizRegenerationDelay)
	assert.Equal(t, []string{"Advanced CNN Architectures Quiz"}, got)
}

func TestWaitSeesOnDoneEffects(t *testing.T) {
	spec := quizSpec()
	spec.Delay = time.Millisecond
	a := New(spec, RealScheduler{}, nil, zerolog.Nop())

	var mu sync.Mutex
	var seen []string
	a.OnDone(func(p string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, p)
	})
	a.OnDone(func(p string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, "second:"+p)
	})

	require.NoError(t, a.Trigger(context.Background()))
	payload, err := a.Wait(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{payload, "second:" + payload}, seen, "Wait returns only after every callback ran")
}

func TestTriggerWithCanceledContext(t *testing.T) {
	a := New(quizSpec(), NewManualScheduler(), nil, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Trigger(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, a.Pending())
}

func TestWaitBeforeTrigger(t *testing.T) {
	a := New(quizSpec(), NewManualScheduler(), nil, zerolog.Nop())
	_, err := a.Wait(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrActionIdle))
}

func TestWaitHonoursContext(t *testing.T) {
	a := New(quizSpec(), NewManualScheduler(), nil, zerolog.Nop())
	require.NoError(t, a.Trigger(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := a.Wait(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	a.Cancel()
}

func TestRealSchedulerReveals(t *testing.T) {
	rep := &recordingReporter{}
	spec := quizSpec()
	spec.Delay = 5 * time.Millisecond
	a := New(spec, RealScheduler{}, rep, zerolog.Nop())

	require.NoError(t, a.Trigger(context.Background()))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	payload, err := a.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Advanced CNN Architectures Quiz", payload)
	assert.Equal(t, []string{"New quiz generated with adaptive difficulty!"}, rep.Messages())
}

func TestManualSchedulerOrdersTimers(t *testing.T) {
	sched := NewManualScheduler()
	var order []string
	sched.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	sched.AfterFunc(time.Second, func() {
		order = append(order, "a")
		sched.AfterFunc(500*time.Millisecond, func() { order = append(order, "a2") })
	})
	stopped := sched.AfterFunc(1500*time.Millisecond, func() { order = append(order, "never") })
	assert.True(t, stopped.Stop())

	sched.Advance(3 * time.Second)
	assert.Equal(t, []string{"a", "a2", "b"}, order)
	assert.Equal(t, 3*time.Second, sched.Elapsed())
	assert.Equal(t, 0, sched.Pending())
}
