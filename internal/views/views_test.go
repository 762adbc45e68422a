package views

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"sphereoftech/internal/action"
	"sphereoftech/internal/notify"
	"sphereoftech/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClipboard struct {
	mu   sync.Mutex
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type testEnv struct {
	*Env
	sched     *action.ManualScheduler
	clipboard *fakeClipboard
	store     *store.SQLiteStore
	navigated []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s, err := store.NewSQLiteStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	te := &testEnv{
		sched:     action.NewManualScheduler(),
		clipboard: &fakeClipboard{},
		store:     s,
	}
	te.Env = &Env{
		Scheduler: te.sched,
		Notifier:  notify.NewNotifier(),
		Store:     s,
		Clipboard: te.clipboard,
		Logger:    zerolog.Nop(),
		Navigate:  func(p string) { te.navigated = append(te.navigated, p) },
	}
	return te
}

func (te *testEnv) lastToast(t *testing.T) notify.Toast {
	t.Helper()
	toast, ok := te.Notifier.Last()
	require.True(t, ok, "expected a toast")
	return toast
}

func (te *testEnv) toastCount() int {
	return len(te.Notifier.History())
}

func TestNewsCategoryFilter(t *testing.T) {
	te := newTestEnv(t)
	v := NewNews(te.Env)

	require.NoError(t, v.SetCategory("Stocks"))
	visible := v.Visible()
	require.Len(t, visible, 1)
	assert.Contains(t, visible[0].Title, "Tesla")

	assert.Equal(t, 1, v.Selected().ID, "filtering must not move the selection")
	assert.False(t, v.SelectionVisible())
}

func TestNewsSearchMatchesTitleAndTags(t *testing.T) {
	te := newTestEnv(t)
	v := NewNews(te.Env)

	v.SetSearch("ai")
	assert.GreaterOrEqual(t, len(v.Visible()), 2)

	v.SetSearch("bitcoin")
	visible := v.Visible()
	require.Len(t, visible, 1, "tags are searched too")
	assert.Equal(t, "Cryptocurrency", visible[0].Category)

	v.SetSearch("")
	assert.Len(t, v.Visible(), 5)
}

func TestNewsCategories(t *testing.T) {
	te := newTestEnv(t)
	v := NewNews(te.Env)

	assert.Equal(t, []string{"All", "Technology", "Stocks", "Economics", "Cryptocurrency", "Hardware"}, v.Categories())
	assert.Error(t, v.SetCategory("Sports"))
	assert.Equal(t, "Technology", v.CycleCategory())
}

func TestNewsBookmarkAndShare(t *testing.T) {
	te := newTestEnv(t)
	v := NewNews(te.Env)
	ctx := context.Background()

	require.NoError(t, v.Select(2))
	require.NoError(t, v.Bookmark(ctx))
	assert.Equal(t, `Article "`+v.Selected().Title+`" bookmarked!`, te.lastToast(t).Message)
	assert.True(t, v.IsBookmarked(ctx, 2))
	assert.False(t, v.IsBookmarked(ctx, 1))

	link := v.Share()
	assert.Equal(t, ShareBaseURL+"2", link)
	assert.Equal(t, link, te.clipboard.text)
	assert.Equal(t, "Article link copied to clipboard!", te.lastToast(t).Message)
}

func TestNewsShareSurvivesClipboardFailure(t *testing.T) {
	te := newTestEnv(t)
	te.clipboard.err = errors.New("no display")
	v := NewNews(te.Env)

	v.Share()
	toast := te.lastToast(t)
	assert.Equal(t, notify.ToastSuccess, toast.Type)
}

func TestNewsSelectUnknown(t *testing.T) {
	te := newTestEnv(t)
	v := NewNews(te.Env)
	assert.Error(t, v.Select(99))
	assert.Equal(t, 1, v.Selected().ID)
}

func TestStockRefresh(t *testing.T) {
	te := newTestEnv(t)
	v := NewStockTracker(te.Env)
	ctx := context.Background()

	assert.Equal(t, "AAPL", v.Selected().Symbol)
	require.NoError(t, v.Refresh(ctx))
	assert.True(t, v.Refreshing())
	assert.Error(t, v.Refresh(ctx), "refresh is debounced while pending")
	assert.Equal(t, 0, te.toastCount())

	te.sched.Advance(action.MarketRefreshDelay)
	assert.False(t, v.Refreshing())
	assert.Equal(t, "Market data updated with AI analysis", te.lastToast(t).Message)
	_, ok := v.LastUpdated()
	assert.True(t, ok)
}

func TestStockSelectAndWatch(t *testing.T) {
	te := newTestEnv(t)
	v := NewStockTracker(te.Env)
	ctx := context.Background()

	require.NoError(t, v.Select("nvda"))
	assert.Equal(t, "NVDA", v.Selected().Symbol)
	assert.Error(t, v.Select("IBM"))

	require.NoError(t, v.Watch(ctx))
	assert.Equal(t, "NVDA added to watchlist", te.lastToast(t).Message)
	watched, err := v.Watchlist(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"NVDA"}, watched)
}

func TestPlannerGroups(t *testing.T) {
	te := newTestEnv(t)
	v := NewPlanner(te.Env)

	assert.Len(t, v.Today(), 2)
	assert.Len(t, v.Tomorrow(), 2)
	assert.Len(t, v.Events(), 5)
	assert.Equal(t, 1, v.Selected().ID)
	assert.Equal(t, 67, v.WeeklyProgress().CompletionPercent())
}

func TestPlannerOptimizeAndReschedule(t *testing.T) {
	te := newTestEnv(t)
	v := NewPlanner(te.Env)
	ctx := context.Background()

	v.Optimize()
	assert.Equal(t, "Schedule optimized with AI recommendations!", te.lastToast(t).Message)

	require.NoError(t, v.Select(3))
	require.NoError(t, v.Reschedule(ctx))
	toast := te.lastToast(t)
	assert.Equal(t, notify.ToastInfo, toast.Type)
	assert.Equal(t, `"Data Science Project Work" rescheduled for optimal learning time`, toast.Message)

	events, err := te.store.RescheduledEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "3", events[0].RecordID)
}

func TestRiskSeverityFilter(t *testing.T) {
	te := newTestEnv(t)
	v := NewRiskFeed(te.Env)

	assert.Equal(t, "All", v.Severity())
	assert.Len(t, v.Visible(), 4)

	require.NoError(t, v.SetSeverity("Medium"))
	assert.Len(t, v.Visible(), 2)
	assert.False(t, v.SelectionVisible(), "the High alert stays selected")

	assert.Error(t, v.SetSeverity("medium"))
	assert.Equal(t, "Low", v.CycleSeverity())
	assert.Equal(t, "All", v.CycleSeverity())
}

func TestRiskAcceptAndDismiss(t *testing.T) {
	te := newTestEnv(t)
	v := NewRiskFeed(te.Env)
	ctx := context.Background()

	require.NoError(t, v.Accept(ctx))
	assert.Equal(t, "AI recommendation accepted and applied", te.lastToast(t).Message)

	require.NoError(t, v.Select(2))
	require.NoError(t, v.Dismiss(ctx))
	assert.Equal(t, `Alert "Market Sentiment Shift: Tech Sector" dismissed`, te.lastToast(t).Message)
	assert.True(t, v.Dismissed(ctx)["2"])
	assert.Len(t, v.Visible(), 4, "dismissed alerts stay in the feed")
}

func TestChartsXP(t *testing.T) {
	te := newTestEnv(t)
	v := NewCharts(te.Env)

	assert.Equal(t, 82, v.Confidence())
	assert.Equal(t, 80, v.XP())
	assert.Equal(t, 90, v.MoreSuggestions())
	assert.Equal(t, 100, v.MoreSuggestions())
	assert.Equal(t, 100, v.MoreSuggestions(), "XP is capped")

	assert.True(t, v.ToggleShareTooltip())
	text, shown := v.ShareTooltip()
	assert.True(t, shown)
	assert.Equal(t, "Share your digest to Notion or Slack", text)
	assert.False(t, v.ToggleShareTooltip())
}

func TestNotFound(t *testing.T) {
	te := newTestEnv(t)
	v := NewNotFound(te.Env, "/nonexistent")
	assert.Contains(t, v.Message(), "/nonexistent")
	assert.Equal(t, "/", v.HomePath())
}
