package tui

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"sphereoftech/internal/action"
	"sphereoftech/internal/config"
	"sphereoftech/internal/models"
	"sphereoftech/internal/notify"
	"sphereoftech/internal/routes"
	"sphereoftech/internal/store"
	"sphereoftech/internal/theme"
	"sphereoftech/internal/views"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

type harness struct {
	model Model
	nav   *views.Navigator
	sched *action.ManualScheduler
	cfg   *config.Config
}

func newHarness(t *testing.T, path string) *harness {
	t.Helper()
	s, err := store.NewSQLiteStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	sched := action.NewManualScheduler()
	env := &views.Env{
		Scheduler: sched,
		Notifier:  notify.NewNotifier(),
		Store:     s,
		Clipboard: nopClipboard{},
		Logger:    zerolog.Nop(),
	}
	cfg := config.Default()
	nav := views.NewNavigator(env, cfg, path)
	t.Cleanup(nav.CancelPending)

	return &harness{
		model: NewModel(nav, env.Notifier, theme.Light()),
		nav:   nav,
		sched: sched,
		cfg:   cfg,
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys to the model and returns the command of the last one.
func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = h.model.Update(keyMsg(k))
		h.model = next.(Model)
	}
	return cmd
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) typeText(text string) {
	for _, r := range text {
		h.press(string(r))
	}
}

func TestSidebarNavigation(t *testing.T) {
	h := newHarness(t, "/dashboard")

	h.press("tab")
	assert.Equal(t, routes.ViewStockTracker, h.nav.Current().View)

	h.press("shift+tab", "shift+tab")
	assert.Equal(t, routes.ViewSettings, h.nav.Current().View, "shift+tab wraps to the last item")

	h.press("3")
	assert.Equal(t, "/news", h.nav.Current().Path)

	h.press("9")
	assert.Equal(t, "/news", h.nav.Current().Path, "digits past the sidebar are ignored")
}

func TestNewsCategoryAndSearch(t *testing.T) {
	h := newHarness(t, "/news")
	news := h.nav.News()

	h.press("c")
	assert.Equal(t, news.Categories()[1], news.Query().Category)

	h.press("/")
	assert.Equal(t, inputSearch, h.model.mode)
	h.typeText("zzzz")
	assert.Equal(t, "zzzz", news.Query().Search, "search applies while typing")
	assert.Empty(t, news.Visible())
	assert.Contains(t, h.model.View(), "No articles match")

	h.press("esc")
	assert.Equal(t, inputNone, h.model.mode)
	assert.Empty(t, news.Query().Search)
}

func TestRiskAcceptRaisesToast(t *testing.T) {
	h := newHarness(t, "/risk-feed")

	h.press("a")
	last, ok := h.nav.Env().Notifier.Last()
	require.True(t, ok)
	assert.Equal(t, notify.ToastSuccess, last.Type)
	assert.Equal(t, "AI recommendation accepted and applied", last.Message)

	h.press("x")
	title := h.nav.RiskFeed().Selected().Title
	assert.True(t, h.nav.RiskFeed().Dismissed(context.Background())[h.nav.RiskFeed().Selected().Key()], title)
}

func TestDemoLoginNavigatesToDashboard(t *testing.T) {
	h := newHarness(t, "/login")

	cmd := h.press("d")
	require.NotNil(t, cmd, "pending sign-in starts the spinner")
	assert.True(t, h.nav.Login().Loading())
	assert.Contains(t, h.model.View(), "Signing in...")

	h.sched.Advance(action.SignInDelay)
	assert.Equal(t, routes.ViewDashboard, h.nav.Current().View)
	assert.False(t, h.model.pending())
	assert.Contains(t, h.model.View(), "Welcome back, Alex!")
}

func TestCourseGenerationFromInput(t *testing.T) {
	h := newHarness(t, "/dashboard")
	creator := h.nav.Dashboard().CourseCreator

	h.press("g")
	require.Equal(t, inputCourse, h.model.mode)
	h.typeText("Go concurrency")
	h.press("enter")

	assert.Equal(t, inputNone, h.model.mode)
	assert.True(t, creator.Generating())
	assert.True(t, h.model.spinning)

	h.sched.Advance(action.CourseGenerationDelay)
	_, ok := creator.Course()
	assert.True(t, ok)
	assert.Nil(t, h.send(h.model.spinner.Tick()), "spinner stops once nothing is pending")
	assert.False(t, h.model.spinning)
}

func TestToastOverlayExpires(t *testing.T) {
	h := newHarness(t, "/dashboard")
	toast := notify.Toast{ID: "t1", Type: notify.ToastInfo, Message: "Hello from a toast"}

	cmd := h.send(ToastMsg{Toast: toast})
	require.NotNil(t, cmd, "a toast schedules its expiry")
	assert.Contains(t, h.model.View(), "Hello from a toast")

	h.send(toastExpiredMsg{id: "t1"})
	assert.NotContains(t, h.model.View(), "Hello from a toast")
}

func TestEscDismissesToasts(t *testing.T) {
	h := newHarness(t, "/news")
	h.send(ToastMsg{Toast: notify.Toast{ID: "t1", Message: "Article bookmarked!"}})
	require.Contains(t, h.model.View(), "Article bookmarked!")

	h.press("esc")
	assert.NotContains(t, h.model.View(), "Article bookmarked!")
}

func TestHomeAndEndSelectVisibleRows(t *testing.T) {
	h := newHarness(t, "/news")
	news := h.nav.News()

	h.press("end")
	visible := news.Visible()
	assert.Equal(t, visible[len(visible)-1].ID, news.Selected().ID)

	h.press("home")
	assert.Equal(t, visible[0].ID, news.Selected().ID)

	h.press("/")
	h.typeText("zzzz")
	h.press("enter")
	h.press("end")
	assert.Equal(t, visible[0].ID, news.Selected().ID, "an empty list keeps the selection")
}

func TestLeavingViewResetsIt(t *testing.T) {
	h := newHarness(t, "/news")
	h.press("c", "down")
	require.NotEqual(t, "All", h.nav.News().Query().Category)

	h.press("2", "3")
	assert.Equal(t, "All", h.nav.News().Query().Category)
	assert.Equal(t, 1, h.nav.News().Selected().ID)
}

func TestRejectedSettingIsLogged(t *testing.T) {
	h := newHarness(t, "/settings")
	var buf bytes.Buffer
	h.nav.Env().Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	h.model.applySetting("locale.language", "Klingon")
	assert.Contains(t, buf.String(), "setting refused")
	assert.Equal(t, "English", h.nav.Settings().Values()["locale.language"])

	last, ok := h.nav.Env().Notifier.Last()
	require.True(t, ok)
	assert.Equal(t, notify.ToastError, last.Type)
	assert.Contains(t, h.model.View(), "Recent notifications")
}

func TestSettingsEditing(t *testing.T) {
	h := newHarness(t, "/settings")
	settings := h.nav.Settings()
	require.Equal(t, "integrations.notion", settings.Keys()[0])

	h.press("enter")
	assert.Equal(t, true, settings.Values()["integrations.notion"])
	assert.True(t, settings.Dirty())

	h.press("down", "down", "enter")
	assert.Equal(t, "Spanish", settings.Values()["locale.language"])

	h.press("t")
	assert.Equal(t, models.ThemeDark, h.cfg.UI.Theme)
	assert.True(t, h.model.theme.IsDark())
}

func TestQuitCancelsPending(t *testing.T) {
	h := newHarness(t, "/stock-tracker")

	h.press("r")
	require.True(t, h.nav.StockTracker().Refreshing())

	cmd := h.press("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, h.nav.StockTracker().Refreshing())
	assert.Zero(t, h.sched.Pending())
}

func TestViewRendersEveryRoute(t *testing.T) {
	paths := []string{"/nowhere"}
	for _, r := range routes.All() {
		paths = append(paths, r.Path)
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			h := newHarness(t, path)
			h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
			out := h.model.View()
			assert.Contains(t, out, h.nav.Current().Title)
			if h.nav.Current().Chrome {
				assert.Contains(t, out, "Stock Tracker", "sidebar is shown")
			}
		})
	}
}

func TestNotFoundReturnsHome(t *testing.T) {
	h := newHarness(t, "/missing")
	require.Equal(t, routes.ViewNotFound, h.nav.Current().View)

	h.press("h")
	assert.Equal(t, h.nav.NotFound().HomePath(), h.nav.Current().Path)
}

func TestStocksShowDirection(t *testing.T) {
	h := newHarness(t, "/stock-tracker")
	out := h.model.View()

	for _, s := range h.nav.StockTracker().Stocks() {
		arrow := "▼"
		if s.IsUp() {
			arrow = "▲"
		}
		assert.Contains(t, out, arrow, s.Symbol)
	}
}
