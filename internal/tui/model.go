// Package tui implements the interactive terminal dashboard.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"sphereoftech/internal/config"
	"sphereoftech/internal/listview"
	"sphereoftech/internal/notify"
	"sphereoftech/internal/routes"
	"sphereoftech/internal/theme"
	"sphereoftech/internal/views"
)

// ToastMsg delivers a toast raised outside the update loop.
type ToastMsg struct {
	Toast notify.Toast
}

type toastExpiredMsg struct {
	id string
}

// inputMode is what the text input is editing.
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputCourse
	inputChat
)

// Model is the bubbletea model of the dashboard.
type Model struct {
	nav      *views.Navigator
	notifier *notify.Notifier
	overlay  *notify.Overlay
	theme    theme.Theme
	styles   theme.Styles
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	input    textinput.Model
	mode     inputMode
	now      func() time.Time

	form      *huh.Form
	formCreds *views.Credentials

	settingsRow int
	spinning    bool
	width       int
	height      int
}

// NewModel creates the dashboard model over nav.
func NewModel(nav *views.Navigator, notifier *notify.Notifier, t theme.Theme) Model {
	input := textinput.New()
	input.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		nav:      nav,
		notifier: notifier,
		overlay:  notify.NewOverlay(3, 3*time.Second),
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		input:    input,
		now:      time.Now,
		width:    100,
		height:   30,
	}
	m.applyTheme(t)
	return m
}

func (m *Model) applyTheme(t theme.Theme) {
	m.theme = t
	m.styles = theme.NewStyles(t)
	m.spinner.Style = m.styles.Pending
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The auth form receives every message type while it is open.
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ToastMsg:
		m.overlay.Add(msg.Toast)
		id := msg.Toast.ID
		return m, tea.Tick(m.overlay.TTL(), func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		})

	case toastExpiredMsg:
		m.overlay.Expire(msg.id)
		return m, nil

	case spinner.TickMsg:
		if !m.pending() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// startSpinner keeps the view refreshing while an action is pending.
func (m Model) startSpinner() (Model, tea.Cmd) {
	if m.spinning || !m.pending() {
		return m, nil
	}
	m.spinning = true
	return m, m.spinner.Tick
}

// pending reports whether the current view waits on a simulated action.
func (m Model) pending() bool {
	switch m.nav.Current().View {
	case routes.ViewDashboard:
		d := m.nav.Dashboard()
		return d.CourseCreator.Generating() || d.Assessments.Regenerating() ||
			d.Chatbot.Replying() || d.Chatbot.Listening()
	case routes.ViewStockTracker:
		return m.nav.StockTracker().Refreshing()
	case routes.ViewLogin:
		return m.nav.Login().Loading()
	case routes.ViewSignup:
		return m.nav.Signup().Loading()
	}
	return false
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.nav.CancelPending()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.applyTheme(theme.For(m.nav.Settings().ToggleTheme()))
		return m, nil
	case key.Matches(msg, m.keys.NextView):
		m.cycleView(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevView):
		m.cycleView(-1)
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) {
		m.overlay.Clear()
	}

	if i := sidebarDigit(msg); i >= 0 {
		items := routes.Sidebar()
		if i < len(items) {
			m.nav.Open(items[i].Path)
		}
		return m, nil
	}

	var err error
	switch m.nav.Current().View {
	case routes.ViewDashboard:
		return m.handleDashboardKey(msg)
	case routes.ViewStockTracker:
		err = m.handleStocksKey(msg)
	case routes.ViewNews:
		return m.handleNewsKey(msg)
	case routes.ViewPlanner:
		err = m.handlePlannerKey(msg)
	case routes.ViewRiskFeed:
		err = m.handleRiskKey(msg)
	case routes.ViewCharts:
		m.handleChartsKey(msg)
	case routes.ViewSettings:
		m.handleSettingsKey(msg)
	case routes.ViewLogin, routes.ViewSignup:
		return m.handleAuthKey(msg)
	case routes.ViewNotFound:
		if key.Matches(msg, m.keys.Home, m.keys.Enter) {
			m.nav.Open(m.nav.NotFound().HomePath())
		}
	}
	if err != nil {
		m.nav.Env().Logger.Debug().Err(err).Msg("key action refused")
	}
	return m.startSpinner()
}

func sidebarDigit(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

// cycleView moves through the sidebar views.
func (m *Model) cycleView(delta int) {
	items := routes.Sidebar()
	i := routes.SidebarIndex(m.nav.Current().Path)
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + len(items)) % len(items)
	}
	m.nav.Open(items[i].Path)
}

// moveList applies the row movement keys to a list view. It reports whether
// msg was one of them.
func moveList[T listview.Keyed](keys keyMap, msg tea.KeyMsg, l *listview.View[T]) (bool, error) {
	switch {
	case key.Matches(msg, keys.Up):
		l.MoveSelection(-1)
	case key.Matches(msg, keys.Down):
		l.MoveSelection(1)
	case key.Matches(msg, keys.Top):
		return true, l.SelectVisible(0)
	case key.Matches(msg, keys.Bottom):
		return true, l.SelectVisible(len(l.Visible()) - 1)
	default:
		return false, nil
	}
	return true, nil
}

func (m Model) handleStocksKey(msg tea.KeyMsg) error {
	v := m.nav.StockTracker()
	if moved, err := moveList(m.keys, msg, v.List()); moved {
		return err
	}
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return v.Refresh(context.Background())
	case key.Matches(msg, m.keys.Watch):
		return v.Watch(context.Background())
	}
	return nil
}

func (m Model) handleNewsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.nav.News()
	if moved, err := moveList(m.keys, msg, v.List()); moved {
		if err != nil {
			m.nav.Env().Logger.Debug().Err(err).Msg("no row to select")
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Cycle):
		v.CycleCategory()
	case key.Matches(msg, m.keys.Search):
		return m.beginInput(inputSearch, "Search news...", v.Query().Search)
	case key.Matches(msg, m.keys.Bookmark):
		if err := v.Bookmark(context.Background()); err != nil {
			m.nav.Env().Logger.Debug().Err(err).Msg("bookmark failed")
		}
	case key.Matches(msg, m.keys.Share):
		v.Share()
	}
	return m, nil
}

func (m Model) handlePlannerKey(msg tea.KeyMsg) error {
	v := m.nav.Planner()
	if moved, err := moveList(m.keys, msg, v.List()); moved {
		return err
	}
	switch {
	case key.Matches(msg, m.keys.Optimize):
		v.Optimize()
	case key.Matches(msg, m.keys.Move):
		return v.Reschedule(context.Background())
	}
	return nil
}

func (m Model) handleRiskKey(msg tea.KeyMsg) error {
	v := m.nav.RiskFeed()
	if moved, err := moveList(m.keys, msg, v.List()); moved {
		return err
	}
	switch {
	case key.Matches(msg, m.keys.Cycle):
		v.CycleSeverity()
	case key.Matches(msg, m.keys.Accept):
		return v.Accept(context.Background())
	case key.Matches(msg, m.keys.Dismiss):
		return v.Dismiss(context.Background())
	}
	return nil
}

func (m Model) handleChartsKey(msg tea.KeyMsg) {
	v := m.nav.Charts()
	switch {
	case key.Matches(msg, m.keys.More):
		v.MoreSuggestions()
	case key.Matches(msg, m.keys.Share):
		v.ToggleShareTooltip()
	}
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.nav.Dashboard()
	var err error
	switch {
	case key.Matches(msg, m.keys.Generate):
		return m.beginInput(inputCourse, "Describe the course you want...", d.CourseCreator.Prompt())
	case key.Matches(msg, m.keys.Chat):
		d.Chatbot.Open()
		return m.beginInput(inputChat, "Ask your AI study assistant...", d.Chatbot.Message())
	case key.Matches(msg, m.keys.Voice):
		d.Chatbot.Open()
		_, err = d.Chatbot.ToggleVoice(context.Background())
	case key.Matches(msg, m.keys.Back):
		d.Chatbot.Close()
	case key.Matches(msg, m.keys.Refresh):
		err = d.Assessments.Regenerate(context.Background())
	case key.Matches(msg, m.keys.Feedback):
		d.Assessments.ToggleFeedback()
	case key.Matches(msg, m.keys.Insights):
		d.Analytics.ToggleInsights()
	case key.Matches(msg, m.keys.Compare):
		d.Analytics.ToggleCompare()
	}
	if err != nil {
		m.nav.Env().Logger.Debug().Err(err).Msg("dashboard action refused")
	}
	return m.startSpinner()
}

// settingChoices are the values enter cycles through for string settings.
var settingChoices = map[string][]string{
	"locale.language": config.Languages,
	"locale.region":   config.Regions,
	"logging.level":   {"debug", "info", "warn", "error"},
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) {
	v := m.nav.Settings()
	keys := v.Keys()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.settingsRow = max(m.settingsRow-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.settingsRow = min(m.settingsRow+1, len(keys)-1)
	case key.Matches(msg, m.keys.Enter):
		k := keys[m.settingsRow]
		value := v.Values()[k]
		switch {
		case k == "ui.theme":
			m.applyTheme(theme.For(v.ToggleTheme()))
		case isBool(value):
			m.applySetting(k, fmt.Sprintf("%v", !value.(bool)))
		case settingChoices[k] != nil:
			m.applySetting(k, nextChoice(settingChoices[k], fmt.Sprintf("%v", value)))
		default:
			m.notifier.Info("Use 'sphere settings set %s <value>' to change this", k)
		}
	}
}

// applySetting changes one setting. The settings view raises the error toast
// for a rejected value.
func (m *Model) applySetting(k, value string) {
	if err := m.nav.Settings().Set(k, value); err != nil {
		m.nav.Env().Logger.Debug().Err(err).Str("key", k).Msg("setting refused")
	}
}

func isBool(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

func nextChoice(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.nav.Current().View
	switch {
	case key.Matches(msg, m.keys.Demo):
		login := m.nav.Login()
		if current != routes.ViewLogin {
			m.nav.Open("/login")
		}
		login.FillDemo()
		if err := login.Submit(context.Background()); err != nil {
			return m, nil
		}
		return m.startSpinner()
	case key.Matches(msg, m.keys.Enter):
		return m.openAuthForm(current == routes.ViewSignup)
	case msg.String() == "l" && current == routes.ViewSignup:
		m.nav.Open("/login")
	case msg.String() == "s" && current == routes.ViewLogin:
		m.nav.Open("/signup")
	}
	return m, nil
}

// openAuthForm shows the credentials form for the current auth view.
func (m Model) openAuthForm(withName bool) (tea.Model, tea.Cmd) {
	creds := &views.Credentials{}
	var fields []huh.Field
	if withName {
		fields = append(fields, huh.NewInput().Key("name").Title("Full name").Value(&creds.Name))
	}
	fields = append(fields,
		huh.NewInput().Key("email").Title("Email").Placeholder(views.DemoEmail).Value(&creds.Email),
		huh.NewInput().Key("password").Title("Password").EchoMode(huh.EchoModePassword).Value(&creds.Password),
	)

	form := huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
	if m.theme.IsDark() {
		form = form.WithTheme(huh.ThemeDracula())
	} else {
		form = form.WithTheme(huh.ThemeCharm())
	}
	m.form = form
	m.formCreds = creds
	return m, form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		m.form, m.formCreds = nil, nil
		return m, cmd
	case huh.StateCompleted:
		creds := *m.formCreds
		m.form, m.formCreds = nil, nil

		var err error
		if m.nav.Current().View == routes.ViewSignup {
			v := m.nav.Signup()
			v.SetCredentials(creds)
			err = v.Submit(context.Background())
		} else {
			v := m.nav.Login()
			v.SetCredentials(creds)
			err = v.Submit(context.Background())
		}
		if err != nil {
			return m, cmd
		}
		next, spin := m.startSpinner()
		return next, tea.Batch(cmd, spin)
	}
	return m, cmd
}

// beginInput focuses the text input for mode.
func (m Model) beginInput(mode inputMode, placeholder, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.mode == inputSearch {
			m.nav.News().SetSearch("")
		}
		m.endInput()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m.commitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == inputSearch {
		m.nav.News().SetSearch(m.input.Value())
	}
	return m, cmd
}

func (m Model) commitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	mode := m.mode
	m.endInput()

	ctx := context.Background()
	var err error
	switch mode {
	case inputSearch:
		m.nav.News().SetSearch(value)
		return m, nil
	case inputCourse:
		c := m.nav.Dashboard().CourseCreator
		c.SetPrompt(value)
		err = c.Generate(ctx)
	case inputChat:
		c := m.nav.Dashboard().Chatbot
		c.SetMessage(value)
		err = c.Send(ctx)
	}
	if err != nil {
		m.nav.Env().Logger.Debug().Err(err).Msg("input rejected")
		return m, nil
	}
	return m.startSpinner()
}

func (m *Model) endInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}
