package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sphereoftech/internal/models"
	"sphereoftech/internal/notify"
	"sphereoftech/internal/routes"
	"sphereoftech/internal/views"
	"sphereoftech/pkg/utils"
)

const sidebarWidth = 24

// View implements tea.Model.
func (m Model) View() string {
	r := m.nav.Current()

	var body string
	switch {
	case m.form != nil:
		body = m.centered(m.styles.Card.Render(m.styles.Title.Render(r.Title) + "\n" + m.form.View()))
	case r.Chrome:
		content := m.styles.Content.
			Width(max(m.width-sidebarWidth-2, 20)).
			Render(m.renderContent(r))
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(r), content)
	default:
		body = m.centered(m.renderStandalone(r))
	}

	parts := []string{m.renderHeader(r), body}
	if toasts := m.renderToasts(); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, m.styles.Footer.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) centered(s string) string {
	return lipgloss.Place(m.width, max(m.height-4, lipgloss.Height(s)), lipgloss.Center, lipgloss.Center, s)
}

func (m Model) renderHeader(r routes.Route) string {
	mode := "☀ light"
	if m.theme.IsDark() {
		mode = "☾ dark"
	}
	left := "SphereOfTech · " + r.Title
	if r.Chrome {
		left += "  " + utils.Initials(m.nav.Dashboard().User().Name)
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(mode)-4, 1)
	return m.styles.Header.Width(max(m.width, 1)).Render(left + strings.Repeat(" ", gap) + mode)
}

func (m Model) renderSidebar(r routes.Route) string {
	var b strings.Builder
	for i, item := range routes.Sidebar() {
		label := fmt.Sprintf("%d %s", i+1, item.Title)
		if routes.IsActive(item, r.Path) {
			b.WriteString(m.styles.NavActive.Width(sidebarWidth - 4).Render(label))
		} else {
			b.WriteString(m.styles.NavItem.Render(label))
		}
		b.WriteString("\n")
	}
	return m.styles.Sidebar.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderToasts() string {
	visible := m.overlay.Visible(m.now())
	if len(visible) == 0 {
		return ""
	}
	lines := make([]string, 0, len(visible))
	for _, t := range visible {
		lines = append(lines, m.toastStyle(t).Render(t.Message))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, lines...))
}

func (m Model) toastStyle(t notify.Toast) lipgloss.Style {
	switch t.Type {
	case notify.ToastSuccess:
		return m.styles.Toast.Foreground(m.styles.Success.GetForeground())
	case notify.ToastWarning:
		return m.styles.Toast.Foreground(m.styles.Warning.GetForeground())
	case notify.ToastError:
		return m.styles.Toast.Foreground(m.styles.Error.GetForeground())
	default:
		return m.styles.Toast.Foreground(m.styles.Info.GetForeground())
	}
}

func (m Model) renderContent(r routes.Route) string {
	switch r.View {
	case routes.ViewDashboard:
		return m.renderDashboard()
	case routes.ViewStockTracker:
		return m.renderStocks()
	case routes.ViewNews:
		return m.renderNews()
	case routes.ViewPlanner:
		return m.renderPlanner()
	case routes.ViewRiskFeed:
		return m.renderRisk()
	case routes.ViewCharts:
		return m.renderCharts()
	case routes.ViewSettings:
		return m.renderSettings()
	}
	return ""
}

func (m Model) renderStandalone(r routes.Route) string {
	var lines []string
	switch r.View {
	case routes.ViewLogin:
		lines = []string{
			m.styles.Title.Render("Welcome back"),
			"Sign in to continue your learning journey",
			"",
			m.pendingLine(m.nav.Login().Loading(), "Signing in..."),
			m.styles.Muted.Render("enter: sign in · d: use demo account · s: create an account"),
		}
	case routes.ViewSignup:
		lines = []string{
			m.styles.Title.Render("Create your account"),
			"Start learning with AI-powered courses",
			"",
			m.pendingLine(m.nav.Signup().Loading(), "Creating account..."),
			m.styles.Muted.Render("enter: sign up · d: use demo account · l: sign in instead"),
		}
	default:
		nf := m.nav.NotFound()
		lines = []string{
			m.styles.Title.Render("404"),
			nf.Message(),
			"",
			m.styles.Muted.Render("h: return to home (" + nf.HomePath() + ")"),
		}
	}
	return m.styles.Card.Padding(1, 3).Render(strings.Join(lines, "\n"))
}

func (m Model) pendingLine(pending bool, label string) string {
	if !pending {
		return ""
	}
	return m.spinner.View() + " " + m.styles.Pending.Render(label)
}

func (m Model) row(selected bool, text string) string {
	if selected {
		return m.styles.SelectedRow.Render(text)
	}
	return m.styles.Row.PaddingLeft(1).Render(text)
}

func (m Model) badge(c lipgloss.Color, label string) string {
	return m.styles.BadgeStyle(c).Render(label)
}

func (m Model) bar(percent, width int) string {
	return lipgloss.NewStyle().Foreground(m.theme.Primary).Render(utils.ProgressBar(percent, width)) +
		fmt.Sprintf(" %d%%", percent)
}

func (m Model) inputLine() string {
	if m.mode == inputNone {
		return ""
	}
	return m.styles.Card.Render(m.input.View())
}

func (m Model) renderDashboard() string {
	d := m.nav.Dashboard()
	u := d.User()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Welcome back, %s!", d.FirstName())))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", u.CurrentCourse, m.bar(u.CourseProgress, 20))
	fmt.Fprintf(&b, "%s %d-day streak · next session %s\n",
		m.styles.Muted.Render("▸"), u.LearningStreak, u.NextSession)
	if u.RiskAlert != "" {
		b.WriteString(m.styles.Warning.Render("⚠ "+u.RiskAlert) + "\n")
	}
	b.WriteString(m.styles.Muted.Render("Quick actions: "+strings.Join(views.QuickActions, " · ")) + "\n\n")

	// Course creator
	b.WriteString(m.styles.Bold.Render("AI Course Creator") + "\n")
	switch course, ok := d.CourseCreator.Course(); {
	case d.CourseCreator.Generating():
		b.WriteString(m.pendingLine(true, "AI is generating your course...") + "\n")
	case ok:
		fmt.Fprintf(&b, "%s · %d/%d modules · %s\n", course.Title, course.CompletedModules(), len(course.Modules), course.EstimatedTime)
	default:
		b.WriteString(m.styles.Muted.Render("g: describe a course to generate") + "\n")
	}
	if m.mode == inputCourse {
		b.WriteString(m.inputLine() + "\n")
	}
	b.WriteString("\n")

	// Assessments
	a := d.Assessments
	q := a.Quiz()
	b.WriteString(m.styles.Bold.Render("Smart Assessments") + "\n")
	fmt.Fprintf(&b, "%s  %d/%d  %s\n", q.Topic, q.CorrectAnswers, q.TotalQuestions, m.bar(q.LastScore, 15))
	if a.Regenerating() {
		b.WriteString(m.pendingLine(true, "Generating adaptive quiz...") + "\n")
	}
	if a.FeedbackVisible() {
		for _, f := range q.Feedback {
			b.WriteString("  • " + f + "\n")
		}
	}
	b.WriteString("\n")

	// Analytics
	an := d.Analytics
	b.WriteString(m.styles.Bold.Render("Progress Analytics") + "  " + m.bar(an.OverallProgress(), 15) + "\n")
	for _, s := range an.Skills() {
		line := fmt.Sprintf("  %s %s", utils.PadRight(s.Skill, 18), m.bar(s.Current, 12))
		if an.Comparing() {
			line += m.styles.Muted.Render(fmt.Sprintf("  cohort %d%%", s.Cohort))
		}
		b.WriteString(line + "\n")
	}
	if an.InsightsVisible() {
		for _, in := range an.Insights() {
			b.WriteString(m.styles.Info.Render("  • "+in) + "\n")
		}
	}

	// Chatbot
	c := d.Chatbot
	if c.IsOpen() {
		b.WriteString("\n" + m.styles.Bold.Render("AI Study Assistant") + "\n")
		for _, msg := range lastMessages(c.Conversation(), 4) {
			who := m.styles.Bold.Render("You: ")
			if msg.Role == models.ChatAI {
				who = m.styles.Title.UnsetMarginBottom().Render("AI: ")
			}
			b.WriteString(who + msg.Content + "\n")
			if msg.Code != "" {
				b.WriteString(m.styles.Muted.Render(msg.Code) + "\n")
			}
		}
		if c.Replying() {
			b.WriteString(m.pendingLine(true, "AI is thinking...") + "\n")
		}
		if c.Listening() {
			b.WriteString(m.pendingLine(true, "Listening...") + "\n")
		}
		if m.mode == inputChat {
			b.WriteString(m.inputLine() + "\n")
		}
	}
	return b.String()
}

func lastMessages(conv []models.ChatMessage, n int) []models.ChatMessage {
	if len(conv) > n {
		return conv[len(conv)-n:]
	}
	return conv
}

func (m Model) renderStocks() string {
	v := m.nav.StockTracker()
	p := v.Portfolio()
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", m.styles.Title.UnsetMarginBottom().Render(utils.FormatCurrency(p.TotalValue)),
		lipgloss.NewStyle().Foreground(m.theme.ChangeColor(p.DailyChange)).
			Render(fmt.Sprintf("%s (%s)", utils.FormatChange(p.DailyChange), utils.FormatPercent(p.DailyChangePercent))))
	fmt.Fprintf(&b, "%s\n\n", m.styles.Muted.Render(fmt.Sprintf("weekly %s · monthly %s · AI risk %.1f/10",
		utils.FormatPercent(p.WeeklyReturn), utils.FormatPercent(p.MonthlyReturn), p.AIRiskScore)))

	for _, s := range v.Stocks() {
		arrow := "▼"
		if s.IsUp() {
			arrow = "▲"
		}
		change := lipgloss.NewStyle().Foreground(m.theme.ChangeColor(s.Change)).
			Render(utils.PadRight(arrow+" "+utils.FormatPercent(s.ChangePercent), 10))
		line := fmt.Sprintf("%s %s %s %s %s",
			utils.PadRight(s.Symbol, 6),
			utils.PadRight(utils.TruncateString(s.Name, 22), 22),
			utils.PadRight(utils.FormatCurrency(s.Price), 11),
			change,
			m.badge(m.theme.RatingColor(s.AIRating), s.AIRating.Label()))
		b.WriteString(m.row(v.List().IsSelected(s.Key()), line) + "\n")
	}

	s := v.Selected()
	fmt.Fprintf(&b, "\n%s · AI confidence %d%%\n", s.Name, s.Confidence)
	if v.Refreshing() {
		b.WriteString(m.pendingLine(true, "Refreshing market data...") + "\n")
	} else if at, ok := v.LastUpdated(); ok {
		b.WriteString(m.styles.Muted.Render("Last updated "+at.Format("3:04:05 PM")) + "\n")
	}
	b.WriteString(m.styles.Muted.Render("r: refresh · w: watch"))
	return b.String()
}

func (m Model) renderNews() string {
	v := m.nav.News()
	q := v.Query()
	var b strings.Builder

	cats := make([]string, 0, len(v.Categories()))
	for _, c := range v.Categories() {
		if c == q.Category {
			cats = append(cats, m.styles.NavActive.Render(c))
		} else {
			cats = append(cats, c)
		}
	}
	b.WriteString(strings.Join(cats, "  ") + "\n")
	if m.mode == inputSearch {
		b.WriteString(m.inputLine() + "\n")
	} else if q.Search != "" {
		b.WriteString(m.styles.Muted.Render("search: "+q.Search) + "\n")
	}
	b.WriteString("\n")

	visible := v.Visible()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("No articles match the current filter") + "\n")
	}
	for _, a := range visible {
		line := fmt.Sprintf("%s  %s", utils.PadRight(utils.TruncateString(a.Title, 52), 52),
			lipgloss.NewStyle().Foreground(m.theme.SentimentColor(a.Sentiment)).Render(string(a.Sentiment)))
		b.WriteString(m.row(v.List().IsSelected(a.Key()), line) + "\n")
	}

	a := v.Selected()
	b.WriteString("\n" + m.styles.Bold.Render(a.Title))
	if !v.SelectionVisible() {
		b.WriteString(m.styles.Muted.Render(" (hidden by filter)"))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", m.styles.Muted.Render(fmt.Sprintf("%s · %s · relevance %d%%", a.Source, a.PublishedAt, a.RelevanceScore)))
	b.WriteString(m.badge(m.theme.LevelColor(a.Impact), "Impact "+string(a.Impact)) + "\n")
	b.WriteString(a.Summary + "\n")
	b.WriteString(m.styles.Muted.Render("/: search · c: category · b: bookmark · s: share"))
	return b.String()
}

func (m Model) renderPlanner() string {
	v := m.nav.Planner()
	var b strings.Builder

	section := func(title string, events []models.CalendarEvent) {
		b.WriteString(m.styles.Bold.Render(title) + "\n")
		for _, e := range events {
			ai := ""
			if e.AIOptimized {
				ai = " ✦"
			}
			line := fmt.Sprintf("%s %s %s%s", utils.PadRight(e.Time, 9), utils.PadRight(e.Title, 34),
				m.badge(m.theme.LevelColor(e.Priority), string(e.Priority)), ai)
			b.WriteString(m.row(v.List().IsSelected(e.Key()), line) + "\n")
		}
		b.WriteString("\n")
	}
	section("Today", v.Today())
	section("Tomorrow", v.Tomorrow())

	e := v.Selected()
	fmt.Fprintf(&b, "%s · %s · %s · %s\n\n", m.styles.Bold.Render(e.Title), e.Type, e.Duration, e.Date)

	w := v.WeeklyProgress()
	fmt.Fprintf(&b, "Weekly progress %s  productivity %d%%\n", m.bar(w.CompletionPercent(), 20), w.ProductivityScore)
	for _, in := range v.Insights() {
		b.WriteString(m.styles.Info.Render("  • "+in) + "\n")
	}
	b.WriteString(m.styles.Muted.Render("o: optimize · e: reschedule"))
	return b.String()
}

func (m Model) renderRisk() string {
	v := m.nav.RiskFeed()
	mt := v.Metrics()
	dismissed := v.Dismissed(context.Background())
	var b strings.Builder

	fmt.Fprintf(&b, "Overall risk %.1f/10 · portfolio %.1f · market %.1f · learning %.1f\n",
		mt.OverallRiskScore, mt.PortfolioRisk, mt.MarketRisk, mt.LearningRisk)
	fmt.Fprintf(&b, "%s\n\n", m.styles.Muted.Render(fmt.Sprintf("severity: %s · %d active · %d resolved today",
		v.Severity(), mt.ActiveAlerts, mt.ResolvedToday)))

	for _, a := range v.Visible() {
		title := a.Title
		if dismissed[a.Key()] {
			title = m.styles.Muted.Strikethrough(true).Render(title)
		}
		line := fmt.Sprintf("%s %s", m.badge(m.theme.LevelColor(a.Severity), utils.PadRight(string(a.Severity), 6)), title)
		b.WriteString(m.row(v.List().IsSelected(a.Key()), line) + "\n")
	}

	a := v.Selected()
	b.WriteString("\n" + m.styles.Bold.Render(a.Title))
	if !v.SelectionVisible() {
		b.WriteString(m.styles.Muted.Render(" (hidden by filter)"))
	}
	b.WriteString("\n" + a.Description + "\n")
	b.WriteString(m.styles.Info.Render("AI: "+a.Recommendation) + "\n")
	b.WriteString(m.styles.Muted.Render("c: severity · a: accept · x: dismiss · confidence " + strconv.Itoa(a.Confidence) + "%"))
	return b.String()
}

func (m Model) renderCharts() string {
	v := m.nav.Charts()
	var b strings.Builder

	fmt.Fprintf(&b, "Career alignment %s\n", m.bar(v.Confidence(), 20))
	b.WriteString(m.styles.Muted.Render(v.AlignmentTooltip()) + "\n")
	fmt.Fprintf(&b, "Skill growth +%d%%\n", v.SkillGrowth())
	fmt.Fprintf(&b, "XP %s\n\n", m.bar(v.XP()*100/max(v.XPMax(), 1), 20))

	b.WriteString(m.styles.Bold.Render("Growth suggestions") + "\n")
	for _, s := range v.Suggestions() {
		b.WriteString("  • " + s + "\n")
	}
	b.WriteString("\n" + m.styles.Bold.Render("Daily digest") + "\n")
	for _, d := range v.Digest() {
		b.WriteString("  " + d + "\n")
	}
	if tip, shown := v.ShareTooltip(); shown {
		b.WriteString(m.styles.Info.Render(tip) + "\n")
	}
	b.WriteString(m.styles.Muted.Render("m: more suggestions · s: share"))
	return b.String()
}

func (m Model) renderSettings() string {
	v := m.nav.Settings()
	values := v.Values()
	var b strings.Builder
	for i, k := range v.Keys() {
		line := fmt.Sprintf("%s %v", utils.PadRight(k, 24), values[k])
		b.WriteString(m.row(i == m.settingsRow, line) + "\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter: change · changes are saved on exit"))

	if recent := lastToasts(m.notifier.History(), 3); len(recent) > 0 {
		b.WriteString("\n\n" + m.styles.Bold.Render("Recent notifications") + "\n")
		for _, t := range recent {
			fmt.Fprintf(&b, "%s %s\n", m.styles.Muted.Render(t.Timestamp.Format("3:04 PM")), lipgloss.NewStyle().Foreground(m.toastStyle(t).GetForeground()).Render(t.Message))
		}
	}
	return b.String()
}

// lastToasts returns up to n of the newest toasts, newest first.
func lastToasts(history []notify.Toast, n int) []notify.Toast {
	out := make([]notify.Toast, 0, n)
	for i := len(history) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, history[i])
	}
	return out
}
