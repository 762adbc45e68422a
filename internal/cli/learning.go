package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"sphereoftech/internal/models"
	"sphereoftech/internal/views"
	"sphereoftech/pkg/utils"
)

// addLearningCommands adds the dashboard panels, planner and charts commands.
func addLearningCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newDashboardCmd(app))
	rootCmd.AddCommand(newCourseCmd(app))
	rootCmd.AddCommand(newQuizCmd(app))
	rootCmd.AddCommand(newAnalyticsCmd(app))
	rootCmd.AddCommand(newChatCmd(app))
	rootCmd.AddCommand(newPlannerCmd(app))
	rootCmd.AddCommand(newChartsCmd(app))
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the learning dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			d := openView(app, output, "/dashboard").Dashboard()
			u := d.User()

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"user":             u,
					"quick_actions":    views.QuickActions,
					"overall_progress": d.Analytics.OverallProgress(),
				})
			}

			output.Printf("Welcome back, %s! %s\n", d.FirstName(), output.DimText(u.Role))
			output.Println()
			output.Box("Current Course", []string{
				u.CurrentCourse,
				output.Bar(u.CourseProgress, 30),
				fmt.Sprintf("Next session: %s", u.NextSession),
			})

			table := NewTable(output, "STREAK", "WEEKLY GOAL", "HOURS", "COURSES", "LEVEL")
			table.AddRow(
				fmt.Sprintf("%d days", u.LearningStreak),
				fmt.Sprintf("%d%%", u.WeeklyProgress),
				fmt.Sprintf("%.1f", u.TotalHours),
				strconv.Itoa(u.CompletedCourses),
				u.SkillLevel,
			)
			table.Render()
			output.Println()

			if u.RiskAlert != "" {
				output.Warning("⚠ %s", u.RiskAlert)
			}
			output.Bold("Quick actions")
			for _, a := range views.QuickActions {
				output.Printf("  • %s\n", a)
			}
			return nil
		},
	}
}

func newCourseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "course <topic>",
		Short:   "Generate a personalized course with AI",
		Example: `  sphere course "Machine learning for beginners"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			c := openView(app, output, "/dashboard").Dashboard().CourseCreator

			c.SetPrompt(strings.Join(args, " "))
			if err := c.Generate(cmd.Context()); err != nil {
				return err
			}
			course, err := await(cmd, output, c.Action(), "AI is generating your course...")
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(course)
			}

			lines := []string{
				course.Description,
				"",
				fmt.Sprintf("%s · %s · %d learners · %d%% AI-optimized",
					course.Difficulty, course.EstimatedTime, course.Learners, course.Optimization),
				"",
			}
			for i, m := range course.Modules {
				check := "○"
				if m.Completed {
					check = output.Colored(app.Theme.Primary, "●")
				}
				lines = append(lines, fmt.Sprintf("%s %d. %s (%s)", check, i+1, m.Name, m.Duration))
			}
			lines = append(lines, "", fmt.Sprintf("%d of %d modules completed", course.CompletedModules(), len(course.Modules)))
			output.Box(course.Title, lines)
			return nil
		},
	}
}

func newQuizCmd(app *App) *cobra.Command {
	var (
		regenerate bool
		feedback   bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Show the latest smart assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			a := openView(app, output, "/dashboard").Dashboard().Assessments

			if regenerate {
				if err := a.Regenerate(cmd.Context()); err != nil {
					return err
				}
				if _, err := await(cmd, output, a.Action(), "Generating adaptive quiz..."); err != nil {
					return err
				}
			}
			if feedback {
				a.ToggleFeedback()
			}

			q := a.Quiz()
			if output.IsJSON() {
				result := map[string]interface{}{
					"topic":               q.Topic,
					"last_score":          q.LastScore,
					"correct_answers":     q.CorrectAnswers,
					"total_questions":     q.TotalQuestions,
					"completed_at":        q.CompletedAt,
					"next_recommendation": q.NextRecommendation,
				}
				if a.FeedbackVisible() {
					result["feedback"] = q.Feedback
				}
				return output.JSON(result)
			}

			lines := []string{
				fmt.Sprintf("Score: %d%% (%d/%d correct)", q.LastScore, q.CorrectAnswers, q.TotalQuestions),
				output.Bar(q.LastScore, 30),
				output.DimText("Completed " + q.CompletedAt),
			}
			if a.FeedbackVisible() {
				lines = append(lines, "", "Personalized Insights")
				for _, f := range q.Feedback {
					lines = append(lines, "  • "+f)
				}
			}
			lines = append(lines, "", "Next: "+q.NextRecommendation)
			output.Box(q.Topic, lines)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&regenerate, "regenerate", "r", false, "generate a new adaptive quiz")
	cmd.Flags().BoolVarP(&feedback, "feedback", "f", false, "reveal the AI feedback")

	return cmd
}

func newAnalyticsCmd(app *App) *cobra.Command {
	var (
		compare  bool
		insights bool
	)

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show progress analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			a := openView(app, output, "/dashboard").Dashboard().Analytics

			if compare {
				a.ToggleCompare()
			}
			if insights {
				a.ToggleInsights()
			}

			if output.IsJSON() {
				result := map[string]interface{}{
					"overall_progress": a.OverallProgress(),
					"skills":           a.Skills(),
					"achievements":     a.Achievements(),
				}
				if a.InsightsVisible() {
					result["insights"] = a.Insights()
				}
				return output.JSON(result)
			}

			output.Printf("Overall progress: %s\n\n", output.Bar(a.OverallProgress(), 30))

			headers := []string{"SKILL", "CURRENT", "TARGET"}
			if a.Comparing() {
				headers = append(headers, "COHORT", "")
			}
			table := NewTable(output, headers...)
			for _, s := range a.Skills() {
				row := []string{s.Skill, output.Bar(s.Current, 20), fmt.Sprintf("%d%%", s.Target)}
				if a.Comparing() {
					delta := s.Current - s.Cohort
					label := fmt.Sprintf("%+d", delta)
					if s.AboveCohort() {
						label = output.Colored(app.Theme.ChangeColor(1), label)
					} else {
						label = output.Colored(app.Theme.ChangeColor(-1), label)
					}
					row = append(row, fmt.Sprintf("%d%%", s.Cohort), label)
				}
				table.AddRow(row...)
			}
			table.Render()
			output.Println()

			output.Bold("Achievements")
			for _, ach := range a.Achievements() {
				if ach.Earned {
					output.Printf("  ★ %s %s\n", ach.Title, output.DimText(ach.Date))
				} else {
					output.Printf("  %s\n", output.DimText("☆ "+ach.Title))
				}
			}

			if a.InsightsVisible() {
				output.Println()
				lines := make([]string, 0, len(a.Insights()))
				for _, in := range a.Insights() {
					lines = append(lines, "• "+in)
				}
				output.Box("AI Insights", lines)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compare, "compare", false, "compare with the cohort")
	cmd.Flags().BoolVar(&insights, "insights", false, "reveal the AI insights")

	return cmd
}

func newChatCmd(app *App) *cobra.Command {
	var (
		example int
		voice   bool
	)

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the AI study assistant",
		Example: `  sphere chat "What is backpropagation?"
  sphere chat --example 1
  sphere chat --voice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			c := openView(app, output, "/dashboard").Dashboard().Chatbot
			c.Open()
			defer c.Close()

			switch {
			case voice:
				if _, err := c.ToggleVoice(cmd.Context()); err != nil {
					return err
				}
				if _, err := await(cmd, output, c.VoiceAction(), "Listening..."); err != nil {
					return err
				}
			case example > 0:
				if err := c.LoadExample(example - 1); err != nil {
					return err
				}
			default:
				c.SetMessage(strings.Join(args, " "))
			}

			if err := c.Send(cmd.Context()); err != nil {
				return err
			}
			if _, err := await(cmd, output, c.ReplyAction(), "AI is thinking..."); err != nil {
				return err
			}

			conversation := c.Conversation()
			if output.IsJSON() {
				return output.JSON(conversation)
			}
			return renderConversation(output, app, conversation)
		},
	}

	cmd.Flags().IntVarP(&example, "example", "e", 0, "send example prompt n (1-4)")
	cmd.Flags().BoolVar(&voice, "voice", false, "use simulated voice input")

	return cmd
}

// renderConversation prints the chat with AI replies rendered as markdown.
func renderConversation(output *Output, app *App, conversation []models.ChatMessage) error {
	style := "notty"
	if output.ColorEnabled() {
		style = app.Theme.GlamourStyle()
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}

	for _, m := range conversation {
		if m.Role == models.ChatUser {
			output.Printf("%s %s\n", output.BoldText("You:"), m.Content)
			continue
		}
		markdown := m.Content
		if m.Code != "" {
			markdown += "\n\n```python\n" + strings.TrimRight(m.Code, "\n") + "\n```\n"
		}
		rendered, err := renderer.Render(markdown)
		if err != nil {
			return err
		}
		output.Printf("%s\n%s", output.BoldText("AI Assistant:"), rendered)
	}
	return nil
}

func newPlannerCmd(app *App) *cobra.Command {
	var (
		id         int
		optimize   bool
		reschedule bool
	)

	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Show the smart study planner",
		Example: `  sphere planner
  sphere planner --select 3 --reschedule
  sphere planner --optimize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			v := openView(app, output, "/planner").Planner()

			if id > 0 {
				if err := v.Select(id); err != nil {
					return err
				}
			}
			if optimize {
				v.Optimize()
			}
			if reschedule {
				if err := v.Reschedule(cmd.Context()); err != nil {
					return err
				}
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"today":    v.Today(),
					"tomorrow": v.Tomorrow(),
					"selected": v.Selected(),
					"progress": v.WeeklyProgress(),
					"insights": v.Insights(),
				})
			}

			printEvents(output, "Today", v.Today(), v.Selected().ID)
			printEvents(output, "Tomorrow", v.Tomorrow(), v.Selected().ID)

			e := v.Selected()
			optimized := ""
			if e.AIOptimized {
				optimized = " · AI optimized"
			}
			output.Box(e.Title, []string{
				fmt.Sprintf("%s at %s for %s", e.Date, e.Time, e.Duration),
				fmt.Sprintf("Type: %s  Priority: %s%s", e.Type, output.Level(e.Priority), optimized),
			})

			w := v.WeeklyProgress()
			output.Bold("Weekly progress")
			output.Printf("  %s\n", output.Bar(w.CompletionPercent(), 30))
			output.Printf("  %d of %d completed · %d in progress · %d AI rescheduled · productivity %d%%\n",
				w.Completed, w.TotalPlanned, w.InProgress, w.AIRescheduled, w.ProductivityScore)
			output.Println()

			output.Bold("AI Learning Insights")
			for _, in := range v.Insights() {
				output.Printf("  • %s\n", in)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&id, "select", "s", 0, "select an event by id")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "optimize the schedule with AI")
	cmd.Flags().BoolVar(&reschedule, "reschedule", false, "reschedule the selected event")

	return cmd
}

func printEvents(output *Output, heading string, events []models.CalendarEvent, selectedID int) {
	output.Bold("%s", heading)
	if len(events) == 0 {
		output.Dim("  Nothing planned")
		output.Println()
		return
	}
	table := NewTable(output, "", "ID", "TIME", "EVENT", "TYPE", "DURATION", "PRIORITY")
	for _, e := range events {
		table.AddRow(
			marker(e.ID == selectedID),
			strconv.Itoa(e.ID),
			e.Time,
			utils.TruncateString(e.Title, 40),
			string(e.Type),
			e.Duration,
			output.Level(e.Priority),
		)
	}
	table.Render()
	output.Println()
}

func newChartsCmd(app *App) *cobra.Command {
	var (
		more  int
		share bool
	)

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Show predictive career charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			v := openView(app, output, "/charts").Charts()

			for i := 0; i < more; i++ {
				v.MoreSuggestions()
			}
			if share {
				v.ToggleShareTooltip()
			}
			tooltip, shown := v.ShareTooltip()

			if output.IsJSON() {
				result := map[string]interface{}{
					"confidence":   v.Confidence(),
					"skill_growth": v.SkillGrowth(),
					"xp":           v.XP(),
					"xp_max":       v.XPMax(),
					"suggestions":  v.Suggestions(),
					"digest":       v.Digest(),
				}
				if shown {
					result["share_tooltip"] = tooltip
				}
				return output.JSON(result)
			}

			output.Box("Career Alignment", []string{
				fmt.Sprintf("Confidence: %s", output.Bar(v.Confidence(), 30)),
				output.DimText(v.AlignmentTooltip()),
				fmt.Sprintf("Skill growth: +%d%%", v.SkillGrowth()),
				fmt.Sprintf("XP: %s", output.Bar(v.XP()*100/max(v.XPMax(), 1), 30)),
			})

			output.Bold("Growth suggestions")
			for _, s := range v.Suggestions() {
				output.Printf("  • %s\n", s)
			}
			output.Println()

			output.Bold("Daily digest")
			for _, d := range v.Digest() {
				output.Printf("  %s\n", d)
			}
			if shown {
				output.Println()
				output.Info("%s", tooltip)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&more, "more", 0, "request n more suggestions (adds XP)")
	cmd.Flags().BoolVar(&share, "share", false, "show the share tooltip")

	return cmd
}
