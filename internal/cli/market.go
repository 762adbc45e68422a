package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sphereoftech/internal/models"
	"sphereoftech/pkg/utils"
)

// addMarketCommands adds the stock tracker, news and risk feed commands.
func addMarketCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newStocksCmd(app))
	rootCmd.AddCommand(newNewsCmd(app))
	rootCmd.AddCommand(newRiskCmd(app))
}

func newStocksCmd(app *App) *cobra.Command {
	var (
		symbol  string
		refresh bool
		watch   bool
	)

	cmd := &cobra.Command{
		Use:     "stocks",
		Aliases: []string{"stock-tracker"},
		Short:   "Show tracked stocks with AI ratings",
		Example: `  sphere stocks
  sphere stocks --select NVDA --watch
  sphere stocks --refresh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			nav := openView(app, output, "/stock-tracker")
			v := nav.StockTracker()

			if symbol != "" {
				if err := v.Select(symbol); err != nil {
					return err
				}
			}
			if refresh {
				if err := v.Refresh(cmd.Context()); err != nil {
					return err
				}
				if _, err := await(cmd, output, v.RefreshAction(), "Refreshing market data..."); err != nil {
					return err
				}
			}
			if watch {
				if err := v.Watch(cmd.Context()); err != nil {
					return err
				}
			}

			if output.IsJSON() {
				watchlist, err := v.Watchlist(cmd.Context())
				if err != nil {
					return err
				}
				result := map[string]interface{}{
					"portfolio": v.Portfolio(),
					"stocks":    v.Stocks(),
					"selected":  v.Selected().Symbol,
					"watchlist": watchlist,
				}
				if at, ok := v.LastUpdated(); ok {
					result["last_updated"] = at.Format(time.RFC3339)
				}
				return output.JSON(result)
			}

			p := v.Portfolio()
			output.Box("Portfolio", []string{
				fmt.Sprintf("Total value:   %s", utils.FormatCurrency(p.TotalValue)),
				fmt.Sprintf("Today:         %s", output.Change(p.DailyChange, p.DailyChangePercent)),
				fmt.Sprintf("Weekly return: %s", utils.FormatPercent(p.WeeklyReturn)),
				fmt.Sprintf("Monthly:       %s", utils.FormatPercent(p.MonthlyReturn)),
				fmt.Sprintf("AI risk score: %.1f/10", p.AIRiskScore),
			})

			table := NewTable(output, "", "SYMBOL", "NAME", "PRICE", "CHANGE", "AI RATING", "CONFIDENCE")
			selected := v.Selected().Symbol
			for _, s := range v.Stocks() {
				table.AddRow(
					marker(s.Symbol == selected),
					s.Symbol,
					s.Name,
					utils.FormatCurrency(s.Price),
					output.Change(s.Change, s.ChangePercent),
					output.Rating(s.AIRating),
					fmt.Sprintf("%d%%", s.Confidence),
				)
			}
			table.Render()

			if at, ok := v.LastUpdated(); ok {
				output.Dim("Last updated %s", at.Format(time.Kitchen))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&symbol, "select", "s", "", "select a stock by symbol")
	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "refresh market data")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "add the selected stock to the watchlist")

	return cmd
}

func newNewsCmd(app *App) *cobra.Command {
	var (
		search   string
		category string
		id       int
		bookmark bool
		share    bool
	)

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Browse AI-summarized news",
		Example: `  sphere news --category Stocks
  sphere news --search bitcoin
  sphere news --select 2 --bookmark --share`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			nav := openView(app, output, "/news")
			v := nav.News()

			v.SetSearch(search)
			if category != "" {
				if err := v.SetCategory(category); err != nil {
					return err
				}
			}
			if id > 0 {
				if err := v.Select(id); err != nil {
					return err
				}
			}
			if bookmark {
				if err := v.Bookmark(cmd.Context()); err != nil {
					return err
				}
			}
			var link string
			if share {
				link = v.Share()
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"query":             v.Query(),
					"categories":        v.Categories(),
					"articles":          v.Visible(),
					"selected":          v.Selected(),
					"selection_visible": v.SelectionVisible(),
					"bookmarked":        v.IsBookmarked(cmd.Context(), v.Selected().ID),
					"share_link":        link,
				})
			}

			output.Dim("Categories: %s", strings.Join(v.Categories(), " · "))
			visible := v.Visible()
			if len(visible) == 0 {
				output.Warning("No articles match the current filter")
			} else {
				table := NewTable(output, "", "ID", "TITLE", "CATEGORY", "SENTIMENT", "RELEVANCE")
				for _, a := range visible {
					table.AddRow(
						marker(a.ID == v.Selected().ID),
						strconv.Itoa(a.ID),
						utils.TruncateString(a.Title, 48),
						a.Category,
						output.Sentiment(a.Sentiment),
						fmt.Sprintf("%d%%", a.RelevanceScore),
					)
				}
				table.Render()
			}
			output.Println()

			a := v.Selected()
			title := a.Title
			if !v.SelectionVisible() {
				title += " (hidden by filter)"
			}
			lines := []string{
				fmt.Sprintf("%s · %s · %s", a.Source, a.Category, a.PublishedAt),
				fmt.Sprintf("Impact: %s  Sentiment: %s", output.Level(a.Impact), output.Sentiment(a.Sentiment)),
				"",
				a.Summary,
				"",
				"Tags: " + strings.Join(a.Tags, ", "),
			}
			if v.IsBookmarked(cmd.Context(), a.ID) {
				lines = append(lines, "★ Bookmarked")
			}
			if link != "" {
				lines = append(lines, "Link: "+link)
			}
			output.Box(title, lines)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "filter by title or tag")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	cmd.Flags().IntVarP(&id, "select", "s", 0, "select an article by id")
	cmd.Flags().BoolVarP(&bookmark, "bookmark", "b", false, "bookmark the selected article")
	cmd.Flags().BoolVar(&share, "share", false, "copy the selected article link")

	return cmd
}

func newRiskCmd(app *App) *cobra.Command {
	var (
		severity string
		id       int
		accept   bool
		dismiss  bool
	)

	cmd := &cobra.Command{
		Use:     "risk",
		Aliases: []string{"risk-feed"},
		Short:   "Show the AI risk feed",
		Example: `  sphere risk --severity High
  sphere risk --select 2 --dismiss`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app)
			nav := openView(app, output, "/risk-feed")
			v := nav.RiskFeed()

			if severity != "" {
				if err := v.SetSeverity(severity); err != nil {
					return err
				}
			}
			if id > 0 {
				if err := v.Select(id); err != nil {
					return err
				}
			}
			if accept {
				if err := v.Accept(cmd.Context()); err != nil {
					return err
				}
			}
			if dismiss {
				if err := v.Dismiss(cmd.Context()); err != nil {
					return err
				}
			}
			dismissed := v.Dismissed(cmd.Context())

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"severity":          v.Severity(),
					"metrics":           v.Metrics(),
					"alerts":            v.Visible(),
					"selected":          v.Selected(),
					"selection_visible": v.SelectionVisible(),
					"dismissed":         dismissed,
				})
			}

			m := v.Metrics()
			output.Box("Risk Overview", []string{
				fmt.Sprintf("Overall risk:   %.1f/10 (%s last 24h)", m.OverallRiskScore, m.TrendLast24h),
				fmt.Sprintf("Portfolio:      %.1f", m.PortfolioRisk),
				fmt.Sprintf("Market:         %.1f", m.MarketRisk),
				fmt.Sprintf("Learning:       %.1f", m.LearningRisk),
				fmt.Sprintf("Active alerts:  %d  Resolved today: %d", m.ActiveAlerts, m.ResolvedToday),
			})

			table := NewTable(output, "", "ID", "SEVERITY", "ALERT", "CATEGORY", "CONFIDENCE", "")
			for _, a := range v.Visible() {
				state := ""
				if dismissed[a.Key()] {
					state = output.DimText("dismissed")
				}
				table.AddRow(
					marker(a.ID == v.Selected().ID),
					strconv.Itoa(a.ID),
					output.Level(a.Severity),
					utils.TruncateString(a.Title, 44),
					a.Category,
					fmt.Sprintf("%d%%", a.Confidence),
					state,
				)
			}
			table.Render()
			output.Println()

			a := v.Selected()
			title := a.Title
			if !v.SelectionVisible() {
				title += " (hidden by filter)"
			}
			output.Box(title, []string{
				a.Description,
				"",
				"Impact: " + a.Impact,
				"AI recommendation: " + a.Recommendation,
				output.DimText(a.Timestamp),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "", fmt.Sprintf("filter by severity (All, %s)", levelList()))
	cmd.Flags().IntVarP(&id, "select", "s", 0, "select an alert by id")
	cmd.Flags().BoolVar(&accept, "accept", false, "accept the AI recommendation of the selected alert")
	cmd.Flags().BoolVar(&dismiss, "dismiss", false, "dismiss the selected alert")

	return cmd
}

func levelList() string {
	names := make([]string, len(models.Levels))
	for i, l := range models.Levels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}
