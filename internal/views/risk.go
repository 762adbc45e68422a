package views

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/listview"
	"sphereoftech/internal/logging"
	"sphereoftech/internal/mockdata"
	"sphereoftech/internal/models"
)

// SeverityOptions are the severity selector values, in display order.
var SeverityOptions = []string{
	listview.All,
	string(models.LevelHigh),
	string(models.LevelMedium),
	string(models.LevelLow),
}

var riskFields = listview.Fields[models.RiskAlert]{
	Text:     func(a models.RiskAlert) []string { return []string{a.Title, a.Description} },
	Category: func(a models.RiskAlert) string { return string(a.Severity) },
}

// RiskFeed is the AI risk feed view.
type RiskFeed struct {
	env     *Env
	logger  zerolog.Logger
	list    *listview.View[models.RiskAlert]
	metrics models.RiskMetrics
}

// NewRiskFeed creates the view with the first alert selected and severity All.
func NewRiskFeed(env *Env) *RiskFeed {
	return &RiskFeed{
		env:     env,
		logger:  logging.WithView(env.Logger, "risk-feed"),
		list:    listview.MustNew(mockdata.RiskAlerts(), riskFields),
		metrics: mockdata.RiskMetrics(),
	}
}

// List exposes the underlying list for navigation.
func (v *RiskFeed) List() *listview.View[models.RiskAlert] {
	return v.list
}

// Severity returns the active severity selector.
func (v *RiskFeed) Severity() string {
	if c := v.list.Query().Category; c != "" {
		return c
	}
	return listview.All
}

// SetSeverity sets the severity selector. The value must be one of
// SeverityOptions; matching is exact, as the option labels are fixed.
func (v *RiskFeed) SetSeverity(severity string) error {
	if severity == "" {
		severity = listview.All
	}
	if !contains(SeverityOptions, severity) {
		return apperrors.NewValidationError("severity", severity, "severity must be All, High, Medium or Low")
	}
	v.list.SetCategory(severity)
	return nil
}

// CycleSeverity advances to the next severity option.
func (v *RiskFeed) CycleSeverity() string {
	next := listview.NextCategory(SeverityOptions, v.Severity())
	v.list.SetCategory(next)
	return next
}

// Visible returns the alerts matching the severity filter.
func (v *RiskFeed) Visible() []models.RiskAlert {
	return v.list.Visible()
}

// Selected returns the alert shown in the detail panel.
func (v *RiskFeed) Selected() models.RiskAlert {
	return v.list.Selected()
}

// SelectionVisible reports whether the selected alert passes the filter.
func (v *RiskFeed) SelectionVisible() bool {
	return v.list.SelectionVisible()
}

// Select selects an alert by id.
func (v *RiskFeed) Select(id int) error {
	if err := v.list.Select(strconv.Itoa(id)); err != nil {
		return apperrors.NewViewError("risk-feed", "select", err)
	}
	logging.LogSelection(v.logger, "risk-feed", strconv.Itoa(id), v.list.SelectionVisible())
	return nil
}

// Metrics returns the risk summary.
func (v *RiskFeed) Metrics() models.RiskMetrics {
	return v.metrics
}

// Accept accepts the recommendation of the selected alert.
func (v *RiskFeed) Accept(ctx context.Context) error {
	alert := v.Selected()
	if v.env.Store != nil {
		if _, err := v.env.Store.AcceptRecommendation(ctx, alert.Key()); err != nil {
			v.env.notifier().Error("Could not apply recommendation")
			return apperrors.NewViewError("risk-feed", "accept", err)
		}
	}
	v.env.notifier().Success("AI recommendation accepted and applied")
	return nil
}

// Dismiss dismisses the selected alert. The alert stays in the feed; it is
// only marked as dismissed.
func (v *RiskFeed) Dismiss(ctx context.Context) error {
	alert := v.Selected()
	if v.env.Store != nil {
		if err := v.env.Store.DismissAlert(ctx, alert.Key(), alert.Title); err != nil {
			v.env.notifier().Error("Could not dismiss alert")
			return apperrors.NewViewError("risk-feed", "dismiss", err)
		}
	}
	v.env.notifier().Success("Alert \"%s\" dismissed", alert.Title)
	return nil
}

// Dismissed returns the ids of alerts dismissed this session.
func (v *RiskFeed) Dismissed(ctx context.Context) map[string]bool {
	if v.env.Store == nil {
		return map[string]bool{}
	}
	dismissed, err := v.env.Store.DismissedAlerts(ctx)
	if err != nil {
		v.logger.Warn().Err(err).Msg("dismissed alerts lookup failed")
		return map[string]bool{}
	}
	return dismissed
}
