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

// Date labels of the planner groups.
const (
	DateToday    = "Today"
	DateTomorrow = "Tomorrow"
)

var plannerFields = listview.Fields[models.CalendarEvent]{
	Text:     func(e models.CalendarEvent) []string { return []string{e.Title} },
	Category: func(e models.CalendarEvent) string { return e.Date },
}

// Planner is the smart planner view.
type Planner struct {
	env      *Env
	logger   zerolog.Logger
	list     *listview.View[models.CalendarEvent]
	progress models.WeeklyProgress
	insights []string
}

// NewPlanner creates the view with the first event selected.
func NewPlanner(env *Env) *Planner {
	return &Planner{
		env:      env,
		logger:   logging.WithView(env.Logger, "planner"),
		list:     listview.MustNew(mockdata.CalendarEvents(), plannerFields),
		progress: mockdata.WeeklyProgress(),
		insights: mockdata.PlannerInsights(),
	}
}

// List exposes the underlying list for navigation.
func (v *Planner) List() *listview.View[models.CalendarEvent] {
	return v.list
}

// Events returns every event of the week.
func (v *Planner) Events() []models.CalendarEvent {
	return v.list.Source()
}

// Today returns the events dated today.
func (v *Planner) Today() []models.CalendarEvent {
	return v.onDate(DateToday)
}

// Tomorrow returns the events dated tomorrow.
func (v *Planner) Tomorrow() []models.CalendarEvent {
	return v.onDate(DateTomorrow)
}

func (v *Planner) onDate(date string) []models.CalendarEvent {
	return listview.Apply(v.list.Source(), listview.Query{Category: date}, plannerFields)
}

// Selected returns the event shown in the detail panel.
func (v *Planner) Selected() models.CalendarEvent {
	return v.list.Selected()
}

// Select selects an event by id.
func (v *Planner) Select(id int) error {
	if err := v.list.Select(strconv.Itoa(id)); err != nil {
		return apperrors.NewViewError("planner", "select", err)
	}
	logging.LogSelection(v.logger, "planner", strconv.Itoa(id), true)
	return nil
}

// WeeklyProgress returns the week summary.
func (v *Planner) WeeklyProgress() models.WeeklyProgress {
	return v.progress
}

// Insights returns the AI study insights.
func (v *Planner) Insights() []string {
	return append([]string(nil), v.insights...)
}

// Optimize acknowledges a schedule optimization. The schedule itself is fixed.
func (v *Planner) Optimize() {
	v.logger.Info().Msg("schedule optimization requested")
	v.env.notifier().Success("Schedule optimized with AI recommendations!")
}

// Reschedule asks for the selected event to be moved to an optimal slot.
func (v *Planner) Reschedule(ctx context.Context) error {
	event := v.Selected()
	if v.env.Store != nil {
		if _, err := v.env.Store.RescheduleEvent(ctx, event.Key(), event.Title); err != nil {
			v.env.notifier().Error("Could not reschedule %q", event.Title)
			return apperrors.NewViewError("planner", "reschedule", err)
		}
	}
	v.env.notifier().Info("\"%s\" rescheduled for optimal learning time", event.Title)
	return nil
}
