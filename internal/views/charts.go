package views

import (
	"sphereoftech/internal/mockdata"
)

// Charts is the predictive charts view.
type Charts struct {
	env         *Env
	fixture     mockdata.ChartsFixture
	xp          int
	showTooltip bool
}

// NewCharts creates the view with XP at its starting value.
func NewCharts(env *Env) *Charts {
	f := mockdata.Charts()
	return &Charts{env: env, fixture: f, xp: f.Prediction.XP}
}

// Confidence returns the career alignment confidence percentage.
func (v *Charts) Confidence() int {
	return v.fixture.Prediction.Confidence
}

// AlignmentTooltip explains the confidence meter.
func (v *Charts) AlignmentTooltip() string {
	return v.fixture.AlignmentTooltip
}

// SkillGrowth returns the skill growth percentage.
func (v *Charts) SkillGrowth() int {
	return v.fixture.SkillGrowth
}

// XP returns the current XP progress.
func (v *Charts) XP() int {
	return v.xp
}

// XPMax returns the XP cap.
func (v *Charts) XPMax() int {
	return v.fixture.Prediction.XPMax
}

// Suggestions returns the growth suggestions.
func (v *Charts) Suggestions() []string {
	return append([]string(nil), v.fixture.Suggestions...)
}

// Digest returns the daily digest lines.
func (v *Charts) Digest() []string {
	return append([]string(nil), v.fixture.Digest...)
}

// MoreSuggestions adds one XP step, capped at the maximum, and returns the new XP.
func (v *Charts) MoreSuggestions() int {
	v.xp += v.fixture.Prediction.XPStep
	if v.xp > v.fixture.Prediction.XPMax {
		v.xp = v.fixture.Prediction.XPMax
	}
	return v.xp
}

// ToggleShareTooltip shows or hides the share tooltip and reports the new state.
func (v *Charts) ToggleShareTooltip() bool {
	v.showTooltip = !v.showTooltip
	return v.showTooltip
}

// ShareTooltip returns the tooltip text and whether it is shown.
func (v *Charts) ShareTooltip() (string, bool) {
	return v.fixture.ShareTooltip, v.showTooltip
}
