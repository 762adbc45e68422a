package views

import (
	"github.com/rs/zerolog"

	"sphereoftech/internal/logging"
	"sphereoftech/internal/mockdata"
	"sphereoftech/internal/models"
)

// QuickActions are the dashboard shortcut labels.
var QuickActions = []string{
	"Generate Learning Path",
	"Find Study Group",
	"Schedule Review Session",
}

// Dashboard is the landing view after sign-in. It embeds the AI panels.
type Dashboard struct {
	env    *Env
	logger zerolog.Logger
	user   models.UserProfile

	CourseCreator *CourseCreator
	Assessments   *Assessments
	Analytics     *Analytics
	Chatbot       *Chatbot
}

// NewDashboard creates the dashboard and its panels.
func NewDashboard(env *Env) *Dashboard {
	return &Dashboard{
		env:           env,
		logger:        logging.WithView(env.Logger, "dashboard"),
		user:          mockdata.User(),
		CourseCreator: NewCourseCreator(env),
		Assessments:   NewAssessments(env),
		Analytics:     NewAnalytics(env),
		Chatbot:       NewChatbot(env),
	}
}

// User returns the learner profile.
func (v *Dashboard) User() models.UserProfile {
	return v.user
}

// FirstName returns the greeting name.
func (v *Dashboard) FirstName() string {
	for i, r := range v.user.Name {
		if r == ' ' {
			return v.user.Name[:i]
		}
	}
	return v.user.Name
}

// CancelPending drops every pending reveal of the dashboard panels.
func (v *Dashboard) CancelPending() {
	canceled := 0
	if v.CourseCreator.Action().Cancel() {
		canceled++
	}
	if v.Assessments.Action().Cancel() {
		canceled++
	}
	if v.Chatbot.ReplyAction().Cancel() {
		canceled++
	}
	if v.Chatbot.VoiceAction().Cancel() {
		canceled++
	}
	if canceled > 0 {
		v.logger.Debug().Int("canceled", canceled).Msg("dropped pending actions")
	}
}
