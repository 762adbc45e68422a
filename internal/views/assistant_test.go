package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sphereoftech/internal/action"
	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/models"
	"sphereoftech/internal/notify"
)

func TestCourseCreatorRejectsBlankTopic(t *testing.T) {
	te := newTestEnv(t)
	c := NewCourseCreator(te.Env)

	c.SetPrompt("   ")
	err := c.Generate(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrEmptyTopic))
	assert.False(t, c.Generating())
	assert.Equal(t, 0, te.sched.Pending(), "nothing may be scheduled")

	toast := te.lastToast(t)
	assert.Equal(t, notify.ToastError, toast.Type)
	assert.Equal(t, "Please enter a course topic or description", toast.Message)
}

func TestCourseCreatorGenerates(t *testing.T) {
	te := newTestEnv(t)
	c := NewCourseCreator(te.Env)

	c.SetPrompt("Machine learning for beginners")
	require.NoError(t, c.Generate(context.Background()))
	assert.True(t, c.Generating())
	_, ok := c.Course()
	assert.False(t, ok)

	te.sched.Advance(action.CourseGenerationDelay)
	course, ok := c.Course()
	require.True(t, ok)
	assert.Equal(t, "Advanced Machine Learning Fundamentals", course.Title)
	assert.Equal(t, 2, course.CompletedModules())
	assert.Len(t, course.Modules, 4)
	assert.Equal(t, "Course generated successfully!", te.lastToast(t).Message)
}

func TestQuizRegeneration(t *testing.T) {
	te := newTestEnv(t)
	a := NewAssessments(te.Env)
	ctx := context.Background()

	require.NoError(t, a.Regenerate(ctx))
	assert.True(t, a.Regenerating())

	err := a.Regenerate(ctx)
	assert.True(t, errors.Is(err, apperrors.ErrActionPending))

	te.sched.Advance(action.QuizRegenerationDelay)
	assert.False(t, a.Regenerating())
	assert.Equal(t, "New quiz generated with adaptive difficulty!", te.lastToast(t).Message)
	assert.Equal(t, 1, te.toastCount(), "debounced trigger must not toast twice")
}

func TestAssessmentFeedbackToggle(t *testing.T) {
	te := newTestEnv(t)
	a := NewAssessments(te.Env)

	assert.True(t, a.ToggleFeedback())
	assert.Equal(t, "AI feedback revealed", te.lastToast(t).Message)
	assert.False(t, a.ToggleFeedback())
	assert.Equal(t, 1, te.toastCount(), "hiding is silent")
}

func TestAnalytics(t *testing.T) {
	te := newTestEnv(t)
	a := NewAnalytics(te.Env)

	assert.Equal(t, 80, a.OverallProgress())
	assert.True(t, a.ToggleCompare())
	assert.True(t, a.Comparing())
	assert.True(t, a.ToggleInsights())
	assert.Equal(t, "AI insights revealed!", te.lastToast(t).Message)
	assert.Len(t, a.Achievements(), 4)
	assert.Contains(t, a.Insights()[0], "18% above the cohort")
}

func TestOverallProgressRoundsHalfUp(t *testing.T) {
	skills := []models.Skill{{Current: 70}, {Current: 71}}
	assert.Equal(t, 71, OverallProgress(skills))
	assert.Equal(t, 0, OverallProgress(nil))
}

func TestChatbotConversation(t *testing.T) {
	te := newTestEnv(t)
	c := NewChatbot(te.Env)
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return start })
	ctx := context.Background()

	assert.True(t, errors.Is(c.Send(ctx), apperrors.ErrEmptyMessage))

	c.SetMessage("What is backpropagation?")
	require.NoError(t, c.Send(ctx))
	assert.Empty(t, c.Message(), "input clears on send")
	assert.True(t, c.Replying())
	require.Len(t, c.Conversation(), 1)

	te.sched.Advance(action.ChatReplyDelay)
	conv := c.Conversation()
	require.Len(t, conv, 2)
	assert.Equal(t, models.ChatUser, conv[0].Role)
	assert.Equal(t, models.ChatAI, conv[1].Role)
	assert.Contains(t, conv[1].Content, "Gradient descent")
	assert.Contains(t, conv[1].Code, "def gradient_descent")
	assert.Equal(t, "AI response generated!", te.lastToast(t).Message)
}

func TestChatbotExamplePrompt(t *testing.T) {
	te := newTestEnv(t)
	c := NewChatbot(te.Env)

	require.NoError(t, c.LoadExample(3))
	assert.Equal(t, "Create a study plan for machine learning", c.Message())
	assert.Equal(t, "Example prompt loaded", te.lastToast(t).Message)
	assert.Error(t, c.LoadExample(4))
}

func TestChatbotVoiceInput(t *testing.T) {
	te := newTestEnv(t)
	c := NewChatbot(te.Env)
	ctx := context.Background()

	on, err := c.ToggleVoice(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, c.Listening())
	assert.Equal(t, "Voice input activated (demo mode)", te.lastToast(t).Message)

	te.sched.Advance(action.VoiceInputDelay)
	assert.False(t, c.Listening())
	assert.Equal(t, "Explain gradient descent in simple terms", c.Message())
}

func TestChatbotVoiceCancel(t *testing.T) {
	te := newTestEnv(t)
	c := NewChatbot(te.Env)
	ctx := context.Background()

	_, err := c.ToggleVoice(ctx)
	require.NoError(t, err)
	on, err := c.ToggleVoice(ctx)
	require.NoError(t, err)
	assert.False(t, on)

	te.sched.Advance(action.VoiceInputDelay)
	assert.Empty(t, c.Message(), "a stopped recording never fills the input")
}

func TestDashboardCancelPending(t *testing.T) {
	te := newTestEnv(t)
	d := NewDashboard(te.Env)
	ctx := context.Background()

	assert.Equal(t, "Alex", d.FirstName())
	require.NoError(t, d.Assessments.Regenerate(ctx))
	d.CourseCreator.SetPrompt("Statistics")
	require.NoError(t, d.CourseCreator.Generate(ctx))

	d.CancelPending()
	te.sched.Advance(time.Minute)
	assert.Equal(t, 0, te.toastCount())
}
