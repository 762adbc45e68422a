package views

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"sphereoftech/internal/action"
	apperrors "sphereoftech/internal/errors"
	"sphereoftech/internal/logging"
	"sphereoftech/internal/mockdata"
	"sphereoftech/internal/models"
)

// CourseCreator generates a canned course from a topic prompt.
type CourseCreator struct {
	env      *Env
	prompt   string
	generate *action.Action[models.Course]
}

// NewCourseCreator creates an idle course creator.
func NewCourseCreator(env *Env) *CourseCreator {
	return &CourseCreator{
		env: env,
		generate: newAction(env, action.Spec[models.Course]{
			Name:           "generate-course",
			Delay:          action.CourseGenerationDelay,
			Reveal:         mockdata.GeneratedCourse,
			SuccessMessage: "Course generated successfully!",
		}),
	}
}

// SetPrompt replaces the topic prompt.
func (c *CourseCreator) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Prompt returns the topic prompt.
func (c *CourseCreator) Prompt() string {
	return c.prompt
}

// Generate starts course generation. A blank prompt is rejected with an
// error toast and nothing is scheduled.
func (c *CourseCreator) Generate(ctx context.Context) error {
	if strings.TrimSpace(c.prompt) == "" {
		c.env.notifier().Error("Please enter a course topic or description")
		return apperrors.ErrEmptyTopic
	}
	return c.generate.Trigger(ctx)
}

// Generating reports whether generation is pending.
func (c *CourseCreator) Generating() bool {
	return c.generate.Pending()
}

// Course returns the generated course once revealed.
func (c *CourseCreator) Course() (models.Course, bool) {
	return c.generate.Result()
}

// Action exposes the generate action for waiting and completion hooks.
func (c *CourseCreator) Action() *action.Action[models.Course] {
	return c.generate
}

// Assessments shows the last quiz and regenerates adaptive quizzes.
type Assessments struct {
	env          *Env
	quiz         models.QuizResult
	showFeedback bool
	regenerate   *action.Action[string]
}

// NewAssessments creates the smart assessments panel.
func NewAssessments(env *Env) *Assessments {
	quiz := mockdata.Quiz()
	return &Assessments{
		env:  env,
		quiz: quiz,
		regenerate: newAction(env, action.Spec[string]{
			Name:           "regenerate-quiz",
			Delay:          action.QuizRegenerationDelay,
			Reveal:         func() string { return quiz.NextRecommendation },
			SuccessMessage: "New quiz generated with adaptive difficulty!",
		}),
	}
}

// Quiz returns the last quiz result.
func (a *Assessments) Quiz() models.QuizResult {
	return a.quiz
}

// Regenerate starts quiz regeneration.
func (a *Assessments) Regenerate(ctx context.Context) error {
	return a.regenerate.Trigger(ctx)
}

// Regenerating reports whether regeneration is pending.
func (a *Assessments) Regenerating() bool {
	return a.regenerate.Pending()
}

// Action exposes the regenerate action for waiting and completion hooks.
func (a *Assessments) Action() *action.Action[string] {
	return a.regenerate
}

// ToggleFeedback shows or hides the AI feedback and reports the new state.
func (a *Assessments) ToggleFeedback() bool {
	a.showFeedback = !a.showFeedback
	if a.showFeedback {
		a.env.notifier().Info("AI feedback revealed")
	}
	return a.showFeedback
}

// FeedbackVisible reports whether the AI feedback is shown.
func (a *Assessments) FeedbackVisible() bool {
	return a.showFeedback
}

// Analytics is the progress analytics panel.
type Analytics struct {
	env          *Env
	skills       []models.Skill
	achievements []models.Achievement
	compare      bool
	showInsights bool
}

// NewAnalytics creates the progress analytics panel.
func NewAnalytics(env *Env) *Analytics {
	return &Analytics{
		env:          env,
		skills:       mockdata.Skills(),
		achievements: mockdata.Achievements(),
	}
}

// Skills returns the skill rows.
func (a *Analytics) Skills() []models.Skill {
	return append([]models.Skill(nil), a.skills...)
}

// Achievements returns the achievement badges.
func (a *Analytics) Achievements() []models.Achievement {
	return append([]models.Achievement(nil), a.achievements...)
}

// OverallProgress returns the mean current skill level, rounded half up.
func (a *Analytics) OverallProgress() int {
	return OverallProgress(a.skills)
}

// OverallProgress returns the mean current level of skills, rounded half up.
func OverallProgress(skills []models.Skill) int {
	if len(skills) == 0 {
		return 0
	}
	sum := 0
	for _, s := range skills {
		sum += s.Current
	}
	return int(math.Floor(float64(sum)/float64(len(skills)) + 0.5))
}

// ToggleCompare switches cohort comparison and reports the new state.
func (a *Analytics) ToggleCompare() bool {
	a.compare = !a.compare
	return a.compare
}

// Comparing reports whether cohort comparison is on.
func (a *Analytics) Comparing() bool {
	return a.compare
}

// ToggleInsights shows or hides the AI insights and reports the new state.
func (a *Analytics) ToggleInsights() bool {
	a.showInsights = !a.showInsights
	if a.showInsights {
		a.env.notifier().Success("AI insights revealed!")
	}
	return a.showInsights
}

// InsightsVisible reports whether the AI insights are shown.
func (a *Analytics) InsightsVisible() bool {
	return a.showInsights
}

// Insights returns the AI insights. They are only meaningful once revealed.
func (a *Analytics) Insights() []string {
	return mockdata.AnalyticsInsights()
}

// Chatbot is the AI study assistant.
type Chatbot struct {
	env     *Env
	logger  zerolog.Logger
	fixture mockdata.ChatFixture
	now     func() time.Time

	mu           sync.Mutex
	open         bool
	message      string
	listening    bool
	conversation []models.ChatMessage

	reply *action.Action[models.ChatResponse]
	voice *action.Action[string]
}

// NewChatbot creates a closed chatbot with an empty conversation.
func NewChatbot(env *Env) *Chatbot {
	f := mockdata.Chat()
	c := &Chatbot{
		env:     env,
		logger:  logging.WithView(env.Logger, "chatbot"),
		fixture: f,
		now:     time.Now,
	}
	c.reply = newAction(env, action.Spec[models.ChatResponse]{
		Name:           "chat-reply",
		Delay:          action.ChatReplyDelay,
		Reveal:         func() models.ChatResponse { return f.Responses[0] },
		SuccessMessage: "AI response generated!",
	})
	c.reply.OnDone(c.appendReply)
	c.voice = newAction(env, action.Spec[string]{
		Name:   "voice-input",
		Delay:  action.VoiceInputDelay,
		Reveal: func() string { return f.VoiceTranscript },
	})
	c.voice.OnDone(c.finishVoice)
	return c
}

// SetClock replaces the message timestamp source.
func (c *Chatbot) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Open shows the chat panel.
func (c *Chatbot) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

// Close hides the chat panel. The conversation is kept.
func (c *Chatbot) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

// IsOpen reports whether the chat panel is shown.
func (c *Chatbot) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// ExamplePrompts returns the suggested prompts.
func (c *Chatbot) ExamplePrompts() []string {
	return append([]string(nil), c.fixture.ExamplePrompts...)
}

// SetMessage replaces the input text.
func (c *Chatbot) SetMessage(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = message
}

// Message returns the input text.
func (c *Chatbot) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// LoadExample puts example prompt i into the input.
func (c *Chatbot) LoadExample(i int) error {
	if i < 0 || i >= len(c.fixture.ExamplePrompts) {
		return apperrors.NewValidationError("prompt", i, "no such example prompt")
	}
	c.SetMessage(c.fixture.ExamplePrompts[i])
	c.env.notifier().Info("Example prompt loaded")
	return nil
}

// Send posts the input as a user message and schedules the canned reply.
// Blank input is ignored with ErrEmptyMessage.
func (c *Chatbot) Send(ctx context.Context) error {
	c.mu.Lock()
	text := c.message
	c.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return apperrors.ErrEmptyMessage
	}
	if err := c.reply.Trigger(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	c.conversation = append(c.conversation, models.ChatMessage{
		Role:      models.ChatUser,
		Content:   text,
		Timestamp: c.now(),
	})
	c.message = ""
	c.mu.Unlock()

	c.logger.Debug().Int("length", len(text)).Msg("message sent")
	return nil
}

func (c *Chatbot) appendReply(r models.ChatResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conversation = append(c.conversation, models.ChatMessage{
		Role:      models.ChatAI,
		Content:   r.Response,
		Code:      r.Code,
		Timestamp: c.now(),
	})
}

// Replying reports whether a reply is pending.
func (c *Chatbot) Replying() bool {
	return c.reply.Pending()
}

// ReplyAction exposes the reply action for waiting and completion hooks.
func (c *Chatbot) ReplyAction() *action.Action[models.ChatResponse] {
	return c.reply
}

// Conversation returns the messages so far, oldest first.
func (c *Chatbot) Conversation() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ChatMessage(nil), c.conversation...)
}

// ToggleVoice starts or stops simulated voice input and reports whether it is
// listening afterwards. Stopping cancels the pending transcript.
func (c *Chatbot) ToggleVoice(ctx context.Context) (bool, error) {
	if c.voice.Pending() {
		c.voice.Cancel()
		c.setListening(false)
		return false, nil
	}
	c.setListening(true)
	if err := c.voice.Trigger(ctx); err != nil {
		c.setListening(false)
		return false, err
	}
	c.env.notifier().Info("Voice input activated (demo mode)")
	return true, nil
}

// VoiceAction exposes the voice action for waiting and completion hooks.
func (c *Chatbot) VoiceAction() *action.Action[string] {
	return c.voice
}

// Listening reports whether voice input is active.
func (c *Chatbot) Listening() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listening
}

func (c *Chatbot) setListening(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listening = on
}

func (c *Chatbot) finishVoice(transcript string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = transcript
	c.listening = false
}
