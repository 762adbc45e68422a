// Package mockdata provides the hard-coded records behind every dashboard view.
//
// The records are embedded YAML fixtures decoded once per process. Accessors
// always return deep copies, so a view can never mutate the shared fixture.
package mockdata

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"sphereoftech/internal/models"
)

//go:embed data/*.yaml
var fixtures embed.FS

// StockFixture is the content of stocks.yaml.
type StockFixture struct {
	Stocks    []models.StockQuote   `yaml:"stocks"`
	Portfolio models.PortfolioStats `yaml:"portfolio"`
}

// NewsFixture is the content of news.yaml.
type NewsFixture struct {
	Articles []models.NewsArticle `yaml:"articles"`
}

// RiskFixture is the content of risk.yaml.
type RiskFixture struct {
	Alerts  []models.RiskAlert `yaml:"alerts"`
	Metrics models.RiskMetrics `yaml:"metrics"`
}

// PlannerFixture is the content of planner.yaml.
type PlannerFixture struct {
	Events         []models.CalendarEvent `yaml:"events"`
	WeeklyProgress models.WeeklyProgress  `yaml:"weekly_progress"`
	Insights       []string               `yaml:"insights"`
}

// ChatFixture holds the chatbot prompts and canned answers.
type ChatFixture struct {
	ExamplePrompts  []string              `yaml:"example_prompts"`
	VoiceTranscript string                `yaml:"voice_transcript"`
	Responses       []models.ChatResponse `yaml:"responses"`
}

// ChartsFixture holds the predictive charts figures.
type ChartsFixture struct {
	Prediction       models.Prediction `yaml:"prediction"`
	SkillGrowth      int               `yaml:"skill_growth"`
	AlignmentTooltip string            `yaml:"alignment_tooltip"`
	Suggestions      []string          `yaml:"suggestions"`
	Digest           []string          `yaml:"digest"`
	ShareTooltip     string            `yaml:"share_tooltip"`
}

// LearningFixture is the content of learning.yaml.
type LearningFixture struct {
	User         models.UserProfile   `yaml:"user"`
	Course       models.Course        `yaml:"course"`
	Quiz         models.QuizResult    `yaml:"quiz"`
	Skills       []models.Skill       `yaml:"skills"`
	Achievements []models.Achievement `yaml:"achievements"`
	Insights     []string             `yaml:"analytics_insights"`
	Chat         ChatFixture          `yaml:"chat"`
	Charts       ChartsFixture        `yaml:"charts"`
}

type catalog struct {
	stocks   StockFixture
	news     NewsFixture
	risk     RiskFixture
	planner  PlannerFixture
	learning LearningFixture
}

var (
	loadOnce sync.Once
	loaded   catalog
	loadErr  error
)

// Load decodes every fixture. It is safe to call repeatedly; decoding happens once.
func Load() error {
	loadOnce.Do(func() {
		loadErr = decodeAll(&loaded)
	})
	return loadErr
}

func decodeAll(c *catalog) error {
	files := []struct {
		name   string
		target interface{}
	}{
		{"data/stocks.yaml", &c.stocks},
		{"data/news.yaml", &c.news},
		{"data/risk.yaml", &c.risk},
		{"data/planner.yaml", &c.planner},
		{"data/learning.yaml", &c.learning},
	}
	for _, f := range files {
		raw, err := fixtures.ReadFile(f.name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(raw, f.target); err != nil {
			return fmt.Errorf("decoding %s: %w", f.name, err)
		}
	}
	return nil
}

func mustLoad() *catalog {
	if err := Load(); err != nil {
		panic(fmt.Sprintf("mockdata: embedded fixtures are invalid: %v", err))
	}
	return &loaded
}

// Stocks returns the stock tracker quotes in display order.
func Stocks() []models.StockQuote {
	return append([]models.StockQuote(nil), mustLoad().stocks.Stocks...)
}

// Portfolio returns the stock tracker portfolio summary.
func Portfolio() models.PortfolioStats {
	return mustLoad().stocks.Portfolio
}

// News returns the news summarizer articles in display order.
func News() []models.NewsArticle {
	src := mustLoad().news.Articles
	out := make([]models.NewsArticle, len(src))
	for i, a := range src {
		a.Tags = append([]string(nil), a.Tags...)
		out[i] = a
	}
	return out
}

// RiskAlerts returns the risk feed alerts in display order.
func RiskAlerts() []models.RiskAlert {
	return append([]models.RiskAlert(nil), mustLoad().risk.Alerts...)
}

// RiskMetrics returns the risk feed summary metrics.
func RiskMetrics() models.RiskMetrics {
	return mustLoad().risk.Metrics
}

// CalendarEvents returns the planner events in display order.
func CalendarEvents() []models.CalendarEvent {
	return append([]models.CalendarEvent(nil), mustLoad().planner.Events...)
}

// WeeklyProgress returns the planner weekly summary.
func WeeklyProgress() models.WeeklyProgress {
	return mustLoad().planner.WeeklyProgress
}

// PlannerInsights returns the static AI learning insights.
func PlannerInsights() []string {
	return append([]string(nil), mustLoad().planner.Insights...)
}

// User returns the demo learner profile.
func User() models.UserProfile {
	return mustLoad().learning.User
}

// GeneratedCourse returns the course revealed by the course creator.
func GeneratedCourse() models.Course {
	c := mustLoad().learning.Course
	c.Modules = append([]models.CourseModule(nil), c.Modules...)
	return c
}

// Quiz returns the last smart assessment result.
func Quiz() models.QuizResult {
	q := mustLoad().learning.Quiz
	q.Feedback = append([]string(nil), q.Feedback...)
	return q
}

// Skills returns the progress analytics skill rows.
func Skills() []models.Skill {
	return append([]models.Skill(nil), mustLoad().learning.Skills...)
}

// Achievements returns the progress analytics badges.
func Achievements() []models.Achievement {
	return append([]models.Achievement(nil), mustLoad().learning.Achievements...)
}

// AnalyticsInsights returns the progress analytics AI insights.
func AnalyticsInsights() []string {
	return append([]string(nil), mustLoad().learning.Insights...)
}

// Chat returns the chatbot prompts and canned responses.
func Chat() ChatFixture {
	c := mustLoad().learning.Chat
	c.ExamplePrompts = append([]string(nil), c.ExamplePrompts...)
	c.Responses = append([]models.ChatResponse(nil), c.Responses...)
	return c
}

// Charts returns the predictive charts figures.
func Charts() ChartsFixture {
	c := mustLoad().learning.Charts
	c.Suggestions = append([]string(nil), c.Suggestions...)
	c.Digest = append([]string(nil), c.Digest...)
	return c
}
