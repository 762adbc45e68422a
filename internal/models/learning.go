package models

import (
	"strconv"
	"time"
)

// CalendarEvent is a scheduled item on the smart planner.
type CalendarEvent struct {
	ID          int       `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Time        string    `yaml:"time" json:"time"`
	Date        string    `yaml:"date" json:"date"`
	Type        EventType `yaml:"type" json:"type"`
	AIOptimized bool      `yaml:"ai_optimized" json:"ai_optimized"`
	Duration    string    `yaml:"duration" json:"duration"`
	Priority    Level     `yaml:"priority" json:"priority"`
}

// Key returns the event id as a string.
func (e CalendarEvent) Key() string { return strconv.Itoa(e.ID) }

// WeeklyProgress summarises the planner's week.
type WeeklyProgress struct {
	TotalPlanned      int `yaml:"total_planned" json:"total_planned"`
	Completed         int `yaml:"completed" json:"completed"`
	InProgress        int `yaml:"in_progress" json:"in_progress"`
	AIRescheduled     int `yaml:"ai_rescheduled" json:"ai_rescheduled"`
	ProductivityScore int `yaml:"productivity_score" json:"productivity_score"`
}

// CompletionPercent returns completed over planned, as a whole percentage.
func (w WeeklyProgress) CompletionPercent() int {
	if w.TotalPlanned <= 0 {
		return 0
	}
	return w.Completed * 100 / w.TotalPlanned
}

// UserProfile is the signed-in demo learner shown on the dashboard.
type UserProfile struct {
	Name             string  `yaml:"name" json:"name"`
	Role             string  `yaml:"role" json:"role"`
	CurrentCourse    string  `yaml:"current_course" json:"current_course"`
	CourseProgress   int     `yaml:"course_progress" json:"course_progress"`
	WeeklyProgress   int     `yaml:"weekly_progress" json:"weekly_progress"`
	LearningStreak   int     `yaml:"learning_streak" json:"learning_streak"`
	NextSession      string  `yaml:"next_session" json:"next_session"`
	RiskAlert        string  `yaml:"risk_alert" json:"risk_alert"`
	TotalHours       float64 `yaml:"total_hours" json:"total_hours"`
	CompletedCourses int     `yaml:"completed_courses" json:"completed_courses"`
	SkillLevel       string  `yaml:"skill_level" json:"skill_level"`
}

// CourseModule is one module of a generated course.
type CourseModule struct {
	Name      string `yaml:"name" json:"name"`
	Duration  string `yaml:"duration" json:"duration"`
	Completed bool   `yaml:"completed" json:"completed"`
}

// Course is the canned payload revealed by the course creator.
type Course struct {
	Title         string         `yaml:"title" json:"title"`
	Description   string         `yaml:"description" json:"description"`
	Modules       []CourseModule `yaml:"modules" json:"modules"`
	Optimization  int            `yaml:"optimization" json:"optimization"`
	EstimatedTime string         `yaml:"estimated_time" json:"estimated_time"`
	Difficulty    string         `yaml:"difficulty" json:"difficulty"`
	Learners      int            `yaml:"learners" json:"learners"`
}

// CompletedModules counts modules marked completed.
func (c Course) CompletedModules() int {
	n := 0
	for _, m := range c.Modules {
		if m.Completed {
			n++
		}
	}
	return n
}

// QuizResult is the last quiz shown by smart assessments.
type QuizResult struct {
	LastScore          int      `yaml:"last_score" json:"last_score"`
	TotalQuestions     int      `yaml:"total_questions" json:"total_questions"`
	CorrectAnswers     int      `yaml:"correct_answers" json:"correct_answers"`
	Topic              string   `yaml:"topic" json:"topic"`
	CompletedAt        string   `yaml:"completed_at" json:"completed_at"`
	Feedback           []string `yaml:"feedback" json:"feedback"`
	NextRecommendation string   `yaml:"next_recommendation" json:"next_recommendation"`
}

// Skill is one row of the progress analytics panel.
type Skill struct {
	Skill   string `yaml:"skill" json:"skill"`
	Current int    `yaml:"current" json:"current"`
	Cohort  int    `yaml:"cohort" json:"cohort"`
	Target  int    `yaml:"target" json:"target"`
}

// AboveCohort reports whether the learner is ahead of the cohort average.
func (s Skill) AboveCohort() bool { return s.Current > s.Cohort }

// Achievement is a badge on the progress analytics panel.
type Achievement struct {
	Title  string `yaml:"title" json:"title"`
	Earned bool   `yaml:"earned" json:"earned"`
	Date   string `yaml:"date,omitempty" json:"date,omitempty"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatUser ChatRole = "user"
	ChatAI   ChatRole = "ai"
)

// ChatMessage is one entry of the chatbot conversation.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Code      string    `json:"code,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatResponse is a canned chatbot answer.
type ChatResponse struct {
	Question string `yaml:"question" json:"question"`
	Response string `yaml:"response" json:"response"`
	Code     string `yaml:"code" json:"code"`
}

// Prediction holds the predictive charts figures.
type Prediction struct {
	Confidence int `yaml:"confidence" json:"confidence"`
	XP         int `yaml:"xp" json:"xp"`
	XPStep     int `yaml:"xp_step" json:"xp_step"`
	XPMax      int `yaml:"xp_max" json:"xp_max"`
}
