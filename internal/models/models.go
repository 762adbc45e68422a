// Package models provides domain models for the learning dashboard.
package models

// AIRating represents the cosmetic AI rating attached to a stock.
type AIRating string

const (
	RatingStrongBuy AIRating = "STRONG_BUY"
	RatingBuy       AIRating = "BUY"
	RatingHold      AIRating = "HOLD"
	RatingSell      AIRating = "SELL"
)

// Label returns the rating with underscores replaced, e.g. "STRONG BUY".
func (r AIRating) Label() string {
	if r == RatingStrongBuy {
		return "STRONG BUY"
	}
	return string(r)
}

// Sentiment represents the AI sentiment label of a news article.
type Sentiment string

const (
	SentimentVeryPositive Sentiment = "Very Positive"
	SentimentPositive     Sentiment = "Positive"
	SentimentNeutral      Sentiment = "Neutral"
	SentimentNegative     Sentiment = "Negative"
)

// IsPositive reports whether the sentiment leans positive.
func (s Sentiment) IsPositive() bool {
	return s == SentimentVeryPositive || s == SentimentPositive
}

// Level is the shared High/Medium/Low scale used for impact, severity and priority.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// Levels lists the scale from most to least urgent.
var Levels = []Level{LevelHigh, LevelMedium, LevelLow}

// EventType represents the kind of a planner calendar event.
type EventType string

const (
	EventStudy      EventType = "study"
	EventAssessment EventType = "assessment"
	EventProject    EventType = "project"
	EventCareer     EventType = "career"
)

// ThemeMode represents the light or dark theme selection.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Toggle returns the opposite theme mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether the mode is a known theme.
func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark
}
