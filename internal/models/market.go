package models

import "strconv"

// StockQuote is a stock row on the stock tracker.
type StockQuote struct {
	Symbol        string   `yaml:"symbol" json:"symbol"`
	Name          string   `yaml:"name" json:"name"`
	Price         float64  `yaml:"price" json:"price"`
	Change        float64  `yaml:"change" json:"change"`
	ChangePercent float64  `yaml:"change_percent" json:"change_percent"`
	AIRating      AIRating `yaml:"ai_rating" json:"ai_rating"`
	Confidence    int      `yaml:"confidence" json:"confidence"`
}

// Key returns the unique symbol of the quote.
func (q StockQuote) Key() string { return q.Symbol }

// IsUp reports whether the quote moved up or stayed flat.
func (q StockQuote) IsUp() bool { return q.Change >= 0 }

// PortfolioStats summarises the mock portfolio on the stock tracker.
type PortfolioStats struct {
	TotalValue         float64 `yaml:"total_value" json:"total_value"`
	DailyChange        float64 `yaml:"daily_change" json:"daily_change"`
	DailyChangePercent float64 `yaml:"daily_change_percent" json:"daily_change_percent"`
	WeeklyReturn       float64 `yaml:"weekly_return" json:"weekly_return"`
	MonthlyReturn      float64 `yaml:"monthly_return" json:"monthly_return"`
	AIRiskScore        float64 `yaml:"ai_risk_score" json:"ai_risk_score"`
}

// NewsArticle is an AI-curated article on the news summarizer.
type NewsArticle struct {
	ID             int       `yaml:"id" json:"id"`
	Title          string    `yaml:"title" json:"title"`
	Summary        string    `yaml:"summary" json:"summary"`
	Content        string    `yaml:"content" json:"content"`
	Source         string    `yaml:"source" json:"source"`
	Category       string    `yaml:"category" json:"category"`
	PublishedAt    string    `yaml:"published_at" json:"published_at"`
	Sentiment      Sentiment `yaml:"sentiment" json:"sentiment"`
	RelevanceScore int       `yaml:"relevance_score" json:"relevance_score"`
	Impact         Level     `yaml:"impact" json:"impact"`
	Tags           []string  `yaml:"tags" json:"tags"`
}

// Key returns the article id as a string.
func (a NewsArticle) Key() string { return strconv.Itoa(a.ID) }

// RiskAlert is an alert on the AI risk feed.
type RiskAlert struct {
	ID             int    `yaml:"id" json:"id"`
	Title          string `yaml:"title" json:"title"`
	Description    string `yaml:"description" json:"description"`
	Severity       Level  `yaml:"severity" json:"severity"`
	Category       string `yaml:"category" json:"category"`
	Timestamp      string `yaml:"timestamp" json:"timestamp"`
	Impact         string `yaml:"impact" json:"impact"`
	Recommendation string `yaml:"recommendation" json:"recommendation"`
	Confidence     int    `yaml:"confidence" json:"confidence"`
}

// Key returns the alert id as a string.
func (a RiskAlert) Key() string { return strconv.Itoa(a.ID) }

// RiskMetrics summarises the overall risk picture on the risk feed.
type RiskMetrics struct {
	OverallRiskScore float64 `yaml:"overall_risk_score" json:"overall_risk_score"`
	PortfolioRisk    float64 `yaml:"portfolio_risk" json:"portfolio_risk"`
	MarketRisk       float64 `yaml:"market_risk" json:"market_risk"`
	LearningRisk     float64 `yaml:"learning_risk" json:"learning_risk"`
	TrendLast24h     string  `yaml:"trend_last_24h" json:"trend_last_24h"`
	ActiveAlerts     int     `yaml:"active_alerts" json:"active_alerts"`
	ResolvedToday    int     `yaml:"resolved_today" json:"resolved_today"`
}
