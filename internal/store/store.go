// Package store records in-session interactions.
package store

import (
	"context"
	"time"
)

// SessionStore defines the interface for the session's interaction log.
// Nothing written here outlives the process.
type SessionStore interface {
	// Sessions
	StartSession(ctx context.Context, email, name string) (*Session, error)
	CurrentSession(ctx context.Context) (*Session, error)

	// Bookmarks
	AddBookmark(ctx context.Context, articleID int, title string) error
	IsBookmarked(ctx context.Context, articleID int) (bool, error)
	GetBookmarks(ctx context.Context) ([]Bookmark, error)

	// Watchlist
	AddToWatchlist(ctx context.Context, symbol string) error
	RemoveFromWatchlist(ctx context.Context, symbol string) error
	GetWatchlist(ctx context.Context) ([]string, error)

	// Risk alerts
	DismissAlert(ctx context.Context, alertID, title string) error
	DismissedAlerts(ctx context.Context) (map[string]bool, error)
	AcceptRecommendation(ctx context.Context, alertID string) (string, error)
	AcceptedRecommendations(ctx context.Context) ([]Interaction, error)

	// Planner
	RescheduleEvent(ctx context.Context, eventID, title string) (string, error)
	RescheduledEvents(ctx context.Context) ([]Interaction, error)

	// Lifecycle
	Close() error
}

// Session is a signed-in demo session.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
}

// Bookmark is a bookmarked news article.
type Bookmark struct {
	ArticleID int       `json:"article_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Interaction is a recorded user action against a record.
type Interaction struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"record_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
