package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	apperrors "sphereoftech/internal/errors"
)

// SQLiteStore implements SessionStore on an in-memory SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	mu  sync.Mutex
	now func() time.Time
}

// NewSQLiteStore opens a private in-memory database. Each store gets its own
// named memory database so concurrent stores never share rows.
func NewSQLiteStore() (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:sphere-%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", apperrors.ErrSessionStore, err)
	}

	// The memory database lives as long as one connection holds it open.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &SQLiteStore{db: db, now: time.Now}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to initialize schema: %v", apperrors.ErrSessionStore, err)
	}

	return store, nil
}

// SetClock replaces the timestamp source.
func (s *SQLiteStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *SQLiteStore) timestamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().UTC()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		name TEXT,
		started_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS bookmarks (
		article_id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS watchlist (
		symbol TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dismissed_alerts (
		alert_id TEXT PRIMARY KEY,
		title TEXT,
		created_at DATETIME NOT NULL
	);

	-- Accepted recommendations and reschedules are logged, not deduplicated
	CREATE TABLE IF NOT EXISTS interactions (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		record_id TEXT NOT NULL,
		title TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_interactions_kind ON interactions(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding all rows.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Session Methods
// ============================================================================

// StartSession records a sign-in and returns the new session.
func (s *SQLiteStore) StartSession(ctx context.Context, email, name string) (*Session, error) {
	if email == "" {
		return nil, apperrors.NewValidationError("email", email, "email is required")
	}
	session := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		StartedAt: s.timestamp(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, email, name, started_at) VALUES (?, ?, ?, ?)
	`, session.ID, session.Email, session.Name, session.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// CurrentSession returns the most recent session.
func (s *SQLiteStore) CurrentSession(ctx context.Context) (*Session, error) {
	var session Session
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, started_at FROM sessions
		ORDER BY started_at DESC, rowid DESC LIMIT 1
	`).Scan(&session.ID, &session.Email, &session.Name, &session.StartedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return &session, nil
}

// ============================================================================
// Bookmark Methods
// ============================================================================

// AddBookmark bookmarks an article. Bookmarking twice is a no-op.
func (s *SQLiteStore) AddBookmark(ctx context.Context, articleID int, title string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO bookmarks (article_id, title, created_at) VALUES (?, ?, ?)
	`, articleID, title, s.timestamp())
	if err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

// IsBookmarked reports whether an article is bookmarked.
func (s *SQLiteStore) IsBookmarked(ctx context.Context, articleID int) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bookmarks WHERE article_id = ?
	`, articleID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query bookmark: %w", err)
	}
	return count > 0, nil
}

// GetBookmarks returns bookmarks in the order they were made.
func (s *SQLiteStore) GetBookmarks(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT article_id, title, created_at FROM bookmarks ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ArticleID, &b.Title, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

// ============================================================================
// Watchlist Methods
// ============================================================================

// AddToWatchlist adds a symbol to the watchlist.
func (s *SQLiteStore) AddToWatchlist(ctx context.Context, symbol string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO watchlist (symbol, created_at) VALUES (?, ?)
	`, symbol, s.timestamp())
	if err != nil {
		return fmt.Errorf("failed to add to watchlist: %w", err)
	}
	return nil
}

// RemoveFromWatchlist removes a symbol from the watchlist.
func (s *SQLiteStore) RemoveFromWatchlist(ctx context.Context, symbol string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM watchlist WHERE symbol = ?
	`, symbol)
	if err != nil {
		return fmt.Errorf("failed to remove from watchlist: %w", err)
	}
	return nil
}

// GetWatchlist returns watched symbols in insertion order.
func (s *SQLiteStore) GetWatchlist(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT symbol FROM watchlist ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, symbol)
	}

	return symbols, rows.Err()
}

// ============================================================================
// Risk Alert Methods
// ============================================================================

// DismissAlert marks an alert as dismissed.
func (s *SQLiteStore) DismissAlert(ctx context.Context, alertID, title string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO dismissed_alerts (alert_id, title, created_at) VALUES (?, ?, ?)
	`, alertID, title, s.timestamp())
	if err != nil {
		return fmt.Errorf("failed to dismiss alert: %w", err)
	}
	return nil
}

// DismissedAlerts returns the set of dismissed alert ids.
func (s *SQLiteStore) DismissedAlerts(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT alert_id FROM dismissed_alerts`)
	if err != nil {
		return nil, fmt.Errorf("failed to query dismissed alerts: %w", err)
	}
	defer rows.Close()

	dismissed := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan alert id: %w", err)
		}
		dismissed[id] = true
	}

	return dismissed, rows.Err()
}

// AcceptRecommendation logs an accepted recommendation and returns its id.
func (s *SQLiteStore) AcceptRecommendation(ctx context.Context, alertID string) (string, error) {
	return s.logInteraction(ctx, "accept", alertID, "")
}

// AcceptedRecommendations returns accepted recommendations, oldest first.
func (s *SQLiteStore) AcceptedRecommendations(ctx context.Context) ([]Interaction, error) {
	return s.interactions(ctx, "accept")
}

// ============================================================================
// Planner Methods
// ============================================================================

// RescheduleEvent logs a reschedule request and returns its id.
func (s *SQLiteStore) RescheduleEvent(ctx context.Context, eventID, title string) (string, error) {
	return s.logInteraction(ctx, "reschedule", eventID, title)
}

// RescheduledEvents returns reschedule requests, oldest first.
func (s *SQLiteStore) RescheduledEvents(ctx context.Context) ([]Interaction, error) {
	return s.interactions(ctx, "reschedule")
}

func (s *SQLiteStore) logInteraction(ctx context.Context, kind, recordID, title string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (id, kind, record_id, title, created_at) VALUES (?, ?, ?, ?, ?)
	`, id, kind, recordID, title, s.timestamp())
	if err != nil {
		return "", fmt.Errorf("failed to log %s: %w", kind, err)
	}
	return id, nil
}

func (s *SQLiteStore) interactions(ctx context.Context, kind string) ([]Interaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, record_id, COALESCE(title, ''), created_at FROM interactions
		WHERE kind = ? ORDER BY created_at ASC, rowid ASC
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s interactions: %w", kind, err)
	}
	defer rows.Close()

	var result []Interaction
	for rows.Next() {
		var i Interaction
		if err := rows.Scan(&i.ID, &i.RecordID, &i.Title, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		result = append(result, i)
	}

	return result, rows.Err()
}
