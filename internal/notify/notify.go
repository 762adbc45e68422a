// Package notify provides toast notifications for the dashboard.
package notify

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ToastType represents the kind of toast.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// String returns the lower-case name of the toast type.
func (t ToastType) String() string {
	switch t {
	case ToastSuccess:
		return "success"
	case ToastWarning:
		return "warning"
	case ToastError:
		return "error"
	default:
		return "info"
	}
}

// MarshalText renders the type by name in JSON output.
func (t ToastType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Toast is a transient notification.
type Toast struct {
	ID        string    `json:"id"`
	Type      ToastType `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler receives every delivered toast.
type Handler func(t Toast)

// Notifier fans toasts out to handlers and keeps a bounded history.
// It is safe for concurrent use; simulated actions notify from timer goroutines.
type Notifier struct {
	mu         sync.RWMutex
	handlers   []Handler
	history    []Toast
	maxHistory int
	enabled    bool
	now        func() time.Time
}

// NewNotifier creates an enabled notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		maxHistory: 50,
		enabled:    true,
		now:        time.Now,
	}
}

// SetClock replaces the timestamp source.
func (n *Notifier) SetClock(now func() time.Time) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.now = now
}

// SetEnabled enables or disables delivery. Error toasts are always delivered.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// Enabled reports whether non-error toasts are delivered.
func (n *Notifier) Enabled() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.enabled
}

// AddHandler registers a handler for subsequent toasts.
func (n *Notifier) AddHandler(h Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers = append(n.handlers, h)
}

// Notify delivers a toast. Missing ids and timestamps are filled in.
func (n *Notifier) Notify(t Toast) {
	n.mu.Lock()
	if !n.enabled && t.Type != ToastError {
		n.mu.Unlock()
		return
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = n.now()
	}
	n.history = append(n.history, t)
	if len(n.history) > n.maxHistory {
		n.history = n.history[len(n.history)-n.maxHistory:]
	}
	handlers := append([]Handler(nil), n.handlers...)
	n.mu.Unlock()

	for _, h := range handlers {
		h(t)
	}
}

// Success sends a success toast.
func (n *Notifier) Success(format string, args ...interface{}) {
	n.Notify(Toast{Type: ToastSuccess, Message: fmt.Sprintf(format, args...)})
}

// Info sends an info toast.
func (n *Notifier) Info(format string, args ...interface{}) {
	n.Notify(Toast{Type: ToastInfo, Message: fmt.Sprintf(format, args...)})
}

// Warning sends a warning toast.
func (n *Notifier) Warning(format string, args ...interface{}) {
	n.Notify(Toast{Type: ToastWarning, Message: fmt.Sprintf(format, args...)})
}

// Error sends an error toast.
func (n *Notifier) Error(format string, args ...interface{}) {
	n.Notify(Toast{Type: ToastError, Message: fmt.Sprintf(format, args...)})
}

// History returns delivered toasts, oldest first.
func (n *Notifier) History() []Toast {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]Toast(nil), n.history...)
}

// Last returns the most recent toast.
func (n *Notifier) Last() (Toast, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if len(n.history) == 0 {
		return Toast{}, false
	}
	return n.history[len(n.history)-1], true
}

// FormatToast formats a toast for terminal display.
func FormatToast(t Toast, colorEnabled bool) string {
	var indicator, color, reset string
	if colorEnabled {
		reset = "\033[0m"
	}

	switch t.Type {
	case ToastSuccess:
		indicator = "✓"
		if colorEnabled {
			color = "\033[32m" // Green
		}
	case ToastWarning:
		indicator = "!"
		if colorEnabled {
			color = "\033[33m" // Yellow
		}
	case ToastError:
		indicator = "✗"
		if colorEnabled {
			color = "\033[31m" // Red
		}
	default:
		indicator = "i"
		if colorEnabled {
			color = "\033[36m" // Cyan
		}
	}

	var sb strings.Builder
	sb.WriteString(color)
	sb.WriteString(indicator)
	sb.WriteString(" ")
	sb.WriteString(t.Message)
	sb.WriteString(reset)
	return sb.String()
}
