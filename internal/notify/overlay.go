package notify

import (
	"sync"
	"time"
)

// Overlay keeps the most recent toasts visible for a limited time.
type Overlay struct {
	toasts     []Toast
	maxVisible int
	ttl        time.Duration
	now        func() time.Time
	mu         sync.RWMutex
}

// NewOverlay creates a new toast overlay.
func NewOverlay(maxVisible int, ttl time.Duration) *Overlay {
	if maxVisible <= 0 {
		maxVisible = 3
	}
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &Overlay{
		toasts:     make([]Toast, 0, maxVisible),
		maxVisible: maxVisible,
		ttl:        ttl,
		now:        time.Now,
	}
}

// TTL returns how long a toast stays visible.
func (o *Overlay) TTL() time.Duration {
	return o.ttl
}

// Add adds a toast, dropping expired and overflowing ones. A toast without a
// timestamp is stamped with the current time.
func (o *Overlay) Add(t Toast) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if t.Timestamp.IsZero() {
		t.Timestamp = o.now()
	}

	o.toasts = o.activeLocked(t.Timestamp)
	o.toasts = append(o.toasts, t)
	if len(o.toasts) > o.maxVisible {
		o.toasts = o.toasts[len(o.toasts)-o.maxVisible:]
	}
}

// Visible returns the toasts still alive at now.
func (o *Overlay) Visible(now time.Time) []Toast {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.activeLocked(now)
}

// Expire removes the toast with the given id.
func (o *Overlay) Expire(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	kept := o.toasts[:0]
	for _, t := range o.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	o.toasts = kept
}

// Clear removes every toast, as the dismiss key does.
func (o *Overlay) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.toasts = o.toasts[:0]
}

func (o *Overlay) activeLocked(now time.Time) []Toast {
	active := make([]Toast, 0, len(o.toasts))
	for _, t := range o.toasts {
		if now.Sub(t.Timestamp) < o.ttl {
			active = append(active, t)
		}
	}
	return active
}
