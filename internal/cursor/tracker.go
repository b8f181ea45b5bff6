// Package cursor tracks the last known local position of each remote
// session so motion events can carry relative deltas.
package cursor

import (
	"sync"

	"github.com/Venorrak/greenheatgd/internal/geom"
)

// DefaultCapacity bounds the number of tracked sessions. Audience churn on
// a busy channel would otherwise grow the map for the life of the process.
const DefaultCapacity = 1024

// Tracker holds per-session cursor positions. It is safe for concurrent
// use, though the ingestion loop drives it from a single goroutine.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	last     map[string]geom.Vec2
	order    []string // insertion order, oldest first
}

// NewTracker returns a Tracker bounded to capacity sessions. A capacity
// of zero or less uses DefaultCapacity.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{
		capacity: capacity,
		last:     make(map[string]geom.Vec2),
	}
}

// Update records pos as the session's last known position and returns the
// position together with the delta from the previous one. A session seen
// for the first time gets a zero delta; no prior entry is fabricated.
func (t *Tracker) Update(sessionID string, pos geom.Vec2) (geom.Vec2, geom.Vec2) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev, seen := t.last[sessionID]
	var delta geom.Vec2
	if seen {
		delta = pos.Sub(prev)
	}

	if !seen {
		if len(t.last) >= t.capacity {
			t.evictOldest()
		}
		t.order = append(t.order, sessionID)
	}
	t.last[sessionID] = pos

	return pos, delta
}

// Len reports the number of tracked sessions.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.last)
}

// Forget drops a session's stored position, if any.
func (t *Tracker) Forget(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.last[sessionID]; !ok {
		return
	}
	delete(t.last, sessionID)
	t.removeFromOrder(sessionID)
}

func (t *Tracker) evictOldest() {
	if len(t.order) == 0 {
		return
	}
	oldest := t.order[0]
	t.order = t.order[1:]
	delete(t.last, oldest)
}

func (t *Tracker) removeFromOrder(sessionID string) {
	for i, id := range t.order {
		if id == sessionID {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}
