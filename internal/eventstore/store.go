// Package eventstore keeps a bounded in-memory history of received events,
// newest first. It backs the feed, alert, and filter views of a consumer.
package eventstore

import (
	"slices"
	"sync"

	"github.com/planetmode/worldstate/internal/domain"
)

// DefaultMax is the history bound used when no explicit capacity is given.
const DefaultMax = 500

// Store is a bounded newest-first event history. Subscribers are notified
// synchronously from Add, in registration order.
type Store struct {
	mu     sync.Mutex
	events []domain.Event
	max    int
	subs   []func(domain.Event)
}

// New creates a store holding at most max events. Non-positive max uses
// DefaultMax.
func New(max int) *Store {
	if max <= 0 {
		max = DefaultMax
	}
	return &Store{max: max}
}

// Add inserts an event at the front, evicting the oldest entry once the
// bound is reached, then notifies subscribers.
func (s *Store) Add(ev domain.Event) {
	s.mu.Lock()
	s.events = append([]domain.Event{ev}, s.events...)
	if len(s.events) > s.max {
		s.events = s.events[:s.max]
	}
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	// Outside the lock so a subscriber may call back into the store.
	for _, fn := range subs {
		fn(ev)
	}
}

// Subscribe registers fn to be called for every subsequent Add.
func (s *Store) Subscribe(fn func(domain.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// All returns a copy of the history, newest first.
func (s *Store) All() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// Recent returns up to n newest events.
func (s *Store) Recent(n int) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.events) {
		n = len(s.events)
	}
	return slices.Clone(s.events[:n])
}

// ByType returns stored events of the given type, newest first.
func (s *Store) ByType(typ domain.EventType) []domain.Event {
	return s.filter(func(ev domain.Event) bool { return ev.Type == typ })
}

// BySeverity returns stored events matching any of the given severities.
func (s *Store) BySeverity(severities ...domain.Severity) []domain.Event {
	return s.filter(func(ev domain.Event) bool {
		return slices.Contains(severities, ev.Severity)
	})
}

// Alerts returns stored high and critical events, newest first.
func (s *Store) Alerts() []domain.Event {
	return s.BySeverity(domain.SeverityHigh, domain.SeverityCritical)
}

func (s *Store) filter(keep func(domain.Event) bool) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Event
	for _, ev := range s.events {
		if keep(ev) {
			out = append(out, ev)
		}
	}
	return out
}
