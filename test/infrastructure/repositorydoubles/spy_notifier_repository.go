//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sync"

	"github.com/rios0rios0/codependence/internal/domain/entities"
	"github.com/rios0rios0/codependence/internal/domain/repositories"
)

// SpyNotifierRepository records every event it receives.
type SpyNotifierRepository struct {
	mu     sync.Mutex
	events []entities.Event
}

var _ repositories.NotifierRepository = (*SpyNotifierRepository)(nil)

func (s *SpyNotifierRepository) Notify(event entities.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns the recorded events in arrival order.
func (s *SpyNotifierRepository) Events() []entities.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Event(nil), s.events...)
}

// AtLevel returns the recorded events of one level.
func (s *SpyNotifierRepository) AtLevel(level entities.EventLevel) []entities.Event {
	filtered := make([]entities.Event, 0)
	for _, event := range s.Events() {
		if event.Level == level {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

// Messages returns the messages of the recorded events of one level.
func (s *SpyNotifierRepository) Messages(level entities.EventLevel) []string {
	events := s.AtLevel(level)
	messages := make([]string, 0, len(events))
	for _, event := range events {
		messages = append(messages, event.Message)
	}
	return messages
}

// DummyNotifierRepository discards every event.
type DummyNotifierRepository struct{}

var _ repositories.NotifierRepository = (*DummyNotifierRepository)(nil)

func (d *DummyNotifierRepository) Notify(_ entities.Event) {}
