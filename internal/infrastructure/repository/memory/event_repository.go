package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/squaredcircle/ringside/internal/domain/event"
)

type EventRepository struct {
	mu     sync.RWMutex
	events map[string]event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	index := make(map[string]event.Event, len(events))
	for _, ev := range events {
		index[ev.ID] = ev
	}
	return &EventRepository{events: index}
}

func (r *EventRepository) ListAll(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev)
	}
	sortEvents(out)

	return out, nil
}

func (r *EventRepository) ListByDateRange(_ context.Context, from, to time.Time) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Date.Before(from) || !ev.Date.Before(to) {
			continue
		}
		out = append(out, ev)
	}
	sortEvents(out)

	return out, nil
}

func (r *EventRepository) Upsert(_ context.Context, ev event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[ev.ID] = ev

	return nil
}

func sortEvents(events []event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].ID < events[j].ID
	})
}
