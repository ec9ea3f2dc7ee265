package slamstats

import (
	"strings"
	"time"

	"github.com/squaredcircle/ringside/internal/domain/event"
)

// eventsEnvelope is one page of the provider's /events listing.
type eventsEnvelope struct {
	Data []eventPayload `json:"data"`
	Meta pageMeta       `json:"meta"`
}

type pageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

type eventPayload struct {
	ID      string              `json:"id" validate:"required"`
	Name    string              `json:"name" validate:"required"`
	Date    string              `json:"date" validate:"required"`
	Matches []event.MatchRecord `json:"matches"`
}

func (p eventPayload) toDomain() (event.Event, error) {
	date, err := parseProviderDate(p.Date)
	if err != nil {
		return event.Event{}, err
	}
	return event.Event{
		ID:      strings.TrimSpace(p.ID),
		Name:    strings.TrimSpace(p.Name),
		Date:    date,
		Matches: p.Matches,
	}, nil
}

func parseProviderDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)

	layouts := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
