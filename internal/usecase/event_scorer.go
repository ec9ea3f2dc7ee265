package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
	"github.com/squaredcircle/ringside/internal/platform/cache"
	"github.com/squaredcircle/ringside/internal/platform/logging"
	"github.com/squaredcircle/ringside/internal/platform/resilience"
)

// ScoreService turns one event record into a per-match, per-participant
// point ledger. Scoring is a pure function of the record, so results are
// cached by event id; singleflight collapses concurrent scoring of the
// same event.
type ScoreService struct {
	calc   *Calculator
	store  *cache.Store
	flight resilience.SingleFlight
	logger *logging.Logger
}

func NewScoreService(calc *Calculator, store *cache.Store, logger *logging.Logger) *ScoreService {
	if logger == nil {
		logger = logging.Default()
	}
	if calc == nil {
		calc = NewCalculator(logger)
	}
	return &ScoreService{calc: calc, store: store, logger: logger}
}

// ScoreEvent scores every match of the event. It never fails: malformed
// matches degrade to skipped or zero-point entries with a warning.
func (s *ScoreService) ScoreEvent(ctx context.Context, ev event.Event) scoring.ScoredEvent {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.ScoreEvent")
	defer span.End()

	if s.store == nil || ev.ID == "" {
		return s.scoreEventOnce(ctx, ev)
	}

	key := "score:event:" + ev.ID
	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.store.Get(ctx, key); ok {
			return cached, nil
		}
		scored := s.scoreEventOnce(ctx, ev)
		s.store.Set(ctx, key, scored)
		return scored, nil
	})
	if err != nil {
		// The loader cannot fail; keep the degenerate path total anyway.
		return s.scoreEventOnce(ctx, ev)
	}
	return value.(scoring.ScoredEvent)
}

func (s *ScoreService) scoreEventOnce(ctx context.Context, raw event.Event) scoring.ScoredEvent {
	ev := ApplyCorrections(raw)
	evType := event.Classify(ev.Name, ev.ID)
	if evType == event.TypeUnknown {
		s.logger.WarnContext(ctx, "unknown event type, scoring with zero schedule",
			"event_id", ev.ID,
			"event_name", ev.Name,
		)
	}

	out := scoring.ScoredEvent{
		EventID:   ev.ID,
		EventName: ev.Name,
		EventType: evType.String(),
		Matches:   make([]scoring.ScoredMatch, 0, len(ev.Matches)),
	}

	for idx, m := range ev.Matches {
		if m.IsInvalid() {
			s.logger.WarnContext(ctx, "skipping unparseable match",
				"event_id", ev.ID,
				"match_order", m.Order,
			)
			continue
		}

		if m.IsPromoSegment() {
			out.Matches = append(out.Matches, scoring.ScoredMatch{
				Order:          m.Order,
				Result:         m.Result,
				IsPromoSegment: true,
				Participants:   []string{},
			})
			continue
		}

		ex := ExtractMatch(m)
		if ex.Unclear {
			s.logger.WarnContext(ctx, "unclear match result, paying appearance only",
				"event_id", ev.ID,
				"match_order", m.Order,
				"result", m.Result,
			)
		}

		roster := matchRoster(ex, m)
		scoredMatch := scoring.ScoredMatch{
			Order:        m.Order,
			Participants: roster,
			Result:       m.Result,
		}
		for _, name := range roster {
			scoredMatch.PerParticipant = append(scoredMatch.PerParticipant,
				s.calc.ScoreParticipant(ev, evType, idx, ex, name))
		}
		out.Matches = append(out.Matches, scoredMatch)
	}

	sort.SliceStable(out.Matches, func(i, j int) bool {
		return out.Matches[i].Order < out.Matches[j].Order
	})
	return out
}

// matchRoster is the slug-deduped union of the extracted individuals, the
// entry-log entrants and the team-list members. Result-only mass-entry
// records often name just the winner in free text while the structured
// logs carry every entrant who earned entry, elimination or rank credit.
func matchRoster(ex Extraction, m event.MatchRecord) []string {
	seen := make(map[string]struct{}, len(ex.Individuals))
	out := make([]string, 0, len(ex.Individuals))
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := slugKey(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}

	for _, name := range ex.Individuals {
		add(name)
	}
	for _, entry := range m.Entries {
		add(entry.Name)
	}
	for _, team := range m.Teams {
		for _, member := range team.Members {
			add(member)
		}
	}
	return out
}
