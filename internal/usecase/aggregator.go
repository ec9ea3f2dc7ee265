package usecase

import (
	"context"
	"sort"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/performer"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
	"github.com/squaredcircle/ringside/internal/platform/logging"
)

// AggregateService folds scored events into per-performer season buckets,
// threading the tournament-carry ledger through the date-sorted sequence.
// All state lives in explicit accumulator values, so the same history
// always reproduces the same totals and partial re-runs line up with full
// re-runs.
type AggregateService struct {
	scorer *ScoreService
	logger *logging.Logger
}

func NewAggregateService(scorer *ScoreService, logger *logging.Logger) *AggregateService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AggregateService{scorer: scorer, logger: logger}
}

// Aggregate scores a whole season: events are sorted by date and folded
// with a fresh carry ledger. The fold is associative over date-contiguous
// partitions of the same event set.
func (a *AggregateService) Aggregate(ctx context.Context, events []event.Event) scoring.SeasonTotals {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregateService.Aggregate")
	defer span.End()

	totals := make(scoring.SeasonTotals)
	ledger := scoring.NewCarryLedger()
	for _, ev := range SortEventsByDate(events) {
		var delta scoring.SeasonTotals
		delta, ledger = a.AggregateEvent(ctx, ev, ledger)
		totals.Merge(delta)
	}
	return totals
}

// AggregateEvent is the incremental variant: one event in, the point deltas
// and the next ledger out. The input ledger is never mutated.
func (a *AggregateService) AggregateEvent(ctx context.Context, ev event.Event, ledgerIn *scoring.CarryLedger) (scoring.SeasonTotals, *scoring.CarryLedger) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregateService.AggregateEvent")
	defer span.End()

	ledger := ledgerIn.Clone()
	totals := make(scoring.SeasonTotals)

	evType := event.Classify(ev.Name, ev.ID)
	isFinale := evType == event.TypeKingAndQueenOfTheRing
	scored := a.scorer.ScoreEvent(ctx, ev)

	for _, match := range scored.Matches {
		for _, p := range match.PerParticipant {
			canonical := performer.Canonicalize(p.Performer, ev.Date)

			var delta scoring.Buckets
			nonTitle := p.Total - p.TitlePoints
			switch {
			case evType.IsWeekly():
				delta.WeeklyShow = nonTitle
			case evType.IsPremium():
				delta.PremiumEvent = nonTitle
			}
			delta.TitleHolding = p.TitlePoints

			if p.Carry > 0 && p.CarryStage != scoring.CarryNone {
				ledger.Add(canonical, p.CarryStage, p.CarryBracket, p.Carry)
			}
			if isFinale {
				// The finale is the only point where carried qualifier and
				// semifinal points become real; the ledger entry zeroes out
				// as it pays.
				delta.PremiumEvent += ledger.Realize(canonical)
			}

			totals.Add(canonical, delta)
		}
	}

	return totals, ledger
}

// SortEventsByDate returns a date-ascending copy; ties break by id so the
// fold order is deterministic.
func SortEventsByDate(events []event.Event) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
