package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/performer"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
	"github.com/squaredcircle/ringside/internal/platform/logging"
)

const defaultRescoreWorkers = 4

// Window asks for one performer's buckets earned over [From, To). It is
// how roster ownership periods are scored: each trade slices the season
// into windows without re-running the whole league.
type Window struct {
	Performer string
	From      time.Time
	To        time.Time
}

type WindowResult struct {
	Window  Window
	Buckets scoring.Buckets
}

// RescoreService scores many windows concurrently. Every window folds the
// full date-sorted history from the season start so tournament carry is
// realized inside the correct window, exactly as a full-season run would
// place it; since the fold is deterministic, concurrent windows need no
// coordination.
type RescoreService struct {
	aggregator *AggregateService
	maxWorkers int
	logger     *logging.Logger
}

func NewRescoreService(aggregator *AggregateService, maxWorkers int, logger *logging.Logger) *RescoreService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultRescoreWorkers
	}
	return &RescoreService{aggregator: aggregator, maxWorkers: maxWorkers, logger: logger}
}

func (s *RescoreService) ScoreWindows(ctx context.Context, events []event.Event, windows []Window) ([]WindowResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RescoreService.ScoreWindows")
	defer span.End()

	if len(windows) == 0 {
		return []WindowResult{}, nil
	}

	sorted := SortEventsByDate(events)
	results := make(chan WindowResult, len(windows))

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return nil, fmt.Errorf("create rescore worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, window := range windows {
		window := window
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- WindowResult{
				Window:  window,
				Buckets: s.scoreWindow(ctx, sorted, window),
			}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit window to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]WindowResult, 0, len(windows))
	for row := range results {
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Window.Performer != out[j].Window.Performer {
			return out[i].Window.Performer < out[j].Window.Performer
		}
		return out[i].Window.From.Before(out[j].Window.From)
	})
	return out, nil
}

func (s *RescoreService) scoreWindow(ctx context.Context, sorted []event.Event, window Window) scoring.Buckets {
	target := performer.Slugify(window.Performer)
	ledger := scoring.NewCarryLedger()
	var buckets scoring.Buckets

	for _, ev := range sorted {
		if !window.To.IsZero() && !ev.Date.Before(window.To) {
			break
		}
		var delta scoring.SeasonTotals
		delta, ledger = s.aggregator.AggregateEvent(ctx, ev, ledger)
		if ev.Date.Before(window.From) {
			continue
		}
		buckets = buckets.Plus(delta[target])
	}
	return buckets
}
