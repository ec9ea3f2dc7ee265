package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/squaredcircle/ringside/internal/platform/logging"
)

func testRescoreService(workers int) *RescoreService {
	logger := logging.NewNop()
	return NewRescoreService(testAggregateService(), workers, logger)
}

func TestScoreWindows_SlicesSeasonByOwnership(t *testing.T) {
	t.Parallel()

	season := kotrSeason()
	windows := []Window{
		{Performer: "P", From: utc(2025, time.May, 1), To: utc(2025, time.June, 1)},
		{Performer: "P", From: utc(2025, time.June, 1), To: utc(2025, time.July, 1)},
	}

	results, err := testRescoreService(2).ScoreWindows(context.Background(), season, windows)
	if err != nil {
		t.Fatalf("ScoreWindows error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(results))
	}

	// May window: the two weekly qualifier wins, nothing premium yet.
	may := results[0]
	if may.Buckets.WeeklyShow != 6 || may.Buckets.PremiumEvent != 0 {
		t.Fatalf("may window = %+v", may.Buckets)
	}

	// June window: the finale, including the carry banked back in May.
	june := results[1]
	if june.Buckets.PremiumEvent != 33 || june.Buckets.WeeklyShow != 0 {
		t.Fatalf("june window = %+v", june.Buckets)
	}
}

func TestScoreWindows_SumOfWindowsMatchesFullSeason(t *testing.T) {
	t.Parallel()

	season := kotrSeason()
	full := testAggregateService().Aggregate(context.Background(), season)

	windows := []Window{
		{Performer: "P", From: utc(2025, time.January, 1), To: utc(2025, time.June, 1)},
		{Performer: "P", From: utc(2025, time.June, 1)},
	}
	results, err := testRescoreService(0).ScoreWindows(context.Background(), season, windows)
	if err != nil {
		t.Fatalf("ScoreWindows error: %v", err)
	}

	sum := results[0].Buckets.Plus(results[1].Buckets)
	if sum != full["p"] {
		t.Fatalf("window sum %+v != season total %+v", sum, full["p"])
	}
}

func TestScoreWindows_ResultsSortedDeterministically(t *testing.T) {
	t.Parallel()

	season := kotrSeason()
	windows := []Window{
		{Performer: "S", From: utc(2025, time.June, 1)},
		{Performer: "P", From: utc(2025, time.June, 1)},
		{Performer: "P", From: utc(2025, time.May, 1), To: utc(2025, time.June, 1)},
	}

	results, err := testRescoreService(3).ScoreWindows(context.Background(), season, windows)
	if err != nil {
		t.Fatalf("ScoreWindows error: %v", err)
	}

	if results[0].Window.Performer != "P" || !results[0].Window.From.Equal(utc(2025, time.May, 1)) {
		t.Fatalf("first result = %+v", results[0].Window)
	}
	if results[1].Window.Performer != "P" || results[2].Window.Performer != "S" {
		t.Fatalf("unexpected order: %+v", results)
	}
}

func TestScoreWindows_Empty(t *testing.T) {
	t.Parallel()

	results, err := testRescoreService(1).ScoreWindows(context.Background(), kotrSeason(), nil)
	if err != nil {
		t.Fatalf("ScoreWindows error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
