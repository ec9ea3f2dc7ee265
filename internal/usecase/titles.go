package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/performer"
	"github.com/squaredcircle/ringside/internal/domain/reign"
	"github.com/squaredcircle/ringside/internal/platform/logging"
)

// TitleService computes the recurring championship-holding bonus. It is
// independent of match scoring; the caller merges its output into the
// title-holding bucket.
type TitleService struct {
	logger *logging.Logger
}

func NewTitleService(logger *logging.Logger) *TitleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TitleService{logger: logger}
}

// ComputeTitleHolding awards the tier bonus once per completed calendar
// month to whoever holds each title at that month's close. The walk runs
// from the first eligible month end through the most recently fully
// elapsed month; the in-progress month never pays.
func (s *TitleService) ComputeTitleHolding(ctx context.Context, reigns []reign.Reign, now time.Time) map[string]int {
	_, span := startUsecaseSpan(ctx, "usecase.TitleService.ComputeTitleHolding")
	defer span.End()

	totals := make(map[string]int)
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for monthEnd := reign.FirstEligibleMonthEnd; monthEnd.Before(currentMonthStart); monthEnd = nextMonthEnd(monthEnd) {
		for _, r := range reigns {
			if !r.HeldOn(monthEnd) {
				continue
			}
			canonical := performer.Canonicalize(r.Performer, monthEnd)
			totals[canonical] += reign.TierBonus(r.Title)
		}
	}
	return totals
}

// nextMonthEnd advances from one month's last day to the next month's.
// Day zero of month+2 is how the standard library spells "last day of
// month+1" regardless of length.
func nextMonthEnd(monthEnd time.Time) time.Time {
	return time.Date(monthEnd.Year(), monthEnd.Month()+2, 0, 0, 0, 0, 0, time.UTC)
}

// InferReignsFromEvents rebuilds reign intervals from title-change matches
// when no explicit reign history exists. Only changes on or after the
// program start date count; an open reign closes the moment a later change
// for the same title appears.
func (s *TitleService) InferReignsFromEvents(ctx context.Context, events []event.Event) []reign.Reign {
	ctx, span := startUsecaseSpan(ctx, "usecase.TitleService.InferReignsFromEvents")
	defer span.End()

	var reigns []reign.Reign
	openByTitle := make(map[string][]int)

	for _, raw := range SortEventsByDate(events) {
		if raw.Date.Before(reign.ProgramStart) {
			continue
		}
		ev := ApplyCorrections(raw)

		for _, m := range ev.Matches {
			if m.Title == "" || m.TitleOutcome != event.TitleOutcomeNewChampion {
				continue
			}

			ex := ExtractMatch(m)
			if len(ex.Winners) == 0 {
				s.logger.WarnContext(ctx, "title change without an extractable winner",
					"event_id", ev.ID,
					"title", m.Title,
				)
				continue
			}

			titleKey := performer.Slugify(m.Title)
			changedAt := ev.Date
			for _, idx := range openByTitle[titleKey] {
				lost := changedAt
				reigns[idx].LostAt = &lost
			}
			openByTitle[titleKey] = openByTitle[titleKey][:0]

			for _, winner := range ex.Winners {
				reigns = append(reigns, reign.Reign{
					Performer: winner,
					Title:     m.Title,
					WonAt:     changedAt,
				})
				openByTitle[titleKey] = append(openByTitle[titleKey], len(reigns)-1)
			}
		}
	}

	sort.SliceStable(reigns, func(i, j int) bool {
		if !reigns[i].WonAt.Equal(reigns[j].WonAt) {
			return reigns[i].WonAt.Before(reigns[j].WonAt)
		}
		if reigns[i].Title != reigns[j].Title {
			return reigns[i].Title < reigns[j].Title
		}
		return reigns[i].Performer < reigns[j].Performer
	})
	return reigns
}
