package usecase

import (
	"strings"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/performer"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
	"github.com/squaredcircle/ringside/internal/platform/logging"
)

// matchKind routes a match to its scoring engine. Everything that is not a
// recognized special match scores on the ordinary event-type schedule.
type matchKind int

const (
	kindOrdinary matchKind = iota
	kindRumble
	kindWarGames
	kindChamber
	kindLadder
	kindTournamentFinal
)

// Calculator computes per-participant point breakdowns. It is stateless;
// every call is a pure function of the match, its event and its siblings.
type Calculator struct {
	logger *logging.Logger
}

func NewCalculator(logger *logging.Logger) *Calculator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Calculator{logger: logger}
}

// ScoreParticipant produces the breakdown for one named participant of the
// match at index idx on the event's card. The sibling matches are needed
// for main-event determination only.
func (c *Calculator) ScoreParticipant(ev event.Event, evType event.Type, idx int, ex Extraction, name string) scoring.ScoredParticipant {
	p := scoring.ScoredParticipant{Performer: name}
	m := ev.Matches[idx]

	switch classifyMatchKind(evType, m) {
	case kindRumble:
		c.scoreRumble(&p, m, ex, name)
	case kindWarGames:
		c.scoreWarGames(&p, m, ex, name)
	case kindChamber:
		c.scoreChamber(&p, m, ex, name)
	case kindLadder:
		c.scoreLadder(&p, m, ex, name)
	case kindTournamentFinal:
		c.scoreTournamentFinal(&p, ex, name)
	default:
		c.scoreOrdinary(&p, ev, evType, idx, ex, name)
		if evType.IsWeekly() {
			c.awardTournamentCarry(&p, ev, m, ex, name)
		}
	}

	// Title bonuses are independent of the match engine and always land in
	// the title bucket.
	c.awardTitleBonus(&p, m, ex, name)

	p.Finalize()
	return p
}

func classifyMatchKind(evType event.Type, m event.MatchRecord) matchKind {
	text := strings.ToLower(m.Stipulation + " " + m.Result + " " + m.Round)
	switch evType {
	case event.TypeRoyalRumble:
		if len(m.Entries) > 0 || strings.Contains(text, "rumble match") || strings.Contains(text, "won the royal rumble") {
			return kindRumble
		}
	case event.TypeSurvivorSeries:
		if len(m.Teams) > 0 || strings.Contains(text, "wargames") || strings.Contains(text, "war games") {
			return kindWarGames
		}
	case event.TypeEliminationChamber:
		if strings.Contains(text, "chamber") {
			return kindChamber
		}
	case event.TypeMoneyInTheBank:
		if strings.Contains(text, "ladder") || strings.Contains(text, "briefcase") || strings.Contains(text, "money in the bank") {
			return kindLadder
		}
	case event.TypeKingAndQueenOfTheRing:
		if isTournamentFinal(m) {
			return kindTournamentFinal
		}
	}
	return kindOrdinary
}

func (c *Calculator) scoreOrdinary(p *scoring.ScoredParticipant, ev event.Event, evType event.Type, idx int, ex Extraction, name string) {
	sched := scoring.ScheduleFor(evType)
	if sched.IsZero() {
		return
	}

	p.MatchPoints += sched.OnCard
	p.Breakdown.Add("on card", sched.OnCard)

	inMainEvent := mainEventIndexes(ev.Matches, sched.SingleMainEvent)[idx]
	if inMainEvent {
		p.MainEventPoints += sched.MainEvent
		p.Breakdown.Add("main event", sched.MainEvent)
	}

	if isNoContest(ev.Matches[idx]) || ex.Unclear {
		return
	}
	if !containsFold(ex.Winners, name) {
		return
	}

	win := sched.Win
	if isDisqualification(ev.Matches[idx]) {
		win = sched.Win / 2
		p.Breakdown.Add("win (by DQ)", win)
	} else {
		p.Breakdown.Add("win", win)
	}
	p.MatchPoints += win

	if inMainEvent {
		p.MainEventPoints += sched.MainEventWin
		p.Breakdown.Add("main event win", sched.MainEventWin)
	}
}

// mainEventIndexes resolves which card slots count as the main event.
// An explicit flag wins; otherwise the highest card order does. When every
// match shares one order value the data is legacy-ambiguous and only the
// last match in card sequence counts. single further restricts the answer
// to one match, ties broken by latest card position.
func mainEventIndexes(matches []event.MatchRecord, single bool) map[int]bool {
	out := make(map[int]bool, 1)
	if len(matches) == 0 {
		return out
	}

	var candidates []int
	for i, m := range matches {
		if m.IsMainEvent {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		maxOrder := matches[0].Order
		allEqual := true
		for _, m := range matches[1:] {
			if m.Order != matches[0].Order {
				allEqual = false
			}
			if m.Order > maxOrder {
				maxOrder = m.Order
			}
		}
		if allEqual {
			out[len(matches)-1] = true
			return out
		}
		for i, m := range matches {
			if m.Order == maxOrder {
				candidates = append(candidates, i)
			}
		}
	}

	if single && len(candidates) > 1 {
		candidates = candidates[len(candidates)-1:]
	}
	for _, i := range candidates {
		out[i] = true
	}
	return out
}

func (c *Calculator) awardTitleBonus(p *scoring.ScoredParticipant, m event.MatchRecord, ex Extraction, name string) {
	if strings.TrimSpace(m.Title) == "" {
		return
	}

	switch m.TitleOutcome {
	case event.TitleOutcomeNewChampion:
		if containsFold(ex.Winners, name) {
			p.TitlePoints += scoring.TitleChangeBonus
			p.Breakdown.Add("won "+m.Title, scoring.TitleChangeBonus)
		}
	case event.TitleOutcomeRetained:
		if isDefender(m, ex, name) {
			p.TitlePoints += scoring.TitleDefenseBonus
			p.Breakdown.Add("defended "+m.Title, scoring.TitleDefenseBonus)
		}
	case event.TitleOutcomeRetainedDQ:
		if isDefender(m, ex, name) {
			p.TitlePoints += scoring.TitleDefenseDQBonus
			p.Breakdown.Add("retained "+m.Title+" (DQ)", scoring.TitleDefenseDQBonus)
		}
	}
}

// isDefender identifies the defending champion's side: the explicit field
// when present, otherwise the match winner.
func isDefender(m event.MatchRecord, ex Extraction, name string) bool {
	if defender := strings.TrimSpace(m.TitleDefender); defender != "" {
		return performer.Slugify(defender) == performer.Slugify(name) ||
			strings.Contains(strings.ToLower(defender), strings.ToLower(name))
	}
	return containsFold(ex.Winners, name)
}

func slugKey(name string) string {
	return performer.Slugify(name)
}

func slugEqual(a, b string) bool {
	return performer.Slugify(a) == performer.Slugify(b)
}

func containsSlug(list []string, name string) bool {
	for _, item := range list {
		if slugEqual(item, name) {
			return true
		}
	}
	return false
}
