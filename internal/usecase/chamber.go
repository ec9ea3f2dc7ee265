package usecase

import (
	"strings"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
)

// scoreChamber applies the single-elimination gauntlet schedule for the
// bracket match itself: flat participation, per-elimination credit, a
// winner award and a longest-lasting award. Qualifier matches for the
// bracket happen on weekly shows and score on the ordinary schedule.
func (c *Calculator) scoreChamber(p *scoring.ScoredParticipant, m event.MatchRecord, ex Extraction, name string) {
	if !containsSlug(ex.Individuals, name) {
		return
	}

	p.SpecialPoints += scoring.ChamberEntryAward
	p.Breakdown.Add("chamber entry", scoring.ChamberEntryAward)

	if elims := eliminationCount(m, name); elims > 0 {
		credit := elims * scoring.ChamberEliminationAward
		p.SpecialPoints += credit
		p.Breakdown.Add("eliminations", credit)
	}

	if longest := chamberLongestLasting(m, ex); longest != "" && slugEqual(longest, name) {
		p.SpecialPoints += scoring.ChamberLongestAward
		p.Breakdown.Add("longest lasting", scoring.ChamberLongestAward)
	}

	if containsFold(ex.Winners, name) {
		p.SpecialPoints += scoring.ChamberWinnerAward
		p.Breakdown.Add("chamber winner", scoring.ChamberWinnerAward)
	}
}

// chamberLongestLasting prefers the explicit field and otherwise infers the
// last performer eliminated before the winner from the elimination log.
func chamberLongestLasting(m event.MatchRecord, ex Extraction) string {
	if explicit := strings.TrimSpace(m.LongestLasting); explicit != "" && containsSlug(ex.Individuals, explicit) {
		return explicit
	}

	last, lastOrder := "", 0
	for _, elim := range m.Eliminations {
		if elim.Order > lastOrder {
			last, lastOrder = elim.Name, elim.Order
		}
	}
	return last
}

// scoreLadder applies the briefcase ladder-match schedule: reaching the
// match pays a flat award and the briefcase winner a larger one. Qualifying
// matches score on the ordinary schedule.
func (c *Calculator) scoreLadder(p *scoring.ScoredParticipant, m event.MatchRecord, ex Extraction, name string) {
	if !containsSlug(ex.Individuals, name) {
		return
	}

	p.SpecialPoints += scoring.LadderEntryAward
	p.Breakdown.Add("ladder match", scoring.LadderEntryAward)

	if containsFold(ex.Winners, name) {
		p.SpecialPoints += scoring.LadderWinnerAward
		p.Breakdown.Add("briefcase winner", scoring.LadderWinnerAward)
	}
}
