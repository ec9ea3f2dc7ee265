package usecase

import (
	"regexp"
	"strings"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
)

var (
	ironStatRegex      = regexp.MustCompile(`(?i)(?:iron\s*(?:man|woman|person)|most\s+time)[:\s]+([^;,\n(]+)`)
	mostElimsStatRegex = regexp.MustCompile(`(?i)most\s+eliminations?[:\s]+([^;,\n(]+)`)
)

// scoreRumble applies the mass-entry elimination schedule: flat entry
// award, per-elimination credit, a most-time-in-ring award, a most-
// eliminations award (shared on exact ties) and a winner award. Everything
// books into the mass-entry component.
func (c *Calculator) scoreRumble(p *scoring.ScoredParticipant, m event.MatchRecord, ex Extraction, name string) {
	if !isMassEntryParticipant(m, ex, name) {
		return
	}

	p.MassEntryPoints += scoring.RumbleEntryAward
	p.Breakdown.Add("rumble entry", scoring.RumbleEntryAward)

	if elims := eliminationCount(m, name); elims > 0 {
		credit := elims * scoring.RumbleEliminationAward
		p.MassEntryPoints += credit
		p.Breakdown.Add("eliminations", credit)
	}

	if iron := c.ironPerson(m, ex); iron != "" && slugEqual(iron, name) {
		p.MassEntryPoints += scoring.RumbleIronPersonAward
		p.Breakdown.Add("most time in ring", scoring.RumbleIronPersonAward)
	}

	if hasMostEliminations(m, ex, name) {
		p.MassEntryPoints += scoring.RumbleMostElimsAward
		p.Breakdown.Add("most eliminations", scoring.RumbleMostElimsAward)
	}

	if containsFold(ex.Winners, name) {
		p.MassEntryPoints += scoring.RumbleWinnerAward
		p.Breakdown.Add("rumble winner", scoring.RumbleWinnerAward)
	}
}

func isMassEntryParticipant(m event.MatchRecord, ex Extraction, name string) bool {
	if containsSlug(ex.Individuals, name) {
		return true
	}
	for _, entry := range m.Entries {
		if slugEqual(entry.Name, name) {
			return true
		}
	}
	return false
}

// eliminationCount prefers the per-entrant tally from the entry log and
// falls back to counting rows of the elimination log credited to the name.
func eliminationCount(m event.MatchRecord, name string) int {
	for _, entry := range m.Entries {
		if slugEqual(entry.Name, name) && entry.Eliminations > 0 {
			return entry.Eliminations
		}
	}
	count := 0
	for _, elim := range m.Eliminations {
		if slugEqual(elim.By, name) {
			count++
		}
	}
	return count
}

// ironPerson picks the most-time-in-ring performer. Source precedence:
// explicit field, entry-log durations, entry-number-vs-elimination-order
// derivation, free-text statistics scan. Every source is filtered against
// match membership so a typo cannot award an absent name, and a
// disagreement between the explicit field and the derived answer is logged
// rather than silently resolved; the explicit field still wins.
func (c *Calculator) ironPerson(m event.MatchRecord, ex Extraction) string {
	derived := deriveIronPerson(m)

	if explicit := strings.TrimSpace(m.IronPerson); explicit != "" && isMassEntryParticipant(m, ex, explicit) {
		if derived != "" && !slugEqual(derived, explicit) {
			c.logger.Warn("iron person sources disagree",
				"explicit", explicit,
				"derived", derived,
			)
		}
		return explicit
	}
	if derived != "" {
		return derived
	}

	if groups := ironStatRegex.FindStringSubmatch(m.Statistics); groups != nil {
		candidate := strings.TrimSpace(groups[1])
		if isMassEntryParticipant(m, ex, candidate) {
			return candidate
		}
	}
	return ""
}

func deriveIronPerson(m event.MatchRecord) string {
	if len(m.Entries) == 0 {
		return ""
	}

	// Durations, when logged, settle it directly.
	best, bestDuration := "", 0
	for _, entry := range m.Entries {
		if entry.DurationSeconds > bestDuration {
			best, bestDuration = entry.Name, entry.DurationSeconds
		}
	}
	if best != "" {
		return best
	}

	if len(m.Eliminations) == 0 {
		return ""
	}

	// Otherwise approximate time in ring as elimination position minus
	// entry number: early entrants eliminated late lasted longest. The
	// winner is never eliminated and gets the slot past the last log row.
	elimOrder := make(map[string]int, len(m.Eliminations))
	maxOrder := 0
	for _, elim := range m.Eliminations {
		elimOrder[slugKey(elim.Name)] = elim.Order
		if elim.Order > maxOrder {
			maxOrder = elim.Order
		}
	}

	bestScore := 0
	bestNumber := 0
	for _, entry := range m.Entries {
		order, eliminated := elimOrder[slugKey(entry.Name)]
		if !eliminated {
			order = maxOrder + 1
		}
		score := order - entry.Number
		if best == "" || score > bestScore || (score == bestScore && entry.Number < bestNumber) {
			best, bestScore, bestNumber = entry.Name, score, entry.Number
		}
	}
	return best
}

// hasMostEliminations reports whether the name ties for the top elimination
// count; exact ties all receive the award. The explicit statistics field is
// honored first when it names a participant.
func hasMostEliminations(m event.MatchRecord, ex Extraction, name string) bool {
	if groups := mostElimsStatRegex.FindStringSubmatch(m.Statistics); groups != nil {
		candidate := strings.TrimSpace(groups[1])
		if isMassEntryParticipant(m, ex, candidate) {
			return slugEqual(candidate, name)
		}
	}

	own := eliminationCount(m, name)
	if own == 0 {
		return false
	}
	for _, other := range massEntryNames(m, ex) {
		if eliminationCount(m, other) > own {
			return false
		}
	}
	return true
}

func massEntryNames(m event.MatchRecord, ex Extraction) []string {
	names := appendUnique(nil, ex.Individuals...)
	for _, entry := range m.Entries {
		names = appendUnique(names, entry.Name)
	}
	return names
}
