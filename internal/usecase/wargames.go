package usecase

import (
	"regexp"
	"strings"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
)

var decidingFallStatRegex = regexp.MustCompile(`(?i)(?:deciding\s+fall|winning\s+pin(?:fall)?)[:\s]+([^;,\n(]+)`)

// scoreWarGames applies the caged team-elimination schedule: flat per-side
// participation, a winning-side award, a single deciding-fall award and a
// per-team entry-order award that decays by rank within each team.
func (c *Calculator) scoreWarGames(p *scoring.ScoredParticipant, m event.MatchRecord, ex Extraction, name string) {
	team, rank := warGamesTeamRank(m, ex, name)
	if team < 0 {
		return
	}

	p.SpecialPoints += scoring.WarGamesEntryAward
	p.Breakdown.Add("wargames entry", scoring.WarGamesEntryAward)

	// Entry priority decays one point per later entrant on the same team,
	// bottoming out after five ranks. Rank is per-team, never global.
	if rank < scoring.WarGamesEntryRankMax {
		award := scoring.WarGamesEntryRankMax - rank
		p.SpecialPoints += award
		p.Breakdown.Add("entry priority", award)
	}

	if onWinningSide(m, ex, team) {
		p.SpecialPoints += scoring.WarGamesWinningSideAward
		p.Breakdown.Add("winning side", scoring.WarGamesWinningSideAward)
	}

	if fall := decidingFall(m); fall != "" && slugEqual(fall, name) {
		p.SpecialPoints += scoring.WarGamesDecidingFallAward
		p.Breakdown.Add("deciding fall", scoring.WarGamesDecidingFallAward)
	}
}

// warGamesTeamRank locates the participant's side and their entry-priority
// rank (0 = first entrant) inside it. The structured team list is
// authoritative; without it the extractor's side split cannot recover entry
// order, so rank defaults past the decaying award range.
func warGamesTeamRank(m event.MatchRecord, ex Extraction, name string) (int, int) {
	for t, team := range m.Teams {
		for i, member := range team.Members {
			if slugEqual(member, name) {
				return t, i
			}
		}
	}
	if containsSlug(ex.Individuals, name) {
		return len(m.Teams), scoring.WarGamesEntryRankMax
	}
	return -1, 0
}

func onWinningSide(m event.MatchRecord, ex Extraction, team int) bool {
	if team >= len(m.Teams) {
		return false
	}
	for _, member := range m.Teams[team].Members {
		if containsSlug(ex.Winners, member) {
			return true
		}
	}
	// The winner text sometimes names the team, not its members.
	return containsSlug(ex.Winners, m.Teams[team].Name)
}

// decidingFall returns who scored the match-ending fall: the structured
// field first, the statistics free text second.
func decidingFall(m event.MatchRecord) string {
	if fall := strings.TrimSpace(m.DecidingFall); fall != "" {
		return fall
	}
	if groups := decidingFallStatRegex.FindStringSubmatch(m.Statistics); groups != nil {
		return strings.TrimSpace(groups[1])
	}
	return ""
}
