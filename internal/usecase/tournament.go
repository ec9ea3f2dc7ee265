package usecase

import (
	"strings"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/performer"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
)

const (
	BracketKing  = "king"
	BracketQueen = "queen"
)

// tournamentStageOverride hand-labels bracket matches on shows whose
// structured data omitted round and bracket text. Checked before keyword
// detection; keyed by event id, selected by participant fragment. Lookups
// are pure, so a rescoring pass can never apply one twice.
type tournamentStageOverride struct {
	ParticipantContains string
	Stage               scoring.CarryStage
	Bracket             string
}

var tournamentOverrides = map[string][]tournamentStageOverride{
	"raw-2025-05-12": {
		{ParticipantContains: "zoey stark", Stage: scoring.CarryQualifier, Bracket: BracketQueen},
	},
	"smackdown-2025-05-23": {
		{ParticipantContains: "cody rhodes", Stage: scoring.CarrySemifinal, Bracket: BracketKing},
		{ParticipantContains: "jade cargill", Stage: scoring.CarrySemifinal, Bracket: BracketQueen},
	},
}

// knownWomen disambiguates the two parallel brackets when the match text
// never says which one it belongs to. Slug form.
var knownWomen = map[string]struct{}{
	"rhea-ripley":      {},
	"bianca-belair":    {},
	"iyo-sky":          {},
	"liv-morgan":       {},
	"charlotte-flair":  {},
	"tiffany-stratton": {},
	"jade-cargill":     {},
	"bayley":           {},
	"asuka":            {},
	"alexa-bliss":      {},
	"naomi":            {},
	"nia-jax":          {},
	"lyra-valkyria":    {},
	"roxanne-perez":    {},
	"stephanie-vaquer": {},
	"becky-lynch":      {},
	"zoey-stark":       {},
}

func isTournamentFinal(m event.MatchRecord) bool {
	if strings.EqualFold(strings.TrimSpace(m.Round), "final") {
		return true
	}
	text := strings.ToLower(m.Stipulation + " " + m.Result)
	if !strings.Contains(text, "final") {
		return false
	}
	return strings.Contains(text, "king of the ring") || strings.Contains(text, "queen of the ring")
}

// scoreTournamentFinal pays the flat finalist bonus to both participants
// and the winner bonus on top. The final is deliberately excluded from the
// ordinary schedule; together with the aggregator realizing the carry
// ledger, this is the only place tournament points reach a premium total.
func (c *Calculator) scoreTournamentFinal(p *scoring.ScoredParticipant, ex Extraction, name string) {
	if !containsSlug(ex.Individuals, name) {
		return
	}

	p.SpecialPoints += scoring.TournamentFinalistAward
	p.Breakdown.Add("tournament finalist", scoring.TournamentFinalistAward)

	if containsFold(ex.Winners, name) {
		p.SpecialPoints += scoring.TournamentWinnerAward
		p.Breakdown.Add("tournament winner", scoring.TournamentWinnerAward)
	}
}

// awardTournamentCarry tags the winner of a weekly-show bracket match with
// carry points. Carry never enters the weekly total; the aggregator banks
// it in the ledger until the finale event realizes it.
func (c *Calculator) awardTournamentCarry(p *scoring.ScoredParticipant, ev event.Event, m event.MatchRecord, ex Extraction, name string) {
	if !containsFold(ex.Winners, name) {
		return
	}

	stage, bracket, ok := c.detectTournamentRound(ev, m, ex)
	if !ok {
		return
	}

	points := scoring.TournamentQualifierCarry
	label := "tournament qualifier (carried)"
	if stage == scoring.CarrySemifinal {
		points = scoring.TournamentSemifinalCarry
		label = "tournament semifinal (carried)"
	}

	p.Carry = points
	p.CarryStage = stage
	p.CarryBracket = bracket
	p.Breakdown.Add(label, points)
}

// detectTournamentRound resolves stage and bracket for a weekly-show match:
// the hand-authored override table first, then keyword detection over the
// round, stipulation and result text, with the known-women roster as the
// bracket tie-break of last resort.
func (c *Calculator) detectTournamentRound(ev event.Event, m event.MatchRecord, ex Extraction) (scoring.CarryStage, string, bool) {
	for _, override := range tournamentOverrides[ev.ID] {
		if matchHasParticipant(m, ex, override.ParticipantContains) {
			return override.Stage, override.Bracket, true
		}
	}

	text := strings.ToLower(m.Round + " " + m.Stipulation + " " + m.Result)
	inTournament := strings.Contains(text, "king of the ring") ||
		strings.Contains(text, "queen of the ring") ||
		strings.TrimSpace(m.Round) != ""
	if !inTournament {
		return scoring.CarryNone, "", false
	}

	var stage scoring.CarryStage
	switch {
	case strings.Contains(text, "semifinal") || strings.Contains(text, "semi-final"):
		stage = scoring.CarrySemifinal
	case strings.Contains(text, "quarterfinal") || strings.Contains(text, "first round") ||
		strings.Contains(text, "qualifier") || strings.Contains(text, "qualifying"):
		stage = scoring.CarryQualifier
	default:
		return scoring.CarryNone, "", false
	}

	return stage, c.resolveBracket(ev, m, ex, text), true
}

func (c *Calculator) resolveBracket(ev event.Event, m event.MatchRecord, ex Extraction, text string) string {
	if b := strings.ToLower(strings.TrimSpace(m.Bracket)); b != "" {
		if strings.Contains(b, "queen") || strings.Contains(b, "women") {
			return BracketQueen
		}
		return BracketKing
	}
	if strings.Contains(text, "queen") {
		return BracketQueen
	}
	if strings.Contains(text, "king") {
		return BracketKing
	}

	for _, name := range ex.Individuals {
		if _, ok := knownWomen[performer.Slugify(name)]; ok {
			return BracketQueen
		}
	}
	c.logger.Warn("ambiguous tournament bracket, defaulting to king bracket",
		"event_id", ev.ID,
		"match_order", m.Order,
	)
	return BracketKing
}

func matchHasParticipant(m event.MatchRecord, ex Extraction, fragment string) bool {
	fragment = strings.ToLower(fragment)
	if fragment == "" {
		return false
	}
	for _, name := range ex.Individuals {
		if strings.Contains(strings.ToLower(name), fragment) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(m.Result), fragment)
}
