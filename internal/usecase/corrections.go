package usecase

import (
	"strings"

	"github.com/squaredcircle/ringside/internal/domain/event"
)

// matchOverride patches one known-bad upstream match. Only non-zero fields
// are applied. Exactly one selector is set: ParticipantContains picks the
// first match whose participant or result text contains the fragment,
// HighestOrder picks the match with the top card-order value.
type matchOverride struct {
	ParticipantContains string
	HighestOrder        bool

	Result       string
	Method       string
	Winner       string
	Title        string
	TitleOutcome string
	Participants []string
	Round        string
	Bracket      string
}

// correctionTable is the versioned patch list for known upstream data
// errors, keyed by event id (exact match first, then prefix). It is applied
// before extraction and must stay small; anything general belongs in the
// extractor or the classifier, not here.
var correctionTable = map[string][]matchOverride{
	// Winner text arrived as "Jacob Fatu and" with a trailing conjunction.
	"smackdown-2025-05-16": {
		{ParticipantContains: "jacob fatu", Result: "Jacob Fatu def. Damian Priest"},
	},
	// The chamber match was filed without its stipulation text.
	"elimination-chamber-2025": {
		{HighestOrder: true, Method: "Pinfall"},
	},
	// Semifinal metadata missing from both structured fields.
	"raw-2025-05-19": {
		{ParticipantContains: "jey uso", Round: "semifinal", Bracket: "king"},
	},
}

// ApplyCorrections returns a copy of the event with its override rules
// applied. Events without corrections are returned unchanged. The operation
// is idempotent: overrides set absolute values, never deltas.
func ApplyCorrections(ev event.Event) event.Event {
	overrides, ok := correctionTable[ev.ID]
	if !ok {
		for prefix, rules := range correctionTable {
			if strings.HasPrefix(ev.ID, prefix) {
				overrides = rules
				ok = true
				break
			}
		}
	}
	if !ok || len(ev.Matches) == 0 {
		return ev
	}

	out := ev
	out.Matches = make([]event.MatchRecord, len(ev.Matches))
	copy(out.Matches, ev.Matches)

	for _, override := range overrides {
		idx := selectMatch(out.Matches, override)
		if idx < 0 {
			continue
		}
		applyOverride(&out.Matches[idx], override)
	}
	return out
}

func selectMatch(matches []event.MatchRecord, override matchOverride) int {
	if override.HighestOrder {
		best := -1
		for i, m := range matches {
			if best < 0 || m.Order > matches[best].Order {
				best = i
			}
		}
		return best
	}

	fragment := strings.ToLower(override.ParticipantContains)
	if fragment == "" {
		return -1
	}
	for i, m := range matches {
		if strings.Contains(strings.ToLower(m.Result), fragment) {
			return i
		}
		for _, p := range m.Participants {
			if strings.Contains(strings.ToLower(p), fragment) {
				return i
			}
		}
	}
	return -1
}

func applyOverride(m *event.MatchRecord, override matchOverride) {
	if override.Result != "" {
		m.Result = override.Result
	}
	if override.Method != "" {
		m.Method = override.Method
	}
	if override.Winner != "" {
		m.Winner = override.Winner
	}
	if override.Title != "" {
		m.Title = override.Title
	}
	if override.TitleOutcome != "" {
		m.TitleOutcome = override.TitleOutcome
	}
	if len(override.Participants) > 0 {
		m.Participants = append(event.FlexStrings(nil), override.Participants...)
	}
	if override.Round != "" {
		m.Round = override.Round
	}
	if override.Bracket != "" {
		m.Bracket = override.Bracket
	}
}
