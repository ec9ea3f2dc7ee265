package usecase

import (
	"testing"
	"time"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/scoring"
)

func TestScoreParticipant_TournamentQualifierCarry(t *testing.T) {
	t.Parallel()

	ev := event.Event{
		ID:   "raw-2025-05-05",
		Name: "Monday Night Raw",
		Date: time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			{Order: 1, Participants: event.FlexStrings{"Jey Uso vs Sheamus"}, Result: "Jey Uso def. Sheamus", Round: "first round", Bracket: "king"},
			{Order: 2, Participants: event.FlexStrings{"C vs D"}, Result: "C def. D"},
		},
	}

	p := scoreOne(t, ev, event.TypeRaw, 0, "Jey Uso")
	// Ordinary weekly points pay now; the carry is tagged, not totaled.
	if p.Total != 3 {
		t.Fatalf("qualifier winner total = %d, want 3", p.Total)
	}
	if p.Carry != scoring.TournamentQualifierCarry || p.CarryStage != scoring.CarryQualifier || p.CarryBracket != BracketKing {
		t.Fatalf("carry tag = %d/%v/%q", p.Carry, p.CarryStage, p.CarryBracket)
	}

	loser := scoreOne(t, ev, event.TypeRaw, 0, "Sheamus")
	if loser.Carry != 0 || loser.CarryStage != scoring.CarryNone {
		t.Fatalf("losers never carry: %+v", loser)
	}
}

func TestScoreParticipant_SemifinalCarryFromKeywords(t *testing.T) {
	t.Parallel()

	ev := event.Event{
		ID:   "smackdown-2025-05-30",
		Name: "Friday Night SmackDown",
		Date: time.Date(2025, time.May, 30, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			{
				Order:        1,
				Participants: event.FlexStrings{"Randy Orton vs Sami Zayn"},
				Result:       "Randy Orton def. Sami Zayn",
				Stipulation:  "King of the Ring semifinal",
			},
			{Order: 2, Participants: event.FlexStrings{"C vs D"}, Result: "C def. D"},
		},
	}

	p := scoreOne(t, ev, event.TypeSmackDown, 0, "Randy Orton")
	if p.Carry != scoring.TournamentSemifinalCarry || p.CarryStage != scoring.CarrySemifinal {
		t.Fatalf("semifinal carry = %d/%v", p.Carry, p.CarryStage)
	}
	if p.CarryBracket != BracketKing {
		t.Fatalf("bracket = %q", p.CarryBracket)
	}
}

func TestResolveBracket_QueenKeyword(t *testing.T) {
	t.Parallel()

	ev := event.Event{
		ID:   "raw-2025-05-26",
		Name: "Monday Night Raw",
		Date: time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			{
				Order:        1,
				Participants: event.FlexStrings{"Ivy Nile vs Kairi Sane"},
				Result:       "Ivy Nile def. Kairi Sane",
				Stipulation:  "Queen of the Ring quarterfinal",
			},
			{Order: 2, Participants: event.FlexStrings{"C vs D"}, Result: "C def. D"},
		},
	}

	p := scoreOne(t, ev, event.TypeRaw, 0, "Ivy Nile")
	if p.CarryBracket != BracketQueen {
		t.Fatalf("bracket = %q, want queen", p.CarryBracket)
	}
}

func TestResolveBracket_KnownWomenFallback(t *testing.T) {
	t.Parallel()

	// Neither the bracket field nor the text says which bracket; the match
	// involves a known women's-division name, so it lands in the queen one.
	ev := event.Event{
		ID:   "raw-2025-05-26",
		Name: "Monday Night Raw",
		Date: time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			{
				Order:        1,
				Participants: event.FlexStrings{"Roxanne Perez vs Kairi Sane"},
				Result:       "Roxanne Perez def. Kairi Sane",
				Round:        "quarterfinal",
			},
			{Order: 2, Participants: event.FlexStrings{"C vs D"}, Result: "C def. D"},
		},
	}

	p := scoreOne(t, ev, event.TypeRaw, 0, "Roxanne Perez")
	if p.CarryBracket != BracketQueen {
		t.Fatalf("bracket = %q, want queen via roster fallback", p.CarryBracket)
	}

	menEv := ev
	menEv.Matches = []event.MatchRecord{
		{
			Order:        1,
			Participants: event.FlexStrings{"Penta vs Chad Gable"},
			Result:       "Penta def. Chad Gable",
			Round:        "quarterfinal",
		},
		ev.Matches[1],
	}
	men := scoreOne(t, menEv, event.TypeRaw, 0, "Penta")
	if men.CarryBracket != BracketKing {
		t.Fatalf("bracket = %q, want king default", men.CarryBracket)
	}
}

func TestDetectTournamentRound_OverrideTable(t *testing.T) {
	t.Parallel()

	ev := event.Event{
		ID:   "smackdown-2025-05-23",
		Name: "Friday Night SmackDown",
		Date: time.Date(2025, time.May, 23, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			// No round, bracket or tournament keywords anywhere.
			{Order: 1, Participants: event.FlexStrings{"Cody Rhodes vs Shinsuke Nakamura"}, Result: "Cody Rhodes def. Shinsuke Nakamura"},
			{Order: 2, Participants: event.FlexStrings{"C vs D"}, Result: "C def. D"},
		},
	}

	p := scoreOne(t, ev, event.TypeSmackDown, 0, "Cody Rhodes")
	if p.CarryStage != scoring.CarrySemifinal || p.CarryBracket != BracketKing {
		t.Fatalf("override not applied: %v/%q", p.CarryStage, p.CarryBracket)
	}
}

func TestScoreParticipant_TournamentFinal(t *testing.T) {
	t.Parallel()

	ev := event.Event{
		ID:   "king-and-queen-of-the-ring-2025",
		Name: "King and Queen of the Ring",
		Date: time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			{
				Order:        4,
				Participants: event.FlexStrings{"Cody Rhodes vs Randy Orton"},
				Result:       "Cody Rhodes def. Randy Orton",
				Round:        "final",
			},
		},
	}

	winner := scoreOne(t, ev, event.TypeKingAndQueenOfTheRing, 0, "Cody Rhodes")
	if winner.SpecialPoints != scoring.TournamentFinalistAward+scoring.TournamentWinnerAward {
		t.Fatalf("final winner = %d, want 30", winner.SpecialPoints)
	}
	if winner.MatchPoints != 0 || winner.MainEventPoints != 0 {
		t.Fatalf("the final must not pay the ordinary schedule: %+v", winner)
	}

	loser := scoreOne(t, ev, event.TypeKingAndQueenOfTheRing, 0, "Randy Orton")
	if loser.SpecialPoints != scoring.TournamentFinalistAward {
		t.Fatalf("finalist = %d, want 10", loser.SpecialPoints)
	}
}

func TestIsTournamentFinal(t *testing.T) {
	t.Parallel()

	if !isTournamentFinal(event.MatchRecord{Round: "Final"}) {
		t.Fatalf("round field marks the final")
	}
	if !isTournamentFinal(event.MatchRecord{Result: "Cody Rhodes won the King of the Ring final"}) {
		t.Fatalf("result text marks the final")
	}
	if isTournamentFinal(event.MatchRecord{Result: "Cody Rhodes def. Randy Orton"}) {
		t.Fatalf("plain match is not the final")
	}
	if isTournamentFinal(event.MatchRecord{Stipulation: "final chance qualifier"}) {
		t.Fatalf("'final' without the tournament name is not the final")
	}
}

func TestScoreParticipant_NonFinalAtFinaleScoresOrdinary(t *testing.T) {
	t.Parallel()

	ev := event.Event{
		ID:   "king-and-queen-of-the-ring-2025",
		Name: "King and Queen of the Ring",
		Date: time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			{Order: 1, Participants: event.FlexStrings{"A vs B"}, Result: "A def. B"},
			{Order: 2, Participants: event.FlexStrings{"C vs D"}, Result: "C def. D"},
		},
	}

	p := scoreOne(t, ev, event.TypeKingAndQueenOfTheRing, 0, "A")
	// Undercard bout at the finale pays the premium schedule: 2 + 4.
	if p.Total != 6 || p.SpecialPoints != 0 {
		t.Fatalf("undercard at the finale: %+v", p)
	}
}
