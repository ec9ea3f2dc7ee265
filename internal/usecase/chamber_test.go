package usecase

import (
	"testing"
	"time"

	"github.com/squaredcircle/ringside/internal/domain/event"
)

func chamberEvent(m event.MatchRecord) event.Event {
	return event.Event{
		ID:      "elimination-chamber-2026",
		Name:    "Elimination Chamber",
		Date:    time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{m},
	}
}

func chamberMatch() event.MatchRecord {
	return event.MatchRecord{
		Order:        3,
		Stipulation:  "Men's Elimination Chamber match",
		Participants: event.FlexStrings{"A vs B vs C vs D vs E vs F"},
		Result:       "A won the Elimination Chamber match",
		Eliminations: []event.Elimination{
			{Name: "F", By: "B", Order: 1},
			{Name: "E", By: "A", Order: 2},
			{Name: "D", By: "A", Order: 3},
			{Name: "C", By: "B", Order: 4},
			{Name: "B", By: "A", Order: 5},
		},
	}
}

func TestScoreParticipant_ChamberWinner(t *testing.T) {
	t.Parallel()

	ev := chamberEvent(chamberMatch())

	// 3 entry + 3*2 eliminations + 10 winner.
	a := scoreOne(t, ev, event.TypeEliminationChamber, 0, "A")
	if a.SpecialPoints != 19 {
		t.Fatalf("winner special points = %d, want 19", a.SpecialPoints)
	}
	if a.MatchPoints != 0 || a.MainEventPoints != 0 {
		t.Fatalf("chamber must not pay the ordinary schedule: %+v", a)
	}

	// B is the last eliminated: 3 entry + 2*2 eliminations + 5 longest.
	b := scoreOne(t, ev, event.TypeEliminationChamber, 0, "B")
	if b.SpecialPoints != 12 {
		t.Fatalf("runner-up special points = %d, want 12", b.SpecialPoints)
	}

	// F went out first: entry only.
	f := scoreOne(t, ev, event.TypeEliminationChamber, 0, "F")
	if f.SpecialPoints != 3 {
		t.Fatalf("first out special points = %d, want 3", f.SpecialPoints)
	}
}

func TestScoreParticipant_ChamberExplicitLongestLasting(t *testing.T) {
	t.Parallel()

	m := chamberMatch()
	m.LongestLasting = "C"
	ev := chamberEvent(m)

	c := scoreOne(t, ev, event.TypeEliminationChamber, 0, "C")
	// 3 entry + 5 longest; the explicit field overrides the log.
	if c.SpecialPoints != 8 {
		t.Fatalf("explicit longest lasting = %d, want 8", c.SpecialPoints)
	}
	b := scoreOne(t, ev, event.TypeEliminationChamber, 0, "B")
	if b.SpecialPoints != 7 {
		t.Fatalf("log-derived candidate must lose to the field, got %d", b.SpecialPoints)
	}
}

func TestScoreParticipant_ChamberQualifierOnWeeklyScoresOrdinary(t *testing.T) {
	t.Parallel()

	ev := weeklyEvent(
		event.MatchRecord{Order: 1, Participants: event.FlexStrings{"A vs B"}, Result: "A def. B", Stipulation: "Elimination Chamber qualifying match"},
		event.MatchRecord{Order: 2, Participants: event.FlexStrings{"C vs D"}, Result: "C def. D"},
	)

	p := scoreOne(t, ev, event.TypeRaw, 0, "A")
	if p.Total != 3 || p.SpecialPoints != 0 {
		t.Fatalf("weekly qualifier must score on the weekly schedule: %+v", p)
	}
}

func TestScoreParticipant_Ladder(t *testing.T) {
	t.Parallel()

	ev := event.Event{
		ID:   "money-in-the-bank-2025",
		Name: "Money in the Bank",
		Date: time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			{
				Order:        2,
				Stipulation:  "Money in the Bank ladder match",
				Participants: event.FlexStrings{"A vs B vs C vs D vs E vs F"},
				Result:       "A won the Money in the Bank ladder match",
			},
		},
	}

	a := scoreOne(t, ev, event.TypeMoneyInTheBank, 0, "A")
	// 3 ladder entry + 10 briefcase.
	if a.SpecialPoints != 13 {
		t.Fatalf("briefcase winner = %d, want 13", a.SpecialPoints)
	}
	if a.MatchPoints != 0 {
		t.Fatalf("ladder match must not pay the ordinary schedule")
	}

	b := scoreOne(t, ev, event.TypeMoneyInTheBank, 0, "B")
	if b.SpecialPoints != 3 {
		t.Fatalf("ladder entrant = %d, want 3", b.SpecialPoints)
	}
}

func TestScoreParticipant_NonLadderMatchAtMITBScoresOrdinary(t *testing.T) {
	t.Parallel()

	ev := event.Event{
		ID:   "money-in-the-bank-2025",
		Name: "Money in the Bank",
		Date: time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{
			{Order: 1, Participants: event.FlexStrings{"A vs B"}, Result: "A def. B"},
			{Order: 2, Participants: event.FlexStrings{"C vs D"}, Result: "C def. D"},
		},
	}

	p := scoreOne(t, ev, event.TypeMoneyInTheBank, 0, "A")
	// 2 on card + 4 win on the premium schedule.
	if p.Total != 6 || p.SpecialPoints != 0 {
		t.Fatalf("undercard title bout must score ordinarily: %+v", p)
	}
}
