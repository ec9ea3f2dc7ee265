package usecase

import (
	"testing"
	"time"

	"github.com/squaredcircle/ringside/internal/domain/event"
)

func warGamesEvent(m event.MatchRecord) event.Event {
	return event.Event{
		ID:      "survivor-series-2025",
		Name:    "Survivor Series: WarGames",
		Date:    time.Date(2025, time.November, 29, 0, 0, 0, 0, time.UTC),
		Matches: []event.MatchRecord{m},
	}
}

func warGamesMatch() event.MatchRecord {
	return event.MatchRecord{
		Order:       4,
		Stipulation: "Men's WarGames match",
		Result:      "Team Rhodes def. Team Sikoa",
		Winner:      "Cody Rhodes, Jey Uso, Sami Zayn",
		Teams: []event.Team{
			{Name: "Team Rhodes", Members: []string{"Cody Rhodes", "Jey Uso", "Sami Zayn"}},
			{Name: "Team Sikoa", Members: []string{"Solo Sikoa", "Jacob Fatu", "Tama Tonga"}},
		},
		DecidingFall: "Cody Rhodes",
	}
}

func TestScoreParticipant_WarGamesWinningSide(t *testing.T) {
	t.Parallel()

	ev := warGamesEvent(warGamesMatch())

	// First entrant on the winning team with the deciding fall:
	// 2 entry + 5 rank (first of five) + 5 winning side + 5 deciding fall.
	cody := scoreOne(t, ev, event.TypeSurvivorSeries, 0, "Cody Rhodes")
	if cody.SpecialPoints != 17 {
		t.Fatalf("cody special points = %d, want 17", cody.SpecialPoints)
	}
	if cody.MatchPoints != 0 {
		t.Fatalf("wargames must not pay the ordinary schedule")
	}

	// Second entrant, winning side, no fall: 2 + 4 + 5.
	jey := scoreOne(t, ev, event.TypeSurvivorSeries, 0, "Jey Uso")
	if jey.SpecialPoints != 11 {
		t.Fatalf("jey special points = %d, want 11", jey.SpecialPoints)
	}

	// First entrant on the losing team: 2 + 5.
	solo := scoreOne(t, ev, event.TypeSurvivorSeries, 0, "Solo Sikoa")
	if solo.SpecialPoints != 7 {
		t.Fatalf("solo special points = %d, want 7", solo.SpecialPoints)
	}
}

func TestScoreParticipant_WarGamesRankDecaysPerTeam(t *testing.T) {
	t.Parallel()

	m := warGamesMatch()
	m.Teams[1].Members = []string{"Solo Sikoa", "Jacob Fatu", "Tama Tonga", "JC Mateo", "Talla Tonga", "Hikuleo"}
	ev := warGamesEvent(m)

	// Sixth entrant sits past the five decaying ranks: entry award only.
	sixth := scoreOne(t, ev, event.TypeSurvivorSeries, 0, "Hikuleo")
	if sixth.SpecialPoints != 2 {
		t.Fatalf("sixth entrant = %d, want entry only", sixth.SpecialPoints)
	}

	// Rank is per team, so the losing team's first entrant still ranks first.
	solo := scoreOne(t, ev, event.TypeSurvivorSeries, 0, "Solo Sikoa")
	if solo.SpecialPoints != 7 {
		t.Fatalf("losing-team first entrant = %d, want 7", solo.SpecialPoints)
	}
}

func TestScoreParticipant_WarGamesWinnerByTeamName(t *testing.T) {
	t.Parallel()

	m := warGamesMatch()
	m.Winner = "Team Rhodes"
	ev := warGamesEvent(m)

	cody := scoreOne(t, ev, event.TypeSurvivorSeries, 0, "Cody Rhodes")
	found := false
	for _, line := range cody.Breakdown.Lines {
		if line == "winning side: +5" {
			found = true
		}
	}
	if !found {
		t.Fatalf("team-name winner text must still pay the side: %v", cody.Breakdown.Lines)
	}
}

func TestScoreParticipant_WarGamesDecidingFallFromStatistics(t *testing.T) {
	t.Parallel()

	m := warGamesMatch()
	m.DecidingFall = ""
	m.Statistics = "Deciding fall: Sami Zayn"
	ev := warGamesEvent(m)

	sami := scoreOne(t, ev, event.TypeSurvivorSeries, 0, "Sami Zayn")
	// 2 entry + 3 rank (third entrant) + 5 winning side + 5 deciding fall.
	if sami.SpecialPoints != 15 {
		t.Fatalf("sami special points = %d, want 15", sami.SpecialPoints)
	}
}

func TestScoreParticipant_WarGamesOutsiderScoresNothing(t *testing.T) {
	t.Parallel()

	ev := warGamesEvent(warGamesMatch())
	if p := scoreOne(t, ev, event.TypeSurvivorSeries, 0, "Paul Heyman"); p.Total != 0 {
		t.Fatalf("outsider scored %d", p.Total)
	}
}
