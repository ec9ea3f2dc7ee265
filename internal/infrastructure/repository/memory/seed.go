package memory

import (
	"time"

	"github.com/squaredcircle/ringside/internal/domain/event"
	"github.com/squaredcircle/ringside/internal/domain/reign"
)

func seedDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedEvents is a small self-contained season slice for demos and smoke
// runs: two weekly shows with a tournament qualifier and semifinal, the
// tournament finale and a mass-entry premium event.
func SeedEvents() []event.Event {
	return []event.Event{
		{
			ID:   "royal-rumble-2025",
			Name: "WWE Royal Rumble 2025",
			Date: seedDate(2025, time.February, 1),
			Matches: []event.MatchRecord{
				{
					Order:        1,
					Participants: event.FlexStrings{"Gunther vs Finn Balor"},
					Result:       "Gunther def. Finn Balor",
					Title:        "World Heavyweight Championship",
					TitleOutcome: event.TitleOutcomeRetained,
				},
				{
					Order:       3,
					Stipulation: "30-man Royal Rumble match",
					Result:      "Jey Uso won the Royal Rumble match",
					Entries: []event.Entry{
						{Name: "Jey Uso", Number: 20, Eliminations: 2},
						{Name: "Roman Reigns", Number: 8, Eliminations: 4},
						{Name: "CM Punk", Number: 1, DurationSeconds: 3480},
						{Name: "Dominik Mysterio", Number: 12},
					},
				},
			},
		},
		{
			ID:   "raw-2025-05-05",
			Name: "Monday Night Raw",
			Date: seedDate(2025, time.May, 5),
			Matches: []event.MatchRecord{
				{
					Order:        1,
					Participants: event.FlexStrings{"Jey Uso vs Sheamus"},
					Result:       "Jey Uso def. Sheamus",
					Round:        "first round",
					Bracket:      "king",
				},
				{Order: 2, Result: "CM Punk promo", IsSegment: true},
				{
					Order:        3,
					Participants: event.FlexStrings{"Bron Breakker vs Penta"},
					Result:       "Bron Breakker def. Penta",
					Title:        "Intercontinental Championship",
					TitleOutcome: event.TitleOutcomeRetained,
				},
			},
		},
		{
			ID:   "raw-2025-05-26",
			Name: "Monday Night Raw",
			Date: seedDate(2025, time.May, 26),
			Matches: []event.MatchRecord{
				{
					Order:        1,
					Participants: event.FlexStrings{"Jey Uso vs Randy Orton"},
					Result:       "Jey Uso def. Randy Orton",
					Stipulation:  "King of the Ring semifinal",
				},
				{
					Order:        2,
					Participants: event.FlexStrings{"Liv Morgan vs Kairi Sane"},
					Result:       "Liv Morgan def. Kairi Sane",
					Round:        "semifinal",
				},
			},
		},
		{
			ID:   "king-and-queen-of-the-ring-2025",
			Name: "King and Queen of the Ring",
			Date: seedDate(2025, time.June, 7),
			Matches: []event.MatchRecord{
				{
					Order:        1,
					Participants: event.FlexStrings{"Jey Uso vs Cody Rhodes"},
					Result:       "Cody Rhodes def. Jey Uso",
					Round:        "final",
					Bracket:      "king",
				},
				{
					Order:        2,
					Participants: event.FlexStrings{"Liv Morgan vs Jade Cargill"},
					Result:       "Jade Cargill def. Liv Morgan",
					Round:        "final",
					Bracket:      "queen",
				},
				{
					Order:        3,
					Participants: event.FlexStrings{"Gunther vs Sami Zayn"},
					Result:       "Gunther def. Sami Zayn",
					Method:       "DQ",
					Title:        "World Heavyweight Championship",
					TitleOutcome: event.TitleOutcomeRetainedDQ,
				},
			},
		},
	}
}

// SeedReigns matches the seed events' championship picture.
func SeedReigns() []reign.Reign {
	return []reign.Reign{
		{
			Performer: "Gunther",
			Title:     "World Heavyweight Championship",
			WonAt:     seedDate(2024, time.August, 31),
		},
		{
			Performer: "Bron Breakker",
			Title:     "Intercontinental Championship",
			WonAt:     seedDate(2025, time.January, 6),
		},
	}
}
