package event

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
)

const (
	TitleOutcomeNewChampion = "NEW_CHAMPION"
	TitleOutcomeRetained    = "RETAINED"
	TitleOutcomeRetainedDQ  = "RETAINED_DQ"
)

// Event is one show as fetched from the upstream feed: a weekly broadcast or
// a premium live event. Records are read-only once scored; corrections are
// applied copy-on-write in the scoring layer.
type Event struct {
	ID      string        `json:"id" validate:"required"`
	Name    string        `json:"name"`
	Date    time.Time     `json:"date" validate:"required"`
	Matches []MatchRecord `json:"matches"`
}

// MatchRecord is the loosely structured upstream shape of one match. Almost
// every field is optional; the extractor and calculator are responsible for
// making sense of whatever subset is populated.
type MatchRecord struct {
	Order        int         `json:"order"`
	Participants FlexStrings `json:"participants"`
	Result       string      `json:"result"`
	Method       string      `json:"method"`
	Winner       string      `json:"winner"`
	Stipulation  string      `json:"stipulation"`
	Statistics   string      `json:"statistics"`

	Title         string `json:"title,omitempty"`
	TitleOutcome  string `json:"titleOutcome,omitempty"`
	TitleDefender string `json:"titleDefender,omitempty"`

	IsMainEvent bool `json:"isMainEvent,omitempty"`
	IsSegment   bool `json:"isSegment,omitempty"`

	Round   string `json:"round,omitempty"`
	Bracket string `json:"bracket,omitempty"`

	IronPerson     string        `json:"ironPerson,omitempty"`
	LongestLasting string        `json:"longestLasting,omitempty"`
	DecidingFall   string        `json:"decidingFall,omitempty"`
	Entries        []Entry       `json:"entries,omitempty"`
	Eliminations   []Elimination `json:"eliminations,omitempty"`
	Teams          []Team        `json:"teams,omitempty"`
}

// Entry is one slot in a mass-entry match log: who came out, in which
// position, how long they lasted and how many eliminations they recorded.
type Entry struct {
	Name            string `json:"name"`
	Number          int    `json:"number"`
	DurationSeconds int    `json:"durationSeconds"`
	Eliminations    int    `json:"eliminations"`
}

// Elimination is one row of an elimination log; Order counts up from 1.
type Elimination struct {
	Name  string `json:"name"`
	By    string `json:"by"`
	Order int    `json:"order"`
}

// Team is one side of a team-vs-team match. Members are listed in entry
// priority order, earliest entrant first.
type Team struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// FlexStrings decodes either a JSON array of strings or a single delimited
// string; the upstream feed has shipped both shapes for participants.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*f = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := sonic.Unmarshal(data, &list); err != nil {
			return err
		}
		*f = list
		return nil
	}

	var single string
	if err := sonic.Unmarshal(data, &single); err != nil {
		return err
	}
	if strings.TrimSpace(single) == "" {
		*f = nil
		return nil
	}
	*f = []string{single}
	return nil
}

// IsInvalid reports whether the record carries nothing scoreable at all.
// Invalid matches are skipped, not errored on.
func (m MatchRecord) IsInvalid() bool {
	return len(m.Participants) == 0 && strings.TrimSpace(m.Result) == "" && strings.TrimSpace(m.Winner) == ""
}

// IsPromoSegment reports whether the record is a non-wrestling segment. It
// carries no points but stays in scored output for display.
func (m MatchRecord) IsPromoSegment() bool {
	if m.IsSegment {
		return true
	}
	if len(m.Participants) > 0 {
		return false
	}
	lower := strings.ToLower(m.Result)
	return strings.Contains(lower, "promo") || strings.Contains(lower, "segment") || strings.Contains(lower, "contract signing")
}

// Repository is the event store collaborator. All fetching happens before
// scoring; the engine itself never performs I/O.
type Repository interface {
	ListAll(ctx context.Context) ([]Event, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Event, error)
	Upsert(ctx context.Context, ev Event) error
}
