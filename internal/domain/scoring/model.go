package scoring

import (
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// CarryStage identifies which tournament round produced a carry award.
type CarryStage int

const (
	CarryNone CarryStage = iota
	CarryQualifier
	CarrySemifinal
)

// Breakdown is the human-readable line-item list attached to a scored
// participant.
type Breakdown struct {
	Lines []string
}

func (b *Breakdown) Add(label string, points int) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(label)
	buf.WriteString(": ")
	if points >= 0 {
		buf.WriteString("+")
	}
	buf.WriteString(strconv.Itoa(points))
	b.Lines = append(b.Lines, buf.String())
}

// Render joins the breakdown into one display string.
func (b Breakdown) Render() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, line := range b.Lines {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(line)
	}
	return buf.String()
}

// ScoredParticipant is one performer's point breakdown for one match.
// Total always equals the sum of the five components; Carry is tournament
// carry and is deliberately excluded from Total until a finale realizes it.
type ScoredParticipant struct {
	Performer       string     `json:"performer"`
	MatchPoints     int        `json:"matchPoints"`
	TitlePoints     int        `json:"titlePoints"`
	SpecialPoints   int        `json:"specialPoints"`
	MainEventPoints int        `json:"mainEventPoints"`
	MassEntryPoints int        `json:"massEntryPoints"`
	Total           int        `json:"total"`
	Breakdown       Breakdown  `json:"breakdown"`
	Carry           int        `json:"carry,omitempty"`
	CarryStage      CarryStage `json:"carryStage,omitempty"`
	CarryBracket    string     `json:"carryBracket,omitempty"`
}

// Finalize recomputes Total from the components.
func (p *ScoredParticipant) Finalize() {
	p.Total = p.MatchPoints + p.TitlePoints + p.SpecialPoints + p.MainEventPoints + p.MassEntryPoints
}

// ScoredMatch mirrors one card entry in scored output. Promotional segments
// keep their slot with an empty participant list.
type ScoredMatch struct {
	Order          int                 `json:"order"`
	Participants   []string            `json:"participants"`
	Result         string              `json:"result"`
	IsPromoSegment bool                `json:"isPromoSegment,omitempty"`
	PerParticipant []ScoredParticipant `json:"perParticipant"`
}

// ScoredEvent is the full per-match, per-participant ledger for one show.
type ScoredEvent struct {
	EventID   string        `json:"eventId"`
	EventName string        `json:"eventName"`
	EventType string        `json:"eventType"`
	Matches   []ScoredMatch `json:"matches"`
}

// Buckets are the three independent season accumulators. Title bonuses live
// only in TitleHolding; nothing is ever counted in two buckets.
type Buckets struct {
	WeeklyShow   int `json:"weeklyShow"`
	PremiumEvent int `json:"premiumEvent"`
	TitleHolding int `json:"titleHolding"`
}

func (b Buckets) Total() int {
	return b.WeeklyShow + b.PremiumEvent + b.TitleHolding
}

func (b Buckets) Plus(other Buckets) Buckets {
	return Buckets{
		WeeklyShow:   b.WeeklyShow + other.WeeklyShow,
		PremiumEvent: b.PremiumEvent + other.PremiumEvent,
		TitleHolding: b.TitleHolding + other.TitleHolding,
	}
}

// SeasonTotals keys buckets by canonical performer slug.
type SeasonTotals map[string]Buckets

func (t SeasonTotals) Add(performer string, delta Buckets) {
	t[performer] = t[performer].Plus(delta)
}

// Merge folds other into t bucket-wise.
func (t SeasonTotals) Merge(other SeasonTotals) {
	for performer, buckets := range other {
		t.Add(performer, buckets)
	}
}

// carryEntry tracks pre-finale tournament points for one performer. Each
// stage pays at most once per performer per season.
type carryEntry struct {
	Points       int
	HasQualifier bool
	HasSemifinal bool
	Bracket      string
}

// CarryLedger holds tournament carry between events, keyed by canonical
// performer slug. It is rebuilt from scratch on every aggregation run.
type CarryLedger struct {
	entries map[string]carryEntry
}

func NewCarryLedger() *CarryLedger {
	return &CarryLedger{entries: make(map[string]carryEntry)}
}

// Clone returns an independent copy; incremental scoring threads clones so
// callers can re-run a window without disturbing the season ledger.
func (l *CarryLedger) Clone() *CarryLedger {
	out := NewCarryLedger()
	if l == nil {
		return out
	}
	for performer, entry := range l.entries {
		out.entries[performer] = entry
	}
	return out
}

// Add records a carry award. It returns false when the stage was already
// awarded to this performer, in which case nothing accrues.
func (l *CarryLedger) Add(performer string, stage CarryStage, bracket string, points int) bool {
	if l.entries == nil {
		l.entries = make(map[string]carryEntry)
	}
	entry := l.entries[performer]
	switch stage {
	case CarryQualifier:
		if entry.HasQualifier {
			return false
		}
		entry.HasQualifier = true
	case CarrySemifinal:
		if entry.HasSemifinal {
			return false
		}
		entry.HasSemifinal = true
	default:
		return false
	}
	entry.Points += points
	if bracket != "" {
		entry.Bracket = bracket
	}
	l.entries[performer] = entry
	return true
}

// Balance reports the unrealized carry for a performer.
func (l *CarryLedger) Balance(performer string) int {
	if l == nil {
		return 0
	}
	return l.entries[performer].Points
}

// Realize returns the performer's carry and zeroes the entry. A second call
// in the same run returns 0, which is what keeps finale realization from
// double paying when a performer appears in several finale-card matches.
func (l *CarryLedger) Realize(performer string) int {
	if l == nil {
		return 0
	}
	entry, ok := l.entries[performer]
	if !ok || entry.Points == 0 {
		return 0
	}
	points := entry.Points
	entry.Points = 0
	l.entries[performer] = entry
	return points
}
