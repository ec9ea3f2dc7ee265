package reign

import (
	"context"
	"strings"
	"time"
)

// ProgramStart is the first date title reigns count from. A reign that began
// earlier is clamped to start here.
var ProgramStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// FirstEligibleMonthEnd is the earliest month close that pays holding
// bonuses.
var FirstEligibleMonthEnd = time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

// Reign is one title-holding interval. LostAt nil means the title is still
// held; the interval is half-open, so a champion dethroned on day X does not
// hold the belt on day X.
type Reign struct {
	Performer string     `json:"performer"`
	Title     string     `json:"title"`
	WonAt     time.Time  `json:"wonAt"`
	LostAt    *time.Time `json:"lostAt,omitempty"`
}

// ClampedWonAt is the reign start for accrual purposes.
func (r Reign) ClampedWonAt() time.Time {
	if r.WonAt.Before(ProgramStart) {
		return ProgramStart
	}
	return r.WonAt
}

// HeldOn reports whether the belt is held at the end of the given day.
func (r Reign) HeldOn(day time.Time) bool {
	if r.ClampedWonAt().After(day) {
		return false
	}
	return r.LostAt == nil || r.LostAt.After(day)
}

// tierRule maps a lowercase title-name fragment to a monthly holding bonus.
// Rules run top to bottom; the women's world patterns must come before the
// bare "world" pattern, and specific belts before the default.
type tierRule struct {
	fragment string
	bonus    int
}

var tierRules = []tierRule{
	{"undisputed", 10},
	{"world heavyweight", 10},
	{"women s world", 10},
	{"wwe women s championship", 10},
	{"wwe championship", 10},
	{"intercontinental", 5},
	{"united states", 5},
	{"tag team", 5},
	{"north american", 5},
}

const defaultTierBonus = 3

// TierBonus returns the monthly holding bonus for a title name. Unknown
// titles earn the default rather than zero so a renamed belt keeps paying.
func TierBonus(title string) int {
	normalized := normalizeTitle(title)
	if normalized == "" {
		return defaultTierBonus
	}
	for _, rule := range tierRules {
		if strings.Contains(normalized, rule.fragment) {
			return rule.bonus
		}
	}
	return defaultTierBonus
}

func normalizeTitle(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Repository supplies explicit reign history when the upstream tracks it.
// When absent, reigns are inferred from title-change matches instead.
type Repository interface {
	ListAll(ctx context.Context) ([]Reign, error)
	Upsert(ctx context.Context, r Reign) error
}
