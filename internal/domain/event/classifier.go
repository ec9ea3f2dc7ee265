package event

import "strings"

// Type is the closed set of show types the point schedules are keyed by.
type Type int

const (
	TypeUnknown Type = iota

	// Weekly shows.
	TypeRaw
	TypeSmackDown

	// Premium live events.
	TypeRoyalRumble
	TypeEliminationChamber
	TypeWrestleManiaNight1
	TypeWrestleManiaNight2
	TypeBacklash
	TypeKingAndQueenOfTheRing
	TypeMoneyInTheBank
	TypeEvolution
	TypeSummerSlamNight1
	TypeSummerSlamNight2
	TypeBashInBerlin
	TypeCrownJewel
	TypeSurvivorSeries
	TypeSaturdayNightsMainEvent
)

var typeNames = map[Type]string{
	TypeUnknown:                 "unknown",
	TypeRaw:                     "raw",
	TypeSmackDown:               "smackdown",
	TypeRoyalRumble:             "royal-rumble",
	TypeEliminationChamber:      "elimination-chamber",
	TypeWrestleManiaNight1:      "wrestlemania-night-1",
	TypeWrestleManiaNight2:      "wrestlemania-night-2",
	TypeBacklash:                "backlash",
	TypeKingAndQueenOfTheRing:   "king-and-queen-of-the-ring",
	TypeMoneyInTheBank:          "money-in-the-bank",
	TypeEvolution:               "evolution",
	TypeSummerSlamNight1:        "summerslam-night-1",
	TypeSummerSlamNight2:        "summerslam-night-2",
	TypeBashInBerlin:            "bash-in-berlin",
	TypeCrownJewel:              "crown-jewel",
	TypeSurvivorSeries:          "survivor-series",
	TypeSaturdayNightsMainEvent: "saturday-nights-main-event",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsWeekly reports whether the type is a weekly broadcast.
func (t Type) IsWeekly() bool {
	return t == TypeRaw || t == TypeSmackDown
}

// IsPremium reports whether the type is a premium live event.
func (t Type) IsPremium() bool {
	return t != TypeUnknown && !t.IsWeekly()
}

// classifyRule matches a normalized needle against a normalized event name
// or identifier. Rules are evaluated strictly in order: weekly show needles
// come before every premium needle, and two-night families resolve their
// night variant via withNightVariant after the family matches.
type classifyRule struct {
	needle string
	t      Type
}

var classifyRules = []classifyRule{
	{"smackdown", TypeSmackDown},
	{"raw", TypeRaw},
	{"wrestlemania", TypeWrestleManiaNight1},
	{"summerslam", TypeSummerSlamNight1},
	{"royal rumble", TypeRoyalRumble},
	{"elimination chamber", TypeEliminationChamber},
	{"king and queen of the ring", TypeKingAndQueenOfTheRing},
	{"queen of the ring", TypeKingAndQueenOfTheRing},
	{"king of the ring", TypeKingAndQueenOfTheRing},
	{"money in the bank", TypeMoneyInTheBank},
	{"evolution", TypeEvolution},
	{"bash in berlin", TypeBashInBerlin},
	{"crown jewel", TypeCrownJewel},
	{"survivor series", TypeSurvivorSeries},
	{"saturday nights main event", TypeSaturdayNightsMainEvent},
	{"backlash", TypeBacklash},
}

// Classify maps an event's name and identifier to its show type. The
// identifier is checked before the name; matching is case-insensitive and
// word based, so "wwe-raw-2025-03-10" classifies without matching inside
// unrelated words. Unrecognized input yields TypeUnknown; the caller decides
// whether that is worth a warning.
func Classify(name, id string) Type {
	for _, candidate := range []string{id, name} {
		normalized := normalizeForClassify(candidate)
		if normalized == "" {
			continue
		}
		for _, rule := range classifyRules {
			if containsWords(normalized, rule.needle) {
				return withNightVariant(rule.t, normalized)
			}
		}
	}
	return TypeUnknown
}

// withNightVariant upgrades two-night event families to their night-2 type
// when the text says so. "Night 1" and bare family names both classify as
// night 1; that is also how single-night editions of those families land.
func withNightVariant(t Type, normalized string) Type {
	if !containsWords(normalized, "night 2") && !containsWords(normalized, "night two") {
		return t
	}
	switch t {
	case TypeWrestleManiaNight1:
		return TypeWrestleManiaNight2
	case TypeSummerSlamNight1:
		return TypeSummerSlamNight2
	default:
		return t
	}
}

func normalizeForClassify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == '\'' || r == '’':
			// "saturday night's" folds to "saturday nights"
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// containsWords reports whether needle occurs in s on word boundaries.
func containsWords(s, needle string) bool {
	return strings.Contains(" "+s+" ", " "+needle+" ")
}
