package performer

import (
	"fmt"
	"strings"
	"time"
)

// personaWindow maps one alias to a canonical performer for a half-open
// date range. An open-ended window has a zero Until.
type personaWindow struct {
	From      time.Time
	Until     time.Time
	Canonical string
}

type personaEntry struct {
	// Alias is stored in slug form. Matching is containment-based, so an
	// entry whose alias textually contains another entry's alias must be
	// listed first; the table is consulted top to bottom.
	Alias       string
	PersonaOnly bool
	Display     string
	Windows     []personaWindow
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// personaTable is the hand-maintained list of storyline identities whose
// points belong to whoever is under the mask on a given date. Windows for
// the same alias must not overlap.
var personaTable = []personaEntry{
	{
		Alias:       "the-original-el-grande-americano",
		PersonaOnly: true,
		Display:     "The Original El Grande Americano",
		Windows: []personaWindow{
			{From: date(2025, time.June, 28), Canonical: "chad-gable"},
		},
	},
	{
		Alias:       "el-grande-americano",
		PersonaOnly: true,
		Display:     "El Grande Americano",
		Windows: []personaWindow{
			{From: date(2025, time.March, 3), Until: date(2025, time.June, 28), Canonical: "chad-gable"},
			{From: date(2025, time.June, 28), Canonical: "ludwig-kaiser"},
		},
	},
	{
		Alias:       "uncle-howdy",
		PersonaOnly: true,
		Display:     "Uncle Howdy",
		Windows: []personaWindow{
			{From: date(2024, time.July, 1), Canonical: "bo-dallas"},
		},
	},
	{
		Alias:       "juan-cena",
		PersonaOnly: true,
		Display:     "Juan Cena",
		Windows: []personaWindow{
			{From: date(2024, time.November, 1), Canonical: "john-cena"},
		},
	},
	{
		Alias:   "nikki-glencross",
		Display: "Nikki Glencross",
		Windows: []personaWindow{
			{From: date(2024, time.January, 1), Canonical: "nikki-cross"},
		},
	},
}

// Resolve maps a (possibly aliased) name to the canonical performer slug it
// refers to on the given date. The second return is false when no persona
// window applies, meaning the slug of the input is already the identity.
func Resolve(alias string, on time.Time) (string, bool) {
	slug := Slugify(alias)
	if slug == "" {
		return "", false
	}

	for _, entry := range personaTable {
		if !strings.Contains(slug, entry.Alias) {
			continue
		}
		for _, w := range entry.Windows {
			if on.Before(w.From) {
				continue
			}
			if !w.Until.IsZero() && !on.Before(w.Until) {
				continue
			}
			return w.Canonical, true
		}
		// Alias matched but no window covers the date: fall through to the
		// next entry in case a broader alias has a covering window.
	}

	return "", false
}

// Canonicalize returns the identity points should be attributed to for a
// name appearing on a card dated on.
func Canonicalize(name string, on time.Time) string {
	if canonical, ok := Resolve(name, on); ok {
		return canonical
	}
	return Slugify(name)
}

// IsPersonaOnly reports whether the slug names a storyline identity that is
// never listed as a standalone performer.
func IsPersonaOnly(slug string) bool {
	for _, entry := range personaTable {
		if entry.Alias == slug {
			return entry.PersonaOnly
		}
	}
	return false
}

// AlsoKnownAs returns human-readable alias lines for a canonical performer,
// one per window, e.g. `El Grande Americano (Mar 2025 - Jun 2025)`.
func AlsoKnownAs(canonical string) []string {
	var out []string
	for _, entry := range personaTable {
		for _, w := range entry.Windows {
			if w.Canonical != canonical {
				continue
			}
			until := "present"
			if !w.Until.IsZero() {
				until = w.Until.Format("Jan 2006")
			}
			out = append(out, fmt.Sprintf("%s (%s - %s)", entry.Display, w.From.Format("Jan 2006"), until))
		}
	}
	return out
}
