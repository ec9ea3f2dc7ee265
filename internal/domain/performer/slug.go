package performer

import "strings"

// accentFold maps the accented letters that show up in upstream rosters to
// their ASCII equivalents so "Penta" and "Pénta" hash to the same slug.
var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ä", "a", "ã", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "ö", "o", "õ", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ñ", "n", "ç", "c",
)

// Slugify canonicalizes a free-text performer or team label into the stable
// identifier used as the join key across match data, persona windows and
// season totals. It is total: any input, including empty, yields a stable
// result. Apostrophes (straight and typographic) are removed outright rather
// than turned into separators, so "Je'Von" and "Jevon" collide on purpose.
func Slugify(name string) string {
	lower := accentFold.Replace(strings.ToLower(strings.TrimSpace(name)))

	var b strings.Builder
	b.Grow(len(lower))
	pendingSep := false
	for _, r := range lower {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '\'' || r == '’' || r == '‘' || r == '`':
			// dropped entirely
		default:
			pendingSep = true
		}
	}

	return b.String()
}
