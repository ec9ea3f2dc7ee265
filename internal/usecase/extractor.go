package usecase

import (
	"regexp"
	"strings"

	"github.com/squaredcircle/ringside/internal/domain/event"
)

// Extraction is the structured view of one match's free-form participant
// and result fields. Individuals carries the names that can actually earn
// points; bare team labels are kept separately and never scored.
type Extraction struct {
	Individuals []string
	TeamLabels  []string
	Winners     []string
	Losers      []string
	IsTagTeam   bool
	// Unclear means a result string exists but no winner strategy matched.
	// It is distinct from a draw or no-contest: unclear matches pay
	// appearance points only and are flagged for operator review.
	Unclear bool
}

var (
	vsSplitRegex      = regexp.MustCompile(`(?i)\s+vs\.?\s+`)
	teamNotationRegex = regexp.MustCompile(`^(.*?)\s*\(([^)]+)\)\s*$`)
	defeatRegex       = regexp.MustCompile(`(?i)^(.*?)\s+(?:def\.?|defeats?|defeated|beat)\s+(.+)$`)
	wonTheRegex       = regexp.MustCompile(`(?i)^(.*?)\s+won\s+the\s+`)
	bareWinsRegex     = regexp.MustCompile(`(?i)^(.*?)\s+wins?\b`)
	winnerStatRegex   = regexp.MustCompile(`(?i)winner:\s*([^;,\n]+)`)
)

// ExtractMatch parses a match record into participants, winners and losers.
// It never fails; the worst case is an empty extraction with Unclear set.
func ExtractMatch(m event.MatchRecord) Extraction {
	var out Extraction

	sides := participantSides(m)
	for _, side := range sides {
		individuals, labels := splitSide(side)
		if len(individuals) > 1 {
			out.IsTagTeam = true
		}
		out.Individuals = appendUnique(out.Individuals, individuals...)
		out.TeamLabels = appendUnique(out.TeamLabels, labels...)
	}

	winners, found := extractWinners(m)
	if found {
		out.Winners = appendUnique(nil, winners...)
		if len(out.Individuals) == 0 {
			// Result-only record: the winner side still counts as listed.
			out.Individuals = appendUnique(out.Individuals, out.Winners...)
		}
		for _, name := range out.Individuals {
			if !containsFold(out.Winners, name) {
				out.Losers = append(out.Losers, name)
			}
		}
		return out
	}

	if strings.TrimSpace(m.Result) != "" && !isDrawLike(m) {
		out.Unclear = true
	}
	return out
}

// participantSides yields the raw "vs"-separated sides of the match.
func participantSides(m event.MatchRecord) []string {
	if len(m.Participants) == 1 && vsSplitRegex.MatchString(m.Participants[0]) {
		return vsSplitRegex.Split(m.Participants[0], -1)
	}
	if len(m.Participants) > 0 {
		return m.Participants
	}
	// No participant field at all: recover both sides from a
	// "<winners> def. <losers>" result when present.
	if groups := defeatRegex.FindStringSubmatch(m.Result); groups != nil {
		return []string{groups[1], groups[2]}
	}
	return nil
}

// splitSide breaks one side into individual names plus any team label.
// "The Pride (Angelo Dawkins & Montez Ford)" keeps the label and yields the
// two members; "A & B" and "A and B" yield members only.
func splitSide(side string) (individuals, labels []string) {
	side = strings.TrimSpace(side)
	if side == "" {
		return nil, nil
	}

	if groups := teamNotationRegex.FindStringSubmatch(side); groups != nil {
		label := strings.TrimSpace(groups[1])
		if label != "" {
			labels = append(labels, label)
		}
		individuals = splitConjunctions(groups[2])
		return individuals, labels
	}

	return splitConjunctions(side), nil
}

func splitConjunctions(s string) []string {
	replaced := strings.NewReplacer(" & ", "\x00", " and ", "\x00", ", ", "\x00").Replace(s)
	parts := strings.Split(replaced, "\x00")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// extractWinners tries the winner strategies in documented order: explicit
// field, "Winner:" statistics fragment, "def." result split, "won the"
// phrasing, bare "wins" phrasing.
func extractWinners(m event.MatchRecord) ([]string, bool) {
	if w := strings.TrimSpace(m.Winner); w != "" {
		return splitConjunctions(w), true
	}

	if groups := winnerStatRegex.FindStringSubmatch(m.Statistics); groups != nil {
		return splitConjunctions(groups[1]), true
	}

	result := strings.TrimSpace(m.Result)
	if result == "" {
		return nil, false
	}

	if groups := defeatRegex.FindStringSubmatch(result); groups != nil {
		winners, _ := splitSide(groups[1])
		if len(winners) > 0 {
			return winners, true
		}
	}

	if groups := wonTheRegex.FindStringSubmatch(result); groups != nil {
		winners, _ := splitSide(groups[1])
		if len(winners) > 0 {
			return winners, true
		}
	}

	if groups := bareWinsRegex.FindStringSubmatch(result); groups != nil {
		winners, _ := splitSide(groups[1])
		if len(winners) > 0 {
			return winners, true
		}
	}

	return nil, false
}

func isDrawLike(m event.MatchRecord) bool {
	method := strings.ToLower(m.Method)
	result := strings.ToLower(m.Result)
	for _, needle := range []string{"no contest", "draw", "time limit", "double count"} {
		if strings.Contains(method, needle) || strings.Contains(result, needle) {
			return true
		}
	}
	return false
}

func isNoContest(m event.MatchRecord) bool {
	return strings.Contains(strings.ToLower(m.Method), "no contest") ||
		strings.Contains(strings.ToLower(m.Result), "no contest")
}

func isDisqualification(m event.MatchRecord) bool {
	method := strings.ToLower(m.Method)
	return strings.Contains(method, "dq") || strings.Contains(method, "disqualification")
}

func appendUnique(dst []string, names ...string) []string {
	for _, name := range names {
		if name == "" || containsFold(dst, name) {
			continue
		}
		dst = append(dst, name)
	}
	return dst
}

func containsFold(list []string, name string) bool {
	for _, item := range list {
		if strings.EqualFold(item, name) {
			return true
		}
	}
	return false
}
