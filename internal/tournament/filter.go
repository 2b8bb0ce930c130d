package tournament

import "strings"

// FilterTournaments applies the listing filters in memory. It is a pure
// function: the input slice is never mutated and order is preserved.
func FilterTournaments(tournaments []Tournament, filters Filters) []Tournament {
	filtered := make([]Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if matchesSearch(t, filters.SearchTerm) &&
			matchesGame(t, filters.Game) &&
			matchesFee(t, filters.FeeBracket) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func matchesSearch(t Tournament, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Game), term)
}

func matchesGame(t Tournament, game string) bool {
	if game == "" || game == "all" {
		return true
	}
	return t.Game == game
}

func matchesFee(t Tournament, bracket string) bool {
	switch bracket {
	case "low":
		return t.EntryFee <= 30
	case "medium":
		return t.EntryFee > 30 && t.EntryFee <= 70
	case "high":
		return t.EntryFee > 70
	default:
		return true
	}
}
