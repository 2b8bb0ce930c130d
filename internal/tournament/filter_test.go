package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTournaments() []Tournament {
	return []Tournament{
		{ID: 1, Title: "Valorant Champions Cup", Game: "Valorant", EntryFee: 50},
		{ID: 2, Title: "CS:GO Major Tournament", Game: "CS:GO", EntryFee: 75},
		{ID: 3, Title: "Fortnite Friday", Game: "Fortnite", EntryFee: 20},
	}
}

func TestFilterTournaments_AllFiltersAreIdentity(t *testing.T) {
	list := sampleTournaments()

	result := FilterTournaments(list, Filters{SearchTerm: "", Game: "all", FeeBracket: "all"})
	assert.Equal(t, list, result)
}

func TestFilterTournaments_SearchTerm(t *testing.T) {
	list := []Tournament{
		{ID: 1, Title: "Valorant Champions Cup", Game: "Valorant", EntryFee: 50},
		{ID: 2, Title: "CS:GO Major Tournament", Game: "CS:GO", EntryFee: 75},
	}

	result := FilterTournaments(list, Filters{SearchTerm: "valorant", Game: "all", FeeBracket: "all"})
	assert.Len(t, result, 1)
	assert.Equal(t, uint(1), result[0].ID)
}

func TestFilterTournaments_SearchMatchesGameField(t *testing.T) {
	list := []Tournament{
		{ID: 1, Title: "Friday Showdown", Game: "Overwatch 2", EntryFee: 10},
	}

	result := FilterTournaments(list, Filters{SearchTerm: "overwatch"})
	assert.Len(t, result, 1)
}

func TestFilterTournaments_ExactGame(t *testing.T) {
	result := FilterTournaments(sampleTournaments(), Filters{Game: "CS:GO"})
	assert.Len(t, result, 1)
	assert.Equal(t, "CS:GO", result[0].Game)
}

func TestFilterTournaments_FeeBrackets(t *testing.T) {
	list := sampleTournaments()

	low := FilterTournaments(list, Filters{FeeBracket: "low"})
	assert.Len(t, low, 1)
	assert.Equal(t, uint(3), low[0].ID)

	medium := FilterTournaments(list, Filters{FeeBracket: "medium"})
	assert.Len(t, medium, 1)
	assert.Equal(t, uint(1), medium[0].ID)

	high := FilterTournaments(list, Filters{FeeBracket: "high"})
	assert.Len(t, high, 1)
	assert.Equal(t, uint(2), high[0].ID)
}

func TestFilterTournaments_BracketBoundaries(t *testing.T) {
	list := []Tournament{
		{ID: 1, EntryFee: 30},
		{ID: 2, EntryFee: 31},
		{ID: 3, EntryFee: 70},
		{ID: 4, EntryFee: 71},
	}

	assert.Len(t, FilterTournaments(list, Filters{FeeBracket: "low"}), 1)
	assert.Len(t, FilterTournaments(list, Filters{FeeBracket: "medium"}), 2)
	assert.Len(t, FilterTournaments(list, Filters{FeeBracket: "high"}), 1)
}

func TestFilterTournaments_Pure(t *testing.T) {
	list := sampleTournaments()
	filters := Filters{SearchTerm: "tournament", Game: "all", FeeBracket: "high"}

	first := FilterTournaments(list, filters)
	second := FilterTournaments(list, filters)
	assert.Equal(t, first, second)
	assert.Equal(t, sampleTournaments(), list)
}

func TestFilterTournaments_EmptyInput(t *testing.T) {
	result := FilterTournaments(nil, Filters{SearchTerm: "valorant"})
	assert.Empty(t, result)
}
