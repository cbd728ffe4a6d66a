package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name     string
	country  string
	category string
	tags     []string
	summary  Summary
}

func (e entry) RatingSummary() Summary { return e.summary }
func (e entry) SnackCountry() string   { return e.country }
func (e entry) SnackCategory() string  { return e.category }
func (e entry) SnackTags() []string    { return e.tags }

func flat(v float64) Summary {
	return Summary{Taste: v, Spiciness: v, Uniqueness: v, Count: 1}
}

func names(entries []entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.name)
	}
	return out
}

func TestBuildLeaderboard_SingleSnack(t *testing.T) {
	t.Run("Plain snack appears everywhere but sweet foods", func(t *testing.T) {
		only := entry{name: "Biryani", country: "Bangladesh", category: "main", tags: []string{"rice"}, summary: flat(4)}
		board := BuildLeaderboard([]entry{only})

		assert.Equal(t, []string{"Biryani"}, names(board.TopRated))
		assert.Equal(t, []string{"Biryani"}, names(board.Spiciest))
		assert.Equal(t, []string{"Biryani"}, names(board.MostUnique))
		assert.Equal(t, []string{"Biryani"}, names(board.ByCountry))
		assert.NotNil(t, board.SweetFoods)
		assert.Empty(t, board.SweetFoods)
	})

	t.Run("Dessert shows up in sweet foods", func(t *testing.T) {
		only := entry{name: "Mochi", country: "Japan", category: "dessert", summary: flat(4)}
		board := BuildLeaderboard([]entry{only})
		assert.Equal(t, []string{"Mochi"}, names(board.SweetFoods))
	})

	t.Run("Sweet tag shows up in sweet foods", func(t *testing.T) {
		only := entry{name: "Churros", country: "Spain", category: "snack", tags: []string{"fried", "sweet"}, summary: flat(4)}
		board := BuildLeaderboard([]entry{only})
		assert.Equal(t, []string{"Churros"}, names(board.SweetFoods))
	})
}

func TestBuildLeaderboard_Orderings(t *testing.T) {
	entries := []entry{
		{name: "A", country: "Japan", category: "main", summary: Summary{Taste: 4, Spiciness: 1, Uniqueness: 3, Count: 5}},
		{name: "B", country: "Mexico", category: "snack", summary: Summary{Taste: 3, Spiciness: 5, Uniqueness: 2, Count: 5}},
		{name: "C", country: "Japan", category: "dessert", summary: Summary{Taste: 5, Spiciness: 1, Uniqueness: 5, Count: 5}},
		{name: "D", country: "Korea", category: "soup", tags: []string{"Sweet"}, summary: Summary{}},
	}
	board := BuildLeaderboard(entries)

	assert.Equal(t, []string{"C", "B", "A", "D"}, names(board.TopRated))
	assert.Equal(t, []string{"B", "A", "C", "D"}, names(board.Spiciest))
	assert.Equal(t, []string{"C", "A", "B", "D"}, names(board.MostUnique))
	assert.Equal(t, []string{"C", "B", "D"}, names(board.ByCountry))
	// Tag matching is case sensitive.
	assert.Equal(t, []string{"C"}, names(board.SweetFoods))

	// Input untouched.
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(entries))
}

func TestBuildLeaderboard_StableTieBreak(t *testing.T) {
	entries := []entry{
		{name: "first", country: "Peru", summary: flat(3)},
		{name: "second", country: "Chile", summary: flat(3)},
		{name: "third", country: "Peru", summary: flat(3)},
		{name: "fourth", country: "Chile", summary: flat(4)},
	}
	board := BuildLeaderboard(entries)

	assert.Equal(t, []string{"fourth", "first", "second", "third"}, names(board.TopRated))
	assert.Equal(t, []string{"fourth", "first", "second", "third"}, names(board.Spiciest))
	// Peru ties between first and third: the first occurrence wins.
	assert.Equal(t, []string{"fourth", "first"}, names(board.ByCountry))
}

func TestBuildLeaderboard_ByCountry(t *testing.T) {
	t.Run("Keeps only the best snack per country", func(t *testing.T) {
		entries := []entry{
			{name: "low", country: "Thailand", summary: flat(3.2)},
			{name: "high", country: "Thailand", summary: flat(4.5)},
		}
		board := BuildLeaderboard(entries)
		assert.Equal(t, []string{"high"}, names(board.ByCountry))
	})

	t.Run("One entry per distinct country, matched exactly", func(t *testing.T) {
		entries := []entry{
			{name: "a", country: "India", summary: flat(2)},
			{name: "b", country: "india", summary: flat(3)},
			{name: "c", country: "India ", summary: flat(4)},
			{name: "d", country: "India", summary: flat(5)},
		}
		board := BuildLeaderboard(entries)
		require.Len(t, board.ByCountry, 3)
		assert.Equal(t, []string{"d", "c", "b"}, names(board.ByCountry))
	})

	t.Run("Representative is the max within its group", func(t *testing.T) {
		entries := []entry{
			{name: "x1", country: "X", summary: flat(1)},
			{name: "y1", country: "Y", summary: flat(5)},
			{name: "x2", country: "X", summary: flat(2.5)},
			{name: "x3", country: "X", summary: flat(2)},
		}
		board := BuildLeaderboard(entries)

		groups := map[string]float64{}
		for _, e := range entries {
			if avg := OverallAverage(e.summary); avg > groups[e.country] {
				groups[e.country] = avg
			}
		}
		for _, rep := range board.ByCountry {
			assert.Equal(t, groups[rep.country], OverallAverage(rep.summary))
		}
		assert.Equal(t, []string{"y1", "x2"}, names(board.ByCountry))
	})
}

func TestBuildLeaderboard_Empty(t *testing.T) {
	board := BuildLeaderboard([]entry{})
	assert.NotNil(t, board.TopRated)
	assert.Empty(t, board.TopRated)
	assert.Empty(t, board.ByCountry)
	assert.Empty(t, board.SweetFoods)
}

func TestIsSweet(t *testing.T) {
	assert.True(t, IsSweet("dessert", nil))
	assert.True(t, IsSweet("main", []string{"sweet"}))
	assert.False(t, IsSweet("Dessert", []string{"sweets"}))
	assert.False(t, IsSweet("street food", nil))
}
