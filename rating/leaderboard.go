package rating

import "sort"

const (
	sweetCategory = "dessert"
	sweetTag      = "sweet"
)

// Ranked is anything the leaderboard can order: a snack paired with its summary.
type Ranked interface {
	RatingSummary() Summary
	SnackCountry() string
	SnackCategory() string
	SnackTags() []string
}

// Leaderboard holds the five orderings over a snack collection. Every list
// is sorted descending by its key with a stable sort, so entries with equal
// keys keep the order they had in the input.
type Leaderboard[T Ranked] struct {
	TopRated   []T `json:"topRated"`
	Spiciest   []T `json:"spiciest"`
	MostUnique []T `json:"mostUnique"`
	ByCountry  []T `json:"byCountry"`
	SweetFoods []T `json:"sweetFoods"`
}

// BuildLeaderboard computes all five orderings. The input slice is not modified.
func BuildLeaderboard[T Ranked](entries []T) Leaderboard[T] {
	overall := func(e T) float64 { return OverallAverage(e.RatingSummary()) }

	return Leaderboard[T]{
		TopRated:   sortDescending(entries, overall),
		Spiciest:   sortDescending(entries, func(e T) float64 { return e.RatingSummary().Spiciness }),
		MostUnique: sortDescending(entries, func(e T) float64 { return e.RatingSummary().Uniqueness }),
		ByCountry:  sortDescending(bestPerCountry(entries), overall),
		SweetFoods: sortDescending(sweet(entries), overall),
	}
}

// IsSweet reports whether a snack belongs on the sweet foods board.
func IsSweet(category string, tags []string) bool {
	if category == sweetCategory {
		return true
	}
	for _, t := range tags {
		if t == sweetTag {
			return true
		}
	}
	return false
}

type keyed[T any] struct {
	item T
	key  float64
}

func sortDescending[T Ranked](entries []T, key func(T) float64) []T {
	items := make([]keyed[T], 0, len(entries))
	for _, e := range entries {
		items = append(items, keyed[T]{item: e, key: key(e)})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key > items[j].key
	})

	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, it.item)
	}
	return out
}

// bestPerCountry keeps the first snack with the highest overall average in
// each country. Countries are compared byte for byte.
func bestPerCountry[T Ranked](entries []T) []T {
	index := make(map[string]int)
	best := make([]keyed[T], 0)

	for _, e := range entries {
		avg := OverallAverage(e.RatingSummary())
		i, seen := index[e.SnackCountry()]
		if !seen {
			index[e.SnackCountry()] = len(best)
			best = append(best, keyed[T]{item: e, key: avg})
			continue
		}
		if avg > best[i].key {
			best[i] = keyed[T]{item: e, key: avg}
		}
	}

	out := make([]T, 0, len(best))
	for _, b := range best {
		out = append(out, b.item)
	}
	return out
}

func sweet[T Ranked](entries []T) []T {
	out := make([]T, 0)
	for _, e := range entries {
		if IsSweet(e.SnackCategory(), e.SnackTags()) {
			out = append(out, e)
		}
	}
	return out
}
