// Package rating aggregates snack ratings into summaries and leaderboards.
//
// Everything here is pure: callers fetch snacks and rating events first and
// pass them in. The same functions back the API server and the Go client's
// offline view, so both always agree on the numbers.
package rating

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Scores is a single submitted rating.
type Scores struct {
	Taste      int `json:"taste"`
	Spiciness  int `json:"spiciness"`
	Uniqueness int `json:"uniqueness"`
}

// Base is the seed-time rating triple stored on a snack, along with how many
// ratings it stands for.
type Base struct {
	Taste      float64 `json:"taste"`
	Spiciness  float64 `json:"spiciness"`
	Uniqueness float64 `json:"uniqueness"`
	Count      int     `json:"count"`
}

// Summary is the weighted mean of a snack's base triple and all of its
// rating events. Means are rounded to one decimal place.
type Summary struct {
	Taste      float64 `json:"taste"`
	Spiciness  float64 `json:"spiciness"`
	Uniqueness float64 `json:"uniqueness"`
	Count      int     `json:"count"`
}

// ComputeSummary folds events into the base triple. The base triple weighs
// base.Count, every event weighs 1. An empty input yields the zero Summary.
func ComputeSummary(base Base, events []Scores) Summary {
	baseCount := base.Count
	if baseCount < 0 {
		baseCount = 0
	}

	count := baseCount + len(events)
	if count == 0 {
		return Summary{}
	}

	weight := decimal.NewFromInt(int64(baseCount))
	taste := decimal.NewFromFloat(base.Taste).Mul(weight)
	spiciness := decimal.NewFromFloat(base.Spiciness).Mul(weight)
	uniqueness := decimal.NewFromFloat(base.Uniqueness).Mul(weight)

	for _, e := range events {
		taste = taste.Add(decimal.NewFromInt(int64(e.Taste)))
		spiciness = spiciness.Add(decimal.NewFromInt(int64(e.Spiciness)))
		uniqueness = uniqueness.Add(decimal.NewFromInt(int64(e.Uniqueness)))
	}

	n := decimal.NewFromInt(int64(count))
	return Summary{
		Taste:      taste.DivRound(n, 1).InexactFloat64(),
		Spiciness:  spiciness.DivRound(n, 1).InexactFloat64(),
		Uniqueness: uniqueness.DivRound(n, 1).InexactFloat64(),
		Count:      count,
	}
}

// OverallAverage is the mean of the three summary means rounded to two
// decimals, or 0 for a snack nobody has rated.
func OverallAverage(s Summary) float64 {
	if s.Count == 0 {
		return 0
	}
	sum := decimal.NewFromFloat(s.Taste).
		Add(decimal.NewFromFloat(s.Spiciness)).
		Add(decimal.NewFromFloat(s.Uniqueness))
	return sum.DivRound(decimal.NewFromInt(3), 2).InexactFloat64()
}

// Round rounds half away from zero to the given number of decimal places.
func Round(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// ScoreError lists every out-of-range dimension of a rating.
type ScoreError struct {
	Fields []string
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("ratings must be integers between %d and %d: %s", MinScore, MaxScore, strings.Join(e.Fields, ", "))
}

// ValidateScores checks that every dimension lies in [MinScore, MaxScore].
func ValidateScores(s Scores) error {
	var bad []string
	if !inRange(s.Taste) {
		bad = append(bad, "taste")
	}
	if !inRange(s.Spiciness) {
		bad = append(bad, "spiciness")
	}
	if !inRange(s.Uniqueness) {
		bad = append(bad, "uniqueness")
	}
	if len(bad) > 0 {
		return &ScoreError{Fields: bad}
	}
	return nil
}

func inRange(v int) bool {
	return v >= MinScore && v <= MaxScore
}
