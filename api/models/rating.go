package models

import (
	"github.com/alex-pricope/snackify/rating"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/alex-pricope/snackify/storage"
)

// RatingRequest keeps the raw numbers so fractions, missing values and
// non-numeric values can be reported per field instead of silently truncated.
type RatingRequest struct {
	Taste      *Number `json:"taste"`
	Spiciness  *Number `json:"spiciness"`
	Uniqueness *Number `json:"uniqueness"`
}

type RatingEntryResponse struct {
	Taste      int   `json:"taste"`
	Spiciness  int   `json:"spiciness"`
	Uniqueness int   `json:"uniqueness"`
	Timestamp  int64 `json:"timestamp"`
}

type RatingsResponse struct {
	Summary rating.Summary        `json:"summary"`
	Entries []RatingEntryResponse `json:"entries"`
}

func TransformRatingEntries(events []*storage.Rating) []RatingEntryResponse {
	out := make([]RatingEntryResponse, 0, len(events))
	for _, e := range events {
		out = append(out, RatingEntryResponse{
			Taste:      e.Taste,
			Spiciness:  e.Spiciness,
			Uniqueness: e.Uniqueness,
			Timestamp:  e.CreatedAt.UnixMilli(),
		})
	}
	return out
}

func TransformRatingsView(v *snacks.RatingsView) RatingsResponse {
	return RatingsResponse{
		Summary: v.Summary,
		Entries: TransformRatingEntries(v.Entries),
	}
}
