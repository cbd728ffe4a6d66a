package models

import (
	"github.com/alex-pricope/snackify/rating"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/alex-pricope/snackify/storage"
)

type CreateSnackRequest struct {
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	ImageURL     string   `json:"imageUrl"`
	Photographer string   `json:"photographer,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Taste        *Number  `json:"taste,omitempty"`
	Spiciness    *Number  `json:"spiciness,omitempty"`
	Uniqueness   *Number  `json:"uniqueness,omitempty"`
}

// SnackResponse is a snack as clients see it. Ratings holds the base triple.
type SnackResponse struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Country      string      `json:"country"`
	Description  string      `json:"description"`
	Type         string      `json:"type"`
	ImageURL     string      `json:"imageUrl"`
	Photographer string      `json:"photographer"`
	Tags         []string    `json:"tags"`
	Ratings      rating.Base `json:"ratings"`
}

type SnackWithSummaryResponse struct {
	SnackResponse
	RatingSummary rating.Summary `json:"ratingSummary"`
}

type SnackDetailResponse struct {
	Snack         SnackResponse         `json:"snack"`
	RatingSummary rating.Summary        `json:"ratingSummary"`
	RatingEntries []RatingEntryResponse `json:"ratingEntries"`
}

func (r CreateSnackRequest) ToNewSnack() snacks.NewSnack {
	return snacks.NewSnack{
		Name:         r.Name,
		Country:      r.Country,
		Description:  r.Description,
		Type:         r.Type,
		ImageURL:     r.ImageURL,
		Photographer: r.Photographer,
		Tags:         r.Tags,
		Taste:        r.Taste.Float(),
		Spiciness:    r.Spiciness.Float(),
		Uniqueness:   r.Uniqueness.Float(),
	}
}

func TransformSnackFromStorage(s *storage.Snack) SnackResponse {
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return SnackResponse{
		ID:           s.ID,
		Name:         s.Name,
		Country:      s.Country,
		Description:  s.Description,
		Type:         s.Type,
		ImageURL:     s.ImageURL,
		Photographer: s.Photographer,
		Tags:         tags,
		Ratings:      snacks.BaseOf(s),
	}
}

func TransformSnackWithSummary(s snacks.SnackWithSummary) SnackWithSummaryResponse {
	return SnackWithSummaryResponse{
		SnackResponse: TransformSnackFromStorage(s.Snack),
		RatingSummary: s.Summary,
	}
}

func TransformSnackList(list []snacks.SnackWithSummary) []SnackWithSummaryResponse {
	out := make([]SnackWithSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, TransformSnackWithSummary(s))
	}
	return out
}

func TransformSnackDetail(d *snacks.SnackDetail) SnackDetailResponse {
	return SnackDetailResponse{
		Snack:         TransformSnackFromStorage(d.Snack),
		RatingSummary: d.Summary,
		RatingEntries: TransformRatingEntries(d.Ratings),
	}
}
