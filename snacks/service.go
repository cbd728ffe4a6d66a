// Package snacks orchestrates snack, rating and comment operations on top of
// the storage layer and the rating engine.
package snacks

import (
	"context"

	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/rating"
	"github.com/alex-pricope/snackify/storage"
)

// SnackWithSummary pairs a stored snack with its computed rating summary.
type SnackWithSummary struct {
	Snack   *storage.Snack
	Summary rating.Summary
}

func (s SnackWithSummary) RatingSummary() rating.Summary { return s.Summary }
func (s SnackWithSummary) SnackCountry() string          { return s.Snack.Country }
func (s SnackWithSummary) SnackCategory() string         { return s.Snack.Type }
func (s SnackWithSummary) SnackTags() []string           { return s.Snack.Tags }

// SnackDetail is a single snack with its summary and rating events.
type SnackDetail struct {
	Snack   *storage.Snack
	Summary rating.Summary
	Ratings []*storage.Rating
}

// RatingsView is a snack's summary and its rating events, newest first.
type RatingsView struct {
	Summary rating.Summary
	Entries []*storage.Rating
}

type Service struct {
	snacks   storage.SnackStorage
	ratings  storage.RatingStorage
	comments storage.CommentStorage
}

func NewService(snacks storage.SnackStorage, ratings storage.RatingStorage, comments storage.CommentStorage) *Service {
	return &Service{
		snacks:   snacks,
		ratings:  ratings,
		comments: comments,
	}
}

// BaseOf returns the base rating triple stored on a snack.
func BaseOf(snack *storage.Snack) rating.Base {
	return rating.Base{
		Taste:      snack.BaseTaste,
		Spiciness:  snack.BaseSpiciness,
		Uniqueness: snack.BaseUniqueness,
		Count:      snack.BaseCount,
	}
}

// Summarize computes the summary of a snack over the given rating events.
func Summarize(snack *storage.Snack, events []*storage.Rating) rating.Summary {
	scores := make([]rating.Scores, 0, len(events))
	for _, e := range events {
		scores = append(scores, rating.Scores{Taste: e.Taste, Spiciness: e.Spiciness, Uniqueness: e.Uniqueness})
	}
	return rating.ComputeSummary(BaseOf(snack), scores)
}

// ListSnacks returns every snack with its summary, ordered by ascending id.
func (s *Service) ListSnacks(ctx context.Context) ([]SnackWithSummary, error) {
	all, err := s.snacks.GetAll(ctx)
	if err != nil {
		return nil, upstream("list snacks", err)
	}

	result := make([]SnackWithSummary, 0, len(all))
	for _, snack := range all {
		events, err := s.ratings.GetBySnack(ctx, snack.ID)
		if err != nil {
			return nil, upstream("list ratings", err)
		}
		result = append(result, SnackWithSummary{Snack: snack, Summary: Summarize(snack, events)})
	}
	return result, nil
}

func (s *Service) GetSnack(ctx context.Context, id int) (*SnackDetail, error) {
	snack, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := s.ratings.GetBySnack(ctx, id)
	if err != nil {
		return nil, upstream("list ratings", err)
	}
	return &SnackDetail{Snack: snack, Summary: Summarize(snack, events), Ratings: events}, nil
}

// CreateSnack validates and stores a new snack with a base count of 1.
func (s *Service) CreateSnack(ctx context.Context, in NewSnack) (*storage.Snack, error) {
	in, err := normalizeSnack(in)
	if err != nil {
		return nil, err
	}

	snack := &storage.Snack{
		Name:           in.Name,
		Country:        in.Country,
		Description:    in.Description,
		Type:           in.Type,
		ImageURL:       in.ImageURL,
		Photographer:   in.Photographer,
		Tags:           in.Tags,
		BaseTaste:      *in.Taste,
		BaseSpiciness:  *in.Spiciness,
		BaseUniqueness: *in.Uniqueness,
		BaseCount:      defaultBaseCount,
	}
	if err := s.snacks.Create(ctx, snack); err != nil {
		return nil, upstream("create snack", err)
	}
	logging.Log.Infof("SNACK: created snack %d (%s)", snack.ID, snack.Name)
	return snack, nil
}

// SubmitRating appends a rating event and returns the recomputed view.
// There is no deduplication: every call records a new event.
func (s *Service) SubmitRating(ctx context.Context, snackID int, scores rating.Scores) (*RatingsView, error) {
	if err := rating.ValidateScores(scores); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	snack, err := s.lookup(ctx, snackID)
	if err != nil {
		return nil, err
	}

	event := &storage.Rating{
		SnackID:    snackID,
		Taste:      scores.Taste,
		Spiciness:  scores.Spiciness,
		Uniqueness: scores.Uniqueness,
	}
	if err := s.ratings.Create(ctx, event); err != nil {
		return nil, upstream("create rating", err)
	}

	return s.ratingsView(ctx, snack)
}

func (s *Service) GetRatings(ctx context.Context, snackID int) (*RatingsView, error) {
	snack, err := s.lookup(ctx, snackID)
	if err != nil {
		return nil, err
	}
	return s.ratingsView(ctx, snack)
}

// AddComment appends a comment and returns every comment of the snack,
// newest first.
func (s *Service) AddComment(ctx context.Context, snackID int, in NewComment) ([]*storage.Comment, error) {
	in, err := normalizeComment(in)
	if err != nil {
		return nil, err
	}
	if _, err := s.lookup(ctx, snackID); err != nil {
		return nil, err
	}

	comment := &storage.Comment{SnackID: snackID, Text: in.Text, Author: in.Author}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, upstream("create comment", err)
	}
	return s.listComments(ctx, snackID)
}

func (s *Service) GetComments(ctx context.Context, snackID int) ([]*storage.Comment, error) {
	if _, err := s.lookup(ctx, snackID); err != nil {
		return nil, err
	}
	return s.listComments(ctx, snackID)
}

// Leaderboard ranks every snack. Any fetch failure fails the whole board.
func (s *Service) Leaderboard(ctx context.Context) (rating.Leaderboard[SnackWithSummary], error) {
	entries, err := s.ListSnacks(ctx)
	if err != nil {
		return rating.Leaderboard[SnackWithSummary]{}, err
	}
	return rating.BuildLeaderboard(entries), nil
}

func (s *Service) lookup(ctx context.Context, id int) (*storage.Snack, error) {
	if err := ValidateSnackID(id); err != nil {
		return nil, err
	}
	snack, err := s.snacks.Get(ctx, id)
	if err != nil {
		return nil, upstream("get snack", err)
	}
	if snack == nil {
		return nil, snackNotFound(id)
	}
	return snack, nil
}

func (s *Service) ratingsView(ctx context.Context, snack *storage.Snack) (*RatingsView, error) {
	events, err := s.ratings.GetBySnack(ctx, snack.ID)
	if err != nil {
		return nil, upstream("list ratings", err)
	}
	return &RatingsView{Summary: Summarize(snack, events), Entries: events}, nil
}

func (s *Service) listComments(ctx context.Context, snackID int) ([]*storage.Comment, error) {
	comments, err := s.comments.GetBySnack(ctx, snackID)
	if err != nil {
		return nil, upstream("list comments", err)
	}
	return comments, nil
}
