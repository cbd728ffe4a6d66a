package snacks

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/rating"
	"github.com/alex-pricope/snackify/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (*Service, *storage.MemorySnackStorage) {
	t.Helper()
	logging.Log = logrus.New()

	snackStore := storage.NewMemorySnackStorage()
	return NewService(snackStore, storage.NewMemoryRatingStorage(), storage.NewMemoryCommentStorage()), snackStore
}

func seedSnack(t *testing.T, store storage.SnackStorage, snack *storage.Snack) *storage.Snack {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), snack))
	return snack
}

func floatPtr(v float64) *float64 { return &v }

type failingSnackStorage struct {
	storage.SnackStorage
}

func (failingSnackStorage) GetAll(context.Context) ([]*storage.Snack, error) {
	return nil, errors.New("connection refused")
}

func (failingSnackStorage) Get(context.Context, int) (*storage.Snack, error) {
	return nil, errors.New("connection refused")
}

func TestSubmitRating(t *testing.T) {
	ctx := context.Background()
	service, store := setupTestService(t)
	snack := seedSnack(t, store, &storage.Snack{Name: "Banana Chips", Country: "India", Type: "snack",
		BaseTaste: 4, BaseSpiciness: 2, BaseUniqueness: 3, BaseCount: 2})

	t.Run("Happy path - summary includes the new event", func(t *testing.T) {
		view, err := service.SubmitRating(ctx, snack.ID, rating.Scores{Taste: 5, Spiciness: 2, Uniqueness: 3})
		require.NoError(t, err)

		assert.Equal(t, rating.Summary{Taste: 4.3, Spiciness: 2.0, Uniqueness: 3.0, Count: 3}, view.Summary)
		require.Len(t, view.Entries, 1)
		assert.Equal(t, 5, view.Entries[0].Taste)
	})

	t.Run("Unhappy path - taste out of range", func(t *testing.T) {
		_, err := service.SubmitRating(ctx, snack.ID, rating.Scores{Taste: 6, Spiciness: 1, Uniqueness: 1})
		assert.True(t, IsValidation(err), "Expected a validation error, got %v", err)
	})

	t.Run("Unhappy path - missing snack", func(t *testing.T) {
		_, err := service.SubmitRating(ctx, 999, rating.Scores{Taste: 3, Spiciness: 3, Uniqueness: 3})
		assert.True(t, IsNotFound(err), "Expected not found, got %v", err)
	})

	t.Run("Unhappy path - non positive id", func(t *testing.T) {
		_, err := service.SubmitRating(ctx, 0, rating.Scores{Taste: 3, Spiciness: 3, Uniqueness: 3})
		assert.True(t, IsValidation(err))
	})

	t.Run("Repeated submissions are all recorded", func(t *testing.T) {
		_, err := service.SubmitRating(ctx, snack.ID, rating.Scores{Taste: 1, Spiciness: 1, Uniqueness: 1})
		require.NoError(t, err)
		view, err := service.GetRatings(ctx, snack.ID)
		require.NoError(t, err)
		assert.Len(t, view.Entries, 2)
		assert.Equal(t, 4, view.Summary.Count)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	service, store := setupTestService(t)
	snack := seedSnack(t, store, &storage.Snack{Name: "Mochi", Country: "Japan", Type: "dessert", BaseCount: 1})

	t.Run("Happy path - returns full list with default author", func(t *testing.T) {
		first, err := service.AddComment(ctx, snack.ID, NewComment{Text: "  chewy  "})
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.Equal(t, "chewy", first[0].Text)
		assert.Equal(t, DefaultAuthor, first[0].Author)

		second, err := service.AddComment(ctx, snack.ID, NewComment{Text: "love it", Author: "Kai"})
		require.NoError(t, err)
		assert.Len(t, second, 2)
	})

	t.Run("Unhappy path - blank text", func(t *testing.T) {
		_, err := service.AddComment(ctx, snack.ID, NewComment{Text: "   "})
		require.True(t, IsValidation(err))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "text", verr.Details[0].Field)
	})

	t.Run("Unhappy path - snack 999 does not exist", func(t *testing.T) {
		_, err := service.AddComment(ctx, 999, NewComment{Text: "hello"})
		assert.True(t, IsNotFound(err))
	})

	t.Run("GetComments on missing snack", func(t *testing.T) {
		_, err := service.GetComments(ctx, 999)
		assert.True(t, IsNotFound(err))
	})
}

func TestCreateSnack(t *testing.T) {
	ctx := context.Background()
	service, _ := setupTestService(t)

	t.Run("Happy path - defaults applied", func(t *testing.T) {
		created, err := service.CreateSnack(ctx, NewSnack{
			Name:        " Churros ",
			Country:     "Spain",
			Description: "Fried dough",
			Type:        "dessert",
			ImageURL:    "https://images.example.com/churros.jpg",
		})
		require.NoError(t, err)

		assert.Equal(t, "Churros", created.Name)
		assert.Equal(t, DefaultPhotographer, created.Photographer)
		assert.Equal(t, []string{"dessert"}, created.Tags)
		assert.Equal(t, 3.0, created.BaseTaste)
		assert.Equal(t, 1.0, created.BaseSpiciness)
		assert.Equal(t, 3.0, created.BaseUniqueness)
		assert.Equal(t, 1, created.BaseCount)
		assert.Positive(t, created.ID)
	})

	t.Run("Happy path - explicit scores and tags", func(t *testing.T) {
		created, err := service.CreateSnack(ctx, NewSnack{
			Name: "Tteokbokki", Country: "South Korea", Description: "Rice cakes", Type: "street food",
			ImageURL: "http://img.example/t.png", Tags: []string{" spicy ", "chewy"},
			Taste: floatPtr(4.5), Spiciness: floatPtr(5), Uniqueness: floatPtr(4),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"spicy", "chewy"}, created.Tags)
		assert.Equal(t, 4.5, created.BaseTaste)
	})

	t.Run("Unhappy path - every problem reported", func(t *testing.T) {
		_, err := service.CreateSnack(ctx, NewSnack{
			Name: "", Country: "Peru", Description: "x", Type: "drink", ImageURL: "not a url",
			Taste: floatPtr(7),
		})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))

		fields := make([]string, 0, len(verr.Details))
		for _, d := range verr.Details {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"name", "type", "imageUrl", "taste"}, fields)
	})

	t.Run("Unhappy path - base scores finer than one decimal", func(t *testing.T) {
		_, err := service.CreateSnack(ctx, NewSnack{
			Name: "Halva", Country: "Turkey", Description: "Sesame sweet", Type: "dessert",
			ImageURL: "https://img.example/h.png", Taste: floatPtr(4.25), Spiciness: floatPtr(math.NaN()),
		})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Details, 2)
		assert.Equal(t, FieldError{Field: "taste", Message: "Taste rating must have at most one decimal place"}, verr.Details[0])
		assert.Equal(t, FieldError{Field: "spiciness", Message: "Spiciness rating must be a number"}, verr.Details[1])
	})
}

func TestGetSnackAndList(t *testing.T) {
	ctx := context.Background()
	service, store := setupTestService(t)
	first := seedSnack(t, store, &storage.Snack{Name: "A", Country: "X", BaseTaste: 4, BaseSpiciness: 4, BaseUniqueness: 4, BaseCount: 1})
	seedSnack(t, store, &storage.Snack{Name: "B", Country: "Y", BaseCount: 0})

	detail, err := service.GetSnack(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, rating.Summary{Taste: 4, Spiciness: 4, Uniqueness: 4, Count: 1}, detail.Summary)
	assert.Empty(t, detail.Ratings)

	_, err = service.GetSnack(ctx, 404)
	assert.True(t, IsNotFound(err))

	list, err := service.ListSnacks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Snack.Name)
	assert.Equal(t, rating.Summary{}, list[1].Summary, "Unrated snack should have the zero summary")
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	service, store := setupTestService(t)
	seedSnack(t, store, &storage.Snack{Name: "Low", Country: "Japan", Type: "snack", BaseTaste: 3, BaseSpiciness: 3, BaseUniqueness: 3.6, BaseCount: 1})
	seedSnack(t, store, &storage.Snack{Name: "High", Country: "Japan", Type: "dessert", BaseTaste: 4.5, BaseSpiciness: 4.5, BaseUniqueness: 4.5, BaseCount: 1})
	seedSnack(t, store, &storage.Snack{Name: "Solo", Country: "Peru", Type: "main", Tags: []string{"sweet"}, BaseTaste: 4, BaseSpiciness: 1, BaseUniqueness: 4, BaseCount: 1})

	board, err := service.Leaderboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, "High", board.TopRated[0].Snack.Name)
	require.Len(t, board.ByCountry, 2)
	assert.Equal(t, "High", board.ByCountry[0].Snack.Name)
	assert.Equal(t, "Solo", board.ByCountry[1].Snack.Name)
	require.Len(t, board.SweetFoods, 2)
	assert.Equal(t, "High", board.SweetFoods[0].Snack.Name)

	t.Run("Storage failure fails the whole board", func(t *testing.T) {
		broken := NewService(failingSnackStorage{}, storage.NewMemoryRatingStorage(), storage.NewMemoryCommentStorage())
		_, err := broken.Leaderboard(ctx)

		var upstreamErr *UpstreamError
		assert.True(t, errors.As(err, &upstreamErr))
	})
}

func TestParseScores(t *testing.T) {
	scores, err := ParseScores(floatPtr(1), floatPtr(5), floatPtr(3))
	require.NoError(t, err)
	assert.Equal(t, rating.Scores{Taste: 1, Spiciness: 5, Uniqueness: 3}, scores)

	_, err = ParseScores(nil, floatPtr(2.5), floatPtr(0))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Details, 3)
	assert.Equal(t, "Taste rating is required", verr.Details[0].Message)
	assert.Equal(t, "Spiciness rating must be an integer", verr.Details[1].Message)
	assert.Equal(t, "Uniqueness rating must be between 1 and 5", verr.Details[2].Message)

	_, err = ParseScores(floatPtr(math.NaN()), floatPtr(2), floatPtr(2))
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Details, 1)
	assert.Equal(t, "Taste rating must be a number", verr.Details[0].Message)
}
