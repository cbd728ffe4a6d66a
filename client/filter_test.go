package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterSnack(id int, name, country, kind, description string, tags []string, summary rating.Summary) Snack {
	return Snack{SnackWithSummaryResponse: models.SnackWithSummaryResponse{
		SnackResponse: models.SnackResponse{
			ID: id, Name: name, Country: country, Type: kind, Description: description, Tags: tags,
		},
		RatingSummary: summary,
	}}
}

func TestFilterMatch(t *testing.T) {
	mochi := filterSnack(1, "Mochi", "Japan", "dessert", "Chewy rice cake", []string{"Sweet", "chewy"},
		rating.Summary{Taste: 4.5, Spiciness: 1, Uniqueness: 4, Count: 3})

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"Empty filter matches", Filter{}, true},
		{"Search on name ignores case", Filter{Search: "MOCH"}, true},
		{"Search on description", Filter{Search: "rice"}, true},
		{"Search on country", Filter{Search: "jap"}, true},
		{"Search on tag", Filter{Search: "sweet"}, true},
		{"Search without hit", Filter{Search: "taco"}, false},
		{"Country exact", Filter{Country: "Japan"}, true},
		{"Country is case sensitive", Filter{Country: "japan"}, false},
		{"Type exact", Filter{Type: "dessert"}, true},
		{"Type mismatch", Filter{Type: "soup"}, false},
		{"Min taste reached", Filter{MinTaste: 4.5}, true},
		{"Min taste missed", Filter{MinTaste: 4.6}, false},
		{"Min spiciness missed", Filter{MinSpiciness: 2}, false},
		{"Min uniqueness reached", Filter{MinUniqueness: 4}, true},
		{"All criteria together", Filter{Search: "chewy", Country: "Japan", Type: "dessert", MinTaste: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(mochi))
		})
	}
}

func TestRepositoryFilter(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo := NewRepository(NewClient(url), NewFileStore(filepath.Join(t.TempDir(), "s.json")))
	for _, s := range []Snack{
		localSnack(0, "Brigadeiro", "Brazil"),
		localSnack(0, "Pastel de Nata", "Portugal"),
		localSnack(0, "Coxinha", "Brazil"),
	} {
		_, err := repo.AddLocal(ctx, s)
		require.NoError(t, err)
	}

	brazil := repo.Filter(Filter{Country: "Brazil"})
	require.Len(t, brazil, 2)
	assert.Equal(t, "Brigadeiro", brazil[0].Name)
	assert.Equal(t, "Coxinha", brazil[1].Name)

	assert.Len(t, repo.Filter(Filter{Search: "nata"}), 1)
	assert.Empty(t, repo.Filter(Filter{MinTaste: 5}))
	assert.Equal(t, []string{"Brazil", "Portugal"}, repo.Countries())
}
