package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/storage"
)

//go:embed snacks.json
var defaultSnacks []byte

const (
	defaultPhotographer = "Photo by Unsplash"
	defaultTaste        = 3.0
	defaultSpiciness    = 1.0
	defaultUniqueness   = 3.0
)

type entry struct {
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	ImageURL     string   `json:"imageUrl"`
	Photographer string   `json:"photographer"`
	Tags         []string `json:"tags"`
	Ratings      *struct {
		Taste      *float64 `json:"taste"`
		Spiciness  *float64 `json:"spiciness"`
		Uniqueness *float64 `json:"uniqueness"`
	} `json:"ratings"`
}

// Snacks returns the embedded seed catalogue as storage rows without ids.
func Snacks() ([]*storage.Snack, error) {
	return Parse(defaultSnacks)
}

// Parse decodes a seed file and fills in the defaults for missing fields.
func Parse(data []byte) ([]*storage.Snack, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}

	out := make([]*storage.Snack, 0, len(entries))
	for _, e := range entries {
		snack := &storage.Snack{
			Name:           e.Name,
			Country:        e.Country,
			Description:    e.Description,
			Type:           e.Type,
			ImageURL:       e.ImageURL,
			Photographer:   e.Photographer,
			Tags:           e.Tags,
			BaseTaste:      defaultTaste,
			BaseSpiciness:  defaultSpiciness,
			BaseUniqueness: defaultUniqueness,
			BaseCount:      1,
		}
		if snack.Photographer == "" {
			snack.Photographer = defaultPhotographer
		}
		if len(snack.Tags) == 0 {
			snack.Tags = []string{e.Type}
		}
		if r := e.Ratings; r != nil {
			if r.Taste != nil {
				snack.BaseTaste = *r.Taste
			}
			if r.Spiciness != nil {
				snack.BaseSpiciness = *r.Spiciness
			}
			if r.Uniqueness != nil {
				snack.BaseUniqueness = *r.Uniqueness
			}
		}
		out = append(out, snack)
	}
	return out, nil
}

// Populate inserts the embedded catalogue into store. A store that already
// holds snacks is left untouched. Returns how many snacks were inserted.
func Populate(ctx context.Context, store storage.SnackStorage) (int, error) {
	count, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count snacks: %w", err)
	}
	if count > 0 {
		logging.Log.Infof("SEED: store already has %d snacks, skipping", count)
		return 0, nil
	}

	rows, err := Snacks()
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if err := store.Create(ctx, row); err != nil {
			return i, fmt.Errorf("insert %q: %w", row.Name, err)
		}
	}
	logging.Log.Infof("SEED: inserted %d snacks", len(rows))
	return len(rows), nil
}
