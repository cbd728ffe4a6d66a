package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/rating"
)

var ErrUnknownSnack = errors.New("snack is not in the current view")

// Snack is one entry of the merged view. Local marks snacks that only exist
// in the local store.
type Snack struct {
	models.SnackWithSummaryResponse
	Local bool `json:"local,omitempty"`
}

func (s Snack) RatingSummary() rating.Summary { return s.SnackWithSummaryResponse.RatingSummary }
func (s Snack) SnackCountry() string          { return s.Country }
func (s Snack) SnackCategory() string         { return s.Type }
func (s Snack) SnackTags() []string           { return s.Tags }

// Repository holds the merged catalogue: server snacks first in server
// order, then local snacks whose id the server does not know. On a server
// id collision the server entry wins. Safe for concurrent use.
type Repository struct {
	api   *Client
	local LocalStore

	// storeMu serialises every read-modify-write of the local store and is
	// always taken before mu.
	storeMu sync.Mutex

	mu      sync.RWMutex
	view    []Snack
	events  map[int][]rating.Scores
	offline bool
}

func NewRepository(api *Client, local LocalStore) *Repository {
	return &Repository{api: api, local: local, events: make(map[int][]rating.Scores)}
}

// Refresh reloads the view. When the server is unreachable the view falls
// back to local snacks and Offline reports true; that is not an error.
func (r *Repository) Refresh(ctx context.Context) error {
	remote, remoteErr := r.api.Snacks(ctx)

	r.storeMu.Lock()
	defer r.storeMu.Unlock()

	localSnacks, err := r.local.Load(ctx)
	if err != nil {
		return err
	}
	for i := range localSnacks {
		localSnacks[i].Local = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make(map[int][]rating.Scores)
	if remoteErr != nil {
		logging.Log.Warnf("CLIENT: could not fetch snacks, using local copy: %v", remoteErr)
		r.view = localSnacks
		r.offline = true
		return nil
	}
	r.view = merge(remote, localSnacks)
	r.offline = false
	return nil
}

func merge(remote []models.SnackWithSummaryResponse, localSnacks []Snack) []Snack {
	out := make([]Snack, 0, len(remote)+len(localSnacks))
	seen := make(map[int]struct{}, len(remote))
	for _, s := range remote {
		seen[s.ID] = struct{}{}
		out = append(out, Snack{SnackWithSummaryResponse: s})
	}
	for _, s := range localSnacks {
		if _, ok := seen[s.ID]; ok {
			continue
		}
		seen[s.ID] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (r *Repository) Offline() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.offline
}

// All returns a copy of the current view.
func (r *Repository) All() []Snack {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Snack(nil), r.view...)
}

// AddLocal stores a snack locally. A zero id gets the next id above every
// known snack. The summary is derived from the snack's base ratings.
func (r *Repository) AddLocal(ctx context.Context, snack Snack) (Snack, error) {
	r.storeMu.Lock()
	defer r.storeMu.Unlock()

	stored, err := r.local.Load(ctx)
	if err != nil {
		return Snack{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if snack.ID == 0 {
		snack.ID = nextID(r.view, stored)
	}
	for _, s := range stored {
		if s.ID == snack.ID {
			return Snack{}, fmt.Errorf("local snack %d already exists", snack.ID)
		}
	}
	if snack.Tags == nil {
		snack.Tags = []string{}
	}
	snack.Local = true
	snack.SnackWithSummaryResponse.RatingSummary = rating.ComputeSummary(snack.Ratings, nil)

	if err := r.local.Save(ctx, append(stored, snack)); err != nil {
		return Snack{}, err
	}
	for _, s := range r.view {
		if s.ID == snack.ID {
			return snack, nil
		}
	}
	r.view = append(r.view, snack)
	return snack, nil
}

func nextID(lists ...[]Snack) int {
	highest := 0
	for _, list := range lists {
		for _, s := range list {
			if s.ID > highest {
				highest = s.ID
			}
		}
	}
	return highest + 1
}

// Leaderboard ranks the current view with the same rules the server uses.
func (r *Repository) Leaderboard() rating.Leaderboard[Snack] {
	return rating.BuildLeaderboard(r.All())
}

// OptimisticRating adds scores to a snack's displayed summary without
// waiting for the server. The summary is recomputed from the snack's base
// ratings and every known event, so it matches what the server will report.
// Server snacks have their events fetched on first use; the next Refresh
// drops everything recorded here.
func (r *Repository) OptimisticRating(ctx context.Context, id int, scores rating.Scores) (rating.Summary, error) {
	if err := rating.ValidateScores(scores); err != nil {
		return rating.Summary{}, err
	}

	r.mu.RLock()
	snack, found := r.find(id)
	_, cached := r.events[id]
	r.mu.RUnlock()
	if !found {
		return rating.Summary{}, ErrUnknownSnack
	}

	var fetched []rating.Scores
	if !cached && !snack.Local {
		view, err := r.api.Ratings(ctx, id)
		if err != nil {
			return rating.Summary{}, fmt.Errorf("load ratings of snack %d: %w", id, err)
		}
		for _, e := range view.Entries {
			fetched = append(fetched, rating.Scores{Taste: e.Taste, Spiciness: e.Spiciness, Uniqueness: e.Uniqueness})
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return rating.Summary{}, ErrUnknownSnack
	}
	events, ok := r.events[id]
	if !ok {
		events = fetched
	}
	events = append(append([]rating.Scores(nil), events...), scores)
	r.events[id] = events

	summary := rating.ComputeSummary(r.view[i].Ratings, events)
	r.view[i].SnackWithSummaryResponse.RatingSummary = summary
	return summary, nil
}

func (r *Repository) find(id int) (Snack, bool) {
	if i := r.index(id); i >= 0 {
		return r.view[i], true
	}
	return Snack{}, false
}

func (r *Repository) index(id int) int {
	for i := range r.view {
		if r.view[i].ID == id {
			return i
		}
	}
	return -1
}
