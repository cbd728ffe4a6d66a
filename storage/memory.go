package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemorySnackStorage keeps snacks in process memory. Used for local runs
// without a database and in tests.
type MemorySnackStorage struct {
	mu     sync.RWMutex
	snacks map[int]Snack
	lastID int
}

func NewMemorySnackStorage() *MemorySnackStorage {
	return &MemorySnackStorage{snacks: make(map[int]Snack)}
}

func (s *MemorySnackStorage) Get(_ context.Context, id int) (*Snack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snack, ok := s.snacks[id]
	if !ok {
		return nil, nil
	}
	return copySnack(snack), nil
}

func (s *MemorySnackStorage) GetAll(_ context.Context) ([]*Snack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snacks := make([]*Snack, 0, len(s.snacks))
	for _, snack := range s.snacks {
		snacks = append(snacks, copySnack(snack))
	}
	sort.Slice(snacks, func(i, j int) bool {
		return snacks[i].ID < snacks[j].ID
	})
	return snacks, nil
}

func (s *MemorySnackStorage) Create(_ context.Context, snack *Snack) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snack.ID == 0 {
		snack.ID = s.lastID + 1
	}
	if _, exists := s.snacks[snack.ID]; exists {
		return ErrItemWithIDAlreadyExists
	}
	if snack.ID > s.lastID {
		s.lastID = snack.ID
	}
	if snack.CreatedAt.IsZero() {
		snack.CreatedAt = time.Now().UTC()
	}
	if snack.Tags == nil {
		snack.Tags = []string{}
	}
	s.snacks[snack.ID] = *copySnack(*snack)
	return nil
}

func (s *MemorySnackStorage) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snacks), nil
}

func copySnack(snack Snack) *Snack {
	snack.Tags = append([]string{}, snack.Tags...)
	return &snack
}

type MemoryRatingStorage struct {
	mu      sync.RWMutex
	ratings map[int][]Rating
}

func NewMemoryRatingStorage() *MemoryRatingStorage {
	return &MemoryRatingStorage{ratings: make(map[int][]Rating)}
}

func (s *MemoryRatingStorage) Create(_ context.Context, rating *Rating) error {
	if err := stamp(&rating.ID, &rating.CreatedAt, &rating.SortKey); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings[rating.SnackID] = append(s.ratings[rating.SnackID], *rating)
	return nil
}

func (s *MemoryRatingStorage) GetBySnack(_ context.Context, snackID int) ([]*Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.ratings[snackID]
	ratings := make([]*Rating, 0, len(stored))
	for i := range stored {
		r := stored[i]
		ratings = append(ratings, &r)
	}
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].SortKey > ratings[j].SortKey
	})
	return ratings, nil
}

type MemoryCommentStorage struct {
	mu       sync.RWMutex
	comments map[int][]Comment
}

func NewMemoryCommentStorage() *MemoryCommentStorage {
	return &MemoryCommentStorage{comments: make(map[int][]Comment)}
}

func (s *MemoryCommentStorage) Create(_ context.Context, comment *Comment) error {
	if err := stamp(&comment.ID, &comment.CreatedAt, &comment.SortKey); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[comment.SnackID] = append(s.comments[comment.SnackID], *comment)
	return nil
}

func (s *MemoryCommentStorage) GetBySnack(_ context.Context, snackID int) ([]*Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.comments[snackID]
	comments := make([]*Comment, 0, len(stored))
	for i := range stored {
		c := stored[i]
		comments = append(comments, &c)
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].SortKey > comments[j].SortKey
	})
	return comments, nil
}

type MemoryProfileStorage struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewMemoryProfileStorage() *MemoryProfileStorage {
	return &MemoryProfileStorage{profiles: make(map[string]Profile)}
}

func (s *MemoryProfileStorage) Get(_ context.Context, id string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (s *MemoryProfileStorage) Create(_ context.Context, profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.ID]; exists {
		return ErrItemWithIDAlreadyExists
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	s.profiles[profile.ID] = *profile
	return nil
}

func (s *MemoryProfileStorage) Update(_ context.Context, id string, update ProfileUpdate) (*Profile, error) {
	if update.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	if update.Username != nil {
		profile.Username = *update.Username
	}
	if update.ProfilePictureURL != nil {
		if *update.ProfilePictureURL == "" {
			profile.ProfilePictureURL = nil
		} else {
			picture := *update.ProfilePictureURL
			profile.ProfilePictureURL = &picture
		}
	}
	profile.UpdatedAt = time.Now().UTC()
	s.profiles[id] = profile
	return &profile, nil
}
