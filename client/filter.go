package client

import "strings"

// Filter narrows the merged view. Zero fields match everything. Search is a
// case-insensitive substring match over name, description, country and
// tags; Country and Type must match exactly; the Min fields are lower bounds
// on the displayed rating summary.
type Filter struct {
	Search        string
	Country       string
	Type          string
	MinTaste      float64
	MinSpiciness  float64
	MinUniqueness float64
}

func (f Filter) Match(s Snack) bool {
	if term := strings.ToLower(f.Search); term != "" && !matchesSearch(s, term) {
		return false
	}
	if f.Country != "" && s.Country != f.Country {
		return false
	}
	if f.Type != "" && s.Type != f.Type {
		return false
	}

	summary := s.RatingSummary()
	return summary.Taste >= f.MinTaste &&
		summary.Spiciness >= f.MinSpiciness &&
		summary.Uniqueness >= f.MinUniqueness
}

func matchesSearch(s Snack, term string) bool {
	if strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(s.Description), term) ||
		strings.Contains(strings.ToLower(s.Country), term) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Filter returns the snacks of the current view that match f, in view order.
func (r *Repository) Filter(f Filter) []Snack {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Snack, 0, len(r.view))
	for _, s := range r.view {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}

// Countries lists the distinct countries of the current view in first-seen order.
func (r *Repository) Countries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, s := range r.view {
		if _, ok := seen[s.Country]; ok {
			continue
		}
		seen[s.Country] = struct{}{}
		out = append(out, s.Country)
	}
	return out
}
