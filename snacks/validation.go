package snacks

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/alex-pricope/snackify/rating"
)

const (
	DefaultPhotographer = "Photo by User"
	DefaultAuthor       = "Anonymous"

	defaultBaseTaste      = 3
	defaultBaseSpiciness  = 1
	defaultBaseUniqueness = 3
	defaultBaseCount      = 1
)

// SnackTypes are the accepted values of a snack's type.
var SnackTypes = []string{"main", "snack", "dessert", "soup", "street food"}

// NewSnack is the input of CreateSnack. Nil base scores fall back to defaults.
type NewSnack struct {
	Name         string
	Country      string
	Description  string
	Type         string
	ImageURL     string
	Photographer string
	Tags         []string
	Taste        *float64
	Spiciness    *float64
	Uniqueness   *float64
}

// NewComment is the input of AddComment.
type NewComment struct {
	Text   string
	Author string
}

type fieldErrors []FieldError

func (f *fieldErrors) add(field, format string, args ...interface{}) {
	*f = append(*f, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Message: "Validation failed", Details: f}
}

// ValidateSnackID rejects ids that can never name a snack.
func ValidateSnackID(id int) error {
	if id <= 0 {
		return &ValidationError{
			Message: "Validation failed",
			Details: []FieldError{{Field: "id", Message: "Snack ID must be a positive number"}},
		}
	}
	return nil
}

// ParseScores turns raw JSON numbers into rating scores. Missing values,
// fractions and out-of-range values are all reported together.
func ParseScores(taste, spiciness, uniqueness *float64) (rating.Scores, error) {
	var errs fieldErrors
	parse := func(field, label string, v *float64) int {
		switch {
		case v == nil:
			errs.add(field, "%s rating is required", label)
		case math.IsNaN(*v):
			errs.add(field, "%s rating must be a number", label)
		case *v != math.Trunc(*v):
			errs.add(field, "%s rating must be an integer", label)
		case *v < rating.MinScore || *v > rating.MaxScore:
			errs.add(field, "%s rating must be between %d and %d", label, rating.MinScore, rating.MaxScore)
		default:
			return int(*v)
		}
		return 0
	}

	scores := rating.Scores{
		Taste:      parse("taste", "Taste", taste),
		Spiciness:  parse("spiciness", "Spiciness", spiciness),
		Uniqueness: parse("uniqueness", "Uniqueness", uniqueness),
	}
	return scores, errs.err()
}

func normalizeSnack(in NewSnack) (NewSnack, error) {
	var errs fieldErrors

	out := NewSnack{
		Name:         strings.TrimSpace(in.Name),
		Country:      strings.TrimSpace(in.Country),
		Description:  strings.TrimSpace(in.Description),
		Type:         strings.TrimSpace(in.Type),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		Photographer: strings.TrimSpace(in.Photographer),
	}

	requireText(&errs, "name", "Snack name", out.Name, 200)
	requireText(&errs, "country", "Country", out.Country, 100)
	requireText(&errs, "description", "Description", out.Description, 1000)

	if out.Type == "" {
		errs.add("type", "Type is required")
	} else if !validType(out.Type) {
		errs.add("type", "Type must be one of: %s", strings.Join(SnackTypes, ", "))
	}

	if out.ImageURL == "" {
		errs.add("imageUrl", "Image URL is required")
	} else if !IsAbsoluteURL(out.ImageURL) {
		errs.add("imageUrl", "Image URL must be a valid URL")
	}

	if utf8.RuneCountInString(out.Photographer) > 200 {
		errs.add("photographer", "Photographer name must be less than 200 characters")
	}
	if out.Photographer == "" {
		out.Photographer = DefaultPhotographer
	}

	for i, tag := range in.Tags {
		tag = strings.TrimSpace(tag)
		switch n := utf8.RuneCountInString(tag); {
		case n == 0:
			errs.add(fmt.Sprintf("tags.%d", i), "Each tag must be at least 1 character")
		case n > 50:
			errs.add(fmt.Sprintf("tags.%d", i), "Each tag must be less than 50 characters")
		default:
			out.Tags = append(out.Tags, tag)
		}
	}
	if len(in.Tags) == 0 && out.Type != "" {
		out.Tags = []string{out.Type}
	}

	out.Taste = baseScore(&errs, "taste", "Taste", in.Taste, defaultBaseTaste)
	out.Spiciness = baseScore(&errs, "spiciness", "Spiciness", in.Spiciness, defaultBaseSpiciness)
	out.Uniqueness = baseScore(&errs, "uniqueness", "Uniqueness", in.Uniqueness, defaultBaseUniqueness)

	return out, errs.err()
}

func normalizeComment(in NewComment) (NewComment, error) {
	var errs fieldErrors

	out := NewComment{
		Text:   strings.TrimSpace(in.Text),
		Author: strings.TrimSpace(in.Author),
	}
	requireText(&errs, "text", "Comment text", out.Text, 1000)
	if utf8.RuneCountInString(out.Author) > 100 {
		errs.add("author", "Author name must be less than 100 characters")
	}
	if out.Author == "" {
		out.Author = DefaultAuthor
	}
	return out, errs.err()
}

func requireText(errs *fieldErrors, field, label, value string, max int) {
	switch n := utf8.RuneCountInString(value); {
	case n == 0:
		errs.add(field, "%s is required", label)
	case n > max:
		errs.add(field, "%s must be less than %d characters", label, max)
	}
}

func baseScore(errs *fieldErrors, field, label string, v *float64, fallback float64) *float64 {
	if v == nil {
		return &fallback
	}
	switch {
	case math.IsNaN(*v):
		errs.add(field, "%s rating must be a number", label)
	case *v < rating.MinScore || *v > rating.MaxScore:
		errs.add(field, "%s rating must be between %d and %d", label, rating.MinScore, rating.MaxScore)
	case !oneDecimal(*v):
		// base_*_rating columns are NUMERIC(2, 1)
		errs.add(field, "%s rating must have at most one decimal place", label)
	}
	return v
}

func oneDecimal(v float64) bool {
	scaled := v * 10
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

func validType(t string) bool {
	for _, candidate := range SnackTypes {
		if t == candidate {
			return true
		}
	}
	return false
}

// IsAbsoluteURL reports whether raw is an absolute http or https URL.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
