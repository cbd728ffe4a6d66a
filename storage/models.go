package storage

import "time"

// Snack is the stored snack row. BaseTaste, BaseSpiciness and BaseUniqueness
// hold the seed-time rating triple, BaseCount how many ratings it stands for.
type Snack struct {
	ID             int       `dynamodbav:"PK" json:"id"`
	Name           string    `dynamodbav:"Name" json:"name"`
	Country        string    `dynamodbav:"Country" json:"country"`
	Description    string    `dynamodbav:"Description" json:"description"`
	Type           string    `dynamodbav:"Type" json:"type"`
	ImageURL       string    `dynamodbav:"ImageURL" json:"imageUrl"`
	Photographer   string    `dynamodbav:"Photographer" json:"photographer"`
	Tags           []string  `dynamodbav:"Tags" json:"tags"`
	BaseTaste      float64   `dynamodbav:"BaseTaste" json:"baseTaste"`
	BaseSpiciness  float64   `dynamodbav:"BaseSpiciness" json:"baseSpiciness"`
	BaseUniqueness float64   `dynamodbav:"BaseUniqueness" json:"baseUniqueness"`
	BaseCount      int       `dynamodbav:"BaseCount" json:"baseCount"`
	CreatedAt      time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

// Rating is one submitted rating event. Append only.
type Rating struct {
	SnackID    int       `dynamodbav:"PK" db:"snack_id" json:"snackId"`
	SortKey    string    `dynamodbav:"SK" db:"-" json:"-"` // CreatedAt#ID, keeps items chronological
	ID         string    `dynamodbav:"ID" db:"id" json:"id"`
	Taste      int       `dynamodbav:"Taste" db:"taste" json:"taste"`
	Spiciness  int       `dynamodbav:"Spiciness" db:"spiciness" json:"spiciness"`
	Uniqueness int       `dynamodbav:"Uniqueness" db:"uniqueness" json:"uniqueness"`
	CreatedAt  time.Time `dynamodbav:"CreatedAt" db:"created_at" json:"createdAt"`
}

// Comment is one comment left on a snack. Append only.
type Comment struct {
	SnackID   int       `dynamodbav:"PK" db:"snack_id" json:"snackId"`
	SortKey   string    `dynamodbav:"SK" db:"-" json:"-"`
	ID        string    `dynamodbav:"ID" db:"id" json:"id"`
	Text      string    `dynamodbav:"Text" db:"text" json:"text"`
	Author    string    `dynamodbav:"Author" db:"author" json:"author"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" db:"created_at" json:"createdAt"`
}

// Profile is the application side of a user account. ID matches the user id
// issued by the auth provider.
type Profile struct {
	ID                string    `dynamodbav:"PK" db:"id" json:"id"`
	Email             string    `dynamodbav:"Email" db:"email" json:"email"`
	Username          string    `dynamodbav:"Username" db:"username" json:"username"`
	ProfilePictureURL *string   `dynamodbav:"ProfilePictureURL" db:"profile_picture_url" json:"profile_picture_url"`
	CreatedAt         time.Time `dynamodbav:"CreatedAt" db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `dynamodbav:"UpdatedAt" db:"updated_at" json:"updated_at"`
}

// ProfileUpdate carries the fields to change; nil fields are left alone.
// A ProfilePictureURL pointing at "" clears the picture.
type ProfileUpdate struct {
	Username          *string
	ProfilePictureURL *string
}

func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.ProfilePictureURL == nil
}
