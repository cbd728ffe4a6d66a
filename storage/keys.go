package storage

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Fixed width so sort keys compare correctly as strings.
const sortKeyTimeFormat = "2006-01-02T15:04:05.000000000Z"

// newEventID returns a short random id for rating and comment rows.
func newEventID() (string, error) {
	return gonanoid.Generate(idAlphabet, 12)
}

// eventSortKey orders events by creation time; the id suffix keeps two events
// created in the same instant apart.
func eventSortKey(createdAt time.Time, id string) string {
	return fmt.Sprintf("%s#%s", createdAt.UTC().Format(sortKeyTimeFormat), id)
}

// stamp fills in the id, timestamp and sort key of a new event row.
func stamp(id *string, createdAt *time.Time, sortKey *string) error {
	if *id == "" {
		generated, err := newEventID()
		if err != nil {
			return err
		}
		*id = generated
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
	*sortKey = eventSortKey(*createdAt, *id)
	return nil
}
