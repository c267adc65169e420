package domain

import (
	"time"
)

// VisualHeritage represents one user-contributed image together with a
// multilingual description matrix. Translations always contains the
// original Language key mapping to OriginalDescription; the remaining keys
// are AI translations and may be missing when an individual translation
// failed at upload time.
type VisualHeritage struct {
	ID string `bson:"_id" json:"id"`

	Title    string `bson:"title" json:"title"`
	ImageURL string `bson:"imageUrl" json:"imageUrl"`

	OriginalDescription string `bson:"originalDescription" json:"originalDescription"`
	Language            string `bson:"language" json:"language"` // language of the original description

	Translations map[string]string `bson:"translations" json:"translations"`

	ContributorID string  `bson:"contributorId" json:"contributorId"` // anonymised
	Region        *string `bson:"region,omitempty" json:"region"`

	Status AssetStatus `bson:"status" json:"status"` // pending or verified

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
