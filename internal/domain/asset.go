package domain

import (
	"time"
)

// AssetStatus tracks where a contribution sits in the curation lifecycle.
type AssetStatus string

const (
	StatusPrivate  AssetStatus = "private"  // owned by a single user, never listed publicly
	StatusPending  AssetStatus = "pending"  // awaiting admin verification
	StatusVerified AssetStatus = "verified" // publicly searchable
)

// LanguageAsset represents one user-contributed audio recording with its
// transcription and curation metadata. The audio bytes themselves live in
// the blob store; AudioURL points back at the retrieval endpoint.
type LanguageAsset struct {
	AssetID       string `bson:"_id" json:"assetId"`
	ContributorID string `bson:"contributorId" json:"contributorId"` // anonymised, minted per contribution

	LanguageName   string `bson:"languageName" json:"languageName"`
	Dialect        string `bson:"dialect" json:"dialect"`
	TargetLanguage string `bson:"targetLanguage" json:"targetLanguage"`

	Transcript         string  `bson:"transcript" json:"transcript"`
	EnglishTranslation *string `bson:"englishTranslation,omitempty" json:"englishTranslation"`

	AudioURL string `bson:"audioUrl" json:"audioUrl"`

	ConsentGiven     bool      `bson:"consentGiven" json:"consentGiven"`
	ConsentTimestamp time.Time `bson:"consentTimestamp" json:"consentTimestamp"`

	// Location data for the contribution map. Coordinates are optional.
	Region    *string  `bson:"region,omitempty" json:"region"`
	City      *string  `bson:"city,omitempty" json:"city"`
	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude"`

	Status AssetStatus `bson:"status" json:"status"`

	// Private collection support. UserID is a client-minted opaque token;
	// knowledge of the token is treated as sufficient authority.
	IsPrivate bool    `bson:"isPrivate" json:"isPrivate"`
	UserID    *string `bson:"userId,omitempty" json:"userId"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OwnedBy reports whether the asset is a private collection item belonging
// to the given user.
func (a *LanguageAsset) OwnedBy(userID string) bool {
	return a.IsPrivate && a.UserID != nil && *a.UserID == userID
}
