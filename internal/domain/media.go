package domain

import (
	"time"
)

// MediaKind distinguishes the two supported attachment types.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Media is a single photo or video attached to one (user, item) pair.
// UserID and ItemID are weak references: no foreign-key enforcement exists,
// and a Media row with a dangling ItemID is kept but never displayed.
type Media struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	ItemID    string    `bson:"itemId" json:"itemId"`
	Kind      MediaKind `bson:"type" json:"type"`
	URL       string    `bson:"url" json:"url"`             // inline data URI payload
	Thumbnail string    `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"` // images only
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (k MediaKind) Valid() bool {
	return k == MediaKindImage || k == MediaKindVideo
}
