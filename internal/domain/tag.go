package domain

import "time"

// Tag is a taxonomy label from one of the controlled vocabularies.
type Tag struct {
	ID          int64     `json:"id"`
	Label       string    `json:"label"`
	Definition  string    `json:"definition"`
	ThesaurusID string    `json:"thesaurus_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArtworkTag links an artwork to a tag at a validation level.
type ArtworkTag struct {
	ArtworkID  string     `json:"artwork_id"`
	TagID      int64      `json:"tag_id"`
	Label      string     `json:"label,omitempty"`
	Provenance Provenance `json:"provenance"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// AssignmentRef identifies a single artwork-tag link for bulk operations.
type AssignmentRef struct {
	ArtworkID string `json:"artwork_id"`
	TagID     int64  `json:"tag_id"`
}

// TagCount is one row of the tag distribution.
type TagCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ActivityBucket aggregates tag activity for one day.
type ActivityBucket struct {
	Date     string `json:"date"`
	Created  int    `json:"created"`
	Deleted  int    `json:"deleted"`
	Promoted int    `json:"promoted"`
	Demoted  int    `json:"demoted"`
}

// Audit actions recorded in the tag_activity table.
const (
	ActionCreated  = "created"
	ActionDeleted  = "deleted"
	ActionPromoted = "promoted"
	ActionDemoted  = "demoted"
)

// TagFilter holds paging and search options for listing tags.
type TagFilter struct {
	Search      string
	ThesaurusID string
	Limit       int
	Offset      int
}
