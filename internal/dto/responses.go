package dto

import "time"

type ArtworkResponse struct {
	InventoryNumber  string `json:"inventory_number"`
	RecordID         string `json:"record_id,omitempty"`
	Title            string `json:"title"`
	Artist           string `json:"artist"`
	ArtistFirstName  string `json:"artist_first_name,omitempty"`
	ArtistFamilyName string `json:"artist_family_name,omitempty"`
	Dating           string `json:"dating,omitempty"`
	YearFrom         *int   `json:"year_from,omitempty"`
	YearTo           *int   `json:"year_to,omitempty"`
	Classification   string `json:"classification,omitempty"`
	ObjectType       string `json:"object_type,omitempty"`
	Materials        string `json:"materials,omitempty"`
	Source           string `json:"source,omitempty"`
	ImageURL         string `json:"image_url"`
	Caption          string `json:"caption,omitempty"`
	IconSubject      string `json:"iconography_subject,omitempty"`
	IconTerms        string `json:"iconography_terms,omitempty"`
	IconConceptual   string `json:"iconography_conceptual,omitempty"`
	HasEmbedding     bool   `json:"has_embedding"`
}

type ListArtworksResponse struct {
	Items      []ArtworkResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

type TagResponse struct {
	ID          int64     `json:"id"`
	Label       string    `json:"label"`
	Definition  string    `json:"definition,omitempty"`
	ThesaurusID string    `json:"thesaurus_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListTagsResponse struct {
	Items []TagResponse `json:"items"`
	Total int           `json:"total"`
}

type AssignmentResponse struct {
	ArtworkID  string `json:"artwork_id"`
	TagID      int64  `json:"tag_id"`
	Label      string `json:"label,omitempty"`
	Provenance string `json:"provenance"`
}

type ThesaurusTermsResponse struct {
	ThesaurusID string   `json:"thesaurus_id"`
	Terms       []string `json:"terms"`
}
