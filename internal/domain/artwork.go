package domain

import "time"

// Artwork is a single record from the Fabritius collection. The inventory
// number is the natural key used throughout the museum's systems.
type Artwork struct {
	InventoryNumber  string    `json:"inventory_number"`
	RecordID         string    `json:"record_id"`
	Title            string    `json:"title"`
	Artist           string    `json:"artist"`
	ArtistFirstName  string    `json:"artist_first_name"`
	ArtistFamilyName string    `json:"artist_family_name"`
	Dating           string    `json:"dating"`
	YearFrom         *int      `json:"year_from"`
	YearTo           *int      `json:"year_to"`
	Classification   string    `json:"classification"`
	ObjectType       string    `json:"object_type"`
	Materials        string    `json:"materials"`
	Source           string    `json:"source"`
	ImageLink        string    `json:"image_link"`
	Caption          string    `json:"caption"`
	IconSubject      string    `json:"iconography_subject"`
	IconTerms        string    `json:"iconography_terms"`
	IconConceptual   string    `json:"iconography_conceptual"`
	HasEmbedding     bool      `json:"has_embedding"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SemanticMatch is one row returned by the vector_search stored procedure:
// nearest neighbours of a query embedding by cosine distance.
type SemanticMatch struct {
	InventoryNumber string  `json:"inventory_number"`
	Caption         string  `json:"caption"`
	ImageLink       string  `json:"image_link"`
	Similarity      float64 `json:"similarity"`
}

// ArtworkFilter holds the optional metadata filters for listing artworks.
// Inventory is a partial match; Inventories is an exact IN-list used to
// hydrate semantic search results in their ranked order.
type ArtworkFilter struct {
	Inventory   string
	Inventories []string
	Artist      string
	Title       string
	YearFrom    *int
	YearTo      *int
	Sources     []string
	Limit       int
	Offset      int
}
