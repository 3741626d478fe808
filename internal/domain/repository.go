package domain

import "context"

type ArtworkRepository interface {
	List(ctx context.Context, filter ArtworkFilter) ([]*Artwork, int, error)
	GetByInventory(ctx context.Context, inventoryNumber string) (*Artwork, error)
	Count(ctx context.Context) (int, error)
	SemanticSearch(ctx context.Context, embedding []float32, limit int) ([]SemanticMatch, error)
	ListUncaptioned(ctx context.Context, limit, offset int) ([]*Artwork, error)
	ListUnembedded(ctx context.Context, limit int) ([]*Artwork, error)
	SetCaption(ctx context.Context, inventoryNumber, caption string) error
	SetEmbedding(ctx context.Context, inventoryNumber string, embedding []float32) error
}

type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	GetByID(ctx context.Context, id int64) (*Tag, error)
	GetByLabel(ctx context.Context, label string) (*Tag, error)
	List(ctx context.Context, filter TagFilter) ([]*Tag, int, error)

	Assign(ctx context.Context, link *ArtworkTag, actor string) error
	Unassign(ctx context.Context, ref AssignmentRef, actor string) error
	SetProvenance(ctx context.Context, ref AssignmentRef, from, to Provenance, actor string) error
	ListByLabelAndProvenance(ctx context.Context, label string, provenance Provenance, limit int) ([]*ArtworkTag, error)
	TaggedSet(ctx context.Context, inventoryNumbers []string, label string) (map[string]bool, error)

	Distribution(ctx context.Context, limit, offset int) ([]TagCount, int, error)
	CountTags(ctx context.Context) (int, error)
	CountAssignments(ctx context.Context) (int, error)
	Activity(ctx context.Context, days int) ([]ActivityBucket, error)
}
