package usecase

import (
	"context"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/operator"
)

type SearchUseCase struct {
	registry *operator.Registry
	artworks domain.ArtworkRepository
}

func NewSearchUseCase(registry *operator.Registry, artworks domain.ArtworkRepository) *SearchUseCase {
	return &SearchUseCase{registry: registry, artworks: artworks}
}

// Operators returns the registry metadata for the frontend operator library.
func (uc *SearchUseCase) Operators() []operator.Descriptor {
	return uc.registry.Describe()
}

// Execute dispatches a search to the named operator.
func (uc *SearchUseCase) Execute(ctx context.Context, key string, params operator.Params) (*operator.Result, error) {
	op, err := uc.registry.Get(key)
	if err != nil {
		return nil, err
	}
	if !op.Configured(params) {
		return nil, &operator.NotConfiguredError{Descriptor: op.Descriptor()}
	}
	return op.Execute(ctx, params)
}

// ListArtworks serves the paginated browse view with metadata filters.
func (uc *SearchUseCase) ListArtworks(ctx context.Context, filter domain.ArtworkFilter) ([]*domain.Artwork, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 12
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return uc.artworks.List(ctx, filter)
}

// GetArtwork returns the full metadata record for the detail view.
func (uc *SearchUseCase) GetArtwork(ctx context.Context, inventoryNumber string) (*domain.Artwork, error) {
	return uc.artworks.GetByInventory(ctx, inventoryNumber)
}
