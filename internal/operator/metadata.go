package operator

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

const KeyMetadataFilter = "metadata_filter"

// MetadataFilter filters the collection on catalogue metadata: artist,
// title, inventory number, year range and source.
type MetadataFilter struct {
	artworks domain.ArtworkRepository
	hydrator hydrator
}

func NewMetadataFilter(artworks domain.ArtworkRepository, imageBaseURL string, previewCount int) *MetadataFilter {
	return &MetadataFilter{
		artworks: artworks,
		hydrator: hydrator{artworks: artworks, imageBaseURL: imageBaseURL, previewCount: previewCount},
	}
}

func (m *MetadataFilter) Descriptor() Descriptor {
	return Descriptor{
		Key:         KeyMetadataFilter,
		Name:        "Metadata Filter",
		Icon:        "filter_alt",
		Description: "Filter artworks by catalogue metadata",
		Params: []ParamSpec{
			{Name: "artist", Type: "text", Label: "Artist name"},
			{Name: "title", Type: "text", Label: "Work title"},
			{Name: "inventory_number", Type: "text", Label: "Inventory number"},
			{Name: "year_from", Type: "int", Label: "Earliest year"},
			{Name: "year_to", Type: "int", Label: "Latest year"},
			{Name: "source", Type: "multiselect", Label: "Collection source"},
		},
	}
}

func (m *MetadataFilter) Configured(p Params) bool {
	if p.String("artist") != "" || p.String("title") != "" || p.String("inventory_number") != "" {
		return true
	}
	if _, ok := p["year_from"]; ok {
		return true
	}
	if _, ok := p["year_to"]; ok {
		return true
	}
	return len(p.Strings("source")) > 0
}

func (m *MetadataFilter) Execute(ctx context.Context, p Params) (*Result, error) {
	filter := domain.ArtworkFilter{
		Inventory: p.String("inventory_number"),
		Artist:    p.String("artist"),
		Title:     p.String("title"),
		Sources:   p.Strings("source"),
		Limit:     m.hydrator.previewCount,
	}
	if _, ok := p["year_from"]; ok {
		y := p.Int("year_from", 0)
		filter.YearFrom = &y
	}
	if _, ok := p["year_to"]; ok {
		y := p.Int("year_to", 0)
		filter.YearTo = &y
	}

	artworks, total, err := m.artworks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(artworks))
	for _, a := range artworks {
		items = append(items, m.hydrator.toItem(a))
	}

	log.WithFields(log.Fields{
		"total":   total,
		"preview": len(items),
	}).Info("metadata filter completed")

	return &Result{Items: items, Total: total}, nil
}
