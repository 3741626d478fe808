package operator

import (
	"context"
	"fmt"
	"strings"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

// hydrator turns ranked semantic matches into display items: it slices to
// the preview count, fetches full artwork metadata for the slice, and
// resolves image links against the image base URL. Match order is preserved.
type hydrator struct {
	artworks     domain.ArtworkRepository
	imageBaseURL string
	previewCount int
}

func (h hydrator) hydrateMatches(ctx context.Context, matches []domain.SemanticMatch) ([]Item, error) {
	preview := matches
	if len(preview) > h.previewCount {
		preview = preview[:h.previewCount]
	}
	if len(preview) == 0 {
		return []Item{}, nil
	}

	inventories := make([]string, 0, len(preview))
	for _, m := range preview {
		inventories = append(inventories, m.InventoryNumber)
	}

	artworks, _, err := h.artworks.List(ctx, domain.ArtworkFilter{
		Inventories: inventories,
		Limit:       len(inventories),
	})
	if err != nil {
		return nil, fmt.Errorf("hydrate matches: %w", err)
	}

	byInventory := make(map[string]*domain.Artwork, len(artworks))
	for _, a := range artworks {
		byInventory[a.InventoryNumber] = a
	}

	items := make([]Item, 0, len(preview))
	for _, m := range preview {
		a, ok := byInventory[m.InventoryNumber]
		if !ok {
			// Match with no artwork row; the caption index is stale.
			continue
		}
		item := h.toItem(a)
		item.Similarity = m.Similarity
		items = append(items, item)
	}
	return items, nil
}

func (h hydrator) toItem(a *domain.Artwork) Item {
	return Item{
		Inventory: a.InventoryNumber,
		Title:     displayOr(a.Title, "Untitled"),
		Artist:    displayOr(a.Artist, "Unknown Artist"),
		Year:      displayOr(a.Dating, "N/A"),
		ImageURL:  ResolveImageURL(h.imageBaseURL, a.ImageLink),
	}
}

// DisplayItem formats an artwork for display outside the pipeline, using
// the same fallbacks and image URL resolution as operator results.
func DisplayItem(a *domain.Artwork, imageBaseURL string) Item {
	h := hydrator{imageBaseURL: imageBaseURL}
	return h.toItem(a)
}

// ResolveImageURL joins a stored image path with the configured base URL.
// Absolute URLs pass through untouched.
func ResolveImageURL(base, link string) string {
	if link == "" || strings.HasPrefix(link, "http") {
		return link
	}
	if strings.HasPrefix(link, "/") {
		return base + link
	}
	return base + "/" + link
}

func displayOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
