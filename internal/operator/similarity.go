package operator

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/ai"
	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

const KeySimilaritySearch = "similarity_search"

// SimilaritySearch finds artworks visually similar to an uploaded image.
// The image is described by the vision model and the caption is run through
// the same vector search path as semantic search.
type SimilaritySearch struct {
	artworks    domain.ArtworkRepository
	embedder    ai.Embedder
	captioner   ai.Captioner
	searchLimit int
	hydrator    hydrator
}

func NewSimilaritySearch(artworks domain.ArtworkRepository, embedder ai.Embedder, captioner ai.Captioner, imageBaseURL string, previewCount, searchLimit int) *SimilaritySearch {
	return &SimilaritySearch{
		artworks:    artworks,
		embedder:    embedder,
		captioner:   captioner,
		searchLimit: searchLimit,
		hydrator:    hydrator{artworks: artworks, imageBaseURL: imageBaseURL, previewCount: previewCount},
	}
}

func (s *SimilaritySearch) Descriptor() Descriptor {
	params := []ParamSpec{
		{Name: "image_url", Type: "image", Label: "Query image", Required: true},
	}
	return Descriptor{
		Key:         KeySimilaritySearch,
		Name:        "Similarity Search",
		Icon:        "image_search",
		Description: "Find artworks similar to an uploaded image",
		Params:      append(params, resultModeParams...),
	}
}

func (s *SimilaritySearch) Configured(p Params) bool {
	return p.String("image_url") != ""
}

func (s *SimilaritySearch) Execute(ctx context.Context, p Params) (*Result, error) {
	imageURL := p.String("image_url")
	if imageURL == "" {
		return nil, domain.ErrInvalidQuery
	}

	caption, err := s.captioner.CaptionImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	if caption == "" {
		log.Warn("vision model returned an empty caption")
		return &Result{Items: []Item{}, Total: 0}, nil
	}

	log.WithField("caption_len", len(caption)).Info("similarity search caption generated")

	embedding, err := s.embedder.EmbedText(ctx, caption)
	if err != nil {
		return nil, err
	}
	if len(embedding) == 0 {
		return nil, domain.ErrNoEmbedding
	}

	return searchByEmbedding(ctx, s.artworks, s.hydrator, embedding, s.searchLimit, p)
}
