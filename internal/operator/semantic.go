package operator

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/ai"
	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

const KeySemanticSearch = "semantic_search"

// SemanticSearch embeds the query text and ranks the collection by cosine
// similarity in the database.
type SemanticSearch struct {
	artworks    domain.ArtworkRepository
	embedder    ai.Embedder
	searchLimit int
	hydrator    hydrator
}

func NewSemanticSearch(artworks domain.ArtworkRepository, embedder ai.Embedder, imageBaseURL string, previewCount, searchLimit int) *SemanticSearch {
	return &SemanticSearch{
		artworks:    artworks,
		embedder:    embedder,
		searchLimit: searchLimit,
		hydrator:    hydrator{artworks: artworks, imageBaseURL: imageBaseURL, previewCount: previewCount},
	}
}

func (s *SemanticSearch) Descriptor() Descriptor {
	params := []ParamSpec{
		{Name: "query_text", Type: "text", Label: "Search query", Required: true},
	}
	return Descriptor{
		Key:         KeySemanticSearch,
		Name:        "Semantic Search",
		Icon:        "psychology",
		Description: "Find artworks by meaning using text embeddings",
		Params:      append(params, resultModeParams...),
	}
}

func (s *SemanticSearch) Configured(p Params) bool {
	return p.String("query_text") != ""
}

func (s *SemanticSearch) Execute(ctx context.Context, p Params) (*Result, error) {
	queryText := p.String("query_text")
	if queryText == "" {
		return nil, domain.ErrInvalidQuery
	}

	log.WithField("query", queryText).Info("semantic search started")

	embedding, err := s.embedder.EmbedText(ctx, queryText)
	if err != nil {
		return nil, err
	}
	if len(embedding) == 0 {
		return nil, domain.ErrNoEmbedding
	}

	return searchByEmbedding(ctx, s.artworks, s.hydrator, embedding, s.searchLimit, p)
}

// searchByEmbedding runs the shared vector search path: database ranking,
// result mode filtering, preview hydration.
func searchByEmbedding(ctx context.Context, artworks domain.ArtworkRepository, h hydrator, embedding []float32, searchLimit int, p Params) (*Result, error) {
	matches, err := artworks.SemanticSearch(ctx, embedding, searchLimit)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		log.Warn("vector search returned no matches")
		return &Result{Items: []Item{}, Total: 0}, nil
	}

	filtered := applyResultMode(matches, p)
	total := len(filtered)

	items, err := h.hydrateMatches(ctx, filtered)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"total":   total,
		"preview": len(items),
	}).Info("semantic search completed")

	return &Result{Items: items, Total: total}, nil
}
