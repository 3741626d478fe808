// Package ai wraps the OpenAI-compatible services the labeling tool depends
// on: text embeddings for semantic search and vision captions for
// image-based similarity search.
package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be safe for concurrent use.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Captioner produces an art-historical description of an image. The caption
// is embedded to search the collection by visual similarity.
type Captioner interface {
	CaptionImage(ctx context.Context, imageURL string) (string, error)
}
