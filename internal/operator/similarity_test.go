package operator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/testutil"
)

func TestSimilaritySearch_Execute(t *testing.T) {
	artworks := new(testutil.MockArtworkRepo)
	embedder := new(testutil.MockEmbedder)
	captioner := new(testutil.MockCaptioner)
	op := NewSimilaritySearch(artworks, embedder, captioner, "", 10, 1000)

	captioner.On("CaptionImage", mock.Anything, "https://example.org/query.jpg").
		Return("a winter landscape with skaters", nil)
	embedder.On("EmbedText", mock.Anything, "a winter landscape with skaters").
		Return([]float32{0.4, 0.5}, nil)
	artworks.On("SemanticSearch", mock.Anything, []float32{0.4, 0.5}, 1000).
		Return([]domain.SemanticMatch{{InventoryNumber: "INV-9", Similarity: 0.88}}, nil)
	artworks.On("List", mock.Anything, mock.AnythingOfType("domain.ArtworkFilter")).
		Return([]*domain.Artwork{{InventoryNumber: "INV-9", Title: "Winter"}}, 1, nil)

	result, err := op.Execute(context.Background(), Params{"image_url": "https://example.org/query.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "Winter", result.Items[0].Title)

	captioner.AssertExpectations(t)
	embedder.AssertExpectations(t)
	artworks.AssertExpectations(t)
}

func TestSimilaritySearch_Execute_EmptyCaption(t *testing.T) {
	captioner := new(testutil.MockCaptioner)
	captioner.On("CaptionImage", mock.Anything, "https://example.org/blank.jpg").Return("", nil)
	op := NewSimilaritySearch(nil, nil, captioner, "", 10, 1000)

	result, err := op.Execute(context.Background(), Params{"image_url": "https://example.org/blank.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Items)
}

func TestSimilaritySearch_Execute_MissingImage(t *testing.T) {
	op := NewSimilaritySearch(nil, nil, nil, "", 10, 1000)

	_, err := op.Execute(context.Background(), Params{})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
	assert.False(t, op.Configured(Params{}))
}
