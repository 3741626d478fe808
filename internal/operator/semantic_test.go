package operator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/testutil"
)

func TestSemanticSearch_Execute(t *testing.T) {
	artworks := new(testutil.MockArtworkRepo)
	embedder := new(testutil.MockEmbedder)
	op := NewSemanticSearch(artworks, embedder, "https://img.example.org", 2, 1000)

	embedding := []float32{0.1, 0.2, 0.3}
	embedder.On("EmbedText", mock.Anything, "crucifixion").Return(embedding, nil)

	matches := []domain.SemanticMatch{
		{InventoryNumber: "INV-1", Similarity: 0.95},
		{InventoryNumber: "INV-2", Similarity: 0.90},
		{InventoryNumber: "INV-3", Similarity: 0.85},
	}
	artworks.On("SemanticSearch", mock.Anything, embedding, 1000).Return(matches, nil)

	// Only the preview slice gets hydrated.
	artworks.On("List", mock.Anything, domain.ArtworkFilter{
		Inventories: []string{"INV-1", "INV-2"},
		Limit:       2,
	}).Return([]*domain.Artwork{
		{InventoryNumber: "INV-1", Title: "Calvary", Artist: "Anonymous Master", Dating: "1510", ImageLink: "img/inv1.jpg"},
		{InventoryNumber: "INV-2"},
	}, 2, nil)

	result, err := op.Execute(context.Background(), Params{"query_text": "crucifixion"})
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Items, 2)

	assert.Equal(t, "INV-1", result.Items[0].Inventory)
	assert.Equal(t, "Calvary", result.Items[0].Title)
	assert.Equal(t, "https://img.example.org/img/inv1.jpg", result.Items[0].ImageURL)
	assert.Equal(t, 0.95, result.Items[0].Similarity)

	// Missing metadata falls back to display placeholders.
	assert.Equal(t, "Untitled", result.Items[1].Title)
	assert.Equal(t, "Unknown Artist", result.Items[1].Artist)
	assert.Equal(t, "N/A", result.Items[1].Year)

	artworks.AssertExpectations(t)
	embedder.AssertExpectations(t)
}

func TestSemanticSearch_Execute_EmptyQuery(t *testing.T) {
	op := NewSemanticSearch(nil, nil, "", 10, 1000)

	_, err := op.Execute(context.Background(), Params{"query_text": "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestSemanticSearch_Execute_NoEmbedding(t *testing.T) {
	embedder := new(testutil.MockEmbedder)
	embedder.On("EmbedText", mock.Anything, "x").Return([]float32{}, nil)
	op := NewSemanticSearch(nil, embedder, "", 10, 1000)

	_, err := op.Execute(context.Background(), Params{"query_text": "x"})
	assert.ErrorIs(t, err, domain.ErrNoEmbedding)
}

func TestSemanticSearch_Execute_NoMatches(t *testing.T) {
	artworks := new(testutil.MockArtworkRepo)
	embedder := new(testutil.MockEmbedder)
	op := NewSemanticSearch(artworks, embedder, "", 10, 1000)

	embedder.On("EmbedText", mock.Anything, "x").Return([]float32{0.5}, nil)
	artworks.On("SemanticSearch", mock.Anything, []float32{0.5}, 1000).Return([]domain.SemanticMatch{}, nil)

	result, err := op.Execute(context.Background(), Params{"query_text": "x"})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Items)
}

func TestSemanticSearch_Execute_StaleMatchSkipped(t *testing.T) {
	artworks := new(testutil.MockArtworkRepo)
	embedder := new(testutil.MockEmbedder)
	op := NewSemanticSearch(artworks, embedder, "", 10, 1000)

	embedder.On("EmbedText", mock.Anything, "x").Return([]float32{0.5}, nil)
	artworks.On("SemanticSearch", mock.Anything, []float32{0.5}, 1000).Return([]domain.SemanticMatch{
		{InventoryNumber: "GONE", Similarity: 0.9},
		{InventoryNumber: "INV-1", Similarity: 0.8},
	}, nil)
	artworks.On("List", mock.Anything, mock.AnythingOfType("domain.ArtworkFilter")).Return(
		[]*domain.Artwork{{InventoryNumber: "INV-1"}}, 1, nil)

	result, err := op.Execute(context.Background(), Params{"query_text": "x"})
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "INV-1", result.Items[0].Inventory)
}

func TestMetadataFilter_Configured(t *testing.T) {
	op := NewMetadataFilter(nil, "", 10)

	assert.False(t, op.Configured(Params{}))
	assert.True(t, op.Configured(Params{"artist": "Memling"}))
	assert.True(t, op.Configured(Params{"year_from": float64(1400)}))
	assert.True(t, op.Configured(Params{"source": []interface{}{"KIK-IRPA"}}))
}

func TestMetadataFilter_Execute(t *testing.T) {
	artworks := new(testutil.MockArtworkRepo)
	op := NewMetadataFilter(artworks, "https://img.example.org", 10)

	yearFrom := 1400
	artworks.On("List", mock.Anything, domain.ArtworkFilter{
		Artist:   "Memling",
		YearFrom: &yearFrom,
		Limit:    10,
	}).Return([]*domain.Artwork{
		{InventoryNumber: "INV-7", Title: "Portrait", Artist: "Hans Memling", Dating: "1470"},
	}, 42, nil)

	result, err := op.Execute(context.Background(), Params{"artist": "Memling", "year_from": float64(1400)})
	assert.NoError(t, err)
	assert.Equal(t, 42, result.Total)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "Hans Memling", result.Items[0].Artist)
	artworks.AssertExpectations(t)
}
