package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/operator"
	"github.com/drdwitte/Fabritius-NG/internal/testutil"
)

func searchFixture(artworks *testutil.MockArtworkRepo, embedder *testutil.MockEmbedder) *SearchUseCase {
	registry := operator.NewRegistry()
	registry.Register(operator.NewSemanticSearch(artworks, embedder, "", 10, 1000))
	registry.Register(operator.NewMetadataFilter(artworks, "", 10))
	return NewSearchUseCase(registry, artworks)
}

func TestSearchUseCase_Execute(t *testing.T) {
	artworks := new(testutil.MockArtworkRepo)
	embedder := new(testutil.MockEmbedder)
	uc := searchFixture(artworks, embedder)

	embedder.On("EmbedText", mock.Anything, "saint george").Return([]float32{0.1}, nil)
	artworks.On("SemanticSearch", mock.Anything, []float32{0.1}, 1000).
		Return([]domain.SemanticMatch{{InventoryNumber: "INV-1", Similarity: 0.9}}, nil)
	artworks.On("List", mock.Anything, mock.AnythingOfType("domain.ArtworkFilter")).
		Return([]*domain.Artwork{{InventoryNumber: "INV-1"}}, 1, nil)

	result, err := uc.Execute(context.Background(), operator.KeySemanticSearch,
		operator.Params{"query_text": "saint george"})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestSearchUseCase_Execute_UnknownOperator(t *testing.T) {
	uc := searchFixture(new(testutil.MockArtworkRepo), new(testutil.MockEmbedder))

	_, err := uc.Execute(context.Background(), "mystery_operator", operator.Params{})
	assert.ErrorIs(t, err, domain.ErrUnknownOperator)
}

func TestSearchUseCase_Execute_Unconfigured(t *testing.T) {
	uc := searchFixture(new(testutil.MockArtworkRepo), new(testutil.MockEmbedder))

	_, err := uc.Execute(context.Background(), operator.KeySemanticSearch, operator.Params{})
	var notConfigured *operator.NotConfiguredError
	assert.ErrorAs(t, err, &notConfigured)
	assert.Equal(t, "Please configure the Semantic Search first", err.Error())
}

func TestSearchUseCase_Operators(t *testing.T) {
	uc := searchFixture(new(testutil.MockArtworkRepo), new(testutil.MockEmbedder))

	descriptors := uc.Operators()
	assert.Len(t, descriptors, 2)
	assert.Equal(t, operator.KeyMetadataFilter, descriptors[0].Key)
}

func TestSearchUseCase_ListArtworks_LimitClamp(t *testing.T) {
	artworks := new(testutil.MockArtworkRepo)
	uc := NewSearchUseCase(operator.NewRegistry(), artworks)

	artworks.On("List", mock.Anything, domain.ArtworkFilter{Limit: 100}).
		Return([]*domain.Artwork{}, 0, nil).Once()
	_, _, err := uc.ListArtworks(context.Background(), domain.ArtworkFilter{Limit: 5000})
	assert.NoError(t, err)

	artworks.On("List", mock.Anything, domain.ArtworkFilter{Limit: 12}).
		Return([]*domain.Artwork{}, 0, nil).Once()
	_, _, err = uc.ListArtworks(context.Background(), domain.ArtworkFilter{})
	assert.NoError(t, err)

	artworks.AssertExpectations(t)
}

func TestSearchUseCase_GetArtwork_NotFound(t *testing.T) {
	artworks := new(testutil.MockArtworkRepo)
	uc := NewSearchUseCase(operator.NewRegistry(), artworks)

	artworks.On("GetByInventory", mock.Anything, "MISSING").Return(nil, domain.ErrArtworkNotFound)

	_, err := uc.GetArtwork(context.Background(), "MISSING")
	assert.ErrorIs(t, err, domain.ErrArtworkNotFound)
}
