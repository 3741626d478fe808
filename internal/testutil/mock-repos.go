package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

// MockArtworkRepo is a mock of ArtworkRepository.
type MockArtworkRepo struct {
	mock.Mock
}

func (m *MockArtworkRepo) List(ctx context.Context, filter domain.ArtworkFilter) ([]*domain.Artwork, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Artwork), args.Int(1), args.Error(2)
}

func (m *MockArtworkRepo) GetByInventory(ctx context.Context, inventoryNumber string) (*domain.Artwork, error) {
	args := m.Called(ctx, inventoryNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artwork), args.Error(1)
}

func (m *MockArtworkRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockArtworkRepo) SemanticSearch(ctx context.Context, embedding []float32, limit int) ([]domain.SemanticMatch, error) {
	args := m.Called(ctx, embedding, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SemanticMatch), args.Error(1)
}

func (m *MockArtworkRepo) ListUncaptioned(ctx context.Context, limit, offset int) ([]*domain.Artwork, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}

func (m *MockArtworkRepo) ListUnembedded(ctx context.Context, limit int) ([]*domain.Artwork, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}

func (m *MockArtworkRepo) SetCaption(ctx context.Context, inventoryNumber, caption string) error {
	args := m.Called(ctx, inventoryNumber, caption)
	return args.Error(0)
}

func (m *MockArtworkRepo) SetEmbedding(ctx context.Context, inventoryNumber string, embedding []float32) error {
	args := m.Called(ctx, inventoryNumber, embedding)
	return args.Error(0)
}

// MockTagRepo is a mock of TagRepository.
type MockTagRepo struct {
	mock.Mock
}

func (m *MockTagRepo) Create(ctx context.Context, tag *domain.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepo) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepo) GetByLabel(ctx context.Context, label string) (*domain.Tag, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepo) List(ctx context.Context, filter domain.TagFilter) ([]*domain.Tag, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Tag), args.Int(1), args.Error(2)
}

func (m *MockTagRepo) Assign(ctx context.Context, link *domain.ArtworkTag, actor string) error {
	args := m.Called(ctx, link, actor)
	return args.Error(0)
}

func (m *MockTagRepo) Unassign(ctx context.Context, ref domain.AssignmentRef, actor string) error {
	args := m.Called(ctx, ref, actor)
	return args.Error(0)
}

func (m *MockTagRepo) SetProvenance(ctx context.Context, ref domain.AssignmentRef, from, to domain.Provenance, actor string) error {
	args := m.Called(ctx, ref, from, to, actor)
	return args.Error(0)
}

func (m *MockTagRepo) ListByLabelAndProvenance(ctx context.Context, label string, provenance domain.Provenance, limit int) ([]*domain.ArtworkTag, error) {
	args := m.Called(ctx, label, provenance, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ArtworkTag), args.Error(1)
}

func (m *MockTagRepo) TaggedSet(ctx context.Context, inventoryNumbers []string, label string) (map[string]bool, error) {
	args := m.Called(ctx, inventoryNumbers, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockTagRepo) Distribution(ctx context.Context, limit, offset int) ([]domain.TagCount, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.TagCount), args.Int(1), args.Error(2)
}

func (m *MockTagRepo) CountTags(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTagRepo) CountAssignments(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTagRepo) Activity(ctx context.Context, days int) ([]domain.ActivityBucket, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityBucket), args.Error(1)
}

// MockEmbedder is a mock of ai.Embedder.
type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

// MockCaptioner is a mock of ai.Captioner.
type MockCaptioner struct {
	mock.Mock
}

func (m *MockCaptioner) CaptionImage(ctx context.Context, imageURL string) (string, error) {
	args := m.Called(ctx, imageURL)
	return args.String(0), args.Error(1)
}
