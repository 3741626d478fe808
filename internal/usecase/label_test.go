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

func TestLabelUseCase_CreateTag(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	uc := NewLabelUseCase(tags, nil, nil, "", 20)

	tags.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tag")).Return(nil)

	tag, err := uc.CreateTag(context.Background(), "  crucifixion ", "scene of the crucifixion", "")
	assert.NoError(t, err)
	assert.Equal(t, "crucifixion", tag.Label)
	assert.Equal(t, "fabritius", tag.ThesaurusID)
	tags.AssertExpectations(t)
}

func TestLabelUseCase_CreateTag_ReadOnlyThesaurus(t *testing.T) {
	uc := NewLabelUseCase(new(testutil.MockTagRepo), nil, nil, "", 20)

	_, err := uc.CreateTag(context.Background(), "vault", "", "aat")
	assert.ErrorIs(t, err, domain.ErrThesaurusReadOnly)
}

func TestLabelUseCase_CreateTag_EmptyLabel(t *testing.T) {
	uc := NewLabelUseCase(new(testutil.MockTagRepo), nil, nil, "", 20)

	_, err := uc.CreateTag(context.Background(), "   ", "", "fabritius")
	assert.ErrorIs(t, err, domain.ErrInvalidLabel)
}

func TestLabelUseCase_Assign_DefaultsToHuman(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	uc := NewLabelUseCase(tags, nil, nil, "", 20)

	tags.On("GetByID", mock.Anything, int64(7)).Return(&domain.Tag{ID: 7, Label: "angel"}, nil)
	tags.On("Assign", mock.Anything, mock.MatchedBy(func(l *domain.ArtworkTag) bool {
		return l.Provenance == domain.ProvenanceHuman && l.TagID == 7
	}), "curator").Return(nil)

	link, err := uc.Assign(context.Background(), "INV-1", 7, "", "", "curator")
	assert.NoError(t, err)
	assert.Equal(t, domain.ProvenanceHuman, link.Provenance)
	tags.AssertExpectations(t)
}

func TestLabelUseCase_Assign_UnknownLevel(t *testing.T) {
	uc := NewLabelUseCase(new(testutil.MockTagRepo), nil, nil, "", 20)

	_, err := uc.Assign(context.Background(), "INV-1", 7, "", "WIZARD", "curator")
	assert.ErrorIs(t, err, domain.ErrUnknownLevel)
}

func TestLabelUseCase_BulkAssign_SkipsTagged(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	uc := NewLabelUseCase(tags, nil, nil, "", 20)

	tags.On("GetByLabel", mock.Anything, "angel").Return(&domain.Tag{ID: 3, Label: "angel"}, nil)
	tags.On("TaggedSet", mock.Anything, []string{"INV-1", "INV-2", "INV-3"}, "angel").
		Return(map[string]bool{"INV-2": true}, nil)
	tags.On("Assign", mock.Anything, mock.MatchedBy(func(l *domain.ArtworkTag) bool {
		return l.ArtworkID == "INV-1"
	}), "curator").Return(nil)
	tags.On("Assign", mock.Anything, mock.MatchedBy(func(l *domain.ArtworkTag) bool {
		return l.ArtworkID == "INV-3"
	}), "curator").Return(domain.ErrLinkConflict)

	result, err := uc.BulkAssign(context.Background(), []string{"INV-1", "INV-2", "INV-3"}, 0, "angel", domain.ProvenanceAI, "curator")
	assert.NoError(t, err)
	assert.Equal(t, []string{"INV-1"}, result.Assigned)
	// INV-2 already carried the label, INV-3 conflicted at insert time.
	assert.Equal(t, []string{"INV-2", "INV-3"}, result.Skipped)
	tags.AssertExpectations(t)
}

func TestLabelUseCase_Promote(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	uc := NewLabelUseCase(tags, nil, nil, "", 20)

	refs := []domain.AssignmentRef{{ArtworkID: "INV-1", TagID: 3}, {ArtworkID: "INV-2", TagID: 3}}
	for _, ref := range refs {
		tags.On("SetProvenance", mock.Anything, ref, domain.ProvenanceAI, domain.ProvenanceHuman, "curator").Return(nil)
	}

	err := uc.Promote(context.Background(), refs, domain.ProvenanceAI, "curator")
	assert.NoError(t, err)
	tags.AssertExpectations(t)
}

func TestLabelUseCase_Promote_AtTop(t *testing.T) {
	uc := NewLabelUseCase(new(testutil.MockTagRepo), nil, nil, "", 20)

	err := uc.Promote(context.Background(), []domain.AssignmentRef{{ArtworkID: "INV-1", TagID: 3}},
		domain.ProvenanceExpert, "curator")
	assert.ErrorIs(t, err, domain.ErrAtHighestLevel)
}

func TestLabelUseCase_Demote_AtBottom(t *testing.T) {
	uc := NewLabelUseCase(new(testutil.MockTagRepo), nil, nil, "", 20)

	err := uc.Demote(context.Background(), []domain.AssignmentRef{{ArtworkID: "INV-1", TagID: 3}},
		domain.ProvenanceAI, "curator")
	assert.ErrorIs(t, err, domain.ErrAtLowestLevel)
}

func TestLabelUseCase_Promote_FirstFailureAborts(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	uc := NewLabelUseCase(tags, nil, nil, "", 20)

	refs := []domain.AssignmentRef{{ArtworkID: "INV-1", TagID: 3}, {ArtworkID: "INV-2", TagID: 3}}
	tags.On("SetProvenance", mock.Anything, refs[0], domain.ProvenanceHuman, domain.ProvenanceExpert, "curator").
		Return(domain.ErrLinkNotFound)

	err := uc.Promote(context.Background(), refs, domain.ProvenanceHuman, "curator")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	tags.AssertNotCalled(t, "SetProvenance", mock.Anything, refs[1], mock.Anything, mock.Anything, mock.Anything)
}

func TestLabelUseCase_Validate(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	artworks := new(testutil.MockArtworkRepo)
	embedder := new(testutil.MockEmbedder)

	registry := operator.NewRegistry()
	registry.Register(operator.NewSemanticSearch(artworks, embedder, "", 10, 1000))
	uc := NewLabelUseCase(tags, artworks, registry, "", 20)

	// Known label: the definition enriches the algorithm query.
	tags.On("GetByLabel", mock.Anything, "angel").
		Return(&domain.Tag{ID: 3, Label: "angel", Definition: "winged messenger"}, nil)
	embedder.On("EmbedText", mock.Anything, "angel: winged messenger").Return([]float32{0.2}, nil)
	artworks.On("SemanticSearch", mock.Anything, []float32{0.2}, 1000).
		Return([]domain.SemanticMatch{{InventoryNumber: "INV-1", Similarity: 0.9}}, nil)
	artworks.On("List", mock.Anything, mock.AnythingOfType("domain.ArtworkFilter")).
		Return([]*domain.Artwork{{InventoryNumber: "INV-1", Title: "Annunciation"}}, 1, nil)

	tags.On("ListByLabelAndProvenance", mock.Anything, "angel", domain.ProvenanceExpert, 20).
		Return([]*domain.ArtworkTag{{ArtworkID: "INV-1", TagID: 3, Label: "angel", Provenance: domain.ProvenanceExpert}}, nil)

	boxes, err := uc.Validate(context.Background(), "angel", []string{"Text"}, []string{"expert"})
	assert.NoError(t, err)
	assert.Len(t, boxes, 2)

	aiBox := boxes["AI-Text"]
	assert.Empty(t, aiBox.Error)
	assert.Equal(t, 1, aiBox.Total)
	assert.Equal(t, "Annunciation", aiBox.Items[0].Title)

	expertBox := boxes["EXPERT"]
	assert.Equal(t, "Expert", expertBox.Label)
	assert.Equal(t, 1, expertBox.Total)
	assert.Equal(t, "INV-1", expertBox.Items[0].Inventory)
}

func TestLabelUseCase_Validate_UnknownAlgorithm(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	tags.On("GetByLabel", mock.Anything, "angel").Return(nil, domain.ErrTagNotFound)
	uc := NewLabelUseCase(tags, nil, operator.NewRegistry(), "", 20)

	_, err := uc.Validate(context.Background(), "angel", []string{"Quantum"}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestLabelUseCase_Validate_UnknownLevel(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	tags.On("GetByLabel", mock.Anything, "angel").Return(nil, domain.ErrTagNotFound)
	uc := NewLabelUseCase(tags, nil, operator.NewRegistry(), "", 20)

	_, err := uc.Validate(context.Background(), "angel", nil, []string{"WIZARD"})
	assert.ErrorIs(t, err, domain.ErrUnknownLevel)
}
