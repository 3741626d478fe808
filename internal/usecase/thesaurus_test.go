package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/testutil"
)

func TestThesaurusUseCase_Terms_Cached(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	uc := NewThesaurusUseCase(tags, time.Minute)

	tags.On("List", mock.Anything, domain.TagFilter{ThesaurusID: "garnier", Limit: termBatchSize}).
		Return([]*domain.Tag{{Label: "vault"}, {Label: "nave"}}, 2, nil).Once()

	terms, err := uc.Terms(context.Background(), "garnier")
	assert.NoError(t, err)
	assert.Equal(t, []string{"vault", "nave"}, terms)

	// Second call is served from the cache; the mock would panic on a
	// second List call because of Once().
	terms, err = uc.Terms(context.Background(), "garnier")
	assert.NoError(t, err)
	assert.Equal(t, []string{"vault", "nave"}, terms)
	tags.AssertExpectations(t)
}

func TestThesaurusUseCase_Terms_Paged(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	uc := NewThesaurusUseCase(tags, time.Minute)

	page1 := make([]*domain.Tag, termBatchSize)
	for i := range page1 {
		page1[i] = &domain.Tag{Label: "term"}
	}
	tags.On("List", mock.Anything, domain.TagFilter{ThesaurusID: "aat", Limit: termBatchSize}).
		Return(page1, termBatchSize+1, nil).Once()
	tags.On("List", mock.Anything, domain.TagFilter{ThesaurusID: "aat", Limit: termBatchSize, Offset: termBatchSize}).
		Return([]*domain.Tag{{Label: "last"}}, termBatchSize+1, nil).Once()

	terms, err := uc.Terms(context.Background(), "aat")
	assert.NoError(t, err)
	assert.Len(t, terms, termBatchSize+1)
	assert.Equal(t, "last", terms[len(terms)-1])
	tags.AssertExpectations(t)
}

func TestThesaurusUseCase_Terms_UnknownThesaurus(t *testing.T) {
	uc := NewThesaurusUseCase(new(testutil.MockTagRepo), time.Minute)

	_, err := uc.Terms(context.Background(), "webster")
	assert.ErrorIs(t, err, domain.ErrUnknownThesaurus)
}

func TestThesaurusUseCase_CreateLabel(t *testing.T) {
	tags := new(testutil.MockTagRepo)
	uc := NewThesaurusUseCase(tags, time.Minute)

	// Warm the cache, then create: the next Terms call must hit the
	// repository again.
	tags.On("List", mock.Anything, domain.TagFilter{ThesaurusID: "fabritius", Limit: termBatchSize}).
		Return([]*domain.Tag{{Label: "old"}}, 1, nil).Once()
	_, err := uc.Terms(context.Background(), "fabritius")
	assert.NoError(t, err)

	tags.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tag")).Return(nil)
	tag, err := uc.CreateLabel(context.Background(), "fabritius", "retable", "altar structure")
	assert.NoError(t, err)
	assert.Equal(t, "fabritius", tag.ThesaurusID)

	tags.On("List", mock.Anything, domain.TagFilter{ThesaurusID: "fabritius", Limit: termBatchSize}).
		Return([]*domain.Tag{{Label: "old"}, {Label: "retable"}}, 2, nil).Once()
	terms, err := uc.Terms(context.Background(), "fabritius")
	assert.NoError(t, err)
	assert.Equal(t, []string{"old", "retable"}, terms)
	tags.AssertExpectations(t)
}

func TestThesaurusUseCase_CreateLabel_ReadOnly(t *testing.T) {
	uc := NewThesaurusUseCase(new(testutil.MockTagRepo), time.Minute)

	_, err := uc.CreateLabel(context.Background(), "iconclass", "73D31", "crucifixion")
	assert.ErrorIs(t, err, domain.ErrThesaurusReadOnly)
}
