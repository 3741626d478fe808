package usecase

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

// termBatchSize pages through the tags table when collecting terms.
const termBatchSize = 1000

type ThesaurusUseCase struct {
	tags  domain.TagRepository
	terms *cache.Cache
}

func NewThesaurusUseCase(tags domain.TagRepository, cacheTTL time.Duration) *ThesaurusUseCase {
	return &ThesaurusUseCase{
		tags:  tags,
		terms: cache.New(cacheTTL, 2*cacheTTL),
	}
}

// List returns the available controlled vocabularies.
func (uc *ThesaurusUseCase) List() []domain.Thesaurus {
	return domain.Thesauri
}

// Terms returns all label texts of a thesaurus, cached for autocomplete.
func (uc *ThesaurusUseCase) Terms(ctx context.Context, thesaurusID string) ([]string, error) {
	th, err := domain.ThesaurusByID(thesaurusID)
	if err != nil {
		return nil, err
	}

	if cached, ok := uc.terms.Get(th.ID); ok {
		return cached.([]string), nil
	}

	var terms []string
	offset := 0
	for {
		tags, _, err := uc.tags.List(ctx, domain.TagFilter{
			ThesaurusID: th.ID,
			Limit:       termBatchSize,
			Offset:      offset,
		})
		if err != nil {
			return nil, err
		}
		for _, t := range tags {
			if t.Label != "" {
				terms = append(terms, t.Label)
			}
		}
		if len(tags) < termBatchSize {
			break
		}
		offset += termBatchSize
	}

	uc.terms.SetDefault(th.ID, terms)
	log.WithFields(log.Fields{
		"thesaurus": th.ID,
		"terms":     len(terms),
	}).Info("thesaurus terms cached")

	return terms, nil
}

// CreateLabel adds a label to a thesaurus that supports creation and
// invalidates its cached term list.
func (uc *ThesaurusUseCase) CreateLabel(ctx context.Context, thesaurusID, label, definition string) (*domain.Tag, error) {
	th, err := domain.ThesaurusByID(thesaurusID)
	if err != nil {
		return nil, err
	}
	if !th.SupportsCreate {
		return nil, domain.ErrThesaurusReadOnly
	}
	if label == "" {
		return nil, domain.ErrInvalidLabel
	}

	tag := &domain.Tag{Label: label, Definition: definition, ThesaurusID: th.ID}
	if err := uc.tags.Create(ctx, tag); err != nil {
		return nil, err
	}

	uc.terms.Delete(th.ID)
	return tag, nil
}
