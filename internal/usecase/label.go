package usecase

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/operator"
)

// Validation algorithms: named strategies for suggesting artworks that may
// carry a label. Both run the semantic search path; Multimodal captions with
// a vision-language model during preprocessing and therefore needs no
// separate index here.
type Algorithm struct {
	ID            string `json:"id"`
	DisplayName   string `json:"display_name"`
	Description   string `json:"description"`
	RequiresModel bool   `json:"requires_model"`
	ModelName     string `json:"model_name,omitempty"`
}

var Algorithms = []Algorithm{
	{
		ID:          "text_embedding",
		DisplayName: "Text",
		Description: "Text-based semantic similarity search",
	},
	{
		ID:            "multimodal_embedding",
		DisplayName:   "Multimodal",
		Description:   "Vision-language model for image-text matching",
		RequiresModel: true,
		ModelName:     "clip-vit-base-patch32",
	},
}

func algorithmByName(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.DisplayName == name || a.ID == name {
			return a, nil
		}
	}
	return Algorithm{}, domain.ErrUnknownAlgorithm
}

// BoxResult holds the outcome of one validation box. A failed box records
// its error without failing the others.
type BoxResult struct {
	BoxKey string          `json:"box_key"`
	Label  string          `json:"label"`
	Items  []operator.Item `json:"items"`
	Total  int             `json:"total"`
	Error  string          `json:"error,omitempty"`
}

// BulkAssignResult reports which artworks received the label and which were
// skipped because they already carried it.
type BulkAssignResult struct {
	Assigned []string `json:"assigned"`
	Skipped  []string `json:"skipped"`
}

type LabelUseCase struct {
	tags         domain.TagRepository
	artworks     domain.ArtworkRepository
	registry     *operator.Registry
	imageBaseURL string
	levelLimit   int
}

func NewLabelUseCase(tags domain.TagRepository, artworks domain.ArtworkRepository, registry *operator.Registry, imageBaseURL string, levelLimit int) *LabelUseCase {
	if levelLimit <= 0 {
		levelLimit = 20
	}
	return &LabelUseCase{
		tags:         tags,
		artworks:     artworks,
		registry:     registry,
		imageBaseURL: imageBaseURL,
		levelLimit:   levelLimit,
	}
}

func (uc *LabelUseCase) CreateTag(ctx context.Context, label, definition, thesaurusID string) (*domain.Tag, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domain.ErrInvalidLabel
	}
	if thesaurusID == "" {
		thesaurusID = "fabritius"
	}
	th, err := domain.ThesaurusByID(thesaurusID)
	if err != nil {
		return nil, err
	}
	if !th.SupportsCreate {
		return nil, domain.ErrThesaurusReadOnly
	}

	tag := &domain.Tag{Label: label, Definition: definition, ThesaurusID: th.ID}
	if err := uc.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (uc *LabelUseCase) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	return uc.tags.GetByID(ctx, id)
}

func (uc *LabelUseCase) ListTags(ctx context.Context, filter domain.TagFilter) ([]*domain.Tag, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	return uc.tags.List(ctx, filter)
}

// resolveTag accepts either a tag ID or a label.
func (uc *LabelUseCase) resolveTag(ctx context.Context, tagID int64, label string) (*domain.Tag, error) {
	if tagID > 0 {
		return uc.tags.GetByID(ctx, tagID)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domain.ErrInvalidLabel
	}
	return uc.tags.GetByLabel(ctx, label)
}

func (uc *LabelUseCase) Assign(ctx context.Context, inventoryNumber string, tagID int64, label string, provenance domain.Provenance, actor string) (*domain.ArtworkTag, error) {
	if provenance == "" {
		provenance = domain.ProvenanceHuman
	}
	if !provenance.Valid() {
		return nil, domain.ErrUnknownLevel
	}

	tag, err := uc.resolveTag(ctx, tagID, label)
	if err != nil {
		return nil, err
	}

	link := &domain.ArtworkTag{
		ArtworkID:  inventoryNumber,
		TagID:      tag.ID,
		Label:      tag.Label,
		Provenance: provenance,
	}
	if err := uc.tags.Assign(ctx, link, actor); err != nil {
		return nil, err
	}
	return link, nil
}

// BulkAssign labels a selection of artworks, skipping the ones that already
// carry the label at any level.
func (uc *LabelUseCase) BulkAssign(ctx context.Context, inventoryNumbers []string, tagID int64, label string, provenance domain.Provenance, actor string) (*BulkAssignResult, error) {
	if provenance == "" {
		provenance = domain.ProvenanceHuman
	}
	if !provenance.Valid() {
		return nil, domain.ErrUnknownLevel
	}

	tag, err := uc.resolveTag(ctx, tagID, label)
	if err != nil {
		return nil, err
	}

	tagged, err := uc.tags.TaggedSet(ctx, inventoryNumbers, tag.Label)
	if err != nil {
		return nil, err
	}

	result := &BulkAssignResult{Assigned: []string{}, Skipped: []string{}}
	for _, inv := range inventoryNumbers {
		if tagged[inv] {
			result.Skipped = append(result.Skipped, inv)
			continue
		}
		link := &domain.ArtworkTag{ArtworkID: inv, TagID: tag.ID, Provenance: provenance}
		if err := uc.tags.Assign(ctx, link, actor); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"artwork": inv,
				"tag":     tag.Label,
			}).Error("bulk assign failed for artwork")
			result.Skipped = append(result.Skipped, inv)
			continue
		}
		result.Assigned = append(result.Assigned, inv)
	}
	return result, nil
}

func (uc *LabelUseCase) Unassign(ctx context.Context, ref domain.AssignmentRef, actor string) error {
	return uc.tags.Unassign(ctx, ref, actor)
}

// Promote moves assignments one level toward EXPERT. Each item is handled
// independently; the first hard failure aborts.
func (uc *LabelUseCase) Promote(ctx context.Context, refs []domain.AssignmentRef, from domain.Provenance, actor string) error {
	if !from.Valid() {
		return domain.ErrUnknownLevel
	}
	to, err := from.Promote()
	if err != nil {
		return err
	}
	return uc.moveAll(ctx, refs, from, to, actor)
}

// Demote moves assignments one level toward AI.
func (uc *LabelUseCase) Demote(ctx context.Context, refs []domain.AssignmentRef, from domain.Provenance, actor string) error {
	if !from.Valid() {
		return domain.ErrUnknownLevel
	}
	to, err := from.Demote()
	if err != nil {
		return err
	}
	return uc.moveAll(ctx, refs, from, to, actor)
}

func (uc *LabelUseCase) moveAll(ctx context.Context, refs []domain.AssignmentRef, from, to domain.Provenance, actor string) error {
	for _, ref := range refs {
		if err := uc.tags.SetProvenance(ctx, ref, from, to, actor); err != nil {
			return fmt.Errorf("move %s/%d from %s: %w", ref.ArtworkID, ref.TagID, from, err)
		}
	}
	return nil
}

// Validate builds the validation boxes for a label: one AI suggestion box
// per requested algorithm plus one box per requested validated level.
func (uc *LabelUseCase) Validate(ctx context.Context, label string, algorithms []string, levels []string) (map[string]BoxResult, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domain.ErrInvalidLabel
	}

	// The definition enriches the algorithm query when the label is known;
	// free-text labels are validated as-is.
	query := label
	if tag, err := uc.tags.GetByLabel(ctx, label); err == nil && tag.Definition != "" {
		query = tag.Label + ": " + tag.Definition
	}

	boxes := make(map[string]BoxResult)

	for _, name := range algorithms {
		algo, err := algorithmByName(name)
		if err != nil {
			return nil, err
		}
		boxKey := "AI-" + algo.DisplayName
		box := BoxResult{BoxKey: boxKey, Label: "AI - " + algo.DisplayName, Items: []operator.Item{}}

		op, err := uc.registry.Get(operator.KeySemanticSearch)
		if err != nil {
			box.Error = err.Error()
			boxes[boxKey] = box
			continue
		}
		result, err := op.Execute(ctx, operator.Params{"query_text": query})
		if err != nil {
			log.WithError(err).WithField("algorithm", algo.ID).Error("validation algorithm failed")
			box.Error = err.Error()
		} else {
			box.Items = result.Items
			box.Total = result.Total
		}
		boxes[boxKey] = box
	}

	for _, name := range levels {
		provenance := domain.Provenance(strings.ToUpper(strings.TrimSpace(name)))
		if !provenance.Valid() {
			return nil, domain.ErrUnknownLevel
		}
		level, _ := domain.LevelByName(provenance)
		boxKey := string(provenance)
		box := BoxResult{BoxKey: boxKey, Label: level.DisplayName, Items: []operator.Item{}}

		links, err := uc.tags.ListByLabelAndProvenance(ctx, label, provenance, uc.levelLimit)
		if err != nil {
			log.WithError(err).WithField("level", provenance).Error("validated level fetch failed")
			box.Error = err.Error()
			boxes[boxKey] = box
			continue
		}
		items, err := uc.linkItems(ctx, links)
		if err != nil {
			box.Error = err.Error()
		} else {
			box.Items = items
			box.Total = len(links)
		}
		boxes[boxKey] = box
	}

	return boxes, nil
}

// linkItems hydrates validated links with artwork metadata, preserving the
// recency order of the links.
func (uc *LabelUseCase) linkItems(ctx context.Context, links []*domain.ArtworkTag) ([]operator.Item, error) {
	if len(links) == 0 {
		return []operator.Item{}, nil
	}

	inventories := make([]string, 0, len(links))
	for _, l := range links {
		inventories = append(inventories, l.ArtworkID)
	}
	artworks, _, err := uc.artworks.List(ctx, domain.ArtworkFilter{
		Inventories: inventories,
		Limit:       len(inventories),
	})
	if err != nil {
		return nil, err
	}

	byInventory := make(map[string]*domain.Artwork, len(artworks))
	for _, a := range artworks {
		byInventory[a.InventoryNumber] = a
	}

	items := make([]operator.Item, 0, len(links))
	for _, l := range links {
		item := operator.Item{Inventory: l.ArtworkID, Title: "Untitled", Artist: "Unknown Artist", Year: "N/A"}
		if a, ok := byInventory[l.ArtworkID]; ok {
			item = operator.DisplayItem(a, uc.imageBaseURL)
		}
		items = append(items, item)
	}
	return items, nil
}
