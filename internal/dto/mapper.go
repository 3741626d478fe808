package dto

import (
	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/operator"
)

func ToArtworkResponse(a *domain.Artwork, imageBaseURL string) ArtworkResponse {
	return ArtworkResponse{
		InventoryNumber:  a.InventoryNumber,
		RecordID:         a.RecordID,
		Title:            a.Title,
		Artist:           a.Artist,
		ArtistFirstName:  a.ArtistFirstName,
		ArtistFamilyName: a.ArtistFamilyName,
		Dating:           a.Dating,
		YearFrom:         a.YearFrom,
		YearTo:           a.YearTo,
		Classification:   a.Classification,
		ObjectType:       a.ObjectType,
		Materials:        a.Materials,
		Source:           a.Source,
		ImageURL:         operator.ResolveImageURL(imageBaseURL, a.ImageLink),
		Caption:          a.Caption,
		IconSubject:      a.IconSubject,
		IconTerms:        a.IconTerms,
		IconConceptual:   a.IconConceptual,
		HasEmbedding:     a.HasEmbedding,
	}
}

func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		ID:          t.ID,
		Label:       t.Label,
		Definition:  t.Definition,
		ThesaurusID: t.ThesaurusID,
		CreatedAt:   t.CreatedAt,
	}
}

func ToAssignmentResponse(l *domain.ArtworkTag) AssignmentResponse {
	return AssignmentResponse{
		ArtworkID:  l.ArtworkID,
		TagID:      l.TagID,
		Label:      l.Label,
		Provenance: string(l.Provenance),
	}
}

func ToAssignmentRefs(reqs []AssignmentRefRequest) []domain.AssignmentRef {
	refs := make([]domain.AssignmentRef, 0, len(reqs))
	for _, r := range reqs {
		refs = append(refs, domain.AssignmentRef{ArtworkID: r.ArtworkID, TagID: r.TagID})
	}
	return refs
}

