package usecase

import (
	"context"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
)

// Summary aggregates the headline collection numbers for the insights page.
type Summary struct {
	TotalArtworks    int `json:"total_artworks"`
	UniqueTags       int `json:"unique_tags"`
	TotalAssignments int `json:"total_assignments"`
}

// Distribution is one page of the tag distribution chart.
type Distribution struct {
	Tags       []domain.TagCount `json:"tags"`
	TotalTags  int               `json:"total_tags"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

type InsightsUseCase struct {
	artworks domain.ArtworkRepository
	tags     domain.TagRepository
}

func NewInsightsUseCase(artworks domain.ArtworkRepository, tags domain.TagRepository) *InsightsUseCase {
	return &InsightsUseCase{artworks: artworks, tags: tags}
}

func (uc *InsightsUseCase) Summary(ctx context.Context) (*Summary, error) {
	artworks, err := uc.artworks.Count(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := uc.tags.CountTags(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := uc.tags.CountAssignments(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalArtworks:    artworks,
		UniqueTags:       tags,
		TotalAssignments: assignments,
	}, nil
}

func (uc *InsightsUseCase) Distribution(ctx context.Context, page, pageSize int) (*Distribution, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 100
	}

	counts, total, err := uc.tags.Distribution(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return &Distribution{
		Tags:       counts,
		TotalTags:  total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (uc *InsightsUseCase) Activity(ctx context.Context, days int) ([]domain.ActivityBucket, error) {
	if days <= 0 {
		days = 30
	}
	if days > 365 {
		days = 365
	}
	buckets, err := uc.tags.Activity(ctx, days)
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		buckets = []domain.ActivityBucket{}
	}
	return buckets, nil
}
