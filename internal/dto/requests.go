package dto

import "github.com/drdwitte/Fabritius-NG/internal/operator"

type SearchRequest struct {
	Operator string          `json:"operator" binding:"required"`
	Params   operator.Params `json:"params"`
}

type CreateTagRequest struct {
	Label       string `json:"label" binding:"required,max=200"`
	Definition  string `json:"definition"`
	ThesaurusID string `json:"thesaurus_id"`
}

type AssignTagRequest struct {
	TagID      int64  `json:"tag_id"`
	Label      string `json:"label"`
	Provenance string `json:"provenance"`
}

type BulkAssignRequest struct {
	InventoryNumbers []string `json:"inventory_numbers" binding:"required,min=1"`
	TagID            int64    `json:"tag_id"`
	Label            string   `json:"label"`
	Provenance       string   `json:"provenance"`
}

type AssignmentRefRequest struct {
	ArtworkID string `json:"artwork_id" binding:"required"`
	TagID     int64  `json:"tag_id" binding:"required"`
}

type MoveAssignmentsRequest struct {
	Assignments []AssignmentRefRequest `json:"assignments" binding:"required,min=1"`
	From        string                 `json:"from" binding:"required"`
}

type CreateThesaurusLabelRequest struct {
	Label      string `json:"label" binding:"required,max=200"`
	Definition string `json:"definition"`
}
