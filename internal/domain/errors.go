package domain

import "errors"

var (
	ErrArtworkNotFound   = errors.New("artwork not found")
	ErrTagNotFound       = errors.New("tag not found")
	ErrTagConflict       = errors.New("tag with this label already exists")
	ErrLinkNotFound      = errors.New("artwork-tag link not found")
	ErrLinkConflict      = errors.New("artwork already carries this tag at this level")
	ErrInvalidLabel      = errors.New("tag label is required")
	ErrInvalidQuery      = errors.New("query text is required")
	ErrUnknownOperator   = errors.New("unknown search operator")
	ErrUnknownLevel      = errors.New("unknown validation level")
	ErrUnknownAlgorithm  = errors.New("unknown validation algorithm")
	ErrUnknownThesaurus  = errors.New("unknown thesaurus")
	ErrThesaurusReadOnly = errors.New("thesaurus does not support label creation")
	ErrAtHighestLevel    = errors.New("assignment is already at the highest validation level")
	ErrAtLowestLevel     = errors.New("assignment is already at the lowest validation level")
	ErrNoEmbedding       = errors.New("embedding service returned no vector")
)
