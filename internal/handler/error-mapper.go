package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/operator"
)

func mapDomainError(c *gin.Context, err error) {
	var notConfigured *operator.NotConfiguredError

	switch {
	case errors.As(err, &notConfigured):
		c.JSON(http.StatusBadRequest, gin.H{"error": notConfigured.Error()})
	case errors.Is(err, domain.ErrArtworkNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrLinkNotFound),
		errors.Is(err, domain.ErrUnknownThesaurus):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrTagConflict),
		errors.Is(err, domain.ErrLinkConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrInvalidLabel),
		errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrUnknownOperator),
		errors.Is(err, domain.ErrUnknownLevel),
		errors.Is(err, domain.ErrUnknownAlgorithm),
		errors.Is(err, domain.ErrThesaurusReadOnly),
		errors.Is(err, domain.ErrAtHighestLevel),
		errors.Is(err, domain.ErrAtLowestLevel):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrNoEmbedding):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
