package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/dto"
)

func (h *Handler) ListThesauri(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"thesauri": h.thesaurusUC.List()})
}

func (h *Handler) ThesaurusTerms(c *gin.Context) {
	id := c.Param("id")

	terms, err := h.thesaurusUC.Terms(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).WithField("thesaurus", id).Error("thesaurus terms failed")
		mapDomainError(c, err)
		return
	}
	if terms == nil {
		terms = []string{}
	}

	c.JSON(http.StatusOK, dto.ThesaurusTermsResponse{ThesaurusID: id, Terms: terms})
}

func (h *Handler) CreateThesaurusLabel(c *gin.Context) {
	id := c.Param("id")

	var req dto.CreateThesaurusLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.thesaurusUC.CreateLabel(c.Request.Context(), id, req.Label, req.Definition)
	if err != nil {
		log.WithError(err).WithField("thesaurus", id).Error("create thesaurus label failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}
