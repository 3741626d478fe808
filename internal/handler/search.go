package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/dto"
	"github.com/drdwitte/Fabritius-NG/internal/operator"
)

func (h *Handler) ListOperators(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"operators": h.searchUC.Operators()})
}

func (h *Handler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Params == nil {
		req.Params = operator.Params{}
	}

	result, err := h.searchUC.Execute(c.Request.Context(), req.Operator, req.Params)
	if err != nil {
		log.WithError(err).WithField("operator", req.Operator).Error("search failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
