package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) InsightsSummary(c *gin.Context) {
	summary, err := h.insightsUC.Summary(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("insights summary failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) InsightsDistribution(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	dist, err := h.insightsUC.Distribution(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("insights distribution failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

func (h *Handler) InsightsActivity(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	buckets, err := h.insightsUC.Activity(c.Request.Context(), days)
	if err != nil {
		log.WithError(err).Error("insights activity failed")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "activity": buckets})
}
