package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/dto"
)

func (h *Handler) ListArtworks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	if pageSize <= 0 {
		pageSize = 12
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filter := domain.ArtworkFilter{
		Inventory: c.Query("inventory_number"),
		Artist:    c.Query("artist"),
		Title:     c.Query("title"),
		Sources:   c.QueryArray("source"),
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	}
	if v := c.Query("year_from"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			filter.YearFrom = &y
		}
	}
	if v := c.Query("year_to"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			filter.YearTo = &y
		}
	}

	artworks, total, err := h.searchUC.ListArtworks(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list artworks failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.ArtworkResponse, 0, len(artworks))
	for _, a := range artworks {
		items = append(items, dto.ToArtworkResponse(a, h.imageBaseURL))
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, dto.ListArtworksResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func (h *Handler) GetArtwork(c *gin.Context) {
	inventory := c.Param("inventory")

	artwork, err := h.searchUC.GetArtwork(c.Request.Context(), inventory)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtworkResponse(artwork, h.imageBaseURL))
}
