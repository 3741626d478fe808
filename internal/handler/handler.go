package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/drdwitte/Fabritius-NG/internal/usecase"
)

type Handler struct {
	searchUC    *usecase.SearchUseCase
	labelUC     *usecase.LabelUseCase
	thesaurusUC *usecase.ThesaurusUseCase
	insightsUC  *usecase.InsightsUseCase

	imageBaseURL string
}

func New(searchUC *usecase.SearchUseCase, labelUC *usecase.LabelUseCase, thesaurusUC *usecase.ThesaurusUseCase, insightsUC *usecase.InsightsUseCase, imageBaseURL string) *Handler {
	return &Handler{
		searchUC:     searchUC,
		labelUC:      labelUC,
		thesaurusUC:  thesaurusUC,
		insightsUC:   insightsUC,
		imageBaseURL: imageBaseURL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Artworks
	r.GET("/artworks", h.ListArtworks)
	r.GET("/artworks/:inventory", h.GetArtwork)
	r.POST("/artworks/:inventory/tags", h.AssignTag)
	r.DELETE("/artworks/:inventory/tags/:tagID", h.UnassignTag)

	// Search pipeline
	r.GET("/operators", h.ListOperators)
	r.POST("/search", h.Search)

	// Tags and validation
	r.GET("/tags", h.ListTags)
	r.POST("/tags", h.CreateTag)
	r.GET("/tags/:id", h.GetTag)
	r.POST("/assignments", h.BulkAssign)
	r.POST("/assignments/promote", h.PromoteAssignments)
	r.POST("/assignments/demote", h.DemoteAssignments)
	r.GET("/levels", h.ListLevels)
	r.GET("/labels/:label/validation", h.ValidateLabel)

	// Thesauri
	r.GET("/thesauri", h.ListThesauri)
	r.GET("/thesauri/:id/terms", h.ThesaurusTerms)
	r.POST("/thesauri/:id/labels", h.CreateThesaurusLabel)

	// Insights
	r.GET("/insights/summary", h.InsightsSummary)
	r.GET("/insights/tags", h.InsightsDistribution)
	r.GET("/insights/activity", h.InsightsActivity)
}

// actor identifies who performed a mutation, for the activity audit log.
func actor(c *gin.Context) string {
	if user := c.GetHeader("X-User"); user != "" {
		return user
	}
	return "anonymous"
}
