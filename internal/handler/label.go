package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/drdwitte/Fabritius-NG/internal/domain"
	"github.com/drdwitte/Fabritius-NG/internal/dto"
	"github.com/drdwitte/Fabritius-NG/internal/usecase"
)

func (h *Handler) ListTags(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := domain.TagFilter{
		Search:      c.Query("search"),
		ThesaurusID: c.Query("thesaurus_id"),
		Limit:       limit,
		Offset:      offset,
	}

	tags, total, err := h.labelUC.ListTags(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list tags failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		items = append(items, dto.ToTagResponse(t))
	}
	c.JSON(http.StatusOK, dto.ListTagsResponse{Items: items, Total: total})
}

func (h *Handler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.labelUC.CreateTag(c.Request.Context(), req.Label, req.Definition, req.ThesaurusID)
	if err != nil {
		log.WithError(err).Error("create tag failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

func (h *Handler) GetTag(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag id"})
		return
	}

	tag, err := h.labelUC.GetTag(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

func (h *Handler) AssignTag(c *gin.Context) {
	inventory := c.Param("inventory")

	var req dto.AssignTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.labelUC.Assign(c.Request.Context(), inventory, req.TagID, req.Label,
		domain.Provenance(strings.ToUpper(req.Provenance)), actor(c))
	if err != nil {
		log.WithError(err).WithField("artwork", inventory).Error("assign tag failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(link))
}

func (h *Handler) UnassignTag(c *gin.Context) {
	inventory := c.Param("inventory")
	tagID, err := strconv.ParseInt(c.Param("tagID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag id"})
		return
	}

	ref := domain.AssignmentRef{ArtworkID: inventory, TagID: tagID}
	if err := h.labelUC.Unassign(c.Request.Context(), ref, actor(c)); err != nil {
		log.WithError(err).WithField("artwork", inventory).Error("unassign tag failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) BulkAssign(c *gin.Context) {
	var req dto.BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.labelUC.BulkAssign(c.Request.Context(), req.InventoryNumbers,
		req.TagID, req.Label, domain.Provenance(strings.ToUpper(req.Provenance)), actor(c))
	if err != nil {
		log.WithError(err).Error("bulk assign failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) PromoteAssignments(c *gin.Context) {
	h.moveAssignments(c, h.labelUC.Promote)
}

func (h *Handler) DemoteAssignments(c *gin.Context) {
	h.moveAssignments(c, h.labelUC.Demote)
}

func (h *Handler) moveAssignments(c *gin.Context, move func(ctx context.Context, refs []domain.AssignmentRef, from domain.Provenance, actor string) error) {
	var req dto.MoveAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	refs := dto.ToAssignmentRefs(req.Assignments)
	from := domain.Provenance(strings.ToUpper(req.From))

	if err := move(c.Request.Context(), refs, from, actor(c)); err != nil {
		log.WithError(err).WithField("from", from).Error("move assignments failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "moved": len(refs)})
}

func (h *Handler) ListLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"levels":     domain.EnabledLevels(),
		"algorithms": usecase.Algorithms,
	})
}

func (h *Handler) ValidateLabel(c *gin.Context) {
	label := c.Param("label")
	algorithms := splitParam(c.Query("algorithms"))
	levels := splitParam(c.Query("levels"))

	boxes, err := h.labelUC.Validate(c.Request.Context(), label, algorithms, levels)
	if err != nil {
		log.WithError(err).WithField("label", label).Error("label validation failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"label": label, "boxes": boxes})
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
