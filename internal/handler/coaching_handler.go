package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
	"github.com/jengzang/cricketsense-backend-go/internal/repository"
	"github.com/jengzang/cricketsense-backend-go/internal/service"
	"github.com/jengzang/cricketsense-backend-go/pkg/response"
)

// CoachingHandler handles HTTP requests for attempts and comparisons
type CoachingHandler struct {
	service *service.CoachingService
}

// NewCoachingHandler creates a new coaching handler
func NewCoachingHandler(service *service.CoachingService) *CoachingHandler {
	return &CoachingHandler{service: service}
}

// fail maps service errors onto status codes
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	response.InternalError(c, "internal error")
}

// CreateAttempt analyzes the posted frames and stores the attempt
// POST /api/v1/attempts
func (h *CoachingHandler) CreateAttempt(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	attempt, err := h.service.AnalyzeFrames(c.Request.Context(), req.Label, req.Frames)
	if err != nil {
		fail(c, err)
		return
	}

	response.Created(c, attempt)
}

// ListAttempts lists stored attempts
// GET /api/v1/attempts
func (h *CoachingHandler) ListAttempts(c *gin.Context) {
	shotType := c.Query("shot_type")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}

	attempts, err := h.service.ListAttempts(c.Request.Context(), shotType, limit, offset)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{
		"attempts": attempts,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetAttempt retrieves an attempt by id
// GET /api/v1/attempts/:id
func (h *CoachingHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.service.GetAttempt(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, attempt)
}

// DeleteAttempt removes an attempt
// DELETE /api/v1/attempts/:id
func (h *CoachingHandler) DeleteAttempt(c *gin.Context) {
	if err := h.service.DeleteAttempt(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Attempt deleted successfully"})
}

// GetAdvice returns the coaching advice for an attempt
// GET /api/v1/attempts/:id/advice
func (h *CoachingHandler) GetAdvice(c *gin.Context) {
	advice, err := h.service.Advice(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, advice)
}

// GetSummary returns the coaching report for an attempt as plain text
// GET /api/v1/attempts/:id/summary
func (h *CoachingHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Text(c, summary)
}

// GetNarrative returns a personal coaching note for an attempt
// GET /api/v1/attempts/:id/narrative
func (h *CoachingHandler) GetNarrative(c *gin.Context) {
	narrative, err := h.service.Narrative(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"narrative": narrative})
}

// CreateComparison compares a follow-up attempt with the original
// POST /api/v1/comparisons
func (h *CoachingHandler) CreateComparison(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cmp, err := h.service.Compare(c.Request.Context(), req.OriginalID, req.FollowupID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, cmp)
}

// GetComparisonSummary returns the improvement report as plain text
// GET /api/v1/comparisons/summary?original_id=&followup_id=
func (h *CoachingHandler) GetComparisonSummary(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "original_id and followup_id are required")
		return
	}

	summary, err := h.service.CompareSummary(c.Request.Context(), req.OriginalID, req.FollowupID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Text(c, summary)
}
