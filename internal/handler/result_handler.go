package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/report"
	"github.com/jengzang/shapist-backend-go/internal/repository"
	"github.com/jengzang/shapist-backend-go/internal/service"
	"github.com/jengzang/shapist-backend-go/pkg/response"
)

// ResultHandler exposes the assessment history.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates the handler.
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// List returns all stored results, newest first.
func (h *ResultHandler) List(c *gin.Context) {
	results, err := h.resultService.List()
	if err != nil {
		response.InternalError(c, "failed to load history")
		return
	}
	if results == nil {
		results = []*models.AnalysisResult{}
	}
	response.Success(c, results)
}

// Get returns one result by id.
func (h *ResultHandler) Get(c *gin.Context) {
	result, err := h.resultService.Get(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "result not found")
		return
	}
	if err != nil {
		response.InternalError(c, "failed to load result")
		return
	}
	response.Success(c, result)
}

// Save stores a result supplied by the client.
func (h *ResultHandler) Save(c *gin.Context) {
	var result models.AnalysisResult
	if err := c.ShouldBindJSON(&result); err != nil {
		response.BadRequest(c, "invalid result payload")
		return
	}
	if result.ID == "" {
		response.BadRequest(c, "result id is required")
		return
	}
	if err := h.resultService.Save(&result); err != nil {
		response.InternalError(c, "failed to save result")
		return
	}
	response.Success(c, gin.H{"id": result.ID})
}

// Delete removes one result by id.
func (h *ResultHandler) Delete(c *gin.Context) {
	err := h.resultService.Delete(c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "result not found")
		return
	}
	if err != nil {
		response.InternalError(c, "failed to delete result")
		return
	}
	response.Success(c, nil)
}

// Trend returns the score trend summary and its points.
func (h *ResultHandler) Trend(c *gin.Context) {
	trend, points, err := h.resultService.Trend()
	if err != nil {
		response.InternalError(c, "failed to compute trend")
		return
	}
	response.Success(c, gin.H{"trend": trend, "points": points})
}

// TrendChart renders the score history as a standalone HTML chart.
func (h *ResultHandler) TrendChart(c *gin.Context) {
	trend, points, err := h.resultService.Trend()
	if err != nil {
		response.InternalError(c, "failed to compute trend")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderTrendChart(c.Writer, points, trend); err != nil {
		response.InternalError(c, "failed to render chart")
	}
}
