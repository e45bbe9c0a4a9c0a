package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/shapist-backend-go/internal/service"
	"github.com/jengzang/shapist-backend-go/pkg/response"
)

// FitnessHandler exposes the home-environment fitness analysis.
type FitnessHandler struct {
	fitnessService *service.FitnessService
}

// NewFitnessHandler creates the handler.
func NewFitnessHandler(fitnessService *service.FitnessService) *FitnessHandler {
	return &FitnessHandler{fitnessService: fitnessService}
}

type environmentRequest struct {
	Image string `json:"image" binding:"required"`
	Lang  string `json:"lang"`
}

// AnalyzeEnvironment recognizes fitness equipment in a photo and returns
// exercise suggestions for it.
func (h *FitnessHandler) AnalyzeEnvironment(c *gin.Context) {
	var req environmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "image is required")
		return
	}

	result, err := h.fitnessService.AnalyzeEnvironment(c.Request.Context(), req.Image, req.Lang)
	if err != nil {
		response.Error(c, 502, "environment analysis failed")
		return
	}
	response.Success(c, result)
}
