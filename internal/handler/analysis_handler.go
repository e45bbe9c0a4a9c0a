package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/shapist-backend-go/internal/analysis"
	"github.com/jengzang/shapist-backend-go/internal/locale"
	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/service"
	"github.com/jengzang/shapist-backend-go/pkg/response"
)

// AnalysisHandler exposes the posture assessment endpoint.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	resultService   *service.ResultService
	defaultLang     locale.Language
}

// NewAnalysisHandler creates the handler.
func NewAnalysisHandler(analysisService *service.AnalysisService, resultService *service.ResultService, defaultLang locale.Language) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		resultService:   resultService,
		defaultLang:     defaultLang,
	}
}

type analyzeRequest struct {
	Images   map[string]string `json:"images" binding:"required"`
	UserInfo *models.UserInfo  `json:"userInfo"`
	Save     bool              `json:"save"`
}

// Analyze runs one assessment over the supplied view images. Images are
// keyed by view name (Front, Side, Back); unknown keys are rejected.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "images map is required")
		return
	}

	images := make(map[models.View]string, len(req.Images))
	for key, image := range req.Images {
		view := models.View(key)
		if !validCaptureView(view) {
			response.BadRequest(c, "unknown view: "+key)
			return
		}
		images[view] = image
	}
	if len(images) == 0 {
		response.BadRequest(c, "at least one view image is required")
		return
	}

	lang := h.lang(c)
	result, err := h.analysisService.Analyze(c.Request.Context(), service.AnalysisRequest{
		Images:   images,
		UserInfo: req.UserInfo,
		Lang:     lang,
	})
	if err != nil {
		h.writeAnalysisError(c, lang, err)
		return
	}

	if req.Save {
		if err := h.resultService.Save(result); err != nil {
			log.Printf("[Analysis] failed to save result %s: %v", result.ID, err)
		}
	}
	response.Success(c, result)
}

// writeAnalysisError maps pipeline failures to localized user messages.
func (h *AnalysisHandler) writeAnalysisError(c *gin.Context, lang locale.Language, err error) {
	msgs := locale.For(lang).Messages
	switch {
	case errors.Is(err, analysis.ErrNoSubject):
		response.Error(c, http.StatusUnprocessableEntity, msgs.NoPerson)
	case errors.Is(err, service.ErrDetectorInit):
		response.Error(c, http.StatusServiceUnavailable, msgs.FailInit)
	case errors.Is(err, service.ErrDetectionFailed):
		response.Error(c, http.StatusBadGateway, msgs.FailAnalyze)
	default:
		log.Printf("[Analysis] unexpected error: %v", err)
		response.InternalError(c, msgs.FailAnalyze)
	}
}

func (h *AnalysisHandler) lang(c *gin.Context) locale.Language {
	if raw := c.Query("lang"); raw != "" {
		return locale.Language(raw)
	}
	return h.defaultLang
}

func validCaptureView(view models.View) bool {
	for _, v := range models.CaptureViews {
		if v == view {
			return true
		}
	}
	return false
}
