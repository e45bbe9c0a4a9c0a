package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/service"
	"github.com/jengzang/shapist-backend-go/pkg/response"
)

// GameHandler exposes the rhythm game session API.
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates the handler.
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// Levels returns the level catalog.
func (h *GameHandler) Levels(c *gin.Context) {
	response.Success(c, h.gameService.Levels())
}

// CreateSession opens a new session in the loading phase.
func (h *GameHandler) CreateSession(c *gin.Context) {
	info, err := h.gameService.CreateSession()
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, info)
}

// GetSession returns the session snapshot.
func (h *GameHandler) GetSession(c *gin.Context) {
	info, err := h.gameService.Session(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, info)
}

// Ack confirms loading finished, or dismisses a result screen.
func (h *GameHandler) Ack(c *gin.Context) {
	info, err := h.gameService.Ack(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, info)
}

type startRequest struct {
	LevelID string `json:"levelId" binding:"required"`
}

// Start begins a run of the requested level.
func (h *GameHandler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "levelId is required")
		return
	}
	info, err := h.gameService.StartLevel(c.Param("id"), req.LevelID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, info)
}

// Frame judges one camera frame against the running chart.
func (h *GameHandler) Frame(c *gin.Context) {
	var req models.FrameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid frame payload")
		return
	}
	result, err := h.gameService.Frame(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, result)
}

// Exit abandons the current run and returns to the menu.
func (h *GameHandler) Exit(c *gin.Context) {
	info, err := h.gameService.Exit(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, info)
}

// Close tears the session down entirely.
func (h *GameHandler) Close(c *gin.Context) {
	if err := h.gameService.CloseSession(c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *GameHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, "session not found")
	case errors.Is(err, service.ErrLevelNotFound):
		response.NotFound(c, "level not found")
	case errors.Is(err, service.ErrInvalidState):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrDetectorInit):
		response.Error(c, http.StatusServiceUnavailable, "pose detector unavailable")
	case errors.Is(err, service.ErrDetectionFailed):
		response.Error(c, http.StatusBadGateway, "pose detection failed")
	default:
		response.InternalError(c, "internal error")
	}
}
