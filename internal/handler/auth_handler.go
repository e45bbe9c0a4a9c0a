package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/shapist-backend-go/internal/middleware"
	"github.com/jengzang/shapist-backend-go/pkg/response"
)

// AuthHandler issues device tokens.
type AuthHandler struct {
	secret string
}

// NewAuthHandler creates the handler with the signing secret.
func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{secret: secret}
}

type tokenRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
}

// IssueToken exchanges a device id for a bearer token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "deviceId is required")
		return
	}

	token, err := middleware.IssueToken(h.secret, req.DeviceID)
	if err != nil {
		response.InternalError(c, "failed to issue token")
		return
	}
	response.Success(c, gin.H{"token": token})
}
