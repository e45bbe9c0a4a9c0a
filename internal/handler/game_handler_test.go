package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/pose"
	"github.com/jengzang/shapist-backend-go/internal/service"
	"github.com/jengzang/shapist-backend-go/pkg/response"
)

type stubDetector struct{}

func (stubDetector) Detect(ctx context.Context, image string) ([][]models.Landmark, error) {
	return nil, nil
}

func (stubDetector) DetectForVideo(ctx context.Context, frame string, timestampMs float64) ([][]models.Landmark, error) {
	return nil, nil
}

func (stubDetector) Close() error { return nil }

func gameRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewGameService(func() (pose.Detector, error) {
		return stubDetector{}, nil
	}, nil)
	h := NewGameHandler(svc)

	r := gin.New()
	r.GET("/game/levels", h.Levels)
	r.POST("/game/sessions", h.CreateSession)
	r.GET("/game/sessions/:id", h.GetSession)
	r.POST("/game/sessions/:id/ack", h.Ack)
	r.POST("/game/sessions/:id/start", h.Start)
	r.POST("/game/sessions/:id/frame", h.Frame)
	r.POST("/game/sessions/:id/exit", h.Exit)
	r.DELETE("/game/sessions/:id", h.Close)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestGameLevelsEndpoint(t *testing.T) {
	t.Parallel()
	w, envelope := doJSON(t, gameRouter(), http.MethodGet, "/game/levels", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	levels, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, levels, 15)
}

func TestGameSessionEndpoints(t *testing.T) {
	t.Parallel()
	r := gameRouter()

	w, envelope := doJSON(t, r, http.MethodPost, "/game/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	session, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	id, _ := session["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "LOADING", session["state"])

	w, envelope = doJSON(t, r, http.MethodPost, "/game/sessions/"+id+"/ack", nil)
	require.Equal(t, http.StatusOK, w.Code)
	session = envelope.Data.(map[string]any)
	assert.Equal(t, "MENU", session["state"])

	w, envelope = doJSON(t, r, http.MethodPost, "/game/sessions/"+id+"/start", gin.H{"levelId": "S1L1"})
	require.Equal(t, http.StatusOK, w.Code)
	session = envelope.Data.(map[string]any)
	assert.Equal(t, "PLAYING", session["state"])

	w, _ = doJSON(t, r, http.MethodPost, "/game/sessions/"+id+"/frame", gin.H{
		"imageData":   "frame",
		"timestampMs": 100,
		"mediaTime":   1.0,
		"mediaState":  "PLAYING",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/game/sessions/"+id+"/exit", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/game/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/game/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGameSessionConflicts(t *testing.T) {
	t.Parallel()
	r := gameRouter()

	_, envelope := doJSON(t, r, http.MethodPost, "/game/sessions", nil)
	id := envelope.Data.(map[string]any)["id"].(string)

	// Starting a level before loading finishes is a state conflict.
	w, _ := doJSON(t, r, http.MethodPost, "/game/sessions/"+id+"/start", gin.H{"levelId": "S1L1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown levels are a 404 once in the menu.
	_, _ = doJSON(t, r, http.MethodPost, "/game/sessions/"+id+"/ack", nil)
	w, _ = doJSON(t, r, http.MethodPost, "/game/sessions/"+id+"/start", gin.H{"levelId": "nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
