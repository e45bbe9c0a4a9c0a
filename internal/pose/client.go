package pose

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

// ClientConfig configures the HTTP detector client.
type ClientConfig struct {
	BaseURL       string
	MinConfidence float64 // forwarded to the model; detections below are dropped
	Timeout       time.Duration
}

// HTTPDetector talks to a pose landmark detection service over HTTP.
type HTTPDetector struct {
	cfg    ClientConfig
	client *http.Client
}

// NewHTTPDetector creates a detector client for the given endpoint.
func NewHTTPDetector(cfg ClientConfig) *HTTPDetector {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &HTTPDetector{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type detectRequest struct {
	Image         string   `json:"image"`
	TimestampMs   *float64 `json:"timestamp_ms,omitempty"`
	MinConfidence float64  `json:"min_confidence"`
}

type detectResponse struct {
	Poses [][]models.Landmark `json:"poses"`
	Error string              `json:"error,omitempty"`
}

// Detect runs single-image detection.
func (d *HTTPDetector) Detect(ctx context.Context, image string) ([][]models.Landmark, error) {
	return d.post(ctx, "/v1/detect", detectRequest{
		Image:         image,
		MinConfidence: d.cfg.MinConfidence,
	})
}

// DetectForVideo runs streaming-mode detection for one frame.
func (d *HTTPDetector) DetectForVideo(ctx context.Context, frame string, timestampMs float64) ([][]models.Landmark, error) {
	return d.post(ctx, "/v1/detect/video", detectRequest{
		Image:         frame,
		TimestampMs:   &timestampMs,
		MinConfidence: d.cfg.MinConfidence,
	})
}

// Close releases pooled connections. The remote service is stateless per
// call, so there is nothing else to dispose.
func (d *HTTPDetector) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *HTTPDetector) post(ctx context.Context, path string, payload detectRequest) ([][]models.Landmark, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detector request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read detector response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector returned status %d: %s", resp.StatusCode, string(raw))
	}

	var decoded detectResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode detector response: %w", err)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("detector error: %s", decoded.Error)
	}
	return decoded.Poses, nil
}
