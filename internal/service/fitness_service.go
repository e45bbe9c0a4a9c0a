package service

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

// FitnessService asks an external vision service to recognize home fitness
// equipment in a photo and suggest exercises for it.
type FitnessService struct {
	baseURL string
	client  *http.Client
}

// NewFitnessService creates the service for the given endpoint.
func NewFitnessService(baseURL string) *FitnessService {
	return &FitnessService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type environmentRequest struct {
	Image string `json:"image"`
	Lang  string `json:"lang,omitempty"`
}

// AnalyzeEnvironment submits one photo of the user's surroundings.
func (s *FitnessService) AnalyzeEnvironment(ctx context.Context, image, lang string) (*models.EnvironmentResult, error) {
	body, err := json.Marshal(environmentRequest{Image: image, Lang: lang})
	if err != nil {
		return nil, fmt.Errorf("failed to encode environment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/environment", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build environment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("environment request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("environment service returned status %d: %s", resp.StatusCode, string(raw))
	}

	var result models.EnvironmentResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode environment response: %w", err)
	}
	return &result, nil
}
