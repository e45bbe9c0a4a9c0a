package service

import (
	"fmt"
	"time"

	"github.com/jengzang/shapist-backend-go/internal/analysis"
	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/repository"
)

// ResultService manages the stored assessment history.
type ResultService struct {
	repo *repository.ResultRepository
}

// NewResultService creates the service on the given repository.
func NewResultService(repo *repository.ResultRepository) *ResultService {
	return &ResultService{repo: repo}
}

// Save stores one assessment.
func (s *ResultService) Save(result *models.AnalysisResult) error {
	return s.repo.Save(result)
}

// List returns the full history, newest first.
func (s *ResultService) List() ([]*models.AnalysisResult, error) {
	return s.repo.List()
}

// Get returns one assessment by id.
func (s *ResultService) Get(id string) (*models.AnalysisResult, error) {
	return s.repo.GetByID(id)
}

// Delete removes one assessment by id.
func (s *ResultService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Trend computes the score trend over the stored history. Results whose
// dates fail to parse are skipped rather than failing the whole series.
func (s *ResultService) Trend() (analysis.Trend, []analysis.TrendPoint, error) {
	results, err := s.repo.List()
	if err != nil {
		return analysis.Trend{}, nil, fmt.Errorf("failed to load history: %w", err)
	}

	var points []analysis.TrendPoint
	for _, r := range results {
		date, err := time.Parse(time.RFC3339, r.Date)
		if err != nil {
			continue
		}
		points = append(points, analysis.TrendPoint{Date: date, Score: float64(r.Score)})
	}
	return analysis.ComputeTrend(points), points, nil
}
