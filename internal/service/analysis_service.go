package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/shapist-backend-go/internal/analysis"
	"github.com/jengzang/shapist-backend-go/internal/locale"
	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/pose"
)

// DetectorFactory opens a fresh detector session. Factories let each
// analysis pass own its detector lifecycle.
type DetectorFactory func() (pose.Detector, error)

// AnalysisService runs the multi-view posture assessment pipeline.
type AnalysisService struct {
	newDetector DetectorFactory
}

// NewAnalysisService creates the service with the given detector factory.
func NewAnalysisService(factory DetectorFactory) *AnalysisService {
	return &AnalysisService{newDetector: factory}
}

// AnalysisRequest is one assessment pass over up to three captured views.
type AnalysisRequest struct {
	Images   map[models.View]string // base64 image per captured view
	UserInfo *models.UserInfo
	Lang     locale.Language
}

// Analyze detects landmarks in each supplied view, extracts per-view
// metrics and aggregates them into a dated result. Views are processed in
// the fixed Front, Side, Back order regardless of map iteration. A view
// where no person is found is skipped; a detector error aborts the whole
// pass so a half-analyzed report is never returned.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalysisRequest) (*models.AnalysisResult, error) {
	detector, err := s.newDetector()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectorInit, err)
	}
	session := pose.NewSession(detector)
	defer session.Close()

	catalog := locale.For(req.Lang)
	extractor := analysis.NewExtractor(catalog)

	viewMetrics := make(map[models.View][]models.PostureMetric)
	allLandmarks := make(map[models.View][]models.Landmark)
	images := make(map[models.View]string)
	var supplied []models.View
	var primary []models.Landmark
	var primaryView models.View
	var primaryImage string

	for _, view := range models.CaptureViews {
		image, ok := req.Images[view]
		if !ok || image == "" {
			continue
		}
		supplied = append(supplied, view)
		images[view] = image

		poses, err := session.Detect(ctx, image)
		if err != nil {
			return nil, fmt.Errorf("%w: view %s: %v", ErrDetectionFailed, view, err)
		}
		if len(poses) == 0 || len(poses[0]) == 0 {
			log.Printf("[Analysis] no person detected in %s view, skipping", view)
			continue
		}

		landmarks := poses[0]
		allLandmarks[view] = landmarks
		if primary == nil {
			primary = landmarks
			primaryView = view
			primaryImage = image
		}
		viewMetrics[view] = extractor.Analyze(landmarks, view)
	}

	report, err := analysis.NewAggregator(catalog).Aggregate(viewMetrics, supplied, req.UserInfo)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		ID:                  uuid.NewString(),
		Date:                time.Now().UTC().Format(time.RFC3339),
		Score:               report.Score,
		Metrics:             report.Metrics,
		ImageURL:            primaryImage,
		Images:              images,
		Landmarks:           primary,
		View:                report.View,
		ActionPlan:          report.ActionPlan,
		PotentialConditions: report.PotentialConditions,
		AllLandmarks:        allLandmarks,
		UserInfo:            req.UserInfo,
	}
	log.Printf("[Analysis] completed: id=%s view=%s score=%d metrics=%d (primary=%s)",
		result.ID, result.View, result.Score, len(result.Metrics), primaryView)
	return result, nil
}
