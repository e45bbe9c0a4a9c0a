package analysis

import (
	"math"

	"github.com/jengzang/shapist-backend-go/internal/locale"
	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/pose"
)

// Threshold triples per rule. Distances are in normalized units scaled by
// 100 for a cm-like display value; the kyphosis deviation is in degrees.
var (
	headForwardThresholds = models.Thresholds{Mild: 2, Moderate: 4, Severe: 6}
	kyphosisThresholds    = models.Thresholds{Mild: 5, Moderate: 10, Severe: 15}
	levelThresholds       = models.Thresholds{Mild: 0.5, Moderate: 1.5, Severe: 3}
	knockKneeThresholds   = models.Thresholds{Mild: 0.1, Moderate: 0.2, Severe: 0.3}
	bowLegThresholds      = models.Thresholds{Mild: 0.2, Moderate: 0.5, Severe: 1.0}
)

// Synthetic point offset above the shoulder used by the kyphosis rule. The
// resulting angle is a heuristic proxy for spinal curvature, not an
// anatomically validated measurement; keep the formula as-is.
const kyphosisProbeOffset = 0.1

const (
	displayScale   = 100 // normalized units -> cm-like display value
	ankleDistFloor = 0.01
	knockKneeLimit = 0.5
	bowLegLimit    = 1.5
)

// Extractor derives posture metrics from a single landmark set. It is a pure
// function of its inputs: the injected catalog affects display strings only,
// never values or severities.
type Extractor struct {
	catalog locale.Catalog
}

// NewExtractor creates an extractor bound to a locale catalog.
func NewExtractor(catalog locale.Catalog) *Extractor {
	return &Extractor{catalog: catalog}
}

// Analyze runs every rule applicable to the given view. Rules whose required
// landmarks are absent emit nothing.
func (e *Extractor) Analyze(landmarks []models.Landmark, view models.View) []models.PostureMetric {
	var metrics []models.PostureMetric

	switch view {
	case models.ViewSide:
		if m, ok := e.headForward(landmarks); ok {
			metrics = append(metrics, m)
		}
		if m, ok := e.kyphosis(landmarks); ok {
			metrics = append(metrics, m)
		}
	case models.ViewFront:
		if m, ok := e.shoulderLevel(landmarks); ok {
			metrics = append(metrics, m)
		}
		if m, ok := e.pelvicLevel(landmarks); ok {
			metrics = append(metrics, m)
		}
		if m, ok := e.legAlignment(landmarks); ok {
			metrics = append(metrics, m)
		}
	}

	return metrics
}

// headForward measures the horizontal ear-to-shoulder distance, preferring
// the left-side landmarks and falling back to the right.
func (e *Extractor) headForward(landmarks []models.Landmark) (models.PostureMetric, bool) {
	ear, ok := models.FirstLandmark(landmarks, models.LandmarkLeftEar, models.LandmarkRightEar)
	if !ok {
		return models.PostureMetric{}, false
	}
	shoulder, ok := models.FirstLandmark(landmarks, models.LandmarkLeftShoulder, models.LandmarkRightShoulder)
	if !ok {
		return models.PostureMetric{}, false
	}

	dist := math.Abs(ear.X-shoulder.X) * displayScale
	severity := pose.Classify(dist, headForwardThresholds, false)
	return e.metric("headForward", round1(dist), "cm", severity), true
}

// kyphosis measures the deviation from vertical of the shoulder-hip line,
// using a synthetic point directly above the shoulder as the reference ray.
func (e *Extractor) kyphosis(landmarks []models.Landmark) (models.PostureMetric, bool) {
	shoulder, ok := models.FirstLandmark(landmarks, models.LandmarkLeftShoulder, models.LandmarkRightShoulder)
	if !ok {
		return models.PostureMetric{}, false
	}
	hip, ok := models.FirstLandmark(landmarks, models.LandmarkLeftHip, models.LandmarkRightHip)
	if !ok {
		return models.PostureMetric{}, false
	}

	above := models.Landmark{X: shoulder.X, Y: shoulder.Y - kyphosisProbeOffset}
	angle := pose.Angle(above, shoulder, hip)
	dev := math.Abs(180 - angle)
	severity := pose.Classify(dev, kyphosisThresholds, false)
	return e.metric("kyphosis", round1(dev), "°", severity), true
}

func (e *Extractor) shoulderLevel(landmarks []models.Landmark) (models.PostureMetric, bool) {
	left, okL := models.LandmarkAt(landmarks, models.LandmarkLeftShoulder)
	right, okR := models.LandmarkAt(landmarks, models.LandmarkRightShoulder)
	if !okL || !okR {
		return models.PostureMetric{}, false
	}

	diff := math.Abs(left.Y-right.Y) * displayScale
	severity := pose.Classify(diff, levelThresholds, false)
	return e.metric("shoulderImbalance", round1(diff), "cm", severity), true
}

func (e *Extractor) pelvicLevel(landmarks []models.Landmark) (models.PostureMetric, bool) {
	left, okL := models.LandmarkAt(landmarks, models.LandmarkLeftHip)
	right, okR := models.LandmarkAt(landmarks, models.LandmarkRightHip)
	if !okL || !okR {
		return models.PostureMetric{}, false
	}

	diff := math.Abs(left.Y-right.Y) * displayScale
	severity := pose.Classify(diff, levelThresholds, false)
	return e.metric("pelvicImbalance", round1(diff), "cm", severity), true
}

// legAlignment classifies the knee-to-ankle spread ratio: below 0.5 signals
// a knock-knee pattern, above 1.5 a bow-leg pattern, in between Normal.
func (e *Extractor) legAlignment(landmarks []models.Landmark) (models.PostureMetric, bool) {
	lKnee, ok1 := models.LandmarkAt(landmarks, models.LandmarkLeftKnee)
	rKnee, ok2 := models.LandmarkAt(landmarks, models.LandmarkRightKnee)
	lAnkle, ok3 := models.LandmarkAt(landmarks, models.LandmarkLeftAnkle)
	rAnkle, ok4 := models.LandmarkAt(landmarks, models.LandmarkRightAnkle)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return models.PostureMetric{}, false
	}

	kneeDist := math.Abs(lKnee.X - rKnee.X)
	ankleDist := math.Abs(lAnkle.X - rAnkle.X)
	if ankleDist == 0 {
		ankleDist = ankleDistFloor
	}
	ratio := kneeDist / ankleDist

	m := e.metric("legAlignment", round2(ratio), "ratio", models.SeverityNormal)
	switch {
	case ratio < knockKneeLimit:
		m.Severity = pose.Classify(knockKneeLimit-ratio, knockKneeThresholds, false)
		m.Name = e.catalog.Leg.KnockKneeName
		m.SearchKeywords = e.catalog.Leg.KnockKneeKeyword
	case ratio > bowLegLimit:
		m.Severity = pose.Classify(ratio-bowLegLimit, bowLegThresholds, false)
		m.Name = e.catalog.Leg.BowLegName
		m.SearchKeywords = e.catalog.Leg.BowLegKeyword
	}
	if m.Severity == models.SeverityNormal {
		m.Recommendation = e.catalog.Metrics["legAlignment"].NormalNote
	} else {
		m.Recommendation = e.catalog.Metrics["legAlignment"].Recommendation
	}
	return m, true
}

// metric assembles a PostureMetric with the catalog texts for the given key.
func (e *Extractor) metric(key string, value float64, unit string, severity models.Severity) models.PostureMetric {
	text := e.catalog.Metrics[key]
	rec := text.Recommendation
	if severity == models.SeverityNormal {
		rec = text.NormalNote
	}
	return models.PostureMetric{
		Key:            key,
		Name:           text.Name,
		Value:          value,
		Unit:           unit,
		Severity:       severity,
		Description:    text.Description,
		Recommendation: rec,
		SearchKeywords: text.SearchKeywords,
		Cues:           text.Cues,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
