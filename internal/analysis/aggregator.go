package analysis

import (
	"errors"
	"math"

	"github.com/jengzang/shapist-backend-go/internal/locale"
	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/pose"
)

// ErrNoSubject indicates no view produced any posture metric, i.e. no
// person was usably visible in any supplied image.
var ErrNoSubject = errors.New("no subject detected in any view")

var whrThresholds = models.Thresholds{Mild: 0.85, Moderate: 0.9, Severe: 0.95}

// BMI band edges (kg/m²).
const (
	bmiUnderweight = 18.5
	bmiNormal      = 24
	bmiOverweight  = 27
	bmiObese       = 30
)

// Aggregator merges per-view metrics into a single report, attaches the
// optional anthropometric metrics and derives the score, action plan and
// potential conditions.
type Aggregator struct {
	catalog locale.Catalog
}

// NewAggregator creates an aggregator bound to a locale catalog.
func NewAggregator(catalog locale.Catalog) *Aggregator {
	return &Aggregator{catalog: catalog}
}

// Report is the assessment produced by one aggregation pass.
type Report struct {
	Score               int
	Metrics             []models.PostureMetric
	ActionPlan          []models.Exercise
	PotentialConditions []string
	View                models.View
}

// Aggregate combines the metrics of each captured view. Views are merged in
// capture order and every metric is kept, even when views share a key; only
// the derived action plan and condition list are deduplicated. Returns
// ErrNoSubject if no view yielded a metric.
func (a *Aggregator) Aggregate(viewMetrics map[models.View][]models.PostureMetric, suppliedViews []models.View, info *models.UserInfo) (*Report, error) {
	var merged []models.PostureMetric
	for _, view := range models.CaptureViews {
		merged = append(merged, viewMetrics[view]...)
	}
	if len(merged) == 0 {
		return nil, ErrNoSubject
	}

	// Anthropometric metrics join after the no-subject check: body
	// measurements alone never count as a detected person.
	if info != nil {
		if m, ok := a.bmiMetric(info); ok {
			merged = append(merged, m)
		}
		if m, ok := a.whrMetric(info); ok {
			merged = append(merged, m)
		}
	}

	report := &Report{
		Score:   scoreFor(merged),
		Metrics: merged,
		View:    reportView(suppliedViews),
	}
	planned := make(map[string]bool)
	listed := make(map[string]bool)
	for _, m := range merged {
		if m.Severity == models.SeverityNormal {
			continue
		}
		if plan, ok := a.catalog.Plans[m.Key]; ok && !planned[m.Key] {
			planned[m.Key] = true
			report.ActionPlan = append(report.ActionPlan, models.Exercise{
				ID:          "plan-" + m.Key,
				Name:        plan.Name,
				Description: plan.Description,
				Duration:    plan.Duration,
			})
		}
		if cond, ok := a.catalog.Conditions[m.Key]; ok && !listed[cond] {
			listed[cond] = true
			report.PotentialConditions = append(report.PotentialConditions, cond)
		}
	}
	return report, nil
}

// scoreFor deducts a per-severity penalty from 100, clamped at zero.
func scoreFor(metrics []models.PostureMetric) int {
	score := 100
	for _, m := range metrics {
		score -= m.Severity.Penalty()
	}
	if score < 0 {
		score = 0
	}
	return score
}

// reportView tags the report with the single captured view, or Combined
// when multiple views contributed.
func reportView(supplied []models.View) models.View {
	if len(supplied) == 1 {
		return supplied[0]
	}
	return models.ViewCombined
}

// bmiMetric derives the body mass index metric when height and weight are
// both present.
func (a *Aggregator) bmiMetric(info *models.UserInfo) (models.PostureMetric, bool) {
	if info.Height <= 0 || info.Weight <= 0 {
		return models.PostureMetric{}, false
	}
	heightM := info.Height / 100
	bmi := info.Weight / (heightM * heightM)

	text := a.catalog.BMI
	var severity models.Severity
	var rec string
	switch {
	case bmi < bmiUnderweight:
		severity, rec = models.SeverityMild, text.Underweight
	case bmi < bmiNormal:
		severity, rec = models.SeverityNormal, text.Normal
	case bmi < bmiOverweight:
		severity, rec = models.SeverityMild, text.Overweight
	case bmi < bmiObese:
		severity, rec = models.SeverityModerate, text.Obese
	default:
		severity, rec = models.SeveritySevere, text.SevereObese
	}
	return models.PostureMetric{
		Key:            "bmi",
		Name:           text.Name,
		Value:          round1(bmi),
		Unit:           "kg/m²",
		Severity:       severity,
		Description:    text.Description,
		Recommendation: rec,
	}, true
}

// whrMetric derives the waist-hip ratio metric when both circumferences are
// present.
func (a *Aggregator) whrMetric(info *models.UserInfo) (models.PostureMetric, bool) {
	if info.Waist <= 0 || info.Hip <= 0 {
		return models.PostureMetric{}, false
	}
	whr := info.Waist / info.Hip
	severity := pose.Classify(whr, whrThresholds, false)

	text := a.catalog.WHR
	rec := text.Normal
	switch severity {
	case models.SeverityMild:
		rec = text.Mild
	case models.SeverityModerate:
		rec = text.Moderate
	case models.SeveritySevere:
		rec = text.Severe
	}
	return models.PostureMetric{
		Key:            "whr",
		Name:           text.Name,
		Value:          math.Round(whr*100) / 100,
		Unit:           "ratio",
		Severity:       severity,
		Description:    text.Description,
		Recommendation: rec,
	}, true
}
