package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/shapist-backend-go/internal/locale"
	"github.com/jengzang/shapist-backend-go/internal/models"
)

// standingLandmarks returns a full 33-point set of a neutral standing body
// seen from the front, symmetric around x=0.5.
func standingLandmarks() []models.Landmark {
	lm := make([]models.Landmark, models.NumLandmarks)
	lm[models.LandmarkNose] = models.Landmark{X: 0.5, Y: 0.1}
	lm[models.LandmarkLeftEar] = models.Landmark{X: 0.52, Y: 0.12}
	lm[models.LandmarkRightEar] = models.Landmark{X: 0.48, Y: 0.12}
	lm[models.LandmarkLeftShoulder] = models.Landmark{X: 0.6, Y: 0.3}
	lm[models.LandmarkRightShoulder] = models.Landmark{X: 0.4, Y: 0.3}
	lm[models.LandmarkLeftWrist] = models.Landmark{X: 0.65, Y: 0.55}
	lm[models.LandmarkRightWrist] = models.Landmark{X: 0.35, Y: 0.55}
	lm[models.LandmarkLeftHip] = models.Landmark{X: 0.56, Y: 0.55}
	lm[models.LandmarkRightHip] = models.Landmark{X: 0.44, Y: 0.55}
	lm[models.LandmarkLeftKnee] = models.Landmark{X: 0.54, Y: 0.75}
	lm[models.LandmarkRightKnee] = models.Landmark{X: 0.46, Y: 0.75}
	lm[models.LandmarkLeftAnkle] = models.Landmark{X: 0.56, Y: 0.95}
	lm[models.LandmarkRightAnkle] = models.Landmark{X: 0.44, Y: 0.95}
	return lm
}

func metricByKey(t *testing.T, metrics []models.PostureMetric, key string) models.PostureMetric {
	t.Helper()
	for _, m := range metrics {
		if m.Key == key {
			return m
		}
	}
	t.Fatalf("metric %q not found", key)
	return models.PostureMetric{}
}

func TestExtractorSideView(t *testing.T) {
	t.Parallel()
	extractor := NewExtractor(locale.For(locale.English))

	t.Run("head forward at the mild boundary", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		lm[models.LandmarkLeftEar] = models.Landmark{X: 0.52, Y: 0.12}
		lm[models.LandmarkLeftShoulder] = models.Landmark{X: 0.5, Y: 0.3}

		m := metricByKey(t, extractor.Analyze(lm, models.ViewSide), "headForward")
		assert.InDelta(t, 2.0, m.Value, 1e-9)
		assert.Equal(t, models.SeverityMild, m.Severity)
		assert.Equal(t, "cm", m.Unit)
		assert.Equal(t, "Perform chin tucks and chest stretches.", m.Recommendation)
	})

	t.Run("aligned ear over shoulder is normal", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		lm[models.LandmarkLeftEar] = models.Landmark{X: 0.5, Y: 0.12}
		lm[models.LandmarkLeftShoulder] = models.Landmark{X: 0.5, Y: 0.3}

		m := metricByKey(t, extractor.Analyze(lm, models.ViewSide), "headForward")
		assert.Equal(t, models.SeverityNormal, m.Severity)
		assert.Equal(t, "Maintain good habits.", m.Recommendation)
	})

	t.Run("vertical torso has no kyphosis deviation", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		lm[models.LandmarkLeftShoulder] = models.Landmark{X: 0.5, Y: 0.3}
		lm[models.LandmarkLeftHip] = models.Landmark{X: 0.5, Y: 0.55}

		m := metricByKey(t, extractor.Analyze(lm, models.ViewSide), "kyphosis")
		assert.InDelta(t, 0, m.Value, 1e-9)
		assert.Equal(t, models.SeverityNormal, m.Severity)
	})

	t.Run("leaning torso registers mild kyphosis", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		lm[models.LandmarkLeftShoulder] = models.Landmark{X: 0.5, Y: 0.5}
		lm[models.LandmarkLeftHip] = models.Landmark{X: 0.55, Y: 0.8}

		m := metricByKey(t, extractor.Analyze(lm, models.ViewSide), "kyphosis")
		assert.InDelta(t, 9.5, m.Value, 1e-9) // atan(0.05/0.3) off vertical, rounded
		assert.Equal(t, models.SeverityMild, m.Severity)
	})

	t.Run("front-only rules do not fire on the side view", func(t *testing.T) {
		t.Parallel()
		metrics := extractor.Analyze(standingLandmarks(), models.ViewSide)
		for _, m := range metrics {
			assert.NotEqual(t, "shoulderImbalance", m.Key)
			assert.NotEqual(t, "legAlignment", m.Key)
		}
	})
}

func TestExtractorFrontView(t *testing.T) {
	t.Parallel()
	extractor := NewExtractor(locale.For(locale.English))

	t.Run("level shoulders and pelvis are normal", func(t *testing.T) {
		t.Parallel()
		metrics := extractor.Analyze(standingLandmarks(), models.ViewFront)
		assert.Equal(t, models.SeverityNormal, metricByKey(t, metrics, "shoulderImbalance").Severity)
		assert.Equal(t, models.SeverityNormal, metricByKey(t, metrics, "pelvicImbalance").Severity)
	})

	t.Run("shoulder height difference at the mild boundary", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		lm[models.LandmarkLeftShoulder] = models.Landmark{X: 0.6, Y: 0.3}
		lm[models.LandmarkRightShoulder] = models.Landmark{X: 0.4, Y: 0.305}

		m := metricByKey(t, extractor.Analyze(lm, models.ViewFront), "shoulderImbalance")
		assert.InDelta(t, 0.5, m.Value, 1e-9)
		assert.Equal(t, models.SeverityMild, m.Severity)
	})

	t.Run("knee to ankle ratio inside the healthy band", func(t *testing.T) {
		t.Parallel()
		m := metricByKey(t, extractor.Analyze(standingLandmarks(), models.ViewFront), "legAlignment")
		assert.InDelta(t, 0.67, m.Value, 1e-9) // 0.08 / 0.12
		assert.Equal(t, models.SeverityNormal, m.Severity)
		assert.Equal(t, "Leg Alignment", m.Name)
		assert.Equal(t, "Good leg alignment.", m.Recommendation)
	})

	t.Run("narrow knees classify as knock knee", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		lm[models.LandmarkLeftKnee] = models.Landmark{X: 0.52, Y: 0.75}
		lm[models.LandmarkRightKnee] = models.Landmark{X: 0.48, Y: 0.75}

		m := metricByKey(t, extractor.Analyze(lm, models.ViewFront), "legAlignment")
		// ratio 0.04/0.12 = 0.33, shortfall 0.17 from the 0.5 limit
		assert.Equal(t, models.SeverityMild, m.Severity)
		assert.Equal(t, "X-Leg (Genu Valgum)", m.Name)
		assert.Equal(t, "Knock Knees Exercises", m.SearchKeywords)
	})

	t.Run("wide knees classify as bow leg", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		lm[models.LandmarkLeftKnee] = models.Landmark{X: 0.64, Y: 0.75}
		lm[models.LandmarkRightKnee] = models.Landmark{X: 0.36, Y: 0.75}

		m := metricByKey(t, extractor.Analyze(lm, models.ViewFront), "legAlignment")
		// ratio 0.28/0.12 = 2.33, excess 0.83 over the 1.5 limit
		assert.Equal(t, models.SeverityModerate, m.Severity)
		assert.Equal(t, "O-Leg (Genu Varum)", m.Name)
	})

	t.Run("overlapping ankles use the distance floor", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		lm[models.LandmarkLeftAnkle] = models.Landmark{X: 0.5, Y: 0.95}
		lm[models.LandmarkRightAnkle] = models.Landmark{X: 0.5, Y: 0.95}

		m := metricByKey(t, extractor.Analyze(lm, models.ViewFront), "legAlignment")
		assert.Equal(t, models.SeveritySevere, m.Severity) // 0.08/0.01 = 8
	})
}

func TestExtractorEdgeCases(t *testing.T) {
	t.Parallel()
	extractor := NewExtractor(locale.For(locale.English))

	t.Run("empty landmark set yields no metrics", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, extractor.Analyze(nil, models.ViewFront))
		assert.Empty(t, extractor.Analyze(nil, models.ViewSide))
	})

	t.Run("back view has no rules", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, extractor.Analyze(standingLandmarks(), models.ViewBack))
	})

	t.Run("analysis is deterministic", func(t *testing.T) {
		t.Parallel()
		lm := standingLandmarks()
		first := extractor.Analyze(lm, models.ViewFront)
		second := extractor.Analyze(lm, models.ViewFront)
		require.Equal(t, first, second)
	})

	t.Run("chinese catalog changes text only", func(t *testing.T) {
		t.Parallel()
		zh := NewExtractor(locale.For(locale.Chinese))
		lm := standingLandmarks()
		en := extractor.Analyze(lm, models.ViewFront)
		tw := zh.Analyze(lm, models.ViewFront)
		require.Len(t, tw, len(en))
		for i := range en {
			assert.Equal(t, en[i].Key, tw[i].Key)
			assert.Equal(t, en[i].Value, tw[i].Value)
			assert.Equal(t, en[i].Severity, tw[i].Severity)
		}
	})
}
