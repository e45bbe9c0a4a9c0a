package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestComputeTrend(t *testing.T) {
	t.Parallel()

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()
		trend := ComputeTrend(nil)
		assert.Zero(t, trend.Count)
		assert.Zero(t, trend.SlopePerDay)
	})

	t.Run("single point has no slope", func(t *testing.T) {
		t.Parallel()
		trend := ComputeTrend([]TrendPoint{{Date: day(0), Score: 85}})
		assert.Equal(t, 1, trend.Count)
		assert.InDelta(t, 85, trend.Mean, 1e-9)
		assert.Zero(t, trend.SlopePerDay)
		assert.False(t, trend.Improving)
	})

	t.Run("steadily rising scores", func(t *testing.T) {
		t.Parallel()
		trend := ComputeTrend([]TrendPoint{
			{Date: day(0), Score: 70},
			{Date: day(1), Score: 80},
			{Date: day(2), Score: 90},
		})
		assert.Equal(t, 3, trend.Count)
		assert.InDelta(t, 80, trend.Mean, 1e-9)
		assert.InDelta(t, 10, trend.LatestDelta, 1e-9)
		assert.InDelta(t, 10, trend.SlopePerDay, 1e-9)
		assert.True(t, trend.Improving)
	})

	t.Run("declining scores are not improving", func(t *testing.T) {
		t.Parallel()
		trend := ComputeTrend([]TrendPoint{
			{Date: day(0), Score: 90},
			{Date: day(3), Score: 60},
		})
		assert.InDelta(t, -10, trend.SlopePerDay, 1e-9)
		assert.False(t, trend.Improving)
	})

	t.Run("input order does not matter", func(t *testing.T) {
		t.Parallel()
		sorted := ComputeTrend([]TrendPoint{
			{Date: day(0), Score: 70},
			{Date: day(5), Score: 95},
		})
		shuffled := ComputeTrend([]TrendPoint{
			{Date: day(5), Score: 95},
			{Date: day(0), Score: 70},
		})
		assert.Equal(t, sorted, shuffled)
	})
}
