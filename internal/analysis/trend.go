package analysis

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// TrendPoint is one dated score observation.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// Trend summarizes a score history: mean score, the change between the two
// most recent observations and a least-squares slope in points per day.
// Delta and slope are zero when fewer than two points exist.
type Trend struct {
	Count       int     `json:"count"`
	Mean        float64 `json:"mean"`
	LatestDelta float64 `json:"latestDelta"`
	SlopePerDay float64 `json:"slopePerDay"`
	Improving   bool    `json:"improving"`
}

// ComputeTrend fits a linear regression over the score history. Points are
// sorted by date; the x axis is days since the earliest observation.
func ComputeTrend(points []TrendPoint) Trend {
	if len(points) == 0 {
		return Trend{}
	}

	sorted := make([]TrendPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	origin := sorted[0].Date
	for i, p := range sorted {
		xs[i] = p.Date.Sub(origin).Hours() / 24
		ys[i] = p.Score
	}

	trend := Trend{
		Count: len(sorted),
		Mean:  stat.Mean(ys, nil),
	}
	if len(sorted) >= 2 {
		trend.LatestDelta = ys[len(ys)-1] - ys[len(ys)-2]
		_, slope := stat.LinearRegression(xs, ys, nil, false)
		trend.SlopePerDay = slope
		trend.Improving = slope > 0
	}
	return trend
}
