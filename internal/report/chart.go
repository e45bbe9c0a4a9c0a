// Package report renders score-history visualizations.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jengzang/shapist-backend-go/internal/analysis"
)

// RenderTrendChart writes a standalone HTML line chart of the score history.
func RenderTrendChart(w io.Writer, points []analysis.TrendPoint, trend analysis.Trend) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Posture Score Trend",
			Subtitle: fmt.Sprintf("%d assessments, mean %.1f", trend.Count, trend.Mean),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Posture Score Trend",
			Width:     "900px",
			Height:    "480px",
		}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100}),
	)

	dates := make([]string, len(points))
	scores := make([]opts.LineData, len(points))
	for i, p := range points {
		dates[i] = p.Date.Format("2006-01-02")
		scores[i] = opts.LineData{Value: p.Score}
	}

	line.SetXAxis(dates).
		AddSeries("Score", scores).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render trend chart: %w", err)
	}
	return nil
}
