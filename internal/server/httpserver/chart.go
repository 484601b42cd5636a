package httpserver

import (
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/services"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// heartRateChart plots heart rate over time with the live thresholds as
// horizontal marker lines. records must already be in ascending order.
func heartRateChart(records []services.RecordView, th models.Thresholds) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Heart Rate Over Time",
			Width:     "100%",
			Height:    "360px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Heart Rate Over Time"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "BPM"}),
	)

	xs := make([]string, 0, len(records))
	ys := make([]opts.LineData, 0, len(records))
	for _, r := range records {
		xs = append(xs, r.Timestamp.UTC().Format("2006-01-02 15:04:05"))
		ys = append(ys, opts.LineData{Value: r.HeartRate})
	}

	line.SetXAxis(xs).AddSeries("BPM", ys,
		charts.WithMarkLineNameYAxisItemOpts(
			opts.MarkLineNameYAxisItem{Name: "high", YAxis: th.High},
			opts.MarkLineNameYAxisItem{Name: "low", YAxis: th.Low},
		),
	)

	return line
}
