package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/crowdfolio"
	"github.com/etnz/crowdfolio/date"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GrowthPoint is the portfolio at the end of a month.
type GrowthPoint struct {
	Date    date.Date
	Size    crowdfolio.Money // net portfolio size
	Profits crowdfolio.Money // cumulated profits, net of fees
}

// Growth samples the portfolio at the end of every month spanned by txs, the
// last point being the last transaction day.
func Growth(txs []crowdfolio.Transaction) []GrowthPoint {
	span, ok := crowdfolio.DateSpan(txs)
	if !ok {
		return nil
	}
	sorted := crowdfolio.Chronological(txs)
	var points []GrowthPoint
	i := 0
	for month := range span.Months(1) {
		on := month.To
		if on.After(span.To) {
			on = span.To
		}
		for i < len(sorted) && !sorted[i].Date.After(on) {
			i++
		}
		totals := crowdfolio.NewTotals(sorted[:i])
		points = append(points, GrowthPoint{
			Date:    on,
			Size:    totals.NetPortfolioSize(),
			Profits: totals.Profits(),
		})
	}
	return points
}

// GrowthChart renders the growth points as a PNG line chart with the
// portfolio size and the cumulated profits.
func (r *Renderer) GrowthChart(points []GrowthPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	sizeY := make([]float64, len(points))
	profitY := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Date.Time()
		sizeY[i] = p.Size.Float()
		profitY[i] = p.Profits.Float()
	}

	sizeSeries := chart.TimeSeries{
		Name: "Portfolio Size",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: sizeY,
	}
	profitSeries := chart.TimeSeries{
		Name: "Profits",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("16a34a"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: profitY,
	}

	graph := chart.Chart{
		Title:  "Portfolio Growth",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return r.style.Format(f).Text
				}
				return ""
			},
		},
		Series: []chart.Series{sizeSeries, profitSeries},
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
