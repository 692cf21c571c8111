package glossary

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jiten-dev/jiten/internal/models"
)

// difficultyBarColors keys bar colors by difficulty level.
var difficultyBarColors = map[models.Difficulty]drawing.Color{
	models.DifficultyBeginner:     drawing.ColorFromHex("22c55e"), // green-500
	models.DifficultyIntermediate: drawing.ColorFromHex("f59e0b"), // amber-500
	models.DifficultyAdvanced:     drawing.ColorFromHex("ef4444"), // red-500
}

// RenderStatsChart renders the per-difficulty term counts as a PNG bar
// chart. Returns raw PNG bytes.
func (s *Service) RenderStatsChart(ctx context.Context) ([]byte, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	bars := make([]chart.Value, 0, len(models.Difficulties()))
	for _, d := range models.Difficulties() {
		color := difficultyBarColors[d]
		bars = append(bars, chart.Value{
			Label: string(d),
			Value: float64(stats.ByDifficulty[d]),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
			},
		})
	}

	graph := chart.BarChart{
		Title:  "Terms by difficulty",
		Width:  640,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: 80,
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
