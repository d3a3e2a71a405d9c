package stats

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/chronos/internal/models"
	"github.com/ayoisaiah/chronos/internal/timeutil"
	"github.com/ayoisaiah/chronos/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified year"
)

// Evolution writes a horizontal bar chart of the bucket series for the
// year. The series itself is gap-filled; empty day buckets are elided
// from the chart to keep it readable, while the fixed-size weekly and
// monthly series are charted in full.
func Evolution(
	w io.Writer,
	sessions []models.StudySession,
	year int,
	timeframe Timeframe,
) error {
	series := BucketSeries(sessions, year, timeframe)

	var bars pterm.Bars

	for _, bucket := range series {
		if timeframe == TimeframeDays && bucket.Hours == 0 {
			continue
		}

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(bucket.Hours * 60),
			Label: bucket.Label,
		})
	}

	if len(bars) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	header := ui.Blue(
		fmt.Sprintf("%d breakdown by %s (minutes)", year, timeframe),
	)

	chart, err := pterm.DefaultBarChart.
		WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, header+chart)

	return nil
}
