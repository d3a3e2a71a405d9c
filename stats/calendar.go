package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/chronos/internal/models"
	"github.com/ayoisaiah/chronos/internal/timeutil"
	"github.com/ayoisaiah/chronos/internal/ui"
)

// monthNames are the full month names used as calendar headings.
var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// weekday column headings, Sunday first.
var weekdayHeader = [7]string{"D", "S", "T", "Q", "Q", "S", "S"}

var (
	styleHigh   = pterm.NewStyle(pterm.BgWhite, pterm.FgBlack, pterm.Bold)
	styleMedium = pterm.NewStyle(pterm.BgLightWhite, pterm.FgBlack)
	styleLow    = pterm.NewStyle(pterm.BgDarkGray, pterm.FgWhite)
	styleActive = pterm.NewStyle(pterm.BgBlue, pterm.FgWhite, pterm.Bold)
)

// Calendar writes twelve month grids for the year. Cells are weighted by
// the intensity tier of their date's total, and the day an active session
// is attributed to is highlighted.
func Calendar(
	w io.Writer,
	sessions []models.StudySession,
	active *models.StudySession,
	year int,
) {
	totals := TotalsByDate(sessions)

	for m := time.January; m <= time.December; m++ {
		fmt.Fprintln(w, renderMonth(totals, active, year, m))
	}
}

func renderMonth(
	totals map[string]int64,
	active *models.StudySession,
	year int,
	month time.Month,
) string {
	var b strings.Builder

	b.WriteString(ui.Blue(strings.ToUpper(monthNames[month-1])) + "\n")

	for _, d := range weekdayHeader {
		b.WriteString(" " + d + " ")
	}

	b.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	b.WriteString(strings.Repeat("   ", int(first.Weekday())))

	col := int(first.Weekday())

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%d-%02d-%02d", year, month, day)
		b.WriteString(renderCell(day, totals[date], active, date))

		col++
		if col == 7 && day != daysInMonth {
			b.WriteString("\n")

			col = 0
		}
	}

	b.WriteString("\n")

	return b.String()
}

func renderCell(
	day int,
	totalMs int64,
	active *models.StudySession,
	date string,
) string {
	cell := fmt.Sprintf("%2d ", day)

	if active != nil && active.Date == date {
		return styleActive.Sprint(cell)
	}

	switch Intensity(totalMs) {
	case TierHigh:
		return styleHigh.Sprint(cell)
	case TierMedium:
		return styleMedium.Sprint(cell)
	case TierLow:
		return styleLow.Sprint(cell)
	default:
		return cell
	}
}

// YearSummary writes the cumulative study time for the year, counting the
// active session when one is running.
func YearSummary(
	w io.Writer,
	sessions []models.StudySession,
	active *models.StudySession,
	now time.Time,
) {
	total := TotalDuration(sessions, active, now)

	fmt.Fprintf(
		w,
		"%s: %s\n",
		ui.Blue("Total studied"),
		timeutil.FormatDurationShort(total),
	)
}
