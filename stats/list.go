package stats

import (
	"fmt"
	"io"
	"slices"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/chronos/internal/models"
	"github.com/ayoisaiah/chronos/internal/timeutil"
	"github.com/ayoisaiah/chronos/internal/ui"
)

// SessionsTable prints a table of completed sessions. Rows follow
// insertion order (oldest first) unless reverse is set.
func SessionsTable(
	w io.Writer,
	sessions []models.StudySession,
	reverse, twentyFourHour bool,
) {
	timeFormat := "03:04:05 PM"
	if twentyFourHour {
		timeFormat = "15:04:05"
	}

	if reverse {
		sessions = slices.Clone(sessions)
		slices.Reverse(sessions)
	}

	tableBody := make([][]string, 0, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		endTime := ""
		if sess.EndTime != nil {
			endTime = timeutil.FromMs(*sess.EndTime).Format(timeFormat)
		}

		row := []string{
			sess.ID,
			sess.Date,
			sess.Subject,
			timeutil.FromMs(sess.StartTime).Format(timeFormat),
			endTime,
			ui.Green(timeutil.FormatDurationShort(sess.Duration)),
		}

		tableBody = append(tableBody, row)
	}

	printTable(tableBody, w)
}

func printTable(data [][]string, writer io.Writer) {
	d := [][]string{
		{"ID", "DATE", "SUBJECT", "START", "END", "DURATION"},
	}

	d = append(d, data...)

	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(d).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output session table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
